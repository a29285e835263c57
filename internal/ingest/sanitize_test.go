package ingest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizer_Page(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Page
	}{
		{
			name: "absolute url keeps path and utm fields",
			raw:  "https://www.Example.com/blog/post?utm_source=news&utm_medium=email&utm_campaign=spring&session=abc#top",
			want: Page{Host: "example.com", Path: "/blog/post", UTMSource: "news", UTMMedium: "email", UTMCampaign: "spring"},
		},
		{
			name: "bare path",
			raw:  "/pricing",
			want: Page{Path: "/pricing"},
		},
		{
			name: "relative path gets a leading slash",
			raw:  "pricing",
			want: Page{Path: "/pricing"},
		},
		{
			name: "root",
			raw:  "https://example.com",
			want: Page{Host: "example.com", Path: "/"},
		},
		{
			name: "ref is a utm_source fallback",
			raw:  "/launch?ref=producthunt",
			want: Page{Path: "/launch", UTMSource: "producthunt"},
		},
		{
			name: "utm_source wins over ref",
			raw:  "/launch?ref=producthunt&utm_source=twitter",
			want: Page{Path: "/launch", UTMSource: "twitter"},
		},
		{
			name: "emails and long numbers in the path are redacted",
			raw:  "/users/john.doe@mail.com/orders/123456789012",
			want: Page{Path: "/users/[email]/orders/[number]"},
		},
		{
			name: "short numbers are kept",
			raw:  "/posts/2024/42",
			want: Page{Path: "/posts/2024/42"},
		},
	}

	s := NewSanitizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Page(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizer_Page_Invalid(t *testing.T) {
	s := NewSanitizer()
	for _, raw := range []string{"", "   ", "ftp://example.com/file", "https:///no-host", "javascript:alert(1)"} {
		_, err := s.Page(raw)
		assert.ErrorIs(t, err, ErrInvalidURL, "raw=%q", raw)
	}
}

func TestSanitizer_Page_TruncatesLongPaths(t *testing.T) {
	got, err := NewSanitizer().Page("/" + strings.Repeat("a", 2000))
	require.NoError(t, err)
	assert.Len(t, got.Path, maxPathLength)
}

func TestSanitizer_Referrer(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://www.Google.com/search?q=secret", "google.com"},
		{"https://news.ycombinator.com/item?id=1", "news.ycombinator.com"},
		{"https://example.com/other-page", ""},
		{"https://blog.example.com/post", ""},
		{"https://www.example.com/", ""},
		{"", ""},
		{"not a url", ""},
	}

	s := NewSanitizer()
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Referrer(tt.raw, "example.com"), "raw=%q", tt.raw)
	}
}

func TestSanitizer_Props(t *testing.T) {
	s := NewSanitizer()

	t.Run("drops sensitive keys and redacts emails", func(t *testing.T) {
		got := s.Props(map[string]string{
			"plan":      "pro",
			"email":     "a@b.com",
			"user_name": "john",
			"Phone":     "+123",
			"note":      "contact me at john@doe.org please",
		})
		assert.Equal(t, map[string]string{
			"plan": "pro",
			"note": "contact me at [email] please",
		}, got)
	})

	t.Run("limits keys", func(t *testing.T) {
		props := make(map[string]string)
		for i := 0; i < 25; i++ {
			props[fmt.Sprintf("k%02d", i)] = "v"
		}
		got := s.Props(props)
		assert.Len(t, got, maxPropKeys)
		assert.Contains(t, got, "k00")
		assert.Contains(t, got, "k19")
		assert.NotContains(t, got, "k20")
	})

	t.Run("drops long keys and truncates long values", func(t *testing.T) {
		got := s.Props(map[string]string{
			strings.Repeat("k", maxPropKeyLen+1): "x",
			"long":                               strings.Repeat("v", 300),
		})
		require.Len(t, got, 1)
		assert.Len(t, got["long"], maxPropValLen)
	})

	t.Run("nothing left", func(t *testing.T) {
		assert.Nil(t, s.Props(nil))
		assert.Nil(t, s.Props(map[string]string{"password": "hunter2"}))
	})
}

func TestNormalizeDomain(t *testing.T) {
	tests := map[string]string{
		"example.com":                    "example.com",
		"https://www.Example.com/path?q": "example.com",
		"WWW.example.com.":               "example.com",
		"shop.example.com:8080":          "shop.example.com",
		"":                               "",
	}
	for raw, want := range tests {
		assert.Equal(t, want, NormalizeDomain(raw), "raw=%q", raw)
	}
}

func TestHostMatches(t *testing.T) {
	assert.True(t, HostMatches("example.com", "example.com"))
	assert.True(t, HostMatches("blog.example.com", "example.com"))
	assert.False(t, HostMatches("badexample.com", "example.com"))
	assert.False(t, HostMatches("example.com.evil.io", "example.com"))
	assert.False(t, HostMatches("", "example.com"))
}
