package ingest

import (
	"errors"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	maxPathLength  = 1024
	maxUTMLength   = 128
	maxPropKeys    = 20
	maxPropKeyLen  = 64
	maxPropValLen  = 256
	redactedEmail  = "[email]"
	redactedNumber = "[number]"
)

var (
	ErrInvalidURL = errors.New("invalid url")

	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// Runs of 9 or more digits are phone, card or account numbers more often
	// than they are content ids.
	digitRunPattern = regexp.MustCompile(`\d{9,}`)

	// sensitivePropKeys are compared after lower-casing and removing "_", "-"
	// and spaces.
	sensitivePropKeys = map[string]struct{}{
		"email": {}, "mail": {}, "emailaddress": {},
		"phone": {}, "phonenumber": {}, "tel": {}, "mobile": {},
		"name": {}, "firstname": {}, "lastname": {}, "fullname": {}, "username": {},
		"password": {}, "pass": {}, "passwd": {}, "secret": {}, "token": {},
		"ip": {}, "ipaddress": {}, "address": {}, "ssn": {},
		"creditcard": {}, "card": {}, "cardnumber": {}, "iban": {},
	}
)

// Page is the sanitized location of a hit.
type Page struct {
	// Host is the normalized host of the page URL. Empty for path-only URLs.
	Host string

	Path        string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
}

// Sanitizer strips personal data from hit fields.
type Sanitizer struct{}

func NewSanitizer() Sanitizer {
	return Sanitizer{}
}

// Page reduces a page URL to its path and UTM fields. Both absolute URLs and
// bare paths are accepted. All other query parameters and the fragment are
// dropped. "ref" and "source" are accepted in place of a missing utm_source.
func (Sanitizer) Page(raw string) (Page, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Page{}, ErrInvalidURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Page{}, errors.Join(ErrInvalidURL, err)
	}
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return Page{}, ErrInvalidURL
	}
	if u.Scheme != "" && u.Host == "" {
		return Page{}, ErrInvalidURL
	}

	q := u.Query()
	p := Page{
		Host:        NormalizeHost(u.Hostname()),
		Path:        sanitizePath(u.Path),
		UTMSource:   utmValue(q.Get("utm_source")),
		UTMMedium:   utmValue(q.Get("utm_medium")),
		UTMCampaign: utmValue(q.Get("utm_campaign")),
	}
	if p.UTMSource == "" {
		p.UTMSource = utmValue(q.Get("ref"))
	}
	if p.UTMSource == "" {
		p.UTMSource = utmValue(q.Get("source"))
	}

	return p, nil
}

// Referrer reduces a referrer URL to its host. It returns "" for unparseable
// referrers and for referrers from the site itself.
func (Sanitizer) Referrer(raw, siteDomain string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}

	host := NormalizeHost(u.Hostname())
	if host == "" || HostMatches(host, siteDomain) {
		return ""
	}
	return host
}

// Props bounds custom properties: at most 20 keys (the first in sorted
// order), keys up to 64 characters, values truncated to 256 characters.
// Keys naming personal data are dropped and e-mail addresses in values are
// redacted. Returns nil when nothing is left.
func (Sanitizer) Props(props map[string]string) map[string]string {
	if len(props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		k2 := strings.TrimSpace(k)
		if k2 == "" || utf8.RuneCountInString(k2) > maxPropKeyLen || isSensitiveKey(k2) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > maxPropKeys {
		keys = keys[:maxPropKeys]
	}
	if len(keys) == 0 {
		return nil
	}

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		v := emailPattern.ReplaceAllString(props[k], redactedEmail)
		out[strings.TrimSpace(k)] = truncate(v, maxPropValLen)
	}
	return out
}

// NormalizeHost lower-cases a host name and removes a trailing dot and a
// leading "www.".
func NormalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	host = strings.TrimSuffix(host, ".")
	return strings.TrimPrefix(host, "www.")
}

// NormalizeDomain turns user input such as "https://www.Example.com/path"
// into "example.com". It returns "" when no host can be found.
func NormalizeDomain(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return NormalizeHost(u.Hostname())
}

// HostMatches reports whether host is the site domain or one of its
// subdomains. Both are expected to be normalized.
func HostMatches(host, domain string) bool {
	if host == "" || domain == "" {
		return false
	}
	return host == domain || strings.HasSuffix(host, "."+domain)
}

func sanitizePath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	path = emailPattern.ReplaceAllString(path, redactedEmail)
	path = digitRunPattern.ReplaceAllString(path, redactedNumber)
	return truncate(path, maxPathLength)
}

func utmValue(v string) string {
	v = strings.TrimSpace(v)
	v = emailPattern.ReplaceAllString(v, redactedEmail)
	return truncate(v, maxUTMLength)
}

func isSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	k = strings.NewReplacer("_", "", "-", "", " ", "", ".", "").Replace(k)
	_, ok := sensitivePropKeys[k]
	return ok
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
