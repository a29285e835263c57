package ingest

import "strings"

// botPatterns are lower-case user agent substrings of crawlers, monitoring
// services, HTTP libraries and browser automation.
var botPatterns = []string{
	"bot", "crawl", "spider", "slurp", "scrapy", "archiver",
	"curl", "wget", "httpie", "python-requests", "python-urllib", "aiohttp",
	"go-http-client", "java/", "okhttp", "apache-httpclient", "libwww", "axios", "node-fetch",
	"headless", "phantomjs", "selenium", "webdriver", "puppeteer", "playwright", "cypress",
	"lighthouse", "pagespeed", "gtmetrix", "pingdom", "uptime", "statuscake", "site24x7",
	"facebookexternalhit", "embedly", "preview", "whatsapp", "telegram",
}

// BotDetector filters non-human traffic.
type BotDetector struct {
	patterns []string
}

func NewBotDetector() BotDetector {
	return BotDetector{patterns: botPatterns}
}

// Check returns a non-empty reason when the hit must be dropped.
func (d BotDetector) Check(client ClientHints) string {
	if client.Prefetch {
		return "prefetch"
	}

	ua := strings.ToLower(strings.TrimSpace(client.UserAgent))
	if ua == "" {
		return "empty user agent"
	}

	for _, pattern := range d.patterns {
		if strings.Contains(ua, pattern) {
			return "user agent matches " + pattern
		}
	}
	return ""
}

// IsBot reports whether the user agent belongs to a bot.
func (d BotDetector) IsBot(userAgent string) bool {
	return d.Check(ClientHints{UserAgent: userAgent}) != ""
}

// ClientHints are the request properties bot detection looks at.
type ClientHints struct {
	UserAgent string
	Prefetch  bool
}
