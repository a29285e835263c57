// Package ingest turns raw tracking hits into anonymous, sanitized events.
//
// The pipeline is pure and synchronous:
//
//   - [BotDetector] rejects crawlers, automation tools and prefetches;
//   - [Sanitizer] keeps only the URL path, UTM fields, a referrer host and a
//     bounded set of custom properties, redacting anything that looks like
//     personal data;
//   - [VisitorHasher] derives a visitor id that rotates every UTC day;
//   - [SessionTracker] groups a visitor's hits into sessions;
//   - [ClassifyDevice] reduces the user agent to device, browser and OS families.
//
// [Processor] composes them. IP addresses and user agents never leave this
// package.
package ingest
