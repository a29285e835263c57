package ingest

import "strings"

const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"

	unknown = "Other"
)

// Device is the coarse client classification stored with an event.
type Device struct {
	Type    string
	Browser string
	OS      string
}

type rule struct {
	needles []string
	name    string
}

// Order matters: Edge and Opera send "chrome/", Chrome sends "safari/".
var browserRules = []rule{
	{[]string{"edg/", "edge/", "edga/", "edgios/"}, "Edge"},
	{[]string{"opr/", "opera", "opt/"}, "Opera"},
	{[]string{"samsungbrowser"}, "Samsung Internet"},
	{[]string{"yabrowser"}, "Yandex"},
	{[]string{"vivaldi"}, "Vivaldi"},
	{[]string{"firefox/", "fxios/"}, "Firefox"},
	{[]string{"crios/", "chrome/", "chromium/"}, "Chrome"},
	{[]string{"msie ", "trident/"}, "Internet Explorer"},
	{[]string{"safari/"}, "Safari"},
}

// iOS before macOS: iPads report "Mac OS X".
var osRules = []rule{
	{[]string{"windows phone"}, "Windows Phone"},
	{[]string{"windows"}, "Windows"},
	{[]string{"iphone", "ipad", "ipod"}, "iOS"},
	{[]string{"android"}, "Android"},
	{[]string{"cros "}, "Chrome OS"},
	{[]string{"mac os x", "macintosh"}, "macOS"},
	{[]string{"linux", "x11"}, "Linux"},
}

// ClassifyDevice reduces a user agent to device type, browser family and OS
// family. Versions are never kept.
func ClassifyDevice(userAgent string) Device {
	ua := strings.ToLower(userAgent)
	return Device{
		Type:    deviceType(ua),
		Browser: match(ua, browserRules),
		OS:      match(ua, osRules),
	}
}

func deviceType(ua string) string {
	switch {
	case strings.Contains(ua, "ipad"), strings.Contains(ua, "tablet"),
		strings.Contains(ua, "android") && !strings.Contains(ua, "mobile"):
		return DeviceTablet
	case strings.Contains(ua, "mobi"), strings.Contains(ua, "iphone"),
		strings.Contains(ua, "ipod"), strings.Contains(ua, "windows phone"):
		return DeviceMobile
	default:
		return DeviceDesktop
	}
}

func match(ua string, rules []rule) string {
	for _, r := range rules {
		for _, needle := range r.needles {
			if strings.Contains(ua, needle) {
				return r.name
			}
		}
	}
	return unknown
}
