package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/url"
	"strings"

	"link-analytics-service/internal/clicks/core/domain"

	"github.com/mssola/useragent"
	"golang.org/x/net/publicsuffix"
)

// classifyUserAgent returns the device class and browser family.
func classifyUserAgent(raw string) (device, browser string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.Unknown, domain.Unknown
	}

	ua := useragent.New(raw)

	browser, _ = ua.Browser()
	if browser == "" {
		browser = domain.Unknown
	}

	lower := strings.ToLower(raw)
	switch {
	case ua.Bot():
		device = domain.Unknown
	case strings.Contains(lower, "ipad"),
		strings.Contains(lower, "tablet"),
		strings.Contains(lower, "android") && !strings.Contains(lower, "mobile"):
		device = domain.DeviceTablet
	case ua.Mobile():
		device = domain.DeviceMobile
	default:
		device = domain.DeviceDesktop
	}

	return device, browser
}

// referrerDomain reduces a referrer URL to its registrable domain
// (news.ycombinator.com -> ycombinator.com).
func referrerDomain(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.Direct
	}

	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		// bare hosts such as "example.com/path"
		u, err = url.Parse("//" + raw)
		if err != nil || u.Hostname() == "" {
			return domain.Direct
		}
	}

	host := strings.ToLower(strings.TrimSuffix(u.Hostname(), "."))
	if net.ParseIP(host) != nil {
		return host
	}

	if d, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return d
	}
	return host
}

func visitorKey(salt, ip string) string {
	sum := sha256.Sum256([]byte(salt + "|" + strings.TrimSpace(ip)))
	return hex.EncodeToString(sum[:])
}
