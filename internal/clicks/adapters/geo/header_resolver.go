package geo

import (
	"context"
	"net/netip"
	"net/url"
	"strings"

	"link-analytics-service/internal/clicks/core/domain"
	"link-analytics-service/internal/clicks/core/ports"
)

// Geo headers set by the CDN in front of the redirect layer.
const (
	HeaderCloudflareCountry = "CF-IPCountry"
	HeaderVercelCountry     = "X-Vercel-IP-Country"
	HeaderVercelCity        = "X-Vercel-IP-City"
)

// HintsFromHeaders collects geo hints using get to read a request header.
func HintsFromHeaders(get func(key string) string) ports.GeoHints {
	country := get(HeaderCloudflareCountry)
	if country == "" {
		country = get(HeaderVercelCountry)
	}

	city := get(HeaderVercelCity)
	// Vercel url-encodes city names ("S%C3%A3o%20Paulo").
	if decoded, err := url.QueryUnescape(city); err == nil {
		city = decoded
	}

	return ports.GeoHints{
		Country: strings.TrimSpace(country),
		City:    strings.TrimSpace(city),
	}
}

// HeaderResolver trusts the hints forwarded by the CDN. Private, loopback
// and unparseable addresses resolve to nothing.
type HeaderResolver struct{}

func NewHeaderResolver() *HeaderResolver {
	return &HeaderResolver{}
}

var _ ports.GeoResolver = (*HeaderResolver)(nil)

func (r *HeaderResolver) Resolve(_ context.Context, ip string, hints ports.GeoHints) domain.Location {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil || !isPublic(addr) {
		return domain.Location{}
	}

	loc := domain.Location{
		Country: strings.ToUpper(hints.Country),
		City:    hints.City,
	}
	switch loc.Country {
	case "XX", "T1": // unknown, tor
		loc.Country = ""
	}
	return loc
}

func isPublic(addr netip.Addr) bool {
	addr = addr.Unmap()
	return addr.IsValid() &&
		!addr.IsPrivate() &&
		!addr.IsLoopback() &&
		!addr.IsLinkLocalUnicast() &&
		!addr.IsUnspecified()
}
