package domain

import "time"

type Click struct {
	ID             string
	URLID          string
	Timestamp      time.Time
	VisitorKey     string // salted hash, never the raw IP
	Country        string
	City           string
	Device         string // Desktop | Mobile | Tablet | Unknown
	Browser        string
	Referrer       string
	ReferrerDomain string // registrable domain or "Direct"
	DedupeKey      string
}

// Location is the result of geo resolution. Empty fields mean unresolved.
type Location struct {
	Country string
	City    string
}

const (
	DeviceDesktop = "Desktop"
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
	Unknown       = "Unknown"
	Direct        = "Direct"
)
