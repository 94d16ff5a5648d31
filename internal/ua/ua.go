// internal/ua/ua.go
//
// User-Agent parsing helpers.
//
// This wrapper isolates the third-party `github.com/avct/uasurfer` API so
// the rest of the codebase never sees its enums or structs.  The access-log
// middleware is the only consumer today; it records which browsers the
// admin-panel operators use.
package ua

import (
	surfer "github.com/avct/uasurfer"
)

// Info carries the UA attributes recorded in access logs.
//
// Device is one of: "Desktop", "Mobile", "Tablet", or "Other".
type Info struct {
	Browser string
	OS      string
	Device  string
	IsBot   bool
}

// Parse converts a raw User-Agent header into an Info struct.
func Parse(raw string) Info {
	u := surfer.Parse(raw)

	info := Info{
		Browser: u.Browser.Name.String(),
		OS:      u.OS.Name.String(),
		IsBot:   u.IsBot(),
	}

	switch u.DeviceType {
	case surfer.DeviceComputer:
		info.Device = "Desktop"
	case surfer.DeviceTablet:
		info.Device = "Tablet"
	case surfer.DevicePhone, surfer.DeviceWearable:
		info.Device = "Mobile"
	default:
		info.Device = "Other"
	}
	return info
}
