// Package platform probes the local machine for the hardware details that
// prefill a new inventory record: brand, device name, serial number and
// manufactured date. Probing is best effort; anything unreadable reports
// Unknown.
package platform

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Unknown stands in for any hardware detail the host will not reveal.
const Unknown = "Unknown"

type Info struct {
	Brand            string
	DeviceName       string
	SerialNumber     string
	ManufacturedDate string
}

// dmiPath is swapped out in tests.
var dmiPath = "/sys/class/dmi/id"

// Collect gathers what the host exposes. Reading DMI serials usually needs
// root; a permission error just means Unknown.
func Collect() Info {
	info := Info{
		Brand:            Unknown,
		DeviceName:       Unknown,
		SerialNumber:     Unknown,
		ManufacturedDate: Unknown,
	}

	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		info.DeviceName = strings.ToUpper(hostname)
	}

	if runtime.GOOS != "linux" {
		return info
	}

	if vendor := readDMI("sys_vendor"); vendor != "" {
		info.Brand = strings.ToUpper(vendor)
	}
	if serial := readDMI("product_serial"); serial != "" {
		info.SerialNumber = strings.ToUpper(serial)
	}
	if biosDate := readDMI("bios_date"); biosDate != "" {
		if formatted := formatBIOSDate(biosDate); formatted != "" {
			info.ManufacturedDate = formatted
		}
	}

	return info
}

// CurrentUser names the logged-in OS user, used as the default custodian.
func CurrentUser() string {
	u, err := user.Current()
	if err != nil || u.Username == "" {
		return Unknown
	}
	// Windows reports DOMAIN\name; keep the name.
	name := u.Username
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToUpper(name)
}

func readDMI(field string) string {
	raw, err := os.ReadFile(filepath.Join(dmiPath, field))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

// formatBIOSDate converts the DMI MM/DD/YYYY form to YYYY-MM-DD. Anything
// else comes back empty.
func formatBIOSDate(raw string) string {
	parsed, err := time.Parse("01/02/2006", strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return parsed.Format("2006-01-02")
}
