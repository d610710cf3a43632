package platform

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/mod/semver"
)

// Platform identifies the operating system the host is rendering on.
type Platform struct {
	// OS is the lower-case OS name ("ios", "android", "web", ...).
	OS string
	// Version is the OS version ("17.4", "13"). Empty means unknown.
	Version string
}

func (p Platform) String() string {
	if p.Version == "" {
		return p.OS
	}
	return p.OS + " " + p.Version
}

// Availability records which platforms ship the native selectable text view.
// Each supported OS maps to a minimum version; an empty minimum accepts any
// version, including an unknown one.
type Availability struct {
	minVersions map[string]string
}

// DefaultAvailability supports iOS only. Every other platform, Android
// included, renders the plain text fallback.
func DefaultAvailability() Availability {
	return Availability{minVersions: map[string]string{"ios": ""}}
}

// NewAvailability builds an Availability from OS name to minimum version.
// Versions are dotted numbers such as "13" or "15.1".
func NewAvailability(minVersions map[string]string) (Availability, error) {
	out := make(map[string]string, len(minVersions))
	for os, minVer := range minVersions {
		os = strings.ToLower(strings.TrimSpace(os))
		if os == "" {
			return Availability{}, fmt.Errorf("platform availability: empty OS name")
		}
		minVer = strings.TrimSpace(minVer)
		if minVer != "" && !semver.IsValid(canonicalVersion(minVer)) {
			return Availability{}, fmt.Errorf("platform availability: invalid minimum version %q for %s", minVer, os)
		}
		out[os] = minVer
	}
	return Availability{minVersions: out}, nil
}

// Supports reports whether p has the native selectable text view.
//
// When a minimum version is configured, an unknown or unparseable platform
// version is treated as unsupported so the plain fallback is used.
func (a Availability) Supports(p Platform) bool {
	minVer, ok := a.minVersions[strings.ToLower(p.OS)]
	if !ok {
		return false
	}
	if minVer == "" {
		return true
	}
	have := canonicalVersion(p.Version)
	if !semver.IsValid(have) {
		return false
	}
	return semver.Compare(have, canonicalVersion(minVer)) >= 0
}

// Platforms returns the supported OS names in sorted order.
func (a Availability) Platforms() []string {
	return slices.Sorted(maps.Keys(a.minVersions))
}

// MinVersion returns the configured minimum version for os.
func (a Availability) MinVersion(os string) (string, bool) {
	minVer, ok := a.minVersions[strings.ToLower(os)]
	return minVer, ok
}

// canonicalVersion turns an OS version like "17.4" into semver form "v17.4".
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
