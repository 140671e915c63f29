package utils

import (
	"regexp"
	"strings"
)

// AbsoluteDNSName returns a DNS name in the absolute form used throughout the
// zone model:
// - Lowercased
// - Trimmed of surrounding whitespace
// - Exactly one trailing dot
func AbsoluteDNSName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	for strings.HasSuffix(name, ".") {
		name = strings.TrimSuffix(name, ".")
	}
	return name + "."
}

// IsAbsoluteDNSName reports whether the name is already fully qualified.
func IsAbsoluteDNSName(name string) bool {
	return strings.HasSuffix(name, ".")
}

// QualifyDNSName resolves a possibly-relative name against the zone origin.
// "@" expands to the origin, absolute names pass through, and anything else is
// suffixed with the origin. An empty origin leaves relative names untouched so
// the validator can flag them.
func QualifyDNSName(name, origin string) string {
	if name == "@" {
		return origin
	}
	if IsAbsoluteDNSName(name) {
		return AbsoluteDNSName(name)
	}
	if origin == "" {
		return strings.ToLower(name)
	}
	return AbsoluteDNSName(name + "." + origin)
}

// labelPattern matches one hostname label: 1-63 characters, letters, digits
// and hyphens, no leading or trailing hyphen. A single leading underscore is
// tolerated for service owner names (_sip._tcp and friends).
var labelPattern = regexp.MustCompile(`^_?[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

var allDigits = regexp.MustCompile(`^[0-9]+$`)

// ValidHostname checks a domain name against hostname syntax rules:
// total length at most 253, every label valid, and a TLD that is not
// all-numeric.
func ValidHostname(name string) bool {
	name = strings.TrimSuffix(name, ".")
	if name == "" || len(name) > 253 {
		return false
	}
	labels := strings.Split(name, ".")
	if allDigits.MatchString(labels[len(labels)-1]) {
		return false
	}
	for _, label := range labels {
		if !labelPattern.MatchString(label) {
			return false
		}
	}
	return true
}
