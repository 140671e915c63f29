package utils

import (
	"strings"
	"testing"
)

func TestAbsoluteDNSName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already absolute", "example.com.", "example.com."},
		{"relative gets dot", "example.com", "example.com."},
		{"uppercase lowered", "EXAMPLE.COM", "example.com."},
		{"whitespace trimmed", "  example.com  ", "example.com."},
		{"multiple trailing dots collapse", "example.com..", "example.com."},
		{"root stays root", ".", "."},
		{"empty becomes root", "", "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AbsoluteDNSName(tt.input); got != tt.expected {
				t.Errorf("AbsoluteDNSName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestQualifyDNSName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		origin   string
		expected string
	}{
		{"at sign is origin", "@", "example.com.", "example.com."},
		{"relative appended", "www", "example.com.", "www.example.com."},
		{"absolute untouched", "mail.example.org.", "example.com.", "mail.example.org."},
		{"case folded", "WWW", "example.com.", "www.example.com."},
		{"no origin stays relative", "www", "", "www"},
		{"absolute without origin", "example.com.", "", "example.com."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QualifyDNSName(tt.input, tt.origin); got != tt.expected {
				t.Errorf("QualifyDNSName(%q, %q) = %q, want %q", tt.input, tt.origin, got, tt.expected)
			}
		})
	}
}

func TestValidHostname(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple", "example.com.", true},
		{"subdomain", "www.example.com.", true},
		{"underscore label prefix", "_dmarc.example.com.", true},
		{"hyphen inside label", "my-host.example.com.", true},
		{"leading hyphen", "-host.example.com.", false},
		{"trailing hyphen", "host-.example.com.", false},
		{"all numeric tld", "example.123.", false},
		{"empty label", "www..example.com.", false},
		{"label too long", strings.Repeat("a", 64) + ".example.com.", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidHostname(tt.input); got != tt.valid {
				t.Errorf("ValidHostname(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}
