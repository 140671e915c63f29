package domain

import "fmt"

// RRType represents a DNS resource record type (e.g. A, AAAA, MX).
// See IANA DNS Parameters for assigned codes.
type RRType uint16

// DNS Resource Record Type constants for the types the zone manager handles.
const (
	RRTypeA     RRType = 1   // A - IPv4 address
	RRTypeNS    RRType = 2   // NS - Name server
	RRTypeCNAME RRType = 5   // CNAME - Canonical name
	RRTypeSOA   RRType = 6   // SOA - Start of authority
	RRTypePTR   RRType = 12  // PTR - Pointer
	RRTypeHINFO RRType = 13  // HINFO - Host information
	RRTypeMX    RRType = 15  // MX - Mail exchange
	RRTypeTXT   RRType = 16  // TXT - Text
	RRTypeAAAA  RRType = 28  // AAAA - IPv6 address
	RRTypeSRV   RRType = 33  // SRV - Service
	RRTypeURI   RRType = 256 // URI - Uniform resource identifier
)

// AllRRTypes lists every supported type in registry order.
var AllRRTypes = []RRType{
	RRTypeSOA, RRTypeNS, RRTypeA, RRTypeAAAA, RRTypeHINFO, RRTypeCNAME,
	RRTypeMX, RRTypePTR, RRTypeTXT, RRTypeSRV, RRTypeURI,
}

// IsValid returns true if the RRType is one of the supported types.
func (t RRType) IsValid() bool {
	switch t {
	case RRTypeSOA, RRTypeNS, RRTypeA, RRTypeAAAA, RRTypeHINFO, RRTypeCNAME,
		RRTypeMX, RRTypePTR, RRTypeTXT, RRTypeSRV, RRTypeURI:
		return true
	default:
		return false
	}
}

// String returns the textual representation of the RRType.
// For unknown types, it returns "UNKNOWN(<value>)".
func (t RRType) String() string {
	switch t {
	case RRTypeA:
		return "A"
	case RRTypeNS:
		return "NS"
	case RRTypeCNAME:
		return "CNAME"
	case RRTypeSOA:
		return "SOA"
	case RRTypePTR:
		return "PTR"
	case RRTypeHINFO:
		return "HINFO"
	case RRTypeMX:
		return "MX"
	case RRTypeTXT:
		return "TXT"
	case RRTypeAAAA:
		return "AAAA"
	case RRTypeSRV:
		return "SRV"
	case RRTypeURI:
		return "URI"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", t)
	}
}

// RRTypeFromString converts a record type mnemonic to its RRType value.
// Returns 0 for mnemonics outside the supported set.
func RRTypeFromString(s string) RRType {
	switch s {
	case "A":
		return RRTypeA
	case "NS":
		return RRTypeNS
	case "CNAME":
		return RRTypeCNAME
	case "SOA":
		return RRTypeSOA
	case "PTR":
		return RRTypePTR
	case "HINFO":
		return RRTypeHINFO
	case "MX":
		return RRTypeMX
	case "TXT":
		return RRTypeTXT
	case "AAAA":
		return RRTypeAAAA
	case "SRV":
		return RRTypeSRV
	case "URI":
		return RRTypeURI
	default:
		return 0 // invalid/unknown
	}
}
