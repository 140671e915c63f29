package domain

import "net/netip"

// RData is the typed payload of a resource record. The set of implementations
// is closed: one per supported RRType, matched exhaustively by the parser,
// codec, and generator.
type RData interface {
	RRType() RRType
}

// SOAData holds the seven SOA fields (RFC 1035 §3.3.13).
type SOAData struct {
	MName   string
	RName   string
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (SOAData) RRType() RRType { return RRTypeSOA }

// NSData names an authoritative name server for the owner.
type NSData struct {
	NSDName string
}

func (NSData) RRType() RRType { return RRTypeNS }

// AData holds an IPv4 host address.
type AData struct {
	Address netip.Addr
}

func (AData) RRType() RRType { return RRTypeA }

// AAAAData holds an IPv6 host address.
type AAAAData struct {
	Address netip.Addr
}

func (AAAAData) RRType() RRType { return RRTypeAAAA }

// HINFOData describes host hardware and operating system.
type HINFOData struct {
	CPU string
	OS  string
}

func (HINFOData) RRType() RRType { return RRTypeHINFO }

// CNAMEData aliases the owner to its canonical name.
type CNAMEData struct {
	Target string
}

func (CNAMEData) RRType() RRType { return RRTypeCNAME }

// MXData names a mail exchange with its preference.
type MXData struct {
	Preference uint16
	Exchange   string
}

func (MXData) RRType() RRType { return RRTypeMX }

// PTRData points to another location in the name space.
type PTRData struct {
	Target string
}

func (PTRData) RRType() RRType { return RRTypePTR }

// TXTData holds the ordered quoted string segments of a TXT record.
type TXTData struct {
	Strings []string
}

func (TXTData) RRType() RRType { return RRTypeTXT }

// SRVData locates a service (RFC 2782).
type SRVData struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

func (SRVData) RRType() RRType { return RRTypeSRV }

// URIData maps the owner to a URI (RFC 7553).
type URIData struct {
	Priority uint16
	Weight   uint16
	Target   string
}

func (URIData) RRType() RRType { return RRTypeURI }
