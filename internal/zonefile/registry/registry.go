// Package registry holds the per-type field schemas shared by the parser,
// the exchange codec, and the generator. One source of truth for field order
// and kind is what keeps parse and generate symmetric.
package registry

import "github.com/taich001/DNSzonefileManager/internal/zonefile/domain"

// FieldKind is the lexical/semantic kind of one rdata field.
type FieldKind int

const (
	DomainName FieldKind = iota
	String
	QuotedStringSeq
	Uint16
	Uint32
	IPv4
	IPv6
)

// FieldSpec describes one positional rdata field. The exchange format uses
// Name verbatim as its key.
type FieldSpec struct {
	Name string
	Kind FieldKind
}

// schemas maps each supported RRType to its ordered field list. Initialized
// once, read-only afterwards; safe for unsynchronized concurrent reads.
var schemas = map[domain.RRType][]FieldSpec{
	domain.RRTypeSOA: {
		{Name: "mname", Kind: DomainName},
		{Name: "rname", Kind: DomainName},
		{Name: "serial", Kind: Uint32},
		{Name: "refresh", Kind: Uint32},
		{Name: "retry", Kind: Uint32},
		{Name: "expire", Kind: Uint32},
		{Name: "minimum", Kind: Uint32},
	},
	domain.RRTypeNS: {
		{Name: "nsdname", Kind: DomainName},
	},
	domain.RRTypeA: {
		{Name: "address", Kind: IPv4},
	},
	domain.RRTypeAAAA: {
		{Name: "address", Kind: IPv6},
	},
	domain.RRTypeHINFO: {
		{Name: "cpu", Kind: String},
		{Name: "os", Kind: String},
	},
	domain.RRTypeCNAME: {
		{Name: "target", Kind: DomainName},
	},
	domain.RRTypeMX: {
		{Name: "preference", Kind: Uint16},
		{Name: "exchange", Kind: DomainName},
	},
	domain.RRTypePTR: {
		{Name: "target", Kind: DomainName},
	},
	domain.RRTypeTXT: {
		{Name: "strings", Kind: QuotedStringSeq},
	},
	domain.RRTypeSRV: {
		{Name: "priority", Kind: Uint16},
		{Name: "weight", Kind: Uint16},
		{Name: "port", Kind: Uint16},
		{Name: "target", Kind: DomainName},
	},
	domain.RRTypeURI: {
		{Name: "priority", Kind: Uint16},
		{Name: "weight", Kind: Uint16},
		{Name: "target", Kind: String},
	},
}

// Schema returns the ordered field schema for a record type.
func Schema(t domain.RRType) ([]FieldSpec, bool) {
	s, ok := schemas[t]
	return s, ok
}

// IsKnownType reports whether the mnemonic names a supported record type.
func IsKnownType(mnemonic string) bool {
	return domain.RRTypeFromString(mnemonic) != 0
}
