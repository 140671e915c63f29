// Package generator renders a Zone back into zone-file text. It is the
// inverse of parsing, not a gate: it accepts any well-formed Zone, valid or
// not, and never mutates its input. Field order comes from the registry, the
// same source of truth the parser consumes.
package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taich001/DNSzonefileManager/internal/zonefile/domain"
)

// Generate renders the zone as master-file text: directives first, then one
// line per record in stored order. Output is semantically equivalent to the
// original input, not byte-identical (comments and whitespace are gone).
func Generate(z *domain.Zone) string {
	var b strings.Builder

	if z.Origin != "" {
		fmt.Fprintf(&b, "$ORIGIN %s\n", z.Origin)
	}
	if z.DefaultTTL != nil {
		fmt.Fprintf(&b, "$TTL %d\n", *z.DefaultTTL)
	}

	for _, rr := range z.Records {
		b.WriteString(recordLine(rr))
		b.WriteByte('\n')
	}

	return b.String()
}

// recordLine renders one record: owner, explicit TTL, class, type mnemonic,
// then fields in registry order. SOA numeric fields are wrapped in
// parentheses for readability; it makes no semantic difference.
func recordLine(rr domain.ResourceRecord) string {
	parts := []string{rr.Owner}
	if rr.TTL != nil {
		parts = append(parts, strconv.FormatUint(uint64(*rr.TTL), 10))
	}
	parts = append(parts, rr.Class.String(), rr.Type.String())

	fields := FieldStrings(rr.Data)
	if _, ok := rr.Data.(domain.SOAData); ok {
		parts = append(parts, fields[0], fields[1], "(")
		parts = append(parts, fields[2:]...)
		parts = append(parts, ")")
	} else {
		parts = append(parts, fields...)
	}

	return strings.Join(parts, " ")
}

// FieldStrings renders the rdata fields of a record in registry order, ready
// for zone-file output. Quoted-string kinds come back quoted and escaped.
func FieldStrings(data domain.RData) []string {
	switch d := data.(type) {
	case domain.SOAData:
		return []string{
			d.MName, d.RName,
			u32(d.Serial), u32(d.Refresh), u32(d.Retry), u32(d.Expire), u32(d.Minimum),
		}
	case domain.NSData:
		return []string{d.NSDName}
	case domain.AData:
		return []string{d.Address.String()}
	case domain.AAAAData:
		return []string{d.Address.String()}
	case domain.HINFOData:
		return []string{quote(d.CPU), quote(d.OS)}
	case domain.CNAMEData:
		return []string{d.Target}
	case domain.MXData:
		return []string{u16(d.Preference), d.Exchange}
	case domain.PTRData:
		return []string{d.Target}
	case domain.TXTData:
		out := make([]string, len(d.Strings))
		for i, s := range d.Strings {
			out[i] = quote(s)
		}
		return out
	case domain.SRVData:
		return []string{u16(d.Priority), u16(d.Weight), u16(d.Port), d.Target}
	case domain.URIData:
		return []string{u16(d.Priority), u16(d.Weight), quote(d.Target)}
	default:
		return nil
	}
}

func u16(v uint16) string { return strconv.FormatUint(uint64(v), 10) }
func u32(v uint32) string { return strconv.FormatUint(uint64(v), 10) }

// quote wraps a string in zone-file quotes, escaping backslashes and quotes.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
