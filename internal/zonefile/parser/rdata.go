package parser

import (
	"fmt"
	"net/netip"
	"strconv"

	"github.com/taich001/DNSzonefileManager/internal/zonefile/common/utils"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/domain"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/lexer"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/registry"
)

// parseRData consumes rdata tokens positionally per the registry schema for
// the type and builds the typed payload.
func (p *Parser) parseRData(t domain.RRType, fields []lexer.Token, origin string) (domain.RData, error) {
	schema, ok := registry.Schema(t)
	if !ok {
		return nil, fmt.Errorf("no schema for type %s", t)
	}

	values := make([]any, 0, len(schema))
	for i, spec := range schema {
		if spec.Kind == registry.QuotedStringSeq {
			// consumes every remaining token; the registry keeps it last
			if len(fields) <= i {
				return nil, fmt.Errorf("field %s: expected at least one string", spec.Name)
			}
			seq := make([]string, 0, len(fields)-i)
			for _, tok := range fields[i:] {
				seq = append(seq, tok.Text)
			}
			values = append(values, seq)
			fields = fields[:i] // consumed
			break
		}

		if i >= len(fields) {
			return nil, fmt.Errorf("field %s: missing (want %d fields, got %d)", spec.Name, len(schema), len(fields))
		}
		v, err := parseField(spec, fields[i], origin)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	if last := schema[len(schema)-1]; last.Kind != registry.QuotedStringSeq && len(fields) != len(schema) {
		return nil, fmt.Errorf("wrong field count: want %d, got %d", len(schema), len(fields))
	}

	return buildRData(t, values), nil
}

// parseField converts one token according to its declared field kind.
func parseField(spec registry.FieldSpec, tok lexer.Token, origin string) (any, error) {
	switch spec.Kind {
	case registry.DomainName:
		return utils.QualifyDNSName(tok.Text, origin), nil
	case registry.String:
		return tok.Text, nil
	case registry.Uint16:
		v, err := strconv.ParseUint(tok.Text, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("field %s: %q is not a valid uint16", spec.Name, tok.Text)
		}
		return uint16(v), nil
	case registry.Uint32:
		// SOA timers accept zone-file time units (1h, 2w); bare integers
		// cover serials and everything else.
		if v, err := strconv.ParseUint(tok.Text, 10, 32); err == nil {
			return uint32(v), nil
		}
		v, err := utils.ParseTTL(tok.Text)
		if err != nil {
			return nil, fmt.Errorf("field %s: %q is not a valid uint32", spec.Name, tok.Text)
		}
		return v, nil
	case registry.IPv4:
		addr, err := netip.ParseAddr(tok.Text)
		if err != nil || !addr.Is4() {
			return nil, fmt.Errorf("field %s: %q is not a valid IPv4 address", spec.Name, tok.Text)
		}
		return addr, nil
	case registry.IPv6:
		addr, err := netip.ParseAddr(tok.Text)
		if err != nil || !addr.Is6() || addr.Is4() {
			return nil, fmt.Errorf("field %s: %q is not a valid IPv6 address", spec.Name, tok.Text)
		}
		return addr, nil
	default:
		return nil, fmt.Errorf("field %s: unhandled kind", spec.Name)
	}
}

// buildRData assembles the typed payload from schema-ordered values. The
// switch is exhaustive over the supported type set.
func buildRData(t domain.RRType, v []any) domain.RData {
	switch t {
	case domain.RRTypeSOA:
		return domain.SOAData{
			MName:   v[0].(string),
			RName:   v[1].(string),
			Serial:  v[2].(uint32),
			Refresh: v[3].(uint32),
			Retry:   v[4].(uint32),
			Expire:  v[5].(uint32),
			Minimum: v[6].(uint32),
		}
	case domain.RRTypeNS:
		return domain.NSData{NSDName: v[0].(string)}
	case domain.RRTypeA:
		return domain.AData{Address: v[0].(netip.Addr)}
	case domain.RRTypeAAAA:
		return domain.AAAAData{Address: v[0].(netip.Addr)}
	case domain.RRTypeHINFO:
		return domain.HINFOData{CPU: v[0].(string), OS: v[1].(string)}
	case domain.RRTypeCNAME:
		return domain.CNAMEData{Target: v[0].(string)}
	case domain.RRTypeMX:
		return domain.MXData{Preference: v[0].(uint16), Exchange: v[1].(string)}
	case domain.RRTypePTR:
		return domain.PTRData{Target: v[0].(string)}
	case domain.RRTypeTXT:
		return domain.TXTData{Strings: v[0].([]string)}
	case domain.RRTypeSRV:
		return domain.SRVData{
			Priority: v[0].(uint16),
			Weight:   v[1].(uint16),
			Port:     v[2].(uint16),
			Target:   v[3].(string),
		}
	case domain.RRTypeURI:
		return domain.URIData{
			Priority: v[0].(uint16),
			Weight:   v[1].(uint16),
			Target:   v[2].(string),
		}
	default:
		return nil
	}
}
