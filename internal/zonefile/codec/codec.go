// Package codec converts zones to and from the exchange representation: a
// nested map of plain values that serializes cleanly to JSON, YAML, or TOML.
// The exchange form carries semantics only; source text, comments, and
// diagnostics do not survive the round trip.
package codec

import (
	"fmt"
	"math"
	"net/netip"
	"strings"

	"github.com/taich001/DNSzonefileManager/internal/zonefile/domain"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/generator"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/registry"
)

// ToExchange flattens a zone into the exchange map. TTLs are omitted where
// they were never set, so absence stays distinguishable from zero.
func ToExchange(z *domain.Zone) map[string]any {
	m := map[string]any{
		"origin": z.Origin,
	}
	if z.DefaultTTL != nil {
		m["defaultTTL"] = int64(*z.DefaultTTL)
	}

	records := make([]any, 0, len(z.Records))
	for _, rr := range z.Records {
		records = append(records, recordToExchange(rr))
	}
	m["records"] = records
	return m
}

func recordToExchange(rr domain.ResourceRecord) map[string]any {
	m := map[string]any{
		"owner": rr.Owner,
		"class": rr.Class.String(),
		"type":  rr.Type.String(),
	}
	if rr.TTL != nil {
		m["ttl"] = int64(*rr.TTL)
	}

	switch d := rr.Data.(type) {
	case domain.SOAData:
		m["mname"] = d.MName
		m["rname"] = d.RName
		m["serial"] = int64(d.Serial)
		m["refresh"] = int64(d.Refresh)
		m["retry"] = int64(d.Retry)
		m["expire"] = int64(d.Expire)
		m["minimum"] = int64(d.Minimum)
	case domain.NSData:
		m["nsdname"] = d.NSDName
	case domain.AData:
		m["address"] = d.Address.String()
	case domain.AAAAData:
		m["address"] = d.Address.String()
	case domain.HINFOData:
		m["cpu"] = d.CPU
		m["os"] = d.OS
	case domain.CNAMEData:
		m["target"] = d.Target
	case domain.MXData:
		m["preference"] = int64(d.Preference)
		m["exchange"] = d.Exchange
	case domain.PTRData:
		m["target"] = d.Target
	case domain.TXTData:
		strs := make([]any, len(d.Strings))
		for i, s := range d.Strings {
			strs[i] = s
		}
		m["strings"] = strs
	case domain.SRVData:
		m["priority"] = int64(d.Priority)
		m["weight"] = int64(d.Weight)
		m["port"] = int64(d.Port)
		m["target"] = d.Target
	case domain.URIData:
		m["priority"] = int64(d.Priority)
		m["weight"] = int64(d.Weight)
		m["target"] = d.Target
	}
	return m
}

// FromExchange rebuilds a zone from an exchange map. Structural problems
// surface as *domain.SchemaError naming the offending field; nothing is
// silently dropped or defaulted except the record class, which falls back
// to IN the way zone-file syntax does.
func FromExchange(m map[string]any) (*domain.Zone, error) {
	z := &domain.Zone{}

	if v, ok := m["origin"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, &domain.SchemaError{Field: "origin", Msg: "must be a string"}
		}
		z.Origin = s
	}

	if v, ok := m["defaultTTL"]; ok {
		ttl, err := coerceUint32("defaultTTL", v)
		if err != nil {
			return nil, err
		}
		z.DefaultTTL = &ttl
	}

	rawRecords, ok := m["records"]
	if !ok {
		return nil, &domain.SchemaError{Field: "records", Msg: "missing"}
	}
	entries, err := recordMaps(rawRecords)
	if err != nil {
		return nil, err
	}

	for i, entry := range entries {
		rr, err := recordFromExchange(entry)
		if err != nil {
			if se, ok := err.(*domain.SchemaError); ok {
				se.Field = fmt.Sprintf("records[%d].%s", i, se.Field)
			}
			return nil, err
		}
		z.Records = append(z.Records, rr)
	}
	return z, nil
}

// recordMaps accepts the shapes different decoders produce for a list of
// objects: []any of maps, or an already-typed []map[string]any.
func recordMaps(v any) ([]map[string]any, error) {
	switch list := v.(type) {
	case []map[string]any:
		return list, nil
	case []any:
		out := make([]map[string]any, len(list))
		for i, e := range list {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, &domain.SchemaError{
					Field: fmt.Sprintf("records[%d]", i),
					Msg:   "must be an object",
				}
			}
			out[i] = m
		}
		return out, nil
	default:
		return nil, &domain.SchemaError{Field: "records", Msg: "must be a list"}
	}
}

func requireString(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", &domain.SchemaError{Field: key, Msg: "missing"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &domain.SchemaError{Field: key, Msg: "must be a string"}
	}
	return s, nil
}

func recordFromExchange(m map[string]any) (domain.ResourceRecord, error) {
	var rr domain.ResourceRecord

	owner, err := requireString(m, "owner")
	if err != nil {
		return rr, err
	}

	typeName, err := requireString(m, "type")
	if err != nil {
		return rr, err
	}
	rrType := domain.RRTypeFromString(strings.ToUpper(typeName))
	if rrType == 0 {
		return rr, &domain.SchemaError{Field: "type", Msg: fmt.Sprintf("unsupported record type %q", typeName)}
	}

	class := domain.RRClassIN
	if v, ok := m["class"]; ok {
		s, ok := v.(string)
		if !ok {
			return rr, &domain.SchemaError{Field: "class", Msg: "must be a string"}
		}
		c := domain.ParseRRClass(strings.ToUpper(s))
		if c == 0 {
			return rr, &domain.SchemaError{Field: "class", Msg: fmt.Sprintf("unknown class %q", s)}
		}
		class = c
	}

	var ttl *uint32
	if v, ok := m["ttl"]; ok {
		t, err := coerceUint32("ttl", v)
		if err != nil {
			return rr, err
		}
		ttl = &t
	}

	data, err := dataFromExchange(rrType, m)
	if err != nil {
		return rr, err
	}

	text := strings.Join(generator.FieldStrings(data), " ")
	return domain.NewResourceRecord(owner, ttl, class, data, text)
}

// dataFromExchange pulls the type-specific fields out of the record map,
// driven by the registry schema so key names stay in one place.
func dataFromExchange(t domain.RRType, m map[string]any) (domain.RData, error) {
	schema, ok := registry.Schema(t)
	if !ok {
		return nil, &domain.SchemaError{Field: "type", Msg: fmt.Sprintf("no schema for type %s", t)}
	}

	values := make([]any, len(schema))
	for i, field := range schema {
		raw, ok := m[field.Name]
		if !ok {
			return nil, &domain.SchemaError{Field: field.Name, Msg: "missing"}
		}
		v, err := coerceField(field, raw)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return buildData(t, values), nil
}

func coerceField(field registry.FieldSpec, raw any) (any, error) {
	switch field.Kind {
	case registry.DomainName, registry.String:
		s, ok := raw.(string)
		if !ok {
			return nil, &domain.SchemaError{Field: field.Name, Msg: "must be a string"}
		}
		return s, nil
	case registry.QuotedStringSeq:
		return coerceStrings(field.Name, raw)
	case registry.Uint16:
		v, err := coerceUint32(field.Name, raw)
		if err != nil {
			return nil, err
		}
		if v > math.MaxUint16 {
			return nil, &domain.SchemaError{Field: field.Name, Msg: fmt.Sprintf("value %d exceeds 16 bits", v)}
		}
		return uint16(v), nil
	case registry.Uint32:
		return coerceUint32(field.Name, raw)
	case registry.IPv4:
		addr, err := coerceAddr(field.Name, raw)
		if err != nil {
			return nil, err
		}
		if !addr.Is4() {
			return nil, &domain.SchemaError{Field: field.Name, Msg: fmt.Sprintf("%s is not an IPv4 address", addr)}
		}
		return addr, nil
	case registry.IPv6:
		addr, err := coerceAddr(field.Name, raw)
		if err != nil {
			return nil, err
		}
		if !addr.Is6() || addr.Is4() {
			return nil, &domain.SchemaError{Field: field.Name, Msg: fmt.Sprintf("%s is not an IPv6 address", addr)}
		}
		return addr, nil
	default:
		return nil, &domain.SchemaError{Field: field.Name, Msg: "unhandled field kind"}
	}
}

func coerceStrings(field string, raw any) ([]string, error) {
	switch list := raw.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, len(list))
		for i, e := range list {
			s, ok := e.(string)
			if !ok {
				return nil, &domain.SchemaError{Field: field, Msg: "must be a list of strings"}
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, &domain.SchemaError{Field: field, Msg: "must be a list of strings"}
	}
}

// coerceUint32 accepts the integer shapes JSON, YAML, and TOML decoders
// produce and rejects negatives, fractions, and 32-bit overflow.
func coerceUint32(field string, raw any) (uint32, error) {
	var v uint64
	switch n := raw.(type) {
	case int:
		if n < 0 {
			return 0, &domain.SchemaError{Field: field, Msg: "must not be negative"}
		}
		v = uint64(n)
	case int64:
		if n < 0 {
			return 0, &domain.SchemaError{Field: field, Msg: "must not be negative"}
		}
		v = uint64(n)
	case uint64:
		v = n
	case float64:
		if n < 0 || n != math.Trunc(n) {
			return 0, &domain.SchemaError{Field: field, Msg: "must be a non-negative integer"}
		}
		v = uint64(n)
	default:
		return 0, &domain.SchemaError{Field: field, Msg: "must be a number"}
	}
	if v > math.MaxUint32 {
		return 0, &domain.SchemaError{Field: field, Msg: fmt.Sprintf("value %d exceeds 32 bits", v)}
	}
	return uint32(v), nil
}

func coerceAddr(field string, raw any) (netip.Addr, error) {
	s, ok := raw.(string)
	if !ok {
		return netip.Addr{}, &domain.SchemaError{Field: field, Msg: "must be a string"}
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, &domain.SchemaError{Field: field, Msg: fmt.Sprintf("invalid address %q", s)}
	}
	return addr, nil
}

// buildData assumes values already carry the kinds coerceField produced for
// the type's schema, in schema order.
func buildData(t domain.RRType, values []any) domain.RData {
	switch t {
	case domain.RRTypeSOA:
		return domain.SOAData{
			MName:   values[0].(string),
			RName:   values[1].(string),
			Serial:  values[2].(uint32),
			Refresh: values[3].(uint32),
			Retry:   values[4].(uint32),
			Expire:  values[5].(uint32),
			Minimum: values[6].(uint32),
		}
	case domain.RRTypeNS:
		return domain.NSData{NSDName: values[0].(string)}
	case domain.RRTypeA:
		return domain.AData{Address: values[0].(netip.Addr)}
	case domain.RRTypeAAAA:
		return domain.AAAAData{Address: values[0].(netip.Addr)}
	case domain.RRTypeHINFO:
		return domain.HINFOData{CPU: values[0].(string), OS: values[1].(string)}
	case domain.RRTypeCNAME:
		return domain.CNAMEData{Target: values[0].(string)}
	case domain.RRTypeMX:
		return domain.MXData{Preference: values[0].(uint16), Exchange: values[1].(string)}
	case domain.RRTypePTR:
		return domain.PTRData{Target: values[0].(string)}
	case domain.RRTypeTXT:
		return domain.TXTData{Strings: values[0].([]string)}
	case domain.RRTypeSRV:
		return domain.SRVData{
			Priority: values[0].(uint16),
			Weight:   values[1].(uint16),
			Port:     values[2].(uint16),
			Target:   values[3].(string),
		}
	case domain.RRTypeURI:
		return domain.URIData{
			Priority: values[0].(uint16),
			Weight:   values[1].(uint16),
			Target:   values[2].(string),
		}
	default:
		return nil
	}
}
