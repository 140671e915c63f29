package codec

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taich001/DNSzonefileManager/internal/zonefile/domain"
)

func ttlPtr(v uint32) *uint32 { return &v }

// fullZone exercises every supported record type.
func fullZone() *domain.Zone {
	return &domain.Zone{
		Origin:     "example.com.",
		DefaultTTL: ttlPtr(3600),
		Records: []domain.ResourceRecord{
			{Owner: "example.com.", Class: domain.RRClassIN, Type: domain.RRTypeSOA, Data: domain.SOAData{
				MName: "ns1.example.com.", RName: "admin.example.com.",
				Serial: 2026083001, Refresh: 7200, Retry: 3600, Expire: 1209600, Minimum: 300,
			}},
			{Owner: "example.com.", Class: domain.RRClassIN, Type: domain.RRTypeNS, Data: domain.NSData{NSDName: "ns1.example.com."}},
			{Owner: "www.example.com.", TTL: ttlPtr(300), Class: domain.RRClassIN, Type: domain.RRTypeA, Data: domain.AData{Address: netip.MustParseAddr("192.0.2.1")}},
			{Owner: "www.example.com.", Class: domain.RRClassIN, Type: domain.RRTypeAAAA, Data: domain.AAAAData{Address: netip.MustParseAddr("2001:db8::1")}},
			{Owner: "box.example.com.", Class: domain.RRClassIN, Type: domain.RRTypeHINFO, Data: domain.HINFOData{CPU: "PPC", OS: "OSX"}},
			{Owner: "alias.example.com.", Class: domain.RRClassIN, Type: domain.RRTypeCNAME, Data: domain.CNAMEData{Target: "www.example.com."}},
			{Owner: "example.com.", Class: domain.RRClassIN, Type: domain.RRTypeMX, Data: domain.MXData{Preference: 10, Exchange: "mail.example.com."}},
			{Owner: "1.2.0.192.in-addr.arpa.", Class: domain.RRClassIN, Type: domain.RRTypePTR, Data: domain.PTRData{Target: "www.example.com."}},
			{Owner: "example.com.", Class: domain.RRClassIN, Type: domain.RRTypeTXT, Data: domain.TXTData{Strings: []string{"v=spf1 -all", "second"}}},
			{Owner: "_sip._tcp.example.com.", Class: domain.RRClassIN, Type: domain.RRTypeSRV, Data: domain.SRVData{Priority: 10, Weight: 60, Port: 5060, Target: "sip.example.com."}},
			{Owner: "_ftp._tcp.example.com.", Class: domain.RRClassIN, Type: domain.RRTypeURI, Data: domain.URIData{Priority: 10, Weight: 1, Target: "ftp://ftp.example.com/public"}},
		},
	}
}

func TestExchangeRoundTrip(t *testing.T) {
	z := fullZone()
	got, err := FromExchange(ToExchange(z))
	require.NoError(t, err)
	require.True(t, z.Equal(got), "zone should survive the exchange round trip")
}

func TestMarshalRoundTrip_AllFormats(t *testing.T) {
	z := fullZone()
	for _, format := range []string{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(format, func(t *testing.T) {
			data, err := Marshal(z, format)
			require.NoError(t, err)

			got, err := Unmarshal(data, format)
			require.NoError(t, err)
			require.True(t, z.Equal(got), "zone should survive %s round trip", format)
		})
	}
}

func TestMarshal_UnsupportedFormat(t *testing.T) {
	_, err := Marshal(fullZone(), "xml")
	require.Error(t, err)

	_, err = Unmarshal([]byte("{}"), "xml")
	require.Error(t, err)
}

func TestMarshalIndent_JSON(t *testing.T) {
	data, err := MarshalIndent(fullZone(), FormatJSON)
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  ")

	got, err := Unmarshal(data, FormatJSON)
	require.NoError(t, err)
	require.True(t, fullZone().Equal(got))
}

func TestToExchange_OmitsUnsetTTLs(t *testing.T) {
	z := &domain.Zone{
		Origin: "example.com.",
		Records: []domain.ResourceRecord{
			{Owner: "www.example.com.", Class: domain.RRClassIN, Type: domain.RRTypeA, Data: domain.AData{Address: netip.MustParseAddr("192.0.2.1")}},
		},
	}
	m := ToExchange(z)
	_, hasDefault := m["defaultTTL"]
	require.False(t, hasDefault)

	rec := m["records"].([]any)[0].(map[string]any)
	_, hasTTL := rec["ttl"]
	require.False(t, hasTTL)
}

func TestFromExchange_ClassDefaultsToIN(t *testing.T) {
	z, err := FromExchange(map[string]any{
		"origin": "example.com.",
		"records": []any{
			map[string]any{
				"owner":   "www.example.com.",
				"type":    "A",
				"address": "192.0.2.1",
			},
		},
	})
	require.NoError(t, err)
	require.Equal(t, domain.RRClassIN, z.Records[0].Class)
}

func TestFromExchange_NumericCoercion(t *testing.T) {
	// decoders disagree on integer types; all of these must work
	for _, serial := range []any{int(1), int64(1), uint64(1), float64(1)} {
		z, err := FromExchange(map[string]any{
			"origin": "example.com.",
			"records": []any{
				map[string]any{
					"owner": "example.com.", "type": "SOA",
					"mname": "ns1.example.com.", "rname": "admin.example.com.",
					"serial": serial, "refresh": 7200, "retry": 3600,
					"expire": 1209600, "minimum": 300,
				},
			},
		})
		require.NoError(t, err, "serial as %T", serial)
		require.Equal(t, uint32(1), z.Records[0].Data.(domain.SOAData).Serial)
	}
}

func TestFromExchange_SchemaErrors(t *testing.T) {
	record := func(overrides map[string]any) map[string]any {
		m := map[string]any{
			"owner":   "www.example.com.",
			"type":    "A",
			"address": "192.0.2.1",
		}
		for k, v := range overrides {
			if v == nil {
				delete(m, k)
			} else {
				m[k] = v
			}
		}
		return m
	}

	tests := []struct {
		name   string
		m      map[string]any
		verify func(t *testing.T, se *domain.SchemaError)
	}{
		{
			name: "missing records key",
			m:    map[string]any{"origin": "example.com."},
		},
		{
			name: "records not a list",
			m:    map[string]any{"origin": "example.com.", "records": "nope"},
		},
		{
			name: "missing owner",
			m:    map[string]any{"records": []any{record(map[string]any{"owner": nil})}},
		},
		{
			name: "missing type",
			m:    map[string]any{"records": []any{record(map[string]any{"type": nil})}},
		},
		{
			name: "unsupported type",
			m:    map[string]any{"records": []any{record(map[string]any{"type": "CAA"})}},
		},
		{
			name: "unknown class",
			m:    map[string]any{"records": []any{record(map[string]any{"class": "XX"})}},
		},
		{
			name: "missing rdata field",
			m:    map[string]any{"records": []any{record(map[string]any{"address": nil})}},
		},
		{
			name: "wrong address family",
			m:    map[string]any{"records": []any{record(map[string]any{"address": "2001:db8::1"})}},
		},
		{
			name: "negative ttl",
			m:    map[string]any{"records": []any{record(map[string]any{"ttl": -1})}},
		},
		{
			name: "fractional ttl",
			m:    map[string]any{"records": []any{record(map[string]any{"ttl": 1.5})}},
		},
		{
			name: "field path names the record",
			m:    map[string]any{"records": []any{record(nil), record(map[string]any{"address": "bogus"})}},
			verify: func(t *testing.T, se *domain.SchemaError) {
				require.Contains(t, se.Field, "records[1]")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromExchange(tt.m)
			require.Error(t, err)

			var se *domain.SchemaError
			require.ErrorAs(t, err, &se)
			if tt.verify != nil {
				tt.verify(t, se)
			}
		})
	}
}

func TestFromExchange_Uint16Overflow(t *testing.T) {
	_, err := FromExchange(map[string]any{
		"origin": "example.com.",
		"records": []any{
			map[string]any{
				"owner": "example.com.", "type": "MX",
				"preference": 70000, "exchange": "mail.example.com.",
			},
		},
	})
	require.Error(t, err)

	var se *domain.SchemaError
	require.ErrorAs(t, err, &se)
}
