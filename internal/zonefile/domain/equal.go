package domain

import "reflect"

// Equal reports structural equality of the typed record content: owner, TTL,
// class, type, and payload. Text is a presentation artifact retained for
// output fidelity and is not part of record identity.
func (rr ResourceRecord) Equal(other ResourceRecord) bool {
	if rr.Owner != other.Owner || rr.Class != other.Class || rr.Type != other.Type {
		return false
	}
	if (rr.TTL == nil) != (other.TTL == nil) {
		return false
	}
	if rr.TTL != nil && *rr.TTL != *other.TTL {
		return false
	}
	return reflect.DeepEqual(rr.Data, other.Data)
}

// Equal reports structural equality of two zones: origin, default TTL, and
// the ordered record sequence. Diagnostics are excluded; they describe the
// parse, not the zone.
func (z *Zone) Equal(other *Zone) bool {
	if z.Origin != other.Origin {
		return false
	}
	if (z.DefaultTTL == nil) != (other.DefaultTTL == nil) {
		return false
	}
	if z.DefaultTTL != nil && *z.DefaultTTL != *other.DefaultTTL {
		return false
	}
	if len(z.Records) != len(other.Records) {
		return false
	}
	for i := range z.Records {
		if !z.Records[i].Equal(other.Records[i]) {
			return false
		}
	}
	return true
}
