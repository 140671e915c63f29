package domain

// Zone is the in-memory representation of one parsed zone file. Records keeps
// source order; no component reorders it. Diagnostics accumulates non-fatal
// parse findings, kept apart from fatal errors.
type Zone struct {
	Origin      string
	DefaultTTL  *uint32
	Records     []ResourceRecord
	Diagnostics []Diagnostic
}

// SOAIndex returns the index of the first SOA record, or -1.
func (z *Zone) SOAIndex() int {
	for i, rr := range z.Records {
		if rr.Type == RRTypeSOA {
			return i
		}
	}
	return -1
}

// RecordsByOwner groups record indices by owner name, preserving order within
// each owner.
func (z *Zone) RecordsByOwner() map[string][]int {
	byOwner := make(map[string][]int)
	for i, rr := range z.Records {
		byOwner[rr.Owner] = append(byOwner[rr.Owner], i)
	}
	return byOwner
}

// CountType returns how many records of the given type the zone holds.
func (z *Zone) CountType(t RRType) int {
	n := 0
	for _, rr := range z.Records {
		if rr.Type == t {
			n++
		}
	}
	return n
}
