package domain

import "fmt"

// ResourceRecord represents one DNS entry parsed from a zone file. Owner is
// always stored in absolute form (trailing dot) once the parser has qualified
// it. TTL is nil when the source line carried no explicit TTL; the resolved
// value then comes from the zone default. Text preserves the original rdata
// text so output can be reproduced even when validation fails.
type ResourceRecord struct {
	Owner string
	TTL   *uint32
	Class RRClass
	Type  RRType
	Data  RData
	Text  string
}

// NewResourceRecord constructs a ResourceRecord and checks its internal
// consistency (valid type/class, payload matching the type).
func NewResourceRecord(owner string, ttl *uint32, class RRClass, data RData, text string) (ResourceRecord, error) {
	rr := ResourceRecord{
		Owner: owner,
		TTL:   ttl,
		Class: class,
		Type:  data.RRType(),
		Data:  data,
		Text:  text,
	}
	if err := rr.Validate(); err != nil {
		return ResourceRecord{}, err
	}
	return rr, nil
}

// Validate checks whether the ResourceRecord fields are consistent.
func (rr ResourceRecord) Validate() error {
	if rr.Owner == "" {
		return fmt.Errorf("record owner must not be empty")
	}
	if !rr.Type.IsValid() {
		return fmt.Errorf("invalid RRType: %d", rr.Type)
	}
	if !rr.Class.IsValid() {
		return fmt.Errorf("invalid RRClass: %d", rr.Class)
	}
	if rr.Data == nil {
		return fmt.Errorf("record data must be set")
	}
	if rr.Data.RRType() != rr.Type {
		return fmt.Errorf("data payload is %s, record type is %s", rr.Data.RRType(), rr.Type)
	}
	return nil
}

// ResolvedTTL returns the effective TTL: the explicit value when present,
// otherwise the zone default. ok is false when neither exists.
func (rr ResourceRecord) ResolvedTTL(defaultTTL *uint32) (ttl uint32, ok bool) {
	if rr.TTL != nil {
		return *rr.TTL, true
	}
	if defaultTTL != nil {
		return *defaultTTL, true
	}
	return 0, false
}
