// Package validator runs structural and semantic checks over a parsed Zone.
// Every check is independent and all of them run on each call, so one report
// carries every violation. The validator never mutates its input and never
// fails: the diagnostics are the result.
package validator

import (
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/taich001/DNSzonefileManager/internal/zonefile/common/utils"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/domain"
)

// Report is the outcome of one validation pass. OK is true iff no
// error-severity diagnostic exists; warnings never flip it.
type Report struct {
	OK          bool
	Diagnostics []domain.Diagnostic
}

// Validate checks the zone against RFC 1035 structure rules and the RFC 1912
// operational rules and returns the aggregated report.
func Validate(z *domain.Zone) Report {
	var diags []domain.Diagnostic

	diags = append(diags, checkOrigin(z)...)
	diags = append(diags, checkSOA(z)...)
	diags = append(diags, checkNS(z)...)
	diags = append(diags, checkCNAMEExclusivity(z)...)
	diags = append(diags, checkSOATimers(z)...)
	diags = append(diags, checkAddresses(z)...)
	diags = append(diags, checkTTLs(z)...)
	diags = append(diags, checkNames(z)...)

	return Report{OK: !domain.HasErrors(diags), Diagnostics: diags}
}

// checkOrigin verifies the zone origin exists, is a syntactically valid
// hostname, and sits under a known public suffix (warning only).
func checkOrigin(z *domain.Zone) []domain.Diagnostic {
	if z.Origin == "" {
		return []domain.Diagnostic{domain.Errorf(domain.NoRecord, "zone has no $ORIGIN and no way to qualify relative names")}
	}
	var diags []domain.Diagnostic
	if !utils.ValidHostname(z.Origin) {
		diags = append(diags, domain.Errorf(domain.NoRecord, "origin %q is not a valid domain name", z.Origin))
	} else {
		name := strings.TrimSuffix(z.Origin, ".")
		if _, icann := publicsuffix.PublicSuffix(name); !icann {
			diags = append(diags, domain.Warnf(domain.NoRecord, "origin %q is not under a known public suffix", z.Origin))
		}
	}
	if z.DefaultTTL == nil {
		diags = append(diags, domain.Warnf(domain.NoRecord, "zone has no $TTL directive; every record needs an explicit TTL"))
	}
	return diags
}

// checkSOA enforces exactly one SOA, positioned first.
func checkSOA(z *domain.Zone) []domain.Diagnostic {
	var diags []domain.Diagnostic
	switch n := z.CountType(domain.RRTypeSOA); {
	case n == 0:
		diags = append(diags, domain.Errorf(domain.NoRecord, "zone has no SOA record"))
	case n > 1:
		diags = append(diags, domain.Errorf(domain.NoRecord, "zone has %d SOA records, exactly one is allowed", n))
	}
	if i := z.SOAIndex(); i > 0 {
		diags = append(diags, domain.Errorf(i, "SOA record must be the first record in the zone, found at position %d", i))
	}
	return diags
}

// checkNS requires at least one NS record for the zone.
func checkNS(z *domain.Zone) []domain.Diagnostic {
	if z.CountType(domain.RRTypeNS) == 0 {
		return []domain.Diagnostic{domain.Errorf(domain.NoRecord, "zone has no NS record")}
	}
	return nil
}

// checkCNAMEExclusivity reports every owner that mixes a CNAME with any other
// record type.
func checkCNAMEExclusivity(z *domain.Zone) []domain.Diagnostic {
	var diags []domain.Diagnostic
	byOwner := z.RecordsByOwner()
	for _, rec := range orderedOwners(z) {
		indices := byOwner[rec]
		cname := -1
		other := false
		for _, i := range indices {
			if z.Records[i].Type == domain.RRTypeCNAME {
				if cname == -1 {
					cname = i
				}
			} else {
				other = true
			}
		}
		if cname >= 0 && other {
			diags = append(diags, domain.Errorf(cname, "owner %q has a CNAME alongside other records", rec))
		}
	}
	return diags
}

// orderedOwners yields each distinct owner in first-appearance order so the
// report is deterministic.
func orderedOwners(z *domain.Zone) []string {
	seen := make(map[string]bool)
	var out []string
	for _, rr := range z.Records {
		if !seen[rr.Owner] {
			seen[rr.Owner] = true
			out = append(out, rr.Owner)
		}
	}
	return out
}

// checkSOATimers reports implausible SOA timer ordering. Operational guidance
// (RFC 1912), so warning severity only.
func checkSOATimers(z *domain.Zone) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for i, rr := range z.Records {
		soa, ok := rr.Data.(domain.SOAData)
		if !ok {
			continue
		}
		if soa.Expire < soa.Retry {
			diags = append(diags, domain.Warnf(i, "SOA expire (%d) is less than retry (%d)", soa.Expire, soa.Retry))
		}
		if soa.Refresh < soa.Retry {
			diags = append(diags, domain.Warnf(i, "SOA refresh (%d) is less than retry (%d)", soa.Refresh, soa.Retry))
		}
	}
	return diags
}

// checkAddresses re-verifies that A records hold IPv4 literals and AAAA
// records hold IPv6 literals.
func checkAddresses(z *domain.Zone) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for i, rr := range z.Records {
		switch data := rr.Data.(type) {
		case domain.AData:
			if !data.Address.IsValid() || !data.Address.Is4() {
				diags = append(diags, domain.Errorf(i, "A record address %s is not IPv4", data.Address))
			}
		case domain.AAAAData:
			if !data.Address.IsValid() || !data.Address.Is6() || data.Address.Is4() {
				diags = append(diags, domain.Errorf(i, "AAAA record address %s is not IPv6", data.Address))
			}
		}
	}
	return diags
}

// checkTTLs requires every record to resolve a TTL, explicit or defaulted.
func checkTTLs(z *domain.Zone) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for i, rr := range z.Records {
		if _, ok := rr.ResolvedTTL(z.DefaultTTL); !ok {
			diags = append(diags, domain.Errorf(i, "record %q %s has no TTL and no $TTL is in effect", rr.Owner, rr.Type))
		}
	}
	return diags
}

// checkNames verifies owner and domain-name fields are absolute and flags
// hostname syntax violations at warning severity.
func checkNames(z *domain.Zone) []domain.Diagnostic {
	var diags []domain.Diagnostic
	for i, rr := range z.Records {
		names := append([]namedField{{"owner", rr.Owner}}, domainNameFields(rr.Data)...)
		for _, nf := range names {
			if !utils.IsAbsoluteDNSName(nf.value) {
				diags = append(diags, domain.Errorf(i, "%s %q is relative and cannot be qualified", nf.name, nf.value))
				continue
			}
			if nf.value != "." && !utils.ValidHostname(nf.value) {
				diags = append(diags, domain.Warnf(i, "%s %q is not a valid hostname", nf.name, nf.value))
			}
		}
	}
	return diags
}

type namedField struct {
	name  string
	value string
}

// domainNameFields extracts the domain-name-kind rdata fields of a record.
// Exhaustive over the closed payload set; URI targets are plain strings and
// A/AAAA/TXT/HINFO carry no names.
func domainNameFields(data domain.RData) []namedField {
	switch d := data.(type) {
	case domain.SOAData:
		return []namedField{{"mname", d.MName}, {"rname", d.RName}}
	case domain.NSData:
		return []namedField{{"nsdname", d.NSDName}}
	case domain.CNAMEData:
		return []namedField{{"target", d.Target}}
	case domain.MXData:
		return []namedField{{"exchange", d.Exchange}}
	case domain.PTRData:
		return []namedField{{"target", d.Target}}
	case domain.SRVData:
		return []namedField{{"target", d.Target}}
	default:
		return nil
	}
}
