// Package parser consumes logical lines and produces a typed Zone. It tracks
// the mutable parsing context ($ORIGIN, $TTL, last-used owner) locally per
// call, so one Parser may serve concurrent parses.
package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/taich001/DNSzonefileManager/internal/zonefile/common/log"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/common/utils"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/domain"
	"github.com/taich001/DNSzonefileManager/internal/zonefile/lexer"
)

// Parser turns zone-file text into a domain.Zone.
type Parser struct {
	logger log.Logger
}

// New creates a Parser. A nil logger falls back to the process-global one.
func New(logger log.Logger) *Parser {
	if logger == nil {
		logger = log.GetLogger()
	}
	return &Parser{logger: logger}
}

// context is the mutable parsing state threaded through one Parse call.
type context struct {
	origin     string
	defaultTTL *uint32
	lastOwner  string
}

// ParseText parses zone-file text held in memory.
func (p *Parser) ParseText(text string) (*domain.Zone, error) {
	return p.Parse(strings.NewReader(text))
}

// Parse reads zone-file text from r and returns the parsed Zone. The returned
// error is non-nil only for fatal lex failures; malformed records and dropped
// types are collected as diagnostics on the Zone instead.
func (p *Parser) Parse(r io.Reader) (*domain.Zone, error) {
	zone := &domain.Zone{}
	ctx := &context{}
	lx := lexer.New(r)

	for {
		line, ok := lx.Next()
		if !ok {
			break
		}

		tokens := lexer.Tokenize(line.Text)
		if len(tokens) == 0 {
			continue
		}

		if !tokens[0].Quoted && strings.HasPrefix(tokens[0].Text, "$") {
			p.handleDirective(zone, ctx, line, tokens)
			continue
		}

		p.handleRecord(zone, ctx, line, tokens)
	}

	if err := lx.Err(); err != nil {
		return nil, err
	}

	zone.Origin = ctx.origin
	zone.DefaultTTL = ctx.defaultTTL
	return zone, nil
}

// handleDirective applies $ORIGIN and $TTL to the parsing context. Unknown
// directives are dropped with a warning, matching the unsupported-type policy.
func (p *Parser) handleDirective(zone *domain.Zone, ctx *context, line lexer.Line, tokens []lexer.Token) {
	name := strings.ToUpper(tokens[0].Text)

	switch name {
	case "$ORIGIN":
		if len(tokens) != 2 {
			p.recordError(zone, line, "$ORIGIN requires exactly one domain argument")
			return
		}
		ctx.origin = utils.AbsoluteDNSName(tokens[1].Text)
		zone.Origin = ctx.origin
	case "$TTL":
		if len(tokens) != 2 {
			p.recordError(zone, line, "$TTL requires exactly one time argument")
			return
		}
		ttl, err := utils.ParseTTL(tokens[1].Text)
		if err != nil {
			p.recordError(zone, line, "$TTL: %v", err)
			return
		}
		ctx.defaultTTL = &ttl
		zone.DefaultTTL = ctx.defaultTTL
	default:
		zone.Diagnostics = append(zone.Diagnostics,
			domain.Warnf(domain.NoRecord, "line %d: unsupported directive %s dropped", line.Number, name))
		p.logger.Warn(map[string]any{"line": line.Number, "directive": name, "origin": ctx.origin}, "unsupported directive dropped")
	}
}

// handleRecord parses one record line: [owner] [ttl] [class] type rdata...
func (p *Parser) handleRecord(zone *domain.Zone, ctx *context, line lexer.Line, tokens []lexer.Token) {
	var owner string
	if line.LeadingBlank {
		if ctx.lastOwner == "" {
			p.recordError(zone, line, "no previous owner to inherit for blank-owner record")
			return
		}
		owner = ctx.lastOwner
	} else {
		owner = utils.QualifyDNSName(tokens[0].Text, ctx.origin)
		ctx.lastOwner = owner
		tokens = tokens[1:]
	}

	// Optional TTL and class precede the type mnemonic. A numeric token is a
	// TTL, a class mnemonic is a class; the first token matching neither is
	// taken as the type.
	var ttl *uint32
	class := domain.RRClassIN
	idx := 0
	var typeToken string
	for ; idx < len(tokens); idx++ {
		tok := tokens[idx]
		if tok.Quoted {
			break
		}
		if ttl == nil && utils.IsTTLToken(tok.Text) {
			v, err := utils.ParseTTL(tok.Text)
			if err != nil {
				p.recordError(zone, line, "invalid TTL %q: %v", tok.Text, err)
				return
			}
			ttl = &v
			continue
		}
		if c := domain.ParseRRClass(strings.ToUpper(tok.Text)); c != 0 {
			class = c
			continue
		}
		typeToken = strings.ToUpper(tok.Text)
		idx++
		break
	}
	if typeToken == "" {
		p.recordError(zone, line, "missing record type")
		return
	}

	rrType := domain.RRTypeFromString(typeToken)
	if rrType == 0 {
		zone.Diagnostics = append(zone.Diagnostics,
			domain.Warnf(domain.NoRecord, "line %d: unsupported record type %s dropped", line.Number, typeToken))
		p.logger.Warn(map[string]any{"line": line.Number, "type": typeToken, "owner": owner, "origin": ctx.origin}, "unsupported record type dropped")
		return
	}

	fields := tokens[idx:]
	data, err := p.parseRData(rrType, fields, ctx.origin)
	if err != nil {
		p.recordError(zone, line, "%s record: %v", rrType, err)
		return
	}

	rr, err := domain.NewResourceRecord(owner, ttl, class, data, rdataText(fields))
	if err != nil {
		p.recordError(zone, line, "%v", err)
		return
	}
	zone.Records = append(zone.Records, rr)
}

// recordError registers a per-record parse failure and moves on; the policy
// is skip one record, continue with the next logical line.
func (p *Parser) recordError(zone *domain.Zone, line lexer.Line, format string, args ...any) {
	perr := &domain.ParseError{Line: line.Number, Msg: fmt.Sprintf(format, args...)}
	zone.Diagnostics = append(zone.Diagnostics, domain.Errorf(domain.NoRecord, "%v", perr))
	p.logger.Warn(map[string]any{"line": line.Number}, perr.Error())
}

// rdataText reproduces the rdata portion of the source line, requoting tokens
// that were quoted. Kept on the record so output survives validation failures.
func rdataText(fields []lexer.Token) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		if f.Quoted {
			parts[i] = `"` + strings.ReplaceAll(f.Text, `"`, `\"`) + `"`
		} else {
			parts[i] = f.Text
		}
	}
	return strings.Join(parts, " ")
}
