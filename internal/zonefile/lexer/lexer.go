// Package lexer splits raw zone-file text into logical lines. A logical line
// is the fully-joined text of one or more physical lines: comments are
// stripped, parenthesized continuations are joined, and quoted strings stay
// intact for the tokenizer. The lexer is a forward-only scanner; restart by
// constructing a new one over the same input.
package lexer

import (
	"bufio"
	"io"
	"strings"

	"github.com/taich001/DNSzonefileManager/internal/zonefile/domain"
)

// Line is one logical line of zone-file syntax.
type Line struct {
	Text         string // joined text, comments removed, quotes preserved
	Number       int    // physical line number where the logical line started
	LeadingBlank bool   // the first physical line began with whitespace
}

// Lexer produces logical lines from a reader.
type Lexer struct {
	scanner *bufio.Scanner
	lineNum int
	err     error
	done    bool
}

// New returns a Lexer over r.
func New(r io.Reader) *Lexer {
	sc := bufio.NewScanner(r)
	// Long TXT records can push physical lines past the default buffer.
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, 1024*1024)
	return &Lexer{scanner: sc}
}

// Err returns the fatal lex error, if any. Set once Next has returned false.
func (l *Lexer) Err() error {
	return l.err
}

// Next returns the next logical line. ok is false at end of input or on a
// fatal lex error; check Err to distinguish.
func (l *Lexer) Next() (line Line, ok bool) {
	if l.done || l.err != nil {
		return Line{}, false
	}

	var parts []string
	depth := 0
	start := 0
	leadingBlank := false

	for l.scanner.Scan() {
		l.lineNum++
		raw := l.scanner.Text()

		stripped, closeDepth, err := stripLine(raw, depth)
		if err != nil {
			l.err = &domain.LexError{Line: l.lineNum, Msg: err.Error()}
			return Line{}, false
		}

		if depth == 0 {
			if strings.TrimSpace(stripped) == "" && closeDepth == 0 {
				continue // blank logical line
			}
			start = l.lineNum
			leadingBlank = len(raw) > 0 && (raw[0] == ' ' || raw[0] == '\t')
		}
		depth = closeDepth
		parts = append(parts, stripped)

		if depth == 0 {
			text := strings.TrimRight(strings.Join(parts, " "), " \t")
			if strings.TrimSpace(text) == "" {
				parts = parts[:0]
				continue
			}
			return Line{Text: text, Number: start, LeadingBlank: leadingBlank}, true
		}
	}

	if err := l.scanner.Err(); err != nil {
		l.err = err
		return Line{}, false
	}
	if depth > 0 {
		l.err = &domain.LexError{Line: l.lineNum, Msg: "unterminated parenthesis at end of input"}
		return Line{}, false
	}
	l.done = true
	return Line{}, false
}

// Lines collects every logical line of text. It is the convenience form used
// when the caller holds the whole input in memory.
func Lines(text string) ([]Line, error) {
	lx := New(strings.NewReader(text))
	var out []Line
	for {
		line, ok := lx.Next()
		if !ok {
			break
		}
		out = append(out, line)
	}
	return out, lx.Err()
}

// stripLine removes the comment from one physical line, tracks parenthesis
// depth, and replaces unquoted parens with spaces so continuation lines join
// cleanly. Quoted strings are passed through untouched; an unterminated quote
// is a fatal error.
func stripLine(raw string, depth int) (string, int, error) {
	var b strings.Builder
	inQuote := false
	escaped := false

	for i := 0; i < len(raw); i++ {
		c := raw[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}

		switch c {
		case '\\':
			b.WriteByte(c)
			escaped = true
		case '"':
			inQuote = !inQuote
			b.WriteByte(c)
		case ';':
			if inQuote {
				b.WriteByte(c)
			} else {
				// comment runs to end of physical line
				return b.String(), depth, nil
			}
		case '(':
			if inQuote {
				b.WriteByte(c)
			} else {
				depth++
				b.WriteByte(' ')
			}
		case ')':
			if inQuote {
				b.WriteByte(c)
			} else {
				if depth == 0 {
					return "", 0, errUnbalancedParen
				}
				depth--
				b.WriteByte(' ')
			}
		default:
			b.WriteByte(c)
		}
	}

	if inQuote {
		return "", 0, errUnterminatedQuote
	}
	return b.String(), depth, nil
}

type lexFault string

func (e lexFault) Error() string { return string(e) }

const (
	errUnterminatedQuote lexFault = "unterminated quoted string"
	errUnbalancedParen   lexFault = "unbalanced closing parenthesis"
)
