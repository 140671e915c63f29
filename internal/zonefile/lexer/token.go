package lexer

import "strings"

// Token is one field of a logical line. Quoted tokens have had their
// surrounding quotes and escapes removed; a semicolon inside one was never a
// comment.
type Token struct {
	Text   string
	Quoted bool
}

// Tokenize splits a logical line into tokens: whitespace-separated fields,
// with quoted strings kept as single tokens and backslash escapes resolved.
// The lexer guarantees quotes are balanced before Tokenize sees the line.
func Tokenize(line string) []Token {
	var out []Token
	var buf strings.Builder
	inQuote := false
	escaped := false
	hasToken := false

	flush := func(quoted bool) {
		if hasToken || quoted {
			out = append(out, Token{Text: buf.String(), Quoted: quoted})
		}
		buf.Reset()
		hasToken = false
	}

	for i := 0; i < len(line); i++ {
		c := line[i]

		if escaped {
			buf.WriteByte(c)
			escaped = false
			hasToken = true
			continue
		}

		switch {
		case c == '\\':
			escaped = true
		case c == '"':
			if inQuote {
				inQuote = false
				flush(true)
			} else {
				flush(false)
				inQuote = true
			}
		case (c == ' ' || c == '\t') && !inQuote:
			flush(false)
		default:
			buf.WriteByte(c)
			hasToken = true
		}
	}
	flush(inQuote)

	return out
}
