package domain

import "fmt"

// LexError reports an unrecoverable tokenization failure (unterminated quote
// or parenthesis). Lexing does not resume past it.
type LexError struct {
	Line int // 1-based physical line number
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d: %s", e.Line, e.Msg)
}

// ParseError reports a malformed record of a known type. The parser records
// it, skips the record, and continues with the next logical line.
type ParseError struct {
	Line int // 1-based physical line number of the logical line
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Msg)
}

// SchemaError reports a malformed exchange structure during decoding:
// a missing field, a wrong field kind, or an unknown type mnemonic.
type SchemaError struct {
	Field string
	Msg   string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("schema error: %s", e.Msg)
	}
	return fmt.Sprintf("schema error: field %q: %s", e.Field, e.Msg)
}
