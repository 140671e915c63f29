package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taich001/DNSzonefileManager/internal/zonefile/domain"
)

func TestLines_BasicAndComments(t *testing.T) {
	input := "; leading comment\n" +
		"$ORIGIN example.com. ; trailing comment\n" +
		"\n" +
		"www IN A 192.0.2.1\n"

	lines, err := Lines(input)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	require.Equal(t, "$ORIGIN example.com.", lines[0].Text)
	require.Equal(t, 2, lines[0].Number)
	require.False(t, lines[0].LeadingBlank)

	require.Equal(t, "www IN A 192.0.2.1", lines[1].Text)
	require.Equal(t, 4, lines[1].Number)
}

func TestLines_LeadingBlankDetected(t *testing.T) {
	input := "www IN A 192.0.2.1\n" +
		"    IN AAAA 2001:db8::1\n" +
		"\tIN TXT \"tabbed\"\n"

	lines, err := Lines(input)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	require.False(t, lines[0].LeadingBlank)
	require.True(t, lines[1].LeadingBlank)
	require.True(t, lines[2].LeadingBlank)
}

func TestLines_ParenContinuation(t *testing.T) {
	input := "@ IN SOA ns1.example.com. admin.example.com. (\n" +
		"    2026083001 ; serial\n" +
		"    7200       ; refresh\n" +
		"    3600\n" +
		"    1209600\n" +
		"    300 )\n"

	lines, err := Lines(input)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	line := lines[0]
	require.Equal(t, 1, line.Number)
	require.False(t, line.LeadingBlank)
	require.Contains(t, line.Text, "2026083001")
	require.Contains(t, line.Text, "300")
	require.NotContains(t, line.Text, "(")
	require.NotContains(t, line.Text, ")")
	require.NotContains(t, line.Text, "serial")
}

func TestLines_QuotedTextPreserved(t *testing.T) {
	input := "note IN TXT \"hello; not a comment\" \"(also not a paren)\"\n"

	lines, err := Lines(input)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Contains(t, lines[0].Text, "hello; not a comment")
	require.Contains(t, lines[0].Text, "(also not a paren)")
}

func TestLines_UnterminatedQuote(t *testing.T) {
	_, err := Lines("bad IN TXT \"never closed\n")
	require.Error(t, err)

	var lexErr *domain.LexError
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, 1, lexErr.Line)
}

func TestLines_UnbalancedCloseParen(t *testing.T) {
	_, err := Lines("@ IN SOA ns1. admin. 1 2 3 4 5 )\n")
	require.Error(t, err)

	var lexErr *domain.LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestLines_UnterminatedParenAtEOF(t *testing.T) {
	_, err := Lines("@ IN SOA ns1. admin. (\n1 2 3 4 5\n")
	require.Error(t, err)

	var lexErr *domain.LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestLexer_NextAfterExhaustion(t *testing.T) {
	lx := New(strings.NewReader("www IN A 192.0.2.1\n"))

	_, ok := lx.Next()
	require.True(t, ok)
	_, ok = lx.Next()
	require.False(t, ok)
	_, ok = lx.Next()
	require.False(t, ok)
	require.NoError(t, lx.Err())
}
