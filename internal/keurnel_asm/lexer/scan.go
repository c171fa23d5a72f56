package lexer

import (
	"strings"
	"unicode"

	"github.com/corvid-systems/x64asm/internal/asm"
)

// Scan splits a single assembly source line into the token stream the
// encoding engine consumes (spec.md §6.1, "Consumed interface"). Comments
// (";" to end of line) are stripped first; "," "[" "]" "+" become their
// own punctuation tokens; everything else is split on whitespace. Every
// identifier is lower-cased on the way out — mnemonics and register names
// arrive lowercase from the lexer (asm.Token's doc comment).
//
// An empty or comment-only line yields a nil slice; the caller treats
// that as "nothing to assemble" rather than an error.
func Scan(line string) []asm.Token {
	if idx := strings.IndexByte(line, ';'); idx >= 0 {
		line = line[:idx]
	}

	var tokens []asm.Token
	var word strings.Builder

	flush := func() {
		if word.Len() == 0 {
			return
		}
		lit := strings.ToLower(word.String())
		word.Reset()
		if looksNumeric(lit) {
			tokens = append(tokens, asm.NewNumber(lit))
		} else {
			tokens = append(tokens, asm.NewIdent(lit))
		}
	}

	for _, r := range line {
		switch r {
		case ',':
			flush()
			tokens = append(tokens, asm.NewPunct(asm.TokComma, ","))
		case '[':
			flush()
			tokens = append(tokens, asm.NewPunct(asm.TokLBracket, "["))
		case ']':
			flush()
			tokens = append(tokens, asm.NewPunct(asm.TokRBracket, "]"))
		case '+':
			flush()
			tokens = append(tokens, asm.NewPunct(asm.TokPlus, "+"))
		default:
			if unicode.IsSpace(r) {
				flush()
			} else {
				word.WriteRune(r)
			}
		}
	}
	flush()

	return tokens
}

// looksNumeric reports whether a lower-cased lexeme should be tokenized as
// a numeric literal rather than an identifier — the same hex/binary/octal/
// decimal lead characters TokenTypeDetermine's int-literal pattern checks.
func looksNumeric(lit string) bool {
	s := strings.TrimPrefix(lit, "-")
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
