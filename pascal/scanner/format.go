package scanner

import (
	"fmt"
	"io"
	"strings"
)

// WriteTokens writes the persisted token format consumed by the parser's
// token-file loader: one token per line, whitespace-separated
// "KIND LEXEME LINE" fields. The EOF sentinel has an empty lexeme.
func WriteTokens(w io.Writer, tokens []Token) error {
	for _, t := range tokens {
		if _, err := fmt.Fprintf(w, "%s %s %d\n", t.Kind, t.Lexeme, t.Line); err != nil {
			return err
		}
	}
	return nil
}

// DumpTokens writes the human-readable collapsed dump: one line per token
// as "KIND<TAB>LEXEME<TAB>LINE:COLUMN". Newlines and carriage returns in
// lexemes are escaped so the dump stays one line per token.
func DumpTokens(w io.Writer, tokens []Token) error {
	for _, t := range tokens {
		lexeme := strings.NewReplacer("\n", `\n`, "\r", `\r`).Replace(t.Lexeme)
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d:%d\n", t.Kind, lexeme, t.Line, t.Column); err != nil {
			return err
		}
	}
	return nil
}
