package parser

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/djasserdz/mini-pascal-scanner/pascal/scanner"
)

// TokenKind is the coarse token classification the grammar dispatches on.
// The scanner's fine-grained kinds are collapsed before parsing: all number
// kinds become KindNumber, punctuation and operators become KindSymbol.
type TokenKind int

const (
	KindEOF TokenKind = iota
	KindKeyword
	KindIdent
	KindNumber
	KindSymbol
)

var kindNames = map[TokenKind]string{
	KindEOF:     "EOF",
	KindKeyword: "KEYWORD",
	KindIdent:   "ID",
	KindNumber:  "NOMBRE",
	KindSymbol:  "SYMBOLE",
}

func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a parser-level token. Column information is not carried through
// the persisted token format, so only the line survives.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)@%d", t.Kind, t.Lexeme, t.Line)
}

// keywords is the closed word set the parser recognizes, matched
// case-insensitively against lexemes.
var keywords = map[string]bool{
	"programme": true, "constante": true, "variable": true,
	"entier": true, "reel": true,
	"debut": true, "fin": true,
	"si": true, "alors": true, "sinon": true,
	"tantque": true, "faire": true,
	"repeter": true, "jusqua": true,
	"pour": true, "allant": true, "de": true, "a": true, "pas": true,
	"ou": true, "et": true, "div": true, "mod": true,
}

// convert re-derives the parser-level kind from a scanner kind name and
// lexeme: ID stays an identifier, any number kind becomes a generic number,
// EOF becomes the end marker, keyword lexemes become keywords and everything
// else is a symbol.
func convert(scannerKind, lexeme string, line int) Token {
	switch scannerKind {
	case "ID":
		return Token{Kind: KindIdent, Lexeme: lexeme, Line: line}
	case "NOMBRE_ENTIER", "NOMBRE_REEL", "NOMBRE":
		return Token{Kind: KindNumber, Lexeme: lexeme, Line: line}
	case "EOF":
		return Token{Kind: KindEOF, Lexeme: "EOF", Line: line}
	}
	if keywords[strings.ToLower(lexeme)] {
		return Token{Kind: KindKeyword, Lexeme: lexeme, Line: line}
	}
	return Token{Kind: KindSymbol, Lexeme: lexeme, Line: line}
}

// FromScan collapses scanner tokens into parser tokens. The scanner always
// terminates its stream with an EOF sentinel, and New guards against streams
// that lack one, so no sentinel is added here.
func FromScan(tokens []scanner.Token) []Token {
	result := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		result = append(result, convert(t.Kind.String(), t.Lexeme, t.Line))
	}
	return result
}

// ReadTokensFile loads tokens from the persisted "KIND LEXEME LINE" format.
// Blank or malformed lines are skipped; an EOF sentinel is appended when the
// file does not end with one.
func ReadTokensFile(path string) ([]Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tokens file: %w", err)
	}
	defer f.Close()

	var tokens []Token
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}

		kind := strings.ToUpper(fields[0])

		// The EOF sentinel is written with an empty lexeme, so its line
		// number lands in the second field.
		if kind == "EOF" {
			line, _ := strconv.Atoi(fields[len(fields)-1])
			tokens = append(tokens, convert(kind, "EOF", line))
			continue
		}

		lexeme := fields[1]
		line := 0
		if len(fields) >= 3 {
			line, _ = strconv.Atoi(fields[2])
		}
		tokens = append(tokens, convert(kind, lexeme, line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read tokens file: %w", err)
	}

	return ensureEOF(tokens), nil
}

func ensureEOF(tokens []Token) []Token {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != KindEOF {
		line := 0
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens, Token{Kind: KindEOF, Lexeme: "EOF", Line: line})
	}
	return tokens
}
