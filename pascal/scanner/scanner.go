// Package scanner implements lexical analysis for the MiniPascal-Fr
// teaching language: a table-driven tokenization automaton, a scanner that
// drives it over whole source texts while building a symbol table, and a
// structural validator for program-level shape checks.
package scanner

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Error is a lexical or structural error anchored to a source position.
type Error struct {
	Line    int    `json:"line"`
	Column  int    `json:"col"`
	Message string `json:"message"`
}

func (e Error) String() string {
	return fmt.Sprintf("[ERREUR_LEXICALE] ligne %d, col %d: %s", e.Line, e.Column, e.Message)
}

// SymbolEntry records the first sighting of an identifier and how many
// times it occurred. FirstLine and FirstColumn never change after creation.
type SymbolEntry struct {
	FirstLine   int `json:"first_line"`
	FirstColumn int `json:"first_col"`
	Occurrences int `json:"occurrences"`
}

// Result is the complete outcome of scanning one source text.
type Result struct {
	Tokens      []Token                 `json:"tokens"`
	SymbolTable map[string]*SymbolEntry `json:"symbol_table"`
	Errors      []Error                 `json:"errors"`
	Success     bool                    `json:"success"`
}

// Scanner tokenizes a single source text. A Scanner is owned by exactly one
// analysis run; concurrent callers must construct one instance each.
type Scanner struct {
	src     string
	pos     int
	line    int
	column  int
	tokens  []Token
	symbols map[string]*SymbolEntry
	errors  []Error
}

func New(source string) *Scanner {
	return &Scanner{
		src:     source,
		line:    1,
		column:  1,
		symbols: make(map[string]*SymbolEntry),
	}
}

// advance consumes n bytes of input, maintaining 1-based line/column
// bookkeeping. Multi-byte runes count as one column.
func (s *Scanner) advance(n int) {
	end := s.pos + n
	for s.pos < end && s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		s.pos += size
		if r == '\n' {
			s.line++
			s.column = 1
		} else {
			s.column++
		}
	}
}

func (s *Scanner) skipWhitespace() bool {
	skipped := false
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		s.advance(size)
		skipped = true
	}
	return skipped
}

func (s *Scanner) addToken(kind TokenKind, lexeme string, line, column int) {
	tok := Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column}
	s.tokens = append(s.tokens, tok)
	if kind == TokenID {
		s.recordSymbol(tok)
	}
}

func (s *Scanner) recordSymbol(tok Token) {
	if entry, ok := s.symbols[tok.Lexeme]; ok {
		entry.Occurrences++
		return
	}
	s.symbols[tok.Lexeme] = &SymbolEntry{
		FirstLine:   tok.Line,
		FirstColumn: tok.Column,
		Occurrences: 1,
	}
}

func (s *Scanner) addError(message string, line, column int) {
	s.errors = append(s.errors, Error{Line: line, Column: column, Message: message})
}

// Tokenize scans the whole input, accumulating tokens, symbols and lexical
// errors, and appends the EOF sentinel at the final position. Recovery
// never aborts: a malformed identifier run is consumed whole so it cannot
// re-trigger on every character, any other unmatched character is consumed
// one at a time.
func (s *Scanner) Tokenize() {
	for s.pos < len(s.src) {
		if s.skipWhitespace() {
			continue
		}

		startLine := s.line
		startColumn := s.column

		m, ok := MatchAt(s.src, s.pos)
		if !ok {
			if ch := s.src[s.pos]; isLetter(ch) {
				i := s.pos + 1
				for i < len(s.src) && isAlnum(s.src[i]) {
					i++
				}
				lexeme := s.src[s.pos:i]
				s.addError(
					fmt.Sprintf("Identificateur invalide (doit être lettre + chiffre ...): %q", lexeme),
					startLine, startColumn,
				)
				s.advance(i - s.pos)
			} else {
				r, size := utf8.DecodeRuneInString(s.src[s.pos:])
				s.addError(fmt.Sprintf("Caractère illégal: %q", r), startLine, startColumn)
				s.advance(size)
			}
			continue
		}

		s.addToken(m.Kind, m.Lexeme, startLine, startColumn)
		s.advance(m.Length)
	}

	s.addToken(TokenEOF, "", s.line, s.column)
}

// Tokens returns the accumulated token sequence.
func (s *Scanner) Tokens() []Token {
	return s.tokens
}

// Errors returns the accumulated lexical and structural errors.
func (s *Scanner) Errors() []Error {
	return s.errors
}

// Result packages the scanner state into a Result value.
func (s *Scanner) Result() Result {
	errs := s.errors
	if errs == nil {
		errs = []Error{}
	}
	tokens := s.tokens
	if tokens == nil {
		tokens = []Token{}
	}
	return Result{
		Tokens:      tokens,
		SymbolTable: s.symbols,
		Errors:      errs,
		Success:     len(s.errors) == 0,
	}
}

// Scan tokenizes source and runs the structural validator, the combination
// used by the analysis API. The token-file pipeline calls Tokenize alone.
func Scan(source string) Result {
	s := New(source)
	s.Tokenize()
	s.Validate()
	return s.Result()
}
