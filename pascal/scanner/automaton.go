package scanner

import "strings"

var punctuation = map[byte]TokenKind{
	';': TokenPointVirgule,
	',': TokenVirgule,
	':': TokenDeuxPoints,
	'.': TokenPoint,
	'(': TokenParentOuv,
	')': TokenParentFerm,
}

var singleOperators = map[byte]TokenKind{
	'+': TokenPlus,
	'-': TokenMoins,
	'*': TokenFois,
	'/': TokenDivision,
	'<': TokenInf,
	'>': TokenSup,
	'=': TokenEgal,
}

var multiOperators = map[string]TokenKind{
	":=": TokenAffectation,
	"<=": TokenInfEgal,
	">=": TokenSupEgal,
	"<>": TokenDiff,
}

// Match is one candidate tokenization found by the automaton.
type Match struct {
	Kind   TokenKind
	Lexeme string
	Length int
}

// MatchAt runs the tokenization automaton against src at pos and returns
// the longest token starting there. It never advances any cursor; the
// caller is responsible for consuming Length bytes. The second result is
// false when no token pattern matches.
func MatchAt(src string, pos int) (Match, bool) {
	if pos >= len(src) {
		return Match{}, false
	}

	ch := src[pos]

	// Keywords and identifiers: maximal letter/digit run led by a letter.
	if isLetter(ch) {
		i := pos + 1
		for i < len(src) && isAlnum(src[i]) {
			i++
		}

		raw := src[pos:i]
		if kind, ok := LookupKeyword(strings.ToLower(raw)); ok {
			return Match{Kind: kind, Lexeme: raw, Length: i - pos}, true
		}

		// Identifiers have the shape letter, digit, then any mix of
		// letters and digits. Anything else is a lexical error handled
		// by the scanner, not a silent skip.
		if len(raw) >= 2 && isDigit(raw[1]) {
			return Match{Kind: TokenID, Lexeme: raw, Length: i - pos}, true
		}

		return Match{}, false
	}

	// Numbers: maximal digit run, optionally '.' followed by at least one
	// digit. A trailing '.' without a digit stays out of the number.
	if isDigit(ch) {
		i := pos
		for i < len(src) && isDigit(src[i]) {
			i++
		}

		if i < len(src) && src[i] == '.' && i+1 < len(src) && isDigit(src[i+1]) {
			i++
			for i < len(src) && isDigit(src[i]) {
				i++
			}
			return Match{Kind: TokenNombreReel, Lexeme: src[pos:i], Length: i - pos}, true
		}

		return Match{Kind: TokenNombreEntier, Lexeme: src[pos:i], Length: i - pos}, true
	}

	// Two-character operators win over any one-character reading.
	if pos+1 < len(src) {
		two := src[pos : pos+2]
		if kind, ok := multiOperators[two]; ok {
			return Match{Kind: kind, Lexeme: two, Length: 2}, true
		}
	}

	if kind, ok := punctuation[ch]; ok {
		return Match{Kind: kind, Lexeme: string(ch), Length: 1}, true
	}

	if kind, ok := singleOperators[ch]; ok {
		return Match{Kind: kind, Lexeme: string(ch), Length: 1}, true
	}

	return Match{}, false
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlnum(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}
