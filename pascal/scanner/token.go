package scanner

import (
	"encoding/json"
	"fmt"
)

type TokenKind int

const (
	TokenEOF TokenKind = iota

	// Literals
	TokenID
	TokenNombreEntier
	TokenNombreReel

	// Keywords
	TokenProgramme
	TokenConstante
	TokenVariable
	TokenEntier
	TokenReel
	TokenDebut
	TokenFin
	TokenSi
	TokenAlors
	TokenSinon
	TokenTantque
	TokenFaire
	TokenRepeter
	TokenJusqua
	TokenPour
	TokenAllant
	TokenDe
	TokenA
	TokenPas
	TokenOu
	TokenEt
	TokenDiv
	TokenMod

	// Punctuation
	TokenPointVirgule
	TokenVirgule
	TokenDeuxPoints
	TokenPoint
	TokenParentOuv
	TokenParentFerm

	// Operators
	TokenPlus
	TokenMoins
	TokenFois
	TokenDivision
	TokenInf
	TokenSup
	TokenEgal
	TokenAffectation
	TokenInfEgal
	TokenSupEgal
	TokenDiff
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:          "EOF",
	TokenID:           "ID",
	TokenNombreEntier: "NOMBRE_ENTIER",
	TokenNombreReel:   "NOMBRE_REEL",
	TokenProgramme:    "PROGRAMME",
	TokenConstante:    "CONSTANTE",
	TokenVariable:     "VARIABLE",
	TokenEntier:       "ENTIER",
	TokenReel:         "REEL",
	TokenDebut:        "DEBUT",
	TokenFin:          "FIN",
	TokenSi:           "SI",
	TokenAlors:        "ALORS",
	TokenSinon:        "SINON",
	TokenTantque:      "TANTQUE",
	TokenFaire:        "FAIRE",
	TokenRepeter:      "REPETER",
	TokenJusqua:       "JUSQUA",
	TokenPour:         "POUR",
	TokenAllant:       "ALLANT",
	TokenDe:           "DE",
	TokenA:            "A",
	TokenPas:          "PAS",
	TokenOu:           "OU",
	TokenEt:           "ET",
	TokenDiv:          "DIV_KEYWORD",
	TokenMod:          "MOD_KEYWORD",
	TokenPointVirgule: "POINT_VIRGULE",
	TokenVirgule:      "VIRGULE",
	TokenDeuxPoints:   "DEUX_POINTS",
	TokenPoint:        "POINT",
	TokenParentOuv:    "PARENT_OUV",
	TokenParentFerm:   "PARENT_FERM",
	TokenPlus:         "PLUS",
	TokenMoins:        "MOINS",
	TokenFois:         "FOIS",
	TokenDivision:     "DIVISION",
	TokenInf:          "INF",
	TokenSup:          "SUP",
	TokenEgal:         "EGAL",
	TokenAffectation:  "AFFECTATION",
	TokenInfEgal:      "INFEGAL",
	TokenSupEgal:      "SUPEGAL",
	TokenDiff:         "DIFF",
}

var tokenKindValues = make(map[string]TokenKind, len(tokenKindNames))

func init() {
	for kind, name := range tokenKindNames {
		tokenKindValues[name] = kind
	}
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// MarshalJSON encodes the kind as its name, the same form the persisted
// token format uses, so API clients never see the internal enum values.
func (k TokenKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *TokenKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	kind, ok := tokenKindValues[name]
	if !ok {
		return fmt.Errorf("unknown token kind %q", name)
	}
	*k = kind
	return nil
}

// Token is a single lexical unit at a 1-based line/column position.
// Tokens are immutable once produced by the scanner.
type Token struct {
	Kind   TokenKind `json:"type"`
	Lexeme string    `json:"lexeme"`
	Line   int       `json:"line"`
	Column int       `json:"col"`
}

// keywords maps lowercased lexemes to keyword kinds. Lookup is
// case-insensitive; the token keeps the original-case lexeme.
var keywords = map[string]TokenKind{
	"programme": TokenProgramme,
	"constante": TokenConstante,
	"variable":  TokenVariable,
	"entier":    TokenEntier,
	"reel":      TokenReel,
	"debut":     TokenDebut,
	"fin":       TokenFin,
	"si":        TokenSi,
	"alors":     TokenAlors,
	"sinon":     TokenSinon,
	"tantque":   TokenTantque,
	"faire":     TokenFaire,
	"repeter":   TokenRepeter,
	"jusqua":    TokenJusqua,
	"pour":      TokenPour,
	"allant":    TokenAllant,
	"de":        TokenDe,
	"a":         TokenA,
	"pas":       TokenPas,
	"ou":        TokenOu,
	"et":        TokenEt,
	"div":       TokenDiv,
	"mod":       TokenMod,
}

// LookupKeyword resolves a lowercased lexeme to its keyword kind.
func LookupKeyword(lower string) (TokenKind, bool) {
	kind, ok := keywords[lower]
	return kind, ok
}
