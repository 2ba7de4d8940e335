package parser

import (
	"strings"
	"testing"

	"github.com/djasserdz/mini-pascal-scanner/pascal/scanner"
)

func tokensFor(t *testing.T, source string) []Token {
	t.Helper()
	s := scanner.New(source)
	s.Tokenize()
	return FromScan(s.Tokens())
}

func parseSource(t *testing.T, source string) Result {
	t.Helper()
	return Parse(tokensFor(t, source))
}

func TestParseMinimalProgram(t *testing.T) {
	result := parseSource(t, "programme a1; debut a1 := 1 fin.")

	if !result.Success {
		t.Fatalf("Success = false, errors: %v", result.Errors)
	}
	if len(result.Rules) == 0 {
		t.Fatal("empty rule trace")
	}
	if result.Rules[0] != "ProgrammePascal -> programme NomProgramme ; Corps ." {
		t.Errorf("first rule = %q", result.Rules[0])
	}
}

func TestParseEmptyStatement(t *testing.T) {
	result := parseSource(t, "programme a1; debut fin.")
	if !result.Success {
		t.Fatalf("Success = false, errors: %v", result.Errors)
	}

	var traced bool
	for _, r := range result.Rules {
		if r == "Instruction -> Vide" {
			traced = true
		}
	}
	if !traced {
		t.Error("empty derivation not traced")
	}
}

func TestParseDeclarations(t *testing.T) {
	source := `programme p1;
constante c1 = 10; c2 = c1;
variable v1, v2 : entier; v3 : reel;
debut
  v1 := c1
fin.`
	result := parseSource(t, source)
	if !result.Success {
		t.Fatalf("Success = false, errors: %v", result.Errors)
	}

	wantRules := []string{
		"PartieDéfinitionConstante -> constante DéfinitionConstante {DéfinitionConstante}",
		"PartieDéfinitionVariable -> variable DéfinitionVariable {DéfinitionVariable}",
		"Type -> entier",
		"Type -> reel",
	}
	for _, w := range wantRules {
		if !containsRule(result.Rules, w) {
			t.Errorf("rule trace missing %q", w)
		}
	}
}

func TestParseStatements(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"if", "programme a1; debut si x1 < 2 alors x1 := 1 fin."},
		{"if else", "programme a1; debut si x1 < 2 alors x1 := 1 sinon x1 := 2 fin."},
		{"while", "programme a1; debut tantque x1 > 0 faire x1 := x1 - 1 fin."},
		{"repeat", "programme a1; debut repeter x1 := x1 + 1 jusqua x1 >= 10 fin."},
		{"for", "programme a1; debut pour i1 allant de 1 a 10 faire x1 := i1 fin."},
		{"for with step", "programme a1; debut pour i1 allant de 1 a 10 pas 2 faire x1 := i1 fin."},
		{"nested compound", "programme a1; debut debut x1 := 1; x2 := 2 fin fin."},
		{"statement list", "programme a1; debut x1 := 1; x2 := 2; x3 := 3 fin."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseSource(t, tt.source)
			if !result.Success {
				t.Errorf("Success = false, errors: %v", result.Errors)
			}
		})
	}
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"relational", "programme a1; debut x1 := a1 <= b2 fin."},
		{"sign", "programme a1; debut x1 := -a1 + 2 fin."},
		{"additive keyword", "programme a1; debut x1 := a1 ou b2 fin."},
		{"multiplicative", "programme a1; debut x1 := a1 * 2 div 3 mod 4 et b2 fin."},
		{"parens", "programme a1; debut x1 := (a1 + 2) * 3 fin."},
		{"real literal", "programme a1; debut x1 := 12.34 fin."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseSource(t, tt.source)
			if !result.Success {
				t.Errorf("Success = false, errors: %v", result.Errors)
			}
		})
	}
}

func TestParseSlashNotMultiplicative(t *testing.T) {
	// '/' has a token kind but is not in the multiplicative operator
	// class, so it cannot appear between factors.
	result := parseSource(t, "programme a1; debut x1 := a1 / 2 fin.")
	if result.Success {
		t.Fatal("Success = true, want failure")
	}
}

func TestParseErrorRecovery(t *testing.T) {
	// One malformed token inside a statement: exactly one error, and
	// parsing continues with the next statement.
	result := parseSource(t, "programme a1; debut x1 := 1 + * ; x2 := 2 fin.")
	if result.Success {
		t.Fatal("Success = true, want failure")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(result.Errors), result.Errors)
	}
	if !strings.Contains(result.Errors[0].Message, "facteur attendu") {
		t.Errorf("message = %q", result.Errors[0].Message)
	}
}

func TestParseMissingSeparatorAndTerminator(t *testing.T) {
	result := parseSource(t, "programme a1 debut fin")
	if result.Success {
		t.Fatal("Success = true, want failure")
	}
	if len(result.Errors) < 2 {
		t.Fatalf("got %d errors, want at least 2: %v", len(result.Errors), result.Errors)
	}

	var hasSeparator, hasTerminator bool
	for _, e := range result.Errors {
		if strings.Contains(e.Message, "';' attendu") {
			hasSeparator = true
		}
		if strings.Contains(e.Message, "'.' attendu") {
			hasTerminator = true
		}
	}
	if !hasSeparator {
		t.Error("missing ';' error not reported")
	}
	if !hasTerminator {
		t.Error("missing '.' error not reported")
	}
}

func TestParseErrorLineAndRendering(t *testing.T) {
	result := parseSource(t, "programme a1;\ndebut\n  x1 = 1\nfin.")
	if result.Success {
		t.Fatal("Success = true, want failure")
	}
	e := result.Errors[0]
	if e.Line != 3 {
		t.Errorf("error line = %d, want 3", e.Line)
	}
	if !strings.HasPrefix(e.String(), "[ERREUR_SYNTAXIQUE] ligne 3 :") {
		t.Errorf("rendered error = %q", e.String())
	}
}

func TestParseTrailingTokens(t *testing.T) {
	result := parseSource(t, "programme a1; debut fin. x1")
	if result.Success {
		t.Fatal("Success = true, want failure")
	}
	var found bool
	for _, e := range result.Errors {
		if strings.Contains(e.Message, "token inattendu après la fin du programme") {
			found = true
		}
	}
	if !found {
		t.Errorf("trailing-tokens error not reported: %v", result.Errors)
	}
}

func TestParseKeywordsCaseInsensitive(t *testing.T) {
	result := parseSource(t, "PROGRAMME a1; DEBUT a1 := 1 FIN.")
	if !result.Success {
		t.Errorf("Success = false, errors: %v", result.Errors)
	}
}

func TestParseAlwaysTerminates(t *testing.T) {
	// Degenerate inputs must never hang or panic the caller.
	sources := []string{
		"",
		"programme",
		". . . .",
		"fin fin fin debut",
		"si si si alors alors",
		"pour pour allant",
	}
	for _, src := range sources {
		result := parseSource(t, src)
		if result.Success {
			t.Errorf("Parse(%q).Success = true, want failure", src)
		}
	}
}

func containsRule(rules []string, want string) bool {
	for _, r := range rules {
		if r == want {
			return true
		}
	}
	return false
}
