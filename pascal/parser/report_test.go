package parser

import (
	"strings"
	"testing"
)

func TestWriteReportSuccess(t *testing.T) {
	result := Result{
		Rules:   []string{"ProgrammePascal -> programme NomProgramme ; Corps ."},
		Errors:  []Error{},
		Success: true,
	}

	var sb strings.Builder
	if err := WriteReport(&sb, result); err != nil {
		t.Fatal(err)
	}

	out := sb.String()
	if !strings.Contains(out, "Résultat de l'Analyse Syntaxique") {
		t.Error("missing report header")
	}
	if !strings.Contains(out, "   1 : ProgrammePascal -> programme NomProgramme ; Corps .") {
		t.Errorf("missing numbered rule line in:\n%s", out)
	}
	if !strings.Contains(out, "Analyse syntaxique réussie") {
		t.Error("missing success line")
	}
}

func TestWriteReportErrors(t *testing.T) {
	result := Result{
		Rules:   []string{"Instruction -> Vide"},
		Errors:  []Error{{Line: 2, Message: "'fin' attendu, trouvé 'EOF'"}},
		Success: false,
	}

	var sb strings.Builder
	if err := WriteReport(&sb, result); err != nil {
		t.Fatal(err)
	}

	out := sb.String()
	if !strings.Contains(out, "Erreurs Détectées") {
		t.Error("missing error section")
	}
	if !strings.Contains(out, "[ERREUR_SYNTAXIQUE] ligne 2 : 'fin' attendu, trouvé 'EOF'") {
		t.Errorf("missing rendered error in:\n%s", out)
	}
	if !strings.Contains(out, "Analyse échouée: 1 erreur(s)") {
		t.Error("missing failure summary")
	}
}
