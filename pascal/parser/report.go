package parser

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport writes the human-readable parse report: a header, the
// numbered sequence of applied rules, then either the error list or a
// success line.
func WriteReport(w io.Writer, result Result) error {
	var sb strings.Builder

	rule := strings.Repeat("=", 60)
	thin := strings.Repeat("-", 60)

	sb.WriteString(rule + "\n")
	sb.WriteString("  Résultat de l'Analyse Syntaxique\n")
	sb.WriteString(rule + "\n\n")

	sb.WriteString(thin + "\n")
	sb.WriteString("  Séquence de Règles Appliquées\n")
	sb.WriteString(thin + "\n")
	for i, r := range result.Rules {
		fmt.Fprintf(&sb, "  %4d : %s\n", i+1, r)
	}

	sb.WriteString("\n")
	if len(result.Errors) > 0 {
		sb.WriteString(thin + "\n")
		sb.WriteString("  Erreurs Détectées\n")
		sb.WriteString(thin + "\n")
		for _, e := range result.Errors {
			fmt.Fprintf(&sb, "  %s\n", e)
		}
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "  Analyse échouée: %d erreur(s)\n", len(result.Errors))
	} else {
		sb.WriteString("  Analyse syntaxique réussie - aucune erreur.\n")
	}

	sb.WriteString("\n" + rule + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
