package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/djasserdz/mini-pascal-scanner/pascal/parser"
)

func newParseCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse <token-file>",
		Short: "Parse a token file and write the analysis report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "output.txt", "report file to write")

	return cmd
}

func runParse(input, output string) error {
	tokens, err := parser.ReadTokensFile(input)
	if err != nil {
		return err
	}

	fmt.Printf("%d tokens chargés\n", len(tokens))

	result := parser.Parse(tokens)
	if result.Success {
		fmt.Printf("Analyse syntaxique réussie, %d règles appliquées\n", len(result.Rules))
	} else {
		fmt.Printf("Analyse échouée: %d erreur(s)\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("  %s\n", e)
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := parser.WriteReport(f, result); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	fmt.Printf("Résultats écrits dans %s\n", output)
	return nil
}
