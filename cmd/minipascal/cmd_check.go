package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/djasserdz/mini-pascal-scanner/pascal"
)

// errAnalysisFailed signals a non-zero exit after the errors have already
// been printed in full.
var errAnalysisFailed = errors.New("analyse échouée")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <source-file>",
		Short: "Run both analysis stages on a source file and report every error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := runCheck(cmd.OutOrStdout(), args[0])
			if errors.Is(err, errAnalysisFailed) {
				cmd.SilenceErrors = true
			}
			return err
		},
	}
}

func runCheck(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	result := pascal.Analyze(string(data))

	for _, e := range result.LexicalErrors {
		fmt.Fprintln(w, e)
	}
	for _, e := range result.SyntaxErrors {
		fmt.Fprintln(w, e)
	}

	if !result.Success {
		fmt.Fprintf(w, "%s: %d erreur(s)\n", path,
			len(result.LexicalErrors)+len(result.SyntaxErrors))
		return errAnalysisFailed
	}

	fmt.Fprintf(w, "%s: aucune erreur (%d tokens, %d règles)\n",
		path, len(result.Tokens), len(result.Rules))
	return nil
}
