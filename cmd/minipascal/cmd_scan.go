package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/djasserdz/mini-pascal-scanner/pascal/scanner"
)

func newScanCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "scan <source-file>",
		Short: "Tokenize a source file and write the token file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "tokens.txt", "token file to write")

	return cmd
}

// runScan is the token-file pipeline entry: tokenize only, no structural
// validation. Lexical errors are reported but do not stop the token file
// from being written.
func runScan(input, output string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	s := scanner.New(string(data))
	s.Tokenize()

	for _, e := range s.Errors() {
		fmt.Println(e)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := scanner.WriteTokens(f, s.Tokens()); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	fmt.Printf("%d tokens écrits dans %s", len(s.Tokens()), output)
	if n := len(s.Errors()); n > 0 {
		fmt.Printf(" (%d erreur(s) lexicale(s))", n)
	}
	fmt.Println()
	return nil
}
