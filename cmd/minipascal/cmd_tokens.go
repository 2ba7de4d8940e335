package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/djasserdz/mini-pascal-scanner/pascal/scanner"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <source-file>",
		Short: "Print the token dump of a source file (KIND, lexeme, line:column)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			s := scanner.New(string(data))
			s.Tokenize()

			for _, e := range s.Errors() {
				fmt.Fprintln(os.Stderr, e)
			}

			return scanner.DumpTokens(os.Stdout, s.Tokens())
		},
	}
}
