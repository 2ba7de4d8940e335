// Package pascal ties the MiniPascal-Fr analysis stages together: lexical
// analysis with structural validation, then syntax analysis over the
// resulting token stream.
package pascal

import (
	"github.com/djasserdz/mini-pascal-scanner/pascal/parser"
	"github.com/djasserdz/mini-pascal-scanner/pascal/scanner"
)

// AnalysisResult is the combined outcome of both analysis stages for one
// source text. Success requires every error list to be empty.
type AnalysisResult struct {
	Tokens        []scanner.Token                 `json:"tokens"`
	SymbolTable   map[string]*scanner.SymbolEntry `json:"symbol_table"`
	LexicalErrors []scanner.Error                 `json:"lexical_errors"`
	Rules         []string                        `json:"rules"`
	SyntaxErrors  []parser.Error                  `json:"syntax_errors"`
	Success       bool                            `json:"success"`
}

// Analyze runs the full pipeline on source. A fresh scanner and parser are
// constructed per call; results share no state with any other run.
func Analyze(source string) *AnalysisResult {
	scanResult := scanner.Scan(source)
	parseResult := parser.Parse(parser.FromScan(scanResult.Tokens))

	return &AnalysisResult{
		Tokens:        scanResult.Tokens,
		SymbolTable:   scanResult.SymbolTable,
		LexicalErrors: scanResult.Errors,
		Rules:         parseResult.Rules,
		SyntaxErrors:  parseResult.Errors,
		Success:       scanResult.Success && parseResult.Success,
	}
}
