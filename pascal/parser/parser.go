// Package parser implements the recursive-descent syntax analyzer for
// MiniPascal-Fr. Each grammar non-terminal maps to one method; every
// invocation appends a human-readable rule string to the trace. Errors are
// collected with single-token panic-mode recovery, so a parse always runs
// to completion over the whole token stream.
package parser

import (
	"fmt"
	"strings"
)

// Error is one syntax error at a source line. Internal marks faults caught
// by the parse entry point's recovery barrier rather than ordinary
// expected-token mismatches.
type Error struct {
	Line     int    `json:"line"`
	Message  string `json:"message"`
	Internal bool   `json:"internal,omitempty"`
}

func (e Error) String() string {
	return fmt.Sprintf("[ERREUR_SYNTAXIQUE] ligne %d : %s", e.Line, e.Message)
}

// Result is the complete outcome of one parse run.
type Result struct {
	Rules   []string `json:"rules"`
	Errors  []Error  `json:"errors"`
	Success bool     `json:"success"`
}

var relationalOps = map[string]bool{
	"<": true, ">": true, "=": true,
	"<=": true, ">=": true, "<>": true,
}

// Parser analyzes one token stream. A Parser is owned by exactly one run;
// concurrent callers must construct one instance each.
type Parser struct {
	tokens  []Token
	pos     int
	current Token
	rules   []string
	errors  []Error
}

func New(tokens []Token) *Parser {
	return &Parser{tokens: ensureEOF(tokens)}
}

// Parse resets the cursor, derives the Programme rule and checks that the
// whole stream was consumed. Any internal fault is converted into an error
// entry; Parse never panics into the caller.
func (p *Parser) Parse() Result {
	p.pos = 0
	p.current = p.tokens[0]
	p.rules = nil
	p.errors = nil

	p.run()

	rules := p.rules
	if rules == nil {
		rules = []string{}
	}
	errs := p.errors
	if errs == nil {
		errs = []Error{}
	}
	return Result{Rules: rules, Errors: errs, Success: len(p.errors) == 0}
}

func (p *Parser) run() {
	defer func() {
		if r := recover(); r != nil {
			p.errors = append(p.errors, Error{
				Line:     p.current.Line,
				Message:  fmt.Sprintf("erreur interne de l'analyseur: %v", r),
				Internal: true,
			})
		}
	}()

	p.parseProgramme()
	if p.current.Kind != KindEOF {
		p.errorf("token inattendu après la fin du programme")
	}
}

// Parse runs a fresh parser over tokens.
func Parse(tokens []Token) Result {
	return New(tokens).Parse()
}

func (p *Parser) advance() {
	p.pos++
	if p.pos < len(p.tokens) {
		p.current = p.tokens[p.pos]
	}
}

// match consumes the current token only when both its kind and its
// lowercase-compared lexeme equal the given pair.
func (p *Parser) match(kind TokenKind, lexeme string) bool {
	if p.current.Kind == kind && strings.EqualFold(p.current.Lexeme, lexeme) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchKind(kind TokenKind) bool {
	if p.current.Kind == kind {
		p.advance()
		return true
	}
	return false
}

// expect consumes (kind, lexeme) or records an error and unconditionally
// skips one token. The skip is the sole recovery strategy and guarantees
// forward progress.
func (p *Parser) expect(kind TokenKind, lexeme string) {
	if !p.match(kind, lexeme) {
		p.errorf("'%s' attendu, trouvé '%s'", lexeme, p.current.Lexeme)
		p.advance()
	}
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, Error{Line: p.current.Line, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) rule(text string) {
	p.rules = append(p.rules, text)
}

func (p *Parser) isKeyword(kw string) bool {
	return p.current.Kind == KindKeyword && strings.EqualFold(p.current.Lexeme, kw)
}

func (p *Parser) isSymbol(s string) bool {
	return p.current.Kind == KindSymbol && p.current.Lexeme == s
}

func (p *Parser) isIdent() bool  { return p.current.Kind == KindIdent }
func (p *Parser) isNumber() bool { return p.current.Kind == KindNumber }

func (p *Parser) isRelationalOp() bool {
	return p.current.Kind == KindSymbol && relationalOps[p.current.Lexeme]
}

func (p *Parser) isAdditiveOp() bool {
	return p.isSymbol("+") || p.isSymbol("-") || p.isKeyword("ou")
}

// isMultiplicativeOp deliberately omits '/': the grammar recognizes only
// '*', 'div', 'mod' and 'et' in Terme position even though the scanner
// produces a dedicated token for '/'.
func (p *Parser) isMultiplicativeOp() bool {
	return p.isSymbol("*") || p.isKeyword("div") || p.isKeyword("mod") || p.isKeyword("et")
}

// Grammar productions. One method per non-terminal.

func (p *Parser) parseProgramme() {
	p.rule("ProgrammePascal -> programme NomProgramme ; Corps .")
	p.expect(KindKeyword, "programme")
	p.parseNomProgramme()
	p.expect(KindSymbol, ";")
	p.parseCorps()
	p.expect(KindSymbol, ".")
}

func (p *Parser) parseCorps() {
	p.rule("Corps -> [PartieDéfinitionConstante] [PartieDéfinitionVariable] InstrComp")
	if p.isKeyword("constante") {
		p.parsePartieDefinitionConstante()
	}
	if p.isKeyword("variable") {
		p.parsePartieDefinitionVariable()
	}
	p.parseInstrComp()
}

func (p *Parser) parsePartieDefinitionConstante() {
	p.rule("PartieDéfinitionConstante -> constante DéfinitionConstante {DéfinitionConstante}")
	p.expect(KindKeyword, "constante")
	p.parseDefinitionConstante()
	for p.isIdent() {
		p.parseDefinitionConstante()
	}
}

func (p *Parser) parseDefinitionConstante() {
	p.rule("DéfinitionConstante -> NomConstante = Constante ;")
	p.parseNomConstante()
	p.expect(KindSymbol, "=")
	p.parseConstante()
	p.expect(KindSymbol, ";")
}

func (p *Parser) parsePartieDefinitionVariable() {
	p.rule("PartieDéfinitionVariable -> variable DéfinitionVariable {DéfinitionVariable}")
	p.expect(KindKeyword, "variable")
	p.parseDefinitionVariable()
	for p.isIdent() {
		p.parseDefinitionVariable()
	}
}

func (p *Parser) parseDefinitionVariable() {
	p.rule("DéfinitionVariable -> NomVariable {, NomVariable} : Type ;")
	p.parseNomVariable()
	for p.isSymbol(",") {
		p.advance()
		p.parseNomVariable()
	}
	p.expect(KindSymbol, ":")
	p.parseType()
	p.expect(KindSymbol, ";")
}

func (p *Parser) parseType() {
	switch {
	case p.isKeyword("entier"):
		p.rule("Type -> entier")
		p.advance()
	case p.isKeyword("reel"):
		p.rule("Type -> reel")
		p.advance()
	default:
		p.errorf("type attendu (entier ou reel)")
		p.advance()
	}
}

func (p *Parser) parseNomProgramme() {
	p.rule("NomProgramme -> ID")
	if !p.matchKind(KindIdent) {
		p.errorf("identificateur attendu pour le nom du programme")
	}
}

func (p *Parser) parseNomConstante() {
	p.rule("NomConstante -> ID")
	if !p.matchKind(KindIdent) {
		p.errorf("identificateur attendu pour le nom de constante")
	}
}

func (p *Parser) parseNomVariable() {
	p.rule("NomVariable -> ID")
	if !p.matchKind(KindIdent) {
		p.errorf("identificateur attendu pour le nom de variable")
	}
}

func (p *Parser) parseConstante() {
	if p.isNumber() || p.isIdent() {
		p.rule(fmt.Sprintf("Constante -> %s", p.current.Lexeme))
		p.advance()
		return
	}
	p.errorf("constante attendue (nombre ou identificateur)")
	p.advance()
}

func (p *Parser) parseInstrComp() {
	p.rule("InstrComp -> debut Instruction { ; Instruction } fin")
	p.expect(KindKeyword, "debut")
	p.parseInstruction()
	for p.isSymbol(";") {
		p.advance()
		p.parseInstruction()
	}
	p.expect(KindKeyword, "fin")
}

func (p *Parser) parseInstruction() {
	switch {
	case p.isIdent():
		p.rule("Instruction -> InstructionAffectation")
		p.parseAffectation()
	case p.isKeyword("si"):
		p.rule("Instruction -> InstructionSi")
		p.parseSi()
	case p.isKeyword("tantque"):
		p.rule("Instruction -> InstructionTantque")
		p.parseTantque()
	case p.isKeyword("repeter"):
		p.rule("Instruction -> InstructionRepeter")
		p.parseRepeter()
	case p.isKeyword("debut"):
		p.rule("Instruction -> InstrComp")
		p.parseInstrComp()
	case p.isKeyword("pour"):
		p.rule("Instruction -> InstructionPour")
		p.parsePour()
	default:
		// zero-width derivation, still traced
		p.rule("Instruction -> Vide")
	}
}

func (p *Parser) parseAffectation() {
	p.rule("InstructionAffectation -> NomVariable := Expression")
	p.parseNomVariable()
	p.expect(KindSymbol, ":=")
	p.parseExpression()
}

func (p *Parser) parseExpression() {
	p.rule("Expression -> ExpressionSimple [OperateurRelationnel ExpressionSimple]")
	p.parseExpressionSimple()
	if p.isRelationalOp() {
		p.parseOperateurRelationnel()
		p.parseExpressionSimple()
	}
}

func (p *Parser) parseOperateurRelationnel() {
	p.rule(fmt.Sprintf("OperateurRelationnel -> %s", p.current.Lexeme))
	p.advance()
}

func (p *Parser) parseExpressionSimple() {
	p.rule("ExpressionSimple -> [OperateurSigne] Terme {OperateurAddition Terme}")
	if p.isSymbol("+") || p.isSymbol("-") {
		p.rule(fmt.Sprintf("OperateurSigne -> %s", p.current.Lexeme))
		p.advance()
	}
	p.parseTerme()
	for p.isAdditiveOp() {
		p.parseOperateurAddition()
		p.parseTerme()
	}
}

func (p *Parser) parseOperateurAddition() {
	p.rule(fmt.Sprintf("OperateurAddition -> %s", p.current.Lexeme))
	p.advance()
}

func (p *Parser) parseTerme() {
	p.rule("Terme -> Facteur {OperateurMult Facteur}")
	p.parseFacteur()
	for p.isMultiplicativeOp() {
		p.parseOperateurMult()
		p.parseFacteur()
	}
}

func (p *Parser) parseOperateurMult() {
	p.rule(fmt.Sprintf("OperateurMult -> %s", p.current.Lexeme))
	p.advance()
}

func (p *Parser) parseFacteur() {
	switch {
	case p.isSymbol("("):
		p.rule("Facteur -> ( Expression )")
		p.advance()
		p.parseExpression()
		p.expect(KindSymbol, ")")
	case p.isNumber():
		p.rule("Facteur -> Constante")
		p.parseConstante()
	case p.isIdent():
		p.rule("Facteur -> Constante | NomVariable")
		p.parseConstante()
	default:
		p.errorf("facteur attendu (nombre, identifiant ou '('), trouvé '%s'", p.current.Lexeme)
		p.advance()
	}
}

func (p *Parser) parseSi() {
	p.rule("InstructionSi -> si Expression alors Instruction [sinon Instruction]")
	p.expect(KindKeyword, "si")
	p.parseExpression()
	p.expect(KindKeyword, "alors")
	p.parseInstruction()
	if p.isKeyword("sinon") {
		p.advance()
		p.parseInstruction()
	}
}

func (p *Parser) parseTantque() {
	p.rule("InstructionTantque -> tantque Expression faire Instruction")
	p.expect(KindKeyword, "tantque")
	p.parseExpression()
	p.expect(KindKeyword, "faire")
	p.parseInstruction()
}

func (p *Parser) parseRepeter() {
	p.rule("InstructionRepeter -> repeter Instruction jusqua Expression")
	p.expect(KindKeyword, "repeter")
	p.parseInstruction()
	p.expect(KindKeyword, "jusqua")
	p.parseExpression()
}

func (p *Parser) parsePour() {
	p.rule("InstructionPour -> pour NomVariable allant de Constante a Constante [pas Constante] faire Instruction")
	p.expect(KindKeyword, "pour")
	p.parseNomVariable()
	p.expect(KindKeyword, "allant")
	p.expect(KindKeyword, "de")
	p.parseConstante()
	p.expect(KindKeyword, "a")
	p.parseConstante()
	if p.isKeyword("pas") {
		p.advance()
		p.parseConstante()
	}
	p.expect(KindKeyword, "faire")
	p.parseInstruction()
}
