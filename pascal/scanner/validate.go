package scanner

// Validate checks program-level shape on the completed token sequence:
// header, body delimiters, trailing terminator and paired-keyword balance.
// It runs independently of grammar parsing and appends its findings to the
// scanner's error list.
func (s *Scanner) Validate() {
	if len(s.tokens) == 0 {
		return
	}

	first := s.tokens[0]
	if first.Kind != TokenProgramme {
		s.addError("Le programme doit commencer par 'programme'", first.Line, first.Column)
	}

	if len(s.tokens) >= 3 {
		if s.tokens[1].Kind != TokenID {
			s.addError("Un identificateur est attendu après 'programme'",
				s.tokens[1].Line, s.tokens[1].Column)
		}
		if s.tokens[2].Kind != TokenPointVirgule {
			s.addError("';' est attendu après le nom du programme",
				s.tokens[2].Line, s.tokens[2].Column)
		}
	}

	last := s.tokens[len(s.tokens)-1]
	if !s.containsKind(TokenDebut) {
		s.addError("'debut' est manquant", last.Line, last.Column)
	}
	if !s.containsKind(TokenFin) {
		s.addError("'fin' est manquant", last.Line, last.Column)
	}

	if len(s.tokens) >= 2 {
		beforeEOF := s.tokens[len(s.tokens)-2]
		if beforeEOF.Kind != TokenPoint {
			s.addError("Le programme doit se terminer par '.'", beforeEOF.Line, beforeEOF.Column)
		}
	}

	s.validatePairedKeywords()
}

func (s *Scanner) containsKind(kind TokenKind) bool {
	for _, t := range s.tokens {
		if t.Kind == kind {
			return true
		}
	}
	return false
}

// validatePairedKeywords matches si/alors and repeter/jusqua with two
// independent stacks. A closer with an empty stack is reported immediately;
// leftover openers are reported innermost-first at their own positions.
func (s *Scanner) validatePairedKeywords() {
	var siStack, repeterStack []Token

	for _, tok := range s.tokens {
		switch tok.Kind {
		case TokenSi:
			siStack = append(siStack, tok)
		case TokenAlors:
			if len(siStack) == 0 {
				s.addError("'alors' sans 'si'", tok.Line, tok.Column)
			} else {
				siStack = siStack[:len(siStack)-1]
			}
		case TokenRepeter:
			repeterStack = append(repeterStack, tok)
		case TokenJusqua:
			if len(repeterStack) == 0 {
				s.addError("'jusqua' sans 'repeter'", tok.Line, tok.Column)
			} else {
				repeterStack = repeterStack[:len(repeterStack)-1]
			}
		}
	}

	for i := len(siStack) - 1; i >= 0; i-- {
		s.addError("'si' sans 'alors'", siStack[i].Line, siStack[i].Column)
	}
	for i := len(repeterStack) - 1; i >= 0; i-- {
		s.addError("'repeter' sans 'jusqua'", repeterStack[i].Line, repeterStack[i].Column)
	}
}
