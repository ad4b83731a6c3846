package parser

// Implements the recursive-descent reader for the language:
//
//   expr  := "'" expr | "(" expr* ")" | atom
//   atom  := maximal run of non-whitespace, non-( non-) non-' bytes
//
// There is no separate token stream: the grammar has exactly three
// delimiter characters, so atoms are scanned in place. An atom whose
// first character is a digit (or a '-' followed by at least one digit)
// and whose remaining characters are all digits is an Integer; every
// other atom is a Symbol. A lone "-" is a Symbol.

import "minilisp/symbol"

type parser struct {
	src    string
	pos    int
	intern func(string) string // nil: symbols reference src directly
}

// Parse reads one expression from src. Symbols in the result reference
// src itself, so the result is only valid while src is. Input after
// the first complete expression is ignored.
func Parse(src string) (SExpr, error) {
	p := &parser{src: src}
	return p.parseExpr()
}

// ParseInterned is Parse with every symbol canonicalized through tab.
// The result does not reference src and stays valid until the next
// tab.Clear. Use this whenever the source buffer may be reused.
func ParseInterned(src string, tab *symbol.Table) (SExpr, error) {
	p := &parser{src: src, intern: tab.Intern}
	return p.parseExpr()
}

// =====
// utils
// =====

func (p *parser) isAtEnd() bool { return p.pos >= len(p.src) }
func (p *parser) peek() byte    { return p.src[p.pos] }
func (p *parser) advance()      { p.pos++ }

func (p *parser) skipWhitespace() {
	for !p.isAtEnd() && isWhiteSpace(p.peek()) {
		p.advance()
	}
}

func (p *parser) symbol(text string) Symbol {
	if p.intern != nil {
		return Symbol(p.intern(text))
	}
	return Symbol(text)
}

// =======
// parsing
// =======

func (p *parser) parseExpr() (SExpr, error) {
	p.skipWhitespace()
	if p.isAtEnd() {
		return nil, p.error("unexpected end of input")
	}
	switch p.peek() {
	case '\'':
		p.advance()
		quoted, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return List{p.symbol("quote"), quoted}, nil
	case '(':
		return p.parseList()
	default:
		return p.parseAtom()
	}
}

func (p *parser) parseList() (SExpr, error) {
	p.advance() // eat '('
	list := List{}
	for {
		p.skipWhitespace()
		if p.isAtEnd() {
			return nil, p.error("unterminated list")
		}
		if p.peek() == ')' {
			p.advance() // eat ')'
			return list, nil
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
	}
}

func (p *parser) parseAtom() (SExpr, error) {
	start := p.pos
	for !p.isAtEnd() && !isDelimiter(p.peek()) {
		p.advance()
	}
	if p.pos == start {
		return nil, p.error("empty atom")
	}
	tok := p.src[start:p.pos]
	if isNumeral(tok) {
		n, err := p.parseInt(tok)
		if err != nil {
			return nil, err
		}
		return Integer(n), nil
	}
	return p.symbol(tok), nil
}

// isNumeral implements numeral detection on a complete atom token.
// "12ab" and "--1" are symbols, not malformed numbers.
func isNumeral(tok string) bool {
	body := tok
	if tok[0] == '-' {
		body = tok[1:]
	} else if !isDigit(tok[0]) {
		return false
	}
	if body == "" {
		// a lone "-" is a symbol
		return false
	}
	for i := 0; i < len(body); i++ {
		if !isDigit(body[i]) {
			return false
		}
	}
	return true
}

// parseInt converts a token that already passed isNumeral. The
// non-digit check is unreachable from parseAtom but is kept as the
// grammar's malformed-numeral assertion. Overflow wraps.
func (p *parser) parseInt(tok string) (int64, error) {
	s := tok
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var res int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isDigit(c) {
			return 0, p.error("malformed numeral %q", tok)
		}
		res = res*10 + int64(c-'0')
	}
	if neg {
		res = -res
	}
	return res, nil
}

func isWhiteSpace(ch byte) bool { return ch == ' ' || ch == '\t' || ch == '\n' }
func isDelimiter(ch byte) bool  { return isWhiteSpace(ch) || ch == '(' || ch == ')' || ch == '\'' }
func isDigit(ch byte) bool      { return '0' <= ch && ch <= '9' }
