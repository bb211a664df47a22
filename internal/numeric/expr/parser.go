package expr

// parser is a recursive-descent parser over the token stream.
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := ('+' | '-') unary | power
//	power   := primary (('**' | '^') unary)?
//	primary := number | name | name '(' expr ')' | '(' expr ')'
type parser struct {
	src  string
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, syntaxError(p.src, t.pos, "expected %s, found %s", kind, describe(t))
	}
	return t, nil
}

func (p *parser) parse() (node, error) {
	if p.peek().kind == tokEOF {
		return nil, syntaxError(p.src, 0, "empty expression")
	}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, syntaxError(p.src, t.pos, "unexpected %s", describe(t))
	}
	return n, nil
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokPlus && op != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		switch op {
		case tokStar, tokSlash, tokFloorDiv, tokPercent:
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

func (p *parser) parseUnary() (node, error) {
	switch p.peek().kind {
	case tokMinus:
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{neg: true, operand: operand}, nil
	case tokPlus:
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

// parsePower binds tighter than unary minus on its left and recurses through
// parseUnary on its right, which makes it right-associative.
func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokPow {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return binaryNode{op: tokPow, left: base, right: exp}, nil
}

func (p *parser) parsePrimary() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return numberNode{val: t.num}, nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return inner, nil
	case tokIdent:
		return p.parseName(t)
	}
	return nil, syntaxError(p.src, t.pos, "unexpected %s", describe(t))
}

func (p *parser) parseName(t token) (node, error) {
	if fn, ok := functions[t.text]; ok {
		if p.peek().kind != tokLParen {
			return nil, syntaxError(p.src, t.pos, "function %s must be called with one argument", t.text)
		}
		p.next()
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return callNode{name: t.text, fn: fn, arg: arg}, nil
	}

	if p.peek().kind == tokLParen {
		return nil, &Error{Source: p.src, Pos: t.pos, Msg: "function " + t.text + " is not allowed", Err: ErrUnknownIdentifier}
	}
	if t.text == Variable {
		return varNode{}, nil
	}
	if v, ok := constants[t.text]; ok {
		return numberNode{val: v}, nil
	}
	return nil, &Error{Source: p.src, Pos: t.pos, Msg: "name " + t.text + " is not defined", Err: ErrUnknownIdentifier}
}

func describe(t token) string {
	switch t.kind {
	case tokNumber, tokIdent:
		return t.kind.String() + " " + t.text
	}
	return t.kind.String()
}
