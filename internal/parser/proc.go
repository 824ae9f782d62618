package parser

import (
	"strconv"
	"strings"

	"git.home.luguber.info/inful/markup/internal/ast"
)

// procSpan matches "<% clause %>".
func (s *state) procSpan() (ast.Node, bool) {
	start := s.pos
	if !s.lit("<%") {
		return nil, false
	}
	n, ok := s.clause()
	if !ok || !s.token("%>") {
		s.unterminated(start, start+2, "<%", "%>")
		return nil, false
	}
	return n, true
}

// filterInline matches "<%| clause %>body<%|%>". A line ending directly after
// the opening or directly before the closing marker is not part of the body.
func (s *state) filterInline(bool) (ast.Node, bool) {
	start := s.pos
	if !s.lit("<%|") {
		return nil, false
	}
	clause, ok := s.filterClause()
	if !ok || !s.token("%>") {
		return nil, false
	}
	s.eol()
	body, ok := s.until("<%|%>")
	if !ok {
		s.unterminated(start, s.pos, "<%|", "<%|%>")
		return nil, false
	}
	body = trimEOL(body)
	return ast.FuncFilter{Clause: clause, Content: body}, true
}

func trimEOL(v string) string {
	switch {
	case strings.HasSuffix(v, "\r\n"):
		return v[:len(v)-2]
	case strings.HasSuffix(v, "\n"), strings.HasSuffix(v, "\r"):
		return v[:len(v)-1]
	}
	return v
}

// clause matches one procedural statement.
func (s *state) clause() (ast.Node, bool) {
	if !s.enter() {
		return nil, false
	}
	defer s.leave()

	alternatives := [...]func() (ast.Node, bool){
		s.setClause,
		s.evalIfClause,
		s.ifClause,
		s.forClause,
		s.includeClause,
		s.expr,
	}
	for _, alt := range alternatives {
		mark := s.pos
		if n, ok := alt(); ok {
			return n, true
		}
		s.reset(mark)
		if s.err != nil {
			break
		}
	}
	return nil, false
}

// setClause matches "[SET] name = expr".
func (s *state) setClause() (ast.Node, bool) {
	mark := s.pos
	if s.kw("SET") {
		if n, ok := s.assignment(); ok {
			return n, true
		}
		s.reset(mark)
	}
	return s.assignment()
}

func (s *state) assignment() (ast.Node, bool) {
	s.skipSpace()
	name, ok := s.identifier()
	if !ok || !s.token("=") {
		return nil, false
	}
	value, ok := s.expr()
	if !ok {
		return nil, false
	}
	return ast.FuncSet{Name: name, Value: value}, true
}

// branches matches "%% a %% [ELSE %% b %%] end" using body for a and b.
// The missing ELSE branch is Null.
func (s *state) branches(body func() (ast.Node, bool), end string) (ifTrue, ifFalse ast.Node, ok bool) {
	if !s.token("%%") {
		return nil, nil, false
	}
	if ifTrue, ok = body(); !ok || !s.token("%%") {
		return nil, nil, false
	}
	ifFalse = ast.Null{}
	mark := s.pos
	if s.kw("ELSE") && s.token("%%") {
		if n, ok := body(); ok && s.token("%%") {
			ifFalse = n
		} else {
			s.reset(mark)
		}
	} else {
		s.reset(mark)
	}
	if !s.kw(end) {
		return nil, nil, false
	}
	return ifTrue, ifFalse, true
}

// evalIfClause is IF with single clauses as branches.
func (s *state) evalIfClause() (ast.Node, bool) {
	if !s.kw("EVALIF") {
		return nil, false
	}
	cond, ok := s.expr()
	if !ok {
		return nil, false
	}
	ifTrue, ifFalse, ok := s.branches(s.clause, "ENDIF")
	if !ok {
		return nil, false
	}
	return ast.FuncIf{Condition: cond, IfTrue: ifTrue, IfFalse: ifFalse}, true
}

func (s *state) ifClause() (ast.Node, bool) {
	if !s.kw("IF") {
		return nil, false
	}
	cond, ok := s.expr()
	if !ok {
		return nil, false
	}
	ifTrue, ifFalse, ok := s.branches(s.body, "ENDIF")
	if !ok {
		return nil, false
	}
	return ast.FuncIf{Condition: cond, IfTrue: ifTrue, IfFalse: ifFalse}, true
}

func (s *state) forClause() (ast.Node, bool) {
	if !s.kw("FOR") {
		return nil, false
	}
	s.skipSpace()
	name, ok := s.identifier()
	if !ok || !s.token("=") {
		return nil, false
	}
	arg, ok := s.expr()
	if !ok || !s.token("%%") {
		return nil, false
	}
	body, _ := s.body()
	if !s.token("%%") || !s.kw("ENDFOR") {
		return nil, false
	}
	return ast.FuncFor{Name: name, Arg: arg, Body: body}, true
}

// body is a nested document between "%%" markers. It may be empty.
func (s *state) body() (ast.Node, bool) {
	s.skipSpace()
	return s.document(), true
}

func (s *state) includeClause() (ast.Node, bool) {
	if !s.kw("INCLUDE") {
		return nil, false
	}
	s.skipSpace()
	name, ok := s.identifier()
	if !ok {
		return nil, false
	}
	return ast.FuncCall{Name: "include", Args: ast.NodeList{ast.FuncTemplate{Name: name}}}, true
}

// filterClause matches "SET name", "TEMPLATE name" or a call.
func (s *state) filterClause() (ast.Node, bool) {
	mark := s.pos
	if s.kw("SET") {
		s.skipSpace()
		if name, ok := s.identifier(); ok {
			return ast.FuncVariable{Name: name}, true
		}
	}
	s.reset(mark)
	if s.kw("TEMPLATE") {
		s.skipSpace()
		if name, ok := s.identifier(); ok {
			return ast.FuncTemplate{Name: name}, true
		}
	}
	s.reset(mark)
	s.skipSpace()
	return s.call()
}

// expr matches atoms joined by '+'. A single atom is returned as is.
func (s *state) expr() (ast.Node, bool) {
	if !s.enter() {
		return nil, false
	}
	defer s.leave()

	first, ok := s.atom()
	if !ok {
		return nil, false
	}
	seq := ast.FuncExpr{first}
	for {
		mark := s.pos
		if !s.token("+") {
			break
		}
		next, ok := s.atom()
		if !ok {
			s.reset(mark)
			break
		}
		seq = append(seq, ast.Text{Value: "+"}, next)
	}
	if len(seq) == 1 {
		return first, true
	}
	return seq, true
}

func (s *state) atom() (ast.Node, bool) {
	if !s.enter() {
		return nil, false
	}
	defer s.leave()

	s.skipSpace()
	alternatives := [...]func() (ast.Node, bool){
		s.bracket,
		s.call,
		s.stringLiteral,
		s.realLiteral,
		s.integerLiteral,
		s.variable,
	}
	for _, alt := range alternatives {
		mark := s.pos
		if n, ok := alt(); ok {
			return n, true
		}
		s.reset(mark)
		if s.err != nil {
			break
		}
	}
	return nil, false
}

func (s *state) bracket() (ast.Node, bool) {
	if !s.char('(') {
		return nil, false
	}
	n, ok := s.expr()
	if !ok || !s.token(")") {
		return nil, false
	}
	return n, true
}

// call matches "name(expr, ...)".
func (s *state) call() (ast.Node, bool) {
	name, ok := s.identifier()
	if !ok || !s.token("(") {
		return nil, false
	}
	args := ast.NodeList{}
	if arg, ok := s.expr(); ok {
		args = append(args, arg)
		for {
			mark := s.pos
			if !s.token(",") {
				break
			}
			arg, ok := s.expr()
			if !ok {
				s.reset(mark)
				break
			}
			args = append(args, arg)
		}
	}
	if !s.token(")") {
		return nil, false
	}
	return ast.FuncCall{Name: name, Args: args}, true
}

func (s *state) stringLiteral() (ast.Node, bool) {
	open := s.pos
	if !s.char('"') {
		return nil, false
	}
	var sb strings.Builder
	for !s.eof() {
		switch {
		case s.lit(`\"`):
			sb.WriteByte('"')
		case s.char('"'):
			return ast.FuncString{Value: sb.String()}, true
		default:
			sb.WriteByte(s.peek())
			s.pos++
		}
	}
	s.unterminated(open, open+1, `"`, `"`)
	return nil, false
}

func (s *state) sign() {
	if c := s.peek(); c == '+' || c == '-' {
		s.pos++
	}
}

func (s *state) digits() int {
	n := 0
	for !s.eof() && isDigit(s.peek()) {
		s.pos++
		n++
	}
	return n
}

// realLiteral requires a decimal point: "1.", "1.5", ".5", with an optional
// exponent.
func (s *state) realLiteral() (ast.Node, bool) {
	start := s.pos
	s.sign()
	whole := s.digits()
	if !s.char('.') {
		return nil, false
	}
	if frac := s.digits(); whole == 0 && frac == 0 {
		return nil, false
	}
	if c := s.peek(); c == 'e' || c == 'E' {
		mark := s.pos
		s.pos++
		s.sign()
		if s.digits() == 0 {
			s.pos = mark
		}
	}
	v, err := strconv.ParseFloat(s.src[start:s.pos], 64)
	if err != nil {
		return nil, false
	}
	return ast.FuncDouble{Value: v}, true
}

func (s *state) integerLiteral() (ast.Node, bool) {
	start := s.pos
	s.sign()
	if s.digits() == 0 {
		return nil, false
	}
	v, err := strconv.ParseInt(s.src[start:s.pos], 10, 64)
	if err != nil {
		return nil, false
	}
	return ast.FuncInteger{Value: v}, true
}

func (s *state) variable() (ast.Node, bool) {
	name, ok := s.identifier()
	if !ok {
		return nil, false
	}
	return ast.FuncVariable{Name: name}, true
}
