package shrimply

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parser is an explicit-stack, non-recursive parser: instead of Go
// functions calling each other to parse nested grammar productions, it
// drives a stack of frame values. Each frame's step method looks at
// the parser's current lookahead token and either consumes it (and
// perhaps pushes child frames to parse a nested production) or leaves
// it for whichever frame is now on top after a pop. Pending productions
// live in heap-allocated frames, not on the host call stack. Completion
// is not stack-free, though: when an expression fills the last operand
// of its parent (the right operand of a binary operator, the operand
// of '!', the last branch of '?'), the parent's onDone callback runs as
// a nested Go call, so finishing a right-nested chain of such operators
// uses host stack in proportion to the chain's length.
type Parser struct {
	lex   *Lexer
	tok   Token
	stack []frame
}

// frame is one pending parse obligation on the parser's stack.
type frame interface {
	step(p *Parser) error
}

func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex}
}

// ParseSource lexes and parses a whole file in one call.
func ParseSource(filename string, src []byte) (*Root, error) {
	lex, err := NewLexer(filename, src)
	if err != nil {
		return nil, err
	}
	return NewParser(lex).Parse()
}

// Parse drives the frame stack to completion and returns the Root.
func (p *Parser) Parse() (*Root, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	root := &Root{}
	p.push(&rootFrame{root: root})
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		if err := top.step(p); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func (p *Parser) push(f frame) { p.stack = append(p.stack, f) }
func (p *Parser) pop()         { p.stack = p.stack[:len(p.stack)-1] }

// advance fetches the next non-comment token into p.tok. Comments are
// discarded here rather than in every frame that would otherwise have
// to skip past them.
func (p *Parser) advance() error {
	for {
		tok, err := p.lex.Next()
		if err != nil {
			return err
		}
		if tok.Type == TokComment {
			continue
		}
		p.tok = tok
		return nil
	}
}

func (p *Parser) syntaxErrorf(format string, args ...any) error {
	return &SyntaxError{
		Message:  fmt.Sprintf(format, args...),
		Position: p.tok.Position,
		Filename: p.lex.filename,
	}
}

// expect consumes p.tok if it matches tt, else fails with msg.
func (p *Parser) expect(tt TokenType, msg string) error {
	if p.tok.Type != tt {
		return p.syntaxErrorf(msg)
	}
	return p.advance()
}

// rootFrame corresponds to the ROOT state: it never pops itself except
// on end of file, and dispatches each top-level item.
type rootFrame struct {
	root *Root
}

func (f *rootFrame) step(p *Parser) error {
	switch p.tok.Type {
	case TokEOF:
		p.pop()
		return nil
	case TokUse:
		if err := p.advance(); err != nil {
			return err
		}
		p.push(&pathFrame{onDone: func(path *Path) {
			p.push(&expectFrame{tt: TokSemicolon, msg: "expected ';' after use path", then: func() {
				f.root.Items = append(f.root.Items, &Use{Pos: path.Pos, Module: path})
			}})
		}})
		return nil
	case TokColonEq:
		pos := p.tok.Position
		if err := p.advance(); err != nil {
			return err
		}
		p.push(&declarationFrame{pos: pos, onDone: func(d *Declaration) {
			f.root.Items = append(f.root.Items, d)
		}})
		return nil
	case TokFn:
		pos := p.tok.Position
		if err := p.advance(); err != nil {
			return err
		}
		p.push(&functionFrame{pos: pos, onDone: func(fn *Function) {
			f.root.Items = append(f.root.Items, fn)
		}})
		return nil
	default:
		return p.syntaxErrorf("expected 'use', ':=', 'fn', or end of file")
	}
}

// expectFrame consumes a single required token then runs a callback.
// A handful of productions (use's trailing ';') need nothing more.
type expectFrame struct {
	tt   TokenType
	msg  string
	then func()
}

func (f *expectFrame) step(p *Parser) error {
	if err := p.expect(f.tt, f.msg); err != nil {
		return err
	}
	p.pop()
	if f.then != nil {
		f.then()
	}
	return nil
}

// pathFrame parses IDENT (:: IDENT)*, states PATH_IDENT/PATH_SCOPE_OR_END.
type pathFrame struct {
	path         *Path
	expectMember bool
	onDone       func(*Path)
}

func (f *pathFrame) step(p *Parser) error {
	if f.path == nil {
		f.path = &Path{Pos: p.tok.Position}
		f.expectMember = true
	}
	if f.expectMember {
		if p.tok.Type != TokIdentifier {
			return p.syntaxErrorf("expected identifier in path")
		}
		f.path.Members = append(f.path.Members, p.tok.Span)
		if err := p.advance(); err != nil {
			return err
		}
		f.expectMember = false
		return nil
	}
	if p.tok.Type == TokColonColon {
		if err := p.advance(); err != nil {
			return err
		}
		f.expectMember = true
		return nil
	}
	p.pop()
	f.onDone(f.path)
	return nil
}

// declarationFrame parses IDENT expr ';' after a leading ':=' has
// already been consumed by the caller. Used both for GLOBAL_DECLARATION
// (from rootFrame) and for a local declaration statement.
type declarationFrame struct {
	pos       Position
	name      string
	haveName  bool
	value     Expression
	haveValue bool
	onDone    func(*Declaration)
}

func (f *declarationFrame) step(p *Parser) error {
	if !f.haveName {
		if p.tok.Type != TokIdentifier {
			return p.syntaxErrorf("expected identifier after ':='")
		}
		f.name = p.tok.Span
		f.haveName = true
		return p.advance()
	}
	if !f.haveValue {
		p.push(&exprFrame{onDone: func(e Expression) {
			f.value = e
			f.haveValue = true
		}})
		return nil
	}
	if err := p.expect(TokSemicolon, "expected ';' after declaration"); err != nil {
		return err
	}
	p.pop()
	f.onDone(&Declaration{Pos: f.pos, Name: f.name, Value: f.value})
	return nil
}

// functionFrame parses NAME ( args ) body after 'fn' has been consumed.
type functionFrame struct {
	pos           Position
	name          string
	haveName      bool
	haveLParen    bool
	args          []string
	haveArgsClose bool
	body          Statement
	haveBody      bool
	onDone        func(*Function)
}

func (f *functionFrame) step(p *Parser) error {
	if !f.haveName {
		if p.tok.Type != TokIdentifier {
			return p.syntaxErrorf("expected function name")
		}
		f.name = p.tok.Span
		f.haveName = true
		return p.advance()
	}
	if !f.haveLParen {
		if err := p.expect(TokLParen, "expected '(' after function name"); err != nil {
			return err
		}
		f.haveLParen = true
		return nil
	}
	if !f.haveArgsClose {
		if p.tok.Type == TokRParen {
			f.haveArgsClose = true
			return p.advance()
		}
		if len(f.args) > 0 {
			if err := p.expect(TokComma, "expected ',' or ')' in argument list"); err != nil {
				return err
			}
		}
		if p.tok.Type != TokIdentifier {
			return p.syntaxErrorf("expected argument name")
		}
		f.args = append(f.args, p.tok.Span)
		return p.advance()
	}
	if !f.haveBody {
		p.push(&statementFrame{onDone: func(s Statement) {
			f.body = s
			f.haveBody = true
		}})
		return nil
	}
	p.pop()
	f.onDone(&Function{Pos: f.pos, Name: f.name, Arguments: f.args, Body: f.body})
	return nil
}

// statementFrame dispatches on the leading token of a statement. Used
// wherever the grammar calls for a single Statement: block bodies,
// if/else branches, loop bodies, try/recover branches, function bodies.
type statementFrame struct {
	onDone func(Statement)
}

func (f *statementFrame) step(p *Parser) error {
	tok := p.tok
	switch tok.Type {
	case TokLBrace:
		p.pop()
		p.push(&blockFrame{pos: tok.Position, onDone: func(b *Block) { f.onDone(b) }})
		return nil
	case TokIf:
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		p.push(&ifElseFrame{pos: tok.Position, onDone: f.onDone})
		return nil
	case TokLoop:
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		p.push(&loopFrame{pos: tok.Position, onDone: f.onDone})
		return nil
	case TokTry:
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		p.push(&tryRecoverFrame{pos: tok.Position, onDone: f.onDone})
		return nil
	case TokBreak:
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.expect(TokSemicolon, "expected ';' after break"); err != nil {
			return err
		}
		f.onDone(&Break{Pos: tok.Position})
		return nil
	case TokContinue:
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		if err := p.expect(TokSemicolon, "expected ';' after continue"); err != nil {
			return err
		}
		f.onDone(&Continue{Pos: tok.Position})
		return nil
	case TokReturn:
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		p.push(&returnFrame{pos: tok.Position, onDone: f.onDone})
		return nil
	case TokColonEq:
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		p.push(&declarationFrame{pos: tok.Position, onDone: func(d *Declaration) { f.onDone(d) }})
		return nil
	default:
		p.pop()
		p.push(&exprStatementFrame{pos: tok.Position, onDone: f.onDone})
		return nil
	}
}

type exprStatementFrame struct {
	pos      Position
	expr     Expression
	haveExpr bool
	onDone   func(Statement)
}

func (f *exprStatementFrame) step(p *Parser) error {
	if !f.haveExpr {
		p.push(&exprFrame{onDone: func(e Expression) {
			f.expr = e
			f.haveExpr = true
		}})
		return nil
	}
	if err := p.expect(TokSemicolon, "expected ';' after expression statement"); err != nil {
		return err
	}
	p.pop()
	f.onDone(&ExpressionStatement{Pos: f.pos, Expr: f.expr})
	return nil
}

type blockFrame struct {
	pos    Position
	block  *Block
	onDone func(*Block)
}

func (f *blockFrame) step(p *Parser) error {
	if f.block == nil {
		if err := p.expect(TokLBrace, "expected '{'"); err != nil {
			return err
		}
		f.block = &Block{Pos: f.pos}
		return nil
	}
	if p.tok.Type == TokRBrace {
		if err := p.advance(); err != nil {
			return err
		}
		p.pop()
		f.onDone(f.block)
		return nil
	}
	p.push(&statementFrame{onDone: func(s Statement) {
		f.block.Statements = append(f.block.Statements, s)
	}})
	return nil
}

// ifElseFrame parses predicate trueStmt (else falseStmt)? after 'if'
// has been consumed.
type ifElseFrame struct {
	pos         Position
	ie          *IfElse
	havePred    bool
	haveTrue    bool
	checkedElse bool
	onDone      func(Statement)
}

func (f *ifElseFrame) step(p *Parser) error {
	if f.ie == nil {
		f.ie = &IfElse{Pos: f.pos}
	}
	if !f.havePred {
		p.push(&exprFrame{onDone: func(e Expression) {
			f.ie.Predicate = e
			f.havePred = true
		}})
		return nil
	}
	if !f.haveTrue {
		p.push(&statementFrame{onDone: func(s Statement) {
			f.ie.TruePath = s
			f.haveTrue = true
		}})
		return nil
	}
	if !f.checkedElse {
		f.checkedElse = true
		if p.tok.Type == TokElse {
			if err := p.advance(); err != nil {
				return err
			}
			p.push(&statementFrame{onDone: func(s Statement) {
				f.ie.FalsePath = s
			}})
		}
		return nil
	}
	p.pop()
	f.onDone(f.ie)
	return nil
}

type loopFrame struct {
	pos      Position
	body     Statement
	haveBody bool
	onDone   func(Statement)
}

func (f *loopFrame) step(p *Parser) error {
	if !f.haveBody {
		p.push(&statementFrame{onDone: func(s Statement) {
			f.body = s
			f.haveBody = true
		}})
		return nil
	}
	p.pop()
	f.onDone(&Loop{Pos: f.pos, Body: f.body})
	return nil
}

// tryRecoverFrame parses happyStmt 'recover' bindingPath sadStmt after
// 'try' has been consumed.
type tryRecoverFrame struct {
	pos           Position
	happy         Statement
	haveHappy     bool
	haveRecoverKw bool
	binding       *Path
	haveBinding   bool
	sad           Statement
	haveSad       bool
	onDone        func(Statement)
}

func (f *tryRecoverFrame) step(p *Parser) error {
	if !f.haveHappy {
		p.push(&statementFrame{onDone: func(s Statement) {
			f.happy = s
			f.haveHappy = true
		}})
		return nil
	}
	if !f.haveRecoverKw {
		if err := p.expect(TokRecover, "expected 'recover' after try block"); err != nil {
			return err
		}
		f.haveRecoverKw = true
		return nil
	}
	if !f.haveBinding {
		p.push(&pathFrame{onDone: func(path *Path) {
			f.binding = path
			f.haveBinding = true
		}})
		return nil
	}
	if !f.haveSad {
		p.push(&statementFrame{onDone: func(s Statement) {
			f.sad = s
			f.haveSad = true
		}})
		return nil
	}
	p.pop()
	f.onDone(&TryRecover{Pos: f.pos, HappyPath: f.happy, Binding: f.binding, SadPath: f.sad})
	return nil
}

// returnFrame parses an optional expression then ';' after 'return'
// has been consumed. A bare 'return;' defaults its value to a Null
// literal at the return statement's own position.
type returnFrame struct {
	pos       Position
	value     Expression
	haveValue bool
	onDone    func(Statement)
}

func (f *returnFrame) step(p *Parser) error {
	if !f.haveValue {
		if p.tok.Type == TokSemicolon {
			f.value = &Literal{Pos: f.pos, Value: Null}
			f.haveValue = true
			return nil
		}
		p.push(&exprFrame{onDone: func(e Expression) {
			f.value = e
			f.haveValue = true
		}})
		return nil
	}
	if err := p.expect(TokSemicolon, "expected ';' after return value"); err != nil {
		return err
	}
	p.pop()
	f.onDone(&Return{Pos: f.pos, Value: f.value})
	return nil
}

// exprFrame is the EXPRESSION dispatcher. Operators are prefix: an
// operator token itself starts the expression and determines how many
// operand sub-expressions follow, so there is no precedence climbing.
type exprFrame struct {
	onDone func(Expression)
}

func (f *exprFrame) step(p *Parser) error {
	tok := p.tok
	switch tok.Type {
	case TokNull:
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		f.onDone(&Literal{Pos: tok.Position, Value: Null})
		return nil
	case TokTrue, TokFalse:
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		f.onDone(&Literal{Pos: tok.Position, Value: Bool(tok.Type == TokTrue)})
		return nil
	case TokInf:
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		f.onDone(&Literal{Pos: tok.Position, Value: Num(math.Inf(1))})
		return nil
	case TokNegInf:
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		f.onDone(&Literal{Pos: tok.Position, Value: Num(math.Inf(-1))})
		return nil
	case TokNaN:
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		f.onDone(&Literal{Pos: tok.Position, Value: Num(math.NaN())})
		return nil
	case TokDecimal:
		v, err := parseDecimalLiteral(tok.Span)
		if err != nil {
			return p.syntaxErrorf("%s", err.Error())
		}
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		f.onDone(&Literal{Pos: tok.Position, Value: v})
		return nil
	case TokHex, TokBin, TokOct:
		v, err := parseBasedLiteral(tok)
		if err != nil {
			return p.syntaxErrorf("%s", err.Error())
		}
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		f.onDone(&Literal{Pos: tok.Position, Value: v})
		return nil
	case TokString:
		s, err := Unescape(tok.Span)
		if err != nil {
			return p.syntaxErrorf("%s", err.Error())
		}
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		f.onDone(&Literal{Pos: tok.Position, Value: Str(s)})
		return nil
	case TokIdentifier:
		p.pop()
		p.push(&pathFrame{onDone: func(path *Path) {
			f.onDone(path)
		}})
		return nil
	case TokLBracket:
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		p.push(&listFrame{pos: tok.Position, onDone: f.onDone})
		return nil
	case TokLParen:
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		p.push(&mapFrame{pos: tok.Position, onDone: f.onDone})
		return nil
	case TokNot:
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		u := &UnaryOp{Pos: tok.Position, Op: "!"}
		p.push(&exprFrame{onDone: func(e Expression) {
			u.Value = e
			f.onDone(u)
		}})
		return nil
	case TokQuestion:
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		t := &Ternary{Pos: tok.Position}
		p.push(&exprFrame{onDone: func(pe Expression) {
			t.Predicate = pe
			p.push(&exprFrame{onDone: func(le Expression) {
				t.LHS = le
				p.push(&exprFrame{onDone: func(re Expression) {
					t.RHS = re
					f.onDone(t)
				}})
			}})
		}})
		return nil
	case TokDollar:
		p.pop()
		if err := p.advance(); err != nil {
			return err
		}
		p.push(&callFrame{pos: tok.Position, onDone: f.onDone})
		return nil
	default:
		if op, ok := binaryOpFor(tok.Type); ok {
			p.pop()
			if err := p.advance(); err != nil {
				return err
			}
			b := &BinaryOp{Pos: tok.Position, Op: op}
			p.push(&exprFrame{onDone: func(le Expression) {
				b.LHS = le
				p.push(&exprFrame{onDone: func(re Expression) {
					b.RHS = re
					f.onDone(b)
				}})
			}})
			return nil
		}
		return p.syntaxErrorf("expected expression, found %s", tok.Type)
	}
}

var binaryOpTokens = map[TokenType]string{
	TokPlus: "+", TokMinus: "-", TokStar: "*", TokSlash: "/", TokPercent: "%",
	TokDot: ".", TokAndAnd: "&&", TokOrOr: "||", TokEq: "==", TokNeq: "!=",
	TokLeq: "<=", TokGeq: ">=", TokAssign: "=", TokAmp: "&", TokPipe: "|",
	TokCaret: "^", TokShl: "<<", TokShr: ">>", TokLAngle: "<", TokRAngle: ">",
}

func binaryOpFor(tt TokenType) (string, bool) {
	op, ok := binaryOpTokens[tt]
	return op, ok
}

func parseDecimalLiteral(span string) (Value, error) {
	if strings.ContainsRune(span, '.') {
		v, err := strconv.ParseFloat(span, 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid number literal %q", span)
		}
		return Num(v), nil
	}
	v, err := strconv.ParseInt(span, 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid integer literal %q", span)
	}
	return Int(v), nil
}

func parseBasedLiteral(tok Token) (Value, error) {
	var base int
	var body string
	switch tok.Type {
	case TokHex:
		base, body = 16, tok.Span[2:]
	case TokBin:
		base, body = 2, tok.Span[2:]
	case TokOct:
		base, body = 8, tok.Span[2:]
	}
	if body == "" {
		return Value{}, fmt.Errorf("empty numeric literal %q", tok.Span)
	}
	v, err := strconv.ParseInt(body, base, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid integer literal %q", tok.Span)
	}
	return Int(v), nil
}

// callFrame parses PATH ( args ) after '$' has been consumed.
type callFrame struct {
	pos    Position
	call   *Call
	stage  int // 0=path, 1=lparen, 2=arg-or-close, 3=comma-or-close
	onDone func(Expression)
}

func (f *callFrame) step(p *Parser) error {
	switch f.stage {
	case 0:
		f.call = &Call{Pos: f.pos}
		p.push(&pathFrame{onDone: func(path *Path) {
			f.call.FunctionPath = path
			f.stage = 1
		}})
		return nil
	case 1:
		if err := p.expect(TokLParen, "expected '(' after call target"); err != nil {
			return err
		}
		f.stage = 2
		return nil
	case 2:
		if p.tok.Type == TokRParen {
			if err := p.advance(); err != nil {
				return err
			}
			p.pop()
			f.onDone(f.call)
			return nil
		}
		f.stage = 3
		p.push(&exprFrame{onDone: func(e Expression) {
			f.call.Arguments = append(f.call.Arguments, e)
		}})
		return nil
	case 3:
		switch p.tok.Type {
		case TokComma:
			if err := p.advance(); err != nil {
				return err
			}
			f.stage = 2
			return nil
		case TokRParen:
			if err := p.advance(); err != nil {
				return err
			}
			p.pop()
			f.onDone(f.call)
			return nil
		default:
			return p.syntaxErrorf("expected ',' or ')' in call arguments")
		}
	}
	return nil
}

// listFrame parses [ expr, expr, ... ] after '[' has been consumed.
type listFrame struct {
	pos        Position
	list       *ListExpr
	expectMore bool
	onDone     func(Expression)
}

func (f *listFrame) step(p *Parser) error {
	if f.list == nil {
		f.list = &ListExpr{Pos: f.pos}
	}
	if p.tok.Type == TokRBracket {
		if err := p.advance(); err != nil {
			return err
		}
		p.pop()
		f.onDone(f.list)
		return nil
	}
	if f.expectMore {
		if err := p.expect(TokComma, "expected ',' or ']' in list literal"); err != nil {
			return err
		}
		if p.tok.Type == TokRBracket {
			if err := p.advance(); err != nil {
				return err
			}
			p.pop()
			f.onDone(f.list)
			return nil
		}
	}
	f.expectMore = true
	p.push(&exprFrame{onDone: func(e Expression) {
		f.list.Members = append(f.list.Members, e)
	}})
	return nil
}

// mapFrame parses ( "k" = expr, "k" = expr, ... ) after '(' has been
// consumed (a Map literal, not a parenthesized expression grouping —
// this language has no such grouping form).
type mapFrame struct {
	pos        Position
	mp         *MapExpr
	expectMore bool
	onDone     func(Expression)
}

func (f *mapFrame) step(p *Parser) error {
	if f.mp == nil {
		f.mp = &MapExpr{Pos: f.pos}
	}
	if p.tok.Type == TokRParen {
		if err := p.advance(); err != nil {
			return err
		}
		p.pop()
		f.onDone(f.mp)
		return nil
	}
	if f.expectMore {
		if err := p.expect(TokComma, "expected ',' or ')' in map literal"); err != nil {
			return err
		}
		if p.tok.Type == TokRParen {
			if err := p.advance(); err != nil {
				return err
			}
			p.pop()
			f.onDone(f.mp)
			return nil
		}
	}
	f.expectMore = true
	p.push(&mapPairFrame{onDone: func(pair MapPair) {
		f.mp.Pairs = append(f.mp.Pairs, pair)
	}})
	return nil
}

type mapPairFrame struct {
	key       string
	haveKey   bool
	haveEq    bool
	value     Expression
	haveValue bool
	onDone    func(MapPair)
}

func (f *mapPairFrame) step(p *Parser) error {
	if !f.haveKey {
		if p.tok.Type != TokString {
			return p.syntaxErrorf("expected string key in map literal")
		}
		key, err := Unescape(p.tok.Span)
		if err != nil {
			return p.syntaxErrorf("%s", err.Error())
		}
		f.key = key
		f.haveKey = true
		return p.advance()
	}
	if !f.haveEq {
		if err := p.expect(TokAssign, "expected '=' after map key"); err != nil {
			return err
		}
		f.haveEq = true
		return nil
	}
	if !f.haveValue {
		p.push(&exprFrame{onDone: func(e Expression) {
			f.value = e
			f.haveValue = true
		}})
		return nil
	}
	p.pop()
	f.onDone(MapPair{Key: f.key, Value: f.value})
	return nil
}

// String gives TokenType a readable form for syntax error messages.
func (t TokenType) String() string {
	switch t {
	case TokFn:
		return "'fn'"
	case TokIf:
		return "'if'"
	case TokElse:
		return "'else'"
	case TokLoop:
		return "'loop'"
	case TokBreak:
		return "'break'"
	case TokContinue:
		return "'continue'"
	case TokReturn:
		return "'return'"
	case TokTrue, TokFalse:
		return "boolean literal"
	case TokNull:
		return "'null'"
	case TokInf, TokNegInf, TokNaN:
		return "numeric keyword"
	case TokTry:
		return "'try'"
	case TokRecover:
		return "'recover'"
	case TokUse:
		return "'use'"
	case TokHex, TokBin, TokOct, TokDecimal:
		return "number literal"
	case TokString:
		return "string literal"
	case TokIdentifier:
		return "identifier"
	case TokEOF:
		return "end of file"
	case TokComment:
		return "comment"
	default:
		if op, ok := binaryOpTokens[t]; ok {
			return fmt.Sprintf("%q", op)
		}
		return "token"
	}
}
