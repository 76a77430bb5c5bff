package parser

import (
	"github.com/dhamidi/cst/syntax"
)

// Parser builds a trivia-preserving syntax tree for an expression
// document. It never fails: malformed input yields zero-width Missing
// placeholders and stray tokens folded into the statement list, so node
// full spans always tile the source.
type Parser struct {
	lexer *Lexer
	tok   token
}

// Parse parses src and returns the root SourceFile node with parent links
// established. The returned tree is immutable.
func Parse(src []byte) *syntax.Node {
	p := &Parser{lexer: NewLexer(src)}
	p.next()
	root := p.parseSourceFile()
	syntax.LinkParents(root)
	return root
}

func (p *Parser) next() {
	p.tok = p.lexer.Next()
}

// leaf converts the current token into a node and advances.
func (p *Parser) leaf() *syntax.Node {
	n := &syntax.Node{
		Kind:      p.tok.kind,
		FullStart: p.tok.fullStart,
		Start:     p.tok.start,
		End:       p.tok.end,
	}
	p.next()
	return n
}

// missing creates a zero-width placeholder at the current token's full
// start without consuming anything.
func (p *Parser) missing() *syntax.Node {
	pos := p.tok.fullStart
	return &syntax.Node{Kind: syntax.KindMissing, FullStart: pos, Start: pos, End: pos}
}

func (p *Parser) at(kind syntax.Kind) bool {
	return p.tok.kind == kind
}

// expect consumes a token of the given kind, or produces a Missing
// placeholder in its place.
func (p *Parser) expect(kind syntax.Kind) *syntax.Node {
	if p.at(kind) {
		return p.leaf()
	}
	return p.missing()
}

func (p *Parser) parseSourceFile() *syntax.Node {
	stmts := newList(p.tok.fullStart)

	for !p.at(syntax.KindEOF) {
		before := p.tok.start
		stmts.AddChild(p.parseStmt())
		if !p.at(syntax.KindEOF) && p.tok.start == before {
			// Stray token no statement could consume; keep it in the
			// list so the tree still covers every byte.
			stmts.AddChild(p.leaf())
		}
	}
	finishList(stmts)

	eof := p.leaf()
	return composite(syntax.KindSourceFile, stmts, eof)
}

func (p *Parser) parseStmt() *syntax.Node {
	expr := p.parseExpr()
	stmt := composite(syntax.KindExprStmt, expr)
	if p.at(syntax.KindSemicolon) {
		stmt.AddChild(p.leaf())
		setSpans(stmt)
	}
	return stmt
}

func (p *Parser) parseExpr() *syntax.Node {
	return p.parseBinary(1)
}

// Binary precedence, loosest first.
func binaryPrec(kind syntax.Kind) int {
	switch kind {
	case syntax.KindPipePipe:
		return 1
	case syntax.KindAmpAmp:
		return 2
	case syntax.KindEqEq, syntax.KindBangEq, syntax.KindLt, syntax.KindLtEq, syntax.KindGt, syntax.KindGtEq:
		return 3
	case syntax.KindPlus, syntax.KindMinus:
		return 4
	case syntax.KindStar, syntax.KindSlash:
		return 5
	}
	return 0
}

func (p *Parser) parseBinary(minPrec int) *syntax.Node {
	left := p.parseUnary()
	for {
		prec := binaryPrec(p.tok.kind)
		if prec < minPrec {
			return left
		}
		op := p.leaf()
		right := p.parseBinary(prec + 1)
		left = composite(syntax.KindBinaryExpr, left, op, right)
	}
}

func (p *Parser) parseUnary() *syntax.Node {
	if p.at(syntax.KindMinus) || p.at(syntax.KindBang) {
		op := p.leaf()
		operand := p.parseUnary()
		return composite(syntax.KindUnaryExpr, op, operand)
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() *syntax.Node {
	expr := p.parsePrimary()
	for {
		switch {
		case p.at(syntax.KindDot):
			dot := p.leaf()
			name := p.expect(syntax.KindIdent)
			expr = composite(syntax.KindMemberExpr, expr, dot, name)
		case p.at(syntax.KindLParen):
			lparen := p.leaf()
			args := p.parseArguments()
			rparen := p.expect(syntax.KindRParen)
			expr = composite(syntax.KindCallExpr, expr, lparen, args, rparen)
		default:
			return expr
		}
	}
}

// parseArguments builds the argument list group. List children are
// Argument nodes; each argument carries its own trailing comma, so the
// list holds elements only.
func (p *Parser) parseArguments() *syntax.Node {
	list := newList(p.tok.fullStart)

	for !p.at(syntax.KindRParen) && !p.at(syntax.KindEOF) {
		arg := composite(syntax.KindArgument, p.parseExpr())
		hasComma := p.at(syntax.KindComma)
		if hasComma {
			arg.AddChild(p.leaf())
			setSpans(arg)
		}
		list.AddChild(arg)
		if !hasComma {
			break
		}
	}

	finishList(list)
	return list
}

func (p *Parser) parsePrimary() *syntax.Node {
	switch p.tok.kind {
	case syntax.KindIdent, syntax.KindIntLiteral, syntax.KindFloatLiteral, syntax.KindStringLiteral:
		return p.leaf()
	case syntax.KindLParen:
		lparen := p.leaf()
		expr := p.parseExpr()
		rparen := p.expect(syntax.KindRParen)
		return composite(syntax.KindParenExpr, lparen, expr, rparen)
	}
	return p.missing()
}

// newList creates an empty list group anchored at pos; finishList derives
// the spans from the children once they are in place.
func newList(pos int) *syntax.Node {
	return &syntax.Node{Kind: syntax.KindList, FullStart: pos, Start: pos, End: pos}
}

func finishList(list *syntax.Node) {
	if len(list.Children) == 0 {
		return
	}
	setSpans(list)
}

// composite wraps children in a new node, deriving the span from them.
func composite(kind syntax.Kind, children ...*syntax.Node) *syntax.Node {
	n := &syntax.Node{Kind: kind}
	for _, child := range children {
		n.AddChild(child)
	}
	setSpans(n)
	return n
}

func setSpans(n *syntax.Node) {
	first := n.Children[0]
	last := n.Children[len(n.Children)-1]
	n.FullStart = first.FullStart
	n.End = last.End

	// Rendered start is the first child with rendered content, so a
	// leading zero-width placeholder does not shift it.
	n.Start = first.Start
	for _, child := range n.Children {
		if child.Start < child.End {
			n.Start = child.Start
			break
		}
	}
}
