package parser

import (
	"testing"

	"github.com/dhamidi/cst/syntax"
)

func parseOnlyExpr(t *testing.T, src string) *syntax.Node {
	t.Helper()
	root := Parse([]byte(src))
	stmts := root.FirstChildOfKind(syntax.KindList)
	if stmts == nil || stmts.ChildCount() != 1 {
		t.Fatalf("expected a single statement, got:\n%s", root.StringWithSource([]byte(src)))
	}
	return stmts.ChildAt(0).ChildAt(0)
}

func TestParseCallShape(t *testing.T) {
	src := "foo.bar(1,2)"
	call := parseOnlyExpr(t, src)

	if call.Kind != syntax.KindCallExpr {
		t.Fatalf("expr kind = %s, want CallExpr", call.Kind)
	}

	wantKinds := []syntax.Kind{syntax.KindMemberExpr, syntax.KindLParen, syntax.KindList, syntax.KindRParen}
	if call.ChildCount() != len(wantKinds) {
		t.Fatalf("call has %d children, want %d", call.ChildCount(), len(wantKinds))
	}
	for i, want := range wantKinds {
		if got := call.ChildAt(i).Kind; got != want {
			t.Errorf("call child %d = %s, want %s", i, got, want)
		}
	}

	member := call.ChildAt(0)
	if got := member.ChildAt(0).Text([]byte(src)); got != "foo" {
		t.Errorf("member target = %q, want %q", got, "foo")
	}
	if got := member.ChildAt(2).Text([]byte(src)); got != "bar" {
		t.Errorf("member name = %q, want %q", got, "bar")
	}

	args := call.ChildAt(2)
	if args.ChildCount() != 2 {
		t.Fatalf("argument list has %d elements, want 2", args.ChildCount())
	}
	// The first argument carries its separator.
	if got := args.ChildAt(0).Text([]byte(src)); got != "1," {
		t.Errorf("first argument text = %q, want %q", got, "1,")
	}
	if got := args.ChildAt(1).Text([]byte(src)); got != "2" {
		t.Errorf("second argument text = %q, want %q", got, "2")
	}
}

// The resolution scenario from the queries' point of view: cursor offsets
// in "foo.bar(1,2)" land on the expected tokens and list slots.
func TestParseResolutionScenario(t *testing.T) {
	src := []byte("foo.bar(1,2)")
	root := Parse(src)

	call := root.FirstChildOfKind(syntax.KindList).ChildAt(0).ChildAt(0)
	args := call.FirstChildOfKind(syntax.KindList)

	// Offset of '1' resolves to the numeric literal.
	one := syntax.TokenAt(root, 8)
	if one.Kind != syntax.KindIntLiteral || one.Text(src) != "1" {
		t.Errorf("TokenAt(8) = %s %q, want IntLiteral \"1\"", one.Kind, one.Text(src))
	}

	// Immediately after '(' the preceding token is '('.
	lparen := syntax.PrecedingToken(root, 8)
	if lparen == nil || lparen.Kind != syntax.KindLParen {
		t.Errorf("PrecedingToken(8) = %v, want LParen", lparen)
	}

	// The offset of '2' sits in list slot 1.
	idx, err := syntax.ListItemIndexAt(args, 10)
	if err != nil {
		t.Fatalf("ListItemIndexAt: %v", err)
	}
	if idx != 1 {
		t.Errorf("ListItemIndexAt(args, 10) = %d, want 1", idx)
	}

	// The token following '(' within the call is '1'.
	next := syntax.NextToken(lparen, call)
	if next == nil || next.Text(src) != "1" {
		t.Errorf("NextToken(lparen, call) = %v, want the literal 1", next)
	}
}

func TestParsePrecedence(t *testing.T) {
	src := "1 + 2 * 3"
	expr := parseOnlyExpr(t, src)

	if expr.Kind != syntax.KindBinaryExpr {
		t.Fatalf("expr kind = %s, want BinaryExpr", expr.Kind)
	}
	if got := expr.ChildAt(1).Kind; got != syntax.KindPlus {
		t.Errorf("top operator = %s, want Plus", got)
	}

	right := expr.ChildAt(2)
	if right.Kind != syntax.KindBinaryExpr || right.ChildAt(1).Kind != syntax.KindStar {
		t.Errorf("right operand = %s, want the multiplication", right.Kind)
	}
}

func TestParseUnaryAndParen(t *testing.T) {
	src := "!(a || b)"
	expr := parseOnlyExpr(t, src)

	if expr.Kind != syntax.KindUnaryExpr {
		t.Fatalf("expr kind = %s, want UnaryExpr", expr.Kind)
	}
	paren := expr.ChildAt(1)
	if paren.Kind != syntax.KindParenExpr {
		t.Fatalf("operand kind = %s, want ParenExpr", paren.Kind)
	}
	if got := paren.ChildAt(1).Kind; got != syntax.KindBinaryExpr {
		t.Errorf("inner expr = %s, want BinaryExpr", got)
	}
}

func TestParseStatements(t *testing.T) {
	src := []byte("a; b.c();\nd")
	root := Parse(src)

	stmts := root.FirstChildOfKind(syntax.KindList)
	if stmts.ChildCount() != 3 {
		t.Fatalf("got %d statements, want 3:\n%s", stmts.ChildCount(), root.StringWithSource(src))
	}
	for i, stmt := range stmts.Children {
		if stmt.Kind != syntax.KindExprStmt {
			t.Errorf("statement %d = %s, want ExprStmt", i, stmt.Kind)
		}
	}

	// Each statement is a list element whose logical parent is the file.
	item, err := syntax.ListItemInfo(stmts.ChildAt(1))
	if err != nil {
		t.Fatalf("ListItemInfo: %v", err)
	}
	if item.List != stmts || item.Index != 1 {
		t.Errorf("ListItemInfo = (%s, %d), want the statement list at 1", item.List.Kind, item.Index)
	}
}

func TestParseMissingOperand(t *testing.T) {
	src := []byte("1 + ")
	root := Parse(src)

	expr := root.FirstChildOfKind(syntax.KindList).ChildAt(0).ChildAt(0)
	if expr.Kind != syntax.KindBinaryExpr {
		t.Fatalf("expr kind = %s, want BinaryExpr", expr.Kind)
	}

	missing := expr.ChildAt(2)
	if missing.Kind != syntax.KindMissing {
		t.Fatalf("right operand = %s, want Missing", missing.Kind)
	}
	if missing.FullStart != missing.End {
		t.Errorf("missing placeholder has width: [%d-%d)", missing.FullStart, missing.End)
	}
}

func TestParseMissingCloser(t *testing.T) {
	src := []byte("f(1,")
	root := Parse(src)

	call := root.FirstChildOfKind(syntax.KindList).ChildAt(0).ChildAt(0)
	if call.Kind != syntax.KindCallExpr {
		t.Fatalf("expr kind = %s, want CallExpr", call.Kind)
	}
	rparen := call.ChildAt(call.ChildCount() - 1)
	if rparen.Kind != syntax.KindMissing {
		t.Errorf("closer = %s, want Missing", rparen.Kind)
	}
}

func TestParseStrayTokens(t *testing.T) {
	src := []byte(") a")
	root := Parse(src)

	// The stray closer is kept in the statement list so spans still tile.
	stmts := root.FirstChildOfKind(syntax.KindList)
	found := false
	for _, child := range stmts.Children {
		if child.Kind == syntax.KindRParen {
			found = true
		}
	}
	if !found {
		t.Errorf("stray rparen not preserved:\n%s", root.StringWithSource(src))
	}
}

// Boundary search stays total over recovered trees: the zero-width
// statements and arguments error recovery leaves behind must not hide
// the real token to their left.
func TestBoundarySearchOverMalformedInput(t *testing.T) {
	tests := []struct {
		src    string
		offset int
		want   syntax.Kind
	}{
		{"f(;)", 3, syntax.KindSemicolon},
		{"f(;)", 4, syntax.KindRParen},
		{") a", 1, syntax.KindRParen},
		{") a", 3, syntax.KindIdent},
		{"f( ,2)", 4, syntax.KindComma},
		{"1 + ", 4, syntax.KindPlus},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			root := Parse([]byte(tt.src))
			got := syntax.PrecedingToken(root, tt.offset)
			if got == nil || got.Kind != tt.want {
				t.Errorf("PrecedingToken(%d) = %s, want %s", tt.offset, kindName(got), tt.want)
			}
		})
	}
}

// A separator with leading trivia must not drag its element's rendered
// start into the trivia when the element's expression is missing.
func TestParseSeparatorSpans(t *testing.T) {
	src := []byte("f( ,2)")
	root := Parse(src)

	call := root.FirstChildOfKind(syntax.KindList).ChildAt(0).ChildAt(0)
	args := call.FirstChildOfKind(syntax.KindList)
	if args.ChildCount() != 2 {
		t.Fatalf("argument list has %d elements, want 2:\n%s", args.ChildCount(), root.StringWithSource(src))
	}

	first := args.ChildAt(0)
	if first.FullStart != 2 || first.Start != 3 || first.End != 4 {
		t.Errorf("first argument span = [%d:%d-%d), want [2:3-4)", first.FullStart, first.Start, first.End)
	}
	if got := first.Text(src); got != "," {
		t.Errorf("first argument text = %q, want %q", got, ",")
	}

	// Same accounting for a statement whose expression is missing.
	stmt := Parse([]byte(" ;")).FirstChildOfKind(syntax.KindList).ChildAt(0)
	if stmt.FullStart != 0 || stmt.Start != 1 || stmt.End != 2 {
		t.Errorf("statement span = [%d:%d-%d), want [0:1-2)", stmt.FullStart, stmt.Start, stmt.End)
	}
}

// Every byte of the document, trivia included, belongs to exactly one
// token or placeholder full span.
func TestParseFullSpansTile(t *testing.T) {
	srcs := []string{
		"foo.bar(1,2)",
		"  a /* mid */ + b // tail",
		"1 + ",
		"f(1,",
		") a ) b",
		"",
		"   // just a comment",
	}

	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			root := Parse([]byte(src))
			for p := 0; p < len(src); p++ {
				leaf := syntax.TokenAt(root, p)
				if !leaf.Kind.IsToken() && leaf.Kind != syntax.KindEOF {
					t.Errorf("TokenAt(%d) = %s, want a token leaf", p, leaf.Kind)
				}
				if p < leaf.FullStart || p >= leaf.End {
					t.Errorf("TokenAt(%d) span [%d-%d) does not contain the offset", p, leaf.FullStart, leaf.End)
				}
			}
			if got := syntax.TokenAt(root, len(src)); got.Kind != syntax.KindEOF {
				t.Errorf("TokenAt(len) = %s, want EOF", got.Kind)
			}
		})
	}
}

func TestParseTreeIsLinked(t *testing.T) {
	src := []byte("foo.bar(1,2)")
	root := Parse(src)

	var walk func(n *syntax.Node)
	walk = func(n *syntax.Node) {
		for _, child := range n.Children {
			want := n
			if n.Kind == syntax.KindList {
				want = n.Parent()
			}
			if child.Parent() != want {
				t.Errorf("%s child of %s has parent %v", child.Kind, n.Kind, kindName(child.Parent()))
			}
			walk(child)
		}
	}
	walk(root)

	if root.Parent() != nil {
		t.Errorf("root parent = %v, want nil", root.Parent())
	}
}

func kindName(n *syntax.Node) string {
	if n == nil {
		return "(none)"
	}
	return n.Kind.String()
}
