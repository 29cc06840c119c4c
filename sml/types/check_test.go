package types

import (
	"errors"
	"testing"

	"github.com/jesperkha/sml/sml/ast"
	"github.com/jesperkha/sml/sml/parser"
	"github.com/jesperkha/sml/sml/scanner"
	"github.com/jesperkha/sml/sml/token"
)

func tassert(t *testing.T, v bool, f string, args ...any) {
	t.Helper()
	if !v {
		t.Errorf(f, args...)
		t.FailNow()
	}
}

func checkerFrom(t *testing.T, src string) *Checker {
	file := token.NewFile("", src)
	tassert(t, file.Err == nil, "new file error: %s", file.Err)
	s := scanner.New(file)
	p := parser.New(s)
	tree := p.Parse()
	tassert(t, s.NumErrors == 0, "scan error: %s", s.Error())
	tassert(t, p.NumErrors == 0, "parse error: %s", p.Error())
	return NewChecker(tree)
}

func TestLiteralInitializers(t *testing.T) {
	cases := map[string]ast.TypeKind{
		"let x = 1;":          ast.INT,
		"let x = 2147483648;": ast.INT,
		`let x = "hello";`:    ast.STR,
		`let x = "";`:         ast.STR,
	}

	for src, expect := range cases {
		c := checkerFrom(t, src)
		tree := c.Check()
		tassert(t, tree != nil, "%s: expected non-nil ast", src)
		tassert(t, c.NumErrors == 0, "%s: expected no errors, got %s", src, c.Error())

		v := tree.Nodes[0].(*ast.VarDecl)
		tassert(t, v.Type == expect, "%s: expected %s, got %s", src, expect, v.Type)
	}
}

func TestUnsupportedInitializers(t *testing.T) {
	cases := []string{
		"let x = y;",
		"let x = f();",
		"let x = 1 + 2;",
	}

	for i, cas := range cases {
		c := checkerFrom(t, cas)
		tree := c.Check()
		tassert(t, tree != nil, "case %d: expected non-nil ast", i+1)
		tassert(t, c.NumErrors == 1, "case %d: expected one error, got %d", i+1, c.NumErrors)

		var terr *TypeError
		tassert(t, errors.As(c.Error(), &terr), "case %d: expected TypeError, got %v", i+1, c.Error())
		tassert(t, tree.Nodes[0].(*ast.VarDecl).Type == ast.UNRESOLVED, "case %d: expected unresolved type", i+1)
	}
}

func TestErrorsAreCounted(t *testing.T) {
	c := checkerFrom(t, "let a = b; let c = 1; let d = e();")
	c.Check()

	tassert(t, c.NumErrors == 2, "expected 2 errors, got %d", c.NumErrors)
	tassert(t, c.tree.Nodes[1].(*ast.VarDecl).Type == ast.INT, "expected valid declarations to still be typed")
}

func TestFunctionBodiesAreNotVisited(t *testing.T) {
	c := checkerFrom(t, "function main() -> int { let x = y; return 0; }")
	tree := c.Check()
	tassert(t, c.NumErrors == 0, "expected no errors, got %s", c.Error())

	inner := tree.Nodes[0].(*ast.FnDecl).Body.Stmts[0].(*ast.VarDecl)
	tassert(t, inner.Type == ast.UNRESOLVED, "expected local declaration to stay unresolved")
}

func TestSymbolTable(t *testing.T) {
	c := checkerFrom(t, `let msg = "hi"; function main() -> int { return 0; } let n = 4;`)
	c.Check()
	tassert(t, c.NumErrors == 0, "expected no errors, got %s", c.Error())

	syms := c.Table().Symbols()
	tassert(t, len(syms) == 3, "expected 3 symbols, got %d", len(syms))

	expect := []struct {
		name string
		kind SymbolKind
		typ  ast.TypeKind
	}{
		{"msg", VarSymbol, ast.STR},
		{"main", FuncSymbol, ast.INT},
		{"n", VarSymbol, ast.INT},
	}

	for i, e := range expect {
		s := syms[i]
		tassert(t, s.Name == e.name && s.Kind == e.kind && s.Type == e.typ, "symbol %d: expected %+v, got %+v", i, e, *s)
	}

	sym, ok := c.Table().Symbol("main")
	tassert(t, ok && sym.Kind == FuncSymbol, "expected to find main")
	_, ok = c.Table().Symbol("missing")
	tassert(t, !ok, "expected missing symbol to not be found")
}

func TestRedeclaration(t *testing.T) {
	c := checkerFrom(t, "let x = 1;\nfunction x() -> int { return 1; }")
	c.Check()
	tassert(t, c.NumErrors == 1, "expected one error, got %d", c.NumErrors)

	var terr *TypeError
	tassert(t, errors.As(c.Error(), &terr), "expected TypeError")
	tassert(t, terr.Error() == "2:10: function 'x' redeclared, previous declaration at 1:5", "unexpected message %q", terr.Error())
}
