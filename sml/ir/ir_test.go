package ir_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jesperkha/sml/sml"
	"github.com/jesperkha/sml/sml/ast"
	"github.com/jesperkha/sml/sml/builtin"
	"github.com/jesperkha/sml/sml/ir"
	"github.com/jesperkha/sml/sml/token"
)

func irFromRegistry(t *testing.T, reg *builtin.Registry, src string) *ir.Listing {
	t.Helper()
	file := token.NewFile("", src)
	mod := ir.NewListing("test")

	if err := sml.GenerateIR(file, reg, mod); err != nil {
		t.Fatal(err)
	}

	return mod
}

func irFrom(t *testing.T, src string) *ir.Listing {
	t.Helper()
	return irFromRegistry(t, builtin.Default(), src)
}

func irCompare(t *testing.T, mod *ir.Listing, s string) {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(mod.String()), "\n")
	slines := strings.Split(strings.TrimSpace(s), "\n")

	if len(lines) != len(slines) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(slines), len(lines), mod)
	}

	for i := range lines {
		if a, b := strings.TrimSpace(lines[i]), strings.TrimSpace(slines[i]); a != b {
			t.Errorf("line %d: expected '%s', got '%s'", i+1, b, a)
		}
	}
}

func codegenErr(t *testing.T, src string, msg string) {
	t.Helper()
	file := token.NewFile("", src)
	err := sml.GenerateIR(file, builtin.Default(), ir.NewListing("test"))

	var cerr *ir.CodegenError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CodegenError for %q, got %v", src, err)
	}

	if !strings.Contains(cerr.Msg, msg) {
		t.Errorf("expected error containing '%s', got '%s'", msg, cerr.Msg)
	}
}

func TestHelloWorld(t *testing.T) {
	mod := irFrom(t, `
		function main() -> int {
			print("Hello, world!");
			return 69;
		}
	`)

	irCompare(t, mod, `
		STRING @.str = "Hello, world!"
		DECLARE printf(str, ...) -> int
		FUNC main -> int
			$0 = CALL @printf(@.str)
			RET 69
	`)
}

func TestGlobals(t *testing.T) {
	mod := irFrom(t, `
		let n = 4;
		let msg = "hi";
		function main() -> int {
			print(msg);
			return n + 1;
		}
	`)

	irCompare(t, mod, `
		GLOBAL int @n = 4
		GLOBAL str @msg = "hi"
		DECLARE printf(str, ...) -> int
		FUNC main -> int
			$0 = PTR @msg
			$1 = CALL @printf($0)
			$2 = LOAD @n
			$3 = ADD $2, 1
			RET $3
	`)
}

func TestStringReturn(t *testing.T) {
	mod := irFrom(t, `
		function name() -> str {
			return "sml";
		}
	`)

	irCompare(t, mod, `
		STRING @.str = "sml"
		FUNC name -> str
			RET @.str
	`)
}

func TestArgumentOrder(t *testing.T) {
	reg := builtin.New()
	reg.MustRegister("add3", builtin.Prototype{
		Name:   "add3",
		Params: []ast.TypeKind{ast.INT, ast.INT, ast.INT},
		Return: ast.INT,
	})

	mod := irFromRegistry(t, reg, `
		function main() -> int {
			return add3(1, 2 3);
		}
	`)

	irCompare(t, mod, `
		DECLARE add3(int, int, int) -> int
		FUNC main -> int
			$0 = CALL @add3(1, 2, 3)
			RET $0
	`)
}

func TestNativeDeclaredOnce(t *testing.T) {
	mod := irFrom(t, `
		function main() -> int {
			print("a");
			print("b");
			return 0;
		}
	`)

	irCompare(t, mod, `
		STRING @.str = "a"
		DECLARE printf(str, ...) -> int
		STRING @.str.1 = "b"
		FUNC main -> int
			$0 = CALL @printf(@.str)
			$1 = CALL @printf(@.str.1)
			RET 0
	`)
}

func TestIntTruncation(t *testing.T) {
	mod := irFrom(t, `
		let big = 4294967297;
		function main() -> int {
			return 4294967295;
		}
	`)

	irCompare(t, mod, `
		GLOBAL int @big = 1
		FUNC main -> int
			RET -1
	`)
}

func TestDeterministic(t *testing.T) {
	src := `
		let x = "x";
		function main() -> int {
			print(x);
			print("y");
			return 1 + 2;
		}
	`

	if a, b := irFrom(t, src).String(), irFrom(t, src).String(); a != b {
		t.Errorf("expected identical output, got:\n%s\nand\n%s", a, b)
	}
}

func TestSourceFileName(t *testing.T) {
	file := token.NewFile("main.sml", "function main() -> int { return 0; }")
	mod := ir.NewListing("main")

	if err := sml.GenerateIR(file, builtin.Default(), mod); err != nil {
		t.Fatal(err)
	}

	if mod.Source != "main.sml" {
		t.Errorf("expected source main.sml, got %s", mod.Source)
	}
}

func TestCodegenErrors(t *testing.T) {
	cases := []struct {
		src string
		msg string
	}{
		{"function main() -> int { unknown_fn(); return 0; }", "calling non-defined function 'unknown_fn'"},
		{"function main() -> int { let x = 1; }", "variable declaration not allowed inside function"},
		{"function main() -> int { function f() -> int { return 1; } return 0; }", "function declaration not allowed inside function"},
		{"return 1;", "return statement not allowed at global scope"},
		{`print("hi");`, "expression statement not allowed at global scope"},
		{`function main() -> int { return "a" + 1; }`, "operator + requires int operands, got str and int"},
		{`function main() -> int { return "s"; }`, "return type mismatch in 'main': expected int, got str"},
		{"function main() -> int { print(1); return 0; }", "argument type mismatch calling 'print': argument 1 must be str, got int"},
		{`function main() -> int { print("a", "b"); return 0; }`, "argument count mismatch calling 'print': expected 1, got 2"},
		{`function main() -> int { print("a"); }`, "missing return at end of function 'main'"},
		{`function main() -> int { return 1; print("a"); }`, "unreachable statement after return in 'main'"},
		{"function main() -> int { return x; }", "undefined reference to 'x'"},
		{"function main() -> int { return n; } let n = 1;", "'n' used before its declaration at 1:42"},
		{"function f() -> int { return 1; } function main() -> int { return f; }", "cannot use function 'f' as a value"},
		{`let printf = 1; function main() -> int { print("x"); return 0; }`, "shadowed by the variable declared at 1:5"},
	}

	for _, c := range cases {
		codegenErr(t, c.src, c.msg)
	}
}

func TestArityMismatch(t *testing.T) {
	reg := builtin.New()
	reg.MustRegister("add3", builtin.Prototype{
		Name:   "add3",
		Params: []ast.TypeKind{ast.INT, ast.INT, ast.INT},
		Return: ast.INT,
	})

	file := token.NewFile("", "function main() -> int { return add3(1, 2); }")
	err := sml.GenerateIR(file, reg, ir.NewListing("test"))

	var cerr *ir.CodegenError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CodegenError, got %v", err)
	}

	expect := "argument count mismatch calling 'add3': expected 3, got 2"
	if cerr.Msg != expect {
		t.Errorf("expected '%s', got '%s'", expect, cerr.Msg)
	}
}

func TestErrorPosition(t *testing.T) {
	file := token.NewFile("", "function main() -> int {\n    unknown_fn();\n    return 0;\n}")
	err := sml.GenerateIR(file, builtin.Default(), ir.NewListing("test"))
	if err == nil {
		t.Fatal("expected error")
	}

	expect := "2:5: calling non-defined function 'unknown_fn'"
	if err.Error() != expect {
		t.Errorf("expected '%s', got '%s'", expect, err.Error())
	}
}

func TestUnescape(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{`a\nb`, "a\nb"},
		{`a\tb\r`, "a\tb\r"},
		{`a\\b`, `a\b`},
		{`a\\nb`, `a\nb`},
		{`\q`, `\q`},
		{`end\`, `end\`},
		{"plain", "plain"},
		{"", ""},
	}

	for _, c := range cases {
		if got := ir.Unescape(c.in); got != c.out {
			t.Errorf("Unescape(%q): expected %q, got %q", c.in, c.out, got)
		}
	}
}
