package targets_test

import (
	"strings"
	"testing"

	"github.com/jesperkha/sml/sml"
	"github.com/jesperkha/sml/sml/builtin"
	"github.com/jesperkha/sml/sml/compile/targets"
	"github.com/jesperkha/sml/sml/token"
)

func llirFrom(t *testing.T, name string, src string) string {
	t.Helper()
	mod := targets.NewLLIR(sml.ModuleName(name))
	file := token.NewFile(name, src)

	if err := sml.GenerateIR(file, builtin.Default(), mod); err != nil {
		t.Fatal(err)
	}

	return mod.String()
}

func expectContains(t *testing.T, out string, snippets ...string) {
	t.Helper()
	for _, s := range snippets {
		if !strings.Contains(out, s) {
			t.Errorf("expected output to contain %q, got:\n%s", s, out)
		}
	}
}

func TestHelloWorld(t *testing.T) {
	out := llirFrom(t, "hello.sml", `
		function main() -> int {
			print("Hello, world!");
			return 69;
		}
	`)

	expectContains(t, out,
		"; ModuleID = 'hello'",
		`source_filename = "hello.sml"`,
		"define i32 @main()",
		"declare i32 @printf(",
		`c"Hello, world!\00"`,
		"call i32",
		"ret i32 69",
	)
}

func TestGlobals(t *testing.T) {
	out := llirFrom(t, "globals.sml", `
		let n = 4;
		let msg = "hi";
		function main() -> int {
			print(msg);
			return n;
		}
	`)

	expectContains(t, out,
		"@n = global i32 4",
		`@msg = global [3 x i8] c"hi\00"`,
		"load i32",
		"ret i32 %",
	)
}

func TestAdd(t *testing.T) {
	out := llirFrom(t, "add.sml", `
		function main() -> int {
			return 1 + 2 + 3;
		}
	`)

	expectContains(t, out, "add i32 1, 2", "ret i32 %")
}

func TestEscapes(t *testing.T) {
	out := llirFrom(t, "esc.sml", `
		function main() -> int {
			print("a\n");
			return 0;
		}
	`)

	expectContains(t, out, `c"a\0A\00"`)
}

func TestStringNames(t *testing.T) {
	out := llirFrom(t, "strs.sml", `
		function main() -> int {
			print("a");
			print("b");
			return 0;
		}
	`)

	expectContains(t, out, "@.str = private unnamed_addr constant", "@.str.1 = private unnamed_addr constant")

	if strings.Count(out, "declare i32 @printf(") != 1 {
		t.Errorf("expected a single printf declaration, got:\n%s", out)
	}
}

func TestDeterministic(t *testing.T) {
	src := `
		let x = "x";
		function main() -> int {
			print("Hello");
			print(x);
			return 0;
		}
	`

	if a, b := llirFrom(t, "d.sml", src), llirFrom(t, "d.sml", src); a != b {
		t.Errorf("expected identical output, got:\n%s\nand\n%s", a, b)
	}
}

func TestVerifyAndDispose(t *testing.T) {
	mod := targets.NewLLIR("m")
	if err := targets.Verify(mod); err != nil {
		t.Errorf("expected nil error, got %s", err)
	}

	// No-op for backends without resources
	targets.Dispose(mod)
}
