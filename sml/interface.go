package sml

import (
	"path/filepath"
	"strings"

	"github.com/jesperkha/sml/sml/ast"
	"github.com/jesperkha/sml/sml/builtin"
	"github.com/jesperkha/sml/sml/compile/targets"
	"github.com/jesperkha/sml/sml/ir"
	"github.com/jesperkha/sml/sml/parser"
	"github.com/jesperkha/sml/sml/scanner"
	"github.com/jesperkha/sml/sml/token"
	"github.com/jesperkha/sml/sml/types"
)

// Extension of emitted IR files.
const IRExt = ".ll"

// ParseFile scans and parses file. The whole file is scanned first so that
// every lex error is reported, and the parser only runs on clean input.
func ParseFile(file *token.File) (*ast.Ast, error) {
	if file.Err != nil {
		return nil, file.Err
	}

	s := scanner.New(file)
	toks := s.ScanAll()
	if s.NumErrors > 0 {
		return nil, s.Error()
	}

	p := parser.New(parser.FromTokens(toks))
	tree := p.Parse()
	return tree, p.Error()
}

// Check runs the type pass over tree and returns the global symbol table.
func Check(tree *ast.Ast) (*types.SemanticTable, error) {
	c := types.NewChecker(tree)
	c.Check()

	if c.NumErrors > 0 {
		return nil, c.Error()
	}

	return c.Table(), nil
}

// GenerateIR runs the whole pipeline on file, lowering it into mod.
func GenerateIR(file *token.File, reg *builtin.Registry, mod ir.Module) error {
	tree, err := ParseFile(file)
	if err != nil {
		return err
	}

	table, err := Check(tree)
	if err != nil {
		return err
	}

	mod.SetSourceFileName(file.Name)
	return ir.NewBuilder(tree, table, reg, mod).Build()
}

// Compile returns the textual LLVM IR for file, built with the default
// backend and builtins.
func Compile(file *token.File) (string, error) {
	mod := targets.New(ModuleName(file.Name))
	defer targets.Dispose(mod)

	if err := GenerateIR(file, builtin.Default(), mod); err != nil {
		return "", err
	}

	if err := targets.Verify(mod); err != nil {
		return "", err
	}

	return mod.String(), nil
}

// ModuleName is the file name without directory and extension.
func ModuleName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputPath replaces the extension of the source path with IRExt.
func OutputPath(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + IRExt
}
