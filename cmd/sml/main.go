// Command sml compiles sml source files to LLVM IR.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jesperkha/sml/sml"
	"github.com/jesperkha/sml/sml/ast"
	"github.com/jesperkha/sml/sml/compile/targets"
	"github.com/jesperkha/sml/sml/token"
)

var logger = log.New(os.Stderr, "sml: ", 0)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "compile":
		os.Exit(cmdCompile(os.Args[2:], os.Stdout))
	case "help", "-h", "--help":
		usage(os.Stdout)
	default:
		logger.Printf("unknown command: %s", os.Args[1])
		usage(os.Stderr)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: sml compile [-ast] [-o out] [-build] [-cc compiler] <source_file>...")
}

type options struct {
	dumpAst bool
	out     string
	build   bool
	cc      string
}

func cmdCompile(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := options{}
	fs.BoolVar(&opts.dumpAst, "ast", false, "print the syntax tree to stdout")
	fs.StringVar(&opts.out, "o", "", "output path for the IR file (single input only)")
	fs.BoolVar(&opts.build, "build", false, "link the IR into a native executable")
	fs.StringVar(&opts.cc, "cc", "clang", "compiler used by -build")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	files := fs.Args()
	if len(files) == 0 {
		usage(os.Stderr)
		return 1
	}

	if opts.out != "" && len(files) > 1 {
		logger.Print("-o cannot be used with multiple source files")
		return 1
	}

	status := 0
	for _, filename := range files {
		if err := compileFile(filename, opts, stdout); err != nil {
			fmt.Fprintln(os.Stderr, strings.TrimRight(sml.Pretty(err), "\n"))
			logger.Printf("%s: compilation failed", filename)
			status = 1
		}
	}

	return status
}

func compileFile(filename string, opts options, stdout io.Writer) error {
	file := token.NewFile(filename, nil)

	if opts.dumpAst {
		tree, err := sml.ParseFile(file)
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, ast.Print(tree))
	}

	out, err := sml.Compile(file)
	if err != nil {
		return err
	}

	irPath := opts.out
	if irPath == "" {
		irPath = sml.OutputPath(filename)
	}

	if err := os.WriteFile(irPath, []byte(out), 0o644); err != nil {
		return err
	}

	if opts.build {
		return targets.Link(opts.cc, irPath, strings.TrimSuffix(irPath, sml.IRExt))
	}

	return nil
}
