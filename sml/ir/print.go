package ir

import (
	"fmt"
	"strings"

	"github.com/jesperkha/sml/sml/ast"
)

// IrFmt formats an instruction list, one instruction per line. Instructions
// following a FUNC are indented until the next FUNC or header instruction.
func IrFmt(ir []Instruction) string {
	sb := strings.Builder{}
	indent := 0

	for _, op := range ir {
		switch op.Op {
		case FUNC, DECLARE, GLOBAL, STRING:
			indent = 0
		}

		sb.WriteString(strings.Repeat("  ", indent))

		switch op.Op {
		case FUNC:
			fmt.Fprintf(&sb, "FUNC %s -> %s\n", op.Name, op.RetType)
			indent++

		case DECLARE:
			fmt.Fprintf(&sb, "DECLARE %s\n", op.Proto)

		case GLOBAL:
			if op.RetType == ast.STR {
				fmt.Fprintf(&sb, "GLOBAL %s @%s = %q\n", op.RetType, op.Name, op.Str)
			} else {
				fmt.Fprintf(&sb, "GLOBAL %s @%s = %d\n", op.RetType, op.Name, op.Integer)
			}

		case STRING:
			fmt.Fprintf(&sb, "STRING @%s = %q\n", op.Name, op.Str)

		case LOAD:
			fmt.Fprintf(&sb, "%s = LOAD %s\n", op.Dest, op.Value)

		case PTR:
			fmt.Fprintf(&sb, "%s = PTR %s\n", op.Dest, op.Value)

		case CALL:
			args := make([]string, len(op.Args))
			for i, arg := range op.Args {
				args[i] = arg.String()
			}
			fmt.Fprintf(&sb, "%s = CALL %s(%s)\n", op.Dest, op.Value, strings.Join(args, ", "))

		case ADD:
			fmt.Fprintf(&sb, "%s = ADD %s, %s\n", op.Dest, op.Args[0], op.Args[1])

		case RET:
			fmt.Fprintf(&sb, "RET %s\n", op.Value)

		default:
			sb.WriteString("unknown op\n")
		}
	}

	return sb.String()
}
