package targets

import (
	"fmt"
	"os/exec"
	"strings"
)

// Link compiles the IR file at irPath into a native executable at out with
// the C compiler cc, which must accept LLVM IR input (clang).
func Link(cc string, irPath string, out string) error {
	cmd := exec.Command(cc, irPath, "-o", out)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("link %s: %w: %s", irPath, err, strings.TrimSpace(string(output)))
	}

	return nil
}
