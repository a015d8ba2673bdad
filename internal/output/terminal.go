package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// NoInteractiveEnv disables prompts when set to any value
const NoInteractiveEnv = "EASYGIT_NO_INTERACTIVE"

// IsInteractive reports whether both stdin and stdout are terminals and prompts are allowed
func IsInteractive() bool {
	if os.Getenv(NoInteractiveEnv) != "" {
		return false
	}
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
