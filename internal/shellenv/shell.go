// Package shellenv generates the per-shell integration snippet. The binary
// itself cannot change the parent shell's directory, so users eval a small
// wrapper function that calls dirjump and cds to its output.
package shellenv

import (
	"fmt"
	"strings"
)

// Shell defines the interface for shell-specific integration scripts.
type Shell interface {
	// InitScript returns the snippet to eval in the shell's rc file.
	// funcName is the command users will type (e.g. "dj").
	InitScript(funcName string) string
	Name() string
}

// ZshShell implements Shell for Zsh.
type ZshShell struct{}

func (s *ZshShell) Name() string {
	return "zsh"
}

func (s *ZshShell) InitScript(funcName string) string {
	var b strings.Builder
	writeWrapper(&b, funcName)
	// Tab-completion: offer the current top matches for the typed prefix.
	fmt.Fprintf(&b, `
_%[1]s() {
    local -a matches
    matches=(${(f)"$(command dirjump complete --list 10 -- "$words[2]" 2>/dev/null)"})
    compadd -- $matches
}
compdef _%[1]s %[1]s
`, funcName)
	return b.String()
}

// BashShell implements Shell for Bash.
type BashShell struct{}

func (s *BashShell) Name() string {
	return "bash"
}

func (s *BashShell) InitScript(funcName string) string {
	var b strings.Builder
	writeWrapper(&b, funcName)
	fmt.Fprintf(&b, `
_%[1]s() {
    local cur="${COMP_WORDS[COMP_CWORD]}"
    COMPREPLY=($(command dirjump complete --list 10 -- "$cur" 2>/dev/null))
}
complete -o nospace -F _%[1]s %[1]s
`, funcName)
	return b.String()
}

// writeWrapper emits the cd wrapper shared by both shells. dirjump exits
// non-zero when nothing matched, so the wrapper never cds to an empty string.
func writeWrapper(b *strings.Builder, funcName string) {
	fmt.Fprintf(b, `%[1]s() {
    local target
    target="$(command dirjump complete -- "$1")" || {
        echo "%[1]s: no match for: $1" >&2
        return 1
    }
    cd "$target"
}
`, funcName)
}

// Detect identifies the user's shell from $SHELL or an explicit name.
// Defaults to Zsh when unsure, matching the macOS default.
func Detect(shellPath string) Shell {
	if strings.Contains(shellPath, "bash") {
		return &BashShell{}
	}
	return &ZshShell{}
}
