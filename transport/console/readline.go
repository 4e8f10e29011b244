package console

import (
	"fmt"

	"github.com/chzyer/readline"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewReadline - opens a terminal reader. History is kept in memory only so
// tokens never end up on disk.
func NewReadline() (*readline.Instance, error) {
	l, err := readline.NewEx(&readline.Config{
		InterruptPrompt:        "^C",
		DisableAutoSaveHistory: true,
		FuncFilterInputRune:    filterInput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}

	return l, nil
}
