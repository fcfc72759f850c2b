package tui

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/jmylchreest/nestchart/internal/config"
)

// ErrNoClipboard is returned when no clipboard command is configured or
// installed.
var ErrNoClipboard = errors.New("no clipboard command found (set [clipboard] command)")

const copyTimeout = 5 * time.Second

// clipboardCandidates are tried in order when [clipboard] command is unset.
var clipboardCandidates = []string{
	"wl-copy",
	"xclip -selection clipboard",
	"xsel --clipboard --input",
	"pbcopy",
}

// copyStylesheet pipes the generated chart stylesheet into the clipboard
// command.
func copyStylesheet(css string, cfg *config.Config) error {
	argv := clipboardCommand(cfg, exec.LookPath)
	if len(argv) == 0 {
		return ErrNoClipboard
	}

	ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
	defer cancel()

	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	c.Stdin = strings.NewReader(css)
	if err := c.Run(); err != nil {
		return fmt.Errorf("copy stylesheet with %s: %w", argv[0], err)
	}
	return nil
}

// clipboardCommand returns the argv of the configured command, or of the
// first installed candidate.
func clipboardCommand(cfg *config.Config, lookPath func(string) (string, error)) []string {
	if cfg != nil {
		if argv := strings.Fields(cfg.Clipboard.Command); len(argv) > 0 {
			return argv
		}
	}
	for _, cmd := range clipboardCandidates {
		argv := strings.Fields(cmd)
		if _, err := lookPath(argv[0]); err == nil {
			return argv
		}
	}
	return nil
}
