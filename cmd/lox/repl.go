package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"lox/internal/diag"
	"lox/internal/lexer"
	"lox/internal/lox"
	"lox/internal/tokens"
)

// colorWriter paints everything written through it red. The runner
// prints one diagnostic per write.
type colorWriter struct {
	w io.Writer
	c *color.Color
}

func (cw colorWriter) Write(p []byte) (int, error) {
	text := strings.TrimSuffix(string(p), "\n")
	if _, err := fmt.Fprintln(cw.w, cw.c.Red(text)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// newColor checks the terminal on os.Stderr, readline wraps the real
// writer so it cannot be inspected.
func newColor(enabled bool) *color.Color {
	c := color.New()
	c.SetOutput(os.Stderr)
	if !enabled {
		c.Disable()
	}
	return c
}

// openBraces counts the blocks source leaves open. Braces inside strings
// and comments never become tokens, so they do not count.
func openBraces(source string) int {
	depth := 0
	for _, tk := range lexer.New(source, diag.NewCollector()).Scan() {
		switch tk.Type {
		case tokens.LEFT_BRACE:
			depth++
		case tokens.RIGHT_BRACE:
			depth--
		}
	}
	return depth
}

func runPrompt(cfg *config, log *logrus.Logger) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            cfg.Prompt,
		HistoryFile:       cfg.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer rl.Close()

	c := newColor(cfg.colorEnabled())
	fmt.Fprintln(rl.Stdout(), c.Grey("lox, Ctrl+D to quit"))

	runner := lox.NewRunner(rl.Stdout(), colorWriter{w: rl.Stderr(), c: c}, log)

	var pending strings.Builder
	depth := 0
	for {
		if depth > 0 {
			rl.SetPrompt(strings.Repeat(".", len(strings.TrimSpace(cfg.Prompt))+2) + " ")
		} else {
			rl.SetPrompt(cfg.Prompt)
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// drop an unfinished block, otherwise keep going
			pending.Reset()
			depth = 0
			continue
		}
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(rl.Stdout())
				return nil
			}
			return err
		}

		pending.WriteString(line)
		pending.WriteString("\n")
		depth = openBraces(pending.String())
		if depth > 0 {
			continue
		}
		depth = 0

		source := pending.String()
		pending.Reset()
		if strings.TrimSpace(source) == "" {
			continue
		}

		status := runner.Run(source)
		log.WithField("status", status).Debug("line done")
	}
}
