// Shell for composing SQL function calls and rendering them per dialect.
//
// Configuration (env vars):
//
//	SQLFN_ENGINE=postgres|mysql|sqlite  (optional, defaults to postgres)
//	DATABASE_URL=<dsn>                  (optional, auto-connects if set)
//
// Usage:
//
//	go run ./cmd/sqlfn
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
)

const prompt = "sqlfn> "

func main() {
	engine := loadEngine()
	sess := NewSession(engine)

	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyPath(),
		HistoryLimit:    500,
		AutoComplete:    &completer{sess: sess},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = rl.Close() }()

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		fmt.Printf("Connecting via DATABASE_URL...\n")
		if err := sess.Execute("connect " + dsn); err != nil {
			fmt.Fprintf(os.Stderr, "  Warning: DATABASE_URL connect failed: %v\n", err)
		}
	}

	fmt.Printf("sqlfn (%s): type 'help' for commands, 'exit' to quit\n\n", sess.engine)

	for {
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			break // io.EOF on ctrl-D
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if lower := strings.ToLower(line); lower == "exit" || lower == "quit" {
			break
		}
		if err := sess.Execute(line); err != nil {
			fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		}
	}
	if sess.conn != nil {
		_ = sess.conn.close()
	}
	fmt.Println()
}

func loadEngine() string {
	engine := strings.TrimSpace(strings.ToLower(os.Getenv("SQLFN_ENGINE")))
	if engine == "" {
		return "postgres"
	}
	if !isValidEngine(engine) {
		fmt.Fprintf(os.Stderr, "Warning: invalid SQLFN_ENGINE=%q, defaulting to postgres\n", engine)
		return "postgres"
	}
	return engine
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sqlfn_history")
}
