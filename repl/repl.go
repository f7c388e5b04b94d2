package repl

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/Bike/scheme/pkg/environ"
	"github.com/Bike/scheme/pkg/eval"
	"github.com/Bike/scheme/pkg/ground"
	"github.com/Bike/scheme/pkg/lisp"
	"github.com/Bike/scheme/pkg/reader"
	"github.com/chzyer/readline"
)

// Config configures a repl.
type Config struct {
	Prompt string
	// HistoryFile is where input lines are saved between sessions.  When
	// empty history is not saved.
	HistoryFile string
	Stdout      io.Writer
	Stderr      io.Writer
}

// RunRepl runs a simple repl on the terminal.
func RunRepl(config Config) error {
	env := ground.Ground()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          config.Prompt,
		HistoryFile:     config.HistoryFile,
		AutoComplete:    &completer{names: environ.Names(env)},
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	if config.Stdout == nil {
		config.Stdout = rl.Stdout()
	}
	if config.Stderr == nil {
		config.Stderr = rl.Stderr()
	}
	return loop(rl, env, config.Stdout, config.Stderr)
}

// lineReader is implemented by *readline.Instance.
type lineReader interface {
	Readline() (string, error)
}

func loop(rl lineReader, env lisp.LVal, stdout, stderr io.Writer) error {
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		evalLine(env, line, stdout, stderr)
	}
}

// evalLine reads one expression from line, evaluates it in env and prints
// the result to stdout.  Errors are printed to stderr.
func evalLine(env lisp.LVal, line string, stdout, stderr io.Writer) {
	form, err := reader.Read(line)
	if err != nil {
		fmt.Fprintln(stderr, "read error:", err)
		return
	}
	v, err := eval.EvalProtected(form, env)
	var ierr *lisp.InvariantError
	switch {
	case errors.As(err, &ierr):
		// the message is already prefixed with "internal error:"
		fmt.Fprintln(stderr, ierr)
	case err != nil:
		fmt.Fprintln(stderr, "eval error:", err)
	default:
		fmt.Fprintln(stdout, v)
	}
}

// completer completes the symbol under the cursor with names bound in the
// repl environment.
type completer struct {
	names []string
}

var _ readline.AutoCompleter = (*completer)(nil)

func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && !isDelimiter(line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])
	var candidates []string
	for _, name := range c.names {
		if strings.HasPrefix(name, prefix) {
			candidates = append(candidates, name[len(prefix):])
		}
	}
	sort.Strings(candidates)
	suffixes := make([][]rune, len(candidates))
	for i := range candidates {
		suffixes[i] = []rune(candidates[i])
	}
	return suffixes, len([]rune(prefix))
}

func isDelimiter(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '(', ')', '\'', '.':
		return true
	}
	return false
}
