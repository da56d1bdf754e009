package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/rs/zerolog"

	"github.com/arithmech/arith"
)

const historyFile = ".arith_history"

// Exit status: 0 when every expression reduced to a number, 2 when any left
// a residual tree, 1 on any lex/parse/eval error. Errors win over residuals.
const (
	statusOK       = 0
	statusError    = 1
	statusResidual = 2
)

func worse(a, b int) int {
	if a == statusError || b == statusError {
		return statusError
	}
	if a == statusResidual || b == statusResidual {
		return statusResidual
	}
	return statusOK
}

type evaluator struct {
	tab    *arith.SymbolTable
	log    zerolog.Logger
	tokens bool
	tree   bool
}

// eval runs one expression through the pipeline and prints the result,
// returning an exit status for it.
func (ev *evaluator) eval(src string) int {
	toks := arith.Lex(src)
	if ev.tokens {
		for _, t := range toks {
			ev.log.Debug().Stringer("token", t).Msg("lexed")
		}
	}
	n, err := arith.Parse(toks)
	if err != nil {
		ev.log.Error().Err(err).Str("expr", src).Msg("parse failed")
		return statusError
	}
	if ev.tree {
		ev.log.Debug().Stringer("tree", n).Msg("parsed")
	}
	r, err := arith.Simplify(n, ev.tab)
	if err != nil {
		ev.log.Error().Err(err).Str("expr", src).Msg("evaluation failed")
		return statusError
	}
	fmt.Println(r)
	if !r.IsNumber() {
		return statusResidual
	}
	return statusOK
}

// bind stores the result of an expression under a name. Residual results
// bind as expressions, so later definitions can resolve them further.
func (ev *evaluator) bind(name, src string) error {
	r, err := arith.SimplifyString(src, ev.tab)
	if err != nil {
		return err
	}
	if r.IsNumber() {
		ev.tab.Insert(name, arith.Constant(r.Number()))
	} else {
		ev.tab.Insert(name, r.Node())
	}
	return nil
}

func main() {
	var (
		inname     string
		showTokens bool
		showTree   bool
		verbose    bool
		givens     [][2]string
	)
	addGiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		givens = append(givens, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.Func("given", "name=value variable definition (any number of times)", addGiven)
	flag.BoolVar(&showTokens, "tokens", false, "log the token stream of each expression")
	flag.BoolVar(&showTree, "tree", false, "log parse trees")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(level)

	ev := &evaluator{tab: &arith.SymbolTable{}, log: logger, tokens: showTokens, tree: showTree}
	for _, d := range givens {
		if err := ev.bind(d[0], d[1]); err != nil {
			logger.Fatal().Err(err).Str("name", d[0]).Msg("bad -given definition")
		}
	}

	status := statusOK
	switch {
	case inname != "":
		f, err := os.Open(inname)
		if err != nil {
			logger.Fatal().Err(err).Msg("cannot open input")
		}
		status = evalLines(ev, f)
		f.Close()
	case flag.NArg() > 0:
		for _, src := range flag.Args() {
			status = worse(status, ev.eval(src))
		}
	case liner.TerminalSupported():
		status = repl(ev)
	default:
		status = evalLines(ev, os.Stdin)
	}
	os.Exit(status)
}

// evalLines evaluates each nonempty line of r as one expression.
func evalLines(ev *evaluator, r io.Reader) int {
	status := statusOK
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		status = worse(status, ev.eval(line))
	}
	if err := scan.Err(); err != nil {
		ev.log.Error().Err(err).Msg("reading input")
		return statusError
	}
	return status
}

// repl runs an interactive loop. Lines of the form "name = expr" bind a
// symbol; anything else evaluates.
func repl(ev *evaluator) int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println("arith: Ctrl+C cancels input, Ctrl+D exits.")
	for {
		line, err := ln.Prompt("> ")
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Println()
			return statusOK
		case err != nil:
			ev.log.Error().Err(err).Msg("reading input")
			return statusError
		}
		src := strings.TrimSpace(line)
		if src == "" {
			continue
		}
		ln.AppendHistory(src)
		if name, expr, ok := splitBinding(src); ok {
			if err := ev.bind(name, expr); err != nil {
				ev.log.Error().Err(err).Str("name", name).Msg("binding failed")
			}
			continue
		}
		ev.eval(src)
	}
}

// splitBinding recognizes "name = expr" lines, where name lexes as a single
// identifier.
func splitBinding(src string) (name, expr string, ok bool) {
	i := strings.IndexByte(src, '=')
	if i < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(src[:i])
	toks := arith.Lex(name)
	if len(toks) != 1 || toks[0].Kind != arith.TokenIdent || toks[0].Text != name {
		return "", "", false
	}
	return name, strings.TrimSpace(src[i+1:]), true
}
