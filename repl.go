package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/peterh/liner"

	"github.com/sergev/golox/internal/config"
	"github.com/sergev/golox/parser"
)

func runREPL(cfg config.Config) {
	if !isInteractive() {
		runBufferedREPL(bufio.NewReader(os.Stdin))
		return
	}
	runInteractiveREPL(cfg)
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// runBufferedREPL reads lines without line editing, for piped input. The
// parse semantics match the interactive loop: incomplete input keeps
// accumulating until the pipe ends.
func runBufferedREPL(reader *bufio.Reader) {
	var buffer strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				if buffer.Len() == 0 && strings.TrimSpace(line) == "" {
					return
				}
			} else {
				fmt.Fprintf(os.Stderr, "read error: %v\n", err)
				return
			}
		}
		buffer.WriteString(line)
		src := buffer.String()
		if strings.TrimSpace(src) == "" {
			buffer.Reset()
			if errors.Is(err, io.EOF) {
				return
			}
			continue
		}
		out, parseErr := renderSource(src, activeMode())
		if parseErr != nil {
			if parser.IsIncomplete(parseErr) && !errors.Is(err, io.EOF) {
				continue
			}
			reportREPLError(parseErr)
			buffer.Reset()
			if errors.Is(err, io.EOF) {
				return
			}
			continue
		}
		buffer.Reset()
		fmt.Println(out)
		if errors.Is(err, io.EOF) {
			return
		}
	}
}

func runInteractiveREPL(cfg config.Config) {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	if cfg.HistoryFile != "" {
		if f, err := os.Open(cfg.HistoryFile); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(cfg.HistoryFile); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	var buffer strings.Builder

	for {
		prompt := cfg.Prompt
		if buffer.Len() > 0 {
			prompt = continuationPrompt(cfg.Prompt)
		}
		input, err := state.Prompt(prompt)
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Println()
				buffer.Reset()
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return
			default:
				fmt.Fprintf(os.Stderr, "read error: %v\n", err)
				return
			}
		}

		trimmed := strings.TrimSpace(input)
		if buffer.Len() == 0 {
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, ":") {
				state.AppendHistory(trimmed)
				if handleMeta(trimmed, os.Stdout, os.Stderr) {
					return
				}
				continue
			}
		}

		buffer.WriteString(input)
		buffer.WriteString("\n")

		src := buffer.String()
		out, parseErr := renderSource(src, activeMode())
		if parseErr != nil {
			if parser.IsIncomplete(parseErr) {
				continue
			}
			reportREPLError(parseErr)
			buffer.Reset()
			continue
		}

		buffer.Reset()
		state.AppendHistory(strings.TrimSpace(src))
		fmt.Println(out)
	}
}

// continuationPrompt is a dotted prompt of the same width as the normal
// one, so continued lines stay visually aligned.
func continuationPrompt(prompt string) string {
	dots := len(prompt) - 2
	if dots < 1 {
		dots = 1
	}
	return strings.Repeat(".", dots) + " "
}

func reportREPLError(err error) {
	if !printDiagnostics(os.Stderr, err) {
		fmt.Fprintf(os.Stderr, "golox: %v\n", err)
	}
}

var metaCommands = []string{"help", "quit", "tokens", "inspect"}

const metaHelp = `:help           show this help
:quit           leave the session
:tokens EXPR    scan EXPR and print its token listing
:inspect EXPR   parse EXPR and dump the tree structure
`

// handleMeta runs one :command line and reports whether the session
// should end.
func handleMeta(line string, out, errOut io.Writer) bool {
	name, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case "quit":
		return true
	case "help":
		fmt.Fprint(out, metaHelp)
	case "tokens":
		printMetaSource(out, errOut, name, arg, modeTokens)
	case "inspect":
		printMetaSource(out, errOut, name, arg, modeInspect)
	default:
		msg := fmt.Sprintf("unknown command :%s", name)
		if s := suggestMeta(name); s != "" {
			msg += fmt.Sprintf(" (did you mean :%s?)", s)
		}
		fmt.Fprintln(errOut, msg)
	}
	return false
}

func printMetaSource(out, errOut io.Writer, name, src string, mode renderMode) {
	if src == "" {
		fmt.Fprintf(errOut, "usage: :%s EXPR\n", name)
		return
	}
	rendered, err := renderSource(src, mode)
	if err != nil {
		if !printDiagnostics(errOut, err) {
			fmt.Fprintf(errOut, "golox: %v\n", err)
		}
		return
	}
	fmt.Fprintln(out, rendered)
}

// suggestMeta returns the known command closest to name, or "" when
// nothing matches even loosely.
func suggestMeta(name string) string {
	best := ""
	bestRank := -1
	for _, cmd := range metaCommands {
		rank := fuzzy.RankMatchNormalizedFold(name, cmd)
		if rank < 0 {
			continue
		}
		if bestRank < 0 || rank < bestRank {
			best, bestRank = cmd, rank
		}
	}
	return best
}
