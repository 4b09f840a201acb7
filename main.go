package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/sergev/golox/internal/config"
	"github.com/sergev/golox/internal/logs"
	"github.com/sergev/golox/internal/term"
	"github.com/sergev/golox/parser"
)

const version = "0.1.0"

var (
	cfgFile    string
	verbose    bool
	showTokens bool
	inspectAST bool
)

// errReported marks failures whose diagnostics were already rendered, so
// main only sets the exit status.
var errReported = errors.New("diagnostics reported")

var rootCmd = &cobra.Command{
	Use:   "golox [script]",
	Short: "Scanner and parser for the Lox expression language",
	Long: `golox scans and parses Lox expressions.

With a script argument the whole file is processed in one pass and the
parsed expression is printed in its parenthesised form. Without arguments
golox reads expressions interactively.`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := logs.Setup(verbose, cfg.LogFile); err != nil {
			return err
		}
		term.SetColorMode(cfg.Color)
		if len(args) == 1 {
			return runFile(args[0])
		}
		runREPL(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.golox.toml or ~/.golox.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	rootCmd.Flags().BoolVar(&showTokens, "tokens", false, "print the token listing instead of parsing")
	rootCmd.Flags().BoolVar(&inspectAST, "inspect", false, "dump the structure of the parsed expression")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "golox: %v\n", err)
		}
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err == nil {
			slog.Debug("configuration loaded", "path", cfgFile)
		}
		return cfg, err
	}
	return config.LoadDefault()
}

// runFile processes one whole source file. Blank files are a no-op;
// diagnostics are rendered to stderr and turn into a bare exit status.
func runFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	src := string(data)
	if strings.TrimSpace(src) == "" {
		return nil
	}
	slog.Debug("processing file", "path", path, "bytes", len(src))
	out, err := renderSource(src, activeMode())
	if err != nil {
		if printDiagnostics(os.Stderr, err) {
			return errReported
		}
		return err
	}
	fmt.Println(out)
	return nil
}

// renderMode selects what one source text is rendered into.
type renderMode int

const (
	modeRender  renderMode = iota // parenthesised expression
	modeTokens                    // token listing
	modeInspect                   // structural dump of the tree
)

func activeMode() renderMode {
	switch {
	case showTokens:
		return modeTokens
	case inspectAST:
		return modeInspect
	}
	return modeRender
}

// inspectCfg keeps structural dumps deterministic.
var inspectCfg = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// renderSource turns one complete source text into its printable form.
// A non-nil error is the untouched scan or parse error.
func renderSource(src string, mode renderMode) (string, error) {
	if mode == modeTokens {
		tokens, err := parser.ScanString(src)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for i, tok := range tokens {
			if i > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%d:%d\t%s\t%s", tok.Pos.Line, tok.Pos.Column, tok.Type, tok.Lexeme)
		}
		return b.String(), nil
	}
	expr, err := parser.ParseString(src)
	if err != nil {
		return "", err
	}
	if mode == modeInspect {
		return strings.TrimRight(inspectCfg.Sdump(expr), "\n"), nil
	}
	return expr.String(), nil
}

// printDiagnostics renders every diagnostic in err with its caret block.
// It reports whether err was a diagnostic list at all.
func printDiagnostics(w io.Writer, err error) bool {
	var list parser.ErrorList
	if !errors.As(err, &list) {
		return false
	}
	for _, d := range list {
		fmt.Fprintln(w, term.RenderDiagnostic(d))
	}
	return true
}
