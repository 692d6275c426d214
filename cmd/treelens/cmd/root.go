// ABOUTME: Root command for the treelens CLI
// ABOUTME: Loads configuration, sets up logging and reads tree sources for subcommands

package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/prateek/treelens/bracket"
	"github.com/prateek/treelens/internal/config"
	"github.com/prateek/treelens/treebank"
)

// app carries the persistent flag values and what PersistentPreRunE derives
// from them.
type app struct {
	cfgFile        string
	logLevel       string
	format         string
	open           string
	close          string
	ignoreTrailing bool
	noNormalize    bool
	maxErrors      int

	cfg config.Config
	log *slog.Logger
}

// NewRootCmd builds the command tree with fresh flag state
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "treelens",
		Short: "Inspect bracketed parse trees",
		Long: `treelens reads bracketed parse trees, one per line, such as

  (ROOT (S (NP (PRP$ My) (NN dog)) (VP (VBZ barks))))

and answers structural questions about them: which labels dominate
which, what a node can reach and how the dominator tree looks.

A JSON document written by "treelens parse --output json" can be read
back in place of bracket text. Use "-" as FILE to read standard input.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.format, "format", "", "input format: auto, bracket or json")
	pf.StringVar(&a.open, "open", "", "open delimiter")
	pf.StringVar(&a.close, "close", "", "close delimiter")
	pf.BoolVar(&a.ignoreTrailing, "ignore-trailing", false, "ignore text after the root closes")
	pf.BoolVar(&a.noNormalize, "no-normalize", false, "skip leaf wrapping before building")
	pf.IntVar(&a.maxErrors, "max-errors", 0, "stop after this many malformed trees (0 for no limit)")

	root.AddCommand(
		newParseCmd(a),
		newDominatesCmd(a),
		newReachCmd(a),
		newDomtreeCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI against os.Args
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads the config file and environment, then applies any flags the
// user set explicitly on top.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("open") {
		cfg.Open = a.open
	}
	if flags.Changed("close") {
		cfg.Close = a.close
	}
	if flags.Changed("ignore-trailing") {
		cfg.IgnoreTrailing = a.ignoreTrailing
	}
	if flags.Changed("no-normalize") {
		cfg.Normalize = !a.noNormalize
	}
	if flags.Changed("max-errors") {
		cfg.MaxErrors = a.maxErrors
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	return nil
}

// readTrees parses every tree in the named source. Malformed trees are
// logged and returned alongside the good ones.
func (a *app) readTrees(cmd *cobra.Command, name string) ([]treebank.Result, error) {
	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	p, body, err := a.selectParser(r)
	if err != nil {
		return nil, err
	}
	a.log.Debug("reading trees", "source", name, "parser", p.Name())

	results, err := p.Parse(body)
	if err != nil {
		return nil, err
	}

	bad := 0
	for _, res := range results {
		if res.Err != nil {
			bad++
			a.log.Warn("skipping malformed tree", "line", res.Line, "error", res.Err)
		}
	}
	a.log.Debug("read trees", "total", len(results), "malformed", bad)
	return results, nil
}

// selectParser honours an explicit format, otherwise sniffs the input. The
// bracket parser always uses the configured delimiters and policies.
func (a *app) selectParser(r io.Reader) (treebank.Parser, io.Reader, error) {
	lines := bracket.NewLineParser(a.cfg.BracketOptions())
	lines.MaxErrors = a.cfg.MaxErrors

	switch a.cfg.Format {
	case "bracket":
		return lines, r, nil
	case "json":
		p, err := treebank.Lookup("json")
		return p, r, err
	}

	br := bufio.NewReader(r)
	peek, _ := br.Peek(4096)
	if lines.CanParse(bytes.NewReader(peek)) {
		return lines, br, nil
	}

	p, body, err := treebank.Detect(br)
	if err != nil {
		return nil, nil, fmt.Errorf("detecting input format: %w", err)
	}
	if p.Name() == lines.Name() {
		return lines, body, nil
	}
	return p, body, nil
}
