package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/redblack"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// renderer is what the command needs from a tree, independent of its key type.
type renderer interface {
	String() string
	Check() error
	Dot(io.Writer) error
	RenderHTML(io.Writer) error
	Fprint(io.Writer, *redblack.ConsoleConfig) error
}

type options struct {
	format  string
	strings bool
	check   bool
	trace   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "rbtree [flags] key…",
		Short:        "Insert keys into a red-black tree and render the result",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "console", "output format: snapshot, console, dot or html")
	flags.BoolVar(&opts.strings, "strings", false, "treat keys as strings even if they look like numbers")
	flags.BoolVar(&opts.check, "check", false, "validate the red-black properties after inserting")
	flags.BoolVarP(&opts.trace, "trace", "t", false, "trace fix-up steps to stderr")
	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	if opts.trace {
		t := gologadapter.New()
		t.SetOutput(cmd.ErrOrStderr())
		t.SetTraceLevel(tracing.LevelDebug)
		tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return t }))
	}
	keys := args
	if len(keys) == 0 {
		var err error
		if keys, err = readKeys(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	tree := buildTree(keys, opts.strings)
	if opts.check {
		if err := tree.Check(); err != nil {
			return err
		}
	}
	out := cmd.OutOrStdout()
	switch opts.format {
	case "snapshot":
		_, err := fmt.Fprintln(out, tree.String())
		return err
	case "console":
		return tree.Fprint(out, redblack.ConsoleConfigFromTerminal())
	case "dot":
		return tree.Dot(out)
	case "html":
		if err := tree.RenderHTML(out); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out)
		return err
	}
	return fmt.Errorf("unknown output format %q", opts.format)
}

// buildTree inserts keys as integers if all of them parse as integers and
// asStrings is not set, otherwise as strings.
func buildTree(keys []string, asStrings bool) renderer {
	if !asStrings {
		if ints, ok := parseInts(keys); ok {
			tree := redblack.New[int]()
			for _, k := range ints {
				tree.Insert(k)
			}
			return tree
		}
	}
	tree := redblack.New[string]()
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree
}

func parseInts(keys []string) ([]int, bool) {
	ints := make([]int, 0, len(keys))
	for _, k := range keys {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, false
		}
		ints = append(ints, n)
	}
	return ints, true
}

func readKeys(r io.Reader) ([]string, error) {
	var keys []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		keys = append(keys, scanner.Text())
	}
	return keys, scanner.Err()
}
