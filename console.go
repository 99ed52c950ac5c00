package redblack

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ConsoleConfig configures the console rendering of a tree.
type ConsoleConfig struct {
	LineWidth int            // maximum width of an output line, in fixed-width ‘en’s
	Indent    int            // indentation per tree level
	Colored   bool           // output red nodes in color
	Context   *uax11.Context // context for measuring the width of key labels
}

// ConsoleConfigFromTerminal is a simple helper for creating a console
// configuration. It checks whether stdout is a terminal, and if so it reads the
// terminal's width and enables colored output.
func ConsoleConfigFromTerminal() *ConsoleConfig {
	config := &ConsoleConfig{
		LineWidth: 80,
		Indent:    4,
		Context:   uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 20 {
			config.LineWidth = w
		}
		config.Colored = !color.NoColor
	}
	return config
}

var setupGraphemes sync.Once

// Fprint renders a tree sideways to w: the root is at the left margin, right
// subtrees are printed above and left subtrees below their parent. Red nodes
// are highlighted if config.Colored is set.
//
// If config is nil, ConsoleConfigFromTerminal is used. Labels which would
// exceed config.LineWidth are elided.
func (t *Tree[K]) Fprint(w io.Writer, config *ConsoleConfig) error {
	if config == nil {
		config = ConsoleConfigFromTerminal()
	}
	cfg := *config
	if cfg.Context == nil {
		cfg.Context = uax11.LatinContext
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	if t == nil || t.root == nil {
		_, err := io.WriteString(w, "-\n")
		return err
	}
	red := color.New(color.FgRed, color.Bold)
	black := color.New(color.Bold)
	if cfg.Colored {
		red.EnableColor()
		black.EnableColor()
	} else {
		red.DisableColor()
		black.DisableColor()
	}
	p := consolePrinter[K]{w: w, config: &cfg, red: red, black: black}
	p.print(t.root, 0, "")
	return p.err
}

type consolePrinter[K any] struct {
	w          io.Writer
	config     *ConsoleConfig
	red, black *color.Color
	err        error
}

func (p *consolePrinter[K]) print(n *Node[K], depth int, branch string) {
	if n == nil || p.err != nil {
		return
	}
	p.print(n.right, depth+1, "┌── ")
	indent := strings.Repeat(" ", max(0, depth-1)*p.config.Indent)
	if depth == 0 {
		branch = ""
	}
	label := n.String()
	used := textWidth(indent+branch, p.config.Context)
	width := textWidth(label, p.config.Context)
	if p.config.LineWidth > 0 && used+width > p.config.LineWidth {
		label = "…"
	}
	if _, err := io.WriteString(p.w, indent+branch); err != nil {
		p.err = err
		return
	}
	c := p.black
	if n.color == Red {
		c = p.red
	}
	if _, err := c.Fprint(p.w, label); err != nil {
		p.err = err
		return
	}
	if _, err := fmt.Fprintln(p.w); err != nil {
		p.err = err
		return
	}
	p.print(n.left, depth+1, "└── ")
}

// textWidth measures s in fixed-width ‘en’s. grapheme strings cannot be
// created from an empty string.
func textWidth(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}
