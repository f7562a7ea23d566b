package inspect

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/ordset"
	"github.com/npillmayer/ordset/avltree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/xlab/treeprint"
	"golang.org/x/term"
)

// Config controls console output of a set's tree.
type Config struct {
	// MaxLabelWidth is the maximum width of a key label, measured in fixed
	// width positions (‘en’s). Wider labels are truncated. 0 means unlimited.
	MaxLabelWidth int
	// Colored switches on coloured output of keys.
	Colored bool
	// Context is used to determine the display width of labels. If nil,
	// uax11.LatinContext is used.
	Context *uax11.Context
}

// Palette holds the colors used for printing.
type Palette struct {
	Key   *color.Color // color of node keys
	Meta  *color.Color // color of height/max annotations
	Empty *color.Color // color of placeholders for absent children
}

// DefaultPalette is used if Print is called without an explicit palette.
func DefaultPalette() Palette {
	return Palette{
		Key:   color.New(color.FgBlue, color.Bold),
		Meta:  color.New(color.FgHiBlack),
		Empty: color.New(color.FgRed),
	}
}

// emptyChild marks an absent child whose sibling is present.
const emptyChild = "·"

var setupGraphemes sync.Once

// Print outputs the tree structure of s to w.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func Print[T any](w io.Writer, s *ordset.Set[T], config *Config) error {
	return PrintWithPalette(w, s, config, DefaultPalette())
}

// PrintWithPalette is like Print, but uses colors from palette.
func PrintWithPalette[T any](w io.Writer, s *ordset.Set[T], config *Config, palette Palette) error {
	if w == nil {
		return ordset.ErrIllegalArguments
	}
	tree := Tree(s, config, palette)
	if _, err := w.Write(tree.Bytes()); err != nil {
		tracer().Errorf("inspect: %s", err.Error())
		return err
	}
	return nil
}

// Tree lays out the tree structure of s as a treeprint.Tree, which clients may
// amend before printing.
//
// Every node is shown as "[h=<height> max=<max>]  <key>". Left children are
// listed before right children; if only one child is present, the absent one
// is shown as a dot.
func Tree[T any](s *ordset.Set[T], config *Config, palette Palette) treeprint.Tree {
	if config == nil {
		config = ConfigFromTerminal()
	}
	p := &printer[T]{config: config, palette: palette.normalized(config.Colored)}
	root := s.Root()
	if root == nil {
		return treeprint.NewWithRoot(p.palette.Empty.Sprint("∅"))
	}
	out := treeprint.NewWithRoot(fmt.Sprintf("[%s]  %s", p.meta(root), p.key(root)))
	p.children(out, root)
	return out
}

type printer[T any] struct {
	config  *Config
	palette Palette
}

func (p *printer[T]) children(branch treeprint.Tree, n *avltree.Node[T]) {
	if n.Left() == nil && n.Right() == nil {
		return
	}
	for _, child := range []*avltree.Node[T]{n.Left(), n.Right()} {
		switch {
		case child == nil:
			branch.AddNode(p.palette.Empty.Sprint(emptyChild))
		case child.Left() == nil && child.Right() == nil:
			branch.AddMetaNode(p.meta(child), p.key(child))
		default:
			p.children(branch.AddMetaBranch(p.meta(child), p.key(child)), child)
		}
	}
}

func (p *printer[T]) key(n *avltree.Node[T]) string {
	return p.palette.Key.Sprint(p.label(n.Key()))
}

func (p *printer[T]) meta(n *avltree.Node[T]) string {
	return p.palette.Meta.Sprintf("h=%d max=%s", n.Height(), p.label(n.MaxValue()))
}

func (p *printer[T]) label(k T) string {
	return truncate(fmt.Sprint(k), p.config.MaxLabelWidth, p.config.Context)
}

// truncate shortens s to at most maxWidth display positions, ending it with an
// ellipsis if anything has been cut off.
func truncate(s string, maxWidth int, context *uax11.Context) string {
	if maxWidth <= 0 {
		return s
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	if displayWidth(s, context) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if displayWidth(string(runes), context)+1 <= maxWidth {
			break
		}
	}
	return string(runes) + "…"
}

func displayWidth(s string, context *uax11.Context) int {
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

func (pal Palette) normalized(colored bool) Palette {
	def := DefaultPalette()
	if pal.Key == nil {
		pal.Key = def.Key
	}
	if pal.Meta == nil {
		pal.Meta = def.Meta
	}
	if pal.Empty == nil {
		pal.Empty = def.Empty
	}
	if !colored {
		plain := color.New()
		plain.DisableColor()
		pal.Key, pal.Meta, pal.Empty = plain, plain, plain
	} else {
		pal.Key.EnableColor()
		pal.Meta.EnableColor()
		pal.Empty.EnableColor()
	}
	return pal
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it switches on colors and
// limits the label width relative to the terminal's width.
func ConfigFromTerminal() *Config {
	config := &Config{
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colored = true
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 0 {
			config.MaxLabelWidth = 20
		} else if w > 80 {
			config.MaxLabelWidth = w / 4
		} else {
			config.MaxLabelWidth = max(w/3, 8)
		}
	}
	tracer().P("inspect", "console").Infof("setting label width to %d en", config.MaxLabelWidth)
	return config
}
