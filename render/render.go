package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/ordmap"
	"golang.org/x/term"
)

// Config controls console output of a tree.
type Config struct {
	LineWidth int  // maximum runes per line, 0 means unlimited
	Colored   bool // emit ANSI color sequences
	Palette   map[ordmap.Branch]*color.Color
	SizeColor *color.Color
}

// DefaultPalette colors keys by the link they hang from.
func DefaultPalette() map[ordmap.Branch]*color.Color {
	return map[ordmap.Branch]*color.Color{
		ordmap.RootBranch:  color.New(color.FgRed, color.Bold),
		ordmap.LeftBranch:  color.New(color.FgBlue),
		ordmap.RightBranch: color.New(color.FgGreen),
	}
}

// PlainConfig returns a configuration without colors and without clipping.
func PlainConfig() *Config {
	return &Config{}
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and switches on colored output.
func ConfigFromTerminal() *Config {
	config := &Config{
		Palette:   DefaultPalette(),
		SizeColor: color.New(color.FgHiBlack),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colored = true
		w, _, err := term.GetSize(fd)
		if err != nil || w < 20 {
			config.LineWidth = 80
		} else {
			config.LineWidth = w
		}
	}
	tracer().Infof("render: line width %d, colored=%v", config.LineWidth, config.Colored)
	return config
}

const (
	branchMid  = "├── "
	branchLast = "└── "
	pipeMore   = "│   "
	pipeNone   = "    "
)

// Tree writes the shape of m to w, one node per line in pre-order.
// A nil config is treated like PlainConfig.
func Tree[K, V any](m *ordmap.OrderedMap[K, V], w io.Writer, cfg *Config) error {
	if cfg == nil {
		cfg = PlainConfig()
	}
	// more[d] tells if the node printed last at depth d has a sibling to come
	var more []bool
	hasRight := []bool{}
	var err error
	for v := range m.Shape() {
		if len(hasRight) > v.Depth {
			hasRight = hasRight[:v.Depth]
		}
		hasRight = append(hasRight, v.HasRight)
		if len(more) > v.Depth {
			more = more[:v.Depth]
		}
		sibling := v.Branch == ordmap.LeftBranch && hasRight[v.Depth-1]
		more = append(more, sibling)
		var prefix strings.Builder
		for d := 1; d < v.Depth; d++ {
			if more[d] {
				prefix.WriteString(pipeMore)
			} else {
				prefix.WriteString(pipeNone)
			}
		}
		if v.Depth > 0 {
			if sibling {
				prefix.WriteString(branchMid)
			} else {
				prefix.WriteString(branchLast)
			}
		}
		prefix.WriteString(v.Branch.String())
		prefix.WriteByte(' ')
		line := cfg.format(prefix.String(), fmt.Sprintf("%v", v.Key), fmt.Sprintf(" (%d)", v.Size), v.Branch)
		if _, err = io.WriteString(w, line+"\n"); err != nil {
			tracer().Errorf("render: %v", err)
			return err
		}
	}
	return nil
}

// format clips a line to the configured width and colors key and size.
func (cfg *Config) format(prefix, key, size string, b ordmap.Branch) string {
	if cfg.LineWidth > 0 {
		room := cfg.LineWidth - utf8.RuneCountInString(prefix)
		if room <= 0 {
			return clip(prefix, cfg.LineWidth)
		}
		if n := utf8.RuneCountInString(key) + utf8.RuneCountInString(size); n > room {
			key = clip(key, room-1) + "…"
			size = ""
		}
	}
	if cfg.Colored {
		key = paint(cfg.Palette[b], key)
		size = paint(cfg.SizeColor, size)
	}
	return prefix + key + size
}

func paint(c *color.Color, s string) string {
	if c == nil || s == "" {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}

func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
