// Package scenefile loads focus scenes described in TOML.
//
// A scene file describes the root container and its subtree:
//
//	title = "settings"
//	focus = "volume"
//
//	[root]
//	layout = "column"
//	spacing = 8
//
//	[[root.children]]
//	name = "volume"
//	kind = "input"
//	width = 120
//	height = 24
//
// Containers with a layout arrange their children before their parent is
// arranged, so nested rows, columns and grids compose.
package scenefile

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/phanxgames/wayfinder"
)

var (
	// ErrFocusNotFound indicates the focus name matches no node.
	ErrFocusNotFound = errors.New("focus node not found")
	// ErrFocusNotFocusable indicates the focus node cannot take focus.
	ErrFocusNotFocusable = errors.New("focus node is not focusable")
)

// File is a parsed scene description.
type File struct {
	Title   string  `toml:"title"`
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
	Focus   string  `toml:"focus"`
	Epsilon float64 `toml:"epsilon"`
	Root    Node    `toml:"root"`
}

// Node describes one scene node and its children.
type Node struct {
	Name     string  `toml:"name"`
	Kind     string  `toml:"kind"` // container (default), input, scope
	Enabled  *bool   `toml:"enabled"`
	Visible  *bool   `toml:"visible"`
	X        float64 `toml:"x"`
	Y        float64 `toml:"y"`
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Scale    float64 `toml:"scale"`
	Rotation float64 `toml:"rotation"`
	Layout   string  `toml:"layout"` // none (default), row, column, grid
	Spacing  float64 `toml:"spacing"`
	Padding  float64 `toml:"padding"`
	Columns  int     `toml:"columns"`
	Children []Node  `toml:"children"`
}

// Load reads and parses the scene file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	return Parse(data)
}

// Parse parses a TOML scene description and validates its tree.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	if f.Root.Name == "" {
		f.Root.Name = "root"
	}
	if f.Epsilon < 0 {
		return nil, errors.New("parsing scene: epsilon must not be negative")
	}
	seen := make(map[string]bool)
	if err := validate(&f.Root, seen); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return &f, nil
}

func validate(n *Node, seen map[string]bool) error {
	if n.Name == "" {
		return errors.New("node without a name")
	}
	if seen[n.Name] {
		return fmt.Errorf("duplicate node name %q", n.Name)
	}
	seen[n.Name] = true
	if _, ok := kinds[n.Kind]; !ok {
		return fmt.Errorf("node %q: unknown kind %q", n.Name, n.Kind)
	}
	if _, ok := layouts[n.Layout]; !ok {
		return fmt.Errorf("node %q: unknown layout %q", n.Name, n.Layout)
	}
	if n.Width < 0 || n.Height < 0 {
		return fmt.Errorf("node %q: negative size", n.Name)
	}
	for i := range n.Children {
		if err := validate(&n.Children[i], seen); err != nil {
			return err
		}
	}
	return nil
}

var kinds = map[string]wayfinder.FocusMode{
	"":          wayfinder.FocusNone,
	"container": wayfinder.FocusNone,
	"input":     wayfinder.FocusInput,
	"scope":     wayfinder.FocusScope,
}

var layouts = map[string]wayfinder.Layout{
	"":       wayfinder.LayoutNone,
	"none":   wayfinder.LayoutNone,
	"row":    wayfinder.LayoutRow,
	"column": wayfinder.LayoutColumn,
	"grid":   wayfinder.LayoutGrid,
}

// Build creates a scene from the description and focuses the node named
// by Focus, if any.
func (f *File) Build() (*wayfinder.Scene, error) {
	s := wayfinder.NewScene()
	if f.Epsilon > 0 {
		cfg := wayfinder.DefaultConfig()
		cfg.Epsilon = f.Epsilon
		s.ApplyConfig(cfg)
	}
	root := s.Root()
	root.Name = f.Root.Name
	populate(root, &f.Root)

	if f.Focus == "" {
		return s, nil
	}
	target := root.FindChild(f.Focus)
	if target == nil {
		return nil, fmt.Errorf("%w: %q", ErrFocusNotFound, f.Focus)
	}
	if !target.IsFocusable() {
		return nil, fmt.Errorf("%w: %q", ErrFocusNotFocusable, f.Focus)
	}
	s.SetFocus(target)
	return s, nil
}

// populate copies desc onto n, builds its children and arranges them.
func populate(n *wayfinder.Node, desc *Node) {
	n.Focus = kinds[desc.Kind]
	n.ScopeEnabled = desc.Enabled == nil || *desc.Enabled
	if desc.Visible != nil {
		n.Visible = *desc.Visible
	}
	n.SetPosition(desc.X, desc.Y)
	n.SetSize(desc.Width, desc.Height)
	if desc.Scale > 0 {
		n.SetScale(desc.Scale, desc.Scale)
	}
	n.SetRotation(desc.Rotation)

	for i := range desc.Children {
		c := &desc.Children[i]
		child := wayfinder.NewContainer(c.Name)
		populate(child, c)
		n.AddChild(child)
	}
	wayfinder.Arrange(n, wayfinder.LayoutSpec{
		Kind:    layouts[desc.Layout],
		Spacing: desc.Spacing,
		Padding: desc.Padding,
		Columns: desc.Columns,
	})
}
