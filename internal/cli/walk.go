package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phanxgames/wayfinder"
)

type walkOpts struct {
	moves []string
	from  string
}

func newWalkCmd(v *viper.Viper) *cobra.Command {
	var opts walkOpts

	cmd := &cobra.Command{
		Use:   "walk <scene.toml>",
		Short: "Apply a sequence of moves and print where focus goes",
		Example: `  wayfinder walk menu.toml --moves right,right,down
  wayfinder walk menu.toml --from volume --moves up`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWalk(cmd, v, args[0], opts)
		},
	}
	cmd.Flags().StringSliceVarP(&opts.moves, "moves", "m", nil, "comma-separated moves: up, down, left, right")
	cmd.Flags().StringVar(&opts.from, "from", "", "node to focus first (default: the scene's focus)")
	return cmd
}

func runWalk(cmd *cobra.Command, v *viper.Viper, path string, opts walkOpts) error {
	dirs := make([]wayfinder.CompassDirection, 0, len(opts.moves))
	for _, m := range opts.moves {
		dir, ok := wayfinder.ParseCompassDirection(strings.ToLower(strings.TrimSpace(m)))
		if !ok {
			return fmt.Errorf("unknown move %q", m)
		}
		dirs = append(dirs, dir)
	}

	logger := loggerFromContext(cmd.Context())
	_, s, err := loadScene(v, logger, path)
	if err != nil {
		return err
	}
	if opts.from != "" {
		n := s.Root().FindChild(opts.from)
		if n == nil || !n.IsFocusable() {
			if hint := suggest(s.Root(), opts.from); hint != "" {
				return fmt.Errorf("no focusable node %q (did you mean %q?)", opts.from, hint)
			}
			return fmt.Errorf("no focusable node %q", opts.from)
		}
		s.SetFocus(n)
	}
	if s.Focused() == nil {
		return errors.New("scene has no focus; set focus in the file or pass --from")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "start: %s\n", s.Focused())
	for _, dir := range dirs {
		from := s.Focused()
		if s.MoveFocus(dir) {
			fmt.Fprintf(out, "%s: %s -> %s\n", dir, from, s.Focused())
		} else {
			fmt.Fprintf(out, "%s: no target from %s\n", dir, from)
		}
	}
	logger.Debug("walk finished", "moves", len(dirs), "focus", s.Focused())
	return nil
}

// maxSuggestDistance bounds how different a name may be and still be offered
// as a correction.
const maxSuggestDistance = 2

// suggest returns the focusable node name closest to name, or "" when none is
// within maxSuggestDistance edits.
func suggest(root *wayfinder.Node, name string) string {
	best, bestDist := "", maxSuggestDistance+1
	var walk func(n *wayfinder.Node)
	walk = func(n *wayfinder.Node) {
		for _, c := range n.Children() {
			if c.IsFocusable() {
				if d := levenshtein.ComputeDistance(name, c.Name); d < bestDist {
					best, bestDist = c.Name, d
				}
			}
			walk(c)
		}
	}
	walk(root)
	return best
}
