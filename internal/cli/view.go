package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phanxgames/wayfinder"
	"github.com/phanxgames/wayfinder/internal/termview"
)

type viewOpts struct {
	watch   bool
	logFile string
}

func newViewCmd(v *viper.Viper) *cobra.Command {
	var opts viewOpts

	cmd := &cobra.Command{
		Use:   "view <scene.toml>",
		Short: "Browse a scene in the terminal with the arrow keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, v, args[0], opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload the scene when the file changes")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs here while the viewer owns the terminal")
	return cmd
}

func runView(cmd *cobra.Command, v *viper.Viper, path string, opts viewOpts) error {
	// The viewer owns the terminal, so logs go to a file or nowhere.
	var w io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	logger := newLogger(w, loggerFromContext(cmd.Context()).GetLevel())

	file, s, err := loadScene(v, logger, path)
	if err != nil {
		return err
	}
	title := file.Title
	if title == "" {
		title = path
	}

	model := termview.New(title, s, logger).WithLoader(func(path string) (*wayfinder.Scene, error) {
		_, s, err := loadScene(v, logger, path)
		return s, err
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

	if opts.watch {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		if err := termview.Watch(ctx, path, p.Send); err != nil {
			return err
		}
		logger.Info("watching", "path", path)
	}

	_, err = p.Run()
	return err
}
