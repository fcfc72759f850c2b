package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/nestchart/internal/adapter/input"
	"github.com/jmylchreest/nestchart/internal/model"
	"github.com/jmylchreest/nestchart/internal/render"
	"github.com/jmylchreest/nestchart/internal/series"
	"github.com/jmylchreest/nestchart/internal/theme"
)

var renderOpts struct {
	series     string
	data       string
	out        string
	id         string
	title      string
	stylesheet string
	dark       bool
	watch      bool
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a dataset as an HTML chart page",
	Long: `Render a dataset as a line chart page through go-echarts. Series are
named by their labels and colored for the active theme; the generated
chart stylesheet is injected into the page.

With --watch the series file is watched and the page is re-rendered on
every change until interrupted.

Dataset files hold {x: <category field>, rows: [...]} or a bare list of
rows.

Examples:
  nestchart render --series sleep.toml --data week.json --out week.html
  nestchart render --series sleep.toml --data week.yaml --out week.html --dark --watch`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderOpts.series, "series", "",
		"Series file (TOML, YAML or JSON)")
	renderCmd.Flags().StringVar(&renderOpts.data, "data", "",
		"Dataset file (JSON or YAML, - for stdin)")
	renderCmd.Flags().StringVarP(&renderOpts.out, "out", "o", "",
		"Output HTML file")
	renderCmd.Flags().StringVar(&renderOpts.id, "id", "",
		"Chart id suffix (generated if empty)")
	renderCmd.Flags().StringVar(&renderOpts.title, "title", "",
		"Page title (default from config)")
	renderCmd.Flags().StringVar(&renderOpts.stylesheet, "stylesheet", "",
		"Extra CSS file appended to the page (default from config)")
	renderCmd.Flags().BoolVar(&renderOpts.dark, "dark", false,
		"Use the dark theme (default from config)")
	renderCmd.Flags().BoolVarP(&renderOpts.watch, "watch", "w", false,
		"Re-render when the series file changes")
	_ = renderCmd.MarkFlagRequired("series")
	_ = renderCmd.MarkFlagRequired("data")
	_ = renderCmd.MarkFlagRequired("out")
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := input.ReadDataset(renderOpts.data)
	if err != nil {
		return err
	}

	po := render.PageOptions{
		Title:      firstSet(renderOpts.title, cfg.Render.Title),
		Width:      cfg.Render.Width,
		Height:     cfg.Render.Height,
		AssetsHost: cfg.Render.AssetsHost,
		Dark:       renderOpts.dark || cfg.Render.Dark,
		Logger:     logger,
	}

	if path := firstSet(renderOpts.stylesheet, cfg.Render.Stylesheet); path != "" {
		po.Stylesheet, err = theme.LoadStylesheet(path)
		if err != nil {
			return fmt.Errorf("failed to load stylesheet: %w", err)
		}
	}

	if !renderOpts.watch {
		s, err := loadSeries(renderOpts.series)
		if err != nil {
			return err
		}
		return writePageFile(renderOpts.out, s, data, po)
	}

	watcher, err := series.NewWatcher(renderOpts.series, registry, logger)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	if err := writePageFile(renderOpts.out, watcher.Current(), data, po); err != nil {
		return err
	}

	watcher.OnChange(func(s *series.Config) {
		if err := writePageFile(renderOpts.out, s, data, po); err != nil {
			logger.Warn("failed to re-render page", "file", renderOpts.out, "error", err)
			return
		}
		logger.Info("page re-rendered", "file", renderOpts.out, "series", s.Len())
	})
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start series watcher: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s, writing %s (Ctrl+C to stop)\n", renderOpts.series, renderOpts.out)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Debug("received signal, shutting down", "signal", sig)

	return nil
}

// writePageFile renders the page to a temporary file next to path and
// renames it into place, so a browser reloading the page never sees a
// partial write.
func writePageFile(path string, s *series.Config, data model.Dataset, po render.PageOptions) error {
	c, err := newContainer(renderOpts.id, s)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".nestchart-*.html")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}

	if err := render.WritePage(tmp, c, data, po); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
