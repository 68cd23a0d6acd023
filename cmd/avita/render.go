package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/chrisuehlinger/avita/config"
	"github.com/chrisuehlinger/avita/dom"
	"github.com/chrisuehlinger/avita/html"
	"github.com/chrisuehlinger/avita/js"
	"github.com/chrisuehlinger/avita/network"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	out          string
	width        float64
	height       float64
	root         string
	template     string
	noBaseStyles bool
	pretty       bool
	watch        bool
}

func newRenderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render <script.js>",
		Short: "Run a page script and print the document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			f.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			script := args[0]
			if !f.watch {
				return renderTo(cmd, cfg, script, f.out)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watch(ctx, script, cfg.Template, func() error {
				return renderTo(cmd, cfg, script, f.out)
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&f.out, "out", "o", "", "output file (stdout when empty)")
	flags.Float64Var(&f.width, "width", 0, "viewport width")
	flags.Float64Var(&f.height, "height", 0, "viewport height")
	flags.StringVar(&f.root, "root", "", "root selector for render and routes")
	flags.StringVar(&f.template, "template", "", "HTML template to load before the script")
	flags.BoolVar(&f.noBaseStyles, "no-base-styles", false, "do not inject the base stylesheet")
	flags.BoolVar(&f.pretty, "pretty", false, "indent the output")
	flags.BoolVarP(&f.watch, "watch", "w", false, "render again when the script or template changes")
	return cmd
}

// apply lets explicitly set flags override the config file.
func (f *renderFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("width") {
		cfg.Viewport.Width = f.width
	}
	if changed("height") {
		cfg.Viewport.Height = f.height
	}
	if changed("root") {
		cfg.Root = f.root
	}
	if changed("template") {
		cfg.Template = f.template
	}
	if f.noBaseStyles {
		off := false
		cfg.BaseStyles = &off
	}
	if f.pretty {
		cfg.Pretty = true
	}
}

// readSource loads a local file or, for http(s) references, fetches it.
func readSource(ctx context.Context, client *network.Client, ref string) ([]byte, error) {
	if !network.IsURL(ref) {
		data, err := os.ReadFile(ref)
		return data, errors.Wrapf(err, "read %s", ref)
	}
	resp, err := client.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func renderTo(cmd *cobra.Command, cfg *config.Config, script, out string) error {
	client, err := network.NewClient()
	if err != nil {
		return err
	}
	code, err := readSource(cmd.Context(), client, script)
	if err != nil {
		return err
	}
	var page []byte
	if cfg.Template != "" {
		if page, err = readSource(cmd.Context(), client, cfg.Template); err != nil {
			return err
		}
	}
	var w io.Writer = cmd.OutOrStdout()
	if out != "" {
		file, err := os.Create(out)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer file.Close()
		w = file
	}
	return renderPage(cmd.Context(), w, cfg, page, string(code), script)
}

// renderPage loads page (the default template when empty) into a window
// sized by cfg, runs code in it until no timers remain and writes the
// document to w.
func renderPage(ctx context.Context, w io.Writer, cfg *config.Config, page []byte, code, name string) error {
	win := dom.NewWindow(cfg.Viewport.Width, cfg.Viewport.Height)
	if cfg.Location != "" {
		if err := win.SetLocation(cfg.Location); err != nil {
			return errors.Wrap(err, "location")
		}
	}
	if len(page) == 0 {
		page = []byte(html.DefaultTemplate)
	}
	doc, err := html.Load(win, bytes.NewReader(page))
	if err != nil {
		return err
	}
	rt := js.NewRuntime(win, js.Options{Root: cfg.Root, BaseStyles: cfg.InjectBaseStyles()})
	if err := rt.ExecuteScript(code, name); err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	tasks := rt.RunUntilIdle()
	if errs := rt.Errors(); len(errs) > 0 {
		return errors.Wrapf(errs[0], "%d script error(s)", len(errs))
	}
	logrus.WithFields(logrus.Fields{"script": name, "tasks": tasks}).Debug("render complete")
	if err := html.Render(w, doc, html.Options{Pretty: cfg.Pretty}); err != nil {
		return errors.Wrap(err, "write document")
	}
	_, err = io.WriteString(w, "\n")
	return err
}
