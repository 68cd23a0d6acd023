// Command avita runs page scripts against a document and prints the
// resulting markup.
package main

import (
	"fmt"
	"os"

	"github.com/chrisuehlinger/avita/config"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	logLevel   string
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "avita",
		Short: "Render avita page scripts to HTML",
		Long: `avita evaluates a page script that builds its UI with element handles
(h, div, render, route) against an in-memory document, runs its timers to
completion and writes the final document as HTML.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			logrus.SetOutput(cmd.ErrOrStderr())
			if logLevel == "" {
				return nil
			}
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return errors.Wrap(err, "log level")
			}
			logrus.SetLevel(lvl)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides config)")
	rootCmd.AddCommand(newVersionCmd(), newRenderCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "avita", version)
		},
	}
}

// loadConfig reads the config file and applies the log level from it
// unless one was given on the command line.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(lvl)
	return cfg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
