package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/riverfjs/mmd-go"
	"github.com/riverfjs/mmd-go/internal/config"
)

var (
	cfgFile  string
	logLevel string
	cfg      *config.Config
)

var (
	errorLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	pathLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

var rootCmd = &cobra.Command{
	Use:   "mmd",
	Short: "Parse and render mmd documents",
	Long: `mmd renders indentation based mmd documents to HTML.

Configuration:
  The tool looks for mmd.yaml in:
  1. --config flag (explicit path)
  2. ./mmd.yaml (current directory)
  3. $HOME/.config/mmd/mmd.yaml

Environment Variables:
  MMD_RENDER_STYLESHEET  - stylesheet URL linked from rendered pages
  MMD_RENDER_TITLE       - page title
  MMD_RENDER_HIGHLIGHT   - enable code highlighting
  MMD_OPEN_COMMAND       - command used by html --open
  MMD_LOG_LEVEL          - log level (debug, info, warn, error)`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./mmd.yaml or $HOME/.config/mmd/mmd.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides config)")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(htmlCmd)
	rootCmd.AddCommand(inlineCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// setup 加载配置并初始化日志
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if logLevel != "" {
		loaded.Log.Level = logLevel
		if err := loaded.Validate(); err != nil {
			return err
		}
	}
	cfg = loaded

	mmd.SetLogger(newLogger(cmd.ErrOrStderr(), cfg))
	return nil
}

func newLogger(w io.Writer, c *config.Config) zerolog.Logger {
	if c.Log.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(c.LogLevel()).With().Timestamp().Logger()
}

// options 由配置文件和命令行参数生成库选项
func options(cmd *cobra.Command) []mmd.Option {
	render := cfg.RenderOptions()
	opts := []mmd.Option{mmd.WithConfig(render)}
	if f := cmd.Flags().Lookup("strict"); f != nil && f.Changed {
		strict, _ := cmd.Flags().GetBool("strict")
		opts = append(opts, mmd.WithStrict(strict))
	}
	if f := cmd.Flags().Lookup("highlight"); f != nil && f.Changed {
		highlight, _ := cmd.Flags().GetBool("highlight")
		opts = append(opts, mmd.WithHighlight(highlight))
	}
	return opts
}

func printError(w io.Writer, err error) {
	var perr *mmd.ParseError
	if errors.As(err, &perr) {
		fmt.Fprintf(w, "%s %s\n", errorLabel.Render("parse error:"), perr.Error())
		return
	}
	fmt.Fprintf(w, "%s %v\n", errorLabel.Render("error:"), err)
}

func printPath(w io.Writer, path string) {
	fmt.Fprintln(w, pathLabel.Render(path))
}
