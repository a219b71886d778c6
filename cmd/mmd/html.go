package main

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/riverfjs/mmd-go"
	"github.com/riverfjs/mmd-go/internal/watch"
)

var (
	htmlOpen  bool
	htmlWatch bool
)

var htmlCmd = &cobra.Command{
	Use:   "html <file>",
	Short: "Render a file to a sibling .html page",
	Args:  cobra.ExactArgs(1),
	RunE:  runHTML,
}

func init() {
	htmlCmd.Flags().BoolVar(&htmlOpen, "open", false, "open the rendered page with the configured command")
	htmlCmd.Flags().BoolVarP(&htmlWatch, "watch", "w", false, "re-render whenever the file changes")
	htmlCmd.Flags().Bool("strict", false, "reject lines ending inside a modifier span")
	htmlCmd.Flags().Bool("highlight", false, "syntax highlight code blocks with a language")
}

func runHTML(cmd *cobra.Command, args []string) error {
	source := args[0]
	opts := options(cmd)

	out, err := mmd.ConvertFile(source, opts...)
	if err != nil && !htmlWatch {
		return err
	}
	if err != nil {
		printError(cmd.ErrOrStderr(), err)
	} else {
		printPath(cmd.OutOrStdout(), out)
		if htmlOpen {
			if err := openPage(cfg.Open.Command, out); err != nil {
				return err
			}
		}
	}

	if !htmlWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(source, watch.DefaultDebounce, mmd.Logger)
	if err != nil {
		return err
	}
	defer w.Close()

	mmd.Logger.Info().Str("file", source).Msg("watching for changes")
	err = w.Run(ctx, func() error {
		out, err := mmd.ConvertFile(source, opts...)
		if err != nil {
			printError(cmd.ErrOrStderr(), err)
			return err
		}
		printPath(cmd.OutOrStdout(), out)
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// openPage 使用配置的命令打开生成的页面，命令可以包含参数
func openPage(command, path string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return fmt.Errorf("open.command is empty")
	}
	args := append(fields[1:], path)
	if err := exec.Command(fields[0], args...).Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}
