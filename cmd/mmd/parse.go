package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riverfjs/mmd-go"
	"github.com/riverfjs/mmd-go/internal/dump"
)

var (
	parseFormat string
	parseStats  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file and print its document tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "output format: text, yaml, json")
	parseCmd.Flags().BoolVar(&parseStats, "stats", false, "print node and word counts after the tree")
	parseCmd.Flags().Bool("strict", false, "reject lines ending inside a modifier span")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := dump.ParseFormat(parseFormat)
	if err != nil {
		return err
	}

	doc, err := mmd.ParseFile(args[0], options(cmd)...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := dump.Write(out, doc, format); err != nil {
		return err
	}

	if parseStats {
		s := mmd.CollectStats(doc)
		fmt.Fprintf(out, "sections=%d paragraphs=%d lines=%d asides=%d lists=%d blocks=%d words=%d\n",
			s.Sections, s.Paragraphs, s.Lines, s.Asides, s.Lists, s.Blocks, s.Words)
	}
	return nil
}
