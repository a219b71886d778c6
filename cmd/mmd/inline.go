package main

import (
	"github.com/spf13/cobra"

	"github.com/riverfjs/mmd-go"
)

var inlineCmd = &cobra.Command{
	Use:   "inline <file.html>",
	Short: "Embed the linked stylesheet, writing a sibling .local.html page",
	Long: `inline downloads the configured stylesheet and replaces its <link> element
with a <style> element so the page previews without network access.`,
	Args: cobra.ExactArgs(1),
	RunE: runInline,
}

func runInline(cmd *cobra.Command, args []string) error {
	out, err := mmd.InlineFile(cmd.Context(), args[0], nil, options(cmd)...)
	if err != nil {
		return err
	}
	printPath(cmd.OutOrStdout(), out)
	return nil
}
