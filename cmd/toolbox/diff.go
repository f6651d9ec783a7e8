package main

import (
	"fmt"
	"strings"

	"github.com/RobinCoderZhao/toolbox-suite/pkg/diffview"
	"github.com/spf13/cobra"
)

func diffCmd() *cobra.Command {
	var (
		ignoreWhitespace bool
		ignoreCase       bool
		split            bool
		htmlOut          bool
		lang             string
		statOnly         bool
	)

	cmd := &cobra.Command{
		Use:   "diff <original> <modified>",
		Short: "Line diff between two files",
		Long:  "Computes an LCS-based line diff and renders it unified, side by side, or as HTML. Use '-' to read one side from stdin.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			opts := cfg.Diff
			if cmd.Flags().Changed("ignore-whitespace") {
				opts.IgnoreWhitespace = ignoreWhitespace
			}
			if cmd.Flags().Changed("ignore-case") {
				opts.IgnoreCase = ignoreCase
			}

			original, err := readInput(args[0])
			if err != nil {
				return err
			}
			modified, err := readInput(args[1])
			if err != nil {
				return err
			}

			result := diffview.Compute(string(original), string(modified), opts)
			record(cfg, "diff", fmt.Sprintf("%s vs %s: %s", args[0], args[1], result.Summary()))

			switch {
			case statOnly:
				fmt.Println(result.Summary())
			case htmlOut:
				out, err := result.HTML(lang)
				if err != nil {
					return err
				}
				fmt.Print(out)
			case split:
				printSplit(result.Split())
			default:
				fmt.Print(result.Unified())
			}

			if result.HasChanges {
				// Match diff(1): exit 1 when the inputs differ.
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return fmt.Errorf("files differ")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&ignoreWhitespace, "ignore-whitespace", "w", false, "Trim leading/trailing whitespace before comparing")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Compare case-insensitively")
	cmd.Flags().BoolVar(&split, "split", false, "Side-by-side output")
	cmd.Flags().BoolVar(&htmlOut, "html", false, "HTML output")
	cmd.Flags().StringVar(&lang, "lang", "", "Language for HTML syntax highlighting")
	cmd.Flags().BoolVar(&statOnly, "stat", false, "Print only the summary")
	return cmd
}

// printSplit renders the two columns separated by a gutter, with blank
// cells for padding rows.
func printSplit(cols diffview.SplitColumns) {
	width := 0
	for _, l := range cols.Left {
		if l != nil && len(l.Content) > width {
			width = len(l.Content)
		}
	}
	if width > 80 {
		width = 80
	}

	for i := range cols.Left {
		left, right := cols.Left[i], cols.Right[i]
		fmt.Printf("%-*s %s %s\n", width, cell(left), gutter(left, right), cell(right))
	}
}

func cell(l *diffview.Line) string {
	if l == nil {
		return ""
	}
	return strings.ReplaceAll(l.Content, "\t", "    ")
}

func gutter(left, right *diffview.Line) string {
	switch {
	case left != nil && left.Kind == diffview.Removed && right != nil && right.Kind == diffview.Added:
		return "|"
	case left != nil && left.Kind == diffview.Removed:
		return "<"
	case right != nil && right.Kind == diffview.Added:
		return ">"
	default:
		return " "
	}
}
