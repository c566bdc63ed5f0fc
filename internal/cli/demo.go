package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brandonbloom/codenamize"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	colorDemoHeader = color.New(color.FgBlue, color.Bold).SprintFunc()
	colorDemoNote   = color.New(color.FgHiBlack).SprintFunc()
)

// runDemo prints sample codenames over a range of objects, the space size
// table, and a handful of live self-checks with their expected results.
func runDemo(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	useColor := writerIsTerminal(out)

	if err := printDemoSamples(out, useColor); err != nil {
		return err
	}
	if err := printDemoSpaceSizes(out, useColor); err != nil {
		return err
	}
	return printDemoChecks(out, useColor)
}

func printDemoSamples(out io.Writer, useColor bool) error {
	headers := []string{"OBJ", "ADJ0-MAX5", "ADJ1-MAX5", "ADJ2-MAX5"}
	const notesHeader = "ADJ-0, ADJ-1, ADJ-2 (capitalized, empty join)"

	rows := make([][]string, 0, 9)
	notes := make([]string, 0, 9)
	for v := int64(100001); v <= 100009; v++ {
		obj := codenamize.Int(v)
		row := []string{fmt.Sprintf("%d", v)}
		for adj := 0; adj <= 2; adj++ {
			name, err := codenamize.Codenamize(obj,
				codenamize.WithAdjectives(adj),
				codenamize.WithMaxItemChars(5))
			if err != nil {
				return err
			}
			row = append(row, name)
		}

		caps := make([]string, 0, 3)
		for adj := 0; adj <= 2; adj++ {
			name, err := codenamize.Codenamize(obj,
				codenamize.WithAdjectives(adj),
				codenamize.WithJoin(""),
				codenamize.WithCapitalize(true))
			if err != nil {
				return err
			}
			caps = append(caps, name)
		}

		rows = append(rows, row)
		notes = append(notes, strings.Join(caps, ", "))
	}

	widths := demoColumnWidths(headers, rows)
	headerLine := formatDemoRow(headers, widths) + "  " + notesHeader
	if useColor {
		headerLine = colorDemoHeader(headerLine)
	}
	fmt.Fprintln(out, headerLine)
	for i, row := range rows {
		note := notes[i]
		if useColor {
			note = colorDemoNote(note)
		}
		fmt.Fprintln(out, formatDemoRow(row, widths)+"  "+note)
	}
	return nil
}

func printDemoSpaceSizes(out io.Writer, useColor bool) error {
	header := "codenamize SPACE SIZES"
	if useColor {
		header = colorDemoHeader(header)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, header)

	for adj := 0; adj <= 2; adj++ {
		for _, maxChars := range []int{3, 4, 5, 6, 7, 0} {
			size, err := codenamize.SpaceSize(
				codenamize.WithAdjectives(adj),
				codenamize.WithMaxItemChars(maxChars))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d adj (max %d chars) = %s combinations\n", adj, maxChars, size)
		}
	}
	return nil
}

func printDemoChecks(out io.Writer, useColor bool) error {
	header := "TESTS"
	if useColor {
		header = colorDemoHeader(header)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, header)

	for _, adjectives := range []int{1, 2} {
		size, err := codenamize.SpaceSize(
			codenamize.WithAdjectives(adjectives),
			codenamize.WithMaxItemChars(3))
		if err != nil {
			return err
		}
		draws := int(size.Int64()) + 17
		seen := make(map[string]struct{}, draws)
		for i := 0; i < draws; i++ {
			name, err := codenamize.Codenamize(codenamize.Int(int64(i)),
				codenamize.WithAdjectives(adjectives),
				codenamize.WithMaxItemChars(3))
			if err != nil {
				return err
			}
			seen[name] = struct{}{}
		}
		fmt.Fprintf(out, "  (*, %d adj, max 3) => %d distinct results (space size is %s)\n",
			adjectives, len(seen), size)
	}

	anchors := []struct {
		label string
		obj   codenamize.Object
	}{
		{"(100001, 1 adj, max 5)", codenamize.Int(100001)},
		{"('100001', 1 adj, max 5)", codenamize.String("100001")},
	}
	for _, anchor := range anchors {
		name, err := codenamize.Codenamize(anchor.obj, codenamize.WithMaxItemChars(5))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %s => %s (must be 'quiet-flare')\n", anchor.label, name)
	}
	return nil
}

func demoColumnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func formatDemoRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = runewidth.FillLeft(cell, widths[i])
	}
	return strings.Join(parts, "  ")
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
