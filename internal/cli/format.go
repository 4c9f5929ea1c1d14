package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Human-readable output goes to stdout, failures to stderr. Both default to
// fatih/color's writers, which handle TTY detection and Windows consoles.
var (
	stdout io.Writer = color.Output
	stderr io.Writer = color.Error
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	valueColor   = color.New(color.FgHiBlack)
)

// PrintSection prints a blank-line padded section header.
func PrintSection(title string) {
	_, _ = headerColor.Fprintf(stdout, "\n▸ %s\n\n", title)
}

// PrintSubsection prints an indented subsection header.
func PrintSubsection(title string) {
	_, _ = infoColor.Fprintf(stdout, "  %s\n", title)
}

// PrintSuccess prints msg behind a checkmark.
func PrintSuccess(msg string) {
	_, _ = successColor.Fprintf(stdout, "✓ %s\n", msg)
}

// PrintWarning prints msg behind a warning sign.
func PrintWarning(msg string) {
	_, _ = warningColor.Fprintf(stdout, "⚠ %s\n", msg)
}

// PrintError prints msg to stderr.
func PrintError(msg string) {
	_, _ = errorColor.Fprintf(stderr, "✗ %s\n", msg)
}

// PrintInfo prints msg without decoration.
func PrintInfo(msg string) {
	_, _ = fmt.Fprintln(stdout, msg)
}

// PrintLabelValue prints "label: value".
func PrintLabelValue(label, value string) {
	PrintLabelValueWithColor(label, value, valueColor)
}

// PrintLabelValueWithColor prints "label: value" with value in clr.
func PrintLabelValueWithColor(label, value string, clr *color.Color) {
	_, _ = labelColor.Fprintf(stdout, "  %s: ", label)
	_, _ = clr.Fprintln(stdout, value)
}

// PrintList prints one bullet per item, indented by indent levels.
func PrintList(items []string, indent int) {
	prefix := strings.Repeat("  ", indent)
	for _, item := range items {
		_, _ = infoColor.Fprintf(stdout, "%s• %s\n", prefix, item)
	}
}

// PrintTable prints rows under headers, padding each column to its widest cell.
// Cells beyond the header count are dropped.
func PrintTable(headers []string, rows [][]string) {
	if len(headers) == 0 || len(rows) == 0 {
		return
	}

	widths := columnWidths(headers, rows)
	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}

	printRow(headers, widths, headerColor)
	printRow(rule, widths, nil)
	for _, row := range rows {
		printRow(row, widths, valueColor)
	}
}

func printRow(cells []string, widths []int, clr *color.Color) {
	var line strings.Builder
	line.WriteString("  ")
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		if i > 0 {
			line.WriteString("  ")
		}
		fmt.Fprintf(&line, "%-*s", widths[i], cell)
	}
	if clr == nil {
		_, _ = fmt.Fprintln(stdout, line.String())
		return
	}
	_, _ = clr.Fprintln(stdout, line.String())
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

// PrintEmptyState prints a dimmed placeholder when a listing has no rows.
func PrintEmptyState(msg string) {
	_, _ = valueColor.Fprintf(stdout, "  %s\n", msg)
}

// PrintCount formats a count with the singular or plural noun.
func PrintCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
