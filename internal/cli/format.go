package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/danieljhkim/tfscaffold/internal/engine"
	"github.com/danieljhkim/tfscaffold/internal/state"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	dimColor     = color.New(color.FgHiBlack)
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
)

// configureStyling enables colors only when w is a terminal and neither
// --no-color nor NO_COLOR is set.
func configureStyling(w io.Writer, noColor bool) {
	styled := !noColor && os.Getenv("NO_COLOR") == "" && isTerminal(w)

	color.NoColor = !styled
	if styled {
		pterm.EnableStyling()
	} else {
		pterm.DisableStyling()
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printSuccess prints a success message with a checkmark
func printSuccess(w io.Writer, msg string) {
	_, _ = successColor.Fprintf(w, "✓ %s\n", msg)
}

// printWarning prints a warning message with a warning symbol
func printWarning(w io.Writer, msg string) {
	_, _ = warningColor.Fprintf(w, "⚠ %s\n", msg)
}

// printInfo prints an informational message
func printInfo(w io.Writer, msg string) {
	_, _ = infoColor.Fprintln(w, msg)
}

// printEmptyState prints a message when there's no data to show
func printEmptyState(w io.Writer, msg string) {
	_, _ = dimColor.Fprintf(w, "  %s\n", msg)
}

// printCount formats a count with the singular or plural noun
func printCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// stagedCell renders the git column of a row.
func stagedCell(staged *bool) string {
	switch {
	case staged == nil:
		return ""
	case *staged:
		return addedColor.Sprint("Added")
	default:
		return removedColor.Sprint("No Git Repo")
	}
}

// renderRows prints scaffolding rows as a table. The git column is only
// shown when staging was requested.
func renderRows(w io.Writer, rows []engine.Row, placeholder string, gitAdd bool) error {
	header := []string{"Name", placeholder + " Added"}
	if gitAdd {
		header = append(header, "Git Added")
	}

	data := pterm.TableData{header}
	for _, row := range rows {
		added := dimColor.Sprint("Exists")
		if row.PlaceholderAdded {
			added = addedColor.Sprint("Done")
		}

		line := []string{row.Name, added}
		if gitAdd {
			line = append(line, stagedCell(row.Staged))
		}
		data = append(data, line)
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(w).Render()
}

// renderRemovals prints one line per reverted path.
func renderRemovals(w io.Writer, result *engine.RevertResult) {
	label := "Removed"
	if result.DryRun {
		label = "Would remove"
	}

	for _, r := range result.Removed {
		_, _ = removedColor.Fprintf(w, "%s", label)
		_, _ = fmt.Fprintf(w, ": %s\n", r.Path)
	}
}

// renderHistory prints the run log as a table.
func renderHistory(w io.Writer, runs []state.HistoryEntry) error {
	data := pterm.TableData{{"ID", "Time", "Command", "Paths", "Status"}}

	for _, run := range runs {
		id := run.ID
		if len(id) > 8 {
			id = id[:8]
		}

		status := addedColor.Sprint("ok")
		if run.Error != "" {
			status = removedColor.Sprint("failed")
		}

		data = append(data, []string{
			id,
			run.Timestamp.Local().Format("2006-01-02 15:04:05"),
			run.Command,
			fmt.Sprintf("%d", len(run.Paths)),
			status,
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(w).Render()
}
