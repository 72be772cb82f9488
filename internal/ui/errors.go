package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"fpt/internal/domain"
	"fpt/internal/storage"
)

// maxOutputLines caps the ffmpeg log tail shown in the details pane.
const maxOutputLines = 30

// ResultViewer displays failed plugin tests in an interactive TUI
type ResultViewer struct {
	storage storage.Storage
}

// NewResultViewer creates a new ResultViewer
func NewResultViewer(st storage.Storage) *ResultViewer {
	return &ResultViewer{storage: st}
}

// View displays the run's failures in an interactive TUI. The reviewed
// flag toggled with R is written back through storage so it survives
// between invocations.
func (rv *ResultViewer) View(output *domain.RunOutput) error {
	// Indices of failed records within the stored result list.
	var failed []int
	for i, rec := range output.Results {
		if rec.Status == domain.StatusFailed {
			failed = append(failed, i)
		}
	}

	if len(failed) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	record := func(listIndex int) *domain.RunRecord {
		return &output.Results[failed[listIndex]]
	}

	saveReviewedStatus := func() error {
		return rv.storage.SaveOutput(output)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(listIndex int) string {
		rec := record(listIndex)
		if rec.Reviewed {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", listIndex+1, rec.Name)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", listIndex+1, rec.Name)
	}

	updateListItem := func(listIndex int) {
		if listIndex < 0 || listIndex >= list.GetItemCount() {
			return
		}
		list.SetItemText(listIndex, getListItemText(listIndex), "")
	}

	for i := range failed {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	countUnreviewed := func() int {
		count := 0
		for i := range failed {
			if !record(i).Reviewed {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Test Failures (%d total, %d unreviewed) | Use ↑↓ to navigate, [yellow]R[white] to mark reviewed, → to view details, ← to go back, Ctrl+C to exit ",
			len(failed), countUnreviewed(),
		))
	}
	updateHeader()

	updateDetails := func() {
		listIndex := list.GetCurrentItem()
		if listIndex >= 0 && listIndex < len(failed) {
			rec := record(listIndex)
			statsView.SetText(formatRecordStats(rec))
			detailsView.SetText(formatRecordDetails(rec))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				listIndex := list.GetCurrentItem()
				if listIndex >= 0 && listIndex < len(failed) {
					rec := record(listIndex)
					rec.Reviewed = !rec.Reviewed
					updateListItem(listIndex)
					updateHeader()
					updateDetails()
					if err := saveReviewedStatus(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatRecordDetails formats a failed record for the details pane using
// tview color tags ([red], [cyan], etc.)
func formatRecordDetails(rec *domain.RunRecord) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[red]✗ Test: %s[white]\n\n", rec.Name)

	fmt.Fprintf(w, "[cyan]Plugin: %s[white]\n", rec.Artifact)
	fmt.Fprintf(w, "[yellow]Exit code: %d[white]\n\n", rec.ExitCode)

	if rec.Reason != "" {
		fmt.Fprintf(w, "[yellow]Reason:[white]\n%s\n\n", rec.Reason)
	}

	if rec.Command != "" {
		fmt.Fprintf(w, "[yellow]Command:[white]\n%s\n\n", rec.Command)
	}

	if rec.Output != "" {
		fmt.Fprintf(w, "[yellow]FFmpeg output:[white]\n")
		lines := strings.Split(strings.TrimRight(rec.Output, "\n"), "\n")
		if len(lines) > maxOutputLines {
			fmt.Fprintf(w, "  [gray]... %d earlier lines omitted[white]\n", len(lines)-maxOutputLines)
			lines = lines[len(lines)-maxOutputLines:]
		}
		for _, line := range lines {
			fmt.Fprintf(w, "  %s\n", tview.Escape(line))
		}
	}

	w.Flush()
	return builder.String()
}

// formatRecordStats formats the stats header for a failed record
func formatRecordStats(rec *domain.RunRecord) string {
	var builder strings.Builder

	name := rec.Name
	if name == "" {
		name = rec.Plugin
	}

	builder.WriteString(fmt.Sprintf("[cyan]test:[white] [yellow]%s[white] ([yellow]%s[white])", name, rec.Plugin))
	builder.WriteString("\n")

	return builder.String()
}
