package windows

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/assistant-shell/internal/application"
	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type viewFunc func(s styles) string

func windowKindsView(s styles) string {
	kinds := domain.WindowTypes()
	lines := []string{
		s.title.Render("Window kinds"),
		s.header.Render(fmt.Sprintf("kinds: %d", len(kinds))),
	}

	for _, kind := range kinds {
		bounds := kind.DefaultBounds()
		instances := "single"
		if !kind.Singleton() {
			instances = "per project"
		}
		lines = append(lines, fmt.Sprintf("%s %s",
			s.name.Render(padRight(kind.String(), 10)),
			s.detail.Render(fmt.Sprintf("%dx%d  %s", bounds.Width, bounds.Height, instances)),
		))
	}

	pages := make([]string, 0, len(domain.MainWindowPageTypes()))
	for _, page := range domain.MainWindowPageTypes() {
		pages = append(pages, page.String())
	}
	lines = append(lines, s.section.Render(s.faint.Render("main pages: "+strings.Join(pages, ", "))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func openWindowsView(handles []application.WindowHandle) viewFunc {
	return func(s styles) string {
		lines := []string{
			s.title.Render("Open windows"),
			s.header.Render(fmt.Sprintf("windows: %d", len(handles))),
		}
		if len(handles) == 0 {
			lines = append(lines, s.empty.Render("No windows open."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, handle := range handles {
			lines = append(lines, fmt.Sprintf("%s %s %s",
				s.name.Render(padRight(handle.Window.Title(), 16)),
				s.detail.Render(handle.Route),
				s.faint.Render(handle.ID),
			))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
}

func svnStatusView(entries []domain.SVNStatusEntry) viewFunc {
	return func(s styles) string {
		lines := []string{
			s.title.Render("Working copy"),
			s.header.Render(fmt.Sprintf("changes: %d", len(entries))),
		}
		if len(entries) == 0 {
			lines = append(lines, s.empty.Render("Working copy is clean."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, entry := range entries {
			state := string(entry.State)
			lines = append(lines, fmt.Sprintf("%s %s",
				s.state(state).Render(padRight(state, 12)),
				s.detail.Render(entry.Path),
			))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
}

func syncHistoryView(records []domain.SyncRecord, now time.Time) viewFunc {
	return func(s styles) string {
		lines := []string{
			s.title.Render("Sync history"),
			s.header.Render(fmt.Sprintf("records: %d", len(records))),
		}
		if len(records) == 0 {
			lines = append(lines, s.empty.Render("Nothing synced yet."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, record := range records {
			lines = append(lines, fmt.Sprintf("%s %s %s",
				s.faint.Render(padRight(relativeTime(now, record.SyncedAt), 10)),
				s.detail.Render(record.Path),
				s.faint.Render(formatBytes(record.Bytes)),
			))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
}

func relativeTime(now, then time.Time) string {
	if then.IsZero() {
		return "unknown"
	}

	elapsed := now.Sub(then)
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(elapsed.Hours()/24))
	}
}

func formatBytes(n int) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KiB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1024*1024))
	}
}

func padRight(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}
