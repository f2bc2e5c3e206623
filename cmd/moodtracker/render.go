package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/yourname/moodtracker/internal"
	"github.com/yourname/moodtracker/internal/service"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func renderHappinessTable(entries []internal.HappinessEntry) string {
	if len(entries) == 0 {
		return "No happiness entries."
	}
	t := newTable("DATE", "SCORE")
	for _, e := range entries {
		t.Row(e.Date, strconv.Itoa(e.Happiness))
	}
	return t.String()
}

func renderMediaTable(entries []internal.MediaEntry) string {
	if len(entries) == 0 {
		return "No media entries."
	}
	t := newTable("ID", "DATE", "TYPE", "MINUTES", "TITLE")
	for _, e := range entries {
		t.Row(e.ID, e.Date, e.Type, strconv.Itoa(e.Duration), e.Title)
	}
	return t.String()
}

func renderDaySummary(s service.DaySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Day %s\n", s.Date)
	if s.Happiness != nil {
		fmt.Fprintf(&b, "Happiness: %d\n", s.Happiness.Happiness)
	} else {
		b.WriteString("Happiness: not logged\n")
	}
	fmt.Fprintf(&b, "Media: %d entries, %d minutes total\n", len(s.Media), s.TotalMinutes)
	if len(s.Media) > 0 {
		b.WriteString(renderMediaTable(s.Media))
	}
	return b.String()
}
