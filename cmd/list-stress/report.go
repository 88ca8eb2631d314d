package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hop.computer/deque/workload"
)

// These colors are from the gruvbox vim theme
var green = lipgloss.Color("#98971a")
var yellow = lipgloss.Color("#d79921")
var blue = lipgloss.Color("#458588")

var titleStyle = lipgloss.
	NewStyle().
	Bold(true).
	Foreground(blue).
	MarginTop(1)

var keyStyle = lipgloss.
	NewStyle().
	PaddingLeft(2).
	Width(14)

var valueStyle = lipgloss.
	NewStyle().
	Foreground(yellow)

var okStyle = lipgloss.
	NewStyle().
	Foreground(green).
	Bold(true)

type row struct {
	key, value string
}

func reportRows(res *workload.Result) []row {
	fill := "PushBack"
	if res.Front {
		fill = "PushFront"
	}
	rows := []row{
		{"seed", fmt.Sprint(res.Seed)},
		{"fill", fmt.Sprintf("%d x %s in %s", res.Elements, fill, res.FillDuration)},
		{"per push", res.PerPush().String()},
	}
	if m := res.Mixed; m.Pushes+m.Pops+m.EmptyPops > 0 {
		rows = append(rows,
			row{"mixed", fmt.Sprintf("%d pushes, %d pops, %d empty pops in %s", m.Pushes, m.Pops, m.EmptyPops, res.MixedDuration)},
			row{"mixed len", fmt.Sprint(res.MixedLen)},
		)
	}
	rows = append(rows, row{"teardown", res.TeardownDuration.String()})
	return rows
}

// renderReport formats res for the terminal, with lipgloss styling when styled
// is set and as plain aligned text otherwise.
func renderReport(res *workload.Result, styled bool) string {
	var b strings.Builder
	status := "ok"
	if res.Verified {
		status = "ok (verified)"
	}
	if !styled {
		fmt.Fprintf(&b, "list-stress: %s\n", status)
		for _, r := range reportRows(res) {
			fmt.Fprintf(&b, "  %-12s%s\n", r.key, r.value)
		}
		return b.String()
	}

	b.WriteString(titleStyle.Render("list-stress") + " " + okStyle.Render(status) + "\n")
	for _, r := range reportRows(res) {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(r.key), valueStyle.Render(r.value)))
		b.WriteString("\n")
	}
	return b.String()
}
