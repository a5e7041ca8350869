package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/loke-dev/mdx-blog/pkg/server"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// RouteTable renders the route table for a terminal
func RouteTable(entries []server.RouteEntry) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(mutedColor)).
		Headers("PATH", "KIND", "PARAMS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, e := range entries {
		t.Row(e.Path, routeKind(e), formatParams(e.Params))
	}
	return t.Render()
}

func routeKind(e server.RouteEntry) string {
	if e.Static() {
		return "static"
	}
	return "dynamic"
}

func formatParams(params []server.ParamDef) string {
	if len(params) == 0 {
		return "-"
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + ":" + p.Type
	}
	return strings.Join(parts, ", ")
}
