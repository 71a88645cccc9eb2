package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"s3audit/internal/models"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	privateStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	exposedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorRed)
)

// RenderReport formats a report as an aligned table. Bucket ages are relative
// to now.
func RenderReport(report models.Report, now time.Time) string {
	var b strings.Builder

	width := lipgloss.Width("BUCKET")
	for _, e := range report {
		if w := lipgloss.Width(e.Bucket); w > width {
			width = w
		}
	}

	b.WriteString(titleStyle.Render("Bucket privacy audit"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%-*s  %-13s  %s", width, "BUCKET", "FULLY PRIVATE", "CREATED")))
	b.WriteString("\n")

	for _, e := range report {
		status := exposedStyle.Render(fmt.Sprintf("%-13s", "no"))
		if e.FullyPrivate {
			status = privateStyle.Render(fmt.Sprintf("%-13s", "yes"))
		}

		created := "-"
		if !e.CreationDate.IsZero() {
			created = humanize.RelTime(e.CreationDate, now, "ago", "from now")
		}

		name := e.Bucket + strings.Repeat(" ", width-lipgloss.Width(e.Bucket))
		fmt.Fprintf(&b, "%s  %s  %s\n", name, status, created)
	}

	b.WriteString(dimStyle.Render(strings.Repeat("─", width+30)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%d bucket(s), %d fully private, %d not fully private\n",
		len(report), report.PrivateCount(), len(report)-report.PrivateCount())

	return b.String()
}
