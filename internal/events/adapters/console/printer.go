// Package console echoes emitted events to the monitor's terminal.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"activity-tracker/internal/events/core/domain"
)

var (
	timestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	kindStyles = map[domain.Kind]lipgloss.Style{
		domain.KindStart:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		domain.KindApp:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		domain.KindTab:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135")),
		domain.KindActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		domain.KindInactive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
)

type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Print writes one "[ts] KIND  detail" line.
func (p *Printer) Print(e domain.Event) {
	style, ok := kindStyles[e.Kind]
	if !ok {
		style = lipgloss.NewStyle()
	}
	fmt.Fprintf(p.out, "%s %s %s\n",
		timestampStyle.Render("["+e.Timestamp.Format("2006-01-02 15:04:05")+"]"),
		style.Render(fmt.Sprintf("%-8s", e.Kind)),
		e.Detail,
	)
}
