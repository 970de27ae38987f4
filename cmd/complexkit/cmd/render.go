package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/complexkit/foundation/utils/complexx"
	"github.com/msto63/complexkit/internal/calc"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(11)

	operandStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

// renderer prints results either as plain lines for scripting or
// as lipgloss styled blocks
type renderer struct {
	out    io.Writer
	styled bool
}

func newRenderer(out io.Writer, styled bool) renderer {
	return renderer{out: out, styled: styled}
}

func (r renderer) calculation(c calc.Calculation) {
	if !r.styled {
		fmt.Fprintln(r.out, c.Result.String())
		return
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top,
		operandStyle.Render(c.Left.String()),
		" "+c.Op.Symbol()+" ",
		operandStyle.Render(c.Right.String()),
		" = ",
		resultStyle.Render(c.Result.String()),
	)
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(string(c.Op)),
		line,
		mutedStyle.Render(c.ID),
	)
	fmt.Fprintln(r.out, boxStyle.Render(body))
}

func (r renderer) number(c complexx.Complex) {
	rows := [][2]string{
		{"real", complexx.FormatFloat(c.RealPart())},
		{"imaginary", complexx.FormatFloat(c.ImaginaryPart())},
		{"hash", fmt.Sprintf("%d", c.Hash())},
		{"string", c.String()},
	}

	if !r.styled {
		for _, row := range rows {
			fmt.Fprintf(r.out, "%-10s %s\n", row[0]+":", row[1])
		}
		return
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, labelStyle.Render(row[0])+resultStyle.Render(row[1]))
	}
	fmt.Fprintln(r.out, boxStyle.Render(strings.Join(lines, "\n")))
}

func (r renderer) history(list []calc.Calculation) {
	if len(list) == 0 {
		fmt.Fprintln(r.out, "no calculations recorded")
		return
	}

	for _, c := range list {
		ts := c.CreatedAt.Local().Format("2006-01-02 15:04:05")
		if !r.styled {
			fmt.Fprintf(r.out, "%s  %s  %s\n", c.ID, ts, c.Expression())
			continue
		}
		fmt.Fprintln(r.out, mutedStyle.Render(ts)+"  "+
			operandStyle.Render(c.Left.String())+" "+c.Op.Symbol()+" "+
			operandStyle.Render(c.Right.String())+" = "+
			resultStyle.Render(c.Result.String()))
	}
}
