package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/color-game/palettes/accessibility"
	"github.com/color-game/palettes/colorspace"
	"github.com/color-game/palettes/models"
)

const swatchWidth = 14

type swatchStyles struct {
	renderer *lipgloss.Renderer
	title    lipgloss.Style
	muted    lipgloss.Style
	active   lipgloss.Style
}

func newSwatchStyles(w io.Writer) swatchStyles {
	renderer := lipgloss.NewRenderer(w)
	return swatchStyles{
		renderer: renderer,
		title:    renderer.NewStyle().Bold(true).PaddingBottom(1),
		muted:    renderer.NewStyle().Foreground(lipgloss.Color("244")),
		active:   renderer.NewStyle().Bold(true).Underline(true),
	}
}

// swatch paints label on the color with its ideal text color.
func (s swatchStyles) swatch(c colorspace.ColorValue, label string, active bool) string {
	style := s.renderer.NewStyle().
		Background(lipgloss.Color(c.Hex)).
		Foreground(lipgloss.Color(accessibility.IdealTextColor(c).Hex)).
		Width(swatchWidth).
		Align(lipgloss.Center)
	if active {
		style = style.Inherit(s.active)
	}
	return style.Render(label)
}

func renderPalette(w io.Writer, palette models.Palette) error {
	s := newSwatchStyles(w)

	title := fmt.Sprintf("%s (%s)", palette.Name, palette.Algorithm)
	if active, ok := palette.Active(); ok {
		title = fmt.Sprintf("%s (%s, seed at %s)", palette.Name, palette.Algorithm, active.Name)
	}

	rows := []string{s.title.Render(title)}
	for _, shade := range palette.Shades {
		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Left,
			s.swatch(shade.Color, shade.Name, shade.IsActive),
			s.muted.Render(fmt.Sprintf("  %s  %5.2f:1", shade.Color.Hex, shade.Contrast)),
		))
	}
	rows = append(rows, "", s.muted.Render(strings.Join(palette.Hexes(), " ")))

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, rows...))
	return err
}

func renderColors(w io.Writer, title string, colors []colorspace.ColorValue) error {
	s := newSwatchStyles(w)

	cells := make([]string, len(colors))
	for i, c := range colors {
		cells[i] = s.swatch(c, c.Hex, false)
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(
		lipgloss.Left,
		s.title.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
	))
	return err
}

func renderContrast(w io.Writer, fg, bg colorspace.ColorValue, report contrastReport) error {
	s := newSwatchStyles(w)

	sample := s.renderer.NewStyle().
		Background(lipgloss.Color(bg.Hex)).
		Foreground(lipgloss.Color(fg.Hex)).
		Padding(1, 4).
		Render("Sample text")

	verdict := []string{
		fmt.Sprintf("%s on %s", fg.Hex, bg.Hex),
		fmt.Sprintf("ratio  %.2f:1", report.Ratio),
		fmt.Sprintf("level  %s", report.Level),
		fmt.Sprintf("AA %s  AAA %s", mark(report.PassesAA), mark(report.PassesAAA)),
		fmt.Sprintf("similarity  %d%%", report.Similarity),
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinHorizontal(
		lipgloss.Top,
		sample,
		s.renderer.NewStyle().PaddingLeft(2).Render(strings.Join(verdict, "\n")),
	))
	return err
}

func mark(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
