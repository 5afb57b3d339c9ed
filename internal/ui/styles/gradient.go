package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// TitleGradient renders the application title with the theme's accent
// gradient.
func TitleGradient(text string) string {
	return ApplyGradient(text, true, defaultTheme.Primary, defaultTheme.Secondary)
}

// ApplyGradient renders text with a horizontal color gradient. Blending
// runs in HCL space for perceptually uniform transitions.
func ApplyGradient(text string, bold bool, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Grapheme clusters, not runes: combining marks and emoji must keep
	// a single color.
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 0 {
		return ""
	}
	if len(clusters) == 1 {
		style := lipgloss.NewStyle().Foreground(from).Bold(bold)
		return style.Render(text)
	}

	c1, _ := colorful.MakeColor(parseColor(from))
	c2, _ := colorful.MakeColor(parseColor(to))

	var b strings.Builder
	for i, cluster := range clusters {
		t := float64(i) / float64(len(clusters)-1)
		blended := c1.BlendHcl(c2, t)
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(blended.Hex())).
			Bold(bold)
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// parseColor converts a lipgloss hex color to a color.Color, falling
// back to neutral gray for ANSI palette values.
func parseColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
