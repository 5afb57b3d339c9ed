package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/afontaine/marquee/internal/icons"
	"github.com/afontaine/marquee/internal/ui/controlbar"
	"github.com/afontaine/marquee/internal/ui/render"
	"github.com/afontaine/marquee/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')

	if m.Screen == ScreenWatch {
		b.WriteString(m.renderWatch())
	} else {
		b.WriteString(m.renderPortal())
	}

	b.WriteByte('\n')
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	st := styles.T().S()

	tab := func(s Screen, label string) string {
		if m.Screen == s {
			return st.Active.Render(label)
		}
		return st.Muted.Render(label)
	}
	tabs := tab(ScreenPortal, "Portal") + st.Subtle.Render(" · ") + tab(ScreenWatch, "Watch")

	return render.Row(styles.TitleGradient("Marquee"), tabs, m.Width) + "\n" +
		st.Subtle.Render(render.Separator(m.Width))
}

func (m Model) renderWatch() string {
	st := styles.T().S()
	contentHeight := max(m.Height-5, 3)

	var lines []string

	if m.UI.Source == "" {
		lines = append(lines, "", st.Muted.Render("No stream loaded."),
			st.Subtle.Render("Press u to enter a stream URL, or pick one on the portal screen."))
	} else {
		title := m.StreamTitle
		if title == "" {
			title = m.UI.Source
		}
		lines = append(lines, "", st.Title.Render(render.Truncate(title, m.Width)))

		status := st.Success.Render(icons.Play() + " playing")
		switch {
		case m.UI.Buffering:
			status = st.Warning.Render(m.Spinner.View() + " buffering")
		case !m.UI.Playing:
			status = st.Muted.Render(icons.Pause() + " paused")
		}
		if m.UI.Fullscreen.Presented() {
			status += st.Subtle.Render("  " + icons.Fullscreen() + " fullscreen")
		}
		lines = append(lines, status)

		if m.StatusMsg != "" {
			lines = append(lines, st.Subtle.Render(m.StatusMsg))
		}
	}

	if m.ErrorMsg != "" {
		lines = append(lines, "", st.Error.Render(render.Truncate(m.ErrorMsg, m.Width)))
	}

	if m.InputPurpose == inputStreamURL {
		lines = append(lines, "", st.Base.Render("Stream URL:"), m.Input.View())
	}

	// Pin the control overlay to the bottom of the content area.
	barState := controlbar.NewState(m.UI, m.StreamTitle, m.Live, m.Spinner.View())
	bar := controlbar.Render(barState, m.Width)

	pad := contentHeight - len(lines)
	if bar != "" {
		pad -= controlbar.Height()
	}
	for range max(pad, 0) {
		lines = append(lines, "")
	}
	if bar != "" {
		lines = append(lines, bar)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderPortal() string {
	st := styles.T().S()
	contentHeight := max(m.Height-5, 3)

	var lines []string
	lines = append(lines, "")

	urlLine := st.Muted.Render(icons.Link() + " " + render.Truncate(m.PortalURL, max(m.Width-4, 10)))
	if m.PortalURL == "" {
		urlLine = st.Subtle.Render("No portal URL. Press o to enter one.")
	}
	lines = append(lines, urlLine)

	switch {
	case m.PortalLoading:
		lines = append(lines, st.Warning.Render(m.Spinner.View()+" loading"))
	case m.PageTitle != "":
		lines = append(lines, st.Title.Render(render.Truncate(render.Sanitize(m.PageTitle), m.Width)))
	}

	if len(m.FoundStreams) > 0 {
		lines = append(lines, "", st.Base.Render("Streams found on this page:"))
		for i, s := range m.FoundStreams {
			label := render.Truncate(s.URL, max(m.Width-12, 10)) + "  " + string(s.Kind)
			if i == m.StreamCursor {
				lines = append(lines, st.Cursor.Render("> "+label))
			} else {
				lines = append(lines, st.Muted.Render("  "+label))
			}
		}
		lines = append(lines, st.Subtle.Render("Press enter to watch the selected stream."))
	}

	if m.StatusMsg != "" {
		lines = append(lines, "", st.Success.Render(m.StatusMsg))
	}
	if m.ErrorMsg != "" {
		lines = append(lines, "", st.Error.Render(render.Truncate(m.ErrorMsg, m.Width)))
	}

	if m.InputPurpose == inputPortalURL {
		lines = append(lines, "", st.Base.Render("Portal URL:"), m.Input.View())
	}

	for len(lines) < contentHeight {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	st := styles.T().S()

	var hints string
	switch {
	case m.InputPurpose != inputNone:
		hints = "enter confirm · esc cancel"
	case m.Screen == ScreenWatch && m.UI.Scrubbing:
		hints = "←/→ move · enter commit · esc cancel"
	case m.Screen == ScreenWatch:
		hints = "space play/pause · ←/→ skip · s scrub · f fullscreen · m mute · u url · tab portal · q quit"
	default:
		hints = "o url · r reload · ↑/↓ select · enter watch · n reminder · tab watch · q quit"
	}

	hint := st.Subtle.Render(render.Truncate(hints, m.Width))
	return lipgloss.NewStyle().Width(m.Width).Render(hint)
}
