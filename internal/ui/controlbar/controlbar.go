// Package controlbar renders the transport overlay for the watch screen.
package controlbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/afontaine/marquee/internal/icons"
	"github.com/afontaine/marquee/internal/playback"
	"github.com/afontaine/marquee/internal/ui/render"
	"github.com/afontaine/marquee/internal/ui/styles"
)

var (
	filledBlock = "▓"
	emptyBlock  = "░"
	scrubMarker = "█"
)

// State holds everything needed to render the control overlay.
type State struct {
	playback.UIState

	Title   string // stream or page title, may be empty
	Live    bool
	Spinner string // current spinner frame while buffering
}

// NewState builds a render State from a playback snapshot.
func NewState(ui playback.UIState, title string, live bool, spinner string) State {
	return State{
		UIState: ui,
		Title:   render.Sanitize(title),
		Live:    live,
		Spinner: spinner,
	}
}

// Height returns the number of terminal rows the overlay occupies when
// showing. The caller reserves this space only while Overlay.Showing().
func Height() int {
	return 3
}

// Render returns the overlay for the given width, or the empty string
// while the overlay is hidden. Fade phases render dimmed so the overlay
// visibly eases in and out.
func Render(s State, width int) string {
	if !s.Overlay.Showing() {
		return ""
	}

	dimmed := s.Overlay == playback.OverlayFadingIn || s.Overlay == playback.OverlayFadingOut

	lines := []string{
		renderTitleRow(s, width, dimmed),
		renderBarRow(s, width, dimmed),
		renderTimeRow(s, width, dimmed),
	}
	return strings.Join(lines, "\n")
}

func renderTitleRow(s State, width int, dimmed bool) string {
	st := styles.T().S()

	status := icons.Play()
	if !s.Playing {
		status = icons.Pause()
	}
	if s.Buffering && s.Spinner != "" {
		status = s.Spinner
	}

	title := s.Title
	if title == "" {
		title = s.Source
	}

	var right []string
	if s.Live {
		right = append(right, st.Error.Render(icons.Live()))
	}
	if s.Fullscreen.Presented() {
		right = append(right, icons.ExitFullscreen())
	}
	right = append(right, renderVolume(s.Volume, s.Muted))
	rightStr := strings.Join(right, "  ")

	maxTitle := max(width-lipgloss.Width(status)-lipgloss.Width(rightStr)-4, 8)
	left := status + "  " + render.Truncate(title, maxTitle)

	row := render.Row(left, rightStr, width)
	if dimmed {
		// Flatten nested styling so the fade restyles the row uniformly.
		return st.Subtle.Render(ansi.Strip(row))
	}
	return row
}

// renderBarRow draws the seek bar. During a scrub gesture the fill and
// marker follow the preview position, so the user sees where they will
// land before committing.
func renderBarRow(s State, width int, dimmed bool) string {
	st := styles.T().S()

	if s.Duration <= 0 {
		// Unknown duration: no seek bar, just a full-width rule.
		line := render.Separator(width)
		if dimmed {
			return st.Subtle.Render(line)
		}
		return st.Muted.Render(line)
	}

	ratio := float64(s.Position) / float64(s.Duration)
	filled := min(int(float64(width)*ratio), width)

	if dimmed {
		bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
		return st.Subtle.Render(bar)
	}

	if s.Scrubbing {
		mark := min(filled, width-1)
		bar := st.Scrub.Render(strings.Repeat(filledBlock, mark)+scrubMarker) +
			st.Subtle.Render(strings.Repeat(emptyBlock, width-mark-1))
		return bar
	}

	return st.Active.Render(strings.Repeat(filledBlock, filled)) +
		st.Subtle.Render(strings.Repeat(emptyBlock, width-filled))
}

func renderTimeRow(s State, width int, dimmed bool) string {
	st := styles.T().S()

	var left string
	switch {
	case s.Err != "":
		left = st.Error.Render(icons.Error() + " " + render.Truncate(s.Err, max(width/2, 10)))
	case s.Buffering:
		left = st.Warning.Render(icons.Buffering() + " buffering")
	case s.Scrubbing:
		left = st.Scrub.Render("seek " + render.FormatDuration(s.Position))
	default:
		left = st.Muted.Render(render.FormatDuration(s.Position))
	}

	var right string
	if s.Duration > 0 {
		right = st.Muted.Render(render.FormatDuration(s.Duration))
	} else if s.Live {
		right = st.Muted.Render(icons.Live())
	}

	row := render.Row(left, right, width)
	if dimmed {
		return st.Subtle.Render(ansi.Strip(row))
	}
	return row
}

func renderVolume(volume float64, muted bool) string {
	icon := icons.Volume()
	if muted {
		icon = icons.VolumeMute()
	}
	return fmt.Sprintf("%s %3d%%", icon, int(volume*100))
}
