package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play           string
	Pause          string
	Stop           string
	SkipBack       string
	SkipForward    string
	Volume         string
	VolumeMute     string
	Fullscreen     string
	ExitFullscreen string
	Live           string
	Buffering      string
	Error          string
	Reminder       string
	Link           string
}

var (
	nerdIcons = Icons{
		Play:           "", // nf-fa-play
		Pause:          "", // nf-fa-pause
		Stop:           "", // nf-fa-stop
		SkipBack:       "󰒮",      // nf-md-skip_previous
		SkipForward:    "󰒭",      // nf-md-skip_next
		Volume:         "󰕾",      // nf-md-volume_high
		VolumeMute:     "󰖁",      // nf-md-volume_off
		Fullscreen:     "󰊓",      // nf-md-fullscreen
		ExitFullscreen: "󰊔",      // nf-md-fullscreen_exit
		Live:           "󰐾",      // nf-md-record_circle
		Buffering:      "󰔟",      // nf-md-timer_sand
		Error:          "", // nf-fa-warning
		Reminder:       "󰂞",      // nf-md-bell
		Link:           "", // nf-fa-link
	}

	unicodeIcons = Icons{
		Play:           "▶",
		Pause:          "⏸",
		Stop:           "⏹",
		SkipBack:       "⏪",
		SkipForward:    "⏩",
		Volume:         "🔊",
		VolumeMute:     "🔇",
		Fullscreen:     "⛶",
		ExitFullscreen: "🗗",
		Live:           "🔴",
		Buffering:      "⌛",
		Error:          "⚠",
		Reminder:       "🔔",
		Link:           "🔗",
	}

	noneIcons = Icons{
		Play:           ">",
		Pause:          "||",
		Stop:           "[]",
		SkipBack:       "<<",
		SkipForward:    ">>",
		Volume:         "vol",
		VolumeMute:     "mute",
		Fullscreen:     "[F]",
		ExitFullscreen: "[f]",
		Live:           "LIVE",
		Buffering:      "...",
		Error:          "!",
		Reminder:       "[R]",
		Link:           "@",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Play returns the play icon.
func Play() string {
	return current.Play
}

// Pause returns the pause icon.
func Pause() string {
	return current.Pause
}

// Stop returns the stop icon.
func Stop() string {
	return current.Stop
}

// SkipBack returns the skip backward icon.
func SkipBack() string {
	return current.SkipBack
}

// SkipForward returns the skip forward icon.
func SkipForward() string {
	return current.SkipForward
}

// Volume returns the volume icon.
func Volume() string {
	return current.Volume
}

// VolumeMute returns the muted volume icon.
func VolumeMute() string {
	return current.VolumeMute
}

// Fullscreen returns the enter-fullscreen icon.
func Fullscreen() string {
	return current.Fullscreen
}

// ExitFullscreen returns the exit-fullscreen icon.
func ExitFullscreen() string {
	return current.ExitFullscreen
}

// Live returns the live stream indicator.
func Live() string {
	return current.Live
}

// Buffering returns the buffering indicator.
func Buffering() string {
	return current.Buffering
}

// Error returns the error indicator.
func Error() string {
	return current.Error
}

// Reminder returns the reminder bell icon.
func Reminder() string {
	return current.Reminder
}

// Link returns the link icon.
func Link() string {
	return current.Link
}
