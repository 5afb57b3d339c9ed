package orientation

import (
	"fmt"
	"os/exec"
)

// Xrandr locks orientation by rotating an X output with xrandr.
type Xrandr struct {
	output string // X output name, e.g. "HDMI-1"
}

// NewXrandr creates a locker rotating the given X output.
func NewXrandr(output string) *Xrandr {
	return &Xrandr{output: output}
}

// Lock rotates the output: landscape is "normal", portrait is "left".
// Fails when xrandr is missing, the output is unknown, or rotation is
// unsupported (common on fixed-orientation panels).
func (x *Xrandr) Lock(o Orientation) error {
	if x.output == "" {
		return fmt.Errorf("lock orientation: no output configured")
	}
	rotation := "left"
	if o == Landscape {
		rotation = "normal"
	}
	cmd := exec.Command("xrandr", "--output", x.output, "--rotate", rotation)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("lock orientation: xrandr: %w: %s", err, out)
	}
	return nil
}
