package orion

import (
	"fmt"
	"io"
)

const guide = `Usage:
  WASD: Pan view
  Scroll: Zoom in/out
  F: Toggle full-screen
  Esc: Quit
`

// PrintGuide writes the key bindings to w.
func PrintGuide(w io.Writer) error {
	_, err := fmt.Fprint(w, guide)
	return err
}
