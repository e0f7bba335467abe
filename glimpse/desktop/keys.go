//go:build !js

package desktop

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/cube/glimpse"
)

var glfwToKey = map[glfw.Key]glimpse.Key{
	glfw.KeyW:      glimpse.KeyW,
	glfw.KeyA:      glimpse.KeyA,
	glfw.KeyS:      glimpse.KeyS,
	glfw.KeyD:      glimpse.KeyD,
	glfw.KeyF:      glimpse.KeyF,
	glfw.KeyEscape: glimpse.KeyEscape,
	glfw.KeyUp:     glimpse.KeyUp,
	glfw.KeyDown:   glimpse.KeyDown,
	glfw.KeyLeft:   glimpse.KeyLeft,
	glfw.KeyRight:  glimpse.KeyRight,
}

func keyOf(glfwKey glfw.Key) (key glimpse.Key, ok bool) {
	key, ok = glfwToKey[glfwKey]
	if !ok {
		slog.Debug(
			"Ignore unmapped key",
			slog.String("key", glfw.GetKeyName(glfwKey, 0)),
		)
	}

	return
}
