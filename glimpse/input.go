package glimpse

//go:generate go tool stringer -type=Key -trimprefix=Key
//go:generate go tool stringer -type=Action

// Key identifies a keyboard key independent of the windowing toolkit.
// Only the keys the application reacts to are mapped, everything
// else is reported as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyF
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

type Action uint8

const (
	Press Action = iota
	Release

	// Repeat is reported by the OS while a key is held down.
	Repeat
)

type MouseButton uint32

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)
