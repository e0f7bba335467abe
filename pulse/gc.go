package pulse

import (
	"log/slog"
	"reflect"
	"runtime"
)

// RegisterWithGC calls Release on value once the value becomes unreachable.
// Release of value must be safe to call more than once.
func RegisterWithGC[T Releaser](value T) T {
	runtime.SetFinalizer(value, releaseNow[T])
	return value
}

func releaseNow[T Releaser](value T) {
	typ := reflect.TypeOf(value).String()
	slog.Debug("Releasing garbage collected instance", slog.String("type", typ))

	value.Release()
}
