package orion

import "fmt"

// Handle panics if err is not nil. Used for failures during setup that
// leave the process without a usable gpu or window.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(fmt.Errorf("%s: %w", text, err))
	}
}

// Must returns value or panics with err.
func Must[T any](value T, err error) T {
	Handle(err, "unexpected error")
	return value
}
