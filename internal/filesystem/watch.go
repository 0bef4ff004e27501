package filesystem

import "errors"

// ErrWatchUnsupported is returned by Watch until change notification
// is implemented.
var ErrWatchUnsupported = errors.New("filesystem watching is not supported")

// Watch is a placeholder for live change notification.
// TODO: back this with fsnotify once the event model is settled.
func Watch(path string) error {
	return ErrWatchUnsupported
}
