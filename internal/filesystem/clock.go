package filesystem

import "time"

// The file-time clock and the wall clock may use different epochs or
// drift. Both are sampled as close together as possible and the file
// timestamp is shifted onto the wall-clock timeline:
//
//	modified_at = wall_now + (mtime - file_clock_now)
//
// On this platform file times already sit on the Unix epoch, so the
// file-clock sample is time.Now as well. Package vars so tests can
// skew either clock.
var (
	wallClock = time.Now
	fileClock = time.Now
)

// reconcileModTime normalizes a file modification time onto the
// wall-clock timeline, truncated to whole seconds.
func reconcileModTime(mtime time.Time) int64 {
	fileNow := fileClock()
	wallNow := wallClock()
	return wallNow.Add(mtime.Sub(fileNow)).Unix()
}
