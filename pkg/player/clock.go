package player

import "time"

// Clock provides time for playback. The default implementation uses
// system time. Tests can inject a fake clock to control playback timing
// deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
