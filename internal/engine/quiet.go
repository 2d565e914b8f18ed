package engine

import (
	"strconv"
	"strings"
	"time"

	domain "github.com/o6elisk/amber-scan-simple/pkg/types"
)

// Fallback window applied when a stored "HH:MM" string does not parse.
const (
	defaultQuietStartHour = 22
	defaultQuietEndHour   = 7
)

// IsQuiet reports whether now falls inside any of the recurring
// quiet-hour windows, interpreted as wall-clock times in loc. Windows
// whose end is at or before their start span midnight into the next
// day. An empty window list is never quiet.
func IsQuiet(now time.Time, loc *time.Location, windows []domain.QuietWindow) bool {
	local := now.In(loc)
	for _, w := range windows {
		if windowContains(local, w) {
			return true
		}
	}
	return false
}

// windowContains anchors the window on the local calendar day and checks
// start <= local < end. Instants are compared on the absolute timeline,
// which keeps the check correct across DST transitions. For
// midnight-spanning windows, yesterday's anchoring is checked too so
// times shortly after local midnight still count as quiet.
func windowContains(local time.Time, w domain.QuietWindow) bool {
	startHour, startMin, startOK := parseClock(w.Start)
	endHour, endMin, endOK := parseClock(w.End)
	if !startOK || !endOK {
		startHour, startMin = defaultQuietStartHour, 0
		endHour, endMin = defaultQuietEndHour, 0
	}

	year, month, day := local.Date()
	loc := local.Location()

	start := time.Date(year, month, day, startHour, startMin, 0, 0, loc)
	end := time.Date(year, month, day, endHour, endMin, 0, 0, loc)

	spansMidnight := !end.After(start)
	if spansMidnight {
		end = end.AddDate(0, 0, 1)
	}

	if !local.Before(start) && local.Before(end) {
		return true
	}

	if spansMidnight {
		prevStart := start.AddDate(0, 0, -1)
		prevEnd := end.AddDate(0, 0, -1)
		if !local.Before(prevStart) && local.Before(prevEnd) {
			return true
		}
	}

	return false
}

func parseClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
