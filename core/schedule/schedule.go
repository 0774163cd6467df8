// Package schedule computes the upcoming recurring webinar sessions and the
// countdown to the nearest one.
//
// The recurrence rule is fixed: every month holds three candidate sessions,
// the second Saturday at 18:00, the 11th at 12:00 and the 28th at 19:00,
// all in local wall-clock time.
package schedule

import (
	"sort"
	"time"
)

const (
	// scanMonths caps how far ahead UpcomingSessions looks.
	scanMonths = 6
	// maxSessions is how many upcoming sessions are offered for selection.
	maxSessions = 3
)

// Session is one computed future occurrence of the recurrence rule.
// Sessions are recomputed fresh on every call and never cached.
type Session struct {
	// Instant is the concrete local date-and-time of the session.
	Instant time.Time `json:"instant"`
	// Label is a display rendering, eg. "Saturday, January 13 – 6:00 PM".
	Label string `json:"label"`
	// DateKey is the calendar date of Instant as "YYYY-MM-DD";
	// it is the stable identifier persisted as the session date.
	DateKey string `json:"date"`
	// TimeKey is the display time persisted as the session time, eg. "6:00 PM".
	TimeKey string `json:"time"`
}

// SecondSaturday returns the second Saturday of the given month at midnight
// in the local timezone. Months are 1-based (time.January..time.December).
func SecondSaturday(year int, month time.Month) time.Time {
	return time.Date(year, month, secondSaturdayDay(year, month, time.Local), 0, 0, 0, 0, time.Local)
}

// secondSaturdayDay computes the day-of-month of the second Saturday.
// The first Saturday falls on 7 - weekday(1st); a weekday is always in [0,6]
// so no bounds guard is needed. Adding 7 lands in [8,15], within any month.
func secondSaturdayDay(year int, month time.Month, loc *time.Location) int {
	firstWeekday := time.Date(year, month, 1, 0, 0, 0, 0, loc).Weekday()
	firstSaturday := 7 - int(firstWeekday)
	return firstSaturday + 7
}

// UpcomingSessions returns the (at most) three soonest sessions strictly after
// now, sorted ascending. It scans up to six months ahead; if the window holds
// fewer than three future candidates it returns however many were found.
// Pure: identical input yields identical output.
func UpcomingSessions(now time.Time) []Session {
	return upcomingSessions(now, scanMonths)
}

func upcomingSessions(now time.Time, months int) []Session {
	loc := now.Location()
	sessions := make([]Session, 0, maxSessions)

	for offset := 0; offset < months; offset++ {
		y, m := normalizeMonth(now.Year(), now.Month()+time.Month(offset))

		secondSat := time.Date(y, m, secondSaturdayDay(y, m, loc), 18, 0, 0, 0, loc)
		if secondSat.After(now) {
			sessions = append(sessions, newSession(secondSat))
		}

		eleventh := time.Date(y, m, 11, 12, 0, 0, 0, loc)
		if eleventh.After(now) {
			sessions = append(sessions, newSession(eleventh))
		}

		twentyEighth := time.Date(y, m, 28, 19, 0, 0, 0, loc)
		if twentyEighth.After(now) {
			sessions = append(sessions, newSession(twentyEighth))
		}

		// all three candidates of a month are generated before this check,
		// so more than maxSessions may have accumulated by now
		if len(sessions) >= maxSessions {
			break
		}
	}

	sort.Slice(sessions, func(i, j int) bool { return sessions[i].Instant.Before(sessions[j].Instant) })
	if len(sessions) > maxSessions {
		sessions = sessions[:maxSessions]
	}
	return sessions
}

// CountdownSeconds returns the whole seconds from now until the nearest
// session, clamped at zero. It stays pinned to sessions[0] even after that
// instant passes; callers wanting the next occurrence must recompute
// UpcomingSessions with a fresh now. Returns 0 for an empty session list.
func CountdownSeconds(sessions []Session, now time.Time) int {
	if len(sessions) == 0 {
		return 0
	}
	secs := int(sessions[0].Instant.Sub(now) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}

func newSession(instant time.Time) Session {
	timeKey := instant.Format("3:04 PM")
	return Session{
		Instant: instant,
		Label:   instant.Format("Monday, January 2") + " – " + timeKey,
		DateKey: instant.Format("2006-01-02"),
		TimeKey: timeKey,
	}
}

// normalizeMonth carries month overflow into the year (month 13 of year Y is
// January of year Y+1).
func normalizeMonth(year int, month time.Month) (int, time.Month) {
	for month > time.December {
		month -= 12
		year++
	}
	return year, month
}
