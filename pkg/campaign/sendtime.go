package campaign

import (
	"fmt"
	"time"

	"github.com/outflowhq/outflow/ent"
)

// stepDelay is the configured wait before a step fires, relative to the
// previous step's send.
func stepDelay(step *ent.CampaignStep) time.Duration {
	return time.Duration(step.DelayDays)*24*time.Hour +
		time.Duration(step.DelayHours)*time.Hour +
		time.Duration(step.DelayMinutes)*time.Minute
}

// resolveSendTime computes when a step may actually fire: never earlier than
// the recipient's next_action_at, snapped forward into the step's time-of-day
// window when one is configured.
func resolveSendTime(now time.Time, nextActionAt *time.Time, step *ent.CampaignStep, loc *time.Location) time.Time {
	resolved := now
	if nextActionAt != nil && nextActionAt.After(resolved) {
		resolved = *nextActionAt
	}

	if step.SendTimeStart == nil || step.SendTimeEnd == nil {
		return resolved
	}
	snapped, err := snapToWindow(resolved, *step.SendTimeStart, *step.SendTimeEnd, loc)
	if err != nil {
		// A malformed window never delays the send.
		return resolved
	}
	return snapped
}

// snapToWindow moves t forward to the next opening of the [start, end)
// time-of-day window, interpreted in loc. A time already inside the window is
// returned unchanged. Windows crossing midnight (e.g. 22:00–06:00) wrap.
func snapToWindow(t time.Time, start, end string, loc *time.Location) (time.Time, error) {
	startH, startM, err := parseClock(start)
	if err != nil {
		return t, err
	}
	endH, endM, err := parseClock(end)
	if err != nil {
		return t, err
	}

	local := t.In(loc)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), startH, startM, 0, 0, loc)
	dayEnd := time.Date(local.Year(), local.Month(), local.Day(), endH, endM, 0, 0, loc)

	if !dayEnd.After(dayStart) {
		// Overnight window: today's opening runs into tomorrow.
		dayEnd = dayEnd.Add(24 * time.Hour)
		if local.Before(dayStart) && local.Before(dayEnd.Add(-24*time.Hour)) {
			// Still inside yesterday's window tail.
			return t, nil
		}
	}

	switch {
	case local.Before(dayStart):
		return dayStart, nil
	case local.Before(dayEnd):
		return t, nil
	default:
		return dayStart.Add(24 * time.Hour), nil
	}
}

func parseClock(s string) (hour, minute int, err error) {
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time of day %q", s)
	}
	return hour, minute, nil
}
