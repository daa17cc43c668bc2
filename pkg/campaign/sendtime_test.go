package campaign

import (
	"testing"
	"time"

	"github.com/outflowhq/outflow/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepDelaySumsComponents(t *testing.T) {
	step := &ent.CampaignStep{DelayDays: 1, DelayHours: 2, DelayMinutes: 30}
	assert.Equal(t, 26*time.Hour+30*time.Minute, stepDelay(step))

	assert.Zero(t, stepDelay(&ent.CampaignStep{}))
}

func TestResolveSendTimeWithoutWindow(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	step := &ent.CampaignStep{}

	// Due: fires at now.
	past := now.Add(-time.Hour)
	assert.Equal(t, now, resolveSendTime(now, &past, step, time.UTC))

	// Not due: fires at next_action_at.
	future := now.Add(time.Hour)
	assert.Equal(t, future, resolveSendTime(now, &future, step, time.UTC))

	// No next_action_at at all: immediate.
	assert.Equal(t, now, resolveSendTime(now, nil, step, time.UTC))
}

func TestResolveSendTimeSnapsIntoWindow(t *testing.T) {
	step := &ent.CampaignStep{
		SendTimeStart: strPtr("09:00"),
		SendTimeEnd:   strPtr("17:00"),
	}

	morning := time.Date(2026, 3, 14, 6, 30, 0, 0, time.UTC)
	assert.Equal(t,
		time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		resolveSendTime(morning, nil, step, time.UTC))

	inside := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, inside, resolveSendTime(inside, nil, step, time.UTC))

	evening := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	assert.Equal(t,
		time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		resolveSendTime(evening, nil, step, time.UTC))
}

func TestResolveSendTimeWindowIsTenantLocal(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	step := &ent.CampaignStep{
		SendTimeStart: strPtr("09:00"),
		SendTimeEnd:   strPtr("17:00"),
	}

	// 13:00 UTC is 08:00 or 09:00 in New York depending on DST; mid-March
	// is EDT, so 13:00 UTC = 09:00 local and the send goes out unchanged.
	at := time.Date(2026, 3, 20, 13, 0, 0, 0, time.UTC)
	assert.Equal(t, at, resolveSendTime(at, nil, step, loc))

	// 11:00 UTC = 07:00 EDT snaps to the 09:00 local opening.
	early := time.Date(2026, 3, 20, 11, 0, 0, 0, time.UTC)
	snapped := resolveSendTime(early, nil, step, loc)
	assert.Equal(t, time.Date(2026, 3, 20, 9, 0, 0, 0, loc), snapped)
}

func TestResolveSendTimeMalformedWindowIgnored(t *testing.T) {
	now := time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC)
	step := &ent.CampaignStep{
		SendTimeStart: strPtr("not-a-time"),
		SendTimeEnd:   strPtr("17:00"),
	}
	assert.Equal(t, now, resolveSendTime(now, nil, step, time.UTC))
}

func TestParseClock(t *testing.T) {
	h, m, err := parseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, h)
	assert.Equal(t, 30, m)

	_, _, err = parseClock("25:00")
	assert.Error(t, err)
	_, _, err = parseClock("monday")
	assert.Error(t, err)
}
