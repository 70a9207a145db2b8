package streak_test

import (
	"testing"
	"time"

	"github.com/arthlor/yeser-api/pkg/entity"
	"github.com/arthlor/yeser-api/pkg/streak"
	"github.com/stretchr/testify/assert"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestEvaluateStatusNilRecord(t *testing.T) {
	t.Parallel()
	nows := []time.Time{
		time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 1, 0, time.UTC),
	}
	for _, now := range nows {
		status := streak.EvaluateStatus(nil, now, streak.EnglishTranslator())
		assert.Equal(t, entity.StreakNew, status.State)
		assert.True(t, status.CanExtendToday)
		assert.Equal(t, 0, status.DaysUntilRisk)
		assert.Equal(t, "Start your gratitude streak today!", status.StatusMessage)
		assert.GreaterOrEqual(t, status.TimeUntilMidnight, time.Duration(0))
		assert.Less(t, status.TimeUntilMidnight, 24*time.Hour)
	}
}

func TestEvaluateStatus(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	testCases := []struct {
		Desc           string
		Record         *entity.Streak
		State          entity.StreakState
		CanExtendToday bool
		DaysUntilRisk  int
	}{
		{
			Desc:           "entry made today is active",
			Record:         &entity.Streak{CurrentStreak: 5, LongestStreak: 9, LastEntryDate: datePtr(2024, 3, 15)},
			State:          entity.StreakActive,
			CanExtendToday: false,
			DaysUntilRisk:  1,
		},
		{
			Desc:           "entry made yesterday is grace period",
			Record:         &entity.Streak{CurrentStreak: 5, LongestStreak: 9, LastEntryDate: datePtr(2024, 3, 14)},
			State:          entity.StreakGracePeriod,
			CanExtendToday: true,
			DaysUntilRisk:  0,
		},
		{
			Desc:           "zero streak with stale date is broken",
			Record:         &entity.Streak{CurrentStreak: 0, LongestStreak: 9, LastEntryDate: datePtr(2024, 3, 1)},
			State:          entity.StreakBroken,
			CanExtendToday: true,
			DaysUntilRisk:  0,
		},
		{
			Desc:           "zero streak with no date is broken",
			Record:         &entity.Streak{CurrentStreak: 0, LongestStreak: 0},
			State:          entity.StreakBroken,
			CanExtendToday: true,
			DaysUntilRisk:  0,
		},
		{
			Desc:           "nonzero streak with stale date falls back to at risk",
			Record:         &entity.Streak{CurrentStreak: 5, LongestStreak: 9, LastEntryDate: datePtr(2024, 3, 10)},
			State:          entity.StreakAtRisk,
			CanExtendToday: true,
			DaysUntilRisk:  0,
		},
		{
			Desc:           "nonzero streak with no date falls back to at risk",
			Record:         &entity.Streak{CurrentStreak: 3, LongestStreak: 3},
			State:          entity.StreakAtRisk,
			CanExtendToday: true,
			DaysUntilRisk:  0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			status := streak.EvaluateStatus(tc.Record, now, streak.EnglishTranslator())
			assert.Equal(t, tc.State, status.State)
			assert.Equal(t, tc.CanExtendToday, status.CanExtendToday)
			assert.Equal(t, tc.DaysUntilRisk, status.DaysUntilRisk)
			assert.NotEmpty(t, status.StatusMessage)
		})
	}
}

func TestEvaluateStatusTimeUntilMidnight(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	record := &entity.Streak{CurrentStreak: 5, LastEntryDate: datePtr(2024, 3, 14)}
	status := streak.EvaluateStatus(record, now, streak.EnglishTranslator())
	assert.Equal(t, entity.StreakGracePeriod, status.State)
	assert.Equal(t, 14*time.Hour, status.TimeUntilMidnight)
	assert.Contains(t, status.StatusMessage, "14h 0m")

	// One second before midnight the grace window is nearly closed.
	lateNow := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)
	status = streak.EvaluateStatus(record, lateNow, streak.EnglishTranslator())
	assert.Equal(t, entity.StreakGracePeriod, status.State)
	assert.Equal(t, time.Second, status.TimeUntilMidnight)
}

func TestEvaluateStatusActiveMessage(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	record := &entity.Streak{CurrentStreak: 5, LastEntryDate: datePtr(2024, 3, 15)}
	status := streak.EvaluateStatus(record, now, streak.EnglishTranslator())
	assert.Equal(t, entity.StreakActive, status.State)
	assert.False(t, status.CanExtendToday)
	assert.Contains(t, status.StatusMessage, "5 day streak")
}

func TestEvaluateStatusTurkishLocale(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	record := &entity.Streak{CurrentStreak: 12, LastEntryDate: datePtr(2024, 3, 15)}
	status := streak.EvaluateStatus(record, now, streak.TurkishTranslator())
	assert.Equal(t, entity.StreakActive, status.State)
	assert.Contains(t, status.StatusMessage, "12 günlük seri")
}

func TestEvaluateStatusNilTranslatorDefaultsToEnglish(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	status := streak.EvaluateStatus(nil, now, nil)
	assert.Equal(t, entity.StreakNew, status.State)
	assert.Equal(t, "Start your gratitude streak today!", status.StatusMessage)
}
