// Package streak holds the two pure engines behind the Yeşer streak display:
// status derivation (active / grace period / broken / at risk / new) and the
// milestone ladder. Both are side-effect free; "now" is always an explicit
// parameter so tests can inject fixed instants.
package streak

import (
	"fmt"
	"time"

	"github.com/arthlor/yeser-api/pkg/entity"
)

const dateLayout = "2006-01-02"

// EvaluateStatus classifies the user's streak relative to now.
//
// Rules:
//   - nil record → new (no streak exists yet)
//   - last entry today → active, today already counted
//   - last entry yesterday → grace period until local midnight
//   - zero streak with any other date → broken
//   - nonzero streak with any other date → at_risk (a stale record the
//     rollover has not reset yet)
//
// Never returns an error; a missing or nonsensical last entry date falls
// through to the broken/at_risk branches.
func EvaluateStatus(record *entity.Streak, now time.Time, tr Translator) entity.StreakStatus {
	if tr == nil {
		tr = EnglishTranslator()
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	untilMidnight := midnight.Sub(now)

	status := entity.StreakStatus{
		TimeUntilMidnight: untilMidnight,
		CanExtendToday:    true,
	}

	if record == nil {
		status.State = entity.StreakNew
		status.StatusMessage = tr("streak.new")
		return status
	}

	today := now.Format(dateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	lastEntry := ""
	if record.LastEntryDate != nil {
		lastEntry = record.LastEntryDate.Format(dateLayout)
	}

	switch {
	case lastEntry == today:
		status.State = entity.StreakActive
		status.CanExtendToday = false
		status.DaysUntilRisk = 1
		status.StatusMessage = fmt.Sprintf(tr("streak.active"), record.CurrentStreak)
	case lastEntry == yesterday:
		status.State = entity.StreakGracePeriod
		hours := int(untilMidnight.Hours())
		minutes := int(untilMidnight.Minutes()) % 60
		status.StatusMessage = fmt.Sprintf(tr("streak.grace"), record.CurrentStreak, hours, minutes)
	case record.CurrentStreak == 0:
		status.State = entity.StreakBroken
		status.StatusMessage = tr("streak.broken")
	default:
		status.State = entity.StreakAtRisk
		status.StatusMessage = fmt.Sprintf(tr("streak.at_risk"), record.CurrentStreak)
	}
	return status
}
