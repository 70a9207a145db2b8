package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Locale       string
}

type Entry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Content   string    `json:"content"`
	EntryDate time.Time `json:"entry_date"`
	CreatedAt time.Time `json:"created_at"`
}

// Streak is the per-user streak record. The database owns it; the status and
// milestone engines only read it.
type Streak struct {
	UserID            uuid.UUID  `json:"uid"`
	CurrentStreak     int        `json:"current_streak"`
	LongestStreak     int        `json:"longest_streak"`
	LastEntryDate     *time.Time `json:"last_entry_date,omitempty"`
	ReminderSentToday bool       `json:"-"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type StreakState string

const (
	StreakNew         StreakState = "new"
	StreakActive      StreakState = "active"
	StreakGracePeriod StreakState = "grace_period"
	StreakAtRisk      StreakState = "at_risk"
	StreakBroken      StreakState = "broken"
)

// StreakStatus is derived fresh on every evaluation and never persisted.
type StreakStatus struct {
	State             StreakState   `json:"status"`
	TimeUntilMidnight time.Duration `json:"time_until_midnight"`
	DaysUntilRisk     int           `json:"days_until_risk"`
	StatusMessage     string        `json:"status_message"`
	CanExtendToday    bool          `json:"can_extend_today"`
}

type MilestoneCategory string

const (
	CategoryBeginner     MilestoneCategory = "beginner"
	CategoryIntermediate MilestoneCategory = "intermediate"
	CategoryAdvanced     MilestoneCategory = "advanced"
	CategoryExpert       MilestoneCategory = "expert"
	CategoryLegendary    MilestoneCategory = "legendary"
)

// Milestone is one tier of the fixed streak ladder. MinDays/MaxDays ranges are
// contiguous across the table; the top tier's MaxDays is effectively unbounded.
type Milestone struct {
	ID              string            `json:"id"`
	MinDays         int               `json:"min_days"`
	MaxDays         int               `json:"max_days"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Reward          string            `json:"reward"`
	UnlockedMessage string            `json:"unlocked_message"`
	Category        MilestoneCategory `json:"category"`
	Color           string            `json:"color"`
	ParticleEffect  string            `json:"particle_effect"`
}

type MilestoneProgress struct {
	CurrentMilestone     Milestone   `json:"current_milestone"`
	NextMilestone        *Milestone  `json:"next_milestone,omitempty"`
	ProgressPercentage   float64     `json:"progress_percentage"`
	DaysToNext           int         `json:"days_to_next"`
	IsPersonalRecord     bool        `json:"is_personal_record"`
	AchievementsUnlocked []Milestone `json:"achievements_unlocked"`
}

type CategoryProgress struct {
	Category   MilestoneCategory `json:"category"`
	Total      int               `json:"total"`
	Unlocked   int               `json:"unlocked"`
	Percentage float64           `json:"percentage"`
}
