package streak

import (
	"math"

	"github.com/arthlor/yeser-api/pkg/entity"
)

// UnboundedDays marks the top tier's open-ended upper range.
const UnboundedDays = math.MaxInt32

// Categories in display order. CategoryProgress reports one row per entry.
var Categories = []entity.MilestoneCategory{
	entity.CategoryBeginner,
	entity.CategoryIntermediate,
	entity.CategoryAdvanced,
	entity.CategoryExpert,
	entity.CategoryLegendary,
}

// BuildMilestoneTable constructs the fixed streak ladder for one locale.
// The result is a fresh value each call; callers must treat it as immutable
// and rebuild (not mutate) when the active locale changes.
func BuildMilestoneTable(tr Translator) []entity.Milestone {
	if tr == nil {
		tr = EnglishTranslator()
	}
	type tier struct {
		id, key       string
		minDays       int
		maxDays       int
		category      entity.MilestoneCategory
		color, effect string
	}
	tiers := []tier{
		{"first-step", "first_step", 1, 2, entity.CategoryBeginner, "#A8E6A1", "sparkle"},
		{"momentum", "momentum", 3, 6, entity.CategoryBeginner, "#7FD47A", "sparkle"},
		{"week-warrior", "week_warrior", 7, 13, entity.CategoryIntermediate, "#56C156", "leaves"},
		{"fortnight-focus", "fortnight_focus", 14, 20, entity.CategoryIntermediate, "#3DAE4B", "leaves"},
		{"habit-formed", "habit_formed", 21, 29, entity.CategoryAdvanced, "#2E9B45", "petals"},
		{"monthly-devotion", "monthly_devotion", 30, 59, entity.CategoryAdvanced, "#1F8840", "petals"},
		{"seasonal-strength", "seasonal_strength", 60, 89, entity.CategoryExpert, "#15753C", "fireflies"},
		{"quarter-champion", "quarter_champion", 90, 179, entity.CategoryExpert, "#0E6237", "fireflies"},
		{"half-year-sage", "half_year_sage", 180, 364, entity.CategoryLegendary, "#0A4F33", "aurora"},
		{"eternal-flame", "eternal_flame", 365, UnboundedDays, entity.CategoryLegendary, "#FFD700", "aurora"},
	}
	table := make([]entity.Milestone, 0, len(tiers))
	for _, t := range tiers {
		table = append(table, entity.Milestone{
			ID:              t.id,
			MinDays:         t.minDays,
			MaxDays:         t.maxDays,
			Title:           tr("milestone." + t.key + ".title"),
			Description:     tr("milestone." + t.key + ".desc"),
			Reward:          tr("milestone." + t.key + ".reward"),
			UnlockedMessage: tr("milestone." + t.key + ".unlocked"),
			Category:        t.category,
			Color:           t.color,
			ParticleEffect:  t.effect,
		})
	}
	return table
}

// FindCurrent returns the first milestone whose range contains streak.
// A streak below the first tier's MinDays (i.e. 0) deliberately reports the
// first tier as current even though it is not achieved yet. Known display
// quirk carried over from the app; do not "fix" without product sign-off.
func FindCurrent(table []entity.Milestone, streak int) entity.Milestone {
	if len(table) == 0 {
		return entity.Milestone{}
	}
	for _, m := range table {
		if streak >= m.MinDays && streak <= m.MaxDays {
			return m
		}
	}
	return table[0]
}

// FindNext returns the first milestone with MinDays above streak, or nil when
// the top tier is already reached.
func FindNext(table []entity.Milestone, streak int) *entity.Milestone {
	for i := range table {
		if table[i].MinDays > streak {
			next := table[i]
			return &next
		}
	}
	return nil
}

// ProgressPercentage reports how far into the current tier's range the streak
// has progressed, in [0, 100]. With no next tier it is always 100.
func ProgressPercentage(streak int, current entity.Milestone, next *entity.Milestone) float64 {
	if next == nil {
		return 100
	}
	tierRange := current.MaxDays - current.MinDays + 1
	progressed := streak - current.MinDays + 1
	pct := float64(progressed) / float64(tierRange) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// DaysToNext counts the days left to unlock next; 0 at the top tier.
func DaysToNext(streak int, next *entity.Milestone) int {
	if next == nil {
		return 0
	}
	days := next.MinDays - streak
	if days < 0 {
		return 0
	}
	return days
}

func IsPersonalRecord(streak, longest int) bool {
	return streak > longest && streak > 0
}

// AchievementsUnlocked lists every milestone already reached, in table order.
func AchievementsUnlocked(table []entity.Milestone, streak int) []entity.Milestone {
	unlocked := make([]entity.Milestone, 0, len(table))
	for _, m := range table {
		if m.MinDays <= streak {
			unlocked = append(unlocked, m)
		}
	}
	return unlocked
}

// CategoryProgress reports unlocked/total counts for each fixed category.
func CategoryProgress(table []entity.Milestone, currentStreak int) []entity.CategoryProgress {
	result := make([]entity.CategoryProgress, 0, len(Categories))
	for _, cat := range Categories {
		progress := entity.CategoryProgress{Category: cat}
		for _, m := range table {
			if m.Category != cat {
				continue
			}
			progress.Total++
			if m.MinDays <= currentStreak {
				progress.Unlocked++
			}
		}
		if progress.Total > 0 {
			progress.Percentage = float64(progress.Unlocked) / float64(progress.Total) * 100
		}
		result = append(result, progress)
	}
	return result
}

// EvaluateProgress bundles all milestone derivations for one streak record.
func EvaluateProgress(table []entity.Milestone, currentStreak, longestStreak int) entity.MilestoneProgress {
	current := FindCurrent(table, currentStreak)
	next := FindNext(table, currentStreak)
	return entity.MilestoneProgress{
		CurrentMilestone:     current,
		NextMilestone:        next,
		ProgressPercentage:   ProgressPercentage(currentStreak, current, next),
		DaysToNext:           DaysToNext(currentStreak, next),
		IsPersonalRecord:     IsPersonalRecord(currentStreak, longestStreak),
		AchievementsUnlocked: AchievementsUnlocked(table, currentStreak),
	}
}
