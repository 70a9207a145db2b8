package streak

// Translator resolves a message key into display text for the active locale.
// The engines never read locale state themselves; callers inject the function
// and hold the resulting values, so tables can be rebuilt per locale without
// shared mutable state.
type Translator func(key string) string

// NewMapTranslator builds a Translator over a plain key→text map.
// Unknown keys fall back to the key itself so lookups never fail.
func NewMapTranslator(messages map[string]string) Translator {
	return func(key string) string {
		if text, ok := messages[key]; ok {
			return text
		}
		return key
	}
}

func EnglishTranslator() Translator {
	return NewMapTranslator(englishMessages)
}

func TurkishTranslator() Translator {
	return NewMapTranslator(turkishMessages)
}

var englishMessages = map[string]string{
	"streak.new":     "Start your gratitude streak today!",
	"streak.active":  "%d day streak — today's entry is already in!",
	"streak.grace":   "Your %d day streak is waiting! %dh %dm left to write today.",
	"streak.broken":  "Streak broken. Write an entry to start a new one.",
	"streak.at_risk": "Your %d day streak needs an entry today!",

	"milestone.first_step.title":    "First Step",
	"milestone.first_step.desc":     "You wrote your first gratitude entry",
	"milestone.first_step.reward":   "Sprout badge",
	"milestone.first_step.unlocked": "Every journey starts with a single entry!",

	"milestone.momentum.title":    "Momentum",
	"milestone.momentum.desc":     "Three days of gratitude in a row",
	"milestone.momentum.reward":   "Seedling badge",
	"milestone.momentum.unlocked": "You're building momentum!",

	"milestone.week_warrior.title":    "Week Warrior",
	"milestone.week_warrior.desc":     "A full week of daily gratitude",
	"milestone.week_warrior.reward":   "Leaf badge",
	"milestone.week_warrior.unlocked": "Seven days strong!",

	"milestone.fortnight_focus.title":    "Fortnight Focus",
	"milestone.fortnight_focus.desc":     "Two weeks without missing a day",
	"milestone.fortnight_focus.reward":   "Branch badge",
	"milestone.fortnight_focus.unlocked": "Two weeks of dedication!",

	"milestone.habit_formed.title":    "Habit Formed",
	"milestone.habit_formed.desc":     "Three weeks — gratitude is a habit now",
	"milestone.habit_formed.reward":   "Sapling badge",
	"milestone.habit_formed.unlocked": "21 days make a habit, they say!",

	"milestone.monthly_devotion.title":    "Monthly Devotion",
	"milestone.monthly_devotion.desc":     "A whole month of daily entries",
	"milestone.monthly_devotion.reward":   "Blossom badge",
	"milestone.monthly_devotion.unlocked": "A month of gratitude!",

	"milestone.seasonal_strength.title":    "Seasonal Strength",
	"milestone.seasonal_strength.desc":     "Two months of unbroken practice",
	"milestone.seasonal_strength.reward":   "Young tree badge",
	"milestone.seasonal_strength.unlocked": "Sixty days and growing!",

	"milestone.quarter_champion.title":    "Quarter Champion",
	"milestone.quarter_champion.desc":     "Ninety days of daily gratitude",
	"milestone.quarter_champion.reward":   "Strong tree badge",
	"milestone.quarter_champion.unlocked": "A quarter of a year, every single day!",

	"milestone.half_year_sage.title":    "Half-Year Sage",
	"milestone.half_year_sage.desc":     "Half a year of gratitude, day after day",
	"milestone.half_year_sage.reward":   "Ancient tree badge",
	"milestone.half_year_sage.unlocked": "Six months of unbroken gratitude!",

	"milestone.eternal_flame.title":    "Eternal Flame",
	"milestone.eternal_flame.desc":     "A full year — and beyond",
	"milestone.eternal_flame.reward":   "Golden forest badge",
	"milestone.eternal_flame.unlocked": "A year of gratitude. Legendary.",
}

var turkishMessages = map[string]string{
	"streak.new":     "Şükran serine bugün başla!",
	"streak.active":  "%d günlük seri — bugünün kaydı tamam!",
	"streak.grace":   "%d günlük serin seni bekliyor! Bugün yazmak için %d sa %d dk kaldı.",
	"streak.broken":  "Seri bozuldu. Yeni bir seri için bir kayıt yaz.",
	"streak.at_risk": "%d günlük serin bugün bir kayıt bekliyor!",

	"milestone.first_step.title":    "İlk Adım",
	"milestone.first_step.desc":     "İlk şükran kaydını yazdın",
	"milestone.first_step.reward":   "Filiz rozeti",
	"milestone.first_step.unlocked": "Her yolculuk tek bir kayıtla başlar!",

	"milestone.momentum.title":    "İvme",
	"milestone.momentum.desc":     "Üst üste üç gün şükran",
	"milestone.momentum.reward":   "Fide rozeti",
	"milestone.momentum.unlocked": "İvme kazanıyorsun!",

	"milestone.week_warrior.title":    "Hafta Savaşçısı",
	"milestone.week_warrior.desc":     "Tam bir hafta günlük şükran",
	"milestone.week_warrior.reward":   "Yaprak rozeti",
	"milestone.week_warrior.unlocked": "Yedi gün güçlü!",

	"milestone.fortnight_focus.title":    "İki Hafta Odağı",
	"milestone.fortnight_focus.desc":     "Hiç gün kaçırmadan iki hafta",
	"milestone.fortnight_focus.reward":   "Dal rozeti",
	"milestone.fortnight_focus.unlocked": "İki haftalık özveri!",

	"milestone.habit_formed.title":    "Alışkanlık Oluştu",
	"milestone.habit_formed.desc":     "Üç hafta — şükran artık bir alışkanlık",
	"milestone.habit_formed.reward":   "Körpe ağaç rozeti",
	"milestone.habit_formed.unlocked": "21 gün alışkanlık yapar derler!",

	"milestone.monthly_devotion.title":    "Aylık Bağlılık",
	"milestone.monthly_devotion.desc":     "Günlük kayıtlarla dolu bir ay",
	"milestone.monthly_devotion.reward":   "Çiçek rozeti",
	"milestone.monthly_devotion.unlocked": "Bir ay şükran!",

	"milestone.seasonal_strength.title":    "Mevsim Gücü",
	"milestone.seasonal_strength.desc":     "Kesintisiz iki ay pratik",
	"milestone.seasonal_strength.reward":   "Genç ağaç rozeti",
	"milestone.seasonal_strength.unlocked": "Altmış gün ve büyümeye devam!",

	"milestone.quarter_champion.title":    "Çeyrek Şampiyonu",
	"milestone.quarter_champion.desc":     "Doksan gün günlük şükran",
	"milestone.quarter_champion.reward":   "Güçlü ağaç rozeti",
	"milestone.quarter_champion.unlocked": "Yılın çeyreği, her gün!",

	"milestone.half_year_sage.title":    "Yarım Yıl Bilgesi",
	"milestone.half_year_sage.desc":     "Gün be gün yarım yıl şükran",
	"milestone.half_year_sage.reward":   "Kadim ağaç rozeti",
	"milestone.half_year_sage.unlocked": "Altı ay kesintisiz şükran!",

	"milestone.eternal_flame.title":    "Sonsuz Alev",
	"milestone.eternal_flame.desc":     "Tam bir yıl — ve ötesi",
	"milestone.eternal_flame.reward":   "Altın orman rozeti",
	"milestone.eternal_flame.unlocked": "Bir yıl şükran. Efsanevi.",
}
