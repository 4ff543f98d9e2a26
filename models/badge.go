package models

// Badge codes. These are the exact strings persisted inside
// User.EarnedBadges, so they must never be renamed once shipped.
const (
	// Login streak ladder
	BadgeFirstLogin         = "firstLogin"
	BadgeOneWeekLogin       = "oneWeekLogInStreak"
	BadgeOneMonthLogin      = "oneMonthLogInStreak"
	BadgeThreeMonthLogin    = "threeMonthLogInStreak"
	BadgeSixMonthLogin      = "sixMonthLogInStreak"
	BadgeOneYearLogin       = "oneYearLogInStreak"

	// Entry count ladder
	BadgeFirstEntry   = "firstEntry"
	BadgeTenEntry     = "tenEntry"
	BadgeFiftyEntry   = "fiftyEntry"
	BadgeHundredEntry = "hundredEntry"

	// Level tier ladder
	BadgeLevelI   = "levelI"
	BadgeLevelII  = "levelII"
	BadgeLevelIII = "levelIII"
	BadgeLevelIV  = "levelIV"
	BadgeLevelV   = "levelV"

	// Account age ladder
	BadgeAccCreated  = "accCreated"
	BadgeOneYearAcc  = "oneYearAcc"
	BadgeFiveYearAcc = "fiveYearAcc"

	// Entry-day streak ladder (firstEntry tier is shared with entry count)
	BadgeOneMonthStreak   = "oneMonthStreak"
	BadgeThreeMonthStreak = "threeMonthStreak"
	BadgeSixMonthStreak   = "sixMonthStreak"
	BadgeOneYearStreak    = "oneYearStreak"

	// Monthly activity (single tier, additive)
	BadgeEveryMonthStreak = "everyMonthStreak"

	// One-shot entry-time badges
	BadgeMorning  = "morning"
	BadgeNight    = "night"
	BadgeFirstDay = "firstday"
)

// BadgeTier is one rung of a threshold ladder.
type BadgeTier struct {
	Threshold int
	Code      string
}

// Ladders are ordered highest threshold first; evaluation takes the first
// tier reached and ignores everything below it.
var (
	LoginStreakLadder = []BadgeTier{
		{365, BadgeOneYearLogin},
		{180, BadgeSixMonthLogin},
		{90, BadgeThreeMonthLogin},
		{30, BadgeOneMonthLogin},
		{7, BadgeOneWeekLogin},
		{1, BadgeFirstLogin},
	}

	EntryCountLadder = []BadgeTier{
		{100, BadgeHundredEntry},
		{50, BadgeFiftyEntry},
		{10, BadgeTenEntry},
		{1, BadgeFirstEntry},
	}

	LevelLadder = []BadgeTier{
		{21, BadgeLevelV},
		{16, BadgeLevelIV},
		{11, BadgeLevelIII},
		{6, BadgeLevelII},
		{1, BadgeLevelI},
	}

	AccountAgeLadder = []BadgeTier{
		{5, BadgeFiveYearAcc},
		{1, BadgeOneYearAcc},
		{0, BadgeAccCreated},
	}

	EntryStreakLadder = []BadgeTier{
		{365, BadgeOneYearStreak},
		{180, BadgeSixMonthStreak},
		{90, BadgeThreeMonthStreak},
		{30, BadgeOneMonthStreak},
		{1, BadgeFirstEntry},
	}

	MonthlyStreakLadder = []BadgeTier{
		{12, BadgeEveryMonthStreak},
	}
)

// BadgeType describes a badge for the catalog endpoint (display metadata
// only; earned state lives on the user record).
type BadgeType struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rarity      string `json:"rarity"` // common, rare, epic, legendary
}

// BadgeCatalog lists every grantable badge.
var BadgeCatalog = []BadgeType{
	{BadgeFirstLogin, "First Steps", "Logged in for the first time", "common"},
	{BadgeOneWeekLogin, "One Week Wonder", "Logged in 7 days in a row", "common"},
	{BadgeOneMonthLogin, "Monthly Regular", "Logged in 30 days in a row", "rare"},
	{BadgeThreeMonthLogin, "Quarterly Devotee", "Logged in 90 days in a row", "rare"},
	{BadgeSixMonthLogin, "Half-Year Hero", "Logged in 180 days in a row", "epic"},
	{BadgeOneYearLogin, "Year-Round Champion", "Logged in 365 days in a row", "legendary"},

	{BadgeFirstEntry, "Ice Breaker", "Wrote your first entry", "common"},
	{BadgeTenEntry, "Getting Into It", "Wrote 10 entries", "common"},
	{BadgeFiftyEntry, "Prolific Penner", "Wrote 50 entries", "rare"},
	{BadgeHundredEntry, "Century Scribe", "Wrote 100 entries", "epic"},

	{BadgeLevelI, "Level I", "Reached level 1", "common"},
	{BadgeLevelII, "Level II", "Reached level 6", "common"},
	{BadgeLevelIII, "Level III", "Reached level 11", "rare"},
	{BadgeLevelIV, "Level IV", "Reached level 16", "epic"},
	{BadgeLevelV, "Level V", "Reached level 21", "legendary"},

	{BadgeAccCreated, "Welcome to Peels", "Created an account", "common"},
	{BadgeOneYearAcc, "Anniversary", "Account one year old", "rare"},
	{BadgeFiveYearAcc, "Veteran", "Account five years old", "legendary"},

	{BadgeOneMonthStreak, "Daily Diarist", "Wrote entries 30 days in a row", "rare"},
	{BadgeThreeMonthStreak, "Seasoned Scribe", "Wrote entries 90 days in a row", "epic"},
	{BadgeSixMonthStreak, "Relentless Writer", "Wrote entries 180 days in a row", "epic"},
	{BadgeOneYearStreak, "Unbroken Year", "Wrote entries 365 days in a row", "legendary"},

	{BadgeEveryMonthStreak, "Every Month Counts", "Wrote at least one entry in 12 months straight", "epic"},

	{BadgeMorning, "Early Bird", "Wrote an entry in the morning", "common"},
	{BadgeNight, "Night Owl", "Wrote an entry late at night", "common"},
	{BadgeFirstDay, "Fresh Start", "Wrote an entry on January 1st", "rare"},
}
