// Package catalog holds the static challenge and badge definitions.
// The tables are build-time constants: nothing here mutates after init,
// so the catalog is safe to share across requests without locking.
package catalog

// Category is the career domain a challenge belongs to. Each challenge
// maps to exactly one category; category XP is keyed by these values.
type Category string

const (
	CategoryTech     Category = "Tech"
	CategoryHealth   Category = "Health"
	CategoryBusiness Category = "Business"
	CategoryDesign   Category = "Design"
	CategoryArts     Category = "Arts"
)

// Categories returns all known categories in display order.
func Categories() []Category {
	return []Category{CategoryTech, CategoryHealth, CategoryBusiness, CategoryDesign, CategoryArts}
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

type ChallengeType string

const (
	TypeSimulation ChallengeType = "simulation"
	TypeQuiz       ChallengeType = "quiz"
	TypePractical  ChallengeType = "practical"
	TypeProject    ChallengeType = "project"
)

type Challenge struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Points      int           `json:"points"`
	Type        ChallengeType `json:"type"`
	Difficulty  Difficulty    `json:"difficulty"`
	Category    Category      `json:"category"`
	Description string        `json:"description"`
}

type Badge struct {
	ID                   int    `json:"id"`
	Name                 string `json:"name"`
	Icon                 string `json:"icon"`
	Description          string `json:"description"`
	RequiredChallengeIDs []int  `json:"requiredChallengeIds"`
}

var (
	challengeByID = make(map[int]Challenge, len(allChallenges))
	badgeByID     = make(map[int]Badge, len(allBadges))
)

func init() {
	for _, c := range allChallenges {
		challengeByID[c.ID] = c
	}
	for _, b := range allBadges {
		badgeByID[b.ID] = b
	}
}

// ChallengeByID looks up a challenge definition.
func ChallengeByID(id int) (Challenge, bool) {
	c, ok := challengeByID[id]
	return c, ok
}

// BadgeByID looks up a badge definition.
func BadgeByID(id int) (Badge, bool) {
	b, ok := badgeByID[id]
	return b, ok
}

// Challenges returns every challenge definition.
func Challenges() []Challenge {
	return allChallenges
}

// Badges returns every badge definition.
func Badges() []Badge {
	return allBadges
}
