package dnd5e

// AbilityScoreMethod is how ability scores are generated while building a character
type AbilityScoreMethod string

// Ability score generation methods
const (
	AbilityScoreMethodPointBuy      AbilityScoreMethod = "point_buy"
	AbilityScoreMethodStandardArray AbilityScoreMethod = "standard_array"
	AbilityScoreMethodManual        AbilityScoreMethod = "manual"
)

// ParseAbilityScoreMethod reports whether s names a known method
func ParseAbilityScoreMethod(s string) (AbilityScoreMethod, bool) {
	m := AbilityScoreMethod(s)
	switch m {
	case AbilityScoreMethodPointBuy, AbilityScoreMethodStandardArray, AbilityScoreMethodManual:
		return m, true
	default:
		return "", false
	}
}

// AbilityDraft is the in-progress ability score step of a character build.
// It is build-time state only; the method never lands on the finished sheet.
type AbilityDraft struct {
	ID        string             `json:"id"`
	PlayerID  string             `json:"playerId"`
	Method    AbilityScoreMethod `json:"method"`
	Scores    AbilityScores      `json:"scores"`
	CreatedAt int64              `json:"createdAt"`
	UpdatedAt int64              `json:"updatedAt"`
	ExpiresAt int64              `json:"expiresAt,omitempty"`
}
