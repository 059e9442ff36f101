package dnd5e

import "strings"

// Ability names one of the six ability scores
type Ability string

// Abilities in canonical order
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// AllAbilities returns the six abilities in canonical order:
// strength, dexterity, constitution, intelligence, wisdom, charisma.
func AllAbilities() []Ability {
	return []Ability{
		AbilityStrength,
		AbilityDexterity,
		AbilityConstitution,
		AbilityIntelligence,
		AbilityWisdom,
		AbilityCharisma,
	}
}

// ParseAbility normalizes s and reports whether it names an ability
func ParseAbility(s string) (Ability, bool) {
	a := Ability(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case AbilityStrength, AbilityDexterity, AbilityConstitution,
		AbilityIntelligence, AbilityWisdom, AbilityCharisma:
		return a, true
	default:
		return "", false
	}
}

// DisplayName returns the capitalized name used in messages ("Strength")
func (a Ability) DisplayName() string {
	if a == "" {
		return ""
	}
	return strings.ToUpper(string(a[:1])) + string(a[1:])
}

// AbilityScores holds the six raw ability scores. Values are immutable in use:
// With returns a modified copy.
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// UniformScores returns scores with every ability set to v
func UniformScores(v int) AbilityScores {
	return AbilityScores{
		Strength:     v,
		Dexterity:    v,
		Constitution: v,
		Intelligence: v,
		Wisdom:       v,
		Charisma:     v,
	}
}

// Get returns the score for an ability, 0 for an unknown ability
func (s AbilityScores) Get(a Ability) int {
	switch a {
	case AbilityStrength:
		return s.Strength
	case AbilityDexterity:
		return s.Dexterity
	case AbilityConstitution:
		return s.Constitution
	case AbilityIntelligence:
		return s.Intelligence
	case AbilityWisdom:
		return s.Wisdom
	case AbilityCharisma:
		return s.Charisma
	default:
		return 0
	}
}

// With returns a copy of s with ability a set to v
func (s AbilityScores) With(a Ability, v int) AbilityScores {
	switch a {
	case AbilityStrength:
		s.Strength = v
	case AbilityDexterity:
		s.Dexterity = v
	case AbilityConstitution:
		s.Constitution = v
	case AbilityIntelligence:
		s.Intelligence = v
	case AbilityWisdom:
		s.Wisdom = v
	case AbilityCharisma:
		s.Charisma = v
	}
	return s
}

// AbilityModifiers holds the modifier derived from each ability score
type AbilityModifiers struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}
