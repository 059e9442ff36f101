package engine

import "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"

// AbilityModifier returns floor((score-10)/2). Defined over [1,30].
func AbilityModifier(score int) int {
	d := score - 10
	if d < 0 {
		return -((-d + 1) / 2)
	}
	return d / 2
}

// ProficiencyBonus returns ceil(totalLevel/4)+1 for a total level in [1,20]
func ProficiencyBonus(totalLevel int) int {
	return (totalLevel+3)/4 + 1
}

// Modifiers derives the modifier for each ability score
func Modifiers(scores dnd5e.AbilityScores) dnd5e.AbilityModifiers {
	return dnd5e.AbilityModifiers{
		Strength:     AbilityModifier(scores.Strength),
		Dexterity:    AbilityModifier(scores.Dexterity),
		Constitution: AbilityModifier(scores.Constitution),
		Intelligence: AbilityModifier(scores.Intelligence),
		Wisdom:       AbilityModifier(scores.Wisdom),
		Charisma:     AbilityModifier(scores.Charisma),
	}
}

// TotalLevel sums the levels of every class entry
func TotalLevel(classes []dnd5e.ClassEntry) int {
	total := 0
	for _, c := range classes {
		total += c.Level
	}
	return total
}

// RangePolicy is an inclusive score range
type RangePolicy struct {
	Min int
	Max int
}

// Allows reports whether v is within the range
func (p RangePolicy) Allows(v int) bool {
	return v >= p.Min && v <= p.Max
}

// GeneralRange is the range every ability score must fall in
var GeneralRange = RangePolicy{Min: dnd5e.MinAbilityScore, Max: dnd5e.MaxAbilityScore}
