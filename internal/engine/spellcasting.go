package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// SpellcastingDerivation is the spellcasting state computed from a character.
// When HasSpellcasting is false every other field is zero.
type SpellcastingDerivation struct {
	HasSpellcasting  bool
	Ability          dnd5e.Ability
	Repertoire       rules.Repertoire
	CasterLevel      int
	SpellAttackBonus int
	SpellSaveDC      int
	// Spellcasting is the character's block with bonuses and slots replaced
	Spellcasting *dnd5e.Spellcasting
}

// casterLevel sums full caster levels and half caster levels rounded down, capped at 20.
// primary is the profile of the first caster class in class order.
func (e *engine) casterLevel(classes []dnd5e.ClassEntry) (int, *rules.CasterProfile) {
	var primary *rules.CasterProfile
	level := 0
	for _, entry := range classes {
		class, found := e.rules.Class(entry.ClassName)
		if !found || !class.IsCaster() {
			continue
		}
		if primary == nil {
			primary = class.Spellcasting
		}
		switch class.Spellcasting.Progression {
		case rules.ProgressionHalf:
			level += entry.Level / 2
		default:
			level += entry.Level
		}
	}
	if level > dnd5e.MaxLevel {
		level = dnd5e.MaxLevel
	}
	return level, primary
}

// deriveSpellcasting recomputes attack bonus, save DC and slot totals.
// The block's own ability wins over the class profile. Existing used counts
// are kept, clamped to the new totals. With no caster class the supplied
// slots are kept as they are.
func (e *engine) deriveSpellcasting(character *dnd5e.Character) *SpellcastingDerivation {
	level, profile := e.casterLevel(character.Classes)
	existing := character.Spellcasting
	if profile == nil && existing == nil {
		return &SpellcastingDerivation{}
	}

	out := &SpellcastingDerivation{HasSpellcasting: true, CasterLevel: level}
	if profile != nil {
		out.Ability = profile.Ability
		out.Repertoire = profile.Repertoire
	}
	if existing != nil && existing.Ability != "" {
		out.Ability = existing.Ability
	}

	totalLevel := TotalLevel(character.Classes)
	mod := AbilityModifier(character.Abilities.Get(out.Ability))
	prof := ProficiencyBonus(totalLevel)
	out.SpellAttackBonus = mod + prof
	out.SpellSaveDC = 8 + mod + prof

	block := &dnd5e.Spellcasting{
		Ability:          out.Ability,
		SpellAttackBonus: out.SpellAttackBonus,
		SpellSaveDC:      out.SpellSaveDC,
		SpellSlots:       map[string]dnd5e.SpellSlot{},
		SpellsKnown:      []string{},
		SpellsPrepared:   []string{},
	}
	if existing != nil {
		block.SpellsKnown = append(block.SpellsKnown, existing.SpellsKnown...)
		block.SpellsPrepared = append(block.SpellsPrepared, existing.SpellsPrepared...)
	}

	if profile == nil {
		for label, slot := range existing.SpellSlots {
			block.SpellSlots[label] = slot
		}
	} else {
		labels := dnd5e.SpellSlotLabels()
		for i, total := range e.rules.SlotsForLevel(level) {
			if total <= 0 {
				continue
			}
			used := 0
			if existing != nil {
				used = existing.SpellSlots[labels[i]].Used
			}
			if used > total {
				used = total
			}
			block.SpellSlots[labels[i]] = dnd5e.SpellSlot{Total: total, Used: used}
		}
	}

	out.Spellcasting = block
	return out
}
