// Package dnd5e implements the D&D 5e character sheet entities
package dnd5e

// Character is a validated, sanitized character sheet.
// NOTE: This is a data-only struct. Derived values (modifiers, proficiency bonus,
// spellcasting bonuses) are filled in by the engine, never computed here.
type Character struct {
	ID                string           `json:"id,omitempty"`
	UserID            string           `json:"userId,omitempty"`
	Name              string           `json:"name"`
	Race              string           `json:"race"`
	Subrace           string           `json:"subrace,omitempty"`
	Background        string           `json:"background"`
	Alignment         string           `json:"alignment"`
	ExperiencePoints  int              `json:"experiencePoints"`
	Classes           []ClassEntry     `json:"classes"`
	TotalLevel        int              `json:"totalLevel"`
	Abilities         AbilityScores    `json:"abilities"`
	AbilityModifiers  AbilityModifiers `json:"abilityModifiers"`
	ProficiencyBonus  int              `json:"proficiencyBonus"`
	Spellcasting      *Spellcasting    `json:"spellcasting,omitempty"`
	HitPoints         *HitPoints       `json:"hitPoints,omitempty"`
	ArmorClass        *int             `json:"armorClass,omitempty"`
	Speed             *int             `json:"speed,omitempty"`
	Initiative        *int             `json:"initiative,omitempty"`
	PassivePerception *int             `json:"passivePerception,omitempty"`
	Proficiencies     Proficiencies    `json:"proficiencies"`
	Equipment         []EquipmentItem  `json:"equipment"`
	Features          []Feature        `json:"features"`
	Notes             string           `json:"notes,omitempty"`
	CreatedAt         int64            `json:"createdAt,omitempty"`
	UpdatedAt         int64            `json:"updatedAt,omitempty"`
}

// ClassEntry is one class a character holds levels in
type ClassEntry struct {
	ClassName   string `json:"className"`
	Level       int    `json:"level"`
	Subclass    string `json:"subclass,omitempty"`
	HitDiceSize int    `json:"hitDiceSize"`
	HitDiceUsed int    `json:"hitDiceUsed"`
}

// IsMulticlass reports whether the character holds more than one class
func (c *Character) IsMulticlass() bool {
	return len(c.Classes) > 1
}

// SpellSlot tracks total and expended slots for one spell level
type SpellSlot struct {
	Total int `json:"total"`
	Used  int `json:"used"`
}

// Spellcasting is the spellcasting block of a sheet
type Spellcasting struct {
	Ability          Ability              `json:"ability"`
	SpellAttackBonus int                  `json:"spellAttackBonus"`
	SpellSaveDC      int                  `json:"spellSaveDC"`
	SpellSlots       map[string]SpellSlot `json:"spellSlots"`
	SpellsKnown      []string             `json:"spellsKnown"`
	SpellsPrepared   []string             `json:"spellsPrepared"`
}

// HitPoints tracks a character's hit points
type HitPoints struct {
	Maximum   int `json:"maximum"`
	Current   int `json:"current"`
	Temporary int `json:"temporary"`
}

// Proficiencies lists what a character is proficient with
type Proficiencies struct {
	SavingThrows []Ability `json:"savingThrows"`
	Skills       []string  `json:"skills"`
	Armor        []string  `json:"armor"`
	Weapons      []string  `json:"weapons"`
	Tools        []string  `json:"tools"`
	Languages    []string  `json:"languages"`
}

// EquipmentItem is a carried item
type EquipmentItem struct {
	Name        string   `json:"name"`
	Quantity    int      `json:"quantity"`
	Weight      *float64 `json:"weight,omitempty"`
	Equipped    bool     `json:"equipped"`
	Description string   `json:"description,omitempty"`
}

// Feature is a class, race or background feature on the sheet
type Feature struct {
	Name        string `json:"name"`
	Source      string `json:"source,omitempty"`
	Description string `json:"description,omitempty"`
}

// User is the account that owns characters
type User struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}
