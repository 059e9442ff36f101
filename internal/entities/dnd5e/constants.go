package dnd5e

// Class names as they appear on a sheet
const (
	ClassBarbarian = "Barbarian"
	ClassBard      = "Bard"
	ClassCleric    = "Cleric"
	ClassDruid     = "Druid"
	ClassFighter   = "Fighter"
	ClassMonk      = "Monk"
	ClassPaladin   = "Paladin"
	ClassRanger    = "Ranger"
	ClassRogue     = "Rogue"
	ClassSorcerer  = "Sorcerer"
	ClassWarlock   = "Warlock"
	ClassWizard    = "Wizard"
)

// Skill ids
const (
	SkillAcrobatics     = "acrobatics"
	SkillAnimalHandling = "animal-handling"
	SkillArcana         = "arcana"
	SkillAthletics      = "athletics"
	SkillDeception      = "deception"
	SkillHistory        = "history"
	SkillInsight        = "insight"
	SkillIntimidation   = "intimidation"
	SkillInvestigation  = "investigation"
	SkillMedicine       = "medicine"
	SkillNature         = "nature"
	SkillPerception     = "perception"
	SkillPerformance    = "performance"
	SkillPersuasion     = "persuasion"
	SkillReligion       = "religion"
	SkillSleightOfHand  = "sleight-of-hand"
	SkillStealth        = "stealth"
	SkillSurvival       = "survival"
)

// Alignments
const (
	AlignmentLawfulGood     = "Lawful Good"
	AlignmentNeutralGood    = "Neutral Good"
	AlignmentChaoticGood    = "Chaotic Good"
	AlignmentLawfulNeutral  = "Lawful Neutral"
	AlignmentTrueNeutral    = "True Neutral"
	AlignmentChaoticNeutral = "Chaotic Neutral"
	AlignmentLawfulEvil     = "Lawful Evil"
	AlignmentNeutralEvil    = "Neutral Evil"
	AlignmentChaoticEvil    = "Chaotic Evil"
)

// Character sheet limits
const (
	MaxClasses       = 12
	MinLevel         = 1
	MaxLevel         = 20
	MinAbilityScore  = 1
	MaxAbilityScore  = 30
	MaxNameLength    = 100
	MaxNotesLength   = 2000
	MinSpellSaveDC   = 8
	MaxSpellLevel    = 9
	MaxTextLength    = 50
	MaxDetailLength  = 1000
	MaxDisplayLength = 50
)

// ValidHitDiceSizes lists the die sizes a class can use for hit dice
func ValidHitDiceSizes() []int {
	return []int{6, 8, 10, 12}
}

// SpellSlotLabels returns the slot level labels in order, "1st" through "9th"
func SpellSlotLabels() []string {
	return []string{"1st", "2nd", "3rd", "4th", "5th", "6th", "7th", "8th", "9th"}
}
