package engine

import (
	"fmt"
	"math"
	"net/mail"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

const (
	msgClassesRequired    = "At least one class is required"
	msgTooManyClasses     = "A character cannot have more than 12 classes"
	msgTotalLevelMismatch = "Total level must equal the sum of class levels"
	msgTotalLevelRange    = "Total level must be between 1 and 20"
	msgHitDiceSize        = "Hit dice size must be 6, 8, 10, or 12"
	msgHitDiceExceeded    = "Hit dice used cannot exceed class level"
	msgAbilitiesRequired  = "Ability scores are required"
	msgAbilityRange       = "Ability scores must be between 1 and 30"
	msgAbilityInteger     = "Ability scores must be integers"
	msgHitPointsExceeded  = "Current hit points cannot exceed maximum plus temporary hit points"
	msgSpellSaveDC        = "Spell save DC must be at least 8"
	msgSlotsExceeded      = "Used spell slots cannot exceed total spell slots"
	msgSavingThrows       = "Saving throw proficiencies must be ability names"
	msgSkills             = "Skill proficiencies must be known skills"
	msgProficiencyEntries = "Proficiency entries must be non-empty strings"
	msgSpellNames         = "Spell names must be non-empty strings"
	msgInvalidEmail       = "Email must be a valid email address"

	maxCount = math.MaxInt32
)

var (
	msgSpellAbility = "Spellcasting ability must be one of: " + strings.Join(abilityNames(), ", ")
	msgSlotLabel    = "Spell slot levels must be one of: " + strings.Join(dnd5e.SpellSlotLabels(), ", ")
)

func abilityNames() []string {
	names := make([]string, 0, 6)
	for _, a := range dnd5e.AllAbilities() {
		names = append(names, string(a))
	}
	return names
}

// sheetParser walks a raw document in field declaration order, recording
// every violation and building the sanitized character as it goes.
type sheetParser struct {
	vb    *errors.ValidationBuilder
	rules *rules.Ruleset
}

func (p *sheetParser) str(doc map[string]any, field, key string, rule stringRule) (string, bool) {
	v, present := lookup(doc, key)
	return collect(p.vb, field, checkString(v, present, rule))
}

func (p *sheetParser) integer(doc map[string]any, field, key string, rule intRule) (int, bool) {
	v, present := lookup(doc, key)
	return collect(p.vb, field, checkInt(v, present, rule))
}

func (p *sheetParser) optionalInt(doc map[string]any, key string, rule intRule) *int {
	v, present := lookup(doc, key)
	if !present {
		return nil
	}
	n, valid := collect(p.vb, key, checkInt(v, true, rule))
	if !valid {
		return nil
	}
	return &n
}

func (p *sheetParser) parse(raw map[string]any) *dnd5e.Character {
	c := &dnd5e.Character{}

	c.ID, _ = p.str(raw, "id", "id", stringRule{label: "Character ID", max: dnd5e.MaxNameLength})
	c.UserID, _ = p.str(raw, "userId", "userId", stringRule{label: "User ID", max: dnd5e.MaxNameLength})
	c.Name, _ = p.str(raw, "name", "name", stringRule{label: "Name", required: true, max: dnd5e.MaxNameLength})
	c.Race, _ = p.str(raw, "race", "race", stringRule{label: "Race", required: true, max: dnd5e.MaxTextLength})
	c.Subrace, _ = p.str(raw, "subrace", "subrace", stringRule{label: "Subrace", max: dnd5e.MaxTextLength})
	c.Background, _ = p.str(raw, "background", "background",
		stringRule{label: "Background", required: true, max: dnd5e.MaxTextLength})
	c.Alignment, _ = p.str(raw, "alignment", "alignment",
		stringRule{label: "Alignment", required: true, max: dnd5e.MaxTextLength})
	c.ExperiencePoints, _ = p.integer(raw, "experiencePoints", "experiencePoints", intRule{
		notInteger: "Experience points must be a non-negative integer",
		outOfRange: "Experience points must be a non-negative integer",
		min:        0,
		max:        maxCount,
	})

	var sum, counted int
	c.Classes, sum, counted = p.classes(raw)
	p.totalLevel(raw, sum, counted)

	c.Abilities = p.abilities(raw)
	c.HitPoints = p.hitPoints(raw)
	c.ArmorClass = p.optionalInt(raw, "armorClass", intRule{
		notInteger: "Armor class must be a non-negative integer",
		outOfRange: "Armor class must be a non-negative integer",
		max:        maxCount,
	})
	c.Speed = p.optionalInt(raw, "speed", intRule{
		notInteger: "Speed must be a non-negative integer",
		outOfRange: "Speed must be a non-negative integer",
		max:        maxCount,
	})
	c.Initiative = p.optionalInt(raw, "initiative", intRule{
		notInteger: "Initiative must be an integer",
		outOfRange: "Initiative must be an integer",
		min:        -maxCount,
		max:        maxCount,
	})
	c.PassivePerception = p.optionalInt(raw, "passivePerception", intRule{
		notInteger: "Passive perception must be a non-negative integer",
		outOfRange: "Passive perception must be a non-negative integer",
		max:        maxCount,
	})

	c.Proficiencies = p.proficiencies(raw)
	c.Equipment = p.equipment(raw)
	c.Features = p.features(raw)
	c.Spellcasting = p.spellcasting(raw)
	c.Notes, _ = p.str(raw, "notes", "notes", stringRule{label: "Notes", max: dnd5e.MaxNotesLength})

	return c
}

// classes validates every entry. It returns the level sum and count of the
// entries whose name and level are both valid.
func (p *sheetParser) classes(raw map[string]any) ([]dnd5e.ClassEntry, int, int) {
	entries := []dnd5e.ClassEntry{}

	v, present := lookup(raw, "classes")
	if !present {
		p.vb.Field("classes", msgClassesRequired)
		return entries, 0, 0
	}
	items, isList := asList(v)
	if !isList {
		p.vb.Field("classes", "Classes must be a list")
		return entries, 0, 0
	}
	if len(items) == 0 {
		p.vb.Field("classes", msgClassesRequired)
	}
	if len(items) > dnd5e.MaxClasses {
		p.vb.Field("classes", msgTooManyClasses)
	}

	sum, counted := 0, 0
	for i, item := range items {
		entry, countable := p.classEntry(fmt.Sprintf("classes[%d]", i), item)
		if entry == nil {
			continue
		}
		entries = append(entries, *entry)
		if countable {
			sum += entry.Level
			counted++
		}
	}
	return entries, sum, counted
}

func (p *sheetParser) classEntry(field string, item any) (*dnd5e.ClassEntry, bool) {
	obj, isObj := asObject(item)
	if !isObj {
		p.vb.Field(field, "Each class must be an object")
		return nil, false
	}

	entry := &dnd5e.ClassEntry{}
	name, nameOK := p.str(obj, field+".className", "className",
		stringRule{label: "Class name", required: true, max: dnd5e.MaxTextLength})
	class, known := p.rules.Class(name)
	if nameOK && known {
		name = class.Name
	}
	entry.ClassName = name

	level, levelOK := p.integer(obj, field+".level", "level", intRule{
		missing:    "Class level is required",
		notInteger: "Class level must be an integer",
		outOfRange: "Class level must be between 1 and 20",
		min:        dnd5e.MinLevel,
		max:        dnd5e.MaxLevel,
	})
	entry.Level = level

	entry.Subclass, _ = p.str(obj, field+".subclass", "subclass", stringRule{label: "Subclass", max: dnd5e.MaxTextLength})

	if v, present := lookup(obj, "hitDiceSize"); present {
		size, kind := toInt(v)
		if kind != intOK || !validHitDiceSize(size) {
			p.vb.Field(field+".hitDiceSize", msgHitDiceSize)
		}
		entry.HitDiceSize = size
	} else if known {
		entry.HitDiceSize = class.HitDie
	} else {
		p.vb.Field(field+".hitDiceSize", "Hit dice size is required")
	}

	used, usedOK := p.integer(obj, field+".hitDiceUsed", "hitDiceUsed", intRule{
		notInteger: "Hit dice used must be a non-negative integer",
		outOfRange: "Hit dice used must be a non-negative integer",
		min:        0,
		max:        maxCount,
	})
	if usedOK && levelOK && used > level {
		p.vb.Field(field+".hitDiceUsed", msgHitDiceExceeded)
	}
	entry.HitDiceUsed = used

	return entry, nameOK && levelOK
}

func (p *sheetParser) totalLevel(raw map[string]any, sum, counted int) {
	rangeReported := false
	if v, present := lookup(raw, "totalLevel"); present {
		n, kind := toInt(v)
		switch {
		case kind == intOutOfRange:
			if counted > 0 {
				p.vb.Field("totalLevel", msgTotalLevelMismatch)
			}
			p.vb.Field("totalLevel", msgTotalLevelRange)
			rangeReported = true
		case kind != intOK:
			p.vb.Field("totalLevel", "Total level must be an integer")
		case counted > 0 && n != sum:
			p.vb.Field("totalLevel", msgTotalLevelMismatch)
			if n < dnd5e.MinLevel || n > dnd5e.MaxLevel {
				p.vb.Field("totalLevel", msgTotalLevelRange)
				rangeReported = true
			}
		case n < dnd5e.MinLevel || n > dnd5e.MaxLevel:
			p.vb.Field("totalLevel", msgTotalLevelRange)
			rangeReported = true
		}
	}
	if counted > 0 && !rangeReported && (sum < dnd5e.MinLevel || sum > dnd5e.MaxLevel) {
		p.vb.Field("totalLevel", msgTotalLevelRange)
	}
}

func (p *sheetParser) abilities(raw map[string]any) dnd5e.AbilityScores {
	scores := dnd5e.AbilityScores{}
	v, present := lookup(raw, "abilities")
	obj, isObj := asObject(v)
	if !present || !isObj {
		p.vb.Field("abilities", msgAbilitiesRequired)
		return scores
	}
	obj = normalizeKeys(obj)

	for _, a := range dnd5e.AllAbilities() {
		n, _ := p.integer(obj, "abilities."+string(a), string(a), intRule{
			missing:    a.DisplayName() + " score is required",
			notInteger: msgAbilityInteger,
			outOfRange: msgAbilityRange,
			min:        dnd5e.MinAbilityScore,
			max:        dnd5e.MaxAbilityScore,
		})
		scores = scores.With(a, n)
	}
	return scores
}

func (p *sheetParser) hitPoints(raw map[string]any) *dnd5e.HitPoints {
	v, present := lookup(raw, "hitPoints")
	if !present {
		return nil
	}
	obj, isObj := asObject(v)
	if !isObj {
		p.vb.Field("hitPoints", "Hit points must be an object")
		return nil
	}

	maximum, maxOK := p.integer(obj, "hitPoints.maximum", "maximum", intRule{
		missing:    "Maximum hit points are required",
		notInteger: "Maximum hit points must be a positive integer",
		outOfRange: "Maximum hit points must be a positive integer",
		min:        1,
		max:        maxCount,
	})
	current, curOK := p.integer(obj, "hitPoints.current", "current", intRule{
		missing:    "Current hit points are required",
		notInteger: "Current hit points must be a non-negative integer",
		outOfRange: "Current hit points must be a non-negative integer",
		min:        0,
		max:        maxCount,
	})
	temporary, tmpOK := p.integer(obj, "hitPoints.temporary", "temporary", intRule{
		notInteger: "Temporary hit points must be a non-negative integer",
		outOfRange: "Temporary hit points must be a non-negative integer",
		min:        0,
		max:        maxCount,
	})
	if maxOK && curOK && tmpOK && current > maximum+temporary {
		p.vb.Field("hitPoints.current", msgHitPointsExceeded)
	}

	return &dnd5e.HitPoints{Maximum: maximum, Current: current, Temporary: temporary}
}

func (p *sheetParser) proficiencies(raw map[string]any) dnd5e.Proficiencies {
	out := dnd5e.Proficiencies{
		SavingThrows: []dnd5e.Ability{},
		Skills:       []string{},
		Armor:        []string{},
		Weapons:      []string{},
		Tools:        []string{},
		Languages:    []string{},
	}

	v, present := lookup(raw, "proficiencies")
	if !present {
		return out
	}
	obj, isObj := asObject(v)
	if !isObj {
		p.vb.Field("proficiencies", "Proficiencies must be an object")
		return out
	}

	sv, sPresent := lookup(obj, "savingThrows")
	saves, _ := collect(p.vb, "proficiencies.savingThrows", checkStringList(sv, sPresent,
		"Saving throw proficiencies must be a list", msgSavingThrows, strings.ToLower))
	for _, s := range saves {
		a, valid := dnd5e.ParseAbility(s)
		if !valid {
			p.vb.Field("proficiencies.savingThrows", msgSavingThrows)
			continue
		}
		out.SavingThrows = append(out.SavingThrows, a)
	}

	kv, kPresent := lookup(obj, "skills")
	skills, _ := collect(p.vb, "proficiencies.skills", checkStringList(kv, kPresent,
		"Skill proficiencies must be a list", msgSkills, skillID))
	for _, s := range skills {
		if _, known := p.rules.Skill(s); !known {
			p.vb.Field("proficiencies.skills", msgSkills)
			continue
		}
		out.Skills = append(out.Skills, s)
	}

	out.Armor = p.stringList(obj, "proficiencies.armor", "armor", "Armor proficiencies must be a list")
	out.Weapons = p.stringList(obj, "proficiencies.weapons", "weapons", "Weapon proficiencies must be a list")
	out.Tools = p.stringList(obj, "proficiencies.tools", "tools", "Tool proficiencies must be a list")
	out.Languages = p.stringList(obj, "proficiencies.languages", "languages", "Languages must be a list")
	return out
}

func (p *sheetParser) stringList(obj map[string]any, field, key, listMsg string) []string {
	v, present := lookup(obj, key)
	list, valid := collect(p.vb, field, checkStringList(v, present, listMsg, msgProficiencyEntries, nil))
	if !valid {
		return []string{}
	}
	return list
}

func (p *sheetParser) equipment(raw map[string]any) []dnd5e.EquipmentItem {
	out := []dnd5e.EquipmentItem{}
	v, present := lookup(raw, "equipment")
	if !present {
		return out
	}
	items, isList := asList(v)
	if !isList {
		p.vb.Field("equipment", "Equipment must be a list")
		return out
	}

	for i, item := range items {
		field := fmt.Sprintf("equipment[%d]", i)
		obj, isObj := asObject(item)
		if !isObj {
			p.vb.Field(field, "Each equipment item must be an object")
			continue
		}

		var eq dnd5e.EquipmentItem
		eq.Name, _ = p.str(obj, field+".name", "name",
			stringRule{label: "Equipment name", required: true, max: dnd5e.MaxNameLength})
		eq.Quantity, _ = p.integer(obj, field+".quantity", "quantity", intRule{
			fallback:   1,
			notInteger: "Equipment quantity must be a non-negative integer",
			outOfRange: "Equipment quantity must be a non-negative integer",
			min:        0,
			max:        maxCount,
		})
		if wv, wPresent := lookup(obj, "weight"); wPresent {
			w, isNum := toFloat(wv)
			if !isNum || w < 0 {
				p.vb.Field(field+".weight", "Equipment weight must be a non-negative number")
			} else {
				eq.Weight = &w
			}
		}
		ev, ePresent := lookup(obj, "equipped")
		eq.Equipped, _ = collect(p.vb, field+".equipped", checkBool(ev, ePresent, "Equipment equipped flag must be a boolean"))
		eq.Description, _ = p.str(obj, field+".description", "description",
			stringRule{label: "Equipment description", max: dnd5e.MaxDetailLength})

		out = append(out, eq)
	}
	return out
}

func (p *sheetParser) features(raw map[string]any) []dnd5e.Feature {
	out := []dnd5e.Feature{}
	v, present := lookup(raw, "features")
	if !present {
		return out
	}
	items, isList := asList(v)
	if !isList {
		p.vb.Field("features", "Features must be a list")
		return out
	}

	for i, item := range items {
		field := fmt.Sprintf("features[%d]", i)
		obj, isObj := asObject(item)
		if !isObj {
			p.vb.Field(field, "Each feature must be an object")
			continue
		}
		var f dnd5e.Feature
		f.Name, _ = p.str(obj, field+".name", "name", stringRule{label: "Feature name", required: true, max: dnd5e.MaxNameLength})
		f.Source, _ = p.str(obj, field+".source", "source", stringRule{label: "Feature source", max: dnd5e.MaxNameLength})
		f.Description, _ = p.str(obj, field+".description", "description",
			stringRule{label: "Feature description", max: dnd5e.MaxDetailLength})
		out = append(out, f)
	}
	return out
}

func (p *sheetParser) spellcasting(raw map[string]any) *dnd5e.Spellcasting {
	v, present := lookup(raw, "spellcasting")
	if !present {
		return nil
	}
	obj, isObj := asObject(v)
	if !isObj {
		p.vb.Field("spellcasting", "Spellcasting must be an object")
		return nil
	}

	sc := &dnd5e.Spellcasting{}

	av, _ := lookup(obj, "ability")
	name, _ := av.(string)
	ability, valid := dnd5e.ParseAbility(name)
	if !valid {
		p.vb.Field("spellcasting.ability", msgSpellAbility)
	}
	sc.Ability = ability

	if bv, bPresent := lookup(obj, "spellAttackBonus"); bPresent {
		if _, kind := toInt(bv); kind != intOK && kind != intOutOfRange {
			p.vb.Field("spellcasting.spellAttackBonus", "Spell attack bonus must be an integer")
		}
	}
	if dv, dPresent := lookup(obj, "spellSaveDC"); dPresent {
		dc, kind := toInt(dv)
		switch {
		case kind != intOK && kind != intOutOfRange:
			p.vb.Field("spellcasting.spellSaveDC", "Spell save DC must be an integer")
		case kind == intOutOfRange && dc > 0:
		case dc < dnd5e.MinSpellSaveDC:
			p.vb.Field("spellcasting.spellSaveDC", msgSpellSaveDC)
		}
	}

	sc.SpellSlots = p.spellSlots(obj)

	kv, kPresent := lookup(obj, "spellsKnown")
	sc.SpellsKnown, _ = collect(p.vb, "spellcasting.spellsKnown",
		checkStringList(kv, kPresent, "Spells known must be a list", msgSpellNames, nil))
	pv, pPresent := lookup(obj, "spellsPrepared")
	sc.SpellsPrepared, _ = collect(p.vb, "spellcasting.spellsPrepared",
		checkStringList(pv, pPresent, "Spells prepared must be a list", msgSpellNames, nil))
	if sc.SpellsKnown == nil {
		sc.SpellsKnown = []string{}
	}
	if sc.SpellsPrepared == nil {
		sc.SpellsPrepared = []string{}
	}

	return sc
}

func (p *sheetParser) spellSlots(obj map[string]any) map[string]dnd5e.SpellSlot {
	slots := map[string]dnd5e.SpellSlot{}
	v, present := lookup(obj, "spellSlots")
	if !present {
		return slots
	}
	raw, isObj := asObject(v)
	if !isObj {
		p.vb.Field("spellcasting.spellSlots", "Spell slots must be an object")
		return slots
	}
	raw = normalizeKeys(raw)

	// known labels in level order, then anything else sorted
	labels := dnd5e.SpellSlotLabels()
	known := make(map[string]bool, len(labels))
	for _, l := range labels {
		known[l] = true
	}
	var unknown []string
	for k := range raw {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for range unknown {
		p.vb.Field("spellcasting.spellSlots", msgSlotLabel)
	}

	for _, label := range labels {
		sv, found := lookup(raw, label)
		if !found {
			continue
		}
		field := "spellcasting.spellSlots." + label
		slotObj, isSlot := asObject(sv)
		if !isSlot {
			p.vb.Field(field, "Each spell slot must be an object")
			continue
		}
		total, totalOK := p.integer(slotObj, field+".total", "total", intRule{
			missing:    "Spell slot totals are required",
			notInteger: "Spell slot totals must be non-negative integers",
			outOfRange: "Spell slot totals must be non-negative integers",
			min:        0,
			max:        maxCount,
		})
		used, usedOK := p.integer(slotObj, field+".used", "used", intRule{
			notInteger: "Used spell slots must be non-negative integers",
			outOfRange: "Used spell slots must be non-negative integers",
			min:        0,
			max:        maxCount,
		})
		if totalOK && usedOK && used > total {
			p.vb.Field(field+".used", msgSlotsExceeded)
		}
		slots[label] = dnd5e.SpellSlot{Total: total, Used: used}
	}
	return slots
}

// validateCharacter runs the structural checks and, when they pass, fills
// the derived fields and applies the cross-class rules.
func (e *engine) validateCharacter(raw map[string]any) *ValidateCharacterOutput {
	vb := errors.NewValidationBuilder()
	p := &sheetParser{vb: vb, rules: e.rules}
	c := p.parse(raw)

	if !vb.HasErrors() {
		e.derive(vb, c)
	}

	if vb.HasErrors() {
		return &ValidateCharacterOutput{
			IsValid:     false,
			Errors:      dedupe(vb.Messages()),
			FieldErrors: vb.Fields(),
		}
	}
	return &ValidateCharacterOutput{
		IsValid:       true,
		Errors:        []string{},
		FieldErrors:   []errors.FieldError{},
		SanitizedData: c,
	}
}

func (e *engine) derive(vb *errors.ValidationBuilder, c *dnd5e.Character) {
	c.TotalLevel = TotalLevel(c.Classes)
	c.AbilityModifiers = Modifiers(c.Abilities)
	c.ProficiencyBonus = ProficiencyBonus(c.TotalLevel)

	if c.Spellcasting != nil {
		d := e.deriveSpellcasting(c)
		c.Spellcasting = d.Spellcasting
		if d.SpellSaveDC < dnd5e.MinSpellSaveDC {
			vb.Field("spellcasting.spellSaveDC", msgSpellSaveDC)
		}
	}

	for _, msg := range e.multiclassErrors(c.Abilities, c.Classes) {
		vb.Field("classes", msg)
	}
}

func (e *engine) validateUser(raw map[string]any) *ValidateUserOutput {
	vb := errors.NewValidationBuilder()
	p := &sheetParser{vb: vb, rules: e.rules}

	email, emailOK := p.str(raw, "email", "email", stringRule{label: "Email", required: true, max: 254})
	email = strings.ToLower(email)
	if emailOK && !validEmail(email) {
		vb.Field("email", msgInvalidEmail)
	}
	displayName, _ := p.str(raw, "displayName", "displayName",
		stringRule{label: "Display name", required: true, max: dnd5e.MaxDisplayLength})

	if vb.HasErrors() {
		return &ValidateUserOutput{IsValid: false, Errors: dedupe(vb.Messages())}
	}
	return &ValidateUserOutput{
		IsValid:       true,
		Errors:        []string{},
		SanitizedData: &dnd5e.User{Email: email, DisplayName: displayName},
	}
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@"):], ".")
}

func validHitDiceSize(size int) bool {
	for _, v := range dnd5e.ValidHitDiceSizes() {
		if v == size {
			return true
		}
	}
	return false
}
