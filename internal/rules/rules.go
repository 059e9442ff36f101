// Package rules holds the D&D 5e rule tables as data: point-buy costs,
// class prerequisites, caster profiles, saving throws, skill choices,
// hit dice and the spell slot progression.
package rules

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

//go:embed data/srd5e.yaml
var srd5e []byte

var (
	defaultOnce    sync.Once
	defaultRuleset *Ruleset
)

// Repertoire is how a caster class gains access to spells
type Repertoire string

// Repertoire kinds
const (
	RepertoireKnown    Repertoire = "known"
	RepertoirePrepared Repertoire = "prepared"
)

// Progression is how a caster class contributes to the effective caster level
type Progression string

// Progression kinds
const (
	ProgressionFull Progression = "full"
	ProgressionHalf Progression = "half"
)

// Ruleset is a loaded, validated set of rule tables. It is read-only after Load.
type Ruleset struct {
	PointBuy      PointBuy      `yaml:"point_buy"`
	StandardArray []int         `yaml:"standard_array"`
	Skills        []Skill       `yaml:"skills"`
	Classes       []Class       `yaml:"classes"`
	SpellSlots    map[int][]int `yaml:"spell_slots"`

	classIndex map[string]int
	skillIndex map[string]int
}

// PointBuy is the point-buy method's budget and cost table
type PointBuy struct {
	Budget   int         `yaml:"budget"`
	Baseline int         `yaml:"baseline"`
	Minimum  int         `yaml:"minimum"`
	Maximum  int         `yaml:"maximum"`
	Costs    map[int]int `yaml:"costs"`
}

// Skill is a skill and the ability it keys off
type Skill struct {
	ID      string        `yaml:"id"`
	Name    string        `yaml:"name"`
	Ability dnd5e.Ability `yaml:"ability"`
}

// Requirement is a minimum ability score
type Requirement struct {
	Ability dnd5e.Ability `yaml:"ability"`
	Minimum int           `yaml:"minimum"`
}

// SkillChoices is the number of skills a class picks and the list it picks from
type SkillChoices struct {
	Count   int      `yaml:"count"`
	Options []string `yaml:"options"`
}

// CasterProfile describes how a class casts spells
type CasterProfile struct {
	Ability     dnd5e.Ability `yaml:"ability"`
	Repertoire  Repertoire    `yaml:"repertoire"`
	Progression Progression   `yaml:"progression"`
}

// Class is the rule data for one class
type Class struct {
	ID            string          `yaml:"id"`
	Name          string          `yaml:"name"`
	HitDie        int             `yaml:"hit_die"`
	Prerequisites []Requirement   `yaml:"prerequisites"`
	SavingThrows  []dnd5e.Ability `yaml:"saving_throws"`
	SkillChoices  SkillChoices    `yaml:"skill_choices"`
	Spellcasting  *CasterProfile  `yaml:"spellcasting"`
}

// IsCaster reports whether the class has a caster profile
func (c *Class) IsCaster() bool {
	return c.Spellcasting != nil
}

// Default returns the embedded SRD rule tables. The tables are parsed once.
// It panics if the embedded data is invalid.
func Default() *Ruleset {
	defaultOnce.Do(func() {
		rs, err := Load(srd5e)
		if err != nil {
			panic(fmt.Sprintf("embedded rule tables are invalid: %v", err))
		}
		defaultRuleset = rs
	})
	return defaultRuleset
}

// LoadFile reads and validates rule tables from a YAML file
func LoadFile(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rules file %s", path)
	}
	rs, err := Load(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load rules file %s", path)
	}
	return rs, nil
}

// Load parses and validates rule tables from YAML
func Load(data []byte) (*Ruleset, error) {
	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse rule tables")
	}

	if err := rs.Validate(); err != nil {
		return nil, err
	}

	rs.classIndex = make(map[string]int, len(rs.Classes)*2)
	for i, c := range rs.Classes {
		rs.classIndex[normalize(c.ID)] = i
		rs.classIndex[normalize(c.Name)] = i
	}
	rs.skillIndex = make(map[string]int, len(rs.Skills))
	for i, s := range rs.Skills {
		rs.skillIndex[normalize(s.ID)] = i
	}

	return &rs, nil
}

// Validate checks the tables are complete and internally consistent
func (rs *Ruleset) Validate() error {
	vb := errors.NewValidationBuilder()

	if rs.PointBuy.Budget <= 0 {
		vb.Field("point_buy.budget", "must be positive")
	}
	if rs.PointBuy.Minimum > rs.PointBuy.Maximum {
		vb.Field("point_buy", "minimum cannot exceed maximum")
	}
	for score := rs.PointBuy.Minimum; score <= rs.PointBuy.Maximum; score++ {
		if _, ok := rs.PointBuy.Costs[score]; !ok {
			vb.Fieldf("point_buy.costs", "missing cost for score %d", score)
		}
	}
	if _, ok := rs.PointBuy.Costs[rs.PointBuy.Baseline]; !ok {
		vb.Field("point_buy.baseline", "must have a cost")
	}

	if len(rs.StandardArray) != len(dnd5e.AllAbilities()) {
		vb.Fieldf("standard_array", "must have %d scores", len(dnd5e.AllAbilities()))
	}

	skills := make(map[string]bool, len(rs.Skills))
	for i, s := range rs.Skills {
		if s.ID == "" {
			vb.RequiredField(fmt.Sprintf("skills[%d].id", i))
			continue
		}
		if skills[s.ID] {
			vb.Fieldf("skills", "duplicate skill %s", s.ID)
		}
		skills[s.ID] = true
		if _, ok := dnd5e.ParseAbility(string(s.Ability)); !ok {
			vb.Fieldf("skills."+s.ID, "unknown ability %q", s.Ability)
		}
	}

	if len(rs.Classes) == 0 {
		vb.RequiredField("classes")
	}
	classes := make(map[string]bool, len(rs.Classes))
	for i, c := range rs.Classes {
		field := fmt.Sprintf("classes[%d]", i)
		if c.ID == "" || c.Name == "" {
			vb.Field(field, "id and name are required")
			continue
		}
		if classes[normalize(c.Name)] {
			vb.Fieldf("classes", "duplicate class %s", c.Name)
		}
		classes[normalize(c.Name)] = true
		field = "classes." + c.ID

		if !validHitDie(c.HitDie) {
			vb.Fieldf(field+".hit_die", "invalid hit die %d", c.HitDie)
		}
		for _, req := range c.Prerequisites {
			if _, ok := dnd5e.ParseAbility(string(req.Ability)); !ok {
				vb.Fieldf(field+".prerequisites", "unknown ability %q", req.Ability)
			}
		}
		for _, a := range c.SavingThrows {
			if _, ok := dnd5e.ParseAbility(string(a)); !ok {
				vb.Fieldf(field+".saving_throws", "unknown ability %q", a)
			}
		}
		if c.SkillChoices.Count > len(c.SkillChoices.Options) {
			vb.Field(field+".skill_choices", "count exceeds options")
		}
		for _, opt := range c.SkillChoices.Options {
			if !skills[opt] {
				vb.Fieldf(field+".skill_choices", "unknown skill %q", opt)
			}
		}
		if sc := c.Spellcasting; sc != nil {
			if _, ok := dnd5e.ParseAbility(string(sc.Ability)); !ok {
				vb.Fieldf(field+".spellcasting", "unknown ability %q", sc.Ability)
			}
			if sc.Repertoire != RepertoireKnown && sc.Repertoire != RepertoirePrepared {
				vb.Fieldf(field+".spellcasting", "unknown repertoire %q", sc.Repertoire)
			}
			if sc.Progression != ProgressionFull && sc.Progression != ProgressionHalf {
				vb.Fieldf(field+".spellcasting", "unknown progression %q", sc.Progression)
			}
		}
	}

	for level := dnd5e.MinLevel; level <= dnd5e.MaxLevel; level++ {
		slots, ok := rs.SpellSlots[level]
		if !ok {
			vb.Fieldf("spell_slots", "missing level %d", level)
			continue
		}
		if len(slots) > dnd5e.MaxSpellLevel {
			vb.Fieldf("spell_slots", "level %d has more than %d slot levels", level, dnd5e.MaxSpellLevel)
		}
	}

	return vb.Build()
}

// Class looks up a class by name or id, ignoring case and surrounding space
func (rs *Ruleset) Class(name string) (*Class, bool) {
	i, ok := rs.classIndex[normalize(name)]
	if !ok {
		return nil, false
	}
	return &rs.Classes[i], true
}

// Skill looks up a skill by id, ignoring case and surrounding space
func (rs *Ruleset) Skill(id string) (*Skill, bool) {
	i, ok := rs.skillIndex[normalize(id)]
	if !ok {
		return nil, false
	}
	return &rs.Skills[i], true
}

// PointCost returns the point-buy cost of a score. Scores outside the
// point-buy range have no cost.
func (rs *Ruleset) PointCost(score int) (int, bool) {
	cost, ok := rs.PointBuy.Costs[score]
	return cost, ok
}

// SlotsForLevel returns the full caster slot counts for an effective caster
// level, indexed by spell level minus one. Levels below 1 have no slots;
// levels above 20 use the level 20 row.
func (rs *Ruleset) SlotsForLevel(level int) []int {
	if level < dnd5e.MinLevel {
		return nil
	}
	if level > dnd5e.MaxLevel {
		level = dnd5e.MaxLevel
	}
	slots := rs.SpellSlots[level]
	out := make([]int, len(slots))
	copy(out, slots)
	return out
}

// ClassNames returns the class display names sorted alphabetically
func (rs *Ruleset) ClassNames() []string {
	names := make([]string, 0, len(rs.Classes))
	for _, c := range rs.Classes {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func validHitDie(size int) bool {
	for _, v := range dnd5e.ValidHitDiceSizes() {
		if v == size {
			return true
		}
	}
	return false
}
