package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// PointBuySummary is derived from a score set, never stored
type PointBuySummary struct {
	Used      int
	Remaining int
	Budget    int
	// Valid is true when every score has a point-buy cost and the total fits the budget
	Valid bool
}

type pointBuy struct {
	table rules.PointBuy
}

func (p pointBuy) rangePolicy() RangePolicy {
	return RangePolicy{Min: p.table.Minimum, Max: p.table.Maximum}
}

func (p pointBuy) baseline() dnd5e.AbilityScores {
	return dnd5e.UniformScores(p.table.Baseline)
}

// cost totals the point-buy cost of scores. ok is false when any score has no cost.
func (p pointBuy) cost(scores dnd5e.AbilityScores) (int, bool) {
	total := 0
	for _, a := range dnd5e.AllAbilities() {
		c, found := p.table.Costs[scores.Get(a)]
		if !found {
			return 0, false
		}
		total += c
	}
	return total, true
}

// propose applies ability=value to current when the resulting set still fits
// the budget. A rejected change returns current unchanged.
func (p pointBuy) propose(current dnd5e.AbilityScores, ability dnd5e.Ability, value int) (dnd5e.AbilityScores, bool) {
	if !p.rangePolicy().Allows(value) {
		return current, false
	}
	next := current.With(ability, value)
	total, ok := p.cost(next)
	if !ok || total > p.table.Budget {
		return current, false
	}
	return next, true
}

func (p pointBuy) summarize(scores dnd5e.AbilityScores) PointBuySummary {
	used, ok := p.cost(scores)
	return PointBuySummary{
		Used:      used,
		Remaining: p.table.Budget - used,
		Budget:    p.table.Budget,
		Valid:     ok && used <= p.table.Budget,
	}
}
