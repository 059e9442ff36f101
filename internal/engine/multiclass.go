package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// multiclassErrors checks every class against its prerequisite when the
// character holds more than one class. A violated class yields a message for
// joining it and one for leaving it.
func (e *engine) multiclassErrors(abilities dnd5e.AbilityScores, classes []dnd5e.ClassEntry) []string {
	if len(classes) <= 1 {
		return []string{}
	}

	var msgs []string
	for _, entry := range classes {
		class, found := e.rules.Class(entry.ClassName)
		if !found || len(class.Prerequisites) == 0 {
			continue
		}
		if meetsPrerequisites(abilities, class.Prerequisites) {
			continue
		}
		requirement := fmt.Sprintf("%s multiclassing requires %s", class.Name, describeRequirements(class.Prerequisites))
		msgs = append(msgs, requirement, requirement+" to leave the class")
	}
	return dedupe(msgs)
}

func meetsPrerequisites(abilities dnd5e.AbilityScores, reqs []rules.Requirement) bool {
	for _, req := range reqs {
		if abilities.Get(req.Ability) < req.Minimum {
			return false
		}
	}
	return true
}

// describeRequirements renders "Strength 13 or higher and Charisma 13 or higher"
func describeRequirements(reqs []rules.Requirement) string {
	parts := make([]string, len(reqs))
	for i, req := range reqs {
		parts[i] = fmt.Sprintf("%s %d or higher", req.Ability.DisplayName(), req.Minimum)
	}
	return joinList(parts)
}

// joinList joins with "and", using an Oxford comma for three or more items
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
