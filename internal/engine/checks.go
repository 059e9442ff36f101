package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// result is the outcome of a single field check: a value or the messages
// explaining why there is none.
type result[T any] struct {
	value T
	errs  []string
}

func ok[T any](v T) result[T] {
	return result[T]{value: v}
}

func fail[T any](msgs ...string) result[T] {
	return result[T]{errs: msgs}
}

func (r result[T]) failed() bool {
	return len(r.errs) > 0
}

// collect records r's messages under field and reports whether r holds a value
func collect[T any](vb *errors.ValidationBuilder, field string, r result[T]) (T, bool) {
	for _, msg := range r.errs {
		vb.Field(field, msg)
	}
	return r.value, !r.failed()
}

type intKind int

const (
	intOK intKind = iota
	intNotNumber
	intNotInteger
	// intOutOfRange is a whole number too large for int32; n carries its sign
	intOutOfRange
)

// toInt accepts every numeric shape a decoded document can carry:
// Go integers, float64 from encoding/json or structpb, and json.Number.
func toInt(v any) (int, intKind) {
	switch n := v.(type) {
	case int:
		return n, intOK
	case int8:
		return int(n), intOK
	case int16:
		return int(n), intOK
	case int32:
		return int(n), intOK
	case int64:
		return int(n), intOK
	case uint:
		return int(n), intOK
	case uint8:
		return int(n), intOK
	case uint16:
		return int(n), intOK
	case uint32:
		return int(n), intOK
	case uint64:
		if n > math.MaxInt32 {
			return 1, intOutOfRange
		}
		return int(n), intOK
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), intOK
		}
		f, err := n.Float64()
		if err != nil {
			return 0, intNotNumber
		}
		return floatToInt(f)
	default:
		return 0, intNotNumber
	}
}

func floatToInt(f float64) (int, intKind) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, intNotInteger
	}
	if f > math.MaxInt32 {
		return 1, intOutOfRange
	}
	if f < math.MinInt32 {
		return -1, intOutOfRange
	}
	return int(f), intOK
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		return toFloat(float64(n))
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return toFloat(f)
	default:
		if i, kind := toInt(v); kind == intOK {
			return float64(i), true
		}
		return 0, false
	}
}

// lookup returns the value at key, treating an explicit null as absent
func lookup(doc map[string]any, key string) (any, bool) {
	v, found := doc[key]
	if !found || v == nil {
		return nil, false
	}
	return v, true
}

type stringRule struct {
	label    string
	required bool
	max      int
}

// checkString trims v and applies presence and length limits
func checkString(v any, present bool, rule stringRule) result[string] {
	if !present {
		if rule.required {
			return fail[string](rule.label + " is required")
		}
		return ok("")
	}
	s, isString := v.(string)
	if !isString {
		return fail[string](rule.label + " must be a string")
	}
	s = strings.TrimSpace(s)
	if s == "" && rule.required {
		return fail[string](rule.label + " is required")
	}
	if rule.max > 0 && utf8.RuneCountInString(s) > rule.max {
		return fail[string](fmt.Sprintf("%s must be %d characters or less", rule.label, rule.max))
	}
	return ok(s)
}

type intRule struct {
	missing    string // empty means the field is optional
	fallback   int
	notInteger string
	outOfRange string
	min        int
	max        int
}

// checkInt requires an integral number within [min, max]
func checkInt(v any, present bool, rule intRule) result[int] {
	if !present {
		if rule.missing != "" {
			return fail[int](rule.missing)
		}
		return ok(rule.fallback)
	}
	n, kind := toInt(v)
	switch kind {
	case intOK:
	case intOutOfRange:
		return fail[int](rule.outOfRange)
	default:
		return fail[int](rule.notInteger)
	}
	if n < rule.min || n > rule.max {
		return fail[int](rule.outOfRange)
	}
	return ok(n)
}

// checkStringList trims every entry, drops duplicates and keeps first-seen
// order. normalize, when set, canonicalizes entries before comparison.
func checkStringList(v any, present bool, listMsg, entryMsg string, normalize func(string) string) result[[]string] {
	if !present {
		return ok([]string{})
	}
	items, isList := v.([]any)
	if !isList {
		if typed, isStrings := v.([]string); isStrings {
			items = make([]any, len(typed))
			for i, s := range typed {
				items[i] = s
			}
		} else {
			return fail[[]string](listMsg)
		}
	}

	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	bad := false
	for _, item := range items {
		s, isString := item.(string)
		s = strings.TrimSpace(s)
		if !isString || s == "" {
			bad = true
			continue
		}
		if normalize != nil {
			s = normalize(s)
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	if bad {
		return fail[[]string](entryMsg)
	}
	return ok(out)
}

func checkBool(v any, present bool, msg string) result[bool] {
	if !present {
		return ok(false)
	}
	b, isBool := v.(bool)
	if !isBool {
		return fail[bool](msg)
	}
	return ok(b)
}

func asObject(v any) (map[string]any, bool) {
	m, isMap := v.(map[string]any)
	return m, isMap
}

func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}

// normalizeKeys lowercases and trims the keys of an object. When several keys
// normalize alike, a key already in canonical form wins, then the first in
// sorted order.
func normalizeKeys(m map[string]any) map[string]any {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(m))
	canonical := make(map[string]bool, len(m))
	for _, k := range keys {
		norm := strings.ToLower(strings.TrimSpace(k))
		if canonical[norm] {
			continue
		}
		if k == norm {
			out[norm] = m[k]
			canonical[norm] = true
			continue
		}
		if _, taken := out[norm]; !taken {
			out[norm] = m[k]
		}
	}
	return out
}

// skillID canonicalizes "Sleight of Hand" and "sleight_of_hand" to "sleight-of-hand"
func skillID(s string) string {
	s = strings.ToLower(strings.ReplaceAll(s, "_", " "))
	return strings.Join(strings.Fields(s), "-")
}

// dedupe drops repeated messages, keeping first occurrence order
func dedupe(msgs []string) []string {
	out := make([]string, 0, len(msgs))
	seen := make(map[string]bool, len(msgs))
	for _, m := range msgs {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
