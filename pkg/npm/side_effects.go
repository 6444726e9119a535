// SPDX-License-Identifier: MPL-2.0

package npm

import (
	"encoding/json"
	"fmt"
)

// SideEffects models the package.json "sideEffects" field, which is either a
// boolean or a list of glob-like path patterns. The field has three distinct
// states the pipeline must not conflate: absent, false, and an empty pattern
// list (an empty list marks every file side-effect-free per pattern matching,
// which is not the same contract as the blanket false).
//
// The zero value is the absent state.
type SideEffects struct {
	present  bool
	isList   bool
	boolVal  bool
	patterns []string
}

// SideEffectsBool returns a present boolean SideEffects value.
func SideEffectsBool(v bool) SideEffects {
	return SideEffects{present: true, boolVal: v}
}

// SideEffectsPatterns returns a present pattern-list SideEffects value.
// The list may be empty.
func SideEffectsPatterns(patterns []string) SideEffects {
	return SideEffects{present: true, isList: true, patterns: patterns}
}

// IsPresent reports whether the manifest carried the field at all.
func (s SideEffects) IsPresent() bool { return s.present }

// Bool returns the boolean value and whether the field holds a boolean.
func (s SideEffects) Bool() (value, ok bool) {
	if !s.present || s.isList {
		return false, false
	}
	return s.boolVal, true
}

// Patterns returns the pattern list and whether the field holds a list.
func (s SideEffects) Patterns() (patterns []string, ok bool) {
	if !s.present || !s.isList {
		return nil, false
	}
	return s.patterns, true
}

// Value returns the literal manifest value: nil when absent, a bool, or a
// []string. Callers embedding the value into a derived manifest get back
// exactly what the source manifest declared.
func (s SideEffects) Value() any {
	switch {
	case !s.present:
		return nil
	case s.isList:
		if s.patterns == nil {
			return []string{}
		}
		return s.patterns
	default:
		return s.boolVal
	}
}

// UnmarshalJSON accepts a boolean or a list of strings.
func (s *SideEffects) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*s = SideEffectsBool(b)
		return nil
	}
	var patterns []string
	if err := json.Unmarshal(data, &patterns); err == nil {
		if patterns == nil {
			patterns = []string{}
		}
		*s = SideEffectsPatterns(patterns)
		return nil
	}
	return fmt.Errorf("sideEffects: expected boolean or array of strings, got %s", data)
}

// MarshalJSON writes the literal value. Absent values marshal as null;
// callers are expected to omit the field instead of serializing the absent
// state.
func (s SideEffects) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Value())
}

// parseSideEffects converts the raw decoded manifest value into a
// SideEffects state. Unrecognized shapes are treated as absent, in line with
// the "missing config yields an absent value" policy.
func parseSideEffects(raw any, ok bool) SideEffects {
	if !ok {
		return SideEffects{}
	}
	switch v := raw.(type) {
	case bool:
		return SideEffectsBool(v)
	case []any:
		patterns := make([]string, 0, len(v))
		for _, item := range v {
			str, isStr := item.(string)
			if !isStr {
				return SideEffects{}
			}
			patterns = append(patterns, str)
		}
		return SideEffectsPatterns(patterns)
	case []string:
		return SideEffectsPatterns(v)
	default:
		return SideEffects{}
	}
}
