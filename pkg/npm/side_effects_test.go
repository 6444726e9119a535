// SPDX-License-Identifier: MPL-2.0

package npm

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSideEffects_ZeroValueIsAbsent(t *testing.T) {
	t.Parallel()

	var s SideEffects
	if s.IsPresent() {
		t.Error("zero value should not be present")
	}
	if _, ok := s.Bool(); ok {
		t.Error("absent value should not report a bool")
	}
	if _, ok := s.Patterns(); ok {
		t.Error("absent value should not report patterns")
	}
	if s.Value() != nil {
		t.Errorf("absent Value() = %v, want nil", s.Value())
	}
}

func TestSideEffects_Bool(t *testing.T) {
	t.Parallel()

	s := SideEffectsBool(true)
	if !s.IsPresent() {
		t.Error("bool value should be present")
	}
	v, ok := s.Bool()
	if !ok || !v {
		t.Errorf("Bool() = (%v, %v), want (true, true)", v, ok)
	}
	if _, ok := s.Patterns(); ok {
		t.Error("bool value should not report patterns")
	}
	if got := s.Value(); got != true {
		t.Errorf("Value() = %v, want true", got)
	}
}

func TestSideEffects_EmptyListDistinctFromFalse(t *testing.T) {
	t.Parallel()

	emptyList := SideEffectsPatterns([]string{})
	falseVal := SideEffectsBool(false)

	patterns, ok := emptyList.Patterns()
	if !ok {
		t.Fatal("empty list should report patterns")
	}
	if len(patterns) != 0 {
		t.Errorf("Patterns() = %v, want empty", patterns)
	}
	if _, ok := emptyList.Bool(); ok {
		t.Error("empty list should not report a bool")
	}

	if !reflect.DeepEqual(emptyList.Value(), []string{}) {
		t.Errorf("empty list Value() = %#v, want []string{}", emptyList.Value())
	}
	if falseVal.Value() != false {
		t.Errorf("false Value() = %#v, want false", falseVal.Value())
	}
}

func TestSideEffects_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    any
		wantErr bool
	}{
		{"true", `true`, true, false},
		{"false", `false`, false, false},
		{"pattern list", `["./src/polyfills.ts"]`, []string{"./src/polyfills.ts"}, false},
		{"empty list", `[]`, []string{}, false},
		{"number is invalid", `42`, nil, true},
		{"object is invalid", `{}`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var s SideEffects
			err := json.Unmarshal([]byte(tt.input), &s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(s.Value(), tt.want) {
				t.Errorf("Value() = %#v, want %#v", s.Value(), tt.want)
			}
		})
	}
}

func TestSideEffects_MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(SideEffectsPatterns([]string{"./a.ts"}))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `["./a.ts"]` {
		t.Errorf("Marshal = %s, want %s", data, `["./a.ts"]`)
	}

	data, err = json.Marshal(SideEffectsBool(false))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `false` {
		t.Errorf("Marshal = %s, want false", data)
	}
}
