// File: mapx_test.go
// Title: Map Utilities Tests
// Description: Tests for key ordering, merging, cloning and transformation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package mapx

import (
	"reflect"
	"sort"
	"testing"
)

func TestKeys(t *testing.T) {
	if Keys[string, int](nil) != nil {
		t.Error("Keys(nil) should be nil")
	}

	keys := Keys(map[string]int{"b": 2, "a": 1})
	sort.Strings(keys)
	if !reflect.DeepEqual(keys, []string{"a", "b"}) {
		t.Errorf("Keys() = %v", keys)
	}
}

func TestSortedKeys(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]string
		want  []string
	}{
		{"nil map", nil, []string{}},
		{"single", map[string]string{"date": "YYYY-MM-DD"}, []string{"date"}},
		{
			name:  "presets",
			input: map[string]string{"time": "", "iso_offset": "", "date": "", "epoch_ms": ""},
			want:  []string{"date", "epoch_ms", "iso_offset", "time"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortedKeys(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("SortedKeys() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SortedKeys() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestMerge(t *testing.T) {
	defaults := map[string]string{"date": "YYYY-MM-DD", "time": "HH:MI:SS"}
	overrides := map[string]string{"time": "HH:MI", "stamp": "YYYYMMDD"}

	got := Merge(defaults, nil, overrides)
	want := map[string]string{"date": "YYYY-MM-DD", "time": "HH:MI", "stamp": "YYYYMMDD"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}

	got["date"] = "changed"
	if defaults["date"] != "YYYY-MM-DD" {
		t.Error("Merge() should not modify its inputs")
	}

	if empty := Merge[string, int](); empty == nil || len(empty) != 0 {
		t.Errorf("Merge() with no maps = %v, want empty map", empty)
	}
}

func TestClone(t *testing.T) {
	if Clone[string, int](nil) != nil {
		t.Error("Clone(nil) should be nil")
	}

	original := map[string]int{"a": 1}
	clone := Clone(original)
	clone["a"] = 2
	if original["a"] != 1 {
		t.Error("Clone() should return an independent copy")
	}
}

func TestTransform(t *testing.T) {
	got := Transform(map[string]int{"a": 1, "b": 2}, func(v int) string {
		return string(rune('0' + v))
	})
	if !reflect.DeepEqual(got, map[string]string{"a": "1", "b": "2"}) {
		t.Errorf("Transform() = %v", got)
	}
}
