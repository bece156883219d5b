package parser

import "testing"

func TestIsKeywordAt(t *testing.T) {
	tests := []struct {
		text string
		ctx  GrammarContext
		want bool
	}{
		{"part", AtElementStart, true},
		{"package", AtElementStart, true},
		{"import", AtElementStart, true},
		{"doc", AtElementStart, true},
		{"use", AtElementStart, true},
		{"perform", AtElementStart, false},
		{"first", AtElementStart, false},
		{"wheel", AtElementStart, false},

		{"private", AtModifier, true},
		{"abstract", AtModifier, true},
		{"ref", AtModifier, true},
		{"part", AtModifier, false},

		{"part", AtBodyMember, true},
		{"perform", AtBodyMember, true},
		{"entry", AtBodyMember, true},
		{"first", AtBodyMember, true},
		{"in", AtBodyMember, true},
		{"wheel", AtBodyMember, false},

		// Nothing is reserved in name position.
		{"part", AtName, false},
		{"package", AtName, false},
		{"def", AtName, false},
	}

	for _, tt := range tests {
		got := IsKeywordAt(tt.text, tt.ctx)
		if got != tt.want {
			t.Errorf("IsKeywordAt(%q, %v) = %v, want %v", tt.text, tt.ctx, got, tt.want)
		}
	}
}

func TestIsReservedWord(t *testing.T) {
	for _, word := range []string{"part", "def", "about", "xor", "timeslice"} {
		if !IsReservedWord(word) {
			t.Errorf("IsReservedWord(%q) = false, want true", word)
		}
	}
	for _, word := range []string{"Vehicle", "wheel", ""} {
		if IsReservedWord(word) {
			t.Errorf("IsReservedWord(%q) = true, want false", word)
		}
	}
}
