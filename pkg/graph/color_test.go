package graph

import (
	"regexp"
	"testing"
)

func TestColorForTypeDeterminism(t *testing.T) {
	types := []string{"Risk", "Process", "Person", "Document", "", "unexpected type"}
	for _, tt := range types {
		first := ColorForType(tt)
		for i := 0; i < 5; i++ {
			if got := ColorForType(tt); got != first {
				t.Errorf("ColorForType(%q) unstable: %q vs %q", tt, got, first)
			}
		}
	}
}

func TestColorForTypeCaseInsensitive(t *testing.T) {
	if ColorForType("Risk") != ColorForType("risk") {
		t.Error("color differs by case")
	}
}

func TestColorForTypeWellFormed(t *testing.T) {
	hex := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	for _, tt := range []string{"Risk", "", "Décision", "123"} {
		if got := ColorForType(tt); !hex.MatchString(got) {
			t.Errorf("ColorForType(%q) = %q, not a hex color", tt, got)
		}
	}
}
