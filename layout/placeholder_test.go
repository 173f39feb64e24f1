package layout

import (
	"strings"
	"testing"
)

func TestPlaceholderText(t *testing.T) {
	for _, n := range []int{0, 1, 5, 16, 32} {
		got := PlaceholderText(n, PlaceholderChar)
		if len(got) != n {
			t.Fatalf("PlaceholderText(%d) length = %d, want %d", n, len(got), n)
		}
		if strings.Trim(got, PlaceholderChar) != "" {
			t.Fatalf("PlaceholderText(%d) contains foreign characters: %q", n, got)
		}
	}
	if got := PlaceholderText(10, "-"); got != "----------" {
		t.Fatalf("custom char placeholder wrong: %q", got)
	}
	if got := PlaceholderText(-3, PlaceholderChar); got != "" {
		t.Fatalf("negative length should yield empty string, got %q", got)
	}
}

func TestStrengthPlaceholder(t *testing.T) {
	got := StrengthPlaceholder(DefaultStrengthDigits)

	parts := strings.Split(got, " / ")
	if len(parts) != 4 {
		t.Fatalf("strength placeholder needs 4 fields separated by \" / \", got %d in %q", len(parts), got)
	}
	for i, want := range DefaultStrengthDigits {
		if len(parts[i]) != want {
			t.Fatalf("field %d length = %d, want %d (%q)", i, len(parts[i]), want, got)
		}
	}
	// first three fields blank for handwriting, last one underscored
	for i := 0; i < 3; i++ {
		if strings.Trim(parts[i], " ") != "" {
			t.Fatalf("field %d should be spaces only: %q", i, parts[i])
		}
	}
	if parts[3] != "___" {
		t.Fatalf("total field should be ___, got %q", parts[3])
	}
}

func TestStrengthPlaceholderCustomDigits(t *testing.T) {
	got := StrengthPlaceholder([4]int{3, 3, 3, 2})
	if got != "    /     /     / __" {
		t.Fatalf("custom strength placeholder wrong: %q", got)
	}
}
