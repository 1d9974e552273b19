package config

import (
	"math"
	"testing"
)

// TestCardX 三张卡片居中且间距一致
func TestCardX(t *testing.T) {
	const width = float64(GameWindowWidth)

	first := CardX(0, 3, width)
	last := CardX(2, 3, width)

	leftMargin := first
	rightMargin := width - (last + ServicesCardWidth)
	if math.Abs(leftMargin-rightMargin) > 1e-9 {
		t.Errorf("cards not centered: left %.1f right %.1f", leftMargin, rightMargin)
	}

	gap := CardX(1, 3, width) - (first + ServicesCardWidth)
	if gap != ServicesCardGap {
		t.Errorf("gap = %.1f, want %.1f", gap, ServicesCardGap)
	}

	if got := CardX(0, 0, width); got != 0 {
		t.Errorf("CardX with no cards = %v, want 0", got)
	}
}
