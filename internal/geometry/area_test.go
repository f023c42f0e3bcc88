package geometry

import (
	"math"
	"testing"
)

func TestCanonicalContains(t *testing.T) {
	tests := []struct {
		name    string
		x, y, r float64
		want    bool
	}{
		{name: "origin inside quarter circle", x: 0, y: 0, r: 4, want: true},
		{name: "quarter circle boundary", x: 2, y: 0, r: 4, want: true},
		{name: "just outside quarter circle", x: 2.01, y: 0, r: 4, want: false},
		{name: "inside quarter circle interior", x: 1, y: 1, r: 4, want: true},
		{name: "first quadrant far out", x: 3, y: 3, r: 4, want: false},
		{name: "rectangle interior", x: -1, y: 2, r: 4, want: true},
		{name: "rectangle left edge", x: -2, y: 1, r: 4, want: true},
		{name: "left of rectangle", x: -2.5, y: 1, r: 4, want: false},
		{name: "rectangle top edge", x: -1, y: 4, r: 4, want: true},
		{name: "above rectangle", x: -1, y: 4.5, r: 4, want: false},
		{name: "third quadrant always misses", x: -1, y: -1, r: 4, want: false},
		{name: "third quadrant near origin", x: -0.001, y: -0.001, r: 100, want: false},
		{name: "triangle interior", x: 1, y: -1, r: 4, want: true},
		{name: "triangle hypotenuse", x: 2, y: -2, r: 4, want: true},
		{name: "below triangle", x: 2, y: -2.5, r: 4, want: false},
		{name: "triangle x beyond r", x: 5, y: -0.5, r: 4, want: false},
		{name: "small radius shrinks circle", x: 1, y: 1, r: 1, want: false},
		{name: "zero radius collapses to origin", x: 0, y: 0, r: 0, want: true},
		{name: "negative radius evaluates without error", x: 1, y: 1, r: -4, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Canonical.Contains(tt.x, tt.y, tt.r)
			if got != tt.want {
				t.Errorf("Contains(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.r, got, tt.want)
			}
		})
	}
}

func TestContainsIsDeterministic(t *testing.T) {
	points := []struct{ x, y, r float64 }{
		{0, 0, 4},
		{-1.5, 2.5, 3},
		{2, -2, 4},
		{math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64, 1},
		{1e300, 1e300, 1e300},
	}

	for _, p := range points {
		first := Canonical.Contains(p.x, p.y, p.r)
		for i := 0; i < 100; i++ {
			if got := Canonical.Contains(p.x, p.y, p.r); got != first {
				t.Fatalf("Contains(%v, %v, %v) flipped from %v to %v on call %d",
					p.x, p.y, p.r, first, got, i)
			}
		}
	}
}

// Axis points must be claimed by exactly one quadrant rule: x = 0 by the
// right half-plane, y = 0 by the upper half-plane.
func TestAxisBoundaryConvention(t *testing.T) {
	var evaluated []string
	probe := Region{
		Q1: func(x, y, r float64) bool { evaluated = append(evaluated, "q1"); return false },
		Q2: func(x, y, r float64) bool { evaluated = append(evaluated, "q2"); return false },
		Q3: func(x, y, r float64) bool { evaluated = append(evaluated, "q3"); return false },
		Q4: func(x, y, r float64) bool { evaluated = append(evaluated, "q4"); return false },
	}

	tests := []struct {
		name     string
		x, y     float64
		wantRule string
	}{
		{name: "positive y axis", x: 0, y: 2, wantRule: "q1"},
		{name: "negative y axis", x: 0, y: -2, wantRule: "q4"},
		{name: "positive x axis", x: 2, y: 0, wantRule: "q1"},
		{name: "negative x axis", x: -2, y: 0, wantRule: "q2"},
		{name: "origin", x: 0, y: 0, wantRule: "q1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evaluated = evaluated[:0]
			probe.Contains(tt.x, tt.y, 1)
			if len(evaluated) != 1 {
				t.Fatalf("point (%v, %v) evaluated by %d rules: %v", tt.x, tt.y, len(evaluated), evaluated)
			}
			if evaluated[0] != tt.wantRule {
				t.Errorf("point (%v, %v) went to %s, want %s", tt.x, tt.y, evaluated[0], tt.wantRule)
			}
		})
	}
}

func TestContainsTotalOverSpecialValues(t *testing.T) {
	specials := []float64{0, math.Inf(1), math.Inf(-1), math.NaN(), -0.0, 1e-300}
	for _, x := range specials {
		for _, y := range specials {
			for _, r := range specials {
				// Must not panic; the returned value just has to be a boolean.
				_ = Canonical.Contains(x, y, r)
			}
		}
	}
}
