// Package geometry implements the hit/miss classification of a point against
// the composite planar region.
//
// The region is defined piecewise by the quadrant the point falls in, with the
// radius parameter r as the shape's defining scale. Classification is total
// and deterministic: every finite (x, y, r) evaluates to a boolean, there is
// no failure path, and the classifier never rejects degenerate r — validating
// r is the caller's concern.
package geometry

// QuadrantRule decides hit/miss for a point known to lie in one quadrant.
type QuadrantRule func(x, y, r float64) bool

// Region is a piecewise region definition, one rule per quadrant of the
// (x, y) sign. Axis boundaries belong to exactly one quadrant: x = 0 goes to
// the right half-plane and y = 0 to the upper half-plane, so no point is
// evaluated by two rules.
//
// The definition is swappable so a different formula set can be shipped
// without touching any caller.
type Region struct {
	Q1 QuadrantRule // x >= 0, y >= 0
	Q2 QuadrantRule // x < 0, y >= 0
	Q3 QuadrantRule // x < 0, y < 0
	Q4 QuadrantRule // x >= 0, y < 0
}

// Contains reports whether (x, y) falls inside the region scaled by r.
func (reg Region) Contains(x, y, r float64) bool {
	switch {
	case x >= 0 && y >= 0:
		return reg.Q1(x, y, r)
	case x < 0 && y >= 0:
		return reg.Q2(x, y, r)
	case x >= 0 && y < 0:
		return reg.Q4(x, y, r)
	default:
		return reg.Q3(x, y, r)
	}
}

// Canonical is the region definition currently in effect:
//
//   - first quadrant: quarter circle of radius r/2 centered at the origin
//   - second quadrant: rectangle from -r/2 to 0 in x and 0 to r in y
//   - third quadrant: always a miss
//   - fourth quadrant: triangle under the line y = x - r
//
// Project history carries incompatible variants of these formulas (differing
// scale factors and boundary inequalities); this set matches the deployed
// backend and is pending product sign-off as the single agreed definition.
var Canonical = Region{
	Q1: func(x, y, r float64) bool { return x*x+y*y <= (r/2)*(r/2) },
	Q2: func(x, y, r float64) bool { return x >= -r/2 && y <= r },
	Q3: func(x, y, r float64) bool { return false },
	Q4: func(x, y, r float64) bool { return y >= x-r },
}
