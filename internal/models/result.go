package models

// Result represents one hit/miss classification of a submitted point.
//
// Results are immutable: created exactly once per submission, never updated,
// and deleted only in bulk when their owner clears history. Hit is a pure
// function of (X, Y, R) under the active region definition, so recomputing it
// always reproduces the stored value.
type Result struct {
	// ID is the unique identifier for the result (UUID format).
	ID string

	// OwnerID references the User that submitted the point.
	OwnerID string

	// X, Y are the submitted point coordinates.
	X float64
	Y float64

	// R is the radius parameter the region was scaled by.
	R float64

	// Hit reports whether the point fell inside the region.
	Hit bool

	// ExecutionTimeNanos is how long classification took.
	// Always non-negative.
	ExecutionTimeNanos int64

	// CreatedAt is the Unix timestamp when the result was stored.
	CreatedAt int64
}
