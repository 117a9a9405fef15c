package domain

// Challenge is a catalog entry worth a fixed number of points.
// The catalog is seeded once and immutable afterwards; Points is always > 0.
type Challenge struct {
	ID          int64
	Title       string
	Description string
	Points      int
}
