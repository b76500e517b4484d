package core

// Point represents a 2D integer coordinate
type Point struct {
	X, Y int
}

// Area represents a rectangular target region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Empty reports whether the area has no measurable size
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Contains reports whether p lies inside the area
func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X < a.X+a.Width && p.Y >= a.Y && p.Y < a.Y+a.Height
}
