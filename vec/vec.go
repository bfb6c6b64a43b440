package vec

import "fmt"

// Vector2 is a position or a position delta in window coordinates.
// It is passed by value everywhere, so snapshots taken for animations
// cannot drift when the original shape moves.
type Vector2 struct {
	X, Y float64
}

func New(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) String() string {
	return fmt.Sprintf("Vector2(%.2f, %.2f)", v.X, v.Y)
}
