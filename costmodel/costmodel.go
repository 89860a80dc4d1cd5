package costmodel

import (
	"errors"
	"fmt"
)

// Geometric step costs of the direct model. DiagonalCost is the literal 1.4,
// not √2, so path costs stay identical across implementations.
const (
	StraightCost = 1.0
	DiagonalCost = 1.4
)

// Default weighted class costs.
const (
	DefaultOpenCost      int64 = 1
	DefaultExpensiveCost int64 = 10
)

// ErrBadCost indicates a non-positive class cost.
var ErrBadCost = errors.New("costmodel: class costs must be positive")

// Class is the normalized weighted terrain class of a code.
type Class uint8

const (
	// Open terrain: cheapest to enter.
	Open Class = iota
	// Expensive terrain: traversable at a higher cost.
	Expensive
	// Blocked terrain: never entered.
	Blocked
)

// String implements fmt.Stringer.
func (c Class) String() string {
	switch c {
	case Open:
		return "open"
	case Expensive:
		return "expensive"
	case Blocked:
		return "blocked"
	}

	return fmt.Sprintf("class(%d)", uint8(c))
}

// Direct is the geometric model: code 0 walkable, non-zero impassable.
type Direct struct{}

// Passable reports whether a cell with code can be entered.
func (Direct) Passable(code uint8) bool { return code == 0 }

// StepCost returns the cost of moving into a cell with code along a straight
// or diagonal step, and false if the cell cannot be entered.
func (Direct) StepCost(code uint8, diagonal bool) (float64, bool) {
	if code != 0 {
		return 0, false
	}
	if diagonal {
		return DiagonalCost, true
	}

	return StraightCost, true
}

// Normalize maps a raw terrain code to its weighted class.
// 0 → Open, 1 → Expensive, 2 → Blocked, anything else → Expensive.
func Normalize(code uint8) Class {
	switch code {
	case 0:
		return Open
	case 2:
		return Blocked
	}

	return Expensive
}

// Weighted is the three-class model. The zero value is not usable; start
// from DefaultWeighted.
type Weighted struct {
	OpenCost      int64
	ExpensiveCost int64
}

// DefaultWeighted returns the 1 / 10 / impassable model.
func DefaultWeighted() Weighted {
	return Weighted{OpenCost: DefaultOpenCost, ExpensiveCost: DefaultExpensiveCost}
}

// Validate returns ErrBadCost when a class cost is not positive.
func (w Weighted) Validate() error {
	if w.OpenCost <= 0 || w.ExpensiveCost <= 0 {
		return fmt.Errorf("%w: open=%d expensive=%d", ErrBadCost, w.OpenCost, w.ExpensiveCost)
	}

	return nil
}

// Passable reports whether a cell with code can be entered.
func (w Weighted) Passable(code uint8) bool { return Normalize(code) != Blocked }

// EnterCost returns the cost of entering a cell with code, and false if the
// cell is Blocked.
func (w Weighted) EnterCost(code uint8) (int64, bool) {
	switch Normalize(code) {
	case Open:
		return w.OpenCost, true
	case Expensive:
		return w.ExpensiveCost, true
	}

	return 0, false
}
