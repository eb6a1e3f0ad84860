// Package model defines the core domain entities for the meal planner.
package model

// Quantity is an immutable non-negative amount of an ingredient.
// The zero value is a valid quantity of zero.
type Quantity struct {
	value float64
}

// NewQuantity creates a Quantity, rejecting negative values with ErrInvalidQuantity.
func NewQuantity(value float64) (Quantity, error) {
	if value < 0 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: value}, nil
}

// MustQuantity creates a Quantity and panics on a negative value.
// Intended for static values in wiring and tests.
func MustQuantity(value float64) Quantity {
	q, err := NewQuantity(value)
	if err != nil {
		panic(err)
	}
	return q
}

// Value returns the primitive amount.
func (q Quantity) Value() float64 {
	return q.value
}

// Add returns the sum of both quantities.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value + other.value}
}

// Subtract returns the difference, failing with ErrInvalidQuantity
// when the result would be negative.
func (q Quantity) Subtract(other Quantity) (Quantity, error) {
	return NewQuantity(q.value - other.value)
}

// Equals reports value equality.
func (q Quantity) Equals(other Quantity) bool {
	return q.value == other.value
}

// IsZero reports whether the quantity is exactly zero.
func (q Quantity) IsZero() bool {
	return q.value == 0
}
