package typeframe

import (
	"github.com/typeframe/typeframe/frame"
)

// Column is the identity token of one declared field: its name plus the
// element type T carried at the type level. Tokens are produced only by
// schema registration (Field), so a token in scope always corresponds to an
// engine representation. They are lightweight values: comparable, freely
// copied, immutable.
type Column[T Element] struct {
	name string
}

func (c Column[T]) Name() string { return c.name }

// Type returns the declared runtime element type.
func (c Column[T]) Type() frame.Type { return TypeOf[T]() }

func (c Column[T]) String() string {
	return c.name + " " + TypeOf[T]().String()
}
