package ecs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind distinguishes the recoverable fault classes a caller can test for with
// errors.Is. Contract violations (using an invalid entity with Get, reading a
// component an entity doesn't have) are not part of this taxonomy: they panic
// instead of returning an error, the same way the source treats them as
// programmer bugs rather than runtime conditions.
type Kind int

const (
	// KindInvalidEntity marks a fault raised by Emplace/GetOrEmplace when the
	// supplied entity is not valid.
	KindInvalidEntity Kind = iota + 1
	// KindDuplicateComponent marks a fault raised by Emplace when the entity
	// already carries a component of the requested type.
	KindDuplicateComponent
	// KindCapacityExceeded marks a fault raised when a sparse set would grow
	// past its fixed capacity.
	KindCapacityExceeded
)

func (k Kind) String() string {
	switch k {
	case KindInvalidEntity:
		return "InvalidEntity"
	case KindDuplicateComponent:
		return "DuplicateComponent"
	case KindCapacityExceeded:
		return "CapacityExceeded"
	default:
		return "Unknown"
	}
}

// Fault is the error type every recoverable registry failure is wrapped in.
// Callers distinguish fault classes with the IsInvalidEntity /
// IsDuplicateComponent / IsCapacityExceeded predicates (errors.Is against the
// unexported errInvalidEntity / errDuplicateComponent /
// errCapacityExceededTag sentinels), or by inspecting Kind directly after an
// errors.As.
type Fault struct {
	Kind   Kind
	Entity Entity
	msg    string
}

func (f *Fault) Error() string { return f.msg }

func (f *Fault) Is(target error) bool {
	t, ok := target.(*Fault)
	if !ok {
		return false
	}
	return t.Kind == f.Kind
}

var (
	errInvalidEntity       = &Fault{Kind: KindInvalidEntity, msg: "ecs: invalid entity"}
	errDuplicateComponent  = &Fault{Kind: KindDuplicateComponent, msg: "ecs: duplicate component"}
	errCapacityExceededTag = &Fault{Kind: KindCapacityExceeded, msg: "ecs: capacity exceeded"}
)

func newInvalidEntityError(e Entity) error {
	return errors.WithStack(&Fault{
		Kind:   KindInvalidEntity,
		Entity: e,
		msg:    fmt.Sprintf("ecs: invalid entity %s", e),
	})
}

func newDuplicateComponentError(e Entity) error {
	return errors.WithStack(&Fault{
		Kind:   KindDuplicateComponent,
		Entity: e,
		msg:    fmt.Sprintf("ecs: entity %s already has this component", e),
	})
}

func newCapacityExceededError(index, limit uint32) error {
	return errors.WithStack(&Fault{
		Kind: KindCapacityExceeded,
		msg:  fmt.Sprintf("ecs: sparse set capacity %d exceeded by index %d", limit, index),
	})
}

// IsInvalidEntity reports whether err resulted from using a stale or null
// entity with Emplace/GetOrEmplace.
func IsInvalidEntity(err error) bool { return errors.Is(err, errInvalidEntity) }

// IsDuplicateComponent reports whether err resulted from Emplace being called
// on an entity that already owns a component of that type.
func IsDuplicateComponent(err error) bool { return errors.Is(err, errDuplicateComponent) }

// IsCapacityExceeded reports whether err resulted from a sparse set growing
// past its fixed capacity.
func IsCapacityExceeded(err error) bool { return errors.Is(err, errCapacityExceededTag) }
