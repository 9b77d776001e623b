package graph

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a RouterError by its §7 taxonomy entry, letting a
// caller branch on error category without type-switching over every
// concrete error type in every package.
type ErrorKind int

const (
	KindInputError ErrorKind = iota
	KindUnreachableTarget
	KindIterationExhausted
	KindCancelled
	KindInternalInvariantViolation
)

func (k ErrorKind) String() string {
	switch k {
	case KindInputError:
		return "InputError"
	case KindUnreachableTarget:
		return "UnreachableTarget"
	case KindIterationExhausted:
		return "IterationExhausted"
	case KindCancelled:
		return "Cancelled"
	case KindInternalInvariantViolation:
		return "InternalInvariantViolation"
	default:
		return "Unknown"
	}
}

// RouterError is implemented by every error type in pkg/graph, pkg/plan,
// pkg/treebuilder, and pkg/router's §7 error taxonomy, so a caller can
// recover the taxonomy category via errors.As without knowing which
// package raised it.
type RouterError interface {
	error
	Kind() ErrorKind
}

// Sentinel errors for errors.Is comparisons.
var ErrNodeNotFound = errors.New("node not found")

// NotFoundError reports a lookup failure for an unknown node identifier.
// Classified as InputError: an unknown node identifier in the plan is an
// input-validation failure, not an internal bug.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lookup %q: %v", e.ID, ErrNodeNotFound)
}

func (e *NotFoundError) Is(target error) bool {
	return errors.Is(ErrNodeNotFound, target)
}

func (e *NotFoundError) Kind() ErrorKind { return KindInputError }

// InternalInvariantViolation reports a broken invariant (§7): negative usage,
// a non-contiguous path, or a non-terminating predecessor chain. These are
// bugs, not recoverable routing outcomes, and callers should halt on them.
type InternalInvariantViolation struct {
	Reason string
}

func (e *InternalInvariantViolation) Error() string {
	return fmt.Sprintf("internal invariant violation: %s", e.Reason)
}

func (e *InternalInvariantViolation) Kind() ErrorKind { return KindInternalInvariantViolation }
