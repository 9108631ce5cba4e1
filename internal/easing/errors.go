package easing

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownName indicates a lookup of a name that was never registered.
	ErrUnknownName = errors.New("easing: unknown easing name")

	// ErrDomain indicates an evaluation with t outside [0, 1].
	ErrDomain = errors.New("easing: t outside [0, 1]")

	// ErrParameter indicates a curve parameter outside its valid range.
	ErrParameter = errors.New("easing: parameter out of valid bounds")
)

// DomainError reports the offending input of a strict evaluation.
type DomainError struct {
	Name string
	T    float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("easing %s: t=%g outside [0, 1]", e.Name, e.T)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}
