package errors

import (
	"fmt"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/domain"
)

// ErrNotFound is returned when a resource is not found
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation is returned when a form submission fails schema validation.
// Fields maps field name to message so the rendering layer can show every
// failure at once.
type ErrValidation struct {
	Message string
	Fields  map[string]string
}

func (e *ErrValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// ErrIncompleteSelection is returned when add-to-cart is attempted without
// a complete, available variant selection
type ErrIncompleteSelection struct {
	Message string
}

func (e *ErrIncompleteSelection) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "selection incomplete"
}

// ErrEmptyCart is returned when checkout is attempted with no line items
type ErrEmptyCart struct{}

func (e *ErrEmptyCart) Error() string {
	return "cart is empty"
}

// ErrInvalidPhaseTransition is returned when an invalid checkout phase transition is attempted
type ErrInvalidPhaseTransition struct {
	From domain.CheckoutPhase
	To   domain.CheckoutPhase
}

func (e *ErrInvalidPhaseTransition) Error() string {
	return fmt.Sprintf("invalid phase transition from %s to %s", e.From, e.To)
}
