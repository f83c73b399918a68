package domain

import "fmt"

// NotFoundError represents a missing record.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing records.
var ErrNotFound = NotFoundError{}

// AlreadyExistsError rejects re-creation of a keyed record.
type AlreadyExistsError struct {
	Resource string
}

func (e AlreadyExistsError) Error() string {
	if e.Resource == "" {
		return "already exists"
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

func (e AlreadyExistsError) Is(target error) bool {
	_, ok := target.(AlreadyExistsError)
	if ok {
		return true
	}
	_, ok = target.(*AlreadyExistsError)
	return ok
}

var ErrAlreadyExists = AlreadyExistsError{}

// FieldTooLongError rejects a text field over its hard upper bound.
type FieldTooLongError struct {
	Field string
	Max   int
	Len   int
}

func (e FieldTooLongError) Error() string {
	return fmt.Sprintf("field %s too long: %d > %d", e.Field, e.Len, e.Max)
}

func (e FieldTooLongError) Is(target error) bool {
	_, ok := target.(FieldTooLongError)
	if ok {
		return true
	}
	_, ok = target.(*FieldTooLongError)
	return ok
}

var ErrFieldTooLong = FieldTooLongError{}

// TooManyLinksError rejects a link list over MaxLinkCount entries.
type TooManyLinksError struct {
	Count int
}

func (e TooManyLinksError) Error() string {
	return fmt.Sprintf("too many links: %d > %d", e.Count, MaxLinkCount)
}

func (e TooManyLinksError) Is(target error) bool {
	_, ok := target.(TooManyLinksError)
	if ok {
		return true
	}
	_, ok = target.(*TooManyLinksError)
	return ok
}

var ErrTooManyLinks = TooManyLinksError{}

// AlreadyFollowingError rejects a duplicate follow.
type AlreadyFollowingError struct {
	Artist string
}

func (e AlreadyFollowingError) Error() string {
	return "already following this artist"
}

func (e AlreadyFollowingError) Is(target error) bool {
	_, ok := target.(AlreadyFollowingError)
	if ok {
		return true
	}
	_, ok = target.(*AlreadyFollowingError)
	return ok
}

var ErrAlreadyFollowing = AlreadyFollowingError{}

// UnauthorizedError is returned when the caller identity does not match
// the recorded owner. No partial authorization: any mismatch fails closed.
type UnauthorizedError struct {
	Operation string
}

func (e UnauthorizedError) Error() string {
	if e.Operation == "" {
		return "unauthorized"
	}
	return fmt.Sprintf("unauthorized: %s", e.Operation)
}

func (e UnauthorizedError) Is(target error) bool {
	_, ok := target.(UnauthorizedError)
	if ok {
		return true
	}
	_, ok = target.(*UnauthorizedError)
	return ok
}

var ErrUnauthorized = UnauthorizedError{}

// InvalidTransitionError rejects a collab-status change outside
// Pending -> {Accepted, Rejected}.
type InvalidTransitionError struct {
	Reason string
}

func (e InvalidTransitionError) Error() string {
	if e.Reason == "" {
		return "invalid state transition"
	}
	return fmt.Sprintf("invalid state transition: %s", e.Reason)
}

func (e InvalidTransitionError) Is(target error) bool {
	_, ok := target.(InvalidTransitionError)
	if ok {
		return true
	}
	_, ok = target.(*InvalidTransitionError)
	return ok
}

var ErrInvalidTransition = InvalidTransitionError{}

// InvalidInteractionError rejects a kind/comment mismatch.
type InvalidInteractionError struct {
	Reason string
}

func (e InvalidInteractionError) Error() string {
	if e.Reason == "" {
		return "invalid interaction arguments"
	}
	return fmt.Sprintf("invalid interaction arguments: %s", e.Reason)
}

func (e InvalidInteractionError) Is(target error) bool {
	_, ok := target.(InvalidInteractionError)
	if ok {
		return true
	}
	_, ok = target.(*InvalidInteractionError)
	return ok
}

var ErrInvalidInteraction = InvalidInteractionError{}

// InsufficientFundsError is returned for a debit exceeding the source
// balance, whether the tipper's wallet or the vault.
type InsufficientFundsError struct {
	Source string
}

func (e InsufficientFundsError) Error() string {
	if e.Source == "" {
		return "insufficient funds"
	}
	return fmt.Sprintf("insufficient funds in %s", e.Source)
}

func (e InsufficientFundsError) Is(target error) bool {
	_, ok := target.(InsufficientFundsError)
	if ok {
		return true
	}
	_, ok = target.(*InsufficientFundsError)
	return ok
}

var ErrInsufficientFunds = InsufficientFundsError{}

// InvalidAmountError rejects zero amounts on ledger operations.
type InvalidAmountError struct{}

func (e InvalidAmountError) Error() string {
	return "amount must be positive"
}

func (e InvalidAmountError) Is(target error) bool {
	_, ok := target.(InvalidAmountError)
	if ok {
		return true
	}
	_, ok = target.(*InvalidAmountError)
	return ok
}

var ErrInvalidAmount = InvalidAmountError{}

// OverflowError is returned when checked addition would wrap.
type OverflowError struct {
	Counter string
}

func (e OverflowError) Error() string {
	if e.Counter == "" {
		return "arithmetic overflow"
	}
	return fmt.Sprintf("arithmetic overflow on %s", e.Counter)
}

func (e OverflowError) Is(target error) bool {
	_, ok := target.(OverflowError)
	if ok {
		return true
	}
	_, ok = target.(*OverflowError)
	return ok
}

var ErrOverflow = OverflowError{}

// UnderflowError is returned when checked subtraction would go negative.
type UnderflowError struct {
	Counter string
}

func (e UnderflowError) Error() string {
	if e.Counter == "" {
		return "arithmetic underflow"
	}
	return fmt.Sprintf("arithmetic underflow on %s", e.Counter)
}

func (e UnderflowError) Is(target error) bool {
	_, ok := target.(UnderflowError)
	if ok {
		return true
	}
	_, ok = target.(*UnderflowError)
	return ok
}

var ErrUnderflow = UnderflowError{}
