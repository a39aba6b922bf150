package models

import (
	"errors"
)

// Error kinds. Every error returned by the ledger wraps exactly one of them,
// callers decide on their reaction with errors.Is.
var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrUnauthorized     = errors.New("you need to be authenticated for this request")
	ErrForbidden        = errors.New("you are not allowed to do this")
	ErrConflict         = errors.New("the resource conflicts with an existing one")
	ErrInvalidInput     = errors.New("the request contains invalid data")
	ErrInvalidState     = errors.New("the resource is not in a state that allows this")
)

// kindError is an error with its own message that still matches its kind.
type kindError struct {
	kind error
	msg  string
}

func (e kindError) Error() string {
	return e.msg
}

func (e kindError) Unwrap() error {
	return e.kind
}

// NewError returns an error with the message msg that wraps kind.
func NewError(kind error, msg string) error {
	return kindError{kind: kind, msg: msg}
}

// Month errors
var (
	ErrMonthExists         = NewError(ErrConflict, "a month for this year and month already exists")
	ErrMonthNotEditable    = NewError(ErrForbidden, "cannot edit past months")
	ErrMonthAlreadyStarted = NewError(ErrInvalidState, "cannot delete a month that has already started")
	ErrMonthOutOfRange     = NewError(ErrInvalidInput, "the month must be between 1 and 12")
	ErrYearInvalid         = NewError(ErrInvalidInput, "the year must be a positive number")
	ErrNotOwner            = NewError(ErrForbidden, "this month belongs to another user")
	ErrUserIDRequired      = NewError(ErrUnauthorized, "no user identity was provided")
)

// Item errors
var (
	ErrKindInvalid              = NewError(ErrInvalidInput, "the item kind must be one of income, expense, investment or misc-expense")
	ErrDescriptionRequired      = NewError(ErrInvalidInput, "the description must not be empty")
	ErrAmountRequired           = NewError(ErrInvalidInput, "the amount must be set")
	ErrAmountNotPositive        = NewError(ErrInvalidInput, "the amount must be larger than zero")
	ErrAmountNegative           = NewError(ErrInvalidInput, "amounts must not be negative")
	ErrDayOutOfRange            = NewError(ErrInvalidInput, "the day must be between 1 and 31")
	ErrExpenseTypeInvalid       = NewError(ErrInvalidInput, "the expense type must be one of STANDARD, TITHE, INVESTMENT_TOTAL or MISC_TOTAL")
	ErrOrderNotUnique           = NewError(ErrConflict, "another item of this month already uses this order")
	ErrReorderMismatch          = NewError(ErrInvalidInput, "the new order must list every item of the month exactly once")
	ErrSyntheticExpenseReadOnly = NewError(ErrForbidden, "computed expenses only allow changes to the paid amount and the day")
	ErrSyntheticExpenseDelete   = NewError(ErrForbidden, "computed expenses cannot be deleted")
)
