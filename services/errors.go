// Package services holds the lifecycle controller, the billing calculator
// and the CRUD services backing the dashboard endpoints.
package services

import "errors"

// Failure taxonomy shared by the lifecycle controller and the billing
// calculator. Validation errors are raised before any mutation; state
// errors roll the transaction back and leave all rows unchanged. Handlers
// translate these into HTTP responses.
// The messages go to the initiating UI verbatim, so they read as sentences
// rather than codes.
var (
	// ErrInvalidDateRange means checkoutDate is not strictly after checkinDate.
	ErrInvalidDateRange = errors.New("checkout date must be after checkin date")

	// ErrRoomUnavailable means the room is not available for booking, either
	// by status or because another non-terminal booking overlaps the dates.
	ErrRoomUnavailable = errors.New("room is not available for the requested dates")

	// ErrIllegalTransition means the requested status change has no edge in
	// the room or booking state machine from the current status.
	ErrIllegalTransition = errors.New("status change not allowed from the current status")

	// ErrInvalidCharge means a monetary input is out of bounds (negative
	// charge, tax rate outside 0..50, discount rate outside 0..100).
	ErrInvalidCharge = errors.New("invalid charge")

	// ErrAlreadyBilled means the booking already has an invoice/payment.
	ErrAlreadyBilled = errors.New("booking has already been billed")

	// ErrNotFound means the referenced room or booking does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden means the actor's role does not permit the operation.
	ErrForbidden = errors.New("operation not permitted for this account")

	// ErrConflict means the operation would break a referential invariant,
	// e.g. deleting a room a non-terminal booking still references.
	ErrConflict = errors.New("conflicting record exists")
)
