package gadget

import "errors"

// Domain errors for the gadget package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, gadget.ErrNotFound) {
//	    // handle not found case
//	}
var (
	// ErrNotFound is returned when a gadget ID does not exist.
	ErrNotFound = errors.New("gadget: not found")

	// ErrNameExists is returned when a codename is already taken.
	ErrNameExists = errors.New("gadget: name already exists")

	// ErrInvalidStatus is returned when a status value is not recognised.
	ErrInvalidStatus = errors.New("gadget: invalid status")

	// ErrCodenameExhausted is returned when codename generation cannot find
	// an unused name within the attempt budget.
	ErrCodenameExhausted = errors.New("gadget: codename vocabulary exhausted")

	// ErrNoPendingCode is returned when a self-destruct is confirmed for a
	// gadget that has no pending confirmation code.
	ErrNoPendingCode = errors.New("gadget: no confirmation code generated")

	// ErrCodeMismatch is returned when the supplied confirmation code does
	// not match the pending one. The pending code remains valid.
	ErrCodeMismatch = errors.New("gadget: confirmation code mismatch")
)
