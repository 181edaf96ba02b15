package contract

import (
	"fmt"

	"aidchain/sdk"
)

// Revert symbols surfaced to callers. The wire contract is the symbol, the
// message text is free-form and only meant for humans.
const (
	errUnauthorized         = "unauthorized"
	errInvalidPayload       = "invalid_payload"
	errInvalidAmount        = "invalid_amount"
	errInsufficientBalance  = "insufficient_balance"
	errAlreadyInitialized   = "already_initialized"
	errAlreadyRegistered    = "already_registered"
	errAlreadyVerifier      = "already_verifier"
	errAlreadyVerified      = "already_verified"
	errAlreadyApproved      = "already_approved"
	errAlreadyAssigned      = "already_assigned"
	errRecipientNotVerified = "recipient_not_verified"
	errNotReady             = "not_ready"
	errMissingProof         = "missing_proof"
	errTooEarly             = "too_early"
	errVersionConflict      = "version_conflict"
	errNotFound             = "not_found"
	errMalformedRecord      = "malformed_record"
)

// fail reverts the call with a symbol plus formatted message and never returns.
func fail(symbol string, format string, args ...any) {
	sdk.Revert(fmt.Sprintf(format, args...), symbol)
}

// requireVersion reverts with version_conflict when the caller pinned a stale
// version. Zero (or absent on the wire) means no precondition.
func requireVersion(expect uint64, actual uint64) {
	if expect != 0 && expect != actual {
		fail(errVersionConflict, "expected version %d but record is at %d", expect, actual)
	}
}
