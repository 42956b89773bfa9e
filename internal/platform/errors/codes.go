// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Move set errors
	CodeMovesTooFew    Code = "MOVES_TOO_FEW"
	CodeMovesEvenCount Code = "MOVES_EVEN_COUNT"
	CodeMovesDuplicate Code = "MOVES_DUPLICATE"
	CodeMovesBlank     Code = "MOVES_BLANK"

	// Fairness errors
	CodeEntropyUnavailable Code = "ENTROPY_UNAVAILABLE"
	CodeDigestMismatch     Code = "DIGEST_MISMATCH"

	// Round input errors
	CodeChoiceInvalid Code = "CHOICE_INVALID"
)

// Tier classifies how a caller must react to an error code.
type Tier int

const (
	// TierFatal errors stop the session before or during setup.
	TierFatal Tier = iota
	// TierRecoverable errors are reported and the round loop continues.
	TierRecoverable
)

// Tier maps domain codes to their handling tier.
func (c Code) Tier() Tier {
	switch c {
	case CodeChoiceInvalid:
		return TierRecoverable
	default:
		return TierFatal
	}
}
