package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeMovesTooFew        = "MOVES_TOO_FEW"
	CodeMovesEvenCount     = "MOVES_EVEN_COUNT"
	CodeMovesDuplicate     = "MOVES_DUPLICATE"
	CodeMovesBlank         = "MOVES_BLANK"
	CodeEntropyUnavailable = "ENTROPY_UNAVAILABLE"
	CodeDigestMismatch     = "DIGEST_MISMATCH"
	CodeChoiceInvalid      = "CHOICE_INVALID"
)

// Codes lists every error code that locale catalogs must translate.
var Codes = []Code{
	CodeMovesTooFew,
	CodeMovesEvenCount,
	CodeMovesDuplicate,
	CodeMovesBlank,
	CodeEntropyUnavailable,
	CodeDigestMismatch,
	CodeChoiceInvalid,
}
