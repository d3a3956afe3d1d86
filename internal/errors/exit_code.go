package errors

// Process exit codes for the command surface.
const (
	ExitSuccess = 0

	// ExitInvalidInput covers payloads that could not be decoded.
	ExitInvalidInput = 1

	// ExitRejected covers rows the store refused: duplicate ids and
	// missing required columns.
	ExitRejected = 2

	// ExitStorage covers failures opening, preparing or writing the store.
	ExitStorage = 3
)

func ExitCode(err error) int {
	switch KindOf(err) {
	case "":
		return ExitSuccess
	case KindInvalidPayload:
		return ExitInvalidInput
	case KindDuplicateKey, KindConstraint:
		return ExitRejected
	default:
		return ExitStorage
	}
}
