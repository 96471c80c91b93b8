package slottable

import "errors"

// Sentinel errors for table event handling.
var (
	ErrNotFound         = errors.New("slottable: table not found")
	ErrRowNotFound      = errors.New("slottable: row not found")
	ErrDecryptFailed    = errors.New("slottable: payload decryption failed")
	ErrSignatureInvalid = errors.New("slottable: signature verification failed")
	ErrInvalidFormat    = errors.New("slottable: invalid payload format")
	ErrUnknownEvent     = errors.New("slottable: unknown event kind")
	ErrNotRegistered    = errors.New("slottable: table is not registered")
	ErrMethodNotAllowed = errors.New("slottable: method not allowed")
)

// IsNotFound checks if err is a not-found error: an unknown table, or a
// clicked row missing from the table's row source.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrRowNotFound)
}

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}

// IsBadRequest checks if err was caused by a malformed or forged click
// request rather than by a listener.
func IsBadRequest(err error) bool {
	return IsDecryptionError(err) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrUnknownEvent)
}
