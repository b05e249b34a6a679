// Package liberrors contains errors returned by the library.
package liberrors

import (
	"fmt"
)

// ErrInvalidAddress is returned in case an address cannot be encoded
// into a SDP connection field.
type ErrInvalidAddress struct{}

// Error implements the error interface.
func (e ErrInvalidAddress) Error() string {
	return "invalid address"
}

// ErrUnsupportedAddressFamily is returned in case an address belongs to
// a family other than IPv4 or IPv6.
type ErrUnsupportedAddressFamily struct {
	Network string
}

// Error implements the error interface.
func (e ErrUnsupportedAddressFamily) Error() string {
	return fmt.Sprintf("unsupported address family '%s'", e.Network)
}

// ErrInvalidText is returned in case a user-supplied string contains a
// line terminator or is not valid UTF-8, and would corrupt the document.
type ErrInvalidText struct {
	Field string
}

// Error implements the error interface.
func (e ErrInvalidText) Error() string {
	return fmt.Sprintf("field '%s' contains a line terminator or invalid UTF-8", e.Field)
}

// ErrDocumentTooLarge is returned in case growing a document would
// exceed its maximum size.
type ErrDocumentTooLarge struct {
	Size    int
	MaxSize int
}

// Error implements the error interface.
func (e ErrDocumentTooLarge) Error() string {
	return fmt.Sprintf("document size (%d) exceeds maximum allowed (%d)", e.Size, e.MaxSize)
}
