package sdpgen

import (
	"strings"
	"unicode/utf8"

	"github.com/bluenviron/sdpgen/pkg/liberrors"
)

// DefaultMaxSize is the default maximum size of a document.
const DefaultMaxSize = 65536

// isText reports whether s can be embedded into a document field
// without corrupting the line structure.
func isText(s string) bool {
	return !strings.ContainsAny(s, "\r\n") && utf8.ValidString(s)
}

// Document is a SDP session description under construction.
// It is created by Session.Marshal and grown with AddAttribute and
// AddMedia. It is not safe for concurrent use.
type Document struct {
	maxSize int
	buf     []byte
}

// append appends a fully rendered block, growing the buffer to exactly
// fit it. On error, existing content is left unchanged.
func (d *Document) append(block string) error {
	size := len(d.buf) + len(block)
	if size > d.maxSize {
		return liberrors.ErrDocumentTooLarge{Size: size, MaxSize: d.maxSize}
	}

	if cap(d.buf) < size {
		buf := make([]byte, len(d.buf), size)
		copy(buf, d.buf)
		d.buf = buf
	}

	d.buf = append(d.buf, block...)
	return nil
}

// AddAttribute appends an attribute line.
// When value is empty, a property attribute ("a=<name>") is appended,
// otherwise a value attribute ("a=<name>:<value>").
func (d *Document) AddAttribute(name string, value string) error {
	if !isText(name) {
		return liberrors.ErrInvalidText{Field: "attribute name"}
	}
	if !isText(value) {
		return liberrors.ErrInvalidText{Field: "attribute value"}
	}

	if value == "" {
		return d.append("a=" + name + "\r\n")
	}
	return d.append("a=" + name + ":" + value + "\r\n")
}

// Bytes returns the encoded document.
// The returned slice is owned by the document and is invalidated by
// following appends.
func (d *Document) Bytes() []byte {
	return d.buf
}

// String returns the encoded document as a string.
func (d *Document) String() string {
	return string(d.buf)
}
