package envelope

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FieldDelimiter separates a field's length prefix from its base64 text.
const FieldDelimiter = 'A'

// fieldCount is the number of fields in a legacy envelope.
const fieldCount = 3

// maxLengthDigits bounds the length prefix to reject absurd inputs early.
const maxLengthDigits = 9

var (
	// ErrMissingLength is returned when a field does not start with a decimal length.
	ErrMissingLength = errors.New("missing field length")

	// ErrMissingDelimiter is returned when a length prefix is not followed by the delimiter.
	ErrMissingDelimiter = errors.New("missing field delimiter")

	// ErrTruncated is returned when a field is shorter than its declared length.
	ErrTruncated = errors.New("truncated field")

	// ErrFieldCount is returned when the envelope does not contain exactly three fields.
	ErrFieldCount = errors.New("unexpected field count")

	// ErrFieldEncoding is returned when a field is not valid base64.
	ErrFieldEncoding = errors.New("invalid field encoding")
)

// Field names, used in errors.
const (
	FieldCiphertext         = "ciphertext"
	FieldMAC                = "mac"
	FieldEphemeralPublicKey = "ephemeral_public_key"
)

var fieldNames = [fieldCount]string{FieldCiphertext, FieldMAC, FieldEphemeralPublicKey}

// Envelope holds the decoded fields of a legacy envelope.
type Envelope struct {
	// Ciphertext is the raw AES-256-CTR output. Legacy producers may pad it
	// with encrypted zero bytes.
	Ciphertext []byte
	// MAC is the trailer MAC. It is carried for compatibility and not verified.
	MAC []byte
	// EphemeralPublicKey is the sender's ephemeral point, SEC1 encoded
	// (compressed by every known producer).
	EphemeralPublicKey []byte
}

// FieldError describes which field failed to decode.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("envelope field %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Encode serializes the envelope into its wire form.
func Encode(e *Envelope) string {
	var sb strings.Builder
	for _, raw := range [fieldCount][]byte{e.Ciphertext, e.MAC, e.EphemeralPublicKey} {
		writeField(&sb, base64.StdEncoding.EncodeToString(raw))
	}
	return sb.String()
}

func writeField(sb *strings.Builder, b64 string) {
	sb.WriteString(strconv.Itoa(len(b64)))
	sb.WriteByte(FieldDelimiter)
	sb.WriteString(b64)
}

// Decode parses the wire form. It fails if the framing is broken, if there
// are more or fewer than three fields, or if any field is not base64.
func Decode(s string) (*Envelope, error) {
	var fields [fieldCount][]byte

	rest := s
	for i := 0; i < fieldCount; i++ {
		if rest == "" {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, i, fieldCount)
		}

		text, remaining, err := readField(rest)
		if err != nil {
			return nil, &FieldError{Field: fieldNames[i], Err: err}
		}

		raw, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, &FieldError{Field: fieldNames[i], Err: fmt.Errorf("%w: %v", ErrFieldEncoding, err)}
		}

		fields[i] = raw
		rest = remaining
	}

	if rest != "" {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrFieldCount, len(rest))
	}

	return &Envelope{
		Ciphertext:         fields[0],
		MAC:                fields[1],
		EphemeralPublicKey: fields[2],
	}, nil
}

// readField consumes one length-prefixed field and returns its text and the
// remaining input.
func readField(s string) (text, rest string, err error) {
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}

	if digits == 0 || digits > maxLengthDigits {
		return "", "", ErrMissingLength
	}

	if digits == len(s) || s[digits] != FieldDelimiter {
		return "", "", ErrMissingDelimiter
	}

	n, err := strconv.Atoi(s[:digits])
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrMissingLength, err)
	}

	body := s[digits+1:]
	if n > len(body) {
		return "", "", fmt.Errorf("%w: declared %d, have %d", ErrTruncated, n, len(body))
	}

	return body[:n], body[n:], nil
}
