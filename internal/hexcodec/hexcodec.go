// Package hexcodec converts the hex payloads embedded in Shokz Connect log
// lines into raw bytes and fixed-layout fields (null-terminated ASCII
// strings, MAC addresses).
package hexcodec

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedPayload reports a payload that does not decode per its expected
// byte layout (invalid hex, too few bytes). Callers drop the offending record
// and keep going; it is never a fatal condition.
var ErrMalformedPayload = errors.New("malformed payload")

// Bytes strictly decodes a hex string. Odd-length input or non-hex
// characters yield ErrMalformedPayload.
func Bytes(s string) ([]byte, error) {
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return decoded, nil
}

// ASCIITrimmed drops skip leading bytes, truncates at the first null byte,
// and returns the remainder as ASCII with non-ASCII bytes dropped.
//
// Truncation only happens when the null is not the very first byte of the
// slice; a leading null means the payload has no meaningful terminator and
// the full remainder is decoded as-is.
func ASCIITrimmed(data []byte, skip int) string {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(data) {
		return ""
	}
	data = data[skip:]
	if idx := bytes.IndexByte(data, 0); idx > 0 {
		data = data[:idx]
	}
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		if b <= 0x7F {
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

// MAC renders the first six bytes as colon-separated uppercase hex pairs.
func MAC(data []byte) (string, error) {
	if len(data) < 6 {
		return "", fmt.Errorf("%w: MAC needs 6 bytes, have %d", ErrMalformedPayload, len(data))
	}
	parts := make([]string, 6)
	for i, b := range data[:6] {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, ":"), nil
}
