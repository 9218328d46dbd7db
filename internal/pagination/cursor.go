// Package pagination implements the opaque cursor used by the post
// listing endpoint. A cursor is the base64url encoding of an ISO-8601
// UTC timestamp taken from the last row of the previous page.
package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/Ahmad-Raza810/blog-application/internal/apperrors"
)

// cursorLayout keeps seconds mandatory and trims trailing zeros from the
// fractional part, so encoding is canonical for any precision.
const cursorLayout = "2006-01-02T15:04:05.999999999"

// EncodeCursor serializes a timestamp into an opaque URL-safe cursor.
func EncodeCursor(t time.Time) string {
	s := t.UTC().Format(cursorLayout)
	return base64.URLEncoding.EncodeToString([]byte(s))
}

// DecodeCursor reverses EncodeCursor. It fails closed: empty input,
// malformed base64 and malformed timestamps all return ErrInvalidCursor,
// never a silent zero value.
func DecodeCursor(encoded string) (time.Time, error) {
	if strings.TrimSpace(encoded) == "" {
		return time.Time{}, fmt.Errorf("%w: cursor is empty", apperrors.ErrInvalidCursor)
	}

	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad encoding", apperrors.ErrInvalidCursor)
	}

	// time.Parse accepts an optional fractional second after the seconds
	// field, so the plain layout covers both encoded forms.
	t, err := time.Parse("2006-01-02T15:04:05", string(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad timestamp", apperrors.ErrInvalidCursor)
	}
	return t, nil
}
