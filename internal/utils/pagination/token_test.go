package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeCursor(t *testing.T) {
	createdAt := time.Date(2024, 11, 3, 14, 30, 45, 123456789, time.UTC)
	id := "b5c7e8d2-4f1a-4e9b-9c3d-8a7f6e5d4c3b"

	token := EncodeCursor(createdAt, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedTime, decodedID, err := DecodeCursor(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, createdAt, decodedTime, "Creation time should survive the round trip")
	assert.Equal(t, id, decodedID, "ID should survive the round trip")
}

func TestDecodeCursorZeroTime(t *testing.T) {
	token := EncodeCursor(time.Time{}, "some-id")
	decodedTime, decodedID, err := DecodeCursor(token)
	assert.NoError(t, err)
	assert.True(t, decodedTime.IsZero(), "Zero time should decode as zero")
	assert.Equal(t, "some-id", decodedID)
}

func TestDecodeCursorErrors(t *testing.T) {
	// Invalid base64.
	_, _, err := DecodeCursor("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	// Valid base64 but no separator.
	noSeparator := "MjAyNC0xMS0wM1QxNDozMDo0NVo=" // "2024-11-03T14:30:45Z"
	_, _, err = DecodeCursor(noSeparator)
	assert.Error(t, err, "Should return an error when the separator is missing")
	assert.Contains(t, err.Error(), "split")

	// Separator present but the time part is garbage.
	badTime := "bm90YXRpbWV8c29tZS1pZA==" // "notatime|some-id"
	_, _, err = DecodeCursor(badTime)
	assert.Error(t, err, "Should return an error for an unparseable time")
	assert.Contains(t, err.Error(), "time parse")
}
