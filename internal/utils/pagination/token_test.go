package pagination_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/StaySuite/stay_booking_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 12, 34, 56, 789000000, time.UTC)
	id := "res-123"

	token := pagination.EncodeToken(createdAt, id)
	gotTime, gotID, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)

	// Valid base64 but missing the separator.
	_, _, err = pagination.DecodeToken(base64.StdEncoding.EncodeToString([]byte("no-separator")))
	assert.Error(t, err)

	// Separator present but the timestamp is garbage.
	_, _, err = pagination.DecodeToken(base64.StdEncoding.EncodeToString([]byte("garbage|res-123")))
	assert.Error(t, err)
}
