package textutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToISO_Time(t *testing.T) {
	ts := time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)
	got := ToISO(ts)
	require.NotNil(t, got)
	assert.Equal(t, "2025-01-01T12:30:00Z", *got)
}

func TestToISO_TimePointer(t *testing.T) {
	ts := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	got := ToISO(&ts)
	require.NotNil(t, got)
	assert.Equal(t, "2024-06-15T08:00:00Z", *got)

	assert.Nil(t, ToISO((*time.Time)(nil)))
}

func TestToISO_NonUTCIsNormalized(t *testing.T) {
	loc := time.FixedZone("BST", 6*60*60)
	ts := time.Date(2025, 3, 1, 18, 0, 0, 0, loc)
	got := ToISO(ts)
	require.NotNil(t, got)
	assert.Equal(t, "2025-03-01T12:00:00Z", *got)
}

func TestToISO_StringLayouts(t *testing.T) {
	for _, raw := range []string{
		"2025-01-01T12:30:00Z",
		"2025-01-01 12:30:00",
		"2025-01-01",
	} {
		assert.NotNil(t, ToISO(raw), "layout %q", raw)
	}
}

func TestToISO_UnparseableYieldsNil(t *testing.T) {
	assert.Nil(t, ToISO("not a date"))
	assert.Nil(t, ToISO(42))
	assert.Nil(t, ToISO(nil))
	assert.Nil(t, ToISO(time.Time{}))
}
