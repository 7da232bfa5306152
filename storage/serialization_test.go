package storage

import (
	"testing"
	"time"

	"github.com/poiesic/lexit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRecordSerializationRoundTrip(t *testing.T) {
	record := core.NewStringRecord("A man a plan")
	record.CreatedAt = time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	data := MarshalStringRecord(record)
	got, err := UnmarshalStringRecord(data)
	require.NoError(t, err)

	assert.Equal(t, record.Id, got.Id)
	assert.Equal(t, record.Value, got.Value)
	assert.Equal(t, record.Properties, got.Properties)
	assert.True(t, record.CreatedAt.Equal(got.CreatedAt), "CreatedAt survives at microsecond precision")
}

func TestUnmarshalStringRecord_TruncatedData(t *testing.T) {
	record := core.NewStringRecord("truncate me")
	data := MarshalStringRecord(record)

	_, err := UnmarshalStringRecord(data[:len(data)/2])
	assert.Error(t, err)
}
