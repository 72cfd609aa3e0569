package queue

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	id := uuid.New()

	msg, err := Decode([]byte(`{"job_id":"` + id.String() + `","send_at":"2025-09-15T10:00:00Z"}`))
	require.NoError(t, err)
	assert.Equal(t, id, msg.JobID)
	assert.Equal(t, 2025, msg.SendAt.Year())

	_, err = Decode([]byte(`{"send_at":"2025-09-15T10:00:00Z"}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestEncode_KeepsSendTime(t *testing.T) {
	msg := BroadcastMessage{JobID: uuid.New(), SendAt: time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)}

	body, err := Encode(msg)
	require.NoError(t, err)

	// a deferred message must come back with the same send time
	got, err := Decode(body)
	require.NoError(t, err)
	assert.Equal(t, msg.JobID, got.JobID)
	assert.True(t, msg.SendAt.Equal(got.SendAt))
}
