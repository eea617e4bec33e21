package realtime

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestClientEnqueueAfterCloseIsDropped(t *testing.T) {
	c := NewClient(nil, zerolog.Nop())
	c.close()

	assert.False(t, c.Enqueue(NewAuthSuccessFrame()))
	assert.Empty(t, c.Send)
}

func TestClientEnqueueDropsWhenBufferFull(t *testing.T) {
	c := NewClient(nil, zerolog.Nop())

	for i := 0; i < sendBufSize; i++ {
		assert.True(t, c.Enqueue(NewChatFrame("7", "hi")))
	}
	assert.False(t, c.Enqueue(NewChatFrame("7", "overflow")))
	assert.Len(t, c.Send, sendBufSize)
}

func TestClientCloseIsIdempotent(t *testing.T) {
	c := NewClient(nil, zerolog.Nop())
	c.close()
	c.close()
}

func TestClientBindState(t *testing.T) {
	c := NewClient(nil, zerolog.Nop())
	assert.False(t, c.Bound())
	assert.Equal(t, uint(0), c.UserID())

	c.bind(7)
	assert.True(t, c.Bound())
	assert.Equal(t, uint(7), c.UserID())
}
