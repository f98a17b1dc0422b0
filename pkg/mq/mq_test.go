package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	keys   []string
	bodies [][]byte
	err    error
}

func (r *recordingPublisher) Publish(ctx context.Context, routingKey string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	r.keys = append(r.keys, routingKey)
	r.bodies = append(r.bodies, body)
	return r.err
}

func TestEmit(t *testing.T) {
	t.Cleanup(func() { SetPublisher(nil) })

	t.Run("no publisher is a no-op", func(t *testing.T) {
		SetPublisher(nil)
		Emit(context.Background(), RoutingVideo, &VideoEvent{Meta: NewMeta("published")})
	})

	t.Run("event is published with its routing key", func(t *testing.T) {
		rec := &recordingPublisher{}
		SetPublisher(rec)
		Emit(context.Background(), RoutingReaction, &ReactionEvent{
			Meta:      NewMeta("reaction"),
			UserID:    "u1",
			VideoID:   "v1",
			State:     "liked",
			LikeCount: 1,
		})
		require.Len(t, rec.keys, 1)
		assert.Equal(t, RoutingReaction, rec.keys[0])

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.bodies[0], &decoded))
		assert.Equal(t, "liked", decoded["state"])
		assert.Equal(t, "reaction", decoded["type"])
		assert.NotEmpty(t, decoded["event_id"])
	})

	t.Run("publish failure is swallowed", func(t *testing.T) {
		SetPublisher(&recordingPublisher{err: errors.New("broker down")})
		Emit(context.Background(), RoutingComment, &CommentEvent{Meta: NewMeta("created")})
	})
}

func TestNilProducer(t *testing.T) {
	var p *Producer
	assert.NoError(t, p.Publish(context.Background(), RoutingVideo, struct{}{}))
	assert.NoError(t, p.Close())
}
