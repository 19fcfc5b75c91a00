package eventbus

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fundrik/backend/internal/domain"
	"github.com/fundrik/backend/internal/service/campaign"
)

func TestRedisBus_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	sub := client.Subscribe(context.Background(), "campaign.events")
	t.Cleanup(func() { _ = sub.Close() })

	// Wait for the subscription before publishing.
	_, err := sub.Receive(context.Background())
	require.NoError(t, err)

	bus := NewRedisBus(client, "campaign.events")
	event := campaign.CampaignCreated{CampaignID: domain.MustEntityID(int64(7))}
	require.NoError(t, bus.Publish(context.Background(), event))

	select {
	case msg := <-sub.Channel():
		var env envelope
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &env))
		assert.Equal(t, "campaign.created", env.Event)
		assert.False(t, env.At.IsZero())

		payload, err := json.Marshal(env.Payload)
		require.NoError(t, err)
		assert.JSONEq(t, `{"campaign_id": 7}`, string(payload))
	case <-time.After(2 * time.Second):
		t.Fatal("no message received on channel")
	}
}

func TestRedisBus_PublishFailsWhenBrokerIsDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	mr.Close()

	bus := NewRedisBus(client, "campaign.events")
	err := bus.Publish(context.Background(), campaign.CampaignDeleted{CampaignID: domain.MustEntityID(int64(7))})
	require.Error(t, err)
}

func TestEventName_FallsBackToType(t *testing.T) {
	t.Parallel()

	type anonymous struct{ X int }
	assert.Equal(t, "eventbus.anonymous", eventName(anonymous{}))
	assert.Equal(t, "campaign.updated", eventName(campaign.CampaignUpdated{}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLogBus_PublishNeverFails(t *testing.T) {
	t.Parallel()

	bus := NewLogBus(discardLogger())
	require.NoError(t, bus.Publish(context.Background(), campaign.CampaignCreated{}))
	require.NoError(t, bus.Publish(context.Background(), "not even an event"))
}
