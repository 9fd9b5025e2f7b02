package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func drain(sub *Subscription) [][]byte {
	var received [][]byte
	for {
		select {
		case data := <-sub.C:
			received = append(received, data)
		default:
			return received
		}
	}
}

// --------------------- Publish ---------------------
func TestPublish_ReachesEverySubscriberOfTheKey(t *testing.T) {
	hub := NewHub()

	first := hub.Subscribe(SignatureKey(1))
	second := hub.Subscribe(SignatureKey(1))
	other := hub.Subscribe(SignatureKey(2))
	defer hub.Unsubscribe(first)
	defer hub.Unsubscribe(second)
	defer hub.Unsubscribe(other)

	hub.Publish(SignatureKey(1), SignatureEvent{PetitionID: 1, VerificationStatus: "verified"})

	for _, sub := range []*Subscription{first, second} {
		received := drain(sub)
		assert.Len(t, received, 1)

		var event SignatureEvent
		assert.NoError(t, json.Unmarshal(received[0], &event))
		assert.Equal(t, uint(1), event.PetitionID)
	}
	assert.Empty(t, drain(other))
}

func TestPublish_NoSubscribers(t *testing.T) {
	hub := NewHub()
	// must not panic or block
	hub.Publish(SignatureKey(99), SignatureEvent{PetitionID: 99})
}

func TestPublish_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe(ChatKey(1))
	defer hub.Unsubscribe(sub)

	for i := 0; i < cap(sub.C)+10; i++ {
		hub.Publish(ChatKey(1), ChatMessage{GroupID: 1, Content: "hi"})
	}
	assert.Len(t, drain(sub), cap(sub.C))
}

// --------------------- Subscribe / Unsubscribe ---------------------
func TestUnsubscribe_ClosesChannelAndDropsKey(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe(SignatureKey(1))
	assert.Equal(t, 1, hub.SubscriberCount(SignatureKey(1)))

	hub.Unsubscribe(sub)
	assert.Equal(t, 0, hub.SubscriberCount(SignatureKey(1)))

	_, open := <-sub.C
	assert.False(t, open)

	// a second release of the same handle is a no-op
	hub.Unsubscribe(sub)
	hub.Unsubscribe(nil)
}

func TestSubscriberCount_PerKey(t *testing.T) {
	hub := NewHub()

	a := hub.Subscribe(SignatureKey(1))
	b := hub.Subscribe(SignatureKey(1))
	assert.Equal(t, 2, hub.SubscriberCount(SignatureKey(1)))

	hub.Unsubscribe(a)
	assert.Equal(t, 1, hub.SubscriberCount(SignatureKey(1)))

	hub.Unsubscribe(b)
	assert.Equal(t, 0, hub.SubscriberCount(SignatureKey(1)))
}
