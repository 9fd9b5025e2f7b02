package websocket

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"
)

// SignatureEvent announces a new signature row. Subscribers displaying the
// petition's count apply verified events as an increment of exactly one
// without refetching.
type SignatureEvent struct {
	PetitionID         uint   `json:"petition_id"`
	VerificationStatus string `json:"verification_status"`
}

// ChatMessage is a group chat message broadcast to the group's subscribers.
type ChatMessage struct {
	GroupID   uint      `json:"group_id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Subscription is one mounted view's handle on a feed. Each view owns
// exactly one handle per key and must release it on unmount.
type Subscription struct {
	key string
	C   chan []byte
}

// Hub fans out events to per-key subscriber sets. Keys are feed names such
// as "signatures:42" or "chat:7".
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*Subscription]struct{}
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[string]map[*Subscription]struct{})}
}

func SignatureKey(petitionID uint) string {
	return fmt.Sprintf("signatures:%d", petitionID)
}

func ChatKey(groupID uint) string {
	return fmt.Sprintf("chat:%d", groupID)
}

func (h *Hub) Subscribe(key string) *Subscription {
	sub := &Subscription{key: key, C: make(chan []byte, 16)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subscribers[key] == nil {
		h.subscribers[key] = make(map[*Subscription]struct{})
	}
	h.subscribers[key][sub] = struct{}{}
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs, ok := h.subscribers[sub.key]; ok {
		if _, ok := subs[sub]; ok {
			delete(subs, sub)
			close(sub.C)
		}
		if len(subs) == 0 {
			delete(h.subscribers, sub.key)
		}
	}
}

// Publish marshals the payload and delivers it to every subscriber of the
// key. Slow subscribers are skipped rather than blocking the publisher.
func (h *Hub) Publish(key string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("hub: marshal event for %s: %v", key, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subscribers[key] {
		select {
		case sub.C <- data:
		default:
		}
	}
}

func (h *Hub) SubscriberCount(key string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[key])
}
