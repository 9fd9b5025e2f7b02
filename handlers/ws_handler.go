package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/meinwort/meinwort-go/middleware"
	"github.com/meinwort/meinwort-go/models"
	"github.com/meinwort/meinwort-go/response"
	"github.com/meinwort/meinwort-go/services"
	"github.com/meinwort/meinwort-go/utils"
	"github.com/meinwort/meinwort-go/websocket"
)

var upgrader = gorilla.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	hub       *websocket.Hub
	tracker   *websocket.CountTracker
	signature *services.SignatureService
	group     *services.GroupService
}

func NewWSHandler(hub *websocket.Hub, tracker *websocket.CountTracker, signature *services.SignatureService, group *services.GroupService) *WSHandler {
	return &WSHandler{hub: hub, tracker: tracker, signature: signature, group: group}
}

type countUpdate struct {
	PetitionID uint  `json:"petition_id"`
	Count      int64 `json:"count"`
}

// SignatureFeed streams live signature counts for one petition. The first
// frame carries the server-confirmed count; afterwards each verified
// signature event triggers a frame with the tracked count, which the signer
// side has already bumped by one. The loop never applies events itself, so
// any number of viewers of the same petition see a single increment per
// signature. Reconnecting re-sends the confirmed count, which wins over any
// increments the client missed.
func (h *WSHandler) SignatureFeed(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid petition id"})
		return
	}

	count, err := h.signature.CountVerified(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// gorilla has already written the HTTP error response
		log.Printf("signature feed: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sub := h.hub.Subscribe(websocket.SignatureKey(id))
	defer func() {
		h.hub.Unsubscribe(sub)
		if h.hub.SubscriberCount(websocket.SignatureKey(id)) == 0 {
			h.tracker.Forget(id)
		}
	}()

	h.tracker.Set(id, count)
	if err := writeCount(conn, id, count); err != nil {
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case data, ok := <-sub.C:
			if !ok {
				return
			}
			var event websocket.SignatureEvent
			if err := json.Unmarshal(data, &event); err != nil {
				log.Printf("signature feed: bad event: %v", err)
				continue
			}
			if event.VerificationStatus != string(models.VerificationVerified) {
				continue
			}
			if current, ok := h.tracker.Get(id); ok {
				if err := writeCount(conn, id, current); err != nil {
					return
				}
			}
		case <-done:
			return
		}
	}
}

func writeCount(conn *gorilla.Conn, id uint, count int64) error {
	data, err := json.Marshal(countUpdate{PetitionID: id, Count: count})
	if err != nil {
		return err
	}
	return conn.WriteMessage(gorilla.TextMessage, data)
}

// ChatFeed streams a group's chat messages to its members. The token comes
// from the query string because browsers cannot set headers on websocket
// connections.
func (h *WSHandler) ChatFeed(c *gin.Context) {
	gid, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid group id"})
		return
	}

	tokenStr := c.Query("token")
	if tokenStr == "" {
		if cookie, err := c.Cookie("token"); err == nil {
			tokenStr = cookie
		}
	}
	claims, err := middleware.ParseToken(tokenStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid token"})
		return
	}

	if err := h.requireMember(gid, claims.UserID); err != nil {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "not a member"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// gorilla has already written the HTTP error response
		log.Printf("chat feed: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sub := h.hub.Subscribe(websocket.ChatKey(gid))
	defer h.hub.Unsubscribe(sub)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case data, ok := <-sub.C:
			if !ok {
				return
			}
			if err := conn.WriteMessage(gorilla.TextMessage, data); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (h *WSHandler) requireMember(gid, uid uint) error {
	members, err := h.group.ListMembers(gid)
	if err != nil {
		return err
	}
	for _, m := range members {
		if m.UID == uid {
			return nil
		}
	}
	return services.ErrNotMember
}
