package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	gorilla "github.com/gorilla/websocket"
	"github.com/meinwort/meinwort-go/dto"
	"github.com/meinwort/meinwort-go/models"
	"github.com/meinwort/meinwort-go/repositories"
	"github.com/meinwort/meinwort-go/repositories/mock_repositories"
	"github.com/meinwort/meinwort-go/services"
	"github.com/meinwort/meinwort-go/websocket"
	"github.com/stretchr/testify/require"
)

// --------------------- Setup ---------------------
type signatureFeedFixture struct {
	server     *httptest.Server
	signature  *services.SignatureService
	petition   *mock_repositories.MockPetitionRepo
	signatures *mock_repositories.MockSignatureRepo
}

func setupSignatureFeed(t *testing.T) *signatureFeedFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockPetition := mock_repositories.NewMockPetitionRepo(ctrl)
	mockSignature := mock_repositories.NewMockSignatureRepo(ctrl)
	repos := &repositories.Repos{
		Petition:  mockPetition,
		Signature: mockSignature,
	}

	hub := websocket.NewHub()
	tracker := websocket.NewCountTracker()
	signatureService := services.NewSignatureService(repos, hub, tracker)
	wsHandler := NewWSHandler(hub, tracker, signatureService, nil)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/petitions/:id/signatures", wsHandler.SignatureFeed)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return &signatureFeedFixture{
		server:     server,
		signature:  signatureService,
		petition:   mockPetition,
		signatures: mockSignature,
	}
}

func dialSignatureFeed(t *testing.T, server *httptest.Server, petitionID string) *gorilla.Conn {
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/petitions/" + petitionID + "/signatures"
	conn, _, err := gorilla.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readCountFrame(t *testing.T, conn *gorilla.Conn) int64 {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var update countUpdate
	require.NoError(t, json.Unmarshal(data, &update))
	return update.Count
}

// --------------------- SignatureFeed ---------------------
func TestSignatureFeed_TwoViewersSeeSingleIncrement(t *testing.T) {
	fixture := setupSignatureFeed(t)

	fixture.signatures.EXPECT().CountVerified(uint(1)).Return(int64(100), nil).Times(2)
	fixture.petition.EXPECT().GetPetitionByID(uint(1)).Return(models.Petition{PID: 1, Status: string(models.PetitionStatusPublished)}, nil)
	fixture.signatures.EXPECT().CreateSignature(gomock.Any()).Return(nil)

	client1 := dialSignatureFeed(t, fixture.server, "1")
	require.Equal(t, int64(100), readCountFrame(t, client1))

	client2 := dialSignatureFeed(t, fixture.server, "1")
	require.Equal(t, int64(100), readCountFrame(t, client2))

	_, err := fixture.signature.SignPetition(1, dto.SignInput{
		FirstName:     "Erika",
		LastName:      "Mustermann",
		Email:         "erika@example.org",
		AgreedToTerms: true,
	}, "")
	require.NoError(t, err)

	// one signature with two live viewers yields 101 on both, never 102
	require.Equal(t, int64(101), readCountFrame(t, client1))
	require.Equal(t, int64(101), readCountFrame(t, client2))

	// and exactly one update frame per client
	require.NoError(t, client1.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err = client1.ReadMessage()
	require.Error(t, err)
}

func TestSignatureFeed_PlainHTTPRequestGetsSingleErrorResponse(t *testing.T) {
	fixture := setupSignatureFeed(t)

	fixture.signatures.EXPECT().CountVerified(uint(1)).Return(int64(0), nil)

	resp, err := http.Get(fixture.server.URL + "/ws/petitions/1/signatures")
	require.NoError(t, err)
	defer resp.Body.Close()

	// the failed upgrade has already written its response, nothing is appended
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotContains(t, resp.Header.Get("Content-Type"), "application/json")
}
