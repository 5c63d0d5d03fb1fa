package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"
	mockRepo "atlas/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newPushContext wraps an assignment event in the Pub/Sub push envelope and
// builds an Echo context carrying it, the way Pub/Sub delivers pushes.
func newPushContext(t *testing.T, event *service.QuoteAssignedEvent, attributes map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	envelope := map[string]any{
		"message": map[string]any{
			"data":        base64.StdEncoding.EncodeToString(payload),
			"attributes":  attributes,
			"messageId":   "m-1",
			"publishTime": "2026-01-12T10:00:00Z",
		},
		"subscription": "projects/test/subscriptions/quote-notifier",
	}
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	quoteRepo := mockRepo.NewMockQuoteRepository(t)
	handler := &PushHandler{
		verifyPushAuth: false,
		logger:         slog.Default(),
		quoteRepo:      quoteRepo,
	}

	quoteID := uuid.New()

	quoteRepo.EXPECT().
		MarkQuoteNotified(mock.Anything, quoteID, mock.AnythingOfType("time.Time")).
		Return(nil)

	event := &service.QuoteAssignedEvent{
		RequestID:     uuid.New().String(),
		QuoteID:       quoteID.String(),
		PartnerID:     uuid.New().String(),
		TerritoryID:   uuid.New().String(),
		TerritoryName: "Plateau Mont-Royal",
		ContactEmail:  "dispatch@northcrew.example",
		Address:       "3830 Rue Clark, Montreal",
		Latitude:      45.5017,
		Longitude:     -73.5673,
	}

	c, rec := newPushContext(t, event, map[string]string{"request_id": event.RequestID})

	err := handler.HandlePush(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_QuoteGoneIsAcked(t *testing.T) {
	quoteRepo := mockRepo.NewMockQuoteRepository(t)
	handler := &PushHandler{
		verifyPushAuth: false,
		logger:         slog.Default(),
		quoteRepo:      quoteRepo,
	}

	quoteID := uuid.New()

	// The quote was deleted between publish and delivery. Retrying can never
	// succeed, so the message must be acked.
	quoteRepo.EXPECT().
		MarkQuoteNotified(mock.Anything, quoteID, mock.AnythingOfType("time.Time")).
		Return(repository.ErrQuoteNotFound)

	event := &service.QuoteAssignedEvent{
		QuoteID:       quoteID.String(),
		PartnerID:     uuid.New().String(),
		TerritoryName: "Plateau Mont-Royal",
	}

	c, rec := newPushContext(t, event, nil)

	err := handler.HandlePush(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_DatabaseErrorTriggersRetry(t *testing.T) {
	quoteRepo := mockRepo.NewMockQuoteRepository(t)
	handler := &PushHandler{
		verifyPushAuth: false,
		logger:         slog.Default(),
		quoteRepo:      quoteRepo,
	}

	quoteID := uuid.New()

	quoteRepo.EXPECT().
		MarkQuoteNotified(mock.Anything, quoteID, mock.AnythingOfType("time.Time")).
		Return(errors.New("connection refused"))

	event := &service.QuoteAssignedEvent{
		QuoteID:   quoteID.String(),
		PartnerID: uuid.New().String(),
	}

	c, rec := newPushContext(t, event, nil)

	err := handler.HandlePush(c)
	assert.NoError(t, err)

	// 503 asks Pub/Sub to redeliver.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_MalformedQuoteIDIsAcked(t *testing.T) {
	quoteRepo := mockRepo.NewMockQuoteRepository(t)
	handler := &PushHandler{
		verifyPushAuth: false,
		logger:         slog.Default(),
		quoteRepo:      quoteRepo,
	}

	// No repository expectation: a quote ID that never parses must not reach
	// the stamp, and replaying it would loop forever, so it gets acked.
	event := &service.QuoteAssignedEvent{
		QuoteID:   "not-a-uuid",
		PartnerID: uuid.New().String(),
	}

	c, rec := newPushContext(t, event, nil)

	err := handler.HandlePush(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_BadBase64(t *testing.T) {
	quoteRepo := mockRepo.NewMockQuoteRepository(t)
	handler := &PushHandler{
		verifyPushAuth: false,
		logger:         slog.Default(),
		quoteRepo:      quoteRepo,
	}

	body := `{"message":{"data":"!!!not-base64!!!","messageId":"m-1"},"subscription":"projects/test/subscriptions/quote-notifier"}`

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.HandlePush(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_MissingTokenRejected(t *testing.T) {
	quoteRepo := mockRepo.NewMockQuoteRepository(t)
	handler := &PushHandler{
		verifyPushAuth: true,
		logger:         slog.Default(),
		quoteRepo:      quoteRepo,
	}

	event := &service.QuoteAssignedEvent{
		QuoteID: uuid.New().String(),
	}

	c, rec := newPushContext(t, event, nil)

	err := handler.HandlePush(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
