package middlewares

import (
	"context"
	"hospadmin-service/internal/app/config"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/exceptions"
	"hospadmin-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	sessions map[string]string
}

func (f *fakeSessionService) CreateSession(_ context.Context, session *models.Session, _ time.Duration) error {
	return nil
}

func (f *fakeSessionService) GetSessionData(_ context.Context, sessionID string) (string, error) {
	sessionData, ok := f.sessions[sessionID]
	if !ok {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return sessionData, nil
}

func (f *fakeSessionService) ParseSessionData(_ context.Context, _ string) (*models.Session, error) {
	return nil, nil
}

func (f *fakeSessionService) DeleteSession(_ context.Context, _ string) error {
	return nil
}

func newTestMiddlewares(sessions map[string]string) *Middlewares {
	return NewMiddlewares(
		&fakeSessionService{sessions: sessions},
		&config.InternalConfig{JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1}},
		zap.NewNop(),
	)
}

func TestAuthenticate(t *testing.T) {
	nextHandler := func(captured *string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionData, err := SessionDataFromContext(r.Context())
			if err == nil {
				*captured = sessionData
			}
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("Valid Token Loads Session Into Context", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-1", "test-secret", 1)
		assert.NoError(t, err)

		m := newTestMiddlewares(map[string]string{"sess-1": `{"session_id":"sess-1","email":"staff@hospital.test"}`})

		var captured string
		request := httptest.NewRequest(http.MethodGet, "/pacientes", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		m.Authenticate(nextHandler(&captured)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, captured, "staff@hospital.test")
	})

	t.Run("Missing Header Is Unauthorized", func(t *testing.T) {
		m := newTestMiddlewares(map[string]string{})

		var captured string
		request := httptest.NewRequest(http.MethodGet, "/pacientes", nil)
		recorder := httptest.NewRecorder()

		m.Authenticate(nextHandler(&captured)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Empty(t, captured)
	})

	t.Run("Garbage Token Is Unauthorized", func(t *testing.T) {
		m := newTestMiddlewares(map[string]string{})

		var captured string
		request := httptest.NewRequest(http.MethodGet, "/pacientes", nil)
		request.Header.Set("Authorization", "Bearer not-a-jwt")
		recorder := httptest.NewRecorder()

		m.Authenticate(nextHandler(&captured)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Expired Session Is Unauthorized", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("sess-gone", "test-secret", 1)
		assert.NoError(t, err)

		m := newTestMiddlewares(map[string]string{})

		var captured string
		request := httptest.NewRequest(http.MethodGet, "/pacientes", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		m.Authenticate(nextHandler(&captured)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestRequestID(t *testing.T) {
	t.Run("Generates When Absent", func(t *testing.T) {
		m := newTestMiddlewares(map[string]string{})

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		recorder := httptest.NewRecorder()

		m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(recorder, request)

		assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
	})

	t.Run("Echoes Client Request ID", func(t *testing.T) {
		m := newTestMiddlewares(map[string]string{})

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Request-ID", "client-id-42")
		recorder := httptest.NewRecorder()

		m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(recorder, request)

		assert.Equal(t, "client-id-42", recorder.Header().Get("X-Request-ID"))
	})
}
