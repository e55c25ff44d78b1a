package auth

import (
	"context"
	"hospadmin-service/internal/app/config"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/dto/requests"
	"hospadmin-service/internal/pkg/exceptions"
	"hospadmin-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeUserRepository struct {
	users map[string]*models.User
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepository) Insert(_ context.Context, user *models.User) (string, error) {
	f.users[user.Email] = user
	return user.ID, nil
}

type fakeSessionService struct {
	sessions map[string]*models.Session
}

func (f *fakeSessionService) CreateSession(_ context.Context, session *models.Session, _ time.Duration) error {
	f.sessions[session.SessionID] = session
	return nil
}

func (f *fakeSessionService) GetSessionData(_ context.Context, sessionID string) (string, error) {
	if _, ok := f.sessions[sessionID]; !ok {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return "{}", nil
}

func (f *fakeSessionService) ParseSessionData(_ context.Context, _ string) (*models.Session, error) {
	return nil, nil
}

func (f *fakeSessionService) DeleteSession(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func testConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{LoginSessionExpiredTimeInHours: 8},
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 8},
	}
}

func newTestAuth(t *testing.T) (*fakeUserRepository, *fakeSessionService, *authUsecase) {
	t.Helper()
	hash, err := utils.HashPassword("contraseña-segura")
	assert.NoError(t, err)

	userRepo := &fakeUserRepository{users: map[string]*models.User{
		"admisiones@hospital.test": {
			ID:       "user-1",
			Email:    "admisiones@hospital.test",
			Name:     "Admisiones",
			Password: hash,
			Role:     "staff",
		},
	}}
	sessionService := &fakeSessionService{sessions: map[string]*models.Session{}}
	uc := NewAuthUsecase(userRepo, sessionService, testConfig()).(*authUsecase)
	return userRepo, sessionService, uc
}

func TestLogin(t *testing.T) {
	t.Run("Valid Credentials Return Token And Session", func(t *testing.T) {
		_, sessionService, uc := newTestAuth(t)

		response, err := uc.Login(context.Background(), &requests.Login{
			Email:    "admisiones@hospital.test",
			Password: "contraseña-segura",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, "admisiones@hospital.test", response.Email)
		assert.Len(t, sessionService.sessions, 1)

		sessionID, err := utils.ParseJWT(response.Token, "test-secret")
		assert.NoError(t, err)
		assert.Contains(t, sessionService.sessions, sessionID)
	})

	t.Run("Wrong Password Is Rejected", func(t *testing.T) {
		_, _, uc := newTestAuth(t)

		_, err := uc.Login(context.Background(), &requests.Login{
			Email:    "admisiones@hospital.test",
			Password: "incorrecta",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 401, customErr.StatusCode)
	})

	t.Run("Unknown Email Is Rejected", func(t *testing.T) {
		_, _, uc := newTestAuth(t)

		_, err := uc.Login(context.Background(), &requests.Login{
			Email:    "nadie@hospital.test",
			Password: "contraseña-segura",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 401, customErr.StatusCode)
	})
}

func TestLogout(t *testing.T) {
	t.Run("Removes Session", func(t *testing.T) {
		_, sessionService, uc := newTestAuth(t)

		response, err := uc.Login(context.Background(), &requests.Login{
			Email:    "admisiones@hospital.test",
			Password: "contraseña-segura",
		})
		assert.NoError(t, err)

		sessionID, err := utils.ParseJWT(response.Token, "test-secret")
		assert.NoError(t, err)

		err = uc.Logout(context.Background(), sessionID)
		assert.NoError(t, err)
		assert.Empty(t, sessionService.sessions)
	})
}
