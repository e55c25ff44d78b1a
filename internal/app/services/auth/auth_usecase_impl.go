package auth

import (
	"context"
	"hospadmin-service/internal/app/config"
	"hospadmin-service/internal/app/contracts"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/dto/requests"
	"hospadmin-service/internal/pkg/dto/responses"
	"hospadmin-service/internal/pkg/exceptions"
	"hospadmin-service/internal/pkg/utils"
	"time"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	sessionExpiry := time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		ExpiresAt: time.Now().Add(sessionExpiry),
	}

	if err := uc.SessionService.CreateSession(ctx, session, sessionExpiry); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token: token,
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.SessionService.DeleteSession(ctx, sessionID)
}
