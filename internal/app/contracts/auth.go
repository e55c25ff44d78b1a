package contracts

import (
	"context"
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/dto/requests"
	"hospadmin-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (string, error)
}
