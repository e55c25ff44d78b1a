package utils

import (
	"hospadmin-service/internal/app/models"
	"hospadmin-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// ExtractSession decodes the raw session payload stored in Redis. Usecases call
// this to recover the acting staff identity for creadoPor/actualizadoPor.
func ExtractSession(sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}
