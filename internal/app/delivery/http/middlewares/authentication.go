package middlewares

import (
	"context"
	"hospadmin-service/internal/pkg/constvars"
	"hospadmin-service/internal/pkg/exceptions"
	"hospadmin-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authenticate validates the bearer token and loads the backing Redis session
// into the request context. Handlers read it back with SessionDataFromContext.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionData, err := m.SessionService.GetSessionData(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionDataFromContext returns the raw session payload stored by Authenticate.
func SessionDataFromContext(ctx context.Context) (string, error) {
	sessionData, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		return "", exceptions.ErrMissingSessionData(nil)
	}
	return sessionData, nil
}
