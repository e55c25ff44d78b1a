package middlewares

import (
	"hospadmin-service/internal/pkg/constvars"
	"hospadmin-service/internal/pkg/exceptions"
	"hospadmin-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// ErrorHandler recovers from handler panics so one bad request never takes the
// process down with it.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				m.Log.Error("panic recovered in handler",
					zap.Any("panic", recovered),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.Stack("stack"),
				)
				err := exceptions.BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevInvalidInput)
				utils.BuildErrorResponse(m.Log, w, err)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
