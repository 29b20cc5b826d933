package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/cardform/internal/api"
	"github.com/DanielPopoola/cardform/internal/application"
	"github.com/DanielPopoola/cardform/internal/application/services"
)

// session returns the caller's session, starting a new one when the cookie is
// missing or points at a session that has been evicted.
func (h *Handlers) session(w http.ResponseWriter, r *http.Request) *services.Session {
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		sess, err := h.sessions.Get(cookie.Value)
		if err == nil {
			return sess
		}
		if svcErr, ok := application.IsServiceError(err); !ok || svcErr.Code != application.ErrCodeSessionNotFound {
			h.logger.Warn("session lookup failed", "error", err)
		}
	}

	sess := h.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	h.logger.Debug("session started", "session_id", sess.ID)
	return sess
}

type sessionKey struct{}

// withSession resolves the caller's session before any API operation runs.
func (h *Handlers) withSession(f api.StrictHandlerFunc, operationID string) api.StrictHandlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		sess := h.session(w, r)
		h.logger.Debug("api operation", "operation", operationID, "session_id", sess.ID)
		return f(context.WithValue(ctx, sessionKey{}, sess), w, r, request)
	}
}

func sessionFrom(ctx context.Context) (*services.Session, error) {
	sess, ok := ctx.Value(sessionKey{}).(*services.Session)
	if !ok || sess == nil {
		return nil, application.NewInternalError(errors.New("no session in request context"))
	}
	return sess, nil
}
