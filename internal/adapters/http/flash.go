package web

import (
	"log/slog"
	"net/http"

	"turfease/internal/adapters/http/middleware"
	"turfease/internal/domain/toast"
)

// Flash keys in the Session Store. A flash survives exactly one navigation:
// the next rendered page consumes it.
const (
	flashMessageKey  = "flash.message"
	flashTypeKey     = "flash.type"
	flashPositionKey = "flash.position"
)

// setFlash parks a toast for the page the user is being redirected to.
func setFlash(r *http.Request, message, typ, position string) {
	ctx := r.Context()
	token := middleware.TokenFromContext(ctx)
	if err := sessions.Set(ctx, token, flashMessageKey, message); err != nil {
		slog.Debug("flash_set_failed", "error", err.Error())
		return
	}
	_ = sessions.Set(ctx, token, flashTypeKey, typ)
	_ = sessions.Set(ctx, token, flashPositionKey, position)
}

// takeFlash consumes the parked toast, if any. The second read of the same
// flash always comes back empty.
func takeFlash(r *http.Request) toast.Toast {
	ctx := r.Context()
	token := middleware.TokenFromContext(ctx)

	message, err := sessions.Get(ctx, token, flashMessageKey)
	if err != nil || message == "" {
		return toast.Toast{}
	}
	typ, _ := sessions.Get(ctx, token, flashTypeKey)
	position, _ := sessions.Get(ctx, token, flashPositionKey)

	_ = sessions.Delete(ctx, token, flashMessageKey)
	_ = sessions.Delete(ctx, token, flashTypeKey)
	_ = sessions.Delete(ctx, token, flashPositionKey)

	if typ == "" {
		typ = toast.TypeSuccess
	}
	if position == "" {
		position = toast.PositionTop
	}
	return toast.Toast{Show: true, Type: typ, Message: message, Position: position}
}
