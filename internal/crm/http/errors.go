package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sellside/prospectd/internal/crm/service"
	"github.com/sellside/prospectd/internal/crm/store"
	"github.com/sellside/prospectd/pkg/crmsdk"
	"github.com/sellside/prospectd/pkg/slogx"
)

// writeServiceError maps service and store errors onto the API error
// taxonomy. Anything unmapped is a 500 and gets logged; mapped failures are
// the caller's fault and stay quiet.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		crmsdk.ErrInvalidRequest.WithDescription(validationDetail(err)).WriteError(w)
	case errors.Is(err, store.ErrNotFound):
		crmsdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrEmailTaken):
		crmsdk.ErrConflict.WithDescription("email is already registered").WriteError(w)
	case errors.Is(err, service.ErrAlreadyVerified):
		crmsdk.ErrConflict.WithDescription("account is already verified").WriteError(w)
	case errors.Is(err, service.ErrInvalidCode):
		crmsdk.ErrInvalidCode.WriteError(w)
	case errors.Is(err, service.ErrCodeExpired):
		crmsdk.ErrCodeExpired.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		crmsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrInvalidToken):
		crmsdk.ErrUnauthorized.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		crmsdk.ErrServerError.WriteError(w)
	}
}

// validationDetail strips the sentinel prefix so clients see just the field
// message.
func validationDetail(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, service.ErrValidation.Error()+": "); ok {
		return rest
	}
	return msg
}
