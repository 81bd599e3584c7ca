package controllers

import (
	"net/http"

	"github.com/tusharoffice40/Whole-X/api/responses"
	"github.com/tusharoffice40/Whole-X/api/validators"
	advisorsvc "github.com/tusharoffice40/Whole-X/internal/advisor"
	pkgerrors "github.com/tusharoffice40/Whole-X/pkg/errors"
	"github.com/tusharoffice40/Whole-X/pkg/logger"
)

type advisorSendRequest struct {
	Text string `json:"text" validate:"required"`
}

// AdvisorTranscript returns the session's chat transcript.
func AdvisorTranscript(svc advisorsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "advisor service unavailable"))
			return
		}

		sess, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"transcript": svc.Transcript(sess)})
	}
}

// AdvisorSend runs one advisory exchange. Generation failures come back
// as a fixed fallback message inside the transcript, never as an API
// error.
func AdvisorSend(svc advisorsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "advisor service unavailable"))
			return
		}

		sess, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body advisorSendRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		transcript, err := svc.Send(r.Context(), sess, body.Text)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"transcript": transcript})
	}
}
