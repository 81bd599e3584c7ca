package controllers

import (
	"net/http"

	"github.com/tusharoffice40/Whole-X/api/responses"
	"github.com/tusharoffice40/Whole-X/api/validators"
	"github.com/tusharoffice40/Whole-X/pkg/enums"
	pkgerrors "github.com/tusharoffice40/Whole-X/pkg/errors"
	"github.com/tusharoffice40/Whole-X/pkg/logger"
	"github.com/tusharoffice40/Whole-X/pkg/session"
)

type setRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// SessionFetch returns the full session state snapshot.
func SessionFetch(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, sess.Snapshot())
	}
}

// SessionSetRole updates the session's ambient role label. The role gates
// which dashboard renders and nothing else.
func SessionSetRole(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body setRoleRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		role, err := enums.ParseRole(body.Role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role"))
			return
		}

		sess.Update(func(st *session.State) {
			st.Role = role
		})

		responses.WriteSuccess(w, map[string]string{"role": role.String()})
	}
}
