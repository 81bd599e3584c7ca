package controllers

import (
	"net/http"

	"github.com/tusharoffice40/Whole-X/api/responses"
	"github.com/tusharoffice40/Whole-X/api/validators"
	viewsvc "github.com/tusharoffice40/Whole-X/internal/views"
	"github.com/tusharoffice40/Whole-X/pkg/enums"
	pkgerrors "github.com/tusharoffice40/Whole-X/pkg/errors"
	"github.com/tusharoffice40/Whole-X/pkg/logger"
)

type navigateRequest struct {
	Page      string `json:"page" validate:"required"`
	ProductID string `json:"product_id,omitempty"`
}

// ViewFetch renders the session's current page. The q and category query
// parameters filter the products page only.
func ViewFetch(svc viewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "view service unavailable"))
			return
		}

		sess, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		query := r.URL.Query().Get("q")
		category := r.URL.Query().Get("category")
		responses.WriteSuccess(w, svc.Render(sess, query, category))
	}
}

// ViewNavigate transitions the session to the requested page, optionally
// setting the selected product.
func ViewNavigate(svc viewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "view service unavailable"))
			return
		}

		sess, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body navigateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Navigate(sess, enums.Page(body.Page), body.ProductID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.Render(sess, "", ""))
	}
}
