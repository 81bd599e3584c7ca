package controllers

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/tusharoffice40/Whole-X/api/responses"
	"github.com/tusharoffice40/Whole-X/api/validators"
	"github.com/tusharoffice40/Whole-X/internal/catalog"
	pkgerrors "github.com/tusharoffice40/Whole-X/pkg/errors"
	"github.com/tusharoffice40/Whole-X/pkg/logger"
)

// CatalogList returns the product listing, optionally filtered by the
// q and category query parameters.
func CatalogList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		query := r.URL.Query().Get("q")
		category := r.URL.Query().Get("category")
		responses.WriteSuccess(w, map[string]any{
			"products": svc.Search(query, category),
		})
	}
}

// CatalogGet returns a single product by id.
func CatalogGet(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, err := svc.Get(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"product": product})
	}
}

// CatalogCategories returns the featured category labels.
func CatalogCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		responses.WriteSuccess(w, map[string]any{"categories": svc.Categories()})
	}
}

type describeRequest struct {
	Title    string `json:"title" validate:"required"`
	Category string `json:"category" validate:"required"`
}

// CatalogDescribe generates marketing copy for a listing title and
// category. It always succeeds; generation failures degrade to fixed
// placeholder text.
func CatalogDescribe(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var body describeRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		description := svc.GenerateDescription(r.Context(), body.Title, body.Category)
		responses.WriteSuccess(w, map[string]string{"description": description})
	}
}
