package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	chi "github.com/go-chi/chi/v5"

	"github.com/tusharoffice40/Whole-X/api/responses"
	"github.com/tusharoffice40/Whole-X/api/validators"
	cartsvc "github.com/tusharoffice40/Whole-X/internal/cart"
	pkgerrors "github.com/tusharoffice40/Whole-X/pkg/errors"
	"github.com/tusharoffice40/Whole-X/pkg/logger"
)

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// Quantity accepts a JSON number or string. Anything that does not parse
// as an integer coerces to zero, which the reducer then clamps up to the
// line's minimum order quantity.
type Quantity int

func (q *Quantity) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	raw = strings.Trim(raw, `"`)

	value, err := strconv.Atoi(raw)
	if err != nil {
		value = 0
	}
	*q = Quantity(value)
	return nil
}

type updateItemRequest struct {
	Quantity Quantity `json:"quantity"`
}

// CartFetch returns the session's cart lines and total.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sess, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.Get(sess))
	}
}

// CartAddItem adds one product at its minimum order quantity, merging
// into an existing line.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sess, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body addItemRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snap, err := svc.Add(sess, body.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, snap)
	}
}

// CartRemoveItem deletes the line for the given product. Removing an
// absent line is a no-op and still succeeds.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sess, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.Remove(sess, chi.URLParam(r, "productId")))
	}
}

// CartUpdateItem sets the quantity for an existing line, clamped to the
// product's minimum order quantity. Updating an absent line is a no-op.
func CartUpdateItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sess, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body"))
			return
		}

		responses.WriteSuccess(w, svc.UpdateQuantity(sess, chi.URLParam(r, "productId"), int(body.Quantity)))
	}
}
