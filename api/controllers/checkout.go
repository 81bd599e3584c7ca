package controllers

import (
	"net/http"

	"github.com/tusharoffice40/Whole-X/api/responses"
	ordersvc "github.com/tusharoffice40/Whole-X/internal/orders"
	pkgerrors "github.com/tusharoffice40/Whole-X/pkg/errors"
	"github.com/tusharoffice40/Whole-X/pkg/logger"
)

// Checkout converts the session's cart into an order. An empty cart is a
// silent no-op reported as performed=false, not an error.
func Checkout(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		sess, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result := svc.Checkout(sess)
		if result.Performed && logg != nil {
			ctx := logg.WithFields(r.Context(), map[string]any{
				"order_id":    result.Order.ID,
				"total_cents": result.Order.TotalCents,
			})
			logg.Info(ctx, "order.placed")
		}

		responses.WriteSuccess(w, result)
	}
}

// OrdersList returns the session's order history, newest first.
func OrdersList(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		sess, err := sessionFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"orders": svc.History(sess)})
	}
}
