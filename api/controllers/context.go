package controllers

import (
	"net/http"

	"github.com/tusharoffice40/Whole-X/api/middleware"
	pkgerrors "github.com/tusharoffice40/Whole-X/pkg/errors"
	"github.com/tusharoffice40/Whole-X/pkg/session"
)

func sessionFromRequest(r *http.Request) (*session.Session, error) {
	if r == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return sess, nil
}
