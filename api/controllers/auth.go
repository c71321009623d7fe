package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/cropsense/cropsense-backend/api/middleware"
	"github.com/cropsense/cropsense-backend/api/responses"
	"github.com/cropsense/cropsense-backend/api/validators"
	"github.com/cropsense/cropsense-backend/internal/auth"
	"github.com/cropsense/cropsense-backend/internal/users"
	pkgerrors "github.com/cropsense/cropsense-backend/pkg/errors"
	"github.com/cropsense/cropsense-backend/pkg/logger"
	"github.com/cropsense/cropsense-backend/pkg/types"
)

type sessionEnvelope struct {
	types.SuccessEnvelope
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	User         *users.UserDTO `json:"user"`
}

type profileEnvelope struct {
	types.SuccessEnvelope
	User *users.UserDTO `json:"user"`
}

func Signup(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.SignupRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Signup(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, sessionEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true, Message: "Account created successfully"},
			AccessToken:     session.AccessToken,
			RefreshToken:    session.RefreshToken,
			User:            session.User,
		})
	}
}

func Signin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.SigninRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Signin(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, sessionEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true},
			AccessToken:     session.AccessToken,
			RefreshToken:    session.RefreshToken,
			User:            session.User,
		})
	}
}

func Refresh(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.RefreshRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Refresh(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, sessionEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true},
			AccessToken:     session.AccessToken,
			RefreshToken:    session.RefreshToken,
			User:            session.User,
		})
	}
}

func Profile(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		user, err := svc.Profile(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, profileEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true},
			User:            user,
		})
	}
}

func Logout(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context(), middleware.AccessIDFromContext(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, types.SuccessEnvelope{Success: true, Message: "Logged out successfully"})
	}
}
