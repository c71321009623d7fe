package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/cropsense/cropsense-backend/api/responses"
	"github.com/cropsense/cropsense-backend/pkg/config"
	pkgerrors "github.com/cropsense/cropsense-backend/pkg/errors"
	"github.com/cropsense/cropsense-backend/pkg/logger"
	"github.com/cropsense/cropsense-backend/pkg/types"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type healthEnvelope struct {
	types.SuccessEnvelope
	Status string `json:"status"`
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CropSense-Env", cfg.App.Env)
		responses.WriteSuccess(w, healthEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true},
			Status:          "live",
		})
	}
}

func HealthReady(cfg *config.Config, db, cache pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CropSense-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if db != nil {
			if err := db.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}
		if cache != nil {
			if err := cache.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, healthEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true},
			Status:          "ready",
		})
	}
}
