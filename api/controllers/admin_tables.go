package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cropsense/cropsense-backend/api/responses"
	"github.com/cropsense/cropsense-backend/api/validators"
	"github.com/cropsense/cropsense-backend/internal/admin"
	pkgerrors "github.com/cropsense/cropsense-backend/pkg/errors"
	"github.com/cropsense/cropsense-backend/pkg/logger"
	"github.com/cropsense/cropsense-backend/pkg/types"
)

type tablesEnvelope struct {
	types.SuccessEnvelope
	Tables []string `json:"tables"`
}

type tableRowsEnvelope struct {
	types.SuccessEnvelope
	Table string           `json:"table"`
	Rows  []map[string]any `json:"rows"`
	Count int              `json:"count"`
}

func AdminTables(svc *admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, tablesEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true},
			Tables:          svc.Tables(),
		})
	}
}

func AdminBrowseTable(svc *admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := strings.TrimSpace(chi.URLParam(r, "table"))
		if table == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "table name is required"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 50, 1, 500)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1_000_000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.Browse(r.Context(), table, limit, offset)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, tableRowsEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true},
			Table:           table,
			Rows:            rows,
			Count:           len(rows),
		})
	}
}
