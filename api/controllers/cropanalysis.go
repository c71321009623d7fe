package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cropsense/cropsense-backend/api/responses"
	"github.com/cropsense/cropsense-backend/api/validators"
	"github.com/cropsense/cropsense-backend/internal/cropanalysis"
	pkgerrors "github.com/cropsense/cropsense-backend/pkg/errors"
	"github.com/cropsense/cropsense-backend/pkg/logger"
	"github.com/cropsense/cropsense-backend/pkg/types"
)

type cropDataEnvelope struct {
	types.SuccessEnvelope
	Data        any       `json:"data"`
	Total       *int      `json:"total,omitempty"`
	CropID      string    `json:"crop_id,omitempty"`
	GeneratedAt time.Time `json:"generated_at,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}

type createAnalysisRequest struct {
	CropType     string  `json:"crop_type" validate:"required"`
	FieldID      string  `json:"field_id" validate:"required"`
	Area         float64 `json:"area" validate:"required,gt=0"`
	SoilType     string  `json:"soil_type"`
	PlantingDate string  `json:"planting_date"`
}

func ListCropAnalyses(svc *cropanalysis.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		analyses := svc.List()
		total := len(analyses)
		responses.WriteSuccess(w, cropDataEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true},
			Data:            analyses,
			Total:           &total,
			Timestamp:       time.Now().UTC(),
		})
	}
}

func GetCropAnalysis(svc *cropanalysis.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "analysisId"))
		analysis, err := svc.Get(id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cropDataEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true},
			Data:            analysis,
			Timestamp:       time.Now().UTC(),
		})
	}
}

func CreateCropAnalysis(svc *cropanalysis.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnalysisRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		analysis, err := svc.Create(cropanalysis.CreateInput{
			CropType:     req.CropType,
			FieldID:      req.FieldID,
			Area:         req.Area,
			SoilType:     req.SoilType,
			PlantingDate: req.PlantingDate,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, cropDataEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true, Message: "Crop analysis created successfully"},
			Data:            analysis,
			Timestamp:       time.Now().UTC(),
		})
	}
}

func CropRecommendations(svc *cropanalysis.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "analysisId"))
		if id == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "analysis id is required"))
			return
		}

		recs, err := svc.Recommendations(id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cropDataEnvelope{
			SuccessEnvelope: types.SuccessEnvelope{Success: true},
			Data:            recs,
			CropID:          id,
			GeneratedAt:     time.Now().UTC(),
		})
	}
}
