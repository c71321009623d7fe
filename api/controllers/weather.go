package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/cropsense/cropsense-backend/api/responses"
	"github.com/cropsense/cropsense-backend/api/validators"
	"github.com/cropsense/cropsense-backend/internal/weather"
	"github.com/cropsense/cropsense-backend/pkg/logger"
	"github.com/cropsense/cropsense-backend/pkg/types"
)

type weatherDataEnvelope struct {
	types.SuccessEnvelope
	Data      any       `json:"data"`
	Total     *int      `json:"total,omitempty"`
	ValidFor  string    `json:"valid_for,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func weatherEnvelope(data any) weatherDataEnvelope {
	return weatherDataEnvelope{
		SuccessEnvelope: types.SuccessEnvelope{Success: true},
		Data:            data,
		Timestamp:       time.Now().UTC(),
	}
}

func CurrentWeather(svc *weather.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lat := strings.TrimSpace(r.URL.Query().Get("lat"))
		lng := strings.TrimSpace(r.URL.Query().Get("lng"))
		responses.WriteSuccess(w, weatherEnvelope(svc.Current(lat, lng)))
	}
}

func WeatherForecast(svc *weather.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, err := validators.ParseQueryInt(r, "days", 5, 1, 7)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		lat := strings.TrimSpace(r.URL.Query().Get("lat"))
		lng := strings.TrimSpace(r.URL.Query().Get("lng"))
		responses.WriteSuccess(w, weatherEnvelope(svc.Forecast(days, lat, lng)))
	}
}

func AgriculturalInsights(svc *weather.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		envelope := weatherEnvelope(svc.Agricultural())
		envelope.ValidFor = "24 hours"
		responses.WriteSuccess(w, envelope)
	}
}

func WeatherZones(svc *weather.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zones := svc.Zones()
		total := len(zones)
		envelope := weatherEnvelope(zones)
		envelope.Total = &total
		responses.WriteSuccess(w, envelope)
	}
}

func WeatherAlerts(svc *weather.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		severity := strings.TrimSpace(r.URL.Query().Get("severity"))
		activeOnly := strings.EqualFold(r.URL.Query().Get("active"), "true")

		alerts := svc.Alerts(severity, activeOnly)
		total := len(alerts)
		envelope := weatherEnvelope(alerts)
		envelope.Total = &total
		responses.WriteSuccess(w, envelope)
	}
}
