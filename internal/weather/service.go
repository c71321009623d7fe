package weather

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Service serves simulated weather data until a real provider is integrated.
type Service struct {
	now func() time.Time
	rng *rand.Rand
}

// NewService builds the mock weather service.
func NewService() *Service {
	return &Service{
		now: func() time.Time { return time.Now().UTC() },
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Current returns present conditions, jittered when coordinates are supplied.
func (s *Service) Current(lat, lng string) Current {
	current := baseCurrent
	current.Timestamp = s.now()
	if lat != "" && lng != "" {
		current.Location = fmt.Sprintf("%s, %s", lat, lng)
		current.Temperature += s.rng.Intn(10) - 5
		current.Humidity += s.rng.Intn(20) - 10
	}
	return current
}

// Forecast returns up to seven days of forecast data plus active alerts.
func (s *Service) Forecast(days int, lat, lng string) ForecastResponse {
	if days <= 0 {
		days = 5
	}
	if days > 7 {
		days = 7
	}
	if days > len(baseForecast) {
		days = len(baseForecast)
	}

	forecast := make([]ForecastDay, days)
	copy(forecast, baseForecast[:days])

	location := baseCurrent.Location
	if lat != "" && lng != "" {
		location = fmt.Sprintf("%s, %s", lat, lng)
		for i := range forecast {
			forecast[i].High += s.rng.Intn(10) - 5
			forecast[i].Low += s.rng.Intn(8) - 4
		}
	}

	return ForecastResponse{
		Location: location,
		Forecast: forecast,
		Alerts:   append([]Alert(nil), baseAlerts...),
	}
}

// Agricultural returns field-level insight data.
func (s *Service) Agricultural() AgriculturalInsights {
	return baseInsights
}

// Zones lists the known agricultural zones.
func (s *Service) Zones() []Zone {
	return append([]Zone(nil), baseZones...)
}

// Alerts filters alerts by severity and, optionally, by whether they are
// currently in effect.
func (s *Service) Alerts(severity string, activeOnly bool) []Alert {
	alerts := append([]Alert(nil), baseAlerts...)

	if severity != "" {
		filtered := alerts[:0]
		for _, alert := range alerts {
			if strings.EqualFold(alert.Severity, severity) {
				filtered = append(filtered, alert)
			}
		}
		alerts = filtered
	}

	if activeOnly {
		now := s.now()
		filtered := alerts[:0]
		for _, alert := range alerts {
			start, startErr := time.Parse("2006-01-02", alert.StartDate)
			end, endErr := time.Parse("2006-01-02", alert.EndDate)
			if startErr != nil || endErr != nil {
				continue
			}
			if !now.Before(start) && !now.After(end.Add(24*time.Hour)) {
				filtered = append(filtered, alert)
			}
		}
		alerts = filtered
	}

	return alerts
}
