package weather

import "time"

// Current describes present conditions at a location.
type Current struct {
	Location      string    `json:"location"`
	Temperature   int       `json:"temperature"`
	Humidity      int       `json:"humidity"`
	WindSpeed     float64   `json:"wind_speed"`
	WindDirection string    `json:"wind_direction"`
	Pressure      float64   `json:"pressure"`
	Visibility    int       `json:"visibility"`
	UVIndex       int       `json:"uv_index"`
	Precipitation int       `json:"precipitation"`
	Conditions    string    `json:"conditions"`
	Timestamp     time.Time `json:"timestamp"`
}

// AgriculturalOutlook summarizes field implications for one forecast day.
type AgriculturalOutlook struct {
	SoilMoisture    string `json:"soil_moisture"`
	FieldConditions string `json:"field_conditions"`
	PestRisk        string `json:"pest_risk"`
	DiseaseRisk     string `json:"disease_risk"`
}

// ForecastDay is a single day's forecast.
type ForecastDay struct {
	Date          string              `json:"date"`
	Day           string              `json:"day"`
	High          int                 `json:"high"`
	Low           int                 `json:"low"`
	Humidity      int                 `json:"humidity"`
	Precipitation int                 `json:"precipitation"`
	WindSpeed     int                 `json:"wind_speed"`
	Conditions    string              `json:"conditions"`
	Agricultural  AgriculturalOutlook `json:"agricultural"`
}

// ForecastResponse bundles the forecast window with active alerts.
type ForecastResponse struct {
	Location string        `json:"location"`
	Forecast []ForecastDay `json:"forecast"`
	Alerts   []Alert       `json:"alerts"`
}

// Alert is an agricultural weather advisory.
type Alert struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Severity        string   `json:"severity"`
	Title           string   `json:"title"`
	Message         string   `json:"message"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	Recommendations []string `json:"recommendations"`
}

// Zone describes an agricultural growing region.
type Zone struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Coordinates     Coordinates       `json:"coordinates"`
	CropZones       []string          `json:"crop_zones"`
	PrimaryCrops    []string          `json:"primary_crops"`
	SoilTypes       []string          `json:"soil_types"`
	AverageRainfall float64           `json:"average_rainfall"`
	GrowingSeason   map[string]string `json:"growing_season"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GrowingDegreeDays tracks crop heat accumulation progress.
type GrowingDegreeDays struct {
	Accumulated        int    `json:"accumulated"`
	Target             int    `json:"target"`
	Percentage         int    `json:"percentage"`
	Crop               string `json:"crop"`
	MaturityPrediction string `json:"maturity_prediction"`
}

type SoilConditions struct {
	Temperature    int    `json:"temperature"`
	Moisture       int    `json:"moisture"`
	Status         string `json:"status"`
	Recommendation string `json:"recommendation"`
}

type FarmingTask struct {
	Task     string `json:"task"`
	Priority string `json:"priority,omitempty"`
	Window   string `json:"window,omitempty"`
	Period   string `json:"period,omitempty"`
	Reason   string `json:"reason"`
}

type FarmingTasks struct {
	Recommended []FarmingTask `json:"recommended"`
	Avoid       []FarmingTask `json:"avoid"`
}

type Threat struct {
	Pest        string `json:"pest,omitempty"`
	Disease     string `json:"disease,omitempty"`
	Probability int    `json:"probability"`
	Action      string `json:"action"`
}

type PestAndDisease struct {
	Risk    string   `json:"risk"`
	Threats []Threat `json:"threats"`
}

// AgriculturalInsights is the full field-planning payload.
type AgriculturalInsights struct {
	GrowingDegreeDays GrowingDegreeDays `json:"growing_degree_days"`
	SoilConditions    SoilConditions    `json:"soil_conditions"`
	FarmingTasks      FarmingTasks      `json:"farming_tasks"`
	PestAndDisease    PestAndDisease    `json:"pest_and_disease"`
}

var baseCurrent = Current{
	Location:      "Iowa, USA",
	Temperature:   72,
	Humidity:      65,
	WindSpeed:     8.5,
	WindDirection: "SW",
	Pressure:      30.15,
	Visibility:    10,
	UVIndex:       6,
	Precipitation: 0,
	Conditions:    "Partly Cloudy",
}

var baseForecast = []ForecastDay{
	{
		Date: "2024-09-18", Day: "Today", High: 78, Low: 58, Humidity: 70,
		Precipitation: 15, WindSpeed: 12, Conditions: "Scattered Showers",
		Agricultural: AgriculturalOutlook{
			SoilMoisture: "Adequate", FieldConditions: "Good for planting",
			PestRisk: "Low", DiseaseRisk: "Medium",
		},
	},
	{
		Date: "2024-09-19", Day: "Tomorrow", High: 75, Low: 55, Humidity: 60,
		Precipitation: 5, WindSpeed: 8, Conditions: "Mostly Sunny",
		Agricultural: AgriculturalOutlook{
			SoilMoisture: "Good", FieldConditions: "Excellent for fieldwork",
			PestRisk: "Low", DiseaseRisk: "Low",
		},
	},
	{
		Date: "2024-09-20", Day: "Friday", High: 80, Low: 62, Humidity: 55,
		Precipitation: 0, WindSpeed: 6, Conditions: "Sunny",
		Agricultural: AgriculturalOutlook{
			SoilMoisture: "Declining", FieldConditions: "Perfect for harvest",
			PestRisk: "Medium", DiseaseRisk: "Low",
		},
	},
	{
		Date: "2024-09-21", Day: "Saturday", High: 82, Low: 65, Humidity: 50,
		Precipitation: 0, WindSpeed: 5, Conditions: "Sunny",
		Agricultural: AgriculturalOutlook{
			SoilMoisture: "Low", FieldConditions: "Consider irrigation",
			PestRisk: "Medium", DiseaseRisk: "Low",
		},
	},
	{
		Date: "2024-09-22", Day: "Sunday", High: 79, Low: 60, Humidity: 65,
		Precipitation: 25, WindSpeed: 10, Conditions: "Thunderstorms",
		Agricultural: AgriculturalOutlook{
			SoilMoisture: "Increasing", FieldConditions: "Avoid heavy machinery",
			PestRisk: "Low", DiseaseRisk: "High",
		},
	},
}

var baseAlerts = []Alert{
	{
		ID:        "alert-001",
		Type:      "Agricultural Advisory",
		Severity:  "Medium",
		Title:     "Optimal Harvest Window",
		Message:   "Conditions favorable for corn harvest over next 3 days",
		StartDate: "2024-09-19",
		EndDate:   "2024-09-21",
		Recommendations: []string{
			"Begin harvest operations Friday morning",
			"Complete critical fields before Sunday storms",
			"Monitor grain moisture levels",
		},
	},
}

var baseZones = []Zone{
	{
		ID:              "zone-001",
		Name:            "Corn Belt - Iowa",
		Coordinates:     Coordinates{Lat: 41.878, Lng: -93.097},
		CropZones:       []string{"5a", "5b", "6a"},
		PrimaryCrops:    []string{"Corn", "Soybeans", "Hay"},
		SoilTypes:       []string{"Mollisols", "Alfisols"},
		AverageRainfall: 36.5,
		GrowingSeason:   map[string]string{"start": "April 15", "end": "October 15"},
	},
	{
		ID:              "zone-002",
		Name:            "Great Plains - Nebraska",
		Coordinates:     Coordinates{Lat: 40.809, Lng: -96.675},
		CropZones:       []string{"5a", "5b"},
		PrimaryCrops:    []string{"Wheat", "Corn", "Sorghum"},
		SoilTypes:       []string{"Mollisols", "Entisols"},
		AverageRainfall: 28.8,
		GrowingSeason:   map[string]string{"start": "April 1", "end": "October 31"},
	},
}

var baseInsights = AgriculturalInsights{
	GrowingDegreeDays: GrowingDegreeDays{
		Accumulated:        2847,
		Target:             3200,
		Percentage:         89,
		Crop:               "Corn",
		MaturityPrediction: "2024-09-25",
	},
	SoilConditions: SoilConditions{
		Temperature:    65,
		Moisture:       22,
		Status:         "Good",
		Recommendation: "Optimal for planting cool season crops",
	},
	FarmingTasks: FarmingTasks{
		Recommended: []FarmingTask{
			{
				Task:     "Harvest corn",
				Priority: "High",
				Window:   "2024-09-19 to 2024-09-21",
				Reason:   "Optimal moisture and weather conditions",
			},
			{
				Task:     "Plant winter wheat",
				Priority: "Medium",
				Window:   "2024-09-22 to 2024-09-28",
				Reason:   "After rain, good soil moisture for germination",
			},
		},
		Avoid: []FarmingTask{
			{
				Task:   "Heavy field work",
				Period: "2024-09-22",
				Reason: "Thunderstorms expected, soil will be too wet",
			},
		},
	},
	PestAndDisease: PestAndDisease{
		Risk: "Medium",
		Threats: []Threat{
			{Pest: "Corn Borer", Probability: 35, Action: "Monitor adult moth activity"},
			{Disease: "Gray Leaf Spot", Probability: 60, Action: "Apply fungicide if threshold exceeded"},
		},
	},
}
