package cropanalysis

import "time"

// Analysis is one field's crop assessment.
type Analysis struct {
	ID              string        `json:"id"`
	CropType        string        `json:"crop_type"`
	FieldID         string        `json:"field_id"`
	Area            float64       `json:"area"`
	SoilType        string        `json:"soil_type"`
	PlantingDate    string        `json:"planting_date"`
	ExpectedHarvest string        `json:"expected_harvest,omitempty"`
	CurrentStage    string        `json:"current_stage"`
	HealthScore     int           `json:"health_score"`
	YieldPrediction float64       `json:"yield_prediction"`
	Recommendations []string      `json:"recommendations"`
	SoilAnalysis    SoilAnalysis  `json:"soil_analysis"`
	SatelliteData   SatelliteData `json:"satellite_data"`
}

type SoilAnalysis struct {
	PH            float64 `json:"ph"`
	Nitrogen      int     `json:"nitrogen"`
	Phosphorus    int     `json:"phosphorus"`
	Potassium     int     `json:"potassium"`
	OrganicMatter float64 `json:"organic_matter"`
	Moisture      int     `json:"moisture"`
}

type SatelliteData struct {
	NDVI        float64   `json:"ndvi"`
	LastUpdated time.Time `json:"last_updated"`
	CloudCover  int       `json:"cloud_cover"`
	Resolution  string    `json:"resolution"`
}

// Recommendation is one advisory block in the AI payload.
type Recommendation struct {
	Type              string `json:"type,omitempty"`
	Amount            string `json:"amount,omitempty"`
	Timing            string `json:"timing,omitempty"`
	Frequency         string `json:"frequency,omitempty"`
	Treatment         string `json:"treatment,omitempty"`
	Monitoring        string `json:"monitoring,omitempty"`
	Threshold         string `json:"threshold,omitempty"`
	EstimatedDate     string `json:"estimated_date,omitempty"`
	QualityPrediction string `json:"quality_prediction,omitempty"`
	YieldConfidence   string `json:"yield_confidence,omitempty"`
	Reason            string `json:"reason"`
}

// AIRecommendations groups the advisory blocks returned per analysis.
type AIRecommendations struct {
	Fertilizer  Recommendation `json:"fertilizer"`
	Irrigation  Recommendation `json:"irrigation"`
	PestControl Recommendation `json:"pest_control"`
	Harvest     Recommendation `json:"harvest"`
}

var seedAnalyses = []Analysis{
	{
		ID:              "1",
		CropType:        "Corn",
		FieldID:         "field-001",
		Area:            45.5,
		SoilType:        "Loamy",
		PlantingDate:    "2024-04-15",
		ExpectedHarvest: "2024-09-20",
		CurrentStage:    "Vegetative Growth",
		HealthScore:     85,
		YieldPrediction: 180.5,
		Recommendations: []string{
			"Increase nitrogen fertilizer by 10%",
			"Monitor for corn borer infestation",
			"Optimal irrigation: 1.5 inches per week",
		},
		SoilAnalysis: SoilAnalysis{
			PH: 6.8, Nitrogen: 45, Phosphorus: 28, Potassium: 165,
			OrganicMatter: 3.2, Moisture: 22,
		},
		SatelliteData: SatelliteData{
			NDVI:        0.75,
			LastUpdated: time.Date(2024, 9, 15, 10, 30, 0, 0, time.UTC),
			CloudCover:  15,
			Resolution:  "10m",
		},
	},
	{
		ID:              "2",
		CropType:        "Soybeans",
		FieldID:         "field-002",
		Area:            32.0,
		SoilType:        "Clay Loam",
		PlantingDate:    "2024-05-01",
		ExpectedHarvest: "2024-10-10",
		CurrentStage:    "Pod Development",
		HealthScore:     92,
		YieldPrediction: 55.2,
		Recommendations: []string{
			"Apply potassium supplement",
			"Monitor for aphid activity",
			"Reduce irrigation frequency",
		},
		SoilAnalysis: SoilAnalysis{
			PH: 7.1, Nitrogen: 38, Phosphorus: 35, Potassium: 142,
			OrganicMatter: 4.1, Moisture: 28,
		},
		SatelliteData: SatelliteData{
			NDVI:        0.82,
			LastUpdated: time.Date(2024, 9, 15, 10, 30, 0, 0, time.UTC),
			CloudCover:  8,
			Resolution:  "10m",
		},
	},
}
