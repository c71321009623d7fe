package cropanalysis

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pkgerrors "github.com/cropsense/cropsense-backend/pkg/errors"
)

func newFixedService(now time.Time) *Service {
	return &Service{
		analyses: append([]Analysis(nil), seedAnalyses...),
		now:      func() time.Time { return now },
		rng:      rand.New(rand.NewSource(1)),
	}
}

func TestListReturnsSeededAnalyses(t *testing.T) {
	svc := newFixedService(time.Now())

	list := svc.List()
	require.Len(t, list, 2)
	require.Equal(t, "Corn", list[0].CropType)
}

func TestGetByID(t *testing.T) {
	svc := newFixedService(time.Now())

	analysis, err := svc.Get("2")
	require.NoError(t, err)
	require.Equal(t, "Soybeans", analysis.CropType)

	_, err = svc.Get("missing")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	require.Equal(t, "Crop analysis not found", typed.Message())
}

func TestCreateValidation(t *testing.T) {
	svc := newFixedService(time.Now())

	for _, input := range []CreateInput{
		{FieldID: "field-003", Area: 10},
		{CropType: "Wheat", Area: 10},
		{CropType: "Wheat", FieldID: "field-003"},
		{CropType: "Wheat", FieldID: "field-003", Area: -1},
	} {
		_, err := svc.Create(input)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		require.Equal(t, pkgerrors.CodeValidation, typed.Code())
		require.Equal(t, "Missing required fields: cropType, fieldId, area", typed.Message())
	}
}

func TestCreateDefaultsAndRanges(t *testing.T) {
	now := time.Date(2024, 9, 18, 12, 0, 0, 0, time.UTC)
	svc := newFixedService(now)

	analysis, err := svc.Create(CreateInput{CropType: "Wheat", FieldID: "field-003", Area: 12.5})
	require.NoError(t, err)
	require.NotEmpty(t, analysis.ID)
	require.Equal(t, "Unknown", analysis.SoilType)
	require.Equal(t, "2024-09-18", analysis.PlantingDate)
	require.Equal(t, "Newly Planted", analysis.CurrentStage)

	require.GreaterOrEqual(t, analysis.HealthScore, 70)
	require.Less(t, analysis.HealthScore, 90)
	require.GreaterOrEqual(t, analysis.SoilAnalysis.PH, 6.0)
	require.LessOrEqual(t, analysis.SoilAnalysis.PH, 8.0)
	require.GreaterOrEqual(t, analysis.SatelliteData.NDVI, 0.5)
	require.LessOrEqual(t, analysis.SatelliteData.NDVI, 0.8)

	list := svc.List()
	require.Len(t, list, 3)

	fetched, err := svc.Get(analysis.ID)
	require.NoError(t, err)
	require.Equal(t, "Wheat", fetched.CropType)
}

func TestRecommendationsUseHarvestDate(t *testing.T) {
	svc := newFixedService(time.Now())

	recs, err := svc.Recommendations("1")
	require.NoError(t, err)
	require.Equal(t, "2024-09-20", recs.Harvest.EstimatedDate)
	require.Equal(t, "NPK 15-15-15", recs.Fertilizer.Type)

	_, err = svc.Recommendations("missing")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
