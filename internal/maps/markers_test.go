package maps

import (
	"math"
	"testing"

	"github.com/dimassfeb-09/sima-app-web/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportMarkers_TerminalStatusesExcluded(t *testing.T) {
	// Подготовка: по одному назначению на каждый статус
	statuses := []models.ReportStatus{
		models.StatusPending,
		models.StatusProcess,
		models.StatusSuccess,
		models.StatusError,
		models.StatusFiktif,
	}
	assignments := make([]*models.Assignment, 0, len(statuses))
	for i, status := range statuses {
		assignments = append(assignments, &models.Assignment{
			ID:     int64(i + 1),
			Status: status,
			Report: models.Report{
				UserID:    int64(100 + i),
				Title:     "Laporan",
				Latitude:  -6.9,
				Longitude: 107.6,
			},
		})
	}

	// Действие
	markers := ReportMarkers(assignments)

	// Проверки: success и error не рендерятся, fiktif остается на карте
	require.Len(t, markers, 3)
	got := make([]models.ReportStatus, 0, len(markers))
	for _, m := range markers {
		got = append(got, m.Status)
	}
	assert.Equal(t, []models.ReportStatus{models.StatusPending, models.StatusProcess, models.StatusFiktif}, got)
}

func TestReportMarkers_UnknownStatusStaysVisible(t *testing.T) {
	// Подготовка
	assignments := []*models.Assignment{
		{
			Status: models.ReportStatus("unknown"),
			Report: models.Report{UserID: 1, Latitude: -6.9, Longitude: 107.6},
		},
	}

	// Действие
	markers := ReportMarkers(assignments)

	// Проверки
	require.Len(t, markers, 1)
	assert.Equal(t, "grey", markers[0].Status.Color())
}

func TestReportMarkers_InvalidCoordinatesSkipped(t *testing.T) {
	// Подготовка
	assignments := []*models.Assignment{
		{
			Status: models.StatusPending,
			Report: models.Report{UserID: 1, Latitude: math.NaN(), Longitude: 107.6},
		},
		{
			Status: models.StatusPending,
			Report: models.Report{UserID: 2, Latitude: -6.9, Longitude: 181.0},
		},
		{
			Status: models.StatusPending,
			Report: models.Report{UserID: 3, Latitude: -6.9, Longitude: 107.6},
		},
	}

	// Действие
	markers := ReportMarkers(assignments)

	// Проверки
	require.Len(t, markers, 1)
	assert.Equal(t, int64(3), markers[0].UserID)
}

func TestStatusColor_Total(t *testing.T) {
	// Проверки: каждый известный статус имеет свой цвет, прочие - серый
	assert.Equal(t, "orange", models.StatusPending.Color())
	assert.Equal(t, "blue", models.StatusProcess.Color())
	assert.Equal(t, "green", models.StatusSuccess.Color())
	assert.Equal(t, "red", models.StatusError.Color())
	assert.Equal(t, "grey", models.StatusFiktif.Color())
	assert.Equal(t, "grey", models.ReportStatus("").Color())
}
