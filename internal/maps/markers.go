package maps

import (
	"github.com/dimassfeb-09/sima-app-web/internal/models"
	"github.com/dimassfeb-09/sima-app-web/pkg/geo"
)

// OrganizationMarker проецирует организацию в фиксированный маркер карты
func OrganizationMarker(org *models.Organization) models.Marker {
	return models.Marker{
		UserID:    org.UserID,
		Name:      org.Name,
		Latitude:  org.Latitude,
		Longitude: org.Longitude,
	}
}

// ReportMarkers проецирует назначения в живые маркеры карты.
// Назначения с терминальным статусом (success, error) исключаются,
// все остальные, включая fiktif и нераспознанные статусы, остаются.
// Некорректные координаты (NaN, вне диапазона) не рендерятся.
func ReportMarkers(assignments []*models.Assignment) []models.Marker {
	markers := make([]models.Marker, 0, len(assignments))
	for _, a := range assignments {
		if a.Status.IsTerminal() {
			continue
		}

		point := geo.LatLng{Latitude: a.Report.Latitude, Longitude: a.Report.Longitude}
		if !point.Valid() {
			continue
		}

		markers = append(markers, models.Marker{
			UserID:    a.Report.UserID,
			Name:      a.Report.Title,
			Latitude:  a.Report.Latitude,
			Longitude: a.Report.Longitude,
			Status:    a.Status,
			Address:   a.Report.Address,
		})
	}
	return markers
}
