package realtime

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Имя широковещательного события в канале организации.
const EventNewReport = "new-report"

// Event - событие "новый отчет", рассылаемое в канал организации
type Event struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"event"`
	ReportID       int64     `json:"report_id"`
	Title          string    `json:"title"`
	OrganizationID int64     `json:"organization_id"`
	SentAt         time.Time `json:"sent_at"`
}

// NewReportEvent собирает событие нового отчета для канала организации
func NewReportEvent(orgID, reportID int64, title string) Event {
	return Event{
		ID:             uuid.New(),
		Name:           EventNewReport,
		ReportID:       reportID,
		Title:          title,
		OrganizationID: orgID,
		SentAt:         time.Now().UTC(),
	}
}

// ChannelName возвращает имя канала отчетов организации
func ChannelName(orgID int64) string {
	return fmt.Sprintf("report-%d", orgID)
}
