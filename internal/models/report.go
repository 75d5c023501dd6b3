package models

// ReportStatus - закрытое перечисление статусов отчета.
// "fiktif" (ложный вызов) достижим только явным действием персонала.
type ReportStatus string

const (
	StatusPending ReportStatus = "pending"
	StatusProcess ReportStatus = "process"
	StatusSuccess ReportStatus = "success"
	StatusError   ReportStatus = "error"
	StatusFiktif  ReportStatus = "fiktif"
)

// ValidReportStatus сообщает, входит ли значение в закрытый набор статусов
func ValidReportStatus(s ReportStatus) bool {
	switch s {
	case StatusPending, StatusProcess, StatusSuccess, StatusError, StatusFiktif:
		return true
	}
	return false
}

// IsTerminal сообщает, исключается ли статус из живой карты.
// Терминальные статусы - success и error; все прочие (включая fiktif
// и нераспознанные значения) остаются видимыми.
func (s ReportStatus) IsTerminal() bool {
	return s == StatusSuccess || s == StatusError
}

// Color возвращает цвет маркера/бейджа для статуса.
// Функция тотальна: нераспознанный статус дает цвет по умолчанию.
func (s ReportStatus) Color() string {
	switch s {
	case StatusPending:
		return "orange"
	case StatusProcess:
		return "blue"
	case StatusSuccess:
		return "green"
	case StatusError:
		return "red"
	default:
		return "grey"
	}
}

// Report - сообщение гражданина о происшествии. Создается внешней
// системой приема; персонал меняет только статус.
type Report struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      ReportStatus `json:"status"`
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	Address     string       `json:"address"`
	ImageURL    string       `json:"image_url,omitempty"`
	Type        string       `json:"type"`
	UserID      int64        `json:"user_id"`
}
