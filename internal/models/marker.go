package models

// Marker - эфемерная проекция отчета или организации для отрисовки
// на карте. Пересчитывается при каждом обновлении данных, нигде
// не сохраняется.
type Marker struct {
	UserID    int64        `json:"user_id"`
	Name      string       `json:"name"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Status    ReportStatus `json:"status,omitempty"`
	Address   string       `json:"address,omitempty"`
}
