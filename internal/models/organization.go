package models

// Organization представляет реагирующую единицу (полиция, скорая, пожарные).
// У одного пользователя не более одной организации, поиск идет по user_id.
type Organization struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	UserID       int64   `json:"user_id"`
	InstanceType string  `json:"instance_type"`
}
