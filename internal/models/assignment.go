package models

import "time"

// Assignment - связка "отчет - организация" со статусом на уровне
// назначения и дистанцией в километрах. Назначение создается внешней
// системой маршрутизации; здесь оно только обновляется (статус,
// передача другой организации) и никогда не удаляется.
type Assignment struct {
	ID           int64        `json:"id"`
	AssignedAt   time.Time    `json:"assigned_at"`
	Status       ReportStatus `json:"status"`
	DistanceKm   float64      `json:"distance"`
	Report       Report       `json:"reports"`
	Organization Organization `json:"organizations"`
}

// Reporter - срез данных о заявителе для детальной карточки отчета.
type Reporter struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// AssignmentDetail - детальная карточка назначения с данными заявителя.
type AssignmentDetail struct {
	Assignment
	Reporter Reporter `json:"reporter"`
}
