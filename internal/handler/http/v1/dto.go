package v1

import "time"

// RegisterRequest DTO для регистрации сотрудника
// @Description DTO для регистрации сотрудника
type RegisterRequest struct {
	FullName    string `json:"full_name" validate:"required,min=2,max=255"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=6,max=20"`
	Password    string `json:"password" validate:"required,min=8"`
	AccountType string `json:"account_type" validate:"required,oneof=ambulance police firefighter admin"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse DTO ответа аутентификации
// @Description DTO ответа аутентификации с токеном доступа
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse DTO с информацией о пользователе
// @Description DTO с информацией о пользователе
type UserResponse struct {
	ID          int64     `json:"id"`
	UID         string    `json:"uid"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	AccountType string    `json:"account_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// UpdateProfileRequest DTO для обновления профиля
// @Description DTO для обновления отображаемого имени и телефона
type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=255"`
	Phone    string `json:"phone" validate:"required,min=6,max=20"`
}

// SaveOrganizationRequest DTO сохранения настроек организации.
// Координаты передаются одной строкой "lat,lon" и проверяются
// до записи в бд.
type SaveOrganizationRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=255"`
	Coordinates  string `json:"coordinates" validate:"required"`
	InstanceType string `json:"instance_type" validate:"required,oneof=ambulance police firefighter"`
}

// OrganizationResponse DTO с информацией об организации
// @Description DTO с информацией об организации
type OrganizationResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	UserID       int64   `json:"user_id"`
	InstanceType string  `json:"instance_type"`
}

// ReportResponse DTO со срезом отчета
// @Description DTO со срезом отчета
type ReportResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
	ImageURL    string  `json:"image_url,omitempty"`
	Type        string  `json:"type"`
	UserID      int64   `json:"user_id"`
}

// AssignmentResponse DTO строки списка назначений
// @Description DTO строки списка назначений
type AssignmentResponse struct {
	ID           int64                `json:"id"`
	AssignedAt   time.Time            `json:"assigned_at"`
	Status       string               `json:"status"`
	StatusColor  string               `json:"status_color"`
	DistanceKm   float64              `json:"distance"`
	Report       ReportResponse       `json:"reports"`
	Organization OrganizationResponse `json:"organizations"`
}

// ReporterResponse DTO с данными заявителя
// @Description DTO с данными заявителя
type ReporterResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// AssignmentDetailResponse DTO детальной карточки назначения
// @Description DTO детальной карточки назначения
type AssignmentDetailResponse struct {
	AssignmentResponse
	Reporter ReporterResponse `json:"reporter"`
}

// ChangeStatusRequest DTO смены статуса отчета
// @Description DTO смены статуса отчета
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending process success error fiktif"`
}

// TransferRequest DTO передачи назначения другой организации
// @Description DTO передачи назначения другой организации
type TransferRequest struct {
	OrganizationID int64 `json:"organization_id" validate:"required,gt=0"`
}

// CountResponse DTO значения счетчика
// @Description DTO значения счетчика
type CountResponse struct {
	Title string `json:"title"`
	Value int64  `json:"value"`
}
