package models

import "time"

// AccountType - закрытый набор типов учетных записей персонала
type AccountType string

const (
	AccountTypeAmbulance   AccountType = "ambulance"
	AccountTypePolice      AccountType = "police"
	AccountTypeFirefighter AccountType = "firefighter"
	AccountTypeAdmin       AccountType = "admin"
)

// ValidAccountType сообщает, входит ли значение в закрытый набор типов
func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountTypeAmbulance, AccountTypePolice, AccountTypeFirefighter, AccountTypeAdmin:
		return true
	}
	return false
}

// User представляет сотрудника организации-реагирования.
// Запись создается при регистрации и далее почти не меняется.
type User struct {
	ID           int64       `json:"id"`
	UID          string      `json:"uid"`
	FullName     string      `json:"full_name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	AccountType  AccountType `json:"account_type"`
	PasswordHash string      `json:"-"`
	CreatedAt    time.Time   `json:"created_at"`
}
