package auth

import (
	"fmt"
	"time"

	"github.com/dimassfeb-09/sima-app-web/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims - полезная нагрузка токена доступа сотрудника
type Claims struct {
	UserID      int64  `json:"user_id"`
	UID         string `json:"uid"`
	AccountType string `json:"account_type"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет токены доступа
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager создает Manager с симметричным секретом
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate выпускает подписанный токен доступа для пользователя
func (m *Manager) Generate(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      user.ID,
		UID:         user.UID,
		AccountType: string(user.AccountType),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// Parse проверяет подпись и срок действия токена
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse access token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid access token")
	}
	return claims, nil
}
