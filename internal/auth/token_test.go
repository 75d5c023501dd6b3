package auth

import (
	"testing"
	"time"

	"github.com/dimassfeb-09/sima-app-web/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GenerateAndParse(t *testing.T) {
	// Подготовка
	m := NewManager("test-secret", time.Hour)
	user := &models.User{ID: 42, UID: "u-42", AccountType: models.AccountTypePolice}

	// Действие
	token, err := m.Generate(user)
	require.NoError(t, err)

	claims, err := m.Parse(token)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "u-42", claims.UID)
	assert.Equal(t, "police", claims.AccountType)
}

func TestManager_WrongSecretRejected(t *testing.T) {
	// Подготовка
	issuer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	token, err := issuer.Generate(&models.User{ID: 1, UID: "u-1"})
	require.NoError(t, err)

	// Действие
	_, err = verifier.Parse(token)

	// Проверки
	require.Error(t, err)
}

func TestManager_ExpiredTokenRejected(t *testing.T) {
	// Подготовка: токен с истекшим сроком действия
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Generate(&models.User{ID: 1, UID: "u-1"})
	require.NoError(t, err)

	// Действие
	_, err = m.Parse(token)

	// Проверки
	require.Error(t, err)
}

func TestManager_GarbageRejected(t *testing.T) {
	// Подготовка
	m := NewManager("test-secret", time.Hour)

	// Действие
	_, err := m.Parse("not-a-token")

	// Проверки
	require.Error(t, err)
}
