package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/dimassfeb-09/sima-app-web/internal/models"
	svc "github.com/dimassfeb-09/sima-app-web/internal/service"
	"github.com/dimassfeb-09/sima-app-web/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestOrganizationService(t *testing.T) (svc.OrganizationService, *mocks.MockOrganizationRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockOrganizationRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := svc.NewOrganizationService(repoMock, logger)
	return service, repoMock
}

func TestGetForUser_NotCreatedYet(t *testing.T) {
	// Подготовка
	service, repoMock := newTestOrganizationService(t)
	ctx := context.Background()

	// Ожидания: отсутствие организации - не ошибка
	repoMock.EXPECT().
		GetByUserID(ctx, int64(3)).
		Return(nil, nil).
		Times(1)

	// Действие
	org, err := service.GetForUser(ctx, 3)

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, org)
}

func TestSave_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestOrganizationService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, org *models.Organization) error {
			assert.Equal(t, "Polsek Coblong", org.Name)
			assert.InDelta(t, -6.8846, org.Latitude, 1e-9)
			assert.InDelta(t, 107.6123, org.Longitude, 1e-9)
			assert.Equal(t, "police", org.InstanceType)
			org.ID = 12
			return nil
		}).
		Times(1)

	// Действие
	org, err := service.Save(ctx, 3, "Polsek Coblong", "-6.8846, 107.6123", "police")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(12), org.ID)
}

func TestSave_MalformedCoordinates(t *testing.T) {
	// Подготовка
	service, repoMock := newTestOrganizationService(t)
	ctx := context.Background()

	// Ожидания: некорректный ввод не доходит до бд
	repoMock.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

	cases := []string{"", "abc", "-6.88", "91.0, 107.6", "-6.88, 181.0", "-6.88 107.61"}
	for _, input := range cases {
		// Действие
		org, err := service.Save(ctx, 3, "Polsek Coblong", input, "police")

		// Проверки
		require.Error(t, err, "input %q", input)
		assert.Nil(t, org)
	}
}

func TestSearch_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestOrganizationService(t)
	ctx := context.Background()
	expected := []*models.Organization{
		{ID: 1, Name: "Damkar Bandung", InstanceType: "firefighter"},
	}

	// Ожидания
	repoMock.EXPECT().
		ListByType(ctx, "firefighter", "Bandung").
		Return(expected, nil).
		Times(1)

	// Действие
	orgs, err := service.Search(ctx, "firefighter", "Bandung")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, orgs)
}
