package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/dimassfeb-09/sima-app-web/internal/models"
	"github.com/dimassfeb-09/sima-app-web/internal/realtime"
	realtime_mocks "github.com/dimassfeb-09/sima-app-web/internal/realtime/mocks"
	svc "github.com/dimassfeb-09/sima-app-web/internal/service"
	"github.com/dimassfeb-09/sima-app-web/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestReportService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestReportService(t *testing.T) (svc.ReportService, *mocks.MockReportRepository, *mocks.MockOrganizationRepository, *realtime_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockReportRepository(ctrl)
	orgRepoMock := mocks.NewMockOrganizationRepository(ctrl)
	publisherMock := realtime_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := svc.NewReportService(repoMock, orgRepoMock, publisherMock, logger)
	return service, repoMock, orgRepoMock, publisherMock
}

func TestListAssignments_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestReportService(t)
	ctx := context.Background()
	expected := []*models.Assignment{
		{ID: 1, Status: models.StatusPending, Report: models.Report{ID: 10, Title: "Kebakaran rumah"}},
		{ID: 2, Status: models.StatusProcess, Report: models.Report{ID: 11, Title: "Kecelakaan motor"}},
	}

	// Ожидания
	repoMock.EXPECT().
		ListByOrganization(ctx, int64(5)).
		Return(expected, nil).
		Times(1)

	// Действие
	assignments, err := service.ListAssignments(ctx, 5)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, assignments)
}

func TestChangeStatus_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestReportService(t)
	ctx := context.Background()

	// Ожидания: оба статуса обновляются одним вызовом репозитория (одна транзакция)
	repoMock.EXPECT().
		UpdateStatuses(ctx, int64(10), int64(5), models.StatusProcess).
		Return(nil).
		Times(1)

	// Действие
	err := service.ChangeStatus(ctx, 5, 10, models.StatusProcess)

	// Проверки
	require.NoError(t, err)
}

func TestChangeStatus_UnknownStatus(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestReportService(t)
	ctx := context.Background()

	// Ожидания: репозиторий не должен вызываться
	repoMock.EXPECT().UpdateStatuses(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.ChangeStatus(ctx, 5, 10, models.ReportStatus("done"))

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report status")
}

func TestChangeStatus_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestReportService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("connection lost")

	// Ожидания
	repoMock.EXPECT().
		UpdateStatuses(ctx, int64(10), int64(5), models.StatusSuccess).
		Return(dbError).
		Times(1)

	// Действие
	err := service.ChangeStatus(ctx, 5, 10, models.StatusSuccess)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, dbError)
}

func TestTransfer_Success(t *testing.T) {
	// Подготовка
	service, repoMock, orgRepoMock, publisherMock := newTestReportService(t)
	ctx := context.Background()
	dest := &models.Organization{
		ID:        7,
		Name:      "RS Hasan Sadikin",
		Latitude:  -6.8985,
		Longitude: 107.5994,
	}
	report := &models.Report{
		ID:        10,
		Title:     "Kecelakaan beruntun",
		Latitude:  -6.9147,
		Longitude: 107.6098,
	}

	// Ожидания
	orgRepoMock.EXPECT().
		GetByID(ctx, int64(7)).
		Return(dest, nil).
		Times(1)

	repoMock.EXPECT().
		GetReport(ctx, int64(10)).
		Return(report, nil).
		Times(1)

	// Дистанция пересчитывается до организации-получателя
	repoMock.EXPECT().
		Transfer(ctx, int64(10), int64(5), int64(7), gomock.Any()).
		Return(nil).
		Times(1)

	// Организация-получатель узнает о новом отчете через свой канал
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event realtime.Event) error {
			assert.Equal(t, realtime.EventNewReport, event.Name)
			assert.Equal(t, int64(7), event.OrganizationID)
			assert.Equal(t, int64(10), event.ReportID)
			return nil
		}).
		Times(1)

	// Действие
	err := service.Transfer(ctx, 5, 10, 7)

	// Проверки
	require.NoError(t, err)
}

func TestTransfer_SameOrganization(t *testing.T) {
	// Подготовка
	service, repoMock, orgRepoMock, _ := newTestReportService(t)
	ctx := context.Background()

	// Ожидания: ни репозиторий, ни канал событий не вызываются
	orgRepoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
	repoMock.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.Transfer(ctx, 5, 10, 5)

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same organization")
}

func TestTransfer_DestinationNotFound(t *testing.T) {
	// Подготовка
	service, repoMock, orgRepoMock, _ := newTestReportService(t)
	ctx := context.Background()

	// Ожидания
	orgRepoMock.EXPECT().
		GetByID(ctx, int64(99)).
		Return(nil, nil).
		Times(1)

	repoMock.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.Transfer(ctx, 5, 10, 99)

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTransfer_PublishFailureDoesNotFailTransfer(t *testing.T) {
	// Подготовка
	service, repoMock, orgRepoMock, publisherMock := newTestReportService(t)
	ctx := context.Background()
	dest := &models.Organization{ID: 7, Latitude: -6.9, Longitude: 107.6}
	report := &models.Report{ID: 10, Title: "Banjir", Latitude: -6.91, Longitude: 107.61}

	// Ожидания: передача уже записана, сбой доставки события ее не отменяет
	orgRepoMock.EXPECT().GetByID(ctx, int64(7)).Return(dest, nil).Times(1)
	repoMock.EXPECT().GetReport(ctx, int64(10)).Return(report, nil).Times(1)
	repoMock.EXPECT().Transfer(ctx, int64(10), int64(5), int64(7), gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(fmt.Errorf("redis down")).Times(1)

	// Действие
	err := service.Transfer(ctx, 5, 10, 7)

	// Проверки
	require.NoError(t, err)
}
