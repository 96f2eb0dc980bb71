package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nagaralert/nagarhub/internal/pkg/models"
	"github.com/nagaralert/nagarhub/services/reports/mocks"
)

func setupReportUCTest(t *testing.T, cfg *models.Config) (*ReportUC, *mocks.MockReportRepo, *mocks.MockReportGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockReportRepo(ctrl)
	mockGW := mocks.NewMockReportGW(ctrl)
	if cfg == nil {
		cfg = &models.Config{}
	}
	uc := NewReportUC(cfg, mockRepo, mockGW)
	return uc, mockRepo, mockGW, ctrl
}

func TestComputePriority(t *testing.T) {
	testCases := []struct {
		name      string
		category  string
		requested string
		expected  string
	}{
		{"hazard keyword forces critical", "Fire Hazard", "", models.PriorityCritical},
		{"hazard match is case insensitive", "ROAD ACCIDENT", "normal", models.PriorityCritical},
		{"hazard beats requested downgrade", "fire", models.PriorityNormal, models.PriorityCritical},
		{"requested high honored", "Pothole", models.PriorityHigh, models.PriorityHigh},
		{"requested critical honored", "Garbage", models.PriorityCritical, models.PriorityCritical},
		{"requested level is case insensitive", "Pothole", "High", models.PriorityHigh},
		{"requested critical in caps honored", "Garbage", "CRITICAL", models.PriorityCritical},
		{"unknown requested falls back to normal", "Garbage", "urgent", models.PriorityNormal},
		{"empty requested falls back to normal", "Streetlight", "", models.PriorityNormal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, computePriority(tc.category, tc.requested))
		})
	}
}

func TestSubmitReport_VerifiedEarnsPoints(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupReportUCTest(t, nil)
	defer ctrl.Finish()

	input := &models.ReportInput{
		UserID:     "uid-1",
		Location:   &models.GeoPoint{Lat: 19.0760, Lng: 72.8777},
		Category:   "Pothole",
		AIVerified: true,
	}

	mockRepo.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *models.Report) error {
			assert.Equal(t, models.PriorityNormal, report.Priority)
			assert.Equal(t, models.StatusPending, report.Status)
			return nil
		})
	mockRepo.EXPECT().
		ApplyPointsDelta(gomock.Any(), "uid-1", int64(10)).
		Return(int64(10), nil)
	mockGW.EXPECT().
		PublishReportCreated(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := uc.SubmitReport(context.Background(), input)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.ReportID)
}

func TestSubmitReport_UnverifiedCostsPoints(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupReportUCTest(t, nil)
	defer ctrl.Finish()

	mockRepo.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().
		ApplyPointsDelta(gomock.Any(), "uid-1", int64(-5)).
		Return(int64(-5), nil)
	mockGW.EXPECT().PublishReportCreated(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.SubmitReport(context.Background(), &models.ReportInput{
		UserID:   "uid-1",
		Location: &models.GeoPoint{Lat: 18.5204, Lng: 73.8567},
		Category: "Garbage",
	})

	assert.NoError(t, err)
}

func TestSubmitReport_PointsFailureIsNotFatal(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupReportUCTest(t, nil)
	defer ctrl.Finish()

	mockRepo.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().
		ApplyPointsDelta(gomock.Any(), "uid-1", int64(-5)).
		Return(int64(0), errors.New("ledger down"))
	mockGW.EXPECT().PublishReportCreated(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.SubmitReport(context.Background(), &models.ReportInput{
		UserID:   "uid-1",
		Location: &models.GeoPoint{Lat: 18.5204, Lng: 73.8567},
		Category: "Garbage",
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
}

func TestSubmitReport_StoreFailureIsFatal(t *testing.T) {
	uc, mockRepo, _, ctrl := setupReportUCTest(t, nil)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		Return(errors.New("db unavailable"))

	result, err := uc.SubmitReport(context.Background(), &models.ReportInput{
		UserID:   "uid-1",
		Location: &models.GeoPoint{Lat: 18.5204, Lng: 73.8567},
		Category: "Pothole",
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to store report")
}

func TestSubmitReport_MissingFields(t *testing.T) {
	uc, _, _, ctrl := setupReportUCTest(t, nil)
	defer ctrl.Finish()

	point := &models.GeoPoint{Lat: 18.5204, Lng: 73.8567}

	_, err := uc.SubmitReport(context.Background(), &models.ReportInput{Category: "Pothole", Location: point})
	assert.Error(t, err)

	_, err = uc.SubmitReport(context.Background(), &models.ReportInput{UserID: "uid-1", Location: point})
	assert.Error(t, err)

	_, err = uc.SubmitReport(context.Background(), &models.ReportInput{UserID: "uid-1", Category: "Pothole"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "location is required")
}

func TestSubmitReport_DisconnectDoesNotCancelLaterSteps(t *testing.T) {
	cfg := &models.Config{}
	cfg.Broadcast.MatchAll = true
	uc, mockRepo, mockGW, ctrl := setupReportUCTest(t, cfg)
	defer ctrl.Finish()

	// Simulate a client that hangs up right after the request lands.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockRepo.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().
		ApplyPointsDelta(gomock.Any(), "uid-1", int64(10)).
		DoAndReturn(func(ctx context.Context, _ string, _ int64) (int64, error) {
			assert.NoError(t, ctx.Err())
			return int64(10), nil
		})
	mockGW.EXPECT().
		PublishReportCreated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *models.ReportCreatedEvent) error {
			assert.NoError(t, ctx.Err())
			return nil
		})
	mockRepo.EXPECT().
		GetBroadcastContacts(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]models.BroadcastContact, error) {
			assert.NoError(t, ctx.Err())
			return nil, nil
		})

	result, err := uc.SubmitReport(ctx, &models.ReportInput{
		UserID:     "uid-1",
		Location:   &models.GeoPoint{Lat: 19.0760, Lng: 72.8777},
		Category:   "Fire at depot",
		AIVerified: true,
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
}

func TestSubmitReport_HazardTriggersAlertFanOut(t *testing.T) {
	cfg := &models.Config{}
	cfg.Broadcast.MatchAll = true
	uc, mockRepo, mockGW, ctrl := setupReportUCTest(t, cfg)
	defer ctrl.Finish()

	contacts := []models.BroadcastContact{
		{PhoneNumber: "+911111111111", Locality: "Mumbai"},
		{PhoneNumber: "+912222222222", Locality: "Pune"},
		{PhoneNumber: "+913333333333", Locality: "Mumbai"},
	}

	mockRepo.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().ApplyPointsDelta(gomock.Any(), "uid-1", int64(10)).Return(int64(10), nil)
	mockGW.EXPECT().PublishReportCreated(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().GetBroadcastContacts(gomock.Any()).Return(contacts, nil)

	// One bad number must not block the remaining sends.
	mockGW.EXPECT().SendSMS(gomock.Any(), "+911111111111", gomock.Any()).Return(nil)
	mockGW.EXPECT().SendSMS(gomock.Any(), "+912222222222", gomock.Any()).Return(errors.New("delivery failed"))
	mockGW.EXPECT().SendSMS(gomock.Any(), "+913333333333", gomock.Any()).Return(nil)

	result, err := uc.SubmitReport(context.Background(), &models.ReportInput{
		UserID:     "uid-1",
		Location:   &models.GeoPoint{Lat: 19.0760, Lng: 72.8777},
		Category:   "Fire in market",
		AIVerified: true,
	})

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Contains(t, result.Message, "2 contacts")
}

func TestSubmitReport_NormalPrioritySkipsFanOut(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupReportUCTest(t, nil)
	defer ctrl.Finish()

	mockRepo.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().ApplyPointsDelta(gomock.Any(), "uid-1", int64(-5)).Return(int64(-5), nil)
	mockGW.EXPECT().PublishReportCreated(gomock.Any(), gomock.Any()).Return(nil)
	// No GetBroadcastContacts or SendSMS expectations: a normal report must
	// not touch the dispatcher.

	_, err := uc.SubmitReport(context.Background(), &models.ReportInput{
		UserID:   "uid-1",
		Location: &models.GeoPoint{Lat: 18.5204, Lng: 73.8567},
		Category: "Streetlight out",
	})

	assert.NoError(t, err)
}

func TestSubmitReport_PublishFailureIsNotFatal(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupReportUCTest(t, nil)
	defer ctrl.Finish()

	mockRepo.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().ApplyPointsDelta(gomock.Any(), "uid-1", int64(10)).Return(int64(10), nil)
	mockGW.EXPECT().
		PublishReportCreated(gomock.Any(), gomock.Any()).
		Return(errors.New("nats down"))

	result, err := uc.SubmitReport(context.Background(), &models.ReportInput{
		UserID:     "uid-1",
		Location:   &models.GeoPoint{Lat: 18.5204, Lng: 73.8567},
		Category:   "Pothole",
		AIVerified: true,
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
}
