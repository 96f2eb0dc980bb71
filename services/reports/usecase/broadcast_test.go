package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

func TestLocalityFilter(t *testing.T) {
	filter := LocalityFilter("Mumbai")

	assert.True(t, filter(&models.BroadcastContact{Locality: "Mumbai"}))
	assert.True(t, filter(&models.BroadcastContact{Locality: "mumbai"}))
	assert.False(t, filter(&models.BroadcastContact{Locality: "Pune"}))

	empty := LocalityFilter("")
	assert.False(t, empty(&models.BroadcastContact{Locality: "Mumbai"}))
}

func TestBroadcast_FiltersByConfiguredLocality(t *testing.T) {
	cfg := &models.Config{}
	cfg.Broadcast.Locality = "Mumbai"
	uc, mockRepo, mockGW, ctrl := setupReportUCTest(t, cfg)
	defer ctrl.Finish()

	contacts := []models.BroadcastContact{
		{PhoneNumber: "+911111111111", Locality: "Mumbai"},
		{PhoneNumber: "+912222222222", Locality: "Pune"},
	}

	mockRepo.EXPECT().GetBroadcastContacts(gomock.Any()).Return(contacts, nil)
	mockGW.EXPECT().SendSMS(gomock.Any(), "+911111111111", "Water supply cut tomorrow").Return(nil)

	dispatched, err := uc.Broadcast(context.Background(), &models.BroadcastRequest{
		Message: "Water supply cut tomorrow",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, dispatched)
}

func TestBroadcast_RequestLocalityOverridesConfig(t *testing.T) {
	cfg := &models.Config{}
	cfg.Broadcast.Locality = "Mumbai"
	uc, mockRepo, mockGW, ctrl := setupReportUCTest(t, cfg)
	defer ctrl.Finish()

	contacts := []models.BroadcastContact{
		{PhoneNumber: "+911111111111", Locality: "Mumbai"},
		{PhoneNumber: "+912222222222", Locality: "Pune"},
	}

	mockRepo.EXPECT().GetBroadcastContacts(gomock.Any()).Return(contacts, nil)
	mockGW.EXPECT().SendSMS(gomock.Any(), "+912222222222", gomock.Any()).Return(nil)

	dispatched, err := uc.Broadcast(context.Background(), &models.BroadcastRequest{
		Message:  "Road closure",
		Locality: "Pune",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, dispatched)
}

func TestBroadcast_SkipsContactsWithoutPhoneNumber(t *testing.T) {
	cfg := &models.Config{}
	cfg.Broadcast.MatchAll = true
	uc, mockRepo, mockGW, ctrl := setupReportUCTest(t, cfg)
	defer ctrl.Finish()

	contacts := []models.BroadcastContact{
		{PhoneNumber: "", Locality: "Mumbai"},
		{PhoneNumber: "+911111111111", Locality: "Mumbai"},
	}

	mockRepo.EXPECT().GetBroadcastContacts(gomock.Any()).Return(contacts, nil)
	// Only the contact with a number may reach the gateway.
	mockGW.EXPECT().SendSMS(gomock.Any(), "+911111111111", gomock.Any()).Return(nil)

	dispatched, err := uc.Broadcast(context.Background(), &models.BroadcastRequest{
		Message: "Gas leak reported",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, dispatched)
}

func TestBroadcast_EmptyMessageRejected(t *testing.T) {
	uc, _, _, ctrl := setupReportUCTest(t, nil)
	defer ctrl.Finish()

	_, err := uc.Broadcast(context.Background(), &models.BroadcastRequest{})
	assert.Error(t, err)
}

func TestBroadcast_ContactLoadFailureYieldsZero(t *testing.T) {
	cfg := &models.Config{}
	cfg.Broadcast.MatchAll = true
	uc, mockRepo, _, ctrl := setupReportUCTest(t, cfg)
	defer ctrl.Finish()

	mockRepo.EXPECT().
		GetBroadcastContacts(gomock.Any()).
		Return(nil, errors.New("db unavailable"))

	dispatched, err := uc.Broadcast(context.Background(), &models.BroadcastRequest{
		Message: "Alert",
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, dispatched)
}

func TestRequestBroadcast_PublishesToStream(t *testing.T) {
	uc, _, mockGW, ctrl := setupReportUCTest(t, nil)
	defer ctrl.Finish()

	req := &models.BroadcastRequest{Message: "Flood warning", Locality: "Mumbai"}
	mockGW.EXPECT().PublishBroadcastRequested(gomock.Any(), req).Return(nil)

	err := uc.RequestBroadcast(context.Background(), req)
	assert.NoError(t, err)
}

func TestRequestBroadcast_EmptyMessageRejected(t *testing.T) {
	uc, _, _, ctrl := setupReportUCTest(t, nil)
	defer ctrl.Finish()

	err := uc.RequestBroadcast(context.Background(), &models.BroadcastRequest{})
	assert.Error(t, err)
}
