package support

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainDevice "facility-hub/internal/domain/device"
	domainLocation "facility-hub/internal/domain/location"
	"facility-hub/internal/logger"
	appErrors "facility-hub/pkg/errors"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	m.Run()
}

type stubLocationRepo struct {
	locations []*domainLocation.Location
}

func (s *stubLocationRepo) Create(ctx context.Context, loc *domainLocation.Location) error {
	return nil
}

func (s *stubLocationRepo) GetByID(ctx context.Context, locationID int64) (*domainLocation.Location, error) {
	return nil, domainLocation.ErrLocationNotFound
}

func (s *stubLocationRepo) GetAll(ctx context.Context, onlyID *int64) ([]*domainLocation.Location, error) {
	return s.locations, nil
}

func (s *stubLocationRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.locations)), nil
}

type stubDeviceRepo struct {
	devices []*domainDevice.Device
}

func (s *stubDeviceRepo) Create(ctx context.Context, d *domainDevice.Device) error { return nil }

func (s *stubDeviceRepo) GetByID(ctx context.Context, deviceID int64) (*domainDevice.Device, error) {
	return nil, domainDevice.ErrDeviceNotFound
}

func (s *stubDeviceRepo) List(ctx context.Context, locationID *int64) ([]*domainDevice.Device, error) {
	return s.devices, nil
}

func (s *stubDeviceRepo) SetState(ctx context.Context, deviceID int64, on bool) error { return nil }

func (s *stubDeviceRepo) AppendLog(ctx context.Context, log *domainDevice.Log) error { return nil }

type recordingAsker struct {
	systemPrompt string
	userMessage  string
	answer       string
}

func (r *recordingAsker) Ask(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	r.systemPrompt = systemPrompt
	r.userMessage = userMessage
	return r.answer, nil
}

func TestAskRejectsEmptyMessage(t *testing.T) {
	svc := NewService(&stubLocationRepo{}, &stubDeviceRepo{}, &recordingAsker{})

	for _, msg := range []string{"", "   ", "\n\t", "\x00\x07", "  \x00  "} {
		_, err := svc.Ask(context.Background(), msg)
		require.ErrorIs(t, err, appErrors.ErrEmptyMessage)
	}
}

func TestAskStripsControlCharacters(t *testing.T) {
	asker := &recordingAsker{answer: "ok"}
	svc := NewService(&stubLocationRepo{}, &stubDeviceRepo{}, asker)

	_, err := svc.Ask(context.Background(), "is pump\x00 A\x07 on?")
	require.NoError(t, err)
	assert.Equal(t, "is pump A on?", asker.userMessage)
}

func TestAskGroundsPromptInFacilityState(t *testing.T) {
	locationRepo := &stubLocationRepo{locations: []*domainLocation.Location{
		{ID: 1, Name: "Dubai HQ", Country: "UAE", Lat: 25.2048, Lon: 55.2708},
	}}
	deviceRepo := &stubDeviceRepo{devices: []*domainDevice.Device{
		{ID: 5, Name: "Pump A", Type: "pump", IsOn: true, LocationID: 1},
	}}
	asker := &recordingAsker{answer: "Pump A is on."}
	svc := NewService(locationRepo, deviceRepo, asker)

	answer, err := svc.Ask(context.Background(), "  is pump A running?  ")
	require.NoError(t, err)
	assert.Equal(t, "Pump A is on.", answer)
	assert.Equal(t, "is pump A running?", asker.userMessage)

	assert.Contains(t, asker.systemPrompt, "IoT Customer Support Agent")
	assert.Contains(t, asker.systemPrompt, "Dubai HQ")
	assert.Contains(t, asker.systemPrompt, "Pump A")
}

func TestBuildContextJSONNestsDevicesUnderLocations(t *testing.T) {
	locationRepo := &stubLocationRepo{locations: []*domainLocation.Location{
		{ID: 1, Name: "Dubai HQ", Country: "UAE"},
		{ID: 2, Name: "Kollam Plant", Country: "India"},
	}}
	deviceRepo := &stubDeviceRepo{devices: []*domainDevice.Device{
		{ID: 5, Name: "Pump A", Type: "pump", LocationID: 1},
		{ID: 6, Name: "Light B", Type: "light", IsOn: true, LocationID: 1},
	}}
	svc := NewService(locationRepo, deviceRepo, &recordingAsker{})

	raw, err := svc.buildContextJSON(context.Background())
	require.NoError(t, err)

	var payload struct {
		Locations []struct {
			ID      int64 `json:"id"`
			Devices []struct {
				ID   int64 `json:"id"`
				IsOn bool  `json:"is_on"`
			} `json:"devices"`
		} `json:"locations"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	require.Len(t, payload.Locations, 2)
	assert.Len(t, payload.Locations[0].Devices, 2)
	// Locations without devices still carry an empty array, not null.
	assert.NotNil(t, payload.Locations[1].Devices)
	assert.Len(t, payload.Locations[1].Devices, 0)
}
