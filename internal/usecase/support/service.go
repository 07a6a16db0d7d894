package support

import (
	"context"
	"encoding/json"
	"fmt"

	domainDevice "facility-hub/internal/domain/device"
	domainLocation "facility-hub/internal/domain/location"
	"facility-hub/internal/llm"
	"facility-hub/internal/logger"
	appErrors "facility-hub/pkg/errors"
	"facility-hub/pkg/utils"

	"go.uber.org/zap"
)

const systemPrompt = "You are an IoT Customer Support Agent. Be concise and actionable. " +
	"When applicable, use the provided JSON context of locations and devices to answer. " +
	"NEVER invent devices or locations that are not in context."

// Service answers support questions with the current facility state as
// grounding context.
type Service struct {
	locationRepo domainLocation.Repository
	deviceRepo   domainDevice.Repository
	asker        llm.Asker
}

// NewService creates a new support service
func NewService(locationRepo domainLocation.Repository, deviceRepo domainDevice.Repository, asker llm.Asker) *Service {
	return &Service{
		locationRepo: locationRepo,
		deviceRepo:   deviceRepo,
		asker:        asker,
	}
}

type contextDevice struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	IsOn bool   `json:"is_on"`
}

type contextLocation struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Country string          `json:"country"`
	Lat     float64         `json:"lat"`
	Lon     float64         `json:"lon"`
	Devices []contextDevice `json:"devices"`
}

// Ask sanitizes the message, assembles the context JSON and queries the LLM.
func (s *Service) Ask(ctx context.Context, message string) (string, error) {
	message = utils.SanitizeText(message)
	if message == "" {
		return "", appErrors.ErrEmptyMessage
	}

	contextJSON, err := s.buildContextJSON(ctx)
	if err != nil {
		return "", err
	}

	answer, err := s.asker.Ask(ctx, systemPrompt+"\n\nContext JSON:\n"+contextJSON, message)
	if err != nil {
		logger.Error("Support query failed", zap.Error(err))
		return "", err
	}

	return answer, nil
}

func (s *Service) buildContextJSON(ctx context.Context) (string, error) {
	locations, err := s.locationRepo.GetAll(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to load locations: %w", err)
	}
	devices, err := s.deviceRepo.List(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to load devices: %w", err)
	}

	byLocation := make(map[int64][]contextDevice)
	for _, d := range devices {
		byLocation[d.LocationID] = append(byLocation[d.LocationID], contextDevice{
			ID:   d.ID,
			Name: d.Name,
			Type: d.Type,
			IsOn: d.IsOn,
		})
	}

	payload := struct {
		Locations []contextLocation `json:"locations"`
	}{Locations: make([]contextLocation, 0, len(locations))}

	for _, l := range locations {
		devs := byLocation[l.ID]
		if devs == nil {
			devs = []contextDevice{}
		}
		payload.Locations = append(payload.Locations, contextLocation{
			ID:      l.ID,
			Name:    l.Name,
			Country: l.Country,
			Lat:     l.Lat,
			Lon:     l.Lon,
			Devices: devs,
		})
	}

	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode context: %w", err)
	}

	return string(raw), nil
}
