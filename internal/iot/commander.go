// Package iot delivers device commands over MQTT. It is the publisher-side
// counterpart of the edge devices subscribed to facility/device/<id>/set.
package iot

import (
	"context"
	"encoding/json"
	"fmt"

	"facility-hub/internal/config"
	domainDevice "facility-hub/internal/domain/device"
	"facility-hub/internal/logger"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

const commandQoS = 1

// Commander publishes on/off commands for devices.
type Commander struct {
	client mqtt.Client
	cfg    *config.MQTTConfig
}

type commandPayload struct {
	DeviceID int64  `json:"device_id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	State    string `json:"state"`
}

// NewCommander builds a commander from config. Connect must be called before
// the first publish.
func NewCommander(cfg *config.MQTTConfig) *Commander {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetCleanSession(true)
	opts.SetConnectTimeout(cfg.ConnectTimeout)
	opts.SetAutoReconnect(true)

	opts.SetOnConnectHandler(func(client mqtt.Client) {
		logger.Info("MQTT client connected", zap.String("broker", cfg.Broker))
	})
	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		logger.Warn("MQTT connection lost", zap.Error(err))
	})

	return &Commander{
		client: mqtt.NewClient(opts),
		cfg:    cfg,
	}
}

// Connect establishes the broker connection.
func (c *Commander) Connect() error {
	token := c.client.Connect()
	token.Wait()

	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}

	return nil
}

// Disconnect closes the broker connection.
func (c *Commander) Disconnect() {
	c.client.Disconnect(250)
}

// SendState publishes a state command for the device and returns a note
// suitable for the audit log. Publishing honors the context deadline; paho
// itself has no per-publish context support, so the wait is bounded by the
// configured publish timeout.
func (c *Commander) SendState(ctx context.Context, d *domainDevice.Device, on bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	state := "OFF"
	if on {
		state = "ON"
	}

	payload, err := json.Marshal(commandPayload{
		DeviceID: d.ID,
		Name:     d.Name,
		Type:     d.Type,
		State:    state,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode command: %w", err)
	}

	topic := fmt.Sprintf(c.cfg.CommandTopic, d.ID)
	token := c.client.Publish(topic, commandQoS, false, payload)
	if !token.WaitTimeout(c.cfg.PublishTimeout) {
		return "", fmt.Errorf("%w: publish to %s timed out", domainDevice.ErrCommandFailed, topic)
	}
	if err := token.Error(); err != nil {
		return "", fmt.Errorf("%w: %v", domainDevice.ErrCommandFailed, err)
	}

	return fmt.Sprintf("Sent to %s: set %s", d.Name, state), nil
}
