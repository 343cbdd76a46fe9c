// Package mqtt publishes the rendered schedule to an MQTT broker so the
// inverter controller can pick it up. The message is retained: a controller
// reconnecting later still receives the current plan.
package mqtt

import (
	"fmt"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/patriknoomi/laddtider/core/model"
	"github.com/patriknoomi/laddtider/core/schedule"
	"github.com/patriknoomi/laddtider/infra/logger"
)

// Config defines the broker connection and target topic.
type Config struct {
	Enabled        bool   `json:"enabled"`
	Broker         string `json:"broker"`
	ClientID       string `json:"client_id"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	Topic          string `json:"topic"`
	QoS            byte   `json:"qos"`
	Retain         bool   `json:"retain"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// SetDefaults applies connection defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "laddtider"
	}
	if c.Topic == "" {
		c.Topic = "laddtider/schedule"
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 5
	}
}

// Validate checks the connection settings when publishing is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("broker is required when mqtt is enabled")
	}
	if c.QoS > 2 {
		return fmt.Errorf("qos must be 0, 1 or 2, got %d", c.QoS)
	}
	return nil
}

type pahoClient interface {
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

// newMQTTClient can be overridden in tests to inject a fake client.
var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// SchedulePublisher pushes rendered schedules to the configured topic.
type SchedulePublisher struct {
	cli     pahoClient
	cfg     Config
	timeout time.Duration
	log     logger.Logger
}

// NewSchedulePublisher connects to the broker.
func NewSchedulePublisher(cfg Config) (*SchedulePublisher, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password)
	cli := newMQTTClient(opts)
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	tok := cli.Connect()
	if !tok.WaitTimeout(timeout) {
		return nil, fmt.Errorf("mqtt connect to %s: timeout", cfg.Broker)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect to %s: %w", cfg.Broker, err)
	}
	return &SchedulePublisher{
		cli:     cli,
		cfg:     cfg,
		timeout: timeout,
		log:     logger.New("mqtt-publisher"),
	}, nil
}

// Publish sends the schedule as newline-separated window lines. An empty
// schedule publishes an empty payload, clearing any retained plan.
func (p *SchedulePublisher) Publish(s model.Schedule) error {
	payload := strings.Join(schedule.Lines(s), "\n")
	tok := p.cli.Publish(p.cfg.Topic, p.cfg.QoS, p.cfg.Retain, payload)
	if !tok.WaitTimeout(p.timeout) {
		return fmt.Errorf("publish to %s: timeout", p.cfg.Topic)
	}
	if err := tok.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.cfg.Topic, err)
	}
	p.log.Infof("published %d schedule ranges to %s (plan %s)", len(s.Ranges), p.cfg.Topic, s.PlanID)
	return nil
}

// Close disconnects from the broker.
func (p *SchedulePublisher) Close() {
	p.cli.Disconnect(250)
}
