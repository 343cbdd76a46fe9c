package metrics

import "fmt"

// Config selects and configures the planning metrics sinks.
type Config struct {
	// PushgatewayURL enables the Prometheus sink when non-empty. A one-shot
	// planner cannot be scraped, so metrics are pushed instead.
	PushgatewayURL string `json:"pushgateway_url"`
	// PushJob is the job label used when pushing.
	PushJob string `json:"push_job"`

	InfluxEnabled bool   `json:"influx_enabled"`
	InfluxURL     string `json:"influx_url"`
	InfluxToken   string `json:"influx_token"`
	InfluxOrg     string `json:"influx_org"`
	InfluxBucket  string `json:"influx_bucket"`
}

// SetDefaults applies default sink settings.
func (c *Config) SetDefaults() {
	if c.PushJob == "" {
		c.PushJob = "laddtider"
	}
}

// Validate checks sink settings for enabled sinks.
func (c Config) Validate() error {
	if c.InfluxEnabled && c.InfluxURL == "" {
		return fmt.Errorf("influx_url is required when the influx sink is enabled")
	}
	return nil
}
