package metrics

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// PrometheusAddr returns the listen address for the /metrics endpoint.
func (c Config) PrometheusAddr() string {
	if c.PrometheusPort == "" {
		return ":2112"
	}
	if c.PrometheusPort[0] == ':' {
		return c.PrometheusPort
	}
	return ":" + c.PrometheusPort
}
