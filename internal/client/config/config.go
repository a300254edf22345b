package config

import "time"

// Config holds runtime settings for the kouden CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - RealtimeURL: base URL of the websocket endpoint, e.g. "ws://127.0.0.1:8080".
//   - OnlineCheckInterval: how often the client checks server reachability.
//   - MutationTimeout: upper bound for a single remote write.
//   - PageSize: rows per page in list views.
//   - ReconnectBackoffMin / ReconnectBackoffMax: bounds for push channel reconnects.
//   - LocalDBPath: SQLite file holding offline login material and snapshots.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerEndpointAddr  string
	RealtimeURL         string
	OnlineCheckInterval time.Duration
	MutationTimeout     time.Duration
	PageSize            int
	ReconnectBackoffMin time.Duration
	ReconnectBackoffMax time.Duration
	LocalDBPath         string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RealtimeURL = "ws://127.0.0.1:8080"
	c.OnlineCheckInterval = 3 * time.Second
	c.MutationTimeout = 10 * time.Second
	c.PageSize = 10
	c.ReconnectBackoffMin = 500 * time.Millisecond
	c.ReconnectBackoffMax = 30 * time.Second
	c.LocalDBPath = "kouden.db"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
