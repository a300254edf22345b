package config

import (
	"github.com/dmitrijs2005/kouden/internal/flagx"
	"github.com/dmitrijs2005/kouden/internal/timex"
)

// FileConfig is the on-disk form of Config. Intervals use timex.Duration so
// files can spell them as "3s" or "1m".
type FileConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	RealtimeURL         string         `json:"realtime_url" yaml:"realtime_url"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	MutationTimeout     timex.Duration `json:"mutation_timeout" yaml:"mutation_timeout"`
	PageSize            int            `json:"page_size" yaml:"page_size"`
	ReconnectBackoffMin timex.Duration `json:"reconnect_backoff_min" yaml:"reconnect_backoff_min"`
	ReconnectBackoffMax timex.Duration `json:"reconnect_backoff_max" yaml:"reconnect_backoff_max"`
	LocalDBPath         string         `json:"local_db_path" yaml:"local_db_path"`
	LogLevel            string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c or -config. Unset fields
// keep their current value. Read or decode errors panic.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	var fc FileConfig
	if err := flagx.DecodeConfigFile(path, &fc); err != nil {
		panic(err)
	}

	if fc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = fc.ServerEndpointAddr
	}
	if fc.RealtimeURL != "" {
		cfg.RealtimeURL = fc.RealtimeURL
	}
	if fc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.MutationTimeout.Duration > 0 {
		cfg.MutationTimeout = fc.MutationTimeout.Duration
	}
	if fc.PageSize > 0 {
		cfg.PageSize = fc.PageSize
	}
	if fc.ReconnectBackoffMin.Duration > 0 {
		cfg.ReconnectBackoffMin = fc.ReconnectBackoffMin.Duration
	}
	if fc.ReconnectBackoffMax.Duration > 0 {
		cfg.ReconnectBackoffMax = fc.ReconnectBackoffMax.Duration
	}
	if fc.LocalDBPath != "" {
		cfg.LocalDBPath = fc.LocalDBPath
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
