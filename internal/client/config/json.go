package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/flagx"
	"github.com/dmitrijs2005/taskboard/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerBaseURL       string         `json:"server_base_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJson overlays Config with values loaded from a JSON file resolved
// from the -c or -config flags. If no path is given, nothing is loaded.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerBaseURL = jc.ServerBaseURL
	cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
}
