package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/futureletter/internal/flagx"
	"github.com/dmitrijs2005/futureletter/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields leave the current value untouched.
type JsonConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr"`
	AppID              *string         `json:"app_id"`
	InitialAuthToken   *string         `json:"initial_auth_token"`
	LocalDBPath        *string         `json:"local_db_path"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	AnimationDelay     *timex.Duration `json:"animation_delay"`
	DateLayout         *string         `json:"date_layout"`
	LogLevel           *string         `json:"log_level"`
}

// parseJson overlays cfg with values loaded from the file named by -c,
// -config or CONFIG. Read and unmarshal errors panic.
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

	setIf(&cfg.ServerEndpointAddr, jc.ServerEndpointAddr)
	setIf(&cfg.AppID, jc.AppID)
	setIf(&cfg.InitialAuthToken, jc.InitialAuthToken)
	setIf(&cfg.LocalDBPath, jc.LocalDBPath)
	setIf(&cfg.DateLayout, jc.DateLayout)
	setIf(&cfg.LogLevel, jc.LogLevel)

	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.AnimationDelay != nil {
		cfg.AnimationDelay = jc.AnimationDelay.Duration
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
