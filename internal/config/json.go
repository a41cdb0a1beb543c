package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tidwall/jsonc"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON names. The file
// may contain // and /* */ comments and trailing commas.
type StructuredJSONConfig struct {
	App struct {
		AdminUsername string   `json:"admin_username"`
		AdminPassword string   `json:"admin_password"`
		SessionTTL    Duration `json:"session_ttl"`
		LogLevel      string   `json:"log_level"`
		SiteName      string   `json:"site_name"`
	} `json:"app,omitempty"`

	Storage struct {
		DataDir        string `json:"data_dir"`
		UploadDir      string `json:"upload_dir"`
		StaticDir      string `json:"static_dir"`
		MaxUploadBytes int64  `json:"max_upload_bytes"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ReadTimeout     Duration `json:"read_timeout"`
		WriteTimeout    Duration `json:"write_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		SecureCookies   bool     `json:"secure_cookies"`
	} `json:"server,omitempty"`

	Notify struct {
		SMTPTimeout Duration `json:"smtp_timeout"`
	} `json:"notify,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(raw))).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AdminUsername: jsonCfg.App.AdminUsername,
			AdminPassword: jsonCfg.App.AdminPassword,
			SessionTTL:    time.Duration(jsonCfg.App.SessionTTL),
			LogLevel:      jsonCfg.App.LogLevel,
			SiteName:      jsonCfg.App.SiteName,
		},
		Storage: Storage{
			DataDir:        jsonCfg.Storage.DataDir,
			UploadDir:      jsonCfg.Storage.UploadDir,
			StaticDir:      jsonCfg.Storage.StaticDir,
			MaxUploadBytes: jsonCfg.Storage.MaxUploadBytes,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ReadTimeout:     time.Duration(jsonCfg.Server.ReadTimeout),
			WriteTimeout:    time.Duration(jsonCfg.Server.WriteTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			SecureCookies:   jsonCfg.Server.SecureCookies,
		},
		Notify: Notify{
			SMTPTimeout: time.Duration(jsonCfg.Notify.SMTPTimeout),
		},
	}

	return cfg, nil
}

// Duration accepts either a Go duration string ("30s") or a number of
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
