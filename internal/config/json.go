package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON names and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		VisitorSalt   string   `json:"visitor_salt"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		CORSOrigins    []string `json:"cors_origins"`
		AuthRateLimit  int      `json:"auth_rate_limit"`
		PublicURL      string   `json:"public_url"`
		DisableMetrics bool     `json:"disable_metrics"`
	} `json:"server,omitempty"`

	Storage struct {
		Blob struct {
			Dir      string `json:"dir"`
			InMemory bool   `json:"in_memory"`
		} `json:"blob,omitempty"`

		Events struct {
			DSN string `json:"dsn"`
		} `json:"events,omitempty"`
	} `json:"storage,omitempty"`

	Tracking struct {
		BatchSize            int      `json:"batch_size"`
		FlushInterval        Duration `json:"flush_interval"`
		QueueSize            int      `json:"queue_size"`
		SiteRate             float64  `json:"site_rate"`
		SiteBurst            int      `json:"site_burst"`
		SessionTimeout       Duration `json:"session_timeout"`
		RespectDNT           bool     `json:"respect_dnt"`
		DisableHostnameCheck bool     `json:"disable_hostname_check"`
	} `json:"tracking,omitempty"`

	Workers struct {
		AlertInterval      Duration `json:"alert_interval"`
		WebhookTimeout     Duration `json:"webhook_timeout"`
		WebhookMaxFailures int      `json:"webhook_max_failures"`
		CleanupInterval    Duration `json:"cleanup_interval"`
	} `json:"workers,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			VisitorSalt:   jsonCfg.App.VisitorSalt,
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			CORSOrigins:    jsonCfg.Server.CORSOrigins,
			AuthRateLimit:  jsonCfg.Server.AuthRateLimit,
			PublicURL:      jsonCfg.Server.PublicURL,
			DisableMetrics: jsonCfg.Server.DisableMetrics,
		},
		Storage: Storage{
			Blob: Blob{
				Dir:      jsonCfg.Storage.Blob.Dir,
				InMemory: jsonCfg.Storage.Blob.InMemory,
			},
			Events: Events{DSN: jsonCfg.Storage.Events.DSN},
		},
		Tracking: Tracking{
			BatchSize:            jsonCfg.Tracking.BatchSize,
			FlushInterval:        time.Duration(jsonCfg.Tracking.FlushInterval),
			QueueSize:            jsonCfg.Tracking.QueueSize,
			SiteRate:             jsonCfg.Tracking.SiteRate,
			SiteBurst:            jsonCfg.Tracking.SiteBurst,
			SessionTimeout:       time.Duration(jsonCfg.Tracking.SessionTimeout),
			RespectDNT:           jsonCfg.Tracking.RespectDNT,
			DisableHostnameCheck: jsonCfg.Tracking.DisableHostnameCheck,
		},
		Workers: Workers{
			AlertInterval:      time.Duration(jsonCfg.Workers.AlertInterval),
			WebhookTimeout:     time.Duration(jsonCfg.Workers.WebhookTimeout),
			WebhookMaxFailures: jsonCfg.Workers.WebhookMaxFailures,
			CleanupInterval:    time.Duration(jsonCfg.Workers.CleanupInterval),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
