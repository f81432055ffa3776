package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	UI struct {
		Locale       string `json:"locale"`
		SortPolarity string `json:"sort_polarity"`
		LogFile      string `json:"log_file"`
	} `json:"ui,omitempty"`

	Notifications struct {
		AutoDismiss     Duration `json:"auto_dismiss"`
		Flash           Duration `json:"flash"`
		Fade            Duration `json:"fade"`
		ClipboardNotice Duration `json:"clipboard_notice"`
	} `json:"notifications,omitempty"`

	Connectivity struct {
		ProbeURL      string   `json:"probe_url"`
		ProbeInterval Duration `json:"probe_interval"`
		ProbeTimeout  Duration `json:"probe_timeout"`
	} `json:"connectivity,omitempty"`

	Storage struct {
		Cache struct {
			DSN string `json:"dsn"`
		} `json:"cache,omitempty"`

		Downloads struct {
			Dir     string `json:"dir"`
			BaseURL string `json:"base_url"`
		} `json:"downloads,omitempty"`
	} `json:"storage,omitempty"`
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
		UI: UI{
			Locale:       jsonCfg.UI.Locale,
			SortPolarity: jsonCfg.UI.SortPolarity,
			LogFile:      jsonCfg.UI.LogFile,
		},
		Notifications: Notifications{
			AutoDismiss:     time.Duration(jsonCfg.Notifications.AutoDismiss),
			Flash:           time.Duration(jsonCfg.Notifications.Flash),
			Fade:            time.Duration(jsonCfg.Notifications.Fade),
			ClipboardNotice: time.Duration(jsonCfg.Notifications.ClipboardNotice),
		},
		Connectivity: Connectivity{
			ProbeURL:      jsonCfg.Connectivity.ProbeURL,
			ProbeInterval: time.Duration(jsonCfg.Connectivity.ProbeInterval),
			ProbeTimeout:  time.Duration(jsonCfg.Connectivity.ProbeTimeout),
		},
		Storage: Storage{
			Cache: Cache{
				DSN: jsonCfg.Storage.Cache.DSN,
			},
			Downloads: Downloads{
				Dir:     jsonCfg.Storage.Downloads.Dir,
				BaseURL: jsonCfg.Storage.Downloads.BaseURL,
			},
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
