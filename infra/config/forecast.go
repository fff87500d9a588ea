package config

import (
	"fmt"

	"github.com/philipbinhu/Stock/internal/storage"
)

// Dataset describes where the price series are found.
type Dataset struct {
	Dir      string `json:"dir"`
	Prefix   string `json:"prefix"`
	Ext      string `json:"ext"`
	Count    int    `json:"count"`
	Location string `json:"location"`
}

// Model holds the hyperparameters of the predictive distribution.
type Model struct {
	Alpha        float64 `json:"alpha"`
	Beta         float64 `json:"beta"`
	Degree       int     `json:"degree"`
	MaxCondition float64 `json:"max_condition"`
	Inverter     string  `json:"inverter"`
}

// Output defines where the results of a run end up.
type Output struct {
	Reports string `json:"reports"`
	Metrics string `json:"metrics"`
	Plot    bool   `json:"plot"`
}

// Forecast is the configuration of a forecasting run.
type Forecast struct {
	Dataset  Dataset `json:"dataset"`
	Model    Model   `json:"model"`
	Ordering string  `json:"ordering"`
	Workers  int     `json:"workers"`
	Baseline bool    `json:"baseline"`
	Output   Output  `json:"output"`
}

// DefaultForecast returns the configuration for the reference datasets.
func DefaultForecast() Forecast {
	return Forecast{
		Dataset: Dataset{
			Dir:      storage.DefaultDir,
			Prefix:   "stock_data_",
			Ext:      ".csv",
			Count:    11,
			Location: "US/Pacific",
		},
		Model: Model{
			Alpha:        5e-3,
			Beta:         11.1,
			Degree:       7,
			MaxCondition: 1e16,
			Inverter:     "cholesky",
		},
		Ordering: "reverse",
		Workers:  1,
		Baseline: true,
		Output: Output{
			Reports: storage.ReportDir,
		},
	}
}

// LoadForecast loads the forecast config for the given key on top of the defaults.
func LoadForecast(key string) (Forecast, error) {
	cfg := DefaultForecast()
	if key == "" {
		return cfg, nil
	}
	if _, err := Load(key, &cfg); err != nil {
		return Forecast{}, err
	}
	if cfg.Dataset.Count <= 0 {
		return Forecast{}, fmt.Errorf("invalid dataset count %d for %s", cfg.Dataset.Count, key)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return cfg, nil
}
