package annotator

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultPopulation is the reference cohort used when no population
	// parameter is supplied.
	DefaultPopulation = "1000GENOMES:pilot_1_CEU_low_coverage_panel"

	// DefaultR2Cutoff is the minimum r-squared value a pair must reach
	// to be reported.
	DefaultR2Cutoff = 0.8
)

type Config struct {
	// Name of the population LD values are computed against. Resolution
	// failure at startup is fatal.
	Population string `yaml:"population" envconfig:"LD_POPULATION"`

	// Pairs with r2 below this value are dropped. The value is not
	// range-checked; the upstream LD source owns the [0,1] contract. A
	// cutoff of 0 reports every pair; the 0.8 default is applied by
	// DefaultConfig and ParseParams, not by New.
	R2Cutoff float64 `yaml:"r2_cutoff" envconfig:"LD_R2_CUTOFF"`
}

// DefaultConfig returns a Config populated with the default population
// and r2 cutoff.
func DefaultConfig() Config {
	return Config{
		Population: DefaultPopulation,
		R2Cutoff:   DefaultR2Cutoff,
	}
}

// ParseParams parses the plugin's positional startup parameters, a
// comma-separated string of the form "<population>,<r2_cutoff>". Both
// parameters are optional; missing or blank positions keep their
// defaults. Positions beyond the second are ignored.
func ParseParams(params string) (Config, error) {
	cfg := DefaultConfig()

	if strings.TrimSpace(params) == "" {
		return cfg, nil
	}

	parts := strings.Split(params, ",")

	if pop := strings.TrimSpace(parts[0]); pop != "" {
		cfg.Population = pop
	}

	if len(parts) > 1 {
		if raw := strings.TrimSpace(parts[1]); raw != "" {
			cutoff, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return Config{}, fmt.Errorf("invalid r2 cutoff %q: %w", raw, err)
			}
			cfg.R2Cutoff = cutoff
		}
	}

	return cfg, nil
}
