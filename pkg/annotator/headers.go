package annotator

import (
	"fmt"
	"strconv"
)

// version is reported to the host for compatibility bookkeeping.
const version = "1.1.0"

// Headers returns the descriptive metadata for the fields this plugin
// contributes. The description reflects the configuration in effect,
// not the defaults.
func (a *Annotator) Headers() map[string]string {
	cutoff := strconv.FormatFloat(a.cfg.R2Cutoff, 'g', -1, 64)
	return map[string]string{
		LinkedVariantsField: fmt.Sprintf(
			"Variants in linkage disequilibrium with the input variant (r2 >= %s, population %s)",
			cutoff, a.population.Name,
		),
	}
}

// FeatureKinds declares the overlap annotation kinds the host should
// invoke this plugin for.
func (a *Annotator) FeatureKinds() []FeatureKind {
	return []FeatureKind{Transcript, RegulatoryFeature, MotifFeature}
}

// Version returns the plugin version string.
func (a *Annotator) Version() string {
	return version
}
