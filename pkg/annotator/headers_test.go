package annotator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadersReflectConfiguration(t *testing.T) {
	backend := newBackend()
	backend.populations["1000GENOMES:phase_3:YRI"] = &Population{ID: 2, Name: "1000GENOMES:phase_3:YRI"}

	a := newTestAnnotator(t, Config{Population: "1000GENOMES:phase_3:YRI", R2Cutoff: 0.95}, backend, nil)

	headers := a.Headers()
	require.Contains(t, headers, LinkedVariantsField)
	assert.Contains(t, headers[LinkedVariantsField], "0.95")
	assert.Contains(t, headers[LinkedVariantsField], "1000GENOMES:phase_3:YRI")
}

func TestHeadersWithDefaults(t *testing.T) {
	a := newTestAnnotator(t, DefaultConfig(), newBackend(), nil)

	headers := a.Headers()
	assert.Contains(t, headers[LinkedVariantsField], "0.8")
	assert.Contains(t, headers[LinkedVariantsField], DefaultPopulation)
}

func TestFeatureKinds(t *testing.T) {
	a := newTestAnnotator(t, DefaultConfig(), newBackend(), nil)

	assert.Equal(t, []FeatureKind{Transcript, RegulatoryFeature, MotifFeature}, a.FeatureKinds())
}

func TestVersionIsStatic(t *testing.T) {
	a := newTestAnnotator(t, DefaultConfig(), newBackend(), nil)
	assert.NotEmpty(t, a.Version())
}
