package restld

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantkit/ldlink/pkg/annotator"
)

type stubLogger struct {
	warnings int
}

func (s *stubLogger) Info(string, error, ...map[string]interface{})  {}
func (s *stubLogger) Debug(string, error, ...map[string]interface{}) {}
func (s *stubLogger) Warn(string, error, ...map[string]interface{})  { s.warnings++ }
func (s *stubLogger) Error(string, error, ...map[string]interface{}) {}
func (s *stubLogger) Fatal(string, error, ...map[string]interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *stubLogger, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := &stubLogger{}
	client, err := NewClient(Config{Endpoint: server.URL}, log, nil)
	require.NoError(t, err)

	return client, log, server
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := NewClient(Config{}, &stubLogger{}, nil)
	require.Error(t, err)
}

func TestLDValuesParsesStringR2(t *testing.T) {
	var gotPath string
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"variation1":"rs1","variation2":"rs234","r2":"0.94261","d_prime":"0.98","population_name":"1000GENOMES:phase_3:CEU"},
			{"variation1":"rs5","variation2":"rs1","r2":"0.4","d_prime":"0.7","population_name":"1000GENOMES:phase_3:CEU"}
		]`))
	})

	pairs, err := client.LDValues(context.Background(),
		annotator.Placement{VariantName: "rs1", RegionName: "8"},
		&annotator.Population{Name: "1000GENOMES:phase_3:CEU"})
	require.NoError(t, err)

	assert.Equal(t, "/ld/human/rs1/1000GENOMES:phase_3:CEU", gotPath)
	require.Len(t, pairs, 2)
	assert.Equal(t, annotator.LDPair{VariationName1: "rs1", VariationName2: "rs234", R2: 0.94261}, pairs[0])
	assert.Equal(t, annotator.LDPair{VariationName1: "rs5", VariationName2: "rs1", R2: 0.4}, pairs[1])
}

func TestLDValuesSkipsUnparseableR2(t *testing.T) {
	client, log, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"variation1":"rs1","variation2":"rs2","r2":"not-a-number"},
			{"variation1":"rs1","variation2":"rs3","r2":"0.9"}
		]`))
	})

	pairs, err := client.LDValues(context.Background(),
		annotator.Placement{VariantName: "rs1"}, &annotator.Population{Name: "POP"})
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "rs3", pairs[0].VariationName2)
	assert.Equal(t, 1, log.warnings)
}

func TestLDValuesNotFound(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := client.LDValues(context.Background(),
		annotator.Placement{VariantName: "rs1"}, &annotator.Population{Name: "POP"})
	assert.ErrorIs(t, err, annotator.ErrNotFound)
}

func TestLDValuesServerErrorPropagates(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})

	_, err := client.LDValues(context.Background(),
		annotator.Placement{VariantName: "rs1"}, &annotator.Population{Name: "POP"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestLDValuesEmptyBody(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	pairs, err := client.LDValues(context.Background(),
		annotator.Placement{VariantName: "rs1"}, &annotator.Population{Name: "POP"})
	require.NoError(t, err)
	assert.Empty(t, pairs)
}
