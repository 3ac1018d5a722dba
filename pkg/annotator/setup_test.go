package annotator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewEnablesExistingVariants(t *testing.T) {
	host := &fakeHost{}
	backend := newBackend()

	_, err := New(context.Background(), DefaultConfig(), Dependencies{
		Populations: backend,
		Variants:    backend,
		Placements:  backend,
		LD:          backend,
		Host:        host,
		Logger:      nopLogger{},
	})
	require.NoError(t, err)
	assert.True(t, host.existingEnabled, "annotator must enable the known-variant overlap prerequisite")
}

func TestNewUnknownPopulationIsFatal(t *testing.T) {
	backend := newBackend()

	_, err := New(context.Background(), Config{Population: "NO_SUCH_PANEL"}, Dependencies{
		Populations: backend,
		Variants:    backend,
		Placements:  backend,
		LD:          backend,
		Host:        &fakeHost{},
		Logger:      nopLogger{},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "NO_SUCH_PANEL")
}

type failingPopulations struct{ err error }

func (f failingPopulations) ResolvePopulation(context.Context, string) (*Population, error) {
	return nil, f.err
}

func TestNewPopulationRegistryFailureIsFatal(t *testing.T) {
	backend := newBackend()
	cause := errors.New("registry unreachable")

	_, err := New(context.Background(), DefaultConfig(), Dependencies{
		Populations: failingPopulations{err: cause},
		Variants:    backend,
		Placements:  backend,
		LD:          backend,
		Host:        &fakeHost{},
		Logger:      nopLogger{},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestNewWarnsWhenHostIsOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := NewMockLogger(ctrl)

	log.EXPECT().Warn(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	log.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	backend := newBackend()
	_, err := New(context.Background(), DefaultConfig(), Dependencies{
		Populations: backend,
		Variants:    backend,
		Placements:  backend,
		LD:          backend,
		Host:        &fakeHost{offline: true},
		Logger:      log,
	})
	require.NoError(t, err)
}

func TestAnnotateWarnsOnAmbiguousPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	backend := newBackend()
	// Neither side of the pair names the query variant: the first side is
	// kept and a warning is logged.
	backend.ld[placementKey("rs1", "8")] = []LDPair{
		{VariationName1: "rsA", VariationName2: "rsB", R2: 0.9},
	}

	a, err := New(context.Background(), DefaultConfig(), Dependencies{
		Populations: backend,
		Variants:    backend,
		Placements:  backend,
		LD:          backend,
		Host:        &fakeHost{},
		Logger:      log,
	})
	require.NoError(t, err)

	result, err := a.Annotate(context.Background(), site8(), map[string]string{
		ExistingVariationField: "rs1",
	})
	require.NoError(t, err)
	assert.Equal(t, "rsA:0.900", result[LinkedVariantsField])
}

func TestAnnotateSkipsSelfPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	backend := newBackend()
	backend.ld[placementKey("rs1", "8")] = []LDPair{
		{VariationName1: "rs1", VariationName2: "rs1", R2: 0.9},
	}

	a, err := New(context.Background(), DefaultConfig(), Dependencies{
		Populations: backend,
		Variants:    backend,
		Placements:  backend,
		LD:          backend,
		Host:        &fakeHost{},
		Logger:      log,
	})
	require.NoError(t, err)

	result, err := a.Annotate(context.Background(), site8(), map[string]string{
		ExistingVariationField: "rs1",
	})
	require.NoError(t, err)
	assert.Empty(t, result)
}
