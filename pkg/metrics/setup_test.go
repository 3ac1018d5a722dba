package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
)

func TestNewMetricsAppliesDefaults(t *testing.T) {
	m := NewMetrics(Config{Address: ":0"})

	assert.Equal(t, "ldlink", m.Namespace)
	assert.NotNil(t, m.Registry)
	assert.NotNil(t, m.registerer)
}

func TestMetricsLifecycleLogsThroughInjectedLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any()).MinTimes(1)
	log.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	m := NewMetrics(Config{Address: "127.0.0.1:0"})

	lc := fxtest.NewLifecycle(t)
	RegisterMetricsLifecycle(lc, m, log)

	lc.RequireStart()
	lc.RequireStop()
}
