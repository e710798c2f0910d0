package indextesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
	rng *rand.Rand
}

type TestConfig struct {
	// Seed fixes the generated sizes so that runs are reproducible. It is
	// normal to leave it at some fixed value.
	Seed            int64
	TestLabelPrefix string
	// LogLevel defaults to INFO. Use DEBUG to see the index trace its cache.
	LogLevel string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:   t,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
	level := cfg.LogLevel
	if level == "" {
		level = "INFO"
	}
	logger.New(level)
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// RandomSizes returns n sizes drawn uniformly from [lo, hi).
func (c *TestContext) RandomSizes(n int, lo, hi float64) []float64 {
	sizes := make([]float64, n)
	for i := range sizes {
		sizes[i] = lo + c.rng.Float64()*(hi-lo)
	}
	return sizes
}

// RandomIntSizes returns n whole number sizes in [lo, hi]. Whole numbers keep
// offset sums exact, which makes equality assertions safe.
func (c *TestContext) RandomIntSizes(n int, lo, hi int) []float64 {
	sizes := make([]float64, n)
	for i := range sizes {
		sizes[i] = float64(lo + c.rng.Intn(hi-lo+1))
	}
	return sizes
}
