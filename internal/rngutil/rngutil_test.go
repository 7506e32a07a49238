package rngutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynconn/internal/rngutil"
)

func TestDeriveSeedIsDeterministic(t *testing.T) {
	require.Equal(t, rngutil.DeriveSeed(7, 3), rngutil.DeriveSeed(7, 3))
}

func TestDeriveSeedDistinguishesStreams(t *testing.T) {
	require.NotEqual(t, rngutil.DeriveSeed(7, 3), rngutil.DeriveSeed(7, 4))
	require.NotEqual(t, rngutil.DeriveSeed(7, 3), rngutil.DeriveSeed(8, 3))
}

func TestDeriveProducesReproducibleStream(t *testing.T) {
	a := rngutil.Derive(42, 5)
	b := rngutil.Derive(42, 5)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

func TestNewIsDeterministicForSameSeed(t *testing.T) {
	a := rngutil.New(123)
	b := rngutil.New(123)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}
