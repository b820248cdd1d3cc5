package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"solar-defender/internal/constants"
	"solar-defender/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateStoresFlaggedFlares(t *testing.T) {
	stack := newTestStack(t)
	flares := NewFlareService(nil, stack.flares, zerolog.Nop())
	ctx := context.Background()

	simulated, err := flares.Simulate(ctx)
	require.NoError(t, err)
	require.Len(t, simulated, len(constants.SimulationClasses))

	for i, f := range simulated {
		assert.True(t, f.IsSimulation, "flare %d", i)
		assert.True(t, strings.HasPrefix(f.FlareID, "SIMULATION-FLARE-"), "flare %d id %s", i, f.FlareID)
		assert.Equal(t, constants.SimulationClasses[i], f.ClassType)
		assert.NotEmpty(t, f.RiskLevel)
	}

	// Six hours apart, newest first.
	for i := 1; i < len(simulated); i++ {
		gap := simulated[i-1].BeginTime.Sub(simulated[i].BeginTime)
		assert.Equal(t, 6*time.Hour, gap)
	}

	stored, err := stack.flares.List(ctx, constants.DBBatchSize)
	require.NoError(t, err)
	assert.Len(t, stored, len(constants.SimulationClasses))
}

func TestRecentFallsBackToSimulation(t *testing.T) {
	stack := newTestStack(t)
	flares := NewFlareService(nil, stack.flares, zerolog.Nop())

	recent, err := flares.Recent(context.Background(), 7)
	require.NoError(t, err)
	require.NotEmpty(t, recent)
	assert.True(t, recent[0].IsSimulation)
}

func TestRecentPrefersStoredFlares(t *testing.T) {
	stack := newTestStack(t)
	flares := NewFlareService(nil, stack.flares, zerolog.Nop())
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, stack.flares.UpsertBatch(ctx, []domain.SolarFlare{{
		FlareID:    "real-1",
		ClassType:  "M2.1",
		FlareClass: "M",
		Intensity:  2.1,
		BeginTime:  now.Add(-2 * time.Hour),
		RiskLevel:  "HIGH",
		RiskColor:  "#FF8C00",
		CreatedAt:  now,
	}}))

	recent, err := flares.Recent(ctx, 7)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "real-1", recent[0].FlareID)
	assert.False(t, recent[0].IsSimulation)
}

func TestListClampsLimit(t *testing.T) {
	stack := newTestStack(t)
	flares := NewFlareService(nil, stack.flares, zerolog.Nop())

	list, err := flares.List(context.Background(), -1)
	require.NoError(t, err)
	assert.Empty(t, list)
}
