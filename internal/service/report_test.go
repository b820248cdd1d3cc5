package service

import (
	"context"
	"testing"
	"time"

	"solar-defender/internal/constants"
	"solar-defender/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReportEmptyWindow(t *testing.T) {
	stack := newTestStack(t)
	reports := NewReportService(stack.flares, stack.reports, zerolog.Nop())
	ctx := context.Background()

	report, err := reports.Generate(ctx)
	require.NoError(t, err)

	assert.Zero(t, report.Report.TotalFlares)
	assert.Zero(t, report.Report.RiskPercentage)
	assert.Nil(t, report.Strongest)
	assert.Empty(t, report.Flares)
	assert.InDelta(t, constants.PredictionConfidence, report.Report.PredictionConfidence, 0.001)

	stored, err := stack.reports.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, report.Report.ID, stored.ID)
}

func TestGenerateReportWeightsRisk(t *testing.T) {
	stack := newTestStack(t)
	reports := NewReportService(stack.flares, stack.reports, zerolog.Nop())
	ctx := context.Background()
	now := time.Now().UTC()

	seed := []domain.SolarFlare{
		{FlareID: "fx", ClassType: "X1.3", FlareClass: "X", Intensity: 1.3, BeginTime: now.Add(-1 * time.Hour), CreatedAt: now},
		{FlareID: "fm", ClassType: "M2.1", FlareClass: "M", Intensity: 2.1, BeginTime: now.Add(-2 * time.Hour), CreatedAt: now},
		{FlareID: "fc", ClassType: "C5.6", FlareClass: "C", Intensity: 5.6, BeginTime: now.Add(-3 * time.Hour), CreatedAt: now},
	}
	require.NoError(t, stack.flares.UpsertBatch(ctx, seed))

	report, err := reports.Generate(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Report.TotalFlares)
	// X counts triple, M double, C single: (3+2+1)/(3*3).
	assert.InDelta(t, 66.666, report.Report.RiskPercentage, 0.01)

	require.NotNil(t, report.Strongest)
	assert.Equal(t, "fc", report.Strongest.FlareID)
	require.NotNil(t, report.Report.StrongestFlareID)
	assert.Equal(t, "fc", *report.Report.StrongestFlareID)

	require.Len(t, report.Flares, 3)
	levels := map[string]string{}
	for _, a := range report.Flares {
		levels[a.Flare.FlareClass] = a.Risk.Level
	}
	assert.Equal(t, "EXTREME", levels["X"])
	assert.Equal(t, "HIGH", levels["M"])
	assert.Equal(t, "MEDIUM", levels["C"])
}
