package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessRisk(t *testing.T) {
	assert.Equal(t, "EXTREME", AssessRisk('X').Level)
	assert.Equal(t, "HIGH", AssessRisk('M').Level)
	assert.Equal(t, "MEDIUM", AssessRisk('C').Level)
	assert.Equal(t, "LOW", AssessRisk('A').Level)
	assert.Equal(t, "LOW-MEDIUM", AssessRisk('B').Level)
	assert.Equal(t, "LOW-MEDIUM", AssessRisk('?').Level)
}

func TestRiskWeight(t *testing.T) {
	assert.Equal(t, 3, RiskWeight('X'))
	assert.Equal(t, 2, RiskWeight('M'))
	assert.Equal(t, 1, RiskWeight('C'))
	assert.Equal(t, 1, RiskWeight('B'))
	assert.Equal(t, 1, RiskWeight('A'))
	assert.Equal(t, 1, RiskWeight('Z'))
}
