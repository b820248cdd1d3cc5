package constants

import "time"

const (
	FlareFetchWindowDays = 7
	RecentFlareLimit     = 7
	ReportWindowDays     = 7
	TopPlayersLimit      = 10
	LastFetchDelay       = 10 * time.Second
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

const (
	ShutdownTimeout = 5 * time.Second
)

// PredictionConfidence is the fixed confidence stamped on weather reports.
const PredictionConfidence = 92.7

// SimulationClasses seed the local flare simulator when the DONKI feed is
// unreachable or empty.
var SimulationClasses = []string{"B3.2", "C1.5", "M2.1", "B7.8", "X1.3", "C5.6", "M4.2"}
