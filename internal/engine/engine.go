// Package engine holds the game rules: flare impact classification, defense
// resolution, rank bands and leaderboard ranking. Everything here is pure
// computation over small value types; persistence lives in the repositories.
package engine

import "errors"

var ErrInvalidChoice = errors.New("defense choice must be between 1 and 4")

// Impact is the damage a flare inflicts before any defense mitigation.
type Impact struct {
	Power      int
	Satellites int
	Comms      int
	Message    string
}

// Health is the state of the three defended systems, each in [0,100].
type Health struct {
	PowerGrid      int
	Satellites     int
	Communications int
}

// Outcome is the result of resolving one defense action.
type Outcome struct {
	Health      Health
	EarthHealth int
	PointsCost  int
}

var impacts = map[byte]Impact{
	'A': {Power: 0, Satellites: 0, Comms: 0, Message: "Minimal impact"},
	'B': {Power: 5, Satellites: 3, Comms: 8, Message: "Minor radio interference"},
	'C': {Power: 15, Satellites: 10, Comms: 20, Message: "GPS and radio disruption"},
	'M': {Power: 30, Satellites: 25, Comms: 40, Message: "Potential power grid fluctuations"},
	'X': {Power: 50, Satellites: 40, Comms: 60, Message: "Critical infrastructure at risk!"},
}

// Classify maps a flare class letter to its impact. Unknown letters fall back
// to B: the feed occasionally carries classes we have no table entry for, and
// a moderate baseline beats rejecting the flare.
func Classify(class byte) Impact {
	if impact, ok := impacts[class]; ok {
		return impact
	}
	return impacts['B']
}

type strategy struct {
	name       string
	cost       int
	powerBonus int
	satBonus   int
	commBonus  int
}

var strategies = map[int]strategy{
	1: {name: "Satellite Shields", cost: 10, satBonus: 15},
	2: {name: "Grid Protection", cost: 15, powerBonus: 20},
	3: {name: "Communications Boost", cost: 8, commBonus: 12},
	4: {name: "Integrated Defense", cost: 20, powerBonus: 10, satBonus: 8, commBonus: 10},
}

// StrategyName returns the display name for a defense choice, or "" if the
// choice is out of range.
func StrategyName(choice int) string {
	return strategies[choice].name
}

// Resolve applies one flare impact against the current system health under the
// chosen defense strategy. The strategy's specialty systems absorb the loss
// minus a fixed bonus; everything else takes the raw loss. All fields are
// clamped to [0,100] and the full outcome is computed before anything is
// returned, so a failed call leaves no partial state behind.
func Resolve(choice int, impact Impact, current Health) (Outcome, error) {
	s, ok := strategies[choice]
	if !ok {
		return Outcome{}, ErrInvalidChoice
	}

	next := Health{
		PowerGrid:      clamp(current.PowerGrid - impact.Power + s.powerBonus),
		Satellites:     clamp(current.Satellites - impact.Satellites + s.satBonus),
		Communications: clamp(current.Communications - impact.Comms + s.commBonus),
	}

	return Outcome{
		Health:      next,
		EarthHealth: EarthHealth(next),
		PointsCost:  s.cost,
	}, nil
}

// EarthHealth is the floored mean of the three system values. Integer
// division is intentional: the rank thresholds depend on truncation, not
// rounding to nearest.
func EarthHealth(h Health) int {
	return (h.PowerGrid + h.Satellites + h.Communications) / 3
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
