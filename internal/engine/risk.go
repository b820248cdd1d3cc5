package engine

// Risk is the space-weather assessment for a flare class, used by the
// weather report endpoints rather than the game loop.
type Risk struct {
	Level   string
	Color   string
	Effects []string
}

var risks = map[byte]Risk{
	'A': {Level: "LOW", Color: "#00FF00", Effects: []string{"Minimal impact"}},
	'B': {Level: "LOW-MEDIUM", Color: "#7CFC00", Effects: []string{"Radio static"}},
	'C': {Level: "MEDIUM", Color: "#FFD700", Effects: []string{"GPS errors", "Radio blackouts"}},
	'M': {Level: "HIGH", Color: "#FF8C00", Effects: []string{"Power grid fluctuations", "Astronaut risk"}},
	'X': {Level: "EXTREME", Color: "#FF0000", Effects: []string{"Satellite damage", "Global blackouts"}},
}

// AssessRisk returns the risk profile for a flare class letter, defaulting to
// B like Classify does.
func AssessRisk(class byte) Risk {
	if r, ok := risks[class]; ok {
		return r
	}
	return risks['B']
}

// RiskWeight feeds the weekly risk percentage: X counts triple, M double,
// everything else single.
func RiskWeight(class byte) int {
	switch class {
	case 'X':
		return 3
	case 'M':
		return 2
	default:
		return 1
	}
}
