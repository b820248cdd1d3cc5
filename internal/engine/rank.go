package engine

import "sort"

// Rank is the performance tier assigned once, at session completion.
type Rank string

const (
	RankNone      Rank = ""
	RankBeginner  Rank = "BEGINNER"
	RankCadet     Rank = "CADET"
	RankCommander Rank = "COMMANDER"
	RankMaster    Rank = "MASTER"
)

var rankNames = map[Rank]string{
	RankBeginner:  "Space Beginner",
	RankCadet:     "Space Cadet",
	RankCommander: "Space Commander",
	RankMaster:    "Solar Defender Master",
}

// DisplayName returns the long form of a rank ("Space Cadet" etc).
func (r Rank) DisplayName() string {
	return rankNames[r]
}

// RankFor maps a final score to its tier. Thresholds are inclusive lower
// bounds, evaluated high to low.
func RankFor(score int) Rank {
	switch {
	case score >= 80:
		return RankMaster
	case score >= 50:
		return RankCommander
	case score >= 25:
		return RankCadet
	default:
		return RankBeginner
	}
}

// CompletedSession is the slice of a game session the leaderboard cares about.
type CompletedSession struct {
	SessionID string
	PlayerID  string
	Score     int
}

// Standing is one leaderboard slot. Positions are dense and 1-based.
type Standing struct {
	Position  int
	PlayerID  string
	SessionID string
	Score     int
}

// LeaderboardSize caps how many completed sessions make the board.
const LeaderboardSize = 100

// RankSessions computes the full leaderboard from the set of completed
// sessions: score descending, ties broken by session id ascending so repeated
// rebuilds over the same input produce the same order.
func RankSessions(sessions []CompletedSession) []Standing {
	ranked := make([]CompletedSession, len(sessions))
	copy(ranked, sessions)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].SessionID < ranked[j].SessionID
	})

	if len(ranked) > LeaderboardSize {
		ranked = ranked[:LeaderboardSize]
	}

	standings := make([]Standing, len(ranked))
	for i, s := range ranked {
		standings[i] = Standing{
			Position:  i + 1,
			PlayerID:  s.PlayerID,
			SessionID: s.SessionID,
			Score:     s.Score,
		}
	}
	return standings
}
