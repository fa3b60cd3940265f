// Package stats records finished games for a play session and summarises them.
package stats

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// GameRecord is one finished game.
type GameRecord struct {
	SessionID string  `csv:"session_id"`
	Game      int     `csv:"game"`
	StartTime string  `csv:"start_time"`
	EndTime   string  `csv:"end_time"`
	Duration  float64 `csv:"duration_sec"`
	Score     uint64  `csv:"score"`
	Length    int     `csv:"length"`
	Steps     int     `csv:"steps"`
	Reason    string  `csv:"reason"` // crashed, cleared or step_limit
}

// Summary aggregates the scores of a session.
type Summary struct {
	SessionID    string  `csv:"session_id"`
	GamesPlayed  int     `csv:"games_played"`
	AverageScore float64 `csv:"average_score"`
	MedianScore  float64 `csv:"median_score"`
	StdDevScore  float64 `csv:"stddev_score"`
	MaxScore     uint64  `csv:"max_score"`
	MinScore     uint64  `csv:"min_score"`
	AverageSteps float64 `csv:"average_steps"`
	MaxLength    int     `csv:"max_length"`
}

// Session collects the games played in one run of the program.
// It is not safe for concurrent use.
type Session struct {
	ID    string
	Games []GameRecord
}

func NewSession() *Session {
	return &Session{
		ID:    uuid.New().String(),
		Games: make([]GameRecord, 0),
	}
}

// AddGame appends a finished game and returns the stored record.
func (s *Session) AddGame(score uint64, length, steps int, reason string, start, end time.Time) GameRecord {
	rec := GameRecord{
		SessionID: s.ID,
		Game:      len(s.Games) + 1,
		StartTime: start.UTC().Format(time.RFC3339Nano),
		EndTime:   end.UTC().Format(time.RFC3339Nano),
		Duration:  end.Sub(start).Seconds(),
		Score:     score,
		Length:    length,
		Steps:     steps,
		Reason:    reason,
	}
	s.Games = append(s.Games, rec)
	return rec
}

// GamesPlayed returns the number of recorded games.
func (s *Session) GamesPlayed() int {
	return len(s.Games)
}

// Summary computes aggregate statistics over every recorded game.
func (s *Session) Summary() Summary {
	sum := Summary{
		SessionID:   s.ID,
		GamesPlayed: len(s.Games),
	}
	if len(s.Games) == 0 {
		return sum
	}

	scores := make([]float64, len(s.Games))
	steps := make([]float64, len(s.Games))
	sum.MinScore = s.Games[0].Score
	for i, g := range s.Games {
		scores[i] = float64(g.Score)
		steps[i] = float64(g.Steps)
		sum.MaxScore = max(sum.MaxScore, g.Score)
		sum.MinScore = min(sum.MinScore, g.Score)
		sum.MaxLength = max(sum.MaxLength, g.Length)
	}

	sum.AverageScore = stat.Mean(scores, nil)
	sum.AverageSteps = stat.Mean(steps, nil)
	if len(scores) > 1 {
		sum.StdDevScore = stat.StdDev(scores, nil)
	}
	slices.Sort(scores)
	sum.MedianScore = median(scores)
	return sum
}

// median expects sorted input.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return stat.Mean(sorted[n/2-1:n/2+1], nil)
}
