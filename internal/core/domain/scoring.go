package domain

import "time"

// PenaltyStatus is the three-level standing derived from the error count.
type PenaltyStatus string

const (
	PenaltyNormal  PenaltyStatus = "normal"
	PenaltyWarning PenaltyStatus = "warning"
	PenaltyPenalty PenaltyStatus = "penalty"
)

// Score deltas and penalty thresholds for the gamified score.
const (
	CorrectOperationPoints = 10
	MistakePoints          = 5
	WarningErrorThreshold  = 3
	PenaltyErrorThreshold  = 5
)

// StudentScore is the gamified point total for the current trainee.
type StudentScore struct {
	UserID        string        `json:"user_id"`
	Score         int           `json:"score"`
	ErrorCount    int           `json:"error_count"`
	CorrectCount  int           `json:"correct_count"`
	PenaltyStatus PenaltyStatus `json:"penalty_status"`
}

// NewStudentScore returns the zero score for a trainee.
func NewStudentScore(userID string) StudentScore {
	return StudentScore{UserID: userID, PenaltyStatus: PenaltyNormal}
}

// ApplyCorrect returns the score after one correct operation: +10 points,
// +1 correct count. Error count and penalty status are untouched.
func (s StudentScore) ApplyCorrect() StudentScore {
	s.Score += CorrectOperationPoints
	s.CorrectCount++
	return s
}

// ApplyMistake returns the score after one recorded mistake: -5 points
// floored at zero, +1 error count, penalty status re-derived.
func (s StudentScore) ApplyMistake() StudentScore {
	s.Score -= MistakePoints
	if s.Score < 0 {
		s.Score = 0
	}
	s.ErrorCount++
	s.PenaltyStatus = derivePenaltyStatus(s.ErrorCount)
	return s
}

// derivePenaltyStatus is a function of the error count only.
func derivePenaltyStatus(errorCount int) PenaltyStatus {
	switch {
	case errorCount >= PenaltyErrorThreshold:
		return PenaltyPenalty
	case errorCount >= WarningErrorThreshold:
		return PenaltyWarning
	default:
		return PenaltyNormal
	}
}

// ManualScore is a free-form score a supervisor assigns to a named student,
// independent of the automatic StudentScore.
type ManualScore struct {
	ID             string    `json:"id"`
	StudentID      string    `json:"student_id"`
	StudentName    string    `json:"student_name"`
	AssignedBy     string    `json:"assigned_by"`
	AssignedByName string    `json:"assigned_by_name"`
	Score          int       `json:"score"`
	Comment        string    `json:"comment"`
	SessionID      string    `json:"session_id"`
	CreatedAt      time.Time `json:"created_at"`
}
