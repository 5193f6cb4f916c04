package dto

// CreateManualScoreRequest is a supervisor's free-form score for a student.
type CreateManualScoreRequest struct {
	StudentName string `json:"student_name" binding:"required"`
	Score       int    `json:"score" binding:"required"`
	Comment     string `json:"comment"`
}

// UpdateManualScoreRequest edits an existing manual score entry.
type UpdateManualScoreRequest struct {
	Score   int    `json:"score" binding:"required"`
	Comment string `json:"comment"`
}

// StudentScoreSummary folds a student's manual scores into one row.
type StudentScoreSummary struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	Total       int    `json:"total"`
	Count       int    `json:"count"`
}
