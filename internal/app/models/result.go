package models

// Result is a student's mark in an exam
type Result struct {
	ResultID  int64 `json:"ResultID"`
	StudentID int64 `json:"StudentID"`
	ExamID    int64 `json:"ExamID"`
	Marks     int   `json:"Marks"`
}

// RankedResult is a result joined with the student's name
type RankedResult struct {
	Name  string `json:"Name"`
	Marks int    `json:"Marks"`
}
