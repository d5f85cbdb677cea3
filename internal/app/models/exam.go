package models

// Exam is an admission exam held for a unit
type Exam struct {
	ExamID   int64  `json:"ExamID"`
	UnitID   string `json:"UnitID"`
	ExamName string `json:"ExamName"`
	MaxMarks int    `json:"MaxMarks"`
}

// ExamSchedule places an exam at a date, time and venue
type ExamSchedule struct {
	ExamScheduleID int64  `json:"ExamScheduleID"`
	ExamID         int64  `json:"ExamID"`
	ExamDate       string `json:"ExamDate"`
	ExamTime       string `json:"ExamTime"`
	VenueID        int64  `json:"VenueID"`
}

// AdmitCard admits an application to a scheduled exam
type AdmitCard struct {
	AdmitCardID    int64  `json:"AdmitCardID"`
	ApplicationID  int64  `json:"ApplicationID"`
	ExamScheduleID int64  `json:"ExamScheduleID"`
	AdmitDate      string `json:"AdmitDate"`
}
