package dto

import "github.com/yigit/admission/internal/app/models"

// Request bodies decode numeric fields into pointers so that a missing or
// null value fails the required rule instead of binding to zero.

// StudentRequest is the body for registering or updating a student
type StudentRequest struct {
	StudentID     *int64 `json:"StudentID" binding:"required,min=0,max=999"`
	Name          string `json:"Name" binding:"required,min=1,max=100"`
	Age           *int   `json:"Age" binding:"required,min=18"`
	Address       string `json:"Address" binding:"required,min=1,max=255"`
	ContactNumber string `json:"ContactNumber" binding:"required,min=10,max=15"`
}

// ToModel converts the validated request into a Student
func (r *StudentRequest) ToModel() *models.Student {
	return &models.Student{
		StudentID:     *r.StudentID,
		Name:          r.Name,
		Age:           *r.Age,
		Address:       r.Address,
		ContactNumber: r.ContactNumber,
	}
}

// StatusRequest is the body for an application status
type StatusRequest struct {
	StatusID          *int64 `json:"StatusID" binding:"required,min=0"`
	StatusDescription string `json:"StatusDescription" binding:"required,max=255"`
}

// ToModel converts the validated request into an ApplicationStatus
func (r *StatusRequest) ToModel() *models.ApplicationStatus {
	return &models.ApplicationStatus{
		StatusID:          *r.StatusID,
		StatusDescription: r.StatusDescription,
	}
}

// ApplicationRequest is the body for an application
type ApplicationRequest struct {
	ApplicationID *int64 `json:"ApplicationID" binding:"required,min=0"`
	StudentID     *int64 `json:"StudentID" binding:"required,min=0"`
	UnitID        string `json:"UnitID" binding:"required,max=20"`
	StatusID      *int64 `json:"StatusID" binding:"required,min=0"`
}

// ToModel converts the validated request into an Application
func (r *ApplicationRequest) ToModel() *models.Application {
	return &models.Application{
		ApplicationID: *r.ApplicationID,
		StudentID:     *r.StudentID,
		UnitID:        r.UnitID,
		StatusID:      *r.StatusID,
	}
}

// PaymentRequest is the body for a payment
type PaymentRequest struct {
	PaymentID     *int64   `json:"PaymentID" binding:"required,min=0"`
	ApplicationID *int64   `json:"ApplicationID" binding:"required,min=0"`
	Amount        *float64 `json:"Amount" binding:"required,min=0"`
	PaymentDate   string   `json:"PaymentDate" binding:"required,datetime=2006-01-02"`
}

// ToModel converts the validated request into a Payment
func (r *PaymentRequest) ToModel() *models.Payment {
	return &models.Payment{
		PaymentID:     *r.PaymentID,
		ApplicationID: *r.ApplicationID,
		Amount:        *r.Amount,
		PaymentDate:   r.PaymentDate,
	}
}

// UnitRequest is the body for an admission unit
type UnitRequest struct {
	UnitID      string `json:"UnitID" binding:"required,max=20"`
	UnitName    string `json:"UnitName" binding:"required,max=100"`
	MaxCapacity *int   `json:"MaxCapacity" binding:"required,min=0"`
}

// ToModel converts the validated request into a Unit
func (r *UnitRequest) ToModel() *models.Unit {
	return &models.Unit{
		UnitID:      r.UnitID,
		UnitName:    r.UnitName,
		MaxCapacity: *r.MaxCapacity,
	}
}

// ExamRequest is the body for an exam
type ExamRequest struct {
	ExamID   *int64 `json:"ExamID" binding:"required,min=0"`
	UnitID   string `json:"UnitID" binding:"required,max=20"`
	ExamName string `json:"ExamName" binding:"required,max=100"`
	MaxMarks *int   `json:"MaxMarks" binding:"required,min=0"`
}

// ToModel converts the validated request into an Exam
func (r *ExamRequest) ToModel() *models.Exam {
	return &models.Exam{
		ExamID:   *r.ExamID,
		UnitID:   r.UnitID,
		ExamName: r.ExamName,
		MaxMarks: *r.MaxMarks,
	}
}

// ExamScheduleRequest is the body for an exam schedule
type ExamScheduleRequest struct {
	ExamScheduleID *int64 `json:"ExamScheduleID" binding:"required,min=0"`
	ExamID         *int64 `json:"ExamID" binding:"required,min=0"`
	ExamDate       string `json:"ExamDate" binding:"required,datetime=2006-01-02"`
	ExamTime       string `json:"ExamTime" binding:"required,clock"`
	VenueID        *int64 `json:"VenueID" binding:"required,min=0"`
}

// ToModel converts the validated request into an ExamSchedule
func (r *ExamScheduleRequest) ToModel() *models.ExamSchedule {
	return &models.ExamSchedule{
		ExamScheduleID: *r.ExamScheduleID,
		ExamID:         *r.ExamID,
		ExamDate:       r.ExamDate,
		ExamTime:       r.ExamTime,
		VenueID:        *r.VenueID,
	}
}

// AdmitCardRequest is the body for an admit card
type AdmitCardRequest struct {
	AdmitCardID    *int64 `json:"AdmitCardID" binding:"required,min=0"`
	ApplicationID  *int64 `json:"ApplicationID" binding:"required,min=0"`
	ExamScheduleID *int64 `json:"ExamScheduleID" binding:"required,min=0"`
	AdmitDate      string `json:"AdmitDate" binding:"required,datetime=2006-01-02"`
}

// ToModel converts the validated request into an AdmitCard
func (r *AdmitCardRequest) ToModel() *models.AdmitCard {
	return &models.AdmitCard{
		AdmitCardID:    *r.AdmitCardID,
		ApplicationID:  *r.ApplicationID,
		ExamScheduleID: *r.ExamScheduleID,
		AdmitDate:      r.AdmitDate,
	}
}

// ResultRequest is the body for a result
type ResultRequest struct {
	ResultID  *int64 `json:"ResultID" binding:"required,min=0"`
	StudentID *int64 `json:"StudentID" binding:"required,min=0"`
	ExamID    *int64 `json:"ExamID" binding:"required,min=0"`
	Marks     *int   `json:"Marks" binding:"required,min=0"`
}

// ToModel converts the validated request into a Result
func (r *ResultRequest) ToModel() *models.Result {
	return &models.Result{
		ResultID:  *r.ResultID,
		StudentID: *r.StudentID,
		ExamID:    *r.ExamID,
		Marks:     *r.Marks,
	}
}
