package models

// ApplicationStatus is free-form reference data, not a workflow state
type ApplicationStatus struct {
	StatusID          int64  `json:"StatusID"`
	StatusDescription string `json:"StatusDescription"`
}

// Application links a student to the unit they applied for
type Application struct {
	ApplicationID int64  `json:"ApplicationID"`
	StudentID     int64  `json:"StudentID"`
	UnitID        string `json:"UnitID"`
	StatusID      int64  `json:"StatusID"`
}

// Payment is an application fee payment
type Payment struct {
	PaymentID     int64   `json:"PaymentID"`
	ApplicationID int64   `json:"ApplicationID"`
	Amount        float64 `json:"Amount"`
	PaymentDate   string  `json:"PaymentDate"`
}
