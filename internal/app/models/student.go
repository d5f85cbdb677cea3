package models

// Student is the payload for registering or updating a student. The contact
// number is stored in its own table but travels with the student.
type Student struct {
	StudentID     int64  `json:"StudentID"`
	Name          string `json:"Name"`
	Age           int    `json:"Age"`
	Address       string `json:"Address"`
	ContactNumber string `json:"ContactNumber"`
}

// StudentRecord is a student joined with its (optional) contact number
type StudentRecord struct {
	StudentID     int64   `json:"StudentID"`
	Name          string  `json:"Name"`
	Age           int     `json:"Age"`
	Address       string  `json:"Address"`
	ContactNumber *string `json:"ContactNumber"`
}

// ContactUpdate replaces a student's contact number
type ContactUpdate struct {
	ContactNumber string `json:"ContactNumber" binding:"required,min=10,max=15"`
}
