package models

// Unit is an admission unit (faculty/department intake) keyed by a code
type Unit struct {
	UnitID      string `json:"UnitID"`
	UnitName    string `json:"UnitName"`
	MaxCapacity int    `json:"MaxCapacity"`
}
