package repositories

import (
	"github.com/yigit/admission/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository      *StudentRepository
	StatusRepository       *StatusRepository
	ApplicationRepository  *ApplicationRepository
	PaymentRepository      *PaymentRepository
	UnitRepository         *UnitRepository
	ExamRepository         *ExamRepository
	ExamScheduleRepository *ExamScheduleRepository
	AdmitCardRepository    *AdmitCardRepository
	ResultRepository       *ResultRepository
}

// NewRepositories initializes all repositories
func NewRepositories(provider *db.Provider) *Repositories {
	return &Repositories{
		StudentRepository:      NewStudentRepository(provider),
		StatusRepository:       NewStatusRepository(provider),
		ApplicationRepository:  NewApplicationRepository(provider),
		PaymentRepository:      NewPaymentRepository(provider),
		UnitRepository:         NewUnitRepository(provider),
		ExamRepository:         NewExamRepository(provider),
		ExamScheduleRepository: NewExamScheduleRepository(provider),
		AdmitCardRepository:    NewAdmitCardRepository(provider),
		ResultRepository:       NewResultRepository(provider),
	}
}
