package services

import "github.com/yigit/admission/internal/app/repositories"

// Services holds one service per entity
type Services struct {
	StudentService      StudentService
	StatusService       StatusService
	ApplicationService  ApplicationService
	PaymentService      PaymentService
	UnitService         UnitService
	ExamService         ExamService
	ExamScheduleService ExamScheduleService
	AdmitCardService    AdmitCardService
	ResultService       ResultService
}

// NewServices wires every service to its repositories
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		StudentService:      NewStudentService(repos.StudentRepository),
		StatusService:       NewStatusService(repos.StatusRepository),
		ApplicationService:  NewApplicationService(repos.ApplicationRepository),
		PaymentService:      NewPaymentService(repos.PaymentRepository),
		UnitService:         NewUnitService(repos.UnitRepository),
		ExamService:         NewExamService(repos.ExamRepository),
		ExamScheduleService: NewExamScheduleService(repos.ExamScheduleRepository),
		AdmitCardService:    NewAdmitCardService(repos.AdmitCardRepository),
		ResultService:       NewResultService(repos.ResultRepository, repos.ExamRepository),
	}
}
