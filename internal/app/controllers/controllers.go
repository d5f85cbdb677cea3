package controllers

import "github.com/yigit/admission/internal/app/services"

// Controllers holds one controller per entity
type Controllers struct {
	Student      *StudentController
	Status       *StatusController
	Application  *ApplicationController
	Payment      *PaymentController
	Unit         *UnitController
	Exam         *ExamController
	ExamSchedule *ExamScheduleController
	AdmitCard    *AdmitCardController
	Result       *ResultController
}

// NewControllers builds every controller from the service container
func NewControllers(svc *services.Services) *Controllers {
	return &Controllers{
		Student:      NewStudentController(svc.StudentService),
		Status:       NewStatusController(svc.StatusService),
		Application:  NewApplicationController(svc.ApplicationService),
		Payment:      NewPaymentController(svc.PaymentService),
		Unit:         NewUnitController(svc.UnitService),
		Exam:         NewExamController(svc.ExamService),
		ExamSchedule: NewExamScheduleController(svc.ExamScheduleService),
		AdmitCard:    NewAdmitCardController(svc.AdmitCardService),
		Result:       NewResultController(svc.ResultService),
	}
}
