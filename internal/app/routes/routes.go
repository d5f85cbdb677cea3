package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/admission/internal/app/controllers"
)

// SetupRouter registers every API route
func SetupRouter(router *gin.Engine, ctrl *controllers.Controllers) {
	api := router.Group("/api")

	// Student routes; the contact number is stored separately but created with the student
	students := api.Group("/students")
	{
		students.GET("", ctrl.Student.GetAllStudents)
		students.GET("/:id", ctrl.Student.GetStudentByID)
		students.POST("", ctrl.Student.CreateStudent)
		students.PUT("/:id", ctrl.Student.UpdateStudent)
		students.DELETE("/:id", ctrl.Student.DeleteStudent)
	}

	contact := api.Group("/contact")
	{
		contact.PUT("/:id", ctrl.Student.UpdateContact)
		contact.DELETE("/:id", ctrl.Student.DeleteContact)
	}

	status := api.Group("/status")
	{
		status.GET("/all", ctrl.Status.GetAllStatuses)
		status.GET("/:id", ctrl.Status.GetStatusByID)
		status.POST("/add", ctrl.Status.CreateStatus)
		status.PUT("/update/:id", ctrl.Status.UpdateStatus)
		status.DELETE("/delete/:id", ctrl.Status.DeleteStatus)
	}

	application := api.Group("/application")
	{
		application.GET("/all", ctrl.Application.GetAllApplications)
		application.GET("/:id", ctrl.Application.GetApplicationByID)
		application.POST("/add", ctrl.Application.CreateApplication)
		application.PUT("/update/:id", ctrl.Application.UpdateApplication)
		application.DELETE("/delete/:id", ctrl.Application.DeleteApplication)
	}

	payment := api.Group("/payment")
	{
		payment.GET("/all", ctrl.Payment.GetAllPayments)
		payment.GET("/:id", ctrl.Payment.GetPaymentByID)
		payment.POST("/add", ctrl.Payment.CreatePayment)
		payment.PUT("/update/:id", ctrl.Payment.UpdatePayment)
		payment.DELETE("/delete/:id", ctrl.Payment.DeletePayment)
	}

	exam := api.Group("/exam")
	{
		exam.GET("/all", ctrl.Exam.GetAllExams)
		exam.GET("/:id", ctrl.Exam.GetExamByID)
		exam.POST("/add", ctrl.Exam.CreateExam)
		exam.PUT("/update/:id", ctrl.Exam.UpdateExam)
		exam.DELETE("/delete/:id", ctrl.Exam.DeleteExam)
	}

	examSchedule := api.Group("/exam_schedule")
	{
		examSchedule.GET("/all", ctrl.ExamSchedule.GetAllExamSchedules)
		examSchedule.GET("/:id", ctrl.ExamSchedule.GetExamScheduleByID)
		examSchedule.POST("/add", ctrl.ExamSchedule.CreateExamSchedule)
		examSchedule.PUT("/update/:id", ctrl.ExamSchedule.UpdateExamSchedule)
		examSchedule.DELETE("/delete/:id", ctrl.ExamSchedule.DeleteExamSchedule)
	}

	admitCard := api.Group("/admit_card")
	{
		admitCard.GET("/all", ctrl.AdmitCard.GetAllAdmitCards)
		admitCard.GET("/:id", ctrl.AdmitCard.GetAdmitCardByID)
		admitCard.POST("/add", ctrl.AdmitCard.CreateAdmitCard)
		admitCard.PUT("/update/:id", ctrl.AdmitCard.UpdateAdmitCard)
		admitCard.DELETE("/delete/:id", ctrl.AdmitCard.DeleteAdmitCard)
	}

	result := api.Group("/result")
	{
		result.GET("/all", ctrl.Result.GetAllResults)
		result.GET("/highest_mark", ctrl.Result.GetHighestMark)
		result.GET("/lowest_mark", ctrl.Result.GetLowestMark)
		result.GET("/ordered_by_marks", ctrl.Result.GetOrderedByMarks)
		result.GET("/:id", ctrl.Result.GetResultByID)
		result.POST("/add", ctrl.Result.CreateResult)
		result.PUT("/update/:id", ctrl.Result.UpdateResult)
		result.DELETE("/delete/:id", ctrl.Result.DeleteResult)
	}

	unit := api.Group("/unit")
	{
		unit.GET("/show_all", ctrl.Unit.GetAllUnits)
		unit.GET("/:id", ctrl.Unit.GetUnitByID)
		unit.POST("/add", ctrl.Unit.CreateUnit)
		unit.PUT("/update/:id", ctrl.Unit.UpdateUnit)
		unit.DELETE("/delete/:id", ctrl.Unit.DeleteUnit)
	}
}
