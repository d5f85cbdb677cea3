package bootstrap

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/admission/internal/db"
	"github.com/yigit/admission/internal/testutil"
)

// seedAdmissionGraph inserts one row per table so any entity can reference
// unit A, status 1, student 1, application 1, exam 1 and schedule 1.
func seedAdmissionGraph(t *testing.T, provider *db.Provider) {
	t.Helper()
	testutil.SeedExam(t, provider, "A", 1)
	testutil.SeedStudent(t, provider, 1, "Nusrat")
	testutil.Exec(t, provider, "INSERT INTO ApplicationStatus (StatusID, StatusDescription) VALUES (1, 'Submitted')")
	testutil.Exec(t, provider, "INSERT INTO Application (ApplicationID, StudentID, UnitID, StatusID) VALUES (1, 1, 'A', 1)")
	testutil.Exec(t, provider, "INSERT INTO ExamSchedule (ExamScheduleID, ExamID, ExamDate, ExamTime, VenueID) VALUES (1, 1, '2024-06-10', '09:30:00', 1)")
}

func TestEntityUpdateDeleteLifecycle(t *testing.T) {
	tests := []struct {
		name       string
		createPath string
		updateBase string
		deleteBase string
		id         string
		missingID  string
		body       gin.H
		table      string
		updated    string
		deleted    string
		notFound   string
	}{
		{
			name:       "student",
			createPath: "/api/students",
			updateBase: "/api/students/",
			deleteBase: "/api/students/",
			id:         "10",
			missingID:  "404",
			body:       studentPayload(10, 22),
			table:      "Student",
			updated:    "Data updated successfully",
			deleted:    "Data deleted successfully",
			notFound:   "Data not found",
		},
		{
			name:       "status",
			createPath: "/api/status/add",
			updateBase: "/api/status/update/",
			deleteBase: "/api/status/delete/",
			id:         "10",
			missingID:  "404",
			body:       gin.H{"StatusID": 10, "StatusDescription": "Accepted"},
			table:      "ApplicationStatus",
			updated:    "Status with ID 10 updated successfully",
			deleted:    "Status with ID 10 deleted successfully",
			notFound:   "Status with ID 404 not found",
		},
		{
			name:       "application",
			createPath: "/api/application/add",
			updateBase: "/api/application/update/",
			deleteBase: "/api/application/delete/",
			id:         "10",
			missingID:  "404",
			body:       gin.H{"ApplicationID": 10, "StudentID": 1, "UnitID": "A", "StatusID": 1},
			table:      "Application",
			updated:    "Application with ID 10 updated successfully",
			deleted:    "Application with ID 10 deleted successfully",
			notFound:   "Application with ID 404 not found",
		},
		{
			name:       "payment",
			createPath: "/api/payment/add",
			updateBase: "/api/payment/update/",
			deleteBase: "/api/payment/delete/",
			id:         "10",
			missingID:  "404",
			body:       gin.H{"PaymentID": 10, "ApplicationID": 1, "Amount": 500.5, "PaymentDate": "2024-05-01"},
			table:      "Payment",
			updated:    "Payment with ID 10 updated successfully",
			deleted:    "Payment with ID 10 deleted successfully",
			notFound:   "Payment with ID 404 not found",
		},
		{
			name:       "unit",
			createPath: "/api/unit/add",
			updateBase: "/api/unit/update/",
			deleteBase: "/api/unit/delete/",
			id:         "Z",
			missingID:  "Q",
			body:       gin.H{"UnitID": "Z", "UnitName": "Science", "MaxCapacity": 300},
			table:      "Unit",
			updated:    "Unit with ID Z updated successfully",
			deleted:    "Unit with ID Z deleted successfully",
			notFound:   "Unit with ID Q not found",
		},
		{
			name:       "exam",
			createPath: "/api/exam/add",
			updateBase: "/api/exam/update/",
			deleteBase: "/api/exam/delete/",
			id:         "10",
			missingID:  "404",
			body:       gin.H{"ExamID": 10, "UnitID": "A", "ExamName": "Written", "MaxMarks": 100},
			table:      "Exam",
			updated:    "Exam with ID 10 updated successfully",
			deleted:    "Exam with ID 10 deleted successfully",
			notFound:   "Exam with ID 404 not found",
		},
		{
			name:       "exam schedule",
			createPath: "/api/exam_schedule/add",
			updateBase: "/api/exam_schedule/update/",
			deleteBase: "/api/exam_schedule/delete/",
			id:         "10",
			missingID:  "404",
			body:       gin.H{"ExamScheduleID": 10, "ExamID": 1, "ExamDate": "2024-06-11", "ExamTime": "10:00", "VenueID": 3},
			table:      "ExamSchedule",
			updated:    "ExamSchedule with ID 10 updated successfully",
			deleted:    "ExamSchedule with ID 10 deleted successfully",
			notFound:   "ExamSchedule with ID 404 not found",
		},
		{
			name:       "admit card",
			createPath: "/api/admit_card/add",
			updateBase: "/api/admit_card/update/",
			deleteBase: "/api/admit_card/delete/",
			id:         "10",
			missingID:  "404",
			body:       gin.H{"AdmitCardID": 10, "ApplicationID": 1, "ExamScheduleID": 1, "AdmitDate": "2024-06-01"},
			table:      "AdmitCard",
			updated:    "AdmitCard with ID 10 updated successfully",
			deleted:    "AdmitCard with ID 10 deleted successfully",
			notFound:   "AdmitCard with ID 404 not found",
		},
		{
			name:       "result",
			createPath: "/api/result/add",
			updateBase: "/api/result/update/",
			deleteBase: "/api/result/delete/",
			id:         "10",
			missingID:  "404",
			body:       gin.H{"ResultID": 10, "StudentID": 1, "ExamID": 1, "Marks": 70},
			table:      "Result",
			updated:    "Result with ID 10 updated successfully",
			deleted:    "Result with ID 10 deleted successfully",
			notFound:   "Result with ID 404 not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, provider := newTestRouter(t)
			seedAdmissionGraph(t, provider)
			before := testutil.Count(t, provider, tt.table)

			rec := doRequest(t, router, http.MethodPut, tt.updateBase+tt.missingID, tt.body)
			assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
			assert.Equal(t, tt.notFound, decode(t, rec)["detail"])

			rec = doRequest(t, router, http.MethodDelete, tt.deleteBase+tt.missingID, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
			assert.Equal(t, tt.notFound, decode(t, rec)["detail"])

			rec = doRequest(t, router, http.MethodPost, tt.createPath, tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, before+1, testutil.Count(t, provider, tt.table))

			rec = doRequest(t, router, http.MethodPut, tt.updateBase+tt.id, tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, map[string]any{"message": tt.updated}, decode(t, rec))

			rec = doRequest(t, router, http.MethodDelete, tt.deleteBase+tt.id, nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, map[string]any{"message": tt.deleted}, decode(t, rec))
			assert.Equal(t, before, testutil.Count(t, provider, tt.table))

			rec = doRequest(t, router, http.MethodDelete, tt.deleteBase+tt.id, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
		})
	}
}

func TestMissingOrNullFieldsAreRejected(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
		field  string
		table  string
	}{
		{
			name:   "student without id",
			method: http.MethodPost,
			path:   "/api/students",
			body:   `{"Name": "Rina", "Age": 20, "Address": "Sylhet", "ContactNumber": "01811223344"}`,
			field:  "StudentID",
			table:  "Student",
		},
		{
			name:   "student with null id",
			method: http.MethodPost,
			path:   "/api/students",
			body:   `{"StudentID": null, "Name": "Rina", "Age": 20, "Address": "Sylhet", "ContactNumber": "01811223344"}`,
			field:  "StudentID",
			table:  "Student",
		},
		{
			name:   "student without age",
			method: http.MethodPost,
			path:   "/api/students",
			body:   `{"StudentID": 3, "Name": "Rina", "Address": "Sylhet", "ContactNumber": "01811223344"}`,
			field:  "Age",
			table:  "Student",
		},
		{
			name:   "result with only student id",
			method: http.MethodPost,
			path:   "/api/result/add",
			body:   `{"StudentID": 0}`,
			field:  "ResultID",
			table:  "Result",
		},
		{
			name:   "unit without capacity",
			method: http.MethodPost,
			path:   "/api/unit/add",
			body:   `{"UnitID": "C", "UnitName": "Commerce"}`,
			field:  "MaxCapacity",
			table:  "Unit",
		},
		{
			name:   "payment with null amount",
			method: http.MethodPost,
			path:   "/api/payment/add",
			body:   `{"PaymentID": 5, "ApplicationID": 1, "Amount": null, "PaymentDate": "2024-05-01"}`,
			field:  "Amount",
			table:  "Payment",
		},
		{
			name:   "exam update without max marks",
			method: http.MethodPut,
			path:   "/api/exam/update/1",
			body:   `{"ExamID": 1, "UnitID": "A", "ExamName": "Viva"}`,
			field:  "MaxMarks",
			table:  "Exam",
		},
		{
			name:   "admit card without schedule",
			method: http.MethodPost,
			path:   "/api/admit_card/add",
			body:   `{"AdmitCardID": 5, "ApplicationID": 1, "AdmitDate": "2024-06-01"}`,
			field:  "ExamScheduleID",
			table:  "AdmitCard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, provider := newTestRouter(t)
			seedAdmissionGraph(t, provider)
			before := testutil.Count(t, provider, tt.table)

			rec := doRequest(t, router, tt.method, tt.path, tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

			body := decode(t, rec)
			assert.Equal(t, "Request validation failed", body["detail"])
			errs, ok := body["errors"].([]any)
			require.True(t, ok)
			require.NotEmpty(t, errs)
			first := errs[0].(map[string]any)
			assert.Equal(t, tt.field, first["field"])
			assert.Equal(t, tt.field+" is required", first["message"])
			assert.Equal(t, before, testutil.Count(t, provider, tt.table))
		})
	}
}

func TestExplicitZeroIsAccepted(t *testing.T) {
	router, provider := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/status/add", `{"StatusID": 0, "StatusDescription": "Draft"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]any{"message": "Status added successfully", "StatusID": float64(0)}, decode(t, rec))
	assert.Equal(t, 1, testutil.Count(t, provider, "ApplicationStatus"))
}

func TestBlankUnitPathIsRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, tc := range []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/unit/%20", nil},
		{http.MethodPut, "/api/unit/update/%20", gin.H{"UnitID": " ", "UnitName": "Blank", "MaxCapacity": 1}},
		{http.MethodDelete, "/api/unit/delete/%20", nil},
	} {
		rec := doRequest(t, router, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, tc.method+" "+tc.path)
		assert.Equal(t, "UnitID cannot be blank", decode(t, rec)["detail"])
	}
}
