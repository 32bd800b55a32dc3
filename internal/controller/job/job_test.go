package job

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yana-hris/DevJobsAPI/internal/database"
	"github.com/yana-hris/DevJobsAPI/internal/model"
	"github.com/yana-hris/DevJobsAPI/internal/repository"
	"github.com/yana-hris/DevJobsAPI/internal/service"
	"github.com/yana-hris/DevJobsAPI/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeService records how often it was reached.
type fakeService struct {
	calls   int
	addID   uint
	addErr  error
	view    *model.JobView
	getErr  error
	updErr  error
	delErr  error
	lastUpd model.JobForm
}

func (f *fakeService) Add(_ context.Context, _ model.JobForm) (uint, error) {
	f.calls++
	return f.addID, f.addErr
}

func (f *fakeService) GetAll(context.Context) ([]model.JobView, error) {
	f.calls++
	if f.view == nil {
		return []model.JobView{}, f.getErr
	}
	return []model.JobView{*f.view}, f.getErr
}

func (f *fakeService) GetByID(context.Context, uint) (*model.JobView, error) {
	f.calls++
	return f.view, f.getErr
}

func (f *fakeService) Update(_ context.Context, form model.JobForm) error {
	f.calls++
	f.lastUpd = form
	return f.updErr
}

func (f *fakeService) Delete(context.Context, uint) error {
	f.calls++
	return f.delErr
}

func newRouter(svc JobService) *gin.Engine {
	jc := NewJobController(svc)
	r := gin.New()
	r.GET("/jobs", jc.GetJobs)
	r.GET("/jobs/:id", jc.GetJob)
	r.POST("/jobs", jc.CreateJob)
	r.PUT("/jobs/:id", jc.UpdateJob)
	r.DELETE("/jobs/:id", jc.DeleteJob)
	return r
}

func validBody(id uint) gin.H {
	return gin.H{
		"id":            id,
		"title":         "Backend Engineer with 5+ yrs",
		"description":   strings.Repeat("Own the Go services behind our marketplace. ", 2),
		"company":       "Acme",
		"location":      "Remote",
		"minExperience": 5,
		"maxExperience": 10,
		"workMode":      2,
		"jobType":       1,
		"level":         3,
		"salary":        90000,
		"employerId":    1,
	}
}

func TestUpdateJobIDMismatch(t *testing.T) {
	svc := &fakeService{}
	rec, resp := testutil.MakeJSONRequest(validBody(6), "", newRouter(svc), "/jobs/5", http.MethodPut)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Job ID mismatch", resp["message"])
	assert.Zero(t, svc.calls, "service must not be reached")
}

func TestUpdateJobNotFound(t *testing.T) {
	svc := &fakeService{updErr: service.ErrNotFound}
	rec, resp := testutil.MakeJSONRequest(validBody(5), "", newRouter(svc), "/jobs/5", http.MethodPut)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", resp["message"])
}

func TestUpdateJobFailure(t *testing.T) {
	svc := &fakeService{updErr: model.ErrInvalidEnumValue}
	rec, resp := testutil.MakeJSONRequest(validBody(5), "", newRouter(svc), "/jobs/5", http.MethodPut)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Error updating job", resp["message"])
}

func TestUpdateJobSuccess(t *testing.T) {
	svc := &fakeService{}
	rec, resp := testutil.MakeJSONRequest(validBody(5), "", newRouter(svc), "/jobs/5", http.MethodPut)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Job updated successfully", resp["message"])
	assert.Equal(t, uint(5), svc.lastUpd.ID)
	require.NotNil(t, svc.lastUpd.WorkMode)
	assert.Equal(t, 2, *svc.lastUpd.WorkMode)
}

func TestUpdateJobInvalidForm(t *testing.T) {
	svc := &fakeService{}
	body := validBody(5)
	body["title"] = "Dev"
	rec, resp := testutil.MakeJSONRequest(body, "", newRouter(svc), "/jobs/5", http.MethodPut)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errs, ok := resp["errors"].([]interface{})
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].(map[string]interface{})["field"])
	assert.Zero(t, svc.calls)
}

func TestDeleteJobNotFound(t *testing.T) {
	svc := &fakeService{delErr: service.ErrNotFound}
	rec, resp := testutil.MakeJSONRequest(nil, "", newRouter(svc), "/jobs/999", http.MethodDelete)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job with id 999 not found", resp["message"])
}

func TestDeleteJobResponses(t *testing.T) {
	rec, resp := testutil.MakeJSONRequest(nil, "", newRouter(&fakeService{}), "/jobs/3", http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Job deleted successfully", resp["message"])

	rec, resp = testutil.MakeJSONRequest(nil, "", newRouter(&fakeService{delErr: errors.New("boom")}), "/jobs/3", http.MethodDelete)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Error deleting job", resp["message"])
}

func TestGetJobNotFound(t *testing.T) {
	rec, resp := testutil.MakeJSONRequest(nil, "", newRouter(&fakeService{}), "/jobs/42", http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job with id 42 not found", resp["message"])
}

func TestInvalidPathID(t *testing.T) {
	svc := &fakeService{}
	// 9223372036854775808 is one above the largest BIGSERIAL id.
	for _, path := range []string{"/jobs/abc", "/jobs/-1", "/jobs/9223372036854775808"} {
		for _, method := range []string{http.MethodGet, http.MethodDelete, http.MethodPut} {
			rec, resp := testutil.MakeJSONRequest(validBody(1), "", newRouter(svc), path, method)
			assert.Equal(t, http.StatusBadRequest, rec.Code, method+" "+path)
			assert.Equal(t, "Invalid job id", resp["message"], method+" "+path)
		}
	}
	assert.Zero(t, svc.calls)
}

func TestCreateJobReloadFailure(t *testing.T) {
	svc := &fakeService{addID: 7, getErr: errors.New("connection reset")}
	rec, resp := testutil.MakeJSONRequest(validBody(0), "", newRouter(svc), "/jobs", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/jobs/7", rec.Header().Get("Location"))
	assert.Equal(t, float64(7), resp["id"])
	assert.Equal(t, 2, svc.calls)
}

func TestCreateJobFailure(t *testing.T) {
	svc := &fakeService{addErr: errors.New("conflicting write")}
	rec, resp := testutil.MakeJSONRequest(validBody(0), "", newRouter(svc), "/jobs", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Error creating job", resp["message"])
}

func TestCreateJobMalformedBody(t *testing.T) {
	svc := &fakeService{}
	body := validBody(0)
	body["jobType"] = "FullTime"
	rec, resp := testutil.MakeJSONRequest(body, "", newRouter(svc), "/jobs", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errs, ok := resp["errors"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, "jobType", errs[0].(map[string]interface{})["field"])
	assert.Zero(t, svc.calls)
}

// The handlers wired to the real service and an in-memory store.
func TestJobLifecycle(t *testing.T) {
	db, err := database.NewSQLiteInstance(t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.SeedTestData(db))

	r := newRouter(service.NewJobService(repository.NewJobRepository(db.DB)))
	body := validBody(0)
	body["employerId"] = database.TestEmployer2.ID

	rec, resp := testutil.MakeJSONRequest(body, "", r, "/jobs", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := uint(resp["id"].(float64))
	assert.Equal(t, "/jobs/"+itoa(id), rec.Header().Get("Location"))
	assert.Equal(t, "FullTime", resp["jobType"])

	rec, resp = testutil.MakeJSONRequest(nil, "", r, "/jobs/"+itoa(id), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "FullTime", resp["jobType"])
	assert.Equal(t, "Remote", resp["workMode"])
	assert.Equal(t, "Senior", resp["level"])

	body["id"] = id
	delete(body, "level")
	rec, _ = testutil.MakeJSONRequest(body, "", r, "/jobs/"+itoa(id), http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp = testutil.MakeJSONRequest(nil, "", r, "/jobs/"+itoa(id), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Junior", resp["level"])

	rec, _ = testutil.MakeJSONRequest(nil, "", r, "/jobs/"+itoa(id), http.MethodDelete)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp = testutil.MakeJSONRequest(nil, "", r, "/jobs/"+itoa(id), http.MethodDelete)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job with id "+itoa(id)+" not found", resp["message"])
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
