package admin

import (
	"net/http"
	"os"
	"strconv"
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

func newRouter(env *testutil.Env) *gin.Engine {
	ac := NewAdminController(service.NewUserService(repository.NewUserRepository(env.DB.DB)))
	r := gin.New()
	admin := r.Group("/admin", env.Protect(model.RoleAdmin)...)
	admin.GET("/users", ac.GetUsers)
	admin.DELETE("/users/:id", ac.DeleteUser)
	return r
}

func userPath(id uint) string {
	return "/admin/users/" + strconv.FormatUint(uint64(id), 10)
}

func TestGetUsers(t *testing.T) {
	env := testutil.NewEnv(t)
	r := newRouter(env)

	rec, users := testutil.MakeJSONListRequest(env.Token(t, database.TestAdminUser), r, "/admin/users")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, users, 5)
	for _, u := range users {
		assert.NotContains(t, u, "passwordHash")
	}

	rec, _ = testutil.MakeJSONListRequest(env.Token(t, database.TestEmployer1), r, "/admin/users")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteUser(t *testing.T) {
	env := testutil.NewEnv(t)
	r := newRouter(env)
	token := env.Token(t, database.TestAdminUser)

	rec, resp := testutil.MakeJSONRequest(nil, token, r, userPath(database.TestEmployer1.ID), http.MethodDelete)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "User deleted successfully", resp["message"])

	var jobs int64
	require.NoError(t, env.DB.Model(&model.Job{}).Where("employer_id = ?", database.TestEmployer1.ID).Count(&jobs).Error)
	assert.Zero(t, jobs)

	rec, _ = testutil.MakeJSONRequest(nil, token, r, userPath(database.TestEmployer1.ID), http.MethodDelete)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, resp = testutil.MakeJSONRequest(nil, token, r, userPath(database.TestAdminUser.ID), http.MethodDelete)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Admins cannot delete themselves", resp["error"])

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/admin/users/abc", http.MethodDelete)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
