package database

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"gorm.io/gorm"

	"github.com/yana-hris/DevJobsAPI/internal/model"
)

var (
	pgOnce     sync.Once
	pgDB       *DBinstanceStruct
	pgErr      error
	pgTeardown func(context.Context, ...testcontainers.TerminateOption) error
)

func TestMain(m *testing.M) {
	code := m.Run()

	if pgTeardown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		_ = pgTeardown(ctx)
		cancel()
	}
	os.Exit(code)
}

// requirePostgres starts the shared container on first use. Tests are skipped
// when no container provider is reachable, so the SQLite tests still run.
func requirePostgres(t *testing.T) *DBinstanceStruct {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	pgOnce.Do(func() {
		pgTeardown, pgDB, pgErr = GetTestDB()
	})
	if pgErr != nil {
		t.Skipf("could not start postgres container: %v", pgErr)
	}
	return pgDB
}

func TestRequirePostgresWithoutRuntime(t *testing.T) {
	var db *DBinstanceStruct
	ok := t.Run("postgres", func(t *testing.T) {
		assert.NotPanics(t, func() { db = requirePostgres(t) })
	})
	require.True(t, ok)
	if db != nil {
		assert.True(t, db.Health(context.Background()).Up())
	}
}

func newJob(employerID uint, title string) model.Job {
	job := model.NewJob()
	job.Title = title
	job.Description = "A posting created by the database integration tests to exercise cascades."
	job.Company = "Cascade Ltd"
	job.Location = "Remote"
	job.WorkMode = model.WorkModeRemote
	job.JobType = model.JobTypeContract
	job.Level = model.LevelMid
	job.Salary = 1000
	job.EmployerID = employerID
	return *job
}

func count(t *testing.T, db *gorm.DB, value interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(value).Where(query, args...).Count(&n).Error)
	return n
}

func TestHealth(t *testing.T) {
	db := requirePostgres(t)
	status := db.Health(context.Background())

	assert.True(t, status.Up())
	assert.Empty(t, status.Error)
	assert.Equal(t, "It's healthy", status.Message)
}

func TestSeed_Idempotent(t *testing.T) {
	db := requirePostgres(t)
	opts := SeedOptions{SampleUsers: true}

	require.NoError(t, Seed(db.DB, opts))
	require.NoError(t, Seed(db.DB, opts))

	assert.Equal(t, int64(3), count(t, db.DB, &model.Role{}, "1 = 1"))
	assert.Equal(t, int64(1), count(t, db.DB, &model.User{}, "email = ?", "alice@example.com"))
}

func TestRoleName_Unique(t *testing.T) {
	db := requirePostgres(t)
	err := db.Create(&model.Role{Name: model.RoleEmployer}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserEmail_Unique(t *testing.T) {
	db := requirePostgres(t)
	_, err := EnsureUser(db.DB, "Someone Else", TestEmployee1.Email, "whatever1", model.RoleEmployee)
	require.NoError(t, err, "EnsureUser returns the existing row")

	dup := model.User{FullName: "Dup User", Email: TestEmployee1.Email, PasswordHash: "xxxxxx", RoleID: TestEmployee1.RoleID}
	assert.ErrorIs(t, db.Omit("Role").Create(&dup).Error, gorm.ErrDuplicatedKey)
}

func TestJob_InvalidEnumRejectedByStore(t *testing.T) {
	db := requirePostgres(t)
	job := newJob(TestEmployer1.ID, "Bad enum posting")
	job.JobType = model.JobType(9)

	assert.Error(t, db.Create(&job).Error)
}

func TestApplication_CompositeKeyPreventsDuplicates(t *testing.T) {
	db := requirePostgres(t)
	app := model.NewApplication(TestEmployee2.ID, TestJob3.ID)
	require.NoError(t, db.Create(&app).Error)

	again := model.NewApplication(TestEmployee2.ID, TestJob3.ID)
	assert.ErrorIs(t, db.Create(&again).Error, gorm.ErrDuplicatedKey)
}

func TestDeleteJob_CascadesToDependents(t *testing.T) {
	db := requirePostgres(t)
	job := newJob(TestEmployer2.ID, "Short lived posting")
	require.NoError(t, db.Create(&job).Error)

	app := model.NewApplication(TestEmployee1.ID, job.ID)
	saved := model.NewSavedJob(TestEmployee1.ID, job.ID)
	require.NoError(t, db.Create(&app).Error)
	require.NoError(t, db.Create(&saved).Error)

	require.NoError(t, db.Delete(&model.Job{}, job.ID).Error)

	assert.Zero(t, count(t, db.DB, &model.Application{}, "job_id = ?", job.ID))
	assert.Zero(t, count(t, db.DB, &model.SavedJob{}, "job_id = ?", job.ID))
	assert.Equal(t, int64(1), count(t, db.DB, &model.User{}, "id = ?", TestEmployee1.ID))
}

func TestDeleteUser_CascadesToJobsAndDependents(t *testing.T) {
	db := requirePostgres(t)
	employer, err := EnsureUser(db.DB, "Temp Employer", "temp-employer@example.com", "secret123", model.RoleEmployer)
	require.NoError(t, err)

	job := newJob(employer.ID, "Posting by temporary employer")
	require.NoError(t, db.Create(&job).Error)
	app := model.NewApplication(TestEmployee1.ID, job.ID)
	require.NoError(t, db.Create(&app).Error)

	require.NoError(t, db.Delete(&model.User{}, employer.ID).Error)

	assert.Zero(t, count(t, db.DB, &model.Job{}, "id = ?", job.ID))
	assert.Zero(t, count(t, db.DB, &model.Application{}, "job_id = ?", job.ID))
}

func TestDeleteRole_CascadesToUsers(t *testing.T) {
	db := requirePostgres(t)
	role := model.Role{Name: "Recruiter"}
	require.NoError(t, db.Create(&role).Error)
	user, err := EnsureUser(db.DB, "Rita Recruiter", "rita@example.com", "secret123", "Recruiter")
	require.NoError(t, err)

	require.NoError(t, db.Delete(&model.Role{}, role.ID).Error)

	assert.Zero(t, count(t, db.DB, &model.User{}, "id = ?", user.ID))
}
