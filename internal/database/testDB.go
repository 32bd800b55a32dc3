package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	m "github.com/yana-hris/DevJobsAPI/internal/model"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported test users and jobs
var (
	TestAdminUser m.User
	TestEmployer1 m.User
	TestEmployer2 m.User
	TestEmployee1 m.User
	TestEmployee2 m.User

	// Plain password shared by every seeded test user
	TestSeedPassword = "SeedPass123!"

	TestJob1 m.Job
	TestJob2 m.Job
	TestJob3 m.Job
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup. A missing container
// runtime is reported as an error, not a panic.
func GetTestDB() (stop func(context.Context, ...testcontainers.TerminateOption) error, db *DBinstanceStruct, err error) {
	defer func() {
		if r := recover(); r != nil {
			stop, db, err = nil, nil, fmt.Errorf("start postgres container: %v", r)
		}
	}()

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
		DBName:    dbName,
	}

	db, err = NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := SeedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// SeedTestData inserts roles, two employers, two employees, an admin and three
// jobs, and assigns them to the exported Test* variables.
func SeedTestData(db *DBinstanceStruct) error {
	if err := SeedRoles(db.DB); err != nil {
		return err
	}

	userSpecs := []struct {
		target   *m.User
		fullName string
		email    string
		role     string
	}{
		{&TestEmployer1, "Alice Johnson", "employer1@example.com", m.RoleEmployer},
		{&TestEmployer2, "Erin Walsh", "employer2@example.com", m.RoleEmployer},
		{&TestEmployee1, "Bob Smith", "employee1@example.com", m.RoleEmployee},
		{&TestEmployee2, "Dana Brooks", "employee2@example.com", m.RoleEmployee},
		{&TestAdminUser, "Charlie Admin", "admin@example.com", m.RoleAdmin},
	}

	for _, s := range userSpecs {
		u, err := EnsureUser(db.DB, s.fullName, s.email, TestSeedPassword, s.role)
		if err != nil {
			return err
		}
		*s.target = u
	}

	var jobCount int64
	if err := db.Model(&m.Job{}).Count(&jobCount).Error; err != nil {
		return err
	}
	if jobCount > 0 {
		var jobs []m.Job
		if err := db.Order("id ASC").Limit(3).Find(&jobs).Error; err != nil {
			return err
		}
		assignTestJobs(jobs)
		return nil
	}

	jobs := []m.Job{
		{
			Title:         "Backend Engineer",
			Description:   "Design, build and operate the Go services that power our hiring marketplace.",
			Company:       "TechNova",
			Location:      "Sofia (Hybrid)",
			MinExperience: 3,
			MaxExperience: 6,
			WorkMode:      m.WorkModeHybrid,
			JobType:       m.JobTypeFullTime,
			Level:         m.LevelMid,
			Salary:        70000,
			EmployerID:    TestEmployer1.ID,
			SavedAt:       time.Now().UTC(),
		},
		{
			Title:         "Frontend Developer Intern",
			Description:   "Assist the product team building a component library in React and TypeScript.",
			Company:       "TechNova",
			Location:      "Remote",
			MinExperience: 0,
			MaxExperience: 1,
			WorkMode:      m.WorkModeRemote,
			JobType:       m.JobTypeInternship,
			Level:         m.LevelJunior,
			Salary:        12000,
			EmployerID:    TestEmployer1.ID,
			SavedAt:       time.Now().UTC(),
		},
		{
			Title:         "Data Analyst",
			Description:   "Support data cleansing, reporting and dashboard creation for our analytics clients.",
			Company:       "DataForge",
			Location:      "Berlin",
			MinExperience: 2,
			MaxExperience: 5,
			WorkMode:      m.WorkModeOnSite,
			JobType:       m.JobTypeContract,
			Level:         m.LevelSenior,
			Salary:        55000.5,
			EmployerID:    TestEmployer2.ID,
			SavedAt:       time.Now().UTC(),
		},
	}

	if err := db.Create(&jobs).Error; err != nil {
		return err
	}
	assignTestJobs(jobs)

	return nil
}

func assignTestJobs(jobs []m.Job) {
	if len(jobs) > 0 {
		TestJob1 = jobs[0]
	}
	if len(jobs) > 1 {
		TestJob2 = jobs[1]
	}
	if len(jobs) > 2 {
		TestJob3 = jobs[2]
	}
}
