package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yana-hris/DevJobsAPI/internal/model"
)

func validForm() model.JobForm {
	return model.JobForm{
		Title:         "Backend Engineer",
		Description:   strings.Repeat("Build APIs in Go. ", 4),
		Company:       "TechNova",
		Location:      "Sofia",
		MinExperience: 3,
		MaxExperience: 6,
		JobType:       1,
		Salary:        70000,
		EmployerID:    1,
	}
}

func fields(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateJobFormValid(t *testing.T) {
	assert.Nil(t, ValidateJobForm(validForm()))
}

func TestValidateJobFormShortTitle(t *testing.T) {
	form := validForm()
	form.Title = "Dev"

	errs := ValidateJobForm(form)
	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)
	assert.Equal(t, "title must be at least 5 characters long", errs[0].Message)
}

func TestValidateJobFormCollectsEveryField(t *testing.T) {
	bad := 7
	form := validForm()
	form.Description = "too short"
	form.Location = ""
	form.MaxExperience = 51
	form.JobType = 0
	form.WorkMode = &bad
	form.Salary = -1
	form.EmployerID = 0

	errs := ValidateJobForm(form)
	assert.ElementsMatch(t,
		[]string{"description", "location", "maxExperience", "jobType", "workMode", "salary", "employerId"},
		fields(errs))
}

func TestValidateJobFormOptionalEnums(t *testing.T) {
	two := 2
	form := validForm()
	form.WorkMode = &two
	form.Level = &two
	assert.Nil(t, ValidateJobForm(form))
}

func TestValidateJobFormZeroEnumCode(t *testing.T) {
	zero := 0
	form := validForm()
	form.WorkMode = &zero
	form.Level = &zero

	errs := ValidateJobForm(form)
	assert.ElementsMatch(t, []string{"workMode", "level"}, fields(errs))
	assert.Equal(t, "workMode must be greater than or equal to 1", errs[0].Message)
}

func TestBindError(t *testing.T) {
	var form model.JobForm
	err := json.Unmarshal([]byte(`{"title": 42}`), &form)
	require.Error(t, err)

	errs := BindError(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)

	err = json.Unmarshal([]byte(`{`), &form)
	require.Error(t, err)
	assert.Equal(t, []FieldError{{Field: "body", Message: "Invalid request body"}}, BindError(err))
}
