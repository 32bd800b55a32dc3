package model

import (
	"errors"
	"fmt"
)

// ErrInvalidEnumValue is returned when a numeric code does not name a member
// of a closed enum set.
var ErrInvalidEnumValue = errors.New("invalid enum value")

// WorkMode is where the work is performed.
type WorkMode int

// WorkMode members, stored by code.
const (
	WorkModeOnSite WorkMode = iota + 1
	WorkModeRemote
	WorkModeHybrid
)

var workModeNames = map[WorkMode]string{
	WorkModeOnSite: "OnSite",
	WorkModeRemote: "Remote",
	WorkModeHybrid: "Hybrid",
}

func (w WorkMode) String() string {
	if name, ok := workModeNames[w]; ok {
		return name
	}
	return fmt.Sprintf("WorkMode(%d)", int(w))
}

// ParseWorkMode converts a wire code into a WorkMode.
func ParseWorkMode(code int) (WorkMode, error) {
	w := WorkMode(code)
	if _, ok := workModeNames[w]; !ok {
		return 0, fmt.Errorf("%w: workMode %d", ErrInvalidEnumValue, code)
	}
	return w, nil
}

// JobType is the contract type of a posting.
type JobType int

// JobType members, stored by code.
const (
	JobTypeFullTime JobType = iota + 1
	JobTypePartTime
	JobTypeContract
	JobTypeMaternityCover
	JobTypeInternship
	JobTypeFreelance
)

var jobTypeNames = map[JobType]string{
	JobTypeFullTime:       "FullTime",
	JobTypePartTime:       "PartTime",
	JobTypeContract:       "Contract",
	JobTypeMaternityCover: "MaternityCover",
	JobTypeInternship:     "Internship",
	JobTypeFreelance:      "Freelance",
}

func (t JobType) String() string {
	if name, ok := jobTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("JobType(%d)", int(t))
}

// ParseJobType converts a wire code into a JobType.
func ParseJobType(code int) (JobType, error) {
	t := JobType(code)
	if _, ok := jobTypeNames[t]; !ok {
		return 0, fmt.Errorf("%w: jobType %d", ErrInvalidEnumValue, code)
	}
	return t, nil
}

// Level is the seniority a posting targets.
type Level int

// Level members, stored by code.
const (
	LevelJunior Level = iota + 1
	LevelMid
	LevelSenior
)

var levelNames = map[Level]string{
	LevelJunior: "Junior",
	LevelMid:    "Mid",
	LevelSenior: "Senior",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel converts a wire code into a Level.
func ParseLevel(code int) (Level, error) {
	l := Level(code)
	if _, ok := levelNames[l]; !ok {
		return 0, fmt.Errorf("%w: level %d", ErrInvalidEnumValue, code)
	}
	return l, nil
}
