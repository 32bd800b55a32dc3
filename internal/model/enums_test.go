package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobType_AllDefinedCodes(t *testing.T) {
	want := []string{"FullTime", "PartTime", "Contract", "MaternityCover", "Internship", "Freelance"}
	for code := 1; code <= 6; code++ {
		jt, err := ParseJobType(code)
		require.NoError(t, err)
		assert.Equal(t, want[code-1], jt.String())
	}
}

func TestParseJobType_OutOfRange(t *testing.T) {
	for _, code := range []int{-1, 0, 7, 100} {
		_, err := ParseJobType(code)
		assert.True(t, errors.Is(err, ErrInvalidEnumValue), "code %d", code)
	}
}

func TestParseWorkModeAndLevel(t *testing.T) {
	wm, err := ParseWorkMode(2)
	require.NoError(t, err)
	assert.Equal(t, WorkModeRemote, wm)
	assert.Equal(t, "Remote", wm.String())

	lvl, err := ParseLevel(3)
	require.NoError(t, err)
	assert.Equal(t, LevelSenior, lvl)
	assert.Equal(t, "Senior", lvl.String())

	_, err = ParseWorkMode(4)
	assert.ErrorIs(t, err, ErrInvalidEnumValue)
	_, err = ParseLevel(0)
	assert.ErrorIs(t, err, ErrInvalidEnumValue)
}

func TestEnumString_Unknown(t *testing.T) {
	assert.Equal(t, "JobType(9)", JobType(9).String())
	assert.Equal(t, "WorkMode(0)", WorkMode(0).String())
	assert.Equal(t, "Level(-2)", Level(-2).String())
}
