package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloudsoftGithub/items-admin/internal/app/models"
	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto"
	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto/enums"
	"github.com/CloudsoftGithub/items-admin/internal/pkg/apperrors"
)

func noCourses() []models.Course { return nil }

func TestCourseCodeStructure(t *testing.T) {
	v := NewCourseValidator(noCourses)

	tests := []struct {
		code string
		ok   bool
	}{
		{"CSC 101", true},
		{"MATH 205", true},
		{"C 101", false},
		{"CSCI1010", false},
		{"csc-101", false},
		{"CSC  101", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := v.Validate(dto.CreateCourseRequest{
				CourseCode:   tt.code,
				CourseTitle:  "Whatever",
				DepartmentID: 1,
				Level:        "unmapped",
			}, 0)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			}
		})
	}
}

func TestCourseCodeNumberingBand(t *testing.T) {
	v := &CourseValidator{
		Bands:    BandTable{"Tier I": {enums.SemesterFirst: 110}},
		Existing: noCourses,
	}

	valid := []string{"CSC 111", "CSC 115", "CSC 119"}
	for _, code := range valid {
		err := v.Validate(dto.CreateCourseRequest{
			CourseCode: code, CourseTitle: "T", DepartmentID: 1,
			Level: "Tier I", Semester: enums.SemesterFirst,
		}, 0)
		assert.NoError(t, err, code)
	}

	invalid := []string{"CSC 110", "CSC 120", "CSC 210"}
	for _, code := range invalid {
		err := v.Validate(dto.CreateCourseRequest{
			CourseCode: code, CourseTitle: "T", DepartmentID: 1,
			Level: "Tier I", Semester: enums.SemesterFirst,
		}, 0)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, code)
	}
}

func TestCourseCodeUnmappedCombinationSkipsBand(t *testing.T) {
	v := NewCourseValidator(noCourses)

	// A level absent from the band table is legal data; only the structural
	// rule applies.
	err := v.Validate(dto.CreateCourseRequest{
		CourseCode: "CSC 999", CourseTitle: "T", DepartmentID: 1,
		Level: "Postgraduate", Semester: enums.SemesterFirst,
	}, 0)
	assert.NoError(t, err)
}

func TestDefaultBands(t *testing.T) {
	base, ok := DefaultBands.Base("NCE II", enums.SemesterSecond)
	require.True(t, ok)
	assert.Equal(t, 220, base)

	_, ok = DefaultBands.Base("NCE IV", enums.SemesterFirst)
	assert.False(t, ok)
}

func TestDuplicateCourseCode(t *testing.T) {
	existing := func() []models.Course {
		return []models.Course{{ID: 7, CourseCode: "MTH 101"}}
	}
	v := &CourseValidator{Bands: BandTable{}, Existing: existing}

	// Case and surrounding whitespace are ignored.
	err := v.Validate(dto.CreateCourseRequest{
		CourseCode: "mth 101", CourseTitle: "T", DepartmentID: 1,
	}, 0)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateRecord)

	// Editing the course itself and resubmitting the same code is accepted.
	err = v.Validate(dto.CreateCourseRequest{
		CourseCode: "MTH 101", CourseTitle: "T", DepartmentID: 1,
	}, 7)
	assert.NoError(t, err)

	// A different record with the same code is still rejected on edit.
	err = v.Validate(dto.CreateCourseRequest{
		CourseCode: "MTH 101", CourseTitle: "T", DepartmentID: 1,
	}, 8)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateRecord)
}

func TestSelfPrerequisiteRejected(t *testing.T) {
	v := NewCourseValidator(noCourses)

	err := v.Validate(dto.CreateCourseRequest{
		CourseCode: "CSC 401", CourseTitle: "T", DepartmentID: 1,
		PrerequisiteIDs: []int64{3, 9},
	}, 9)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Contains(t, custom.Message, "own prerequisite")

	// On create there is no id yet, so nothing to collide with.
	err = v.Validate(dto.CreateCourseRequest{
		CourseCode: "CSC 401", CourseTitle: "T", DepartmentID: 1,
		PrerequisiteIDs: []int64{3, 9},
	}, 0)
	assert.NoError(t, err)
}
