package form

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/CloudsoftGithub/items-admin/internal/app/models"
	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto"
	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto/enums"
	"github.com/CloudsoftGithub/items-admin/internal/pkg/apperrors"
)

// courseCodePattern: 3-4 letters, one space, 3 digits, e.g. "CSC 101"
var courseCodePattern = regexp.MustCompile(`^[A-Za-z]{3,4}\s\d{3}$`)

// BandTable maps (level, semester) to the base of a ten-slot numbering band:
// valid codes for that combination carry suffixes base+1 through base+9.
// Combinations absent from the table are not validated; level is a free-form
// label, so unknown tiers are legal data rather than an error.
type BandTable map[string]map[enums.Semester]int

// DefaultBands is the institution's standard three-tier numbering scheme
var DefaultBands = BandTable{
	"NCE I":   {enums.SemesterFirst: 110, enums.SemesterSecond: 120},
	"NCE II":  {enums.SemesterFirst: 210, enums.SemesterSecond: 220},
	"NCE III": {enums.SemesterFirst: 310, enums.SemesterSecond: 320},
}

// Base looks up the band base for a level/semester combination
func (t BandTable) Base(level string, semester enums.Semester) (int, bool) {
	row, ok := t[level]
	if !ok {
		return 0, false
	}
	base, ok := row[semester]
	return base, ok
}

// CourseValidator runs the course-specific business rules: code structure,
// the level/semester numbering band, duplicate detection and prerequisite
// self-reference.
type CourseValidator struct {
	Bands BandTable
	// Existing yields the loaded course collection for duplicate detection
	Existing func() []models.Course
}

// NewCourseValidator creates a validator over the default band table
func NewCourseValidator(existing func() []models.Course) *CourseValidator {
	return &CourseValidator{Bands: DefaultBands, Existing: existing}
}

// Validate implements ValidateFunc for course drafts
func (v *CourseValidator) Validate(req dto.CreateCourseRequest, editID int64) error {
	if err := v.validateCode(req.CourseCode, req.Level, req.Semester); err != nil {
		return err
	}
	if err := v.checkDuplicate(req.CourseCode, editID); err != nil {
		return err
	}
	return v.checkSelfPrerequisite(req.PrerequisiteIDs, editID)
}

// validateCode checks the structural pattern and the numbering band
func (v *CourseValidator) validateCode(code, level string, semester enums.Semester) error {
	if !courseCodePattern.MatchString(code) {
		return apperrors.NewValidationError("courseCode",
			"course code must look like ABC 111 (3-4 letters, a space, 3 digits)")
	}

	base, ok := v.Bands.Base(level, semester)
	if !ok {
		return nil
	}

	suffix, err := strconv.Atoi(code[strings.IndexByte(code, ' ')+1:])
	if err != nil {
		return apperrors.NewValidationError("courseCode", "course code digits are invalid")
	}
	if suffix < base+1 || suffix > base+9 {
		return apperrors.NewValidationError("courseCode", fmt.Sprintf(
			"invalid code: for %s %s semester, code must be between %d and %d",
			level, semester, base+1, base+9))
	}
	return nil
}

// checkDuplicate rejects a code already used by another course. Comparison
// trims whitespace and ignores case; the record under edit is excluded so
// resubmitting its own code is accepted.
func (v *CourseValidator) checkDuplicate(code string, editID int64) error {
	if v.Existing == nil {
		return nil
	}
	want := strings.ToLower(strings.TrimSpace(code))
	for _, c := range v.Existing() {
		if c.ID == editID {
			continue
		}
		if strings.ToLower(strings.TrimSpace(c.CourseCode)) == want {
			return apperrors.NewDuplicateError("a course with this code already exists")
		}
	}
	return nil
}

// checkSelfPrerequisite rejects a course listing itself as a prerequisite.
// Cycle detection across the full graph stays server-side with the rest of
// the referential checks.
func (v *CourseValidator) checkSelfPrerequisite(prereqIDs []int64, editID int64) error {
	if editID == 0 {
		return nil
	}
	for _, id := range prereqIDs {
		if id == editID {
			return apperrors.NewValidationError("prerequisiteIds",
				"a course cannot be its own prerequisite")
		}
	}
	return nil
}
