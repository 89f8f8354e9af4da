package enums

// RoleType defines an administrative role tag carried on the authenticated user
type RoleType string

const (
	RoleAdmin      RoleType = "ADMIN"
	RoleSuperAdmin RoleType = "SUPERADMIN"
	RoleStaff      RoleType = "STAFF"
)

// Semester identifies one half of an academic session
type Semester string

const (
	SemesterFirst  Semester = "FIRST"
	SemesterSecond Semester = "SECOND"
)

// CourseStatus marks a course as compulsory or optional within a program
type CourseStatus string

const (
	CourseCore     CourseStatus = "CORE"
	CourseElective CourseStatus = "ELECTIVE"
)
