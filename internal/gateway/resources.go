package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/CloudsoftGithub/items-admin/internal/app/models"
	"github.com/CloudsoftGithub/items-admin/internal/app/models/dto"
)

// Auth

// Login exchanges credentials for a token and profile
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a staff account
func (c *Client) Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Faculties

// ListFaculties returns all faculties; never nil on success.
func (c *Client) ListFaculties(ctx context.Context) ([]models.Faculty, error) {
	var out []models.Faculty
	if err := c.do(ctx, http.MethodGet, "/api/faculties", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Faculty{}
	}
	return out, nil
}

// GetFaculty fetches one faculty by id
func (c *Client) GetFaculty(ctx context.Context, id int64) (*models.Faculty, error) {
	var out models.Faculty
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/faculties/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateFaculty creates a faculty
func (c *Client) CreateFaculty(ctx context.Context, req dto.CreateFacultyRequest) (*models.Faculty, error) {
	var out models.Faculty
	if err := c.do(ctx, http.MethodPost, "/api/faculties/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFaculty updates a faculty
func (c *Client) UpdateFaculty(ctx context.Context, id int64, req dto.UpdateFacultyRequest) (*models.Faculty, error) {
	var out models.Faculty
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/faculties/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFaculty deletes a faculty
func (c *Client) DeleteFaculty(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/faculties/%d", id), nil, nil)
}

// Departments

// ListDepartments returns all departments; never nil on success.
func (c *Client) ListDepartments(ctx context.Context) ([]models.Department, error) {
	var out []models.Department
	if err := c.do(ctx, http.MethodGet, "/api/departments/all", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Department{}
	}
	return out, nil
}

// GetDepartment fetches one department by id
func (c *Client) GetDepartment(ctx context.Context, id int64) (*models.Department, error) {
	var out models.Department
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/departments/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDepartment creates a department
func (c *Client) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*models.Department, error) {
	var out models.Department
	if err := c.do(ctx, http.MethodPost, "/api/departments/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDepartment updates a department
func (c *Client) UpdateDepartment(ctx context.Context, id int64, req dto.UpdateDepartmentRequest) (*models.Department, error) {
	var out models.Department
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/departments/update/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDepartment deletes a department
func (c *Client) DeleteDepartment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/departments/delete/%d", id), nil, nil)
}

// Programs

// ListPrograms returns all programs; never nil on success.
func (c *Client) ListPrograms(ctx context.Context) ([]models.Program, error) {
	var out []models.Program
	if err := c.do(ctx, http.MethodGet, "/api/programs/all", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Program{}
	}
	return out, nil
}

// GetProgram fetches one program by id
func (c *Client) GetProgram(ctx context.Context, id int64) (*models.Program, error) {
	var out models.Program
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/programs/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProgram creates a program
func (c *Client) CreateProgram(ctx context.Context, req dto.CreateProgramRequest) (*models.Program, error) {
	var out models.Program
	if err := c.do(ctx, http.MethodPost, "/api/programs/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProgram updates a program
func (c *Client) UpdateProgram(ctx context.Context, id int64, req dto.UpdateProgramRequest) (*models.Program, error) {
	var out models.Program
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/programs/update/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProgram deletes a program
func (c *Client) DeleteProgram(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/programs/delete/%d", id), nil, nil)
}

// Courses

// ListCourses returns all courses; never nil on success.
func (c *Client) ListCourses(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	if err := c.do(ctx, http.MethodGet, "/api/courses/all", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Course{}
	}
	return out, nil
}

// GetCourse fetches one course by id
func (c *Client) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	var out models.Course
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/courses/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCourse creates a course
func (c *Client) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	var out models.Course
	if err := c.do(ctx, http.MethodPost, "/api/courses/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCourse updates a course
func (c *Client) UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
	var out models.Course
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/courses/update/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCourse deletes a course
func (c *Client) DeleteCourse(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/courses/delete/%d", id), nil, nil)
}

// Academic sessions

// ListSessions returns all academic sessions; never nil on success.
func (c *Client) ListSessions(ctx context.Context) ([]models.AcademicSession, error) {
	var out []models.AcademicSession
	if err := c.do(ctx, http.MethodGet, "/api/sessions/all", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.AcademicSession{}
	}
	return out, nil
}

// GetSession fetches one academic session by id
func (c *Client) GetSession(ctx context.Context, id int64) (*models.AcademicSession, error) {
	var out models.AcademicSession
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/sessions/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSession creates an academic session
func (c *Client) CreateSession(ctx context.Context, req dto.CreateSessionRequest) (*models.AcademicSession, error) {
	var out models.AcademicSession
	if err := c.do(ctx, http.MethodPost, "/api/sessions/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSession updates an academic session
func (c *Client) UpdateSession(ctx context.Context, id int64, req dto.UpdateSessionRequest) (*models.AcademicSession, error) {
	var out models.AcademicSession
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/sessions/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSession deletes an academic session
func (c *Client) DeleteSession(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/sessions/%d", id), nil, nil)
}

// Credit-hour rules

// ListCreditHourRules returns all credit-hour rules; never nil on success.
func (c *Client) ListCreditHourRules(ctx context.Context) ([]models.CreditHourRule, error) {
	var out []models.CreditHourRule
	if err := c.do(ctx, http.MethodGet, "/api/credit-hours/all", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.CreditHourRule{}
	}
	return out, nil
}

// CreateCreditHourRule creates a credit-hour rule
func (c *Client) CreateCreditHourRule(ctx context.Context, req dto.CreateCreditHourRuleRequest) (*models.CreditHourRule, error) {
	var out models.CreditHourRule
	if err := c.do(ctx, http.MethodPost, "/api/credit-hours/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCreditHourRule updates a credit-hour rule
func (c *Client) UpdateCreditHourRule(ctx context.Context, id int64, req dto.UpdateCreditHourRuleRequest) (*models.CreditHourRule, error) {
	var out models.CreditHourRule
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/credit-hours/update/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCreditHourRule deletes a credit-hour rule
func (c *Client) DeleteCreditHourRule(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/credit-hours/delete/%d", id), nil, nil)
}
