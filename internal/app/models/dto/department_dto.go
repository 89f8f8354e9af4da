package dto

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	DeptName string `json:"deptName" validate:"required"`
	DeptCode string `json:"deptCode" validate:"required,uppercase"`
}

// UpdateDepartmentRequest represents department update data
type UpdateDepartmentRequest = CreateDepartmentRequest
