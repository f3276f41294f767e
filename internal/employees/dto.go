package employees

import "github.com/warehublabs/warehub-backend/pkg/db/models"

// EmployeeResponse mirrors the employee row shape clients already consume.
type EmployeeResponse struct {
	ID        int64  `json:"emp_id"`
	FirstName string `json:"emp_firstname"`
	LastName  string `json:"emp_lastname"`
	Username  string `json:"username"`
}

func toResponse(emp models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        emp.ID,
		FirstName: emp.FirstName,
		LastName:  emp.LastName,
		Username:  emp.Username,
	}
}
