package employees

import (
	"context"
	stdErrors "errors"
	"strings"

	"github.com/warehublabs/warehub-backend/pkg/errors"
)

// ServiceParams groups dependencies for the employee service.
type ServiceParams struct {
	Repo Repository
}

// Service exposes employee lookups for the rest of the app. Employees are
// seeded out of band; the API only reads them.
type Service struct {
	repo Repository
}

// NewService builds an employee service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Repo == nil {
		return nil, stdErrors.New("repo is required")
	}
	return &Service{repo: params.Repo}, nil
}

// List returns every employee, ordered by name.
func (s *Service) List(ctx context.Context) ([]EmployeeResponse, error) {
	emps, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "list employees")
	}
	out := make([]EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		out = append(out, toResponse(emp))
	}
	return out, nil
}

// ResolveManager maps a username to an employee id. A blank username clears
// the manager; an unknown one is a validation failure, not a 404, because it
// arrives inside a warehouse payload.
func (s *Service) ResolveManager(ctx context.Context, username string) (*int64, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, nil
	}
	emp, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "find employee by username")
	}
	if emp == nil {
		return nil, errors.New(errors.CodeValidation, "Manager not found")
	}
	return &emp.ID, nil
}
