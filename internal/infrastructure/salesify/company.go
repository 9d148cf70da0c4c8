package salesify

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
	"github.com/tu-usuario/salesify-dashboard/internal/domain/repository"
)

// ── Formas de cable del módulo de company (manager) ───────────────────────────

type companyOverviewResponse struct {
	CompanyOverview struct {
		CompanyName        string `json:"company_name"`
		TotalEmployees     int    `json:"total_employees"`
		TotalFilesUploaded int    `json:"total_files_uploaded"`
		TotalCleanedFiles  int    `json:"total_cleaned_files"`
		TotalRowsStored    int    `json:"total_rows_stored"`
	} `json:"company_overview"`
}

type wireEmployee struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type employeesResponse struct {
	Employees []wireEmployee `json:"employees"`
}

type addEmployeeRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CompanyDashboard ejecuta GET /company/dashboard.
func (c *Client) CompanyDashboard(ctx context.Context, token string) (*entity.CompanyOverview, error) {
	var out companyOverviewResponse
	if err := c.doJSON(ctx, http.MethodGet, "/company/dashboard", token, nil, &out); err != nil {
		return nil, err
	}
	o := out.CompanyOverview
	return &entity.CompanyOverview{
		CompanyName:        o.CompanyName,
		TotalEmployees:     o.TotalEmployees,
		TotalFilesUploaded: o.TotalFilesUploaded,
		TotalCleanedFiles:  o.TotalCleanedFiles,
		TotalRowsStored:    o.TotalRowsStored,
	}, nil
}

// ListEmployees ejecuta GET /company/employees.
func (c *Client) ListEmployees(ctx context.Context, token string) ([]entity.Employee, error) {
	var out employeesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/company/employees", token, nil, &out); err != nil {
		return nil, err
	}
	employees := make([]entity.Employee, 0, len(out.Employees))
	for _, w := range out.Employees {
		employees = append(employees, entity.Employee{
			ID:        w.ID,
			Username:  w.Username,
			Email:     w.Email,
			CreatedAt: w.CreatedAt,
		})
	}
	return employees, nil
}

// AddEmployee ejecuta POST /company/employees.
func (c *Client) AddEmployee(ctx context.Context, token string, in repository.AddEmployeeInput) error {
	body := addEmployeeRequest{Username: in.Username, Email: in.Email, Password: in.Password}
	return c.doJSON(ctx, http.MethodPost, "/company/employees", token, body, nil)
}

// DeleteEmployee ejecuta DELETE /company/employees/{id}.
func (c *Client) DeleteEmployee(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, "/company/employees/"+strconv.FormatInt(id, 10), token, nil, nil)
}
