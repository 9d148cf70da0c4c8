package salesify

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
)

// ── Formas de cable del módulo de admin ───────────────────────────────────────

type platformOverviewResponse struct {
	PlatformOverview struct {
		TotalRegisteredCompanies   int `json:"total_registered_companies"`
		TotalActiveCompanies       int `json:"total_active_companies"`
		TotalSuspendedCompanies    int `json:"total_suspended_companies"`
		TotalUsersInSystem         int `json:"total_users_in_system"`
		TotalFilesUploaded         int `json:"total_files_uploaded"`
		TotalCleanedFilesGenerated int `json:"total_cleaned_files_generated"`
		TotalRowsStored            int `json:"total_rows_stored"`
	} `json:"platform_overview"`
}

type wireCompany struct {
	CompanyID int64  `json:"company_id"`
	Name      string `json:"company_name"`
	Industry  string `json:"industry"`
	Uploads   int    `json:"uploads"`
	Status    string `json:"status"`
}

type wirePagination struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	HasPrev     bool `json:"has_prev"`
	HasNext     bool `json:"has_next"`
}

type companiesResponse struct {
	Companies  []wireCompany  `json:"companies"`
	Pagination wirePagination `json:"pagination"`
}

type auditLogsResponse struct {
	Logs []struct {
		CreatedAt string `json:"created_at"`
		EventType string `json:"event_type"`
		Message   string `json:"message"`
	} `json:"logs"`
}

// PlatformOverview ejecuta GET /admin/home.
func (c *Client) PlatformOverview(ctx context.Context, token string) (*entity.PlatformOverview, error) {
	var out platformOverviewResponse
	if err := c.doJSON(ctx, http.MethodGet, "/admin/home", token, nil, &out); err != nil {
		return nil, err
	}
	o := out.PlatformOverview
	return &entity.PlatformOverview{
		TotalRegisteredCompanies:   o.TotalRegisteredCompanies,
		TotalActiveCompanies:       o.TotalActiveCompanies,
		TotalSuspendedCompanies:    o.TotalSuspendedCompanies,
		TotalUsersInSystem:         o.TotalUsersInSystem,
		TotalFilesUploaded:         o.TotalFilesUploaded,
		TotalCleanedFilesGenerated: o.TotalCleanedFilesGenerated,
		TotalRowsStored:            o.TotalRowsStored,
	}, nil
}

// Companies ejecuta GET /admin/companies?page=N y devuelve la página proyectada.
func (c *Client) Companies(ctx context.Context, token string, page int) (*entity.CompanyPage, error) {
	if page < 1 {
		page = 1
	}
	var out companiesResponse
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/admin/companies?page=%d", page), token, nil, &out); err != nil {
		return nil, err
	}
	companies := make([]entity.Company, 0, len(out.Companies))
	for _, w := range out.Companies {
		companies = append(companies, entity.Company{
			ID:       w.CompanyID,
			Name:     w.Name,
			Industry: w.Industry,
			Status:   w.Status,
			Uploads:  w.Uploads,
		})
	}
	return &entity.CompanyPage{
		Companies: companies,
		Pagination: entity.Pagination{
			CurrentPage: out.Pagination.CurrentPage,
			TotalPages:  out.Pagination.TotalPages,
			HasPrev:     out.Pagination.HasPrev,
			HasNext:     out.Pagination.HasNext,
		},
	}, nil
}

// SuspendCompany ejecuta PATCH /admin/company/{id}/suspend.
func (c *Client) SuspendCompany(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, http.MethodPatch, "/admin/company/"+strconv.FormatInt(id, 10)+"/suspend", token, nil, nil)
}

// RecoverCompany ejecuta PATCH /admin/company/{id}/recover.
func (c *Client) RecoverCompany(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, http.MethodPatch, "/admin/company/"+strconv.FormatInt(id, 10)+"/recover", token, nil, nil)
}

// AuditLogs ejecuta GET /admin/audit-logs (últimos 15 eventos de plataforma).
func (c *Client) AuditLogs(ctx context.Context, token string) ([]entity.AuditLog, error) {
	var out auditLogsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/admin/audit-logs", token, nil, &out); err != nil {
		return nil, err
	}
	logs := make([]entity.AuditLog, 0, len(out.Logs))
	for _, w := range out.Logs {
		logs = append(logs, entity.AuditLog{CreatedAt: w.CreatedAt, EventType: w.EventType, Message: w.Message})
	}
	return logs, nil
}
