package web

import (
	"context"
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/salesify-dashboard/internal/application/usecase"
	"github.com/tu-usuario/salesify-dashboard/internal/domain"
	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
)

// AdminHandler páginas de admin: empresas paginadas y audit logs.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler de admin.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

type companiesView struct {
	Companies  []entity.Company
	Pagination entity.Pagination
	Query      string
	Notice     string
	Alert      string
	Error      string
}

type auditLogsView struct {
	Logs  []entity.AuditLog
	Error string
}

// Companies GET /companies?page=N&q=texto. El filtro es sobre las filas de la
// página traída; la navegación de páginas es relativa al descriptor del
// servidor (Previous/Next deshabilitados según has_prev/has_next).
func (h *AdminHandler) Companies(c *fiber.Ctx) error {
	session := GetSession(c)
	page := c.QueryInt("page", 1)
	query := c.Query("q")

	result, err := h.uc.CompaniesPage(c.Context(), session.Token, page, query)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		return render(c, "companies", companiesView{Query: query, Error: displayError(err, "Could not load companies.")})
	}

	return render(c, "companies", companiesView{
		Companies:  result.Companies,
		Pagination: result.Pagination,
		Query:      query,
		Notice:     c.Query("notice"),
		Alert:      c.Query("alert"),
	})
}

// Suspend POST /companies/:id/suspend. Tras la mutación se redirige a la misma
// página, lo que re-consulta la lista completa (re-fetch, no parcheo local).
func (h *AdminHandler) Suspend(c *fiber.Ctx) error {
	return h.mutate(c, h.uc.Suspend, "Company suspended successfully", "Failed to suspend company")
}

// Recover POST /companies/:id/recover.
func (h *AdminHandler) Recover(c *fiber.Ctx) error {
	return h.mutate(c, h.uc.Recover, "Company recovered successfully", "Failed to recover company")
}

// mutate ejecuta la acción sobre la empresa y vuelve a /companies conservando
// page y q; el resultado viaja como notice/alert en la query.
func (h *AdminHandler) mutate(c *fiber.Ctx, action func(ctx context.Context, token string, id int64) error, notice, fallback string) error {
	session := GetSession(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id inválido")
	}
	page := c.FormValue("page", "1")
	query := c.FormValue("q")

	values := url.Values{}
	values.Set("page", page)
	if query != "" {
		values.Set("q", query)
	}

	if err := action(c.Context(), session.Token, int64(id)); err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		values.Set("alert", displayError(err, fallback))
	} else {
		values.Set("notice", notice)
	}
	return c.Redirect("/companies?"+values.Encode(), fiber.StatusSeeOther)
}

// AuditLogs GET /audit-logs: últimos 15 eventos de plataforma.
func (h *AdminHandler) AuditLogs(c *fiber.Ctx) error {
	session := GetSession(c)
	logs, err := h.uc.AuditLogs(c.Context(), session.Token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		return render(c, "audit_logs", auditLogsView{Error: displayError(err, "Could not load audit logs.")})
	}
	return render(c, "audit_logs", auditLogsView{Logs: logs})
}
