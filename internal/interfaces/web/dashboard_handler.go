package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/salesify-dashboard/internal/application/upload"
	"github.com/tu-usuario/salesify-dashboard/internal/application/usecase"
	"github.com/tu-usuario/salesify-dashboard/internal/domain"
	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
)

// DashboardHandler despacha /dashboard a la vista del rol de la sesión.
// Cada vista monta con un único GET autenticado a su endpoint de resumen.
type DashboardHandler struct {
	adminUC   *usecase.AdminUseCase
	companyUC *usecase.CompanyUseCase
	workflow  *upload.Workflow
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(adminUC *usecase.AdminUseCase, companyUC *usecase.CompanyUseCase, workflow *upload.Workflow) *DashboardHandler {
	return &DashboardHandler{adminUC: adminUC, companyUC: companyUC, workflow: workflow}
}

type adminHomeView struct {
	Overview *entity.PlatformOverview
	Error    string
}

type managerHomeView struct {
	Overview *entity.CompanyOverview
	Error    string
}

type employeeHomeView struct {
	Charts []string
	Error  string
}

// Dashboard GET /dashboard.
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	session := GetSession(c)
	switch session.Role {
	case entity.RoleAdmin:
		return h.adminHome(c, session)
	case entity.RoleManager:
		return h.managerHome(c, session)
	case entity.RoleEmployee:
		return h.employeeHome(c, session)
	default:
		return c.Redirect("/unauthorized", fiber.StatusSeeOther)
	}
}

func (h *DashboardHandler) adminHome(c *fiber.Ctx, s entity.Session) error {
	overview, err := h.adminUC.Overview(c.Context(), s.Token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		return render(c, "admin_home", adminHomeView{Error: displayError(err, "Could not load platform overview.")})
	}
	return render(c, "admin_home", adminHomeView{Overview: overview})
}

func (h *DashboardHandler) managerHome(c *fiber.Ctx, s entity.Session) error {
	overview, err := h.companyUC.Overview(c.Context(), s.Token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		return render(c, "manager_home", managerHomeView{Error: displayError(err, "Could not load company overview.")})
	}
	return render(c, "manager_home", managerHomeView{Overview: overview})
}

func (h *DashboardHandler) employeeHome(c *fiber.Ctx, s entity.Session) error {
	charts, err := h.workflow.Charts(c.Context(), s.Token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		return render(c, "employee_home", employeeHomeView{Error: displayError(err, "Could not load available charts.")})
	}
	return render(c, "employee_home", employeeHomeView{Charts: charts})
}
