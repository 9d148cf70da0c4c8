package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/salesify-dashboard/internal/application/dto"
	"github.com/tu-usuario/salesify-dashboard/internal/application/usecase"
	"github.com/tu-usuario/salesify-dashboard/internal/domain"
	"github.com/tu-usuario/salesify-dashboard/internal/domain/entity"
)

// CompanyHandler páginas del manager: gestión de empleados.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler de company.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

type employeesView struct {
	Employees []entity.Employee
	Form      dto.AddEmployeeRequest
	Notice    string
	Error     string
}

// Employees GET /manager/employees.
func (h *CompanyHandler) Employees(c *fiber.Ctx) error {
	session := GetSession(c)
	employees, err := h.uc.Employees(c.Context(), session.Token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		return render(c, "employees", employeesView{Error: displayError(err, "Could not load employees.")})
	}
	return render(c, "employees", employeesView{Employees: employees, Notice: c.Query("notice")})
}

// AddEmployee POST /manager/employees. El alta re-consulta la lista completa
// (vía el redirect a GET); solo el borrado edita la lista localmente.
func (h *CompanyHandler) AddEmployee(c *fiber.Ctx) error {
	session := GetSession(c)

	var in dto.AddEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return renderStatus(c, fiber.StatusBadRequest, "employees", employeesView{Error: "Invalid form submission."})
	}

	if err := h.uc.AddEmployee(c.Context(), session.Token, in); err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		view := employeesView{Form: in}
		if errors.Is(err, domain.ErrInvalidInput) {
			view.Error = "Username, email and password are required."
		} else {
			view.Error = displayError(err, "Failed to add employee.")
		}
		// Se re-renderiza con la lista actual para no perder la tabla.
		if employees, lerr := h.uc.Employees(c.Context(), session.Token); lerr == nil {
			view.Employees = employees
		}
		return renderStatus(c, fiber.StatusBadRequest, "employees", view)
	}

	return c.Redirect("/manager/employees?notice=Employee+added+successfully", fiber.StatusSeeOther)
}

// DeleteEmployee DELETE /manager/employees/:id (fetch desde la tabla). En éxito
// responde un ack JSON y la vista quita la fila con id === :id del DOM; no se
// re-consulta la lista.
func (h *CompanyHandler) DeleteEmployee(c *fiber.Ctx) error {
	session := GetSession(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}

	if err := h.uc.DeleteEmployee(c.Context(), session.Token, int64(id)); err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		if apiErr, ok := domain.AsAPIError(err); ok {
			return c.Status(apiErr.Status).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: apiErr.Message})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "failed to remove employee"})
	}
	return c.JSON(fiber.Map{"status": "ok", "id": id})
}
