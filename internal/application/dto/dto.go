package dto

// DTOs de formularios del gateway. Los tags form corresponden a los names de
// los inputs en las plantillas; json aplica a los pocos endpoints fetch.

// LoginRequest credenciales del formulario de login.
type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// RegisterCompanyRequest registro de empresa + manager.
type RegisterCompanyRequest struct {
	CompanyName string `form:"company_name" json:"company_name"`
	Industry    string `form:"industry" json:"industry"`
	ManagerName string `form:"manager_name" json:"manager_name"`
	Email       string `form:"email" json:"email"`
	Password    string `form:"password" json:"password"`
}

// OTPRequest las seis celdas de un dígito del formulario de verificación.
// La concatenación en orden forma el código enviado.
type OTPRequest struct {
	Digit1 string `form:"otp1"`
	Digit2 string `form:"otp2"`
	Digit3 string `form:"otp3"`
	Digit4 string `form:"otp4"`
	Digit5 string `form:"otp5"`
	Digit6 string `form:"otp6"`
}

// Digits devuelve las celdas en orden.
func (r OTPRequest) Digits() []string {
	return []string{r.Digit1, r.Digit2, r.Digit3, r.Digit4, r.Digit5, r.Digit6}
}

// AddEmployeeRequest alta de empleado desde la vista del manager.
type AddEmployeeRequest struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// ErrorResponse cuerpo de error para los endpoints JSON del gateway.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
