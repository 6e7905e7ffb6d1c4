package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// formField describes one input of a client-rendered form. The mobile client
// renders forms from these descriptors instead of hardcoding field lists.
type formField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// formSchemas is a static configuration table keyed by form kind. There is no
// reflection: adding a field here is the whole change.
var formSchemas = map[string][]formField{
	"register": {
		{Name: "username", Label: "Username", Type: "text", Required: true},
		{Name: "email", Label: "Email", Type: "email", Required: true},
		{Name: "phone", Label: "Phone", Type: "tel", Required: true},
		{Name: "address", Label: "Address", Type: "text", Required: true},
		{Name: "postcode", Label: "Postcode", Type: "text", Required: true},
		{Name: "password", Label: "Password", Type: "password", Required: true},
		{Name: "userType", Label: "Account type", Type: "select", Required: true},
	},
	"company": {
		{Name: "name", Label: "Company name", Type: "text", Required: true},
		{Name: "email", Label: "Email", Type: "email", Required: true},
		{Name: "phone", Label: "Phone", Type: "tel", Required: true},
		{Name: "address", Label: "Address", Type: "text", Required: true},
		{Name: "country", Label: "Country", Type: "text", Required: true},
		{Name: "city", Label: "City", Type: "text", Required: true},
		{Name: "postcode", Label: "Postcode", Type: "text", Required: true},
	},
	"worker": {
		{Name: "name", Label: "Full name", Type: "text", Required: true},
		{Name: "email", Label: "Email", Type: "email", Required: true},
		{Name: "phone", Label: "Phone", Type: "tel", Required: true},
		{Name: "role", Label: "Role", Type: "text", Required: true},
		{Name: "department", Label: "Department", Type: "text", Required: true},
		{Name: "address", Label: "Address", Type: "text", Required: true},
		{Name: "joiningDate", Label: "Joining date", Type: "date", Required: true},
	},
}

// FormHandler serves the form-field descriptor tables.
type FormHandler struct{}

func NewFormHandler() *FormHandler {
	return &FormHandler{}
}

// Get returns the field descriptors for one form kind.
//
// @Summary      Form field descriptors
// @Tags         forms
// @Produce      json
// @Param        kind  path      string  true  "Form kind (register, company, worker)"
// @Success      200   {array}   formField
// @Failure      404   {object}  messageResponse
// @Router       /api/forms/{kind} [get]
func (h *FormHandler) Get(c echo.Context) error {
	fields, ok := formSchemas[c.Param("kind")]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown form kind")
	}
	return c.JSON(http.StatusOK, fields)
}
