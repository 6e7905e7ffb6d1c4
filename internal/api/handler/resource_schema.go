package handler

// companyRequest is shared by add and update; all business fields are
// mandatory, matching the client's form.
type companyRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"required"`
	Address  string `json:"address"  validate:"required"`
	Country  string `json:"country"  validate:"required"`
	City     string `json:"city"     validate:"required"`
	Postcode string `json:"postcode" validate:"required"`
}

// workerRequest is shared by add and update. JoiningDate arrives as an
// RFC 3339 date or timestamp.
type workerRequest struct {
	Name        string `json:"name"        validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Phone       string `json:"phone"       validate:"required"`
	Role        string `json:"role"        validate:"required"`
	Department  string `json:"department"  validate:"required"`
	Address     string `json:"address"     validate:"required"`
	JoiningDate string `json:"joiningDate" validate:"required"`
}
