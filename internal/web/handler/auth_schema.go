package handler

// --- Form types ---

type loginForm struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type registerForm struct {
	Email           string `form:"email"            validate:"required,email"`
	Password        string `form:"password"         validate:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

// --- View types ---

// authView backs both the login and register pages.
type authView struct {
	Title string
	// Flash carries one-shot notices from the previous navigation
	// ("Registration successful! You can now log in.", "Logged out
	// successfully!").
	Flash []string
	// Error is the retained submission error; the form stays filled.
	Error string
	// Email is echoed back so a failed submission keeps the entered value.
	Email       string
	FieldErrors map[string]string
}
