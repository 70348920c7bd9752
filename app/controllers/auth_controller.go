package controllers

import (
	"errors"
	"net/http"

	"github.com/adityakr/bazaari/app/models"
	"github.com/adityakr/bazaari/app/services"
	"github.com/adityakr/bazaari/pkg/bind"
	"github.com/adityakr/bazaari/pkg/response"
)

// AuthController serves signup, login, logout and the current-user probe.
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController wires the controller.
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type signupInput struct {
	Name                 string `json:"name"     validate:"required,min=2,max=100"`
	Email                string `json:"email"    validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8,regex=[0-9],regex=[A-Za-z],confirmed"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type authPayload struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Signup registers an account and logs it straight in.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var in signupInput
	errs, err := bind.JSONValid(r, &in)
	if err != nil {
		response.BadRequest(w, "Invalid request body.")
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.auth.Signup(r.Context(), in.Name, in.Email, in.Password)
	if errors.Is(err, services.ErrDuplicateEmail) {
		response.Conflict(w, "An account with this email already exists.")
		return
	}
	if err != nil {
		response.ServerError(w, err)
		return
	}
	response.Created(w, "Account created.", authPayload{User: user, Token: token})
}

type loginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login checks credentials and establishes the session.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	errs, err := bind.JSONValid(r, &in)
	if err != nil {
		response.BadRequest(w, "Invalid request body.")
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.auth.Login(r.Context(), in.Email, in.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		response.Unauthorized(w, "Invalid email or password.")
		return
	}
	if err != nil {
		response.ServerError(w, err)
		return
	}
	response.OK(w, "Logged in.", authPayload{User: user, Token: token})
}

// Logout clears the session identity and discards the cart and wishlist.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.auth.Logout(r.Context()); err != nil {
		response.ServerError(w, err)
		return
	}
	response.OK(w, "Logged out.", nil)
}

// Me returns the identity bound to the current session, or null when
// anonymous. The frontend calls this at boot to rehydrate its auth state.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	ident := c.auth.Current(r.Context())
	if !ident.LoggedIn() {
		response.OK(w, "", nil)
		return
	}
	response.OK(w, "", ident)
}
