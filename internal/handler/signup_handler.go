package handler

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"registros/internal/repository"
)

type SignupHandler struct {
	creds     CredentialStore
	tmpl      *template.Template
	loginTmpl *template.Template
}

func NewSignupHandler(creds CredentialStore) *SignupHandler {
	return &SignupHandler{
		creds:     creds,
		tmpl:      template.Must(template.ParseFS(templatesFS, "templates/signup.html")),
		loginTmpl: template.Must(template.ParseFS(templatesFS, "templates/login.html")),
	}
}

func (h *SignupHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Error":      "",
		"IsLoggedIn": false,
		"User":       "",
	}
	h.tmpl.Execute(w, data)
}

// Signup creates the credential and drops the new user on the login page.
// A taken username re-renders the signup form.
func (h *SignupHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.SignupPage(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	err := h.creds.Create(username, password)
	if errors.Is(err, repository.ErrDuplicateUser) {
		data := map[string]interface{}{
			"Error":      "User already exists",
			"IsLoggedIn": false,
			"User":       "",
		}
		h.tmpl.Execute(w, data)
		return
	}
	if err != nil {
		log.Printf("signup failed for %s: %v", username, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Error":      "",
		"IsLoggedIn": false,
		"User":       "",
	}
	h.loginTmpl.Execute(w, data)
}
