package handler

import (
	"html/template"
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	middleware "registros/internal/midlleware"
	"registros/internal/session"
)

type LoginHandler struct {
	creds   CredentialStore
	manager *session.Manager
	store   sessions.Store
	tmpl    *template.Template
}

func NewLoginHandler(creds CredentialStore, manager *session.Manager, store sessions.Store) *LoginHandler {
	tmpl := template.Must(template.ParseFS(templatesFS, "templates/login.html"))
	return &LoginHandler{
		creds:   creds,
		manager: manager,
		store:   store,
		tmpl:    tmpl,
	}
}

func (h *LoginHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Error":      "",
		"IsLoggedIn": false,
		"User":       "",
	}
	h.tmpl.Execute(w, data)
}

// Login verifies the submitted credentials. A match replaces the active
// session and sends the browser to the record list; anything else
// re-renders the form with a generic message.
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.LoginPage(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	cred, err := h.creds.FindByUsername(username)
	if err != nil {
		log.Printf("login lookup failed for %s: %v", username, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if cred == nil || !h.creds.Verify(password, cred.PasswordHash) {
		data := map[string]interface{}{
			"Error":      "Invalid user or password",
			"IsLoggedIn": false,
			"User":       "",
		}
		h.tmpl.Execute(w, data)
		return
	}

	token, err := h.manager.Login(cred.Username)
	if err != nil {
		log.Printf("session creation failed for %s: %v", username, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	s, _ := h.store.Get(r, middleware.SessionName)
	s.Values[middleware.TokenKey] = token
	if err := s.Save(r, w); err != nil {
		log.Printf("saving session cookie: %v", err)
	}

	http.Redirect(w, r, "/index", http.StatusSeeOther)
}

// Logout clears the active session and the cookie that pointed at it.
func (h *LoginHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.manager.Logout(middleware.Token(h.store, r))

	s, _ := h.store.Get(r, middleware.SessionName)
	s.Options.MaxAge = -1
	s.Save(r, w)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
