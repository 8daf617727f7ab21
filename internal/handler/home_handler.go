package handler

import (
	"html/template"
	"net/http"

	"github.com/gorilla/sessions"

	middleware "registros/internal/midlleware"
	"registros/internal/session"
)

type HomeHandler struct {
	manager *session.Manager
	store   sessions.Store
	banner  *ErrorBanner
	tmpl    *template.Template
}

func NewHomeHandler(manager *session.Manager, store sessions.Store, banner *ErrorBanner) *HomeHandler {
	tmpl := template.Must(template.ParseFS(templatesFS, "templates/home.html"))
	return &HomeHandler{
		manager: manager,
		store:   store,
		banner:  banner,
		tmpl:    tmpl,
	}
}

// Home renders the landing page with the last error banner, which clears
// itself three seconds after being shown.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	token := middleware.Token(h.store, r)
	user, loggedIn := h.manager.CurrentUser(token)

	data := map[string]interface{}{
		"Error":      h.banner.Show(),
		"IsLoggedIn": loggedIn,
		"User":       user,
	}

	h.tmpl.Execute(w, data)
}
