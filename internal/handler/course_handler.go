package handler

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"

	middleware "registros/internal/midlleware"
	"registros/internal/repository"
)

type CourseHandler struct {
	courses       CourseStore
	banner        *ErrorBanner
	indexTmpl     *template.Template
	registrosTmpl *template.Template
	cadastroTmpl  *template.Template
	editTmpl      *template.Template
}

func NewCourseHandler(courses CourseStore, banner *ErrorBanner) *CourseHandler {
	return &CourseHandler{
		courses:       courses,
		banner:        banner,
		indexTmpl:     template.Must(template.ParseFS(templatesFS, "templates/index.html")),
		registrosTmpl: template.Must(template.ParseFS(templatesFS, "templates/registros.html")),
		cadastroTmpl:  template.Must(template.ParseFS(templatesFS, "templates/form-cadastro.html")),
		editTmpl:      template.Must(template.ParseFS(templatesFS, "templates/edit.html")),
	}
}

// Index renders the gated overview of all courses.
func (h *CourseHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, h.indexTmpl)
}

// Registros renders the gated record list.
func (h *CourseHandler) Registros(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, h.registrosTmpl)
}

func (h *CourseHandler) renderList(w http.ResponseWriter, r *http.Request, tmpl *template.Template) {
	user, _ := middleware.UsernameFromContext(r.Context())

	courses, err := h.courses.List()
	if err != nil {
		h.fail(w, "listing courses", err)
		return
	}

	data := map[string]interface{}{
		"User":       user,
		"IsLoggedIn": true,
		"Courses":    courses,
	}
	tmpl.Execute(w, data)
}

func (h *CourseHandler) CadastroPage(w http.ResponseWriter, r *http.Request) {
	h.cadastroTmpl.Execute(w, nil)
}

// Inserir stores a new course. An existing code is skipped silently and
// the browser lands on the list either way.
func (h *CourseHandler) Inserir(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	code, err := strconv.Atoi(r.FormValue("codigo"))
	if err != nil {
		http.Error(w, "Invalid course code", http.StatusBadRequest)
		return
	}

	result, err := h.courses.Insert(code, r.FormValue("nome"), r.FormValue("carga"), r.FormValue("professor"))
	if err != nil {
		h.fail(w, "inserting course", err)
		return
	}
	if result == repository.Skipped {
		log.Printf("course %d already exists, insert skipped", code)
	}

	http.Redirect(w, r, "/registros", http.StatusSeeOther)
}

// Editar fetches the selected record and renders the edit form with its
// current values.
func (h *CourseHandler) Editar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	code, err := strconv.Atoi(r.FormValue("codigod"))
	if err != nil {
		http.Error(w, "Invalid course code", http.StatusBadRequest)
		return
	}

	course, err := h.courses.GetByCode(code)
	if err != nil {
		h.fail(w, "fetching course", err)
		return
	}
	if course == nil {
		http.Error(w, "Record not found", http.StatusNotFound)
		return
	}

	data := map[string]interface{}{
		"Codigo":    course.Code,
		"Nome":      course.Name,
		"Carga":     course.Workload,
		"Professor": course.Professor,
	}
	h.editTmpl.Execute(w, data)
}

// Update rewrites a record. Missing fields are a client error, a code
// that matches nothing is not found.
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	rawCode := r.FormValue("codigo")
	if rawCode == "" {
		http.Error(w, "All fields are required.", http.StatusBadRequest)
		return
	}
	code, err := strconv.Atoi(rawCode)
	if err != nil {
		http.Error(w, "Invalid course code", http.StatusBadRequest)
		return
	}

	updated, err := h.courses.Update(code, r.FormValue("nome"), r.FormValue("carga"), r.FormValue("professor"))
	if errors.Is(err, repository.ErrMissingFields) {
		http.Error(w, "All fields are required.", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.fail(w, "updating course", err)
		return
	}
	if !updated {
		http.Error(w, "Record not found or no changes made.", http.StatusNotFound)
		return
	}

	http.Redirect(w, r, "/registros", http.StatusSeeOther)
}

// Delete removes a record; a code that never existed still redirects.
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	code, err := strconv.Atoi(r.FormValue("codigod"))
	if err != nil {
		http.Error(w, "Invalid course code", http.StatusBadRequest)
		return
	}

	if err := h.courses.Delete(code); err != nil {
		h.fail(w, "deleting course", err)
		return
	}

	http.Redirect(w, r, "/registros", http.StatusSeeOther)
}

// fail records the error on the home banner and answers with a generic 500.
func (h *CourseHandler) fail(w http.ResponseWriter, action string, err error) {
	log.Printf("%s: %v", action, err)
	h.banner.Set("Something went wrong, try again")
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
