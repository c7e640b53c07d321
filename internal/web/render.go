package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"theatre-booking/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// formPage backs the landing, register and login views. Error is the inline
// validation message; the page still renders with HTTP 200.
type formPage struct {
	Title string
	Error string
}

type dashboardPage struct {
	Title        string
	User         *models.User
	Performances []models.PerformanceListing
	Requests     []models.RequestSummary
}

type adminPage struct {
	Title  string
	Rows   []models.AdminRequestRow
	Filter string
}

// render executes the template into a buffer first so a template fault
// cannot produce a half-written page.
func (h *Handler) render(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		h.Logger.Error("WEB", "Template "+name+" failed: "+err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// serverError logs the real error and returns a generic failure response.
func (h *Handler) serverError(w http.ResponseWriter, context string, err error) {
	h.Logger.Error("WEB", context+": "+err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
