package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"theatre-booking/internal/booking"
)

// AdminList shows every ticket request with requester and show details. The
// optional status query param filters on an exact match; unknown values
// simply match nothing.
func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("status")

	rows, err := h.Booking.ListRequests(r.Context(), filter)
	if err != nil {
		h.serverError(w, "list requests", err)
		return
	}

	h.render(w, "admin.html", adminPage{
		Title:  "Requests",
		Rows:   rows,
		Filter: filter,
	})
}

// SetStatus transitions a request. Values outside the known status set are
// rejected by redirecting back with the row untouched. The optional "from"
// form field names the local page to return to.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}

	back := r.PostFormValue("from")
	if back == "" || !strings.HasPrefix(back, "/") {
		back = "/admin"
	}

	requestID, err := strconv.ParseInt(chi.URLParam(r, "requestID"), 10, 64)
	if err != nil {
		http.Redirect(w, r, back, http.StatusFound)
		return
	}

	err = h.Booking.SetStatus(r.Context(), requestID, r.PostFormValue("status"))
	if errors.Is(err, booking.ErrUnknownStatus) {
		http.Redirect(w, r, back, http.StatusFound)
		return
	}
	if err != nil {
		h.serverError(w, "set status", err)
		return
	}

	http.Redirect(w, r, back, http.StatusFound)
}
