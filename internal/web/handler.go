package web

import (
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"theatre-booking/internal/auth"
	"theatre-booking/internal/booking"
	"theatre-booking/internal/logger"
	"theatre-booking/internal/shows"
)

type Handler struct {
	Auth     *auth.Service
	Sessions *auth.Sessions
	Shows    *shows.Service
	Booking  *booking.Service
	Users    auth.UserDirectory
	Logger   *logger.Logger
}

func NewHandler(authSvc *auth.Service, sessions *auth.Sessions, showSvc *shows.Service, bookingSvc *booking.Service, users auth.UserDirectory, log *logger.Logger) *Handler {
	return &Handler{
		Auth:     authSvc,
		Sessions: sessions,
		Shows:    showSvc,
		Booking:  bookingSvc,
		Users:    users,
		Logger:   log,
	}
}

// Router builds the full route table, including the session middleware
// groups.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	// --- Public routes ---
	r.Get("/", h.Index)
	r.Get("/register", h.RegisterForm)
	r.Post("/register", h.Register)
	r.Get("/login", h.LoginForm)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)

	// --- Authenticated routes ---
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireUser(h.Sessions))
		r.Get("/dashboard", h.Dashboard)
		r.Post("/create-request", h.CreateRequest)
	})

	// --- Admin routes ---
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin(h.Sessions, h.Users))
		r.Get("/admin", h.AdminList)
		r.Post("/admin/set-status/{requestID}", h.SetStatus)
	})

	return r
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", formPage{Title: "Theatre Booking"})
}

func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", formPage{Title: "Register"})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, "register.html", formPage{Title: "Register", Error: auth.ErrFieldsRequired.Error()})
		return
	}

	in := auth.RegisterInput{
		Login:    r.PostFormValue("login"),
		FullName: r.PostFormValue("full_name"),
		Phone:    r.PostFormValue("phone"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.Auth.Register(r.Context(), in, clientIP(r), r.UserAgent())
	switch {
	case errors.Is(err, auth.ErrFieldsRequired),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, auth.ErrTaken):
		h.render(w, "register.html", formPage{Title: "Register", Error: err.Error()})
		return
	case err != nil:
		h.serverError(w, "register", err)
		return
	}

	if err := h.Sessions.Issue(w, user.ID, user.IsAdmin); err != nil {
		h.serverError(w, "issue session", err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", formPage{Title: "Login"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, "login.html", formPage{Title: "Login", Error: auth.ErrInvalidCredentials.Error()})
		return
	}

	user, err := h.Auth.Authenticate(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"), clientIP(r), r.UserAgent())
	if errors.Is(err, auth.ErrInvalidCredentials) {
		h.render(w, "login.html", formPage{Title: "Login", Error: err.Error()})
		return
	}
	if err != nil {
		h.serverError(w, "login", err)
		return
	}

	if err := h.Sessions.Issue(w, user.ID, user.IsAdmin); err != nil {
		h.serverError(w, "issue session", err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.Sessions.Read(r)
	h.Sessions.Clear(w)
	if ok {
		h.Auth.Logout(r.Context(), sess.UserID, clientIP(r), r.UserAgent())
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	user, err := h.Users.GetUserByID(r.Context(), sess.UserID)
	if err != nil {
		// Session references a user that no longer resolves.
		h.Sessions.Clear(w)
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	performances, err := h.Shows.Schedule(r.Context())
	if err != nil {
		h.serverError(w, "load schedule", err)
		return
	}
	requests, err := h.Booking.RequestsForUser(r.Context(), sess.UserID)
	if err != nil {
		h.serverError(w, "load requests", err)
		return
	}

	h.render(w, "dashboard.html", dashboardPage{
		Title:        "Dashboard",
		User:         user,
		Performances: performances,
		Requests:     requests,
	})
}

// CreateRequest accepts the ticket request form. Missing or non-numeric
// fields are dropped silently with a redirect back to the dashboard.
func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	performanceID, perfErr := strconv.ParseInt(r.PostFormValue("performance_id"), 10, 64)
	qty, qtyErr := strconv.Atoi(r.PostFormValue("qty"))
	paymentMethod := r.PostFormValue("payment_method")

	if perfErr != nil || qtyErr != nil || qty == 0 || paymentMethod == "" {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	if _, err := h.Booking.CreateRequest(r.Context(), sess.UserID, performanceID, qty, paymentMethod); err != nil {
		h.serverError(w, "create request", err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// clientIP returns the remote address without the port, for the audit
// trail.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
