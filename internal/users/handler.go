package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/2beens/fitnessapi/internal/auth"
	"github.com/2beens/fitnessapi/internal/middleware"
	"github.com/2beens/fitnessapi/internal/telemetry/metrics"
	"github.com/2beens/fitnessapi/internal/telemetry/tracing"
	"github.com/2beens/fitnessapi/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	minPasswordLength = 8
	maxUsernameLength = 64
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type usersRepo interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, string, error)
	GetUserByID(ctx context.Context, id int) (*User, error)
}

type sessionManager interface {
	Login(ctx context.Context, userID int, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
	TTL() time.Duration
}

type Handler struct {
	repo           usersRepo
	sessions       sessionManager
	secureCookies  bool
	metricsManager *metrics.Manager
}

func NewHandler(
	repo usersRepo,
	sessions sessionManager,
	secureCookies bool,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		sessions:       sessions,
		secureCookies:  secureCookies,
		metricsManager: metricsManager,
	}
}

// SetupRoutes registers the user routes, register and login are rate limited.
func (handler *Handler) SetupRoutes(
	r *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
) {
	rateLimit := middleware.RateLimit(rateLimiter, handler.metricsManager, "users", allowedPerMin)

	ur := r.PathPrefix("/users").Subrouter()
	ur.Handle("/register", rateLimit(http.HandlerFunc(handler.HandleRegister))).
		Methods(http.MethodPost, http.MethodOptions).Name("register")
	ur.Handle("/login", rateLimit(http.HandlerFunc(handler.HandleLogin))).
		Methods(http.MethodPost, http.MethodOptions).Name("login")
	ur.HandleFunc("/logout", handler.HandleLogout).Methods(http.MethodPost, http.MethodOptions).Name("logout")
	ur.HandleFunc("/me", handler.HandleMe).Methods(http.MethodGet, http.MethodOptions).Name("me")
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("register, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid register request", http.StatusBadRequest)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || len(req.Username) > maxUsernameLength {
		pkg.WriteJSONError(w, "error, invalid username", http.StatusBadRequest)
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		pkg.WriteJSONError(w, "error, invalid email", http.StatusBadRequest)
		return
	}
	if len(req.Password) < minPasswordLength {
		pkg.WriteJSONError(w, "error, password too short", http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		log.Errorf("register, hash password: %s", err)
		pkg.WriteJSONError(w, "register failed", http.StatusInternalServerError)
		return
	}

	user, err := handler.repo.CreateUser(ctx, req.Username, req.Email, passwordHash)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			pkg.WriteJSONError(w, err.Error(), http.StatusConflict)
			return
		}
		log.Errorf("register, create user: %s", err)
		pkg.WriteJSONError(w, "register failed", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterUsersRegistered.Inc()
	}
	log.Debugf("new user registered: %d [%s]", user.ID, user.Username)
	pkg.WriteJSON(w, user, http.StatusCreated)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("login, unmarshal json params: %s", err)
		pkg.WriteJSONError(w, "invalid login request", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		pkg.WriteJSONError(w, "error, username and password required", http.StatusBadRequest)
		return
	}

	user, passwordHash, err := handler.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Tracef("[username] failed login attempt for user: %s", req.Username)
			pkg.WriteJSONError(w, ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		}
		log.Errorf("login, get user: %s", err)
		pkg.WriteJSONError(w, "login failed", http.StatusInternalServerError)
		return
	}

	if !pkg.CheckPasswordHash(req.Password, passwordHash) {
		log.Tracef("[password] failed login attempt for user: %s", req.Username)
		pkg.WriteJSONError(w, ErrInvalidCredentials.Error(), http.StatusUnauthorized)
		return
	}

	token, err := handler.sessions.Login(ctx, user.ID, time.Now())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		pkg.WriteJSONError(w, "login failed", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(handler.sessions.TTL().Seconds()),
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	log.Tracef("user %d logged in", user.ID)
	pkg.WriteJSON(w, loginResponse{Token: token, User: user}, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	token := auth.TokenFromRequest(r)
	if token == "" {
		pkg.WriteJSONError(w, "no session", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.sessions.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout: %s", err)
		pkg.WriteJSONError(w, "logout failed", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		pkg.WriteJSONError(w, "no session", http.StatusUnauthorized)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	pkg.WriteJSON(w, map[string]bool{"logged_out": true}, http.StatusOK)
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.me")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := handler.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// session outlived its user
			pkg.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.Errorf("get user %d: %s", userID, err)
		pkg.WriteJSONError(w, "get user failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, user, http.StatusOK)
}
