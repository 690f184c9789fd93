// Package handlers реализует HTTP-слой: разбор форм, вызов сервисов,
// JSON-представления страниц и редиректы после изменений.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Totarae/monuments/internal/apperrors"
	"github.com/Totarae/monuments/internal/middleware"
	"github.com/Totarae/monuments/internal/model"
	"github.com/Totarae/monuments/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handlers.go -destination=mocks_test.go -package=handlers_test

type Accounts interface {
	Register(ctx context.Context, username, password, confirmation string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, error)
}

type Agencies interface {
	List(ctx context.Context) ([]model.Agency, error)
	Get(ctx context.Context, id int) (*model.Agency, error)
	Create(ctx context.Context, form service.AgencyForm) (*model.Agency, error)
	Update(ctx context.Context, id int, form service.AgencyForm) (*model.Agency, error)
	Delete(ctx context.Context, id int) error
}

type States interface {
	List(ctx context.Context) ([]model.State, error)
	Get(ctx context.Context, id int) (*model.State, error)
	Create(ctx context.Context, actorID int, form service.StateForm) (*model.State, error)
	Update(ctx context.Context, id int, form service.StateForm) (*model.State, error)
	Delete(ctx context.Context, id int) error
}

type Monuments interface {
	ListApproved(ctx context.Context) ([]model.Monument, error)
	ListPending(ctx context.Context) ([]model.Monument, error)
	Get(ctx context.Context, id int) (*model.Monument, error)
	Details(ctx context.Context, id, userID int) (*model.MonumentDetails, error)
	Create(ctx context.Context, actorID int, form service.MonumentForm) (*model.Monument, error)
	Update(ctx context.Context, id int, form service.MonumentForm) (*model.Monument, error)
	Approve(ctx context.Context, id int) error
	Decline(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}

type Visits interface {
	Record(ctx context.Context, userID, monumentID int, form service.VisitForm) (*model.Visit, error)
	HasVisited(ctx context.Context, userID, monumentID int) (bool, error)
	ListVisited(ctx context.Context, userID int) ([]model.Monument, error)
}

type Dashboard interface {
	Counts(ctx context.Context) (*model.Dashboard, error)
}

// Sessions управляет сессией клиента.
type Sessions interface {
	Start(w http.ResponseWriter, r *http.Request, userID int) string
	Destroy(w http.ResponseWriter, r *http.Request)
	SetFlash(w http.ResponseWriter, r *http.Request, msg string)
	PopFlash(r *http.Request) string
}

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services собирает зависимости обработчиков.
type Services struct {
	Accounts  Accounts
	Agencies  Agencies
	States    States
	Monuments Monuments
	Visits    Visits
	Dashboard Dashboard
}

type Handler struct {
	Services
	Sessions Sessions
	Store    Pinger
	Logger   *zap.Logger
}

func NewHandler(svc Services, sessions Sessions, store Pinger, logger *zap.Logger) *Handler {
	return &Handler{Services: svc, Sessions: sessions, Store: store, Logger: logger}
}

// Page описывает JSON-представление страницы.
type Page struct {
	Page  string      `json:"page"`
	User  *model.User `json:"user,omitempty"`
	Flash string      `json:"flash,omitempty"`
	Data  any         `json:"data,omitempty"`
}

// ErrorView задаёт тело ответа с ошибкой.
type ErrorView struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Error("failed to encode response", zap.Error(err))
	}
}

// render отдаёт страницу name и забирает одноразовое сообщение из сессии.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	h.writeJSON(w, http.StatusOK, Page{
		Page:  name,
		User:  middleware.IdentityFromContext(r.Context()).User,
		Flash: h.Sessions.PopFlash(r),
		Data:  data,
	})
}

// fail переводит ошибку сервиса в код ответа. Внутренние ошибки логируются,
// клиенту уходит общий текст.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.StatusCode(err)
	if code == http.StatusInternalServerError {
		h.Logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.Error(err),
		)
	}
	h.writeJSON(w, code, ErrorView{Code: code, Message: apperrors.Message(err)})
}

// done завершает успешное изменение: flash и 303 на следующую страницу.
func (h *Handler) done(w http.ResponseWriter, r *http.Request, flash, target string) {
	if flash != "" {
		h.Sessions.SetFlash(w, r, flash)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// pathID разбирает {id}. Кривой id означает отсутствующую запись.
func pathID(r *http.Request, entity string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, &apperrors.NotFoundError{Entity: entity}
	}
	return id, nil
}

func currentUser(r *http.Request) *model.User {
	return middleware.IdentityFromContext(r.Context()).User
}

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}

// Ping проверяет хранилище.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(r.Context()); err != nil {
		h.Logger.Error("storage ping failed", zap.Error(err))
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Index отдаёт главную с агрегатами.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Dashboard.Counts(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, "index", counts)
}
