package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "register", nil)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	user, err := h.Accounts.Register(r.Context(),
		formValue(r, "username"),
		r.PostFormValue("password"),
		r.PostFormValue("confirmation"),
	)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.Logger.Debug("registered", zap.Int("user_id", user.ID))
	h.done(w, r, "Successfully registered!", "/login")
}

type loginView struct {
	Next string `json:"next,omitempty"`
}

func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login", loginView{Next: safeNext(r.URL.Query().Get("next"))})
}

// Login проверяет пароль и начинает новую сессию; старый токен
// после входа больше не действует.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	user, err := h.Accounts.Login(r.Context(), formValue(r, "username"), r.PostFormValue("password"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.Sessions.Start(w, r, user.ID)

	target := safeNext(formValue(r, "next"))
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Destroy(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// safeNext пропускает только локальные пути.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}
