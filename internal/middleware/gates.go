package middleware

import (
	"net/http"
	"net/url"

	"github.com/Totarae/monuments/internal/metrics"
	"github.com/Totarae/monuments/internal/model"
)

// Причины отказа.
const (
	ReasonAnonymous = "anonymous"
	ReasonNotAdmin  = "not_admin"
)

// Decision хранит результат проверки доступа: Allowed(user) или Denied(reason).
type Decision struct {
	User   *model.User
	Reason string
}

func Allowed(u *model.User) Decision { return Decision{User: u} }

func Denied(reason string) Decision { return Decision{Reason: reason} }

func (d Decision) OK() bool { return d.Reason == "" && d.User != nil }

// Authorize сначала проверяет вход, затем, если нужно, права администратора.
func Authorize(id Identity, adminOnly bool) Decision {
	if !id.Authenticated() {
		return Denied(ReasonAnonymous)
	}
	if adminOnly && !id.IsAdmin() {
		return Denied(ReasonNotAdmin)
	}
	return Allowed(id.User)
}

// LoginURL строит адрес входа с возвратом на запрошенную страницу.
func LoginURL(next string) string {
	return "/login?next=" + url.QueryEscape(next)
}

func gate(m *metrics.Metrics, adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := Authorize(IdentityFromContext(r.Context()), adminOnly)
			switch d.Reason {
			case "":
				next.ServeHTTP(w, r)
			case ReasonAnonymous:
				m.Denied(ReasonAnonymous)
				http.Redirect(w, r, LoginURL(r.URL.RequestURI()), http.StatusSeeOther)
			default:
				// не-админ молча уходит на главную, без ошибки
				m.Denied(d.Reason)
				http.Redirect(w, r, "/", http.StatusSeeOther)
			}
		})
	}
}

// RequireLogin отправляет анонима на /login?next=<исходный адрес>.
func RequireLogin(m *metrics.Metrics) func(http.Handler) http.Handler {
	return gate(m, false)
}

// RequireAdmin пропускает только администраторов. Аноним идёт на вход,
// обычный пользователь на главную.
func RequireAdmin(m *metrics.Metrics) func(http.Handler) http.Handler {
	return gate(m, true)
}
