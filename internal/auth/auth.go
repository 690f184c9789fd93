package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName задаёт имя сессионной куки.
const CookieName = "session"

// DefaultTTL ограничивает жизнь серверной сессии.
const DefaultTTL = 24 * time.Hour

// Просроченные сессии вычищаются не чаще раза в sweepInterval.
const sweepInterval = time.Minute

// Auth выдаёт и проверяет подписанные сессионные куки.
// Сами данные сессии хранятся на сервере, в куке только токен и подпись.
type Auth struct {
	SecretKey string
	Secure    bool
	// TTL отсчитывается от создания сессии. Ноль означает DefaultTTL.
	TTL      time.Duration
	sessions *SessionStore
	now      func() time.Time

	sweepMu   sync.Mutex
	lastSweep time.Time
}

func New(secret string, secure bool) *Auth {
	return &Auth{
		SecretKey: secret,
		Secure:    secure,
		TTL:       DefaultTTL,
		sessions:  NewSessionStore(),
		now:       time.Now,
	}
}

func (a *Auth) ttl() time.Duration {
	if a.TTL <= 0 {
		return DefaultTTL
	}
	return a.TTL
}

func (a *Auth) expired(s Session) bool {
	return a.now().Sub(s.Created) > a.ttl()
}

// sweep удаляет просроченные сессии перед созданием новой.
func (a *Auth) sweep() {
	now := a.now()
	a.sweepMu.Lock()
	if now.Sub(a.lastSweep) < sweepInterval {
		a.sweepMu.Unlock()
		return
	}
	a.lastSweep = now
	a.sweepMu.Unlock()
	a.sessions.Expire(now.Add(-a.ttl()))
}

// put заводит новую сессию и ставит куку.
func (a *Auth) put(w http.ResponseWriter, sess Session) string {
	a.sweep()
	token := uuid.NewString()
	sess.Created = a.now()
	a.sessions.Put(token, sess)
	a.setCookie(w, token)
	return token
}

// Создать подпись
func (a *Auth) sign(token string) string {
	mac := hmac.New(sha256.New, []byte(a.SecretKey))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// Кука вида: session=token:signature. MaxAge не задаём: сессия живёт до закрытия браузера.
func (a *Auth) setCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    a.SignCookieValue(token),
		Path:     "/",
		HttpOnly: true,
		Secure:   a.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ValidateToken проверяет наличие и подпись куки и возвращает токен сессии.
func (a *Auth) ValidateToken(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	parts := strings.SplitN(cookie.Value, ":", 2)
	if len(parts) != 2 || !hmac.Equal([]byte(a.sign(parts[0])), []byte(parts[1])) {
		return "", false
	}

	return parts[0], true
}

// Session возвращает сессию запроса, если кука валидна и сессия существует.
func (a *Auth) Session(r *http.Request) (Session, bool) {
	token, ok := a.ValidateToken(r)
	if !ok {
		return Session{}, false
	}
	s, ok := a.sessions.Get(token)
	if !ok {
		return Session{}, false
	}
	if a.expired(s) {
		a.sessions.Delete(token)
		return Session{}, false
	}
	return s, true
}

// UserID возвращает идентификатор вошедшего пользователя.
func (a *Auth) UserID(r *http.Request) (int, bool) {
	s, ok := a.Session(r)
	if !ok || s.UserID == 0 {
		return 0, false
	}
	return s.UserID, true
}

// Start создаёт новую сессию для пользователя. Старая сессия запроса, если была,
// уничтожается: после входа токен всегда новый.
func (a *Auth) Start(w http.ResponseWriter, r *http.Request, userID int) string {
	if old, ok := a.ValidateToken(r); ok {
		a.sessions.Delete(old)
	}
	return a.put(w, Session{UserID: userID})
}

// Destroy очищает сессию полностью и просит браузер удалить куку.
func (a *Auth) Destroy(w http.ResponseWriter, r *http.Request) {
	if token, ok := a.ValidateToken(r); ok {
		a.sessions.Delete(token)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   a.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// SetFlash сохраняет одноразовое сообщение. Для анонимного посетителя
// заводится пустая сессия, она живёт не дольше TTL.
func (a *Auth) SetFlash(w http.ResponseWriter, r *http.Request, msg string) {
	if _, ok := a.Session(r); ok {
		token, _ := a.ValidateToken(r)
		if a.sessions.Update(token, func(s *Session) { s.Flash = msg }) {
			return
		}
	}
	a.put(w, Session{Flash: msg})
}

// PopFlash возвращает и стирает одноразовое сообщение.
func (a *Auth) PopFlash(r *http.Request) string {
	if _, ok := a.Session(r); !ok {
		return ""
	}
	token, _ := a.ValidateToken(r)
	var msg string
	a.sessions.Update(token, func(s *Session) {
		msg = s.Flash
		s.Flash = ""
	})
	return msg
}

// SignCookieValue возвращает значение куки для токена. Используется и в тестах.
func (a *Auth) SignCookieValue(token string) string {
	return fmt.Sprintf("%s:%s", token, a.sign(token))
}
