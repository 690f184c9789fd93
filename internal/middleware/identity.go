package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/Totarae/monuments/internal/apperrors"
	"github.com/Totarae/monuments/internal/model"
	"go.uber.org/zap"
)

type identityKey struct{}

// Identity описывает действующего пользователя запроса. Нулевое значение означает анонима.
type Identity struct {
	User *model.User
}

func (i Identity) Authenticated() bool {
	return i.User != nil
}

func (i Identity) IsAdmin() bool {
	return i.User != nil && i.User.IsAdmin
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext возвращает Identity, положенную Authenticate.
func IdentityFromContext(ctx context.Context) Identity {
	id, _ := ctx.Value(identityKey{}).(Identity)
	return id
}

// SessionReader достаёт id пользователя из сессии запроса.
type SessionReader interface {
	UserID(r *http.Request) (int, bool)
}

// UserFinder загружает пользователя по id.
type UserFinder interface {
	User(ctx context.Context, id int) (*model.User, error)
}

// Authenticate определяет пользователя по сессии и кладёт Identity в контекст.
// Сессия с id несуществующего пользователя считается анонимной.
func Authenticate(sessions SessionReader, users UserFinder, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id Identity
			if userID, ok := sessions.UserID(r); ok {
				user, err := users.User(r.Context(), userID)
				switch {
				case err == nil:
					id.User = user
				case errors.Is(err, apperrors.ErrNotFound):
					logger.Debug("session refers to unknown user", zap.Int("user_id", userID))
				default:
					logger.Error("failed to load session user", zap.Int("user_id", userID), zap.Error(err))
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}
