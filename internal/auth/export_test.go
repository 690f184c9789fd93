package auth

import "time"

func (a *Auth) SetNow(now func() time.Time) { a.now = now }

func (a *Auth) SessionCount() int { return a.sessions.Len() }
