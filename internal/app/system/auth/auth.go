package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	tokenstore "github.com/reliefworks/reliefhub/internal/app/store/tokens"
	userstore "github.com/reliefworks/reliefhub/internal/app/store/users"
	"github.com/reliefworks/reliefhub/internal/app/system/webjson"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	isAuthKey = "is_authenticated"
	userIDKey = "user_id"
	userName  = "user_name"
	userEmail = "user_email"
	userRole  = "user_role"
	tokenKey  = "token"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Current-User helper                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionUser is what we cache in the session & inject into r.Context().
type SessionUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user & "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// WithTestUser returns a request carrying the given user in context,
// bypassing token and cookie resolution. Test helper only.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

/*─────────────────────────────────────────────────────────────────────────────*
| SessionManager                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionManager resolves callers from bearer tokens or cookie sessions
// and owns sign-in/sign-out for both.
type SessionManager struct {
	sessions    *sessions.CookieStore
	sessionName string
	tokens      tokenstore.Store
	users       userstore.Store
	tokenTTL    time.Duration
	log         *zap.Logger
}

// Options configures a SessionManager.
type Options struct {
	SessionKey  string
	SessionName string
	Domain      string
	Secure      bool
	TokenTTL    time.Duration
}

// NewSessionManager builds a SessionManager over the given token and
// user stores. In production (Secure=true) cookies are Secure with
// SameSite=None; in local dev over http, Lax.
func NewSessionManager(opts Options, tokens tokenstore.Store, users userstore.Store, logger *zap.Logger) (*SessionManager, error) {
	if opts.SessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(opts.SessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(opts.SessionKey)))
	}
	if opts.SessionName == "" {
		opts.SessionName = "reliefhub-session"
	}

	store := sessions.NewCookieStore([]byte(opts.SessionKey))
	cookieOpts := &sessions.Options{
		Domain:   opts.Domain,
		Path:     "/",
		Secure:   opts.Secure,
		HttpOnly: true,
	}
	if opts.Secure {
		cookieOpts.SameSite = http.SameSiteNoneMode
	} else {
		cookieOpts.SameSite = http.SameSiteLaxMode
	}
	store.Options = cookieOpts

	logger.Info("session store initialized",
		zap.Bool("secure", opts.Secure),
		zap.String("domain", opts.Domain))

	return &SessionManager{
		sessions:    store,
		sessionName: opts.SessionName,
		tokens:      tokens,
		users:       users,
		tokenTTL:    opts.TokenTTL,
		log:         logger,
	}, nil
}

// SignIn issues a bearer token for the user and sets the cookie session.
// The token value is returned so the handler can hand it to the client.
func (sm *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, u models.User) (string, error) {
	tok, err := sm.tokens.Issue(r.Context(), u.ID, sm.tokenTTL)
	if err != nil {
		return "", err
	}

	sess, _ := sm.sessions.Get(r, sm.sessionName)
	sess.Values[isAuthKey] = true
	sess.Values[userIDKey] = u.ID
	sess.Values[userName] = u.Name
	sess.Values[userEmail] = u.Email
	sess.Values[userRole] = u.Role
	sess.Values[tokenKey] = tok.Value
	if err := sess.Save(r, w); err != nil {
		sm.log.Warn("saving session cookie failed", zap.Error(err))
	}
	return tok.Value, nil
}

// SignOut revokes the caller's bearer token and clears the cookie session.
func (sm *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	if tok := bearerToken(r); tok != "" {
		if err := sm.tokens.Revoke(r.Context(), tok); err != nil {
			return err
		}
	}

	sess, _ := sm.sessions.Get(r, sm.sessionName)
	if tok, _ := sess.Values[tokenKey].(string); tok != "" {
		_ = sm.tokens.Revoke(r.Context(), tok)
	}
	sess.Options.MaxAge = -1
	sess.Values = map[any]any{}
	return sess.Save(r, w)
}

// LoadSessionUser injects the caller into context if they are signed in.
// Bearer tokens take precedence over cookie sessions.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tok := bearerToken(r); tok != "" {
			if u, err := sm.resolveToken(r.Context(), tok); err == nil {
				next.ServeHTTP(w, withUser(r, u))
				return
			}
			// Invalid token falls through to the cookie session so a
			// stale Authorization header does not lock the browser out.
		}

		sess, _ := sm.sessions.Get(r, sm.sessionName)
		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			u := &SessionUser{
				ID:    getString(sess, userIDKey),
				Name:  getString(sess, userName),
				Email: getString(sess, userEmail),
				Role:  getString(sess, userRole),
			}
			r = withUser(r, u)
		}
		next.ServeHTTP(w, r)
	})
}

func (sm *SessionManager) resolveToken(ctx context.Context, value string) (*SessionUser, error) {
	tok, err := sm.tokens.Lookup(ctx, value)
	if err != nil {
		return nil, err
	}
	u, err := sm.users.GetByID(ctx, tok.UserID)
	if err != nil {
		return nil, faults.Authentication("token user no longer exists")
	}
	return &SessionUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Middleware                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// RequireSignedIn ensures there is a user in context (set by
// LoadSessionUser) and answers 401 with a JSON body otherwise.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		webjson.Error(w, nil, faults.Authentication("sign in required"))
	})
}

// RequireRole ensures the caller holds one of the allowed roles.
// Missing user → 401; wrong role → 403. Both as JSON.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				webjson.Error(w, nil, faults.Authentication("sign in required"))
				return
			}
			if _, has := set[strings.ToLower(u.Role)]; !has {
				webjson.Error(w, nil, faults.Authorization(u.Role, r.URL.Path))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// helpers

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// getString safely extracts a string from a session value.
func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

// bearerToken pulls the token from the Authorization header, or from
// the "token" query parameter for clients that cannot set headers
// (websocket dials from browsers).
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}
	return r.URL.Query().Get("token")
}
