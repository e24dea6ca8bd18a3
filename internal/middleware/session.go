package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tourbook/internal/config"
	"tourbook/internal/models"
	"tourbook/internal/repository"
	"tourbook/internal/security"
)

const (
	DefaultLanguage   = "ru"
	sessionContextKey = "session"
)

// SessionManager keeps session data server side. The browser only holds a
// signed token naming the session.
type SessionManager struct {
	store repository.SessionStore
	cfg   config.SessionConfig
	now   func() time.Time
}

func NewSessionManager(store repository.SessionStore, cfg config.SessionConfig, now func() time.Time) *SessionManager {
	if now == nil {
		now = time.Now
	}
	return &SessionManager{store: store, cfg: cfg, now: now}
}

type sessionHandle struct {
	manager *SessionManager
	session models.Session
	staleID string
	loaded  bool
}

// persist reports whether the session has to reach the store. A fresh
// anonymous session that nothing wrote to is dropped, so cookieless traffic
// leaves no trace.
func (h *sessionHandle) persist() bool {
	if h.loaded || h.staleID != "" {
		return true
	}
	s := h.session
	return s.Authenticated() ||
		s.BookingIntent != nil ||
		len(s.Flashes) > 0 ||
		(s.Language != "" && s.Language != DefaultLanguage)
}

// Middleware loads the caller's session, or starts an anonymous one, and
// persists it once the handler is done.
func (m *SessionManager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		log := zerolog.Ctx(ctx)

		session, ok := m.load(c)
		if !ok {
			session = m.fresh()
			if err := m.writeCookie(c, session); err != nil {
				log.Error().Err(err).Msg("issue session cookie")
			}
		}

		handle := &sessionHandle{manager: m, session: session, loaded: ok}
		c.Set(sessionContextKey, handle)

		c.Next()

		if handle.staleID != "" {
			if err := m.store.Delete(ctx, handle.staleID); err != nil {
				log.Warn().Err(err).Msg("drop rotated session")
			}
		}
		if !handle.persist() {
			return
		}
		if err := m.store.Save(ctx, handle.session); err != nil {
			log.Error().Err(err).Str("session_id", handle.session.ID).Msg("save session")
		}
	}
}

func (m *SessionManager) load(c *gin.Context) (models.Session, bool) {
	raw, err := c.Cookie(m.cfg.CookieName)
	if err != nil || raw == "" {
		return models.Session{}, false
	}

	claims, err := security.ParseSessionToken(raw, m.cfg.Secret, m.now())
	if err != nil {
		return models.Session{}, false
	}

	session, err := m.store.Get(c.Request.Context(), claims.SessionID)
	if err != nil {
		if !errors.Is(err, repository.ErrSessionNotFound) {
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("load session")
		}
		return models.Session{}, false
	}
	return session, true
}

func (m *SessionManager) fresh() models.Session {
	now := m.now()
	return models.Session{
		ID:        security.NewSessionID(),
		Language:  DefaultLanguage,
		CreatedAt: now,
		ExpiresAt: now.Add(m.cfg.TTL),
	}
}

func (m *SessionManager) writeCookie(c *gin.Context, session models.Session) error {
	token, err := security.IssueSessionToken(m.cfg.Secret, session.ID, m.now(), m.cfg.TTL)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cfg.CookieName, token, int(m.cfg.TTL.Seconds()), "/", "", m.cfg.Secure, true)
	return nil
}

// CurrentSession returns the request's session. Mutations are saved when
// the request completes.
func CurrentSession(c *gin.Context) *models.Session {
	handle := currentHandle(c)
	if handle == nil {
		return nil
	}
	return &handle.session
}

// RotateSession moves the session data under a new id and reissues the
// cookie. Call it before writing the response whenever the privilege level
// changes.
func RotateSession(c *gin.Context) error {
	handle := currentHandle(c)
	if handle == nil {
		return errors.New("no session in context")
	}

	m := handle.manager
	if handle.staleID == "" {
		handle.staleID = handle.session.ID
	}
	now := m.now()
	handle.session.ID = security.NewSessionID()
	handle.session.CreatedAt = now
	handle.session.ExpiresAt = now.Add(m.cfg.TTL)

	return m.writeCookie(c, handle.session)
}

func currentHandle(c *gin.Context) *sessionHandle {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	handle, _ := value.(*sessionHandle)
	return handle
}
