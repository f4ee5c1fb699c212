package render

import (
	"net/http"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const flashSessionName = "fyyur_flash"

// Flash queues a one-time notification shown on the next rendered page.
func (e *Engine) Flash(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := e.store.Get(r, flashSessionName)
	session.AddFlash(message)
	if err := session.Save(r, w); err != nil {
		e.log.Warn("Failed to save flash session", zap.Error(err))
	}
}

// flashes drains and returns the queued notifications.
func (e *Engine) flashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := e.store.Get(r, flashSessionName)

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Flashes() removed them from the session, persist the removal.
	if err := session.Save(r, w); err != nil {
		e.log.Warn("Failed to save flash session", zap.Error(err))
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}

func newFlashStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
	}
	return store
}
