package handler

import (
	"net/http"

	"anoa.com/socialfeed/internal/entity"
	"anoa.com/socialfeed/internal/modules/theme/dto"
	theme "anoa.com/socialfeed/internal/modules/theme/service"
	"anoa.com/socialfeed/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type ThemeHandler struct {
	store    theme.ThemeStore
	upgrader websocket.Upgrader
}

func NewThemeHandler(store theme.ThemeStore) *ThemeHandler {
	return &ThemeHandler{
		store: store,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Native app clients send no Origin header.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *ThemeHandler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewThemeResponse(h.store))
}

func (h *ThemeHandler) ToggleTheme(c *gin.Context) {
	pref := h.store.Toggle(c.Request.Context())
	c.JSON(http.StatusOK, dto.ThemeResponse{
		IsDarkMode: pref.IsDarkMode,
		Mode:       pref.Value(),
		Palette:    theme.PaletteFor(pref.IsDarkMode),
	})
}

// HandleWebSocket streams the current theme and then a frame after changes.
// Bursts of toggles coalesce, so the last frame always matches the store.
func (h *ThemeHandler) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.WithError(err).Warn("failed to upgrade theme websocket")
		return
	}
	defer conn.Close()

	// One pending wake-up at most; each frame carries the store's current value.
	changed := make(chan struct{}, 1)
	unsubscribe := h.store.Subscribe(func(entity.ThemePreference) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	clientClosed := make(chan struct{})
	go func() {
		defer close(clientClosed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(dto.NewThemeResponse(h.store)); err != nil {
		return
	}

	for {
		select {
		case <-changed:
			if err := conn.WriteJSON(dto.NewThemeResponse(h.store)); err != nil {
				logger.Log.WithError(err).Debug("theme websocket write failed")
				return
			}
		case <-clientClosed:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
