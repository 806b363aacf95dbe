package handlers

import (
	"net/http"

	"church_admin/store"

	"github.com/gin-gonic/gin"
)

const colorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

type ThemeHandler struct {
	store *store.Store
}

func NewThemeHandler(s *store.Store) *ThemeHandler {
	return &ThemeHandler{store: s}
}

// SystemScheme records the color scheme the browser reports, when it does.
func (h *ThemeHandler) SystemScheme() gin.HandlerFunc {
	return func(c *gin.Context) {
		if v := c.GetHeader(colorSchemeHeader); v != "" {
			h.store.Theme().SetSystemTheme(store.ParseScheme(v))
		}
		c.Header("Accept-CH", colorSchemeHeader)
		c.Next()
	}
}

func (h *ThemeHandler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, h.view())
}

func (h *ThemeHandler) SetTheme(c *gin.Context) {
	var req struct {
		Theme store.Theme `json:"theme" form:"theme" binding:"required,oneof=light dark system"`
	}
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.store.Theme().SetTheme(c.Request.Context(), req.Theme); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save theme"})
		return
	}
	c.JSON(http.StatusOK, h.view())
}

func (h *ThemeHandler) view() gin.H {
	st := h.store.State().Theme
	return gin.H{
		"theme":       st.Theme,
		"systemTheme": st.SystemTheme,
		"resolved":    st.Resolved(),
	}
}
