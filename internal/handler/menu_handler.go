package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"curateurs-backoffice/internal/middleware"
	"curateurs-backoffice/internal/navigation"
)

// MenuResponse is the navigation of the current user.
type MenuResponse struct {
	Items []navigation.MenuItem `json:"items"`
}

// Menu handles GET /api/v1/menu
func Menu(c *gin.Context) {
	items := []navigation.MenuItem{}
	if s := middleware.SessionFrom(c); s != nil {
		if menu := navigation.BuildMenu(s.Role, s.Permissions); menu != nil {
			items = menu
		}
	}
	c.JSON(http.StatusOK, MenuResponse{Items: items})
}
