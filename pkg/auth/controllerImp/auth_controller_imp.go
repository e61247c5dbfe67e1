package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"farmdash/pkg/auth/controller"
	"farmdash/pkg/middleware"
)

type authCtrl struct{}

func NewAuthController() controller.AuthController { return &authCtrl{} }

// DevLogin switches the current uid to ?uid= (or the default) and, when
// ?next= is a local path, redirects there.
func (h *authCtrl) DevLogin(c echo.Context) error {
	uid := strings.TrimSpace(c.QueryParam("uid"))
	if uid == "" {
		uid = middleware.DefaultUID
	}
	c.SetCookie(&http.Cookie{Name: middleware.UIDCookie, Value: uid, Path: "/", HttpOnly: true})
	if next := c.QueryParam("next"); strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return c.Redirect(http.StatusSeeOther, next)
	}
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}
