package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	UIDCookie  = "FARM_UID"
	UIDHeader  = "X-Farm-Uid"
	DefaultUID = "dev-farmer"
)

type uidKey struct{}

// WithUID returns ctx carrying uid. The backend client forwards it upstream.
func WithUID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, uidKey{}, uid)
}

// UIDFrom returns the uid stored by WithUID, or "".
func UIDFrom(ctx context.Context) string {
	uid, _ := ctx.Value(uidKey{}).(string)
	return uid
}

func setUID(c echo.Context, uid string) {
	c.Set("uid", uid)
	c.SetRequest(c.Request().WithContext(WithUID(c.Request().Context(), uid)))
}

// DevLogin puts a uid on every request: the cookie if set, else ?uid=,
// else DefaultUID. The chosen uid is written back as the cookie.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(UIDCookie); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				uid = strings.TrimSpace(c.QueryParam("uid"))
				if uid == "" {
					uid = DefaultUID
				}
				c.SetCookie(&http.Cookie{Name: UIDCookie, Value: uid, Path: "/", HttpOnly: true})
			}
			setUID(c, uid)
			return next(c)
		}
	}
}

// RequireUID is used instead of DevLogin when dev login is off. It takes the
// uid from the X-Farm-Uid header or the cookie and rejects requests with
// neither.
func RequireUID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := c.Request().Header.Get(UIDHeader)
			if uid == "" {
				if ck, err := c.Cookie(UIDCookie); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]any{"success": false, "message": "missing uid"})
			}
			setUID(c, uid)
			return next(c)
		}
	}
}
