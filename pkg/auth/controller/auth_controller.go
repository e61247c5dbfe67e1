// Package controller declares the endpoints that pick the farmer uid stamped
// as owner on new records.
package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	// DevLogin stores the uid cookie and redirects to a local ?next= path.
	DevLogin(c echo.Context) error
	// WhoAmI reports the uid on the current request.
	WhoAmI(c echo.Context) error
}
