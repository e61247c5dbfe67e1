package controllerImp

import (
	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/field/service"
	"farmdash/pkg/records"
)

type FieldCtrl struct {
	*records.Endpoint[entities.Field, entities.FieldPatch]
}

func New(svc service.FieldService) *FieldCtrl {
	return &FieldCtrl{&records.Endpoint[entities.Field, entities.FieldPatch]{
		Name: "field",
		Svc:  svc,
		Query: func(c echo.Context) ([]entities.Field, error) {
			return svc.List(c.Request().Context(), c.QueryParam("q"))
		},
	}}
}
