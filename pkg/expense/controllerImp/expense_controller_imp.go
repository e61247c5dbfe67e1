package controllerImp

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/apperr"
	"farmdash/pkg/expense/service"
	"farmdash/pkg/records"
)

type ExpenseCtrl struct {
	*records.Endpoint[entities.Expense, entities.ExpensePatch]
}

func New(svc service.ExpenseService) *ExpenseCtrl {
	return &ExpenseCtrl{&records.Endpoint[entities.Expense, entities.ExpensePatch]{
		Name: "expense",
		Svc:  svc,
		Query: func(c echo.Context) ([]entities.Expense, error) {
			ctx := c.Request().Context()
			if v := c.QueryParam("crop_id"); v != "" {
				cid, err := strconv.Atoi(v)
				if err != nil {
					return nil, apperr.Invalid("invalid crop_id")
				}
				return svc.ListByCrop(ctx, cid)
			}
			if v := c.QueryParam("category"); v != "" {
				return svc.ListByCategory(ctx, v)
			}
			return svc.List(ctx)
		},
	}}
}
