package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/apperr"
	"farmdash/pkg/crop/service"
	"farmdash/pkg/records"
)

type CropCtrl struct {
	*records.Endpoint[entities.Crop, entities.CropPatch]
	svc service.CropService
}

func New(svc service.CropService) *CropCtrl {
	return &CropCtrl{
		Endpoint: &records.Endpoint[entities.Crop, entities.CropPatch]{
			Name: "crop",
			Svc:  svc,
			Query: func(c echo.Context) ([]entities.Crop, error) {
				ctx := c.Request().Context()
				if v := c.QueryParam("field_id"); v != "" {
					fid, err := strconv.Atoi(v)
					if err != nil {
						return nil, apperr.Invalid("invalid field_id")
					}
					return svc.ListByField(ctx, fid)
				}
				return svc.List(ctx, c.QueryParam("q"))
			},
		},
		svc: svc,
	}
}

// ByField serves GET /fields/:id/crops.
func (h *CropCtrl) ByField(c echo.Context) error {
	fid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, records.Fail("invalid field id"))
	}
	list, err := h.svc.ListByField(c.Request().Context(), fid)
	if err != nil {
		return records.Error(c, err)
	}
	if list == nil {
		list = []entities.Crop{}
	}
	return records.Data(c, http.StatusOK, list)
}
