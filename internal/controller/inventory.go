package controller

import (
	"net/http"

	"donation-registry-api/internal/common"
	"donation-registry-api/internal/entity"
	"donation-registry-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type inventoryRoutesHandler struct {
	inventoryService service.Inventory
	validate         *validator.Validate
}

func newInventoryRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *inventoryRoutesHandler {
	h := &inventoryRoutesHandler{inventoryService: services.Inventory, validate: v}

	outer.GET("/inventory", h.GetInventory)
	outer.GET("/inventory/summary", h.GetInventorySummary)
	outer.POST("/inventory/new", h.PostUnit)
	outer.PUT("/inventory/:unitId", h.PutUnit)
	outer.DELETE("/inventory/:unitId", h.DeleteUnit)

	return h
}

type getInventoryInput struct {
	BloodType      string `query:"bloodType" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	HospitalId     string `query:"hospitalId" validate:"omitempty,uuid"`
	Status         string `query:"status" validate:"omitempty,oneof=Available Reserved Used Expired"`
	ExpiringWithin int    `query:"expiringWithin" validate:"omitempty,gte=1,lte=365"`
}

// /inventory
func (h *inventoryRoutesHandler) GetInventory(c echo.Context) error {
	var input getInventoryInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	listInput := &service.ListUnitsInput{
		Filter: entity.InventoryFilter{
			BloodType:  common.BloodType(input.BloodType),
			HospitalId: input.HospitalId,
			Status:     common.UnitStatus(input.Status),
		},
		ExpiringWithinDays: input.ExpiringWithin,
	}

	units, err := h.inventoryService.ListUnits(c.Request().Context(), listInput)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, units); e != nil {
		return e
	}

	return nil
}

// /inventory/summary
func (h *inventoryRoutesHandler) GetInventorySummary(c echo.Context) error {
	summary, err := h.inventoryService.GetInventorySummary(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, summary); e != nil {
		return e
	}

	return nil
}

type postUnitInput struct {
	BloodType      string `json:"bloodType" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Quantity       int    `json:"quantity" validate:"required,gte=1,lte=1000"`
	CollectionDate string `json:"collectionDate" validate:"required,datetime=2006-01-02"`
	ExpiryDate     string `json:"expiryDate" validate:"required,datetime=2006-01-02"`
	Status         string `json:"status" validate:"omitempty,oneof=Available Reserved Used Expired"`
	HospitalId     string `json:"hospitalId" validate:"omitempty,uuid"`
}

// /inventory/new
func (h *inventoryRoutesHandler) PostUnit(c echo.Context) error {
	var input postUnitInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &service.AddUnitInput{
		BloodType:      common.BloodType(input.BloodType),
		Quantity:       input.Quantity,
		CollectionDate: input.CollectionDate,
		ExpiryDate:     input.ExpiryDate,
		Status:         common.UnitStatus(input.Status),
		HospitalId:     input.HospitalId,
	}

	unit, err := h.inventoryService.AddUnit(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, unit); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrHospitalNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no hospital with given id"}); e != nil {
			return e
		}
	case service.ErrInvalidBloodType, service.ErrInvalidQuantity, service.ErrInvalidDate, service.ErrInvalidUnitStatus:
		if e := c.JSON(http.StatusBadRequest, errorResponse{err.Error()}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type putUnitInput struct {
	Quantity   int    `json:"quantity" validate:"gte=0,lte=1000"`
	Status     string `json:"status" validate:"required,oneof=Available Reserved Used Expired"`
	ExpiryDate string `json:"expiryDate" validate:"required,datetime=2006-01-02"`
}

// /inventory/:unitId
func (h *inventoryRoutesHandler) PutUnit(c echo.Context) error {
	var input putUnitInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &service.UpdateUnitInput{
		Quantity:   input.Quantity,
		Status:     common.UnitStatus(input.Status),
		ExpiryDate: input.ExpiryDate,
	}

	unit, err := h.inventoryService.UpdateUnit(c.Request().Context(), c.Param("unitId"), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, unit); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrUnitNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no inventory unit with given id"}); e != nil {
			return e
		}
	case service.ErrInvalidQuantity, service.ErrInvalidDate, service.ErrInvalidUnitStatus:
		if e := c.JSON(http.StatusBadRequest, errorResponse{err.Error()}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /inventory/:unitId
func (h *inventoryRoutesHandler) DeleteUnit(c echo.Context) error {
	err := h.inventoryService.DeleteUnit(c.Request().Context(), c.Param("unitId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, messageResponse{"Inventory unit deleted successfully"}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrUnitNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no inventory unit with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
