package controller

import (
	"net/http"

	"donation-registry-api/internal/service"

	"github.com/labstack/echo"
)

type hospitalRoutesHandler struct {
	hospitalService service.Hospital
}

func newHospitalRoutesHandler(outer *echo.Group, services *service.Services) *hospitalRoutesHandler {
	h := &hospitalRoutesHandler{hospitalService: services.Hospital}

	outer.GET("/hospitals", h.GetHospitals)
	outer.GET("/hospitals/:hospitalId", h.GetHospital)
	outer.GET("/hospitals/:hospitalId/stats", h.GetHospitalStats)

	return h
}

// /hospitals
func (h *hospitalRoutesHandler) GetHospitals(c echo.Context) error {
	hospitals, err := h.hospitalService.ListHospitals(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, hospitals); e != nil {
		return e
	}

	return nil
}

// /hospitals/:hospitalId
func (h *hospitalRoutesHandler) GetHospital(c echo.Context) error {
	hospital, err := h.hospitalService.GetHospitalById(c.Request().Context(), c.Param("hospitalId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, hospital); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrHospitalNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no hospital with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /hospitals/:hospitalId/stats
func (h *hospitalRoutesHandler) GetHospitalStats(c echo.Context) error {
	stats, err := h.hospitalService.GetHospitalStats(c.Request().Context(), c.Param("hospitalId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, stats); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrHospitalNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no hospital with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
