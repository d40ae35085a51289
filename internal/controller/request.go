package controller

import (
	"net/http"

	"donation-registry-api/internal/common"
	"donation-registry-api/internal/entity"
	"donation-registry-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type requestRoutesHandler struct {
	requestService service.Request
	validate       *validator.Validate
}

func newRequestRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *requestRoutesHandler {
	h := &requestRoutesHandler{requestService: services.Request, validate: v}

	outer.GET("/requests", h.GetRequests)
	outer.GET("/requests/stats", h.GetRequestStats)
	outer.GET("/requests/:requestId", h.GetRequest)
	outer.POST("/requests/new", h.PostRequest)
	outer.PUT("/requests/:requestId/status", h.UpdateRequestStatus)
	outer.DELETE("/requests/:requestId", h.DeleteRequest)

	return h
}

type getRequestsInput struct {
	Status     string `query:"status" validate:"omitempty,oneof=Pending Approved Completed Rejected"`
	HospitalId string `query:"hospitalId" validate:"omitempty,uuid"`
	BloodType  string `query:"bloodType" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Urgency    string `query:"urgency" validate:"omitempty,oneof=Low Medium High Critical"`
}

// /requests
func (h *requestRoutesHandler) GetRequests(c echo.Context) error {
	var input getRequestsInput
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

	filter := &entity.RequestFilter{
		Status:     common.RequestStatus(input.Status),
		HospitalId: input.HospitalId,
		BloodType:  common.BloodType(input.BloodType),
		Urgency:    common.UrgencyLevel(input.Urgency),
	}

	requests, err := h.requestService.ListRequests(c.Request().Context(), filter)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, requests); e != nil {
		return e
	}

	return nil
}

// /requests/stats
func (h *requestRoutesHandler) GetRequestStats(c echo.Context) error {
	stats, err := h.requestService.GetRequestStats(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, stats); e != nil {
		return e
	}

	return nil
}

// /requests/:requestId
func (h *requestRoutesHandler) GetRequest(c echo.Context) error {
	request, err := h.requestService.GetRequestById(c.Request().Context(), c.Param("requestId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, request); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrRequestNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no blood request with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type postRequestInput struct {
	HospitalId     string `json:"hospitalId" validate:"required,uuid"`
	BloodType      string `json:"bloodType" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	UnitsRequested int    `json:"unitsRequested" validate:"required,gte=1,lte=100"`
	Urgency        string `json:"urgency" validate:"omitempty,oneof=Low Medium High Critical"`
	RequiredByDate string `json:"requiredByDate" validate:"omitempty,datetime=2006-01-02"`
	Notes          string `json:"notes" validate:"omitempty,max=2000"`
}

// /requests/new
func (h *requestRoutesHandler) PostRequest(c echo.Context) error {
	var input postRequestInput
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

	model := &service.CreateRequestInput{
		HospitalId:     input.HospitalId,
		BloodType:      common.BloodType(input.BloodType),
		UnitsRequested: input.UnitsRequested,
		Urgency:        common.UrgencyLevel(input.Urgency),
		RequiredByDate: input.RequiredByDate,
		Notes:          input.Notes,
	}

	request, err := h.requestService.CreateRequest(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, request); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrHospitalNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no hospital with given id"}); e != nil {
			return e
		}
	case service.ErrInvalidBloodType, service.ErrInvalidQuantity, service.ErrInvalidUrgency, service.ErrInvalidDate:
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

type updateRequestStatusInput struct {
	Status  string `json:"status" validate:"required,oneof=Approved Completed Rejected"`
	AdminId string `json:"adminId" validate:"omitempty,uuid"`
}

// /requests/:requestId/status
func (h *requestRoutesHandler) UpdateRequestStatus(c echo.Context) error {
	var input updateRequestStatusInput
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

	request, err := h.requestService.UpdateRequestStatus(c.Request().Context(),
		c.Param("requestId"), common.RequestStatus(input.Status), input.AdminId)
	if err == nil {
		if e := c.JSON(http.StatusOK, request); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrRequestNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no blood request with given id"}); e != nil {
			return e
		}
	case service.ErrAdminNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no admin with given id"}); e != nil {
			return e
		}
	case service.ErrAdminRequiredForApprove:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"Approving a request needs an acting admin"}); e != nil {
			return e
		}
	case service.ErrInvalidStatus:
		if e := c.JSON(http.StatusBadRequest, errorResponse{err.Error()}); e != nil {
			return e
		}
	case service.ErrInvalidStatusTransition:
		if e := c.JSON(http.StatusConflict, errorResponse{"Request status can't change this way"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /requests/:requestId
func (h *requestRoutesHandler) DeleteRequest(c echo.Context) error {
	err := h.requestService.DeleteRequest(c.Request().Context(), c.Param("requestId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, messageResponse{"Request deleted successfully"}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrRequestNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no blood request with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
