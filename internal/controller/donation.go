package controller

import (
	"net/http"

	"donation-registry-api/internal/common"
	"donation-registry-api/internal/entity"
	"donation-registry-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type donationRoutesHandler struct {
	donationService service.Donation
	validate        *validator.Validate
}

func newDonationRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *donationRoutesHandler {
	h := &donationRoutesHandler{donationService: services.Donation, validate: v}

	outer.GET("/donations", h.GetDonations)
	outer.GET("/donations/stats", h.GetDonationStats)
	outer.GET("/donations/:donationId", h.GetDonation)
	outer.POST("/donations/new", h.PostDonation)

	return h
}

type getDonationsInput struct {
	DonorId    string `query:"donorId" validate:"omitempty,uuid"`
	HospitalId string `query:"hospitalId" validate:"omitempty,uuid"`
	BloodType  string `query:"bloodType" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	StartDate  string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `query:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// /donations
func (h *donationRoutesHandler) GetDonations(c echo.Context) error {
	var input getDonationsInput
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

	filter := &entity.DonationFilter{
		DonorId:    input.DonorId,
		HospitalId: input.HospitalId,
		BloodType:  common.BloodType(input.BloodType),
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	donations, err := h.donationService.ListDonations(c.Request().Context(), filter)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, donations); e != nil {
		return e
	}

	return nil
}

type getDonationStatsInput struct {
	StartDate  string `query:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `query:"endDate" validate:"omitempty,datetime=2006-01-02"`
	HospitalId string `query:"hospitalId" validate:"omitempty,uuid"`
}

// /donations/stats
func (h *donationRoutesHandler) GetDonationStats(c echo.Context) error {
	var input getDonationStatsInput
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

	filter := &entity.DonationStatsFilter{
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		HospitalId: input.HospitalId,
	}

	stats, err := h.donationService.GetDonationStats(c.Request().Context(), filter)
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

// /donations/:donationId
func (h *donationRoutesHandler) GetDonation(c echo.Context) error {
	donation, err := h.donationService.GetDonationById(c.Request().Context(), c.Param("donationId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, donation); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrDonationNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no donation record with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type postDonationInput struct {
	DonorId      string `json:"donorId" validate:"required,uuid"`
	HospitalId   string `json:"hospitalId" validate:"omitempty,uuid"`
	DonationDate string `json:"donationDate" validate:"required,datetime=2006-01-02"`
	BloodType    string `json:"bloodType" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	UnitsDonated int    `json:"unitsDonated" validate:"omitempty,gte=1,lte=10"`
	HealthStatus string `json:"healthStatus" validate:"omitempty,max=200"`
	Notes        string `json:"notes" validate:"omitempty,max=2000"`
}

// /donations/new
func (h *donationRoutesHandler) PostDonation(c echo.Context) error {
	var input postDonationInput
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

	model := &service.RecordDonationInput{
		DonorId:      input.DonorId,
		HospitalId:   input.HospitalId,
		DonationDate: input.DonationDate,
		BloodType:    common.BloodType(input.BloodType),
		UnitsDonated: input.UnitsDonated,
		HealthStatus: input.HealthStatus,
		Notes:        input.Notes,
	}

	donation, err := h.donationService.RecordDonation(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, donation); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrDonorNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no donor with given id"}); e != nil {
			return e
		}
	case service.ErrHospitalNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no hospital with given id"}); e != nil {
			return e
		}
	case service.ErrInvalidBloodType, service.ErrInvalidDate, service.ErrInvalidQuantity:
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
