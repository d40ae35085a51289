package controller

import (
	"net/http"

	"donation-registry-api/internal/common"
	"donation-registry-api/internal/entity"
	"donation-registry-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type donorRoutesHandler struct {
	donorService service.Donor
	validate     *validator.Validate
}

func newDonorRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *donorRoutesHandler {
	h := &donorRoutesHandler{donorService: services.Donor, validate: v}

	outer.GET("/donors", h.GetDonors)
	outer.GET("/donors/stats", h.GetDonorStats)
	outer.GET("/donors/:donorId", h.GetDonor)
	outer.POST("/donors/new", h.PostDonor)
	outer.PUT("/donors/:donorId", h.PutDonor)
	outer.DELETE("/donors/:donorId", h.DeleteDonor)

	return h
}

type getDonorsInput struct {
	BloodType   string `query:"bloodType" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Eligibility string `query:"eligibility" validate:"omitempty,oneof=Eligible 'Temporarily Ineligible' Ineligible"`
	Search      string `query:"search" validate:"omitempty,max=100"`
}

// /donors
func (h *donorRoutesHandler) GetDonors(c echo.Context) error {
	var input getDonorsInput
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

	filter := &entity.DonorFilter{
		BloodType:   common.BloodType(input.BloodType),
		Eligibility: common.EligibilityStatus(input.Eligibility),
		Search:      input.Search,
	}

	donors, err := h.donorService.ListDonors(c.Request().Context(), filter)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, donors); e != nil {
		return e
	}

	return nil
}

// /donors/stats
func (h *donorRoutesHandler) GetDonorStats(c echo.Context) error {
	stats, err := h.donorService.GetDonorStats(c.Request().Context())
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

// /donors/:donorId
func (h *donorRoutesHandler) GetDonor(c echo.Context) error {
	donor, err := h.donorService.GetDonorById(c.Request().Context(), c.Param("donorId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, donor); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrDonorNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no donor with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type postDonorInput struct {
	FirstName      string `json:"firstName" validate:"required,max=100"`
	LastName       string `json:"lastName" validate:"required,max=100"`
	BloodType      string `json:"bloodType" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	DateOfBirth    string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender         string `json:"gender" validate:"required,max=20"`
	ContactNumber  string `json:"contactNumber" validate:"omitempty,max=30"`
	Email          string `json:"email" validate:"omitempty,email"`
	Address        string `json:"address" validate:"omitempty,max=300"`
	MedicalHistory string `json:"medicalHistory" validate:"omitempty,max=2000"`
}

// /donors/new
func (h *donorRoutesHandler) PostDonor(c echo.Context) error {
	var input postDonorInput
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

	model := &entity.CreateDonorInput{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		BloodType:      common.BloodType(input.BloodType),
		DateOfBirth:    input.DateOfBirth,
		Gender:         input.Gender,
		ContactNumber:  input.ContactNumber,
		Email:          input.Email,
		Address:        input.Address,
		MedicalHistory: input.MedicalHistory,
	}

	donor, err := h.donorService.RegisterDonor(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, donor); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrInvalidBloodType, service.ErrInvalidDate:
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

type putDonorInput struct {
	FirstName         string  `json:"firstName" validate:"required,max=100"`
	LastName          string  `json:"lastName" validate:"required,max=100"`
	BloodType         string  `json:"bloodType" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	DateOfBirth       string  `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender            string  `json:"gender" validate:"required,max=20"`
	ContactNumber     string  `json:"contactNumber" validate:"omitempty,max=30"`
	Email             string  `json:"email" validate:"omitempty,email"`
	Address           string  `json:"address" validate:"omitempty,max=300"`
	MedicalHistory    string  `json:"medicalHistory" validate:"omitempty,max=2000"`
	EligibilityStatus string  `json:"eligibilityStatus" validate:"required,oneof=Eligible 'Temporarily Ineligible' Ineligible"`
	LastDonationDate  *string `json:"lastDonationDate" validate:"omitempty,datetime=2006-01-02"`
}

// /donors/:donorId
func (h *donorRoutesHandler) PutDonor(c echo.Context) error {
	var input putDonorInput
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

	model := &entity.UpdateDonorInput{
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		BloodType:         common.BloodType(input.BloodType),
		DateOfBirth:       input.DateOfBirth,
		Gender:            input.Gender,
		ContactNumber:     input.ContactNumber,
		Email:             input.Email,
		Address:           input.Address,
		MedicalHistory:    input.MedicalHistory,
		EligibilityStatus: common.EligibilityStatus(input.EligibilityStatus),
		LastDonationDate:  input.LastDonationDate,
	}

	donor, err := h.donorService.UpdateDonor(c.Request().Context(), c.Param("donorId"), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, donor); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrDonorNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no donor with given id"}); e != nil {
			return e
		}
	case service.ErrInvalidBloodType, service.ErrInvalidEligibility, service.ErrInvalidDate:
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

// /donors/:donorId
func (h *donorRoutesHandler) DeleteDonor(c echo.Context) error {
	err := h.donorService.DeleteDonor(c.Request().Context(), c.Param("donorId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, messageResponse{"Donor deleted successfully"}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrDonorNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no donor with given id"}); e != nil {
			return e
		}
	case service.ErrDonorHasDonations:
		if e := c.JSON(http.StatusConflict, errorResponse{"Donor has donation records and can't be deleted"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
