package controller

import (
	"donation-registry-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newDonorRoutesHandler(api, services, validate)
	newHospitalRoutesHandler(api, services)
	newDonationRoutesHandler(api, services, validate)
	newInventoryRoutesHandler(api, services, validate)
	newRequestRoutesHandler(api, services, validate)
}
