package controllers

import (
	"log"
	"net/http"

	"maxcleaners/models"
	"maxcleaners/services"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	availabilityService *services.AvailabilityService
}

func NewAvailabilityController() *AvailabilityController {
	return &AvailabilityController{
		availabilityService: services.NewAvailabilityService(),
	}
}

// CheckAddressAvailability godoc
// @Summary Check service availability for an address
// @Description Geocode an address and check it against the store's service radius
// @Tags Availability
// @Produce json
// @Param address query string true "Free-text address"
// @Success 200 {object} models.AvailabilityResponse
// @Failure 400 {object} models.AvailabilityResponse
// @Router /checkAddressAvailability [get]
func (ctrl *AvailabilityController) CheckAddressAvailability(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, models.AvailabilityResponse{
			ServiceStatus: false,
			Message:       "Address is required",
		})
		return
	}

	log.Printf("Checking availability for address: %s", address)
	result := ctrl.availabilityService.CheckAddress(c.Request.Context(), address)

	if result.ServiceStatus {
		c.JSON(http.StatusOK, result)
		return
	}
	c.JSON(http.StatusBadRequest, result)
}
