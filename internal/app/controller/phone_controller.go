package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/phonebook-backend/internal/app/service"
	apperrors "github.com/ikkim/phonebook-backend/internal/errors"
	"github.com/ikkim/phonebook-backend/internal/middleware"
)

type PhoneController struct {
	phoneService service.PhoneService
}

func NewPhoneController(phoneService service.PhoneService) *PhoneController {
	return &PhoneController{
		phoneService: phoneService,
	}
}

// SearchPhones looks a number up, creating the entry on a miss.
// GET /api/phones?q=
func (ctrl *PhoneController) SearchPhones(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	phones, err := ctrl.phoneService.SearchOrCreate(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err, "search phones")
		return
	}

	log.Info("Phone search completed", map[string]interface{}{
		"count": len(phones),
	})
	c.JSON(http.StatusOK, phones)
}

// GetPhoneDetail returns a phone with its reviews and average rating.
// GET /api/phones/:id
func (ctrl *PhoneController) GetPhoneDetail(c *gin.Context) {
	id, ok := parsePhoneID(c)
	if !ok {
		return
	}

	detail, err := ctrl.phoneService.GetPhoneDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "fetch phone detail")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CreatePhone adds a phone explicitly.
// POST /api/phones
func (ctrl *PhoneController) CreatePhone(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req service.CreatePhoneInput
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid phone creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	phone, err := ctrl.phoneService.CreatePhone(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "create phone")
		return
	}

	log.Info("Phone created successfully", map[string]interface{}{
		"phone_id": phone.ID,
	})
	c.JSON(http.StatusCreated, phone)
}
