package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/okaya/airticket/internal/domain"
	"github.com/okaya/airticket/internal/registry"
)

type AccountHandler struct {
	registry *registry.Registry
}

type registerRequest struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	NationalID string `json:"national_id" binding:"required,nationalid"`
	Password   string `json:"password" binding:"required"`
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type accountResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func NewAccountHandler(reg *registry.Registry) *AccountHandler {
	return &AccountHandler{registry: reg}
}

// RegisterValidators installs the custom binding tags on gin's
// validator engine. Call once before serving.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("nationalid", func(fl validator.FieldLevel) bool {
			return domain.ValidNationalID(fl.Field().String())
		})
	}
}

func (h *AccountHandler) Register(router *gin.RouterGroup) {
	router.POST("/accounts", h.create)
	router.POST("/login", h.login)
}

func (h *AccountHandler) create(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := domain.NewUser(req.Username, req.Email, req.Password, req.NationalID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.registry.RegisterUser(user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, accountResponse{Username: user.Username, Email: user.Email})
}

func (h *AccountHandler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.registry.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, accountResponse{Username: user.Username, Email: user.Email})
}
