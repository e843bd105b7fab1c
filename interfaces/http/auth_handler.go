package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"streamtube/domain/model"
	"streamtube/infrastructure/logger"
	"streamtube/usecase"
)

const (
	ErrorUnmarshal = "Error while unmarshal"
)

type IAuthHandler interface {
	Login(c *gin.Context)
	Register(c *gin.Context)
	Logout(c *gin.Context)
}

type AuthHandler struct {
	authUsecase usecase.IAuthUsecase
}

func NewAuthHandler(authUsecase usecase.IAuthUsecase) IAuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

func (handler *AuthHandler) Login(c *gin.Context) {
	var req model.ReqLogin

	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, fmt.Sprintf("%s %v", ErrorUnmarshal, err.Error()))
		return
	}

	res := handler.authUsecase.Login(c.Request.Context(), req)

	c.JSON(statusFromCode(res.ResponseCode), res)
}

func (handler *AuthHandler) Register(c *gin.Context) {
	var req model.ReqRegister

	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, fmt.Sprintf("%s %v", ErrorUnmarshal, err.Error()))
		return
	}

	res := handler.authUsecase.Register(c.Request.Context(), req)

	c.JSON(statusFromCode(res.ResponseCode), res)
}

func (handler *AuthHandler) Logout(c *gin.Context) {
	handler.authUsecase.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func statusFromCode(code string) int {
	switch code {
	case "200":
		return http.StatusOK
	case "400":
		return http.StatusBadRequest
	case "401":
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
