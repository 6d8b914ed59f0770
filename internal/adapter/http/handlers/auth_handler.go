package handlers

import (
	"errors"
	"net/http"

	request "crm_assistencia/internal/adapter/http/dto/request"
	response "crm_assistencia/internal/adapter/http/dto/response"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase"
	"crm_assistencia/pkg"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where the auth middleware stores the signed-in user.
const ContextUserKey = "currentUser"

var errInvalidCredentials = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid login or password", http.StatusUnauthorized)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary  Sign in with e-mail or name
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    credentials body request.LoginRequest true "Credentials"
// @Success  200 {object} response.LoginResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Login(c.Request.Context(), payload.ResolveLogin(), payload.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(errInvalidCredentials.HTTPStatus, errInvalidCredentials.ToHTTPError())
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromLoginResult(result))
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return entities.User{}, false
	}
	user, ok := v.(entities.User)
	return user, ok
}
