package middleware

import (
	"net/http"
	"slices"
	"strings"

	"crm_assistencia/internal/adapter/http/handlers"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase"
	"crm_assistencia/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization token not provided", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid authorization token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Role not allowed for this resource", http.StatusForbidden)
)

// Authenticate resolves the bearer token into a user and stores it on the
// context for handlers and RequireRole.
func Authenticate(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(handlers.ContextUserKey, user)
		c.Next()
	}
}

// RequireRole must run after Authenticate.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := handlers.CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		if !slices.Contains(roles, user.Role) {
			log.Warn().Str("user_id", user.ID).Str("role", string(user.Role)).Str("path", c.FullPath()).Msg("[auth][middleware] forbidden")
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}
