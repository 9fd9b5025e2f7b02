package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meinwort/meinwort-go/models"
	"github.com/meinwort/meinwort-go/repositories"
	"github.com/meinwort/meinwort-go/response"
	"github.com/meinwort/meinwort-go/types"
)

type Auth struct {
	Repos *repositories.Repos
}

func NewAuth(repos *repositories.Repos) *Auth {
	return &Auth{Repos: repos}
}

// Admin allows only users holding the admin role.
func (a *Auth) Admin() gin.HandlerFunc {
	return a.requireRole(string(models.UserRoleAdmin))
}

// Moderator allows moderators and admins.
func (a *Auth) Moderator() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}

		for _, role := range []string{string(models.UserRoleModerator), string(models.UserRoleAdmin)} {
			hasRole, err := a.Repos.User.HasRole(claims.UserID, role)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
				return
			}
			if hasRole {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "moderator access required"})
	}
}

func (a *Auth) requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}

		hasRole, err := a.Repos.User.HasRole(claims.UserID, role)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
			return
		}
		if !hasRole {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: role + " access required"})
			return
		}

		c.Next()
	}
}
