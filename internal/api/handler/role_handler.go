package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RoleHandler serves the role-inspection endpoint behind the access guard.
type RoleHandler struct{}

func NewRoleHandler() *RoleHandler {
	return &RoleHandler{}
}

// GetRole echoes the role claim of the presented token.
//
// @Summary      Get the caller's role
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  roleResponse
// @Failure      401  {object}  errorResponse
// @Router       /role [get]
func (h *RoleHandler) GetRole(c echo.Context) error {
	_, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roleResponse{Role: string(role)})
}
