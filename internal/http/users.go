package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookhive/bookhive/internal/auth"
	"github.com/bookhive/bookhive/internal/library"
)

// UsersController manages the authenticated user's profile and account
// removal. Password changes go through the auth service.
type UsersController struct {
	service     *library.UserService
	authService *auth.Service
}

func NewUsersController(service *library.UserService, authService *auth.Service) *UsersController {
	return &UsersController{service: service, authService: authService}
}

type profileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

type passwordChangeRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Profile returns the authenticated user's own account.
func (controller *UsersController) Profile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == 0 {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := controller.service.Get(userID)
	if err != nil {
		respondServiceError(c, err, "get profile")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (controller *UsersController) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	user, err := controller.service.UpdateProfile(library.ProfilePayload{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Avatar:    req.Avatar,
	}, GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "update profile")
		return
	}

	c.JSON(http.StatusOK, user)
}

// ChangePassword verifies the old password before setting the new one.
func (controller *UsersController) ChangePassword(c *gin.Context) {
	if controller.authService == nil {
		respondError(c, http.StatusNotImplemented, "password management requires local auth")
		return
	}

	userID := GetUserID(c)
	if userID == 0 {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req passwordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	err := controller.authService.ChangePassword(userID, req.OldPassword, req.NewPassword)
	switch {
	case err == nil:
		respondSuccess(c, "password changed")
	case errors.Is(err, auth.ErrInvalidPassword):
		respondError(c, http.StatusForbidden, "current password is incorrect")
	case errors.Is(err, auth.ErrPasswordTooShort), errors.Is(err, auth.ErrPasswordTooLong):
		respondBadRequest(c, err.Error())
	default:
		respondInternalError(c, err, "change password")
	}
}

// Delete removes an account. Users may delete themselves; staff may delete
// anyone.
func (controller *UsersController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.service.Delete(id, GetUserID(c)); err != nil {
		respondServiceError(c, err, "delete user")
		return
	}

	respondSuccess(c, "account deleted")
}
