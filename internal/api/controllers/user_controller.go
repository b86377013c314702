package controllers

import (
	"fmt"

	"budgy/internal/models/request_models"
	"budgy/internal/models/response_models"
	"budgy/internal/services"
	"budgy/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserController struct {
	userService services.UserServiceInterface
	issuer      *utils.TokenIssuer
	log         *zap.Logger
}

func NewUserController(userService services.UserServiceInterface, issuer *utils.TokenIssuer, log *zap.Logger) *UserController {
	return &UserController{
		userService: userService,
		issuer:      issuer,
		log:         log,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user; the email must not belong to any user, active or not
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.RegisterUserRequest true "User registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /users [post]
func (u *UserController) Register(c *gin.Context) {
	var req request_models.RegisterUserRequest
	if !bindBody(c, &req) {
		return
	}

	user, err := u.userService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, user, "User registered successfully")
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password and receive a bearer token
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /users/login [post]
func (u *UserController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.ErrAuthFailure)
		return
	}

	user, err := u.userService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	token, err := u.issuer.CreateToken(user.ID, string(user.Role))
	if err != nil {
		utils.HandleServiceError(c, fmt.Errorf("issue token: %w", err))
		return
	}

	utils.RespondSuccess(c, response_models.LoginResponse{Token: token, User: user}, "Login successful")
}

// Update godoc
// @Summary Update a user
// @Description Overwrite a user's profile; an empty password keeps the current one
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request_models.UpdateUserRequest true "User payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id} [put]
func (u *UserController) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateUserRequest
	if !bindBody(c, &req) {
		return
	}

	user, err := u.userService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User updated successfully")
}

// List godoc
// @Summary List active users
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users [get]
func (u *UserController) List(c *gin.Context) {
	users, err := u.userService.ListActive(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Fetched users successfully")
}

// Get godoc
// @Summary Get an active user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (u *UserController) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	user, err := u.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "Fetched user successfully")
}

// Delete godoc
// @Summary Deactivate a user
// @Description Soft delete: the user is kept but marked inactive. Owned records are untouched.
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (u *UserController) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	user, err := u.userService.SoftDelete(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	u.log.Info("user soft deleted", zap.String("user_id", id.String()), zap.String("by", c.GetString("user_id")))
	utils.RespondSuccess(c, user, "User deactivated successfully")
}
