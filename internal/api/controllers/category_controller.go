package controllers

import (
	"budgy/internal/models/request_models"
	"budgy/internal/services"
	"budgy/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryController(categoryService services.CategoryServiceInterface) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// Create godoc
// @Summary Create an expense category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body request_models.CategoryRequest true "Category payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expense-categories [post]
func (cc *CategoryController) Create(c *gin.Context) {
	var req request_models.CategoryRequest
	if !bindBody(c, &req) {
		return
	}

	category, err := cc.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, category, "Category created successfully")
}

// Update godoc
// @Summary Update an expense category
// @Description An unknown id is rejected with 400
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body request_models.CategoryRequest true "Category payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expense-categories/{id} [put]
func (cc *CategoryController) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req request_models.CategoryRequest
	if !bindBody(c, &req) {
		return
	}

	category, err := cc.categoryService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category, "Category updated successfully")
}

// Delete godoc
// @Summary Delete an expense category
// @Description Expenses in the category are kept and become uncategorised
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expense-categories/{id} [delete]
func (cc *CategoryController) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := cc.categoryService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Category deleted successfully")
}

// List godoc
// @Summary List expense categories
// @Tags Categories
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expense-categories [get]
func (cc *CategoryController) List(c *gin.Context) {
	categories, err := cc.categoryService.ListAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Fetched categories successfully")
}

// Get godoc
// @Summary Get an expense category
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /expense-categories/{id} [get]
func (cc *CategoryController) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	category, err := cc.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category, "Fetched category successfully")
}
