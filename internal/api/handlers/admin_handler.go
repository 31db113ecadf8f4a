package handlers

import (
	"errors"
	"strconv"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
	"github.com/RaihanAdityaP/savora-web-sub000/internal/api/presenters"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/admin"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetModerationQueue(c *fiber.Ctx) error
		ApproveRecipe(c *fiber.Ctx) error
		RejectRecipe(c *fiber.Ctx) error
		BanUser(c *fiber.Ctx) error
		UnbanUser(c *fiber.Ctx) error
		GetUsers(c *fiber.Ctx) error
		GetActivityLogs(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
		validator    *validator.Validate
	}
)

func NewAdminHandler(adminService admin.AdminService, validator *validator.Validate) AdminHandler {
	return &adminHandler{
		adminService: adminService,
		validator:    validator,
	}
}

func (h *adminHandler) GetModerationQueue(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	recipes, count, err := h.adminService.GetModerationQueue(c.Context(), page)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetQueue, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": recipes,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       domain.RecipePageSize,
			"total":       count,
			"total_pages": (count + int64(domain.RecipePageSize) - 1) / int64(domain.RecipePageSize),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetQueue)
}

func (h *adminHandler) ApproveRecipe(c *fiber.Ctx) error {
	adminID := c.Locals("user_id").(string)
	recipeID := c.Params("id")
	req := new(domain.ModerateRecipeRequest)

	if err := c.BodyParser(req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApproveRecipe, err)
	}

	if err := h.adminService.ApproveRecipe(c.Context(), recipeID, adminID, *req); err != nil {
		return presenters.ErrorResponse(c, moderationErrorStatus(err), domain.MessageFailedApproveRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessApproveRecipe)
}

func (h *adminHandler) RejectRecipe(c *fiber.Ctx) error {
	adminID := c.Locals("user_id").(string)
	recipeID := c.Params("id")
	req := new(domain.ModerateRecipeRequest)

	if err := c.BodyParser(req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRejectRecipe, err)
	}

	if err := h.adminService.RejectRecipe(c.Context(), recipeID, adminID, *req); err != nil {
		return presenters.ErrorResponse(c, moderationErrorStatus(err), domain.MessageFailedRejectRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRejectRecipe)
}

func (h *adminHandler) BanUser(c *fiber.Ctx) error {
	adminID := c.Locals("user_id").(string)
	userID := c.Params("id")
	req := new(domain.BanUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBanUser, err)
	}

	if err := h.adminService.BanUser(c.Context(), userID, adminID, *req); err != nil {
		status := fiber.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, domain.ErrCannotBanAdmin):
			status = fiber.StatusForbidden
		case errors.Is(err, domain.ErrUserAlreadyBanned):
			status = fiber.StatusConflict
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedBanUser, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessBanUser)
}

func (h *adminHandler) UnbanUser(c *fiber.Ctx) error {
	adminID := c.Locals("user_id").(string)
	userID := c.Params("id")

	if err := h.adminService.UnbanUser(c.Context(), userID, adminID); err != nil {
		status := fiber.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, domain.ErrUserNotBanned):
			status = fiber.StatusConflict
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUnbanUser, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnbanUser)
}

func (h *adminHandler) GetUsers(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	users, count, err := h.adminService.GetUsers(c.Context(), page)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUsers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       domain.RecipePageSize,
			"total":       count,
			"total_pages": (count + int64(domain.RecipePageSize) - 1) / int64(domain.RecipePageSize),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *adminHandler) GetActivityLogs(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	logs, count, err := h.adminService.GetActivityLogs(c.Context(), page)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetActivityLogs, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"logs": logs,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       domain.RecipePageSize,
			"total":       count,
			"total_pages": (count + int64(domain.RecipePageSize) - 1) / int64(domain.RecipePageSize),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetActivityLogs)
}

func moderationErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrRecipeNotPending):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}
