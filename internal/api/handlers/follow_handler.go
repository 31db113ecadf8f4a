package handlers

import (
	"errors"
	"strconv"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
	"github.com/RaihanAdityaP/savora-web-sub000/internal/api/presenters"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/follow"
	"github.com/gofiber/fiber/v2"
)

type (
	FollowHandler interface {
		Follow(c *fiber.Ctx) error
		Unfollow(c *fiber.Ctx) error
		GetFollowers(c *fiber.Ctx) error
		GetFollowing(c *fiber.Ctx) error
	}

	followHandler struct {
		followService follow.FollowService
	}
)

func NewFollowHandler(followService follow.FollowService) FollowHandler {
	return &followHandler{followService: followService}
}

func (h *followHandler) Follow(c *fiber.Ctx) error {
	followerID := c.Locals("user_id").(string)
	targetID := c.Params("id")

	if err := h.followService.Follow(c.Context(), followerID, targetID); err != nil {
		status := fiber.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, domain.ErrAlreadyFollowing):
			status = fiber.StatusConflict
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedFollow, err)
	}

	return presenters.SuccessResponse(c, domain.FollowUserResponse{Following: true}, fiber.StatusOK, domain.MessageSuccessFollow)
}

func (h *followHandler) Unfollow(c *fiber.Ctx) error {
	followerID := c.Locals("user_id").(string)
	targetID := c.Params("id")

	if err := h.followService.Unfollow(c.Context(), followerID, targetID); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrNotFollowing) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUnfollow, err)
	}

	return presenters.SuccessResponse(c, domain.FollowUserResponse{Following: false}, fiber.StatusOK, domain.MessageSuccessUnfollow)
}

func (h *followHandler) GetFollowers(c *fiber.Ctx) error {
	userID := c.Params("id")
	page, limit := paginationParams(c)

	followers, count, err := h.followService.GetFollowers(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFollowers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"users": followers,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetFollowers)
}

func (h *followHandler) GetFollowing(c *fiber.Ctx) error {
	userID := c.Params("id")
	page, limit := paginationParams(c)

	following, count, err := h.followService.GetFollowing(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFollowing, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"users": following,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetFollowing)
}

func paginationParams(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	return page, limit
}
