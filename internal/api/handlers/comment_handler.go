package handlers

import (
	"errors"
	"strconv"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
	"github.com/RaihanAdityaP/savora-web-sub000/internal/api/presenters"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/comment"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CommentHandler interface {
		GetComments(c *fiber.Ctx) error
		CreateComment(c *fiber.Ctx) error
		UpdateComment(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error
	}

	commentHandler struct {
		commentService comment.CommentService
		validator      *validator.Validate
	}
)

func NewCommentHandler(commentService comment.CommentService, validator *validator.Validate) CommentHandler {
	return &commentHandler{
		commentService: commentService,
		validator:      validator,
	}
}

func (h *commentHandler) GetComments(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	comments, count, err := h.commentService.GetComments(c.Context(), recipeID, page)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrRecipeNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetComments, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"comments": comments,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       domain.RecipePageSize,
			"total":       count,
			"total_pages": (count + int64(domain.RecipePageSize) - 1) / int64(domain.RecipePageSize),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetComments)
}

func (h *commentHandler) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")
	req := new(domain.CreateCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateComment, err)
	}

	res, err := h.commentService.CreateComment(c.Context(), recipeID, *req, userID)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrRecipeNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedCreateComment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateComment)
}

func (h *commentHandler) UpdateComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	commentID := c.Params("id")
	req := new(domain.UpdateCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateComment, err)
	}

	if err := h.commentService.UpdateComment(c.Context(), commentID, *req, userID); err != nil {
		status := fiber.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrCommentNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, domain.ErrUnauthorizedCommentAccess):
			status = fiber.StatusForbidden
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdateComment, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateComment)
}

func (h *commentHandler) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)
	commentID := c.Params("id")

	if err := h.commentService.DeleteComment(c.Context(), commentID, userID, role); err != nil {
		status := fiber.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrCommentNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, domain.ErrUnauthorizedCommentAccess):
			status = fiber.StatusForbidden
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeleteComment, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteComment)
}
