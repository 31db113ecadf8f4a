package handlers

import (
	"errors"
	"strconv"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
	"github.com/RaihanAdityaP/savora-web-sub000/internal/api/presenters"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/board"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BoardHandler interface {
		GetBoards(c *fiber.Ctx) error
		CreateBoard(c *fiber.Ctx) error
		RenameBoard(c *fiber.Ctx) error
		DeleteBoard(c *fiber.Ctx) error
		GetBoardRecipes(c *fiber.Ctx) error
		ToggleMembership(c *fiber.Ctx) error
	}

	boardHandler struct {
		boardService board.BoardService
		validator    *validator.Validate
	}
)

func NewBoardHandler(boardService board.BoardService, validator *validator.Validate) BoardHandler {
	return &boardHandler{
		boardService: boardService,
		validator:    validator,
	}
}

func (h *boardHandler) GetBoards(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.boardService.GetBoards(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBoards, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBoards)
}

func (h *boardHandler) CreateBoard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateBoardRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBoard, err)
	}

	res, err := h.boardService.CreateBoard(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBoard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateBoard)
}

func (h *boardHandler) RenameBoard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	boardID := c.Params("id")
	req := new(domain.RenameBoardRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRenameBoard, err)
	}

	if err := h.boardService.RenameBoard(c.Context(), boardID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, boardErrorStatus(err), domain.MessageFailedRenameBoard, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRenameBoard)
}

func (h *boardHandler) DeleteBoard(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	boardID := c.Params("id")

	if err := h.boardService.DeleteBoard(c.Context(), boardID, userID); err != nil {
		return presenters.ErrorResponse(c, boardErrorStatus(err), domain.MessageFailedDeleteBoard, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteBoard)
}

func (h *boardHandler) GetBoardRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	boardID := c.Params("id")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	recipes, count, err := h.boardService.GetBoardRecipes(c.Context(), boardID, userID, page)
	if err != nil {
		return presenters.ErrorResponse(c, boardErrorStatus(err), domain.MessageFailedGetBoardRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": recipes,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       domain.RecipePageSize,
			"total":       count,
			"total_pages": (count + int64(domain.RecipePageSize) - 1) / int64(domain.RecipePageSize),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetBoardRecipes)
}

func (h *boardHandler) ToggleMembership(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	boardID := c.Params("id")
	req := new(domain.ToggleMembershipRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleMembership, err)
	}

	res, err := h.boardService.ToggleMembership(c.Context(), boardID, *req, userID)
	if err != nil {
		status := boardErrorStatus(err)
		if errors.Is(err, domain.ErrRecipeNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedToggleMembership, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleMembership)
}

func boardErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrBoardNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedBoardAccess):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}
