package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetBoards        = "success get boards"
	MessageSuccessCreateBoard      = "board created successfully"
	MessageSuccessRenameBoard      = "board updated successfully"
	MessageSuccessDeleteBoard      = "board deleted successfully"
	MessageSuccessGetBoardRecipes  = "success get board recipes"
	MessageSuccessToggleMembership = "board membership updated"

	MessageFailedGetBoards        = "failed to get boards"
	MessageFailedCreateBoard      = "failed to create board"
	MessageFailedRenameBoard      = "failed to update board"
	MessageFailedDeleteBoard      = "failed to delete board"
	MessageFailedGetBoardRecipes  = "failed to get board recipes"
	MessageFailedToggleMembership = "failed to update board membership"

	ErrBoardNotFound           = errors.New("board not found")
	ErrUnauthorizedBoardAccess = errors.New("unauthorized access to board")
)

type (
	CreateBoardRequest struct {
		Name        string `json:"name" validate:"required,max=100"`
		Description string `json:"description" validate:"omitempty,max=500"`
	}

	RenameBoardRequest struct {
		Name        string `json:"name" validate:"required,max=100"`
		Description string `json:"description" validate:"omitempty,max=500"`
	}

	ToggleMembershipRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
	}

	BoardResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		RecipeCount int64     `json:"recipe_count"`
		CreatedAt   time.Time `json:"created_at"`
	}

	ToggleMembershipResponse struct {
		// Saved reports the membership state after the toggle.
		Saved bool `json:"saved"`
	}
)
