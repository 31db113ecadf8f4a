package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetComments   = "success get comments"
	MessageSuccessCreateComment = "comment posted successfully"
	MessageSuccessUpdateComment = "comment updated successfully"
	MessageSuccessDeleteComment = "comment deleted successfully"

	MessageFailedGetComments   = "failed to get comments"
	MessageFailedCreateComment = "failed to post comment"
	MessageFailedUpdateComment = "failed to update comment"
	MessageFailedDeleteComment = "failed to delete comment"

	ErrCommentNotFound           = errors.New("comment not found")
	ErrUnauthorizedCommentAccess = errors.New("unauthorized access to comment")
)

type (
	CreateCommentRequest struct {
		Content string `json:"content" validate:"required,max=1000"`
	}

	UpdateCommentRequest struct {
		Content string `json:"content" validate:"required,max=1000"`
	}

	CommentResponse struct {
		ID        string     `json:"id"`
		RecipeID  string     `json:"recipe_id"`
		Content   string     `json:"content"`
		Author    AuthorInfo `json:"author"`
		CreatedAt time.Time  `json:"created_at"`
		UpdatedAt time.Time  `json:"updated_at"`
	}
)
