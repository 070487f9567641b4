package forms

import (
	"strings"

	"github.com/edustore/dashboard/internal/models"
)

// BlogForm is the blog create and edit form
type BlogForm struct {
	Title       string   `json:"title" validate:"min=5,max=255"`
	Description string   `json:"description" validate:"min=10,max=255"`
	Content     string   `json:"content" validate:"min=50,richtext"`
	CategoryIDs []string `json:"categoryIds" validate:"min=1"`
	ImageURL    string   `json:"imageUrl" validate:"required,url"`
}

// Normalize trims the single-line fields
func (f *BlogForm) Normalize() {
	f.Title = trim(f.Title)
	f.Description = trim(f.Description)
	f.ImageURL = trim(f.ImageURL)
}

// Request converts the form into the platform request body
func (f BlogForm) Request() models.BlogRequest {
	categoryIDs := f.CategoryIDs
	if categoryIDs == nil {
		categoryIDs = []string{}
	}
	return models.BlogRequest{
		Title:       f.Title,
		Description: f.Description,
		Content:     f.Content,
		ImageURL:    f.ImageURL,
		CategoryIDs: categoryIDs,
	}
}

// CommentForm posts a comment or a reply on a blog
type CommentForm struct {
	Identifier string  `json:"identifier" validate:"required"`
	Content    string  `json:"content" validate:"required,richtext"`
	ReplyID    *string `json:"replyId" validate:"omitempty,min=1"`
}

// Request converts the form into the platform request body
func (f CommentForm) Request() models.CreateCommentRequest {
	return models.CreateCommentRequest{
		Identifier: f.Identifier,
		Content:    f.Content,
		ReplyID:    f.ReplyID,
	}
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
