package models

import "time"

// BlogStatus is the visibility of a blog post
type BlogStatus string

const (
	BlogStatusVisible   BlogStatus = "VISIBLE"
	BlogStatusInvisible BlogStatus = "INVISIBLE"
)

// Known reports whether s is one of the declared blog statuses
func (s BlogStatus) Known() bool {
	return s == BlogStatusVisible || s == BlogStatusInvisible
}

// CreatorInfo is the author projection embedded in blogs
type CreatorInfo struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	AvatarURL string `json:"avatarUrl"`
}

// Blog represents a published blog post
type Blog struct {
	ID           string      `json:"id" validate:"required"`
	CreatorID    string      `json:"creatorId"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Content      string      `json:"content"`
	ImageURL     string      `json:"imageUrl"`
	CreatorInfo  CreatorInfo `json:"creatorInfo"`
	Categories   []NamedRef  `json:"categories" validate:"dive"`
	TotalReact   int         `json:"totalReact" validate:"gte=0"`
	TotalComment int         `json:"totalComment" validate:"gte=0"`
	Slug         string      `json:"slug"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

func (Blog) StrictKeys() {}

// BlogBody is the stored blog returned after a create or update
type BlogBody struct {
	ID          string    `json:"id" validate:"required"`
	CreatorID   string    `json:"creatorId"`
	Title       string    `json:"title"`
	TitleNoTone string    `json:"titleNoTone"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"imageUrl"`
	Status      string    `json:"status"`
	IsDeleted   bool      `json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Categories  []string  `json:"categories"`
}

func (BlogBody) StrictKeys() {}

// BlogRequest is the body sent to create or update a blog
type BlogRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	ImageURL    string   `json:"imageUrl"`
	CategoryIDs []string `json:"categoryIds"`
}

// CommentUser is the author projection embedded in comments
type CommentUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	AvatarURL string `json:"avatarUrl"`
}

// BlogComment is a comment on a blog. ReplyID is nil for top-level comments.
type BlogComment struct {
	ID        string        `json:"id" validate:"required"`
	BlogID    string        `json:"blogId"`
	UserID    string        `json:"userId"`
	ReplyID   *string       `json:"replyId"`
	Content   string        `json:"content"`
	User      CommentUser   `json:"user"`
	Replies   []BlogComment `json:"replies" validate:"dive"`
	IsReact   bool          `json:"isReact"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// BlogCommentPage is one page of a blog's comments
type BlogCommentPage struct {
	CommentsWithReplies []BlogComment `json:"commentsWithReplies" validate:"dive"`
	TotalComments       int           `json:"totalComments" validate:"gte=0"`
}

// CreateCommentRequest is the body sent to post a comment
type CreateCommentRequest struct {
	Identifier string  `json:"identifier"`
	Content    string  `json:"content"`
	ReplyID    *string `json:"replyId"`
}

// MyBlogs is the author's own blogs together with their statistics
type MyBlogs struct {
	Statistics BlogStatistics `json:"statistics"`
	Blogs      []MyBlog       `json:"blogs" validate:"dive"`
}

// BlogStatistics aggregates an author's blogs
type BlogStatistics struct {
	TotalBlogs        int `json:"totalBlogs" validate:"gte=0"`
	TotalReacts       int `json:"totalReacts" validate:"gte=0"`
	TotalComments     int `json:"totalComments" validate:"gte=0"`
	TotalVisibleBlogs int `json:"totalVisibleBlogs" validate:"gte=0,ltefield=TotalBlogs"`
}

// MyBlog is a blog in the author's dashboard
type MyBlog struct {
	IsDeleted          bool          `json:"isDeleted"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
	ID                 string        `json:"id" validate:"uuid"`
	CreatorID          string        `json:"creatorId" validate:"uuid"`
	Title              string        `json:"title"`
	TitleNoTone        string        `json:"titleNoTone"`
	Slug               string        `json:"slug"`
	Description        string        `json:"description"`
	Content            string        `json:"content"`
	ImageURL           string        `json:"imageUrl" validate:"url"`
	Status             BlogStatus    `json:"status" validate:"oneof=VISIBLE INVISIBLE"`
	CreatedAtFormatted string        `json:"createdAtFormatted"`
	UpdatedAtFormatted string        `json:"updatedAtFormatted"`
	CreatorInfo        MyBlogCreator `json:"creatorInfo"`
	TotalReact         int           `json:"totalReact" validate:"gte=0"`
	TotalComment       int           `json:"totalComment" validate:"gte=0"`
	Categories         []MyBlogTag   `json:"categories" validate:"dive"`
}

// MyBlogCreator is the author projection with validated identifiers
type MyBlogCreator struct {
	ID        string `json:"id" validate:"uuid"`
	FirstName string `json:"firstName"`
	AvatarURL string `json:"avatarUrl" validate:"url"`
}

// MyBlogTag is a category reference with a validated identifier
type MyBlogTag struct {
	ID   string `json:"id" validate:"uuid"`
	Name string `json:"name"`
}
