package views

import "github.com/edustore/dashboard/internal/models"

// BlogCard is a blog in the public list
type BlogCard struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	Author       string   `json:"author"`
	AuthorAvatar string   `json:"authorAvatar"`
	Categories   []string `json:"categories"`
	Reacts       int      `json:"reacts"`
	Comments     int      `json:"comments"`
	PublishedOn  string   `json:"publishedOn"`
}

// NewBlogCard renders a blog for the list
func NewBlogCard(b models.Blog) BlogCard {
	date, _ := FormatDate(b.CreatedAt)
	card := BlogCard{
		ID:           b.ID,
		Slug:         b.Slug,
		Title:        b.Title,
		Description:  b.Description,
		ImageURL:     b.ImageURL,
		Author:       b.CreatorInfo.FirstName,
		AuthorAvatar: b.CreatorInfo.AvatarURL,
		Categories:   make([]string, 0, len(b.Categories)),
		Reacts:       b.TotalReact,
		Comments:     b.TotalComment,
		PublishedOn:  date,
	}
	for _, c := range b.Categories {
		card.Categories = append(card.Categories, c.Name)
	}
	return card
}

// MyBlogColumns are the columns of the author's blog table
func MyBlogColumns() []ColumnDef[models.MyBlog] {
	return []ColumnDef[models.MyBlog]{
		{
			Key:   "blog",
			Label: "Blog",
			Render: func(b models.MyBlog) Cell {
				return Cell{Kind: CellMedia, Text: b.Title, SubText: b.Description, ImageURL: b.ImageURL}
			},
		},
		{
			Key:    "status",
			Label:  "Status",
			Render: func(b models.MyBlog) Cell { return BadgeCell(BlogStatusBadge(b.Status)) },
		},
		{
			Key:   "engagement",
			Label: "Engagement",
			Render: func(b models.MyBlog) Cell {
				return TextCell(itoa(b.TotalReact)+" reacts", itoa(b.TotalComment)+" comments")
			},
		},
		{
			Key:    "createdAt",
			Label:  "Created",
			Render: func(b models.MyBlog) Cell { return DateTimeCell(b.CreatedAt) },
		},
		{
			Key:   "actions",
			Label: "",
			Render: func(b models.MyBlog) Cell {
				return ActionsCell(Action{Label: "Edit", Href: "/blog/" + b.ID + "/edit"})
			},
		},
	}
}

// CommentNode is a comment with its replies nested underneath
type CommentNode struct {
	ID        string        `json:"id"`
	Author    string        `json:"author"`
	AvatarURL string        `json:"avatarUrl"`
	Content   string        `json:"content"`
	IsReact   bool          `json:"isReact"`
	PostedAt  string        `json:"postedAt"`
	Replies   []CommentNode `json:"replies"`
}

// ThreadComments nests replies under their parent comment.
// Replies already embedded in a comment and flat replies that carry a replyId are both
// attached; a reply whose parent is not on the page becomes a top-level comment.
func ThreadComments(comments []models.BlogComment) []CommentNode {
	flat := make([]models.BlogComment, 0, len(comments))
	var flatten func(cs []models.BlogComment, parentID *string)
	flatten = func(cs []models.BlogComment, parentID *string) {
		for _, c := range cs {
			if c.ReplyID == nil && parentID != nil {
				id := *parentID
				c.ReplyID = &id
			}
			flat = append(flat, c)
			id := c.ID
			flatten(c.Replies, &id)
		}
	}
	flatten(comments, nil)

	present := make(map[string]bool, len(flat))
	for _, c := range flat {
		present[c.ID] = true
	}
	children := make(map[string][]models.BlogComment)
	var roots, unique []models.BlogComment
	seen := make(map[string]bool, len(flat))
	for _, c := range flat {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		unique = append(unique, c)
		if c.ReplyID != nil && *c.ReplyID != c.ID && present[*c.ReplyID] {
			children[*c.ReplyID] = append(children[*c.ReplyID], c)
			continue
		}
		roots = append(roots, c)
	}

	placed := make(map[string]bool, len(unique))
	var build func(c models.BlogComment) CommentNode
	build = func(c models.BlogComment) CommentNode {
		placed[c.ID] = true
		date, clock := FormatDate(c.CreatedAt)
		author := c.User.FirstName
		if author == "" {
			author = c.User.Username
		}
		node := CommentNode{
			ID:        c.ID,
			Author:    author,
			AvatarURL: c.User.AvatarURL,
			Content:   c.Content,
			IsReact:   c.IsReact,
			PostedAt:  date + " " + clock,
			Replies:   make([]CommentNode, 0, len(children[c.ID])),
		}
		for _, child := range children[c.ID] {
			if !placed[child.ID] {
				node.Replies = append(node.Replies, build(child))
			}
		}
		return node
	}

	nodes := make([]CommentNode, 0, len(roots))
	for _, r := range roots {
		nodes = append(nodes, build(r))
	}
	// Comments replying to each other in a cycle are unreachable from any root.
	for _, c := range unique {
		if !placed[c.ID] {
			nodes = append(nodes, build(c))
		}
	}
	return nodes
}
