package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Rosario-Gerratana/FollowTheFood1/internal/dto"
	apierrors "github.com/Rosario-Gerratana/FollowTheFood1/internal/errors"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/middleware"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/services"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/utils"
	"github.com/gin-gonic/gin"
)

// PostHandler coordinates the blog post handlers.
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// postForm is shared between create and update.
type postForm struct {
	Title     string  `form:"title" binding:"required,max=100"`
	Content   string  `form:"content" binding:"required"`
	ProductID *uint64 `form:"product_id"`
}

// NewPostPage renders the create-post page together with the full feed,
// newest first.
func (h *PostHandler) NewPostPage(c *gin.Context) {
	posts, err := h.postService.ListPosts()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch posts")
		return
	}

	renderPage(c, http.StatusOK, gin.H{
		"title": "New Post",
		"posts": dto.ToPostDTOs(posts),
	})
}

// CreatePost creates a post owned by the session user.
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		apierrors.ValidationFailed(c, formErrors(err))
		return
	}

	_, err := h.postService.CreatePost(services.CreatePostInput{
		Title:     form.Title,
		Content:   form.Content,
		ProductID: form.ProductID,
		AuthorID:  userID,
	})
	if err != nil {
		respondPostError(c, err)
		return
	}

	utils.Flash(c, "success", "Your post has been created!")
	c.Redirect(http.StatusSeeOther, "/post/new")
}

// ShowPost renders a single post.
func (h *PostHandler) ShowPost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c, "Post not found")
		return
	}

	post, err := h.postService.GetPost(id)
	if err != nil {
		respondPostError(c, err)
		return
	}

	renderPage(c, http.StatusOK, gin.H{
		"title": post.Title,
		"post":  dto.ToPostDTO(*post),
	})
}

// EditPostPage renders the edit form prefilled with the current post. Only
// the author may see it.
func (h *PostHandler) EditPostPage(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c, "Post not found")
		return
	}

	post, err := h.postService.GetPost(id)
	if err != nil {
		respondPostError(c, err)
		return
	}
	if post.UserID != userID {
		apierrors.Forbidden(c, "")
		return
	}

	renderPage(c, http.StatusOK, gin.H{
		"title":   "Update Post",
		"post_id": post.ID,
		"form": gin.H{
			"title":   post.Title,
			"content": post.Content,
		},
	})
}

// UpdatePost mutates title/content, author only.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c, "Post not found")
		return
	}

	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		apierrors.ValidationFailed(c, formErrors(err))
		return
	}

	post, err := h.postService.UpdatePost(id, userID, services.UpdatePostInput{
		Title:   form.Title,
		Content: form.Content,
	})
	if err != nil {
		respondPostError(c, err)
		return
	}

	utils.Flash(c, "success", "Your post has been updated!")
	c.Redirect(http.StatusSeeOther, "/post/"+strconv.FormatUint(post.ID, 10))
}

// DeletePost removes a post, author only, then returns to the feed.
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c, "Post not found")
		return
	}

	if err := h.postService.DeletePost(id, userID); err != nil {
		respondPostError(c, err)
		return
	}

	utils.Flash(c, "success", "Your post has been deleted!")
	c.Redirect(http.StatusSeeOther, "/post/new")
}

func respondPostError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		apierrors.NotFound(c, "Post not found")
	case errors.Is(err, services.ErrNotPostOwner):
		apierrors.Forbidden(c, "")
	case errors.Is(err, services.ErrPostTitleEmpty):
		apierrors.ValidationFailed(c, map[string]string{"title": services.ErrPostTitleEmpty.Error()})
	case errors.Is(err, services.ErrUnknownProduct):
		apierrors.ValidationFailed(c, map[string]string{"product_id": services.ErrUnknownProduct.Error()})
	default:
		apierrors.InternalError(c, "")
	}
}
