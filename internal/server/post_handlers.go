package server

import (
	"errors"

	"github.com/Gauravsharma19971029/FindDev/internal/models"
	"github.com/Gauravsharma19971029/FindDev/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"nopostfound": "No post found for id",
			})
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(post)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := authedUserID(c)

	var req struct {
		Text   string `json:"text"`
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result := validation.ValidatePostInput(validation.PostInput{Text: req.Text})
	if !result.IsValid {
		return c.Status(fiber.StatusBadRequest).JSON(result.Errors)
	}

	post := &models.Post{
		Text:   req.Text,
		Name:   req.Name,
		Avatar: req.Avatar,
		UserID: userID,
	}

	if err := s.postRepo.Create(c.Context(), post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(post)
}

// LikePost handles POST /api/posts/like/:postId.
// A user can hold at most one like per post; a repeat attempt is a 400.
func (s *Server) LikePost(c *fiber.Ctx) error {
	userID := authedUserID(c)
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if _, err := s.loadPost(c, postID); err != nil {
		return nil
	}

	liked, err := s.postRepo.IsLiked(c.Context(), userID, postID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if liked {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"alreadyliked": "User already liked this post",
		})
	}

	if err := s.postRepo.Like(c.Context(), userID, postID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return s.respondWithPost(c, postID)
}

// UnlikePost handles POST /api/posts/unlike/:postId
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	userID := authedUserID(c)
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if _, err := s.loadPost(c, postID); err != nil {
		return nil
	}

	liked, err := s.postRepo.IsLiked(c.Context(), userID, postID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if !liked {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"notliked": "User has not liked this post",
		})
	}

	if err := s.postRepo.Unlike(c.Context(), userID, postID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return s.respondWithPost(c, postID)
}

// DeletePost handles DELETE /api/posts/:id.
// Only the owner may delete a post; anyone else gets a 401 and the post stays.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := authedUserID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"postnotfound": "No post found",
			})
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if post.UserID != userID {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"notauthorized": "User not authorized",
		})
	}

	if err := s.postRepo.Delete(c.Context(), postID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// CreateComment handles POST /api/posts/comment/:postId
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := authedUserID(c)
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	var req struct {
		Text   string `json:"text"`
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result := validation.ValidateCommentInput(validation.PostInput{Text: req.Text})
	if !result.IsValid {
		return c.Status(fiber.StatusBadRequest).JSON(result.Errors)
	}

	if _, err := s.loadPost(c, postID); err != nil {
		return nil
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   req.Text,
		Name:   req.Name,
		Avatar: req.Avatar,
	}

	if err := s.postRepo.AddComment(c.Context(), comment); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return s.respondWithPost(c, postID)
}

// DeleteComment handles DELETE /api/posts/comment/:postId/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	post, loadErr := s.loadPost(c, postID)
	if loadErr != nil {
		return nil
	}

	exists := false
	for _, comment := range post.Comments {
		if comment.ID == commentID {
			exists = true
			break
		}
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"commentnotexists": "Comment doesn't exist",
		})
	}

	if _, err := s.postRepo.DeleteComment(c.Context(), postID, commentID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return s.respondWithPost(c, postID)
}

// loadPost fetches a post or writes the 404/500 response itself. Callers
// must return nil when the error is non-nil.
func (s *Server) loadPost(c *fiber.Ctx, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(c.Context(), postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"nopostfound": "No post found for id",
			})
			return nil, errResponseWritten
		}
		_ = models.RespondWithError(c, fiber.StatusInternalServerError, err)
		return nil, errResponseWritten
	}
	return post, nil
}

// respondWithPost returns the post with its like and comment lists reloaded.
func (s *Server) respondWithPost(c *fiber.Ctx, postID uint) error {
	post, err := s.postRepo.GetByID(c.Context(), postID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(post)
}
