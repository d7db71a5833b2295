package server

import (
	"io"

	"waveline/internal/models"
	"waveline/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/posts?page&limit
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page := parsePagination(c)
	posts, pagination, err := s.postService.GetFeed(c.Context(), currentUserID(c), page.Page, page.Limit)
	if err != nil {
		return models.RespondError(c, err)
	}
	return respondPage(c, posts, pagination)
}

// GetUserPosts handles GET /api/posts/user/:userId
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	ownerID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	page := parsePagination(c)
	posts, err := s.postService.GetUserPosts(c.Context(), currentUserID(c), ownerID, page.Page, page.Limit)
	if err != nil {
		return models.RespondError(c, err)
	}
	return respond(c, fiber.StatusOK, posts)
}

// CreatePost handles POST /api/posts (multipart, optional image)
func (s *Server) CreatePost(c *fiber.Ctx) error {
	content := c.FormValue("content")
	privacy := models.PostPrivacy(c.FormValue("privacy"))

	imageURL := ""
	if fileHeader, fileErr := c.FormFile("image"); fileErr == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return models.RespondError(c, models.NewInternalError(err))
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return models.RespondError(c, models.NewInternalError(err))
		}

		imageURL, err = s.imageService.Process(service.UploadImageInput{
			UserID:      currentUserID(c),
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Content:     data,
		})
		if err != nil {
			return models.RespondError(c, err)
		}
	}

	post, err := s.postService.CreatePost(c.Context(), currentUserID(c), content, imageURL, privacy)
	if err != nil {
		return models.RespondError(c, err)
	}
	return respond(c, fiber.StatusCreated, post)
}

// ToggleLike handles PUT /api/posts/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	state, err := s.postService.ToggleLike(c.Context(), currentUserID(c), postID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return respond(c, fiber.StatusOK, state)
}

// AddComment handles POST /api/posts/:id/comment
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.postService.AddComment(c.Context(), currentUserID(c), postID, req.Content)
	if err != nil {
		return models.RespondError(c, err)
	}
	return respond(c, fiber.StatusCreated, comment)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), currentUserID(c), postID); err != nil {
		return models.RespondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Post deleted")
}
