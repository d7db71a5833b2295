package server

import (
	"io"

	"waveline/internal/models"
	"waveline/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfile handles PUT /api/users/profile
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Bio      string `json:"bio"`
		Location string `json:"location"`
		Website  string `json:"website"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:   currentUserID(c),
		Name:     req.Name,
		Bio:      req.Bio,
		Location: req.Location,
		Website:  req.Website,
	})
	if err != nil {
		return models.RespondError(c, err)
	}
	return respond(c, fiber.StatusOK, user)
}

// UpdateProfilePicture handles PUT /api/users/profile/picture (multipart)
func (s *Server) UpdateProfilePicture(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Image file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondError(c, models.NewInternalError(err))
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return models.RespondError(c, models.NewInternalError(err))
	}

	user, err := s.userService.UpdateProfilePicture(c.Context(), currentUserID(c), service.UploadImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		return models.RespondError(c, err)
	}
	return respond(c, fiber.StatusOK, user)
}

// GetSuggestions handles GET /api/users/suggestions
func (s *Server) GetSuggestions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)
	suggestions, err := s.friendService.Suggestions(c.Context(), currentUserID(c), limit)
	if err != nil {
		return models.RespondError(c, err)
	}
	return respond(c, fiber.StatusOK, suggestions)
}
