package server

import (
	"waveline/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFriends handles GET /api/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	friends, err := s.friendService.ListFriends(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondError(c, err)
	}
	return respond(c, fiber.StatusOK, friends)
}

// GetFriendRequests handles GET /api/friends/requests
func (s *Server) GetFriendRequests(c *fiber.Ctx) error {
	requests, err := s.friendService.PendingRequests(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondError(c, err)
	}
	return respond(c, fiber.StatusOK, requests)
}

// SendFriendRequest handles POST /api/friends/request/:userId
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	friendship, err := s.friendService.SendRequest(c.Context(), currentUserID(c), targetID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return respond(c, fiber.StatusCreated, friendship)
}

// AcceptFriendRequest handles PUT /api/friends/accept/:requestId
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	friendship, err := s.friendService.AcceptRequest(c.Context(), currentUserID(c), requestID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return respond(c, fiber.StatusOK, friendship)
}

// RejectFriendRequest handles PUT /api/friends/reject/:requestId
func (s *Server) RejectFriendRequest(c *fiber.Ctx) error {
	requestID, err := s.parseID(c, "requestId")
	if err != nil {
		return nil
	}

	if _, err := s.friendService.RejectRequest(c.Context(), currentUserID(c), requestID); err != nil {
		return models.RespondError(c, err)
	}
	return respondMessage(c, fiber.StatusOK, "Friend request rejected")
}
