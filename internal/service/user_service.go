package service

import (
	"context"

	"waveline/internal/models"
	"waveline/internal/repository"
	"waveline/internal/validation"
)

// UserService provides profile business logic.
type UserService struct {
	userRepo     repository.UserRepository
	imageService *ImageService
}

// UpdateProfileInput carries the editable profile fields. Empty fields are
// left untouched.
type UpdateProfileInput struct {
	UserID   uint
	Name     string
	Bio      string
	Location string
	Website  string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, imageService *ImageService) *UserService {
	return &UserService{userRepo: userRepo, imageService: imageService}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies partial profile edits.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 250
	const maxFieldLen = 100

	if in.Name != "" {
		if err := validation.ValidateName(in.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Name = in.Name
	}
	if in.Bio != "" {
		if len(in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 250 characters)")
		}
		user.Bio = in.Bio
	}
	if in.Location != "" {
		if len(in.Location) > maxFieldLen {
			return nil, models.NewValidationError("Location too long (max 100 characters)")
		}
		user.Location = in.Location
	}
	if in.Website != "" {
		if len(in.Website) > maxFieldLen {
			return nil, models.NewValidationError("Website too long (max 100 characters)")
		}
		user.Website = in.Website
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateProfilePicture processes the upload and stores its public URL on the
// user's profile.
func (s *UserService) UpdateProfilePicture(ctx context.Context, userID uint, in UploadImageInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	in.UserID = userID
	in.MaxSize = AvatarMaxSize
	url, err := s.imageService.Process(in)
	if err != nil {
		return nil, err
	}

	user.ProfilePicture = url
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
