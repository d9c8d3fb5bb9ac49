package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"hotelbooking/internal/models"
	"hotelbooking/internal/repository"
)

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, user models.User) (*models.User, error)
	Update(ctx context.Context, id int64, user models.User) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	log      logrus.FieldLogger
}

func NewUserService(userRepo repository.UserRepository, verifier PasswordVerifier, log logrus.FieldLogger) UserService {
	return &userService{
		userRepo: userRepo,
		verifier: verifier,
		log:      log.WithField("component", "users"),
	}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.log.WithError(err).Error("list users")
		return nil, newError(KindServerError, MsgServerError, err)
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(KindNotFound, MsgUserAbsent, err)
		}
		s.log.WithError(err).WithField("user_id", id).Error("get user")
		return nil, newError(KindServerError, MsgServerError, err)
	}
	return user, nil
}

// Create rejects an email that is already registered. The check and the
// insert are separate statements, so two concurrent requests can both pass.
func (s *userService) Create(ctx context.Context, user models.User) (*models.User, error) {
	user.ID = 0

	email := ""
	if user.Email != nil {
		email = *user.Email
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		s.log.WithError(err).Warn("check email")
		return nil, withDetail(KindBadRequest, MsgBadRequest, err)
	}
	if exists {
		return nil, newError(KindBadRequest, MsgEmailTaken, nil)
	}

	if err := s.hashPassword(&user); err != nil {
		return nil, withDetail(KindBadRequest, MsgBadRequest, err)
	}

	if err := s.userRepo.Create(ctx, &user); err != nil {
		s.log.WithError(err).Warn("create user")
		return nil, withDetail(KindBadRequest, MsgBadRequest, err)
	}

	s.log.WithField("user_id", user.ID).Info("user created")
	return &user, nil
}

// Update replaces the profile fields. An empty or missing password keeps the
// stored one.
func (s *userService) Update(ctx context.Context, id int64, user models.User) (*models.User, error) {
	user.ID = id

	if err := s.hashPassword(&user); err != nil {
		return nil, newError(KindBadRequest, MsgBadRequest, err)
	}

	if err := s.userRepo.Update(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(KindNotFound, MsgUserAbsent, err)
		}
		s.log.WithError(err).WithField("user_id", id).Warn("update user")
		return nil, newError(KindBadRequest, MsgBadRequest, err)
	}

	return &user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return newError(KindNotFound, MsgUserAbsent, err)
		}
		s.log.WithError(err).WithField("user_id", id).Error("delete user")
		return newError(KindServerError, MsgServerError, err)
	}
	return nil
}

func (s *userService) hashPassword(user *models.User) error {
	if user.Password == nil || *user.Password == "" {
		return nil
	}

	hashed, err := s.verifier.Hash(*user.Password)
	if err != nil {
		return err
	}
	user.Password = &hashed
	return nil
}
