package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"hotelbooking/internal/models"
	"hotelbooking/internal/repository"
)

type RoomService interface {
	List(ctx context.Context) ([]models.Room, error)
	Get(ctx context.Context, id int64) (*models.Room, error)
	Create(ctx context.Context, room models.Room) (*models.Room, error)
	Update(ctx context.Context, id int64, room models.Room) (*models.Room, error)
	Delete(ctx context.Context, id int64) error
}

type roomService struct {
	roomRepo repository.RoomRepository
	log      logrus.FieldLogger
}

func NewRoomService(roomRepo repository.RoomRepository, log logrus.FieldLogger) RoomService {
	return &roomService{
		roomRepo: roomRepo,
		log:      log.WithField("component", "rooms"),
	}
}

func (s *roomService) List(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.log.WithError(err).Error("list rooms")
		return nil, newError(KindServerError, MsgServerError, err)
	}
	return rooms, nil
}

func (s *roomService) Get(ctx context.Context, id int64) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(KindNotFound, MsgRoomAbsent, err)
		}
		s.log.WithError(err).WithField("room_id", id).Error("get room")
		return nil, newError(KindServerError, MsgServerError, err)
	}
	return room, nil
}

func (s *roomService) Create(ctx context.Context, room models.Room) (*models.Room, error) {
	room.ID = 0

	if err := s.roomRepo.Create(ctx, &room); err != nil {
		s.log.WithError(err).Warn("create room")
		return nil, withDetail(KindBadRequest, MsgBadRequest, err)
	}

	return &room, nil
}

func (s *roomService) Update(ctx context.Context, id int64, room models.Room) (*models.Room, error) {
	room.ID = id

	if err := s.roomRepo.Update(ctx, &room); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(KindNotFound, MsgRoomAbsent, err)
		}
		s.log.WithError(err).WithField("room_id", id).Warn("update room")
		return nil, withDetail(KindBadRequest, MsgBadRequest, err)
	}

	return &room, nil
}

func (s *roomService) Delete(ctx context.Context, id int64) error {
	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return newError(KindNotFound, MsgRoomAbsent, err)
		}
		s.log.WithError(err).WithField("room_id", id).Error("delete room")
		return newError(KindServerError, MsgServerError, err)
	}
	return nil
}
