package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"hotelbooking/internal/models"
	"hotelbooking/internal/repository"
)

// BookingRecorder receives one call per booking operation.
type BookingRecorder interface {
	BookingOperation(operation, outcome string)
}

type noopRecorder struct{}

func (noopRecorder) BookingOperation(string, string) {}

// BookingService stores bookings exactly as submitted. It does not check
// dates, room availability or overlaps with other bookings.
type BookingService interface {
	List(ctx context.Context) ([]models.Booking, error)
	Get(ctx context.Context, id int64) (*models.Booking, error)
	Create(ctx context.Context, booking models.Booking) (*models.Booking, error)
	Update(ctx context.Context, id int64, booking models.Booking) (*models.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	recorder    BookingRecorder
	log         logrus.FieldLogger
}

func NewBookingService(bookingRepo repository.BookingRepository, recorder BookingRecorder, log logrus.FieldLogger) BookingService {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &bookingService{
		bookingRepo: bookingRepo,
		recorder:    recorder,
		log:         log.WithField("component", "bookings"),
	}
}

func (s *bookingService) List(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.log.WithError(err).Error("list bookings")
		s.recorder.BookingOperation("list", "error")
		return nil, newError(KindServerError, MsgServerError, err)
	}

	s.recorder.BookingOperation("list", "ok")
	return bookings, nil
}

func (s *bookingService) Get(ctx context.Context, id int64) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.recorder.BookingOperation("get", "not_found")
			return nil, newError(KindNotFound, MsgBookingAbsent, err)
		}
		s.log.WithError(err).WithField("booking_id", id).Error("get booking")
		s.recorder.BookingOperation("get", "error")
		return nil, newError(KindServerError, MsgServerError, err)
	}

	s.recorder.BookingOperation("get", "ok")
	return booking, nil
}

// Create inserts unconditionally. Any store failure, whatever its cause,
// is reported as a bad request.
func (s *bookingService) Create(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	booking.ID = 0
	booking.BookingDate = nil

	if err := s.bookingRepo.Create(ctx, &booking); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"user_id": booking.UserID,
			"room_id": booking.RoomID,
			"pq_code": repository.PQCode(err),
		}).Warn("create booking")
		s.recorder.BookingOperation("create", "error")
		return nil, newError(KindBadRequest, MsgBadRequest, err)
	}

	s.log.WithField("booking_id", booking.ID).Info("booking created")
	s.recorder.BookingOperation("create", "ok")
	return &booking, nil
}

// Update replaces every field of the booking; fields left nil become NULL.
func (s *bookingService) Update(ctx context.Context, id int64, booking models.Booking) (*models.Booking, error) {
	booking.ID = id
	booking.BookingDate = nil

	if err := s.bookingRepo.Update(ctx, &booking); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.WithField("booking_id", id).Info("booking not found for update")
			s.recorder.BookingOperation("update", "not_found")
			return nil, newError(KindNotFound, MsgBookingAbsent, err)
		}
		s.log.WithError(err).WithFields(logrus.Fields{
			"booking_id": id,
			"pq_code":    repository.PQCode(err),
		}).Warn("update booking")
		s.recorder.BookingOperation("update", "error")
		return nil, newError(KindBadRequest, MsgBadRequest, err)
	}

	s.recorder.BookingOperation("update", "ok")
	return &booking, nil
}

func (s *bookingService) Delete(ctx context.Context, id int64) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.recorder.BookingOperation("delete", "not_found")
			return newError(KindNotFound, MsgBookingAbsent, err)
		}
		s.log.WithError(err).WithField("booking_id", id).Error("delete booking")
		s.recorder.BookingOperation("delete", "error")
		return newError(KindServerError, MsgServerError, err)
	}

	s.recorder.BookingOperation("delete", "ok")
	return nil
}
