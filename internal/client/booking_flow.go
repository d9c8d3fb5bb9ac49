package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"hotelbooking/internal/models"
)

const (
	MsgInvalidDates    = "Пожалуйста, выберите корректные даты заезда и выезда."
	MsgCheckInPast     = "Дата заезда не может быть в прошлом."
	MsgCheckOutOrder   = "Дата выезда должна быть позже даты заезда."
	MsgInvalidForm     = "Пожалуйста, проверьте данные формы."
	MsgNoRoom          = "Ошибка: Не удалось определить номер для бронирования."
	MsgLoginRequired   = "Для бронирования номера необходимо авторизоваться."
	MsgPriceUnknown    = "Не удалось получить информацию о цене номера. Бронирование невозможно."
	MsgBookingCreated  = "Бронирование успешно создано!"
	MsgBookingFailed   = "Произошла ошибка при создании бронирования: "
	MsgRequestFailed   = "Произошла ошибка при отправке запроса."
	RoomNameUnknown    = "Неизвестный номер"
	RoomNameLoadFailed = "Ошибка загрузки номера"
	RoomNameMissingID  = "Номер без ID"
)

// Session is the signed-in user as the front end remembers it.
type Session struct {
	UserID int64
}

func (s *Session) Valid() bool {
	return s != nil && s.UserID > 0
}

// Notifier shows a blocking message. offerLogin asks the user to sign in
// before trying again.
type Notifier interface {
	Show(msg string, offerLogin bool)
}

// BookingForm holds the raw form values. RoomID comes from the page
// address and may be empty.
type BookingForm struct {
	RoomID   string `validate:"omitempty,numeric"`
	CheckIn  string `validate:"required,datetime=2006-01-02"`
	CheckOut string `validate:"required,datetime=2006-01-02"`
	Guests   int    `validate:"gte=0"`
	Status   string `validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

func (f *BookingForm) Reset() {
	*f = BookingForm{RoomID: f.RoomID}
}

// ErrAborted is returned when the flow stopped before anything was sent.
var ErrAborted = errors.New("booking aborted")

// BookingFlow submits a booking form. Each step runs after the previous one
// finished; a failure ends the attempt and is never retried.
type BookingFlow struct {
	api      *Client
	notifier Notifier
	validate *validator.Validate
	now      func() time.Time
	log      logrus.FieldLogger
}

func NewBookingFlow(api *Client, notifier Notifier, now func() time.Time, log logrus.FieldLogger) *BookingFlow {
	if now == nil {
		now = time.Now
	}
	return &BookingFlow{
		api:      api,
		notifier: notifier,
		validate: validator.New(),
		now:      now,
		log:      log.WithField("component", "booking_flow"),
	}
}

// ValidateDates checks that both dates parse, check-in is not before today
// and check-out is after check-in. It returns the message to show, or "".
func (f *BookingFlow) ValidateDates(form *BookingForm) string {
	if err := f.validate.StructPartial(form, "CheckIn", "CheckOut"); err != nil {
		return MsgInvalidDates
	}

	now := f.now()
	loc := now.Location()
	checkIn, err := time.ParseInLocation(models.DateLayout, form.CheckIn, loc)
	if err != nil {
		return MsgInvalidDates
	}
	checkOut, err := time.ParseInLocation(models.DateLayout, form.CheckOut, loc)
	if err != nil {
		return MsgInvalidDates
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if checkIn.Before(today) {
		return MsgCheckInPast
	}
	if !checkOut.After(checkIn) {
		return MsgCheckOutOrder
	}
	return ""
}

// Submit runs the booking flow for form. On success the form is reset.
func (f *BookingFlow) Submit(ctx context.Context, session *Session, form *BookingForm) (*models.Booking, error) {
	if msg := f.ValidateDates(form); msg != "" {
		return nil, f.abort(msg, false)
	}

	if form.RoomID == "" || f.validate.StructPartial(form, "RoomID") != nil {
		return nil, f.abort(MsgNoRoom, false)
	}
	roomID, err := strconv.ParseInt(form.RoomID, 10, 64)
	if err != nil {
		return nil, f.abort(MsgNoRoom, false)
	}

	if !session.Valid() {
		return nil, f.abort(MsgLoginRequired, true)
	}

	room, err := f.api.GetRoom(ctx, roomID)
	if err != nil || room.Price == nil {
		f.log.WithError(err).WithField("room_id", roomID).Warn("room price unavailable")
		return nil, f.abort(MsgPriceUnknown, false)
	}

	if err := f.validate.StructPartial(form, "Guests", "Status"); err != nil {
		return nil, f.abort(MsgInvalidForm, false)
	}

	status := models.StatusPending
	if form.Status != "" {
		status = models.BookingStatus(form.Status)
	}
	userID := session.UserID
	checkIn, checkOut := form.CheckIn, form.CheckOut
	booking := models.Booking{
		UserID:       &userID,
		RoomID:       &roomID,
		CheckInDate:  &checkIn,
		CheckOutDate: &checkOut,
		TotalPrice:   room.Price,
		Status:       &status,
	}
	if form.Guests > 0 {
		guests := form.Guests
		booking.NumberOfGuests = &guests
	}

	created, err := f.api.CreateBooking(ctx, booking)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			f.notifier.Show(failureMessage(apiErr), false)
			return nil, err
		}
		f.log.WithError(err).Error("send booking")
		f.notifier.Show(MsgRequestFailed, false)
		return nil, err
	}

	f.notifier.Show(MsgBookingCreated, false)
	form.Reset()
	return created, nil
}

func (f *BookingFlow) abort(msg string, offerLogin bool) error {
	f.notifier.Show(msg, offerLogin)
	return fmt.Errorf("%w: %s", ErrAborted, msg)
}

func failureMessage(apiErr *APIError) string {
	msg := MsgBookingFailed + apiErr.Error()
	if extra := apiErr.Extra(); extra != "" {
		msg += " (" + extra + ")"
	}
	return msg
}
