package service

import (
	"errors"
)

type Kind int

const (
	KindServerError Kind = iota
	KindNotFound
	KindBadRequest
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "server_error"
	}
}

const (
	MsgServerError   = "Ошибка сервера"
	MsgBadRequest    = "Некорректный запрос"
	MsgEmailTaken    = "Пользователь с таким email уже зарегистрирован"
	MsgEmailNotFound = "Пользователь с таким email не найден"
	MsgWrongPassword = "Неверный пароль"
	MsgBookingAbsent = "Бронирование не найдено"
	MsgRoomAbsent    = "Номер не найден"
	MsgUserAbsent    = "Пользователь не найден"
	MsgPostAbsent    = "Пост не найден"
	MsgInvalidToken  = "Недействительный токен"
)

// Error is what handlers turn into a response. Message is safe to show to
// clients; Detail, when set, is echoed in the "error" field of the body.
type Error struct {
	Kind    Kind
	Message string
	Detail  string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// withDetail exposes the cause text to the client.
func withDetail(kind Kind, message string, cause error) *Error {
	e := newError(kind, message, cause)
	if cause != nil {
		e.Detail = cause.Error()
	}
	return e
}

// KindOf reports the kind of err. Errors not produced by this package are
// server errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindServerError
}

// AsError converts any error into an *Error, wrapping unknown ones as server errors.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return newError(KindServerError, MsgServerError, err)
}
