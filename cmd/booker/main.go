package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"hotelbooking/internal/client"
	"hotelbooking/internal/logger"
)

const usage = `Использование:
  booker book -user ID -room ID -in YYYY-MM-DD -out YYYY-MM-DD [-guests N] [-status pending]
  booker profile -user ID`

type consoleNotifier struct{}

func (consoleNotifier) Show(msg string, offerLogin bool) {
	fmt.Println(msg)
	if offerLogin {
		fmt.Println("Войдите в систему и укажите -user.")
	}
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	apiURL := os.Getenv("HOTEL_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	fs := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
	baseURL := fs.String("api", apiURL, "адрес API")
	userID := fs.Int64("user", 0, "id авторизованного пользователя")
	roomID := fs.String("room", "", "id номера")
	checkIn := fs.String("in", "", "дата заезда")
	checkOut := fs.String("out", "", "дата выезда")
	guests := fs.Int("guests", 0, "количество гостей")
	status := fs.String("status", "", "статус бронирования")
	timeout := fs.Duration("timeout", 30*time.Second, "таймаут запроса")
	logLevel := fs.String("log-level", "warn", "уровень логирования")
	fs.Parse(os.Args[2:])

	log := logger.New(*logLevel)
	api := client.New(client.Config{BaseURL: *baseURL, Timeout: *timeout}, log)

	var session *client.Session
	if *userID > 0 {
		session = &client.Session{UserID: *userID}
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "book":
		flow := client.NewBookingFlow(api, consoleNotifier{}, time.Now, log)
		form := &client.BookingForm{
			RoomID:   *roomID,
			CheckIn:  *checkIn,
			CheckOut: *checkOut,
			Guests:   *guests,
			Status:   *status,
		}
		booking, err := flow.Submit(ctx, session, form)
		if err != nil {
			os.Exit(1)
		}
		fmt.Printf("ID бронирования: %d\n", booking.ID)

	case "profile":
		bookings, err := api.Profile(ctx, session)
		if err != nil {
			if errors.Is(err, client.ErrNoSession) {
				fmt.Println("Пожалуйста, войдите в систему...")
			} else {
				fmt.Println("Произошла ошибка при загрузке ваших бронирований.")
				log.WithError(err).Debug("profile")
			}
			os.Exit(1)
		}
		if len(bookings) == 0 {
			fmt.Println("У вас пока нет бронирований.")
			return
		}
		for _, b := range bookings {
			fmt.Printf("#%d %q: %s - %s, статус: %s\n",
				b.ID, b.RoomName, orDash(b.CheckInDate), orDash(b.CheckOutDate), statusOf(b))
		}

	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func orDash(s *string) string {
	if s == nil {
		return "Не указана"
	}
	return *s
}

func statusOf(b client.ProfileBooking) string {
	if b.Status == nil {
		return "Не указан"
	}
	return string(*b.Status)
}
