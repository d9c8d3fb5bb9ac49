package client

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"hotelbooking/internal/models"
)

// ErrNoSession is returned by Profile when nobody is signed in.
var ErrNoSession = errors.New("no session")

type ProfileBooking struct {
	models.Booking
	RoomName string `json:"room_name"`
}

// Profile lists the bookings of the session user with room names resolved.
// Room lookups run concurrently and every lookup is waited for; a failed
// lookup leaves a placeholder name. The result is ordered by check-in date
// with missing or unparsable dates last.
func (c *Client) Profile(ctx context.Context, session *Session) ([]ProfileBooking, error) {
	if !session.Valid() {
		return nil, ErrNoSession
	}

	all, err := c.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	var own []ProfileBooking
	for _, b := range all {
		if b.UserID != nil && *b.UserID == session.UserID {
			own = append(own, ProfileBooking{Booking: b})
		}
	}

	var wg sync.WaitGroup
	for i := range own {
		wg.Add(1)
		go func(pb *ProfileBooking) {
			defer wg.Done()
			pb.RoomName = c.roomName(ctx, pb.RoomID)
		}(&own[i])
	}
	wg.Wait()

	sortByCheckIn(own)
	return own, nil
}

func (c *Client) roomName(ctx context.Context, roomID *int64) string {
	if roomID == nil || *roomID == 0 {
		return RoomNameMissingID
	}

	room, err := c.GetRoom(ctx, *roomID)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return RoomNameUnknown
		}
		c.log.WithError(err).WithField("room_id", *roomID).Warn("load room name")
		return RoomNameLoadFailed
	}
	if room.Name == nil || *room.Name == "" {
		return RoomNameUnknown
	}
	return *room.Name
}

func checkInTime(b ProfileBooking) (time.Time, bool) {
	if b.CheckInDate == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(models.DateLayout, *b.CheckInDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func sortByCheckIn(bookings []ProfileBooking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		ti, okI := checkInTime(bookings[i])
		tj, okJ := checkInTime(bookings[j])
		switch {
		case okI && okJ:
			return ti.Before(tj)
		case okI:
			return true
		default:
			return false
		}
	})
}
