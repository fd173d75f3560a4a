package response

import (
	"time"

	"shareit/internal/usecase/queries"
)

type BookingRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     int64      `json:"id"`
	Start  time.Time  `json:"start"`
	End    time.Time  `json:"end"`
	Status string     `json:"status"`
	Booker BookingRef `json:"booker"`
	Item   BookingRef `json:"item"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     v.ID,
		Start:  v.Start,
		End:    v.End,
		Status: v.Status,
		Booker: BookingRef{ID: v.BookerID, Name: v.BookerName},
		Item:   BookingRef{ID: v.ItemID, Name: v.ItemName},
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

// BookingShortResponse is the booking summary shown inside an item.
type BookingShortResponse struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

func fromBookingShort(v *queries.BookingView) *BookingShortResponse {
	if v == nil {
		return nil
	}
	return &BookingShortResponse{
		ID:       v.ID,
		BookerID: v.BookerID,
		Start:    v.Start,
		End:      v.End,
	}
}
