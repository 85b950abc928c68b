package graph

import (
	"github.com/graph-gophers/graphql-go"

	"github.com/topi314/event-graph/internal/omit"
	"github.com/topi314/event-graph/server/store"
)

type createEventInput struct {
	Title      string      `json:"title"`
	Desc       string      `json:"desc"`
	Date       string      `json:"date" validate:"datetime=2006-01-02"`
	From       string      `json:"from" validate:"datetime=15:04"`
	To         string      `json:"to" validate:"datetime=15:04"`
	LocationID *graphql.ID `json:"location_id"`
	UserID     *graphql.ID `json:"user_id"`
}

func (i createEventInput) event() store.Event {
	return store.Event{
		Title:      i.Title,
		Desc:       i.Desc,
		Date:       i.Date,
		From:       i.From,
		To:         i.To,
		LocationID: optionalID(i.LocationID).Or(""),
		UserID:     optionalID(i.UserID).Or(""),
	}
}

type updateEventInput struct {
	Title      *string     `json:"title"`
	Desc       *string     `json:"desc"`
	Date       *string     `json:"date" validate:"omitnil,datetime=2006-01-02"`
	From       *string     `json:"from" validate:"omitnil,datetime=15:04"`
	To         *string     `json:"to" validate:"omitnil,datetime=15:04"`
	LocationID *graphql.ID `json:"location_id"`
	UserID     *graphql.ID `json:"user_id"`
}

func (i updateEventInput) patch() store.EventPatch {
	return store.EventPatch{
		Title:      omit.FromPtr(i.Title),
		Desc:       omit.FromPtr(i.Desc),
		Date:       omit.FromPtr(i.Date),
		From:       omit.FromPtr(i.From),
		To:         omit.FromPtr(i.To),
		LocationID: optionalID(i.LocationID),
		UserID:     optionalID(i.UserID),
	}
}

type createLocationInput struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
	Lat  string `json:"lat" validate:"latitude"`
	Lng  string `json:"lng" validate:"longitude"`
}

func (i createLocationInput) location() store.Location {
	return store.Location{
		Name: i.Name,
		Desc: i.Desc,
		Lat:  i.Lat,
		Lng:  i.Lng,
	}
}

type updateLocationInput struct {
	Name *string `json:"name"`
	Desc *string `json:"desc"`
	Lat  *string `json:"lat" validate:"omitnil,latitude"`
	Lng  *string `json:"lng" validate:"omitnil,longitude"`
}

func (i updateLocationInput) patch() store.LocationPatch {
	return store.LocationPatch{
		Name: omit.FromPtr(i.Name),
		Desc: omit.FromPtr(i.Desc),
		Lat:  omit.FromPtr(i.Lat),
		Lng:  omit.FromPtr(i.Lng),
	}
}

type createUserInput struct {
	Username string     `json:"username"`
	Email    string     `json:"email" validate:"email"`
	EventID  graphql.ID `json:"event_id"`
}

func (i createUserInput) user() store.User {
	return store.User{
		Username: i.Username,
		Email:    i.Email,
		EventID:  store.ID(i.EventID),
	}
}

type createParticipantInput struct {
	UserID  graphql.ID `json:"user_id"`
	EventID graphql.ID `json:"event_id"`
}

func (i createParticipantInput) participant() store.Participant {
	return store.Participant{
		UserID:  store.ID(i.UserID),
		EventID: store.ID(i.EventID),
	}
}

func optionalID(id *graphql.ID) omit.Omit[store.ID] {
	return omit.Map(omit.FromPtr(id), func(id graphql.ID) store.ID {
		return store.ID(id)
	})
}
