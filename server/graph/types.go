package graph

import (
	"github.com/graph-gophers/graphql-go"

	"github.com/topi314/event-graph/server/store"
)

type EventResolver struct {
	store *store.Store
	event store.Event
}

func (r *EventResolver) ID() graphql.ID         { return graphql.ID(r.event.ID) }
func (r *EventResolver) Title() string          { return r.event.Title }
func (r *EventResolver) Desc() string           { return r.event.Desc }
func (r *EventResolver) Date() string           { return r.event.Date }
func (r *EventResolver) From() string           { return r.event.From }
func (r *EventResolver) To() string             { return r.event.To }
func (r *EventResolver) LocationID() graphql.ID { return graphql.ID(r.event.LocationID) }
func (r *EventResolver) UserID() graphql.ID     { return graphql.ID(r.event.UserID) }

func (r *EventResolver) Users() []*UserResolver {
	return newUsers(r.store.EventUsers(r.event))
}

func (r *EventResolver) Locations() []*LocationResolver {
	return newLocations(r.store.EventLocations(r.event))
}

func (r *EventResolver) Participants() []*ParticipantResolver {
	return newParticipants(r.store.EventParticipants(r.event))
}

type LocationResolver struct {
	location store.Location
}

func (r *LocationResolver) ID() graphql.ID { return graphql.ID(r.location.ID) }
func (r *LocationResolver) Name() string   { return r.location.Name }
func (r *LocationResolver) Desc() string   { return r.location.Desc }
func (r *LocationResolver) Lat() string    { return r.location.Lat }
func (r *LocationResolver) Lng() string    { return r.location.Lng }

type UserResolver struct {
	user store.User
}

func (r *UserResolver) ID() graphql.ID      { return graphql.ID(r.user.ID) }
func (r *UserResolver) Username() string    { return r.user.Username }
func (r *UserResolver) Email() string       { return r.user.Email }
func (r *UserResolver) EventID() graphql.ID { return graphql.ID(r.user.EventID) }

type ParticipantResolver struct {
	participant store.Participant
}

func (r *ParticipantResolver) ID() graphql.ID      { return graphql.ID(r.participant.ID) }
func (r *ParticipantResolver) UserID() graphql.ID  { return graphql.ID(r.participant.UserID) }
func (r *ParticipantResolver) EventID() graphql.ID { return graphql.ID(r.participant.EventID) }
