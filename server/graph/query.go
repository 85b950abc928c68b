package graph

import (
	"github.com/graph-gophers/graphql-go"

	"github.com/topi314/event-graph/server/store"
)

type idArgs struct {
	ID graphql.ID
}

func (r *Resolver) Events() []*EventResolver {
	return newEvents(r.store, r.store.Events.List())
}

func (r *Resolver) Event(args idArgs) (*EventResolver, error) {
	event, err := r.store.Events.Find(store.ID(args.ID))
	if err != nil {
		return nil, newStoreError("Event", err)
	}
	return &EventResolver{store: r.store, event: event}, nil
}

func (r *Resolver) Locations() []*LocationResolver {
	return newLocations(r.store.Locations.List())
}

func (r *Resolver) Location(args idArgs) (*LocationResolver, error) {
	location, err := r.store.Locations.Find(store.ID(args.ID))
	if err != nil {
		return nil, newStoreError("Location", err)
	}
	return &LocationResolver{location: location}, nil
}

func (r *Resolver) Users() []*UserResolver {
	return newUsers(r.store.Users.List())
}

func (r *Resolver) User(args idArgs) (*UserResolver, error) {
	user, err := r.store.Users.Find(store.ID(args.ID))
	if err != nil {
		return nil, newStoreError("User", err)
	}
	return &UserResolver{user: user}, nil
}

func (r *Resolver) Participants() []*ParticipantResolver {
	return newParticipants(r.store.Participants.List())
}

func (r *Resolver) Participant(args idArgs) (*ParticipantResolver, error) {
	participant, err := r.store.Participants.Find(store.ID(args.ID))
	if err != nil {
		return nil, newStoreError("Participant", err)
	}
	return &ParticipantResolver{participant: participant}, nil
}
