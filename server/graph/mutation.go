package graph

import (
	"context"
	"log/slog"

	"github.com/graph-gophers/graphql-go"

	"github.com/topi314/event-graph/server/store"
)

func (r *Resolver) CreateEvent(ctx context.Context, args struct{ Data createEventInput }) (*EventResolver, error) {
	if err := r.validateInput(args.Data); err != nil {
		return nil, err
	}

	event, err := r.store.CreateEvent(args.Data.event())
	if err != nil {
		return nil, newStoreError("Event", err)
	}

	slog.InfoContext(ctx, "Event created", slog.String("id", event.ID.String()), slog.String("title", event.Title))
	return &EventResolver{store: r.store, event: event}, nil
}

func (r *Resolver) UpdateEvent(ctx context.Context, args struct {
	ID   graphql.ID
	Data updateEventInput
}) (*EventResolver, error) {
	if err := r.validateInput(args.Data); err != nil {
		return nil, err
	}

	event, err := r.store.UpdateEvent(store.ID(args.ID), args.Data.patch())
	if err != nil {
		return nil, newStoreError("Event", err)
	}

	slog.InfoContext(ctx, "Event updated", slog.String("id", event.ID.String()))
	return &EventResolver{store: r.store, event: event}, nil
}

func (r *Resolver) CreateLocation(ctx context.Context, args struct{ Data createLocationInput }) (*LocationResolver, error) {
	if err := r.validateInput(args.Data); err != nil {
		return nil, err
	}

	location, err := r.store.CreateLocation(args.Data.location())
	if err != nil {
		return nil, newStoreError("Location", err)
	}

	slog.InfoContext(ctx, "Location created", slog.String("id", location.ID.String()), slog.String("name", location.Name))
	return &LocationResolver{location: location}, nil
}

func (r *Resolver) UpdateLocation(ctx context.Context, args struct {
	ID   graphql.ID
	Data updateLocationInput
}) (*LocationResolver, error) {
	if err := r.validateInput(args.Data); err != nil {
		return nil, err
	}

	location, err := r.store.UpdateLocation(store.ID(args.ID), args.Data.patch())
	if err != nil {
		return nil, newStoreError("Location", err)
	}

	slog.InfoContext(ctx, "Location updated", slog.String("id", location.ID.String()))
	return &LocationResolver{location: location}, nil
}

func (r *Resolver) CreateUser(ctx context.Context, args struct{ Data createUserInput }) (*UserResolver, error) {
	if err := r.validateInput(args.Data); err != nil {
		return nil, err
	}

	user, err := r.store.CreateUser(args.Data.user())
	if err != nil {
		return nil, newStoreError("User", err)
	}

	slog.InfoContext(ctx, "User created", slog.String("id", user.ID.String()), slog.String("username", user.Username))
	return &UserResolver{user: user}, nil
}

// CreateParticipant does not check that the referenced user or event exist.
func (r *Resolver) CreateParticipant(ctx context.Context, args struct{ Data createParticipantInput }) (*ParticipantResolver, error) {
	participant, err := r.store.CreateParticipant(args.Data.participant())
	if err != nil {
		return nil, newStoreError("Participant", err)
	}

	slog.InfoContext(ctx, "Participant created", slog.String("id", participant.ID.String()), slog.String("event_id", participant.EventID.String()))
	return &ParticipantResolver{participant: participant}, nil
}
