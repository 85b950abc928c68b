package store

import (
	"fmt"
)

// Snapshot is the seed state the store is built from. It is never written back.
type Snapshot struct {
	Events       []Event       `json:"events" yaml:"events"`
	Users        []User        `json:"users" yaml:"users"`
	Participants []Participant `json:"participants" yaml:"participants"`
	Locations    []Location    `json:"locations" yaml:"locations"`
}

func New(snapshot Snapshot) (*Store, error) {
	events, err := NewCollection(snapshot.Events)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	users, err := NewCollection(snapshot.Users)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	locations, err := NewCollection(snapshot.Locations)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}
	participants, err := NewCollection(snapshot.Participants)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}

	return &Store{
		Events:       events,
		Users:        users,
		Locations:    locations,
		Participants: participants,
	}, nil
}

type Store struct {
	Events       *Collection[Event]
	Users        *Collection[User]
	Locations    *Collection[Location]
	Participants *Collection[Participant]
}

func (s *Store) CreateEvent(event Event) (Event, error) {
	event.ID = NewID()
	if err := s.Events.Append(event); err != nil {
		return Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *Store) UpdateEvent(id ID, patch EventPatch) (Event, error) {
	event, err := s.Events.Replace(id, patch.Apply)
	if err != nil {
		return Event{}, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *Store) CreateLocation(location Location) (Location, error) {
	location.ID = NewID()
	if err := s.Locations.Append(location); err != nil {
		return Location{}, fmt.Errorf("failed to create location: %w", err)
	}
	return location, nil
}

func (s *Store) UpdateLocation(id ID, patch LocationPatch) (Location, error) {
	location, err := s.Locations.Replace(id, patch.Apply)
	if err != nil {
		return Location{}, fmt.Errorf("failed to update location: %w", err)
	}
	return location, nil
}

func (s *Store) CreateUser(user User) (User, error) {
	user.ID = NewID()
	if err := s.Users.Append(user); err != nil {
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *Store) CreateParticipant(participant Participant) (Participant, error) {
	participant.ID = NewID()
	if err := s.Participants.Append(participant); err != nil {
		return Participant{}, fmt.Errorf("failed to create participant: %w", err)
	}
	return participant, nil
}

// EventUsers returns the users attending the event.
func (s *Store) EventUsers(event Event) []User {
	return s.Users.Filter(func(user User) bool {
		return user.EventID == event.ID
	})
}

// EventLocations returns the location the event takes place at, if it exists.
func (s *Store) EventLocations(event Event) []Location {
	return s.Locations.Filter(func(location Location) bool {
		return location.ID == event.LocationID
	})
}

func (s *Store) EventParticipants(event Event) []Participant {
	return s.Participants.Filter(func(participant Participant) bool {
		return participant.EventID == event.ID
	})
}
