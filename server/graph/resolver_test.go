package graph

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/graph-gophers/graphql-go"

	"github.com/topi314/event-graph/server/store"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.New(store.Snapshot{
		Events: []store.Event{
			{ID: "1", Title: "Meetup", Desc: "Monthly meetup", Date: "2024-01-01", From: "10:00", To: "12:00", LocationID: "2", UserID: "1"},
			{ID: "2", Title: "Workshop", Desc: "Go workshop", Date: "2024-02-01", From: "14:00", To: "16:00", LocationID: "1", UserID: "2"},
		},
		Users: []store.User{
			{ID: "1", Username: "alice", Email: "alice@example.com", EventID: "2"},
			{ID: "2", Username: "bob", Email: "bob@example.com", EventID: "1"},
		},
		Locations: []store.Location{
			{ID: "1", Name: "Library", Desc: "City library", Lat: "41.0082", Lng: "28.9784"},
			{ID: "2", Name: "Park", Desc: "Central park", Lat: "40.7812", Lng: "-73.9665"},
		},
		Participants: []store.Participant{
			{ID: "1", UserID: "1", EventID: "2"},
			{ID: "2", UserID: "2", EventID: "1"},
		},
	})
	if err != nil {
		t.Fatalf("failed to create store: %s", err)
	}
	return s
}

func testSchema(t *testing.T, s *store.Store) *graphql.Schema {
	t.Helper()

	schema, err := NewSchema(s, Config{MaxDepth: 10, MaxParallelism: 10})
	if err != nil {
		t.Fatalf("failed to create schema: %s", err)
	}
	return schema
}

// exec runs query and decodes the data into v. It returns the error codes in order.
func exec(t *testing.T, schema *graphql.Schema, query string, variables map[string]any, v any) []string {
	t.Helper()

	rs := schema.Exec(context.Background(), query, "", variables)

	var codes []string
	for _, err := range rs.Errors {
		code, _ := err.Extensions["code"].(string)
		codes = append(codes, code)
	}
	if len(rs.Errors) > 0 || v == nil {
		return codes
	}

	if err := json.Unmarshal(rs.Data, v); err != nil {
		t.Fatalf("failed to decode data %s: %s", rs.Data, err)
	}
	return nil
}

type testEvent struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Desc       string `json:"desc"`
	Date       string `json:"date"`
	From       string `json:"from"`
	To         string `json:"to"`
	LocationID string `json:"location_id"`
	UserID     string `json:"user_id"`
}

func TestQueryEvents(t *testing.T) {
	schema := testSchema(t, testStore(t))

	var data struct {
		Events []testEvent `json:"events"`
	}
	if codes := exec(t, schema, `{ events { id title desc date from to location_id user_id } }`, nil, &data); codes != nil {
		t.Fatalf("unexpected errors: %v", codes)
	}

	if len(data.Events) != 2 {
		t.Fatalf("got %d events, want 2", len(data.Events))
	}
	want := testEvent{ID: "1", Title: "Meetup", Desc: "Monthly meetup", Date: "2024-01-01", From: "10:00", To: "12:00", LocationID: "2", UserID: "1"}
	if data.Events[0] != want {
		t.Fatalf("got %+v, want %+v", data.Events[0], want)
	}
}

func TestQueryByID(t *testing.T) {
	schema := testSchema(t, testStore(t))

	tests := []struct {
		name      string
		query     string
		wantCodes []string
	}{
		{name: "event", query: `{ event(id: "1") { id } }`},
		{name: "event by int literal", query: `{ event(id: 1) { id } }`},
		{name: "missing event", query: `{ event(id: "404") { id } }`, wantCodes: []string{"NOT_FOUND"}},
		{name: "location", query: `{ location(id: "2") { id } }`},
		{name: "missing location", query: `{ location(id: "404") { id } }`, wantCodes: []string{"NOT_FOUND"}},
		{name: "user", query: `{ user(id: "1") { id } }`},
		{name: "missing user", query: `{ user(id: "404") { id } }`, wantCodes: []string{"NOT_FOUND"}},
		{name: "participant", query: `{ participant(id: "2") { id } }`},
		{name: "missing participant", query: `{ participant(id: "404") { id } }`, wantCodes: []string{"NOT_FOUND"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes := exec(t, schema, tt.query, nil, nil)
			if len(codes) != len(tt.wantCodes) {
				t.Fatalf("got codes %v, want %v", codes, tt.wantCodes)
			}
			for i := range codes {
				if codes[i] != tt.wantCodes[i] {
					t.Fatalf("got codes %v, want %v", codes, tt.wantCodes)
				}
			}
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	schema := testSchema(t, testStore(t))

	rs := schema.Exec(context.Background(), `{ location(id: "404") { id } }`, "", nil)
	if len(rs.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(rs.Errors))
	}
	if rs.Errors[0].Message != "Location not found" {
		t.Fatalf("got message %q, want %q", rs.Errors[0].Message, "Location not found")
	}
}

func TestEventRelations(t *testing.T) {
	schema := testSchema(t, testStore(t))

	var data struct {
		Event struct {
			Users []struct {
				ID string `json:"id"`
			} `json:"users"`
			Locations []struct {
				ID string `json:"id"`
			} `json:"locations"`
			Participants []struct {
				ID string `json:"id"`
			} `json:"participants"`
		} `json:"event"`
	}
	query := `{ event(id: "1") { users { id } locations { id } participants { id } } }`
	if codes := exec(t, schema, query, nil, &data); codes != nil {
		t.Fatalf("unexpected errors: %v", codes)
	}

	// event 1 is referenced by user 2 and participant 2 and points at location 2
	if len(data.Event.Users) != 1 || data.Event.Users[0].ID != "2" {
		t.Fatalf("users: got %+v, want [2]", data.Event.Users)
	}
	if len(data.Event.Locations) != 1 || data.Event.Locations[0].ID != "2" {
		t.Fatalf("locations: got %+v, want [2]", data.Event.Locations)
	}
	if len(data.Event.Participants) != 1 || data.Event.Participants[0].ID != "2" {
		t.Fatalf("participants: got %+v, want [2]", data.Event.Participants)
	}
}

func TestCreateEvent(t *testing.T) {
	schema := testSchema(t, testStore(t))

	var created struct {
		CreateEvent testEvent `json:"createEvent"`
	}
	mutation := `mutation { createEvent(data: {title: "T", desc: "D", date: "2024-01-01", from: "10:00", to: "11:00"}) { id title desc date from to location_id user_id } }`
	if codes := exec(t, schema, mutation, nil, &created); codes != nil {
		t.Fatalf("unexpected errors: %v", codes)
	}

	event := created.CreateEvent
	if event.ID == "" || event.ID == "1" || event.ID == "2" {
		t.Fatalf("got id %q, want a fresh id", event.ID)
	}
	want := testEvent{ID: event.ID, Title: "T", Desc: "D", Date: "2024-01-01", From: "10:00", To: "11:00"}
	if event != want {
		t.Fatalf("got %+v, want %+v", event, want)
	}

	var list struct {
		Events []testEvent `json:"events"`
	}
	if codes := exec(t, schema, `{ events { id title desc date from to location_id user_id } }`, nil, &list); codes != nil {
		t.Fatalf("unexpected errors: %v", codes)
	}
	if len(list.Events) != 3 || list.Events[2] != want {
		t.Fatalf("created event is not last: %+v", list.Events)
	}
}

func TestCreateAppendsLast(t *testing.T) {
	tests := []struct {
		name      string
		mutation  string
		variables map[string]any
		list      string
		created   string
	}{
		{
			name:     "event",
			mutation: `mutation($data: createEventInput!) { createEvent(data: $data) { id } }`,
			variables: map[string]any{"data": map[string]any{
				"title": "T", "desc": "D", "date": "2024-03-01", "from": "09:00", "to": "10:00", "location_id": "1", "user_id": "1",
			}},
			list:    `{ list: events { id } }`,
			created: "createEvent",
		},
		{
			name:     "location",
			mutation: `mutation($data: createLocationInput!) { createLocation(data: $data) { id } }`,
			variables: map[string]any{"data": map[string]any{
				"name": "Hall", "desc": "Town hall", "lat": "52.5200", "lng": "13.4050",
			}},
			list:    `{ list: locations { id } }`,
			created: "createLocation",
		},
		{
			name:     "user",
			mutation: `mutation($data: createUserInput!) { createUser(data: $data) { id } }`,
			variables: map[string]any{"data": map[string]any{
				"username": "carol", "email": "carol@example.com", "event_id": "1",
			}},
			list:    `{ list: users { id } }`,
			created: "createUser",
		},
		{
			name:     "participant",
			mutation: `mutation($data: createParticipantInput!) { createParticipant(data: $data) { id } }`,
			variables: map[string]any{"data": map[string]any{
				"user_id": "404", "event_id": "404",
			}},
			list:    `{ list: participants { id } }`,
			created: "createParticipant",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := testSchema(t, testStore(t))

			type ids struct {
				List []struct {
					ID string `json:"id"`
				} `json:"list"`
			}
			var before ids
			if codes := exec(t, schema, tt.list, nil, &before); codes != nil {
				t.Fatalf("unexpected errors: %v", codes)
			}

			var created map[string]struct {
				ID string `json:"id"`
			}
			if codes := exec(t, schema, tt.mutation, tt.variables, &created); codes != nil {
				t.Fatalf("unexpected errors: %v", codes)
			}

			var after ids
			if codes := exec(t, schema, tt.list, nil, &after); codes != nil {
				t.Fatalf("unexpected errors: %v", codes)
			}

			if len(after.List) != len(before.List)+1 {
				t.Fatalf("got %d records, want %d", len(after.List), len(before.List)+1)
			}
			if last := after.List[len(after.List)-1].ID; last != created[tt.created].ID {
				t.Fatalf("last record is %q, want created %q", last, created[tt.created].ID)
			}
		})
	}
}

func TestUpdateEvent(t *testing.T) {
	schema := testSchema(t, testStore(t))

	var updated struct {
		UpdateEvent testEvent `json:"updateEvent"`
	}
	mutation := `mutation { updateEvent(id: "1", data: {title: "Renamed", to: "13:00"}) { id title desc date from to location_id user_id } }`
	if codes := exec(t, schema, mutation, nil, &updated); codes != nil {
		t.Fatalf("unexpected errors: %v", codes)
	}

	want := testEvent{ID: "1", Title: "Renamed", Desc: "Monthly meetup", Date: "2024-01-01", From: "10:00", To: "13:00", LocationID: "2", UserID: "1"}
	if updated.UpdateEvent != want {
		t.Fatalf("got %+v, want %+v", updated.UpdateEvent, want)
	}

	var queried struct {
		Event testEvent `json:"event"`
	}
	if codes := exec(t, schema, `{ event(id: "1") { id title desc date from to location_id user_id } }`, nil, &queried); codes != nil {
		t.Fatalf("unexpected errors: %v", codes)
	}
	if queried.Event != want {
		t.Fatalf("stored %+v, want %+v", queried.Event, want)
	}
}

func TestUpdateEventNotFound(t *testing.T) {
	s := testStore(t)
	schema := testSchema(t, s)
	before := s.Events.List()

	codes := exec(t, schema, `mutation { updateEvent(id: "404", data: {title: "x"}) { id } }`, nil, nil)
	if len(codes) != 1 || codes[0] != string(ErrorCodeNotFound) {
		t.Fatalf("got codes %v, want [NOT_FOUND]", codes)
	}

	after := s.Events.List()
	if len(after) != len(before) {
		t.Fatalf("store changed: %d -> %d events", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("event %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestUpdateLocationReturnsLocation(t *testing.T) {
	schema := testSchema(t, testStore(t))

	var data struct {
		UpdateLocation struct {
			ID   string `json:"id"`
			Name string `json:"name"`
			Desc string `json:"desc"`
			Lat  string `json:"lat"`
			Lng  string `json:"lng"`
		} `json:"updateLocation"`
	}
	mutation := `mutation { updateLocation(id: "2", data: {name: "Big Park"}) { id name desc lat lng } }`
	if codes := exec(t, schema, mutation, nil, &data); codes != nil {
		t.Fatalf("unexpected errors: %v", codes)
	}

	location := data.UpdateLocation
	if location.ID != "2" || location.Name != "Big Park" || location.Desc != "Central park" || location.Lat != "40.7812" || location.Lng != "-73.9665" {
		t.Fatalf("got %+v", location)
	}

	codes := exec(t, schema, `mutation { updateLocation(id: "404", data: {name: "x"}) { id } }`, nil, nil)
	if len(codes) != 1 || codes[0] != string(ErrorCodeNotFound) {
		t.Fatalf("got codes %v, want [NOT_FOUND]", codes)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutation  string
		wantField string
	}{
		{
			name:      "event date",
			mutation:  `mutation { createEvent(data: {title: "T", desc: "D", date: "01/01/2024", from: "10:00", to: "11:00"}) { id } }`,
			wantField: "date",
		},
		{
			name:      "event time",
			mutation:  `mutation { createEvent(data: {title: "T", desc: "D", date: "2024-01-01", from: "10am", to: "11:00"}) { id } }`,
			wantField: "from",
		},
		{
			name:      "update event time",
			mutation:  `mutation { updateEvent(id: "1", data: {to: "25:00"}) { id } }`,
			wantField: "to",
		},
		{
			name:      "location latitude",
			mutation:  `mutation { createLocation(data: {name: "n", desc: "d", lat: "123", lng: "0"}) { id } }`,
			wantField: "lat",
		},
		{
			name:      "update location longitude",
			mutation:  `mutation { updateLocation(id: "1", data: {lng: "west"}) { id } }`,
			wantField: "lng",
		},
		{
			name:      "update event empty date",
			mutation:  `mutation { updateEvent(id: "1", data: {date: ""}) { id } }`,
			wantField: "date",
		},
		{
			name:      "update event empty time",
			mutation:  `mutation { updateEvent(id: "1", data: {from: ""}) { id } }`,
			wantField: "from",
		},
		{
			name:      "update location empty latitude",
			mutation:  `mutation { updateLocation(id: "2", data: {lat: ""}) { id } }`,
			wantField: "lat",
		},
		{
			name:      "user email",
			mutation:  `mutation { createUser(data: {username: "u", email: "not-an-email", event_id: "1"}) { id } }`,
			wantField: "email",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testStore(t)
			schema := testSchema(t, s)
			events, locations, users := s.Events.List(), s.Locations.List(), s.Users.List()

			rs := schema.Exec(context.Background(), tt.mutation, "", nil)
			if len(rs.Errors) != 1 {
				t.Fatalf("got %d errors, want 1", len(rs.Errors))
			}

			err := rs.Errors[0]
			if code, _ := err.Extensions["code"].(string); code != string(ErrorCodeValidationFailed) {
				t.Fatalf("got code %q, want %q", code, ErrorCodeValidationFailed)
			}
			fields, _ := err.Extensions["fields"].(map[string]string)
			if _, ok := fields[tt.wantField]; !ok {
				t.Fatalf("got fields %v, want %q", fields, tt.wantField)
			}

			if !slices.Equal(s.Events.List(), events) || !slices.Equal(s.Locations.List(), locations) || !slices.Equal(s.Users.List(), users) {
				t.Fatal("store changed after a failed validation")
			}
		})
	}
}
