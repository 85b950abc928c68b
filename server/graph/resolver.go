package graph

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/graph-gophers/graphql-go"

	"github.com/topi314/event-graph/server/store"
)

//go:embed schema.graphql
var schemaString string

// NewSchema parses the schema and binds it to a resolver backed by s.
func NewSchema(s *store.Store, cfg Config) (*graphql.Schema, error) {
	opts := []graphql.SchemaOpt{
		graphql.UseStringDescriptions(),
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, graphql.MaxDepth(cfg.MaxDepth))
	}
	if cfg.MaxParallelism > 0 {
		opts = append(opts, graphql.MaxParallelism(cfg.MaxParallelism))
	}

	schema, err := graphql.ParseSchema(schemaString, NewResolver(s), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	return schema, nil
}

func NewResolver(s *store.Store) *Resolver {
	return &Resolver{
		store:    s,
		validate: newValidator(),
	}
}

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	store    *store.Store
	validate *validator.Validate
}

func newEvents(s *store.Store, events []store.Event) []*EventResolver {
	resolvers := make([]*EventResolver, 0, len(events))
	for _, event := range events {
		resolvers = append(resolvers, &EventResolver{store: s, event: event})
	}
	return resolvers
}

func newLocations(locations []store.Location) []*LocationResolver {
	resolvers := make([]*LocationResolver, 0, len(locations))
	for _, location := range locations {
		resolvers = append(resolvers, &LocationResolver{location: location})
	}
	return resolvers
}

func newUsers(users []store.User) []*UserResolver {
	resolvers := make([]*UserResolver, 0, len(users))
	for _, user := range users {
		resolvers = append(resolvers, &UserResolver{user: user})
	}
	return resolvers
}

func newParticipants(participants []store.Participant) []*ParticipantResolver {
	resolvers := make([]*ParticipantResolver, 0, len(participants))
	for _, participant := range participants {
		resolvers = append(resolvers, &ParticipantResolver{participant: participant})
	}
	return resolvers
}
