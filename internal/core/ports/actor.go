package ports

import "context"

// Actor identifies who triggered an operation. Audit entries and comment
// snapshots are stamped with it. The zero value means "system" (e.g. the
// reminder scheduler).
type Actor struct {
	ID    string
	Name  string
	Email string
}

type actorKey struct{}

// WithActor returns a context carrying the acting user.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFrom extracts the acting user from ctx. Absent an actor it returns the
// system actor.
func ActorFrom(ctx context.Context) Actor {
	if a, ok := ctx.Value(actorKey{}).(Actor); ok {
		return a
	}
	return Actor{Name: "system"}
}
