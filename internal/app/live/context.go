package live

import "context"

type contextKey struct{}

func withRoom(ctx context.Context, room string) context.Context {
	return context.WithValue(ctx, contextKey{}, room)
}

func roomFromContext(ctx context.Context) (string, bool) {
	room, ok := ctx.Value(contextKey{}).(string)
	return room, ok
}
