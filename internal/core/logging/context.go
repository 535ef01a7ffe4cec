package logging

import "context"

type contextKey string

const (
	inputKey contextKey = "input"
	listKey  contextKey = "list"
)

// WithInput adds the path of the export being converted to the context.
func WithInput(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, inputKey, path)
}

// WithList adds the name of the list being converted to the context.
func WithList(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, listKey, name)
}

// GetInput retrieves the input path from the context.
// Returns empty string if not present.
func GetInput(ctx context.Context) string {
	if v, ok := ctx.Value(inputKey).(string); ok {
		return v
	}
	return ""
}

// GetList retrieves the list name from the context.
// Returns empty string if not present.
func GetList(ctx context.Context) string {
	if v, ok := ctx.Value(listKey).(string); ok {
		return v
	}
	return ""
}
