package common

type contextKey string

const (
	RequestIdContextKey contextKey = "request_id"
)
