package poller

import "context"

type statuses interface {
	Fetch(ctx context.Context, from int64) (any, error)
}

type notifier interface {
	Notify(msg string)
}
