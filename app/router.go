package app

import (
	"fmt"
	"regexp"

	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
)

var isPath = regexp.MustCompile(`^[a-z0-9_]+/[a-z0-9_]+$`).MatchString

// Router dispatches a transaction to the handler registered for the path of
// its message.
type Router struct {
	routes map[string]tokenomics.Handler
}

var _ tokenomics.Registry = (*Router)(nil)
var _ tokenomics.Handler = (*Router)(nil)

// NewRouter returns a router without any routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]tokenomics.Handler, 20),
	}
}

// Handle registers a handler for given path. It panics on a malformed path
// or when the path is already taken.
func (r *Router) Handle(path string, h tokenomics.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid route path %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Paths returns all registered paths, unordered.
func (r *Router) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	return paths
}

func (r *Router) handler(tx tokenomics.Tx) (tokenomics.Handler, error) {
	path := tx.MsgPath()
	h, ok := r.routes[path]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", path)
	}
	return h, nil
}

// Check dispatches to the handler registered for the message path.
func (r *Router) Check(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.CheckResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, db, tx)
}

// Deliver dispatches to the handler registered for the message path.
func (r *Router) Deliver(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.DeliverResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}
