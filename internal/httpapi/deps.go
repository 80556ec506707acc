package httpapi

import (
	"interim-engine/internal/events"
	"interim-engine/internal/search"
	"interim-engine/internal/store"
)

type Deps struct {
	Search *search.Service
	Store  *store.Store
	Hub    *events.Hub
}
