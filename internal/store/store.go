// Package store is the boundary to the shared workshop document. A store
// holds one versionless JSON document per workshop; writes replace the whole
// document (last-writer-wins) and subscriptions deliver the latest document
// on every change, including immediately on subscribe.
package store

import (
	"context"

	"github.com/Demian-Yim/Flow-Up/internal/models"
)

// Store is the remote shared-state document service.
type Store interface {
	// Write upserts the whole document for one workshop.
	Write(ctx context.Context, workshopID string, snap *models.Snapshot) error
	// Subscribe registers fn to receive the latest document on every change.
	// The current document is delivered immediately; if it does not exist
	// yet the store seeds it with the default snapshot first. The returned
	// func unsubscribes. Delivery is eventually consistent and not ordered
	// across clients.
	Subscribe(ctx context.Context, workshopID string, fn func(*models.Snapshot)) (func(), error)
}
