package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Demian-Yim/Flow-Up/internal/models"
)

// WorkshopDocument is the persisted row: one JSON document per workshop. The
// revision counter only lets pollers detect change; it is never used to
// reject a write, keeping the document last-writer-wins.
type WorkshopDocument struct {
	WorkshopID string `gorm:"primaryKey;size:100"`
	Data       []byte `gorm:"type:jsonb;not null"`
	Revision   int64  `gorm:"not null;default:0"`
	UpdatedAt  time.Time
}

// Postgres persists workshop documents through gorm and emulates the
// subscription primitive by polling the revision column. Delivery is
// eventually consistent, which is all the sync core assumes.
type Postgres struct {
	db           *gorm.DB
	pollInterval time.Duration
}

func NewPostgres(db *gorm.DB, pollInterval time.Duration) *Postgres {
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	return &Postgres{db: db, pollInterval: pollInterval}
}

func (p *Postgres) Write(ctx context.Context, workshopID string, snap *models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	doc := WorkshopDocument{WorkshopID: workshopID, Data: data, Revision: 1}
	err = p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "workshop_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"data":       data,
			"revision":   gorm.Expr("workshop_documents.revision + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (p *Postgres) Subscribe(ctx context.Context, workshopID string, fn func(*models.Snapshot)) (func(), error) {
	snap, rev, err := p.load(ctx, workshopID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		snap = models.DefaultSnapshot()
		if err := p.Write(ctx, workshopID, snap); err != nil {
			return nil, fmt.Errorf("seed document: %w", err)
		}
		rev = 1
	} else if err != nil {
		return nil, err
	}
	fn(snap)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(p.pollInterval)
		defer ticker.Stop()
		lastRev := rev
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				snap, rev, err := p.load(ctx, workshopID)
				if err != nil {
					log.Printf("store: poll %s: %v", workshopID, err)
					continue
				}
				if rev == lastRev {
					continue
				}
				lastRev = rev
				fn(snap)
			}
		}
	}()

	var once bool
	return func() {
		if !once {
			once = true
			close(done)
		}
	}, nil
}

func (p *Postgres) load(ctx context.Context, workshopID string) (*models.Snapshot, int64, error) {
	var doc WorkshopDocument
	if err := p.db.WithContext(ctx).First(&doc, "workshop_id = ?", workshopID).Error; err != nil {
		return nil, 0, err
	}
	var snap models.Snapshot
	if err := json.Unmarshal(doc.Data, &snap); err != nil {
		return nil, 0, fmt.Errorf("decode document %s: %w", workshopID, err)
	}
	return &snap, doc.Revision, nil
}
