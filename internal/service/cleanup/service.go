// Package cleanup removes e-book objects that no text references anymore.
//
// Uploads can outlive their text when the text row fails to insert after the
// object was stored, or when a delete of the object fails after the row is
// gone. The sweeper reconciles storage with the texts table.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/lingoreader-backend/internal/provider"
	"github.com/heartmarshall/lingoreader-backend/internal/service/text"
)

type keyRepo interface {
	EbookKeys(ctx context.Context) ([]string, error)
}

type objectStore interface {
	List(ctx context.Context, prefix string) ([]provider.StoredObject, error)
	Delete(ctx context.Context, key string) error
}

// SweepResult summarizes one sweep.
type SweepResult struct {
	Scanned int
	Deleted int
	Failed  int
}

// Service sweeps orphaned e-book objects.
type Service struct {
	keys  keyRepo
	store objectStore
	log   *slog.Logger
}

// NewService creates a new cleanup service.
func NewService(log *slog.Logger, keys keyRepo, store objectStore) *Service {
	return &Service{
		keys:  keys,
		store: store,
		log:   log.With("service", "cleanup"),
	}
}

// SweepEbooks deletes every object under the e-book prefix that is not
// referenced by a text and was last modified before olderThan. A failure to
// delete one object is logged and counted; the sweep continues.
func (s *Service) SweepEbooks(ctx context.Context, olderThan time.Time) (SweepResult, error) {
	var res SweepResult

	// Objects are listed first so an upload that lands between the two calls
	// is still referenced by the time keys are read.
	objects, err := s.store.List(ctx, text.EbookKeyPrefix)
	if err != nil {
		return res, fmt.Errorf("list ebook objects: %w", err)
	}

	keys, err := s.keys.EbookKeys(ctx)
	if err != nil {
		return res, fmt.Errorf("load ebook keys: %w", err)
	}
	referenced := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		referenced[k] = struct{}{}
	}

	for _, obj := range objects {
		if !strings.HasPrefix(obj.Key, text.EbookKeyPrefix) {
			continue
		}
		res.Scanned++

		if _, ok := referenced[obj.Key]; ok {
			continue
		}
		if !obj.LastModified.Before(olderThan) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if err := s.store.Delete(ctx, obj.Key); err != nil {
			res.Failed++
			s.log.WarnContext(ctx, "delete orphaned ebook",
				slog.String("key", obj.Key),
				slog.String("error", err.Error()),
			)
			continue
		}
		res.Deleted++
		s.log.InfoContext(ctx, "orphaned ebook deleted",
			slog.String("key", obj.Key),
			slog.Int64("size", obj.Size),
		)
	}

	return res, nil
}
