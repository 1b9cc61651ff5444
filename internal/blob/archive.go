package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"cakecollate/internal/infra/persistence"
	"cakecollate/pkg/domain"
)

const (
	defaultPrefix = "snapshots/"
	defaultKeep   = 10
	stampLayout   = "20060102T150405.000000000Z"
)

// ErrNoArchive is returned by RestoreLatest when no complete archive exists.
var ErrNoArchive = errors.New("no snapshot archive found")

// Archive is one stored snapshot: a directory holding a JSON object per bucket.
type Archive struct {
	ID        string
	CreatedAt time.Time
	Keys      []string
}

// Archiver writes timestamped snapshot copies to a Store and prunes old ones.
type Archiver struct {
	store  Store
	prefix string
	keep   int
	clock  domain.Clock
}

// ArchiveOption configures an Archiver.
type ArchiveOption func(*Archiver)

// WithKeep retains the newest n archives. Values below one are ignored.
func WithKeep(n int) ArchiveOption {
	return func(a *Archiver) {
		if n > 0 {
			a.keep = n
		}
	}
}

// WithPrefix stores archives under prefix instead of "snapshots/".
func WithPrefix(prefix string) ArchiveOption {
	return func(a *Archiver) {
		if prefix != "" {
			a.prefix = strings.TrimSuffix(prefix, "/") + "/"
		}
	}
}

// WithClock stamps archives with c.
func WithClock(c domain.Clock) ArchiveOption {
	return func(a *Archiver) {
		if c != nil {
			a.clock = c
		}
	}
}

// NewArchiver returns an Archiver writing to store.
func NewArchiver(store Store, opts ...ArchiveOption) (*Archiver, error) {
	if store == nil {
		return nil, errors.New("archive store required")
	}
	a := &Archiver{store: store, prefix: defaultPrefix, keep: defaultKeep, clock: domain.SystemClock{}}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Archive uploads every bucket of snapshot concurrently, then prunes archives
// beyond the retention limit. A prune failure is returned alongside the
// written archive.
func (a *Archiver) Archive(ctx context.Context, snapshot domain.Snapshot) (Archive, error) {
	created := a.clock.Now().UTC()
	id := created.Format(stampLayout) + "-" + uuid.NewString()
	archive := Archive{ID: id, CreatedAt: created}

	payloads := make([][]byte, len(persistence.Buckets))
	for i, bucket := range persistence.Buckets {
		data, err := persistence.Encode(snapshot, bucket)
		if err != nil {
			return Archive{}, err
		}
		payloads[i] = data
		archive.Keys = append(archive.Keys, a.key(id, bucket))
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, bucket := range persistence.Buckets {
		key, data := archive.Keys[i], payloads[i]
		g.Go(func() error {
			_, err := a.store.Put(gctx, key, bytes.NewReader(data), PutOptions{
				ContentType: "application/json",
				Metadata:    map[string]string{"archive": id, "bucket": bucket},
			})
			if err != nil {
				return fmt.Errorf("archive %s: %w", bucket, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Archive{}, err
	}
	if _, err := a.Prune(ctx); err != nil {
		return archive, fmt.Errorf("prune archives: %w", err)
	}
	return archive, nil
}

// List returns the stored archives, newest first.
func (a *Archiver) List(ctx context.Context) ([]Archive, error) {
	infos, err := a.store.List(ctx, a.prefix)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*Archive)
	for _, info := range infos {
		rest := strings.TrimPrefix(info.Key, a.prefix)
		id, _, ok := strings.Cut(rest, "/")
		if !ok {
			continue
		}
		stamp, _, _ := strings.Cut(id, "-")
		created, err := time.Parse(stampLayout, stamp)
		if err != nil {
			continue
		}
		arc, ok := byID[id]
		if !ok {
			arc = &Archive{ID: id, CreatedAt: created}
			byID[id] = arc
		}
		arc.Keys = append(arc.Keys, info.Key)
	}
	out := make([]Archive, 0, len(byID))
	for _, arc := range byID {
		out = append(out, *arc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// Prune deletes archives beyond the newest keep and reports how many it removed.
func (a *Archiver) Prune(ctx context.Context) (int, error) {
	archives, err := a.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(archives) <= a.keep {
		return 0, nil
	}
	stale := archives[a.keep:]
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, arc := range stale {
		for _, key := range arc.Keys {
			g.Go(func() error {
				if _, err := a.store.Delete(gctx, key); err != nil {
					return fmt.Errorf("delete %s: %w", key, err)
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(stale), nil
}

// RestoreLatest loads the newest archive that holds every bucket.
func (a *Archiver) RestoreLatest(ctx context.Context) (domain.Snapshot, Archive, error) {
	archives, err := a.List(ctx)
	if err != nil {
		return domain.Snapshot{}, Archive{}, err
	}
	for _, arc := range archives {
		if !a.complete(arc) {
			continue
		}
		snapshot, err := a.restore(ctx, arc)
		if err != nil {
			return domain.Snapshot{}, Archive{}, err
		}
		return snapshot, arc, nil
	}
	return domain.Snapshot{}, Archive{}, ErrNoArchive
}

func (a *Archiver) restore(ctx context.Context, arc Archive) (domain.Snapshot, error) {
	payloads := make([][]byte, len(persistence.Buckets))
	g, gctx := errgroup.WithContext(ctx)
	for i, bucket := range persistence.Buckets {
		key := a.key(arc.ID, bucket)
		g.Go(func() error {
			_, rc, err := a.store.Get(gctx, key)
			if err != nil {
				return err
			}
			defer func() { _ = rc.Close() }()
			data, err := io.ReadAll(rc)
			if err != nil {
				return fmt.Errorf("read %s: %w", key, err)
			}
			payloads[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Snapshot{}, fmt.Errorf("restore %s: %w", arc.ID, err)
	}
	var snapshot domain.Snapshot
	for i, bucket := range persistence.Buckets {
		if err := persistence.Decode(&snapshot, bucket, payloads[i]); err != nil {
			return domain.Snapshot{}, fmt.Errorf("restore %s: %w", arc.ID, err)
		}
	}
	return snapshot, nil
}

func (a *Archiver) complete(arc Archive) bool {
	for _, bucket := range persistence.Buckets {
		if !slices.Contains(arc.Keys, a.key(arc.ID, bucket)) {
			return false
		}
	}
	return true
}

func (a *Archiver) key(id, bucket string) string {
	return a.prefix + id + "/" + bucket + ".json"
}
