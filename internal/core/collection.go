package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/inovacc/ghexplorer/internal/model"
)

// StorageKey is the slot holding the saved repository list.
const StorageKey = "@github-explorer:repositories"

// Slot is the durable storage the collection reads and writes.
type Slot interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// Lookuper resolves a full name to a project.
type Lookuper interface {
	FetchByFullName(ctx context.Context, fullName string) (model.Project, error)
}

// CollectionOptions configures a Collection.
type CollectionOptions struct {
	duplicates model.DuplicatePolicy
	persist    model.PersistMode
	logger     *slog.Logger
}

// CollectionOption applies a configuration to CollectionOptions.
type CollectionOption func(*CollectionOptions)

// WithDuplicatePolicy sets how re-adding a saved project is handled.
func WithDuplicatePolicy(p model.DuplicatePolicy) CollectionOption {
	return func(o *CollectionOptions) { o.duplicates = p }
}

// WithPersistMode sets how storage write failures are handled.
func WithPersistMode(m model.PersistMode) CollectionOption {
	return func(o *CollectionOptions) { o.persist = m }
}

// WithLogger sets the logger; slog.Default() otherwise.
func WithLogger(l *slog.Logger) CollectionOption {
	return func(o *CollectionOptions) { o.logger = l }
}

// Collection is the ordered list of saved projects. It is the only owner of
// the list; readers get copies.
type Collection struct {
	mu       sync.Mutex   // serializes Initialize and Add
	listMu   sync.RWMutex // guards projects; never held across I/O
	slot     Slot
	lookup   Lookuper
	opts     CollectionOptions
	projects []model.Project
}

// NewCollection creates an empty collection. Call Initialize to load the
// stored list.
func NewCollection(slot Slot, lookup Lookuper, opts ...CollectionOption) *Collection {
	var o CollectionOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	return &Collection{
		slot:     slot,
		lookup:   lookup,
		opts:     o,
		projects: []model.Project{},
	}
}

// Initialize loads the stored list. Missing, unreadable or malformed data
// yields an empty list; it never fails.
func (c *Collection) Initialize() []model.Project {
	c.mu.Lock()
	defer c.mu.Unlock()

	loaded := c.load()
	c.setProjects(loaded)

	return slices.Clone(loaded)
}

func (c *Collection) snapshot() []model.Project {
	c.listMu.RLock()
	defer c.listMu.RUnlock()

	return c.projects
}

func (c *Collection) setProjects(projects []model.Project) {
	c.listMu.Lock()
	defer c.listMu.Unlock()

	c.projects = projects
}

func (c *Collection) load() []model.Project {
	log := c.opts.logger

	data, err := c.slot.Get(StorageKey)
	if err != nil {
		log.Warn("Failed to read saved repositories; starting empty", "error", err)

		return []model.Project{}
	}

	if data == nil {
		return []model.Project{}
	}

	var stored []model.Project
	if err := json.Unmarshal(data, &stored); err != nil {
		log.Warn("Saved repositories are malformed; starting empty", "error", err)

		return []model.Project{}
	}

	out := make([]model.Project, 0, len(stored))

	for _, p := range stored {
		switch {
		case p.FullName == "":
			log.Warn("Dropping saved entry without full name")
		case indexOf(out, p.FullName) >= 0:
			log.Warn("Dropping duplicate saved entry", "full_name", p.FullName)
		default:
			out = append(out, p)
		}
	}

	return out
}

// Projects returns a copy of the saved list in insertion order. It does not
// wait for an add in progress.
func (c *Collection) Projects() []model.Project {
	c.listMu.RLock()
	defer c.listMu.RUnlock()

	return slices.Clone(c.projects)
}

// Find returns the saved project matching fullName.
func (c *Collection) Find(fullName string) (model.Project, bool) {
	c.listMu.RLock()
	defer c.listMu.RUnlock()

	if i := indexOf(c.projects, fullName); i >= 0 {
		return c.projects[i], true
	}

	return model.Project{}, false
}

// AddByFullName validates query, resolves it and returns existing with the
// project merged in according to the duplicate policy. existing is never
// modified; on error it is returned as is.
func (c *Collection) AddByFullName(ctx context.Context, query string, existing []model.Project) ([]model.Project, error) {
	q := NormalizeQuery(query)
	if q == "" {
		return existing, &AddError{Kind: KindEmptyQuery}
	}

	if c.opts.duplicates == model.DuplicateReject && indexOf(existing, q) >= 0 {
		return existing, &AddError{Kind: KindAlreadyAdded, Query: q}
	}

	project, err := c.lookup.FetchByFullName(ctx, q)
	if err != nil {
		return existing, &AddError{Kind: KindLookupFailed, Query: q, Err: err}
	}

	i := indexOf(existing, project.FullName)

	switch {
	case i < 0 || c.opts.duplicates == model.DuplicateAllow:
		out := make([]model.Project, len(existing), len(existing)+1)
		copy(out, existing)

		return append(out, project), nil
	case c.opts.duplicates == model.DuplicateReplace:
		out := slices.Clone(existing)
		out[i] = project

		return out, nil
	default:
		return existing, &AddError{Kind: KindAlreadyAdded, Query: project.FullName}
	}
}

// Persist writes the whole list under StorageKey in one call.
func (c *Collection) Persist(projects []model.Project) error {
	if projects == nil {
		projects = []model.Project{}
	}

	data, err := json.Marshal(projects)
	if err != nil {
		return &AddError{Kind: KindPersistFailed, Err: fmt.Errorf("failed to marshal JSON: %w", err)}
	}

	if err := c.slot.Put(StorageKey, data); err != nil {
		return &AddError{Kind: KindPersistFailed, Err: err}
	}

	return nil
}

// Add runs one submission: validate, look up, merge, persist. Submissions
// are serialized, so each one appends to the list left by the previous one.
// If ctx is cancelled while the lookup is in flight the result is dropped.
func (c *Collection) Add(ctx context.Context, query string) ([]model.Project, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	log := c.opts.logger
	snapshot := c.snapshot()

	updated, err := c.AddByFullName(ctx, query, snapshot)
	if err != nil {
		log.Debug("Add rejected", "query", query, "error", err)

		return slices.Clone(snapshot), err
	}

	if err := ctx.Err(); err != nil {
		log.Debug("Dropping stale lookup result", "query", query)

		return slices.Clone(snapshot), &AddError{Kind: KindLookupFailed, Query: NormalizeQuery(query), Err: err}
	}

	if err := c.Persist(updated); err != nil {
		if c.opts.persist != model.PersistLog {
			log.Error("Failed to save repositories", "error", err)

			return slices.Clone(snapshot), err
		}

		log.Warn("Failed to save repositories; keeping change in memory", "error", err)
	}

	c.setProjects(updated)
	log.Info("Repository added", "query", query, "count", len(updated))

	return slices.Clone(updated), nil
}

func indexOf(projects []model.Project, fullName string) int {
	return slices.IndexFunc(projects, func(p model.Project) bool {
		return p.SameProject(fullName)
	})
}
