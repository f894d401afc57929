package container

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"chest-sorter/core/logger"
	"chest-sorter/core/reconcile"
	"chest-sorter/feature/container/models"
	"chest-sorter/feature/settings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrInvalidID is returned for ids that cannot be used as storage keys.
	ErrInvalidID = errors.New("invalid container id")
	// ErrInvalidDocument is returned for documents whose slots do not fit their size.
	ErrInvalidDocument = errors.New("invalid container document")
)

var (
	idPattern  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,63}$`)
	idReplacer = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)
)

// fallbackID names a container whose source name has no usable characters.
const fallbackID = "container"

// ValidID reports whether id is usable as a container id.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// SanitizeID turns a free-form name, such as a file name, into a valid id.
// Runs of unsupported characters become a single dash.
func SanitizeID(name string) string {
	id := idReplacer.ReplaceAllString(name, "-")
	id = strings.TrimLeft(id, "_.-")
	if len(id) > 64 {
		id = id[:64]
	}
	if id == "" {
		return fallbackID
	}
	return id
}

// SortOptions tunes a single sort request.
type SortOptions struct {
	// Mode overrides the configured mode when set.
	Mode reconcile.Mode
	// DryRun computes the layout without writing.
	DryRun bool
}

// SortReport is the outcome of a sort request.
type SortReport struct {
	InvocationID string           `json:"invocation_id"`
	ContainerID  string           `json:"container_id"`
	Backend      string           `json:"backend"`
	Result       reconcile.Result `json:"result"`
	// Feedback is the player-facing message. It is empty when verbose output is off.
	Feedback string `json:"feedback,omitempty"`
	// Journaled is true when the pre-sort snapshot was recorded.
	Journaled bool `json:"journaled"`
	// Layout is the planned arrangement of a dry run.
	Layout reconcile.Snapshot `json:"layout,omitempty"`
	DryRun bool               `json:"dry_run,omitempty"`
}

// InteractReport is the outcome of a player interaction with a container.
type InteractReport struct {
	Triggered bool        `json:"triggered"`
	Sort      *SortReport `json:"sort,omitempty"`
}

// Service sorts stored containers. Sorts of one container never overlap;
// identical concurrent requests share a single run.
type Service struct {
	store    Store
	engine   *reconcile.Engine
	settings *settings.Store
	logger   *zap.Logger
	locks    *keyedMutex
	sf       singleflight.Group
}

// NewService creates a new container service.
func NewService(store Store, settingsStore *settings.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	sink := reconcile.NewLogSink(log, settingsStore.Verbose)
	return &Service{
		store:    store,
		engine:   reconcile.NewEngine(log, sink),
		settings: settingsStore,
		logger:   log,
		locks:    newKeyedMutex(),
	}
}

// Backend returns the name of the backing store.
func (s *Service) Backend() string {
	return s.store.Name()
}

// Get returns the stored container.
func (s *Service) Get(ctx context.Context, id string) (*models.ContainerDocument, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}
	return s.store.Load(ctx, id)
}

// List returns every container id.
func (s *Service) List(ctx context.Context) ([]string, error) {
	return s.store.List(ctx)
}

// Put replaces the stored container. It waits for a running sort of the same container.
func (s *Service) Put(ctx context.Context, doc *models.ContainerDocument) error {
	if !ValidID(doc.ID) {
		return ErrInvalidID
	}
	if err := doc.Normalize(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	unlock := s.locks.Lock(doc.ID)
	defer unlock()
	return s.store.Save(ctx, doc)
}

// Sort reconciles the stored container id.
func (s *Service) Sort(ctx context.Context, id string, opts SortOptions) (*SortReport, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}
	current := s.settings.Current()
	if opts.Mode == "" {
		opts.Mode = current.Mode
	}

	key := id + "|" + string(opts.Mode) + "|" + strconv.FormatBool(opts.DryRun)
	v, err, shared := s.sf.Do(key, func() (any, error) {
		unlock := s.locks.Lock(id)
		defer unlock()
		return s.sortLocked(ctx, id, opts, current.Verbose)
	})
	if err != nil {
		return nil, err
	}
	report := v.(*SortReport)
	if shared {
		s.logger.Debug("Sort request shared a running invocation",
			logger.Container(id),
			zap.String("invocation", report.InvocationID),
		)
	}
	return report, nil
}

func (s *Service) sortLocked(ctx context.Context, id string, opts SortOptions, verbose bool) (*SortReport, error) {
	doc, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	report := &SortReport{
		InvocationID: uuid.NewString(),
		ContainerID:  id,
		Backend:      s.store.Name(),
		DryRun:       opts.DryRun,
	}
	l := s.logger.With(
		logger.Container(id),
		zap.String("invocation", report.InvocationID),
		logger.Backend(report.Backend),
	)

	c := NewStoredContainer(s.store, doc)
	cfg := reconcile.Config{Mode: opts.Mode}

	if opts.DryRun {
		plan, err := s.engine.Plan(c, cfg)
		if err != nil {
			report.Result = reconcile.Result{Mode: opts.Mode, Reason: err.Error(), Err: err}
		} else {
			report.Layout = plan.Layout
			report.Result = reconcile.Result{
				Success:      len(plan.Overflow) == 0,
				Mode:         opts.Mode,
				Groups:       len(plan.Groups),
				Overflow:     plan.Overflow,
				BeforeDigest: reconcile.Digest(plan.Before),
				AfterDigest:  reconcile.Digest(plan.Layout),
			}
		}
		return report, nil
	}

	if j, ok := s.store.(Journal); ok && c.IsUsable() {
		entry := models.JournalEntry{
			ContainerID: id,
			TakenAt:     time.Now().UTC(),
			Mode:        opts.Mode,
			Digest:      reconcile.Digest(doc.Slots),
			Slots:       doc.Snapshot(),
		}
		if err := j.Record(ctx, entry); err != nil {
			// The engine restores on failure by itself, the journal is only a manual fallback.
			l.Warn("Failed to record journal entry", zap.Error(err))
		} else {
			report.Journaled = true
		}
	}

	report.Result = s.engine.Reconcile(ctx, c, cfg)
	if verbose {
		report.Feedback = reconcile.Feedback(report.Result)
	}
	if !report.Result.Success {
		l.Info("Sort not applied", zap.String("reason", report.Result.Reason), zap.Bool("rolled_back", report.Result.RolledBack))
	}
	return report, nil
}

// Interact handles a player using a container. A sort runs only when the
// player sneaks or sorting without sneaking is enabled.
func (s *Service) Interact(ctx context.Context, id string, player settings.Player, sneaking bool) (*InteractReport, error) {
	if !sneaking && !s.settings.Current().SortWithoutSneak {
		return &InteractReport{Triggered: false}, nil
	}
	report, err := s.Sort(ctx, id, SortOptions{})
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Sort triggered by interaction",
		logger.Container(id),
		zap.String("player", player.Name),
		zap.Bool("sneaking", sneaking),
	)
	return &InteractReport{Triggered: true, Sort: report}, nil
}

// Restore writes the newest journal entry back into the container.
func (s *Service) Restore(ctx context.Context, id string) (*models.JournalEntry, error) {
	if !ValidID(id) {
		return nil, ErrInvalidID
	}
	j, ok := s.store.(Journal)
	if !ok {
		return nil, ErrNoJournal
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	entry, err := j.Latest(ctx, id)
	if err != nil {
		return nil, err
	}
	doc, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(entry.Slots) != doc.Size {
		return nil, fmt.Errorf("journal entry of %s has %d slots, container has %d", id, len(entry.Slots), doc.Size)
	}

	c := NewStoredContainer(s.store, doc)
	if err := reconcile.Rollback(c, entry.Slots); err != nil {
		return nil, err
	}
	if err := c.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", reconcile.ErrRollbackFailed, err)
	}
	s.logger.Info("Container restored from journal",
		logger.Container(id),
		zap.Time("taken_at", entry.TakenAt),
		zap.String("digest", entry.Digest),
	)
	return entry, nil
}
