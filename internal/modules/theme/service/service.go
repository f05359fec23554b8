package theme

import (
	"context"
	"sync"
	"time"

	"anoa.com/socialfeed/internal/entity"
	"anoa.com/socialfeed/internal/modules/theme/repository"
	"anoa.com/socialfeed/pkg/logger"
)

const persistTimeout = 5 * time.Second

// Listener receives every theme change synchronously.
type Listener func(pref entity.ThemePreference)

// ThemeStore is the process-wide source of truth for the display palette.
type ThemeStore interface {
	// Load reads the persisted preference. Failures fall back to light.
	Load(ctx context.Context)
	// Toggle flips the mode, notifies listeners and persists in the background.
	Toggle(ctx context.Context) entity.ThemePreference
	Preference() entity.ThemePreference
	Palette() Palette
	Subscribe(fn Listener) (unsubscribe func())
	// Wait blocks until every pending persist has finished.
	Wait()
}

type themeStore struct {
	repo repository.PreferenceRepository

	mu        sync.RWMutex
	pref      entity.ThemePreference
	version   uint64
	listeners map[uint64]Listener
	nextID    uint64

	persistMu sync.Mutex
	pending   sync.WaitGroup
}

func NewThemeStore(repo repository.PreferenceRepository) ThemeStore {
	return &themeStore{
		repo:      repo,
		listeners: make(map[uint64]Listener),
	}
}

func (s *themeStore) Load(ctx context.Context) {
	s.mu.RLock()
	startVersion := s.version
	s.mu.RUnlock()

	value, found, err := s.repo.Get(ctx, entity.ThemeKey)
	if err != nil {
		logger.Log.WithError(err).Warn("failed to load theme preference, using light")
		return
	}
	if !found {
		return
	}

	s.mu.Lock()
	// A toggle that landed while we were reading wins over the stored value.
	if s.version != startVersion {
		s.mu.Unlock()
		return
	}
	next := entity.ThemePreference{IsDarkMode: value == entity.ThemeDark}
	changed := next != s.pref
	s.pref = next
	s.version++
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	if changed {
		notify(listeners, next)
	}
}

func (s *themeStore) Toggle(ctx context.Context) entity.ThemePreference {
	s.mu.Lock()
	s.pref.IsDarkMode = !s.pref.IsDarkMode
	s.version++
	next := s.pref
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners, next)

	s.pending.Add(1)
	go s.persist(context.WithoutCancel(ctx))

	return next
}

// persist writes the state current at write time, so overlapping toggles
// always leave the latest value in storage.
func (s *themeStore) persist(ctx context.Context) {
	defer s.pending.Done()

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	value := s.Preference().Value()

	ctx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	if err := s.repo.Set(ctx, entity.ThemeKey, value); err != nil {
		logger.Log.WithError(err).WithField("theme", value).Error("failed to save theme preference")
	}
}

func (s *themeStore) Preference() entity.ThemePreference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pref
}

func (s *themeStore) Palette() Palette {
	return PaletteFor(s.Preference().IsDarkMode)
}

func (s *themeStore) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *themeStore) Wait() {
	s.pending.Wait()
}

// snapshotListeners must be called with s.mu held.
func (s *themeStore) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		out = append(out, fn)
	}
	return out
}

func notify(listeners []Listener, pref entity.ThemePreference) {
	for _, fn := range listeners {
		fn(pref)
	}
}
