package theme

import (
	"context"
	"errors"
	"sync"
	"testing"

	"anoa.com/socialfeed/internal/entity"
	"anoa.com/socialfeed/internal/modules/theme/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRepo struct {
	mu     sync.Mutex
	writes int
}

func (r *failingRepo) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("storage unavailable")
}

func (r *failingRepo) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	r.writes++
	r.mu.Unlock()
	return errors.New("storage unavailable")
}

// gatedRepo signals entered and then blocks Get until release is closed.
type gatedRepo struct {
	repository.PreferenceRepository
	entered chan struct{}
	release chan struct{}
}

func (r *gatedRepo) Get(ctx context.Context, key string) (string, bool, error) {
	close(r.entered)
	<-r.release
	return r.PreferenceRepository.Get(ctx, key)
}

func TestPaletteForIsPure(t *testing.T) {
	assert.Equal(t, PaletteFor(false), PaletteFor(false))
	assert.Equal(t, PaletteFor(true), PaletteFor(true))
	assert.NotEqual(t, PaletteFor(false), PaletteFor(true))

	light := PaletteFor(false)
	light.Primary = "#000000"
	assert.Equal(t, "#6366f1", PaletteFor(false).Primary)
}

func TestPaletteColor(t *testing.T) {
	dark := PaletteFor(true)
	assert.Equal(t, "#34d399", dark.Color(RoleSuccess))
	assert.Equal(t, "#fbbf24", dark.Color(RoleAccent))
	assert.Equal(t, dark.Text, dark.Color(Role("sparkle")))
}

func TestLoadDefaultsToLightWhenAbsent(t *testing.T) {
	store := NewThemeStore(repository.NewMemoryRepository())
	store.Load(context.Background())

	assert.False(t, store.Preference().IsDarkMode)
	assert.Equal(t, PaletteFor(false), store.Palette())
}

func TestLoadFailureFallsBackToLight(t *testing.T) {
	store := NewThemeStore(&failingRepo{})
	store.Load(context.Background())

	assert.False(t, store.Preference().IsDarkMode)
}

func TestLoadTreatsUnknownValueAsLight(t *testing.T) {
	repo := repository.NewMemoryRepository()
	require.NoError(t, repo.Set(context.Background(), entity.ThemeKey, "sepia"))

	store := NewThemeStore(repo)
	store.Load(context.Background())
	assert.False(t, store.Preference().IsDarkMode)
}

func TestToggleTwiceIsIdentity(t *testing.T) {
	store := NewThemeStore(repository.NewMemoryRepository())
	original := store.Palette()

	assert.True(t, store.Toggle(context.Background()).IsDarkMode)
	assert.False(t, store.Toggle(context.Background()).IsDarkMode)
	store.Wait()

	assert.False(t, store.Preference().IsDarkMode)
	assert.Equal(t, original, store.Palette())
}

func TestTogglePersistsAndReloads(t *testing.T) {
	repo := repository.NewMemoryRepository()
	store := NewThemeStore(repo)
	store.Load(context.Background())

	store.Toggle(context.Background())
	store.Wait()

	value, found, err := repo.Get(context.Background(), entity.ThemeKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "dark", value)

	fresh := NewThemeStore(repo)
	fresh.Load(context.Background())
	assert.True(t, fresh.Preference().IsDarkMode)
	assert.Equal(t, PaletteFor(true), fresh.Palette())
}

func TestTogglePersistFailureKeepsFlag(t *testing.T) {
	repo := &failingRepo{}
	store := NewThemeStore(repo)

	store.Toggle(context.Background())
	store.Wait()

	assert.True(t, store.Preference().IsDarkMode)
	assert.Equal(t, 1, repo.writes)
}

func TestTogglePersistSurvivesCanceledRequest(t *testing.T) {
	repo := repository.NewMemoryRepository()
	store := NewThemeStore(repo)

	ctx, cancel := context.WithCancel(context.Background())
	store.Toggle(ctx)
	cancel()
	store.Wait()

	value, _, err := repo.Get(context.Background(), entity.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", value)
}

func TestConcurrentTogglesStoreLatestValue(t *testing.T) {
	repo := repository.NewMemoryRepository()
	store := NewThemeStore(repo)

	var wg sync.WaitGroup
	for i := 0; i < 7; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Toggle(context.Background())
		}()
	}
	wg.Wait()
	store.Wait()

	assert.True(t, store.Preference().IsDarkMode)
	value, _, err := repo.Get(context.Background(), entity.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", value)
}

func TestSubscribersSeeEveryChange(t *testing.T) {
	repo := repository.NewMemoryRepository()
	require.NoError(t, repo.Set(context.Background(), entity.ThemeKey, entity.ThemeDark))
	store := NewThemeStore(repo)

	var seen []bool
	unsubscribe := store.Subscribe(func(pref entity.ThemePreference) {
		seen = append(seen, pref.IsDarkMode)
	})

	store.Load(context.Background())
	store.Toggle(context.Background())
	unsubscribe()
	unsubscribe()
	store.Toggle(context.Background())
	store.Wait()

	assert.Equal(t, []bool{true, false}, seen)
}

func TestLoadDoesNotOverrideEarlierToggle(t *testing.T) {
	inner := repository.NewMemoryRepository()
	require.NoError(t, inner.Set(context.Background(), entity.ThemeKey, entity.ThemeLight))
	repo := &gatedRepo{
		PreferenceRepository: inner,
		entered:              make(chan struct{}),
		release:              make(chan struct{}),
	}
	store := NewThemeStore(repo)

	done := make(chan struct{})
	go func() {
		store.Load(context.Background())
		close(done)
	}()

	<-repo.entered
	// Renders before Load completes see the light default.
	assert.False(t, store.Preference().IsDarkMode)
	store.Toggle(context.Background())
	close(repo.release)
	<-done
	store.Wait()

	assert.True(t, store.Preference().IsDarkMode)
}
