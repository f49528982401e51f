// Package state provides thread-safe viewing state for the application.
package state

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/litescript/ls-rigel/internal/astro"
	"github.com/litescript/ls-rigel/internal/coords"
	"github.com/litescript/ls-rigel/internal/logging"
	"github.com/litescript/ls-rigel/internal/mathx"
	"github.com/litescript/ls-rigel/internal/sky"
)

// Manager holds the viewing parameters shared by the front-ends and hands
// out observed-sky snapshots for them.
type Manager struct {
	mu sync.RWMutex

	// Snapshot inputs
	when    time.Time
	where   coords.Geographic
	center  coords.Horizontal
	catalog *astro.Catalog

	// Presentation
	fov    float64
	radius float64

	// Recent snapshots keyed by their inputs. buildMu keeps a tuple from
	// being computed twice by concurrent callers.
	buildMu sync.Mutex
	skies   *cache.Cache

	log *logging.Logger
	now func() time.Time
}

// Config holds the initial viewing parameters.
type Config struct {
	Time     time.Time // zero means now
	Where    coords.Geographic
	Center   coords.Horizontal
	FOV      float64 // degrees
	Radius   float64 // projection plane units
	CacheTTL time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Where:    coords.MustGeographicDeg(6.57, 46.52),
		Center:   coords.MustHorizontalDeg(180, 22),
		FOV:      100,
		Radius:   0.1,
		CacheTTL: time.Minute,
	}
}

// NewManager creates a state manager viewing cat. A non-positive CacheTTL
// disables snapshot caching.
func NewManager(cfg Config, cat *astro.Catalog, log *logging.Logger) *Manager {
	m := &Manager{
		when:    cfg.Time,
		where:   cfg.Where,
		center:  cfg.Center,
		catalog: cat,
		fov:     cfg.FOV,
		radius:  cfg.Radius,
		log:     log.With("state"),
		now:     time.Now,
	}
	if m.when.IsZero() {
		m.when = m.now()
	}
	if cfg.CacheTTL > 0 {
		m.skies = cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}
	return m
}

// View is a consistent copy of the viewing parameters.
type View struct {
	Time   time.Time
	Where  coords.Geographic
	Center coords.Horizontal
	FOV    float64
	Radius float64
}

// View returns the current viewing parameters.
func (m *Manager) View() View {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.view()
}

func (m *Manager) view() View {
	return View{
		Time:   m.when,
		Where:  m.where,
		Center: m.center,
		FOV:    m.fov,
		Radius: m.radius,
	}
}

// Catalog returns the catalog being viewed.
func (m *Manager) Catalog() *astro.Catalog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog
}

// SetTime sets the observation instant.
func (m *Manager) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.when = t
}

// SetTimeNow sets the observation instant to the current time.
func (m *Manager) SetTimeNow() {
	m.SetTime(m.now())
}

// StepTime moves the observation instant by d.
func (m *Manager) StepTime(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.when = m.when.Add(d)
}

// SetObserver sets the observer's location.
func (m *Manager) SetObserver(where coords.Geographic) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.where = where
}

// SetCenter sets the projection centre.
func (m *Manager) SetCenter(center coords.Horizontal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.center = center
}

// PanCenter moves the projection centre by the given degrees. Azimuth
// wraps around; altitude stops at the zenith and the nadir.
func (m *Manager) PanCenter(dAzDeg, dAltDeg float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	az := mathx.NormalizePositive(m.center.Az() + mathx.OfDeg(dAzDeg))
	alt := math.Max(-math.Pi/2, math.Min(math.Pi/2, m.center.Alt()+mathx.OfDeg(dAltDeg)))
	m.center = coords.MustHorizontal(az, alt)
}

// SetFOV sets the field of view in degrees.
func (m *Manager) SetFOV(deg float64) error {
	if !(deg > 0 && deg <= 360) {
		return fmt.Errorf("%w: field of view %v outside (0, 360]", mathx.ErrInvalidArgument, deg)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fov = deg
	return nil
}

// SetRadius sets the nearest-object search radius.
func (m *Manager) SetRadius(r float64) error {
	if !(r >= 0) {
		return fmt.Errorf("%w: search radius %v is negative", mathx.ErrInvalidArgument, r)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.radius = r
	return nil
}

// SetCatalog replaces the catalog being viewed.
func (m *Manager) SetCatalog(cat *astro.Catalog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.catalog = cat
}

// Snapshot represents the observed sky together with the parameters it
// was built for.
type Snapshot struct {
	View
	Sky *sky.ObservedSky
}

// Snapshot returns the observed sky for the current parameters. Skies are
// built once per distinct (time, location, centre, catalog) and reused
// while cached.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	v := m.view()
	cat := m.catalog
	m.mu.RUnlock()

	return Snapshot{View: v, Sky: m.sky(v, cat)}
}

func (m *Manager) sky(v View, cat *astro.Catalog) *sky.ObservedSky {
	build := func() *sky.ObservedSky {
		start := time.Now()
		s := sky.New(v.Time, v.Where, coords.NewStereographic(v.Center), cat)
		m.log.Debug("built sky for %s at %v in %v", v.Time.UTC().Format(time.RFC3339), v.Where, time.Since(start))
		return s
	}
	if m.skies == nil {
		return build()
	}

	key := skyKey(v, cat)
	m.buildMu.Lock()
	defer m.buildMu.Unlock()

	if cached, ok := m.skies.Get(key); ok {
		return cached.(*sky.ObservedSky)
	}
	s := build()
	m.skies.SetDefault(key, s)
	return s
}

// CachedSkies returns how many snapshots are currently cached.
func (m *Manager) CachedSkies() int {
	if m.skies == nil {
		return 0
	}
	return m.skies.ItemCount()
}

// skyKey identifies the inputs of an observed sky. Field of view and
// search radius do not affect it.
func skyKey(v View, cat *astro.Catalog) string {
	return fmt.Sprintf("%d|%v|%v|%v|%v|%p",
		v.Time.UnixNano(), v.Where.Lon(), v.Where.Lat(), v.Center.Az(), v.Center.Alt(), cat)
}
