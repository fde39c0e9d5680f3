// Package reader owns the reader's state: language, category, user, the
// current batch of stories and the theme. Every fetch is tagged with a
// generation so a superseded fetch can never overwrite newer state.
package reader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/matheuskafuri/hunttech/internal/lang"
	"github.com/matheuskafuri/hunttech/internal/news"
	"github.com/matheuskafuri/hunttech/internal/store"
	"github.com/matheuskafuri/hunttech/internal/theme"
	"github.com/matheuskafuri/hunttech/internal/user"
)

// Fetcher runs one fetch.
type Fetcher interface {
	Fetch(ctx context.Context, q news.Query) news.Result
}

// Store is the local persistence the controller needs.
type Store interface {
	LoadUser() (user.User, error)
	SaveUser(u user.User) error
	DeleteUser() error
	Theme() (string, error)
	SetTheme(value string) error
	RecordFetch(r store.FetchRecord) error
}

// State is a snapshot of everything the views render.
type State struct {
	Language    lang.Language
	Category    string
	User        *user.User
	Items       []news.Item
	Status      news.Status
	Err         error
	Loading     bool
	Dark        bool
	Generation  uint64
	LastUpdated time.Time
}

// LoggedIn reports whether a user record is active.
func (s State) LoggedIn() bool { return s.User != nil }

// Ticket identifies one fetch. Ctx is cancelled as soon as a newer fetch
// begins.
type Ticket struct {
	Gen   uint64
	Query news.Query
	Ctx   context.Context
}

type Controller struct {
	mu      sync.Mutex
	fetcher Fetcher
	store   Store
	log     *logrus.Entry
	now     func() time.Time
	parent  context.Context

	state  State
	cancel context.CancelFunc
}

// Option configures a Controller.
type Option func(*Controller)

// WithLanguage sets the start-up language used when no user is stored.
func WithLanguage(l lang.Language) Option {
	return func(c *Controller) { c.state.Language = l.Or(lang.Default) }
}

// WithCategory sets the start-up category.
func WithCategory(category string) Option {
	return func(c *Controller) { c.state.Category = category }
}

// WithSystemDark supplies the terminal's own preference for theme
// resolution.
func WithSystemDark(dark bool) Option {
	return func(c *Controller) { c.state.Dark = dark }
}

func WithLogger(l *logrus.Entry) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithContext sets the parent of every fetch context.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) { c.parent = ctx }
}

// New builds a controller and restores the stored user and theme. A stored
// user's language wins over WithLanguage.
func New(f Fetcher, s Store, opts ...Option) *Controller {
	c := &Controller{
		fetcher: f,
		store:   s,
		log:     logrus.WithField("component", "reader"),
		now:     time.Now,
		parent:  context.Background(),
		state:   State{Language: lang.Default, Items: []news.Item{}},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.restore()
	return c
}

func (c *Controller) restore() {
	u, err := c.store.LoadUser()
	switch {
	case err == nil:
		c.state.User = &u
		c.state.Language = u.Language
	case errors.Is(err, store.ErrNotFound):
	default:
		c.log.WithError(err).Warn("ignoring stored user")
	}
	if !lang.HasCategory(c.state.Language, c.state.Category) {
		c.state.Category = lang.DefaultCategory(c.state.Language)
	}

	saved, err := c.store.Theme()
	if err != nil {
		c.log.WithError(err).Warn("reading saved theme")
	}
	c.state.Dark = theme.Resolve(saved, c.state.Dark)
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() State {
	s := c.state
	s.Items = make([]news.Item, len(c.state.Items))
	copy(s.Items, c.state.Items)
	if c.state.User != nil {
		u := c.state.User.WithLanguage(c.state.User.Language)
		s.User = &u
	}
	return s
}

// Categories returns the labels of the active language.
func (c *Controller) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return lang.Categories(c.state.Language)
}

// Begin starts a new fetch generation and cancels the previous one.
// override, when set, replaces the active category for this fetch only.
func (c *Controller) Begin(override string) Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.beginLocked(override)
}

func (c *Controller) beginLocked(override string) Ticket {
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(c.parent)
	c.cancel = cancel

	c.state.Generation++
	c.state.Loading = true

	category := override
	if category == "" {
		category = c.state.Category
	}
	if category == "" {
		category = lang.DefaultCategory(c.state.Language)
	}
	prefs := []string{}
	if c.state.User != nil {
		prefs = append(prefs, c.state.User.Preferences...)
	}

	return Ticket{
		Gen: c.state.Generation,
		Query: news.Query{
			Category:    category,
			Language:    c.state.Language,
			Preferences: prefs,
		},
		Ctx: ctx,
	}
}

// Fetch runs the ticket's query. It does not touch state.
func (c *Controller) Fetch(t Ticket) news.Result {
	return c.fetcher.Fetch(t.Ctx, t.Query)
}

// Complete applies a result if its ticket is still current and reports
// whether it did.
func (c *Controller) Complete(t Ticket, res news.Result) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t.Gen != c.state.Generation {
		c.log.WithFields(logrus.Fields{
			"generation": t.Gen,
			"current":    c.state.Generation,
		}).Debug("discarding stale fetch")
		return false
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if res.Items == nil {
		res.Items = []news.Item{}
	}
	c.state.Items = res.Items
	c.state.Status = res.Status
	c.state.Err = res.Err
	c.state.Loading = false
	c.state.LastUpdated = c.now()

	rec := store.FetchRecord{
		FetchedAt: c.state.LastUpdated,
		Language:  t.Query.Language.String(),
		Category:  t.Query.Category,
		Status:    res.Status.String(),
		Items:     len(res.Items),
	}
	if err := c.store.RecordFetch(rec); err != nil {
		c.log.WithError(err).Warn("recording fetch")
	}
	return true
}

// Load is Begin, Fetch and Complete in one blocking call.
func (c *Controller) Load(override string) (news.Result, bool) {
	t := c.Begin(override)
	res := c.Fetch(t)
	return res, c.Complete(t, res)
}

// Refresh refetches with the current language and category.
func (c *Controller) Refresh() Ticket {
	return c.Begin("")
}

// Home resets to the language's default category.
func (c *Controller) Home() Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Category = lang.DefaultCategory(c.state.Language)
	return c.beginLocked("")
}

// SelectCategory makes label the active category and refetches.
func (c *Controller) SelectCategory(label string) Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	if label == "" {
		label = lang.DefaultCategory(c.state.Language)
	}
	c.state.Category = label
	return c.beginLocked("")
}

// ChangeLanguage switches language, resets the category and rewrites the
// stored user. Preferences keep their original labels.
func (c *Controller) ChangeLanguage(l lang.Language) (Ticket, error) {
	if !l.Valid() {
		return Ticket{}, fmt.Errorf("%w: %q", user.ErrInvalidLanguage, l)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Language = l
	c.state.Category = lang.DefaultCategory(l)
	if c.state.User != nil {
		u := c.state.User.WithLanguage(l)
		c.state.User = &u
		if err := c.store.SaveUser(u); err != nil {
			c.log.WithError(err).Warn("saving user after language change")
		}
	}
	return c.beginLocked(""), nil
}

// Login validates and stores the user, switches to its language and
// refetches with its preferences.
func (c *Controller) Login(name, email string, l lang.Language, prefs []string) (Ticket, error) {
	u, err := user.New(name, email, l, prefs)
	if err != nil {
		return Ticket{}, err
	}
	if err := c.store.SaveUser(u); err != nil {
		return Ticket{}, fmt.Errorf("saving user: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.User = &u
	if c.state.Language != u.Language {
		c.state.Language = u.Language
		c.state.Category = lang.DefaultCategory(u.Language)
	}
	c.log.WithField("language", u.Language.String()).Info("user logged in")
	return c.beginLocked(""), nil
}

// Logout forgets the user. The language stays as it was.
func (c *Controller) Logout() (Ticket, error) {
	if err := c.store.DeleteUser(); err != nil {
		return Ticket{}, fmt.Errorf("deleting user: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.User = nil
	c.log.Info("user logged out")
	return c.beginLocked(""), nil
}

// TogglePreference flips one interest of the logged-in user.
func (c *Controller) TogglePreference(label string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.User == nil {
		return errors.New("not logged in")
	}
	u := c.state.User.TogglePreference(label)
	if err := c.store.SaveUser(u); err != nil {
		return fmt.Errorf("saving user: %w", err)
	}
	c.state.User = &u
	return nil
}

// ToggleTheme flips the palette and persists the choice. A failed write is
// logged; the toggle still applies.
func (c *Controller) ToggleTheme() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Dark = !c.state.Dark
	if err := c.store.SetTheme(theme.Value(c.state.Dark)); err != nil {
		c.log.WithError(err).Warn("saving theme")
	}
	return c.state.Dark
}

// Close cancels any in-flight fetch.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
