package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/matheuskafuri/hunttech/internal/browser"
	"github.com/matheuskafuri/hunttech/internal/extract"
	"github.com/matheuskafuri/hunttech/internal/lang"
	"github.com/matheuskafuri/hunttech/internal/news"
	"github.com/matheuskafuri/hunttech/internal/reader"
	"github.com/matheuskafuri/hunttech/internal/scheduler"
	"github.com/matheuskafuri/hunttech/internal/theme"
	"github.com/matheuskafuri/hunttech/internal/trending"
	"github.com/matheuskafuri/hunttech/internal/update"
)

type focusPane int

const (
	focusList focusPane = iota
	focusArticle
)

type mode int

const (
	modeHome mode = iota
	modeFeed
	modeLogin
	modeHelp
)

const sidebarWidth = 28

type App struct {
	ctrl      *reader.Controller
	extractor *extract.Extractor
	open      func(string) error

	trendingURL   func(lang.Language) string
	trendingCount int
	version       string

	mode   mode
	focus  focusPane
	cursor int
	scroll int

	width  int
	height int

	spinner spinner.Model
	login   loginForm

	nextRefresh func() time.Time

	trending      []string
	extracted     map[string]string
	extracting    string
	updateVersion string
	err           error
	currentDate   string
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Controller    *reader.Controller
	Extractor     *extract.Extractor
	TrendingURL   func(lang.Language) string
	TrendingCount int
	RefreshEvery  time.Duration
	Version       string
	SkipHome      bool
}

func NewApp(opts RunOpts) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	ex := opts.Extractor
	if ex == nil {
		ex = extract.New()
	}

	startMode := modeHome
	if opts.SkipHome {
		startMode = modeFeed
	}

	return &App{
		ctrl:          opts.Controller,
		extractor:     ex,
		open:          browser.Open,
		trendingURL:   opts.TrendingURL,
		trendingCount: opts.TrendingCount,
		version:       opts.Version,
		mode:          startMode,
		spinner:       sp,
		extracted:     make(map[string]string),
		currentDate:   time.Now().Format("Jan 2"),
	}
}

func (a *App) Init() tea.Cmd {
	st := a.ctrl.Snapshot()
	theme.Apply(st.Dark)

	cmds := []tea.Cmd{
		a.startFetch(a.ctrl.Begin("")),
		a.trendingCmd(st.Language),
	}
	if a.version != "" {
		cmds = append(cmds, a.updateCmd())
	}
	return tea.Batch(cmds...)
}

func (a *App) fetchCmd(t reader.Ticket) tea.Cmd {
	ctrl := a.ctrl
	return func() tea.Msg {
		return newsLoadedMsg{ticket: t, result: ctrl.Fetch(t)}
	}
}

func (a *App) startFetch(t reader.Ticket) tea.Cmd {
	return tea.Batch(a.fetchCmd(t), a.spinner.Tick)
}

func (a *App) trendingCmd(l lang.Language) tea.Cmd {
	var url string
	if a.trendingURL != nil {
		url = a.trendingURL(l)
	}
	n := a.trendingCount
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return trendingMsg{titles: trending.Titles(ctx, url, n, l)}
	}
}

func (a *App) updateCmd() tea.Cmd {
	version := a.version
	return func() tea.Msg {
		return updateMsg{result: update.Check(context.Background(), version)}
	}
}

func (a *App) extractCmd(url string) tea.Cmd {
	ex := a.extractor
	return func() tea.Msg {
		text, err := ex.Text(context.Background(), url)
		return extractedMsg{url: url, text: text, err: err}
	}
}

func (a *App) openCmd(url string) tea.Cmd {
	open := a.open
	return func() tea.Msg {
		if err := open(url); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case newsLoadedMsg:
		if a.ctrl.Complete(msg.ticket, msg.result) {
			n := len(a.ctrl.Snapshot().Items)
			if a.cursor >= n {
				a.cursor = max(0, n-1)
			}
		}
		return a, nil

	case autoRefreshMsg:
		return a, a.startFetch(a.ctrl.Refresh())

	case trendingMsg:
		a.trending = msg.titles
		return a, nil

	case extractedMsg:
		if a.extracting == msg.url {
			a.extracting = ""
		}
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.extracted[msg.url] = msg.text
		return a, nil

	case updateMsg:
		if msg.result != nil {
			a.updateVersion = msg.result.LatestVersion
		}
		return a, nil

	case errMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.ctrl.Snapshot().Loading || a.extracting != "" {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	if a.mode == modeLogin {
		return a, a.login.updateInputs(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeHome:
		if msg.String() == "q" {
			return a, tea.Quit
		}
		a.mode = modeFeed
		return a, nil
	case modeLogin:
		return a.handleLoginKey(msg)
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = modeFeed
		}
		return a, nil
	}

	st := a.ctrl.Snapshot()
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.focus == focusList && a.cursor < len(st.Items)-1 {
			a.cursor++
			a.scroll = 0
		} else if a.focus == focusArticle {
			a.scroll++
		}
		return a, nil
	case "k", "up":
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
			a.scroll = 0
		} else if a.focus == focusArticle && a.scroll > 0 {
			a.scroll--
		}
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusArticle
		} else {
			a.focus = focusList
		}
		return a, nil
	case "o", "enter":
		if it := a.selected(st); it != nil {
			if it.URL == "" {
				a.err = browser.ErrNoURL
				return a, nil
			}
			return a, a.openCmd(it.URL)
		}
		return a, nil
	case "x":
		it := a.selected(st)
		if it == nil || a.extracting != "" {
			return a, nil
		}
		if it.URL == "" {
			a.err = browser.ErrNoURL
			return a, nil
		}
		if _, ok := a.extracted[it.URL]; ok {
			return a, nil
		}
		a.extracting = it.URL
		a.focus = focusArticle
		return a, tea.Batch(a.extractCmd(it.URL), a.spinner.Tick)
	case "c":
		return a, a.selectCategory(nextCategory(lang.Categories(st.Language), st.Category))
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if label, ok := categoryAt(lang.Categories(st.Language), msg.String()); ok {
			return a, a.selectCategory(label)
		}
		return a, nil
	case "L":
		t, err := a.ctrl.ChangeLanguage(st.Language.Next())
		if err != nil {
			a.err = err
			return a, nil
		}
		a.resetView()
		return a, tea.Batch(a.startFetch(t), a.trendingCmd(t.Query.Language))
	case "r":
		return a, a.startFetch(a.ctrl.Refresh())
	case "d":
		theme.Apply(a.ctrl.ToggleTheme())
		return a, nil
	case "u":
		if st.LoggedIn() {
			t, err := a.ctrl.Logout()
			if err != nil {
				a.err = err
				return a, nil
			}
			return a, a.startFetch(t)
		}
		a.login = newLoginForm(st.Language)
		a.mode = modeLogin
		return a, nil
	case "p":
		if !st.LoggedIn() || lang.IsAllCategory(st.Language, st.Category) {
			return a, nil
		}
		if err := a.ctrl.TogglePreference(st.Category); err != nil {
			a.err = err
			return a, nil
		}
		return a, a.startFetch(a.ctrl.Refresh())
	case "h":
		a.resetView()
		return a, a.startFetch(a.ctrl.Home())
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cmd := a.login.update(msg)
	switch action {
	case formCancel:
		a.mode = modeFeed
		return a, nil
	case formSubmit:
		before := a.ctrl.Snapshot().Language
		t, err := a.ctrl.Login(a.login.name.Value(), a.login.email.Value(), a.login.language, a.login.preferences())
		if err != nil {
			a.login.err = err
			return a, nil
		}
		a.mode = modeFeed
		a.resetView()
		cmds := []tea.Cmd{a.startFetch(t)}
		if t.Query.Language != before {
			cmds = append(cmds, a.trendingCmd(t.Query.Language))
		}
		return a, tea.Batch(cmds...)
	}
	return a, cmd
}

func (a *App) selectCategory(label string) tea.Cmd {
	a.resetView()
	return a.startFetch(a.ctrl.SelectCategory(label))
}

func (a *App) resetView() {
	a.cursor = 0
	a.scroll = 0
	a.focus = focusList
}

func (a *App) selected(st reader.State) *news.Item {
	if len(st.Items) == 0 || a.cursor >= len(st.Items) {
		return nil
	}
	return &st.Items[a.cursor]
}

func (a *App) withBottomBar(content string, hints string) string {
	bar := renderBottomBar(hints, a.width)
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

func (a *App) View() string {
	if a.width == 0 {
		return brandHuntStyle.Render("hunt") + brandTechStyle.Render("tech")
	}

	st := a.ctrl.Snapshot()
	welcome := lang.Welcome(st.Language, userName(st))

	switch a.mode {
	case modeHome:
		loading := ""
		if st.Loading {
			loading = lang.Loading(st.Language)
		}
		return a.withBottomBar(renderHomeScreen(a.width, a.height, welcome, loading, a.updateVersion), "enter read  q quit")
	case modeLogin:
		return a.withBottomBar(a.login.view(a.width, a.height-1), "enter submit  esc cancel")
	case modeHelp:
		return a.withBottomBar(a.renderHelp(), "? close  q quit")
	}

	// Layout calculations
	headerHeight := 1
	filterHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - filterHeight - statusHeight - 2 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}

	showSidebar := a.width >= 100
	mainWidth := a.width
	if showSidebar {
		mainWidth -= sidebarWidth
	}
	listWidth := int(float64(mainWidth) * 0.4)
	articleWidth := mainWidth - listWidth

	// Header
	themeIcon := "☀"
	if st.Dark {
		themeIcon = "☾"
	}
	headerLeft := brandHuntStyle.Render("hunt") + brandTechStyle.Render("tech") + "  " + welcomeStyle.Render(welcome)
	headerRight := renderLanguageTabs(st.Language) + " " + headerDimStyle.Render(themeIcon+" "+a.currentDate) + " "
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 1 {
		headerGap = 1
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	categories := renderCategoryBar(lang.Categories(st.Language), st.Category, a.width)

	// List pane
	empty := lang.Empty(st.Language)
	if st.Loading && len(st.Items) == 0 {
		empty = lang.Loading(st.Language)
	}
	listContent := renderList(st.Items, a.cursor, contentHeight, listWidth-4, empty)
	listStyle := listPaneStyle
	if a.focus == focusList {
		listStyle = listPaneActiveStyle
	}
	listPane := listStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)

	// Article pane
	it := a.selected(st)
	var extracted string
	var extracting bool
	if it != nil && it.URL != "" {
		extracted = a.extracted[it.URL]
		extracting = a.extracting == it.URL
	}
	articleContent := renderArticle(it, extracted, extracting, articleWidth-4, contentHeight, a.scroll)
	articleStyle := articlePaneStyle
	if a.focus == focusArticle {
		articleStyle = articlePaneActiveStyle
	}
	articlePane := articleStyle.Width(articleWidth - 2).Height(contentHeight).Render(articleContent)

	panes := []string{listPane, articlePane}
	if showSidebar {
		side := renderTrending(lang.TrendingTitle(st.Language), a.trending, sidebarWidth-3, contentHeight)
		panes = append(panes, sidebarStyle.Width(sidebarWidth-2).Height(contentHeight).Render(side))
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top, panes...)

	status := renderStatusBar(statusInfo{
		count:       len(st.Items),
		loading:     st.Loading,
		spinner:     a.spinner.View(),
		status:      st.Status,
		fetchErr:    st.Err,
		lastUpdated: st.LastUpdated,
		loggedIn:    st.LoggedIn(),
		nextRefresh: a.nextRefreshAt(),
	}, a.width)

	if a.err != nil {
		status = statusBarStyle.Width(a.width).Render(errorStyle.Render(a.err.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, categories, content, status)
}

func (a *App) nextRefreshAt() time.Time {
	if a.nextRefresh == nil {
		return time.Time{}
	}
	return a.nextRefresh()
}

func userName(st reader.State) string {
	if st.User == nil {
		return ""
	}
	return st.User.Name
}

func (a *App) renderHelp() string {
	title := brandHuntStyle.UnsetPaddingLeft().Render("hunt") + brandTechStyle.Render("tech")
	dim := helpDimStyle

	help := title + dim.Render(" · Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓      Move through stories\n" +
		"  tab           Switch focus between list and article\n\n" +
		dim.Render("Feed") + "\n" +
		"  1-7           Pick a category\n" +
		"  c             Next category\n" +
		"  h             Back to all news\n" +
		"  L             Next language (বাংলা, English, हिन्दी)\n" +
		"  r             Refresh now\n\n" +
		dim.Render("Story") + "\n" +
		"  o, enter      Open source in browser\n" +
		"  x             Read the source page here\n\n" +
		dim.Render("General") + "\n" +
		"  u             Log in / log out\n" +
		"  p             Add or remove the category as an interest\n" +
		"  d             Toggle dark mode\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c     Quit"

	card := helpCardStyle.Render(help)
	return lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI and the auto-refresh scheduler.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())

	interval := opts.RefreshEvery
	if interval <= 0 {
		interval = scheduler.DefaultInterval
	}
	sched := scheduler.New(logrus.WithField("component", "scheduler"))
	sched.Every(interval, func() { p.Send(autoRefreshMsg{}) })
	sched.Start()
	app.nextRefresh = sched.Next
	defer sched.Stop()
	defer opts.Controller.Close()

	_, err := p.Run()
	return err
}
