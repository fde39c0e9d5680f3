package tui

import (
	"github.com/matheuskafuri/hunttech/internal/news"
	"github.com/matheuskafuri/hunttech/internal/reader"
	"github.com/matheuskafuri/hunttech/internal/update"
)

type newsLoadedMsg struct {
	ticket reader.Ticket
	result news.Result
}

// autoRefreshMsg is sent by the scheduler from outside the program loop.
type autoRefreshMsg struct{}

type trendingMsg struct {
	titles []string
}

type extractedMsg struct {
	url  string
	text string
	err  error
}

type updateMsg struct {
	result *update.Result
}

type errMsg struct {
	err error
}
