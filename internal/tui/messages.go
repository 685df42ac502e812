package tui

import "github.com/yjkwon-dev/pinggye/models"

// Messages delivered back into the update loop by API commands.

type errMsg struct{ err error }

type authDoneMsg struct {
	message  string
	username string
}

type loggedOutMsg struct{}

type excuseGeneratedMsg struct {
	excuse models.ExcuseResponse
}

type excusesLoadedMsg struct {
	excuses    []models.Excuse
	bookmarked bool
}

type bookmarkToggledMsg struct {
	excuse models.Excuse
}

type usageLoadedMsg struct {
	summary models.UsageSummary
	history []models.UsageStats
}

type clearedMsg struct{}

type copiedMsg struct{}
