package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yjkwon-dev/pinggye/models"
)

const apiTimeout = 30 * time.Second

func apiContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), apiTimeout)
}

func (m *AppModel) signupCmd(username, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := apiContext()
		defer cancel()

		resp, err := m.api.Signup(ctx, models.SignupRequest{Username: username, Email: email, Password: password})
		if err != nil {
			return errMsg{err}
		}
		return authDoneMsg{message: resp.Message, username: resp.User.Username}
	}
}

func (m *AppModel) loginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := apiContext()
		defer cancel()

		resp, err := m.api.Login(ctx, models.LoginRequest{Username: username, Password: password})
		if err != nil {
			return errMsg{err}
		}
		return authDoneMsg{message: resp.Message, username: resp.User.Username}
	}
}

func (m *AppModel) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := apiContext()
		defer cancel()

		if err := m.api.Logout(ctx); err != nil {
			return errMsg{err}
		}
		return loggedOutMsg{}
	}
}

func (m *AppModel) generateCmd(req models.ExcuseRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := apiContext()
		defer cancel()

		resp, err := m.api.GenerateExcuse(ctx, req)
		if err != nil {
			return errMsg{err}
		}
		return excuseGeneratedMsg{excuse: *resp}
	}
}

func (m *AppModel) loadRecentCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := apiContext()
		defer cancel()

		excuses, err := m.api.RecentExcuses(ctx, 10)
		if err != nil {
			return errMsg{err}
		}
		return excusesLoadedMsg{excuses: excuses}
	}
}

func (m *AppModel) loadBookmarkedCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := apiContext()
		defer cancel()

		excuses, err := m.api.BookmarkedExcuses(ctx)
		if err != nil {
			return errMsg{err}
		}
		return excusesLoadedMsg{excuses: excuses, bookmarked: true}
	}
}

func (m *AppModel) toggleBookmarkCmd(id int64, bookmarked bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := apiContext()
		defer cancel()

		excuse, err := m.api.SetBookmark(ctx, id, bookmarked)
		if err != nil {
			return errMsg{err}
		}
		return bookmarkToggledMsg{excuse: *excuse}
	}
}

func (m *AppModel) clearCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := apiContext()
		defer cancel()

		if err := m.api.ClearExcuses(ctx); err != nil {
			return errMsg{err}
		}
		return clearedMsg{}
	}
}

func (m *AppModel) loadUsageCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := apiContext()
		defer cancel()

		summary, err := m.api.CurrentWeekUsage(ctx)
		if err != nil {
			return errMsg{err}
		}
		history, err := m.api.UsageHistory(ctx)
		if err != nil {
			return errMsg{err}
		}
		return usageLoadedMsg{summary: *summary, history: history}
	}
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return errMsg{err}
		}
		return copiedMsg{}
	}
}
