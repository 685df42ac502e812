package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yjkwon-dev/pinggye/internal/adapter"
	"github.com/yjkwon-dev/pinggye/internal/logger"
	"github.com/yjkwon-dev/pinggye/models"
)

type screen int

const (
	screenMenu screen = iota
	screenLogin
	screenSignup
	screenGenerate
	screenResult
	screenList
	screenUsage
)

type menuAction int

const (
	actGenerate menuAction = iota
	actRecent
	actBookmarked
	actUsage
	actLogin
	actSignup
	actLogout
	actClear
	actQuit
)

type menuItem struct {
	label  string
	action menuAction
}

var categoryOptions = []struct {
	value models.Category
	label string
}{
	{models.CategoryHealth, "건강"},
	{models.CategoryFamily, "가족"},
	{models.CategoryTransport, "교통"},
	{models.CategoryPersonal, "개인 사정"},
	{models.CategoryRandom, "랜덤"},
}

var toneOptions = []struct {
	value models.Tone
	label string
}{
	{models.ToneLight, "가볍게"},
	{models.ToneModerate, "적당히"},
	{models.ToneSerious, "진지하게"},
}

// AppModel is the bubbletea root model: one screen state machine over the
// server API.
type AppModel struct {
	api     adapter.API
	version string
	log     *logger.Logger

	screen   screen
	username string
	status   string
	errText  string

	loading bool
	spin    spinner.Model

	menuCursor int

	// login / signup forms
	authInputs []textinput.Model
	authFocus  int

	// generate form
	catIdx    int
	toneIdx   int
	genInputs []textinput.Model
	genFocus  int

	// result screen
	result         models.ExcuseResponse
	resultMarked   bool
	resultFeedback string

	// list screen
	listItems      []models.Excuse
	listCursor     int
	listBookmarked bool

	// usage screen
	summary models.UsageSummary
	history []models.UsageStats
}

// NewAppModel builds the root model over the given API client.
func NewAppModel(api adapter.API, version string, log *logger.Logger) *AppModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &AppModel{
		api:     api,
		version: version,
		log:     log,
		screen:  screenMenu,
		spin:    spin,
	}
}

func (m *AppModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case errMsg:
		m.loading = false
		m.errText = msg.err.Error()
		return m, nil

	case authDoneMsg:
		m.loading = false
		m.errText = ""
		m.status = msg.message
		if msg.username != "" {
			m.username = msg.username
		}
		m.screen = screenMenu
		m.menuCursor = 0
		return m, nil

	case loggedOutMsg:
		m.loading = false
		m.username = ""
		m.status = "로그아웃 성공"
		m.screen = screenMenu
		m.menuCursor = 0
		return m, nil

	case excuseGeneratedMsg:
		m.loading = false
		m.errText = ""
		m.result = msg.excuse
		m.resultMarked = false
		m.resultFeedback = ""
		m.screen = screenResult
		return m, nil

	case excusesLoadedMsg:
		m.loading = false
		m.errText = ""
		m.listItems = msg.excuses
		m.listBookmarked = msg.bookmarked
		m.listCursor = 0
		m.screen = screenList
		return m, nil

	case bookmarkToggledMsg:
		m.loading = false
		if m.screen == screenResult {
			m.resultMarked = msg.excuse.IsBookmarked == 1
			if m.resultMarked {
				m.resultFeedback = "북마크에 저장했습니다."
			} else {
				m.resultFeedback = "북마크를 해제했습니다."
			}
			return m, nil
		}
		for i := range m.listItems {
			if m.listItems[i].ID == msg.excuse.ID {
				m.listItems[i] = msg.excuse
			}
		}
		// the bookmarks view drops rows that are no longer marked
		if m.listBookmarked {
			return m, m.loadBookmarkedCmd()
		}
		return m, nil

	case usageLoadedMsg:
		m.loading = false
		m.errText = ""
		m.summary = msg.summary
		m.history = msg.history
		m.screen = screenUsage
		return m, nil

	case clearedMsg:
		m.loading = false
		m.status = "핑계 기록이 초기화되었습니다."
		return m, nil

	case copiedMsg:
		m.resultFeedback = "클립보드에 복사했습니다."
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) && m.screen == screenMenu {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.loading {
			return m, nil
		}
		return m.updateScreen(msg)
	}

	return m, nil
}

func (m *AppModel) updateScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenLogin, screenSignup:
		return m.updateAuthForm(msg)
	case screenGenerate:
		return m.updateGenerateForm(msg)
	case screenResult:
		return m.updateResult(msg)
	case screenList:
		return m.updateList(msg)
	case screenUsage:
		if key.Matches(msg, keys.Back) {
			m.screen = screenMenu
		}
		return m, nil
	}
	return m, nil
}

func (m *AppModel) menuItems() []menuItem {
	items := []menuItem{
		{"핑계 생성", actGenerate},
		{"최근 핑계", actRecent},
		{"저장된 핑계", actBookmarked},
		{"사용 통계", actUsage},
	}
	if m.username == "" {
		items = append(items, menuItem{"로그인", actLogin}, menuItem{"회원가입", actSignup})
	} else {
		items = append(items, menuItem{"로그아웃", actLogout})
	}
	items = append(items, menuItem{"기록 초기화", actClear}, menuItem{"종료", actQuit})
	return items
}

func (m *AppModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.menuItems()

	switch {
	case key.Matches(msg, keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, keys.Down):
		if m.menuCursor < len(items)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, keys.Enter):
		m.status = ""
		m.errText = ""
		switch items[m.menuCursor].action {
		case actGenerate:
			m.initGenerateForm()
			m.screen = screenGenerate
		case actRecent:
			m.loading = true
			return m, m.loadRecentCmd()
		case actBookmarked:
			m.loading = true
			return m, m.loadBookmarkedCmd()
		case actUsage:
			m.loading = true
			return m, m.loadUsageCmd()
		case actLogin:
			m.initAuthForm(false)
			m.screen = screenLogin
		case actSignup:
			m.initAuthForm(true)
			m.screen = screenSignup
		case actLogout:
			m.loading = true
			return m, m.logoutCmd()
		case actClear:
			m.loading = true
			return m, m.clearCmd()
		case actQuit:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *AppModel) initAuthForm(signup bool) {
	fields := []string{"아이디", "비밀번호"}
	if signup {
		fields = []string{"아이디", "이메일", "비밀번호"}
	}

	m.authInputs = make([]textinput.Model, len(fields))
	for i, placeholder := range fields {
		input := textinput.New()
		input.Placeholder = placeholder
		input.CharLimit = 64
		if placeholder == "비밀번호" {
			input.EchoMode = textinput.EchoPassword
		}
		m.authInputs[i] = input
	}
	m.authInputs[0].Focus()
	m.authFocus = 0
}

func (m *AppModel) updateAuthForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.screen = screenMenu
		return m, nil

	case key.Matches(msg, keys.Tab):
		m.authInputs[m.authFocus].Blur()
		m.authFocus = (m.authFocus + 1) % len(m.authInputs)
		return m, m.authInputs[m.authFocus].Focus()

	case key.Matches(msg, keys.Enter):
		if m.authFocus < len(m.authInputs)-1 {
			m.authInputs[m.authFocus].Blur()
			m.authFocus++
			return m, m.authInputs[m.authFocus].Focus()
		}

		m.loading = true
		if m.screen == screenSignup {
			return m, m.signupCmd(m.authInputs[0].Value(), m.authInputs[1].Value(), m.authInputs[2].Value())
		}
		return m, m.loginCmd(m.authInputs[0].Value(), m.authInputs[1].Value())
	}

	var cmd tea.Cmd
	m.authInputs[m.authFocus], cmd = m.authInputs[m.authFocus].Update(msg)
	return m, cmd
}

func (m *AppModel) initGenerateForm() {
	m.catIdx = 0
	m.toneIdx = 0
	m.genFocus = 0

	placeholders := []string{"과목/수업 (선택)", "시간 (선택)", "추가 상황 설명 (선택)"}
	m.genInputs = make([]textinput.Model, len(placeholders))
	for i, placeholder := range placeholders {
		input := textinput.New()
		input.Placeholder = placeholder
		input.CharLimit = 120
		m.genInputs[i] = input
	}
}

// generate-form focus rows: 0 category picker, 1 tone picker, 2-4 inputs.
const genInputOffset = 2

func (m *AppModel) updateGenerateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	totalRows := genInputOffset + len(m.genInputs)

	switch {
	case key.Matches(msg, keys.Back):
		m.screen = screenMenu
		return m, nil

	case key.Matches(msg, keys.Tab):
		if m.genFocus >= genInputOffset {
			m.genInputs[m.genFocus-genInputOffset].Blur()
		}
		m.genFocus = (m.genFocus + 1) % totalRows
		if m.genFocus >= genInputOffset {
			return m, m.genInputs[m.genFocus-genInputOffset].Focus()
		}
		return m, nil

	case key.Matches(msg, keys.Left) && m.genFocus < genInputOffset:
		if m.genFocus == 0 && m.catIdx > 0 {
			m.catIdx--
		}
		if m.genFocus == 1 && m.toneIdx > 0 {
			m.toneIdx--
		}
		return m, nil

	case key.Matches(msg, keys.Right) && m.genFocus < genInputOffset:
		if m.genFocus == 0 && m.catIdx < len(categoryOptions)-1 {
			m.catIdx++
		}
		if m.genFocus == 1 && m.toneIdx < len(toneOptions)-1 {
			m.toneIdx++
		}
		return m, nil

	case key.Matches(msg, keys.Enter):
		m.loading = true
		return m, m.generateCmd(models.ExcuseRequest{
			Category:  string(categoryOptions[m.catIdx].value),
			Tone:      string(toneOptions[m.toneIdx].value),
			Subject:   m.genInputs[0].Value(),
			Timeframe: m.genInputs[1].Value(),
			UserInput: m.genInputs[2].Value(),
		})
	}

	if m.genFocus >= genInputOffset {
		var cmd tea.Cmd
		idx := m.genFocus - genInputOffset
		m.genInputs[idx], cmd = m.genInputs[idx].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *AppModel) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.screen = screenMenu
		return m, nil
	case key.Matches(msg, keys.Copy):
		return m, copyCmd(m.result.Excuse)
	case key.Matches(msg, keys.Bookmark):
		m.loading = true
		return m, m.toggleBookmarkCmd(m.result.ID, !m.resultMarked)
	case key.Matches(msg, keys.Enter):
		m.initGenerateForm()
		m.screen = screenGenerate
		return m, nil
	}
	return m, nil
}

func (m *AppModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.screen = screenMenu
		return m, nil
	case key.Matches(msg, keys.Up):
		if m.listCursor > 0 {
			m.listCursor--
		}
	case key.Matches(msg, keys.Down):
		if m.listCursor < len(m.listItems)-1 {
			m.listCursor++
		}
	case key.Matches(msg, keys.Copy):
		if len(m.listItems) > 0 {
			return m, copyCmd(m.listItems[m.listCursor].Content)
		}
	case key.Matches(msg, keys.Bookmark):
		if len(m.listItems) > 0 {
			item := m.listItems[m.listCursor]
			m.loading = true
			return m, m.toggleBookmarkCmd(item.ID, item.IsBookmarked != 1)
		}
	}
	return m, nil
}

func (m *AppModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("핑계 생성기 " + m.version))
	b.WriteString("\n")
	if m.username != "" {
		b.WriteString(subtitleStyle.Render(m.username + " 님으로 로그인됨"))
	} else {
		b.WriteString(subtitleStyle.Render("게스트 모드"))
	}
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spin.View() + " 잠시만 기다려주세요...\n")
		return b.String()
	}

	switch m.screen {
	case screenMenu:
		m.viewMenu(&b)
	case screenLogin, screenSignup:
		m.viewAuthForm(&b)
	case screenGenerate:
		m.viewGenerateForm(&b)
	case screenResult:
		m.viewResult(&b)
	case screenList:
		m.viewList(&b)
	case screenUsage:
		m.viewUsage(&b)
	}

	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + successStyle.Render(m.status) + "\n")
	}

	return b.String()
}

func (m *AppModel) viewMenu(b *strings.Builder) {
	for i, item := range m.menuItems() {
		cursor := "  "
		label := item.label
		if i == m.menuCursor {
			cursor = "> "
			label = selectedStyle.Render(label)
		}
		fmt.Fprintf(b, "%s%s\n", cursor, label)
	}
	b.WriteString(helpStyle.Render("↑/↓ 이동 · enter 선택 · q 종료"))
}

func (m *AppModel) viewAuthForm(b *strings.Builder) {
	heading := "로그인"
	if m.screen == screenSignup {
		heading = "회원가입"
	}
	b.WriteString(selectedStyle.Render(heading) + "\n\n")

	for i := range m.authInputs {
		b.WriteString(m.authInputs[i].View() + "\n")
	}
	b.WriteString(helpStyle.Render("tab 다음 필드 · enter 제출 · esc 뒤로"))
}

func (m *AppModel) viewGenerateForm(b *strings.Builder) {
	b.WriteString(selectedStyle.Render("핑계 생성") + "\n\n")

	b.WriteString(m.pickerRow("상황", m.genFocus == 0, m.catIdx, categoryLabels()))
	b.WriteString(m.pickerRow("톤", m.genFocus == 1, m.toneIdx, toneLabels()))
	b.WriteString("\n")

	for i := range m.genInputs {
		b.WriteString(m.genInputs[i].View() + "\n")
	}
	b.WriteString(helpStyle.Render("←/→ 옵션 변경 · tab 다음 필드 · enter 생성 · esc 뒤로"))
}

func (m *AppModel) pickerRow(label string, focused bool, idx int, options []string) string {
	marker := "  "
	if focused {
		marker = "> "
	}

	rendered := make([]string, len(options))
	for i, option := range options {
		if i == idx {
			rendered[i] = selectedStyle.Render("[" + option + "]")
		} else {
			rendered[i] = " " + option + " "
		}
	}
	return fmt.Sprintf("%s%s: %s\n", marker, label, strings.Join(rendered, " "))
}

func categoryLabels() []string {
	labels := make([]string, len(categoryOptions))
	for i, option := range categoryOptions {
		labels[i] = option.label
	}
	return labels
}

func toneLabels() []string {
	labels := make([]string, len(toneOptions))
	for i, option := range toneOptions {
		labels[i] = option.label
	}
	return labels
}

func (m *AppModel) viewResult(b *strings.Builder) {
	marker := ""
	if m.resultMarked {
		marker = " " + bookmarkMark
	}
	b.WriteString(selectedStyle.Render("생성된 핑계"+marker) + "\n\n")
	b.WriteString(excuseBoxStyle.Render(m.result.Excuse) + "\n")
	fmt.Fprintf(b, "%s\n", subtitleStyle.Render("분류: "+m.result.Category+" · 톤: "+m.result.Tone))

	if m.resultFeedback != "" {
		b.WriteString(successStyle.Render(m.resultFeedback) + "\n")
	}
	b.WriteString(helpStyle.Render("c 복사 · b 북마크 · enter 다시 생성 · esc 뒤로"))
}

func (m *AppModel) viewList(b *strings.Builder) {
	heading := "최근 핑계"
	if m.listBookmarked {
		heading = "저장된 핑계"
	}
	b.WriteString(selectedStyle.Render(heading) + "\n\n")

	if len(m.listItems) == 0 {
		b.WriteString(subtitleStyle.Render("표시할 핑계가 없습니다.") + "\n")
	}

	for i, item := range m.listItems {
		cursor := "  "
		if i == m.listCursor {
			cursor = "> "
		}
		mark := " "
		if item.IsBookmarked == 1 {
			mark = bookmarkMark
		}
		line := fmt.Sprintf("%s%s [%s/%s] %s", cursor, mark, item.Category, item.Tone, truncate(item.Content, 48))
		if i == m.listCursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ 이동 · c 복사 · b 북마크 전환 · esc 뒤로"))
}

func (m *AppModel) viewUsage(b *strings.Builder) {
	b.WriteString(selectedStyle.Render("사용 통계") + "\n\n")

	fmt.Fprintf(b, "이번 주 생성 횟수: %d회\n", m.summary.Count)
	if m.summary.LastUsed != nil {
		fmt.Fprintf(b, "마지막 사용: %s\n", m.summary.LastUsed.Format("2006-01-02 15:04"))
	}
	if m.summary.Warning {
		b.WriteString(warningStyle.Render("이번 주에 핑계를 너무 많이 사용했습니다!") + "\n")
	}

	if len(m.history) > 0 {
		b.WriteString("\n" + subtitleStyle.Render("주별 기록") + "\n")
		for _, stats := range m.history {
			fmt.Fprintf(b, "  %s: %d회\n", stats.Week, stats.Count)
		}
	}
	b.WriteString(helpStyle.Render("esc 뒤로"))
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
