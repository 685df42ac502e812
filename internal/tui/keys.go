package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Back     key.Binding
	Tab      key.Binding
	Copy     key.Binding
	Bookmark key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "위로")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "아래로")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "이전")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "다음")),
	Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "선택")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "뒤로")),
	Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "다음 필드")),
	Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "복사")),
	Bookmark: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "북마크")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "종료")),
}
