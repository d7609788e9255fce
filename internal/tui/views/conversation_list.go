package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/flowchat/internal/tui/model"
	"github.com/matheus3301/flowchat/internal/tui/ui"
	"github.com/rivo/tview"
)

// previewWidth is the cell budget of the last-message column.
const previewWidth = 42

// ConversationList is the main chat list view.
type ConversationList struct {
	*tview.Table
	theme  *ui.Theme
	title  string
	rows   []model.ChatRow
	filter string
}

// NewConversationList creates a new conversation list table.
func NewConversationList(theme *ui.Theme, title string) *ConversationList {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	table.SetBorder(true)
	table.SetBorderColor(theme.BorderColor)
	table.SetBackgroundColor(theme.BgColor)
	table.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))
	table.SetTitleColor(theme.TitleColor)

	cl := &ConversationList{
		Table: table,
		theme: theme,
		title: title,
	}
	cl.render()
	return cl
}

// Name implements Component.
func (cl *ConversationList) Name() string { return cl.title }

// Hints implements Component.
func (cl *ConversationList) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Open"},
		{Key: "/", Description: "Filter"},
		{Key: "0", Description: "Clear filter"},
		{Key: ",", Description: "Settings"},
		{Key: ":", Description: "Command"},
		{Key: "?", Description: "Help"},
		{Key: "q", Description: "Quit"},
	}
}

// Update refreshes the list. filter is only shown in the title; rows are
// expected to be filtered already.
func (cl *ConversationList) Update(rows []model.ChatRow, filter string) {
	selected := cl.SelectedChat()
	cl.rows = rows
	cl.filter = filter
	cl.render()
	cl.Select(cl.rowOf(selected), 0)
}

func (cl *ConversationList) rowOf(chatID string) int {
	for i, r := range cl.rows {
		if r.ChatID == chatID {
			return i + 1
		}
	}
	return 1
}

func (cl *ConversationList) render() {
	cl.Clear()

	headers := []struct {
		text string
		exp  int
	}{
		{" NAME", 1},
		{" LAST MESSAGE", 2},
		{" TIME", 0},
	}
	for col, h := range headers {
		cell := tview.NewTableCell(h.text).
			SetSelectable(false).
			SetTextColor(cl.theme.TableHeaderFg).
			SetBackgroundColor(cl.theme.TableHeaderBg).
			SetAttributes(tcell.AttrBold).
			SetExpansion(h.exp)
		cl.SetCell(0, col, cell)
	}

	for i, r := range cl.rows {
		row := i + 1

		presence := fmt.Sprintf("[%s]○[-] ", ui.ColorName(cl.theme.MutedColor))
		if r.Online {
			presence = fmt.Sprintf("[%s]●[-] ", ui.ColorName(cl.theme.OnlineColor))
		}
		name := presence + display(r.Name)
		if r.Unread > 0 {
			name += fmt.Sprintf(" [%s::b](%d)[-:-:-]", ui.ColorName(cl.theme.UnreadColor), r.Unread)
		}

		cl.SetCell(row, 0, tview.NewTableCell(" "+name).SetExpansion(1).SetTextColor(cl.theme.FgColor))
		cl.SetCell(row, 1, tview.NewTableCell(" "+tview.Escape(truncate(sanitizeForTerminal(r.Preview), previewWidth))).SetExpansion(2).SetTextColor(cl.theme.FgColor))
		cl.SetCell(row, 2, tview.NewTableCell(display(r.Time)+" ").SetExpansion(0).SetTextColor(cl.theme.MutedColor).SetAlign(tview.AlignRight))
	}

	if cl.filter != "" {
		cl.SetTitle(fmt.Sprintf(" %s (%d) /%s ", cl.title, len(cl.rows), tview.Escape(cl.filter)))
	} else {
		cl.SetTitle(fmt.Sprintf(" %s (%d) ", cl.title, len(cl.rows)))
	}
}

// SelectedChat returns the id of the highlighted chat.
func (cl *ConversationList) SelectedChat() string {
	row, _ := cl.GetSelection()
	return cl.ChatByIndex(row)
}

// ChatByIndex returns the id of the Nth visible chat (1-based).
func (cl *ConversationList) ChatByIndex(n int) string {
	if n < 1 || n > len(cl.rows) {
		return ""
	}
	return cl.rows[n-1].ChatID
}
