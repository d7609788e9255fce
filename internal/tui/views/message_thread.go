package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/flowchat/internal/tui/model"
	"github.com/matheus3301/flowchat/internal/tui/ui"
	"github.com/rivo/tview"
)

// ReadTick marks outgoing messages; it is highlighted once read.
const ReadTick = "✓✓"

// MessageThread displays messages and a composer for a single chat.
type MessageThread struct {
	*tview.Flex
	theme    *ui.Theme
	messages *tview.TextView
	composer *tview.InputField
	chatName string
	onSend   func(text string)
}

// NewMessageThread creates a new message thread view. composeLabel titles
// the composer box.
func NewMessageThread(theme *ui.Theme, composeLabel string) *MessageThread {
	messages := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	messages.SetBorder(true)
	messages.SetBorderColor(theme.BorderColor)
	messages.SetBackgroundColor(theme.BgColor)
	messages.SetTextColor(theme.FgColor)
	messages.SetTitleColor(theme.TitleColor)

	composer := tview.NewInputField().
		SetLabel(" > ").
		SetFieldWidth(0)
	composer.SetBorder(true)
	composer.SetBorderColor(theme.BorderColor)
	composer.SetBackgroundColor(theme.BgColor)
	composer.SetFieldBackgroundColor(theme.BgColor)
	composer.SetFieldTextColor(theme.FgColor)
	composer.SetLabelColor(theme.MenuKeyColor)
	composer.SetTitle(fmt.Sprintf(" %s (i) ", composeLabel))
	composer.SetTitleColor(theme.TitleColor)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(messages, 0, 1, true).
		AddItem(composer, 3, 0, false)

	mt := &MessageThread{
		Flex:     flex,
		theme:    theme,
		messages: messages,
		composer: composer,
	}

	// Blank input is passed through; the store decides what counts as empty.
	composer.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter && mt.onSend != nil {
			mt.onSend(composer.GetText())
			composer.SetText("")
		}
	})

	return mt
}

// Name implements Component.
func (mt *MessageThread) Name() string {
	if mt.chatName != "" {
		return mt.chatName
	}
	return "Messages"
}

// Hints implements Component.
func (mt *MessageThread) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "i", Description: "Compose"},
		{Key: "d", Description: "Details"},
		{Key: "Esc", Description: "Back"},
		{Key: ":", Description: "Command"},
		{Key: "?", Description: "Help"},
	}
}

// SetOnSend sets the callback when a message is submitted.
func (mt *MessageThread) SetOnSend(fn func(text string)) {
	mt.onSend = fn
}

// Update renders the conversation, oldest message first.
func (mt *MessageThread) Update(t model.Thread, onlineLabel string) {
	mt.chatName = t.Participant.Name
	title := " " + display(t.Participant.Name) + " "
	if t.Participant.Online {
		title = fmt.Sprintf(" %s [%s]● %s[-] ", display(t.Participant.Name), ui.ColorName(mt.theme.OnlineColor), onlineLabel)
	}
	mt.messages.SetTitle(title)

	mt.messages.Clear()
	for _, l := range t.Lines {
		_, _ = fmt.Fprint(mt.messages, mt.formatLine(l))
	}
	mt.messages.ScrollToEnd()
}

func (mt *MessageThread) formatLine(l model.Line) string {
	senderColor := ui.ColorName(mt.theme.TitleColor)
	tick := ""
	if l.Mine {
		senderColor = ui.ColorName(mt.theme.OwnMessageColor)
		tickColor := mt.theme.TickColor
		if l.Read {
			tickColor = mt.theme.TickReadColor
		}
		tick = fmt.Sprintf(" [%s]%s[-]", ui.ColorName(tickColor), ReadTick)
	}
	return fmt.Sprintf("[%s::b]%s[-:-:-] [%s]%s[-]%s\n%s\n\n",
		senderColor, display(l.Sender),
		ui.ColorName(mt.theme.MutedColor), display(l.Time), tick,
		display(l.Text))
}

// Messages returns the messages text view (for focus management).
func (mt *MessageThread) Messages() *tview.TextView {
	return mt.messages
}

// Composer returns the composer input field (for focus management).
func (mt *MessageThread) Composer() *tview.InputField {
	return mt.composer
}
