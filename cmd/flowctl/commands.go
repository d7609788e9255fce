package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/matheus3301/flowchat/internal/identity"
	"github.com/matheus3301/flowchat/internal/prefs"
	"github.com/matheus3301/flowchat/internal/state"
	"github.com/olekukonko/tablewriter"
)

var (
	errUsage       = errors.New("usage")
	errNotSignedIn = errors.New("not signed in")
)

type cli struct {
	state *state.App
	out   io.Writer
	json  bool
}

// chatRow is the listing shape of one chat.
type chatRow struct {
	ID          string `json:"id"`
	With        string `json:"with"`
	LastMessage string `json:"lastMessage"`
	Time        string `json:"time"`
	Unread      int    `json:"unread"`
}

func (c *cli) run(args []string) error {
	switch args[0] {
	case "whoami":
		return c.whoami()
	case "login":
		return c.login(args[1:])
	case "logout":
		return c.logout()
	case "theme":
		return c.theme(args[1:])
	case "chats":
		term := ""
		if len(args) > 1 {
			term = args[1]
		}
		return c.chats(term)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func (c *cli) whoami() error {
	u, ok := c.state.CurrentUser()
	if !ok {
		return errNotSignedIn
	}
	if c.json {
		return c.outputJSON(u)
	}
	c.printUser(u)
	return nil
}

func (c *cli) login(args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	token := fs.String("token", "", "identity provider token")
	name := fs.String("name", "", "display name (register)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	var creds identity.Credentials
	switch {
	case *token != "":
		creds = identity.AssertionCredentials{Token: *token}
	case fs.NArg() == 2:
		creds = identity.FormCredentials{Email: fs.Arg(0), Password: fs.Arg(1), Name: *name}
	default:
		return fmt.Errorf("%w: login needs <email> <password> or --token", errUsage)
	}

	u, err := c.state.Login(creds)
	if err != nil {
		return err
	}
	if c.json {
		return c.outputJSON(u)
	}
	_, _ = fmt.Fprintf(c.out, "Signed in as %s <%s>\n", u.Name, u.Email)
	return nil
}

func (c *cli) logout() error {
	u, ok := c.state.CurrentUser()
	if err := c.state.Logout(); err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(c.out, "Not signed in")
		return nil
	}
	_, _ = fmt.Fprintf(c.out, "Signed out %s\n", u.Email)
	return nil
}

func (c *cli) theme(args []string) error {
	if len(args) > 0 {
		t, err := prefs.ParseTheme(args[0])
		if err != nil {
			return err
		}
		if err := c.state.SetTheme(t); err != nil {
			return err
		}
	}
	if c.json {
		return c.outputJSON(map[string]string{"theme": string(c.state.Theme())})
	}
	_, _ = fmt.Fprintln(c.out, c.state.Theme())
	return nil
}

func (c *cli) chats(term string) error {
	u, ok := c.state.CurrentUser()
	if !ok {
		return errNotSignedIn
	}
	s, ok := c.state.Chats()
	if !ok {
		return errNotSignedIn
	}

	rows := []chatRow{}
	for _, ch := range s.Filter(u.ID, term) {
		p, ok := s.Participant(ch, u.ID)
		if !ok {
			continue
		}
		row := chatRow{ID: ch.ID, With: p.Name, Unread: ch.UnreadCount}
		if last, ok := ch.LastMessage(); ok {
			row.LastMessage = last.Text
			row.Time = last.Timestamp
		}
		rows = append(rows, row)
	}

	if c.json {
		return c.outputJSON(rows)
	}

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Chat", "With", "Last Message", "Time", "Unread"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for _, r := range rows {
		table.Append([]string{r.ID, r.With, r.LastMessage, r.Time, fmt.Sprint(r.Unread)})
	}
	table.Render()
	return nil
}

func (c *cli) printUser(u identity.User) {
	status := u.Status
	if status == "" {
		status = "-"
	}
	_, _ = fmt.Fprintf(c.out, "ID:     %s\n", u.ID)
	_, _ = fmt.Fprintf(c.out, "Name:   %s\n", u.Name)
	_, _ = fmt.Fprintf(c.out, "Email:  %s\n", u.Email)
	_, _ = fmt.Fprintf(c.out, "Status: %s\n", status)
	_, _ = fmt.Fprintf(c.out, "Online: %v\n", u.Online)
}

func (c *cli) outputJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
