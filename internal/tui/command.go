package tui

import "strings"

// Command is a parsed ':' command line.
type Command struct {
	Name string
	Args string
}

// ParseCommand parses a command string (without the leading ':').
func ParseCommand(input string) Command {
	name, args, _ := strings.Cut(strings.TrimSpace(input), " ")
	return Command{Name: strings.ToLower(name), Args: strings.TrimSpace(args)}
}
