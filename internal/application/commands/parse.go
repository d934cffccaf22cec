package commands

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"termnotes/internal/application"
	"termnotes/internal/domain"
)

// countedRegex matches the verbs that accept a repeat count prefix. The
// prefix may not contain letters so that unrelated words fall through to
// UnknownCommand rather than a count error.
var countedRegex = regexp.MustCompile(`^([^a-zA-Z?!]*)(nn|ntodo|del)$`)

type parseFunc func(verb string, args []string) (Command, error)

var lookup = map[string]parseFunc{
	"rnm":             noArgs(func() Command { return &RenameCommand{} }),
	"mm":              noArgs(func() Command { return &MainMenuCommand{} }),
	"?":               noArgs(func() Command { return &HelpCommand{} }),
	"help":            noArgs(func() Command { return &HelpCommand{} }),
	"save":            noArgs(func() Command { return &SaveCommand{} }),
	"w":               noArgs(func() Command { return &SaveCommand{} }),
	"wq":              noArgs(func() Command { return &SaveCommand{ThenQuit: true} }),
	"x":               noArgs(func() Command { return &SaveCommand{ThenQuit: true} }),
	"backup":          noArgs(func() Command { return &BackupCommand{} }),
	"backups":         noArgs(func() Command { return &BackupsCommand{} }),
	"export-md":       noArgs(func() Command { return &ExportCommand{Format: domain.FormatMarkdown} }),
	"export-markdown": noArgs(func() Command { return &ExportCommand{Format: domain.FormatMarkdown} }),
	"export-csv":      noArgs(func() Command { return &ExportCommand{Format: domain.FormatCSV} }),
	"q":               noArgs(func() Command { return &QuitCommand{} }),
	"quit":            noArgs(func() Command { return &QuitCommand{} }),
	"q!":              noArgs(func() Command { return &QuitCommand{Force: true} }),
	"delm":            noArgs(func() Command { return &DeleteMarkedCommand{} }),
	"yank":            noArgs(func() Command { return &YankCommand{} }),
	"y":               noArgs(func() Command { return &YankCommand{} }),
	"edit":            noArgs(func() Command { return &ExternalEditCommand{} }),
	"e":               noArgs(func() Command { return &ExternalEditCommand{} }),
	"body":            noArgs(func() Command { return &BodyCommand{} }),
	"b":               noArgs(func() Command { return &BodyCommand{} }),
	"tag":             parseTag(false),
	"untag":           parseTag(true),
	"sev":             parseSeverity,
	"due":             parseDue,
}

// Parse turns finalized command text into a Command. Errors satisfy
// errors.Is against application.ErrParse, ErrInvalidCount or
// ErrUnknownCommand.
func Parse(input string) (Command, error) {
	text := strings.TrimSpace(input)
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, &application.UnknownCommandError{Input: text}
	}
	verb, args := fields[0], fields[1:]

	if m := countedRegex.FindStringSubmatch(verb); m != nil {
		if len(args) > 0 {
			return nil, &application.ParseError{Input: text, Reason: m[2] + " takes no arguments"}
		}
		count, err := parseCount(text, m[1])
		if err != nil {
			return nil, err
		}
		switch m[2] {
		case "nn":
			return &CreateCommand{Kind: domain.KindNote, Count: count}, nil
		case "ntodo":
			return &CreateCommand{Kind: domain.KindTodo, Count: count}, nil
		default:
			return &DeleteCommand{Count: count}, nil
		}
	}

	fn, ok := lookup[verb]
	if !ok {
		return nil, &application.UnknownCommandError{Input: text}
	}
	cmd, err := fn(verb, args)
	if err != nil {
		var perr *application.ParseError
		if errors.As(err, &perr) {
			perr.Input = text
		}
		return nil, err
	}
	return cmd, nil
}

// parseCount interprets the digits before a counted verb. An empty prefix
// means 1.
func parseCount(input, prefix string) (int, error) {
	if prefix == "" {
		return 1, nil
	}
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return 0, &application.ParseError{Input: input, Reason: "count must be a positive integer"}
		}
	}
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, &application.ParseError{Input: input, Reason: "count is out of range"}
	}
	if n <= 0 {
		return 0, &application.CountError{Count: n, Max: application.MaxCount}
	}
	return n, nil
}

func noArgs(build func() Command) parseFunc {
	return func(verb string, args []string) (Command, error) {
		if len(args) > 0 {
			return nil, &application.ParseError{Reason: verb + " takes no arguments"}
		}
		return build(), nil
	}
}

func parseSeverity(verb string, args []string) (Command, error) {
	if len(args) != 1 {
		return nil, &application.ParseError{Reason: "usage: sev <info|low|medium|high|critical>"}
	}
	sev, err := domain.ParseSeverity(args[0])
	if err != nil {
		return nil, &application.ParseError{Reason: err.Error()}
	}
	return &SeverityCommand{Severity: sev}, nil
}

func parseDue(verb string, args []string) (Command, error) {
	if len(args) != 1 {
		return nil, &application.ParseError{Reason: "usage: due <YYYY-MM-DD|none>"}
	}
	switch strings.ToLower(args[0]) {
	case "none", "clear", "-":
		return &DueCommand{}, nil
	}
	d, err := domain.ParseDate(args[0])
	if err != nil {
		return nil, &application.ParseError{Reason: err.Error()}
	}
	return &DueCommand{Due: &d}, nil
}

func parseTag(remove bool) parseFunc {
	return func(verb string, args []string) (Command, error) {
		if len(args) != 1 {
			return nil, &application.ParseError{Reason: "usage: " + verb + " <name>"}
		}
		return &TagCommand{Tag: args[0], Remove: remove}, nil
	}
}
