package api

import (
	"strings"

	"assetops/args"
	"assetops/registry"
)

// ParseInput takes a full input string like:
// "alerts --severity=high --status=active"
// It returns the matching Command and parsed Args.
func ParseInput(input string) (registry.Command, args.Args, error) {
	input = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), ":"))
	if input == "" {
		return nil, args.Args{}, ErrEmptyCommand
	}

	parts := tokenize(input)

	// Find longest matching command name
	var cmd registry.Command
	var ok bool
	for i := len(parts); i > 0; i-- {
		tryName := strings.ToLower(strings.Join(parts[:i], " "))
		if c, found := registry.Get(tryName); found {
			cmd = c
			ok = true
			parts = parts[i:] // remaining = args + flags
			break
		}
	}

	if !ok {
		return nil, args.Args{}, ErrUnknownCommand(input)
	}

	parsed := parseArgs(parts)
	return cmd, parsed, nil
}

// tokenize splits on blanks, keeping double-quoted runs together:
// `find "fork lift"` gives [find, fork lift]. An unclosed quote runs to
// the end of the input.
func tokenize(input string) []string {
	var (
		out    []string
		cur    strings.Builder
		quoted bool
		inTok  bool
	)
	for _, r := range input {
		switch {
		case r == '"':
			quoted = !quoted
			inTok = true
		case !quoted && (r == ' ' || r == '\t'):
			if inTok {
				out = append(out, cur.String())
				cur.Reset()
				inTok = false
			}
		default:
			cur.WriteRune(r)
			inTok = true
		}
	}
	if inTok {
		out = append(out, cur.String())
	}
	return out
}

// parseArgs separates flags (--flag or --flag=value) from positionals.
func parseArgs(parts []string) args.Args {
	args := args.Args{
		Flags:       make(map[string]string),
		Positionals: []string{},
	}

	for _, p := range parts {
		if strings.HasPrefix(p, "--") {
			p = strings.TrimPrefix(p, "--")
			if eq := strings.Index(p, "="); eq != -1 {
				args.Flags[strings.ToLower(p[:eq])] = p[eq+1:]
			} else {
				args.Flags[strings.ToLower(p)] = "true"
			}
		} else {
			args.Positionals = append(args.Positionals, p)
		}
	}

	return args
}
