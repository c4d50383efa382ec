package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Validation error map keys.
const (
	FieldTeamName     = "teamName"
	FieldManagerName  = "managerName"
	FieldManagerPhone = "managerPhone"
	FieldPlayers      = "players"
	FieldRoster       = "roster"
)

var (
	// Indian mobile number: exactly 10 digits, first digit 6-9.
	phonePattern  = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	jerseyPattern = regexp.MustCompile(`^[0-9]+$`)
)

// Validate checks a draft for submission and returns a map of field key to
// human-readable message. An empty map means the draft is valid.
//
// All team-level fields are always checked; the per-player loop stops at the
// first violation so only one roster message is reported at a time.
func Validate(d *Draft) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(d.TeamName) == "" {
		errs[FieldTeamName] = "Team name is required"
	}
	if strings.TrimSpace(d.ManagerName) == "" {
		errs[FieldManagerName] = "Manager name is required"
	}

	phone := strings.TrimSpace(d.ManagerPhone)
	switch {
	case phone == "":
		errs[FieldManagerPhone] = "Manager phone is required"
	case !phonePattern.MatchString(phone):
		errs[FieldManagerPhone] = "Enter a valid 10-digit mobile number"
	}

	named := d.NamedEntries()
	if len(named) != RequiredPlayers {
		errs[FieldPlayers] = fmt.Sprintf("Exactly %d players are required", RequiredPlayers)
	}

	seen := make(map[string]struct{}, len(named))
	for i, e := range named {
		if strings.TrimSpace(e.Position) == "" {
			errs[FieldRoster] = fmt.Sprintf("Player %d: position is required", i+1)
			break
		}
		if !jerseyPattern.MatchString(e.Jersey) {
			errs[FieldRoster] = fmt.Sprintf("Player %d: jersey number must be digits", i+1)
			break
		}
		if _, dup := seen[e.Jersey]; dup {
			errs[FieldRoster] = fmt.Sprintf("Player %d: duplicate jersey number %s", i+1, e.Jersey)
			break
		}
		seen[e.Jersey] = struct{}{}
	}

	return errs
}
