package cli

import (
	"os/user"
	"strings"

	"github.com/mcoot/blackjack/internal/model"
)

// lookupPlayerName returns the OS account's real name, falling back to the
// login name and then to model.DefaultPlayerName
func lookupPlayerName() string {
	u, err := user.Current()
	if err != nil {
		return model.DefaultPlayerName
	}
	return playerNameFor(u)
}

func playerNameFor(u *user.User) string {
	// GECOS fields carry extra comma separated entries after the full name
	if name, _, _ := strings.Cut(u.Name, ","); strings.TrimSpace(name) != "" {
		return strings.TrimSpace(name)
	}
	if strings.TrimSpace(u.Username) != "" {
		return strings.TrimSpace(u.Username)
	}
	return model.DefaultPlayerName
}
