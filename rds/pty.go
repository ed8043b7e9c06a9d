package rds

import (
	"fmt"
	"strings"
)

// PTY is the programme type according to [IEC 62106] annex F.
type PTY byte

// PTYNames contains the names of all programme types used in Europe (RDS), according to [IEC 62106] table F.1.
var PTYNames = [32]string{
	"No programme type",
	"News",
	"Current Affairs",
	"Information",
	"Sport",
	"Education",
	"Drama",
	"Culture",
	"Science",
	"Varied",
	"Pop Music",
	"Rock Music",
	"Easy Listening",
	"Light Classical",
	"Serious Classical",
	"Other Music",
	"Weather",
	"Finance",
	"Children's Programmes",
	"Social Affairs",
	"Religion",
	"Phone-In",
	"Travel",
	"Leisure",
	"Jazz Music",
	"Country Music",
	"National Music",
	"Oldies Music",
	"Folk Music",
	"Documentary",
	"Alarm Test",
	"Alarm",
}

// PTYByName returns the programme type with the given name, ignoring case.
func PTYByName(name string) (PTY, bool) {
	for i, ptyName := range PTYNames {
		if strings.EqualFold(ptyName, name) {
			return PTY(i), true
		}
	}
	return 0, false
}

func (p PTY) Valid() bool {
	return p <= MaxPTY
}

func (p PTY) String() string {
	if !p.Valid() {
		return fmt.Sprintf("pty(%d)", byte(p))
	}
	return PTYNames[p]
}
