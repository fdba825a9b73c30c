package models

// DefaultPosts are the fixed stations a guard can be assigned to.
var DefaultPosts = []string{
	"Lobby Standing",
	"Lobby Desk",
	"Desk 15",
	"Rover 4-7",
	"Rover 4-5",
	"Rover 6-7",
	"Rover 15-19",
	"Rover2 15-19",
	"Rover 20-23",
	"Rover 15-23",
	"Event 1",
	"Event 2",
	"Event 3",
}

// DefaultPatrols are the named patrol rounds of the shift.
var DefaultPatrols = []string{
	"Foot-7",
	"Tech-7",
	"RL-9",
	"Foot-11",
	"Tech-11",
	"RL-13",
	"Foot-15",
	"Tech-15",
	"RL-16:30",
	"Tech-17",
	"Foot-17",
	"RL-19:30",
	"Tech-21",
	"Foot-21",
	"Sharona Round",
}

// KnownPost reports whether name is one of the fixed posts.
func KnownPost(name string) bool {
	for _, p := range DefaultPosts {
		if p == name {
			return true
		}
	}
	return false
}

// KnownPatrol reports whether name is one of the named patrols.
func KnownPatrol(name string) bool {
	for _, p := range DefaultPatrols {
		if p == name {
			return true
		}
	}
	return false
}
