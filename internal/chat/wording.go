package chat

// Wording - protocol texts sent to clients. The historical server
// variants disagree on exact phrasing of acknowledgements and of the
// close sentinel, so the texts are configuration, not hardcoded.
type Wording struct {
	// NamePrompt - the very first server line, asks for a display name.
	NamePrompt string
	// Welcome - banner listing recognized commands, verb: display name.
	Welcome string
	// Entered - join acknowledgement, verb: room name.
	Entered string
	// Left - leave acknowledgement, verb: room name.
	Left string
	// ListHeader - first line of the room directory reply.
	ListHeader string
	// ListEntry - one directory line, verbs: room name, member count.
	ListEntry string
	// Sentinel - terminal line signaling the server closes the
	// connection. Clients must stop reading at this exact line.
	Sentinel string
}

// DefaultWording - texts of the original server variant.
func DefaultWording() Wording {
	return Wording{
		NamePrompt: "Enter your name:",
		Welcome:    "Welcome %s! You can join a room with JOIN <room_name>, leave with LEAVE, list existing chatrooms with LISTROOMS, or send messages.",
		Entered:    "Entered room: %s",
		Left:       "Left room: %s",
		ListHeader: "Available chat rooms:",
		ListEntry:  " - %s (%d users)",
		Sentinel:   "SERVER_CLOSE_CONNECTION",
	}
}

func (w Wording) complete() bool {
	return w.NamePrompt != "" &&
		w.Welcome != "" &&
		w.Entered != "" &&
		w.Left != "" &&
		w.ListHeader != "" &&
		w.ListEntry != "" &&
		w.Sentinel != ""
}
