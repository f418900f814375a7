package api

// ChatSession is one conversation as the server owns it. Every mutating
// operation returns the full updated session; the client never patches one.
type ChatSession struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Messages []*Exchange `json:"messages"`
}

// Exchange is one user utterance and the corresponding reply, oldest first
// within a session.
type Exchange struct {
	User    string       `json:"user"`
	Bot     string       `json:"bot"`
	Sources []*SourceRef `json:"sources,omitempty"`
}

// SourceRef cites a page of the uploaded document supporting a grounded reply.
type SourceRef struct {
	Page   int    `json:"page"`
	Source string `json:"source"`
}

// LastUserMessage returns the most recent user utterance, or "" for an empty
// session. The sidebar uses it as a preview line.
func (s *ChatSession) LastUserMessage() string {
	if len(s.Messages) == 0 {
		return ""
	}
	return s.Messages[len(s.Messages)-1].User
}
