package models

// RenderedMessage is the channel-agnostic output of template rendering,
// handed to the dispatcher.
type RenderedMessage struct {
	Subject string
	Body    string
	HTML    bool
}
