package models

// Address identifies a message target across channel kinds. Adapters read
// only the fields their channel understands; empty fields mean the target is
// not reachable on that channel.
type Address struct {
	Email          string
	Phone          string
	TelegramUserID int64
	Username       string
	DisplayName    string
}
