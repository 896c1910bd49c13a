package domain

// ConversationDigest is a cheap summary of a guest's or host's inbox, used
// to detect that something changed. Consumers re-fetch the full data
// themselves; the digest is never authoritative.
type ConversationDigest struct {
	Conversations   int    `json:"conversations"`
	Unread          int    `json:"unread"`
	LatestMessageID string `json:"latestMessageId"`
}
