package models

import "time"

// ChatMessage is an append-only message inside a conversation.
type ChatMessage struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversationId"`
	SenderID       int64     `json:"senderId"`
	Text           string    `json:"text"`
	Timestamp      time.Time `json:"timestamp"`
}

// ChatConversation is a thread between the participants recorded at creation.
// LastMessage and UnreadCount are derived at read time, never stored.
type ChatConversation struct {
	ID               int64        `json:"id"`
	ListingID        *int64       `json:"listingId,omitempty"`
	CreatedAt        time.Time    `json:"createdAt"`
	OtherParticipant *User        `json:"otherParticipant,omitempty"`
	LastMessage      *ChatMessage `json:"lastMessage,omitempty"`
	UnreadCount      int          `json:"unreadCount"`
}
