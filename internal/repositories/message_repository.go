package repositories

import (
	"database/sql"

	"westudy/internal/domain/models"
)

type MessageRepository struct {
	DB *sql.DB
}

// ConversationsForUser lists the conversations the user participates in,
// with the other participant's profile embedded. Last message and unread
// count are filled in separately; recency sorting happens in the service.
func (r MessageRepository) ConversationsForUser(userID int64) ([]models.ChatConversation, error) {
	rows, err := r.DB.Query(`
		SELECT c.id, c.listing_id, c.created_at,
		       u.id, u.name, COALESCE(u.avatar_url, '')
		FROM conversations c
		JOIN conversation_participants cp ON cp.conversation_id = c.id AND cp.user_id = ?
		JOIN conversation_participants other ON other.conversation_id = c.id AND other.user_id <> ?
		JOIN users u ON u.id = other.user_id`, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ChatConversation{}
	for rows.Next() {
		var c models.ChatConversation
		var listingID sql.NullInt64
		var other models.User
		if err := rows.Scan(&c.ID, &listingID, &c.CreatedAt, &other.ID, &other.Name, &other.AvatarURL); err != nil {
			return nil, err
		}
		if listingID.Valid {
			c.ListingID = &listingID.Int64
		}
		c.OtherParticipant = &other
		out = append(out, c)
	}
	return out, rows.Err()
}

// LastMessage returns the newest message of a conversation, or nil when the
// thread is still empty.
func (r MessageRepository) LastMessage(conversationID int64) (*models.ChatMessage, error) {
	var m models.ChatMessage
	err := r.DB.QueryRow(`
		SELECT id, conversation_id, sender_id, content, created_at
		FROM messages WHERE conversation_id = ?
		ORDER BY created_at DESC, id DESC LIMIT 1`, conversationID).Scan(
		&m.ID, &m.ConversationID, &m.SenderID, &m.Text, &m.Timestamp,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UnreadCount counts messages from other senders after the reader's
// last_read_at mark.
func (r MessageRepository) UnreadCount(conversationID, readerID int64) (int, error) {
	var n int
	err := r.DB.QueryRow(`
		SELECT COUNT(*)
		FROM messages m
		JOIN conversation_participants cp
		  ON cp.conversation_id = m.conversation_id AND cp.user_id = ?
		WHERE m.conversation_id = ?
		  AND m.sender_id <> ?
		  AND (cp.last_read_at IS NULL OR m.created_at > cp.last_read_at)`,
		readerID, conversationID, readerID).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// IsParticipant gates all per-conversation operations.
func (r MessageRepository) IsParticipant(conversationID, userID int64) (bool, error) {
	var one int
	err := r.DB.QueryRow(`
		SELECT 1 FROM conversation_participants
		WHERE conversation_id = ? AND user_id = ? LIMIT 1`, conversationID, userID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Messages returns the full thread in chronological order.
func (r MessageRepository) Messages(conversationID int64) ([]models.ChatMessage, error) {
	rows, err := r.DB.Query(`
		SELECT id, conversation_id, sender_id, content, created_at
		FROM messages WHERE conversation_id = ?
		ORDER BY created_at ASC, id ASC`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ChatMessage{}
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Text, &m.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// InsertMessage appends to the thread. Conversation recency is derived from
// the message table at read time, so no pointer update happens here.
func (r MessageRepository) InsertMessage(conversationID, senderID int64, content string) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO messages (conversation_id, sender_id, content)
		VALUES (?, ?, ?)`, conversationID, senderID, content)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// MarkRead resets the reader's unread counter for the conversation.
func (r MessageRepository) MarkRead(conversationID, userID int64) error {
	_, err := r.DB.Exec(`
		UPDATE conversation_participants SET last_read_at = NOW()
		WHERE conversation_id = ? AND user_id = ?`, conversationID, userID)
	return err
}

// FindConversation locates an existing thread between two users, optionally
// scoped to a listing, so duplicate threads are not created.
func (r MessageRepository) FindConversation(userA, userB int64, listingID *int64) (int64, error) {
	query := `
		SELECT c.id
		FROM conversations c
		JOIN conversation_participants a ON a.conversation_id = c.id AND a.user_id = ?
		JOIN conversation_participants b ON b.conversation_id = c.id AND b.user_id = ?`
	args := []any{userA, userB}
	if listingID != nil {
		query += ` WHERE c.listing_id = ?`
		args = append(args, *listingID)
	} else {
		query += ` WHERE c.listing_id IS NULL`
	}
	query += ` LIMIT 1`

	var id int64
	err := r.DB.QueryRow(query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CreateConversation creates the thread and records both participants.
func (r MessageRepository) CreateConversation(userA, userB int64, listingID *int64) (int64, error) {
	var lid any
	if listingID != nil {
		lid = *listingID
	}
	res, err := r.DB.Exec(`INSERT INTO conversations (listing_id) VALUES (?)`, lid)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	for _, uid := range []int64{userA, userB} {
		if _, err := r.DB.Exec(`
			INSERT INTO conversation_participants (conversation_id, user_id)
			VALUES (?, ?)`, id, uid); err != nil {
			return 0, err
		}
	}
	return id, nil
}
