package services

import (
	"database/sql"
	"sort"
	"strings"

	intconfig "westudy/internal/config"
	"westudy/internal/domain"
	"westudy/internal/domain/models"
	"westudy/internal/repositories"
)

type MessageService struct {
	MessageRepo repositories.MessageRepository
	DB          *sql.DB
}

func (s MessageService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s MessageService) messages() repositories.MessageRepository {
	if s.MessageRepo.DB != nil {
		return s.MessageRepo
	}
	return repositories.MessageRepository{DB: s.db()}
}

// Conversations lists the caller's threads sorted by last-message recency.
// Recency is derived from the message table at read time; threads without
// messages sort last.
func (s MessageService) Conversations(session domain.Session) ([]models.ChatConversation, error) {
	repo := s.messages()
	convos, err := repo.ConversationsForUser(session.UserID)
	if err != nil {
		return nil, domain.InternalError{Msg: "erro ao buscar conversas", Err: err}
	}

	for i := range convos {
		last, err := repo.LastMessage(convos[i].ID)
		if err != nil {
			return nil, domain.InternalError{Msg: "erro ao buscar conversas", Err: err}
		}
		convos[i].LastMessage = last

		unread, err := repo.UnreadCount(convos[i].ID, session.UserID)
		if err != nil {
			return nil, domain.InternalError{Msg: "erro ao buscar conversas", Err: err}
		}
		convos[i].UnreadCount = unread
	}

	sort.SliceStable(convos, func(i, j int) bool {
		a, b := convos[i].LastMessage, convos[j].LastMessage
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Timestamp.After(b.Timestamp)
	})
	return convos, nil
}

// Thread returns the chronological messages of a conversation the caller
// participates in, and resets the caller's unread counter.
func (s MessageService) Thread(session domain.Session, conversationID int64) ([]models.ChatMessage, error) {
	if conversationID <= 0 {
		return nil, domain.ValidationError{Field: "id", Msg: "id da conversa é obrigatório"}
	}
	repo := s.messages()
	ok, err := repo.IsParticipant(conversationID, session.UserID)
	if err != nil {
		return nil, domain.InternalError{Msg: "erro ao buscar mensagens", Err: err}
	}
	if !ok {
		return nil, domain.ForbiddenError{Msg: "acesso negado a esta conversa"}
	}

	msgs, err := repo.Messages(conversationID)
	if err != nil {
		return nil, domain.InternalError{Msg: "erro ao buscar mensagens", Err: err}
	}
	if err := repo.MarkRead(conversationID, session.UserID); err != nil {
		return nil, domain.InternalError{Msg: "erro ao buscar mensagens", Err: err}
	}
	return msgs, nil
}

// Send validates the content before any write and appends it to the thread.
func (s MessageService) Send(session domain.Session, conversationID int64, content string) (models.ChatMessage, error) {
	if conversationID <= 0 {
		return models.ChatMessage{}, domain.ValidationError{Field: "id", Msg: "id da conversa é obrigatório"}
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return models.ChatMessage{}, domain.ValidationError{Field: "content", Msg: "o conteúdo da mensagem não pode ser vazio"}
	}

	repo := s.messages()
	ok, err := repo.IsParticipant(conversationID, session.UserID)
	if err != nil {
		return models.ChatMessage{}, domain.InternalError{Msg: "erro ao enviar mensagem", Err: err}
	}
	if !ok {
		return models.ChatMessage{}, domain.ForbiddenError{Msg: "acesso negado para enviar mensagem nesta conversa"}
	}

	id, err := repo.InsertMessage(conversationID, session.UserID, content)
	if err != nil {
		return models.ChatMessage{}, domain.InternalError{Msg: "erro ao enviar mensagem", Err: err}
	}

	msg, err := repo.LastMessage(conversationID)
	if err != nil || msg == nil || msg.ID != id {
		// fall back to the data we already know
		return models.ChatMessage{ID: id, ConversationID: conversationID, SenderID: session.UserID, Text: content}, nil
	}
	return *msg, nil
}

// StartConversation creates (or reuses) a thread with the recipient and sends
// the opening message.
func (s MessageService) StartConversation(session domain.Session, recipientID int64, listingID *int64, content string) (models.ChatConversation, error) {
	if recipientID <= 0 {
		return models.ChatConversation{}, domain.ValidationError{Field: "recipientId", Msg: "destinatário inválido"}
	}
	if recipientID == session.UserID {
		return models.ChatConversation{}, domain.ValidationError{Field: "recipientId", Msg: "não é possível conversar consigo mesmo"}
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return models.ChatConversation{}, domain.ValidationError{Field: "content", Msg: "o conteúdo da mensagem não pode ser vazio"}
	}

	repo := s.messages()
	id, err := repo.FindConversation(session.UserID, recipientID, listingID)
	if err != nil {
		return models.ChatConversation{}, domain.InternalError{Msg: "erro ao criar conversa", Err: err}
	}
	if id == 0 {
		id, err = repo.CreateConversation(session.UserID, recipientID, listingID)
		if err != nil {
			return models.ChatConversation{}, domain.InternalError{Msg: "erro ao criar conversa", Err: err}
		}
	}

	if _, err := repo.InsertMessage(id, session.UserID, content); err != nil {
		return models.ChatConversation{}, domain.InternalError{Msg: "erro ao enviar mensagem", Err: err}
	}

	convo := models.ChatConversation{ID: id, ListingID: listingID}
	if last, err := repo.LastMessage(id); err == nil {
		convo.LastMessage = last
	}
	return convo, nil
}
