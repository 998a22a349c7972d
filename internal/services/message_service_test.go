package services

import (
	"testing"
	"time"

	"westudy/internal/domain"
	"westudy/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSendRejectsWhitespaceBeforeAnyWrite(t *testing.T) {
	db, mock := newMock(t)
	svc := MessageService{MessageRepo: repositories.MessageRepository{DB: db}, DB: db}
	session := domain.Session{UserID: 1}

	for _, content := range []string{"", "   ", "\n\t "} {
		if _, err := svc.Send(session, 3, content); !domain.IsValidation(err) {
			t.Fatalf("conteúdo %q deveria falhar na validação, veio %v", content, err)
		}
	}
	// nenhuma expectativa registrada: qualquer toque no banco falharia
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("validação não deveria tocar o banco: %v", err)
	}
}

func TestSendTrimsAndStoresContent(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("SELECT 1 FROM conversation_participants").WithArgs(int64(3), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec("INSERT INTO messages").WithArgs(int64(3), int64(1), "olá, o quarto ainda está disponível?").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectQuery("FROM messages WHERE conversation_id").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "content", "created_at"}).
			AddRow(10, 3, 1, "olá, o quarto ainda está disponível?", time.Now()))

	svc := MessageService{MessageRepo: repositories.MessageRepository{DB: db}, DB: db}
	msg, err := svc.Send(domain.Session{UserID: 1}, 3, "  olá, o quarto ainda está disponível?  ")
	if err != nil {
		t.Fatalf("envio deveria passar: %v", err)
	}
	if msg.ID != 10 || msg.Text != "olá, o quarto ainda está disponível?" {
		t.Fatalf("mensagem inesperada: %+v", msg)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSendNonParticipantForbidden(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("SELECT 1 FROM conversation_participants").WithArgs(int64(3), int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	svc := MessageService{MessageRepo: repositories.MessageRepository{DB: db}, DB: db}
	if _, err := svc.Send(domain.Session{UserID: 99}, 3, "oi"); !domain.IsForbidden(err) {
		t.Fatalf("não-participante deveria ser barrado, veio %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestThreadMarksRead(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("SELECT 1 FROM conversation_participants").WithArgs(int64(3), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("FROM messages WHERE conversation_id").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "content", "created_at"}).
			AddRow(1, 3, 2, "oi", time.Now().Add(-time.Hour)).
			AddRow(2, 3, 1, "olá!", time.Now()))
	mock.ExpectExec("UPDATE conversation_participants SET last_read_at").WithArgs(int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := MessageService{MessageRepo: repositories.MessageRepository{DB: db}, DB: db}
	msgs, err := svc.Thread(domain.Session{UserID: 1}, 3)
	if err != nil {
		t.Fatalf("leitura do tópico deveria passar: %v", err)
	}
	if len(msgs) != 2 || msgs[0].ID != 1 {
		t.Fatalf("mensagens fora de ordem cronológica: %+v", msgs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConversationsSortByLastMessageRecency(t *testing.T) {
	db, mock := newMock(t)

	now := time.Now()
	mock.ExpectQuery("FROM conversations c").WithArgs(int64(1), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "listing_id", "created_at", "id", "name", "avatar_url"}).
			AddRow(10, nil, now.Add(-48*time.Hour), 2, "Ana", "").
			AddRow(20, 7, now.Add(-24*time.Hour), 3, "Bruno", "").
			AddRow(30, nil, now.Add(-72*time.Hour), 4, "Clara", ""))

	// conversa 10: última mensagem antiga, nada não lido
	mock.ExpectQuery("ORDER BY created_at DESC").WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "content", "created_at"}).
			AddRow(1, 10, 2, "mensagem antiga", now.Add(-40*time.Hour)))
	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(1), int64(10), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	// conversa 20: última mensagem recente, 2 não lidas
	mock.ExpectQuery("ORDER BY created_at DESC").WithArgs(int64(20)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "content", "created_at"}).
			AddRow(2, 20, 3, "mensagem recente", now.Add(-time.Hour)))
	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(1), int64(20), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	// conversa 30: tópico ainda vazio
	mock.ExpectQuery("ORDER BY created_at DESC").WithArgs(int64(30)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "content", "created_at"}))
	mock.ExpectQuery("SELECT COUNT").WithArgs(int64(1), int64(30), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	svc := MessageService{MessageRepo: repositories.MessageRepository{DB: db}, DB: db}
	convos, err := svc.Conversations(domain.Session{UserID: 1})
	if err != nil {
		t.Fatalf("listagem deveria passar: %v", err)
	}
	if len(convos) != 3 {
		t.Fatalf("esperava 3 conversas, veio %d", len(convos))
	}
	if convos[0].ID != 20 || convos[1].ID != 10 || convos[2].ID != 30 {
		t.Fatalf("ordem por recência errada: %d %d %d", convos[0].ID, convos[1].ID, convos[2].ID)
	}
	if convos[0].UnreadCount != 2 {
		t.Fatalf("contador de não lidas esperado 2, veio %d", convos[0].UnreadCount)
	}
	if convos[2].LastMessage != nil {
		t.Fatalf("tópico vazio não deveria ter última mensagem")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStartConversationReusesExistingThread(t *testing.T) {
	db, mock := newMock(t)

	listingID := int64(7)
	mock.ExpectQuery("FROM conversations c").WithArgs(int64(1), int64(2), listingID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(55))
	mock.ExpectExec("INSERT INTO messages").WithArgs(int64(55), int64(1), "tenho interesse no quarto").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectQuery("ORDER BY created_at DESC").WithArgs(int64(55)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "conversation_id", "sender_id", "content", "created_at"}).
			AddRow(9, 55, 1, "tenho interesse no quarto", time.Now()))

	svc := MessageService{MessageRepo: repositories.MessageRepository{DB: db}, DB: db}
	convo, err := svc.StartConversation(domain.Session{UserID: 1}, 2, &listingID, "tenho interesse no quarto")
	if err != nil {
		t.Fatalf("início de conversa deveria passar: %v", err)
	}
	if convo.ID != 55 {
		t.Fatalf("deveria reusar a conversa 55, veio %d", convo.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStartConversationWithSelfRejected(t *testing.T) {
	db, _ := newMock(t)
	svc := MessageService{MessageRepo: repositories.MessageRepository{DB: db}, DB: db}
	if _, err := svc.StartConversation(domain.Session{UserID: 1}, 1, nil, "oi"); !domain.IsValidation(err) {
		t.Fatalf("conversa consigo mesmo deveria falhar, veio %v", err)
	}
}
