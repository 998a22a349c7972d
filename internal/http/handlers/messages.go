package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/messages/conversations
func GetConversations(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	convos, err := messageSvc.Conversations(session)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, convos)
}

type startConversationRequest struct {
	RecipientID int64  `json:"recipientId"`
	ListingID   *int64 `json:"listingId"`
	Content     string `json:"content"`
}

// POST /api/messages/conversations
func StartConversation(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	var req startConversationRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	convo, err := messageSvc.StartConversation(session, req.RecipientID, req.ListingID, req.Content)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, convo)
}

// GET /api/messages/conversations/:id
func GetMessages(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	msgs, err := messageSvc.Thread(session, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// POST /api/messages/conversations/:id
func SendMessage(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req sendMessageRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	msg, err := messageSvc.Send(session, id, req.Content)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}
