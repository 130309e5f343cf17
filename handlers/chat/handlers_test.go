package ChatHandler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	AIService "github.com/okanay/backend-chat-api/services/ai"
	"github.com/okanay/backend-chat-api/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStore keeps everything in memory and satisfies all three store
// interfaces.
type fakeStore struct {
	conversations map[uuid.UUID]types.Conversation
	messages      []types.ChatMessage
	summaries     []types.UserSummary
}

func newFakeStore() *fakeStore {
	return &fakeStore{conversations: map[uuid.UUID]types.Conversation{}}
}

func (f *fakeStore) CreateConversation(userID uuid.UUID, title string, language types.Language) (types.Conversation, error) {
	conversation := types.Conversation{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Language:  language,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.conversations[conversation.ID] = conversation
	return conversation, nil
}

func (f *fakeStore) SelectConversationsByUserID(userID uuid.UUID, language types.Language) ([]types.Conversation, error) {
	var result []types.Conversation
	for _, conversation := range f.conversations {
		if conversation.UserID == userID && (language == "" || conversation.Language == language) {
			result = append(result, conversation)
		}
	}
	return result, nil
}

func (f *fakeStore) SelectConversationByID(id uuid.UUID, userID uuid.UUID) (types.Conversation, error) {
	conversation, exists := f.conversations[id]
	if !exists || conversation.UserID != userID {
		return types.Conversation{}, sql.ErrNoRows
	}
	return conversation, nil
}

func (f *fakeStore) DeleteConversation(id uuid.UUID, userID uuid.UUID) (int64, error) {
	conversation, exists := f.conversations[id]
	if !exists || conversation.UserID != userID {
		return 0, sql.ErrNoRows
	}
	delete(f.conversations, id)

	var kept []types.ChatMessage
	var deleted int64
	for _, message := range f.messages {
		if message.ConversationID != nil && *message.ConversationID == id {
			deleted++
			continue
		}
		kept = append(kept, message)
	}
	f.messages = kept
	return deleted, nil
}

func (f *fakeStore) TouchConversation(id uuid.UUID) error { return nil }

func (f *fakeStore) CreateMessage(userID uuid.UUID, conversationID *uuid.UUID, content string, language types.Language, isUserMessage bool) (types.ChatMessage, error) {
	message := types.ChatMessage{
		ID:             uuid.New(),
		UserID:         userID,
		ConversationID: conversationID,
		Content:        content,
		Language:       language,
		IsUserMessage:  isUserMessage,
		CreatedAt:      time.Now(),
	}
	f.messages = append(f.messages, message)
	return message, nil
}

func (f *fakeStore) SelectMessagesByUserID(userID uuid.UUID, language types.Language, conversationID *uuid.UUID) ([]types.ChatMessage, error) {
	var result []types.ChatMessage
	for _, message := range f.messages {
		if message.UserID != userID {
			continue
		}
		if language != "" && message.Language != language {
			continue
		}
		if conversationID != nil && (message.ConversationID == nil || *message.ConversationID != *conversationID) {
			continue
		}
		result = append(result, message)
	}
	return result, nil
}

func (f *fakeStore) SelectMessagesByConversation(userID uuid.UUID, conversationID uuid.UUID) ([]types.ChatMessage, error) {
	id := conversationID
	return f.SelectMessagesByUserID(userID, "", &id)
}

func (f *fakeStore) SelectRecentMessages(userID uuid.UUID, limit int) ([]types.ChatMessage, error) {
	messages, _ := f.SelectMessagesByUserID(userID, "", nil)
	if len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	return messages, nil
}

func (f *fakeStore) CreateSummary(userID uuid.UUID, content string, language types.Language) (types.UserSummary, error) {
	summary := types.UserSummary{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   content,
		Language:  language,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.summaries = append(f.summaries, summary)
	return summary, nil
}

func (f *fakeStore) SelectSummariesByUserID(userID uuid.UUID, language types.Language) ([]types.UserSummary, error) {
	var result []types.UserSummary
	for _, summary := range f.summaries {
		if summary.UserID == userID && (language == "" || summary.Language == language) {
			result = append(result, summary)
		}
	}
	return result, nil
}

func (f *fakeStore) SelectSummaryByID(id uuid.UUID, userID uuid.UUID) (types.UserSummary, error) {
	for _, summary := range f.summaries {
		if summary.ID == id && summary.UserID == userID {
			return summary, nil
		}
	}
	return types.UserSummary{}, sql.ErrNoRows
}

// fakeGenerator scripts the model proxy.
type fakeGenerator struct {
	response   string
	summary    string
	err        error
	generCalls int
}

func (f *fakeGenerator) Generate(ctx context.Context, modelID string, history []types.ChatMessage, message string, language types.Language) (string, error) {
	f.generCalls++
	return f.response, f.err
}

func (f *fakeGenerator) Summarize(ctx context.Context, messages []types.ChatMessage, language types.Language) (string, error) {
	return f.summary, f.err
}

func testRouter(store *fakeStore, generator *fakeGenerator, userID uuid.UUID) *gin.Engine {
	handler := NewHandler(store, store, store, generator)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("language", types.LanguageEnglish)
	})
	router.POST("/chat/ai", handler.AIChat)
	router.POST("/chat/summary", handler.ChatSummary)
	router.DELETE("/conversations/:id", handler.DeleteConversation)
	router.GET("/conversations/:id", handler.GetConversation)
	return router
}

func jsonRequest(router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAIChatCreatesConversationAndStoresBothMessages(t *testing.T) {
	store := newFakeStore()
	generator := &fakeGenerator{response: "Go is a programming language."}
	userID := uuid.New()
	router := testRouter(store, generator, userID)

	w := jsonRequest(router, http.MethodPost, "/chat/ai", gin.H{"message": "what is Go?"})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "lamini-t5", body["model"])
	require.Len(t, store.messages, 2)
	assert.True(t, store.messages[0].IsUserMessage)
	assert.False(t, store.messages[1].IsUserMessage)
	assert.Equal(t, "Go is a programming language.", store.messages[1].Content)
	require.Len(t, store.conversations, 1)
	for _, conversation := range store.conversations {
		assert.Equal(t, "what is Go?", conversation.Title)
	}
}

func TestAIChatTruncatesLongTitles(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	router := testRouter(store, &fakeGenerator{response: "ok"}, userID)

	long := strings.Repeat("a", 80)
	w := jsonRequest(router, http.MethodPost, "/chat/ai", gin.H{"message": long})
	require.Equal(t, http.StatusOK, w.Code)

	for _, conversation := range store.conversations {
		assert.Equal(t, strings.Repeat("a", 50)+"...", conversation.Title)
	}
}

func TestAIChatFallsBackWhenModelUnavailable(t *testing.T) {
	store := newFakeStore()
	generator := &fakeGenerator{err: errors.New("connection refused")}
	userID := uuid.New()
	router := testRouter(store, generator, userID)

	w := jsonRequest(router, http.MethodPost, "/chat/ai", gin.H{"message": "hello there"})

	// Upstream failure must never surface as a server error
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.messages, 2)
	assert.NotEmpty(t, store.messages[1].Content)
	assert.False(t, store.messages[1].IsUserMessage)
}

func TestAIChatRejectsUnknownModel(t *testing.T) {
	store := newFakeStore()
	router := testRouter(store, &fakeGenerator{}, uuid.New())

	w := jsonRequest(router, http.MethodPost, "/chat/ai", gin.H{"message": "hi", "model": "gpt-9"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Available models")
	assert.Empty(t, store.messages)
}

func TestAIChatAnswersArabicGreetingLocally(t *testing.T) {
	store := newFakeStore()
	generator := &fakeGenerator{response: "should not be used"}
	userID := uuid.New()
	router := testRouter(store, generator, userID)

	w := jsonRequest(router, http.MethodPost, "/chat/ai", gin.H{"message": "من أنت؟", "language": "ar"})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Zero(t, generator.generCalls, "greeting should not reach the model")
	require.Len(t, store.messages, 2)
	assert.Contains(t, store.messages[1].Content, "مساعد ذكاء اصطناعي")
}

func TestDeleteConversationReportsDeletedMessages(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	router := testRouter(store, &fakeGenerator{}, userID)

	conversation, err := store.CreateConversation(userID, "test", types.LanguageEnglish)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err := store.CreateMessage(userID, &conversation.ID, "msg", types.LanguageEnglish, i%2 == 0)
		require.NoError(t, err)
	}

	w := jsonRequest(router, http.MethodDelete, "/conversations/"+conversation.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(4), body["deleted_messages_count"])
	assert.Empty(t, store.messages)

	// Deleting again is a 404
	again := jsonRequest(router, http.MethodDelete, "/conversations/"+conversation.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestDeleteConversationOfAnotherUserIsNotFound(t *testing.T) {
	store := newFakeStore()
	owner := uuid.New()
	conversation, err := store.CreateConversation(owner, "private", types.LanguageEnglish)
	require.NoError(t, err)

	router := testRouter(store, &fakeGenerator{}, uuid.New())
	w := jsonRequest(router, http.MethodDelete, "/conversations/"+conversation.ID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, store.conversations, 1, "the conversation must survive")
}

func TestChatSummaryFallsBackToBasicSummary(t *testing.T) {
	store := newFakeStore()
	generator := &fakeGenerator{err: errors.New("api down")}
	userID := uuid.New()
	router := testRouter(store, generator, userID)

	conversation, err := store.CreateConversation(userID, "test", types.LanguageEnglish)
	require.NoError(t, err)
	_, err = store.CreateMessage(userID, &conversation.ID, "hello", types.LanguageEnglish, true)
	require.NoError(t, err)
	_, err = store.CreateMessage(userID, &conversation.ID, "hi!", types.LanguageEnglish, false)
	require.NoError(t, err)

	w := jsonRequest(router, http.MethodPost, "/chat/summary", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	summary, _ := body["summary"].(string)
	assert.Contains(t, summary, "User Summary")
	assert.Contains(t, summary, "Sent 1 messages and received 1 AI responses.")
	require.Len(t, store.summaries, 1, "the fallback summary is persisted too")
	assert.Equal(t, AIService.SummaryStatsFor(store.messages).ConversationCount, int(body["conversation_count"].(float64)))
}

func TestChatSummaryWithoutHistory(t *testing.T) {
	store := newFakeStore()
	router := testRouter(store, &fakeGenerator{summary: "unused"}, uuid.New())

	w := jsonRequest(router, http.MethodPost, "/chat/summary", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No chat history available to summarize.")
	assert.Empty(t, store.summaries, "nothing to persist without history")
}

func TestChatSummaryUsesModelWhenAvailable(t *testing.T) {
	store := newFakeStore()
	generator := &fakeGenerator{summary: "User Interests:\n- Go programming"}
	userID := uuid.New()
	router := testRouter(store, generator, userID)

	conversation, err := store.CreateConversation(userID, "test", types.LanguageEnglish)
	require.NoError(t, err)
	_, err = store.CreateMessage(userID, &conversation.ID, "teach me Go", types.LanguageEnglish, true)
	require.NoError(t, err)

	w := jsonRequest(router, http.MethodPost, "/chat/summary", gin.H{"language": "en"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Go programming")
	require.Len(t, store.summaries, 1)
	assert.Equal(t, "User Interests:\n- Go programming", store.summaries[0].Content)
}
