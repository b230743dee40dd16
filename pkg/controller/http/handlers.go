package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/inventry-dev/inventry/pkg/domain/model/auth"
	"github.com/inventry-dev/inventry/pkg/domain/types"
	"github.com/inventry-dev/inventry/pkg/usecase"
	"github.com/inventry-dev/inventry/pkg/utils/async"
	"github.com/inventry-dev/inventry/pkg/utils/errutil"
	"github.com/inventry-dev/inventry/pkg/utils/logging"
)

// envelope is the JSON response shape shared by all chat endpoints
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func respondOK(ctx context.Context, w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		logging.From(ctx).Error("failed to encode response", "error", err.Error())
	}
}

func respondError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: false, Message: message}); err != nil {
		logging.From(ctx).Error("failed to encode error response", "error", err.Error())
	}
}

// respondUseCaseError maps use case sentinels onto HTTP statuses
func respondUseCaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrChatNotFound):
		respondError(ctx, w, http.StatusNotFound, "Chat not found")
	case errors.Is(err, usecase.ErrValidation):
		respondError(ctx, w, http.StatusBadRequest, "Missing required fields")
	default:
		_ = errutil.Handle(ctx, err, "chat operation failed")
		respondError(ctx, w, http.StatusInternalServerError, "Internal server error")
	}
}

func ownerFromContext(ctx context.Context) (types.UserID, error) {
	token, err := auth.TokenFromContext(ctx)
	if err != nil {
		return "", err
	}
	return token.UserID(), nil
}

type meResponse struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	token, err := auth.TokenFromContext(r.Context())
	if err != nil {
		respondError(r.Context(), w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	respondOK(r.Context(), w, meResponse{Sub: token.Sub, Email: token.Email, Name: token.Name})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID, err := ownerFromContext(r.Context())
	if err != nil {
		respondError(r.Context(), w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	chat, err := s.uc.Chat.CreateChat(r.Context(), userID)
	if err != nil {
		respondUseCaseError(r.Context(), w, err)
		return
	}

	respondOK(r.Context(), w, chat)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	userID, err := ownerFromContext(r.Context())
	if err != nil {
		respondError(r.Context(), w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	chats, err := s.uc.Chat.ListChats(r.Context(), userID)
	if err != nil {
		respondUseCaseError(r.Context(), w, err)
		return
	}

	respondOK(r.Context(), w, chats)
}

type renameRequest struct {
	ChatID string `json:"chatId"`
	Name   string `json:"name"`
}

func (s *Server) handleRename(w http.ResponseWriter, r *http.Request) {
	userID, err := ownerFromContext(r.Context())
	if err != nil {
		respondError(r.Context(), w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ChatID == "" {
		respondError(r.Context(), w, http.StatusBadRequest, "Chat ID and name are required")
		return
	}

	if err := s.uc.Chat.RenameChat(r.Context(), userID, types.ChatID(req.ChatID), req.Name); err != nil {
		respondUseCaseError(r.Context(), w, err)
		return
	}

	respondOK(r.Context(), w, nil)
}

type deleteRequest struct {
	ChatID string `json:"chatId"`
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID, err := ownerFromContext(r.Context())
	if err != nil {
		respondError(r.Context(), w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ChatID == "" {
		respondError(r.Context(), w, http.StatusBadRequest, "Chat ID is required")
		return
	}

	if err := s.uc.Chat.DeleteChat(r.Context(), userID, types.ChatID(req.ChatID)); err != nil {
		respondUseCaseError(r.Context(), w, err)
		return
	}

	respondOK(r.Context(), w, nil)
}

type turnRequest struct {
	ChatID string `json:"chatId"`
	Prompt string `json:"prompt"`
}

func (s *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	userID, err := ownerFromContext(r.Context())
	if err != nil {
		respondError(r.Context(), w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ChatID == "" || req.Prompt == "" {
		respondError(r.Context(), w, http.StatusBadRequest, "Missing required fields")
		return
	}

	// The turn runs on a detached context: a client that navigates away
	// must not cancel orchestration or lose the persisted result.
	msg, err := s.uc.Chat.AppendTurn(async.Detached(r.Context()), userID, types.ChatID(req.ChatID), req.Prompt)
	if err != nil {
		respondUseCaseError(r.Context(), w, err)
		return
	}

	respondOK(r.Context(), w, msg)
}
