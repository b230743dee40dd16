package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/inventry-dev/inventry/pkg/domain/model"
	"github.com/inventry-dev/inventry/pkg/domain/types"
)

type chatRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newChatRepository(client *firestore.Client) *chatRepository {
	return &chatRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *chatRepository) chatsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_chats"
	}
	return "chats"
}

func (r *chatRepository) Create(ctx context.Context, chat *model.Chat) (*model.Chat, error) {
	if err := chat.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid chat")
	}

	now := time.Now().UTC()
	created := chat.Clone()
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.chatsCollection()).Doc(created.ID.String()).Create(ctx, created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create chat", goerr.V("id", created.ID))
	}

	return created, nil
}

// load fetches a chat document and applies the owner check. Owner mismatch
// is reported as types.ErrNotFound to avoid leaking existence.
func (r *chatRepository) load(ctx context.Context, userID types.UserID, chatID types.ChatID) (*model.Chat, error) {
	docSnap, err := r.client.Collection(r.chatsCollection()).Doc(chatID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(types.ErrNotFound, "chat not found", goerr.V("id", chatID))
		}
		return nil, goerr.Wrap(err, "failed to get chat", goerr.V("id", chatID))
	}

	var chat model.Chat
	if err := docSnap.DataTo(&chat); err != nil {
		return nil, goerr.Wrap(err, "failed to decode chat", goerr.V("id", chatID))
	}
	chat.ID = types.ChatID(docSnap.Ref.ID)

	if chat.UserID != userID {
		return nil, goerr.Wrap(types.ErrNotFound, "chat not found", goerr.V("id", chatID))
	}

	return &chat, nil
}

func (r *chatRepository) Get(ctx context.Context, userID types.UserID, chatID types.ChatID) (*model.Chat, error) {
	return r.load(ctx, userID, chatID)
}

func (r *chatRepository) ListByUser(ctx context.Context, userID types.UserID) ([]*model.Chat, error) {
	iter := r.client.Collection(r.chatsCollection()).
		Where("user_id", "==", userID.String()).
		OrderBy("updated_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	chats := make([]*model.Chat, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate chats", goerr.V("user_id", userID))
		}

		var chat model.Chat
		if err := docSnap.DataTo(&chat); err != nil {
			return nil, goerr.Wrap(err, "failed to decode chat", goerr.V("doc_id", docSnap.Ref.ID))
		}
		chat.ID = types.ChatID(docSnap.Ref.ID)

		chats = append(chats, &chat)
	}

	return chats, nil
}

func (r *chatRepository) Update(ctx context.Context, chat *model.Chat) (*model.Chat, error) {
	existing, err := r.load(ctx, chat.UserID, chat.ID)
	if err != nil {
		return nil, err
	}

	updated := chat.Clone()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	// Whole-document replace; last writer wins on concurrent turns.
	_, err = r.client.Collection(r.chatsCollection()).Doc(updated.ID.String()).Set(ctx, updated)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update chat", goerr.V("id", updated.ID))
	}

	return updated, nil
}

func (r *chatRepository) Delete(ctx context.Context, userID types.UserID, chatID types.ChatID) error {
	if _, err := r.load(ctx, userID, chatID); err != nil {
		return err
	}

	if _, err := r.client.Collection(r.chatsCollection()).Doc(chatID.String()).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete chat", goerr.V("id", chatID))
	}

	return nil
}
