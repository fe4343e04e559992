package dm

import (
	"context"

	"github.com/google/uuid"
)

type DMUsecase interface {
	// Find the unique one-on-one conversation between the requester and
	// the target, creating it on first contact.
	ResolveConversation(ctx context.Context, requesterID uuid.UUID, target TargetSpec) (uuid.UUID, error)

	// Append an encrypted message; sender must be a participant.
	SendMessage(ctx context.Context, cmd SendMessageCommand) (*MessageReceiptDTO, error)

	// Advance the caller's read marker to the conversation's newest
	// message. No-op on an empty conversation.
	MarkRead(ctx context.Context, conversationID, userID uuid.UUID) error

	// Reverse-chronological listings with the shared cursor contract.
	ListConversations(ctx context.Context, userID uuid.UUID, page PageRequest) (*ConversationPageDTO, error)
	ListMessages(ctx context.Context, conversationID, userID uuid.UUID, page PageRequest) (*MessagePageDTO, error)
}
