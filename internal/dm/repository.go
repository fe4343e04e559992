package dm

//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Benguin-Productions/wryft/internal/dm/model"
	userModel "github.com/Benguin-Productions/wryft/internal/user/model"
)

type DMRepository interface {
	// User lookups (users are owned by the auth subsystem; read-only here)
	GetUserByID(ctx context.Context, id uuid.UUID) (*userModel.User, error)
	GetUserByHandle(ctx context.Context, username string, discriminator int) (*userModel.User, error)
	FindUsersByUsername(ctx context.Context, username string, limit int) ([]userModel.User, error)

	// All participant rows belonging to any of the given users; the
	// resolver groups them by conversation to find an existing DM pair.
	ParticipantRowsForUsers(ctx context.Context, userIDs []uuid.UUID) ([]model.ConversationParticipant, error)

	// Atomically create a conversation plus both participant rows. Locks
	// the two user rows and re-checks the pair inside the transaction, so
	// concurrent first contact converges on a single conversation; the
	// returned id may therefore belong to a pre-existing conversation.
	CreateConversation(ctx context.Context, requesterID, targetID uuid.UUID) (uuid.UUID, error)

	IsParticipant(ctx context.Context, conversationID, userID uuid.UUID) (bool, error)

	InsertMessage(ctx context.Context, msg *model.Message) error
	// Advisory updated_at bump; callers treat failures as non-fatal.
	TouchConversation(ctx context.Context, conversationID uuid.UUID, at time.Time) error

	// Newest message id in the conversation, or uuid.Nil when empty.
	NewestMessageID(ctx context.Context, conversationID uuid.UUID) (uuid.UUID, error)
	SetLastRead(ctx context.Context, conversationID, userID, messageID uuid.UUID) error

	// Keyset pages ordered created_at DESC, id DESC. cursor is the id of
	// the row to resume strictly after (uuid.Nil for the first page).
	// ListParticipantEntries loads the conversation and its full
	// participant/user roster for each entry.
	ListParticipantEntries(ctx context.Context, userID uuid.UUID, cursor uuid.UUID, limit int) ([]model.ConversationParticipant, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID, cursor uuid.UUID, limit int) ([]model.Message, error)
}
