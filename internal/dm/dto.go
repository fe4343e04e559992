package dm

import (
	"time"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type SendMessageCommand struct {
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Content        string // plaintext, 1-8000 characters
}

// PageRequest is the shared pagination input for both listings. Cursor is
// opaque to callers: empty means first page, otherwise it is the token
// returned as NextCursor by the previous page.
type PageRequest struct {
	Limit  int
	Cursor string
}

// Output DTOs
type MessageReceiptDTO struct {
	ID        uuid.UUID
	CreatedAt time.Time
}

type UserDTO struct {
	ID            uuid.UUID
	Username      string
	Discriminator int
	AvatarURL     string
}

type ParticipantDTO struct {
	User UserDTO
}

// ConversationSummaryDTO is one row of the requester's conversation list:
// the conversation plus its full participant roster and the requester's own
// read marker.
type ConversationSummaryDTO struct {
	ID            uuid.UUID
	UpdatedAt     time.Time
	Participants  []ParticipantDTO
	LastReadMsgID *uuid.UUID
}

type ConversationPageDTO struct {
	Items      []ConversationSummaryDTO
	NextCursor string // empty when there is no further page
}

type MessageDTO struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderUserID   uuid.UUID
	CreatedAt      time.Time
	Content        string // decrypted plaintext
	HasAttachments bool
}

type MessagePageDTO struct {
	Items      []MessageDTO
	NextCursor string
}
