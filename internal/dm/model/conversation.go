package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	userModel "github.com/Benguin-Productions/wryft/internal/user/model"
)

// Conversation is a DM thread. Created lazily on first contact between a
// pair of users and never deleted; updated_at is bumped on every new
// message and drives conversation-list ordering.
type Conversation struct {
	bun.BaseModel `bun:"table:conversations,alias:c"`

	ID uuid.UUID `bun:",pk,type:uuid"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	Participants []*ConversationParticipant `bun:"rel:has-many,join:id=conversation_id"`
}

// ConversationParticipant joins a user to a conversation. For any unordered
// user pair at most one conversation has rows for exactly that pair; the
// resolver enforces this with a locked re-check on create.
//
// Hardening option for operators, in addition to the resolver's locking:
// CREATE UNIQUE INDEX idx_dm_pair ON dm_pairs(least(user_a,user_b), greatest(user_a,user_b));
type ConversationParticipant struct {
	bun.BaseModel `bun:"table:conversation_participants,alias:cp"`

	ID uuid.UUID `bun:",pk,type:uuid"`

	ConversationID uuid.UUID     `bun:",notnull,type:uuid,unique:idx_participant_once"`
	Conversation   *Conversation `bun:"rel:belongs-to,join:conversation_id=id"`

	UserID uuid.UUID       `bun:",notnull,type:uuid,unique:idx_participant_once"`
	User   *userModel.User `bun:"rel:belongs-to,join:user_id=id"`

	// Last message this user has acknowledged; nil until the first MarkRead.
	LastReadMsgID *uuid.UUID `bun:",nullzero,type:uuid"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
