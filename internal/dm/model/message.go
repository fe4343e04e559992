package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	userModel "github.com/Benguin-Productions/wryft/internal/user/model"
)

// Message is immutable once created. The body is stored encrypted as
// separate ciphertext/nonce/tag columns plus an algorithm label; plaintext
// never touches the database.
type Message struct {
	bun.BaseModel `bun:"table:messages,alias:m"`

	ID uuid.UUID `bun:",pk,type:uuid"`

	ConversationID uuid.UUID     `bun:",notnull,type:uuid"`
	Conversation   *Conversation `bun:"rel:belongs-to,join:conversation_id=id"`

	SenderUserID uuid.UUID       `bun:",notnull,type:uuid"`
	Sender       *userModel.User `bun:"rel:belongs-to,join:sender_user_id=id"`

	BodyCiphertext []byte `bun:",notnull"`
	BodyNonce      []byte `bun:",notnull"` // 12 bytes
	BodyTag        []byte `bun:",notnull"` // 16 bytes
	BodyAlgorithm  string `bun:",notnull"`

	HasAttachments bool `bun:",notnull,default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
