package models

import (
	"time"

	"github.com/google/uuid"
)

// User rows are owned by the auth subsystem; this core only reads them to
// resolve DM targets.
type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Username plus Discriminator form the unique @handle shown as
	// "username#disc". Discriminator is 1-9999 and disambiguates
	// duplicate usernames.
	Username      string `bun:",notnull,unique:idx_users_handle"`
	Discriminator int    `bun:",notnull,unique:idx_users_handle"`

	AvatarURL string `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
