package usecase

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Benguin-Productions/wryft/config"
	"github.com/Benguin-Productions/wryft/internal/dm"
	"github.com/Benguin-Productions/wryft/internal/dm/model"
	"github.com/Benguin-Productions/wryft/pkg/crypto"
	"github.com/Benguin-Productions/wryft/pkg/errors"
	"github.com/Benguin-Productions/wryft/pkg/logger"
)

const (
	maxContentRunes = 8000

	defaultConversationPageSize = 20
	defaultMessagePageSize      = 30
	maxPageSize                 = 50
)

type DMUsecase struct {
	repo   dm.DMRepository
	codec  *crypto.MessageCodec
	logger logger.Logger
	config config.Config
}

func NewDMUsecase(repo dm.DMRepository, codec *crypto.MessageCodec, logger logger.Logger, config config.Config) *DMUsecase {
	return &DMUsecase{repo: repo, codec: codec, logger: logger, config: config}
}

func (uc *DMUsecase) ResolveConversation(ctx context.Context, requesterID uuid.UUID, target dm.TargetSpec) (uuid.UUID, error) {
	targetID, err := uc.resolveTargetID(ctx, target)
	if err != nil {
		return uuid.Nil, err
	}

	if targetID == requesterID {
		return uuid.Nil, errors.ErrSelfConversation
	}

	rows, err := uc.repo.ParticipantRowsForUsers(ctx, []uuid.UUID{requesterID, targetID})
	if err != nil {
		uc.logger.Error("database error scanning participant pair", "err", err)
		return uuid.Nil, errors.Internal("internal server error")
	}

	// A conversation holding rows for both users is the existing DM
	// thread, regardless of which side initiated contact first.
	counts := make(map[uuid.UUID]int)
	for _, row := range rows {
		counts[row.ConversationID]++
	}
	for convID, n := range counts {
		if n == 2 {
			return convID, nil
		}
	}

	convID, err := uc.repo.CreateConversation(ctx, requesterID, targetID)
	if err != nil {
		if errors.Is(err, errors.ErrTargetUserNotFound) {
			return uuid.Nil, err
		}
		uc.logger.Error("failed to create conversation", "err", err)
		return uuid.Nil, errors.ErrConversationCreateFailed(err)
	}
	return convID, nil
}

func (uc *DMUsecase) resolveTargetID(ctx context.Context, target dm.TargetSpec) (uuid.UUID, error) {
	switch target.Kind {
	case dm.TargetByID:
		// Explicit ids are taken verbatim; membership of the resulting
		// conversation is what gates message access.
		if target.UserID == uuid.Nil {
			return uuid.Nil, errors.ErrInvalidTarget
		}
		return target.UserID, nil

	case dm.TargetByUsernameDiscriminator:
		u, err := uc.repo.GetUserByHandle(ctx, target.Username, target.Discriminator)
		if err != nil {
			if errors.Is(err, errors.ErrTargetUserNotFound) {
				return uuid.Nil, err
			}
			uc.logger.Error("database error resolving handle", "err", err)
			return uuid.Nil, errors.Internal("internal server error")
		}
		return u.ID, nil

	case dm.TargetByUsernameOnly:
		users, err := uc.repo.FindUsersByUsername(ctx, target.Username, 2)
		if err != nil {
			uc.logger.Error("database error resolving username", "err", err)
			return uuid.Nil, errors.Internal("internal server error")
		}
		if len(users) == 0 {
			return uuid.Nil, errors.ErrTargetUserNotFound
		}
		if len(users) > 1 {
			return uuid.Nil, errors.ErrAmbiguousTarget
		}
		return users[0].ID, nil

	default:
		return uuid.Nil, errors.ErrInvalidTarget
	}
}

func (uc *DMUsecase) SendMessage(ctx context.Context, cmd dm.SendMessageCommand) (*dm.MessageReceiptDTO, error) {
	n := utf8.RuneCountInString(cmd.Content)
	if n < 1 || n > maxContentRunes {
		return nil, errors.ErrContentLength
	}

	ok, err := uc.repo.IsParticipant(ctx, cmd.ConversationID, cmd.SenderID)
	if err != nil {
		uc.logger.Error("database error checking membership", "err", err)
		return nil, errors.Internal("internal server error")
	}
	if !ok {
		return nil, errors.ErrNotParticipant
	}

	enc, err := uc.codec.Encrypt([]byte(cmd.Content))
	if err != nil {
		return nil, err
	}

	msg := &model.Message{
		ConversationID: cmd.ConversationID,
		SenderUserID:   cmd.SenderID,
		BodyCiphertext: enc.Ciphertext,
		BodyNonce:      enc.Nonce,
		BodyTag:        enc.Tag,
		BodyAlgorithm:  enc.Algorithm,
		HasAttachments: false,
	}
	if err := uc.repo.InsertMessage(ctx, msg); err != nil {
		uc.logger.Error("failed to store message", "err", err)
		return nil, errors.ErrMessageStoreFailed(err)
	}

	// Advisory ordering metadata only; a missed bump stales the
	// conversation list but never loses the message.
	if err := uc.repo.TouchConversation(ctx, cmd.ConversationID, time.Now()); err != nil {
		uc.logger.Warn("failed to bump conversation updated_at",
			"conversation_id", cmd.ConversationID, "err", err)
	}

	return &dm.MessageReceiptDTO{ID: msg.ID, CreatedAt: msg.CreatedAt}, nil
}

func (uc *DMUsecase) MarkRead(ctx context.Context, conversationID, userID uuid.UUID) error {
	ok, err := uc.repo.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		uc.logger.Error("database error checking membership", "err", err)
		return errors.Internal("internal server error")
	}
	if !ok {
		return errors.ErrNotParticipant
	}

	newest, err := uc.repo.NewestMessageID(ctx, conversationID)
	if err != nil {
		uc.logger.Error("database error fetching newest message", "err", err)
		return errors.Internal("internal server error")
	}
	if newest == uuid.Nil {
		return nil
	}

	if err := uc.repo.SetLastRead(ctx, conversationID, userID, newest); err != nil {
		uc.logger.Error("failed to set read marker", "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *DMUsecase) ListConversations(ctx context.Context, userID uuid.UUID, page dm.PageRequest) (*dm.ConversationPageDTO, error) {
	limit, cursor, err := normalizePage(page, defaultConversationPageSize)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.ListParticipantEntries(ctx, userID, cursor, limit+1)
	if err != nil {
		if errors.Is(err, errors.ErrInvalidCursor) {
			return nil, err
		}
		uc.logger.Error("database error listing conversations", "err", err)
		return nil, errors.Internal("internal server error")
	}

	// The extra row only proves another page exists; the cursor is the
	// last item actually returned, and the next page resumes strictly
	// after it.
	nextCursor := ""
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = rows[limit-1].ID.String()
	}

	items := make([]dm.ConversationSummaryDTO, 0, len(rows))
	for _, row := range rows {
		item := dm.ConversationSummaryDTO{
			ID:            row.ConversationID,
			LastReadMsgID: row.LastReadMsgID,
		}
		if row.Conversation != nil {
			item.UpdatedAt = row.Conversation.UpdatedAt
			for _, p := range row.Conversation.Participants {
				if p == nil || p.User == nil {
					continue
				}
				item.Participants = append(item.Participants, dm.ParticipantDTO{
					User: dm.UserDTO{
						ID:            p.User.ID,
						Username:      p.User.Username,
						Discriminator: p.User.Discriminator,
						AvatarURL:     p.User.AvatarURL,
					},
				})
			}
		}
		items = append(items, item)
	}

	return &dm.ConversationPageDTO{Items: items, NextCursor: nextCursor}, nil
}

func (uc *DMUsecase) ListMessages(ctx context.Context, conversationID, userID uuid.UUID, page dm.PageRequest) (*dm.MessagePageDTO, error) {
	limit, cursor, err := normalizePage(page, defaultMessagePageSize)
	if err != nil {
		return nil, err
	}

	ok, err := uc.repo.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		uc.logger.Error("database error checking membership", "err", err)
		return nil, errors.Internal("internal server error")
	}
	if !ok {
		return nil, errors.ErrNotParticipant
	}

	rows, err := uc.repo.ListMessages(ctx, conversationID, cursor, limit+1)
	if err != nil {
		if errors.Is(err, errors.ErrInvalidCursor) {
			return nil, err
		}
		uc.logger.Error("database error listing messages", "err", err)
		return nil, errors.Internal("internal server error")
	}

	nextCursor := ""
	if len(rows) > limit {
		rows = rows[:limit]
		nextCursor = rows[limit-1].ID.String()
	}

	items := make([]dm.MessageDTO, 0, len(rows))
	for _, row := range rows {
		plaintext, err := uc.codec.Decrypt(&crypto.EncryptedBody{
			Ciphertext: row.BodyCiphertext,
			Nonce:      row.BodyNonce,
			Tag:        row.BodyTag,
			Algorithm:  row.BodyAlgorithm,
		})
		if err != nil {
			uc.logger.Error("failed to decrypt message body",
				"message_id", row.ID, "err", err)
			return nil, err
		}
		items = append(items, dm.MessageDTO{
			ID:             row.ID,
			ConversationID: row.ConversationID,
			SenderUserID:   row.SenderUserID,
			CreatedAt:      row.CreatedAt,
			Content:        string(plaintext),
			HasAttachments: row.HasAttachments,
		})
	}

	return &dm.MessagePageDTO{Items: items, NextCursor: nextCursor}, nil
}

// normalizePage clamps the limit to [1, maxPageSize] (zero means the
// listing's default) and parses the opaque cursor.
func normalizePage(page dm.PageRequest, def int) (int, uuid.UUID, error) {
	limit := page.Limit
	if limit == 0 {
		limit = def
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	cursor := uuid.Nil
	if page.Cursor != "" {
		id, err := uuid.Parse(page.Cursor)
		if err != nil {
			return 0, uuid.Nil, errors.ErrInvalidCursor
		}
		cursor = id
	}
	return limit, cursor, nil
}
