package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/Benguin-Productions/wryft/internal/dm/model"
	userModel "github.com/Benguin-Productions/wryft/internal/user/model"
	appErrors "github.com/Benguin-Productions/wryft/pkg/errors"
	"github.com/Benguin-Productions/wryft/pkg/logger"
)

type DMRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewDMRepository(db *bun.DB, logger logger.Logger) *DMRepository {
	return &DMRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *DMRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*userModel.User, error) {

	user := new(userModel.User)
	err := r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrTargetUserNotFound
		}
		return nil, errors.Wrap(err, "dmRepo.GetUserByID.Scan")
	}
	return user, nil
}

func (r *DMRepository) GetUserByHandle(ctx context.Context, username string, discriminator int) (*userModel.User, error) {

	user := new(userModel.User)
	err := r.db.NewSelect().
		Model(user).
		Where("username = ? AND discriminator = ?", username, discriminator).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrTargetUserNotFound
		}
		return nil, errors.Wrap(err, "dmRepo.GetUserByHandle.Scan")
	}
	return user, nil
}

func (r *DMRepository) FindUsersByUsername(ctx context.Context, username string, limit int) ([]userModel.User, error) {

	var users []userModel.User
	err := r.db.NewSelect().
		Model(&users).
		Where("username = ?", username).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dmRepo.FindUsersByUsername.Scan")
	}
	return users, nil
}

func (r *DMRepository) ParticipantRowsForUsers(ctx context.Context, userIDs []uuid.UUID) ([]model.ConversationParticipant, error) {

	var rows []model.ConversationParticipant
	err := r.db.NewSelect().
		Model(&rows).
		Where("cp.user_id IN (?)", bun.In(userIDs)).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dmRepo.ParticipantRowsForUsers.Scan")
	}
	return rows, nil
}

// CreateConversation serializes concurrent first contact for the same pair
// by locking both user rows (in id order, to avoid deadlock) before
// re-checking whether the pair conversation already exists. The participant
// insert is additionally duplicate-tolerant.
func (r *DMRepository) CreateConversation(ctx context.Context, requesterID, targetID uuid.UUID) (uuid.UUID, error) {

	convID := uuid.Nil

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		lockIDs := []uuid.UUID{requesterID, targetID}
		if lockIDs[1].String() < lockIDs[0].String() {
			lockIDs[0], lockIDs[1] = lockIDs[1], lockIDs[0]
		}

		var locked []userModel.User
		err := tx.NewSelect().
			Model(&locked).
			Where("id IN (?)", bun.In(lockIDs)).
			Order("id ASC").
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			return errors.Wrap(err, "createConversation.lockUsers")
		}
		if len(locked) < 2 {
			return appErrors.ErrTargetUserNotFound
		}

		var rows []model.ConversationParticipant
		err = tx.NewSelect().
			Model(&rows).
			Where("cp.user_id IN (?)", bun.In([]uuid.UUID{requesterID, targetID})).
			Scan(ctx)
		if err != nil {
			return errors.Wrap(err, "createConversation.pairScan")
		}

		counts := make(map[uuid.UUID]int)
		for _, row := range rows {
			counts[row.ConversationID]++
		}
		for id, n := range counts {
			if n == 2 {
				convID = id
				return nil
			}
		}

		conv := &model.Conversation{ID: uuid.Must(uuid.NewV7())}
		if _, err := tx.NewInsert().Model(conv).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "createConversation.insertConversation")
		}

		participants := []model.ConversationParticipant{
			{ID: uuid.Must(uuid.NewV7()), ConversationID: conv.ID, UserID: requesterID},
			{ID: uuid.Must(uuid.NewV7()), ConversationID: conv.ID, UserID: targetID},
		}
		_, err = tx.NewInsert().
			Model(&participants).
			On("CONFLICT (conversation_id, user_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "createConversation.insertParticipants")
		}

		convID = conv.ID
		return nil
	})

	if err != nil {
		return uuid.Nil, err
	}
	return convID, nil
}

func (r *DMRepository) IsParticipant(ctx context.Context, conversationID, userID uuid.UUID) (bool, error) {

	count, err := r.db.NewSelect().
		Model((*model.ConversationParticipant)(nil)).
		Where("cp.conversation_id = ? AND cp.user_id = ?", conversationID, userID).
		Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "dmRepo.IsParticipant.Count")
	}
	return count > 0, nil
}

func (r *DMRepository) InsertMessage(ctx context.Context, msg *model.Message) error {

	if msg.ID == uuid.Nil {
		msg.ID = uuid.Must(uuid.NewV7())
	}
	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "dmRepo.InsertMessage.Exec")
	}
	return nil
}

func (r *DMRepository) TouchConversation(ctx context.Context, conversationID uuid.UUID, at time.Time) error {

	res, err := r.db.NewUpdate().
		Model((*model.Conversation)(nil)).
		Set("updated_at = ?", at).
		Where("id = ?", conversationID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "dmRepo.TouchConversation.Exec")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return appErrors.ErrConversationNotFound
	}
	return nil
}

func (r *DMRepository) NewestMessageID(ctx context.Context, conversationID uuid.UUID) (uuid.UUID, error) {

	msg := new(model.Message)
	err := r.db.NewSelect().
		Model(msg).
		Column("m.id").
		Where("m.conversation_id = ?", conversationID).
		OrderExpr("m.created_at DESC, m.id DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, nil
		}
		return uuid.Nil, errors.Wrap(err, "dmRepo.NewestMessageID.Scan")
	}
	return msg.ID, nil
}

func (r *DMRepository) SetLastRead(ctx context.Context, conversationID, userID, messageID uuid.UUID) error {

	_, err := r.db.NewUpdate().
		Model(&model.ConversationParticipant{LastReadMsgID: &messageID}).
		Column("last_read_msg_id").
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "dmRepo.SetLastRead.Exec")
	}
	return nil
}

func (r *DMRepository) ListParticipantEntries(ctx context.Context, userID uuid.UUID, cursor uuid.UUID, limit int) ([]model.ConversationParticipant, error) {

	var rows []model.ConversationParticipant
	q := r.db.NewSelect().
		Model(&rows).
		Relation("Conversation").
		Relation("Conversation.Participants").
		Relation("Conversation.Participants.User").
		Where("cp.user_id = ?", userID)

	if cursor != uuid.Nil {
		cur := new(model.ConversationParticipant)
		err := r.db.NewSelect().Model(cur).Where("cp.id = ?", cursor).Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.ErrInvalidCursor
			}
			return nil, errors.Wrap(err, "dmRepo.ListParticipantEntries.cursorScan")
		}
		q = q.Where("(cp.created_at, cp.id) < (?, ?)", cur.CreatedAt, cur.ID)
	}

	err := q.OrderExpr("cp.created_at DESC, cp.id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dmRepo.ListParticipantEntries.Scan")
	}
	return rows, nil
}

func (r *DMRepository) ListMessages(ctx context.Context, conversationID uuid.UUID, cursor uuid.UUID, limit int) ([]model.Message, error) {

	var rows []model.Message
	q := r.db.NewSelect().
		Model(&rows).
		Where("m.conversation_id = ?", conversationID)

	if cursor != uuid.Nil {
		cur := new(model.Message)
		err := r.db.NewSelect().Model(cur).Where("m.id = ?", cursor).Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.ErrInvalidCursor
			}
			return nil, errors.Wrap(err, "dmRepo.ListMessages.cursorScan")
		}
		q = q.Where("(m.created_at, m.id) < (?, ?)", cur.CreatedAt, cur.ID)
	}

	err := q.OrderExpr("m.created_at DESC, m.id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dmRepo.ListMessages.Scan")
	}
	return rows, nil
}
