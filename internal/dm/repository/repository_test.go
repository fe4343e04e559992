package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"testing"

	"github.com/Benguin-Productions/wryft/internal/dm/model"
	userModel "github.com/Benguin-Productions/wryft/internal/user/model"
	appErrors "github.com/Benguin-Productions/wryft/pkg/errors"
	"github.com/Benguin-Productions/wryft/pkg/logger"
)

var (
	testDB      *bun.DB
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	dbName := "wryft"
	dbUser := "wryft"
	dbPassword := "password"

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}
	pgContainer = postgresContainer

	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connections string, %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	tables := []any{
		(*userModel.User)(nil),
		(*model.Conversation)(nil),
		(*model.ConversationParticipant)(nil),
		(*model.Message)(nil),
	}

	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Helper()
	for _, table := range []string{"messages", "conversation_participants", "conversations", "users"} {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE `+table+` CASCADE`)
		require.NoError(t, err)
	}
}

func createUser(t *testing.T, username string, discriminator int) *userModel.User {
	t.Helper()
	u := &userModel.User{Username: username, Discriminator: discriminator}
	_, err := testDB.NewInsert().Model(u).Returning("*").Exec(context.Background())
	require.NoError(t, err)
	return u
}

func Test_UserLookups(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewDMRepository(testDB, testLogger)

	sam7 := createUser(t, "sam", 7)
	createUser(t, "sam", 8)
	createUser(t, "benguin", 1)

	t.Run("handle lookup", func(t *testing.T) {
		got, err := repo.GetUserByHandle(context.Background(), "sam", 7)
		require.NoError(t, err)
		assert.Equal(t, sam7.ID, got.ID)
	})

	t.Run("handle lookup miss", func(t *testing.T) {
		_, err := repo.GetUserByHandle(context.Background(), "sam", 9)
		assert.ErrorIs(t, err, appErrors.ErrTargetUserNotFound)
	})

	t.Run("username lookup returns every match up to limit", func(t *testing.T) {
		users, err := repo.FindUsersByUsername(context.Background(), "sam", 2)
		require.NoError(t, err)
		assert.Len(t, users, 2)

		users, err = repo.FindUsersByUsername(context.Background(), "benguin", 2)
		require.NoError(t, err)
		assert.Len(t, users, 1)

		users, err = repo.FindUsersByUsername(context.Background(), "ghost", 2)
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

func Test_CreateConversation_Dedup(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewDMRepository(testDB, testLogger)

	a := createUser(t, "alice", 1)
	b := createUser(t, "bob", 1)

	first, err := repo.CreateConversation(context.Background(), a.ID, b.ID)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first)

	// Creating from the other side must converge on the same conversation.
	second, err := repo.CreateConversation(context.Background(), b.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	count, err := testDB.NewSelect().Model((*model.Conversation)(nil)).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	parts, err := repo.ParticipantRowsForUsers(context.Background(), []uuid.UUID{a.ID, b.ID})
	require.NoError(t, err)
	assert.Len(t, parts, 2)
}

func Test_CreateConversation_UnknownUser(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewDMRepository(testDB, testLogger)
	a := createUser(t, "alice", 1)

	_, err := repo.CreateConversation(context.Background(), a.ID, uuid.New())
	assert.ErrorIs(t, err, appErrors.ErrTargetUserNotFound)

	count, err := testDB.NewSelect().Model((*model.Conversation)(nil)).Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func Test_IsParticipant(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewDMRepository(testDB, testLogger)

	a := createUser(t, "alice", 1)
	b := createUser(t, "bob", 1)
	outsider := createUser(t, "mallory", 1)

	convID, err := repo.CreateConversation(context.Background(), a.ID, b.ID)
	require.NoError(t, err)

	ok, err := repo.IsParticipant(context.Background(), convID, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IsParticipant(context.Background(), convID, outsider.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func insertMessage(t *testing.T, repo *DMRepository, convID, senderID uuid.UUID, seq byte) *model.Message {
	t.Helper()
	msg := &model.Message{
		ConversationID: convID,
		SenderUserID:   senderID,
		BodyCiphertext: []byte{seq},
		BodyNonce:      make([]byte, 12),
		BodyTag:        make([]byte, 16),
		BodyAlgorithm:  "aes-256-gcm",
	}
	require.NoError(t, repo.InsertMessage(context.Background(), msg))
	return msg
}

func Test_ListMessages_Pagination(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewDMRepository(testDB, testLogger)

	a := createUser(t, "alice", 1)
	b := createUser(t, "bob", 1)
	convID, err := repo.CreateConversation(context.Background(), a.ID, b.ID)
	require.NoError(t, err)

	inserted := make([]uuid.UUID, 0, 55)
	for i := 0; i < 55; i++ {
		msg := insertMessage(t, repo, convID, a.ID, byte(i))
		inserted = append(inserted, msg.ID)
	}

	// First page: over-fetch 31 for a limit of 30.
	first, err := repo.ListMessages(context.Background(), convID, uuid.Nil, 31)
	require.NoError(t, err)
	require.Len(t, first, 31)

	// Strictly descending ordering.
	for i := 1; i < len(first); i++ {
		prev, cur := first[i-1], first[i]
		notAfter := cur.CreatedAt.Before(prev.CreatedAt) ||
			(cur.CreatedAt.Equal(prev.CreatedAt) && cur.ID.String() < prev.ID.String())
		assert.True(t, notAfter, "rows out of order at %d", i)
	}

	// Resume after the 30th returned row.
	cursor := first[29].ID
	second, err := repo.ListMessages(context.Background(), convID, cursor, 31)
	require.NoError(t, err)
	require.Len(t, second, 25)

	seen := make(map[uuid.UUID]bool)
	for _, m := range append(first[:30], second...) {
		require.False(t, seen[m.ID], "duplicate row %s", m.ID)
		seen[m.ID] = true
	}
	assert.Len(t, seen, 55)
	for _, id := range inserted {
		assert.True(t, seen[id], "missing row %s", id)
	}
}

func Test_ListMessages_InvalidCursor(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewDMRepository(testDB, testLogger)

	a := createUser(t, "alice", 1)
	b := createUser(t, "bob", 1)
	convID, err := repo.CreateConversation(context.Background(), a.ID, b.ID)
	require.NoError(t, err)

	_, err = repo.ListMessages(context.Background(), convID, uuid.New(), 31)
	assert.ErrorIs(t, err, appErrors.ErrInvalidCursor)
}

func Test_ReadMarker(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewDMRepository(testDB, testLogger)

	a := createUser(t, "alice", 1)
	b := createUser(t, "bob", 1)
	convID, err := repo.CreateConversation(context.Background(), a.ID, b.ID)
	require.NoError(t, err)

	t.Run("newest message id on empty conversation", func(t *testing.T) {
		newest, err := repo.NewestMessageID(context.Background(), convID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Nil, newest)
	})

	t.Run("set and re-set last read", func(t *testing.T) {
		insertMessage(t, repo, convID, a.ID, 0)
		last := insertMessage(t, repo, convID, b.ID, 1)

		newest, err := repo.NewestMessageID(context.Background(), convID)
		require.NoError(t, err)
		assert.Equal(t, last.ID, newest)

		require.NoError(t, repo.SetLastRead(context.Background(), convID, a.ID, newest))
		require.NoError(t, repo.SetLastRead(context.Background(), convID, a.ID, newest))

		var row model.ConversationParticipant
		err = testDB.NewSelect().
			Model(&row).
			Where("cp.conversation_id = ? AND cp.user_id = ?", convID, a.ID).
			Scan(context.Background())
		require.NoError(t, err)
		require.NotNil(t, row.LastReadMsgID)
		assert.Equal(t, newest, *row.LastReadMsgID)
	})
}

func Test_TouchConversation(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewDMRepository(testDB, testLogger)

	a := createUser(t, "alice", 1)
	b := createUser(t, "bob", 1)
	convID, err := repo.CreateConversation(context.Background(), a.ID, b.ID)
	require.NoError(t, err)

	at := time.Now().Add(time.Hour).UTC().Truncate(time.Microsecond)
	require.NoError(t, repo.TouchConversation(context.Background(), convID, at))

	conv := new(model.Conversation)
	err = testDB.NewSelect().Model(conv).Where("id = ?", convID).Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, at, conv.UpdatedAt.UTC())

	err = repo.TouchConversation(context.Background(), uuid.New(), at)
	assert.ErrorIs(t, err, appErrors.ErrConversationNotFound)
}

func Test_ListParticipantEntries(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	repo := NewDMRepository(testDB, testLogger)

	me := createUser(t, "benguin", 1)
	sam := createUser(t, "sam", 7)
	kat := createUser(t, "kat", 2)

	convWithSam, err := repo.CreateConversation(context.Background(), me.ID, sam.ID)
	require.NoError(t, err)
	convWithKat, err := repo.CreateConversation(context.Background(), me.ID, kat.ID)
	require.NoError(t, err)

	entries, err := repo.ListParticipantEntries(context.Background(), me.ID, uuid.Nil, 21)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// One entry per conversation the requester participates in, each
	// carrying the full roster.
	got := make(map[uuid.UUID]bool)
	for _, e := range entries {
		got[e.ConversationID] = true
		require.NotNil(t, e.Conversation)
		assert.Len(t, e.Conversation.Participants, 2)
		for _, p := range e.Conversation.Participants {
			require.NotNil(t, p.User)
			assert.NotEmpty(t, p.User.Username)
		}
	}
	assert.True(t, got[convWithSam])
	assert.True(t, got[convWithKat])

	// A user who shares no conversation sees nothing of them.
	outsider := createUser(t, "mallory", 1)
	entries, err = repo.ListParticipantEntries(context.Background(), outsider.ID, uuid.Nil, 21)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
