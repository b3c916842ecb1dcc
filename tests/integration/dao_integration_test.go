//go:build integration

package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	mongodao "github.com/gidacan/blog-backend/internal/domain/dao/mongo"
	"github.com/gidacan/blog-backend/internal/domain/entity"
	"github.com/gidacan/blog-backend/internal/testutil"
)

func setupMongo(t *testing.T) (*mongo.Database, *mongodao.IDCounter) {
	testutil.SkipIfShort(t)
	testutil.SkipIfNoMongo(t)

	config := testutil.DefaultTestConfig()
	_, db := testutil.NewTestMongoDB(t, config)
	return db, mongodao.NewIDCounter(db)
}

func TestIntegration_IDCounter(t *testing.T) {
	_, idCounter := setupMongo(t)
	ctx := context.Background()

	t.Run("sequential allocation", func(t *testing.T) {
		first, err := idCounter.NextID(ctx, "seq_"+testutil.GenerateTestID())
		require.NoError(t, err)
		assert.Equal(t, uint(1), first)
	})

	t.Run("independent per collection", func(t *testing.T) {
		a := "col_a_" + testutil.GenerateTestID()
		b := "col_b_" + testutil.GenerateTestID()

		idA, err := idCounter.NextID(ctx, a)
		require.NoError(t, err)
		idB, err := idCounter.NextID(ctx, b)
		require.NoError(t, err)
		assert.Equal(t, uint(1), idA)
		assert.Equal(t, uint(1), idB)

		next, err := idCounter.NextID(ctx, a)
		require.NoError(t, err)
		assert.Equal(t, uint(2), next)
	})

	t.Run("concurrent allocation is unique", func(t *testing.T) {
		const workers = 20
		collection := "conc_" + testutil.GenerateTestID()

		var (
			mu  sync.Mutex
			ids = make(map[uint]bool)
			wg  sync.WaitGroup
		)
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				id, err := idCounter.NextID(ctx, collection)
				if err != nil {
					t.Error(err)
					return
				}
				mu.Lock()
				ids[id] = true
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Len(t, ids, workers, "every allocated ID must be distinct")
	})
}

func TestIntegration_ArticleDAO(t *testing.T) {
	db, idCounter := setupMongo(t)
	articleDAO := mongodao.NewArticleDAO(db, idCounter)
	ctx := context.Background()

	t.Run("Create and FindByID", func(t *testing.T) {
		article := &entity.Article{
			Name:    "create_" + testutil.GenerateTestID(),
			Title:   "First Post",
			Content: "hello",
			Author:  "carla",
			Status:  entity.ArticleActive,
		}
		require.NoError(t, articleDAO.Create(ctx, article))
		assert.NotZero(t, article.ID)
		assert.False(t, article.CreatedAt.IsZero())

		found, err := articleDAO.FindByID(ctx, article.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, article.Name, found.Name)
		assert.Equal(t, entity.ArticleActive, found.Status)
	})

	t.Run("FindByID not found", func(t *testing.T) {
		found, err := articleDAO.FindByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("FindByName resolves duplicates to lowest ID", func(t *testing.T) {
		name := "dup_" + testutil.GenerateTestID()

		first := &entity.Article{Name: name, Title: "one"}
		second := &entity.Article{Name: name, Title: "two"}
		require.NoError(t, articleDAO.Create(ctx, first))
		require.NoError(t, articleDAO.Create(ctx, second))
		require.Less(t, first.ID, second.ID)

		found, err := articleDAO.FindByName(ctx, name)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, first.ID, found.ID)
		assert.Equal(t, "one", found.Title)
	})

	t.Run("FindByName not found", func(t *testing.T) {
		found, err := articleDAO.FindByName(ctx, "missing_"+testutil.GenerateTestID())
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Update", func(t *testing.T) {
		article := &entity.Article{Name: "upd_" + testutil.GenerateTestID(), Title: "old"}
		require.NoError(t, articleDAO.Create(ctx, article))

		article.Title = "new"
		article.ToggleStatus()
		require.NoError(t, articleDAO.Update(ctx, article))

		found, err := articleDAO.FindByID(ctx, article.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "new", found.Title)
		assert.Equal(t, article.Status, found.Status)
	})

	t.Run("FindAll pagination newest first", func(t *testing.T) {
		articles, total, err := articleDAO.FindAll(ctx, 1, 2)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, int64(2))
		require.GreaterOrEqual(t, len(articles), 2)
		assert.Greater(t, articles[0].ID, articles[1].ID)
	})
}

func TestIntegration_UserDAO(t *testing.T) {
	db, idCounter := setupMongo(t)
	userDAO := mongodao.NewUserDAO(db, idCounter)
	ctx := context.Background()

	newUser := func() *entity.User {
		id := testutil.GenerateTestID()
		return &entity.User{
			FirstName: "Carla",
			LastName:  "Gidacan",
			Username:  "user_" + id,
			Email:     "user_" + id + "@example.com",
			Password:  "$2a$12$hash",
			IsActive:  true,
			Role:      entity.RoleMember,
		}
	}

	t.Run("Create and lookups", func(t *testing.T) {
		user := newUser()
		require.NoError(t, userDAO.Create(ctx, user))
		assert.NotZero(t, user.ID)

		byUsername, err := userDAO.FindByUsernameOrEmail(ctx, user.Username)
		require.NoError(t, err)
		require.NotNil(t, byUsername)
		assert.Equal(t, user.ID, byUsername.ID)

		byEmail, err := userDAO.FindByUsernameOrEmail(ctx, user.Email)
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, user.ID, byEmail.ID)

		exists, err := userDAO.ExistsByUsername(ctx, user.Username)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = userDAO.ExistsByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = userDAO.ExistsByUsername(ctx, "ghost_"+testutil.GenerateTestID())
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Delete is permanent", func(t *testing.T) {
		user := newUser()
		require.NoError(t, userDAO.Create(ctx, user))

		require.NoError(t, userDAO.Delete(ctx, user.ID))

		found, err := userDAO.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("UpsertByEmail reports insert then update", func(t *testing.T) {
		user := newUser()
		user.Role = entity.RoleAdmin

		inserted, err := userDAO.UpsertByEmail(ctx, user)
		require.NoError(t, err)
		assert.True(t, inserted, "first upsert must insert")

		created, err := userDAO.FindByUsernameOrEmail(ctx, user.Email)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.True(t, created.IsAdmin())
		firstID := created.ID
		firstCreatedAt := created.CreatedAt

		// Same email, changed profile
		user.Address = "Cebu"
		inserted, err = userDAO.UpsertByEmail(ctx, user)
		require.NoError(t, err)
		assert.False(t, inserted, "second upsert must update")

		updated, err := userDAO.FindByUsernameOrEmail(ctx, user.Email)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, firstID, updated.ID, "numeric ID must survive the update")
		assert.Equal(t, firstCreatedAt.Unix(), updated.CreatedAt.Unix())
		assert.Equal(t, "Cebu", updated.Address)
	})
}
