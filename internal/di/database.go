package di

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/gidacan/blog-backend/internal/config"
	"github.com/gidacan/blog-backend/internal/domain/dao/mongo/document"
	pkglogger "github.com/gidacan/blog-backend/pkg/logger"
)

// MongoDatabase bundles the client with the selected database
type MongoDatabase struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// DatabaseModule provides the MongoDB connection
var DatabaseModule = fx.Options(
	fx.Provide(newMongoDatabase),
	fx.Provide(func(m *MongoDatabase) *mongo.Database { return m.DB }),
	fx.Invoke(ensureIndexes),
)

func newMongoDatabase(lc fx.Lifecycle, cfg *config.DatabaseConfig, base *zap.Logger) (*MongoDatabase, error) {
	logger := pkglogger.WithContext(base, zap.String("component", "mongo"))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI()))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	logger.Info("connected to mongodb",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Name))

	db := &MongoDatabase{
		Client: client,
		DB:     client.Database(cfg.Name),
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("disconnecting from mongodb")
			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// ensureIndexes creates the indexes the lookups rely on.
// Article names are intentionally non-unique; name lookups resolve to the
// lowest numeric_id match.
func ensureIndexes(lc fx.Lifecycle, m *MongoDatabase, base *zap.Logger) {
	logger := pkglogger.WithContext(base, zap.String("component", "mongo"))
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			users := m.DB.Collection(document.UserDocument{}.CollectionName())
			_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
				{Keys: bson.D{{Key: "numeric_id", Value: 1}}, Options: options.Index().SetUnique(true)},
				{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
				{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			})
			if err != nil {
				return err
			}

			articles := m.DB.Collection(document.ArticleDocument{}.CollectionName())
			_, err = articles.Indexes().CreateMany(ctx, []mongo.IndexModel{
				{Keys: bson.D{{Key: "numeric_id", Value: 1}}, Options: options.Index().SetUnique(true)},
				{Keys: bson.D{{Key: "name", Value: 1}}},
			})
			if err != nil {
				return err
			}

			logger.Info("database indexes ensured")
			return nil
		},
	})
}
