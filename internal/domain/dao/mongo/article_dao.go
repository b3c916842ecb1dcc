package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gidacan/blog-backend/internal/domain/dao"
	"github.com/gidacan/blog-backend/internal/domain/dao/mongo/document"
	"github.com/gidacan/blog-backend/internal/domain/dao/mongo/mapper"
	"github.com/gidacan/blog-backend/internal/domain/entity"
)

// articleDAO implements dao.ArticleDAO using MongoDB.
type articleDAO struct {
	*baseMongoDAO[entity.Article, document.ArticleDocument]
	mapper *mapper.ArticleMapper
}

// NewArticleDAO creates a new MongoDB-based ArticleDAO.
func NewArticleDAO(db *mongo.Database, idCounter *IDCounter) dao.ArticleDAO {
	return &articleDAO{
		baseMongoDAO: newBaseMongoDAO[entity.Article, document.ArticleDocument](
			db,
			document.ArticleDocument{}.CollectionName(),
			idCounter,
		),
		mapper: mapper.NewArticleMapper(),
	}
}

// Create inserts a new article into MongoDB.
func (d *articleDAO) Create(ctx context.Context, article *entity.Article) error {
	id, err := d.nextID(ctx)
	if err != nil {
		return err
	}
	article.ID = id
	article.CreatedAt = time.Now()
	article.UpdatedAt = article.CreatedAt

	doc := d.mapper.ToDocument(article)
	return d.insertOne(ctx, doc)
}

// FindByID retrieves an article by its numeric ID.
func (d *articleDAO) FindByID(ctx context.Context, id uint) (*entity.Article, error) {
	var doc document.ArticleDocument
	err := d.findOneByFilter(ctx, bson.M{"numeric_id": id}, nil, &doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d.mapper.ToEntity(&doc), nil
}

// FindByName retrieves an article by exact name. Name is not unique, so the
// lowest numeric ID wins to keep the lookup deterministic.
func (d *articleDAO) FindByName(ctx context.Context, name string) (*entity.Article, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "numeric_id", Value: 1}})

	var doc document.ArticleDocument
	err := d.findOneByFilter(ctx, bson.M{"name": name}, opts, &doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d.mapper.ToEntity(&doc), nil
}

// Update replaces the stored fields of an existing article.
func (d *articleDAO) Update(ctx context.Context, article *entity.Article) error {
	article.UpdatedAt = time.Now()
	doc := d.mapper.ToDocument(article)

	filter := bson.M{"numeric_id": article.ID}
	update := bson.M{"$set": doc}
	return d.updateOne(ctx, filter, update)
}

// FindAll retrieves articles with pagination, newest first.
func (d *articleDAO) FindAll(ctx context.Context, page, size int) ([]*entity.Article, int64, error) {
	filter := bson.M{}

	total, err := d.count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((page - 1) * size)
	opts := options.Find().
		SetSkip(skip).
		SetLimit(int64(size)).
		SetSort(bson.D{{Key: "numeric_id", Value: -1}})

	var docs []*document.ArticleDocument
	if err := d.findManyByFilter(ctx, filter, opts, &docs); err != nil {
		return nil, 0, err
	}

	return d.mapper.ToEntities(docs), total, nil
}

// Count returns the total number of articles.
func (d *articleDAO) Count(ctx context.Context) (int64, error) {
	return d.count(ctx, bson.M{})
}

// ExistsBy checks if an article exists by a field value.
func (d *articleDAO) ExistsBy(ctx context.Context, field string, value any) (bool, error) {
	return d.existsBy(ctx, field, value)
}
