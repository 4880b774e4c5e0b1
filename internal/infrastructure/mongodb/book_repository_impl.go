package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookshelf/internal/domain/entity"
	"bookshelf/internal/domain/repository"
)

const booksCollection = "books"

type BookRepository struct {
	coll *mongo.Collection
}

func NewBookRepository(db *mongo.Database) *BookRepository {
	return &BookRepository{coll: db.Collection(booksCollection)}
}

// EnsureIndexes creates the unique title index backing the catalog's key
// invariant.
func (r *BookRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *BookRepository) List(ctx context.Context) ([]entity.Book, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	books := make([]entity.Book, 0)
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookRepository) GetByTitle(ctx context.Context, title string) (*entity.Book, error) {
	b := &entity.Book{}
	if err := r.coll.FindOne(ctx, bson.M{"title": title}).Decode(b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *BookRepository) Create(ctx context.Context, b *entity.Book) (string, error) {
	res, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", repository.ErrDuplicate
		}
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	b.ID = id
	return id.Hex(), nil
}

func (r *BookRepository) UpdateByTitle(ctx context.Context, title string, patch entity.BookPatch) error {
	set := PatchToSet(patch)
	if len(set) == 0 {
		// A no-op patch still reports whether the record exists.
		if _, err := r.GetByTitle(ctx, title); err != nil {
			return err
		}
		return nil
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"title": title}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *BookRepository) DeleteByTitle(ctx context.Context, title string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"title": title})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// PatchToSet converts a partial update into the $set document, keeping only
// the fields the caller provided.
func PatchToSet(patch entity.BookPatch) bson.M {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Author != nil {
		set["author"] = *patch.Author
	}
	if patch.Year != nil {
		set["year"] = *patch.Year
	}
	if patch.Cover != nil {
		set["cover"] = *patch.Cover
	}
	if patch.URL != nil {
		set["url"] = *patch.URL
	}
	return set
}

var _ repository.BookRepository = (*BookRepository)(nil)
