// mongostore.go - Document store backed by MongoDB

package mongostore // Declares the package name

import ( // Import required packages
	"context" // Request-scoped deadlines
	"errors"  // Sentinel checks
	"fmt"     // Error wrapping

	"go.mongodb.org/mongo-driver/bson"           // Filters, updates, projections
	"go.mongodb.org/mongo-driver/mongo"          // MongoDB client
	"go.mongodb.org/mongo-driver/mongo/options"  // Query and client options
	"go.mongodb.org/mongo-driver/mongo/readpref" // Ping target

	"storefront-backend/models" // Entities
	"storefront-backend/store"  // Store contract
)

// Collection names
const (
	usersCollection      = "users"
	productsCollection   = "products"
	categoriesCollection = "categories"
	ordersCollection     = "orders"
)

// Store implements store.Store on a mongo database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ store.Store = (*Store)(nil)

// Open connects to uri, verifies the primary is reachable and ensures the unique
// indexes exist. ctx bounds the whole handshake.
func Open(ctx context.Context, uri, database string) (*Store, error) {
	opts := options.Client().ApplyURI(uri).SetRegistry(newRegistry())
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := &Store{client: client, db: client.Database(database)}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	unique := map[string]string{
		usersCollection:      "email",
		categoriesCollection: "name",
	}
	for coll, field := range unique {
		_, err := s.db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("create unique index %s.%s: %w", coll, field, err)
		}
	}
	return nil
}

func (s *Store) Users() store.UserStore {
	return &userStore{newCollection[models.User](s.db, usersCollection)}
}

func (s *Store) Products() store.ProductStore {
	return &productStore{newCollection[models.Product](s.db, productsCollection)}
}

func (s *Store) Categories() store.CategoryStore {
	return &categoryStore{newCollection[models.Category](s.db, categoriesCollection)}
}

func (s *Store) Orders() store.OrderStore {
	return &orderStore{newCollection[models.Order](s.db, ordersCollection)}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// collection holds the CRUD calls every entity shares.
type collection[T any] struct {
	c          *mongo.Collection
	projection bson.M // Fields left out of every read, nil for none
}

func newCollection[T any](db *mongo.Database, name string) collection[T] {
	return collection[T]{c: db.Collection(name)}
}

func (c collection[T]) create(ctx context.Context, rec *T) error {
	_, err := c.c.InsertOne(ctx, rec)
	return translate(err)
}

func (c collection[T]) list(ctx context.Context, sort bson.D) ([]T, error) {
	opts := options.Find()
	if c.projection != nil {
		opts.SetProjection(c.projection)
	}
	if sort != nil {
		opts.SetSort(sort)
	}
	cur, err := c.c.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c collection[T]) findOne(ctx context.Context, filter bson.M, withProjection bool) (*T, error) {
	opts := options.FindOne()
	if withProjection && c.projection != nil {
		opts.SetProjection(c.projection)
	}
	var rec T
	if err := c.c.FindOne(ctx, filter, opts).Decode(&rec); err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

// update $sets fields and returns the document as it is after the write.
func (c collection[T]) update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	if len(fields) == 0 {
		return c.findOne(ctx, bson.M{"_id": id}, true) // $set with no fields is rejected by the server
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if c.projection != nil {
		opts.SetProjection(c.projection)
	}
	var rec T
	err := c.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&rec)
	if err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

// delete does not report whether a document existed.
func (c collection[T]) delete(ctx context.Context, id string) error {
	_, err := c.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// translate maps a missed lookup and unique index violations onto the store
// sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	}
	return err
}
