package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze-solver/domain"
	"github.com/beka-birhanu/vinom-maze-solver/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MazeRepo handles the persistence of mazes in MongoDB.
type MazeRepo struct {
	collection *mongo.Collection
}

var _ i.MazeSource = &MazeRepo{}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// List returns the names of all stored mazes, sorted by name.
func (r *MazeRepo) List(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"name": 1}).
		SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer cursor.Close(ctx)

	var docs []dmn.StoredMaze
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}

	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		names = append(names, doc.Name)
	}
	return names, nil
}

// Load retrieves a maze text by name.
// Returns an error if the maze is not found or if an unexpected error occurs.
func (r *MazeRepo) Load(ctx context.Context, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var doc dmn.StoredMaze
	if err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", fmt.Errorf("%w: %s", dmn.ErrMazeNotFound, name)
		}
		return "", errors.New("unexpected error: " + err.Error())
	}
	return doc.Text, nil
}

// Save inserts or updates a maze in the repository.
// If a maze with the same name exists, its text is replaced.
func (r *MazeRepo) Save(ctx context.Context, name, text string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	filter := bson.M{"name": name}
	update := bson.M{
		"$set": bson.M{
			"text":      text,
			"updatedAt": time.Now(),
		},
		"$setOnInsert": bson.M{
			"_id": uuid.New().String(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}
