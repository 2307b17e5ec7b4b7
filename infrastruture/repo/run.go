package repo

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// runDocument is the BSON version of a Run.
type runDocument struct {
	ID         string          `bson:"_id"`
	MazeID     string          `bson:"mazeId"`
	Algorithm  string          `bson:"algorithm"`
	Rows       int             `bson:"rows"`
	Cols       int             `bson:"cols"`
	Seed       int64           `bson:"seed"`
	Generation int             `bson:"generation"`
	Found      bool            `bson:"found"`
	Steps      int             `bson:"steps"`
	Explored   int             `bson:"explored"`
	Path       []maze.Position `bson:"path"`
	CreatedAt  time.Time       `bson:"createdAt"`
}

// RunRepo handles the persistence of solve runs.
type RunRepo struct {
	collection *mongo.Collection
}

// NewRunRepo creates a new RunRepo with the given MongoDB client, database name, and collection name.
func NewRunRepo(client *mongo.Client, dbName, collectionName string) *RunRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &RunRepo{
		collection: collection,
	}
}

// Save inserts a run record.
func (r *RunRepo) Save(ctx context.Context, run *domain.Run) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, toDocument(run)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("run already recorded")
		}
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByMaze retrieves the runs of a maze session, oldest first.
func (r *RunRepo) ByMaze(ctx context.Context, mazeID uuid.UUID) ([]*domain.Run, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"mazeId": mazeID.String()}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer cursor.Close(ctx)

	var docs []runDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}

	runs := make([]*domain.Run, 0, len(docs))
	for _, doc := range docs {
		run, err := fromDocument(doc)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func toDocument(run *domain.Run) runDocument {
	return runDocument{
		ID:         run.ID.String(),
		MazeID:     run.MazeID.String(),
		Algorithm:  run.Algorithm,
		Rows:       run.Rows,
		Cols:       run.Cols,
		Seed:       run.Seed,
		Generation: run.Generation,
		Found:      run.Found,
		Steps:      run.Steps,
		Explored:   run.Explored,
		Path:       run.Path,
		CreatedAt:  run.CreatedAt,
	}
}

func fromDocument(doc runDocument) (*domain.Run, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, errors.New("corrupt run id: " + doc.ID)
	}
	mazeID, err := uuid.Parse(doc.MazeID)
	if err != nil {
		return nil, errors.New("corrupt maze id: " + doc.MazeID)
	}
	return &domain.Run{
		ID:         id,
		MazeID:     mazeID,
		Algorithm:  doc.Algorithm,
		Rows:       doc.Rows,
		Cols:       doc.Cols,
		Seed:       doc.Seed,
		Generation: doc.Generation,
		Found:      doc.Found,
		Steps:      doc.Steps,
		Explored:   doc.Explored,
		Path:       doc.Path,
		CreatedAt:  doc.CreatedAt,
	}, nil
}
