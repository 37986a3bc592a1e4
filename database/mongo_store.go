package database

import (
	"context"
	"sync"
	"time"

	"commuterhub/models"
	"commuterhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const stateDocID = "commuterhub-state"

// MongoStateStore is a StateStore backed by a single MongoDB state document.
// Reads are served from an in-memory copy; every Update writes the full state
// through to Mongo, so the next State() call observes it immediately.
type MongoStateStore struct {
	mu    sync.Mutex
	state models.AppState
	coll  *mongo.Collection
}

type stateDocument struct {
	ID           string               `bson:"_id"`
	Profile      *models.Profile      `bson:"profile,omitempty"`
	Reservations []models.Reservation `bson:"reservations"`
	Resources    []models.Resource    `bson:"resources"`
	UpdatedAt    time.Time            `bson:"updated_at"`
}

// NewMongoStateStore loads the persisted state document, seeding the default
// resource catalog when none exists yet.
func NewMongoStateStore(client *mongo.Client, dbName string) (*MongoStateStore, error) {
	coll := client.Database(dbName).Collection("state")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc stateDocument
	err := coll.FindOne(ctx, bson.M{"_id": stateDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		doc = stateDocument{
			ID:        stateDocID,
			Resources: DefaultResources(),
			UpdatedAt: time.Now(),
		}
		if _, err := coll.InsertOne(ctx, doc); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return &MongoStateStore{
		state: models.AppState{
			Profile:      doc.Profile,
			Reservations: doc.Reservations,
			Resources:    doc.Resources,
		},
		coll: coll,
	}, nil
}

func (s *MongoStateStore) State() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

func (s *MongoStateStore) Update(mutator func(models.AppState) models.AppState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = mutator(cloneState(s.state))
	s.persist()
}

// persist writes the current state through to the Mongo document. A failed
// write is logged, not surfaced: the in-memory state remains authoritative
// for the session and the next successful Update re-syncs the document.
func (s *MongoStateStore) persist() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	doc := stateDocument{
		ID:           stateDocID,
		Profile:      s.state.Profile,
		Reservations: s.state.Reservations,
		Resources:    s.state.Resources,
		UpdatedAt:    time.Now(),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": stateDocID}, doc, opts); err != nil {
		utils.GetLogger().Error("failed to persist state document", zap.Error(err))
	}
}
