package diagnostics

import (
	"context"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type mongoRecorder struct {
	collection *mongo.Collection
	Log        *zap.Logger
}

// NewMongoRecorder stores gateway failures so malformed backend responses can
// be inspected after the fact.
func NewMongoRecorder(client *mongo.Client, dbName, collectionName string, logger *zap.Logger) contracts.DiagnosticsRecorder {
	return &mongoRecorder{
		collection: client.Database(dbName).Collection(collectionName),
		Log:        logger,
	}
}

func (r *mongoRecorder) Record(ctx context.Context, diagnostic *models.GatewayDiagnostic) error {
	if diagnostic.ID == "" {
		diagnostic.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.collection.InsertOne(ctx, diagnostic)
	if err != nil {
		r.Log.Error("mongoRecorder.Record error inserting diagnostic",
			zap.String(constvars.LoggingRequestIDKey, diagnostic.RequestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
