package diagnostics

import (
	"context"
	"healthme-client/internal/app/models"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogRecorder(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	recorder := NewLogRecorder(zap.New(core))

	err := recorder.Record(context.Background(), &models.GatewayDiagnostic{
		RequestID:   "HLTHME_CLI_1",
		Method:      "GET",
		Path:        "/api/kyc/me",
		Kind:        "malformed_response",
		StatusCode:  200,
		BodySnippet: "<html>",
	})
	require.NoError(t, err)

	entries := logs.FilterMessage("gateway diagnostic").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/api/kyc/me", entries[0].ContextMap()["endpoint"])
	assert.Equal(t, "malformed_response", entries[0].ContextMap()["error_kind"])
}

func TestMongoRecorder(t *testing.T) {
	uri := os.Getenv("HEALTHME_TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("Skipping test because HEALTHME_TEST_MONGODB_URI is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	defer client.Disconnect(context.Background())

	collectionName := "gateway_diagnostics_test"
	collection := client.Database("healthme_client_test").Collection(collectionName)
	defer collection.Drop(context.Background())

	recorder := NewMongoRecorder(client, "healthme_client_test", collectionName, zap.NewNop())
	diagnostic := &models.GatewayDiagnostic{
		RequestID: "HLTHME_CLI_2",
		Method:    "GET",
		Path:      "/api/admin/logs",
		Kind:      "unreachable",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, recorder.Record(ctx, diagnostic))
	assert.NotEmpty(t, diagnostic.ID)

	var stored models.GatewayDiagnostic
	err = collection.FindOne(ctx, bson.M{"requestId": "HLTHME_CLI_2"}).Decode(&stored)
	require.NoError(t, err)
	assert.Equal(t, "/api/admin/logs", stored.Path)
}
