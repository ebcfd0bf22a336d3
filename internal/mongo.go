package internal

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"paygate/config"
	"paygate/services"
)

const collectionLog = "payment_log"

type MongoDB struct {
	clientOptions *options.ClientOptions
	database      string
}

func NewMongoClient(conf *config.Config) (*MongoDB, error) {
	if !conf.Mongo.Enabled {
		return nil, nil
	}
	if conf.Mongo.Database == "" {
		return nil, fmt.Errorf("mongo database name is empty")
	}
	connectionUri := fmt.Sprintf("mongodb://%s:%s", conf.Mongo.Host, conf.Mongo.Port)
	clientOptions := options.Client().ApplyURI(connectionUri)
	if conf.Mongo.User != "" {
		clientOptions.SetAuth(options.Credential{
			Username:   conf.Mongo.User,
			Password:   conf.Mongo.Password,
			AuthSource: conf.Mongo.Database,
		})
	}
	return &MongoDB{
		clientOptions: clientOptions,
		database:      conf.Mongo.Database,
	}, nil
}

func (m *MongoDB) connect(ctx context.Context) (*mongo.Client, error) {
	connection, err := mongo.Connect(ctx, m.clientOptions)
	if err != nil {
		return nil, err
	}
	return connection, nil
}

// WriteLogMessage inserts one record; a failed disconnect is reported when the insert succeeded.
func (m *MongoDB) WriteLogMessage(ctx context.Context, data services.Data) (err error) {
	connection, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if e := connection.Disconnect(ctx); e != nil && err == nil {
			err = fmt.Errorf("mongodb disconnect: %w", e)
		}
	}()
	collection := connection.Database(m.database).Collection(collectionLog)
	if _, err = collection.InsertOne(ctx, data); err != nil {
		return fmt.Errorf("insert %s: %w", data.DataType(), err)
	}
	return nil
}
