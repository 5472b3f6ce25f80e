package mongo

import (
	"context"
	"time"

	gomongo "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const pingTimeout = 2 * time.Second

type Client struct {
	client *gomongo.Client
	db     *gomongo.Database
}

// New connects to MongoDB and pings the deployment before returning.
func New(ctx context.Context, uri, database string) (*Client, error) {

	client, err := gomongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Client{
		client: client,
		db:     client.Database(database),
	}, nil

}

func (c *Client) Database() *gomongo.Database {
	return c.db
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
