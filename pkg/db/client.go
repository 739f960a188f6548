package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/anonymous-namo-1/golden-era/pkg/config"
	"github.com/anonymous-namo-1/golden-era/pkg/logger"
)

// Client wraps the shared document-store connection. It is created once at
// startup and closed once at shutdown; repositories receive collection handles
// from it instead of reaching for a global.
type Client struct {
	conn *mongo.Client
	db   *mongo.Database
}

// Pinger exposes the health check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options carries optional instrumentation for New.
type Options struct {
	Monitor *event.CommandMonitor
}

// New connects to MongoDB using the provided configuration and verifies the
// primary is reachable.
func New(ctx context.Context, cfg config.MongoConfig, logg *logger.Logger, opts Options) (*Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo uri is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("mongo database is required")
	}

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	if cfg.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.ServerSelectionTimeout > 0 {
		clientOpts.SetServerSelectionTimeout(cfg.ServerSelectionTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if opts.Monitor != nil {
		clientOpts.SetMonitor(opts.Monitor)
	}

	connectCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	conn, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}
	if err := conn.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = conn.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	if logg != nil {
		logg.Info(logg.WithField(ctx, "database", cfg.Database), "database connection established")
	}

	return &Client{conn: conn, db: conn.Database(cfg.Database)}, nil
}

// Database returns the configured database handle.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Collection returns a handle for the named collection.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Ping verifies the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.conn == nil {
		return fmt.Errorf("mongo client not initialized")
	}
	return c.conn.Ping(ctx, readpref.Primary())
}

// Close disconnects the pooled connections.
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Disconnect(ctx)
}
