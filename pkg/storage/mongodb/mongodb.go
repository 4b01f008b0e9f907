package mongodb

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/urmii20/burrow/internal/config"
	"github.com/urmii20/burrow/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	_defaultConnAttempts   = 10
	_defaultBaseRetryDelay = 100 * time.Millisecond
	_defaultMaxRetryDelay  = 5 * time.Second
	_defaultConnectTimeout = 10 * time.Second

	_backoffMultiplier = 2
)

// Mongo wraps a connected client and the service database. Construct it
// once and pass it down; there is no ambient connection state.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database

	connAttempts   int
	baseRetryDelay time.Duration
	maxRetryDelay  time.Duration
	connectTimeout time.Duration
}

func NewMongo(cfg *config.Mongo, log logger.Logger, opts ...Option) (*Mongo, error) {
	const op = "storage.mongodb.NewMongo"

	m := &Mongo{
		connAttempts:   _defaultConnAttempts,
		baseRetryDelay: _defaultBaseRetryDelay,
		maxRetryDelay:  _defaultMaxRetryDelay,
		connectTimeout: _defaultConnectTimeout,
	}

	for _, opt := range opts {
		opt(m)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%s: validation: %w", op, err)
	}

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(m.connectTimeout)

	var lastErr error
	currentBackoff := m.baseRetryDelay
	for attemptCount := 1; attemptCount <= m.connAttempts; attemptCount++ {
		client, err := m.connect(clientOpts)
		if err == nil {
			m.Client = client
			m.DB = client.Database(cfg.Database)
			return m, nil
		}
		lastErr = err

		jitter := time.Duration(
			rand.Int64N(int64(currentBackoff * _backoffMultiplier)),
		)
		if jitter > m.maxRetryDelay {
			jitter = m.maxRetryDelay
		}

		log.Infow("MongoDB connection attempt failed",
			"operation", op,
			"attempt", attemptCount,
			"retry_after", jitter.String(),
			"error", err,
		)

		time.Sleep(jitter)

		nextBackoff := currentBackoff * _backoffMultiplier
		if nextBackoff > m.maxRetryDelay {
			nextBackoff = m.maxRetryDelay
		}
		currentBackoff = nextBackoff
	}

	return nil, fmt.Errorf("%s: connect after %d attempts: %w", op, m.connAttempts, lastErr)
}

func (m *Mongo) connect(clientOpts *options.ClientOptions) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), m.connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping: %w", err)
	}

	return client, nil
}

func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.DB.Collection(name)
}

func (m *Mongo) Close(ctx context.Context) error {
	if m.Client == nil {
		return nil
	}
	if err := m.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("storage.mongodb.Close: disconnect: %w", err)
	}
	return nil
}
