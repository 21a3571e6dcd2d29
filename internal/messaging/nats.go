package messaging

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nats-io/stan.go"
)

// NATSClient publishes domain events to NATS Streaming. A client with no
// connection (empty Config.URL) is valid and drops publishes silently, so
// the API can run without a broker.
type NATSClient struct {
	conn stan.Conn
}

type Config struct {
	URL       string
	ClusterID string
	ClientID  string
}

func NewNATSClient(cfg Config) (*NATSClient, error) {
	if cfg.URL == "" {
		slog.Info("NATS URL not configured, event publishing disabled")
		return &NATSClient{}, nil
	}

	// Unique client ID to avoid conflicts between replicas
	uniqueClientID := fmt.Sprintf("%s-%s", cfg.ClientID, uuid.New().String()[:8])

	conn, err := stan.Connect(cfg.ClusterID, uniqueClientID, stan.NatsURL(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS Streaming: %w", err)
	}

	slog.Info("Connected to NATS Streaming",
		"url", cfg.URL, "cluster", cfg.ClusterID, "client", uniqueClientID)

	return &NATSClient{conn: conn}, nil
}

func (nc *NATSClient) Publish(subject string, data interface{}) error {
	if nc.conn == nil {
		return nil
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	if err := nc.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("failed to publish to subject %s: %w", subject, err)
	}

	return nil
}

func (nc *NATSClient) Close() error {
	if nc.conn != nil {
		return nc.conn.Close()
	}
	return nil
}
