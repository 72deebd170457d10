package hermes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// SubjectChatAnalyzed is the NATS subject announcing a completed analysis.
const SubjectChatAnalyzed = "swarm.scribe.chat.analyzed"

// ChatAnalyzedEvent is published after a chat upload has been parsed,
// analyzed and persisted. Downstream agents subscribe to pick up new
// conversation insight without polling the API.
type ChatAnalyzedEvent struct {
	ChatID       string   `json:"chat_id,omitempty"`
	Filename     string   `json:"filename"`
	Participants []string `json:"participants"`
	MessageCount int      `json:"message_count"`
	Sentiment    string   `json:"sentiment"`
	Timestamp    string   `json:"timestamp"`
}

type Client struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewClient(ctx context.Context, url, token string, logger *slog.Logger) (*Client, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Client{conn: nc, logger: logger}, nil
}

func (c *Client) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return c.conn.Publish(subject, payload)
}

func (c *Client) Close() {
	c.conn.Close()
}
