package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"board_syncer/internal/domain"
)

type RabbitMQ struct {
	conn         *amqp.Connection
	channel      *amqp.Channel
	exchange     string
	routingKey   string
	authorPrefix int
	logger       *slog.Logger
}

type Config struct {
	URL          string
	Exchange     string
	RoutingKey   string
	QueueName    string
	AuthorPrefix int
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:         conn,
		channel:      ch,
		exchange:     cfg.Exchange,
		routingKey:   cfg.RoutingKey,
		authorPrefix: cfg.AuthorPrefix,
		logger:       logger,
	}, nil
}

// PostMessage is the body published for every post appended to the display.
type PostMessage struct {
	Board     string        `json:"board"`
	ID        domain.PostID `json:"id"`
	Time      string        `json:"time"`
	Login     string        `json:"login,omitempty"`
	UserAgent string        `json:"user_agent,omitempty"`
	Author    string        `json:"author"`
	Message   string        `json:"message"`
	Timestamp time.Time     `json:"timestamp"`
}

func newPostMessage(board string, post *domain.Post, authorPrefix int, now time.Time) PostMessage {
	return PostMessage{
		Board:     board,
		ID:        post.ID,
		Time:      post.Time,
		Login:     post.Login,
		UserAgent: post.UserAgent,
		Author:    post.Author(authorPrefix),
		Message:   post.Message,
		Timestamp: now.UTC(),
	}
}

// PostsAppended implements service.AppendListener. Posts are published one
// message each, in display order.
func (r *RabbitMQ) PostsAppended(ctx context.Context, board string, posts []domain.Post) error {
	for i := range posts {
		if err := r.publish(ctx, board, &posts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *RabbitMQ) publish(ctx context.Context, board string, post *domain.Post) error {
	body, err := json.Marshal(newPostMessage(board, post, r.authorPrefix, time.Now()))
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    fmt.Sprintf("%s/%s", board, post.ID),
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish post %s: %w", post.ID, err)
	}

	r.logger.Debug("published post", "board", board, "post_id", post.ID)
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
