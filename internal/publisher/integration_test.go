//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"board_syncer/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) config(name string) Config {
	return Config{
		URL:          s.amqpURL,
		Exchange:     "test-exchange-" + name,
		RoutingKey:   "test-routing-key-" + name,
		QueueName:    "test-queue-" + name,
		AuthorPrefix: 16,
	}
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	pub, err := NewRabbitMQ(s.config("connect"), s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PostsAppendedInOrder() {
	cfg := s.config("order")
	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	posts := []domain.Post{
		{ID: 10, Time: "20240301100000", Login: "ptramo", Message: "premier"},
		{ID: 11, Time: "20240301100001", UserAgent: "curl/8.4.0", Message: "second"},
		{ID: 12, Time: "20240301100002", Login: "houplaboom", Message: "troisieme"},
	}
	err = pub.PostsAppended(s.ctx, "oxyboard", posts)
	s.NoError(err)

	msgs := s.consume(cfg, len(posts))
	s.Require().Len(msgs, len(posts))

	for i, msg := range msgs {
		var received PostMessage
		s.Require().NoError(json.Unmarshal(msg.Body, &received))
		s.Equal(posts[i].ID, received.ID)
		s.Equal("oxyboard", received.Board)
		s.Equal(posts[i].Message, received.Message)
	}
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessageFormat() {
	cfg := s.config("format")
	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	post := domain.Post{
		ID:        42,
		Time:      "20161026120000",
		UserAgent: "Mozilla/5.0 (X11; Linux x86_64; rv:48.0)",
		Message:   "Plop !",
	}
	s.NoError(pub.PostsAppended(s.ctx, "oxyboard", []domain.Post{post}))

	msgs := s.consume(cfg, 1)
	s.Require().Len(msgs, 1)
	msg := msgs[0]

	s.Equal("application/json", msg.ContentType)
	s.Equal("oxyboard/42", msg.MessageId)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)

	var received PostMessage
	s.Require().NoError(json.Unmarshal(msg.Body, &received))
	s.Equal("20161026120000", received.Time)
	s.Equal("Mozilla/5.0 (X11", received.Author)
	s.Empty(received.Login)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_EmptyBatch() {
	pub, err := NewRabbitMQ(s.config("empty"), s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	s.NoError(pub.PostsAppended(s.ctx, "oxyboard", nil))
}

func (s *RabbitMQIntegrationSuite) consume(cfg Config, n int) []amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	deliveries, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	var msgs []amqp.Delivery
	timeout := time.After(5 * time.Second)
	for len(msgs) < n {
		select {
		case msg := <-deliveries:
			msgs = append(msgs, msg)
		case <-timeout:
			s.Fail("Timeout waiting for message")
			return msgs
		}
	}
	return msgs
}
