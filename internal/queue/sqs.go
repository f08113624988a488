package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// ErrRedeliver marks a handler failure that left the job untouched. The
// message is kept so the queue delivers it again after the visibility
// timeout.
var ErrRedeliver = errors.New("job message should be redelivered")

// SQSAPI is the part of *sqs.Client used here.
type SQSAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// Handler runs one import job.
type Handler interface {
	Process(ctx context.Context, msg JobMessage) error
}

type ConsumerConfig struct {
	QueueURL          string
	WaitTime          time.Duration
	MaxMessages       int32
	VisibilityTimeout time.Duration
	ErrorBackoff      time.Duration
}

// Consumer long-polls an SQS queue for job messages and hands them to a
// Handler one at a time. Every received message is deleted once handled:
// invalid messages are dropped, and a failed job is recorded on the job
// itself rather than retried.
type Consumer struct {
	client  SQSAPI
	handler Handler
	cfg     ConsumerConfig
}

func NewConsumer(client SQSAPI, handler Handler, cfg ConsumerConfig) *Consumer {
	if cfg.MaxMessages <= 0 {
		cfg.MaxMessages = 1
	}
	if cfg.ErrorBackoff <= 0 {
		cfg.ErrorBackoff = 5 * time.Second
	}
	return &Consumer{client: client, handler: handler, cfg: cfg}
}

// Run polls until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	logger := slog.Default().With("queue_url", c.cfg.QueueURL)
	logger.Info("queue consumer started")

	for {
		if ctx.Err() != nil {
			logger.Info("queue consumer stopped")
			return nil
		}

		out, err := c.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(c.cfg.QueueURL),
			MaxNumberOfMessages: c.cfg.MaxMessages,
			WaitTimeSeconds:     int32(c.cfg.WaitTime / time.Second),
			VisibilityTimeout:   int32(c.cfg.VisibilityTimeout / time.Second),
		})
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				continue
			}
			logger.Error("receive messages failed", "error", err)
			select {
			case <-ctx.Done():
			case <-time.After(c.cfg.ErrorBackoff):
			}
			continue
		}

		for _, m := range out.Messages {
			c.handle(ctx, logger, m)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, logger *slog.Logger, m types.Message) {
	logger = logger.With("message_id", aws.ToString(m.MessageId))

	msg, err := DecodeJobMessage([]byte(aws.ToString(m.Body)))
	if err != nil {
		logger.Warn("dropping invalid job message", "error", err)
	} else if err := c.handler.Process(ctx, msg); err != nil {
		if errors.Is(err, ErrRedeliver) {
			logger.Warn("import job not started, leaving message for redelivery", "import_id", msg.ImportID, "error", err)
			return
		}
		logger.Error("import job failed", "import_id", msg.ImportID, "library_id", msg.LibraryID, "error", err)
	}

	_, err = c.client.DeleteMessage(context.WithoutCancel(ctx), &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.cfg.QueueURL),
		ReceiptHandle: m.ReceiptHandle,
	})
	if err != nil {
		logger.Error("delete message failed", "error", err)
	}
}

// SQSPublisher sends JSON messages to a single queue.
type SQSPublisher struct {
	client   SQSAPI
	queueURL string
}

func NewSQSPublisher(client SQSAPI, queueURL string) *SQSPublisher {
	return &SQSPublisher{client: client, queueURL: queueURL}
}

func (p *SQSPublisher) PublishEmbedding(ctx context.Context, msg EmbeddingMessage) error {
	return p.send(ctx, msg)
}

func (p *SQSPublisher) PublishJob(ctx context.Context, msg JobMessage) error {
	if err := Validate(msg); err != nil {
		return err
	}
	return p.send(ctx, msg)
}

func (p *SQSPublisher) send(ctx context.Context, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// LogPublisher writes messages to the log instead of a queue. It stands in
// for SQS when running locally.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishEmbedding(ctx context.Context, msg EmbeddingMessage) error {
	p.logger.InfoContext(ctx, "embedding job", "book_ids", msg.BookIDs)
	return nil
}

func (p *LogPublisher) PublishJob(ctx context.Context, msg JobMessage) error {
	p.logger.InfoContext(ctx, "import job", "import_id", msg.ImportID, "library_id", msg.LibraryID,
		"bucket", msg.BucketName, "file_key", msg.FileKey)
	return nil
}
