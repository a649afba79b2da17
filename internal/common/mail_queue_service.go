package common

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"fundforge/platform/internal/logging"
)

// ReminderEmailStream is the Redis Stream the mail sender consumes.
const ReminderEmailStream = "reminder:emails"

// MailQueueService hands reminder emails to the delivery pipeline through a
// Redis Stream.
type MailQueueService struct {
	client *redis.Client
}

func NewMailQueueService(client *redis.Client) *MailQueueService {
	return &MailQueueService{client: client}
}

// ReminderEmailItem is one queued reminder email.
type ReminderEmailItem struct {
	UserID    int64  `json:"user_id"`
	ProjectID int64  `json:"project_id"`
	QueuedAt  string `json:"queued_at"`
}

// EnqueueReminderEmail adds one email to the stream.
func (s *MailQueueService) EnqueueReminderEmail(ctx context.Context, item *ReminderEmailItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder email: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: ReminderEmailStream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}

	if _, err := s.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to add to stream: %w", err)
	}

	return nil
}

// EnqueueReminderEmailBatch pipelines a batch of emails onto the stream.
func (s *MailQueueService) EnqueueReminderEmailBatch(ctx context.Context, items []*ReminderEmailItem) error {
	if len(items) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			logging.Warn("failed to marshal reminder email", "user_id", item.UserID, "error", err.Error())
			continue
		}

		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: ReminderEmailStream,
			Values: map[string]interface{}{
				"data": string(data),
			},
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to enqueue reminder email batch: %w", err)
	}

	return nil
}
