package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nick-the-BinaryTree/allergy-albert/internal/model"
)

type mockSender struct {
	mu       sync.Mutex
	sent     []Delivery
	sendFunc func(ctx context.Context, recipientID string, reply model.ReplyAction) error
}

func (m *mockSender) Send(ctx context.Context, recipientID string, reply model.ReplyAction) error {
	m.mu.Lock()
	m.sent = append(m.sent, Delivery{RecipientID: recipientID, Reply: reply})
	m.mu.Unlock()
	if m.sendFunc != nil {
		return m.sendFunc(ctx, recipientID, reply)
	}
	return nil
}

func (m *mockSender) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func TestOutbox_DeliversQueuedReplies(t *testing.T) {
	t.Parallel()
	sender := &mockSender{}
	o := NewOutbox(sender, OutboxConfig{Workers: 1})
	o.Start()

	for i := 0; i < 5; i++ {
		require.True(t, o.Enqueue(Delivery{RecipientID: "u", Reply: model.TextReply("hi")}))
	}
	o.Stop()

	assert.Equal(t, 5, sender.count())
	assert.False(t, o.IsRunning())
}

func TestOutbox_EnqueueRejectedWhenStopped(t *testing.T) {
	t.Parallel()
	o := NewOutbox(&mockSender{}, OutboxConfig{})

	assert.False(t, o.Enqueue(Delivery{RecipientID: "u", Reply: model.TextReply("hi")}))

	o.Start()
	o.Stop()
	assert.False(t, o.Enqueue(Delivery{RecipientID: "u", Reply: model.TextReply("hi")}))
}

func TestOutbox_EmptyReplyIgnored(t *testing.T) {
	t.Parallel()
	o := NewOutbox(&mockSender{}, OutboxConfig{})
	o.Start()
	defer o.Stop()

	assert.False(t, o.Enqueue(Delivery{RecipientID: "u"}))
}

func TestOutbox_FullQueueDrops(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	sender := &mockSender{sendFunc: func(context.Context, string, model.ReplyAction) error {
		<-release
		return nil
	}}
	o := NewOutbox(sender, OutboxConfig{QueueSize: 1, Workers: 1})
	o.Start()

	// first is picked up by the worker and blocks, second fills the queue
	require.True(t, o.Enqueue(Delivery{RecipientID: "a", Reply: model.TextReply("1")}))
	require.Eventually(t, func() bool { return sender.count() == 1 }, time.Second, time.Millisecond)
	require.True(t, o.Enqueue(Delivery{RecipientID: "b", Reply: model.TextReply("2")}))

	assert.False(t, o.Enqueue(Delivery{RecipientID: "c", Reply: model.TextReply("3")}))

	close(release)
	o.Stop()
	assert.Equal(t, 2, sender.count())
}

func TestOutbox_SendErrorDoesNotStopWorker(t *testing.T) {
	t.Parallel()
	sender := &mockSender{sendFunc: func(context.Context, string, model.ReplyAction) error {
		return errors.New("graph api 500")
	}}
	o := NewOutbox(sender, OutboxConfig{Workers: 1})
	o.Start()

	o.Enqueue(Delivery{RecipientID: "a", Reply: model.TextReply("1")})
	o.Enqueue(Delivery{RecipientID: "b", Reply: model.TextReply("2")})
	o.Stop()

	assert.Equal(t, 2, sender.count())
}
