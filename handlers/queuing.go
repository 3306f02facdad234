// Package handlers queuing.go holds outbound frames that did not fit in a
// client's send buffer.
package handlers

import (
	"errors"
	"fmt"

	"github.com/sasha-s/go-deadlock"
)

var ErrQueueFull = errors.New("message queue full")

type MessageQueue struct {
	mu       deadlock.Mutex
	messages map[string][][]byte // map of client ID to message queue
	limit    int
}

func NewMessageQueue(limit int) *MessageQueue {
	return &MessageQueue{
		messages: make(map[string][][]byte),
		limit:    limit,
	}
}

func (mq *MessageQueue) Enqueue(clientID string, message []byte) error {
	mq.mu.Lock()
	defer mq.mu.Unlock()

	if mq.limit > 0 && len(mq.messages[clientID]) >= mq.limit {
		return fmt.Errorf("client %s: %w", clientID, ErrQueueFull)
	}
	mq.messages[clientID] = append(mq.messages[clientID], message)
	return nil
}

func (mq *MessageQueue) Dequeue(clientID string) ([]byte, error) {
	mq.mu.Lock()
	defer mq.mu.Unlock()

	messages, ok := mq.messages[clientID]
	if !ok || len(messages) == 0 {
		return nil, fmt.Errorf("no messages for client %s", clientID)
	}

	message := messages[0]
	messages[0] = nil
	mq.messages[clientID] = messages[1:]

	return message, nil
}

func (mq *MessageQueue) QueueSize(clientID string) int {
	mq.mu.Lock()
	defer mq.mu.Unlock()

	return len(mq.messages[clientID])
}

func (mq *MessageQueue) ClearQueue(clientID string) {
	mq.mu.Lock()
	defer mq.mu.Unlock()

	delete(mq.messages, clientID)
}
