// Package handlers/client.go
package handlers

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
	readLimit  = 1 << 12
)

var errClientClosed = errors.New("client closed")

// Client is one websocket connection. It satisfies Conn for the hub.
type Client struct {
	ID           string
	Conn         *websocket.Conn
	send         chan []byte
	frameType    int
	messageQueue *MessageQueue
	hub          *Hub

	mu      sync.Mutex // guards closing and sends on send
	closing bool
}

func NewClient(conn *websocket.Conn, id string, hub *Hub) *Client {
	frameType := websocket.TextMessage
	if hub.codec.Binary() {
		frameType = websocket.BinaryMessage
	}
	return &Client{
		ID:           id,
		Conn:         conn,
		send:         make(chan []byte, 256),
		frameType:    frameType,
		messageQueue: hub.queue,
		hub:          hub,
	}
}

// Send never blocks. Frames that do not fit in the send buffer are queued;
// once the queue is full too the client is considered dead.
func (c *Client) Send(message []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closing {
		return errClientClosed
	}
	if c.messageQueue.QueueSize(c.ID) == 0 {
		select {
		case c.send <- message:
			return nil
		default:
			log.Printf("Send buffer is full, buffering message for client %s", c.ID)
		}
	}
	return c.messageQueue.Enqueue(c.ID, message)
}

// Close stops accepting frames. WritePump still writes everything already
// buffered, then sends a close frame and closes the socket.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closing {
		c.closing = true
		close(c.send)
	}
	return nil
}

// abort closes the socket without draining.
func (c *Client) abort() {
	c.Close()
	if err := c.Conn.Close(); err != nil {
		log.Println("close:", err)
	}
}

func (c *Client) ReadPump() {
	defer c.hub.Leave(c.ID)

	c.Conn.SetReadLimit(readLimit)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket error: %v", err)
			}
			return
		}
		handleClientMessage(c, message)
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.messageQueue.ClearQueue(c.ID)
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				if err := c.flushQueue(); err != nil {
					log.Printf("error writing to websocket: %v", err)
				}
				_ = c.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				if err := c.Conn.Close(); err != nil {
					log.Println("close:", err)
				}
				return
			}
			if err := c.write(c.frameType, message); err != nil {
				log.Printf("error writing to websocket: %v", err)
				c.abort()
				return
			}
			if len(c.send) > 0 {
				continue
			}
			if err := c.flushQueue(); err != nil {
				log.Printf("error writing to websocket: %v", err)
				c.abort()
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				c.abort()
				return
			}
		}
	}
}

func (c *Client) flushQueue() error {
	for {
		message, err := c.messageQueue.Dequeue(c.ID)
		if err != nil {
			return nil
		}
		if err := c.write(c.frameType, message); err != nil {
			return err
		}
	}
}

func (c *Client) write(messageType int, data []byte) error {
	_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.Conn.WriteMessage(messageType, data)
}
