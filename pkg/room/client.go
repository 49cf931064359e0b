package room

import (
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is a websocket subscriber to a table
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// ID identifies the client in logs
	ID uuid.UUID

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		Conn:  conn,
		ID:    uuid.New(),
		send:  make(chan interface{}, 256),
		Close: make(chan string, 1),
	}
}

// Send queues a message for the client
// Returns false if the client is too far behind to take it.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

func (c *Client) String() string {
	return c.ID.String()
}
