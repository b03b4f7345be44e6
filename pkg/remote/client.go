package remote

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robotalks/eeprom.go/pkg/eeprom"
	"github.com/robotalks/eeprom.go/pkg/remote/msgs"
)

// DefaultCommandExpiration is the default expiration expecting a result.
const DefaultCommandExpiration = 1 * time.Second

// ErrClosed indicates the connection to the daemon is gone.
var ErrClosed = errors.New("connection closed")

// Client implements Storage by sending commands to a Server.
type Client struct {
	Expiration time.Duration
	// EventHandler receives events broadcast by the server.
	EventHandler func(msgs.Message)

	pipe   Pipe
	seq    uint32
	seqMap map[uint32]chan result
	err    error
	lock   sync.Mutex
}

type result struct {
	msg msgs.Message
	err error
}

// NewClient creates a Client over rw. Run must be running for
// commands to complete.
func NewClient(rw PacketReadWriter) *Client {
	c := &Client{
		Expiration: DefaultCommandExpiration,
		seqMap:     make(map[uint32]chan result),
	}
	c.pipe.ReadWriter = rw
	c.pipe.Handler = msgs.HandleTypedMsgFunc(c.handleTypedMsg)
	return c
}

// Run implements Runnable. Pending commands fail when it returns.
func (c *Client) Run(ctx context.Context) error {
	err := c.pipe.Run(ctx)
	c.lock.Lock()
	c.err = ErrClosed
	for seq, ch := range c.seqMap {
		delete(c.seqMap, seq)
		ch <- result{err: fmt.Errorf("%w: %v", ErrClosed, err)}
	}
	c.lock.Unlock()
	return err
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.pipe.Close()
}

// DoCommand sends a command and waits for the reply.
// A CommandErr reply is returned as the error.
func (c *Client) DoCommand(ctx context.Context, msg msgs.Message) (msgs.Message, error) {
	c.lock.Lock()
	if c.err != nil {
		c.lock.Unlock()
		return nil, c.err
	}
	c.seq++
	if c.seq == 0 {
		c.seq++
	}
	seq := c.seq
	ch := make(chan result, 1)
	c.seqMap[seq] = ch
	c.lock.Unlock()

	if err := c.pipe.SendCommandMsg(msg, seq); err != nil {
		c.forget(seq)
		return nil, err
	}

	timer := time.NewTimer(c.Expiration)
	defer timer.Stop()
	select {
	case r := <-ch:
		return r.msg, r.err
	case <-timer.C:
		c.forget(seq)
		return nil, context.DeadlineExceeded
	case <-ctx.Done():
		c.forget(seq)
		return nil, ctx.Err()
	}
}

func (c *Client) forget(seq uint32) {
	c.lock.Lock()
	delete(c.seqMap, seq)
	c.lock.Unlock()
}

func (c *Client) handleTypedMsg(ctx context.Context, msg msgs.Message, typed *msgs.Typed) error {
	if typed.IsEvent() {
		if h := c.EventHandler; h != nil {
			h(msg)
		}
		return nil
	}
	c.lock.Lock()
	ch := c.seqMap[typed.Sequence]
	delete(c.seqMap, typed.Sequence)
	c.lock.Unlock()
	if ch == nil {
		return nil
	}
	r := result{msg: msg}
	if cmdErr, ok := msg.(*msgs.CommandErr); ok {
		r.err = cmdErr
	}
	ch <- r
	return nil
}

// Devices implements Storage.
func (c *Client) Devices(ctx context.Context) ([]eeprom.DeviceInfo, error) {
	reply, err := c.DoCommand(ctx, &msgs.DeviceQuery{})
	if err != nil {
		return nil, err
	}
	list, ok := reply.(*msgs.DeviceList)
	if !ok {
		return nil, unexpectedReply(reply)
	}
	return list.Infos(), nil
}

// Page implements Storage.
func (c *Client) Page(ctx context.Context, device string) (int, int, error) {
	cmd := &msgs.PageQuery{}
	cmd.Device = device
	return c.pageCommand(ctx, cmd)
}

// SetPage implements Storage.
func (c *Client) SetPage(ctx context.Context, device string, page int) error {
	cmd := &msgs.PageSet{}
	cmd.Device = device
	cmd.Page = int64(page)
	_, _, err := c.pageCommand(ctx, cmd)
	return err
}

func (c *Client) pageCommand(ctx context.Context, cmd msgs.Message) (int, int, error) {
	reply, err := c.DoCommand(ctx, cmd)
	if err != nil {
		return 0, 0, err
	}
	r, ok := reply.(*msgs.PageReply)
	if !ok {
		return 0, 0, unexpectedReply(reply)
	}
	return int(r.Page), int(r.Pages), nil
}

// ReadPage implements Storage.
func (c *Client) ReadPage(ctx context.Context, device string) (*eeprom.Page, error) {
	cmd := &msgs.PageRead{}
	cmd.Device = device
	reply, err := c.DoCommand(ctx, cmd)
	if err != nil {
		return nil, err
	}
	r, ok := reply.(*msgs.PageData)
	if !ok {
		return nil, unexpectedReply(reply)
	}
	return &eeprom.Page{Number: int(r.Page), Data: r.Data, Filled: int(r.Filled)}, nil
}

// Write implements Storage.
func (c *Client) Write(ctx context.Context, device string, data []byte) (int, int, error) {
	cmd := &msgs.PageWrite{}
	cmd.Device = device
	cmd.Data = data
	reply, err := c.DoCommand(ctx, cmd)
	if err != nil {
		return 0, 0, err
	}
	r, ok := reply.(*msgs.WriteReply)
	if !ok {
		return 0, 0, unexpectedReply(reply)
	}
	return int(r.Page), int(r.Written), nil
}

func unexpectedReply(msg msgs.Message) error {
	return fmt.Errorf("unexpected reply %T", msg)
}
