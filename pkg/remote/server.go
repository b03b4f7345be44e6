package remote

import (
	"context"
	"fmt"
	"sync"

	"github.com/golang/glog"

	fx "github.com/robotalks/eeprom.go/pkg/framework"
	"github.com/robotalks/eeprom.go/pkg/remote/msgs"
)

// EventQueueSize is the number of events buffered per connection.
// Events beyond it are dropped while the peer is not reading.
const EventQueueSize = 16

// Server serves Storage commands over any number of packet connections.
// A successful write is broadcast to every connection as PageWritten.
type Server struct {
	Storage Storage

	lock  sync.Mutex
	pipes map[*Pipe]chan *msgs.Typed
}

// NewServer creates a Server.
func NewServer(storage Storage) *Server {
	return &Server{Storage: storage, pipes: make(map[*Pipe]chan *msgs.Typed)}
}

// Serve runs one connection until it fails or ctx is canceled.
func (s *Server) Serve(ctx context.Context, rw PacketReadWriter) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	p := NewPipe(rw)
	p.Handler = msgs.HandleTypedMsgFunc(func(ctx context.Context, msg msgs.Message, typed *msgs.Typed) error {
		return s.handleTypedMsg(ctx, p, msg, typed)
	})
	events := make(chan *msgs.Typed, EventQueueSize)
	s.lock.Lock()
	if s.pipes == nil {
		s.pipes = make(map[*Pipe]chan *msgs.Typed)
	}
	s.pipes[p] = events
	s.lock.Unlock()
	defer func() {
		s.lock.Lock()
		delete(s.pipes, p)
		s.lock.Unlock()
	}()
	go sendEvents(ctx, p, events)
	return p.Run(ctx)
}

func sendEvents(ctx context.Context, p *Pipe, events <-chan *msgs.Typed) {
	for {
		select {
		case <-ctx.Done():
			return
		case typed := <-events:
			if err := p.SendTyped(typed); err != nil {
				glog.V(1).Infof("send event %x: %v", typed.TypeId, err)
				return
			}
		}
	}
}

// Runnable returns a Runnable serving rw.
func (s *Server) Runnable(rw PacketReadWriter) fx.Runnable {
	return fx.RunnableFunc(func(ctx context.Context) error {
		return s.Serve(ctx, rw)
	})
}

// Broadcast queues an event to all connections without waiting for
// them to send it.
func (s *Server) Broadcast(msg msgs.Message) error {
	typed, err := msgs.TypedFrom(msg)
	if err != nil {
		return err
	}
	if !typed.IsEvent() {
		return fmt.Errorf("%T is not an event", msg)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	var dropped int
	for _, events := range s.pipes {
		select {
		case events <- typed:
		default:
			dropped++
		}
	}
	if dropped > 0 {
		glog.Warningf("event %T dropped for %d connections", msg, dropped)
	}
	return nil
}

func (s *Server) handleTypedMsg(ctx context.Context, p *Pipe, msg msgs.Message, typed *msgs.Typed) error {
	if !typed.IsCommand() || typed.IsReply() {
		return nil
	}
	reply, event, err := s.dispatch(ctx, msg)
	if err != nil {
		glog.V(1).Infof("command %T: %v", msg, err)
		reply = msgs.NewCommandErr(err)
	}
	if err = p.SendCommandMsg(reply, typed.Sequence); err != nil {
		return err
	}
	if event != nil {
		if err = s.Broadcast(event); err != nil {
			glog.Warningf("broadcast %T: %v", event, err)
		}
	}
	return nil
}

func (s *Server) dispatch(ctx context.Context, msg msgs.Message) (msgs.Message, msgs.Message, error) {
	switch m := msg.(type) {
	case *msgs.DeviceQuery:
		infos, err := s.Storage.Devices(ctx)
		if err != nil {
			return nil, nil, err
		}
		return msgs.NewDeviceList(infos), nil, nil
	case *msgs.PageQuery:
		return s.pageReply(ctx, m.Device)
	case *msgs.PageSet:
		if err := s.Storage.SetPage(ctx, m.Device, int(m.Page)); err != nil {
			return nil, nil, err
		}
		return s.pageReply(ctx, m.Device)
	case *msgs.PageRead:
		page, err := s.Storage.ReadPage(ctx, m.Device)
		if err != nil {
			return nil, nil, err
		}
		reply := &msgs.PageData{}
		reply.Device = m.Device
		reply.Page = uint32(page.Number)
		reply.Data = page.Data
		reply.Filled = uint32(page.Filled)
		return reply, nil, nil
	case *msgs.PageWrite:
		page, n, err := s.Storage.Write(ctx, m.Device, m.Data)
		if err != nil {
			return nil, nil, err
		}
		reply := &msgs.WriteReply{}
		reply.Device, reply.Page, reply.Written = m.Device, uint32(page), uint32(n)
		event := &msgs.PageWritten{}
		event.Device, event.Page, event.Written = m.Device, uint32(page), uint32(n)
		return reply, event, nil
	}
	return nil, nil, msgs.ErrUnsupportedCommand
}

func (s *Server) pageReply(ctx context.Context, device string) (msgs.Message, msgs.Message, error) {
	page, pages, err := s.Storage.Page(ctx, device)
	if err != nil {
		return nil, nil, err
	}
	reply := &msgs.PageReply{}
	reply.Device, reply.Page, reply.Pages = device, uint32(page), uint32(pages)
	return reply, nil, nil
}
