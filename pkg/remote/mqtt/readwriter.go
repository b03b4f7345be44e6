package mqtt

import (
	"io"
	"sync"
)

// Topic names under a node.
const (
	TopicCmd  = "cmd"
	TopicMsg  = "msg"
	TopicMeta = "meta"
)

// NodeTopic builds the topic of a node.
func NodeTopic(node, name string) string {
	return node + "/" + name
}

// ReadWriter implements PacketReadWriter over a pair of topics.
type ReadWriter struct {
	Queue    *Queue
	SubTopic string
	PubTopic string
	// CloseQueue also closes the Queue when the ReadWriter is closed.
	CloseQueue bool

	packetCh  chan []byte
	done      chan struct{}
	closeOnce sync.Once
	sub       *Subscription
}

// NewPacketReadWriter creates the ReadWriter.
func NewPacketReadWriter(q *Queue) *ReadWriter {
	return &ReadWriter{
		Queue:    q,
		packetCh: make(chan []byte, 16),
		done:     make(chan struct{}),
	}
}

// WithTopics specifies the topics.
func (p *ReadWriter) WithTopics(sub, pub string) *ReadWriter {
	p.SubTopic, p.PubTopic = sub, pub
	return p
}

// ForClient sets topics using default convention for clients:
// SubTopic = node/msg
// PubTopic = node/cmd
func (p *ReadWriter) ForClient(node string) *ReadWriter {
	return p.WithTopics(NodeTopic(node, TopicMsg), NodeTopic(node, TopicCmd))
}

// ForServer sets topics using default convention for the daemon:
// SubTopic = node/cmd
// PubTopic = node/msg
func (p *ReadWriter) ForServer(node string) *ReadWriter {
	return p.WithTopics(NodeTopic(node, TopicCmd), NodeTopic(node, TopicMsg))
}

// Subscribe starts receiving packets from SubTopic.
func (p *ReadWriter) Subscribe() *ReadWriter {
	p.sub = p.Queue.Sub(p.SubTopic, Handler(p.handleMsg))
	return p
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	select {
	case pkt := <-p.packetCh:
		return pkt, nil
	case <-p.done:
		return nil, io.EOF
	}
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	select {
	case <-p.done:
		return io.ErrClosedPipe
	default:
	}
	token := p.Queue.Pub(p.PubTopic, pkt)
	token.Wait()
	return token.Error()
}

// Close implements io.Closer.
func (p *ReadWriter) Close() (err error) {
	p.closeOnce.Do(func() {
		close(p.done)
		if p.sub != nil {
			err = p.sub.Close()
		}
		if p.CloseQueue {
			p.Queue.Close()
		}
	})
	return
}

func (p *ReadWriter) handleMsg(_ string, payload []byte) {
	select {
	case p.packetCh <- payload:
	case <-p.done:
	}
}
