package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/eeprom.go/pkg/remote"
)

// NodeMeta is published (retained) to node/meta while the daemon is online.
type NodeMeta struct {
	Node      string   `json:"node"`
	MachineID string   `json:"machine-id,omitempty"`
	Devices   []string `json:"devices,omitempty"`
}

// ServeFunc serves one packet connection.
type ServeFunc func(context.Context, remote.PacketReadWriter) error

// Server exposes a daemon on a broker under a node name.
type Server struct {
	Queue *Queue
	Meta  NodeMeta
	Serve ServeFunc
}

// ValidNode checks the node name can be used as one topic level.
func ValidNode(node string) error {
	if node == "" || strings.ContainsAny(node, "/+#") {
		return fmt.Errorf("invalid node name %q", node)
	}
	return nil
}

// NewServer creates a Server.
func NewServer(brokerURL string, meta NodeMeta, serve ServeFunc) (*Server, error) {
	if err := ValidNode(meta.Node); err != nil {
		return nil, err
	}
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+NodeTopic(meta.Node, TopicMeta), nil, 1, true)
	if opts.ClientID == "" {
		opts.SetClientID("eeprom:" + meta.Node)
	}
	s := &Server{
		Queue: NewQueue(opts, topicPrefix),
		Meta:  meta,
		Serve: serve,
	}
	s.Queue.OnConnect = func(*Queue) { s.publishMeta() }
	return s, nil
}

// Name implements Named.
func (s *Server) Name() string {
	return "mqtt:" + s.Meta.Node
}

// Run implements Runnable.
func (s *Server) Run(ctx context.Context) error {
	rw := NewPacketReadWriter(s.Queue).ForServer(s.Meta.Node).Subscribe()
	if err := s.Queue.Connect(); err != nil {
		return err
	}
	err := s.Serve(ctx, rw)
	s.Queue.PubWith(NodeTopic(s.Meta.Node, TopicMeta), nil, 1, true).WaitTimeout(time.Second)
	s.Queue.Close()
	return err
}

func (s *Server) publishMeta() {
	meta, err := json.Marshal(&s.Meta)
	if err != nil {
		panic(err)
	}
	glog.Infof("mqtt node %s online", s.Meta.Node)
	s.Queue.PubWith(NodeTopic(s.Meta.Node, TopicMeta), meta, 1, true)
}

// Dial connects a client to the node.
func Dial(ctx context.Context, brokerURL, node string) (*ReadWriter, error) {
	if err := ValidNode(node); err != nil {
		return nil, err
	}
	q, err := NewQueueFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	rw := NewPacketReadWriter(q).ForClient(node).Subscribe()
	rw.CloseQueue = true
	if err = q.Connect(); err != nil {
		return nil, err
	}
	return rw, nil
}

// DefaultDiscoverTimeout defines the default timeout value of discovery.
const DefaultDiscoverTimeout = 500 * time.Millisecond

// Discover collects the retained meta of online nodes.
func Discover(ctx context.Context, brokerURL string, timeout time.Duration) (res []NodeMeta, err error) {
	q, err := NewQueueFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	resCh := make(chan NodeMeta, 1)
	q.Sub(NodeTopic("+", TopicMeta), Handler(func(topic string, payload []byte) {
		meta, ok := parseMeta(topic, payload)
		if !ok {
			return
		}
		select {
		case resCh <- meta:
		case <-time.After(time.Second):
		}
	}))
	if err = q.Connect(); err != nil {
		return nil, err
	}
	defer q.Close()

	if timeout == 0 {
		timeout = DefaultDiscoverTimeout
	}
	expire := time.After(timeout)
	for {
		select {
		case meta := <-resCh:
			res = append(res, meta)
		case <-expire:
			return
		case <-ctx.Done():
			err = ctx.Err()
			return
		}
	}
}

func parseMeta(topic string, payload []byte) (NodeMeta, bool) {
	var meta NodeMeta
	items := strings.Split(topic, "/")
	if len(items) != 2 || len(payload) == 0 {
		return meta, false
	}
	if err := json.Unmarshal(payload, &meta); err != nil {
		glog.Warningf("invalid meta on %s: %v", topic, err)
		return meta, false
	}
	meta.Node = items[0]
	return meta, true
}
