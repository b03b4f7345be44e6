package sh

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/eeprom.go/pkg/eeprom"
	env "github.com/robotalks/eeprom.go/pkg/env/client"
	"github.com/robotalks/eeprom.go/pkg/remote"
	"github.com/robotalks/eeprom.go/pkg/remote/mqtt"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	Base        int

	Shell   *ishell.Shell
	Config  *env.Config
	Context context.Context
	Storage remote.Storage
	// Device is the label of the selected device.
	Device string

	cancel func()
	closer io.Closer
}

const (
	shellKey         = "$shell"
	unselectedPrompt = "[none] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool
	pageBase   = DefaultBase

	// commands
	commands = []*ishell.Cmd{
		&DevicesCmd,
		&UseCmd,
		&DiscoverCmd,
		&PageCmd,
		&ReadCmd,
		&WriteCmd,
		&DumpCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
	flag.IntVar(&pageBase, "base", pageBase, "Base of page numbers.")
}

// New creates a new shell.
func New(conf *env.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,
		Base:        pageBase,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Context, s.cancel = context.WithCancel(context.Background())
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(unselectedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustSelectDevice wraps command func requires a selected device.
func MustSelectDevice(fn func(c *ishell.Context, s *Shell)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		s := ShellFrom(c)
		if s.Device == "" {
			c.Err(fmt.Errorf("no device selected, use a device first"))
			return
		}
		fn(c, s)
	}
}

// Open opens the Storage and selects the device if there's only one.
func (s *Shell) Open() error {
	storage, closer, err := s.Config.Open(s.Context)
	if err != nil {
		return err
	}
	s.Storage, s.closer = storage, closer
	infos, err := storage.Devices(s.Context)
	if err != nil {
		return err
	}
	if len(infos) == 1 {
		s.Use(infos[0].Label)
	}
	return nil
}

// Use selects a device.
func (s *Shell) Use(label string) {
	s.Device = label
	s.Shell.SetPrompt(fmt.Sprintf("%s > ", label))
}

// Close releases the Storage.
func (s *Shell) Close() {
	if s.closer != nil {
		s.closer.Close()
	}
	s.cancel()
}

// PrintJSON prints v in JSON.
func (s *Shell) PrintJSON(c *ishell.Context, v interface{}) {
	out, err := json.Marshal(v)
	if err != nil {
		c.Err(err)
		return
	}
	c.Println(string(out))
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if err := s.Open(); err != nil {
		log.Fatalln(err)
	}
	defer s.Close()

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// DevicesCmd lists devices.
	DevicesCmd = ishell.Cmd{
		Name:    "devices",
		Aliases: []string{"list", "l"},
		Help:    "",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			infos, err := s.Storage.Devices(s.Context)
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				if infos == nil {
					// in case infos is nil, make it empty slice.
					infos = []eeprom.DeviceInfo{}
				}
				s.PrintJSON(c, infos)
				return
			}
			if len(infos) == 0 {
				c.Println("No devices attached")
				return
			}
			for _, info := range infos {
				c.Println(FormatInfo(info, s.Base))
			}
		},
	}

	// UseCmd selects a device.
	UseCmd = ishell.Cmd{
		Name:    "use",
		Aliases: []string{"u"},
		Help:    "LABEL",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			if len(c.Args) > 0 {
				s.Use(c.Args[0])
				return
			}
			infos, err := s.Storage.Devices(s.Context)
			if err != nil {
				c.Err(err)
				return
			}
			if len(infos) == 0 {
				c.Err(fmt.Errorf("no devices attached"))
				return
			}
			if !s.Interactive {
				c.Err(fmt.Errorf("LABEL is required in non-interactive mode"))
				return
			}
			items := make([]string, len(infos))
			for n, info := range infos {
				items[n] = FormatInfo(info, s.Base)
			}
			s.Use(infos[s.Shell.MultiChoice(items, "Which device?")].Label)
		},
	}

	// DiscoverCmd discovers daemons on the MQTT broker.
	DiscoverCmd = ishell.Cmd{
		Name: "discover",
		Help: "",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			u, err := url.Parse(s.Config.RemoteURL)
			if err != nil || !strings.HasPrefix(u.Scheme, "mqtt") {
				c.Err(fmt.Errorf("discover requires a mqtt remote"))
				return
			}
			nodes, err := mqtt.Discover(s.Context, s.Config.RemoteURL, 0)
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				if nodes == nil {
					nodes = []mqtt.NodeMeta{}
				}
				s.PrintJSON(c, nodes)
				return
			}
			if len(nodes) == 0 {
				c.Println("No daemons found")
				return
			}
			for _, node := range nodes {
				c.Printf("%s: %s\n", node.Node, strings.Join(node.Devices, ", "))
			}
		},
	}

	// PageCmd shows or moves the page cursor.
	PageCmd = ishell.Cmd{
		Name:    "page",
		Aliases: []string{"p"},
		Help:    "[PAGE]",
		Func: MustSelectDevice(func(c *ishell.Context, s *Shell) {
			if len(c.Args) > 0 {
				page, err := ParsePage(c.Args[0], s.Base)
				if err != nil {
					c.Err(err)
					return
				}
				if err = s.Storage.SetPage(s.Context, s.Device, page); err != nil {
					c.Err(err)
					return
				}
			}
			page, pages, err := s.Storage.Page(s.Context, s.Device)
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				s.PrintJSON(c, map[string]int{"page": page, "pages": pages})
				return
			}
			c.Println(FormatPage(page, s.Base))
		}),
	}

	// ReadCmd reads the current page.
	ReadCmd = ishell.Cmd{
		Name:    "read",
		Aliases: []string{"r"},
		Help:    "",
		Func: MustSelectDevice(func(c *ishell.Context, s *Shell) {
			p, err := s.Storage.ReadPage(s.Context, s.Device)
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				s.PrintJSON(c, p)
				return
			}
			c.Print(FormatPageData(p, len(p.Data)))
		}),
	}

	// WriteCmd writes at the start of the current page.
	WriteCmd = ishell.Cmd{
		Name:    "write",
		Aliases: []string{"w"},
		Help:    "HEX-BYTES... | -s TEXT...",
		Func: MustSelectDevice(func(c *ishell.Context, s *Shell) {
			var data []byte
			if len(c.Args) > 0 && c.Args[0] == "-s" {
				data = []byte(strings.Join(c.Args[1:], " "))
			} else {
				var err error
				if data, err = ParseBytes(c.Args); err != nil {
					c.Err(err)
					return
				}
			}
			if len(data) == 0 {
				c.Err(fmt.Errorf("nothing to write"))
				return
			}
			_, n, err := s.Storage.Write(s.Context, s.Device, data)
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				s.PrintJSON(c, map[string]int{"written": n})
				return
			}
			c.Printf("%d bytes written\n", n)
		}),
	}

	// DumpCmd reads all pages, the page cursor is restored afterwards.
	DumpCmd = ishell.Cmd{
		Name: "dump",
		Help: "",
		Func: MustSelectDevice(func(c *ishell.Context, s *Shell) {
			pages, err := Dump(s.Context, s.Storage, s.Device)
			if err != nil {
				c.Err(err)
			}
			if s.OutputJSON {
				s.PrintJSON(c, pages)
				return
			}
			for _, p := range pages {
				c.Print(FormatPageData(p, len(p.Data)))
			}
		}),
	}
)

// Dump reads all pages of a device and restores the page cursor.
// Pages read before an error are returned with the error.
func Dump(ctx context.Context, storage remote.Storage, device string) (pages []*eeprom.Page, err error) {
	cur, count, err := storage.Page(ctx, device)
	if err != nil {
		return nil, err
	}
	defer func() {
		if restoreErr := storage.SetPage(ctx, device, cur); err == nil {
			err = restoreErr
		}
	}()
	for n := 0; n < count; n++ {
		if err = storage.SetPage(ctx, device, n); err != nil {
			return
		}
		var p *eeprom.Page
		if p, err = storage.ReadPage(ctx, device); err != nil {
			return
		}
		pages = append(pages, p)
	}
	return
}

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(env.NewConfig()).Run(flag.Args()...)
}
