package msgs

import (
	"github.com/golang/protobuf/proto"

	"github.com/robotalks/eeprom.go/pkg/eeprom"
	pb "github.com/robotalks/eeprom.go/pkg/proto/eeprom/v1"
)

// CommandOK is the generic reply indicating success for commands.
type CommandOK struct {
	pb.CommandOK
}

// NewMessage implements Message.
func (m *CommandOK) NewMessage() Message { return &CommandOK{} }

// TypeID implements Message.
func (m *CommandOK) TypeID() uint32 { return CommandOKTypeID }

// Serializable implements Message.
func (m *CommandOK) Serializable() proto.Message { return &m.CommandOK }

// DeviceQuery command.
type DeviceQuery struct {
	pb.DeviceQuery
}

// NewMessage implements Message.
func (m *DeviceQuery) NewMessage() Message { return &DeviceQuery{} }

// TypeID implements Message.
func (m *DeviceQuery) TypeID() uint32 { return DeviceQueryTypeID }

// Serializable implements Message.
func (m *DeviceQuery) Serializable() proto.Message { return &m.DeviceQuery }

// DeviceList reply.
type DeviceList struct {
	pb.DeviceList
}

// NewDeviceList creates a DeviceList from device snapshots.
func NewDeviceList(infos []eeprom.DeviceInfo) *DeviceList {
	m := &DeviceList{}
	for _, info := range infos {
		m.Devices = append(m.Devices, &pb.DeviceInfo{
			Label:        info.Label,
			Adapter:      info.Adapter,
			Addr:         uint32(info.Addr),
			Size:         uint32(info.Size),
			PageSize:     uint32(info.PageSize),
			AddressWidth: uint32(info.AddressWidth),
			ReadLimit:    uint32(info.Limits.Read),
			WriteLimit:   uint32(info.Limits.Write),
			Page:         uint32(info.Page),
		})
	}
	return m
}

// Infos converts the list back to device snapshots.
func (m *DeviceList) Infos() []eeprom.DeviceInfo {
	infos := make([]eeprom.DeviceInfo, 0, len(m.Devices))
	for _, d := range m.Devices {
		infos = append(infos, eeprom.DeviceInfo{
			Label:   d.Label,
			Adapter: d.Adapter,
			Addr:    uint16(d.Addr),
			Geometry: eeprom.Geometry{
				Size:         int(d.Size),
				PageSize:     int(d.PageSize),
				AddressWidth: int(d.AddressWidth),
			},
			Limits: eeprom.Limits{Read: int(d.ReadLimit), Write: int(d.WriteLimit)},
			Page:   int(d.Page),
		})
	}
	return infos
}

// NewMessage implements Message.
func (m *DeviceList) NewMessage() Message { return &DeviceList{} }

// TypeID implements Message.
func (m *DeviceList) TypeID() uint32 { return DeviceListTypeID }

// Serializable implements Message.
func (m *DeviceList) Serializable() proto.Message { return &m.DeviceList }

// PageQuery command.
type PageQuery struct {
	pb.PageQuery
}

// NewMessage implements Message.
func (m *PageQuery) NewMessage() Message { return &PageQuery{} }

// TypeID implements Message.
func (m *PageQuery) TypeID() uint32 { return PageQueryTypeID }

// Serializable implements Message.
func (m *PageQuery) Serializable() proto.Message { return &m.PageQuery }

// PageSet command.
type PageSet struct {
	pb.PageSet
}

// NewMessage implements Message.
func (m *PageSet) NewMessage() Message { return &PageSet{} }

// TypeID implements Message.
func (m *PageSet) TypeID() uint32 { return PageSetTypeID }

// Serializable implements Message.
func (m *PageSet) Serializable() proto.Message { return &m.PageSet }

// PageReply replies PageQuery and PageSet.
type PageReply struct {
	pb.PageReply
}

// NewMessage implements Message.
func (m *PageReply) NewMessage() Message { return &PageReply{} }

// TypeID implements Message.
func (m *PageReply) TypeID() uint32 { return PageReplyTypeID }

// Serializable implements Message.
func (m *PageReply) Serializable() proto.Message { return &m.PageReply }

// PageRead command.
type PageRead struct {
	pb.PageRead
}

// NewMessage implements Message.
func (m *PageRead) NewMessage() Message { return &PageRead{} }

// TypeID implements Message.
func (m *PageRead) TypeID() uint32 { return PageReadTypeID }

// Serializable implements Message.
func (m *PageRead) Serializable() proto.Message { return &m.PageRead }

// PageData replies PageRead.
type PageData struct {
	pb.PageData
}

// NewMessage implements Message.
func (m *PageData) NewMessage() Message { return &PageData{} }

// TypeID implements Message.
func (m *PageData) TypeID() uint32 { return PageDataTypeID }

// Serializable implements Message.
func (m *PageData) Serializable() proto.Message { return &m.PageData }

// PageWrite command.
type PageWrite struct {
	pb.PageWrite
}

// NewMessage implements Message.
func (m *PageWrite) NewMessage() Message { return &PageWrite{} }

// TypeID implements Message.
func (m *PageWrite) TypeID() uint32 { return PageWriteTypeID }

// Serializable implements Message.
func (m *PageWrite) Serializable() proto.Message { return &m.PageWrite }

// WriteReply replies PageWrite.
type WriteReply struct {
	pb.WriteReply
}

// NewMessage implements Message.
func (m *WriteReply) NewMessage() Message { return &WriteReply{} }

// TypeID implements Message.
func (m *WriteReply) TypeID() uint32 { return WriteReplyTypeID }

// Serializable implements Message.
func (m *WriteReply) Serializable() proto.Message { return &m.WriteReply }

// PageWritten event.
type PageWritten struct {
	pb.PageWritten
}

// NewMessage implements Message.
func (m *PageWritten) NewMessage() Message { return &PageWritten{} }

// TypeID implements Message.
func (m *PageWritten) TypeID() uint32 { return PageWrittenTypeID }

// Serializable implements Message.
func (m *PageWritten) Serializable() proto.Message { return &m.PageWritten }

// TypeID Groups
const (
	GroupCommand uint32 = 0x00000000
	GroupEEPROM  uint32 = 0x00030000
)

// TypeIDs
const (
	CommandOKTypeID   uint32 = GroupCommand | TypeIDMaskReply | 0x0000
	CommandErrTypeID  uint32 = GroupCommand | TypeIDMaskReply | 0x0001
	DeviceQueryTypeID uint32 = GroupEEPROM | 0x0000
	DeviceListTypeID  uint32 = DeviceQueryTypeID | TypeIDMaskReply
	PageQueryTypeID   uint32 = GroupEEPROM | 0x0001
	PageReplyTypeID   uint32 = PageQueryTypeID | TypeIDMaskReply
	PageSetTypeID     uint32 = GroupEEPROM | 0x0002
	PageReadTypeID    uint32 = GroupEEPROM | 0x0003
	PageDataTypeID    uint32 = PageReadTypeID | TypeIDMaskReply
	PageWriteTypeID   uint32 = GroupEEPROM | 0x0004
	WriteReplyTypeID  uint32 = PageWriteTypeID | TypeIDMaskReply
	PageWrittenTypeID uint32 = TypeIDKindEvent | GroupEEPROM | 0x0010
)

// MessageTypes are predefined mapping of type ID to messages.
var MessageTypes = map[uint32]Message{
	CommandOKTypeID:   (*CommandOK)(nil),
	CommandErrTypeID:  (*CommandErr)(nil),
	DeviceQueryTypeID: (*DeviceQuery)(nil),
	DeviceListTypeID:  (*DeviceList)(nil),
	PageQueryTypeID:   (*PageQuery)(nil),
	PageReplyTypeID:   (*PageReply)(nil),
	PageSetTypeID:     (*PageSet)(nil),
	PageReadTypeID:    (*PageRead)(nil),
	PageDataTypeID:    (*PageData)(nil),
	PageWriteTypeID:   (*PageWrite)(nil),
	WriteReplyTypeID:  (*WriteReply)(nil),
	PageWrittenTypeID: (*PageWritten)(nil),
}
