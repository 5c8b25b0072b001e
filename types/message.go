package types

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/nicolasparada/go-errs"
	"github.com/taemindang/taemindang/id"
	"github.com/taemindang/taemindang/textutil"
	"github.com/taemindang/taemindang/validator"
)

type MessageType string

const (
	MessageTypeText        MessageType = "TEXT"
	MessageTypeImage       MessageType = "IMAGE"
	MessageTypeAppointment MessageType = "APPOINTMENT"
)

func (t MessageType) String() string {
	return string(t)
}

// MessageContent is one of TextContent, ImageContent or AppointmentContent.
type MessageContent interface {
	Type() MessageType
	Text() string
	isMessageContent()
}

type TextContent struct {
	Body string
}

func (TextContent) Type() MessageType { return MessageTypeText }
func (c TextContent) Text() string    { return c.Body }
func (TextContent) isMessageContent() {}

// ImageContent carries the stored image path and an optional caption.
type ImageContent struct {
	Caption  string
	ImageURL string
}

func (ImageContent) Type() MessageType { return MessageTypeImage }
func (c ImageContent) Text() string    { return c.Caption }
func (ImageContent) isMessageContent() {}

// AppointmentContent is the ledger entry that announces an appointment.
// The appointment fields are filled when read back through a join.
type AppointmentContent struct {
	Body          string
	AppointmentID int64
	MeetDate      string
	MeetTime      string
	Place         string
	Status        AppointmentStatus
}

func (AppointmentContent) Type() MessageType { return MessageTypeAppointment }
func (c AppointmentContent) Text() string    { return c.Body }
func (AppointmentContent) isMessageContent() {}

type Message struct {
	ID             int64
	ChatID         int64
	SenderID       int64
	SenderNickname string
	Content        MessageContent
	CreatedAt      time.Time
	Mine           bool
}

func (m *Message) SetImageURL(prefix string) {
	if c, ok := m.Content.(ImageContent); ok {
		c.ImageURL = JoinURL(prefix, c.ImageURL)
		m.Content = c
	}
}

type messageJSON struct {
	ID                int64              `json:"id"`
	ChatID            int64              `json:"chat_id"`
	SenderID          int64              `json:"sender_id"`
	SenderNickname    string             `json:"sender_nickname"`
	MsgType           MessageType        `json:"msg_type"`
	Message           string             `json:"message"`
	ImageURL          *string            `json:"image_url"`
	AppointmentID     *int64             `json:"appointment_id"`
	MeetDate          *string            `json:"meet_date,omitempty"`
	MeetTime          *string            `json:"meet_time,omitempty"`
	Place             *string            `json:"place,omitempty"`
	AppointmentStatus *AppointmentStatus `json:"appointment_status,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	IsMine            bool               `json:"is_mine"`
}

func (m Message) MarshalJSON() ([]byte, error) {
	if m.Content == nil {
		return nil, fmt.Errorf("message %d has no content", m.ID)
	}

	out := messageJSON{
		ID:             m.ID,
		ChatID:         m.ChatID,
		SenderID:       m.SenderID,
		SenderNickname: m.SenderNickname,
		MsgType:        m.Content.Type(),
		Message:        m.Content.Text(),
		CreatedAt:      m.CreatedAt,
		IsMine:         m.Mine,
	}

	switch c := m.Content.(type) {
	case ImageContent:
		out.ImageURL = &c.ImageURL
	case AppointmentContent:
		out.AppointmentID = &c.AppointmentID
		if c.Status != "" {
			out.MeetDate = &c.MeetDate
			out.MeetTime = &c.MeetTime
			out.Place = &c.Place
			out.AppointmentStatus = &c.Status
		}
	}

	return json.Marshal(out)
}

// MessageColumns is the flat shape a message takes in storage.
type MessageColumns struct {
	MsgType           MessageType
	Message           string
	ImageURL          *string
	AppointmentID     *int64
	MeetDate          *string
	MeetTime          *string
	Place             *string
	AppointmentStatus *AppointmentStatus
}

// ContentFromColumns rebuilds the content union out of stored columns.
func ContentFromColumns(cols MessageColumns) (MessageContent, error) {
	switch cols.MsgType {
	case MessageTypeText:
		if cols.ImageURL != nil || cols.AppointmentID != nil {
			return nil, fmt.Errorf("text message with image or appointment")
		}
		return TextContent{Body: cols.Message}, nil
	case MessageTypeImage:
		if cols.ImageURL == nil || cols.AppointmentID != nil {
			return nil, fmt.Errorf("image message without image")
		}
		return ImageContent{Caption: cols.Message, ImageURL: *cols.ImageURL}, nil
	case MessageTypeAppointment:
		if cols.AppointmentID == nil || cols.ImageURL != nil {
			return nil, fmt.Errorf("appointment message without appointment")
		}
		c := AppointmentContent{Body: cols.Message, AppointmentID: *cols.AppointmentID}
		if cols.MeetDate != nil {
			c.MeetDate = *cols.MeetDate
		}
		if cols.MeetTime != nil {
			c.MeetTime = *cols.MeetTime
		}
		if cols.Place != nil {
			c.Place = *cols.Place
		}
		if cols.AppointmentStatus != nil {
			c.Status = *cols.AppointmentStatus
		}
		return c, nil
	}
	return nil, fmt.Errorf("unknown message type %q", cols.MsgType)
}

// ColumnsFromContent flattens content for storage.
func ColumnsFromContent(content MessageContent) MessageColumns {
	cols := MessageColumns{
		MsgType: content.Type(),
		Message: content.Text(),
	}

	switch c := content.(type) {
	case ImageContent:
		cols.ImageURL = &c.ImageURL
	case AppointmentContent:
		cols.AppointmentID = &c.AppointmentID
	}

	return cols
}

// UnreadCount counts the messages after lastReadID that viewerID did not send.
// A nil pointer means nothing has been read yet.
func UnreadCount(messages []Message, lastReadID *int64, viewerID int64) int {
	var pointer int64
	if lastReadID != nil {
		pointer = *lastReadID
	}

	var n int
	for _, m := range messages {
		if m.ID > pointer && m.SenderID != viewerID {
			n++
		}
	}
	return n
}

type ListMessages struct {
	ChatID int64

	viewerID int64
	role     ChatRole
}

func (in *ListMessages) SetViewer(memberID int64, role ChatRole) {
	in.viewerID = memberID
	in.role = role
}

func (in ListMessages) ViewerID() int64 {
	return in.viewerID
}

func (in ListMessages) Role() ChatRole {
	return in.role
}

func (in *ListMessages) Validate() error {
	v := validator.New()

	if !id.Valid(in.ChatID) {
		v.AddError("ChatID", "잘못된 채팅방 번호입니다")
	}

	return v.AsError()
}

type ChatMessages struct {
	ChatID   int64     `json:"chat_id"`
	Messages []Message `json:"messages"`
}

type SendMessage struct {
	ChatID  int64         `json:"-"`
	Message string        `json:"message"`
	Image   io.ReadSeeker `json:"-"`

	senderID int64
	role     ChatRole
	imageURL *string
}

func (in *SendMessage) SetSender(memberID int64, role ChatRole) {
	in.senderID = memberID
	in.role = role
}

func (in SendMessage) SenderID() int64 {
	return in.senderID
}

func (in SendMessage) Role() ChatRole {
	return in.role
}

func (in *SendMessage) SetImageURL(path string) {
	in.imageURL = &path
}

func (in SendMessage) ImageURL() *string {
	return in.imageURL
}

// Content is IMAGE once an image has been stored, TEXT otherwise.
func (in SendMessage) Content() MessageContent {
	if in.imageURL != nil {
		return ImageContent{Caption: in.Message, ImageURL: *in.imageURL}
	}
	return TextContent{Body: in.Message}
}

func (in *SendMessage) Validate() error {
	in.Message = textutil.Clean(in.Message)

	if !id.Valid(in.ChatID) {
		return errs.InvalidArgumentError("잘못된 채팅방 번호입니다")
	}

	if in.Message == "" && in.Image == nil {
		return errs.InvalidArgumentError("메시지 또는 사진을 입력해주세요")
	}

	return nil
}

type MessageSent struct {
	MessageID int64   `json:"message_id"`
	ImageURL  *string `json:"image_url"`
}
