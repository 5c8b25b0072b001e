package types

import (
	"strings"
	"time"

	"github.com/nicolasparada/go-errs"
	"github.com/taemindang/taemindang/id"
	"github.com/taemindang/taemindang/textutil"
)

const (
	appointmentPlaceMaxLength = 100

	meetDateLayout = time.DateOnly
	meetTimeLayout = "15:04"
)

// AppointmentCreatedText is the body of the ledger message that accompanies a
// new appointment.
const AppointmentCreatedText = "약속을 만들었어요."

type AppointmentStatus string

const (
	AppointmentStatusRequested AppointmentStatus = "REQUESTED"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
)

func (s AppointmentStatus) String() string {
	return string(s)
}

// CanBecome reports whether s may move to next. Status only moves forward;
// staying put is allowed.
func (s AppointmentStatus) CanBecome(next AppointmentStatus) bool {
	if s == next {
		return true
	}
	return s == AppointmentStatusRequested && next == AppointmentStatusConfirmed
}

type Appointment struct {
	ID                int64             `json:"id" db:"id"`
	ChatID            int64             `json:"chat_id" db:"chat_id"`
	CreatedBy         int64             `json:"created_by" db:"created_by"`
	CreatedByNickname string            `json:"created_by_nickname" db:"created_by_nickname"`
	MeetDate          string            `json:"meet_date" db:"meet_date"`
	MeetTime          string            `json:"meet_time" db:"meet_time"`
	Place             string            `json:"place" db:"place"`
	Status            AppointmentStatus `json:"status" db:"status"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
}

type ProposeAppointment struct {
	ChatID   int64  `json:"-"`
	MeetDate string `json:"meet_date"`
	MeetTime string `json:"meet_time"`
	Place    string `json:"place"`

	proposerID int64
}

func (in *ProposeAppointment) SetProposerID(memberID int64) {
	in.proposerID = memberID
}

func (in ProposeAppointment) ProposerID() int64 {
	return in.proposerID
}

func (in *ProposeAppointment) Validate() error {
	in.MeetDate = strings.TrimSpace(in.MeetDate)
	in.MeetTime = strings.TrimSpace(in.MeetTime)
	in.Place = textutil.SmartTrim(in.Place)

	if !id.Valid(in.ChatID) {
		return errs.InvalidArgumentError("잘못된 채팅방 번호입니다")
	}

	if in.MeetDate == "" || in.MeetTime == "" || in.Place == "" {
		return errs.InvalidArgumentError("날짜, 시간, 장소를 모두 입력해주세요")
	}

	if _, err := time.Parse(meetDateLayout, in.MeetDate); err != nil {
		return errs.InvalidArgumentError("날짜는 YYYY-MM-DD 형식이어야 합니다")
	}

	meetTime, ok := NormalizeMeetTime(in.MeetTime)
	if !ok {
		return errs.InvalidArgumentError("시간은 HH:MM 형식이어야 합니다")
	}

	in.MeetTime = meetTime
	in.Place = textutil.Truncate(in.Place, appointmentPlaceMaxLength)

	return nil
}

// NormalizeMeetTime accepts HH:MM or HH:MM:SS and returns HH:MM.
func NormalizeMeetTime(s string) (string, bool) {
	for _, layout := range []string{meetTimeLayout, time.TimeOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(meetTimeLayout), true
		}
	}
	return "", false
}

type AppointmentProposed struct {
	AppointmentID int64 `json:"appointment_id"`
	MessageID     int64 `json:"message_id"`
}

type RetrieveAppointment struct {
	ChatID        int64
	AppointmentID int64
}

func (in *RetrieveAppointment) Validate() error {
	if !id.Valid(in.ChatID) || !id.Valid(in.AppointmentID) {
		return errs.InvalidArgumentError("잘못된 요청입니다")
	}
	return nil
}

type ConfirmAppointment struct {
	ChatID        int64
	AppointmentID int64
}

func (in *ConfirmAppointment) Validate() error {
	if !id.Valid(in.ChatID) || !id.Valid(in.AppointmentID) {
		return errs.InvalidArgumentError("잘못된 요청입니다")
	}
	return nil
}
