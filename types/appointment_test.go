package types

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestProposeAppointment_Validate(t *testing.T) {
	tt := []struct {
		name     string
		in       ProposeAppointment
		wantErr  string
		wantTime string
	}{
		{
			name:     "ok",
			in:       ProposeAppointment{ChatID: 1, MeetDate: "2026-03-02", MeetTime: "14:00", Place: " 역 앞 "},
			wantTime: "14:00",
		},
		{
			name:     "seconds",
			in:       ProposeAppointment{ChatID: 1, MeetDate: "2026-03-02", MeetTime: "09:30:00", Place: "역 앞"},
			wantTime: "09:30",
		},
		{
			name:    "missing_place",
			in:      ProposeAppointment{ChatID: 1, MeetDate: "2026-03-02", MeetTime: "14:00", Place: "   "},
			wantErr: "날짜, 시간, 장소를 모두 입력해주세요",
		},
		{
			name:    "missing_date",
			in:      ProposeAppointment{ChatID: 1, MeetTime: "14:00", Place: "역 앞"},
			wantErr: "날짜, 시간, 장소를 모두 입력해주세요",
		},
		{
			name:    "bad_date",
			in:      ProposeAppointment{ChatID: 1, MeetDate: "2026/03/02", MeetTime: "14:00", Place: "역 앞"},
			wantErr: "날짜는 YYYY-MM-DD 형식이어야 합니다",
		},
		{
			name:    "bad_time",
			in:      ProposeAppointment{ChatID: 1, MeetDate: "2026-03-02", MeetTime: "25:00", Place: "역 앞"},
			wantErr: "시간은 HH:MM 형식이어야 합니다",
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.wantErr != "" {
				if err == nil || err.Error() != tc.wantErr {
					t.Fatalf("Validate() error = %v, want %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.in.MeetTime != tc.wantTime {
				t.Errorf("MeetTime = %q, want %q", tc.in.MeetTime, tc.wantTime)
			}
			if tc.in.Place != "역 앞" {
				t.Errorf("Place = %q", tc.in.Place)
			}
		})
	}

	t.Run("long_place", func(t *testing.T) {
		in := ProposeAppointment{ChatID: 1, MeetDate: "2026-03-02", MeetTime: "14:00", Place: strings.Repeat("역", 150)}
		if err := in.Validate(); err != nil {
			t.Fatal(err)
		}
		if n := utf8.RuneCountInString(in.Place); n != appointmentPlaceMaxLength {
			t.Errorf("place length = %d, want %d", n, appointmentPlaceMaxLength)
		}
	})
}

func TestAppointmentStatus_CanBecome(t *testing.T) {
	tt := []struct {
		from, to AppointmentStatus
		want     bool
	}{
		{AppointmentStatusRequested, AppointmentStatusConfirmed, true},
		{AppointmentStatusConfirmed, AppointmentStatusConfirmed, true},
		{AppointmentStatusRequested, AppointmentStatusRequested, true},
		{AppointmentStatusConfirmed, AppointmentStatusRequested, false},
	}
	for _, tc := range tt {
		if got := tc.from.CanBecome(tc.to); got != tc.want {
			t.Errorf("%s.CanBecome(%s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
