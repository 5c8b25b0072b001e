package types

// DefaultTemperature is the manner temperature shown for members without one.
const DefaultTemperature = 36.5

// DefaultNickname is shown when a member row is missing.
const DefaultNickname = "사용자"

type Member struct {
	ID              int64    `json:"id"`
	Nickname        string   `json:"nickname"`
	ProfileImageURL *string  `json:"profile_image"`
	Temperature     *float64 `json:"temperature"`
}

func (m *Member) SetProfileImageURL(prefix string) {
	m.ProfileImageURL = joinOptionalPrefix(prefix, m.ProfileImageURL)
}

func (m *Member) Normalize() {
	if m.Nickname == "" {
		m.Nickname = DefaultNickname
	}
	if m.Temperature == nil {
		m.Temperature = new(DefaultTemperature)
	}
}
