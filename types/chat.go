package types

import (
	"encoding/json"
	"time"

	"github.com/nicolasparada/go-errs"
	"github.com/taemindang/taemindang/id"
	"github.com/taemindang/taemindang/textutil"
	"github.com/taemindang/taemindang/validator"
)

// Chat is a conversation between the seller and one buyer about one item.
type Chat struct {
	ID                  int64     `json:"id" db:"id"`
	ItemID              int64     `json:"item_id" db:"item_id"`
	SellerID            int64     `json:"seller_id" db:"seller_id"`
	BuyerID             int64     `json:"buyer_id" db:"buyer_id"`
	BuyerLastReadMsgID  *int64    `json:"-" db:"buyer_last_read_msg_id"`
	SellerLastReadMsgID *int64    `json:"-" db:"seller_last_read_msg_id"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
}

// RoleOf reports the role of memberID in the chat.
// The seller check comes first so that a self chat resolves to seller.
func (c Chat) RoleOf(memberID int64) (ChatRole, bool) {
	switch memberID {
	case c.SellerID:
		return ChatRoleSeller, true
	case c.BuyerID:
		return ChatRoleBuyer, true
	}
	return "", false
}

// ChatSummary is one row of the chat list.
// The counterpart is encoded as flat other_user_* fields.
type ChatSummary struct {
	ID                int64      `json:"id" db:"id"`
	ItemID            int64      `json:"item_id" db:"item_id"`
	ItemTitle         *string    `json:"item_title" db:"item_title"`
	ItemImageURL      *string    `json:"item_image" db:"item_image"`
	OtherUser         Member     `json:"-" db:"other_user"`
	IsSeller          bool       `json:"is_seller" db:"is_seller"`
	UnreadCount       int        `json:"unread_count" db:"unread_count"`
	LatestMessage     *string    `json:"latest_message" db:"latest_message"`
	LatestMessageTime *time.Time `json:"latest_message_time" db:"latest_message_time"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
}

func (s *ChatSummary) SetURLs(prefix string) {
	s.ItemImageURL = joinOptionalPrefix(prefix, s.ItemImageURL)
	s.OtherUser.SetProfileImageURL(prefix)
	s.OtherUser.Normalize()
}

func (s ChatSummary) MarshalJSON() ([]byte, error) {
	type summary ChatSummary
	return json.Marshal(struct {
		summary
		OtherUserID           int64   `json:"other_user_id"`
		OtherUserNickname     string  `json:"other_user_nickname"`
		OtherUserProfileImage *string `json:"other_user_profile_image"`
	}{
		summary:               summary(s),
		OtherUserID:           s.OtherUser.ID,
		OtherUserNickname:     s.OtherUser.Nickname,
		OtherUserProfileImage: s.OtherUser.ProfileImageURL,
	})
}

// ChatDetail is the header of a chat room as seen by one participant.
type ChatDetail struct {
	ID          int64  `json:"id" db:"id"`
	ItemID      int64  `json:"item_id" db:"item_id"`
	SellerID    int64  `json:"seller_id" db:"seller_id"`
	BuyerID     int64  `json:"buyer_id" db:"buyer_id"`
	OtherUser   Member `json:"-" db:"other_user"`
	IsSeller    bool   `json:"is_seller" db:"is_seller"`
	UnreadCount int    `json:"unread_count" db:"-"`
}

func (d *ChatDetail) SetURLs(prefix string) {
	d.OtherUser.SetProfileImageURL(prefix)
	d.OtherUser.Normalize()
}

func (d ChatDetail) MarshalJSON() ([]byte, error) {
	type detail ChatDetail
	return json.Marshal(struct {
		detail
		OtherUserID           int64    `json:"other_user_id"`
		OtherUserNickname     string   `json:"other_user_nickname"`
		OtherUserProfileImage *string  `json:"other_user_profile_image"`
		OtherUserTemperature  *float64 `json:"other_user_temperature"`
	}{
		detail:                detail(d),
		OtherUserID:           d.OtherUser.ID,
		OtherUserNickname:     d.OtherUser.Nickname,
		OtherUserProfileImage: d.OtherUser.ProfileImageURL,
		OtherUserTemperature:  d.OtherUser.Temperature,
	})
}

type SendFirstMessage struct {
	ItemID  int64  `json:"-"`
	Message string `json:"message"`

	buyerID  int64
	sellerID int64
}

func (in *SendFirstMessage) SetBuyerID(memberID int64) {
	in.buyerID = memberID
}

func (in SendFirstMessage) BuyerID() int64 {
	return in.buyerID
}

func (in *SendFirstMessage) SetSellerID(memberID int64) {
	in.sellerID = memberID
}

func (in SendFirstMessage) SellerID() int64 {
	return in.sellerID
}

func (in *SendFirstMessage) Validate() error {
	in.Message = textutil.Clean(in.Message)

	if !id.Valid(in.ItemID) {
		return errs.InvalidArgumentError("잘못된 상품 번호입니다")
	}

	if in.Message == "" {
		return errs.InvalidArgumentError("메시지를 입력해주세요")
	}

	return nil
}

type FirstMessageSent struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

type ListChats struct {
	PageArgs PageArgs

	viewerID int64
}

func (in *ListChats) SetViewerID(memberID int64) {
	in.viewerID = memberID
}

func (in ListChats) ViewerID() int64 {
	return in.viewerID
}

func (in *ListChats) Validate() error {
	return in.PageArgs.Validate()
}

type RetrieveChat struct {
	ChatID int64

	viewerID int64
}

func (in *RetrieveChat) SetViewerID(memberID int64) {
	in.viewerID = memberID
}

func (in RetrieveChat) ViewerID() int64 {
	return in.viewerID
}

func (in *RetrieveChat) Validate() error {
	v := validator.New()

	if !id.Valid(in.ChatID) {
		v.AddError("ChatID", "잘못된 채팅방 번호입니다")
	}

	return v.AsError()
}
