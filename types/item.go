package types

import (
	"strings"

	"github.com/nicolasparada/go-errs"
	"github.com/taemindang/taemindang/id"
)

type ItemStatus string

const (
	ItemStatusSelling ItemStatus = "SELLING"
	ItemStatusSold    ItemStatus = "SOLD"
)

func (s ItemStatus) String() string {
	return string(s)
}

func (s ItemStatus) Valid() bool {
	return s == ItemStatusSelling || s == ItemStatusSold
}

type Item struct {
	ID       int64      `db:"id"`
	SellerID int64      `db:"seller_id"`
	Title    string     `db:"title"`
	Status   ItemStatus `db:"status"`
	BuyerID  *int64     `db:"buyer_id"`
}

type UpdateItemStatus struct {
	ChatID int64      `json:"-"`
	Status ItemStatus `json:"status"`

	itemID  int64
	buyerID int64
}

// SetTarget records the item and buyer resolved from the chat.
func (in *UpdateItemStatus) SetTarget(itemID, buyerID int64) {
	in.itemID = itemID
	in.buyerID = buyerID
}

func (in UpdateItemStatus) ItemID() int64 {
	return in.itemID
}

// BuyerID is the chat buyer when marking as sold and nil when back on sale.
func (in UpdateItemStatus) BuyerID() *int64 {
	if in.Status == ItemStatusSold {
		return &in.buyerID
	}
	return nil
}

func (in *UpdateItemStatus) Validate() error {
	in.Status = ItemStatus(strings.TrimSpace(string(in.Status)))

	if !in.Status.Valid() {
		return errs.InvalidArgumentError("status는 SOLD 또는 SELLING이어야 합니다")
	}

	if !id.Valid(in.ChatID) {
		return errs.InvalidArgumentError("잘못된 채팅방 번호입니다")
	}

	return nil
}

type ItemStatusUpdated struct {
	Status ItemStatus `json:"status"`
}

func (out ItemStatusUpdated) Notice() string {
	if out.Status == ItemStatusSold {
		return "거래완료로 변경되었습니다"
	}
	return "판매중으로 변경되었습니다"
}
