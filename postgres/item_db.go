package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgxutil"
	"github.com/nicolasparada/go-errs"
	"github.com/taemindang/taemindang/types"
)

var ErrItemNotFound = errs.NotFoundError("상품을 찾을 수 없습니다")

func (p *Postgres) ItemSellerID(ctx context.Context, itemID int64) (int64, error) {
	const query = `SELECT seller_id FROM items WHERE id = @item_id`
	args := pgx.StrictNamedArgs{
		"item_id": itemID,
	}
	sellerID, err := pgxutil.SelectRow(ctx, p.db, query, []any{args}, pgx.RowTo[int64])
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrItemNotFound
	}

	if err != nil {
		return 0, fmt.Errorf("sql select item seller: %w", err)
	}

	return sellerID, nil
}

func (p *Postgres) Item(ctx context.Context, itemID int64) (types.Item, error) {
	const query = `
		SELECT id, seller_id, title, status, buyer_id
		FROM items
		WHERE id = @item_id
	`
	args := pgx.StrictNamedArgs{
		"item_id": itemID,
	}
	item, err := pgxutil.SelectRow(ctx, p.db, query, []any{args}, pgx.RowToStructByNameLax[types.Item])
	if errors.Is(err, pgx.ErrNoRows) {
		return item, ErrItemNotFound
	}

	if err != nil {
		return item, fmt.Errorf("sql select item: %w", err)
	}

	return item, nil
}

func (p *Postgres) UpdateItemStatus(ctx context.Context, in types.UpdateItemStatus) error {
	const query = `
		UPDATE items
		SET status = @status,
			buyer_id = @buyer_id
		WHERE id = @item_id
	`
	_, err := p.db.Exec(ctx, query, pgx.StrictNamedArgs{
		"status":   in.Status,
		"buyer_id": in.BuyerID(),
		"item_id":  in.ItemID(),
	})
	if err != nil {
		return fmt.Errorf("sql update item status: %w", err)
	}

	return nil
}
