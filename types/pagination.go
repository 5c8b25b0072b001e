package types

import "github.com/nicolasparada/go-errs"

const maxPageSize = 200

type Page[T any] struct {
	Items    []T      `json:"items"`
	PageInfo PageInfo `json:"page_info"`
}

type PageInfo struct {
	EndCursor       *string `json:"end_cursor"`
	HasNextPage     bool    `json:"has_next_page"`
	StartCursor     *string `json:"start_cursor"`
	HasPreviousPage bool    `json:"has_previous_page"`
}

type PageArgs struct {
	First  *uint
	After  *string
	Last   *uint
	Before *string
}

func (args PageArgs) IsBackwards() bool {
	return args.Last != nil || args.Before != nil
}

func (args *PageArgs) Validate() error {
	if args.First != nil && args.Last != nil {
		return errs.InvalidArgumentError("first와 last는 함께 사용할 수 없습니다")
	}

	if args.After != nil && args.Before != nil {
		return errs.InvalidArgumentError("after와 before는 함께 사용할 수 없습니다")
	}

	if args.First != nil && (*args.First < 1 || *args.First > maxPageSize) {
		return errs.InvalidArgumentError("first는 1 이상 200 이하여야 합니다")
	}

	if args.Last != nil && (*args.Last < 1 || *args.Last > maxPageSize) {
		return errs.InvalidArgumentError("last는 1 이상 200 이하여야 합니다")
	}

	return nil
}
