package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hako/branca"
	"github.com/nicolasparada/go-errs"
	"github.com/taemindang/taemindang/id"
	"github.com/taemindang/taemindang/types"
)

const authTokenTTL = time.Hour * 24 * 14

var (
	// ErrInvalidToken denotes a token that could not be decoded.
	ErrInvalidToken = errs.UnauthenticatedError("유효하지 않은 토큰입니다")
	// ErrExpiredToken denotes that the token already expired.
	ErrExpiredToken = errs.UnauthenticatedError("토큰이 만료되었습니다")
	// ErrLoginRequired is returned when a request carries no member.
	ErrLoginRequired = errs.UnauthenticatedError("로그인이 필요합니다")
)

// AuthMemberIDFromToken decodes the token into a member ID.
func (svc *Service) AuthMemberIDFromToken(token string) (int64, error) {
	raw, err := svc.codec().DecodeToString(token)
	if err != nil {
		if errors.Is(err, branca.ErrInvalidToken) || errors.Is(err, branca.ErrInvalidTokenVersion) {
			return 0, ErrInvalidToken
		}

		if _, ok := err.(*branca.ErrExpiredToken); ok {
			return 0, ErrExpiredToken
		}

		// branca surfaces the chacha20poly1305 failure for a foreign key as a
		// plain error.
		if strings.HasSuffix(err.Error(), "authentication failed") {
			return 0, ErrInvalidToken
		}

		return 0, fmt.Errorf("could not decode token: %w", err)
	}

	memberID, ok := id.Parse(raw)
	if !ok {
		return 0, ErrInvalidToken
	}

	return memberID, nil
}

// IssueToken creates a bearer token for the member.
func (svc *Service) IssueToken(memberID int64) (types.TokenOutput, error) {
	var out types.TokenOutput

	if !id.Valid(memberID) {
		return out, errs.InvalidArgumentError("잘못된 회원 번호입니다")
	}

	var err error
	out.Token, err = svc.codec().EncodeToString(strconv.FormatInt(memberID, 10))
	if err != nil {
		return out, fmt.Errorf("could not create token: %w", err)
	}

	out.ExpiresAt = time.Now().Add(authTokenTTL)

	return out, nil
}

func (svc *Service) codec() *branca.Branca {
	cdc := branca.NewBranca(svc.tokenKey)
	cdc.SetTTL(uint32(authTokenTTL.Seconds()))
	return cdc
}
