package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"syscall"

	"github.com/go-kit/log/level"
	"github.com/matryer/way"
	"github.com/nicolasparada/go-errs"
	"github.com/nicolasparada/go-errs/httperrs"
	"github.com/taemindang/taemindang/auth"
	"github.com/taemindang/taemindang/id"
	"github.com/taemindang/taemindang/service"
	"github.com/taemindang/taemindang/types"
)

const (
	maxJSONBodyBytes = 1 << 20
	// multipart overhead on top of the image itself.
	maxMultipartOverhead = 1 << 20

	msgInternalError = "서버 오류가 발생했습니다"
)

var (
	errBadRequest = errs.InvalidArgumentError("잘못된 요청입니다")
	errNoRoute    = errs.NotFoundError("요청한 경로를 찾을 수 없습니다")
)

// envelope is the shape of every response body.
type envelope struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message,omitempty"`
	Data     any             `json:"data,omitempty"`
	PageInfo *types.PageInfo `json:"page_info,omitempty"`
	Error    string          `json:"error,omitempty"`
}

func (h *handler) respond(w http.ResponseWriter, data any, message string, statusCode int) {
	h.writeJSON(w, envelope{
		Success: statusCode < http.StatusBadRequest,
		Message: message,
		Data:    data,
	}, statusCode)
}

// respondPage writes the page items as data and its cursors as page_info.
func (h *handler) respondPage(w http.ResponseWriter, items any, info types.PageInfo) {
	h.writeJSON(w, envelope{
		Success:  true,
		Data:     items,
		PageInfo: &info,
	}, http.StatusOK)
}

// respondErr writes err with its status code. Internal errors are logged and
// masked with fallback; their detail is only exposed outside production.
func (h *handler) respondErr(w http.ResponseWriter, err error, fallback string) {
	statusCode := err2code(err)
	if statusCode != http.StatusInternalServerError {
		h.writeJSON(w, envelope{Message: err.Error()}, statusCode)
		return
	}

	if !errors.Is(err, context.Canceled) {
		_ = level.Error(h.logger).Log("msg", fallback, "err", err)
	}

	if fallback == "" {
		fallback = msgInternalError
	}

	body := envelope{Message: fallback}
	if !h.production {
		body.Error = err.Error()
	}

	h.writeJSON(w, body, statusCode)
}

func (h *handler) writeJSON(w http.ResponseWriter, v any, statusCode int) {
	b, err := json.Marshal(v)
	if err != nil {
		_ = level.Error(h.logger).Log("msg", "could not json marshal http response body", "err", err)
		statusCode = http.StatusInternalServerError
		b = []byte(`{"success":false,"message":"` + msgInternalError + `"}`)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err = w.Write(b)
	if err != nil && !errors.Is(err, syscall.EPIPE) && !errors.Is(err, context.Canceled) {
		_ = h.logger.Log("err", fmt.Errorf("could not write down http response: %w", err))
	}
}

func err2code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errs.InvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, errs.Unauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.PermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.NotFound):
		return http.StatusNotFound
	}

	return httperrs.Code(err)
}

// requestErr reports a malformed request. Anonymous requests get the login
// error instead, the same as a well formed one would.
func requestErr(r *http.Request, err error) error {
	if _, ok := auth.MemberIDFromContext(r.Context()); !ok {
		return service.ErrLoginRequired
	}
	return err
}

func pathID(r *http.Request, name string) (int64, error) {
	v, ok := id.Parse(way.Param(r.Context(), name))
	if !ok {
		return 0, requestErr(r, errBadRequest)
	}
	return v, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return err
	}

	if err != nil {
		return requestErr(r, errBadRequest)
	}

	return nil
}

func parsePageArgs(q url.Values) (types.PageArgs, error) {
	var pageArgs types.PageArgs

	if q.Has("first") {
		first, err := strconv.ParseUint(q.Get("first"), 10, 64)
		if err != nil {
			return pageArgs, errs.InvalidArgumentError("first 값이 올바르지 않습니다")
		}

		pageArgs.First = new(uint(first))
	}

	if q.Has("after") {
		pageArgs.After = new(q.Get("after"))
	}

	if q.Has("last") {
		last, err := strconv.ParseUint(q.Get("last"), 10, 64)
		if err != nil {
			return pageArgs, errs.InvalidArgumentError("last 값이 올바르지 않습니다")
		}

		pageArgs.Last = new(uint(last))
	}

	if q.Has("before") {
		pageArgs.Before = new(q.Get("before"))
	}

	return pageArgs, nil
}
