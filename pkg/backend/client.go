// Package backend is the client for a hosted records API (see pkg/records).
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"farmdash/pkg/apperr"
	"farmdash/pkg/middleware"
	"farmdash/pkg/records"
)

type Client struct {
	baseURL string
	apiKey  string
	uid     string
	httpc   *http.Client
}

// New builds a client. Each call sends the uid found on its context, or uid
// when the context has none.
func New(baseURL, apiKey, uid string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		uid:     uid,
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*records.Response, error) {
	u := c.baseURL + "/api/v1/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	uid := middleware.UIDFrom(ctx)
	if uid == "" {
		uid = c.uid
	}
	if uid != "" {
		req.Header.Set(middleware.UIDHeader, uid)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeUnavailable, method+" "+path, err)
	}
	defer resp.Body.Close()

	var out records.Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperr.Wrap(apperr.CodeUnavailable, fmt.Sprintf("%s %s: status %d", method, path, resp.StatusCode), err)
	}
	if !out.Success && out.Results == nil {
		msg := out.Message
		if msg == "" {
			msg = resp.Status
		}
		log.Printf("[backend] %s %s: %s", method, path, msg)
		if resp.StatusCode == http.StatusNotFound {
			return nil, apperr.NotFound(msg)
		}
		if resp.StatusCode == http.StatusBadRequest {
			return nil, apperr.Invalid(msg)
		}
		return nil, apperr.New(apperr.CodeUnavailable, msg)
	}
	return &out, nil
}

// Table is a typed view of one remote table.
type Table[T any] struct {
	c     *Client
	table string
	name  string
}

// NewTable binds a table; name is the singular used in error messages.
func NewTable[T any](c *Client, table, name string) *Table[T] {
	return &Table[T]{c: c, table: table, name: name}
}

// Fetch lists records, filtered by the equality conditions in where.
func (t *Table[T]) Fetch(ctx context.Context, where url.Values) ([]T, error) {
	resp, err := t.c.do(ctx, http.MethodGet, t.table, where, nil)
	if err != nil {
		return nil, err
	}
	var out []T
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &out); err != nil {
			return nil, fmt.Errorf("decode %s list: %w", t.name, err)
		}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (t *Table[T]) Get(ctx context.Context, id int) (*T, error) {
	resp, err := t.c.do(ctx, http.MethodGet, t.table+"/"+strconv.Itoa(id), nil, nil)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(resp.Data, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", t.name, err)
	}
	return &out, nil
}

func (t *Table[T]) Create(ctx context.Context, rec *T) (*T, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	resp, err := t.c.do(ctx, http.MethodPost, t.table, nil, records.WriteRequest{Records: []json.RawMessage{raw}})
	if err != nil {
		return nil, err
	}
	return t.single(resp, "create")
}

// Update sends patch merged with the record id. Only the keys present in the
// encoded patch are changed remotely.
func (t *Table[T]) Update(ctx context.Context, id int, patch any) (*T, error) {
	b, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("encode %s patch: %w", t.name, err)
	}
	fields["id"] = json.RawMessage(strconv.Itoa(id))
	raw, _ := json.Marshal(fields)
	resp, err := t.c.do(ctx, http.MethodPatch, t.table, nil, records.WriteRequest{Records: []json.RawMessage{raw}})
	if err != nil {
		return nil, err
	}
	return t.single(resp, "update")
}

// Delete removes the record and returns what was stored before removal.
func (t *Table[T]) Delete(ctx context.Context, id int) (*T, error) {
	cur, err := t.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp, err := t.c.do(ctx, http.MethodDelete, t.table, nil, records.DeleteRequest{RecordIDs: []int{id}})
	if err != nil {
		return nil, err
	}
	if _, err := t.single(resp, "delete"); err != nil {
		return nil, err
	}
	return cur, nil
}

// single unpacks a one-record batch, dropping failed results. Any failure is
// logged in full and surfaced as a generic error. A not_found or
// invalid_argument code on the failed record is kept.
func (t *Table[T]) single(resp *records.Response, op string) (*T, error) {
	ok, failed := records.Split(resp.Results)
	if len(failed) > 0 {
		detail, _ := json.Marshal(failed)
		log.Printf("[backend] failed to %s %d %s records: %s", op, len(failed), t.name, detail)
		code := apperr.CodeUnavailable
		switch c := apperr.Code(failed[0].Code); c {
		case apperr.CodeNotFound, apperr.CodeInvalidArgument:
			code = c
		}
		return nil, apperr.New(code, fmt.Sprintf("failed to %s %s", op, t.name))
	}
	if len(ok) == 0 {
		return nil, apperr.New(apperr.CodeUnavailable, fmt.Sprintf("failed to %s %s: empty response", op, t.name))
	}
	var out T
	if len(ok[0].Data) > 0 {
		if err := json.Unmarshal(ok[0].Data, &out); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t.name, err)
		}
	}
	return &out, nil
}

// Read GETs a non-table resource such as "weather/forecast" and decodes its
// data into out.
func (c *Client) Read(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	if len(resp.Data) == 0 {
		return apperr.New(apperr.CodeUnavailable, "empty response for "+path)
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
