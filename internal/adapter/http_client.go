// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	pushPath = "/api/sync/push"

	// traceIDHeader carries the sync attempt id so both sides can correlate
	// their logs.
	traceIDHeader = "X-Trace-ID"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher
	newID  func() string
	now    func() time.Time

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. The base URL is taken from adapterCfg.HTTPAddress; a
// missing scheme defaults to http. When appCfg.HashKey is empty the
// transport hash is left blank.
//
// Returns an error if the address is empty or cannot be parsed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	a := &httpServerAdapter{
		client: client,
		newID:  utils.NewAttemptID,
		now:    time.Now,
		logger: logger.OrNop(log),
	}
	if appCfg.HashKey != "" {
		a.hasher = utils.NewHasher(appCfg.HashKey)
	}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Push implements [ServerAdapter]. It fills in the transport hash over
// req.Envelopes and the entry count, then POSTs the request to
// POST /api/sync/push with the bearer token and the attempt id.
func (h *httpServerAdapter) Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error) {
	log := logger.FromContext(ctx)

	token := h.Token()
	if token == "" {
		return models.PushResponse{}, ErrNoToken
	}
	if utils.IsTokenExpired(token, h.now()) {
		log.Warn().Str("func", "httpServerAdapter.Push").Msg("bearer token expired, push skipped")
		return models.PushResponse{}, ErrTokenExpired
	}

	if req.Envelopes == nil {
		req.Envelopes = []models.Envelope{}
	}
	if req.Tombstones == nil {
		req.Tombstones = []models.Tombstone{}
	}
	req.Hash = h.transportHash(req.Envelopes)
	req.Length = len(req.Envelopes) + len(req.Tombstones)

	traceID, ok := utils.GetAttemptIDFromContext(ctx)
	if !ok {
		traceID = h.newID()
	}

	var out models.PushResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Content-Type", "application/json").
		SetHeader(traceIDHeader, traceID).
		SetBody(req).
		SetResult(&out).
		Post(pushPath)
	if err != nil {
		return models.PushResponse{}, fmt.Errorf("push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).
			Str("func", "httpServerAdapter.Push").
			Int("status", resp.StatusCode()).
			Msg("push rejected")
		return models.PushResponse{}, err
	}

	log.Debug().
		Str("func", "httpServerAdapter.Push").
		Int("length", req.Length).
		Int("accepted", out.Accepted).
		Dur("took", resp.Time()).
		Msg("push acknowledged")

	return out, nil
}

func (h *httpServerAdapter) transportHash(v any) string {
	if h.hasher == nil {
		return ""
	}

	payload, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	return h.hasher.HashHex(payload)
}
