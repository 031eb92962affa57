// Copyright (c) 2026 The Jukebot Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// BridgeClient is the production Messenger: it POSTs outbound actions to
// the transport bridge, the process that owns the actual chat connection.
type BridgeClient struct {
	baseURL string
	client  *http.Client
}

func NewBridgeClient(baseURL string) *BridgeClient {
	return &BridgeClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

type openPollRequest struct {
	ChatID       int64    `json:"chat_id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	Quiz         bool     `json:"quiz,omitempty"`
	CorrectIndex int      `json:"correct_index,omitempty"`
	Explanation  string   `json:"explanation,omitempty"`
}

type openPollResponse struct {
	PollID string `json:"poll_id"`
}

// SendMessage delivers text to a chat via the bridge.
func (c *BridgeClient) SendMessage(chatID int64, text string) error {
	return c.post("/messages", sendMessageRequest{ChatID: chatID, Text: text}, nil)
}

// OpenPoll opens a poll via the bridge and returns its opaque ID.
func (c *BridgeClient) OpenPoll(chatID int64, question string, options []string, opts PollOptions) (string, error) {
	req := openPollRequest{
		ChatID:       chatID,
		Question:     question,
		Options:      options,
		Quiz:         opts.Quiz,
		CorrectIndex: opts.CorrectIndex,
		Explanation:  opts.Explanation,
	}

	var resp openPollResponse
	if err := c.post("/polls", req, &resp); err != nil {
		return "", err
	}
	if resp.PollID == "" {
		return "", fmt.Errorf("bridge returned empty poll ID")
	}
	return resp.PollID, nil
}

func (c *BridgeClient) post(path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode bridge request: %w", err)
	}

	resp, err := c.client.Post(c.baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("bridge request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("bridge returned status %d for %s", resp.StatusCode, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode bridge response: %w", err)
		}
	}
	return nil
}
