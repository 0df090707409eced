// Package chat answers free-text questions from the booking widget. Replies
// come from Gemini when an API key is configured, otherwise from a fixed rule
// table; either way the caller always gets a textual reply.
package chat

import (
	"context"
	"time"

	"github.com/healthplus-lab/lab-chatbot-backend/internal/observability/metrics"
	"github.com/healthplus-lab/lab-chatbot-backend/pkg/logging"
)

// Reply sources reported to metrics.
const (
	SourceGemini   = "gemini"
	SourceRules    = "rules"
	SourceFallback = "fallback"
)

// FallbackReply is returned whenever the responder fails. Upstream errors
// never escape the chat boundary.
const FallbackReply = "Sorry, I couldn't answer that right now. Please try again in a moment, or call the lab directly."

// Responder produces a reply for a user message. lang is a pass-through
// language flag ("hi" for Hindi, anything else for English).
type Responder interface {
	Respond(ctx context.Context, user, message, lang string) (string, error)
}

// Service wraps a Responder with a bounded timeout and failure absorption.
type Service struct {
	responder Responder
	source    string
	timeout   time.Duration
	metrics   *metrics.APIMetrics
	logger    *logging.Logger
}

// NewService creates a chat service. source labels the responder in metrics.
func NewService(responder Responder, source string, timeout time.Duration, m *metrics.APIMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		responder: responder,
		source:    source,
		timeout:   timeout,
		metrics:   m,
		logger:    logger,
	}
}

// Reply answers the message. It never fails: responder errors (including
// timeouts) degrade to FallbackReply.
func (s *Service) Reply(ctx context.Context, user, message, lang string) string {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.responder.Respond(ctx, user, message, lang)
	if err != nil {
		s.logger.Error("chat responder failed", "error", err, "source", s.source)
		s.metrics.ObserveChatReply(SourceFallback)
		return FallbackReply
	}

	s.metrics.ObserveChatReply(s.source)
	return reply
}
