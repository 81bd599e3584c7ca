package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/tusharoffice40/Whole-X/pkg/config"
	"github.com/tusharoffice40/Whole-X/pkg/enums"
	pkgerrors "github.com/tusharoffice40/Whole-X/pkg/errors"
	"github.com/tusharoffice40/Whole-X/pkg/logger"
	"github.com/tusharoffice40/Whole-X/pkg/models"
	"github.com/tusharoffice40/Whole-X/pkg/session"
)

const (
	consultantPrompt = `You are a B2B Wholesale Business Consultant for the platform "WholeX". Answer the following user query professionally: %q. Focus on supply chain, bulk ordering benefits, and business growth.`

	// emptyReplyFallback covers a successful call that returned no text;
	// failureFallback covers any failed call. Callers rely on the two
	// tiers staying distinct.
	emptyReplyFallback = "I'm here to help with your wholesale business queries."
	failureFallback    = "Our AI consultant is currently offline. Please contact human support."
)

// TextGenerator is the remote capability that produces consultant
// replies.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Service is the advisory chat adapter: it appends the user's message,
// performs exactly one generation call, and appends the reply or a fixed
// fallback. Failures never escape to the caller.
type Service interface {
	Send(ctx context.Context, sess *session.Session, userText string) ([]models.ChatMessage, error)
	Transcript(sess *session.Session) []models.ChatMessage
}

type service struct {
	gen           TextGenerator
	transcriptMax int
	logg          *logger.Logger
}

// NewService builds the chat adapter.
func NewService(gen TextGenerator, cfg config.AdvisorConfig, logg *logger.Logger) (Service, error) {
	if gen == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "text generator required")
	}
	return &service{
		gen:           gen,
		transcriptMax: cfg.TranscriptMax,
		logg:          logg,
	}, nil
}

// Send runs one advisory exchange. The session lock is not held during
// the generation call; AdvisorBusy is raised around it as a UI affordance
// only, concurrent sends are neither coalesced nor queued. There is no
// retry and no cancellation once the call is issued.
func (s *service) Send(ctx context.Context, sess *session.Session, userText string) ([]models.ChatMessage, error) {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message text is required")
	}

	sess.Update(func(st *session.State) {
		st.Transcript = appendCapped(st.Transcript, models.ChatMessage{
			Role: enums.ChatRoleUser,
			Text: userText,
		}, s.transcriptMax)
		st.AdvisorBusy = true
	})

	reply := s.generateReply(ctx, userText)

	var transcript []models.ChatMessage
	sess.Update(func(st *session.State) {
		st.Transcript = appendCapped(st.Transcript, models.ChatMessage{
			Role: enums.ChatRoleAssistant,
			Text: reply,
		}, s.transcriptMax)
		st.AdvisorBusy = false
		transcript = append([]models.ChatMessage(nil), st.Transcript...)
	})

	return transcript, nil
}

func (s *service) Transcript(sess *session.Session) []models.ChatMessage {
	return sess.Snapshot().Transcript
}

func (s *service) generateReply(ctx context.Context, userText string) string {
	text, err := s.gen.GenerateText(ctx, fmt.Sprintf(consultantPrompt, userText))
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "advisor generation failed")
		}
		return failureFallback
	}
	if strings.TrimSpace(text) == "" {
		return emptyReplyFallback
	}
	return text
}

// appendCapped appends and trims the transcript oldest-first to the cap.
func appendCapped(transcript []models.ChatMessage, msg models.ChatMessage, limit int) []models.ChatMessage {
	transcript = append(transcript, msg)
	if limit > 0 && len(transcript) > limit {
		transcript = append([]models.ChatMessage(nil), transcript[len(transcript)-limit:]...)
	}
	return transcript
}
