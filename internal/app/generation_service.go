package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"docflow/internal/ai"
	"docflow/internal/model"
)

var (
	ErrDocumentNotFound   = errors.New("document not found")
	ErrNotDocumentOwner   = errors.New("not the document owner")
	ErrPromptEmpty        = errors.New("prompt is empty")
	ErrDailyLimitReached  = errors.New("daily limit reached")
	ErrHourlyLimitReached = errors.New("hourly limit reached")
)

type DocumentStore interface {
	GetByID(id uint) (*model.Document, error)
}

type RequestLogStore interface {
	Create(req *model.AIRequest) error
	ListByUserSince(userID uint, since time.Time) ([]model.AIRequest, error)
}

type GeneratedStore interface {
	Create(gen *model.GeneratedDocument) error
	ListByDocumentID(documentID uint) ([]model.GeneratedDocument, error)
}

type ChatCompleter interface {
	Complete(ctx context.Context, cfg ai.ChatConfig, messages []ai.ChatMessage) (string, error)
}

type GenerationCache interface {
	GetList(ctx context.Context, documentID uint) ([]model.GeneratedDocument, bool, error)
	SetList(ctx context.Context, documentID uint, gens []model.GeneratedDocument) error
	DeleteList(ctx context.Context, documentID uint) error
	MarkDirty(ctx context.Context, documentID uint) error
	IsDirty(ctx context.Context, documentID uint) (bool, error)
}

type GenerationService struct {
	docs      DocumentStore
	requests  RequestLogStore
	generated GeneratedStore
	cache     GenerationCache
	llm       ChatCompleter
	chatCfg   ai.ChatConfig

	hourlyLimit int
	dailyLimit  int

	now func() time.Time
}

func NewGenerationService(
	docs DocumentStore,
	requests RequestLogStore,
	generated GeneratedStore,
	cache GenerationCache,
	llm ChatCompleter,
	chatCfg ai.ChatConfig,
	hourlyLimit, dailyLimit int,
) *GenerationService {
	if hourlyLimit <= 0 {
		hourlyLimit = 10
	}
	if dailyLimit <= 0 {
		dailyLimit = 50
	}
	return &GenerationService{
		docs:        docs,
		requests:    requests,
		generated:   generated,
		cache:       cache,
		llm:         llm,
		chatCfg:     chatCfg,
		hourlyLimit: hourlyLimit,
		dailyLimit:  dailyLimit,
		now:         time.Now,
	}
}

// Generate runs the full pipeline for one request: ownership and input
// validation, quota enforcement, provider call with deterministic
// fallback, language-tag stripping, then one audit record and one
// generated record. Nothing is written if validation or quota fails.
func (s *GenerationService) Generate(ctx context.Context, userID, documentID uint, prompt string) (*model.GeneratedDocument, error) {
	if userID == 0 || documentID == 0 {
		return nil, ErrInvalidInput
	}

	doc, err := s.docs.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}
	if doc.UserID != userID {
		return nil, ErrNotDocumentOwner
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrPromptEmpty
	}

	now := s.now()
	if err := s.checkQuota(doc.UserID, now); err != nil {
		return nil, err
	}

	content, label := s.complete(ctx, doc, prompt, now)
	content = stripLanguageTag(content)

	request := &model.AIRequest{
		UserID:     doc.UserID,
		DocumentID: doc.ID,
		Prompt:     prompt,
		Response:   label,
	}
	if err := s.requests.Create(request); err != nil {
		return nil, err
	}

	gen := &model.GeneratedDocument{
		DocumentID: doc.ID,
		Content:    content,
	}
	if err := s.generated.Create(gen); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.MarkDirty(ctx, doc.ID)
		_ = s.cache.DeleteList(ctx, doc.ID)
	}

	return gen, nil
}

// ListGenerated returns the document's generation history, newest first.
func (s *GenerationService) ListGenerated(ctx context.Context, userID, documentID uint) ([]model.GeneratedDocument, error) {
	if userID == 0 || documentID == 0 {
		return nil, ErrInvalidInput
	}

	doc, err := s.docs.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}
	if doc.UserID != userID {
		return nil, ErrNotDocumentOwner
	}

	if s.cache != nil {
		dirty, err := s.cache.IsDirty(ctx, documentID)
		if err == nil && !dirty {
			if cached, hit, cacheErr := s.cache.GetList(ctx, documentID); cacheErr == nil && hit {
				return cached, nil
			}
		}
	}

	gens, err := s.generated.ListByDocumentID(documentID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if dirty, dirtyErr := s.cache.IsDirty(ctx, documentID); dirtyErr == nil && !dirty {
			_ = s.cache.SetList(ctx, documentID, gens)
		}
	}
	return gens, nil
}

// checkQuota counts the owner's audit records since local midnight and
// rejects when either window is full. Quota keys on the document owner,
// not the session, so concurrent logins share one budget.
func (s *GenerationService) checkQuota(ownerID uint, now time.Time) error {
	records, err := s.requests.ListByUserSince(ownerID, dayStart(now))
	if err != nil {
		return err
	}

	timestamps := make([]time.Time, len(records))
	for i, r := range records {
		timestamps[i] = r.CreatedAt
	}

	daily, hourly := countQuotaWindows(timestamps, now)
	if daily >= s.dailyLimit {
		return ErrDailyLimitReached
	}
	if hourly >= s.hourlyLimit {
		return ErrHourlyLimitReached
	}
	return nil
}

// complete calls the provider once; any failure or empty reply is
// replaced by the deterministic fallback. The returned label is the
// model name or "fallback" and goes into the audit log.
func (s *GenerationService) complete(ctx context.Context, doc *model.Document, prompt string, now time.Time) (string, string) {
	output, err := s.llm.Complete(ctx, s.chatCfg, buildGenerationMessages(doc, prompt))
	output = strings.TrimSpace(output)
	if err != nil || output == "" {
		return renderFallback(doc, prompt, now), fallbackLabel
	}
	return output, s.chatCfg.Model
}

const generationSystemPrompt = `You are a writing assistant for a document editor.
Detect the language of the user's instruction only; ignore the language of the document title and content.
Respond entirely in that language. Only English and French are supported.
Your reply MUST begin with exactly one of these two lines, followed by one blank line:
LANGUAGE: en
LANGUAGE: fr
Then write the requested content.`

func buildGenerationMessages(doc *model.Document, prompt string) []ai.ChatMessage {
	userPrompt := fmt.Sprintf(`Document title: %s

Current content:
%s

Instruction: %s

Answer in the language of the instruction above and begin your reply with its LANGUAGE tag line.`,
		doc.Title, doc.Content, prompt)

	return []ai.ChatMessage{
		{Role: "system", Content: generationSystemPrompt},
		{Role: "user", Content: userPrompt},
	}
}
