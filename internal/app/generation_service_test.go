package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"docflow/internal/ai"
	"docflow/internal/model"
)

type fakeDocumentStore struct {
	docs map[uint]*model.Document
}

func (f *fakeDocumentStore) GetByID(id uint) (*model.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	copied := *doc
	return &copied, nil
}

type fakeRequestLogStore struct {
	records []model.AIRequest
}

func (f *fakeRequestLogStore) Create(req *model.AIRequest) error {
	req.ID = uint(len(f.records) + 1)
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	f.records = append(f.records, *req)
	return nil
}

func (f *fakeRequestLogStore) ListByUserSince(userID uint, since time.Time) ([]model.AIRequest, error) {
	var out []model.AIRequest
	for _, r := range f.records {
		if r.UserID == userID && !r.CreatedAt.Before(since) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeGeneratedStore struct {
	records []model.GeneratedDocument
}

func (f *fakeGeneratedStore) Create(gen *model.GeneratedDocument) error {
	gen.ID = uint(len(f.records) + 1)
	gen.CreatedAt = time.Now()
	gen.UpdatedAt = gen.CreatedAt
	f.records = append(f.records, *gen)
	return nil
}

func (f *fakeGeneratedStore) ListByDocumentID(documentID uint) ([]model.GeneratedDocument, error) {
	var out []model.GeneratedDocument
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].DocumentID == documentID {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}

type fakeCompleter struct {
	output string
	err    error
	calls  int
}

func (f *fakeCompleter) Complete(_ context.Context, _ ai.ChatConfig, _ []ai.ChatMessage) (string, error) {
	f.calls++
	return f.output, f.err
}

type generationFixture struct {
	service   *GenerationService
	docs      *fakeDocumentStore
	requests  *fakeRequestLogStore
	generated *fakeGeneratedStore
	llm       *fakeCompleter
}

func newGenerationFixture(llm *fakeCompleter) *generationFixture {
	docs := &fakeDocumentStore{docs: map[uint]*model.Document{
		1: {ID: 1, UserID: 10, Title: "Guide", Content: "intro text"},
	}}
	requests := &fakeRequestLogStore{}
	generated := &fakeGeneratedStore{}

	service := NewGenerationService(
		docs, requests, generated, nil, llm,
		ai.ChatConfig{Model: "gpt-4o-mini"},
		10, 50,
	)
	return &generationFixture{
		service:   service,
		docs:      docs,
		requests:  requests,
		generated: generated,
		llm:       llm,
	}
}

func TestGenerateSuccessStripsTagAndRecords(t *testing.T) {
	fx := newGenerationFixture(&fakeCompleter{output: "LANGUAGE: en\n\nHere is your draft."})

	gen, err := fx.service.Generate(context.Background(), 10, 1, "Write an intro")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if gen.Content != "Here is your draft." {
		t.Fatalf("content = %q", gen.Content)
	}
	if len(fx.requests.records) != 1 {
		t.Fatalf("audit records = %d, want 1", len(fx.requests.records))
	}
	if len(fx.generated.records) != 1 {
		t.Fatalf("generated records = %d, want 1", len(fx.generated.records))
	}
	audit := fx.requests.records[0]
	if audit.Response != "gpt-4o-mini" {
		t.Fatalf("audit response label = %q", audit.Response)
	}
	if audit.DocumentID != gen.DocumentID {
		t.Fatalf("audit doc %d != generated doc %d", audit.DocumentID, gen.DocumentID)
	}
}

func TestGenerateNotOwner(t *testing.T) {
	fx := newGenerationFixture(&fakeCompleter{output: "ok"})

	_, err := fx.service.Generate(context.Background(), 99, 1, "prompt")
	if !errors.Is(err, ErrNotDocumentOwner) {
		t.Fatalf("err = %v, want ErrNotDocumentOwner", err)
	}
	if fx.llm.calls != 0 {
		t.Fatal("provider was called despite ownership failure")
	}
	if len(fx.requests.records) != 0 || len(fx.generated.records) != 0 {
		t.Fatal("records written despite ownership failure")
	}
}

func TestGenerateDocumentNotFound(t *testing.T) {
	fx := newGenerationFixture(&fakeCompleter{output: "ok"})

	_, err := fx.service.Generate(context.Background(), 10, 42, "prompt")
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("err = %v, want ErrDocumentNotFound", err)
	}
}

func TestGenerateEmptyPrompt(t *testing.T) {
	fx := newGenerationFixture(&fakeCompleter{output: "ok"})

	_, err := fx.service.Generate(context.Background(), 10, 1, "   ")
	if !errors.Is(err, ErrPromptEmpty) {
		t.Fatalf("err = %v, want ErrPromptEmpty", err)
	}
	if fx.llm.calls != 0 || len(fx.requests.records) != 0 {
		t.Fatal("side effects despite empty prompt")
	}
}

func TestGenerateDailyLimit(t *testing.T) {
	fx := newGenerationFixture(&fakeCompleter{output: "ok"})
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.Local)
	fx.service.now = func() time.Time { return now }

	// 50 requests earlier today, none in the last hour.
	for i := 0; i < 50; i++ {
		fx.requests.records = append(fx.requests.records, model.AIRequest{
			UserID:    10,
			CreatedAt: now.Add(-5 * time.Hour),
		})
	}

	_, err := fx.service.Generate(context.Background(), 10, 1, "prompt")
	if !errors.Is(err, ErrDailyLimitReached) {
		t.Fatalf("err = %v, want ErrDailyLimitReached", err)
	}
	if fx.llm.calls != 0 {
		t.Fatal("provider was called despite quota failure")
	}
	if len(fx.generated.records) != 0 {
		t.Fatal("generated record written despite quota failure")
	}
}

func TestGenerateHourlyLimitAndRecovery(t *testing.T) {
	fx := newGenerationFixture(&fakeCompleter{output: "LANGUAGE: en\n\nDone."})
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.Local)
	fx.service.now = func() time.Time { return now }

	for i := 0; i < 10; i++ {
		fx.requests.records = append(fx.requests.records, model.AIRequest{
			UserID:    10,
			CreatedAt: now.Add(-30 * time.Minute),
		})
	}

	if _, err := fx.service.Generate(context.Background(), 10, 1, "prompt"); !errors.Is(err, ErrHourlyLimitReached) {
		t.Fatalf("err = %v, want ErrHourlyLimitReached", err)
	}

	// Same state after the hour window elapses succeeds.
	fx.service.now = func() time.Time { return now.Add(2 * time.Hour) }
	if _, err := fx.service.Generate(context.Background(), 10, 1, "prompt"); err != nil {
		t.Fatalf("Generate after window elapsed failed: %v", err)
	}
}

func TestGenerateProviderFailureUsesFallback(t *testing.T) {
	fx := newGenerationFixture(&fakeCompleter{err: errors.New("provider down")})
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.Local)
	fx.service.now = func() time.Time { return now }

	gen, err := fx.service.Generate(context.Background(), 10, 1, "Summarize this in English")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(gen.Content, "Guide") {
		t.Fatalf("fallback content missing title: %q", gen.Content)
	}
	if !strings.Contains(gen.Content, "2025-06-15") {
		t.Fatalf("fallback content missing date: %q", gen.Content)
	}
	if len(fx.requests.records) != 1 || fx.requests.records[0].Response != fallbackLabel {
		t.Fatalf("audit records = %+v, want one with fallback label", fx.requests.records)
	}
	if len(fx.generated.records) != 1 {
		t.Fatalf("generated records = %d, want 1", len(fx.generated.records))
	}
}

func TestGenerateEmptyProviderOutputUsesFallback(t *testing.T) {
	fx := newGenerationFixture(&fakeCompleter{output: "   "})

	gen, err := fx.service.Generate(context.Background(), 10, 1, "Develop the topic")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if strings.TrimSpace(gen.Content) == "" {
		t.Fatal("fallback produced empty content")
	}
	if fx.requests.records[0].Response != fallbackLabel {
		t.Fatalf("audit label = %q, want fallback", fx.requests.records[0].Response)
	}
}

func TestGenerateAuditPairing(t *testing.T) {
	fx := newGenerationFixture(&fakeCompleter{output: "LANGUAGE: fr\n\nVoilà."})

	for i := 0; i < 3; i++ {
		if _, err := fx.service.Generate(context.Background(), 10, 1, "améliore ce texte"); err != nil {
			t.Fatalf("Generate %d failed: %v", i, err)
		}
		if len(fx.requests.records) != i+1 {
			t.Fatalf("audit records = %d after %d calls", len(fx.requests.records), i+1)
		}
		if len(fx.generated.records) != i+1 {
			t.Fatalf("generated records = %d after %d calls", len(fx.generated.records), i+1)
		}
	}
}

func TestListGeneratedOwnership(t *testing.T) {
	fx := newGenerationFixture(&fakeCompleter{output: "LANGUAGE: en\n\nBody"})

	if _, err := fx.service.Generate(context.Background(), 10, 1, "prompt"); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	gens, err := fx.service.ListGenerated(context.Background(), 10, 1)
	if err != nil {
		t.Fatalf("ListGenerated failed: %v", err)
	}
	if len(gens) != 1 {
		t.Fatalf("got %d generations, want 1", len(gens))
	}

	if _, err := fx.service.ListGenerated(context.Background(), 99, 1); !errors.Is(err, ErrNotDocumentOwner) {
		t.Fatalf("err = %v, want ErrNotDocumentOwner", err)
	}
}
