package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dvdgp9/gema8-go/internal/ai"
	"github.com/dvdgp9/gema8-go/internal/language"
	"github.com/dvdgp9/gema8-go/internal/model"
)

// In-memory fakes shared by the service tests.

type fakeProfileStore struct {
	profiles map[int64]*model.Profile

	findCalls      int
	decrementCalls int
	findErr        error
}

func newFakeProfileStore(profiles ...*model.Profile) *fakeProfileStore {
	s := &fakeProfileStore{profiles: make(map[int64]*model.Profile)}
	for _, p := range profiles {
		s.profiles[p.UserID] = p
	}
	return s
}

func (s *fakeProfileStore) FindByUserID(ctx context.Context, userID int64) (*model.Profile, error) {
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	p, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *fakeProfileStore) DecrementCredits(ctx context.Context, userID int64, amount int) (bool, error) {
	s.decrementCalls++
	p, ok := s.profiles[userID]
	if !ok || p.Credits < amount {
		return false, nil
	}
	p.Credits -= amount
	return true, nil
}

func (s *fakeProfileStore) AddCredits(ctx context.Context, userID int64, amount int) error {
	p, ok := s.profiles[userID]
	if !ok {
		return fmt.Errorf("no profile for user %d", userID)
	}
	p.Credits += amount
	return nil
}

func (s *fakeProfileStore) SetCredits(ctx context.Context, userID int64, credits int) error {
	p, ok := s.profiles[userID]
	if !ok {
		return fmt.Errorf("no profile for user %d", userID)
	}
	p.Credits = credits
	return nil
}

func (s *fakeProfileStore) UpdateRole(ctx context.Context, userID int64, role model.Role) error {
	p, ok := s.profiles[userID]
	if !ok {
		return fmt.Errorf("no profile for user %d", userID)
	}
	p.Role = role
	return nil
}

func (s *fakeProfileStore) UpdateLanguage(ctx context.Context, userID int64, lang string) (*model.LanguageStreak, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("no profile for user %d", userID)
	}
	if p.LanguageProgress == nil {
		p.LanguageProgress = make(model.LanguageProgress)
	}
	p.CurrentLanguage = lang
	streak := p.LanguageProgress.Touch(lang, time.Now().Format("2006-01-02"))
	return &streak, nil
}

type fakeTranslationStore struct {
	entries map[string]*model.Translation
	nextID  int64
	saveErr error
}

func newFakeTranslationStore() *fakeTranslationStore {
	return &fakeTranslationStore{entries: make(map[string]*model.Translation)}
}

func translationKey(userID int64, normalized, sourceLang, targetLang string) string {
	return fmt.Sprintf("%d|%s|%s|%s", userID, normalized, sourceLang, targetLang)
}

func (s *fakeTranslationStore) FindExisting(ctx context.Context, userID int64, normalized, sourceLang, targetLang string) (*model.Translation, error) {
	t, ok := s.entries[translationKey(userID, normalized, sourceLang, targetLang)]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (s *fakeTranslationStore) SaveOrUpdate(ctx context.Context, userID int64, originalText, translatedText, sourceLang, targetLang string) (*model.Translation, error) {
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	key := translationKey(userID, language.Normalize(originalText), sourceLang, targetLang)
	if existing, ok := s.entries[key]; ok {
		existing.UseCount++
		cp := *existing
		return &cp, nil
	}
	s.nextID++
	t := &model.Translation{
		ID:             s.nextID,
		UserID:         userID,
		OriginalText:   originalText,
		NormalizedText: language.Normalize(originalText),
		TranslatedText: translatedText,
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		UseCount:       1,
	}
	s.entries[key] = t
	cp := *t
	return &cp, nil
}

type fakeTipStore struct {
	todays    map[string]*model.Tip
	stored    []model.Tip
	summaries []string
	storeErr  error
}

func newFakeTipStore() *fakeTipStore {
	return &fakeTipStore{todays: make(map[string]*model.Tip)}
}

func tipKey(userID int64, lang string) string {
	return fmt.Sprintf("%d|%s", userID, lang)
}

func (s *fakeTipStore) TodaysTip(ctx context.Context, userID int64, lang string) (*model.Tip, error) {
	t, ok := s.todays[tipKey(userID, lang)]
	if !ok {
		return nil, nil
	}
	return t, nil
}

func (s *fakeTipStore) Store(ctx context.Context, userID int64, lang, tipContent, briefSummary string) error {
	if s.storeErr != nil {
		return s.storeErr
	}
	tip := model.Tip{UserID: userID, Language: lang, TipContent: tipContent, BriefSummary: briefSummary}
	s.stored = append(s.stored, tip)
	s.todays[tipKey(userID, lang)] = &tip
	return nil
}

func (s *fakeTipStore) RecentSummaries(ctx context.Context, userID int64, lang string, days int) ([]string, error) {
	return s.summaries, nil
}

type fakeWhisperStore struct {
	created   []*model.Whisper
	createErr error
}

func (s *fakeWhisperStore) Create(ctx context.Context, userID int64, title, situation, targetLang string, phrases model.PhraseList) (*model.Whisper, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	w := &model.Whisper{
		ID:               int64(len(s.created) + 1),
		UserID:           userID,
		Title:            title,
		SituationContext: situation,
		TargetLanguage:   targetLang,
		Phrases:          phrases,
		PhraseCount:      len(phrases),
	}
	s.created = append(s.created, w)
	return w, nil
}

// fakeGateway counts calls and records the arguments of the last one.
type fakeGateway struct {
	translateResult string
	askResult       string
	whisperResult   *ai.WhisperResult
	tipResult       string
	err             error

	calls          int
	lastDaysActive int
	lastTopics     []string
}

func (g *fakeGateway) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.translateResult, nil
}

func (g *fakeGateway) AskQuestion(ctx context.Context, question, lang string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.askResult, nil
}

func (g *fakeGateway) GenerateWhisper(ctx context.Context, situation, targetLang string) (*ai.WhisperResult, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.whisperResult, nil
}

func (g *fakeGateway) GenerateDailyTip(ctx context.Context, lang string, daysActive int, recentTopics []string) (string, error) {
	g.calls++
	g.lastDaysActive = daysActive
	g.lastTopics = recentTopics
	if g.err != nil {
		return "", g.err
	}
	return g.tipResult, nil
}

func newTestLedger(store *fakeProfileStore) (*Ledger, *ProfileCache) {
	cache := NewProfileCache(store)
	return NewLedger(store, cache), cache
}
