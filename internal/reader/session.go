package reader

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingoreader-backend/internal/domain"
)

// DraftState is the position of a Session's draft in its lifecycle.
type DraftState int

const (
	StateEmpty DraftState = iota
	StateFrontSet
	StateBackPending
	StateBackSet
	StateSaving
	StateSaved
)

func (s DraftState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateFrontSet:
		return "front-set"
	case StateBackPending:
		return "back-pending"
	case StateBackSet:
		return "back-set"
	case StateSaving:
		return "saving"
	case StateSaved:
		return "saved"
	default:
		return "unknown"
	}
}

type selectionTranslator interface {
	Translate(ctx context.Context, text, source, target string) (string, bool, error)
}

type draftSaver interface {
	Save(ctx context.Context, front, back string, listID uuid.UUID) (*domain.Flashcard, error)
}

// Snapshot is a consistent copy of a Session's observable state.
type Snapshot struct {
	Draft          domain.FlashcardDraft
	State          DraftState
	SourceLanguage string
	TargetLanguage string
	// LastError is the most recent translation or save failure. It is cleared
	// by the next selection, the next successful save, and Reset.
	LastError error
	// LastMiss is true when the latest translation came back without a result.
	LastMiss  bool
	LastSaved *domain.Flashcard
}

// CanSave reports whether Save would contact the catalog.
func (s Snapshot) CanSave() bool {
	return s.State != StateSaving && s.State != StateBackPending && s.Draft.Complete()
}

// Session owns one flashcard draft while a user reads a text.
//
// Translations run on their own goroutines. Each is tagged with a sequence
// number and only the response to the latest issued request is applied;
// manual edits and language changes advance the sequence, so any response
// still in flight is dropped when it arrives.
type Session struct {
	translator selectionTranslator
	saver      draftSaver
	log        *slog.Logger

	wg sync.WaitGroup

	mu        sync.Mutex
	draft     domain.FlashcardDraft
	source    string
	target    string
	seq       uint64
	pending   bool
	saving    bool
	saved     bool
	rev       uint64
	lastErr   error
	lastMiss  bool
	lastSaved *domain.Flashcard
}

// NewSession creates a Session translating from source (empty for
// auto-detect) into target.
func NewSession(log *slog.Logger, translator selectionTranslator, saver draftSaver, source, target string) *Session {
	return &Session{
		translator: translator,
		saver:      saver,
		log:        log.With("component", "session"),
		source:     source,
		target:     target,
	}
}

// ProcessSelection makes the normalized selection the draft front and starts
// translating it. The request carries the trimmed selection with its case
// kept. An empty selection is ignored. Repeating the same selection
// translates it again.
func (s *Session) ProcessSelection(ctx context.Context, raw string) {
	text := strings.TrimSpace(raw)
	front, ok := NormalizeSelection(text)
	if !ok {
		return
	}

	s.mu.Lock()
	s.draft.Front = front
	s.touchLocked()
	s.seq++
	id := s.seq
	s.pending = true
	s.lastErr = nil
	s.lastMiss = false
	source, target := s.source, s.target
	s.mu.Unlock()

	s.wg.Add(1)
	go s.translate(ctx, id, text, source, target)
}

func (s *Session) translate(ctx context.Context, id uint64, text, source, target string) {
	defer s.wg.Done()

	back, found, err := s.translator.Translate(ctx, text, source, target)

	s.mu.Lock()
	defer s.mu.Unlock()

	if id != s.seq {
		s.log.DebugContext(ctx, "stale translation dropped",
			slog.Uint64("seq", id),
			slog.Uint64("latest", s.seq),
		)
		return
	}
	s.pending = false

	switch {
	case err != nil:
		s.lastErr = err
		s.log.WarnContext(ctx, "translation failed",
			slog.String("text", text),
			slog.String("error", err.Error()),
		)
	case !found:
		s.lastMiss = true
	default:
		s.draft.Back = back
		s.rev++
	}
}

// SetFront replaces the draft front with text normalized like a selection:
// trimmed and lower-cased. It cancels the effect of any pending translation.
func (s *Session) SetFront(text string) {
	front, _ := NormalizeSelection(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Front = front
	s.touchLocked()
	s.invalidateLocked()
}

// SetBack replaces the draft back, trimmed with its case kept. A pending
// translation will not overwrite it.
func (s *Session) SetBack(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Back = strings.TrimSpace(text)
	s.touchLocked()
	s.invalidateLocked()
}

// SetList selects the list the draft will be saved into.
func (s *Session) SetList(listID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.ListID = listID
	s.touchLocked()
}

// SetLanguages changes the language pair used for the next selection. An
// empty source requests auto-detection. A pending translation is dropped.
func (s *Session) SetLanguages(source, target string) error {
	var errs []domain.FieldError
	if source != "" && !domain.IsSupportedLanguage(source) {
		errs = append(errs, domain.FieldError{Field: "sourceLanguage", Message: "unsupported language"})
	}
	if !domain.IsSupportedLanguage(target) {
		errs = append(errs, domain.FieldError{Field: "targetLanguage", Message: "unsupported language"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.source, s.target = source, target
	s.invalidateLocked()
	return nil
}

// Save persists the draft. It is a no-op returning nil, nil while a save or a
// translation is in flight, or when the draft is incomplete. On failure the
// draft is kept as is so the user can retry. After a successful save the
// fields stay in place and the state is Saved until the next change.
func (s *Session) Save(ctx context.Context) (*domain.Flashcard, error) {
	s.mu.Lock()
	if s.saving || s.pending || !s.draft.Complete() {
		s.mu.Unlock()
		return nil, nil
	}
	s.saving = true
	draft := s.draft
	rev := s.rev
	s.mu.Unlock()

	card, err := s.saver.Save(ctx, draft.Front, draft.Back, draft.ListID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving = false

	if err != nil {
		s.lastErr = err
		s.log.WarnContext(ctx, "save failed",
			slog.String("list_id", draft.ListID.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	if card == nil {
		return nil, nil
	}

	s.lastErr = nil
	s.lastSaved = card
	s.saved = rev == s.rev
	return card, nil
}

// Reset clears the front, back and any pending translation. The selected list
// and languages are kept.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Front = ""
	s.draft.Back = ""
	s.touchLocked()
	s.invalidateLocked()
	s.lastErr = nil
	s.lastMiss = false
}

// Wait blocks until every translation started so far has returned.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Draft:          s.draft,
		State:          s.stateLocked(),
		SourceLanguage: s.source,
		TargetLanguage: s.target,
		LastError:      s.lastErr,
		LastMiss:       s.lastMiss,
		LastSaved:      s.lastSaved,
	}
}

// State returns the current draft state.
func (s *Session) State() DraftState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() DraftState {
	switch {
	case s.saving:
		return StateSaving
	case s.pending:
		return StateBackPending
	case s.saved:
		return StateSaved
	case s.draft.Front != "" && s.draft.Back != "":
		return StateBackSet
	case s.draft.Front == "" && s.draft.Back == "":
		return StateEmpty
	default:
		return StateFrontSet
	}
}

// touchLocked records a draft change; it ends the Saved state.
func (s *Session) touchLocked() {
	s.rev++
	s.saved = false
}

// invalidateLocked makes any in-flight translation stale.
func (s *Session) invalidateLocked() {
	s.seq++
	s.pending = false
}
