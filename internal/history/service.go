package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/analysis"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/logging"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/normalize"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/scoring"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/store"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
)

// DefaultLimit is the number of most recent entries retained
const DefaultLimit = 50

// TimeLayout formats timestamps as UTC ISO-8601 with millisecond precision
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	// ErrNotFound is returned when no entry has the requested id
	ErrNotFound = errors.New("entry not found")
	// ErrUnknownSkill is returned when a confidence update names a skill the entry does not contain
	ErrUnknownSkill = errors.New("skill not present in entry")
	// ErrInvalidConfidence is returned for confidence values other than know and practice
	ErrInvalidConfidence = errors.New("invalid confidence value")
)

// Service implements the history operations on top of a Repository
type Service struct {
	repo  *Repository
	limit int
	log   *logging.Logger
	now   func() time.Time
	newID func() string

	// serializes read-modify-write cycles within the process
	mu sync.Mutex
}

// Option configures a Service
type Option func(*Service)

// WithLimit sets the retention cap; values below 1 are ignored
func WithLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator overrides entry id generation
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

// NewService creates a history service storing under key in st
func NewService(st store.Store, key string, opts ...Option) *Service {
	s := &Service{
		repo:  NewRepository(st, key),
		limit: DefaultLimit,
		log:   logging.NewNop(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(TimeLayout)
}

// Analyze trims and validates req, runs the analysis and saves the result.
// The returned warning is non-empty for short job descriptions.
func (s *Service) Analyze(ctx context.Context, req types.AnalyzeRequest) (*types.Entry, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid analyze request: %w", err)
	}
	req = req.Trim()

	result := analysis.AnalyzeJD(req.Company, req.Role, req.JDText)
	entry, err := s.Save(ctx, req, result)
	if err != nil {
		return nil, "", err
	}
	return entry, analysis.Warning(req.JDText), nil
}

// Save commits an analysis result as a new entry at the front of the history,
// dropping the oldest records beyond the retention cap.
func (s *Service) Save(ctx context.Context, req types.AnalyzeRequest, result types.AnalysisResult) (*types.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.Read(ctx)
	if err != nil {
		return nil, err
	}

	ts := s.timestamp()
	entry := &types.Entry{
		ID:                 s.newID(),
		CreatedAt:          ts,
		UpdatedAt:          ts,
		Company:            req.Company,
		Role:               req.Role,
		JDText:             req.JDText,
		ExtractedSkills:    result.ExtractedSkills,
		RoundMapping:       result.RoundMapping,
		Checklist:          result.Checklist,
		Plan7Days:          result.Plan7Days,
		Questions:          result.Questions,
		BaseScore:          result.BaseScore,
		SkillConfidenceMap: types.SkillConfidenceMap{},
		FinalScore:         result.BaseScore,
		CompanyIntel:       result.CompanyIntel,
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entry: %w", err)
	}

	next := make([]json.RawMessage, 0, len(records)+1)
	next = append(next, raw)
	next = append(next, records...)
	if len(next) > s.limit {
		next = next[:s.limit]
	}

	if err := s.repo.Write(ctx, next); err != nil {
		s.log.Error("failed to save entry", "entry_id", entry.ID, "error", err)
		return nil, err
	}

	s.log.Info("saved entry", "entry_id", entry.ID, "company", entry.Company, "base_score", entry.BaseScore)
	return entry, nil
}

// List returns every readable entry, newest first, and the number of records that were dropped as corrupted
func (s *Service) List(ctx context.Context) (*types.History, error) {
	records, err := s.repo.Read(ctx)
	if err != nil {
		return nil, err
	}

	h := &types.History{Entries: make([]types.Entry, 0, len(records))}
	for _, raw := range records {
		entry, ok := normalize.Entry(raw)
		if !ok {
			h.CorruptedCount++
			continue
		}
		h.Entries = append(h.Entries, *entry)
	}

	if h.CorruptedCount > 0 {
		s.log.Warn("skipped corrupted history records", "count", h.CorruptedCount)
	}
	return h, nil
}

// Get returns the entry with the given id
func (s *Service) Get(ctx context.Context, id string) (*types.Entry, error) {
	records, err := s.repo.Read(ctx)
	if err != nil {
		return nil, err
	}
	_, entry := find(records, id)
	if entry == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return entry, nil
}

// Latest returns the most recent readable entry
func (s *Service) Latest(ctx context.Context) (*types.Entry, error) {
	records, err := s.repo.Read(ctx)
	if err != nil {
		return nil, err
	}
	for _, raw := range records {
		if entry, ok := normalize.Entry(raw); ok {
			return entry, nil
		}
	}
	return nil, ErrNotFound
}

// Resolve returns the entry with id, or the latest entry when id is empty
func (s *Service) Resolve(ctx context.Context, id string) (*types.Entry, error) {
	if id == "" {
		return s.Latest(ctx)
	}
	return s.Get(ctx, id)
}

// UpdateConfidence records the confidence for one skill and recomputes the final score.
// On a write failure it returns a nil entry and the stored history is unchanged.
func (s *Service) UpdateConfidence(ctx context.Context, id, skill string, c types.Confidence) (*types.Entry, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidConfidence, c)
	}
	return s.mutate(ctx, id, func(e *types.Entry) error {
		if !e.ExtractedSkills.Contains(skill) {
			return fmt.Errorf("%w: %s", ErrUnknownSkill, skill)
		}
		m := e.SkillConfidenceMap.Clone()
		m[skill] = c
		e.SkillConfidenceMap = m
		return nil
	})
}

// ToggleConfidence flips the displayed confidence of skill between know and practice
func (s *Service) ToggleConfidence(ctx context.Context, id, skill string) (*types.Entry, error) {
	return s.mutate(ctx, id, func(e *types.Entry) error {
		if !e.ExtractedSkills.Contains(skill) {
			return fmt.Errorf("%w: %s", ErrUnknownSkill, skill)
		}
		next := types.ConfidenceKnow
		if e.SkillConfidenceMap.Display(skill) == types.ConfidenceKnow {
			next = types.ConfidencePractice
		}
		m := e.SkillConfidenceMap.Clone()
		m[skill] = next
		e.SkillConfidenceMap = m
		return nil
	})
}

// SetConfidenceMap replaces the whole confidence map of an entry
func (s *Service) SetConfidenceMap(ctx context.Context, id string, m types.SkillConfidenceMap) (*types.Entry, error) {
	return s.mutate(ctx, id, func(e *types.Entry) error {
		for skill, c := range m {
			if !c.Valid() {
				return fmt.Errorf("%w: %q for %s", ErrInvalidConfidence, c, skill)
			}
			if !e.ExtractedSkills.Contains(skill) {
				return fmt.Errorf("%w: %s", ErrUnknownSkill, skill)
			}
		}
		e.SkillConfidenceMap = m.Clone()
		return nil
	})
}

// Clear removes the whole history
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	s.log.Info("cleared history")
	return nil
}

// mutate applies fn to the entry with id, refreshes its scores and timestamp and writes it back
// in place. Records other than the target are written back untouched.
func (s *Service) mutate(ctx context.Context, id string, fn func(*types.Entry) error) (*types.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.Read(ctx)
	if err != nil {
		return nil, err
	}

	idx, entry := find(records, id)
	if entry == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err := fn(entry); err != nil {
		return nil, err
	}
	entry.FinalScore = scoring.FinalScore(entry.BaseScore, entry.SkillConfidenceMap)
	entry.UpdatedAt = s.timestamp()

	raw, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entry: %w", err)
	}

	next := make([]json.RawMessage, len(records))
	copy(next, records)
	next[idx] = raw

	if err := s.repo.Write(ctx, next); err != nil {
		s.log.Error("failed to update entry", "entry_id", id, "error", err)
		return nil, err
	}

	s.log.Debug("updated entry", "entry_id", id, "final_score", entry.FinalScore)
	return entry, nil
}

// find returns the index and normalized form of the first record with id
func find(records []json.RawMessage, id string) (int, *types.Entry) {
	if id == "" {
		return -1, nil
	}
	for i, raw := range records {
		if entry, ok := normalize.Entry(raw); ok && entry.ID == id {
			return i, entry
		}
	}
	return -1, nil
}
