package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/HilmiTuncay/yemek-siparis/internal/domain"
)

var (
	ErrMissingText           = errors.New("suggestion text is required")
	ErrInvalidSuggestionType = errors.New("suggestion type must be restaurant or food")
)

type SuggestionRequest struct {
	Type        domain.SuggestionType `json:"type"`
	Text        string                `json:"text"`
	SubmittedBy string                `json:"submittedBy"`
}

type SuggestionService struct {
	repo SuggestionRepository
	now  func() time.Time
}

func NewSuggestionService(repo SuggestionRepository) *SuggestionService {
	return &SuggestionService{repo: repo, now: time.Now}
}

// ListSuggestions returns all suggestions sorted by vote count descending.
func (s *SuggestionService) ListSuggestions(ctx context.Context) ([]domain.Suggestion, error) {
	suggestions, err := s.repo.ListSuggestions(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return len(suggestions[i].Votes) > len(suggestions[j].Votes)
	})
	return suggestions, nil
}

// AddSuggestion stores a new suggestion; the submitter votes for it
// automatically.
func (s *SuggestionService) AddSuggestion(ctx context.Context, req SuggestionRequest) (domain.Suggestion, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return domain.Suggestion{}, ErrMissingText
	}
	submitter := strings.TrimSpace(req.SubmittedBy)
	if submitter == "" {
		return domain.Suggestion{}, ErrMissingName
	}
	if req.Type != domain.SuggestionRestaurant && req.Type != domain.SuggestionFood {
		return domain.Suggestion{}, ErrInvalidSuggestionType
	}

	suggestion := domain.Suggestion{
		ID:          uuid.New().String(),
		Type:        req.Type,
		Text:        text,
		SubmittedBy: submitter,
		Votes:       []string{submitter},
		CreatedAt:   s.now().UnixMilli(),
	}

	suggestions, err := s.repo.ListSuggestions(ctx)
	if err != nil {
		return domain.Suggestion{}, err
	}
	suggestions = append(suggestions, suggestion)
	if err := s.repo.SaveSuggestions(ctx, suggestions); err != nil {
		return domain.Suggestion{}, fmt.Errorf("failed to save suggestion: %w", err)
	}
	return suggestion, nil
}

// ToggleVote adds the voter to the suggestion, or retracts the vote if it was
// already cast. Returns false when the suggestion does not exist.
func (s *SuggestionService) ToggleVote(ctx context.Context, suggestionID, voterName string) (bool, error) {
	voter := strings.TrimSpace(voterName)
	if voter == "" {
		return false, ErrMissingName
	}

	suggestions, err := s.repo.ListSuggestions(ctx)
	if err != nil {
		return false, err
	}

	found := false
	for i := range suggestions {
		if suggestions[i].ID != suggestionID {
			continue
		}
		found = true
		suggestions[i].Votes = toggleVoter(suggestions[i].Votes, voter)
		break
	}
	if !found {
		return false, nil
	}

	if err := s.repo.SaveSuggestions(ctx, suggestions); err != nil {
		return false, fmt.Errorf("failed to save vote: %w", err)
	}
	return true, nil
}

// DeleteSuggestion removes a suggestion; false when it does not exist.
func (s *SuggestionService) DeleteSuggestion(ctx context.Context, id string) (bool, error) {
	suggestions, err := s.repo.ListSuggestions(ctx)
	if err != nil {
		return false, err
	}

	kept := suggestions[:0]
	for _, sg := range suggestions {
		if sg.ID != id {
			kept = append(kept, sg)
		}
	}
	if len(kept) == len(suggestions) {
		return false, nil
	}

	if err := s.repo.SaveSuggestions(ctx, kept); err != nil {
		return false, fmt.Errorf("failed to delete suggestion: %w", err)
	}
	return true, nil
}

func toggleVoter(votes []string, voter string) []string {
	for i, v := range votes {
		if strings.EqualFold(v, voter) {
			return append(votes[:i], votes[i+1:]...)
		}
	}
	return append(votes, voter)
}
