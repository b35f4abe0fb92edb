package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pena-betica-escocesa/api/internal/filestore"
	"github.com/pena-betica-escocesa/api/internal/model"
)

// VotingStore defines the interface for the shirt vote document
type VotingStore interface {
	Read() (filestore.VotingDocument, error)
	Update(fn func(doc *filestore.VotingDocument) error) (filestore.VotingDocument, error)
}

// VotingService handles shirt-design vote business logic
type VotingService struct {
	store VotingStore
	now   func() time.Time
}

// VotingServiceConfig holds configuration for the voting service
type VotingServiceConfig struct {
	Store VotingStore
	Now   func() time.Time // defaults to time.Now
}

// NewVotingService creates a new voting service
func NewVotingService(cfg VotingServiceConfig) *VotingService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &VotingService{store: cfg.Store, now: now}
}

// View returns the public voting state. When voterID is non-empty the
// voter's own ballot is included so the site can mark the chosen design.
func (s *VotingService) View(ctx context.Context, voterID string) (*model.VotingView, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read voting document: %w", err)
	}

	view := &model.VotingView{
		Open:      s.isOpen(&doc),
		ClosesAt:  doc.ClosesAt,
		Designs:   make([]model.DesignTally, 0, len(doc.Designs)),
		PreOrders: doc.Stats.TotalPreOrders,
	}

	tallies := make(map[string]int)
	for _, vote := range doc.Votes {
		tallies[vote.DesignID]++
	}

	for _, design := range doc.Designs {
		if !design.Active {
			continue
		}
		view.Designs = append(view.Designs, model.DesignTally{
			Design: design,
			Votes:  tallies[design.ID],
		})
	}

	if voterID != "" {
		normalized := normalizeVoter(voterID)
		for i := range doc.Votes {
			if doc.Votes[i].VoterID == normalized {
				view.UserVote = &doc.Votes[i]
				break
			}
		}
	}

	return view, nil
}

// CastVote records one ballot per voter. Authenticated voters are keyed
// by user id, anonymous ones by email.
func (s *VotingService) CastVote(ctx context.Context, userID *string, req *model.CastVoteRequest) (*model.DesignVote, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	voterID := ""
	if userID != nil && *userID != "" {
		voterID = *userID
	} else if req.Email != nil {
		voterID = normalizeVoter(*req.Email)
	}
	if voterID == "" {
		return nil, ErrVoterIDRequired
	}

	var cast model.DesignVote
	_, err := s.store.Update(func(doc *filestore.VotingDocument) error {
		if !s.isOpen(doc) {
			return ErrVotingClosed
		}
		if !designActive(doc, req.DesignID) {
			return ErrDesignNotFound
		}
		for _, vote := range doc.Votes {
			if vote.VoterID == voterID {
				return ErrAlreadyVoted
			}
		}

		cast = model.DesignVote{
			ID:        uuid.NewString(),
			DesignID:  req.DesignID,
			VoterID:   voterID,
			CreatedAt: s.now().UTC(),
		}
		doc.Votes = append(doc.Votes, cast)
		doc.Touch(s.now().UTC())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &cast, nil
}

// CreatePreOrder records pre-order interest in a design. Pre-orders stay
// open after the vote closes so latecomers can still join the batch.
func (s *VotingService) CreatePreOrder(ctx context.Context, req *model.CreatePreOrderRequest) (*model.PreOrder, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	var order model.PreOrder
	_, err := s.store.Update(func(doc *filestore.VotingDocument) error {
		if !designActive(doc, req.DesignID) {
			return ErrDesignNotFound
		}

		order = model.PreOrder{
			ID:        uuid.NewString(),
			DesignID:  req.DesignID,
			Name:      req.Name,
			Email:     normalizeVoter(req.Email),
			Size:      req.Size,
			Quantity:  req.Quantity,
			CreatedAt: s.now().UTC(),
		}
		doc.PreOrders = append(doc.PreOrders, order)
		doc.Touch(s.now().UTC())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// AddDesign adds a candidate design, for the board view
func (s *VotingService) AddDesign(ctx context.Context, req *model.AddDesignRequest) (*model.Design, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, model.NewValidationError(errors)
	}

	var design model.Design
	_, err := s.store.Update(func(doc *filestore.VotingDocument) error {
		design = model.Design{
			ID:          uuid.NewString(),
			Name:        req.Name,
			ImageURL:    req.ImageURL,
			Description: req.Description,
			Active:      true,
		}
		doc.Designs = append(doc.Designs, design)
		doc.Touch(s.now().UTC())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &design, nil
}

// SetRound opens or closes the voting round, for the board view
func (s *VotingService) SetRound(ctx context.Context, open bool, closesAt *time.Time) error {
	_, err := s.store.Update(func(doc *filestore.VotingDocument) error {
		doc.Open = open
		doc.ClosesAt = closesAt
		doc.Touch(s.now().UTC())
		return nil
	})
	return err
}

// CloseIfExpired flips the round closed once its deadline has passed.
// Returns true when this call performed the close.
func (s *VotingService) CloseIfExpired(ctx context.Context) (bool, error) {
	current, err := s.store.Read()
	if err != nil {
		return false, fmt.Errorf("failed to read voting document: %w", err)
	}
	if !(current.Open && current.ClosesAt != nil && !current.ClosesAt.After(s.now())) {
		return false, nil
	}

	closed := false
	_, err = s.store.Update(func(doc *filestore.VotingDocument) error {
		if doc.Open && doc.ClosesAt != nil && !doc.ClosesAt.After(s.now()) {
			doc.Open = false
			doc.Touch(s.now().UTC())
			closed = true
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return closed, nil
}

func (s *VotingService) isOpen(doc *filestore.VotingDocument) bool {
	if !doc.Open {
		return false
	}
	if doc.ClosesAt != nil && !doc.ClosesAt.After(s.now()) {
		return false
	}
	return true
}

func designActive(doc *filestore.VotingDocument, designID string) bool {
	for _, d := range doc.Designs {
		if d.ID == designID && d.Active {
			return true
		}
	}
	return false
}

func normalizeVoter(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
