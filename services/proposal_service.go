package services

import (
	"context"
	"errors"
	"fmt"

	"backend/models"
	"backend/repository"
	"backend/sizing"

	"gorm.io/gorm"
)

// ErrProposalNotFound is returned when a proposal id does not exist.
var ErrProposalNotFound = errors.New("proposal not found")

// ProposalService owns proposal persistence and keeps the sizing result
// in step with the draft: every write path ends with a recompute, so the
// stored result always matches the stored inputs.
type ProposalService struct {
	gdb    *gorm.DB
	engine *sizing.Engine
}

func NewProposalService(gdb *gorm.DB, engine *sizing.Engine) *ProposalService {
	return &ProposalService{gdb: gdb, engine: engine}
}

// Create stores a new proposal and computes its first sizing result.
func (s *ProposalService) Create(ctx context.Context, req models.CreateProposalRequest) (*models.Proposal, error) {
	draft := req.Draft
	draft.Segment = req.Segment
	draft.CityID = req.CityID
	if draft.City == "" {
		draft.City = req.CityName
	}

	p := models.Proposal{
		Reference:   repository.GenerateProposalReference(),
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Segment:     req.Segment,
		CityID:      req.CityID,
		CityName:    req.CityName,
		Status:      "rascunho",
		Draft:       draft,
	}

	result, err := s.engine.Recompute(ctx, p.Draft)
	if err != nil {
		return nil, fmt.Errorf("failed to compute sizing: %w", err)
	}
	p.Result = &result

	if err := s.gdb.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("failed to save proposal: %w", err)
	}
	return &p, nil
}

// Get fetches one proposal.
func (s *ProposalService) Get(ctx context.Context, id int) (*models.Proposal, error) {
	var p models.Proposal
	err := s.gdb.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProposalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch proposal %d: %w", id, err)
	}
	return &p, nil
}

// List returns proposals newest first.
func (s *ProposalService) List(ctx context.Context) ([]models.Proposal, error) {
	var proposals []models.Proposal
	if err := s.gdb.WithContext(ctx).Order("created_at DESC").Find(&proposals).Error; err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return proposals, nil
}

// Update replaces the editable fields and the draft, then recomputes.
func (s *ProposalService) Update(ctx context.Context, id int, req models.UpdateProposalRequest) (*models.Proposal, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ClientName != "" {
		p.ClientName = req.ClientName
	}
	if req.ClientEmail != "" {
		p.ClientEmail = req.ClientEmail
	}
	if req.ClientPhone != "" {
		p.ClientPhone = req.ClientPhone
	}
	if req.Status != "" {
		p.Status = req.Status
	}
	if req.CityID != 0 {
		p.CityID = req.CityID
	}
	if req.CityName != "" {
		p.CityName = req.CityName
	}

	draft := req.Draft
	draft.Segment = p.Segment
	draft.CityID = p.CityID
	if draft.City == "" {
		draft.City = p.CityName
	}
	p.Draft = draft

	result, err := s.engine.Recompute(ctx, p.Draft)
	if err != nil {
		return nil, fmt.Errorf("failed to compute sizing: %w", err)
	}
	p.Result = &result

	if err := s.gdb.WithContext(ctx).Save(p).Error; err != nil {
		return nil, fmt.Errorf("failed to update proposal %d: %w", id, err)
	}
	return p, nil
}

// Recompute re-runs the engine over the stored draft without changing any
// input, and persists the refreshed result.
func (s *ProposalService) Recompute(ctx context.Context, id int) (*models.Proposal, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Recompute(ctx, p.Draft)
	if err != nil {
		return nil, fmt.Errorf("failed to compute sizing: %w", err)
	}
	p.Result = &result

	if err := s.gdb.WithContext(ctx).Save(p).Error; err != nil {
		return nil, fmt.Errorf("failed to save recomputed proposal %d: %w", id, err)
	}
	return p, nil
}

// OverrideMachines applies a manual machine quantity override to a pool
// proposal and recomputes the heating time and energy figures.
func (s *ProposalService) OverrideMachines(ctx context.Context, id int, machines []sizing.MachineSelection) (*models.Proposal, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Segment != sizing.SegmentPool {
		return nil, fmt.Errorf("proposal %d is not a pool proposal", id)
	}

	p.Draft.Machines = machines

	result, err := s.engine.Recompute(ctx, p.Draft)
	if err != nil {
		return nil, fmt.Errorf("failed to compute sizing: %w", err)
	}
	p.Result = &result

	if err := s.gdb.WithContext(ctx).Save(p).Error; err != nil {
		return nil, fmt.Errorf("failed to save machine override on proposal %d: %w", id, err)
	}
	return p, nil
}

// Delete removes a proposal.
func (s *ProposalService) Delete(ctx context.Context, id int) error {
	res := s.gdb.WithContext(ctx).Delete(&models.Proposal{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete proposal %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProposalNotFound
	}
	return nil
}
