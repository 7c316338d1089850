package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"canetrack/internal/apperror"
	"canetrack/internal/dto"
	"canetrack/internal/model"
	"canetrack/internal/repository"
	"canetrack/internal/store"
	"canetrack/internal/validation"
)

// HarvestService orchestrates validation, metric derivation, and the dual
// persistence layer. The local store is required; the remote repository is
// optional and the service keeps working when it is unreachable.
type HarvestService interface {
	Register(ctx context.Context, req dto.RegisterHarvestRequest) (*dto.HarvestResponse, error)
	List(ctx context.Context, typeFilter *model.HarvestType) ([]dto.HarvestResponse, error)
	Find(ctx context.Context, lotID string) (*dto.HarvestResponse, error)
	Delete(ctx context.Context, lotID string) error
	Compare(ctx context.Context) (*dto.ComparisonResponse, error)
}

type harvestService struct {
	local    *store.LocalStore
	remote   repository.HarvestRepository // nil when no remote is configured
	validate *validator.Validate
}

func NewHarvestService(local *store.LocalStore, remote repository.HarvestRepository) HarvestService {
	return &harvestService{
		local:    local,
		remote:   remote,
		validate: validator.New(),
	}
}

// loadLocal reads the local store, downgrading a corrupt file to an empty set
// with a warning. The file itself is left untouched for inspection.
func (s *harvestService) loadLocal() []model.Harvest {
	harvests, err := s.local.Load()
	if err != nil {
		var corrupt *apperror.CorruptStoreError
		if errors.As(err, &corrupt) {
			log.Warn().Str("path", corrupt.Path).Err(corrupt.Err).
				Msg("local store unreadable, starting from empty set")
			return nil
		}
		log.Warn().Err(err).Msg("local store read failed")
		return nil
	}
	return harvests
}

// merged returns the de-duplicated union of both stores. The local copy wins
// on lot-ID conflict: local is the canonical offline cache. A remote failure
// degrades to local-only with a warning.
func (s *harvestService) merged(ctx context.Context) []model.Harvest {
	locals := s.loadLocal()
	seen := make(map[string]struct{}, len(locals))
	for _, h := range locals {
		seen[h.LotID] = struct{}{}
	}

	result := locals
	if s.remote != nil {
		remotes, err := s.remote.ListAll(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("remote store unreachable, listing local records only")
		} else {
			for _, h := range remotes {
				if _, dup := seen[h.LotID]; dup {
					continue
				}
				h.Recompute()
				result = append(result, h)
			}
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].LotID < result[j].LotID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

func (s *harvestService) knownIDs(ctx context.Context) validation.IDSet {
	ids := make(validation.IDSet)
	for _, h := range s.merged(ctx) {
		ids[h.LotID] = struct{}{}
	}
	return ids
}

func (s *harvestService) Register(ctx context.Context, req dto.RegisterHarvestRequest) (*dto.HarvestResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return nil, apperror.NewValidation(apperror.InvalidField, strings.ToLower(fe.Field()),
				fmt.Sprintf("failed %q constraint", fe.Tag()))
		}
		return nil, err
	}

	harvestType, ok := model.ParseHarvestType(req.Type)
	if !ok {
		return nil, apperror.NewValidation(apperror.InvalidField, "harvest_type",
			fmt.Sprintf("unknown harvest type %q", req.Type))
	}

	if err := validation.Validate(req.ExpectedTonnes, req.HarvestedTonnes, req.LotID, s.knownIDs(ctx)); err != nil {
		return nil, err
	}

	h := model.Harvest{
		ID:              uuid.New(),
		LotID:           req.LotID,
		Type:            harvestType,
		HarvestDate:     req.HarvestDate,
		ExpectedTonnes:  req.ExpectedTonnes,
		HarvestedTonnes: req.HarvestedTonnes,
		Notes:           req.Notes,
		CreatedAt:       time.Now().UTC(),
	}
	h.Recompute()

	// Local first: the system must stay usable fully offline. No rollback on
	// partial failure — the caller retries the failed side.
	localErr := s.local.Append(h)

	var remoteErr error
	if s.remote != nil {
		remoteErr = s.remote.Insert(ctx, &h)
	}

	resp := harvestToResponse(&h)
	switch {
	case localErr != nil && remoteErr != nil:
		return nil, fmt.Errorf("register failed on both stores: local: %v; remote: %w", localErr, remoteErr)
	case localErr != nil && s.remote != nil:
		return resp, &apperror.PartialPersistenceError{Store: apperror.StoreLocal, Op: "register", Err: localErr}
	case localErr != nil:
		return nil, fmt.Errorf("register failed: %w", localErr)
	case remoteErr != nil:
		return resp, &apperror.PartialPersistenceError{Store: apperror.StoreRemote, Op: "register", Err: remoteErr}
	}
	return resp, nil
}

func (s *harvestService) List(ctx context.Context, typeFilter *model.HarvestType) ([]dto.HarvestResponse, error) {
	var responses []dto.HarvestResponse
	for _, h := range s.merged(ctx) {
		if typeFilter != nil && h.Type != *typeFilter {
			continue
		}
		responses = append(responses, *harvestToResponse(&h))
	}
	return responses, nil
}

func (s *harvestService) Find(ctx context.Context, lotID string) (*dto.HarvestResponse, error) {
	for _, h := range s.loadLocal() {
		if h.LotID == lotID {
			return harvestToResponse(&h), nil
		}
	}
	if s.remote != nil {
		h, err := s.remote.FindByLot(ctx, lotID)
		var connErr *apperror.ConnectionError
		if errors.As(err, &connErr) {
			log.Warn().Err(err).Msg("remote store unreachable during lookup")
			return nil, &apperror.NotFoundError{LotID: lotID}
		}
		if err != nil {
			return nil, err
		}
		h.Recompute()
		return harvestToResponse(h), nil
	}
	return nil, &apperror.NotFoundError{LotID: lotID}
}

func (s *harvestService) Delete(ctx context.Context, lotID string) error {
	localErr := s.local.Delete(lotID)
	localMissing := false
	var nf *apperror.NotFoundError
	if errors.As(localErr, &nf) {
		localMissing = true
		localErr = nil
	}

	var remoteErr error
	remoteMissing := s.remote == nil
	if s.remote != nil {
		remoteErr = s.remote.DeleteByLot(ctx, lotID)
		if errors.As(remoteErr, &nf) {
			remoteMissing = true
			remoteErr = nil
		}
	}

	// Neither side had the lot: nothing was mutated.
	if localMissing && remoteMissing && localErr == nil && remoteErr == nil {
		return &apperror.NotFoundError{LotID: lotID}
	}

	switch {
	case localErr != nil && remoteErr != nil:
		return fmt.Errorf("delete failed on both stores: local: %v; remote: %w", localErr, remoteErr)
	case localErr != nil:
		return &apperror.PartialPersistenceError{Store: apperror.StoreLocal, Op: "delete", Err: localErr}
	case remoteErr != nil:
		return &apperror.PartialPersistenceError{Store: apperror.StoreRemote, Op: "delete", Err: remoteErr}
	}
	return nil
}

func (s *harvestService) Compare(ctx context.Context) (*dto.ComparisonResponse, error) {
	harvests := s.merged(ctx)

	var manual, mechanized []model.Harvest
	for _, h := range harvests {
		switch h.Type {
		case model.Manual:
			manual = append(manual, h)
		case model.Mechanized:
			mechanized = append(mechanized, h)
		}
	}

	resp := &dto.ComparisonResponse{
		Total:      len(harvests),
		Manual:     cohortStats(manual),
		Mechanized: cohortStats(mechanized),
	}
	resp.EfficiencyGap = resp.Manual.AvgEfficiency.Sub(resp.Mechanized.AvgEfficiency).Abs().Round(2)
	resp.Recommendations = recommendations(resp)
	return resp, nil
}

func cohortStats(harvests []model.Harvest) dto.TypeStats {
	stats := dto.TypeStats{Count: len(harvests)}
	if len(harvests) == 0 {
		return stats
	}
	sumEff := decimal.Zero
	sumLoss := decimal.Zero
	stats.MinEfficiency = harvests[0].Efficiency()
	stats.MaxEfficiency = harvests[0].Efficiency()
	for _, h := range harvests {
		eff := h.Efficiency()
		sumEff = sumEff.Add(eff)
		sumLoss = sumLoss.Add(h.Loss())
		if eff.LessThan(stats.MinEfficiency) {
			stats.MinEfficiency = eff
		}
		if eff.GreaterThan(stats.MaxEfficiency) {
			stats.MaxEfficiency = eff
		}
	}
	n := decimal.NewFromInt(int64(len(harvests)))
	stats.AvgEfficiency = sumEff.Div(n).Round(2)
	stats.AvgLoss = sumLoss.Div(n).Round(2)
	return stats
}

func recommendations(c *dto.ComparisonResponse) []string {
	switch {
	case c.Total == 0:
		return []string{"Not enough data for analysis."}
	case c.Manual.Count > 0 && c.Mechanized.Count > 0:
		gap := c.EfficiencyGap.StringFixed(2)
		switch c.Manual.AvgEfficiency.Cmp(c.Mechanized.AvgEfficiency) {
		case 1:
			return []string{
				fmt.Sprintf("Manual harvesting is %s%% more efficient than mechanized.", gap),
				"Check harvester calibration.",
				"Review operator training.",
			}
		case -1:
			return []string{
				fmt.Sprintf("Mechanized harvesting is %s%% more efficient than manual.", gap),
				"Review manual harvesting procedures.",
				"Consider additional field crew training.",
			}
		default:
			return []string{"Both harvesting methods show similar efficiency."}
		}
	case c.Manual.Count > 0:
		return []string{"Only manual harvests recorded. Register mechanized harvests for comparison."}
	default:
		return []string{"Only mechanized harvests recorded. Register manual harvests for comparison."}
	}
}

func harvestToResponse(h *model.Harvest) *dto.HarvestResponse {
	return &dto.HarvestResponse{
		ID:              h.ID.String(),
		LotID:           h.LotID,
		Type:            string(h.Type),
		HarvestDate:     h.HarvestDate,
		ExpectedTonnes:  h.ExpectedTonnes,
		HarvestedTonnes: h.HarvestedTonnes,
		EfficiencyPct:   h.Efficiency(),
		LossPct:         h.Loss(),
		Notes:           h.Notes,
		CreatedAt:       h.CreatedAt,
	}
}
