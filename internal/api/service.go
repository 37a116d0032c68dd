package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"carmatch/internal/catalog"
	"carmatch/internal/logging"
	"carmatch/internal/match"
	"carmatch/internal/xcatalog"
)

// ErrVehicleNotFound marks a natcode lookup that missed the catalog.
var ErrVehicleNotFound = errors.New("vehicle not found")

// ErrSubmissionsDisabled marks a mapping request while submissions are off.
var ErrSubmissionsDisabled = errors.New("mapping submissions disabled")

// ErrInvalidMapping marks a mapping request that fails validation.
var ErrInvalidMapping = errors.New("invalid mapping request")

// TrimResolver abstracts the upstream catalogue interactions the search
// service needs.
type TrimResolver interface {
	ResolveTrim(ctx context.Context, providerCode string) (*xcatalog.Record, string, bool, error)
	ExistingMapping(ctx context.Context, sourceCode, vehicleType string) (*xcatalog.Mapping, error)
	SubmitMapping(ctx context.Context, sub xcatalog.Submission) error
}

// SearchService runs the end-to-end search flow: upstream trim resolution,
// normalization, matching against the current catalog snapshot, and the
// existing-mapping check.
type SearchService struct {
	resolver           TrimResolver
	snapshot           *catalog.Snapshot
	registry           *match.Registry
	logger             *slog.Logger
	country            string
	submissionsEnabled bool
}

// NewSearchService constructs a SearchService around the provided
// collaborators.
func NewSearchService(resolver TrimResolver, snapshot *catalog.Snapshot, registry *match.Registry, country string, submissionsEnabled bool, logger *slog.Logger) *SearchService {
	if snapshot == nil || registry == nil {
		return nil
	}
	return &SearchService{
		resolver:           resolver,
		snapshot:           snapshot,
		registry:           registry,
		logger:             logging.NewComponentLogger(logger, "search"),
		country:            country,
		submissionsEnabled: submissionsEnabled,
	}
}

// Search resolves the source code upstream and matches it against the
// catalog. A miss upstream is reported inside the result, not as an error;
// errors are reserved for unusable profiles and unavailable backends.
func (s *SearchService) Search(ctx context.Context, code, profileName string) (SearchResult, error) {
	result := SearchResult{OriginalCode: code}
	if s == nil {
		return result, errors.New("search service not configured")
	}

	profile, err := s.registry.Lookup(profileName)
	if err != nil {
		return result, err
	}
	result.WeightProfile = profile.Name()
	result.MaxScore = profile.MaxScore()

	if s.resolver == nil {
		return result, errors.New("upstream catalogue client not configured")
	}
	record, usedCode, inverted, err := s.resolver.ResolveTrim(ctx, code)
	if err != nil {
		if errors.Is(err, xcatalog.ErrNotFound) {
			result.Error = "trim not found"
			return result, nil
		}
		return result, fmt.Errorf("resolve trim: %w", err)
	}
	result.Found = true
	result.UsedCode = usedCode
	result.WasInverted = inverted

	spec := record.Spec()
	spec.Normalize()
	view := FromSpec(&spec)
	result.Brand = spec.MakeNorm
	result.InfocarName = spec.Name
	result.InfocarSpecs = &view
	result.InfocarTrims = spec.TrimTokens.Sorted()
	result.VehicleClass = string(spec.Class)

	idx, err := s.snapshot.Current()
	if err != nil {
		return result, err
	}

	outcome := match.Match(&spec, idx, profile)
	result.CandidateCount = outcome.CandidateCount
	result.Candidates = FromCandidates(outcome.Candidates)
	result.Decision = string(outcome.Decision)
	result.Confidence = outcome.Confidence
	result.RecommendedNatcode = outcome.RecommendedNatcode

	if mapping, err := s.resolver.ExistingMapping(ctx, usedCode, strings.ToLower(string(spec.Class))); err != nil {
		s.logger.Warn("existing mapping lookup failed",
			logging.String("code", usedCode),
			logging.Error(err))
	} else {
		result.ExistingMapping = FromMapping(mapping)
	}

	return result, nil
}

// Lookup returns the catalog record for a natcode from the current snapshot.
func (s *SearchService) Lookup(natcode string) (VehicleView, error) {
	if s == nil {
		return VehicleView{}, errors.New("search service not configured")
	}
	idx, err := s.snapshot.Current()
	if err != nil {
		return VehicleView{}, err
	}
	spec, ok := idx.ByNatcode(natcode)
	if !ok {
		return VehicleView{}, ErrVehicleNotFound
	}
	return FromSpec(spec), nil
}

// Profiles lists the registered weight profiles.
func (s *SearchService) Profiles() ProfilesResponse {
	if s == nil {
		return ProfilesResponse{Default: match.DefaultProfileName}
	}
	return ProfileViews(s.registry)
}

// SubmitMapping validates and forwards a confirmed mapping upstream. The
// normalized score is computed here so the response reports exactly what was
// sent.
func (s *SearchService) SubmitMapping(ctx context.Context, req MappingRequest) (MappingResponse, error) {
	var resp MappingResponse
	if s == nil || s.resolver == nil {
		return resp, errors.New("search service not configured")
	}
	source := strings.TrimSpace(req.SourceCode)
	dest := strings.TrimSpace(req.DestCode)
	if source == "" || dest == "" {
		return resp, fmt.Errorf("%w: source_code and dest_code are required", ErrInvalidMapping)
	}
	if req.MaxScore <= 0 {
		return resp, fmt.Errorf("%w: max_score must be positive", ErrInvalidMapping)
	}
	resp.NormalizedScore = math.Round(float64(req.Score)/float64(req.MaxScore)*1e4) / 1e4
	if !s.submissionsEnabled {
		return resp, ErrSubmissionsDisabled
	}

	sub := xcatalog.Submission{
		SourceCode:   source,
		DestCode:     dest,
		Score:        req.Score,
		MaxScore:     req.MaxScore,
		VehicleClass: req.VehicleClass,
		Country:      s.country,
	}
	if err := s.resolver.SubmitMapping(ctx, sub); err != nil {
		return resp, fmt.Errorf("submit mapping: %w", err)
	}
	resp.Submitted = true
	s.logger.Info("mapping submitted",
		logging.String("source", source),
		logging.String("dest", dest),
		logging.Float64("normalized_score", resp.NormalizedScore))
	return resp, nil
}
