package gadget

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Service implements the gadget lifecycle: creation with codename
// generation, listing with mission assessments, updates, decommissioning,
// and the two-step self-destruct sequence.
type Service struct {
	repo  Repository
	codes *CodeStore
}

// NewService creates a gadget lifecycle service backed by the given
// repository and confirmation-code store.
func NewService(repo Repository, codes *CodeStore) *Service {
	return &Service{
		repo:  repo,
		codes: codes,
	}
}

// List returns all gadgets, optionally filtered to an exact status match,
// each decorated with a freshly rolled mission success probability.
// Unknown status values simply match nothing.
func (s *Service) List(ctx context.Context, status *Status) ([]MissionAssessment, error) {
	var (
		gadgets []Gadget
		err     error
	)
	if status != nil {
		gadgets, err = s.repo.ListByStatus(ctx, *status)
	} else {
		gadgets, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	assessments := make([]MissionAssessment, 0, len(gadgets))
	for _, g := range gadgets {
		assessments = append(assessments, assess(g))
	}
	return assessments, nil
}

// Get returns a single gadget by ID.
func (s *Service) Get(ctx context.Context, id string) (*Gadget, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a new gadget to the armoury with a randomly generated,
// unique codename and status Available. Codename collisions are retried
// up to maxCodenameAttempts before giving up with ErrCodenameExhausted.
func (s *Service) Create(ctx context.Context) (*Gadget, error) {
	for attempt := 0; attempt < maxCodenameAttempts; attempt++ {
		name := randomCodename()

		_, err := s.repo.GetByName(ctx, name)
		if err == nil {
			// Name taken, roll again
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}

		g := &Gadget{
			Name:   name,
			Status: StatusAvailable,
		}
		if err := s.repo.Create(ctx, g); err != nil {
			if errors.Is(err, ErrNameExists) {
				// Lost the race to a concurrent create, roll again
				continue
			}
			return nil, err
		}
		return g, nil
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrCodenameExhausted, maxCodenameAttempts)
}

// Update applies a partial update to a gadget's name and/or status.
// The decommission timestamp follows the status: entering Decommissioned
// stamps it (if not already stamped), leaving Decommissioned clears it.
func (s *Service) Update(ctx context.Context, id string, patch UpdatePatch) (*Gadget, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		g.Name = *patch.Name
	}
	if patch.Status != nil {
		if !IsValidStatus(*patch.Status) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *patch.Status)
		}
		g.Status = *patch.Status
	}

	s.applyDecommissionStamp(g)

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Decommission retires a gadget from service. The record is kept with
// status Decommissioned and a decommission timestamp. Decommissioning an
// already decommissioned gadget is a no-op that keeps the original
// timestamp.
func (s *Service) Decommission(ctx context.Context, id string) (*Gadget, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	g.Status = StatusDecommissioned
	s.applyDecommissionStamp(g)

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// GenerateSelfDestructCode arms a gadget for destruction by issuing a
// fresh confirmation code. The gadget must exist; its status does not
// matter at this stage.
func (s *Service) GenerateSelfDestructCode(ctx context.Context, id string) (string, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return "", err
	}
	return s.codes.Generate(id)
}

// ConfirmSelfDestruct completes the destruction sequence. The supplied
// code is checked before anything else: a missing or expired code returns
// ErrNoPendingCode, a wrong code returns ErrCodeMismatch and leaves the
// pending code intact. Only a confirmed destruction consumes the code.
func (s *Service) ConfirmSelfDestruct(ctx context.Context, id, code string) (*Gadget, error) {
	if err := s.codes.Validate(id, code); err != nil {
		return nil, err
	}

	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	g.Status = StatusDestroyed
	s.applyDecommissionStamp(g)

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}

	s.codes.Consume(id)
	return g, nil
}

// applyDecommissionStamp keeps the decommission timestamp consistent with
// the status: stamped exactly while Decommissioned, nil otherwise.
func (s *Service) applyDecommissionStamp(g *Gadget) {
	if g.Status == StatusDecommissioned {
		if g.DecommissionedAt == nil {
			now := time.Now().UTC().Truncate(time.Second)
			g.DecommissionedAt = &now
		}
		return
	}
	g.DecommissionedAt = nil
}
