package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"optica_xpto/internal/domain/entities"
	"optica_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrConfigurationNotFound = errors.New("configuration not found")
	ErrInvalidSessionID      = errors.New("invalid session id")
	ErrInvalidFrameID        = errors.New("invalid frame id")
	ErrFrameLookupFailed     = errors.New("frame lookup failed")
	ErrInvalidStep           = errors.New("invalid step")
	ErrInvalidUsageType      = errors.New("invalid usage type")
	ErrInvalidSource         = errors.New("invalid prescription source")
	ErrPayloadSourceMismatch = errors.New("payload does not match prescription source")
)

// IConfigurationUseCase is the configuration store: the single owner of the
// in-flight wizard record for a session. Every mutation rehydrates the
// persisted record, applies one synchronous change and writes it back, so a
// caller always observes its own write on the next call.
//
// Navigation guards are deliberately silent: a refused GoToStep or NextStep
// returns the unchanged state, not an error.

type IConfigurationUseCase interface {
	InitConfiguration(ctx context.Context, sessionID, frameID string) (entities.ConfiguratorState, error)
	Get(ctx context.Context, sessionID string) (entities.ConfiguratorState, error)
	GoToStep(ctx context.Context, sessionID string, step entities.Step) (entities.ConfiguratorState, error)
	NextStep(ctx context.Context, sessionID string) (entities.ConfiguratorState, bool, error)
	PrevStep(ctx context.Context, sessionID string) (entities.ConfiguratorState, error)
	SetUsageType(ctx context.Context, sessionID string, t entities.UsageType) (entities.ConfiguratorState, error)
	SetPrescriptionSource(ctx context.Context, sessionID string, s entities.PrescriptionSource) (entities.ConfiguratorState, error)
	SetPrescriptionPayload(ctx context.Context, sessionID string, sel entities.PrescriptionSelection) (entities.ConfiguratorState, error)
	SetMaterial(ctx context.Context, sessionID, materialID string) (entities.ConfiguratorState, error)
	ToggleTreatment(ctx context.Context, sessionID, treatmentID string) (entities.ConfiguratorState, error)
	SetTreatments(ctx context.Context, sessionID string, treatmentIDs []string) (entities.ConfiguratorState, error)
	SetStepErrors(ctx context.Context, sessionID string, step entities.Step, errs map[string]string) (entities.ConfiguratorState, error)
	SetPricing(ctx context.Context, sessionID string, pricing entities.PriceBreakdown) (entities.ConfiguratorState, error)
	FinalizeConfiguration(ctx context.Context, sessionID string) (entities.ConfiguratorState, error)
	Reset(ctx context.Context, sessionID string) error
}

type ConfigurationUseCase struct {
	repo   interfaces.IConfiguratorStateRepository
	frames interfaces.IFrameLookup
}

var _ IConfigurationUseCase = (*ConfigurationUseCase)(nil)

func NewConfigurationUseCase(repo interfaces.IConfiguratorStateRepository, frames interfaces.IFrameLookup) *ConfigurationUseCase {
	return &ConfigurationUseCase{repo: repo, frames: frames}
}

// InitConfiguration discards any prior record for the session and starts a
// fresh aggregate at the usage-type step. Starting over for another frame is
// the same operation; the old aggregate is simply overwritten.
func (u *ConfigurationUseCase) InitConfiguration(ctx context.Context, sessionID, frameID string) (entities.ConfiguratorState, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.ConfiguratorState{}, ErrInvalidSessionID
	}
	frameID = strings.TrimSpace(frameID)
	if frameID == "" {
		return entities.ConfiguratorState{}, ErrInvalidFrameID
	}

	frame, err := u.frames.GetFrame(ctx, frameID)
	if err != nil {
		log.Printf("[configurator][init] frame lookup failed frame_id=%s err=%v", frameID, err)
		return entities.ConfiguratorState{}, errors.Join(ErrFrameLookupFailed, err)
	}

	now := time.Now().UTC()
	cfg := entities.NewConfiguration(uuid.NewString(), frameID, now)
	state := entities.ConfiguratorState{
		Configuration:  &cfg,
		Frame:          &frame,
		FramePrice:     frame.BasePrice,
		CompletedSteps: []entities.Step{},
	}
	if err := u.persist(ctx, sessionID, state); err != nil {
		return entities.ConfiguratorState{}, err
	}
	return state, nil
}

// Get is the single rehydration entry point. An expired record is deleted
// and reported as not found, so callers always start clean after the TTL.
func (u *ConfigurationUseCase) Get(ctx context.Context, sessionID string) (entities.ConfiguratorState, error) {
	state, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.ConfiguratorState{}, err
	}
	return *state, nil
}

func (u *ConfigurationUseCase) load(ctx context.Context, sessionID string) (*entities.ConfiguratorState, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	state, err := u.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil || state.Configuration == nil {
		return nil, ErrConfigurationNotFound
	}
	if state.Configuration.IsExpired(time.Now().UTC()) {
		log.Printf("[configurator][load] expired configuration discarded session=%s config=%s", sessionID, state.Configuration.ID)
		if err := u.repo.Delete(ctx, sessionID); err != nil {
			return nil, err
		}
		return nil, ErrConfigurationNotFound
	}
	return state, nil
}

func (u *ConfigurationUseCase) persist(ctx context.Context, sessionID string, state entities.ConfiguratorState) error {
	ttl := time.Until(state.Configuration.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Minute
	}
	return u.repo.Save(ctx, sessionID, state, ttl)
}

// mutate rehydrates, applies fn and writes the record back.
func (u *ConfigurationUseCase) mutate(ctx context.Context, sessionID string, fn func(*entities.ConfiguratorState) error) (entities.ConfiguratorState, error) {
	state, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.ConfiguratorState{}, err
	}
	if err := fn(state); err != nil {
		return entities.ConfiguratorState{}, err
	}
	if err := u.persist(ctx, sessionID, *state); err != nil {
		return entities.ConfiguratorState{}, err
	}
	return *state, nil
}

// GoToStep moves the cursor when the navigation guard allows it; a refused
// jump leaves the state untouched.
func (u *ConfigurationUseCase) GoToStep(ctx context.Context, sessionID string, step entities.Step) (entities.ConfiguratorState, error) {
	if entities.StepIndex(step) < 0 {
		return entities.ConfiguratorState{}, ErrInvalidStep
	}
	return u.mutate(ctx, sessionID, func(s *entities.ConfiguratorState) error {
		if !s.CanNavigateTo(step) {
			log.Printf("[configurator][goto] refused forward skip session=%s target=%s", sessionID, step)
			return nil
		}
		s.Configuration.CurrentStep = step
		s.Configuration.UpdatedAt = time.Now().UTC()
		return nil
	})
}

// NextStep marks the current step completed and advances, when its guard is
// satisfied. The bool reports whether the cursor actually moved.
func (u *ConfigurationUseCase) NextStep(ctx context.Context, sessionID string) (entities.ConfiguratorState, bool, error) {
	advanced := false
	state, err := u.mutate(ctx, sessionID, func(s *entities.ConfiguratorState) error {
		if !s.CanProceed() {
			return nil
		}
		idx := entities.StepIndex(s.Configuration.CurrentStep)
		if idx >= len(entities.StepOrder)-1 {
			return nil
		}
		s.MarkStepCompleted(s.Configuration.CurrentStep)
		s.Configuration.CurrentStep = entities.StepOrder[idx+1]
		s.Configuration.UpdatedAt = time.Now().UTC()
		advanced = true
		return nil
	})
	return state, advanced, err
}

func (u *ConfigurationUseCase) PrevStep(ctx context.Context, sessionID string) (entities.ConfiguratorState, error) {
	return u.mutate(ctx, sessionID, func(s *entities.ConfiguratorState) error {
		idx := entities.StepIndex(s.Configuration.CurrentStep)
		if idx <= 0 {
			return nil
		}
		s.Configuration.CurrentStep = entities.StepOrder[idx-1]
		s.Configuration.UpdatedAt = time.Now().UTC()
		return nil
	})
}

func (u *ConfigurationUseCase) SetUsageType(ctx context.Context, sessionID string, t entities.UsageType) (entities.ConfiguratorState, error) {
	if !t.Valid() {
		return entities.ConfiguratorState{}, ErrInvalidUsageType
	}
	return u.mutate(ctx, sessionID, func(s *entities.ConfiguratorState) error {
		s.Configuration.SetUsageType(t, time.Now().UTC())
		return nil
	})
}

func (u *ConfigurationUseCase) SetPrescriptionSource(ctx context.Context, sessionID string, src entities.PrescriptionSource) (entities.ConfiguratorState, error) {
	if !src.Valid() {
		return entities.ConfiguratorState{}, ErrInvalidSource
	}
	return u.mutate(ctx, sessionID, func(s *entities.ConfiguratorState) error {
		s.Configuration.SetPrescriptionSource(src, time.Now().UTC())
		return nil
	})
}

// SetPrescriptionPayload records source and payload in one atomic call. A
// selection whose payload field does not match its source tag is rejected.
func (u *ConfigurationUseCase) SetPrescriptionPayload(ctx context.Context, sessionID string, sel entities.PrescriptionSelection) (entities.ConfiguratorState, error) {
	if !sel.Source.Valid() {
		return entities.ConfiguratorState{}, ErrInvalidSource
	}
	if !sel.HasPayload() {
		return entities.ConfiguratorState{}, ErrPayloadSourceMismatch
	}
	return u.mutate(ctx, sessionID, func(s *entities.ConfiguratorState) error {
		s.Configuration.SetPrescriptionPayload(sel, time.Now().UTC())
		s.SetStepErrors(entities.StepPrescription, nil)
		return nil
	})
}

func (u *ConfigurationUseCase) SetMaterial(ctx context.Context, sessionID, materialID string) (entities.ConfiguratorState, error) {
	materialID = strings.TrimSpace(materialID)
	return u.mutate(ctx, sessionID, func(s *entities.ConfiguratorState) error {
		s.Configuration.SetMaterial(materialID, time.Now().UTC())
		return nil
	})
}

func (u *ConfigurationUseCase) ToggleTreatment(ctx context.Context, sessionID, treatmentID string) (entities.ConfiguratorState, error) {
	return u.mutate(ctx, sessionID, func(s *entities.ConfiguratorState) error {
		s.Configuration.ToggleTreatment(treatmentID, time.Now().UTC())
		return nil
	})
}

func (u *ConfigurationUseCase) SetTreatments(ctx context.Context, sessionID string, treatmentIDs []string) (entities.ConfiguratorState, error) {
	return u.mutate(ctx, sessionID, func(s *entities.ConfiguratorState) error {
		s.Configuration.SetTreatments(treatmentIDs, time.Now().UTC())
		return nil
	})
}

func (u *ConfigurationUseCase) SetStepErrors(ctx context.Context, sessionID string, step entities.Step, errs map[string]string) (entities.ConfiguratorState, error) {
	return u.mutate(ctx, sessionID, func(s *entities.ConfiguratorState) error {
		s.SetStepErrors(step, errs)
		return nil
	})
}

func (u *ConfigurationUseCase) SetPricing(ctx context.Context, sessionID string, pricing entities.PriceBreakdown) (entities.ConfiguratorState, error) {
	return u.mutate(ctx, sessionID, func(s *entities.ConfiguratorState) error {
		s.Configuration.Pricing = &pricing
		s.Configuration.UpdatedAt = time.Now().UTC()
		return nil
	})
}

// FinalizeConfiguration marks the aggregate complete. The review step owns
// the decision of when this is legal.
func (u *ConfigurationUseCase) FinalizeConfiguration(ctx context.Context, sessionID string) (entities.ConfiguratorState, error) {
	return u.mutate(ctx, sessionID, func(s *entities.ConfiguratorState) error {
		s.Configuration.IsComplete = true
		s.MarkStepCompleted(entities.StepReview)
		s.Configuration.UpdatedAt = time.Now().UTC()
		return nil
	})
}

// Reset is the unconditional cancel: the record is dropped, nothing to unwind.
func (u *ConfigurationUseCase) Reset(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	return u.repo.Delete(ctx, sessionID)
}
