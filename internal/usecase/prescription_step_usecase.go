package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"optica_xpto/internal/domain/entities"
	"optica_xpto/internal/usecase/interfaces"
)

var (
	ErrPrescriptionNotRequired    = errors.New("prescription not required for this usage type")
	ErrSavedPrescriptionNotFound  = errors.New("saved prescription not found")
	ErrSavedPrescriptionExpired   = errors.New("saved prescription expired")
	ErrInvalidAppointmentID       = errors.New("invalid appointment id")
	ErrManualPrescriptionRejected = errors.New("manual prescription failed validation")
	ErrUploadRejected             = errors.New("upload rejected")
)

const uploadMaxSizeBytes = 10 << 20

var allowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

type SavedPrescriptionOption struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	IssueDate time.Time `json:"issue_date"`
	// Expired entries are listed but not selectable.
	Expired bool `json:"expired"`
}

type PrescriptionStepView struct {
	Skipped bool                         `json:"skipped"`
	Source  entities.PrescriptionSource  `json:"source,omitempty"`
	Sources []entities.PrescriptionSource `json:"sources"`
	// RecommendedIndex is advisory: the minimum lens index worth buying for
	// the captured strength. Never gates progression.
	RecommendedIndex string            `json:"recommended_index,omitempty"`
	FieldErrors      map[string]string `json:"field_errors,omitempty"`
}

// IPrescriptionStepUseCase is the prescription step controller: four
// mutually exclusive capture modes, skipped entirely for non-prescription
// usage. Manual submissions validate atomically; nothing is committed while
// any field is wrong.

type IPrescriptionStepUseCase interface {
	View(ctx context.Context, sessionID string) (PrescriptionStepView, error)
	SelectSource(ctx context.Context, sessionID string, src entities.PrescriptionSource) (entities.ConfiguratorState, error)
	ListSaved(ctx context.Context, sessionID, userID string) ([]SavedPrescriptionOption, error)
	SelectSaved(ctx context.Context, sessionID, userID, savedID string) (entities.ConfiguratorState, error)
	SubmitManual(ctx context.Context, sessionID string, p entities.Prescription) (entities.ConfiguratorState, map[string]string, error)
	AttachUpload(ctx context.Context, sessionID, fileURL, contentType string, sizeBytes int64) (entities.ConfiguratorState, map[string]string, error)
	LinkAppointment(ctx context.Context, sessionID, appointmentID string) (entities.ConfiguratorState, error)
}

type PrescriptionStepUseCase struct {
	store IConfigurationUseCase
	saved interfaces.ISavedPrescriptionRepository
}

var _ IPrescriptionStepUseCase = (*PrescriptionStepUseCase)(nil)

func NewPrescriptionStepUseCase(store IConfigurationUseCase, saved interfaces.ISavedPrescriptionRepository) *PrescriptionStepUseCase {
	return &PrescriptionStepUseCase{store: store, saved: saved}
}

func (u *PrescriptionStepUseCase) View(ctx context.Context, sessionID string) (PrescriptionStepView, error) {
	state, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return PrescriptionStepView{}, err
	}
	return buildPrescriptionView(state), nil
}

func buildPrescriptionView(state entities.ConfiguratorState) PrescriptionStepView {
	view := PrescriptionStepView{
		Sources: []entities.PrescriptionSource{
			entities.PrescriptionSourceSaved,
			entities.PrescriptionSourceManual,
			entities.PrescriptionSourceUpload,
			entities.PrescriptionSourceAppointment,
		},
		FieldErrors: state.StepErrors[entities.StepPrescription],
	}
	if !state.Configuration.UsageType.RequiresPrescription() {
		view.Skipped = true
		return view
	}
	if sel := state.Configuration.Prescription; sel != nil {
		view.Source = sel.Source
		if sel.Manual != nil {
			view.RecommendedIndex = sel.Manual.RecommendedIndex()
		}
	}
	return view
}

func (u *PrescriptionStepUseCase) SelectSource(ctx context.Context, sessionID string, src entities.PrescriptionSource) (entities.ConfiguratorState, error) {
	if err := u.requirePrescription(ctx, sessionID); err != nil {
		return entities.ConfiguratorState{}, err
	}
	return u.store.SetPrescriptionSource(ctx, sessionID, src)
}

func (u *PrescriptionStepUseCase) requirePrescription(ctx context.Context, sessionID string) error {
	state, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if !state.Configuration.UsageType.RequiresPrescription() {
		return ErrPrescriptionNotRequired
	}
	return nil
}

func (u *PrescriptionStepUseCase) ListSaved(ctx context.Context, sessionID, userID string) ([]SavedPrescriptionOption, error) {
	if err := u.requirePrescription(ctx, sessionID); err != nil {
		return nil, err
	}
	records, err := u.saved.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	options := make([]SavedPrescriptionOption, 0, len(records))
	for _, r := range records {
		options = append(options, SavedPrescriptionOption{
			ID:        r.ID,
			Label:     r.Label,
			IssueDate: r.Prescription.IssueDate,
			Expired:   r.Prescription.IsExpired(now),
		})
	}
	return options, nil
}

func (u *PrescriptionStepUseCase) SelectSaved(ctx context.Context, sessionID, userID, savedID string) (entities.ConfiguratorState, error) {
	if err := u.requirePrescription(ctx, sessionID); err != nil {
		return entities.ConfiguratorState{}, err
	}
	record, err := u.saved.GetByID(ctx, savedID)
	if err != nil {
		return entities.ConfiguratorState{}, err
	}
	if record.ID == "" || record.UserID != userID {
		return entities.ConfiguratorState{}, ErrSavedPrescriptionNotFound
	}
	if record.Prescription.IsExpired(time.Now().UTC()) {
		return entities.ConfiguratorState{}, ErrSavedPrescriptionExpired
	}
	return u.store.SetPrescriptionPayload(ctx, sessionID, entities.PrescriptionSelection{
		Source:              entities.PrescriptionSourceSaved,
		SavedPrescriptionID: record.ID,
	})
}

// SubmitManual validates the whole record atomically. On failure the field
// errors are recorded as step state and nothing reaches the aggregate.
func (u *PrescriptionStepUseCase) SubmitManual(ctx context.Context, sessionID string, p entities.Prescription) (entities.ConfiguratorState, map[string]string, error) {
	state, err := u.store.Get(ctx, sessionID)
	if err != nil {
		return entities.ConfiguratorState{}, nil, err
	}
	if !state.Configuration.UsageType.RequiresPrescription() {
		return entities.ConfiguratorState{}, nil, ErrPrescriptionNotRequired
	}

	fieldErrors := p.Validate(state.Configuration.UsageType, time.Now().UTC())
	if len(fieldErrors) > 0 {
		log.Printf("[prescription][manual] rejected session=%s fields=%d", sessionID, len(fieldErrors))
		state, err = u.store.SetStepErrors(ctx, sessionID, entities.StepPrescription, fieldErrors)
		if err != nil {
			return entities.ConfiguratorState{}, nil, err
		}
		return state, fieldErrors, ErrManualPrescriptionRejected
	}

	state, err = u.store.SetPrescriptionPayload(ctx, sessionID, entities.PrescriptionSelection{
		Source: entities.PrescriptionSourceManual,
		Manual: &p,
	})
	if err != nil {
		return entities.ConfiguratorState{}, nil, err
	}
	return state, nil, nil
}

// AttachUpload stores a reference URL only. Content correctness is deferred
// to manual staff review; just the file type and size are checked here.
func (u *PrescriptionStepUseCase) AttachUpload(ctx context.Context, sessionID, fileURL, contentType string, sizeBytes int64) (entities.ConfiguratorState, map[string]string, error) {
	if err := u.requirePrescription(ctx, sessionID); err != nil {
		return entities.ConfiguratorState{}, nil, err
	}

	fieldErrors := map[string]string{}
	if strings.TrimSpace(fileURL) == "" {
		fieldErrors["file_url"] = "file URL is required"
	}
	if !allowedUploadTypes[contentType] {
		fieldErrors["content_type"] = "only JPEG, PNG or PDF files are accepted"
	}
	if sizeBytes <= 0 || sizeBytes > uploadMaxSizeBytes {
		fieldErrors["size_bytes"] = fmt.Sprintf("file must be between 1 byte and %d MB", uploadMaxSizeBytes>>20)
	}
	if len(fieldErrors) > 0 {
		state, err := u.store.SetStepErrors(ctx, sessionID, entities.StepPrescription, fieldErrors)
		if err != nil {
			return entities.ConfiguratorState{}, nil, err
		}
		return state, fieldErrors, ErrUploadRejected
	}

	state, err := u.store.SetPrescriptionPayload(ctx, sessionID, entities.PrescriptionSelection{
		Source:    entities.PrescriptionSourceUpload,
		UploadURL: strings.TrimSpace(fileURL),
	})
	if err != nil {
		return entities.ConfiguratorState{}, nil, err
	}
	return state, nil, nil
}

// LinkAppointment stores the externally scheduled appointment reference; the
// prescription itself arrives out-of-band after the appointment happens.
func (u *PrescriptionStepUseCase) LinkAppointment(ctx context.Context, sessionID, appointmentID string) (entities.ConfiguratorState, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return entities.ConfiguratorState{}, ErrInvalidAppointmentID
	}
	if err := u.requirePrescription(ctx, sessionID); err != nil {
		return entities.ConfiguratorState{}, err
	}
	return u.store.SetPrescriptionPayload(ctx, sessionID, entities.PrescriptionSelection{
		Source:        entities.PrescriptionSourceAppointment,
		AppointmentID: appointmentID,
	})
}
