package entities

import "time"

// Step identifies one state of the lens configurator wizard.
//
// Domain notes:
//   - Steps advance in the fixed order below; skipping forward past an
//     incomplete step is refused by the state guards, backward navigation
//     and revisiting completed steps is always allowed.

type Step string

const (
	StepUsageType    Step = "usage_type"
	StepPrescription Step = "prescription"
	StepMaterial     Step = "material"
	StepTreatments   Step = "treatments"
	StepReview       Step = "review"
)

// StepOrder is the fixed wizard sequence. Review is terminal.
var StepOrder = []Step{
	StepUsageType,
	StepPrescription,
	StepMaterial,
	StepTreatments,
	StepReview,
}

// StepIndex returns the position of step in StepOrder, or -1 when unknown.
func StepIndex(step Step) int {
	for i, s := range StepOrder {
		if s == step {
			return i
		}
	}
	return -1
}

// UsageType is the intended optical purpose of the configured lenses.

type UsageType string

const (
	UsageTypeDistance        UsageType = "distance"
	UsageTypeNear            UsageType = "near"
	UsageTypeComputer        UsageType = "computer"
	UsageTypeProgressive     UsageType = "progressive"
	UsageTypeBifocal         UsageType = "bifocal"
	UsageTypeNonPrescription UsageType = "non_prescription"
)

// AllUsageTypes lists the selectable usage options in display order.
var AllUsageTypes = []UsageType{
	UsageTypeDistance,
	UsageTypeNear,
	UsageTypeComputer,
	UsageTypeProgressive,
	UsageTypeBifocal,
	UsageTypeNonPrescription,
}

func (u UsageType) Valid() bool {
	for _, t := range AllUsageTypes {
		if t == u {
			return true
		}
	}
	return false
}

// RequiresPrescription reports whether this usage needs optical correction data.
func (u UsageType) RequiresPrescription() bool {
	return u != "" && u != UsageTypeNonPrescription
}

// SupportsAdd reports whether the usage collects an addition value (near add).
func (u UsageType) SupportsAdd() bool {
	return u == UsageTypeProgressive || u == UsageTypeBifocal
}

// PrescriptionSource is the channel supplying the optical correction values.

type PrescriptionSource string

const (
	PrescriptionSourceSaved       PrescriptionSource = "saved"
	PrescriptionSourceManual      PrescriptionSource = "manual"
	PrescriptionSourceUpload      PrescriptionSource = "upload"
	PrescriptionSourceAppointment PrescriptionSource = "appointment"
)

func (s PrescriptionSource) Valid() bool {
	switch s {
	case PrescriptionSourceSaved, PrescriptionSourceManual, PrescriptionSourceUpload, PrescriptionSourceAppointment:
		return true
	}
	return false
}

// PrescriptionSelection is the tagged prescription payload: the Source tag
// decides which single payload field is meaningful. Setting a payload for a
// different source than the current tag is rejected by the configuration, so
// a mismatched source/payload pair cannot be represented.

type PrescriptionSelection struct {
	Source              PrescriptionSource `json:"source"`
	SavedPrescriptionID string             `json:"saved_prescription_id,omitempty"`
	Manual              *Prescription      `json:"manual,omitempty"`
	UploadURL           string             `json:"upload_url,omitempty"`
	AppointmentID       string             `json:"appointment_id,omitempty"`
}

// HasPayload reports whether the payload field selected by Source is set.
func (p *PrescriptionSelection) HasPayload() bool {
	if p == nil {
		return false
	}
	switch p.Source {
	case PrescriptionSourceSaved:
		return p.SavedPrescriptionID != ""
	case PrescriptionSourceManual:
		return p.Manual != nil
	case PrescriptionSourceUpload:
		return p.UploadURL != ""
	case PrescriptionSourceAppointment:
		return p.AppointmentID != ""
	}
	return false
}

// ConfigurationTTL is how long an unfinished configuration stays alive.
const ConfigurationTTL = 7 * 24 * time.Hour

// Configuration is the single in-flight lens customization aggregate, tied to
// one frame for its whole lifetime.
//
// Storage model (Redis):
//   - one JSON record per session under lens_configurator:session:<id>
//   - written on every mutation, TTL bounded by ExpiresAt
//
// Invalidation rules:
//   - changing UsageType discards MaterialID, TreatmentIDs and Pricing
//   - changing the prescription source discards every prescription payload

type Configuration struct {
	ID           string                 `json:"id"`
	FrameID      string                 `json:"frame_id"`
	CurrentStep  Step                   `json:"current_step"`
	IsComplete   bool                   `json:"is_complete"`
	UsageType    UsageType              `json:"usage_type,omitempty"`
	Prescription *PrescriptionSelection `json:"prescription,omitempty"`
	MaterialID   string                 `json:"material_id,omitempty"`
	TreatmentIDs []string               `json:"treatment_ids"`
	Pricing      *PriceBreakdown        `json:"pricing,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
	ExpiresAt    time.Time              `json:"expires_at"`
}

func NewConfiguration(id, frameID string, now time.Time) Configuration {
	return Configuration{
		ID:           id,
		FrameID:      frameID,
		CurrentStep:  StepUsageType,
		TreatmentIDs: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
		ExpiresAt:    now.Add(ConfigurationTTL),
	}
}

// IsExpired reports whether the aggregate is past its TTL and must be discarded.
func (c *Configuration) IsExpired(now time.Time) bool {
	return c != nil && now.After(c.ExpiresAt)
}

// SetUsageType records the selected usage and invalidates every downstream
// selection that depended on the previous one.
func (c *Configuration) SetUsageType(t UsageType, now time.Time) {
	c.UsageType = t
	c.MaterialID = ""
	c.TreatmentIDs = []string{}
	c.Pricing = nil
	c.UpdatedAt = now
}

// SetPrescriptionSource switches the capture channel and clears any payload
// captured through the previous one.
func (c *Configuration) SetPrescriptionSource(s PrescriptionSource, now time.Time) {
	c.Prescription = &PrescriptionSelection{Source: s}
	c.UpdatedAt = now
}

// SetPrescriptionPayload atomically records source and payload in one call.
func (c *Configuration) SetPrescriptionPayload(sel PrescriptionSelection, now time.Time) {
	c.Prescription = &sel
	c.UpdatedAt = now
}

func (c *Configuration) SetMaterial(materialID string, now time.Time) {
	c.MaterialID = materialID
	c.Pricing = nil
	c.UpdatedAt = now
}

// ToggleTreatment adds or removes a treatment reference. Compatibility is the
// treatments step's concern, not the aggregate's, so curated bundles can be
// applied atomically via SetTreatments.
func (c *Configuration) ToggleTreatment(id string, now time.Time) {
	for i, existing := range c.TreatmentIDs {
		if existing == id {
			c.TreatmentIDs = append(c.TreatmentIDs[:i], c.TreatmentIDs[i+1:]...)
			c.Pricing = nil
			c.UpdatedAt = now
			return
		}
	}
	c.TreatmentIDs = append(c.TreatmentIDs, id)
	c.Pricing = nil
	c.UpdatedAt = now
}

func (c *Configuration) SetTreatments(ids []string, now time.Time) {
	if ids == nil {
		ids = []string{}
	}
	c.TreatmentIDs = ids
	c.Pricing = nil
	c.UpdatedAt = now
}

func (c *Configuration) HasTreatment(id string) bool {
	for _, existing := range c.TreatmentIDs {
		if existing == id {
			return true
		}
	}
	return false
}

// ConfiguratorState is the full persisted wizard record: the aggregate plus
// the frame snapshot it was started for, completion tracking and per-step
// validation errors (errors are state, never exceptions).

type ConfiguratorState struct {
	Configuration  *Configuration             `json:"configuration"`
	Frame          *Frame                     `json:"frame"`
	FramePrice     float64                    `json:"frame_price"`
	CompletedSteps []Step                     `json:"completed_steps"`
	StepErrors     map[Step]map[string]string `json:"step_errors,omitempty"`
}

func (s *ConfiguratorState) IsStepCompleted(step Step) bool {
	for _, done := range s.CompletedSteps {
		if done == step {
			return true
		}
	}
	return false
}

func (s *ConfiguratorState) MarkStepCompleted(step Step) {
	if s.IsStepCompleted(step) {
		return
	}
	s.CompletedSteps = append(s.CompletedSteps, step)
}

func (s *ConfiguratorState) SetStepErrors(step Step, errs map[string]string) {
	if s.StepErrors == nil {
		s.StepErrors = map[Step]map[string]string{}
	}
	if len(errs) == 0 {
		delete(s.StepErrors, step)
		return
	}
	s.StepErrors[step] = errs
}

func (s *ConfiguratorState) HasStepErrors(step Step) bool {
	return len(s.StepErrors[step]) > 0
}

// CanProceedFrom evaluates the transition guard for the given step.
func (s *ConfiguratorState) CanProceedFrom(step Step) bool {
	if s.Configuration == nil || s.HasStepErrors(step) {
		return false
	}
	c := s.Configuration
	switch step {
	case StepUsageType:
		return c.UsageType != ""
	case StepPrescription:
		if c.UsageType == UsageTypeNonPrescription {
			return true
		}
		return c.Prescription.HasPayload()
	case StepMaterial:
		return c.MaterialID != ""
	case StepTreatments:
		return true
	case StepReview:
		return c.IsComplete
	}
	return false
}

// CanProceed evaluates the guard for the current step.
func (s *ConfiguratorState) CanProceed() bool {
	if s.Configuration == nil {
		return false
	}
	return s.CanProceedFrom(s.Configuration.CurrentStep)
}

// CanNavigateTo implements the forward-skip guard: backward moves are free,
// a forward move is allowed only when every step before the target is
// completed or currently satisfiable.
func (s *ConfiguratorState) CanNavigateTo(step Step) bool {
	if s.Configuration == nil {
		return false
	}
	target := StepIndex(step)
	if target < 0 {
		return false
	}
	if target <= StepIndex(s.Configuration.CurrentStep) {
		return true
	}
	return s.ResolveStep(step) == step
}

// ResolveStep clamps a requested step to the furthest legal one: the first
// step in order that is neither completed nor currently satisfiable blocks
// everything after it. Deep links past that point land on the blocker.
func (s *ConfiguratorState) ResolveStep(requested Step) Step {
	if s.Configuration == nil {
		return StepUsageType
	}
	target := StepIndex(requested)
	if target < 0 {
		target = StepIndex(s.Configuration.CurrentStep)
	}
	for i := 0; i < target; i++ {
		step := StepOrder[i]
		if !s.IsStepCompleted(step) && !s.CanProceedFrom(step) {
			return step
		}
	}
	return StepOrder[target]
}

// Progress is the derived completion percentage: full credit for every step
// behind the cursor, half a step once the current guard is satisfied.
func (s *ConfiguratorState) Progress() float64 {
	if s.Configuration == nil {
		return 0
	}
	total := float64(len(StepOrder))
	p := float64(StepIndex(s.Configuration.CurrentStep)) / total * 100
	if s.CanProceed() {
		p += 100 / total / 2
	}
	if p > 100 {
		p = 100
	}
	return p
}
