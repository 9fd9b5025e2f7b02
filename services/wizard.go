package services

import (
	"errors"

	"github.com/meinwort/meinwort-go/models"
)

// Step identifies one page of the petition creation wizard.
type Step string

const (
	StepType        Step = "type"
	StepLocation    Step = "location"
	StepTitle       Step = "title"
	StepDescription Step = "description"
	StepMedia       Step = "media"
	StepSummary     Step = "summary"
)

var (
	ErrPetitionTypeRequired = errors.New("petition type is required")
	ErrLocationRequired     = errors.New("location is required")
	ErrTitleRequired        = errors.New("title is required")
	ErrDescriptionRequired  = errors.New("description is required")
)

// StepsFor computes the wizard step sequence for a petition type. The
// location step exists only for local petitions; all navigation works on
// positions within this list so the optional step is routed around
// transparently in both directions.
func StepsFor(petitionType string) []Step {
	steps := make([]Step, 0, 6)
	steps = append(steps, StepType)
	if petitionType == string(models.PetitionTypeLocal) {
		steps = append(steps, StepLocation)
	}
	return append(steps, StepTitle, StepDescription, StepMedia, StepSummary)
}

// CurrentStep resolves the draft's stored position to a step, clamping
// positions that fall outside the computed sequence (the sequence shrinks
// when the petition type changes away from local).
func CurrentStep(draft models.PetitionDraft) Step {
	steps := StepsFor(draft.PetitionType)
	return steps[clampPosition(draft.CurrentStep, len(steps))-1]
}

// AdvanceDraft moves the draft forward one position after validating the
// current step's required fields. A validation failure leaves the draft
// unchanged. At the summary step this is a no-op; only Back or Submit apply.
func AdvanceDraft(draft *models.PetitionDraft) error {
	steps := StepsFor(draft.PetitionType)
	pos := clampPosition(draft.CurrentStep, len(steps))

	if err := validateStep(*draft, steps[pos-1]); err != nil {
		return err
	}
	if pos < len(steps) {
		draft.CurrentStep = pos + 1
	}
	return nil
}

// RetreatDraft moves the draft back one position. No validation applies on
// the way back.
func RetreatDraft(draft *models.PetitionDraft) {
	steps := StepsFor(draft.PetitionType)
	pos := clampPosition(draft.CurrentStep, len(steps))
	if pos > 1 {
		draft.CurrentStep = pos - 1
	}
}

func validateStep(draft models.PetitionDraft, step Step) error {
	switch step {
	case StepType:
		if draft.PetitionType == "" {
			return ErrPetitionTypeRequired
		}
	case StepLocation:
		if draft.Location == "" {
			return ErrLocationRequired
		}
	case StepTitle:
		if draft.Title == "" {
			return ErrTitleRequired
		}
	case StepDescription:
		if draft.Description == "" {
			return ErrDescriptionRequired
		}
	}
	return nil
}

func clampPosition(pos, total int) int {
	if pos < 1 {
		return 1
	}
	if pos > total {
		return total
	}
	return pos
}
