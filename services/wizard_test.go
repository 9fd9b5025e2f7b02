package services

import (
	"testing"

	"github.com/meinwort/meinwort-go/models"
	"github.com/stretchr/testify/assert"
)

// --------------------- StepsFor ---------------------
func TestStepsFor_LocalIncludesLocation(t *testing.T) {
	steps := StepsFor("lokal")
	assert.Equal(t, []Step{StepType, StepLocation, StepTitle, StepDescription, StepMedia, StepSummary}, steps)
}

func TestStepsFor_NationalSkipsLocation(t *testing.T) {
	for _, petitionType := range []string{"national", "weltweit", ""} {
		steps := StepsFor(petitionType)
		assert.Equal(t, []Step{StepType, StepTitle, StepDescription, StepMedia, StepSummary}, steps, petitionType)
	}
}

// --------------------- AdvanceDraft ---------------------
func TestAdvanceDraft_ValidationGate(t *testing.T) {
	draft := models.PetitionDraft{CurrentStep: 1}
	err := AdvanceDraft(&draft)
	assert.ErrorIs(t, err, ErrPetitionTypeRequired)
	assert.Equal(t, 1, draft.CurrentStep)

	draft.PetitionType = "national"
	assert.NoError(t, AdvanceDraft(&draft))
	assert.Equal(t, 2, draft.CurrentStep)

	// title step for a national petition
	err = AdvanceDraft(&draft)
	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Equal(t, 2, draft.CurrentStep)
}

func TestAdvanceDraft_LocationRequiredForLocal(t *testing.T) {
	draft := models.PetitionDraft{PetitionType: "lokal", CurrentStep: 2}
	err := AdvanceDraft(&draft)
	assert.ErrorIs(t, err, ErrLocationRequired)

	draft.Location = "Berlin"
	assert.NoError(t, AdvanceDraft(&draft))
	assert.Equal(t, 3, draft.CurrentStep)
	assert.Equal(t, StepTitle, CurrentStep(draft))
}

func TestAdvanceDraft_MediaStepOptional(t *testing.T) {
	draft := models.PetitionDraft{
		PetitionType: "national",
		Title:        "Mehr Radwege",
		Description:  "Wir fordern mehr Radwege.",
		CurrentStep:  4,
	}
	assert.Equal(t, StepMedia, CurrentStep(draft))
	assert.NoError(t, AdvanceDraft(&draft))
	assert.Equal(t, StepSummary, CurrentStep(draft))
}

func TestAdvanceDraft_NoOpAtSummary(t *testing.T) {
	draft := models.PetitionDraft{
		PetitionType: "national",
		Title:        "Mehr Radwege",
		Description:  "Wir fordern mehr Radwege.",
		CurrentStep:  5,
	}
	assert.Equal(t, StepSummary, CurrentStep(draft))
	assert.NoError(t, AdvanceDraft(&draft))
	assert.Equal(t, 5, draft.CurrentStep)
}

// --------------------- RetreatDraft ---------------------
func TestRetreatDraft_SkipsLocationSymmetrically(t *testing.T) {
	// for a national petition, position 3 is the description step and going
	// back lands on title, never on location
	draft := models.PetitionDraft{PetitionType: "national", CurrentStep: 3}
	assert.Equal(t, StepDescription, CurrentStep(draft))

	RetreatDraft(&draft)
	assert.Equal(t, StepTitle, CurrentStep(draft))

	RetreatDraft(&draft)
	assert.Equal(t, StepType, CurrentStep(draft))

	RetreatDraft(&draft)
	assert.Equal(t, 1, draft.CurrentStep)
}

func TestRetreatDraft_LocalVisitsLocation(t *testing.T) {
	draft := models.PetitionDraft{PetitionType: "lokal", Location: "Berlin", CurrentStep: 3}
	assert.Equal(t, StepTitle, CurrentStep(draft))

	RetreatDraft(&draft)
	assert.Equal(t, StepLocation, CurrentStep(draft))
}

func TestCurrentStep_ClampsWhenSequenceShrinks(t *testing.T) {
	// a draft at the local summary position whose type changed away from
	// local resolves to the last step of the shorter sequence
	draft := models.PetitionDraft{PetitionType: "weltweit", CurrentStep: 6}
	assert.Equal(t, StepSummary, CurrentStep(draft))
}
