package repositories

import (
	"errors"
	"os"
	"testing"

	"github.com/meinwort/meinwort-go/db"
	"github.com/meinwort/meinwort-go/internal/testutils"
	"github.com/meinwort/meinwort-go/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gormDB, cleanup := testutils.SetupPostgresForIntegration()
	db.InitWithGormDB(gormDB)

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func createTestPetition(t *testing.T, status string, title string) models.Petition {
	petition := models.Petition{
		Title:        title,
		Description:  "integration test petition",
		Category:     "Umwelt",
		CreatorID:    1,
		Status:       status,
		PetitionType: "national",
	}
	require.NoError(t, (&DBPetitionRepo{}).CreatePetition(&petition))
	return petition
}

// --------------------- Signatures ---------------------
func TestSignatureRepo_DuplicateEmailPerPetition(t *testing.T) {
	repo := &DBSignatureRepo{}
	petition := createTestPetition(t, "published", "duplicate signature check")

	first := models.Signature{
		PetitionID:         petition.PID,
		SignerName:         "Erika Mustermann",
		SignerEmail:        "erika@example.org",
		VerificationStatus: string(models.VerificationVerified),
	}
	require.NoError(t, repo.CreateSignature(&first))

	second := models.Signature{
		PetitionID:         petition.PID,
		SignerName:         "E. Mustermann",
		SignerEmail:        "erika@example.org",
		VerificationStatus: string(models.VerificationVerified),
	}
	err := repo.CreateSignature(&second)
	require.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "expected translated duplicate key error, got %v", err)

	// the same email on another petition is fine
	other := createTestPetition(t, "published", "second petition")
	third := models.Signature{
		PetitionID:         other.PID,
		SignerName:         "Erika Mustermann",
		SignerEmail:        "erika@example.org",
		VerificationStatus: string(models.VerificationVerified),
	}
	require.NoError(t, repo.CreateSignature(&third))
}

func TestSignatureRepo_CountVerifiedIgnoresPending(t *testing.T) {
	repo := &DBSignatureRepo{}
	petition := createTestPetition(t, "published", "count check")

	verified := models.Signature{
		PetitionID:         petition.PID,
		SignerName:         "A",
		SignerEmail:        "a@example.org",
		VerificationStatus: string(models.VerificationVerified),
	}
	pending := models.Signature{
		PetitionID:         petition.PID,
		SignerName:         "B",
		SignerEmail:        "b@example.org",
		VerificationStatus: string(models.VerificationPending),
	}
	require.NoError(t, repo.CreateSignature(&verified))
	require.NoError(t, repo.CreateSignature(&pending))

	count, err := repo.CountVerified(petition.PID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

// --------------------- Drafts ---------------------
func TestDraftRepo_OneRowPerUser(t *testing.T) {
	repo := &DBDraftRepo{}

	draft := models.PetitionDraft{UID: 77, PetitionType: "lokal", Location: "Berlin", CurrentStep: 2}
	require.NoError(t, repo.SaveDraft(&draft))

	draft.Location = "Hamburg"
	require.NoError(t, repo.SaveDraft(&draft))

	loaded, err := repo.LoadDraft(77)
	require.NoError(t, err)
	require.Equal(t, "Hamburg", loaded.Location)

	require.NoError(t, repo.ClearDraft(77))
	_, err = repo.LoadDraft(77)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

// --------------------- Petitions ---------------------
func TestPetitionRepo_ListFiltersAndSearch(t *testing.T) {
	repo := &DBPetitionRepo{}
	createTestPetition(t, "published", "Radwege für Neustadt")
	createTestPetition(t, "pending", "Radwege für Altstadt")

	published, err := repo.ListPetitions(PetitionQuery{Status: "published", Search: "radwege"})
	require.NoError(t, err)
	require.NotEmpty(t, published)
	for _, p := range published {
		require.Equal(t, "published", p.Status)
	}

	none, err := repo.ListPetitions(PetitionQuery{Status: "published", Search: "no such petition"})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestSavedPetitionRepo_SaveIsUniquePerUser(t *testing.T) {
	repo := &DBSavedPetitionRepo{}
	petition := createTestPetition(t, "published", "bookmark check")

	require.NoError(t, repo.Save(&models.SavedPetition{UID: 5, PID: petition.PID}))
	err := repo.Save(&models.SavedPetition{UID: 5, PID: petition.PID})
	require.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	ids, err := repo.ListSavedPetitionIDs(5)
	require.NoError(t, err)
	require.Contains(t, ids, petition.PID)

	require.NoError(t, repo.Unsave(5, petition.PID))
	saved, err := repo.IsSaved(5, petition.PID)
	require.NoError(t, err)
	require.False(t, saved)
}
