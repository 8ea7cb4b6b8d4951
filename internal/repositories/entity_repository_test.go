package repositories_test

import (
	"testing"
	"time"

		"photoshoot_backend/internal/models"
	"photoshoot_backend/internal/repositories"
	"photoshoot_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityRepository_SaveAssignsIdentity(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := repositories.NewPhotoShootRepository()

	shoot := &models.PhotoShoot{Title: "Fall Shoot", Description: "Outdoor"}
	shoot.Status = models.StatusActive
	require.NoError(t, repo.Save(db, shoot))

	assert.NotEmpty(t, shoot.ID)
	assert.False(t, shoot.CreatedOn.IsZero())
	assert.False(t, shoot.LastUpdatedOn.IsZero())

	found, err := repo.FindByIDActive(db, shoot.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fall Shoot", found.Title)
	assert.Equal(t, "Outdoor", found.Description)
	assert.Equal(t, models.StatusActive, found.Status)
}

func TestEntityRepository_SaveOverwritesExisting(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := repositories.NewPhotoShootRepository()

	shoot := &models.PhotoShoot{Title: "Draft"}
	shoot.Status = models.StatusActive
	require.NoError(t, repo.Save(db, shoot))
	createdOn := shoot.CreatedOn
	firstUpdate := shoot.LastUpdatedOn

	time.Sleep(5 * time.Millisecond)
	shoot.Title = "Final"
	require.NoError(t, repo.Save(db, shoot))

	found, err := repo.FindByID(db, shoot.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", found.Title)
	assert.True(t, found.CreatedOn.Equal(createdOn), "createdOn must not change")
	assert.True(t, found.LastUpdatedOn.After(firstUpdate), "lastUpdatedOn must move forward")

	all, err := repo.FindAll(db)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEntityRepository_StatusFiltering(t *testing.T) {
	db := testutil.OpenTestDB(t)
	shoots := repositories.NewPhotoShootRepository()
	books := repositories.NewLookBookRepository()

	parent := &models.PhotoShoot{Title: "Parent"}
	parent.Status = models.StatusActive
	require.NoError(t, shoots.Save(db, parent))

	active := &models.LookBook{Author1: "A", Author2: "B", PhotoShootID: parent.ID}
	active.Status = models.StatusActive
	inactive := &models.LookBook{Author1: "C", Author2: "D", PhotoShootID: parent.ID}
	inactive.Status = models.StatusInactive
	other := &models.LookBook{Author1: "E", PhotoShootID: "another-shoot"}
	other.Status = models.StatusActive
	for _, lb := range []*models.LookBook{active, inactive, other} {
		require.NoError(t, books.Save(db, lb))
	}

	t.Run("FindByIDActive hides inactive rows", func(t *testing.T) {
		_, err := books.FindByIDActive(db, inactive.ID)
		assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
	})

	t.Run("FindByID returns any status", func(t *testing.T) {
		found, err := books.FindByID(db, inactive.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusInactive, found.Status)
	})

	t.Run("list by parent returns only active children", func(t *testing.T) {
		children, err := books.FindAllByParentActive(db, parent.ID)
		require.NoError(t, err)
		require.Len(t, children, 1)
		assert.Equal(t, active.ID, children[0].ID)
	})

	t.Run("find all returns every status", func(t *testing.T) {
		all, err := books.FindAll(db)
		require.NoError(t, err)
		ids := make([]string, 0, len(all))
		for _, lb := range all {
			ids = append(ids, lb.ID)
		}
		assert.ElementsMatch(t, []string{active.ID, inactive.ID, other.ID}, ids)
	})

	t.Run("list by unknown parent is empty", func(t *testing.T) {
		children, err := books.FindAllByParentActive(db, "missing")
		require.NoError(t, err)
		assert.NotNil(t, children)
		assert.Empty(t, children)
	})
}

func TestEntityRepository_RootKindHasNoParent(t *testing.T) {
	db := testutil.OpenTestDB(t)
	_, err := repositories.NewPhotoShootRepository().FindAllByParentActive(db, "x")
	assert.ErrorIs(t, err, repositories.ErrNoParentRelation)
}

func TestEntityRepository_DeleteIsIdempotent(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := repositories.NewPaymentRepository()

	payment := &models.Payment{Amount: 150.5, PhotoShootID: "ps-1"}
	payment.Status = models.StatusActive
	require.NoError(t, repo.Save(db, payment))

	require.NoError(t, repo.DeleteByID(db, payment.ID))
	require.NoError(t, repo.DeleteByID(db, payment.ID))
	require.NoError(t, repo.DeleteByID(db, "never-existed"))

	_, err := repo.FindByID(db, payment.ID)
	assert.ErrorIs(t, err, repositories.ErrRecordNotFound)
}

// assertRoundTrip saves entity as ACTIVE and checks FindByIDActive returns the same fields.
func assertRoundTrip[T any](t *testing.T, repo repositories.EntityRepository[T], entity *T, base func(*T) *models.BaseModel) {
	t.Helper()
	db := testutil.OpenTestDB(t)

	base(entity).Status = models.StatusActive
	require.NoError(t, repo.Save(db, entity))
	require.NotEmpty(t, base(entity).ID)

	found, err := repo.FindByIDActive(db, base(entity).ID)
	require.NoError(t, err)

	want, got := *entity, *found
	assert.WithinDuration(t, base(&want).CreatedOn, base(&got).CreatedOn, time.Millisecond)
	assert.WithinDuration(t, base(&want).LastUpdatedOn, base(&got).LastUpdatedOn, time.Millisecond)
	base(&want).CreatedOn, base(&got).CreatedOn = time.Time{}, time.Time{}
	base(&want).LastUpdatedOn, base(&got).LastUpdatedOn = time.Time{}, time.Time{}
	assert.Equal(t, want, got)
}

func TestEntityRepository_FindByIDActiveAfterSave(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"look book", func(t *testing.T) {
			assertRoundTrip(t, repositories.NewLookBookRepository(),
				&models.LookBook{Author1: "Ann", Author2: "Bob", PhotoShootID: "ps-1"},
				func(e *models.LookBook) *models.BaseModel { return &e.BaseModel })
		}},
		{"schedule", func(t *testing.T) {
			assertRoundTrip(t, repositories.NewScheduleRepository(),
				&models.Schedule{StartDate: "2024-09-01T10:00", EndDate: "next friday", PhotoShootID: "ps-1"},
				func(e *models.Schedule) *models.BaseModel { return &e.BaseModel })
		}},
		{"payment", func(t *testing.T) {
			assertRoundTrip(t, repositories.NewPaymentRepository(),
				&models.Payment{Amount: 1250.75, PhotoShootID: "ps-1"},
				func(e *models.Payment) *models.BaseModel { return &e.BaseModel })
		}},
		{"upload", func(t *testing.T) {
			assertRoundTrip(t, repositories.NewUploadRepository(),
				&models.Upload{LookBookID: "lb-1", FileName: "lb-1_1700000000.jpg", MimeType: "image/jpeg", URL: "/srv/pictures/lb-1_1700000000.jpg"},
				func(e *models.Upload) *models.BaseModel { return &e.BaseModel })
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.run)
	}
}
