package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/platform/postgres"
	"github.com/phrazzld/taskdeck-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectStoreCreate(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresProjectStore(db, nil)

	project, err := domain.NewProject(uuid.New(), "Roadmap", "Q3")
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO projects").
		WithArgs(project.ID, "Roadmap", "Q3", project.OwnerID, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, s.Create(context.Background(), project))
}

func TestProjectStoreCreateInvalid(t *testing.T) {
	db, _ := newMockDB(t)
	s := postgres.NewPostgresProjectStore(db, nil)

	err := s.Create(context.Background(), &domain.Project{ID: uuid.New(), OwnerID: uuid.New()})

	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrEmptyProjectName)
}

func TestProjectStoreCreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresProjectStore(db, nil)
	project, err := domain.NewProject(uuid.New(), "Roadmap", "")
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO projects").WillReturnError(newPgError("23505"))

	err = s.Create(context.Background(), project)

	assert.ErrorIs(t, err, store.ErrDuplicate)
	var storeErr *store.StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "create", storeErr.Operation)
}

func TestProjectStoreGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresProjectStore(db, nil)
	id, ownerID := uuid.New(), uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT (.+) FROM projects WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "owner_id", "created_at", "updated_at"}).
			AddRow(id.String(), "Roadmap", "Q3", ownerID.String(), now, now))

	project, err := s.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, project.ID)
	assert.Equal(t, ownerID, project.OwnerID)
	assert.Equal(t, "Roadmap", project.Name)
	assert.True(t, now.Equal(project.CreatedAt))
}

func TestProjectStoreGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresProjectStore(db, nil)

	mock.ExpectQuery("SELECT (.+) FROM projects").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, store.ErrProjectNotFound)
	assert.True(t, store.IsNotFoundError(err))
}
