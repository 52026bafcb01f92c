package classrooms

import (
	"context"
	"testing"

	"github.com/lectern/classroom-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Classroom{}, &models.Lecture{}))

	return NewService(NewRepository(db)), db
}

func TestCreate(t *testing.T) {
	svc, _ := setupTestService(t)

	classroom, err := svc.Create(context.Background(), 1, "  Algebra I ", "Math", "intro course")
	require.NoError(t, err)

	assert.NotZero(t, classroom.ID)
	assert.Equal(t, "Algebra I", classroom.Name)
	assert.Equal(t, uint(1), classroom.TeacherID)
}

func TestCreate_RequiresName(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Create(context.Background(), 1, "   ", "Math", "")
	assert.Error(t, err)
}

func TestUpdate_OwnershipEnforced(t *testing.T) {
	svc, _ := setupTestService(t)

	classroom, err := svc.Create(context.Background(), 1, "Algebra", "Math", "")
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), classroom.ID, 2, "Stolen", "", "")
	assert.ErrorIs(t, err, ErrNotOwner)

	updated, err := svc.Update(context.Background(), classroom.ID, 1, "Algebra II", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Algebra II", updated.Name)
	assert.Equal(t, "Math", updated.Subject)
}

func TestDelete_CascadesToLectures(t *testing.T) {
	svc, db := setupTestService(t)

	classroom, err := svc.Create(context.Background(), 1, "Algebra", "Math", "")
	require.NoError(t, err)

	lecture := &models.Lecture{Title: "Lecture 1", ClassroomID: classroom.ID, CreatedBy: 1}
	require.NoError(t, db.Create(lecture).Error)

	require.NoError(t, svc.Delete(context.Background(), classroom.ID, 1))

	_, err = svc.Get(context.Background(), classroom.ID)
	assert.ErrorIs(t, err, ErrClassroomNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Lecture{}).Where("classroom_id = ?", classroom.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDelete_OwnershipEnforced(t *testing.T) {
	svc, _ := setupTestService(t)

	classroom, err := svc.Create(context.Background(), 1, "Algebra", "Math", "")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), classroom.ID, 99)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestListByTeacher(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Create(context.Background(), 1, "Algebra", "Math", "")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 1, "Geometry", "Math", "")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 2, "History", "History", "")
	require.NoError(t, err)

	got, err := svc.ListByTeacher(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
