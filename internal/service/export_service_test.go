package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/arthlor/yeser-api/internal/error_values"
	"github.com/arthlor/yeser-api/internal/repository/mocks"
	"github.com/arthlor/yeser-api/internal/service"
	"github.com/arthlor/yeser-api/pkg/entity"
)

func TestBuildJSON(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	entriesRepo := mocks.NewMockEntriesRepositoryI(ctrl)
	streaksRepo := mocks.NewMockStreaksRepositoryI(ctrl)

	es := service.NewExportService(usersRepo, entriesRepo, streaksRepo)
	userID := uuid.New()
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	yesterday := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	entries := []*entity.Entry{
		{ID: uuid.New(), UserID: userID, Content: "first entry", EntryDate: yesterday.AddDate(0, 0, -1)},
		{ID: uuid.New(), UserID: userID, Content: "second entry", EntryDate: yesterday},
	}
	ctx := context.Background()

	usersRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&entity.User{
		ID:     userID,
		Email:  "test@example.com",
		Locale: "en",
	}, nil)
	entriesRepo.EXPECT().GetAllByUserID(gomock.Any(), userID).Return(entries, nil)
	entriesRepo.EXPECT().CountByUserID(gomock.Any(), userID).Return(2, nil)
	streaksRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&entity.Streak{
		UserID:        userID,
		CurrentStreak: 2,
		LongestStreak: 8,
		LastEntryDate: &yesterday,
	}, nil)

	data, err := es.BuildJSON(ctx, userID, "en", now)
	require.NoError(t, err)

	var doc service.ExportDocument
	require.NoError(t, sonic.Unmarshal(data, &doc))
	assert.Equal(t, "test@example.com", doc.Email)
	assert.Equal(t, 2, doc.TotalEntries)
	require.NotNil(t, doc.Streak)
	assert.Equal(t, 2, doc.Streak.CurrentStreak)
	assert.Equal(t, "first-step", doc.Milestones.CurrentMilestone.ID)
	require.Len(t, doc.Entries, 2)
	assert.Equal(t, "first entry", doc.Entries[0].Content)
}

func TestBuildJSONWithoutStreakRecord(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	entriesRepo := mocks.NewMockEntriesRepositoryI(ctrl)
	streaksRepo := mocks.NewMockStreaksRepositoryI(ctrl)

	es := service.NewExportService(usersRepo, entriesRepo, streaksRepo)
	userID := uuid.New()
	ctx := context.Background()

	usersRepo.EXPECT().FindByID(gomock.Any(), userID).Return(&entity.User{
		ID:    userID,
		Email: "fresh@example.com",
	}, nil)
	entriesRepo.EXPECT().GetAllByUserID(gomock.Any(), userID).Return([]*entity.Entry{}, nil)
	entriesRepo.EXPECT().CountByUserID(gomock.Any(), userID).Return(0, nil)
	streaksRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, errorvalues.ErrStreakNotFound)

	data, err := es.BuildJSON(ctx, userID, "en", time.Now())
	require.NoError(t, err)

	var doc service.ExportDocument
	require.NoError(t, sonic.Unmarshal(data, &doc))
	assert.Nil(t, doc.Streak)
	assert.Equal(t, 0, doc.TotalEntries)
	assert.Empty(t, doc.Entries)
}

func TestBuildJSONUserNotFound(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	entriesRepo := mocks.NewMockEntriesRepositoryI(ctrl)
	streaksRepo := mocks.NewMockStreaksRepositoryI(ctrl)

	es := service.NewExportService(usersRepo, entriesRepo, streaksRepo)
	userID := uuid.New()
	usersRepo.EXPECT().FindByID(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)

	_, err := es.BuildJSON(context.Background(), userID, "en", time.Now())
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
}
