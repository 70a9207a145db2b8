package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthlor/yeser-api/internal/api"
	errorvalues "github.com/arthlor/yeser-api/internal/error_values"
	"github.com/arthlor/yeser-api/internal/service"
	"github.com/arthlor/yeser-api/internal/service/mocks"
	"github.com/arthlor/yeser-api/pkg/entity"
	jwtservice "github.com/arthlor/yeser-api/pkg/jwt_service"
)

var (
	userID = uuid.New()
	email  = "test@example.com"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func authedRequest(method, target string, body *bytes.Reader) *http.Request {
	var r *http.Request
	if body == nil {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, body)
	}
	ctx := context.WithValue(r.Context(), "User-ID", userID)
	ctx = context.WithValue(ctx, "Locale", "en")
	return r.WithContext(ctx)
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Email:    email,
		Password: "test_password",
	})
	if err != nil {
		t.Fatal(err)
	}
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         *bytes.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&entity.User{
					ID:    userID,
					Email: email,
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserExists)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", tc.Body)
		serv.Register(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwtservice.New("test_secret"),
	})
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Email:    email,
		Password: "test_password",
	})
	if err != nil {
		t.Fatal(err)
	}
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         *bytes.Reader
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), email, "test_password").Return(&entity.User{
					ID:    userID,
					Email: email,
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), email, "test_password").Return(nil, errorvalues.ErrUserNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), email, "test_password").Return(nil, errorvalues.ErrWrongCredentials)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", tc.Body)
		serv.Login(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if rr.Result().StatusCode == http.StatusOK {
			var resp map[string]any
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
			assert.NotEmpty(t, resp["token"])
		}
	}
}

func TestCreateEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	eService := mocks.NewMockEntriesServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		EntriesService: eService,
	})
	content := "grateful for my family"
	body, err := sonic.ConfigDefault.Marshal(api.CreateEntryRequest{
		Content: content,
	})
	if err != nil {
		t.Fatal(err)
	}
	entryID := uuid.New()
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         *bytes.Reader
		SkipAuth     bool
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				eService.EXPECT().CreateEntry(gomock.Any(), userID, &service.CreateEntryRequest{
					Content: content,
				}).Return(&entity.Entry{
					ID:      entryID,
					UserID:  userID,
					Content: content,
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				eService.EXPECT().CreateEntry(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrEmptyContent)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				eService.EXPECT().CreateEntry(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrEntryDateInFuture)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				eService.EXPECT().CreateEntry(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrUserNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				eService.EXPECT().CreateEntry(gomock.Any(), userID, gomock.Any()).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
		{
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader(body),
			SkipAuth:     true,
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		var r *http.Request
		if tc.SkipAuth {
			r = httptest.NewRequest(http.MethodPost, "/api/v1/entries", tc.Body)
		} else {
			r = authedRequest(http.MethodPost, "/api/v1/entries", tc.Body)
		}
		serv.CreateEntry(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestCreateEntryHandlerBadDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	eService := mocks.NewMockEntriesServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		EntriesService: eService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.CreateEntryRequest{
		Content:   "grateful",
		EntryDate: "15-03-2024",
	})
	if err != nil {
		t.Fatal(err)
	}
	rr := httptest.NewRecorder()
	serv.CreateEntry(rr, authedRequest(http.MethodPost, "/api/v1/entries", bytes.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
}

func TestGetEntriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	eService := mocks.NewMockEntriesServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		EntriesService: eService,
	})
	entries := make([]*entity.Entry, 0, 10)
	for i := range 10 {
		entries = append(entries, &entity.Entry{
			ID:        uuid.New(),
			UserID:    userID,
			Content:   "entry " + strconv.Itoa(i+1),
			EntryDate: time.Now().AddDate(0, 0, -i),
		})
	}
	testCases := []struct {
		ExpectedCode         int
		MockPrepFunc         func()
		Page                 string
		Limit                string
		ExpectedEntriesCount int
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				eService.EXPECT().GetUserEntries(gomock.Any(), userID, service.PaginationOpts{
					Limit:  10,
					Offset: 0,
				}).Return(entries, nil)
			},
			Page:                 "1",
			Limit:                "10",
			ExpectedEntriesCount: 10,
		},
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				eService.EXPECT().GetUserEntries(gomock.Any(), userID, service.PaginationOpts{
					Limit:  4,
					Offset: 4,
				}).Return(entries[4:8], nil)
			},
			Page:                 "2",
			Limit:                "4",
			ExpectedEntriesCount: 4,
		},
		{
			// Out-of-range values fall back to page 1 / limit 20
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				eService.EXPECT().GetUserEntries(gomock.Any(), userID, service.PaginationOpts{
					Limit:  20,
					Offset: 0,
				}).Return(entries, nil)
			},
			Page:                 "-3",
			Limit:                "500",
			ExpectedEntriesCount: 10,
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				eService.EXPECT().GetUserEntries(gomock.Any(), userID, gomock.Any()).Return(nil, errors.New("service error"))
			},
			Page:  "1",
			Limit: "10",
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodGet, "/api/v1/entries", nil)
		q := r.URL.Query()
		q.Add("page", tc.Page)
		q.Add("limit", tc.Limit)
		r.URL.RawQuery = q.Encode()
		serv.GetEntries(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if rr.Result().StatusCode == http.StatusOK {
			var resp api.GetEntriesResponse
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tc.ExpectedEntriesCount, len(resp.Entries))
		}
	}
}

func TestGetEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	eService := mocks.NewMockEntriesServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		EntriesService: eService,
	})
	entryID := uuid.New()
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				eService.EXPECT().GetEntry(gomock.Any(), entryID, userID).Return(&entity.Entry{
					ID:     entryID,
					UserID: userID,
				}, nil)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				eService.EXPECT().GetEntry(gomock.Any(), entryID, userID).Return(nil, errorvalues.ErrEntryNotFound)
			},
		},
		{
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				eService.EXPECT().GetEntry(gomock.Any(), entryID, userID).Return(nil, errorvalues.ErrWrongOwner)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				eService.EXPECT().GetEntry(gomock.Any(), entryID, userID).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodGet, "/api/v1/entries/"+entryID.String(), nil)
		r.SetPathValue("id", entryID.String())
		serv.GetEntry(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
	t.Run("invalid id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodGet, "/api/v1/entries/garbage", nil)
		r.SetPathValue("id", "garbage")
		serv.GetEntry(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestDeleteEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	eService := mocks.NewMockEntriesServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		EntriesService: eService,
	})
	entryID := uuid.New()
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				eService.EXPECT().DeleteEntry(gomock.Any(), entryID, userID).Return(nil)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				eService.EXPECT().DeleteEntry(gomock.Any(), entryID, userID).Return(errorvalues.ErrEntryNotFound)
			},
		},
		{
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				eService.EXPECT().DeleteEntry(gomock.Any(), entryID, userID).Return(errorvalues.ErrWrongOwner)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				eService.EXPECT().DeleteEntry(gomock.Any(), entryID, userID).Return(errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodDelete, "/api/v1/entries/"+entryID.String(), nil)
		r.SetPathValue("id", entryID.String())
		serv.DeleteEntry(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestGetStreakStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockStreakServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		StreakService: sService,
	})
	t.Run("success", func(t *testing.T) {
		sService.EXPECT().GetStatus(gomock.Any(), userID, "en", gomock.Any()).Return(entity.StreakStatus{
			State:          entity.StreakGracePeriod,
			DaysUntilRisk:  0,
			StatusMessage:  "Your 3 day streak is waiting!",
			CanExtendToday: true,
		}, nil)
		rr := httptest.NewRecorder()
		serv.GetStreakStatus(rr, authedRequest(http.MethodGet, "/api/v1/streak/status", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp entity.StreakStatus
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, entity.StreakGracePeriod, resp.State)
		assert.True(t, resp.CanExtendToday)
	})
	t.Run("service error", func(t *testing.T) {
		sService.EXPECT().GetStatus(gomock.Any(), userID, "en", gomock.Any()).Return(entity.StreakStatus{}, errors.New("service error"))
		rr := httptest.NewRecorder()
		serv.GetStreakStatus(rr, authedRequest(http.MethodGet, "/api/v1/streak/status", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.GetStreakStatus(rr, httptest.NewRequest(http.MethodGet, "/api/v1/streak/status", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestGetMilestoneProgressHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockStreakServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		StreakService: sService,
	})
	t.Run("success", func(t *testing.T) {
		sService.EXPECT().GetMilestoneProgress(gomock.Any(), userID, "en").Return(entity.MilestoneProgress{
			CurrentMilestone: entity.Milestone{ID: "week-warrior"},
			DaysToNext:       7,
		}, nil)
		rr := httptest.NewRecorder()
		serv.GetMilestoneProgress(rr, authedRequest(http.MethodGet, "/api/v1/streak/milestones", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp entity.MilestoneProgress
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "week-warrior", resp.CurrentMilestone.ID)
	})
	t.Run("service error", func(t *testing.T) {
		sService.EXPECT().GetMilestoneProgress(gomock.Any(), userID, "en").Return(entity.MilestoneProgress{}, errors.New("service error"))
		rr := httptest.NewRecorder()
		serv.GetMilestoneProgress(rr, authedRequest(http.MethodGet, "/api/v1/streak/milestones", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestGetCategoryProgressHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockStreakServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		StreakService: sService,
	})
	sService.EXPECT().GetCategoryProgress(gomock.Any(), userID, "en").Return([]entity.CategoryProgress{
		{Category: entity.CategoryBeginner, Total: 2, Unlocked: 2, Percentage: 100},
	}, nil)
	rr := httptest.NewRecorder()
	serv.GetCategoryProgress(rr, authedRequest(http.MethodGet, "/api/v1/streak/categories", nil))
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
}

func TestExportJournalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	eService := mocks.NewMockExportServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ExportService: eService,
	})
	t.Run("success", func(t *testing.T) {
		eService.EXPECT().BuildJSON(gomock.Any(), userID, "en", gomock.Any()).Return([]byte(`{"email":"test@example.com"}`), nil)
		rr := httptest.NewRecorder()
		serv.ExportJournal(rr, authedRequest(http.MethodGet, "/api/v1/export", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Contains(t, rr.Result().Header.Get("Content-Disposition"), "yeser-journal.json")
	})
	t.Run("user not found", func(t *testing.T) {
		eService.EXPECT().BuildJSON(gomock.Any(), userID, "en", gomock.Any()).Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		serv.ExportJournal(rr, authedRequest(http.MethodGet, "/api/v1/export", nil))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestUpdateLocaleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.UpdateLocaleRequest{Locale: "tr"})
	if err != nil {
		t.Fatal(err)
	}
	t.Run("success", func(t *testing.T) {
		uService.EXPECT().UpdateLocale(gomock.Any(), userID, "tr").Return(nil)
		rr := httptest.NewRecorder()
		serv.UpdateLocale(rr, authedRequest(http.MethodPut, "/api/v1/me/locale", bytes.NewReader(body)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("unsupported locale", func(t *testing.T) {
		uService.EXPECT().UpdateLocale(gomock.Any(), userID, "tr").Return(errors.New("unsupported locale: xx"))
		rr := httptest.NewRecorder()
		serv.UpdateLocale(rr, authedRequest(http.MethodPut, "/api/v1/me/locale", bytes.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("user not found", func(t *testing.T) {
		uService.EXPECT().UpdateLocale(gomock.Any(), userID, "tr").Return(errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		serv.UpdateLocale(rr, authedRequest(http.MethodPut, "/api/v1/me/locale", bytes.NewReader(body)))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestDeleteAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.DeleteAccountRequest{Password: "test_password"})
	if err != nil {
		t.Fatal(err)
	}
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				uService.EXPECT().DeleteAccount(gomock.Any(), userID, "test_password").Return(nil)
			},
		},
		{
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				uService.EXPECT().DeleteAccount(gomock.Any(), userID, "test_password").Return(errorvalues.ErrWrongCredentials)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				uService.EXPECT().DeleteAccount(gomock.Any(), userID, "test_password").Return(errorvalues.ErrUserNotFound)
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		serv.DeleteAccount(rr, authedRequest(http.MethodDelete, "/api/v1/me", bytes.NewReader(body)))
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}
