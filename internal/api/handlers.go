package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/arthlor/yeser-api/internal/error_values"
	"github.com/arthlor/yeser-api/internal/service"
	"github.com/arthlor/yeser-api/pkg/entity"
	"github.com/arthlor/yeser-api/pkg/httputil"
)

const entryDateLayout = "2006-01-02"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Locale   string `json:"locale"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateEntryRequest struct {
	Content   string `json:"content"`
	EntryDate string `json:"entry_date"`
}

type UpdateLocaleRequest struct {
	Locale string `json:"locale"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type GetEntriesResponse struct {
	UserID  string          `json:"uid"`
	Page    int             `json:"page"`
	Limit   int             `json:"limit"`
	Entries []*entity.Entry `json:"entries"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Locale:   req.Locale,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such email already exists", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such email doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid email or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) CreateEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("creating entry error: no uid in context")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed", nil)
		return
	}
	var req CreateEntryRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("creating entry error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	var entryDate time.Time
	if req.EntryDate != "" {
		entryDate, err = time.Parse(entryDateLayout, req.EntryDate)
		if err != nil {
			logger.Error("creating entry error: invalid entry date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "entry_date must be YYYY-MM-DD", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.entriesService.CreateEntry(ctx, uid, &service.CreateEntryRequest{
		Content:   req.Content,
		EntryDate: entryDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEmptyContent):
			logger.Error("creating entry error: blank content")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "entry content must not be blank", nil)
			return
		case errors.Is(err, errorvalues.ErrEntryDateInFuture):
			logger.Error("creating entry error: future date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "entry date must not be in the future", nil)
			return
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("creating entry error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
			return
		default:
			logger.Error("creating entry error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error creating entry", nil)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("entry created")
}

func (s *Server) GetEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("getting entries error: no uid in context")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed", nil)
		return
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entries, err := s.entriesService.GetUserEntries(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		logger.Error("getting entries error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error getting entries", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetEntriesResponse{
		UserID:  uid.String(),
		Page:    page,
		Limit:   limit,
		Entries: entries,
	})
}

func (s *Server) GetEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("getting entry error: no uid in context")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed", nil)
		return
	}
	entryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("getting entry error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid entry id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.entriesService.GetEntry(ctx, entryID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEntryNotFound):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "entry not found", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("getting entry error: wrong owner")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "entry belongs to another user", nil)
			return
		default:
			logger.Error("getting entry error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error getting entry", nil)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
}

func (s *Server) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("deleting entry error: no uid in context")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed", nil)
		return
	}
	entryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("deleting entry error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid entry id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.entriesService.DeleteEntry(ctx, entryID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEntryNotFound):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "entry not found", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("deleting entry error: wrong owner")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "entry belongs to another user", nil)
			return
		default:
			logger.Error("deleting entry error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error deleting entry", nil)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("entry deleted")
}

func (s *Server) GetStreakStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("getting streak status error: no uid in context")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	status, err := s.streakService.GetStatus(ctx, uid, GetLocaleFromContext(r), time.Now())
	if err != nil {
		logger.Error("getting streak status error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error getting streak status", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, status)
}

func (s *Server) GetMilestoneProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("getting milestones error: no uid in context")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	progress, err := s.streakService.GetMilestoneProgress(ctx, uid, GetLocaleFromContext(r))
	if err != nil {
		logger.Error("getting milestones error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error getting milestones", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
}

func (s *Server) GetCategoryProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("getting category progress error: no uid in context")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	progress, err := s.streakService.GetCategoryProgress(ctx, uid, GetLocaleFromContext(r))
	if err != nil {
		logger.Error("getting category progress error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error getting category progress", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, progress)
}

func (s *Server) ExportJournal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("exporting error: no uid in context")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	document, err := s.exportService.BuildJSON(ctx, uid, GetLocaleFromContext(r), time.Now())
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
			return
		}
		logger.Error("exporting error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error building export", nil)
		return
	}
	httputil.WriteAttachment(w, "yeser-journal.json", document)
	logger.Info("journal exported")
}

func (s *Server) UpdateLocale(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("updating locale error: no uid in context")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed", nil)
		return
	}
	var req UpdateLocaleRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("updating locale error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.userService.UpdateLocale(ctx, uid, req.Locale)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
			return
		}
		logger.Error("updating locale error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unsupported locale", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"locale": req.Locale,
	})
	logger.Info("locale updated")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("deleting account error: no uid in context")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed", nil)
		return
	}
	var req DeleteAccountRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("deleting account error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.userService.DeleteAccount(ctx, uid, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("deleting account error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "wrong password", nil)
			return
		default:
			logger.Error("deleting account error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error deleting account", nil)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("account deleted")
}
