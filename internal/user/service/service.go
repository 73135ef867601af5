// Package service orchestrates the user registry: field validation, birth
// number normalization, uniqueness, removal, and the projection of stored
// users into views with derived age.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"user-registry/internal/sentinel"
	usermetrics "user-registry/internal/user/metrics"
	"user-registry/internal/user/models"
	"user-registry/internal/user/tracer"
	"user-registry/pkg/domain"
	dErrors "user-registry/pkg/domain-errors"
	"user-registry/pkg/requestcontext"
)

// Service coordinates user registry operations over a single store seam.
type Service struct {
	users   UserStore
	logger  *slog.Logger
	metrics *usermetrics.Metrics
	tracer  tracer.Tracer
}

// AddUserCommand carries the candidate user fields as received from the boundary.
type AddUserCommand struct {
	FirstName   string
	LastName    string
	BirthNumber string
}

// New creates a user service backed by the given store.
func New(users UserStore, opts ...Option) (*Service, error) {
	if users == nil {
		return nil, errors.New("user store is required")
	}
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	t := cfg.tracer
	if t == nil {
		t = tracer.NewNoop()
	}
	return &Service{
		users:   users,
		logger:  cfg.logger,
		metrics: cfg.metrics,
		tracer:  t,
	}, nil
}

// AddUser validates the candidate, normalizes the birth number to its
// canonical form, and stores it if no live user holds the same birth number.
func (s *Service) AddUser(ctx context.Context, cmd *AddUserCommand) (err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanAddUser)
	defer func() { span.End(err) }()

	if isBlank(cmd.FirstName) || isBlank(cmd.LastName) || isBlank(cmd.BirthNumber) {
		return dErrors.New(dErrors.CodeMissingData, "First name and last name are required")
	}

	bn, err := domain.ParseBirthNumber(cmd.BirthNumber)
	if err != nil {
		s.incrementInvalidBirthNumbers()
		return err
	}
	canonical := bn.Canonical()
	span.SetAttributes(tracer.String(tracer.AttrBirthNumberHash, tracer.HashBirthNumber(canonical)))

	user := &models.User{
		FirstName:   cmd.FirstName,
		LastName:    cmd.LastName,
		BirthNumber: canonical,
	}

	id, err := s.users.InsertIfBirthNumberAvailable(ctx, user)
	if err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			s.incrementDuplicatesRejected()
			return dErrors.New(dErrors.CodeConflict, "User with this Birth Number already exists.")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to add user")
	}
	span.SetAttributes(tracer.Int64(tracer.AttrUserID, int64(id)))

	s.logInfo(ctx, "user added",
		"user_id", id,
		"birth_number_hash", tracer.HashBirthNumber(canonical),
	)
	s.incrementUsersCreated()
	return nil
}

// RemoveUser deletes the user identified by the raw id string.
func (s *Service) RemoveUser(ctx context.Context, rawID string) (err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanRemoveUser)
	defer func() { span.End(err) }()

	id, convErr := strconv.Atoi(rawID)
	if convErr != nil {
		return dErrors.New(dErrors.CodeBadRequest, "The userId is invalid.")
	}
	span.SetAttributes(tracer.Int64(tracer.AttrUserID, int64(id)))

	if err := s.users.Remove(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("User with id %d does not exists", id))
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove user")
	}

	s.logInfo(ctx, "user removed", "user_id", id)
	s.incrementUsersRemoved()
	return nil
}

// GetAllUsers projects every stored user through the age calculator using the
// request-scoped time as "today". Results are ordered by id, i.e. insertion
// order.
func (s *Service) GetAllUsers(ctx context.Context) (views []models.UserView, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanListUsers)
	defer func() { span.End(err) }()

	all, err := s.users.All(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list users")
	}

	views, err = s.project(ctx, all)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(tracer.Int64(tracer.AttrResultCount, int64(len(views))))
	return views, nil
}

// FindUsers returns the views of every stored user matching all present
// criteria; absent criteria impose no constraint.
func (s *Service) FindUsers(ctx context.Context, criteria models.SearchCriteria) (views []models.UserView, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanFindUsers)
	defer func() { span.End(err) }()
	start := time.Now()

	all, err := s.users.All(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search users")
	}

	matched := make(map[int]*models.User, len(all))
	for id, u := range all {
		if criteria.Matches(u) {
			matched[id] = u
		}
	}

	views, err = s.project(ctx, matched)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(tracer.Int64(tracer.AttrResultCount, int64(len(views))))
	s.observeSearch(start)
	return views, nil
}

// project converts stored users into output views with derived age.
func (s *Service) project(ctx context.Context, users map[int]*models.User) ([]models.UserView, error) {
	today := requestcontext.Now(ctx)
	views := make([]models.UserView, 0, len(users))
	ids := make([]int, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		u := users[id]
		bn, err := domain.ParseBirthNumber(u.BirthNumber)
		if err != nil {
			// Stored birth numbers are canonical by construction; a failure
			// here means the store invariant was broken.
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "stored birth number is malformed")
		}
		views = append(views, models.UserView{
			ID:          id,
			BirthNumber: u.BirthNumber,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			Age:         domain.Age(bn, today),
		})
	}
	return views, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (s *Service) logInfo(ctx context.Context, msg string, args ...any) {
	if s.logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		args = append(args, "request_id", requestID)
	}
	if device := requestcontext.Device(ctx); device != "" {
		args = append(args, "device", device)
	}
	s.logger.InfoContext(ctx, msg, args...)
}

func (s *Service) incrementUsersCreated() {
	if s.metrics != nil {
		s.metrics.IncrementUsersCreated()
	}
}

func (s *Service) incrementUsersRemoved() {
	if s.metrics != nil {
		s.metrics.IncrementUsersRemoved()
	}
}

func (s *Service) incrementDuplicatesRejected() {
	if s.metrics != nil {
		s.metrics.IncrementDuplicatesRejected()
	}
}

func (s *Service) incrementInvalidBirthNumbers() {
	if s.metrics != nil {
		s.metrics.IncrementInvalidBirthNumbers()
	}
}

func (s *Service) observeSearch(start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveSearch(start)
	}
}
