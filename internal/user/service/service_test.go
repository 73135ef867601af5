package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"user-registry/internal/sentinel"
	"user-registry/internal/user/models"
	"user-registry/internal/user/service/mocks"
	"user-registry/internal/user/store"
	dErrors "user-registry/pkg/domain-errors"
	"user-registry/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *mocks.MockUserStore
	service   *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = mocks.NewMockUserStore(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := New(s.mockStore, WithLogger(logger))
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) TestNew() {
	s.Run("nil store returns error", func() {
		_, err := New(nil)
		s.Error(err)
		s.Contains(err.Error(), "user store is required")
	})

	s.Run("valid store returns configured service", func() {
		svc, err := New(s.mockStore)
		s.NoError(err)
		s.NotNil(svc)
	})
}

func (s *ServiceSuite) TestAddUser() {
	ctx := context.Background()

	s.Run("valid candidate is stored in canonical form", func() {
		s.mockStore.EXPECT().
			InsertIfBirthNumberAvailable(gomock.Any(), &models.User{
				FirstName:   "Jim",
				LastName:    "Halpert",
				BirthNumber: "820101/1234",
			}).
			Return(0, nil)

		err := s.service.AddUser(ctx, &AddUserCommand{
			FirstName:   "Jim",
			LastName:    "Halpert",
			BirthNumber: "8201011234", // no separator on input
		})
		s.NoError(err)
	})

	s.Run("blank fields rejected before any store call", func() {
		err := s.service.AddUser(ctx, &AddUserCommand{
			FirstName:   "",
			LastName:    "  ",
			BirthNumber: "820101/1234",
		})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeMissingData))
		s.Equal("First name and last name are required", err.Error())
	})

	s.Run("invalid birth number rejected before any store call", func() {
		err := s.service.AddUser(ctx, &AddUserCommand{
			FirstName:   "Michael",
			LastName:    "Scott",
			BirthNumber: "invalidBirthNumber",
		})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidBirthNumber))
		s.Equal("The Birth Number is invalid.", err.Error())
	})

	s.Run("duplicate birth number maps to conflict", func() {
		s.mockStore.EXPECT().
			InsertIfBirthNumberAvailable(gomock.Any(), gomock.Any()).
			Return(0, sentinel.ErrAlreadyUsed)

		err := s.service.AddUser(ctx, &AddUserCommand{
			FirstName:   "Pam",
			LastName:    "Beesly",
			BirthNumber: "830202/2345",
		})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
		s.Equal("User with this Birth Number already exists.", err.Error())
	})

	s.Run("store failure maps to internal", func() {
		s.mockStore.EXPECT().
			InsertIfBirthNumberAvailable(gomock.Any(), gomock.Any()).
			Return(0, errors.New("boom"))

		err := s.service.AddUser(ctx, &AddUserCommand{
			FirstName:   "Pam",
			LastName:    "Beesly",
			BirthNumber: "830202/2345",
		})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *ServiceSuite) TestRemoveUser() {
	ctx := context.Background()

	s.Run("existing id is removed", func() {
		s.mockStore.EXPECT().Remove(gomock.Any(), 1).Return(nil)

		s.NoError(s.service.RemoveUser(ctx, "1"))
	})

	s.Run("unknown id maps to not found", func() {
		s.mockStore.EXPECT().Remove(gomock.Any(), 2).Return(sentinel.ErrNotFound)

		err := s.service.RemoveUser(ctx, "2")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Equal("User with id 2 does not exists", err.Error())
	})

	s.Run("unparseable id rejected before any store call", func() {
		err := s.service.RemoveUser(ctx, "invalid")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
		s.Equal("The userId is invalid.", err.Error())
	})
}

func (s *ServiceSuite) TestGetAllUsers() {
	ctx := requestcontext.WithTime(context.Background(), time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))

	s.Run("projects stored users with derived age", func() {
		s.mockStore.EXPECT().All(gomock.Any()).Return(map[int]*models.User{
			1: {FirstName: "Dwight", LastName: "Schrute", BirthNumber: "840303/3456"},
		}, nil)

		views, err := s.service.GetAllUsers(ctx)
		s.Require().NoError(err)
		s.Require().Len(views, 1)
		s.Equal(1, views[0].ID)
		s.Equal("Dwight", views[0].FirstName)
		s.Equal(39, views[0].Age)
	})

	s.Run("empty store yields empty list", func() {
		s.mockStore.EXPECT().All(gomock.Any()).Return(map[int]*models.User{}, nil)

		views, err := s.service.GetAllUsers(ctx)
		s.Require().NoError(err)
		s.Empty(views)
	})
}

// The filter and projection behaviors below run against the real in-memory
// store; mock choreography would restate the implementation.

func newPopulatedService(t *testing.T) *Service {
	t.Helper()
	st := store.NewInMemory()
	svc, err := New(st)
	if err != nil {
		t.Fatalf("unexpected error creating service: %v", err)
	}
	ctx := context.Background()
	users := []*AddUserCommand{
		{FirstName: "Jim", LastName: "Halpert", BirthNumber: "820101/1234"},
		{FirstName: "Pam", LastName: "Beesly", BirthNumber: "835202/2345"},
		{FirstName: "Jim", LastName: "Carrey", BirthNumber: "620117/4321"},
	}
	for _, u := range users {
		if err := svc.AddUser(ctx, u); err != nil {
			t.Fatalf("unexpected error adding user: %v", err)
		}
	}
	return svc
}

func strPtr(s string) *string { return &s }

func TestFindUsers(t *testing.T) {
	fixed := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), fixed)

	t.Run("all criteria absent returns full set in insertion order", func(t *testing.T) {
		svc := newPopulatedService(t)
		views, err := svc.FindUsers(ctx, models.SearchCriteria{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 3 {
			t.Fatalf("expected 3 users, got %d", len(views))
		}
		for i, v := range views {
			if v.ID != i {
				t.Fatalf("expected insertion order, got id %d at position %d", v.ID, i)
			}
		}
	})

	t.Run("single criterion filters conjunctively", func(t *testing.T) {
		svc := newPopulatedService(t)
		views, err := svc.FindUsers(ctx, models.SearchCriteria{FirstName: strPtr("Jim")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 2 {
			t.Fatalf("expected 2 users named Jim, got %d", len(views))
		}
	})

	t.Run("all criteria present requires exact match on each", func(t *testing.T) {
		svc := newPopulatedService(t)
		views, err := svc.FindUsers(ctx, models.SearchCriteria{
			FirstName:   strPtr("Jim"),
			LastName:    strPtr("Halpert"),
			BirthNumber: strPtr("820101/1234"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 1 {
			t.Fatalf("expected exactly one match, got %d", len(views))
		}
		if views[0].Age != 42 {
			t.Fatalf("expected age 42 at fixed date, got %d", views[0].Age)
		}
	})

	t.Run("no match yields empty list", func(t *testing.T) {
		svc := newPopulatedService(t)
		views, err := svc.FindUsers(ctx, models.SearchCriteria{FirstName: strPtr("Stanley")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 0 {
			t.Fatalf("expected no matches, got %d", len(views))
		}
	})
}

func TestAddUser_DuplicateAgainstStore(t *testing.T) {
	svc := newPopulatedService(t)
	ctx := context.Background()

	// Same birth number, different names: still a duplicate.
	err := svc.AddUser(ctx, &AddUserCommand{
		FirstName:   "Dwight",
		LastName:    "Schrute",
		BirthNumber: "8201011234",
	})
	if !dErrors.HasCode(err, dErrors.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRemoveUser_TwiceAgainstStore(t *testing.T) {
	svc := newPopulatedService(t)
	ctx := context.Background()

	if err := svc.RemoveUser(ctx, "0"); err != nil {
		t.Fatalf("unexpected error removing user: %v", err)
	}
	err := svc.RemoveUser(ctx, "0")
	if !dErrors.HasCode(err, dErrors.CodeNotFound) {
		t.Fatalf("expected not found on second removal, got %v", err)
	}
}
