//go:build unit

package commands_test

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/usecase/shared"
	sharedmock "shareit/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// uowSuite runs every Within callback against mocked transaction ports.
type uowSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	bookings     *sharedmock.MockBookingRepository
	items        *sharedmock.MockItemRepository
	users        *sharedmock.MockUserRepository
	comments     *sharedmock.MockCommentRepository
	itemRequests *sharedmock.MockItemRequestRepository
}

func (s *uowSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.bookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.items = sharedmock.NewMockItemRepository(s.ctrl)
	s.users = sharedmock.NewMockUserRepository(s.ctrl)
	s.comments = sharedmock.NewMockCommentRepository(s.ctrl)
	s.itemRequests = sharedmock.NewMockItemRequestRepository(s.ctrl)

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()

	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()
	s.tx.EXPECT().Items().Return(s.items).AnyTimes()
	s.tx.EXPECT().Users().Return(s.users).AnyTimes()
	s.tx.EXPECT().Comments().Return(s.comments).AnyTimes()
	s.tx.EXPECT().ItemRequests().Return(s.itemRequests).AnyTimes()
}

func (s *uowSuite) TearDownTest() {
	s.ctrl.Finish()
}

func notFound() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows, infra.KindNotFound)
}

func duplicate() error {
	return infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23505"})
}

func fkViolation() error {
	return infra.WrapRepoErr("delete", &pgconn.PgError{Code: "23503"})
}
