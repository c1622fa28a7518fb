//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"meeting-room-reservation/internal/domain/reservation"
	"meeting-room-reservation/internal/domain/user"
	"meeting-room-reservation/internal/infra"
	"meeting-room-reservation/internal/infra/cache"
	"meeting-room-reservation/internal/usecase/queries"
	"meeting-room-reservation/tests/common/builder"
	queriesmock "meeting-room-reservation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	store    *queriesmock.MockReservationReadStore
	rooms    *queriesmock.MockRoomReadStore
	cache    *queriesmock.MockStatsCache
	recorder *queriesmock.MockStatsRecorder
	q        queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockReservationReadStore(s.mockCtrl)
	s.rooms = queriesmock.NewMockRoomReadStore(s.mockCtrl)
	s.cache = queriesmock.NewMockStatsCache(s.mockCtrl)
	s.recorder = queriesmock.NewMockStatsRecorder(s.mockCtrl)
	s.q = queries.NewReservationQueries(s.store, s.rooms, s.cache, s.recorder)
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func mustDate(s string) reservation.Date {
	d, err := reservation.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (s *ReservationQueriesTestSuite) TestGetByID() {
	owner := uuid.New()
	view := builder.NewReservationBuilder().WithRequestedBy(owner).BuildView()

	cases := []struct {
		name    string
		actor   uuid.UUID
		role    user.Role
		wantErr error
	}{
		{name: "owner sees own reservation", actor: owner, role: user.RoleUser},
		{name: "officer sees any reservation", actor: uuid.New(), role: user.RoleOfficer},
		{name: "other requester gets not found", actor: uuid.New(), role: user.RoleUser, wantErr: queries.ErrReservationNotFound},
		{name: "executive cannot browse others", actor: uuid.New(), role: user.RoleExecutive, wantErr: queries.ErrReservationNotFound},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

			got, err := s.q.GetByID(s.ctx, tc.actor, tc.role, view.ID)
			if tc.wantErr != nil {
				s.ErrorIs(err, tc.wantErr)
				s.Nil(got)
				return
			}
			s.Require().NoError(err)
			s.Equal(view, got)
		})
	}

	s.Run("missing reservation", func() {
		id := uuid.New()
		s.store.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := s.q.GetByIDSystem(s.ctx, id)
		s.ErrorIs(err, queries.ErrReservationNotFound)
	})
}

func (s *ReservationQueriesTestSuite) TestListMine() {
	userID := uuid.New()
	base := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	items := make([]*queries.ReservationListItem, 3)
	for i := range items {
		items[i] = builder.NewReservationBuilder().BuildListItem()
		items[i].CreatedAt = base.Add(-time.Duration(i) * time.Hour)
	}

	s.Run("first page returns a cursor when more rows exist", func() {
		s.store.EXPECT().FindByRequesterFirstPage(gomock.Any(), userID, int32(3)).Return(items, nil)

		got, next, err := s.q.ListMine(s.ctx, userID, nil, 2)
		s.Require().NoError(err)
		s.Len(got, 2)
		s.Require().NotNil(next)

		ts, id, err := queries.DecodeAfterCursor(next.After)
		s.Require().NoError(err)
		s.Equal(items[1].ID, id)
		s.True(items[1].CreatedAt.Equal(ts))
	})

	s.Run("last page has no cursor", func() {
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(items[1].CreatedAt, items[1].ID)}
		s.store.EXPECT().FindByRequesterKeyset(gomock.Any(), userID, gomock.Any(), items[1].ID, int32(3)).
			Return(items[2:], nil)

		got, next, err := s.q.ListMine(s.ctx, userID, cursor, 2)
		s.Require().NoError(err)
		s.Len(got, 1)
		s.Nil(next)
	})

	s.Run("limit defaults and caps", func() {
		s.store.EXPECT().FindByRequesterFirstPage(gomock.Any(), userID, int32(queries.DefaultListLimit+1)).Return(nil, nil)
		_, _, err := s.q.ListMine(s.ctx, userID, nil, 0)
		s.NoError(err)

		s.store.EXPECT().FindByRequesterFirstPage(gomock.Any(), userID, int32(queries.MaxListLimit+1)).Return(nil, nil)
		_, _, err = s.q.ListMine(s.ctx, userID, nil, 10_000)
		s.NoError(err)
	})

	s.Run("malformed cursor", func() {
		_, _, err := s.q.ListMine(s.ctx, userID, &queries.Cursor{After: "not-a-cursor"}, 10)
		s.ErrorIs(err, queries.ErrInvalidCursor)
	})
}

func (s *ReservationQueriesTestSuite) TestRoomSchedule() {
	roomID := uuid.New()

	s.Run("returns entries for an existing room", func() {
		entries := []*queries.ScheduleEntry{{ReservationID: uuid.New(), Status: "approved"}}
		s.rooms.EXPECT().FindByID(gomock.Any(), roomID).Return(builder.NewRoomBuilder().WithID(roomID).BuildView(), nil)
		s.store.EXPECT().RoomSchedule(gomock.Any(), roomID, mustDate("2025-08-01"), mustDate("2025-08-31")).Return(entries, nil)

		got, err := s.q.RoomSchedule(s.ctx, roomID, mustDate("2025-08-01"), mustDate("2025-08-31"))
		s.Require().NoError(err)
		s.Equal(entries, got)
	})

	s.Run("unknown room", func() {
		s.rooms.EXPECT().FindByID(gomock.Any(), roomID).Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

		_, err := s.q.RoomSchedule(s.ctx, roomID, mustDate("2025-08-01"), mustDate("2025-08-02"))
		s.ErrorIs(err, queries.ErrRoomNotFound)
	})

	s.Run("inverted window", func() {
		_, err := s.q.RoomSchedule(s.ctx, roomID, mustDate("2025-08-02"), mustDate("2025-08-01"))
		s.ErrorIs(err, reservation.ErrInvalidDateRange)
	})

	s.Run("window too large", func() {
		from := mustDate("2025-01-01")
		_, err := s.q.RoomSchedule(s.ctx, roomID, from, from.AddDays(queries.MaxScheduleDays))
		s.ErrorIs(err, queries.ErrScheduleWindow)
	})
}

func (s *ReservationQueriesTestSuite) TestStats() {
	roomID := uuid.New()
	filter := queries.StatsFilter{RoomID: &roomID}

	s.Run("cache hit skips the store", func() {
		s.cache.EXPECT().Get(gomock.Any(), filter.CacheKey()).Return(reservation.Stats{Total: 2, Approved: 2}, nil)
		s.recorder.EXPECT().ObserveStatsCache(true)

		got, err := s.q.Stats(s.ctx, filter)
		s.Require().NoError(err)
		s.Equal(&queries.StatsView{Total: 2, Approved: 2}, got)
	})

	s.Run("cache miss counts and populates the cache", func() {
		counted := reservation.AggregateCounts([]reservation.StatusCount{
			{Status: "pending", Count: 2},
			{Status: "อนุมัติ", Count: 1},
			{Status: "archived", Count: 1},
		})
		s.cache.EXPECT().Get(gomock.Any(), filter.CacheKey()).Return(reservation.Stats{}, cache.ErrCacheMiss)
		s.recorder.EXPECT().ObserveStatsCache(false)
		s.store.EXPECT().CountByStatus(gomock.Any(), filter).Return(counted, nil)
		s.recorder.EXPECT().ObserveUnrecognizedStatuses(1)
		s.cache.EXPECT().Set(gomock.Any(), filter.CacheKey(), counted).Return(nil)

		got, err := s.q.Stats(s.ctx, filter)
		s.Require().NoError(err)
		s.Equal(&queries.StatsView{Total: 4, Pending: 2, Approved: 1, Unrecognized: 1}, got)
	})

	s.Run("cache outage falls back to the store", func() {
		s.cache.EXPECT().Get(gomock.Any(), filter.CacheKey()).Return(reservation.Stats{}, errors.New("dial tcp: connection refused"))
		s.recorder.EXPECT().ObserveStatsCache(false)
		s.store.EXPECT().CountByStatus(gomock.Any(), filter).Return(reservation.Stats{Total: 1, Rejected: 1}, nil)
		s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("dial tcp: connection refused"))

		got, err := s.q.Stats(s.ctx, filter)
		s.Require().NoError(err)
		s.Equal(1, got.Rejected)
	})

	s.Run("inverted date range", func() {
		from, to := mustDate("2025-08-10"), mustDate("2025-08-01")
		_, err := s.q.Stats(s.ctx, queries.StatsFilter{From: &from, To: &to})
		s.ErrorIs(err, reservation.ErrInvalidDateRange)
	})
}
