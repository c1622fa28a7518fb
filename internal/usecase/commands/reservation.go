package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"meeting-room-reservation/internal/domain/reservation"
	"meeting-room-reservation/internal/infra"
	"meeting-room-reservation/internal/infra/metrics"
	"meeting-room-reservation/internal/pkg/clock"
	"meeting-room-reservation/internal/pkg/errs"
	"meeting-room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const createEndpoint = "POST /api/reservations"

const (
	opCreate  = "create"
	opEdit    = "edit"
	opApprove = "approve"
	opReject  = "reject"
	opCancel  = "cancel"
)

type CreateReservationResult struct {
	ReservationID uuid.UUID
	IsReplayed    bool
}

// ConflictCheckResult is the outcome of a dry-run check.
type ConflictCheckResult struct {
	Conflicts []reservation.ConflictRecord
}

type ReservationCommands interface {
	Create(ctx context.Context, req reservation.CreateRequest, idempotencyKey *uuid.UUID) (*CreateReservationResult, error)
	Edit(ctx context.Context, id uuid.UUID, changes reservation.EditChanges, actor reservation.Actor) error
	Approve(ctx context.Context, id uuid.UUID, actor reservation.Actor) error
	Reject(ctx context.Context, id uuid.UUID, actor reservation.Actor, reason string) error
	Cancel(ctx context.Context, id uuid.UUID, actor reservation.Actor) error
	CheckConflicts(ctx context.Context, q reservation.ConflictQuery) (*ConflictCheckResult, error)
}

type reservationUseCaseImpl struct {
	uow            shared.UnitOfWork
	validator      *reservation.Validator
	locker         RoomLocker
	stats          StatsInvalidator
	recorder       OpRecorder
	clock          clock.Clock
	idempotencyTTL time.Duration
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	validator *reservation.Validator,
	locker RoomLocker,
	stats StatsInvalidator,
	recorder OpRecorder,
	clk clock.Clock,
	idempotencyTTL time.Duration,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:            uow,
		validator:      validator,
		locker:         locker,
		stats:          stats,
		recorder:       recorder,
		clock:          clk,
		idempotencyTTL: idempotencyTTL,
	}
}

func (uc *reservationUseCaseImpl) Create(ctx context.Context, req reservation.CreateRequest, idempotencyKey *uuid.UUID) (result *CreateReservationResult, err error) {
	defer func() { uc.observe(opCreate, result, err) }()

	if err := uc.validator.CheckDateCount(req.Dates); err != nil {
		return nil, err
	}
	if err := uc.ensureRoomBookable(ctx, req.RoomID); err != nil {
		return nil, err
	}

	release, err := uc.lockRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	defer release()

	requestHash := calculateRequestHash(req)

	result = &CreateReservationResult{}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		*result = CreateReservationResult{}

		if idempotencyKey != nil {
			replayID, derr := uc.claimIdempotencyKey(ctx, tx, *idempotencyKey, req.RequestedBy, requestHash)
			if derr != nil {
				return derr
			}
			if replayID != nil {
				result.ReservationID = *replayID
				result.IsReplayed = true
				return nil
			}
		}

		snapshot, derr := uc.snapshot(ctx, tx, req.RoomID, req.Dates)
		if derr != nil {
			return derr
		}

		res, derr := uc.validator.ValidateAndBuildCreate(req, snapshot)
		if derr != nil {
			return derr
		}

		id, derr := tx.Reservations().Create(ctx, tx.DB(), res)
		if derr != nil {
			return mapWriteErr(derr)
		}

		if derr = uc.enqueue(ctx, tx, shared.EventReservationCreated, res, req.RequestedBy); derr != nil {
			return derr
		}

		if idempotencyKey != nil {
			derr = tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *idempotencyKey, req.RequestedBy, calculateIDHash(id), id)
			if derr != nil {
				return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
			}
		}

		result.ReservationID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.IsReplayed {
		uc.invalidateStats(ctx)
	}
	return result, nil
}

func (uc *reservationUseCaseImpl) Edit(ctx context.Context, id uuid.UUID, changes reservation.EditChanges, actor reservation.Actor) (err error) {
	defer func() { uc.observe(opEdit, nil, err) }()

	current, err := uc.uow.CommandReads().ReservationByID(ctx, id)
	if err != nil {
		return mapReadErr(err)
	}
	if !current.IsOwnedBy(actor.ID) && !actor.Role.CanOverrideCancel() {
		return errs.ErrReservationAccess
	}

	release, err := uc.lockRoom(ctx, current.RoomID())
	if err != nil {
		return err
	}
	defer release()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := tx.Reads().ReservationByID(ctx, id)
		if derr != nil {
			return mapReadErr(derr)
		}

		dates := changes.Dates
		if len(dates) == 0 {
			dates = existing.Dates()
		}
		snapshot, derr := uc.snapshot(ctx, tx, existing.RoomID(), dates)
		if derr != nil {
			return derr
		}

		patch, derr := uc.validator.ValidateEdit(existing, changes, snapshot)
		if derr != nil {
			return derr
		}

		if derr = tx.Reservations().ApplyEdit(ctx, tx.DB(), *patch); derr != nil {
			return mapWriteErr(derr)
		}

		return uc.enqueue(ctx, tx, shared.EventReservationUpdated, existing.WithEditPatch(*patch), actor.ID)
	})
	if err != nil {
		return err
	}

	uc.invalidateStats(ctx)
	return nil
}

func (uc *reservationUseCaseImpl) Approve(ctx context.Context, id uuid.UUID, actor reservation.Actor) (err error) {
	defer func() { uc.observe(opApprove, nil, err) }()

	return uc.transition(ctx, id, reservation.Transition{Event: reservation.EventApprove, Actor: actor}, shared.EventReservationApproved)
}

func (uc *reservationUseCaseImpl) Reject(ctx context.Context, id uuid.UUID, actor reservation.Actor, reason string) (err error) {
	defer func() { uc.observe(opReject, nil, err) }()

	return uc.transition(ctx, id, reservation.Transition{Event: reservation.EventReject, Actor: actor, Reason: reason}, shared.EventReservationRejected)
}

func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID, actor reservation.Actor) (err error) {
	defer func() { uc.observe(opCancel, nil, err) }()

	return uc.transition(ctx, id, reservation.Transition{Event: reservation.EventCancel, Actor: actor}, shared.EventReservationCancelled)
}

func (uc *reservationUseCaseImpl) CheckConflicts(ctx context.Context, q reservation.ConflictQuery) (*ConflictCheckResult, error) {
	if err := uc.validator.CheckDateCount(q.Dates); err != nil {
		return nil, err
	}
	if q.Start >= q.End {
		return nil, reservation.ErrInvalidTimeRange
	}

	snapshot, err := uc.uow.CommandReads().RoomSnapshot(ctx, q.RoomID, reservation.NormalizeDates(q.Dates))
	if err != nil {
		slog.WarnContext(ctx, "conflict check could not read stored reservations",
			"room_id", q.RoomID,
			"error", err,
		)
		return nil, errs.Mark(err, errs.ErrSnapshotUnavailable)
	}

	conflicts, err := reservation.FindConflicts(q, snapshot)
	if err != nil {
		return nil, err
	}
	uc.recorder.ObserveConflicts(len(conflicts))

	return &ConflictCheckResult{Conflicts: conflicts}, nil
}

// transition applies a state-machine event under compare-and-swap. The reservation is
// re-read inside the transaction so the precondition reflects the latest stored status.
func (uc *reservationUseCaseImpl) transition(ctx context.Context, id uuid.UUID, t reservation.Transition, eventType string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := tx.Reads().ReservationByID(ctx, id)
		if derr != nil {
			return mapReadErr(derr)
		}

		t.At = uc.clock.Now()
		patch, derr := reservation.Apply(existing, t)
		if derr != nil {
			return derr
		}

		if derr = tx.Reservations().ApplyStatus(ctx, tx.DB(), *patch); derr != nil {
			return mapWriteErr(derr)
		}

		return uc.enqueue(ctx, tx, eventType, existing.WithStatusPatch(*patch), t.Actor.ID)
	})
	if err != nil {
		return err
	}

	uc.invalidateStats(ctx)
	return nil
}

// claimIdempotencyKey reserves key for this request. A non-nil id means the key already
// completed with an identical request and the caller should replay it.
func (uc *reservationUseCaseImpl) claimIdempotencyKey(ctx context.Context, tx shared.Tx, key, userID uuid.UUID, requestHash string) (*uuid.UUID, error) {
	expiresAt := uc.clock.Now().Add(uc.idempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, createEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	if existing.ExpiresAt.Before(uc.clock.Now()) {
		claimed, err := tx.Idempotency().ClaimExpiredIdempotencyKey(ctx, tx.DB(), key, userID, requestHash, expiresAt)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}
		if claimed == 1 {
			return nil, nil
		}
	}

	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyMismatch
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultReservationID == nil {
			return nil, errs.Wrap(errs.ErrIdempotencyCheckFailed, "completed request missing result reservation ID")
		}
		return existing.ResultReservationID, nil
	case shared.IdempotencyStatusProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.Wrapf(errs.ErrIdempotencyCheckFailed, "invalid idempotency key status %q", existing.Status)
	}
}

func (uc *reservationUseCaseImpl) ensureRoomBookable(ctx context.Context, roomID uuid.UUID) error {
	room, err := uc.uow.CommandReads().RoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrRoomNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !room.IsActive {
		return errs.ErrRoomInactive
	}
	return nil
}

func (uc *reservationUseCaseImpl) lockRoom(ctx context.Context, roomID uuid.UUID) (func(), error) {
	start := time.Now()
	release, err := uc.locker.Acquire(ctx, roomID)
	uc.recorder.ObserveLockWait(time.Since(start), err == nil)
	if err != nil {
		return nil, err
	}
	return release, nil
}

func (uc *reservationUseCaseImpl) snapshot(ctx context.Context, tx shared.Tx, roomID uuid.UUID, dates []reservation.Date) (*reservation.Snapshot, error) {
	snapshot, err := tx.Reads().RoomSnapshot(ctx, roomID, reservation.NormalizeDates(dates))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSnapshotUnavailable)
	}
	return snapshot, nil
}

func (uc *reservationUseCaseImpl) enqueue(ctx context.Context, tx shared.Tx, eventType string, r *reservation.Reservation, actorID uuid.UUID) error {
	payload, err := json.Marshal(shared.NewReservationEvent(eventType, r, actorID, uc.clock.Now()))
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation event")
	}

	err = tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationKindReservationEvent, eventType, payload, uc.clock.Now())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *reservationUseCaseImpl) invalidateStats(ctx context.Context) {
	if err := uc.stats.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate stats cache", "error", err)
	}
}

func (uc *reservationUseCaseImpl) observe(op string, result *CreateReservationResult, err error) {
	uc.recorder.ObserveReservationOp(op, outcomeOf(result, err))

	var conflictErr *reservation.ConflictError
	if errs.As(err, &conflictErr) {
		uc.recorder.ObserveConflicts(len(conflictErr.Conflicts))
	}
}

func outcomeOf(result *CreateReservationResult, err error) string {
	switch {
	case err == nil && result != nil && result.IsReplayed:
		return metrics.OutcomeReplayed
	case err == nil:
		return metrics.OutcomeSuccess
	case errs.Is(err, reservation.ErrBookingConflict):
		return metrics.OutcomeConflict
	case errs.Is(err, errs.ErrRoomBusy):
		return metrics.OutcomeLockBusy
	case errs.Is(err, errs.ErrConcurrentModification):
		return metrics.OutcomeStale
	case errs.Is(err, reservation.ErrActorNotPermitted), errs.Is(err, errs.ErrReservationAccess):
		return metrics.OutcomeForbidden
	case errs.Is(err, errs.ErrDatabaseOperationFailed), errs.Is(err, errs.ErrSnapshotUnavailable):
		return metrics.OutcomeError
	default:
		return metrics.OutcomeRejected
	}
}

func mapReadErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrReservationNotFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func mapWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, reservation.ErrBookingConflict)
	case infra.IsKind(err, infra.KindPreconditionFailed):
		return errs.ErrConcurrentModification
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrRoomNotFound)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

type createRequestFingerprint struct {
	RoomID  uuid.UUID `json:"room_id"`
	Dates   []string  `json:"dates"`
	Start   string    `json:"start"`
	End     string    `json:"end"`
	Purpose string    `json:"purpose"`
}

func calculateRequestHash(req reservation.CreateRequest) string {
	dates := reservation.NormalizeDates(req.Dates)
	fp := createRequestFingerprint{
		RoomID:  req.RoomID,
		Dates:   make([]string, len(dates)),
		Start:   req.Start.String(),
		End:     req.End.String(),
		Purpose: req.Purpose,
	}
	for i, d := range dates {
		fp.Dates[i] = d.String()
	}
	data, _ := json.Marshal(fp)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
