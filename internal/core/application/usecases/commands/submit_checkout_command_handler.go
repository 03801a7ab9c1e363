package commands

import (
	"context"
	"log/slog"
	"time"

	"checkout/internal/core/domain/model/attempt"
	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/services"
	"checkout/internal/core/ports"
)

// SubmitCheckoutResult is the outcome of one submission.
// Errors is empty when the order was accepted.
type SubmitCheckoutResult struct {
	Accepted bool
	Errors   checkout.ErrorMap
}

// SubmitCheckoutCommandHandler runs the submission controller on a session's
// form while holding the session, then records the attempt.
//
// An accepted session is discarded. Attempt recording is optional: with a nil
// AttemptUoWFactory nothing is written. A failure to record is logged and
// never changes the result returned to the buyer.
//
// Example:
//
//	handler := NewSubmitCheckoutCommandHandler(sessionRepo, services.NewCheckoutValidator(), uowFactory, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if !result.Accepted {
//	    render(result.Errors)
//	}
type SubmitCheckoutCommandHandler struct {
	sessions   ports.SessionRepository
	validator  services.FormValidator
	uowFactory AttemptUoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

func NewSubmitCheckoutCommandHandler(
	sessions ports.SessionRepository,
	validator services.FormValidator,
	uowFactory AttemptUoWFactory,
	logger *slog.Logger,
) SubmitCheckoutCommandHandler {
	return SubmitCheckoutCommandHandler{
		sessions:   sessions,
		validator:  validator,
		uowFactory: uowFactory,
		logger:     logger.With("component", "submit_checkout_handler"),
		now:        time.Now,
	}
}

// Handle submits the form. Validation failures are returned in the result,
// not as an error. Errors are returned for unknown sessions and for sessions
// whose order was already placed (checkout.ErrFormIsClosed).
func (h SubmitCheckoutCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitCheckoutCommand,
) (SubmitCheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitCheckoutResult{}, err
	}

	controller, err := services.NewSubmissionController(h.validator, cmd.Confirmer(), cmd.Navigator())
	if err != nil {
		return SubmitCheckoutResult{}, err
	}

	var submitted *checkout.Form
	var errorMap checkout.ErrorMap
	err = h.sessions.Update(ctx, cmd.SessionID(), func(form *checkout.Form) error {
		var submitErr error
		errorMap, submitErr = controller.Submit(form)
		if submitErr != nil {
			return submitErr
		}
		submitted = form.Clone()
		return nil
	})
	if err != nil {
		return SubmitCheckoutResult{}, err
	}

	h.recordAttempt(ctx, submitted)

	result := SubmitCheckoutResult{
		Accepted: submitted.Status() == checkout.Accepted,
		Errors:   errorMap,
	}
	if result.Accepted {
		if err = h.sessions.Delete(ctx, cmd.SessionID()); err != nil {
			h.logger.WarnContext(ctx, "Failed to discard accepted session",
				"session_id", cmd.SessionID().String(), "error", err)
		}
	}

	return result, nil
}

func (h SubmitCheckoutCommandHandler) recordAttempt(ctx context.Context, form *checkout.Form) {
	if h.uowFactory == nil {
		return
	}

	a, err := attempt.NewAttempt(form, h.now())
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to build submission attempt",
			"session_id", form.ID().String(), "error", err)
		return
	}

	if err = h.saveAttempt(ctx, a); err != nil {
		h.logger.ErrorContext(ctx, "Failed to record submission attempt",
			"session_id", form.ID().String(), "outcome", a.Outcome().String(), "error", err)
	}
}

func (h SubmitCheckoutCommandHandler) saveAttempt(ctx context.Context, a *attempt.Attempt) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.AttemptRepository().Add(ctx, a); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range uow.TrackedAggregates() {
		if recorded, ok := aggregate.(*attempt.Attempt); ok {
			h.logger.InfoContext(ctx, "Recorded submission attempt",
				"attempt_id", recorded.ID().String(),
				"session_id", recorded.SessionID().String(),
				"outcome", recorded.Outcome().String())
		}
	}
	return nil
}
