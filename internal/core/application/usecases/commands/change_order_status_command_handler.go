package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler handles status-transition requests.
//
// The handler re-reads the order inside the transaction, asks the transition
// authorizer for a decision against the status actually observed, and applies
// the change as a compare-and-swap keyed on that observed status. Two
// concurrent transitions on the same order therefore cannot both succeed:
// the loser's swap finds a different status and fails with a version
// conflict, which the caller may retry after re-reading.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	authorizer services.TransitionAuthorizer
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	authorizer services.TransitionAuthorizer,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the status change and returns the updated order on success.
// On denial the authorizer's error travels to the caller unchanged; no denial
// is ever swallowed.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	current, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	observed := current.Status()
	if err = h.authorizer.Authorize(cmd.Principal().Role(), observed, cmd.Requested()); err != nil {
		return nil, err
	}

	if err = current.ChangeStatus(cmd.Requested()); err != nil {
		return nil, err
	}

	if err = repo.UpdateStatus(ctx, current.ID(), observed, cmd.Requested()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}
