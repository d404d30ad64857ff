package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/principal"
	"fulfillment/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// It resolves the seller context for the acting principal, applies the
// creation policy for the initial status, and persists the order with its
// items as one atomic unit.
//
// Seller resolution:
//   - SELLER principals own exactly one seller profile; the handler resolves
//     it by user id unless it is already embedded in the principal. A seller
//     without a profile cannot create orders.
//   - ADMIN and SUPER_ADMIN must name a seller explicitly; the handler
//     verifies it exists.
//   - Every other role is rejected.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     CreationPolicy
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence and the creation policy
// governing initial statuses.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, policy CreationPolicy) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the order creation command.
// Uses a transaction to ensure order and items are persisted together or not
// at all.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	initial := order.PendingReview
	if requested := cmd.InitialStatus(); requested != nil {
		if !h.policy.MayChooseInitialStatus(cmd.Principal().Role()) {
			return errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("role %s may not choose an initial status", cmd.Principal().Role()))
		}
		initial = *requested
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sellerID, err := h.resolveSellerID(ctx, uow, cmd)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrderNumber(),
		sellerID,
		cmd.Customer(),
		cmd.InternalNotes(),
		cmd.TotalAmount(),
		cmd.Items(),
		initial,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveSellerID determines which seller the new order belongs to.
// Unresolvable seller context is a validation failure, not an authorization
// one: the request cannot be fulfilled as stated.
func (h *CreateOrderCommandHandler) resolveSellerID(
	ctx context.Context,
	uow UoW,
	cmd CreateOrderCommand,
) (kernel.UUID, error) {
	p := cmd.Principal()

	switch role := p.Role(); {
	case role == principal.Seller:
		if embedded := p.SellerID(); embedded != nil {
			return *embedded, nil
		}
		profile, err := uow.SellerRepository().GetByUserID(ctx, p.UserID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("sellerId",
					fmt.Errorf("no seller profile for user %s", p.UserID()))
			}
			return kernel.UUID{}, err
		}
		return profile.ID(), nil

	case role == principal.Admin || role == principal.SuperAdmin:
		named := cmd.SellerID()
		if named == nil {
			return kernel.UUID{}, errs.NewValueIsRequiredError("sellerId")
		}
		if _, err := uow.SellerRepository().Get(ctx, *named); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("sellerId",
					fmt.Errorf("seller %s does not exist", named))
			}
			return kernel.UUID{}, err
		}
		return *named, nil

	default:
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("sellerId",
			fmt.Errorf("role %s cannot create orders without a seller context", role))
	}
}
