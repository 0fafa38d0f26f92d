package invite

import (
	"context"

	"sevgi/lifecycle"
	"sevgi/models"
	"sevgi/store"
	"sevgi/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MarkPaid moves a created invite to paid. Any other status is rejected.
func (s *Service) MarkPaid(ctx context.Context, token string) (View, error) {
	var result *models.Invite
	err := s.mutate(ctx, token, func(tx store.Store, invite *models.Invite) (err error) {
		result, err = s.apply(ctx, tx, invite, lifecycle.ActionMarkPaid, nil)
		return err
	})
	if err != nil {
		return View{}, err
	}
	return s.view(result), nil
}

// PayDemo settles a demo payment for the invite right away. The invite
// becomes paid if it was only created; an opened or already paid invite
// keeps its status and just gets the payment record.
func (s *Service) PayDemo(ctx context.Context, token string) (PaymentView, error) {
	var payment *models.Payment
	var result *models.Invite
	err := s.mutate(ctx, token, func(tx store.Store, invite *models.Invite) (err error) {
		if invite.Status.IsTerminal() {
			return ErrAlreadyFinished
		}
		now := s.now()
		payment = &models.Payment{
			InviteID:  invite.ID,
			Provider:  models.ProviderDemo,
			Amount:    s.opts.PaymentAmount,
			Status:    models.PaymentCreated,
			CreatedAt: now,
		}
		if err = tx.CreatePayment(ctx, payment); err != nil {
			return err
		}
		txnID := "demo-" + uuid.NewString()
		payment.Status = models.PaymentPaid
		payment.ProviderTxnID = &txnID
		payment.PaidAt = &now
		if err = tx.UpdatePayment(ctx, payment); err != nil {
			return err
		}
		result = invite
		if lifecycle.Changed(invite.Status, lifecycle.ActionMarkPaid) {
			result, err = s.apply(ctx, tx, invite, lifecycle.ActionMarkPaid, nil)
		}
		return err
	})
	if err != nil {
		return PaymentView{}, err
	}
	utils.Logger.WithFields(logrus.Fields{
		"invite":  result.ID,
		"payment": payment.ID,
		"amount":  payment.Amount.StringFixed(2),
	}).Info("demo payment settled")
	return PaymentView{
		ID:            payment.ID,
		Provider:      payment.Provider,
		Amount:        payment.Amount.StringFixed(2),
		Status:        payment.Status,
		ProviderTxnID: *payment.ProviderTxnID,
		Invite:        s.view(result),
	}, nil
}
