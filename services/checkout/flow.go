package checkout

import (
	"storefront/models"
)

// FastPath reports whether the actor may skip the info-collection step:
// a linked customer whose profile already carries complete contact details.
func FastPath(id models.Identity) bool {
	return id.IsLinkedCustomer && id.HasCompleteProfile
}

// ComputeEntryStep derives the step a fresh checkout session opens on.
// Carts holding at least one service line require schedule selection first;
// otherwise the flow starts at info collection, or directly at confirmation
// on the fast path.
func ComputeEntryStep(cart *models.Cart, id models.Identity) models.FlowStep {
	if cart.HasServiceLines() {
		return models.StepDateTime
	}
	if FastPath(id) {
		return models.StepConfirm
	}
	return models.StepInfo
}

// CanAdvance reports whether the guard for leaving the session's current
// step is satisfied. Guard refusal is not an error: the forward action is
// simply unavailable until the missing fields arrive.
func CanAdvance(sess *models.CheckoutSession, cart *models.Cart) bool {
	switch sess.Step {
	case models.StepDateTime:
		return sess.SelectedDate != "" && sess.SelectedTime != ""
	case models.StepInfo:
		nameOK := sess.Customer.Name != "" || sess.Identity.IsLinkedCustomer
		return nameOK && sess.Customer.Phone != ""
	case models.StepConfirm:
		return !sess.Submitting
	default:
		return false
	}
}

// NextStep returns the step that follows the current one. The fast path
// skips the info step only; the schedule step is never skipped.
func NextStep(sess *models.CheckoutSession) models.FlowStep {
	switch sess.Step {
	case models.StepDateTime:
		if FastPath(sess.Identity) {
			return models.StepConfirm
		}
		return models.StepInfo
	case models.StepInfo:
		return models.StepConfirm
	case models.StepConfirm:
		return models.StepSuccess
	default:
		return sess.Step
	}
}

// PrevStep returns the step backward navigation lands on, or the current
// step when no backward transition applies.
func PrevStep(sess *models.CheckoutSession, cart *models.Cart) models.FlowStep {
	switch sess.Step {
	case models.StepInfo:
		if cart.HasServiceLines() {
			return models.StepDateTime
		}
		return sess.Step
	case models.StepConfirm:
		return models.StepInfo
	default:
		return sess.Step
	}
}
