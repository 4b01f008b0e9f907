package entity

// Status is the current stage of a delivery request's lifecycle, one of a
// closed enumerated set.
type Status string

const (
	StatusSubmitted           Status = "submitted"
	StatusPaymentPending      Status = "payment_pending"
	StatusApprovalPending     Status = "approval_pending"
	StatusApproved            Status = "approved"
	StatusRejected            Status = "rejected"
	StatusScheduled           Status = "scheduled"
	StatusParcelExpected      Status = "parcel_expected"
	StatusParcelArrived       Status = "parcel_arrived"
	StatusInStorage           Status = "in_storage"
	StatusPreparingDispatch   Status = "preparing_dispatch"
	StatusRescheduleRequested Status = "reschedule_requested"
	StatusOutForDelivery      Status = "out_for_delivery"
	StatusDelivered           Status = "delivered"
	StatusIssueReported       Status = "issue_reported"
	StatusCancelled           Status = "cancelled"
)

// statuses holds the closed set in conventional lifecycle order. Membership
// is all that is validated: operators may move a request between any two
// members, so no transition graph is enforced here. delivered, rejected and
// cancelled are terminal by convention only.
var statuses = []Status{
	StatusSubmitted,
	StatusPaymentPending,
	StatusApprovalPending,
	StatusApproved,
	StatusRejected,
	StatusScheduled,
	StatusParcelExpected,
	StatusParcelArrived,
	StatusInStorage,
	StatusPreparingDispatch,
	StatusRescheduleRequested,
	StatusOutForDelivery,
	StatusDelivered,
	StatusIssueReported,
	StatusCancelled,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(statuses))
	for _, s := range statuses {
		set[s] = struct{}{}
	}
	return set
}()

func (s Status) Valid() bool {
	_, ok := statusSet[s]
	return ok
}

// ParseStatus validates membership in the closed status set and returns an
// *UnknownStatusError for anything outside it.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", &UnknownStatusError{Status: raw}
	}
	return s, nil
}

// Statuses returns a copy of the closed status set in lifecycle order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}
