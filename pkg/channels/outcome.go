package channels

// OutcomeStatus is the three-valued dispatch result.
type OutcomeStatus string

// Outcome statuses.
const (
	OutcomeSent             OutcomeStatus = "sent"
	OutcomeTransientFailure OutcomeStatus = "transient_failure"
	OutcomePermanentFailure OutcomeStatus = "permanent_failure"
)

// Outcome is the dispatcher's verdict on one send. The engine translates it
// into attempt rows and recipient state; the dispatcher itself records
// nothing.
type Outcome struct {
	Status     OutcomeStatus
	ExternalID string    // provider message id, set when Status == OutcomeSent
	Kind       ErrorKind // failure kind, set on failures
	Reason     string    // free-text failure reason, set on failures
}

// Sent builds a successful outcome.
func Sent(externalID string) Outcome {
	return Outcome{Status: OutcomeSent, ExternalID: externalID}
}

// Failure classifies err into a transient or permanent outcome.
func Failure(err error) Outcome {
	kind := KindOf(err)
	status := OutcomePermanentFailure
	if kind.Transient() {
		status = OutcomeTransientFailure
	}
	return Outcome{Status: status, Kind: kind, Reason: err.Error()}
}
