package pipeline

import (
	"errors"

	"github.com/google/uuid"

	"github.com/skita-dev/skita/container"
	"github.com/skita-dev/skita/log"
)

// invocation correlates one Encrypt/Decrypt call's log entries with a
// generated id. Low-level crypto/aead and container code stays
// logger-free; only this orchestration layer logs.
type invocation struct {
	id    string
	state State
}

func newInvocation() *invocation {
	return &invocation{id: uuid.NewString(), state: Idle}
}

func (iv *invocation) enter(s State) {
	iv.state = s
}

// logTerminalError emits one structured log entry for a terminal error,
// tagging it with the invocation id and the error's kind when it's a
// *container.Error.
func (iv *invocation) logTerminalError(op string, err error) {
	entry := log.Error(err).Field("invocation_id", iv.id).Field("operation", op)

	var cerr *container.Error
	if errors.As(err, &cerr) {
		entry = entry.Field("kind", string(cerr.Kind))
	}
	entry.Message("skita pipeline invocation failed")
}
