// Package gateway fronts the remote store for the five CRM collections. It
// owns the "never block the user" contract: a failed read degrades to an
// empty result, a failed create or update degrades to a locally synthesized
// record tagged domain.LocalOnly and parked in an outbox for the reconciler.
// Deletes are the one pessimistic path; their errors surface to the caller.
package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dealer-crm/pkg/utils"
)

// Reconcilable is the slice of a gateway the reconciler job works with.
type Reconcilable interface {
	Entity() string
	PendingLocal() int
	Reconcile(ctx context.Context) (persisted int, remaining int)
}

type pendingOp int

const (
	opCreate pendingOp = iota
	opUpdate
)

// localID never fails the caller: if the entropy source is unavailable the
// id falls back to a time-based suffix.
func localID(prefix string) string {
	id, err := utils.GenerateLocalID(prefix)
	if err != nil {
		logrus.WithError(err).Warn("Falling back to time-based local id")
		return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
	}
	return id
}
