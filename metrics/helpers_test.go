package metrics

import (
	stderrors "errors"

	"github.com/pdehaan/testpilot-metrics/errors"
)

func asBrokerError(err error, target **errors.BrokerError) bool {
	return stderrors.As(err, target)
}
