package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
)

// Saga step outcomes
const (
	OutcomeCompleted = "completed"
	OutcomeSkipped   = "skipped"
	OutcomeFailed    = "failed"
)

type ledgerInstruments struct {
	sagaSteps     *Counter
	uploads       *Counter
	changeNotices *Counter
}

var (
	instrumentsOnce sync.Once
	instruments     *ledgerInstruments
)

// ledger returns instruments bound to the global meter provider. The global
// provider delegates to the SDK provider once it is installed, so creating
// them before NewMeterProvider runs is fine.
func ledger() *ledgerInstruments {
	instrumentsOnce.Do(func() {
		meter := otel.GetMeterProvider().Meter(TracerName)
		li := &ledgerInstruments{}
		var err error
		if li.sagaSteps, err = NewCounter(meter, "ledger_saga_steps_total", "Saga steps by outcome", "{step}"); err != nil {
			return
		}
		if li.uploads, err = NewCounter(meter, "ledger_uploads_total", "Stored files by bucket", "{file}"); err != nil {
			return
		}
		if li.changeNotices, err = NewCounter(meter, "ledger_change_notices_total", "Published change notices by table", "{notice}"); err != nil {
			return
		}
		instruments = li
	})
	return instruments
}

// RecordSagaStep counts one saga step outcome.
func RecordSagaStep(ctx context.Context, saga, step, outcome string) {
	if li := ledger(); li != nil {
		li.sagaSteps.Inc(ctx, AttrSaga.String(saga), AttrSagaStep.String(step), AttrSagaOutcome.String(outcome))
	}
}

// RecordUpload counts a file stored in bucket.
func RecordUpload(ctx context.Context, bucket string) {
	if li := ledger(); li != nil {
		li.uploads.Inc(ctx, AttrBucket.String(bucket))
	}
}

// RecordChangeNotice counts a published change notice.
func RecordChangeNotice(ctx context.Context, table string) {
	if li := ledger(); li != nil {
		li.changeNotices.Inc(ctx, AttrTable.String(table))
	}
}
