//go:generate mockgen -source=recorder.go -destination=mocks/mock_recorder.go -package=mocks

package numeric

// Recorder observes adapter operations. Implementations must be cheap; the
// adapter calls Observe synchronously on every operation.
type Recorder interface {
	// Observe records one operation and the number of digits it produced.
	Observe(op string, digits int)
}

type nopRecorder struct{}

func (nopRecorder) Observe(string, int) {}
