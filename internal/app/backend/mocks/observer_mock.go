// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/66gu1/filmoradmin/internal/app/backend.Observer -o observer_mock.go -n ObserverMock -p mocks

import (
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// ObserverMock implements mm_backend.Observer
type ObserverMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcBackend          func(operation string, status string, seconds float64)
	funcBackendOrigin    string
	inspectFuncBackend   func(operation string, status string, seconds float64)
	afterBackendCounter  uint64
	beforeBackendCounter uint64
	BackendMock          mObserverMockBackend
}

// NewObserverMock returns a mock for mm_backend.Observer
func NewObserverMock(t minimock.Tester) *ObserverMock {
	m := &ObserverMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.BackendMock = mObserverMockBackend{mock: m}
	m.BackendMock.callArgs = []*ObserverMockBackendParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mObserverMockBackend struct {
	optional           bool
	mock               *ObserverMock
	defaultExpectation *ObserverMockBackendExpectation
	expectations       []*ObserverMockBackendExpectation

	callArgs []*ObserverMockBackendParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ObserverMockBackendExpectation specifies expectation struct of the Observer.Backend
type ObserverMockBackendExpectation struct {
	mock               *ObserverMock
	params             *ObserverMockBackendParams
	paramPtrs          *ObserverMockBackendParamPtrs
	expectationOrigins ObserverMockBackendExpectationOrigins

	returnOrigin string
	Counter      uint64
}

// ObserverMockBackendParams contains parameters of the Observer.Backend
type ObserverMockBackendParams struct {
	operation string
	status    string
	seconds   float64
}

// ObserverMockBackendParamPtrs contains pointers to parameters of the Observer.Backend
type ObserverMockBackendParamPtrs struct {
	operation *string
	status    *string
	seconds   *float64
}

// ObserverMockBackendOrigins contains origins of expectations of the Observer.Backend
type ObserverMockBackendExpectationOrigins struct {
	origin          string
	originOperation string
	originStatus    string
	originSeconds   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmBackend *mObserverMockBackend) Optional() *mObserverMockBackend {
	mmBackend.optional = true
	return mmBackend
}

// Expect sets up expected params for Observer.Backend
func (mmBackend *mObserverMockBackend) Expect(operation string, status string, seconds float64) *mObserverMockBackend {
	if mmBackend.mock.funcBackend != nil {
		mmBackend.mock.t.Fatalf("ObserverMock.Backend mock is already set by Set")
	}

	if mmBackend.defaultExpectation == nil {
		mmBackend.defaultExpectation = &ObserverMockBackendExpectation{}
	}

	if mmBackend.defaultExpectation.paramPtrs != nil {
		mmBackend.mock.t.Fatalf("ObserverMock.Backend mock is already set by ExpectParams functions")
	}

	mmBackend.defaultExpectation.params = &ObserverMockBackendParams{operation, status, seconds}
	mmBackend.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmBackend.expectations {
		if minimock.Equal(e.params, mmBackend.defaultExpectation.params) {
			mmBackend.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmBackend.defaultExpectation.params)
		}
	}

	return mmBackend
}

// ExpectOperationParam1 sets up expected param operation for Observer.Backend
func (mmBackend *mObserverMockBackend) ExpectOperationParam1(operation string) *mObserverMockBackend {
	if mmBackend.mock.funcBackend != nil {
		mmBackend.mock.t.Fatalf("ObserverMock.Backend mock is already set by Set")
	}

	if mmBackend.defaultExpectation == nil {
		mmBackend.defaultExpectation = &ObserverMockBackendExpectation{}
	}

	if mmBackend.defaultExpectation.params != nil {
		mmBackend.mock.t.Fatalf("ObserverMock.Backend mock is already set by Expect")
	}

	if mmBackend.defaultExpectation.paramPtrs == nil {
		mmBackend.defaultExpectation.paramPtrs = &ObserverMockBackendParamPtrs{}
	}
	mmBackend.defaultExpectation.paramPtrs.operation = &operation
	mmBackend.defaultExpectation.expectationOrigins.originOperation = minimock.CallerInfo(1)

	return mmBackend
}

// ExpectStatusParam2 sets up expected param status for Observer.Backend
func (mmBackend *mObserverMockBackend) ExpectStatusParam2(status string) *mObserverMockBackend {
	if mmBackend.mock.funcBackend != nil {
		mmBackend.mock.t.Fatalf("ObserverMock.Backend mock is already set by Set")
	}

	if mmBackend.defaultExpectation == nil {
		mmBackend.defaultExpectation = &ObserverMockBackendExpectation{}
	}

	if mmBackend.defaultExpectation.params != nil {
		mmBackend.mock.t.Fatalf("ObserverMock.Backend mock is already set by Expect")
	}

	if mmBackend.defaultExpectation.paramPtrs == nil {
		mmBackend.defaultExpectation.paramPtrs = &ObserverMockBackendParamPtrs{}
	}
	mmBackend.defaultExpectation.paramPtrs.status = &status
	mmBackend.defaultExpectation.expectationOrigins.originStatus = minimock.CallerInfo(1)

	return mmBackend
}

// ExpectSecondsParam3 sets up expected param seconds for Observer.Backend
func (mmBackend *mObserverMockBackend) ExpectSecondsParam3(seconds float64) *mObserverMockBackend {
	if mmBackend.mock.funcBackend != nil {
		mmBackend.mock.t.Fatalf("ObserverMock.Backend mock is already set by Set")
	}

	if mmBackend.defaultExpectation == nil {
		mmBackend.defaultExpectation = &ObserverMockBackendExpectation{}
	}

	if mmBackend.defaultExpectation.params != nil {
		mmBackend.mock.t.Fatalf("ObserverMock.Backend mock is already set by Expect")
	}

	if mmBackend.defaultExpectation.paramPtrs == nil {
		mmBackend.defaultExpectation.paramPtrs = &ObserverMockBackendParamPtrs{}
	}
	mmBackend.defaultExpectation.paramPtrs.seconds = &seconds
	mmBackend.defaultExpectation.expectationOrigins.originSeconds = minimock.CallerInfo(1)

	return mmBackend
}

// Inspect accepts an inspector function that has same arguments as the Observer.Backend
func (mmBackend *mObserverMockBackend) Inspect(f func(operation string, status string, seconds float64)) *mObserverMockBackend {
	if mmBackend.mock.inspectFuncBackend != nil {
		mmBackend.mock.t.Fatalf("Inspect function is already set for ObserverMock.Backend")
	}

	mmBackend.mock.inspectFuncBackend = f

	return mmBackend
}

// Return sets up results that will be returned by Observer.Backend
func (mmBackend *mObserverMockBackend) Return() *ObserverMock {
	if mmBackend.mock.funcBackend != nil {
		mmBackend.mock.t.Fatalf("ObserverMock.Backend mock is already set by Set")
	}

	if mmBackend.defaultExpectation == nil {
		mmBackend.defaultExpectation = &ObserverMockBackendExpectation{mock: mmBackend.mock}
	}

	mmBackend.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmBackend.mock
}

// Set uses given function f to mock the Observer.Backend method
func (mmBackend *mObserverMockBackend) Set(f func(operation string, status string, seconds float64)) *ObserverMock {
	if mmBackend.defaultExpectation != nil {
		mmBackend.mock.t.Fatalf("Default expectation is already set for the Observer.Backend method")
	}

	if len(mmBackend.expectations) > 0 {
		mmBackend.mock.t.Fatalf("Some expectations are already set for the Observer.Backend method")
	}

	mmBackend.mock.funcBackend = f
	mmBackend.mock.funcBackendOrigin = minimock.CallerInfo(1)
	return mmBackend.mock
}

// When sets expectation for the Observer.Backend which will trigger the result defined by the following
// Then helper
func (mmBackend *mObserverMockBackend) When(operation string, status string, seconds float64) *ObserverMockBackendExpectation {
	if mmBackend.mock.funcBackend != nil {
		mmBackend.mock.t.Fatalf("ObserverMock.Backend mock is already set by Set")
	}

	expectation := &ObserverMockBackendExpectation{
		mock:               mmBackend.mock,
		params:             &ObserverMockBackendParams{operation, status, seconds},
		expectationOrigins: ObserverMockBackendExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmBackend.expectations = append(mmBackend.expectations, expectation)
	return expectation
}

// Then sets up Observer.Backend return parameters for the expectation previously defined by the When method

func (e *ObserverMockBackendExpectation) Then() *ObserverMock {
	return e.mock
}

// Times sets number of times Observer.Backend should be invoked
func (mmBackend *mObserverMockBackend) Times(n uint64) *mObserverMockBackend {
	if n == 0 {
		mmBackend.mock.t.Fatalf("Times of ObserverMock.Backend mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmBackend.expectedInvocations, n)
	mmBackend.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmBackend
}

func (mmBackend *mObserverMockBackend) invocationsDone() bool {
	if len(mmBackend.expectations) == 0 && mmBackend.defaultExpectation == nil && mmBackend.mock.funcBackend == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmBackend.mock.afterBackendCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmBackend.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Backend implements mm_backend.Observer
func (mmBackend *ObserverMock) Backend(operation string, status string, seconds float64) {
	mm_atomic.AddUint64(&mmBackend.beforeBackendCounter, 1)
	defer mm_atomic.AddUint64(&mmBackend.afterBackendCounter, 1)

	mmBackend.t.Helper()

	if mmBackend.inspectFuncBackend != nil {
		mmBackend.inspectFuncBackend(operation, status, seconds)
	}

	mm_params := ObserverMockBackendParams{operation, status, seconds}

	// Record call args
	mmBackend.BackendMock.mutex.Lock()
	mmBackend.BackendMock.callArgs = append(mmBackend.BackendMock.callArgs, &mm_params)
	mmBackend.BackendMock.mutex.Unlock()

	for _, e := range mmBackend.BackendMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return
		}
	}

	if mmBackend.BackendMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmBackend.BackendMock.defaultExpectation.Counter, 1)
		mm_want := mmBackend.BackendMock.defaultExpectation.params
		mm_want_ptrs := mmBackend.BackendMock.defaultExpectation.paramPtrs

		mm_got := ObserverMockBackendParams{operation, status, seconds}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.operation != nil && !minimock.Equal(*mm_want_ptrs.operation, mm_got.operation) {
				mmBackend.t.Errorf("ObserverMock.Backend got unexpected parameter operation, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmBackend.BackendMock.defaultExpectation.expectationOrigins.originOperation, *mm_want_ptrs.operation, mm_got.operation, minimock.Diff(*mm_want_ptrs.operation, mm_got.operation))
			}

			if mm_want_ptrs.status != nil && !minimock.Equal(*mm_want_ptrs.status, mm_got.status) {
				mmBackend.t.Errorf("ObserverMock.Backend got unexpected parameter status, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmBackend.BackendMock.defaultExpectation.expectationOrigins.originStatus, *mm_want_ptrs.status, mm_got.status, minimock.Diff(*mm_want_ptrs.status, mm_got.status))
			}

			if mm_want_ptrs.seconds != nil && !minimock.Equal(*mm_want_ptrs.seconds, mm_got.seconds) {
				mmBackend.t.Errorf("ObserverMock.Backend got unexpected parameter seconds, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmBackend.BackendMock.defaultExpectation.expectationOrigins.originSeconds, *mm_want_ptrs.seconds, mm_got.seconds, minimock.Diff(*mm_want_ptrs.seconds, mm_got.seconds))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmBackend.t.Errorf("ObserverMock.Backend got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmBackend.BackendMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		return

	}
	if mmBackend.funcBackend != nil {
		mmBackend.funcBackend(operation, status, seconds)
		return
	}
	mmBackend.t.Fatalf("Unexpected call to ObserverMock.Backend. %v %v %v", operation, status, seconds)

}

// BackendAfterCounter returns a count of finished ObserverMock.Backend invocations
func (mmBackend *ObserverMock) BackendAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmBackend.afterBackendCounter)
}

// BackendBeforeCounter returns a count of ObserverMock.Backend invocations
func (mmBackend *ObserverMock) BackendBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmBackend.beforeBackendCounter)
}

// Calls returns a list of arguments used in each call to ObserverMock.Backend.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmBackend *mObserverMockBackend) Calls() []*ObserverMockBackendParams {
	mmBackend.mutex.RLock()

	argCopy := make([]*ObserverMockBackendParams, len(mmBackend.callArgs))
	copy(argCopy, mmBackend.callArgs)

	mmBackend.mutex.RUnlock()

	return argCopy
}

// MinimockBackendDone returns true if the count of the Backend invocations corresponds
// the number of defined expectations
func (m *ObserverMock) MinimockBackendDone() bool {
	if m.BackendMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.BackendMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.BackendMock.invocationsDone()
}

// MinimockBackendInspect logs each unmet expectation
func (m *ObserverMock) MinimockBackendInspect() {
	for _, e := range m.BackendMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ObserverMock.Backend at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterBackendCounter := mm_atomic.LoadUint64(&m.afterBackendCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.BackendMock.defaultExpectation != nil && afterBackendCounter < 1 {
		if m.BackendMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ObserverMock.Backend at\n%s", m.BackendMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ObserverMock.Backend at\n%s with params: %#v", m.BackendMock.defaultExpectation.expectationOrigins.origin, *m.BackendMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcBackend != nil && afterBackendCounter < 1 {
		m.t.Errorf("Expected call to ObserverMock.Backend at\n%s", m.funcBackendOrigin)
	}

	if !m.BackendMock.invocationsDone() && afterBackendCounter > 0 {
		m.t.Errorf("Expected %d calls to ObserverMock.Backend at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.BackendMock.expectedInvocations), m.BackendMock.expectedInvocationsOrigin, afterBackendCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ObserverMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockBackendInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ObserverMock) MinimockWait(timeout mm_time.Duration) {
	timeoutCh := mm_time.After(timeout)
	for {
		if m.minimockDone() {
			return
		}
		select {
		case <-timeoutCh:
			m.MinimockFinish()
			return
		case <-mm_time.After(10 * mm_time.Millisecond):
		}
	}
}

func (m *ObserverMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockBackendDone()
}
