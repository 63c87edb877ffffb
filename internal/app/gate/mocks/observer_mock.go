// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/66gu1/filmoradmin/internal/app/gate.Observer -o observer_mock.go -n ObserverMock -p mocks

import (
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// ObserverMock implements mm_gate.Observer
type ObserverMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcGate          func(decision string)
	funcGateOrigin    string
	inspectFuncGate   func(decision string)
	afterGateCounter  uint64
	beforeGateCounter uint64
	GateMock          mObserverMockGate
}

// NewObserverMock returns a mock for mm_gate.Observer
func NewObserverMock(t minimock.Tester) *ObserverMock {
	m := &ObserverMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.GateMock = mObserverMockGate{mock: m}
	m.GateMock.callArgs = []*ObserverMockGateParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mObserverMockGate struct {
	optional           bool
	mock               *ObserverMock
	defaultExpectation *ObserverMockGateExpectation
	expectations       []*ObserverMockGateExpectation

	callArgs []*ObserverMockGateParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ObserverMockGateExpectation specifies expectation struct of the Observer.Gate
type ObserverMockGateExpectation struct {
	mock               *ObserverMock
	params             *ObserverMockGateParams
	paramPtrs          *ObserverMockGateParamPtrs
	expectationOrigins ObserverMockGateExpectationOrigins

	returnOrigin string
	Counter      uint64
}

// ObserverMockGateParams contains parameters of the Observer.Gate
type ObserverMockGateParams struct {
	decision string
}

// ObserverMockGateParamPtrs contains pointers to parameters of the Observer.Gate
type ObserverMockGateParamPtrs struct {
	decision *string
}

// ObserverMockGateOrigins contains origins of expectations of the Observer.Gate
type ObserverMockGateExpectationOrigins struct {
	origin         string
	originDecision string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmGate *mObserverMockGate) Optional() *mObserverMockGate {
	mmGate.optional = true
	return mmGate
}

// Expect sets up expected params for Observer.Gate
func (mmGate *mObserverMockGate) Expect(decision string) *mObserverMockGate {
	if mmGate.mock.funcGate != nil {
		mmGate.mock.t.Fatalf("ObserverMock.Gate mock is already set by Set")
	}

	if mmGate.defaultExpectation == nil {
		mmGate.defaultExpectation = &ObserverMockGateExpectation{}
	}

	if mmGate.defaultExpectation.paramPtrs != nil {
		mmGate.mock.t.Fatalf("ObserverMock.Gate mock is already set by ExpectParams functions")
	}

	mmGate.defaultExpectation.params = &ObserverMockGateParams{decision}
	mmGate.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmGate.expectations {
		if minimock.Equal(e.params, mmGate.defaultExpectation.params) {
			mmGate.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGate.defaultExpectation.params)
		}
	}

	return mmGate
}

// ExpectDecisionParam1 sets up expected param decision for Observer.Gate
func (mmGate *mObserverMockGate) ExpectDecisionParam1(decision string) *mObserverMockGate {
	if mmGate.mock.funcGate != nil {
		mmGate.mock.t.Fatalf("ObserverMock.Gate mock is already set by Set")
	}

	if mmGate.defaultExpectation == nil {
		mmGate.defaultExpectation = &ObserverMockGateExpectation{}
	}

	if mmGate.defaultExpectation.params != nil {
		mmGate.mock.t.Fatalf("ObserverMock.Gate mock is already set by Expect")
	}

	if mmGate.defaultExpectation.paramPtrs == nil {
		mmGate.defaultExpectation.paramPtrs = &ObserverMockGateParamPtrs{}
	}
	mmGate.defaultExpectation.paramPtrs.decision = &decision
	mmGate.defaultExpectation.expectationOrigins.originDecision = minimock.CallerInfo(1)

	return mmGate
}

// Inspect accepts an inspector function that has same arguments as the Observer.Gate
func (mmGate *mObserverMockGate) Inspect(f func(decision string)) *mObserverMockGate {
	if mmGate.mock.inspectFuncGate != nil {
		mmGate.mock.t.Fatalf("Inspect function is already set for ObserverMock.Gate")
	}

	mmGate.mock.inspectFuncGate = f

	return mmGate
}

// Return sets up results that will be returned by Observer.Gate
func (mmGate *mObserverMockGate) Return() *ObserverMock {
	if mmGate.mock.funcGate != nil {
		mmGate.mock.t.Fatalf("ObserverMock.Gate mock is already set by Set")
	}

	if mmGate.defaultExpectation == nil {
		mmGate.defaultExpectation = &ObserverMockGateExpectation{mock: mmGate.mock}
	}

	mmGate.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGate.mock
}

// Set uses given function f to mock the Observer.Gate method
func (mmGate *mObserverMockGate) Set(f func(decision string)) *ObserverMock {
	if mmGate.defaultExpectation != nil {
		mmGate.mock.t.Fatalf("Default expectation is already set for the Observer.Gate method")
	}

	if len(mmGate.expectations) > 0 {
		mmGate.mock.t.Fatalf("Some expectations are already set for the Observer.Gate method")
	}

	mmGate.mock.funcGate = f
	mmGate.mock.funcGateOrigin = minimock.CallerInfo(1)
	return mmGate.mock
}

// When sets expectation for the Observer.Gate which will trigger the result defined by the following
// Then helper
func (mmGate *mObserverMockGate) When(decision string) *ObserverMockGateExpectation {
	if mmGate.mock.funcGate != nil {
		mmGate.mock.t.Fatalf("ObserverMock.Gate mock is already set by Set")
	}

	expectation := &ObserverMockGateExpectation{
		mock:               mmGate.mock,
		params:             &ObserverMockGateParams{decision},
		expectationOrigins: ObserverMockGateExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmGate.expectations = append(mmGate.expectations, expectation)
	return expectation
}

// Then sets up Observer.Gate return parameters for the expectation previously defined by the When method

func (e *ObserverMockGateExpectation) Then() *ObserverMock {
	return e.mock
}

// Times sets number of times Observer.Gate should be invoked
func (mmGate *mObserverMockGate) Times(n uint64) *mObserverMockGate {
	if n == 0 {
		mmGate.mock.t.Fatalf("Times of ObserverMock.Gate mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmGate.expectedInvocations, n)
	mmGate.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmGate
}

func (mmGate *mObserverMockGate) invocationsDone() bool {
	if len(mmGate.expectations) == 0 && mmGate.defaultExpectation == nil && mmGate.mock.funcGate == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmGate.mock.afterGateCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmGate.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Gate implements mm_gate.Observer
func (mmGate *ObserverMock) Gate(decision string) {
	mm_atomic.AddUint64(&mmGate.beforeGateCounter, 1)
	defer mm_atomic.AddUint64(&mmGate.afterGateCounter, 1)

	mmGate.t.Helper()

	if mmGate.inspectFuncGate != nil {
		mmGate.inspectFuncGate(decision)
	}

	mm_params := ObserverMockGateParams{decision}

	// Record call args
	mmGate.GateMock.mutex.Lock()
	mmGate.GateMock.callArgs = append(mmGate.GateMock.callArgs, &mm_params)
	mmGate.GateMock.mutex.Unlock()

	for _, e := range mmGate.GateMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return
		}
	}

	if mmGate.GateMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmGate.GateMock.defaultExpectation.Counter, 1)
		mm_want := mmGate.GateMock.defaultExpectation.params
		mm_want_ptrs := mmGate.GateMock.defaultExpectation.paramPtrs

		mm_got := ObserverMockGateParams{decision}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.decision != nil && !minimock.Equal(*mm_want_ptrs.decision, mm_got.decision) {
				mmGate.t.Errorf("ObserverMock.Gate got unexpected parameter decision, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGate.GateMock.defaultExpectation.expectationOrigins.originDecision, *mm_want_ptrs.decision, mm_got.decision, minimock.Diff(*mm_want_ptrs.decision, mm_got.decision))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmGate.t.Errorf("ObserverMock.Gate got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmGate.GateMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		return

	}
	if mmGate.funcGate != nil {
		mmGate.funcGate(decision)
		return
	}
	mmGate.t.Fatalf("Unexpected call to ObserverMock.Gate. %v", decision)

}

// GateAfterCounter returns a count of finished ObserverMock.Gate invocations
func (mmGate *ObserverMock) GateAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGate.afterGateCounter)
}

// GateBeforeCounter returns a count of ObserverMock.Gate invocations
func (mmGate *ObserverMock) GateBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGate.beforeGateCounter)
}

// Calls returns a list of arguments used in each call to ObserverMock.Gate.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGate *mObserverMockGate) Calls() []*ObserverMockGateParams {
	mmGate.mutex.RLock()

	argCopy := make([]*ObserverMockGateParams, len(mmGate.callArgs))
	copy(argCopy, mmGate.callArgs)

	mmGate.mutex.RUnlock()

	return argCopy
}

// MinimockGateDone returns true if the count of the Gate invocations corresponds
// the number of defined expectations
func (m *ObserverMock) MinimockGateDone() bool {
	if m.GateMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.GateMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.GateMock.invocationsDone()
}

// MinimockGateInspect logs each unmet expectation
func (m *ObserverMock) MinimockGateInspect() {
	for _, e := range m.GateMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ObserverMock.Gate at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterGateCounter := mm_atomic.LoadUint64(&m.afterGateCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.GateMock.defaultExpectation != nil && afterGateCounter < 1 {
		if m.GateMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ObserverMock.Gate at\n%s", m.GateMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ObserverMock.Gate at\n%s with params: %#v", m.GateMock.defaultExpectation.expectationOrigins.origin, *m.GateMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGate != nil && afterGateCounter < 1 {
		m.t.Errorf("Expected call to ObserverMock.Gate at\n%s", m.funcGateOrigin)
	}

	if !m.GateMock.invocationsDone() && afterGateCounter > 0 {
		m.t.Errorf("Expected %d calls to ObserverMock.Gate at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.GateMock.expectedInvocations), m.GateMock.expectedInvocationsOrigin, afterGateCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ObserverMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockGateInspect()
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
		m.MinimockGateDone()
}
