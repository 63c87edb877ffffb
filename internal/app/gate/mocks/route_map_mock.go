// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/66gu1/filmoradmin/internal/app/gate.RouteMap -o route_map_mock.go -n RouteMapMock -p mocks

import (
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// RouteMapMock implements mm_gate.RouteMap
type RouteMapMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcLookup          func(p string) (sa1 []string, b1 bool)
	funcLookupOrigin    string
	inspectFuncLookup   func(p string)
	afterLookupCounter  uint64
	beforeLookupCounter uint64
	LookupMock          mRouteMapMockLookup
}

// NewRouteMapMock returns a mock for mm_gate.RouteMap
func NewRouteMapMock(t minimock.Tester) *RouteMapMock {
	m := &RouteMapMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.LookupMock = mRouteMapMockLookup{mock: m}
	m.LookupMock.callArgs = []*RouteMapMockLookupParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mRouteMapMockLookup struct {
	optional           bool
	mock               *RouteMapMock
	defaultExpectation *RouteMapMockLookupExpectation
	expectations       []*RouteMapMockLookupExpectation

	callArgs []*RouteMapMockLookupParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// RouteMapMockLookupExpectation specifies expectation struct of the RouteMap.Lookup
type RouteMapMockLookupExpectation struct {
	mock               *RouteMapMock
	params             *RouteMapMockLookupParams
	paramPtrs          *RouteMapMockLookupParamPtrs
	expectationOrigins RouteMapMockLookupExpectationOrigins
	results            *RouteMapMockLookupResults
	returnOrigin       string
	Counter            uint64
}

// RouteMapMockLookupParams contains parameters of the RouteMap.Lookup
type RouteMapMockLookupParams struct {
	p string
}

// RouteMapMockLookupParamPtrs contains pointers to parameters of the RouteMap.Lookup
type RouteMapMockLookupParamPtrs struct {
	p *string
}

// RouteMapMockLookupResults contains results of the RouteMap.Lookup
type RouteMapMockLookupResults struct {
	sa1 []string
	b1  bool
}

// RouteMapMockLookupOrigins contains origins of expectations of the RouteMap.Lookup
type RouteMapMockLookupExpectationOrigins struct {
	origin  string
	originP string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmLookup *mRouteMapMockLookup) Optional() *mRouteMapMockLookup {
	mmLookup.optional = true
	return mmLookup
}

// Expect sets up expected params for RouteMap.Lookup
func (mmLookup *mRouteMapMockLookup) Expect(p string) *mRouteMapMockLookup {
	if mmLookup.mock.funcLookup != nil {
		mmLookup.mock.t.Fatalf("RouteMapMock.Lookup mock is already set by Set")
	}

	if mmLookup.defaultExpectation == nil {
		mmLookup.defaultExpectation = &RouteMapMockLookupExpectation{}
	}

	if mmLookup.defaultExpectation.paramPtrs != nil {
		mmLookup.mock.t.Fatalf("RouteMapMock.Lookup mock is already set by ExpectParams functions")
	}

	mmLookup.defaultExpectation.params = &RouteMapMockLookupParams{p}
	mmLookup.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmLookup.expectations {
		if minimock.Equal(e.params, mmLookup.defaultExpectation.params) {
			mmLookup.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmLookup.defaultExpectation.params)
		}
	}

	return mmLookup
}

// ExpectPParam1 sets up expected param p for RouteMap.Lookup
func (mmLookup *mRouteMapMockLookup) ExpectPParam1(p string) *mRouteMapMockLookup {
	if mmLookup.mock.funcLookup != nil {
		mmLookup.mock.t.Fatalf("RouteMapMock.Lookup mock is already set by Set")
	}

	if mmLookup.defaultExpectation == nil {
		mmLookup.defaultExpectation = &RouteMapMockLookupExpectation{}
	}

	if mmLookup.defaultExpectation.params != nil {
		mmLookup.mock.t.Fatalf("RouteMapMock.Lookup mock is already set by Expect")
	}

	if mmLookup.defaultExpectation.paramPtrs == nil {
		mmLookup.defaultExpectation.paramPtrs = &RouteMapMockLookupParamPtrs{}
	}
	mmLookup.defaultExpectation.paramPtrs.p = &p
	mmLookup.defaultExpectation.expectationOrigins.originP = minimock.CallerInfo(1)

	return mmLookup
}

// Inspect accepts an inspector function that has same arguments as the RouteMap.Lookup
func (mmLookup *mRouteMapMockLookup) Inspect(f func(p string)) *mRouteMapMockLookup {
	if mmLookup.mock.inspectFuncLookup != nil {
		mmLookup.mock.t.Fatalf("Inspect function is already set for RouteMapMock.Lookup")
	}

	mmLookup.mock.inspectFuncLookup = f

	return mmLookup
}

// Return sets up results that will be returned by RouteMap.Lookup
func (mmLookup *mRouteMapMockLookup) Return(sa1 []string, b1 bool) *RouteMapMock {
	if mmLookup.mock.funcLookup != nil {
		mmLookup.mock.t.Fatalf("RouteMapMock.Lookup mock is already set by Set")
	}

	if mmLookup.defaultExpectation == nil {
		mmLookup.defaultExpectation = &RouteMapMockLookupExpectation{mock: mmLookup.mock}
	}
	mmLookup.defaultExpectation.results = &RouteMapMockLookupResults{sa1, b1}
	mmLookup.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmLookup.mock
}

// Set uses given function f to mock the RouteMap.Lookup method
func (mmLookup *mRouteMapMockLookup) Set(f func(p string) (sa1 []string, b1 bool)) *RouteMapMock {
	if mmLookup.defaultExpectation != nil {
		mmLookup.mock.t.Fatalf("Default expectation is already set for the RouteMap.Lookup method")
	}

	if len(mmLookup.expectations) > 0 {
		mmLookup.mock.t.Fatalf("Some expectations are already set for the RouteMap.Lookup method")
	}

	mmLookup.mock.funcLookup = f
	mmLookup.mock.funcLookupOrigin = minimock.CallerInfo(1)
	return mmLookup.mock
}

// When sets expectation for the RouteMap.Lookup which will trigger the result defined by the following
// Then helper
func (mmLookup *mRouteMapMockLookup) When(p string) *RouteMapMockLookupExpectation {
	if mmLookup.mock.funcLookup != nil {
		mmLookup.mock.t.Fatalf("RouteMapMock.Lookup mock is already set by Set")
	}

	expectation := &RouteMapMockLookupExpectation{
		mock:               mmLookup.mock,
		params:             &RouteMapMockLookupParams{p},
		expectationOrigins: RouteMapMockLookupExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmLookup.expectations = append(mmLookup.expectations, expectation)
	return expectation
}

// Then sets up RouteMap.Lookup return parameters for the expectation previously defined by the When method
func (e *RouteMapMockLookupExpectation) Then(sa1 []string, b1 bool) *RouteMapMock {
	e.results = &RouteMapMockLookupResults{sa1, b1}
	return e.mock
}

// Times sets number of times RouteMap.Lookup should be invoked
func (mmLookup *mRouteMapMockLookup) Times(n uint64) *mRouteMapMockLookup {
	if n == 0 {
		mmLookup.mock.t.Fatalf("Times of RouteMapMock.Lookup mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmLookup.expectedInvocations, n)
	mmLookup.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmLookup
}

func (mmLookup *mRouteMapMockLookup) invocationsDone() bool {
	if len(mmLookup.expectations) == 0 && mmLookup.defaultExpectation == nil && mmLookup.mock.funcLookup == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmLookup.mock.afterLookupCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmLookup.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Lookup implements mm_gate.RouteMap
func (mmLookup *RouteMapMock) Lookup(p string) (sa1 []string, b1 bool) {
	mm_atomic.AddUint64(&mmLookup.beforeLookupCounter, 1)
	defer mm_atomic.AddUint64(&mmLookup.afterLookupCounter, 1)

	mmLookup.t.Helper()

	if mmLookup.inspectFuncLookup != nil {
		mmLookup.inspectFuncLookup(p)
	}

	mm_params := RouteMapMockLookupParams{p}

	// Record call args
	mmLookup.LookupMock.mutex.Lock()
	mmLookup.LookupMock.callArgs = append(mmLookup.LookupMock.callArgs, &mm_params)
	mmLookup.LookupMock.mutex.Unlock()

	for _, e := range mmLookup.LookupMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.sa1, e.results.b1
		}
	}

	if mmLookup.LookupMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmLookup.LookupMock.defaultExpectation.Counter, 1)
		mm_want := mmLookup.LookupMock.defaultExpectation.params
		mm_want_ptrs := mmLookup.LookupMock.defaultExpectation.paramPtrs

		mm_got := RouteMapMockLookupParams{p}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.p != nil && !minimock.Equal(*mm_want_ptrs.p, mm_got.p) {
				mmLookup.t.Errorf("RouteMapMock.Lookup got unexpected parameter p, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmLookup.LookupMock.defaultExpectation.expectationOrigins.originP, *mm_want_ptrs.p, mm_got.p, minimock.Diff(*mm_want_ptrs.p, mm_got.p))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmLookup.t.Errorf("RouteMapMock.Lookup got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmLookup.LookupMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmLookup.LookupMock.defaultExpectation.results
		if mm_results == nil {
			mmLookup.t.Fatal("No results are set for the RouteMapMock.Lookup")
		}
		return (*mm_results).sa1, (*mm_results).b1
	}
	if mmLookup.funcLookup != nil {
		return mmLookup.funcLookup(p)
	}
	mmLookup.t.Fatalf("Unexpected call to RouteMapMock.Lookup. %v", p)
	return
}

// LookupAfterCounter returns a count of finished RouteMapMock.Lookup invocations
func (mmLookup *RouteMapMock) LookupAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLookup.afterLookupCounter)
}

// LookupBeforeCounter returns a count of RouteMapMock.Lookup invocations
func (mmLookup *RouteMapMock) LookupBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLookup.beforeLookupCounter)
}

// Calls returns a list of arguments used in each call to RouteMapMock.Lookup.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmLookup *mRouteMapMockLookup) Calls() []*RouteMapMockLookupParams {
	mmLookup.mutex.RLock()

	argCopy := make([]*RouteMapMockLookupParams, len(mmLookup.callArgs))
	copy(argCopy, mmLookup.callArgs)

	mmLookup.mutex.RUnlock()

	return argCopy
}

// MinimockLookupDone returns true if the count of the Lookup invocations corresponds
// the number of defined expectations
func (m *RouteMapMock) MinimockLookupDone() bool {
	if m.LookupMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.LookupMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.LookupMock.invocationsDone()
}

// MinimockLookupInspect logs each unmet expectation
func (m *RouteMapMock) MinimockLookupInspect() {
	for _, e := range m.LookupMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to RouteMapMock.Lookup at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterLookupCounter := mm_atomic.LoadUint64(&m.afterLookupCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.LookupMock.defaultExpectation != nil && afterLookupCounter < 1 {
		if m.LookupMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to RouteMapMock.Lookup at\n%s", m.LookupMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to RouteMapMock.Lookup at\n%s with params: %#v", m.LookupMock.defaultExpectation.expectationOrigins.origin, *m.LookupMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcLookup != nil && afterLookupCounter < 1 {
		m.t.Errorf("Expected call to RouteMapMock.Lookup at\n%s", m.funcLookupOrigin)
	}

	if !m.LookupMock.invocationsDone() && afterLookupCounter > 0 {
		m.t.Errorf("Expected %d calls to RouteMapMock.Lookup at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.LookupMock.expectedInvocations), m.LookupMock.expectedInvocationsOrigin, afterLookupCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *RouteMapMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockLookupInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *RouteMapMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *RouteMapMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockLookupDone()
}
