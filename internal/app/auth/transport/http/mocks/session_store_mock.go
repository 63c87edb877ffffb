// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/66gu1/filmoradmin/internal/app/auth/transport/http.SessionStore -o session_store_mock.go -n SessionStoreMock -p mocks

import (
	"context"
	"net/http"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/gojuno/minimock/v3"
)

// SessionStoreMock implements mm_http.SessionStore
type SessionStoreMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcClear          func(ctx context.Context, w http.ResponseWriter, r *http.Request) (err error)
	funcClearOrigin    string
	inspectFuncClear   func(ctx context.Context, w http.ResponseWriter, r *http.Request)
	afterClearCounter  uint64
	beforeClearCounter uint64
	ClearMock          mSessionStoreMockClear

	funcLoad          func(r *http.Request) (sp1 *auth.Session, err error)
	funcLoadOrigin    string
	inspectFuncLoad   func(r *http.Request)
	afterLoadCounter  uint64
	beforeLoadCounter uint64
	LoadMock          mSessionStoreMockLoad

	funcSave          func(ctx context.Context, w http.ResponseWriter, s *auth.Session) (err error)
	funcSaveOrigin    string
	inspectFuncSave   func(ctx context.Context, w http.ResponseWriter, s *auth.Session)
	afterSaveCounter  uint64
	beforeSaveCounter uint64
	SaveMock          mSessionStoreMockSave
}

// NewSessionStoreMock returns a mock for mm_http.SessionStore
func NewSessionStoreMock(t minimock.Tester) *SessionStoreMock {
	m := &SessionStoreMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.ClearMock = mSessionStoreMockClear{mock: m}
	m.ClearMock.callArgs = []*SessionStoreMockClearParams{}

	m.LoadMock = mSessionStoreMockLoad{mock: m}
	m.LoadMock.callArgs = []*SessionStoreMockLoadParams{}

	m.SaveMock = mSessionStoreMockSave{mock: m}
	m.SaveMock.callArgs = []*SessionStoreMockSaveParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mSessionStoreMockClear struct {
	optional           bool
	mock               *SessionStoreMock
	defaultExpectation *SessionStoreMockClearExpectation
	expectations       []*SessionStoreMockClearExpectation

	callArgs []*SessionStoreMockClearParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// SessionStoreMockClearExpectation specifies expectation struct of the SessionStore.Clear
type SessionStoreMockClearExpectation struct {
	mock               *SessionStoreMock
	params             *SessionStoreMockClearParams
	paramPtrs          *SessionStoreMockClearParamPtrs
	expectationOrigins SessionStoreMockClearExpectationOrigins
	results            *SessionStoreMockClearResults
	returnOrigin       string
	Counter            uint64
}

// SessionStoreMockClearParams contains parameters of the SessionStore.Clear
type SessionStoreMockClearParams struct {
	ctx context.Context
	w   http.ResponseWriter
	r   *http.Request
}

// SessionStoreMockClearParamPtrs contains pointers to parameters of the SessionStore.Clear
type SessionStoreMockClearParamPtrs struct {
	ctx *context.Context
	w   *http.ResponseWriter
	r   **http.Request
}

// SessionStoreMockClearResults contains results of the SessionStore.Clear
type SessionStoreMockClearResults struct {
	err error
}

// SessionStoreMockClearOrigins contains origins of expectations of the SessionStore.Clear
type SessionStoreMockClearExpectationOrigins struct {
	origin    string
	originCtx string
	originW   string
	originR   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmClear *mSessionStoreMockClear) Optional() *mSessionStoreMockClear {
	mmClear.optional = true
	return mmClear
}

// Expect sets up expected params for SessionStore.Clear
func (mmClear *mSessionStoreMockClear) Expect(ctx context.Context, w http.ResponseWriter, r *http.Request) *mSessionStoreMockClear {
	if mmClear.mock.funcClear != nil {
		mmClear.mock.t.Fatalf("SessionStoreMock.Clear mock is already set by Set")
	}

	if mmClear.defaultExpectation == nil {
		mmClear.defaultExpectation = &SessionStoreMockClearExpectation{}
	}

	if mmClear.defaultExpectation.paramPtrs != nil {
		mmClear.mock.t.Fatalf("SessionStoreMock.Clear mock is already set by ExpectParams functions")
	}

	mmClear.defaultExpectation.params = &SessionStoreMockClearParams{ctx, w, r}
	mmClear.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmClear.expectations {
		if minimock.Equal(e.params, mmClear.defaultExpectation.params) {
			mmClear.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmClear.defaultExpectation.params)
		}
	}

	return mmClear
}

// ExpectCtxParam1 sets up expected param ctx for SessionStore.Clear
func (mmClear *mSessionStoreMockClear) ExpectCtxParam1(ctx context.Context) *mSessionStoreMockClear {
	if mmClear.mock.funcClear != nil {
		mmClear.mock.t.Fatalf("SessionStoreMock.Clear mock is already set by Set")
	}

	if mmClear.defaultExpectation == nil {
		mmClear.defaultExpectation = &SessionStoreMockClearExpectation{}
	}

	if mmClear.defaultExpectation.params != nil {
		mmClear.mock.t.Fatalf("SessionStoreMock.Clear mock is already set by Expect")
	}

	if mmClear.defaultExpectation.paramPtrs == nil {
		mmClear.defaultExpectation.paramPtrs = &SessionStoreMockClearParamPtrs{}
	}
	mmClear.defaultExpectation.paramPtrs.ctx = &ctx
	mmClear.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmClear
}

// ExpectWParam2 sets up expected param w for SessionStore.Clear
func (mmClear *mSessionStoreMockClear) ExpectWParam2(w http.ResponseWriter) *mSessionStoreMockClear {
	if mmClear.mock.funcClear != nil {
		mmClear.mock.t.Fatalf("SessionStoreMock.Clear mock is already set by Set")
	}

	if mmClear.defaultExpectation == nil {
		mmClear.defaultExpectation = &SessionStoreMockClearExpectation{}
	}

	if mmClear.defaultExpectation.params != nil {
		mmClear.mock.t.Fatalf("SessionStoreMock.Clear mock is already set by Expect")
	}

	if mmClear.defaultExpectation.paramPtrs == nil {
		mmClear.defaultExpectation.paramPtrs = &SessionStoreMockClearParamPtrs{}
	}
	mmClear.defaultExpectation.paramPtrs.w = &w
	mmClear.defaultExpectation.expectationOrigins.originW = minimock.CallerInfo(1)

	return mmClear
}

// ExpectRParam3 sets up expected param r for SessionStore.Clear
func (mmClear *mSessionStoreMockClear) ExpectRParam3(r *http.Request) *mSessionStoreMockClear {
	if mmClear.mock.funcClear != nil {
		mmClear.mock.t.Fatalf("SessionStoreMock.Clear mock is already set by Set")
	}

	if mmClear.defaultExpectation == nil {
		mmClear.defaultExpectation = &SessionStoreMockClearExpectation{}
	}

	if mmClear.defaultExpectation.params != nil {
		mmClear.mock.t.Fatalf("SessionStoreMock.Clear mock is already set by Expect")
	}

	if mmClear.defaultExpectation.paramPtrs == nil {
		mmClear.defaultExpectation.paramPtrs = &SessionStoreMockClearParamPtrs{}
	}
	mmClear.defaultExpectation.paramPtrs.r = &r
	mmClear.defaultExpectation.expectationOrigins.originR = minimock.CallerInfo(1)

	return mmClear
}

// Inspect accepts an inspector function that has same arguments as the SessionStore.Clear
func (mmClear *mSessionStoreMockClear) Inspect(f func(ctx context.Context, w http.ResponseWriter, r *http.Request)) *mSessionStoreMockClear {
	if mmClear.mock.inspectFuncClear != nil {
		mmClear.mock.t.Fatalf("Inspect function is already set for SessionStoreMock.Clear")
	}

	mmClear.mock.inspectFuncClear = f

	return mmClear
}

// Return sets up results that will be returned by SessionStore.Clear
func (mmClear *mSessionStoreMockClear) Return(err error) *SessionStoreMock {
	if mmClear.mock.funcClear != nil {
		mmClear.mock.t.Fatalf("SessionStoreMock.Clear mock is already set by Set")
	}

	if mmClear.defaultExpectation == nil {
		mmClear.defaultExpectation = &SessionStoreMockClearExpectation{mock: mmClear.mock}
	}
	mmClear.defaultExpectation.results = &SessionStoreMockClearResults{err}
	mmClear.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmClear.mock
}

// Set uses given function f to mock the SessionStore.Clear method
func (mmClear *mSessionStoreMockClear) Set(f func(ctx context.Context, w http.ResponseWriter, r *http.Request) (err error)) *SessionStoreMock {
	if mmClear.defaultExpectation != nil {
		mmClear.mock.t.Fatalf("Default expectation is already set for the SessionStore.Clear method")
	}

	if len(mmClear.expectations) > 0 {
		mmClear.mock.t.Fatalf("Some expectations are already set for the SessionStore.Clear method")
	}

	mmClear.mock.funcClear = f
	mmClear.mock.funcClearOrigin = minimock.CallerInfo(1)
	return mmClear.mock
}

// When sets expectation for the SessionStore.Clear which will trigger the result defined by the following
// Then helper
func (mmClear *mSessionStoreMockClear) When(ctx context.Context, w http.ResponseWriter, r *http.Request) *SessionStoreMockClearExpectation {
	if mmClear.mock.funcClear != nil {
		mmClear.mock.t.Fatalf("SessionStoreMock.Clear mock is already set by Set")
	}

	expectation := &SessionStoreMockClearExpectation{
		mock:               mmClear.mock,
		params:             &SessionStoreMockClearParams{ctx, w, r},
		expectationOrigins: SessionStoreMockClearExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmClear.expectations = append(mmClear.expectations, expectation)
	return expectation
}

// Then sets up SessionStore.Clear return parameters for the expectation previously defined by the When method
func (e *SessionStoreMockClearExpectation) Then(err error) *SessionStoreMock {
	e.results = &SessionStoreMockClearResults{err}
	return e.mock
}

// Times sets number of times SessionStore.Clear should be invoked
func (mmClear *mSessionStoreMockClear) Times(n uint64) *mSessionStoreMockClear {
	if n == 0 {
		mmClear.mock.t.Fatalf("Times of SessionStoreMock.Clear mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmClear.expectedInvocations, n)
	mmClear.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmClear
}

func (mmClear *mSessionStoreMockClear) invocationsDone() bool {
	if len(mmClear.expectations) == 0 && mmClear.defaultExpectation == nil && mmClear.mock.funcClear == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmClear.mock.afterClearCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmClear.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Clear implements mm_http.SessionStore
func (mmClear *SessionStoreMock) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) (err error) {
	mm_atomic.AddUint64(&mmClear.beforeClearCounter, 1)
	defer mm_atomic.AddUint64(&mmClear.afterClearCounter, 1)

	mmClear.t.Helper()

	if mmClear.inspectFuncClear != nil {
		mmClear.inspectFuncClear(ctx, w, r)
	}

	mm_params := SessionStoreMockClearParams{ctx, w, r}

	// Record call args
	mmClear.ClearMock.mutex.Lock()
	mmClear.ClearMock.callArgs = append(mmClear.ClearMock.callArgs, &mm_params)
	mmClear.ClearMock.mutex.Unlock()

	for _, e := range mmClear.ClearMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmClear.ClearMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmClear.ClearMock.defaultExpectation.Counter, 1)
		mm_want := mmClear.ClearMock.defaultExpectation.params
		mm_want_ptrs := mmClear.ClearMock.defaultExpectation.paramPtrs

		mm_got := SessionStoreMockClearParams{ctx, w, r}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmClear.t.Errorf("SessionStoreMock.Clear got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmClear.ClearMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.w != nil && !minimock.Equal(*mm_want_ptrs.w, mm_got.w) {
				mmClear.t.Errorf("SessionStoreMock.Clear got unexpected parameter w, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmClear.ClearMock.defaultExpectation.expectationOrigins.originW, *mm_want_ptrs.w, mm_got.w, minimock.Diff(*mm_want_ptrs.w, mm_got.w))
			}

			if mm_want_ptrs.r != nil && !minimock.Equal(*mm_want_ptrs.r, mm_got.r) {
				mmClear.t.Errorf("SessionStoreMock.Clear got unexpected parameter r, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmClear.ClearMock.defaultExpectation.expectationOrigins.originR, *mm_want_ptrs.r, mm_got.r, minimock.Diff(*mm_want_ptrs.r, mm_got.r))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmClear.t.Errorf("SessionStoreMock.Clear got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmClear.ClearMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmClear.ClearMock.defaultExpectation.results
		if mm_results == nil {
			mmClear.t.Fatal("No results are set for the SessionStoreMock.Clear")
		}
		return (*mm_results).err
	}
	if mmClear.funcClear != nil {
		return mmClear.funcClear(ctx, w, r)
	}
	mmClear.t.Fatalf("Unexpected call to SessionStoreMock.Clear. %v %v %v", ctx, w, r)
	return
}

// ClearAfterCounter returns a count of finished SessionStoreMock.Clear invocations
func (mmClear *SessionStoreMock) ClearAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmClear.afterClearCounter)
}

// ClearBeforeCounter returns a count of SessionStoreMock.Clear invocations
func (mmClear *SessionStoreMock) ClearBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmClear.beforeClearCounter)
}

// Calls returns a list of arguments used in each call to SessionStoreMock.Clear.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmClear *mSessionStoreMockClear) Calls() []*SessionStoreMockClearParams {
	mmClear.mutex.RLock()

	argCopy := make([]*SessionStoreMockClearParams, len(mmClear.callArgs))
	copy(argCopy, mmClear.callArgs)

	mmClear.mutex.RUnlock()

	return argCopy
}

// MinimockClearDone returns true if the count of the Clear invocations corresponds
// the number of defined expectations
func (m *SessionStoreMock) MinimockClearDone() bool {
	if m.ClearMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.ClearMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ClearMock.invocationsDone()
}

// MinimockClearInspect logs each unmet expectation
func (m *SessionStoreMock) MinimockClearInspect() {
	for _, e := range m.ClearMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to SessionStoreMock.Clear at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterClearCounter := mm_atomic.LoadUint64(&m.afterClearCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ClearMock.defaultExpectation != nil && afterClearCounter < 1 {
		if m.ClearMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to SessionStoreMock.Clear at\n%s", m.ClearMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to SessionStoreMock.Clear at\n%s with params: %#v", m.ClearMock.defaultExpectation.expectationOrigins.origin, *m.ClearMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcClear != nil && afterClearCounter < 1 {
		m.t.Errorf("Expected call to SessionStoreMock.Clear at\n%s", m.funcClearOrigin)
	}

	if !m.ClearMock.invocationsDone() && afterClearCounter > 0 {
		m.t.Errorf("Expected %d calls to SessionStoreMock.Clear at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ClearMock.expectedInvocations), m.ClearMock.expectedInvocationsOrigin, afterClearCounter)
	}
}

type mSessionStoreMockLoad struct {
	optional           bool
	mock               *SessionStoreMock
	defaultExpectation *SessionStoreMockLoadExpectation
	expectations       []*SessionStoreMockLoadExpectation

	callArgs []*SessionStoreMockLoadParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// SessionStoreMockLoadExpectation specifies expectation struct of the SessionStore.Load
type SessionStoreMockLoadExpectation struct {
	mock               *SessionStoreMock
	params             *SessionStoreMockLoadParams
	paramPtrs          *SessionStoreMockLoadParamPtrs
	expectationOrigins SessionStoreMockLoadExpectationOrigins
	results            *SessionStoreMockLoadResults
	returnOrigin       string
	Counter            uint64
}

// SessionStoreMockLoadParams contains parameters of the SessionStore.Load
type SessionStoreMockLoadParams struct {
	r *http.Request
}

// SessionStoreMockLoadParamPtrs contains pointers to parameters of the SessionStore.Load
type SessionStoreMockLoadParamPtrs struct {
	r **http.Request
}

// SessionStoreMockLoadResults contains results of the SessionStore.Load
type SessionStoreMockLoadResults struct {
	sp1 *auth.Session
	err error
}

// SessionStoreMockLoadOrigins contains origins of expectations of the SessionStore.Load
type SessionStoreMockLoadExpectationOrigins struct {
	origin  string
	originR string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmLoad *mSessionStoreMockLoad) Optional() *mSessionStoreMockLoad {
	mmLoad.optional = true
	return mmLoad
}

// Expect sets up expected params for SessionStore.Load
func (mmLoad *mSessionStoreMockLoad) Expect(r *http.Request) *mSessionStoreMockLoad {
	if mmLoad.mock.funcLoad != nil {
		mmLoad.mock.t.Fatalf("SessionStoreMock.Load mock is already set by Set")
	}

	if mmLoad.defaultExpectation == nil {
		mmLoad.defaultExpectation = &SessionStoreMockLoadExpectation{}
	}

	if mmLoad.defaultExpectation.paramPtrs != nil {
		mmLoad.mock.t.Fatalf("SessionStoreMock.Load mock is already set by ExpectParams functions")
	}

	mmLoad.defaultExpectation.params = &SessionStoreMockLoadParams{r}
	mmLoad.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmLoad.expectations {
		if minimock.Equal(e.params, mmLoad.defaultExpectation.params) {
			mmLoad.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmLoad.defaultExpectation.params)
		}
	}

	return mmLoad
}

// ExpectRParam1 sets up expected param r for SessionStore.Load
func (mmLoad *mSessionStoreMockLoad) ExpectRParam1(r *http.Request) *mSessionStoreMockLoad {
	if mmLoad.mock.funcLoad != nil {
		mmLoad.mock.t.Fatalf("SessionStoreMock.Load mock is already set by Set")
	}

	if mmLoad.defaultExpectation == nil {
		mmLoad.defaultExpectation = &SessionStoreMockLoadExpectation{}
	}

	if mmLoad.defaultExpectation.params != nil {
		mmLoad.mock.t.Fatalf("SessionStoreMock.Load mock is already set by Expect")
	}

	if mmLoad.defaultExpectation.paramPtrs == nil {
		mmLoad.defaultExpectation.paramPtrs = &SessionStoreMockLoadParamPtrs{}
	}
	mmLoad.defaultExpectation.paramPtrs.r = &r
	mmLoad.defaultExpectation.expectationOrigins.originR = minimock.CallerInfo(1)

	return mmLoad
}

// Inspect accepts an inspector function that has same arguments as the SessionStore.Load
func (mmLoad *mSessionStoreMockLoad) Inspect(f func(r *http.Request)) *mSessionStoreMockLoad {
	if mmLoad.mock.inspectFuncLoad != nil {
		mmLoad.mock.t.Fatalf("Inspect function is already set for SessionStoreMock.Load")
	}

	mmLoad.mock.inspectFuncLoad = f

	return mmLoad
}

// Return sets up results that will be returned by SessionStore.Load
func (mmLoad *mSessionStoreMockLoad) Return(sp1 *auth.Session, err error) *SessionStoreMock {
	if mmLoad.mock.funcLoad != nil {
		mmLoad.mock.t.Fatalf("SessionStoreMock.Load mock is already set by Set")
	}

	if mmLoad.defaultExpectation == nil {
		mmLoad.defaultExpectation = &SessionStoreMockLoadExpectation{mock: mmLoad.mock}
	}
	mmLoad.defaultExpectation.results = &SessionStoreMockLoadResults{sp1, err}
	mmLoad.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmLoad.mock
}

// Set uses given function f to mock the SessionStore.Load method
func (mmLoad *mSessionStoreMockLoad) Set(f func(r *http.Request) (sp1 *auth.Session, err error)) *SessionStoreMock {
	if mmLoad.defaultExpectation != nil {
		mmLoad.mock.t.Fatalf("Default expectation is already set for the SessionStore.Load method")
	}

	if len(mmLoad.expectations) > 0 {
		mmLoad.mock.t.Fatalf("Some expectations are already set for the SessionStore.Load method")
	}

	mmLoad.mock.funcLoad = f
	mmLoad.mock.funcLoadOrigin = minimock.CallerInfo(1)
	return mmLoad.mock
}

// When sets expectation for the SessionStore.Load which will trigger the result defined by the following
// Then helper
func (mmLoad *mSessionStoreMockLoad) When(r *http.Request) *SessionStoreMockLoadExpectation {
	if mmLoad.mock.funcLoad != nil {
		mmLoad.mock.t.Fatalf("SessionStoreMock.Load mock is already set by Set")
	}

	expectation := &SessionStoreMockLoadExpectation{
		mock:               mmLoad.mock,
		params:             &SessionStoreMockLoadParams{r},
		expectationOrigins: SessionStoreMockLoadExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmLoad.expectations = append(mmLoad.expectations, expectation)
	return expectation
}

// Then sets up SessionStore.Load return parameters for the expectation previously defined by the When method
func (e *SessionStoreMockLoadExpectation) Then(sp1 *auth.Session, err error) *SessionStoreMock {
	e.results = &SessionStoreMockLoadResults{sp1, err}
	return e.mock
}

// Times sets number of times SessionStore.Load should be invoked
func (mmLoad *mSessionStoreMockLoad) Times(n uint64) *mSessionStoreMockLoad {
	if n == 0 {
		mmLoad.mock.t.Fatalf("Times of SessionStoreMock.Load mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmLoad.expectedInvocations, n)
	mmLoad.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmLoad
}

func (mmLoad *mSessionStoreMockLoad) invocationsDone() bool {
	if len(mmLoad.expectations) == 0 && mmLoad.defaultExpectation == nil && mmLoad.mock.funcLoad == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmLoad.mock.afterLoadCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmLoad.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Load implements mm_http.SessionStore
func (mmLoad *SessionStoreMock) Load(r *http.Request) (sp1 *auth.Session, err error) {
	mm_atomic.AddUint64(&mmLoad.beforeLoadCounter, 1)
	defer mm_atomic.AddUint64(&mmLoad.afterLoadCounter, 1)

	mmLoad.t.Helper()

	if mmLoad.inspectFuncLoad != nil {
		mmLoad.inspectFuncLoad(r)
	}

	mm_params := SessionStoreMockLoadParams{r}

	// Record call args
	mmLoad.LoadMock.mutex.Lock()
	mmLoad.LoadMock.callArgs = append(mmLoad.LoadMock.callArgs, &mm_params)
	mmLoad.LoadMock.mutex.Unlock()

	for _, e := range mmLoad.LoadMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.sp1, e.results.err
		}
	}

	if mmLoad.LoadMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmLoad.LoadMock.defaultExpectation.Counter, 1)
		mm_want := mmLoad.LoadMock.defaultExpectation.params
		mm_want_ptrs := mmLoad.LoadMock.defaultExpectation.paramPtrs

		mm_got := SessionStoreMockLoadParams{r}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.r != nil && !minimock.Equal(*mm_want_ptrs.r, mm_got.r) {
				mmLoad.t.Errorf("SessionStoreMock.Load got unexpected parameter r, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmLoad.LoadMock.defaultExpectation.expectationOrigins.originR, *mm_want_ptrs.r, mm_got.r, minimock.Diff(*mm_want_ptrs.r, mm_got.r))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmLoad.t.Errorf("SessionStoreMock.Load got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmLoad.LoadMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmLoad.LoadMock.defaultExpectation.results
		if mm_results == nil {
			mmLoad.t.Fatal("No results are set for the SessionStoreMock.Load")
		}
		return (*mm_results).sp1, (*mm_results).err
	}
	if mmLoad.funcLoad != nil {
		return mmLoad.funcLoad(r)
	}
	mmLoad.t.Fatalf("Unexpected call to SessionStoreMock.Load. %v", r)
	return
}

// LoadAfterCounter returns a count of finished SessionStoreMock.Load invocations
func (mmLoad *SessionStoreMock) LoadAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLoad.afterLoadCounter)
}

// LoadBeforeCounter returns a count of SessionStoreMock.Load invocations
func (mmLoad *SessionStoreMock) LoadBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLoad.beforeLoadCounter)
}

// Calls returns a list of arguments used in each call to SessionStoreMock.Load.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmLoad *mSessionStoreMockLoad) Calls() []*SessionStoreMockLoadParams {
	mmLoad.mutex.RLock()

	argCopy := make([]*SessionStoreMockLoadParams, len(mmLoad.callArgs))
	copy(argCopy, mmLoad.callArgs)

	mmLoad.mutex.RUnlock()

	return argCopy
}

// MinimockLoadDone returns true if the count of the Load invocations corresponds
// the number of defined expectations
func (m *SessionStoreMock) MinimockLoadDone() bool {
	if m.LoadMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.LoadMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.LoadMock.invocationsDone()
}

// MinimockLoadInspect logs each unmet expectation
func (m *SessionStoreMock) MinimockLoadInspect() {
	for _, e := range m.LoadMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to SessionStoreMock.Load at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterLoadCounter := mm_atomic.LoadUint64(&m.afterLoadCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.LoadMock.defaultExpectation != nil && afterLoadCounter < 1 {
		if m.LoadMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to SessionStoreMock.Load at\n%s", m.LoadMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to SessionStoreMock.Load at\n%s with params: %#v", m.LoadMock.defaultExpectation.expectationOrigins.origin, *m.LoadMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcLoad != nil && afterLoadCounter < 1 {
		m.t.Errorf("Expected call to SessionStoreMock.Load at\n%s", m.funcLoadOrigin)
	}

	if !m.LoadMock.invocationsDone() && afterLoadCounter > 0 {
		m.t.Errorf("Expected %d calls to SessionStoreMock.Load at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.LoadMock.expectedInvocations), m.LoadMock.expectedInvocationsOrigin, afterLoadCounter)
	}
}

type mSessionStoreMockSave struct {
	optional           bool
	mock               *SessionStoreMock
	defaultExpectation *SessionStoreMockSaveExpectation
	expectations       []*SessionStoreMockSaveExpectation

	callArgs []*SessionStoreMockSaveParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// SessionStoreMockSaveExpectation specifies expectation struct of the SessionStore.Save
type SessionStoreMockSaveExpectation struct {
	mock               *SessionStoreMock
	params             *SessionStoreMockSaveParams
	paramPtrs          *SessionStoreMockSaveParamPtrs
	expectationOrigins SessionStoreMockSaveExpectationOrigins
	results            *SessionStoreMockSaveResults
	returnOrigin       string
	Counter            uint64
}

// SessionStoreMockSaveParams contains parameters of the SessionStore.Save
type SessionStoreMockSaveParams struct {
	ctx context.Context
	w   http.ResponseWriter
	s   *auth.Session
}

// SessionStoreMockSaveParamPtrs contains pointers to parameters of the SessionStore.Save
type SessionStoreMockSaveParamPtrs struct {
	ctx *context.Context
	w   *http.ResponseWriter
	s   **auth.Session
}

// SessionStoreMockSaveResults contains results of the SessionStore.Save
type SessionStoreMockSaveResults struct {
	err error
}

// SessionStoreMockSaveOrigins contains origins of expectations of the SessionStore.Save
type SessionStoreMockSaveExpectationOrigins struct {
	origin    string
	originCtx string
	originW   string
	originS   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmSave *mSessionStoreMockSave) Optional() *mSessionStoreMockSave {
	mmSave.optional = true
	return mmSave
}

// Expect sets up expected params for SessionStore.Save
func (mmSave *mSessionStoreMockSave) Expect(ctx context.Context, w http.ResponseWriter, s *auth.Session) *mSessionStoreMockSave {
	if mmSave.mock.funcSave != nil {
		mmSave.mock.t.Fatalf("SessionStoreMock.Save mock is already set by Set")
	}

	if mmSave.defaultExpectation == nil {
		mmSave.defaultExpectation = &SessionStoreMockSaveExpectation{}
	}

	if mmSave.defaultExpectation.paramPtrs != nil {
		mmSave.mock.t.Fatalf("SessionStoreMock.Save mock is already set by ExpectParams functions")
	}

	mmSave.defaultExpectation.params = &SessionStoreMockSaveParams{ctx, w, s}
	mmSave.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmSave.expectations {
		if minimock.Equal(e.params, mmSave.defaultExpectation.params) {
			mmSave.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmSave.defaultExpectation.params)
		}
	}

	return mmSave
}

// ExpectCtxParam1 sets up expected param ctx for SessionStore.Save
func (mmSave *mSessionStoreMockSave) ExpectCtxParam1(ctx context.Context) *mSessionStoreMockSave {
	if mmSave.mock.funcSave != nil {
		mmSave.mock.t.Fatalf("SessionStoreMock.Save mock is already set by Set")
	}

	if mmSave.defaultExpectation == nil {
		mmSave.defaultExpectation = &SessionStoreMockSaveExpectation{}
	}

	if mmSave.defaultExpectation.params != nil {
		mmSave.mock.t.Fatalf("SessionStoreMock.Save mock is already set by Expect")
	}

	if mmSave.defaultExpectation.paramPtrs == nil {
		mmSave.defaultExpectation.paramPtrs = &SessionStoreMockSaveParamPtrs{}
	}
	mmSave.defaultExpectation.paramPtrs.ctx = &ctx
	mmSave.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmSave
}

// ExpectWParam2 sets up expected param w for SessionStore.Save
func (mmSave *mSessionStoreMockSave) ExpectWParam2(w http.ResponseWriter) *mSessionStoreMockSave {
	if mmSave.mock.funcSave != nil {
		mmSave.mock.t.Fatalf("SessionStoreMock.Save mock is already set by Set")
	}

	if mmSave.defaultExpectation == nil {
		mmSave.defaultExpectation = &SessionStoreMockSaveExpectation{}
	}

	if mmSave.defaultExpectation.params != nil {
		mmSave.mock.t.Fatalf("SessionStoreMock.Save mock is already set by Expect")
	}

	if mmSave.defaultExpectation.paramPtrs == nil {
		mmSave.defaultExpectation.paramPtrs = &SessionStoreMockSaveParamPtrs{}
	}
	mmSave.defaultExpectation.paramPtrs.w = &w
	mmSave.defaultExpectation.expectationOrigins.originW = minimock.CallerInfo(1)

	return mmSave
}

// ExpectSParam3 sets up expected param s for SessionStore.Save
func (mmSave *mSessionStoreMockSave) ExpectSParam3(s *auth.Session) *mSessionStoreMockSave {
	if mmSave.mock.funcSave != nil {
		mmSave.mock.t.Fatalf("SessionStoreMock.Save mock is already set by Set")
	}

	if mmSave.defaultExpectation == nil {
		mmSave.defaultExpectation = &SessionStoreMockSaveExpectation{}
	}

	if mmSave.defaultExpectation.params != nil {
		mmSave.mock.t.Fatalf("SessionStoreMock.Save mock is already set by Expect")
	}

	if mmSave.defaultExpectation.paramPtrs == nil {
		mmSave.defaultExpectation.paramPtrs = &SessionStoreMockSaveParamPtrs{}
	}
	mmSave.defaultExpectation.paramPtrs.s = &s
	mmSave.defaultExpectation.expectationOrigins.originS = minimock.CallerInfo(1)

	return mmSave
}

// Inspect accepts an inspector function that has same arguments as the SessionStore.Save
func (mmSave *mSessionStoreMockSave) Inspect(f func(ctx context.Context, w http.ResponseWriter, s *auth.Session)) *mSessionStoreMockSave {
	if mmSave.mock.inspectFuncSave != nil {
		mmSave.mock.t.Fatalf("Inspect function is already set for SessionStoreMock.Save")
	}

	mmSave.mock.inspectFuncSave = f

	return mmSave
}

// Return sets up results that will be returned by SessionStore.Save
func (mmSave *mSessionStoreMockSave) Return(err error) *SessionStoreMock {
	if mmSave.mock.funcSave != nil {
		mmSave.mock.t.Fatalf("SessionStoreMock.Save mock is already set by Set")
	}

	if mmSave.defaultExpectation == nil {
		mmSave.defaultExpectation = &SessionStoreMockSaveExpectation{mock: mmSave.mock}
	}
	mmSave.defaultExpectation.results = &SessionStoreMockSaveResults{err}
	mmSave.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmSave.mock
}

// Set uses given function f to mock the SessionStore.Save method
func (mmSave *mSessionStoreMockSave) Set(f func(ctx context.Context, w http.ResponseWriter, s *auth.Session) (err error)) *SessionStoreMock {
	if mmSave.defaultExpectation != nil {
		mmSave.mock.t.Fatalf("Default expectation is already set for the SessionStore.Save method")
	}

	if len(mmSave.expectations) > 0 {
		mmSave.mock.t.Fatalf("Some expectations are already set for the SessionStore.Save method")
	}

	mmSave.mock.funcSave = f
	mmSave.mock.funcSaveOrigin = minimock.CallerInfo(1)
	return mmSave.mock
}

// When sets expectation for the SessionStore.Save which will trigger the result defined by the following
// Then helper
func (mmSave *mSessionStoreMockSave) When(ctx context.Context, w http.ResponseWriter, s *auth.Session) *SessionStoreMockSaveExpectation {
	if mmSave.mock.funcSave != nil {
		mmSave.mock.t.Fatalf("SessionStoreMock.Save mock is already set by Set")
	}

	expectation := &SessionStoreMockSaveExpectation{
		mock:               mmSave.mock,
		params:             &SessionStoreMockSaveParams{ctx, w, s},
		expectationOrigins: SessionStoreMockSaveExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmSave.expectations = append(mmSave.expectations, expectation)
	return expectation
}

// Then sets up SessionStore.Save return parameters for the expectation previously defined by the When method
func (e *SessionStoreMockSaveExpectation) Then(err error) *SessionStoreMock {
	e.results = &SessionStoreMockSaveResults{err}
	return e.mock
}

// Times sets number of times SessionStore.Save should be invoked
func (mmSave *mSessionStoreMockSave) Times(n uint64) *mSessionStoreMockSave {
	if n == 0 {
		mmSave.mock.t.Fatalf("Times of SessionStoreMock.Save mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmSave.expectedInvocations, n)
	mmSave.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmSave
}

func (mmSave *mSessionStoreMockSave) invocationsDone() bool {
	if len(mmSave.expectations) == 0 && mmSave.defaultExpectation == nil && mmSave.mock.funcSave == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmSave.mock.afterSaveCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmSave.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Save implements mm_http.SessionStore
func (mmSave *SessionStoreMock) Save(ctx context.Context, w http.ResponseWriter, s *auth.Session) (err error) {
	mm_atomic.AddUint64(&mmSave.beforeSaveCounter, 1)
	defer mm_atomic.AddUint64(&mmSave.afterSaveCounter, 1)

	mmSave.t.Helper()

	if mmSave.inspectFuncSave != nil {
		mmSave.inspectFuncSave(ctx, w, s)
	}

	mm_params := SessionStoreMockSaveParams{ctx, w, s}

	// Record call args
	mmSave.SaveMock.mutex.Lock()
	mmSave.SaveMock.callArgs = append(mmSave.SaveMock.callArgs, &mm_params)
	mmSave.SaveMock.mutex.Unlock()

	for _, e := range mmSave.SaveMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmSave.SaveMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmSave.SaveMock.defaultExpectation.Counter, 1)
		mm_want := mmSave.SaveMock.defaultExpectation.params
		mm_want_ptrs := mmSave.SaveMock.defaultExpectation.paramPtrs

		mm_got := SessionStoreMockSaveParams{ctx, w, s}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmSave.t.Errorf("SessionStoreMock.Save got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSave.SaveMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.w != nil && !minimock.Equal(*mm_want_ptrs.w, mm_got.w) {
				mmSave.t.Errorf("SessionStoreMock.Save got unexpected parameter w, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSave.SaveMock.defaultExpectation.expectationOrigins.originW, *mm_want_ptrs.w, mm_got.w, minimock.Diff(*mm_want_ptrs.w, mm_got.w))
			}

			if mm_want_ptrs.s != nil && !minimock.Equal(*mm_want_ptrs.s, mm_got.s) {
				mmSave.t.Errorf("SessionStoreMock.Save got unexpected parameter s, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSave.SaveMock.defaultExpectation.expectationOrigins.originS, *mm_want_ptrs.s, mm_got.s, minimock.Diff(*mm_want_ptrs.s, mm_got.s))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmSave.t.Errorf("SessionStoreMock.Save got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmSave.SaveMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmSave.SaveMock.defaultExpectation.results
		if mm_results == nil {
			mmSave.t.Fatal("No results are set for the SessionStoreMock.Save")
		}
		return (*mm_results).err
	}
	if mmSave.funcSave != nil {
		return mmSave.funcSave(ctx, w, s)
	}
	mmSave.t.Fatalf("Unexpected call to SessionStoreMock.Save. %v %v %v", ctx, w, s)
	return
}

// SaveAfterCounter returns a count of finished SessionStoreMock.Save invocations
func (mmSave *SessionStoreMock) SaveAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSave.afterSaveCounter)
}

// SaveBeforeCounter returns a count of SessionStoreMock.Save invocations
func (mmSave *SessionStoreMock) SaveBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSave.beforeSaveCounter)
}

// Calls returns a list of arguments used in each call to SessionStoreMock.Save.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmSave *mSessionStoreMockSave) Calls() []*SessionStoreMockSaveParams {
	mmSave.mutex.RLock()

	argCopy := make([]*SessionStoreMockSaveParams, len(mmSave.callArgs))
	copy(argCopy, mmSave.callArgs)

	mmSave.mutex.RUnlock()

	return argCopy
}

// MinimockSaveDone returns true if the count of the Save invocations corresponds
// the number of defined expectations
func (m *SessionStoreMock) MinimockSaveDone() bool {
	if m.SaveMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.SaveMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.SaveMock.invocationsDone()
}

// MinimockSaveInspect logs each unmet expectation
func (m *SessionStoreMock) MinimockSaveInspect() {
	for _, e := range m.SaveMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to SessionStoreMock.Save at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterSaveCounter := mm_atomic.LoadUint64(&m.afterSaveCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.SaveMock.defaultExpectation != nil && afterSaveCounter < 1 {
		if m.SaveMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to SessionStoreMock.Save at\n%s", m.SaveMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to SessionStoreMock.Save at\n%s with params: %#v", m.SaveMock.defaultExpectation.expectationOrigins.origin, *m.SaveMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcSave != nil && afterSaveCounter < 1 {
		m.t.Errorf("Expected call to SessionStoreMock.Save at\n%s", m.funcSaveOrigin)
	}

	if !m.SaveMock.invocationsDone() && afterSaveCounter > 0 {
		m.t.Errorf("Expected %d calls to SessionStoreMock.Save at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.SaveMock.expectedInvocations), m.SaveMock.expectedInvocationsOrigin, afterSaveCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *SessionStoreMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockClearInspect()

			m.MinimockLoadInspect()

			m.MinimockSaveInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *SessionStoreMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *SessionStoreMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockClearDone() &&
		m.MinimockLoadDone() &&
		m.MinimockSaveDone()
}
