// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/66gu1/filmoradmin/internal/app/auth/usecase.Limiter -o limiter_mock.go -n LimiterMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// LimiterMock implements mm_usecase.Limiter
type LimiterMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcAllow          func(ctx context.Context, ip string, username string) (b1 bool, err error)
	funcAllowOrigin    string
	inspectFuncAllow   func(ctx context.Context, ip string, username string)
	afterAllowCounter  uint64
	beforeAllowCounter uint64
	AllowMock          mLimiterMockAllow

	funcReset          func(ctx context.Context, ip string, username string) (err error)
	funcResetOrigin    string
	inspectFuncReset   func(ctx context.Context, ip string, username string)
	afterResetCounter  uint64
	beforeResetCounter uint64
	ResetMock          mLimiterMockReset
}

// NewLimiterMock returns a mock for mm_usecase.Limiter
func NewLimiterMock(t minimock.Tester) *LimiterMock {
	m := &LimiterMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.AllowMock = mLimiterMockAllow{mock: m}
	m.AllowMock.callArgs = []*LimiterMockAllowParams{}

	m.ResetMock = mLimiterMockReset{mock: m}
	m.ResetMock.callArgs = []*LimiterMockResetParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mLimiterMockAllow struct {
	optional           bool
	mock               *LimiterMock
	defaultExpectation *LimiterMockAllowExpectation
	expectations       []*LimiterMockAllowExpectation

	callArgs []*LimiterMockAllowParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// LimiterMockAllowExpectation specifies expectation struct of the Limiter.Allow
type LimiterMockAllowExpectation struct {
	mock               *LimiterMock
	params             *LimiterMockAllowParams
	paramPtrs          *LimiterMockAllowParamPtrs
	expectationOrigins LimiterMockAllowExpectationOrigins
	results            *LimiterMockAllowResults
	returnOrigin       string
	Counter            uint64
}

// LimiterMockAllowParams contains parameters of the Limiter.Allow
type LimiterMockAllowParams struct {
	ctx      context.Context
	ip       string
	username string
}

// LimiterMockAllowParamPtrs contains pointers to parameters of the Limiter.Allow
type LimiterMockAllowParamPtrs struct {
	ctx      *context.Context
	ip       *string
	username *string
}

// LimiterMockAllowResults contains results of the Limiter.Allow
type LimiterMockAllowResults struct {
	b1  bool
	err error
}

// LimiterMockAllowOrigins contains origins of expectations of the Limiter.Allow
type LimiterMockAllowExpectationOrigins struct {
	origin         string
	originCtx      string
	originIp       string
	originUsername string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmAllow *mLimiterMockAllow) Optional() *mLimiterMockAllow {
	mmAllow.optional = true
	return mmAllow
}

// Expect sets up expected params for Limiter.Allow
func (mmAllow *mLimiterMockAllow) Expect(ctx context.Context, ip string, username string) *mLimiterMockAllow {
	if mmAllow.mock.funcAllow != nil {
		mmAllow.mock.t.Fatalf("LimiterMock.Allow mock is already set by Set")
	}

	if mmAllow.defaultExpectation == nil {
		mmAllow.defaultExpectation = &LimiterMockAllowExpectation{}
	}

	if mmAllow.defaultExpectation.paramPtrs != nil {
		mmAllow.mock.t.Fatalf("LimiterMock.Allow mock is already set by ExpectParams functions")
	}

	mmAllow.defaultExpectation.params = &LimiterMockAllowParams{ctx, ip, username}
	mmAllow.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmAllow.expectations {
		if minimock.Equal(e.params, mmAllow.defaultExpectation.params) {
			mmAllow.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmAllow.defaultExpectation.params)
		}
	}

	return mmAllow
}

// ExpectCtxParam1 sets up expected param ctx for Limiter.Allow
func (mmAllow *mLimiterMockAllow) ExpectCtxParam1(ctx context.Context) *mLimiterMockAllow {
	if mmAllow.mock.funcAllow != nil {
		mmAllow.mock.t.Fatalf("LimiterMock.Allow mock is already set by Set")
	}

	if mmAllow.defaultExpectation == nil {
		mmAllow.defaultExpectation = &LimiterMockAllowExpectation{}
	}

	if mmAllow.defaultExpectation.params != nil {
		mmAllow.mock.t.Fatalf("LimiterMock.Allow mock is already set by Expect")
	}

	if mmAllow.defaultExpectation.paramPtrs == nil {
		mmAllow.defaultExpectation.paramPtrs = &LimiterMockAllowParamPtrs{}
	}
	mmAllow.defaultExpectation.paramPtrs.ctx = &ctx
	mmAllow.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmAllow
}

// ExpectIpParam2 sets up expected param ip for Limiter.Allow
func (mmAllow *mLimiterMockAllow) ExpectIpParam2(ip string) *mLimiterMockAllow {
	if mmAllow.mock.funcAllow != nil {
		mmAllow.mock.t.Fatalf("LimiterMock.Allow mock is already set by Set")
	}

	if mmAllow.defaultExpectation == nil {
		mmAllow.defaultExpectation = &LimiterMockAllowExpectation{}
	}

	if mmAllow.defaultExpectation.params != nil {
		mmAllow.mock.t.Fatalf("LimiterMock.Allow mock is already set by Expect")
	}

	if mmAllow.defaultExpectation.paramPtrs == nil {
		mmAllow.defaultExpectation.paramPtrs = &LimiterMockAllowParamPtrs{}
	}
	mmAllow.defaultExpectation.paramPtrs.ip = &ip
	mmAllow.defaultExpectation.expectationOrigins.originIp = minimock.CallerInfo(1)

	return mmAllow
}

// ExpectUsernameParam3 sets up expected param username for Limiter.Allow
func (mmAllow *mLimiterMockAllow) ExpectUsernameParam3(username string) *mLimiterMockAllow {
	if mmAllow.mock.funcAllow != nil {
		mmAllow.mock.t.Fatalf("LimiterMock.Allow mock is already set by Set")
	}

	if mmAllow.defaultExpectation == nil {
		mmAllow.defaultExpectation = &LimiterMockAllowExpectation{}
	}

	if mmAllow.defaultExpectation.params != nil {
		mmAllow.mock.t.Fatalf("LimiterMock.Allow mock is already set by Expect")
	}

	if mmAllow.defaultExpectation.paramPtrs == nil {
		mmAllow.defaultExpectation.paramPtrs = &LimiterMockAllowParamPtrs{}
	}
	mmAllow.defaultExpectation.paramPtrs.username = &username
	mmAllow.defaultExpectation.expectationOrigins.originUsername = minimock.CallerInfo(1)

	return mmAllow
}

// Inspect accepts an inspector function that has same arguments as the Limiter.Allow
func (mmAllow *mLimiterMockAllow) Inspect(f func(ctx context.Context, ip string, username string)) *mLimiterMockAllow {
	if mmAllow.mock.inspectFuncAllow != nil {
		mmAllow.mock.t.Fatalf("Inspect function is already set for LimiterMock.Allow")
	}

	mmAllow.mock.inspectFuncAllow = f

	return mmAllow
}

// Return sets up results that will be returned by Limiter.Allow
func (mmAllow *mLimiterMockAllow) Return(b1 bool, err error) *LimiterMock {
	if mmAllow.mock.funcAllow != nil {
		mmAllow.mock.t.Fatalf("LimiterMock.Allow mock is already set by Set")
	}

	if mmAllow.defaultExpectation == nil {
		mmAllow.defaultExpectation = &LimiterMockAllowExpectation{mock: mmAllow.mock}
	}
	mmAllow.defaultExpectation.results = &LimiterMockAllowResults{b1, err}
	mmAllow.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmAllow.mock
}

// Set uses given function f to mock the Limiter.Allow method
func (mmAllow *mLimiterMockAllow) Set(f func(ctx context.Context, ip string, username string) (b1 bool, err error)) *LimiterMock {
	if mmAllow.defaultExpectation != nil {
		mmAllow.mock.t.Fatalf("Default expectation is already set for the Limiter.Allow method")
	}

	if len(mmAllow.expectations) > 0 {
		mmAllow.mock.t.Fatalf("Some expectations are already set for the Limiter.Allow method")
	}

	mmAllow.mock.funcAllow = f
	mmAllow.mock.funcAllowOrigin = minimock.CallerInfo(1)
	return mmAllow.mock
}

// When sets expectation for the Limiter.Allow which will trigger the result defined by the following
// Then helper
func (mmAllow *mLimiterMockAllow) When(ctx context.Context, ip string, username string) *LimiterMockAllowExpectation {
	if mmAllow.mock.funcAllow != nil {
		mmAllow.mock.t.Fatalf("LimiterMock.Allow mock is already set by Set")
	}

	expectation := &LimiterMockAllowExpectation{
		mock:               mmAllow.mock,
		params:             &LimiterMockAllowParams{ctx, ip, username},
		expectationOrigins: LimiterMockAllowExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmAllow.expectations = append(mmAllow.expectations, expectation)
	return expectation
}

// Then sets up Limiter.Allow return parameters for the expectation previously defined by the When method
func (e *LimiterMockAllowExpectation) Then(b1 bool, err error) *LimiterMock {
	e.results = &LimiterMockAllowResults{b1, err}
	return e.mock
}

// Times sets number of times Limiter.Allow should be invoked
func (mmAllow *mLimiterMockAllow) Times(n uint64) *mLimiterMockAllow {
	if n == 0 {
		mmAllow.mock.t.Fatalf("Times of LimiterMock.Allow mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmAllow.expectedInvocations, n)
	mmAllow.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmAllow
}

func (mmAllow *mLimiterMockAllow) invocationsDone() bool {
	if len(mmAllow.expectations) == 0 && mmAllow.defaultExpectation == nil && mmAllow.mock.funcAllow == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmAllow.mock.afterAllowCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmAllow.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Allow implements mm_usecase.Limiter
func (mmAllow *LimiterMock) Allow(ctx context.Context, ip string, username string) (b1 bool, err error) {
	mm_atomic.AddUint64(&mmAllow.beforeAllowCounter, 1)
	defer mm_atomic.AddUint64(&mmAllow.afterAllowCounter, 1)

	mmAllow.t.Helper()

	if mmAllow.inspectFuncAllow != nil {
		mmAllow.inspectFuncAllow(ctx, ip, username)
	}

	mm_params := LimiterMockAllowParams{ctx, ip, username}

	// Record call args
	mmAllow.AllowMock.mutex.Lock()
	mmAllow.AllowMock.callArgs = append(mmAllow.AllowMock.callArgs, &mm_params)
	mmAllow.AllowMock.mutex.Unlock()

	for _, e := range mmAllow.AllowMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.b1, e.results.err
		}
	}

	if mmAllow.AllowMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmAllow.AllowMock.defaultExpectation.Counter, 1)
		mm_want := mmAllow.AllowMock.defaultExpectation.params
		mm_want_ptrs := mmAllow.AllowMock.defaultExpectation.paramPtrs

		mm_got := LimiterMockAllowParams{ctx, ip, username}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmAllow.t.Errorf("LimiterMock.Allow got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAllow.AllowMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.ip != nil && !minimock.Equal(*mm_want_ptrs.ip, mm_got.ip) {
				mmAllow.t.Errorf("LimiterMock.Allow got unexpected parameter ip, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAllow.AllowMock.defaultExpectation.expectationOrigins.originIp, *mm_want_ptrs.ip, mm_got.ip, minimock.Diff(*mm_want_ptrs.ip, mm_got.ip))
			}

			if mm_want_ptrs.username != nil && !minimock.Equal(*mm_want_ptrs.username, mm_got.username) {
				mmAllow.t.Errorf("LimiterMock.Allow got unexpected parameter username, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAllow.AllowMock.defaultExpectation.expectationOrigins.originUsername, *mm_want_ptrs.username, mm_got.username, minimock.Diff(*mm_want_ptrs.username, mm_got.username))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmAllow.t.Errorf("LimiterMock.Allow got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmAllow.AllowMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmAllow.AllowMock.defaultExpectation.results
		if mm_results == nil {
			mmAllow.t.Fatal("No results are set for the LimiterMock.Allow")
		}
		return (*mm_results).b1, (*mm_results).err
	}
	if mmAllow.funcAllow != nil {
		return mmAllow.funcAllow(ctx, ip, username)
	}
	mmAllow.t.Fatalf("Unexpected call to LimiterMock.Allow. %v %v %v", ctx, ip, username)
	return
}

// AllowAfterCounter returns a count of finished LimiterMock.Allow invocations
func (mmAllow *LimiterMock) AllowAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAllow.afterAllowCounter)
}

// AllowBeforeCounter returns a count of LimiterMock.Allow invocations
func (mmAllow *LimiterMock) AllowBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAllow.beforeAllowCounter)
}

// Calls returns a list of arguments used in each call to LimiterMock.Allow.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmAllow *mLimiterMockAllow) Calls() []*LimiterMockAllowParams {
	mmAllow.mutex.RLock()

	argCopy := make([]*LimiterMockAllowParams, len(mmAllow.callArgs))
	copy(argCopy, mmAllow.callArgs)

	mmAllow.mutex.RUnlock()

	return argCopy
}

// MinimockAllowDone returns true if the count of the Allow invocations corresponds
// the number of defined expectations
func (m *LimiterMock) MinimockAllowDone() bool {
	if m.AllowMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.AllowMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.AllowMock.invocationsDone()
}

// MinimockAllowInspect logs each unmet expectation
func (m *LimiterMock) MinimockAllowInspect() {
	for _, e := range m.AllowMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to LimiterMock.Allow at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterAllowCounter := mm_atomic.LoadUint64(&m.afterAllowCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.AllowMock.defaultExpectation != nil && afterAllowCounter < 1 {
		if m.AllowMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to LimiterMock.Allow at\n%s", m.AllowMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to LimiterMock.Allow at\n%s with params: %#v", m.AllowMock.defaultExpectation.expectationOrigins.origin, *m.AllowMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcAllow != nil && afterAllowCounter < 1 {
		m.t.Errorf("Expected call to LimiterMock.Allow at\n%s", m.funcAllowOrigin)
	}

	if !m.AllowMock.invocationsDone() && afterAllowCounter > 0 {
		m.t.Errorf("Expected %d calls to LimiterMock.Allow at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.AllowMock.expectedInvocations), m.AllowMock.expectedInvocationsOrigin, afterAllowCounter)
	}
}

type mLimiterMockReset struct {
	optional           bool
	mock               *LimiterMock
	defaultExpectation *LimiterMockResetExpectation
	expectations       []*LimiterMockResetExpectation

	callArgs []*LimiterMockResetParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// LimiterMockResetExpectation specifies expectation struct of the Limiter.Reset
type LimiterMockResetExpectation struct {
	mock               *LimiterMock
	params             *LimiterMockResetParams
	paramPtrs          *LimiterMockResetParamPtrs
	expectationOrigins LimiterMockResetExpectationOrigins
	results            *LimiterMockResetResults
	returnOrigin       string
	Counter            uint64
}

// LimiterMockResetParams contains parameters of the Limiter.Reset
type LimiterMockResetParams struct {
	ctx      context.Context
	ip       string
	username string
}

// LimiterMockResetParamPtrs contains pointers to parameters of the Limiter.Reset
type LimiterMockResetParamPtrs struct {
	ctx      *context.Context
	ip       *string
	username *string
}

// LimiterMockResetResults contains results of the Limiter.Reset
type LimiterMockResetResults struct {
	err error
}

// LimiterMockResetOrigins contains origins of expectations of the Limiter.Reset
type LimiterMockResetExpectationOrigins struct {
	origin         string
	originCtx      string
	originIp       string
	originUsername string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmReset *mLimiterMockReset) Optional() *mLimiterMockReset {
	mmReset.optional = true
	return mmReset
}

// Expect sets up expected params for Limiter.Reset
func (mmReset *mLimiterMockReset) Expect(ctx context.Context, ip string, username string) *mLimiterMockReset {
	if mmReset.mock.funcReset != nil {
		mmReset.mock.t.Fatalf("LimiterMock.Reset mock is already set by Set")
	}

	if mmReset.defaultExpectation == nil {
		mmReset.defaultExpectation = &LimiterMockResetExpectation{}
	}

	if mmReset.defaultExpectation.paramPtrs != nil {
		mmReset.mock.t.Fatalf("LimiterMock.Reset mock is already set by ExpectParams functions")
	}

	mmReset.defaultExpectation.params = &LimiterMockResetParams{ctx, ip, username}
	mmReset.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmReset.expectations {
		if minimock.Equal(e.params, mmReset.defaultExpectation.params) {
			mmReset.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmReset.defaultExpectation.params)
		}
	}

	return mmReset
}

// ExpectCtxParam1 sets up expected param ctx for Limiter.Reset
func (mmReset *mLimiterMockReset) ExpectCtxParam1(ctx context.Context) *mLimiterMockReset {
	if mmReset.mock.funcReset != nil {
		mmReset.mock.t.Fatalf("LimiterMock.Reset mock is already set by Set")
	}

	if mmReset.defaultExpectation == nil {
		mmReset.defaultExpectation = &LimiterMockResetExpectation{}
	}

	if mmReset.defaultExpectation.params != nil {
		mmReset.mock.t.Fatalf("LimiterMock.Reset mock is already set by Expect")
	}

	if mmReset.defaultExpectation.paramPtrs == nil {
		mmReset.defaultExpectation.paramPtrs = &LimiterMockResetParamPtrs{}
	}
	mmReset.defaultExpectation.paramPtrs.ctx = &ctx
	mmReset.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmReset
}

// ExpectIpParam2 sets up expected param ip for Limiter.Reset
func (mmReset *mLimiterMockReset) ExpectIpParam2(ip string) *mLimiterMockReset {
	if mmReset.mock.funcReset != nil {
		mmReset.mock.t.Fatalf("LimiterMock.Reset mock is already set by Set")
	}

	if mmReset.defaultExpectation == nil {
		mmReset.defaultExpectation = &LimiterMockResetExpectation{}
	}

	if mmReset.defaultExpectation.params != nil {
		mmReset.mock.t.Fatalf("LimiterMock.Reset mock is already set by Expect")
	}

	if mmReset.defaultExpectation.paramPtrs == nil {
		mmReset.defaultExpectation.paramPtrs = &LimiterMockResetParamPtrs{}
	}
	mmReset.defaultExpectation.paramPtrs.ip = &ip
	mmReset.defaultExpectation.expectationOrigins.originIp = minimock.CallerInfo(1)

	return mmReset
}

// ExpectUsernameParam3 sets up expected param username for Limiter.Reset
func (mmReset *mLimiterMockReset) ExpectUsernameParam3(username string) *mLimiterMockReset {
	if mmReset.mock.funcReset != nil {
		mmReset.mock.t.Fatalf("LimiterMock.Reset mock is already set by Set")
	}

	if mmReset.defaultExpectation == nil {
		mmReset.defaultExpectation = &LimiterMockResetExpectation{}
	}

	if mmReset.defaultExpectation.params != nil {
		mmReset.mock.t.Fatalf("LimiterMock.Reset mock is already set by Expect")
	}

	if mmReset.defaultExpectation.paramPtrs == nil {
		mmReset.defaultExpectation.paramPtrs = &LimiterMockResetParamPtrs{}
	}
	mmReset.defaultExpectation.paramPtrs.username = &username
	mmReset.defaultExpectation.expectationOrigins.originUsername = minimock.CallerInfo(1)

	return mmReset
}

// Inspect accepts an inspector function that has same arguments as the Limiter.Reset
func (mmReset *mLimiterMockReset) Inspect(f func(ctx context.Context, ip string, username string)) *mLimiterMockReset {
	if mmReset.mock.inspectFuncReset != nil {
		mmReset.mock.t.Fatalf("Inspect function is already set for LimiterMock.Reset")
	}

	mmReset.mock.inspectFuncReset = f

	return mmReset
}

// Return sets up results that will be returned by Limiter.Reset
func (mmReset *mLimiterMockReset) Return(err error) *LimiterMock {
	if mmReset.mock.funcReset != nil {
		mmReset.mock.t.Fatalf("LimiterMock.Reset mock is already set by Set")
	}

	if mmReset.defaultExpectation == nil {
		mmReset.defaultExpectation = &LimiterMockResetExpectation{mock: mmReset.mock}
	}
	mmReset.defaultExpectation.results = &LimiterMockResetResults{err}
	mmReset.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmReset.mock
}

// Set uses given function f to mock the Limiter.Reset method
func (mmReset *mLimiterMockReset) Set(f func(ctx context.Context, ip string, username string) (err error)) *LimiterMock {
	if mmReset.defaultExpectation != nil {
		mmReset.mock.t.Fatalf("Default expectation is already set for the Limiter.Reset method")
	}

	if len(mmReset.expectations) > 0 {
		mmReset.mock.t.Fatalf("Some expectations are already set for the Limiter.Reset method")
	}

	mmReset.mock.funcReset = f
	mmReset.mock.funcResetOrigin = minimock.CallerInfo(1)
	return mmReset.mock
}

// When sets expectation for the Limiter.Reset which will trigger the result defined by the following
// Then helper
func (mmReset *mLimiterMockReset) When(ctx context.Context, ip string, username string) *LimiterMockResetExpectation {
	if mmReset.mock.funcReset != nil {
		mmReset.mock.t.Fatalf("LimiterMock.Reset mock is already set by Set")
	}

	expectation := &LimiterMockResetExpectation{
		mock:               mmReset.mock,
		params:             &LimiterMockResetParams{ctx, ip, username},
		expectationOrigins: LimiterMockResetExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmReset.expectations = append(mmReset.expectations, expectation)
	return expectation
}

// Then sets up Limiter.Reset return parameters for the expectation previously defined by the When method
func (e *LimiterMockResetExpectation) Then(err error) *LimiterMock {
	e.results = &LimiterMockResetResults{err}
	return e.mock
}

// Times sets number of times Limiter.Reset should be invoked
func (mmReset *mLimiterMockReset) Times(n uint64) *mLimiterMockReset {
	if n == 0 {
		mmReset.mock.t.Fatalf("Times of LimiterMock.Reset mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmReset.expectedInvocations, n)
	mmReset.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmReset
}

func (mmReset *mLimiterMockReset) invocationsDone() bool {
	if len(mmReset.expectations) == 0 && mmReset.defaultExpectation == nil && mmReset.mock.funcReset == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmReset.mock.afterResetCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmReset.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Reset implements mm_usecase.Limiter
func (mmReset *LimiterMock) Reset(ctx context.Context, ip string, username string) (err error) {
	mm_atomic.AddUint64(&mmReset.beforeResetCounter, 1)
	defer mm_atomic.AddUint64(&mmReset.afterResetCounter, 1)

	mmReset.t.Helper()

	if mmReset.inspectFuncReset != nil {
		mmReset.inspectFuncReset(ctx, ip, username)
	}

	mm_params := LimiterMockResetParams{ctx, ip, username}

	// Record call args
	mmReset.ResetMock.mutex.Lock()
	mmReset.ResetMock.callArgs = append(mmReset.ResetMock.callArgs, &mm_params)
	mmReset.ResetMock.mutex.Unlock()

	for _, e := range mmReset.ResetMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmReset.ResetMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmReset.ResetMock.defaultExpectation.Counter, 1)
		mm_want := mmReset.ResetMock.defaultExpectation.params
		mm_want_ptrs := mmReset.ResetMock.defaultExpectation.paramPtrs

		mm_got := LimiterMockResetParams{ctx, ip, username}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmReset.t.Errorf("LimiterMock.Reset got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReset.ResetMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.ip != nil && !minimock.Equal(*mm_want_ptrs.ip, mm_got.ip) {
				mmReset.t.Errorf("LimiterMock.Reset got unexpected parameter ip, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReset.ResetMock.defaultExpectation.expectationOrigins.originIp, *mm_want_ptrs.ip, mm_got.ip, minimock.Diff(*mm_want_ptrs.ip, mm_got.ip))
			}

			if mm_want_ptrs.username != nil && !minimock.Equal(*mm_want_ptrs.username, mm_got.username) {
				mmReset.t.Errorf("LimiterMock.Reset got unexpected parameter username, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmReset.ResetMock.defaultExpectation.expectationOrigins.originUsername, *mm_want_ptrs.username, mm_got.username, minimock.Diff(*mm_want_ptrs.username, mm_got.username))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmReset.t.Errorf("LimiterMock.Reset got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmReset.ResetMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmReset.ResetMock.defaultExpectation.results
		if mm_results == nil {
			mmReset.t.Fatal("No results are set for the LimiterMock.Reset")
		}
		return (*mm_results).err
	}
	if mmReset.funcReset != nil {
		return mmReset.funcReset(ctx, ip, username)
	}
	mmReset.t.Fatalf("Unexpected call to LimiterMock.Reset. %v %v %v", ctx, ip, username)
	return
}

// ResetAfterCounter returns a count of finished LimiterMock.Reset invocations
func (mmReset *LimiterMock) ResetAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReset.afterResetCounter)
}

// ResetBeforeCounter returns a count of LimiterMock.Reset invocations
func (mmReset *LimiterMock) ResetBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReset.beforeResetCounter)
}

// Calls returns a list of arguments used in each call to LimiterMock.Reset.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmReset *mLimiterMockReset) Calls() []*LimiterMockResetParams {
	mmReset.mutex.RLock()

	argCopy := make([]*LimiterMockResetParams, len(mmReset.callArgs))
	copy(argCopy, mmReset.callArgs)

	mmReset.mutex.RUnlock()

	return argCopy
}

// MinimockResetDone returns true if the count of the Reset invocations corresponds
// the number of defined expectations
func (m *LimiterMock) MinimockResetDone() bool {
	if m.ResetMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.ResetMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ResetMock.invocationsDone()
}

// MinimockResetInspect logs each unmet expectation
func (m *LimiterMock) MinimockResetInspect() {
	for _, e := range m.ResetMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to LimiterMock.Reset at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterResetCounter := mm_atomic.LoadUint64(&m.afterResetCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ResetMock.defaultExpectation != nil && afterResetCounter < 1 {
		if m.ResetMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to LimiterMock.Reset at\n%s", m.ResetMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to LimiterMock.Reset at\n%s with params: %#v", m.ResetMock.defaultExpectation.expectationOrigins.origin, *m.ResetMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcReset != nil && afterResetCounter < 1 {
		m.t.Errorf("Expected call to LimiterMock.Reset at\n%s", m.funcResetOrigin)
	}

	if !m.ResetMock.invocationsDone() && afterResetCounter > 0 {
		m.t.Errorf("Expected %d calls to LimiterMock.Reset at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ResetMock.expectedInvocations), m.ResetMock.expectedInvocationsOrigin, afterResetCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *LimiterMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockAllowInspect()

			m.MinimockResetInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *LimiterMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *LimiterMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockAllowDone() &&
		m.MinimockResetDone()
}
