// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/66gu1/filmoradmin/internal/app/auth/usecase.Core -o core_mock.go -n CoreMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/gojuno/minimock/v3"
)

// CoreMock implements mm_usecase.Core
type CoreMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcAuthorize          func(ctx context.Context, username string, password string) (sp1 *auth.Session, err error)
	funcAuthorizeOrigin    string
	inspectFuncAuthorize   func(ctx context.Context, username string, password string)
	afterAuthorizeCounter  uint64
	beforeAuthorizeCounter uint64
	AuthorizeMock          mCoreMockAuthorize

	funcResolve          func(ctx context.Context, session *auth.Session, update *auth.Update) (sp1 *auth.Session, t1 auth.Transition)
	funcResolveOrigin    string
	inspectFuncResolve   func(ctx context.Context, session *auth.Session, update *auth.Update)
	afterResolveCounter  uint64
	beforeResolveCounter uint64
	ResolveMock          mCoreMockResolve
}

// NewCoreMock returns a mock for mm_usecase.Core
func NewCoreMock(t minimock.Tester) *CoreMock {
	m := &CoreMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.AuthorizeMock = mCoreMockAuthorize{mock: m}
	m.AuthorizeMock.callArgs = []*CoreMockAuthorizeParams{}

	m.ResolveMock = mCoreMockResolve{mock: m}
	m.ResolveMock.callArgs = []*CoreMockResolveParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mCoreMockAuthorize struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockAuthorizeExpectation
	expectations       []*CoreMockAuthorizeExpectation

	callArgs []*CoreMockAuthorizeParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockAuthorizeExpectation specifies expectation struct of the Core.Authorize
type CoreMockAuthorizeExpectation struct {
	mock               *CoreMock
	params             *CoreMockAuthorizeParams
	paramPtrs          *CoreMockAuthorizeParamPtrs
	expectationOrigins CoreMockAuthorizeExpectationOrigins
	results            *CoreMockAuthorizeResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockAuthorizeParams contains parameters of the Core.Authorize
type CoreMockAuthorizeParams struct {
	ctx      context.Context
	username string
	password string
}

// CoreMockAuthorizeParamPtrs contains pointers to parameters of the Core.Authorize
type CoreMockAuthorizeParamPtrs struct {
	ctx      *context.Context
	username *string
	password *string
}

// CoreMockAuthorizeResults contains results of the Core.Authorize
type CoreMockAuthorizeResults struct {
	sp1 *auth.Session
	err error
}

// CoreMockAuthorizeOrigins contains origins of expectations of the Core.Authorize
type CoreMockAuthorizeExpectationOrigins struct {
	origin         string
	originCtx      string
	originUsername string
	originPassword string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmAuthorize *mCoreMockAuthorize) Optional() *mCoreMockAuthorize {
	mmAuthorize.optional = true
	return mmAuthorize
}

// Expect sets up expected params for Core.Authorize
func (mmAuthorize *mCoreMockAuthorize) Expect(ctx context.Context, username string, password string) *mCoreMockAuthorize {
	if mmAuthorize.mock.funcAuthorize != nil {
		mmAuthorize.mock.t.Fatalf("CoreMock.Authorize mock is already set by Set")
	}

	if mmAuthorize.defaultExpectation == nil {
		mmAuthorize.defaultExpectation = &CoreMockAuthorizeExpectation{}
	}

	if mmAuthorize.defaultExpectation.paramPtrs != nil {
		mmAuthorize.mock.t.Fatalf("CoreMock.Authorize mock is already set by ExpectParams functions")
	}

	mmAuthorize.defaultExpectation.params = &CoreMockAuthorizeParams{ctx, username, password}
	mmAuthorize.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmAuthorize.expectations {
		if minimock.Equal(e.params, mmAuthorize.defaultExpectation.params) {
			mmAuthorize.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmAuthorize.defaultExpectation.params)
		}
	}

	return mmAuthorize
}

// ExpectCtxParam1 sets up expected param ctx for Core.Authorize
func (mmAuthorize *mCoreMockAuthorize) ExpectCtxParam1(ctx context.Context) *mCoreMockAuthorize {
	if mmAuthorize.mock.funcAuthorize != nil {
		mmAuthorize.mock.t.Fatalf("CoreMock.Authorize mock is already set by Set")
	}

	if mmAuthorize.defaultExpectation == nil {
		mmAuthorize.defaultExpectation = &CoreMockAuthorizeExpectation{}
	}

	if mmAuthorize.defaultExpectation.params != nil {
		mmAuthorize.mock.t.Fatalf("CoreMock.Authorize mock is already set by Expect")
	}

	if mmAuthorize.defaultExpectation.paramPtrs == nil {
		mmAuthorize.defaultExpectation.paramPtrs = &CoreMockAuthorizeParamPtrs{}
	}
	mmAuthorize.defaultExpectation.paramPtrs.ctx = &ctx
	mmAuthorize.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmAuthorize
}

// ExpectUsernameParam2 sets up expected param username for Core.Authorize
func (mmAuthorize *mCoreMockAuthorize) ExpectUsernameParam2(username string) *mCoreMockAuthorize {
	if mmAuthorize.mock.funcAuthorize != nil {
		mmAuthorize.mock.t.Fatalf("CoreMock.Authorize mock is already set by Set")
	}

	if mmAuthorize.defaultExpectation == nil {
		mmAuthorize.defaultExpectation = &CoreMockAuthorizeExpectation{}
	}

	if mmAuthorize.defaultExpectation.params != nil {
		mmAuthorize.mock.t.Fatalf("CoreMock.Authorize mock is already set by Expect")
	}

	if mmAuthorize.defaultExpectation.paramPtrs == nil {
		mmAuthorize.defaultExpectation.paramPtrs = &CoreMockAuthorizeParamPtrs{}
	}
	mmAuthorize.defaultExpectation.paramPtrs.username = &username
	mmAuthorize.defaultExpectation.expectationOrigins.originUsername = minimock.CallerInfo(1)

	return mmAuthorize
}

// ExpectPasswordParam3 sets up expected param password for Core.Authorize
func (mmAuthorize *mCoreMockAuthorize) ExpectPasswordParam3(password string) *mCoreMockAuthorize {
	if mmAuthorize.mock.funcAuthorize != nil {
		mmAuthorize.mock.t.Fatalf("CoreMock.Authorize mock is already set by Set")
	}

	if mmAuthorize.defaultExpectation == nil {
		mmAuthorize.defaultExpectation = &CoreMockAuthorizeExpectation{}
	}

	if mmAuthorize.defaultExpectation.params != nil {
		mmAuthorize.mock.t.Fatalf("CoreMock.Authorize mock is already set by Expect")
	}

	if mmAuthorize.defaultExpectation.paramPtrs == nil {
		mmAuthorize.defaultExpectation.paramPtrs = &CoreMockAuthorizeParamPtrs{}
	}
	mmAuthorize.defaultExpectation.paramPtrs.password = &password
	mmAuthorize.defaultExpectation.expectationOrigins.originPassword = minimock.CallerInfo(1)

	return mmAuthorize
}

// Inspect accepts an inspector function that has same arguments as the Core.Authorize
func (mmAuthorize *mCoreMockAuthorize) Inspect(f func(ctx context.Context, username string, password string)) *mCoreMockAuthorize {
	if mmAuthorize.mock.inspectFuncAuthorize != nil {
		mmAuthorize.mock.t.Fatalf("Inspect function is already set for CoreMock.Authorize")
	}

	mmAuthorize.mock.inspectFuncAuthorize = f

	return mmAuthorize
}

// Return sets up results that will be returned by Core.Authorize
func (mmAuthorize *mCoreMockAuthorize) Return(sp1 *auth.Session, err error) *CoreMock {
	if mmAuthorize.mock.funcAuthorize != nil {
		mmAuthorize.mock.t.Fatalf("CoreMock.Authorize mock is already set by Set")
	}

	if mmAuthorize.defaultExpectation == nil {
		mmAuthorize.defaultExpectation = &CoreMockAuthorizeExpectation{mock: mmAuthorize.mock}
	}
	mmAuthorize.defaultExpectation.results = &CoreMockAuthorizeResults{sp1, err}
	mmAuthorize.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmAuthorize.mock
}

// Set uses given function f to mock the Core.Authorize method
func (mmAuthorize *mCoreMockAuthorize) Set(f func(ctx context.Context, username string, password string) (sp1 *auth.Session, err error)) *CoreMock {
	if mmAuthorize.defaultExpectation != nil {
		mmAuthorize.mock.t.Fatalf("Default expectation is already set for the Core.Authorize method")
	}

	if len(mmAuthorize.expectations) > 0 {
		mmAuthorize.mock.t.Fatalf("Some expectations are already set for the Core.Authorize method")
	}

	mmAuthorize.mock.funcAuthorize = f
	mmAuthorize.mock.funcAuthorizeOrigin = minimock.CallerInfo(1)
	return mmAuthorize.mock
}

// When sets expectation for the Core.Authorize which will trigger the result defined by the following
// Then helper
func (mmAuthorize *mCoreMockAuthorize) When(ctx context.Context, username string, password string) *CoreMockAuthorizeExpectation {
	if mmAuthorize.mock.funcAuthorize != nil {
		mmAuthorize.mock.t.Fatalf("CoreMock.Authorize mock is already set by Set")
	}

	expectation := &CoreMockAuthorizeExpectation{
		mock:               mmAuthorize.mock,
		params:             &CoreMockAuthorizeParams{ctx, username, password},
		expectationOrigins: CoreMockAuthorizeExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmAuthorize.expectations = append(mmAuthorize.expectations, expectation)
	return expectation
}

// Then sets up Core.Authorize return parameters for the expectation previously defined by the When method
func (e *CoreMockAuthorizeExpectation) Then(sp1 *auth.Session, err error) *CoreMock {
	e.results = &CoreMockAuthorizeResults{sp1, err}
	return e.mock
}

// Times sets number of times Core.Authorize should be invoked
func (mmAuthorize *mCoreMockAuthorize) Times(n uint64) *mCoreMockAuthorize {
	if n == 0 {
		mmAuthorize.mock.t.Fatalf("Times of CoreMock.Authorize mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmAuthorize.expectedInvocations, n)
	mmAuthorize.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmAuthorize
}

func (mmAuthorize *mCoreMockAuthorize) invocationsDone() bool {
	if len(mmAuthorize.expectations) == 0 && mmAuthorize.defaultExpectation == nil && mmAuthorize.mock.funcAuthorize == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmAuthorize.mock.afterAuthorizeCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmAuthorize.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Authorize implements mm_usecase.Core
func (mmAuthorize *CoreMock) Authorize(ctx context.Context, username string, password string) (sp1 *auth.Session, err error) {
	mm_atomic.AddUint64(&mmAuthorize.beforeAuthorizeCounter, 1)
	defer mm_atomic.AddUint64(&mmAuthorize.afterAuthorizeCounter, 1)

	mmAuthorize.t.Helper()

	if mmAuthorize.inspectFuncAuthorize != nil {
		mmAuthorize.inspectFuncAuthorize(ctx, username, password)
	}

	mm_params := CoreMockAuthorizeParams{ctx, username, password}

	// Record call args
	mmAuthorize.AuthorizeMock.mutex.Lock()
	mmAuthorize.AuthorizeMock.callArgs = append(mmAuthorize.AuthorizeMock.callArgs, &mm_params)
	mmAuthorize.AuthorizeMock.mutex.Unlock()

	for _, e := range mmAuthorize.AuthorizeMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.sp1, e.results.err
		}
	}

	if mmAuthorize.AuthorizeMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmAuthorize.AuthorizeMock.defaultExpectation.Counter, 1)
		mm_want := mmAuthorize.AuthorizeMock.defaultExpectation.params
		mm_want_ptrs := mmAuthorize.AuthorizeMock.defaultExpectation.paramPtrs

		mm_got := CoreMockAuthorizeParams{ctx, username, password}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmAuthorize.t.Errorf("CoreMock.Authorize got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAuthorize.AuthorizeMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.username != nil && !minimock.Equal(*mm_want_ptrs.username, mm_got.username) {
				mmAuthorize.t.Errorf("CoreMock.Authorize got unexpected parameter username, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAuthorize.AuthorizeMock.defaultExpectation.expectationOrigins.originUsername, *mm_want_ptrs.username, mm_got.username, minimock.Diff(*mm_want_ptrs.username, mm_got.username))
			}

			if mm_want_ptrs.password != nil && !minimock.Equal(*mm_want_ptrs.password, mm_got.password) {
				mmAuthorize.t.Errorf("CoreMock.Authorize got unexpected parameter password, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmAuthorize.AuthorizeMock.defaultExpectation.expectationOrigins.originPassword, *mm_want_ptrs.password, mm_got.password, minimock.Diff(*mm_want_ptrs.password, mm_got.password))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmAuthorize.t.Errorf("CoreMock.Authorize got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmAuthorize.AuthorizeMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmAuthorize.AuthorizeMock.defaultExpectation.results
		if mm_results == nil {
			mmAuthorize.t.Fatal("No results are set for the CoreMock.Authorize")
		}
		return (*mm_results).sp1, (*mm_results).err
	}
	if mmAuthorize.funcAuthorize != nil {
		return mmAuthorize.funcAuthorize(ctx, username, password)
	}
	mmAuthorize.t.Fatalf("Unexpected call to CoreMock.Authorize. %v %v %v", ctx, username, password)
	return
}

// AuthorizeAfterCounter returns a count of finished CoreMock.Authorize invocations
func (mmAuthorize *CoreMock) AuthorizeAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAuthorize.afterAuthorizeCounter)
}

// AuthorizeBeforeCounter returns a count of CoreMock.Authorize invocations
func (mmAuthorize *CoreMock) AuthorizeBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmAuthorize.beforeAuthorizeCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.Authorize.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmAuthorize *mCoreMockAuthorize) Calls() []*CoreMockAuthorizeParams {
	mmAuthorize.mutex.RLock()

	argCopy := make([]*CoreMockAuthorizeParams, len(mmAuthorize.callArgs))
	copy(argCopy, mmAuthorize.callArgs)

	mmAuthorize.mutex.RUnlock()

	return argCopy
}

// MinimockAuthorizeDone returns true if the count of the Authorize invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockAuthorizeDone() bool {
	if m.AuthorizeMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.AuthorizeMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.AuthorizeMock.invocationsDone()
}

// MinimockAuthorizeInspect logs each unmet expectation
func (m *CoreMock) MinimockAuthorizeInspect() {
	for _, e := range m.AuthorizeMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.Authorize at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterAuthorizeCounter := mm_atomic.LoadUint64(&m.afterAuthorizeCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.AuthorizeMock.defaultExpectation != nil && afterAuthorizeCounter < 1 {
		if m.AuthorizeMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.Authorize at\n%s", m.AuthorizeMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.Authorize at\n%s with params: %#v", m.AuthorizeMock.defaultExpectation.expectationOrigins.origin, *m.AuthorizeMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcAuthorize != nil && afterAuthorizeCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.Authorize at\n%s", m.funcAuthorizeOrigin)
	}

	if !m.AuthorizeMock.invocationsDone() && afterAuthorizeCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.Authorize at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.AuthorizeMock.expectedInvocations), m.AuthorizeMock.expectedInvocationsOrigin, afterAuthorizeCounter)
	}
}

type mCoreMockResolve struct {
	optional           bool
	mock               *CoreMock
	defaultExpectation *CoreMockResolveExpectation
	expectations       []*CoreMockResolveExpectation

	callArgs []*CoreMockResolveParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CoreMockResolveExpectation specifies expectation struct of the Core.Resolve
type CoreMockResolveExpectation struct {
	mock               *CoreMock
	params             *CoreMockResolveParams
	paramPtrs          *CoreMockResolveParamPtrs
	expectationOrigins CoreMockResolveExpectationOrigins
	results            *CoreMockResolveResults
	returnOrigin       string
	Counter            uint64
}

// CoreMockResolveParams contains parameters of the Core.Resolve
type CoreMockResolveParams struct {
	ctx     context.Context
	session *auth.Session
	update  *auth.Update
}

// CoreMockResolveParamPtrs contains pointers to parameters of the Core.Resolve
type CoreMockResolveParamPtrs struct {
	ctx     *context.Context
	session **auth.Session
	update  **auth.Update
}

// CoreMockResolveResults contains results of the Core.Resolve
type CoreMockResolveResults struct {
	sp1 *auth.Session
	t1  auth.Transition
}

// CoreMockResolveOrigins contains origins of expectations of the Core.Resolve
type CoreMockResolveExpectationOrigins struct {
	origin        string
	originCtx     string
	originSession string
	originUpdate  string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmResolve *mCoreMockResolve) Optional() *mCoreMockResolve {
	mmResolve.optional = true
	return mmResolve
}

// Expect sets up expected params for Core.Resolve
func (mmResolve *mCoreMockResolve) Expect(ctx context.Context, session *auth.Session, update *auth.Update) *mCoreMockResolve {
	if mmResolve.mock.funcResolve != nil {
		mmResolve.mock.t.Fatalf("CoreMock.Resolve mock is already set by Set")
	}

	if mmResolve.defaultExpectation == nil {
		mmResolve.defaultExpectation = &CoreMockResolveExpectation{}
	}

	if mmResolve.defaultExpectation.paramPtrs != nil {
		mmResolve.mock.t.Fatalf("CoreMock.Resolve mock is already set by ExpectParams functions")
	}

	mmResolve.defaultExpectation.params = &CoreMockResolveParams{ctx, session, update}
	mmResolve.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmResolve.expectations {
		if minimock.Equal(e.params, mmResolve.defaultExpectation.params) {
			mmResolve.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmResolve.defaultExpectation.params)
		}
	}

	return mmResolve
}

// ExpectCtxParam1 sets up expected param ctx for Core.Resolve
func (mmResolve *mCoreMockResolve) ExpectCtxParam1(ctx context.Context) *mCoreMockResolve {
	if mmResolve.mock.funcResolve != nil {
		mmResolve.mock.t.Fatalf("CoreMock.Resolve mock is already set by Set")
	}

	if mmResolve.defaultExpectation == nil {
		mmResolve.defaultExpectation = &CoreMockResolveExpectation{}
	}

	if mmResolve.defaultExpectation.params != nil {
		mmResolve.mock.t.Fatalf("CoreMock.Resolve mock is already set by Expect")
	}

	if mmResolve.defaultExpectation.paramPtrs == nil {
		mmResolve.defaultExpectation.paramPtrs = &CoreMockResolveParamPtrs{}
	}
	mmResolve.defaultExpectation.paramPtrs.ctx = &ctx
	mmResolve.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmResolve
}

// ExpectSessionParam2 sets up expected param session for Core.Resolve
func (mmResolve *mCoreMockResolve) ExpectSessionParam2(session *auth.Session) *mCoreMockResolve {
	if mmResolve.mock.funcResolve != nil {
		mmResolve.mock.t.Fatalf("CoreMock.Resolve mock is already set by Set")
	}

	if mmResolve.defaultExpectation == nil {
		mmResolve.defaultExpectation = &CoreMockResolveExpectation{}
	}

	if mmResolve.defaultExpectation.params != nil {
		mmResolve.mock.t.Fatalf("CoreMock.Resolve mock is already set by Expect")
	}

	if mmResolve.defaultExpectation.paramPtrs == nil {
		mmResolve.defaultExpectation.paramPtrs = &CoreMockResolveParamPtrs{}
	}
	mmResolve.defaultExpectation.paramPtrs.session = &session
	mmResolve.defaultExpectation.expectationOrigins.originSession = minimock.CallerInfo(1)

	return mmResolve
}

// ExpectUpdateParam3 sets up expected param update for Core.Resolve
func (mmResolve *mCoreMockResolve) ExpectUpdateParam3(update *auth.Update) *mCoreMockResolve {
	if mmResolve.mock.funcResolve != nil {
		mmResolve.mock.t.Fatalf("CoreMock.Resolve mock is already set by Set")
	}

	if mmResolve.defaultExpectation == nil {
		mmResolve.defaultExpectation = &CoreMockResolveExpectation{}
	}

	if mmResolve.defaultExpectation.params != nil {
		mmResolve.mock.t.Fatalf("CoreMock.Resolve mock is already set by Expect")
	}

	if mmResolve.defaultExpectation.paramPtrs == nil {
		mmResolve.defaultExpectation.paramPtrs = &CoreMockResolveParamPtrs{}
	}
	mmResolve.defaultExpectation.paramPtrs.update = &update
	mmResolve.defaultExpectation.expectationOrigins.originUpdate = minimock.CallerInfo(1)

	return mmResolve
}

// Inspect accepts an inspector function that has same arguments as the Core.Resolve
func (mmResolve *mCoreMockResolve) Inspect(f func(ctx context.Context, session *auth.Session, update *auth.Update)) *mCoreMockResolve {
	if mmResolve.mock.inspectFuncResolve != nil {
		mmResolve.mock.t.Fatalf("Inspect function is already set for CoreMock.Resolve")
	}

	mmResolve.mock.inspectFuncResolve = f

	return mmResolve
}

// Return sets up results that will be returned by Core.Resolve
func (mmResolve *mCoreMockResolve) Return(sp1 *auth.Session, t1 auth.Transition) *CoreMock {
	if mmResolve.mock.funcResolve != nil {
		mmResolve.mock.t.Fatalf("CoreMock.Resolve mock is already set by Set")
	}

	if mmResolve.defaultExpectation == nil {
		mmResolve.defaultExpectation = &CoreMockResolveExpectation{mock: mmResolve.mock}
	}
	mmResolve.defaultExpectation.results = &CoreMockResolveResults{sp1, t1}
	mmResolve.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmResolve.mock
}

// Set uses given function f to mock the Core.Resolve method
func (mmResolve *mCoreMockResolve) Set(f func(ctx context.Context, session *auth.Session, update *auth.Update) (sp1 *auth.Session, t1 auth.Transition)) *CoreMock {
	if mmResolve.defaultExpectation != nil {
		mmResolve.mock.t.Fatalf("Default expectation is already set for the Core.Resolve method")
	}

	if len(mmResolve.expectations) > 0 {
		mmResolve.mock.t.Fatalf("Some expectations are already set for the Core.Resolve method")
	}

	mmResolve.mock.funcResolve = f
	mmResolve.mock.funcResolveOrigin = minimock.CallerInfo(1)
	return mmResolve.mock
}

// When sets expectation for the Core.Resolve which will trigger the result defined by the following
// Then helper
func (mmResolve *mCoreMockResolve) When(ctx context.Context, session *auth.Session, update *auth.Update) *CoreMockResolveExpectation {
	if mmResolve.mock.funcResolve != nil {
		mmResolve.mock.t.Fatalf("CoreMock.Resolve mock is already set by Set")
	}

	expectation := &CoreMockResolveExpectation{
		mock:               mmResolve.mock,
		params:             &CoreMockResolveParams{ctx, session, update},
		expectationOrigins: CoreMockResolveExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmResolve.expectations = append(mmResolve.expectations, expectation)
	return expectation
}

// Then sets up Core.Resolve return parameters for the expectation previously defined by the When method
func (e *CoreMockResolveExpectation) Then(sp1 *auth.Session, t1 auth.Transition) *CoreMock {
	e.results = &CoreMockResolveResults{sp1, t1}
	return e.mock
}

// Times sets number of times Core.Resolve should be invoked
func (mmResolve *mCoreMockResolve) Times(n uint64) *mCoreMockResolve {
	if n == 0 {
		mmResolve.mock.t.Fatalf("Times of CoreMock.Resolve mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmResolve.expectedInvocations, n)
	mmResolve.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmResolve
}

func (mmResolve *mCoreMockResolve) invocationsDone() bool {
	if len(mmResolve.expectations) == 0 && mmResolve.defaultExpectation == nil && mmResolve.mock.funcResolve == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmResolve.mock.afterResolveCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmResolve.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Resolve implements mm_usecase.Core
func (mmResolve *CoreMock) Resolve(ctx context.Context, session *auth.Session, update *auth.Update) (sp1 *auth.Session, t1 auth.Transition) {
	mm_atomic.AddUint64(&mmResolve.beforeResolveCounter, 1)
	defer mm_atomic.AddUint64(&mmResolve.afterResolveCounter, 1)

	mmResolve.t.Helper()

	if mmResolve.inspectFuncResolve != nil {
		mmResolve.inspectFuncResolve(ctx, session, update)
	}

	mm_params := CoreMockResolveParams{ctx, session, update}

	// Record call args
	mmResolve.ResolveMock.mutex.Lock()
	mmResolve.ResolveMock.callArgs = append(mmResolve.ResolveMock.callArgs, &mm_params)
	mmResolve.ResolveMock.mutex.Unlock()

	for _, e := range mmResolve.ResolveMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.sp1, e.results.t1
		}
	}

	if mmResolve.ResolveMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmResolve.ResolveMock.defaultExpectation.Counter, 1)
		mm_want := mmResolve.ResolveMock.defaultExpectation.params
		mm_want_ptrs := mmResolve.ResolveMock.defaultExpectation.paramPtrs

		mm_got := CoreMockResolveParams{ctx, session, update}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmResolve.t.Errorf("CoreMock.Resolve got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmResolve.ResolveMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.session != nil && !minimock.Equal(*mm_want_ptrs.session, mm_got.session) {
				mmResolve.t.Errorf("CoreMock.Resolve got unexpected parameter session, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmResolve.ResolveMock.defaultExpectation.expectationOrigins.originSession, *mm_want_ptrs.session, mm_got.session, minimock.Diff(*mm_want_ptrs.session, mm_got.session))
			}

			if mm_want_ptrs.update != nil && !minimock.Equal(*mm_want_ptrs.update, mm_got.update) {
				mmResolve.t.Errorf("CoreMock.Resolve got unexpected parameter update, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmResolve.ResolveMock.defaultExpectation.expectationOrigins.originUpdate, *mm_want_ptrs.update, mm_got.update, minimock.Diff(*mm_want_ptrs.update, mm_got.update))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmResolve.t.Errorf("CoreMock.Resolve got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmResolve.ResolveMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmResolve.ResolveMock.defaultExpectation.results
		if mm_results == nil {
			mmResolve.t.Fatal("No results are set for the CoreMock.Resolve")
		}
		return (*mm_results).sp1, (*mm_results).t1
	}
	if mmResolve.funcResolve != nil {
		return mmResolve.funcResolve(ctx, session, update)
	}
	mmResolve.t.Fatalf("Unexpected call to CoreMock.Resolve. %v %v %v", ctx, session, update)
	return
}

// ResolveAfterCounter returns a count of finished CoreMock.Resolve invocations
func (mmResolve *CoreMock) ResolveAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmResolve.afterResolveCounter)
}

// ResolveBeforeCounter returns a count of CoreMock.Resolve invocations
func (mmResolve *CoreMock) ResolveBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmResolve.beforeResolveCounter)
}

// Calls returns a list of arguments used in each call to CoreMock.Resolve.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmResolve *mCoreMockResolve) Calls() []*CoreMockResolveParams {
	mmResolve.mutex.RLock()

	argCopy := make([]*CoreMockResolveParams, len(mmResolve.callArgs))
	copy(argCopy, mmResolve.callArgs)

	mmResolve.mutex.RUnlock()

	return argCopy
}

// MinimockResolveDone returns true if the count of the Resolve invocations corresponds
// the number of defined expectations
func (m *CoreMock) MinimockResolveDone() bool {
	if m.ResolveMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.ResolveMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ResolveMock.invocationsDone()
}

// MinimockResolveInspect logs each unmet expectation
func (m *CoreMock) MinimockResolveInspect() {
	for _, e := range m.ResolveMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CoreMock.Resolve at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterResolveCounter := mm_atomic.LoadUint64(&m.afterResolveCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ResolveMock.defaultExpectation != nil && afterResolveCounter < 1 {
		if m.ResolveMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CoreMock.Resolve at\n%s", m.ResolveMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CoreMock.Resolve at\n%s with params: %#v", m.ResolveMock.defaultExpectation.expectationOrigins.origin, *m.ResolveMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcResolve != nil && afterResolveCounter < 1 {
		m.t.Errorf("Expected call to CoreMock.Resolve at\n%s", m.funcResolveOrigin)
	}

	if !m.ResolveMock.invocationsDone() && afterResolveCounter > 0 {
		m.t.Errorf("Expected %d calls to CoreMock.Resolve at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ResolveMock.expectedInvocations), m.ResolveMock.expectedInvocationsOrigin, afterResolveCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *CoreMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockAuthorizeInspect()

			m.MinimockResolveInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *CoreMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *CoreMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockAuthorizeDone() &&
		m.MinimockResolveDone()
}
