// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/66gu1/filmoradmin/internal/app/auth/transport/http.AuthService -o auth_service_mock.go -n AuthServiceMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/auth/usecase"
	"github.com/gojuno/minimock/v3"
)

// AuthServiceMock implements mm_http.AuthService
type AuthServiceMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcLogin          func(ctx context.Context, req usecase.LoginCmd) (sp1 *auth.Session, err error)
	funcLoginOrigin    string
	inspectFuncLogin   func(ctx context.Context, req usecase.LoginCmd)
	afterLoginCounter  uint64
	beforeLoginCounter uint64
	LoginMock          mAuthServiceMockLogin

	funcResolve          func(ctx context.Context, session *auth.Session) (sp1 *auth.Session, t1 auth.Transition)
	funcResolveOrigin    string
	inspectFuncResolve   func(ctx context.Context, session *auth.Session)
	afterResolveCounter  uint64
	beforeResolveCounter uint64
	ResolveMock          mAuthServiceMockResolve

	funcUpdateSession          func(ctx context.Context, session *auth.Session, update auth.Update) (sp1 *auth.Session, t1 auth.Transition, err error)
	funcUpdateSessionOrigin    string
	inspectFuncUpdateSession   func(ctx context.Context, session *auth.Session, update auth.Update)
	afterUpdateSessionCounter  uint64
	beforeUpdateSessionCounter uint64
	UpdateSessionMock          mAuthServiceMockUpdateSession
}

// NewAuthServiceMock returns a mock for mm_http.AuthService
func NewAuthServiceMock(t minimock.Tester) *AuthServiceMock {
	m := &AuthServiceMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.LoginMock = mAuthServiceMockLogin{mock: m}
	m.LoginMock.callArgs = []*AuthServiceMockLoginParams{}

	m.ResolveMock = mAuthServiceMockResolve{mock: m}
	m.ResolveMock.callArgs = []*AuthServiceMockResolveParams{}

	m.UpdateSessionMock = mAuthServiceMockUpdateSession{mock: m}
	m.UpdateSessionMock.callArgs = []*AuthServiceMockUpdateSessionParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mAuthServiceMockLogin struct {
	optional           bool
	mock               *AuthServiceMock
	defaultExpectation *AuthServiceMockLoginExpectation
	expectations       []*AuthServiceMockLoginExpectation

	callArgs []*AuthServiceMockLoginParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// AuthServiceMockLoginExpectation specifies expectation struct of the AuthService.Login
type AuthServiceMockLoginExpectation struct {
	mock               *AuthServiceMock
	params             *AuthServiceMockLoginParams
	paramPtrs          *AuthServiceMockLoginParamPtrs
	expectationOrigins AuthServiceMockLoginExpectationOrigins
	results            *AuthServiceMockLoginResults
	returnOrigin       string
	Counter            uint64
}

// AuthServiceMockLoginParams contains parameters of the AuthService.Login
type AuthServiceMockLoginParams struct {
	ctx context.Context
	req usecase.LoginCmd
}

// AuthServiceMockLoginParamPtrs contains pointers to parameters of the AuthService.Login
type AuthServiceMockLoginParamPtrs struct {
	ctx *context.Context
	req *usecase.LoginCmd
}

// AuthServiceMockLoginResults contains results of the AuthService.Login
type AuthServiceMockLoginResults struct {
	sp1 *auth.Session
	err error
}

// AuthServiceMockLoginOrigins contains origins of expectations of the AuthService.Login
type AuthServiceMockLoginExpectationOrigins struct {
	origin    string
	originCtx string
	originReq string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmLogin *mAuthServiceMockLogin) Optional() *mAuthServiceMockLogin {
	mmLogin.optional = true
	return mmLogin
}

// Expect sets up expected params for AuthService.Login
func (mmLogin *mAuthServiceMockLogin) Expect(ctx context.Context, req usecase.LoginCmd) *mAuthServiceMockLogin {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("AuthServiceMock.Login mock is already set by Set")
	}

	if mmLogin.defaultExpectation == nil {
		mmLogin.defaultExpectation = &AuthServiceMockLoginExpectation{}
	}

	if mmLogin.defaultExpectation.paramPtrs != nil {
		mmLogin.mock.t.Fatalf("AuthServiceMock.Login mock is already set by ExpectParams functions")
	}

	mmLogin.defaultExpectation.params = &AuthServiceMockLoginParams{ctx, req}
	mmLogin.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmLogin.expectations {
		if minimock.Equal(e.params, mmLogin.defaultExpectation.params) {
			mmLogin.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmLogin.defaultExpectation.params)
		}
	}

	return mmLogin
}

// ExpectCtxParam1 sets up expected param ctx for AuthService.Login
func (mmLogin *mAuthServiceMockLogin) ExpectCtxParam1(ctx context.Context) *mAuthServiceMockLogin {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("AuthServiceMock.Login mock is already set by Set")
	}

	if mmLogin.defaultExpectation == nil {
		mmLogin.defaultExpectation = &AuthServiceMockLoginExpectation{}
	}

	if mmLogin.defaultExpectation.params != nil {
		mmLogin.mock.t.Fatalf("AuthServiceMock.Login mock is already set by Expect")
	}

	if mmLogin.defaultExpectation.paramPtrs == nil {
		mmLogin.defaultExpectation.paramPtrs = &AuthServiceMockLoginParamPtrs{}
	}
	mmLogin.defaultExpectation.paramPtrs.ctx = &ctx
	mmLogin.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmLogin
}

// ExpectReqParam2 sets up expected param req for AuthService.Login
func (mmLogin *mAuthServiceMockLogin) ExpectReqParam2(req usecase.LoginCmd) *mAuthServiceMockLogin {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("AuthServiceMock.Login mock is already set by Set")
	}

	if mmLogin.defaultExpectation == nil {
		mmLogin.defaultExpectation = &AuthServiceMockLoginExpectation{}
	}

	if mmLogin.defaultExpectation.params != nil {
		mmLogin.mock.t.Fatalf("AuthServiceMock.Login mock is already set by Expect")
	}

	if mmLogin.defaultExpectation.paramPtrs == nil {
		mmLogin.defaultExpectation.paramPtrs = &AuthServiceMockLoginParamPtrs{}
	}
	mmLogin.defaultExpectation.paramPtrs.req = &req
	mmLogin.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmLogin
}

// Inspect accepts an inspector function that has same arguments as the AuthService.Login
func (mmLogin *mAuthServiceMockLogin) Inspect(f func(ctx context.Context, req usecase.LoginCmd)) *mAuthServiceMockLogin {
	if mmLogin.mock.inspectFuncLogin != nil {
		mmLogin.mock.t.Fatalf("Inspect function is already set for AuthServiceMock.Login")
	}

	mmLogin.mock.inspectFuncLogin = f

	return mmLogin
}

// Return sets up results that will be returned by AuthService.Login
func (mmLogin *mAuthServiceMockLogin) Return(sp1 *auth.Session, err error) *AuthServiceMock {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("AuthServiceMock.Login mock is already set by Set")
	}

	if mmLogin.defaultExpectation == nil {
		mmLogin.defaultExpectation = &AuthServiceMockLoginExpectation{mock: mmLogin.mock}
	}
	mmLogin.defaultExpectation.results = &AuthServiceMockLoginResults{sp1, err}
	mmLogin.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmLogin.mock
}

// Set uses given function f to mock the AuthService.Login method
func (mmLogin *mAuthServiceMockLogin) Set(f func(ctx context.Context, req usecase.LoginCmd) (sp1 *auth.Session, err error)) *AuthServiceMock {
	if mmLogin.defaultExpectation != nil {
		mmLogin.mock.t.Fatalf("Default expectation is already set for the AuthService.Login method")
	}

	if len(mmLogin.expectations) > 0 {
		mmLogin.mock.t.Fatalf("Some expectations are already set for the AuthService.Login method")
	}

	mmLogin.mock.funcLogin = f
	mmLogin.mock.funcLoginOrigin = minimock.CallerInfo(1)
	return mmLogin.mock
}

// When sets expectation for the AuthService.Login which will trigger the result defined by the following
// Then helper
func (mmLogin *mAuthServiceMockLogin) When(ctx context.Context, req usecase.LoginCmd) *AuthServiceMockLoginExpectation {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("AuthServiceMock.Login mock is already set by Set")
	}

	expectation := &AuthServiceMockLoginExpectation{
		mock:               mmLogin.mock,
		params:             &AuthServiceMockLoginParams{ctx, req},
		expectationOrigins: AuthServiceMockLoginExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmLogin.expectations = append(mmLogin.expectations, expectation)
	return expectation
}

// Then sets up AuthService.Login return parameters for the expectation previously defined by the When method
func (e *AuthServiceMockLoginExpectation) Then(sp1 *auth.Session, err error) *AuthServiceMock {
	e.results = &AuthServiceMockLoginResults{sp1, err}
	return e.mock
}

// Times sets number of times AuthService.Login should be invoked
func (mmLogin *mAuthServiceMockLogin) Times(n uint64) *mAuthServiceMockLogin {
	if n == 0 {
		mmLogin.mock.t.Fatalf("Times of AuthServiceMock.Login mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmLogin.expectedInvocations, n)
	mmLogin.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmLogin
}

func (mmLogin *mAuthServiceMockLogin) invocationsDone() bool {
	if len(mmLogin.expectations) == 0 && mmLogin.defaultExpectation == nil && mmLogin.mock.funcLogin == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmLogin.mock.afterLoginCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmLogin.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Login implements mm_http.AuthService
func (mmLogin *AuthServiceMock) Login(ctx context.Context, req usecase.LoginCmd) (sp1 *auth.Session, err error) {
	mm_atomic.AddUint64(&mmLogin.beforeLoginCounter, 1)
	defer mm_atomic.AddUint64(&mmLogin.afterLoginCounter, 1)

	mmLogin.t.Helper()

	if mmLogin.inspectFuncLogin != nil {
		mmLogin.inspectFuncLogin(ctx, req)
	}

	mm_params := AuthServiceMockLoginParams{ctx, req}

	// Record call args
	mmLogin.LoginMock.mutex.Lock()
	mmLogin.LoginMock.callArgs = append(mmLogin.LoginMock.callArgs, &mm_params)
	mmLogin.LoginMock.mutex.Unlock()

	for _, e := range mmLogin.LoginMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.sp1, e.results.err
		}
	}

	if mmLogin.LoginMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmLogin.LoginMock.defaultExpectation.Counter, 1)
		mm_want := mmLogin.LoginMock.defaultExpectation.params
		mm_want_ptrs := mmLogin.LoginMock.defaultExpectation.paramPtrs

		mm_got := AuthServiceMockLoginParams{ctx, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmLogin.t.Errorf("AuthServiceMock.Login got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmLogin.LoginMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmLogin.t.Errorf("AuthServiceMock.Login got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmLogin.LoginMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmLogin.t.Errorf("AuthServiceMock.Login got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmLogin.LoginMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmLogin.LoginMock.defaultExpectation.results
		if mm_results == nil {
			mmLogin.t.Fatal("No results are set for the AuthServiceMock.Login")
		}
		return (*mm_results).sp1, (*mm_results).err
	}
	if mmLogin.funcLogin != nil {
		return mmLogin.funcLogin(ctx, req)
	}
	mmLogin.t.Fatalf("Unexpected call to AuthServiceMock.Login. %v %v", ctx, req)
	return
}

// LoginAfterCounter returns a count of finished AuthServiceMock.Login invocations
func (mmLogin *AuthServiceMock) LoginAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLogin.afterLoginCounter)
}

// LoginBeforeCounter returns a count of AuthServiceMock.Login invocations
func (mmLogin *AuthServiceMock) LoginBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLogin.beforeLoginCounter)
}

// Calls returns a list of arguments used in each call to AuthServiceMock.Login.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmLogin *mAuthServiceMockLogin) Calls() []*AuthServiceMockLoginParams {
	mmLogin.mutex.RLock()

	argCopy := make([]*AuthServiceMockLoginParams, len(mmLogin.callArgs))
	copy(argCopy, mmLogin.callArgs)

	mmLogin.mutex.RUnlock()

	return argCopy
}

// MinimockLoginDone returns true if the count of the Login invocations corresponds
// the number of defined expectations
func (m *AuthServiceMock) MinimockLoginDone() bool {
	if m.LoginMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.LoginMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.LoginMock.invocationsDone()
}

// MinimockLoginInspect logs each unmet expectation
func (m *AuthServiceMock) MinimockLoginInspect() {
	for _, e := range m.LoginMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to AuthServiceMock.Login at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterLoginCounter := mm_atomic.LoadUint64(&m.afterLoginCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.LoginMock.defaultExpectation != nil && afterLoginCounter < 1 {
		if m.LoginMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to AuthServiceMock.Login at\n%s", m.LoginMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to AuthServiceMock.Login at\n%s with params: %#v", m.LoginMock.defaultExpectation.expectationOrigins.origin, *m.LoginMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcLogin != nil && afterLoginCounter < 1 {
		m.t.Errorf("Expected call to AuthServiceMock.Login at\n%s", m.funcLoginOrigin)
	}

	if !m.LoginMock.invocationsDone() && afterLoginCounter > 0 {
		m.t.Errorf("Expected %d calls to AuthServiceMock.Login at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.LoginMock.expectedInvocations), m.LoginMock.expectedInvocationsOrigin, afterLoginCounter)
	}
}

type mAuthServiceMockResolve struct {
	optional           bool
	mock               *AuthServiceMock
	defaultExpectation *AuthServiceMockResolveExpectation
	expectations       []*AuthServiceMockResolveExpectation

	callArgs []*AuthServiceMockResolveParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// AuthServiceMockResolveExpectation specifies expectation struct of the AuthService.Resolve
type AuthServiceMockResolveExpectation struct {
	mock               *AuthServiceMock
	params             *AuthServiceMockResolveParams
	paramPtrs          *AuthServiceMockResolveParamPtrs
	expectationOrigins AuthServiceMockResolveExpectationOrigins
	results            *AuthServiceMockResolveResults
	returnOrigin       string
	Counter            uint64
}

// AuthServiceMockResolveParams contains parameters of the AuthService.Resolve
type AuthServiceMockResolveParams struct {
	ctx     context.Context
	session *auth.Session
}

// AuthServiceMockResolveParamPtrs contains pointers to parameters of the AuthService.Resolve
type AuthServiceMockResolveParamPtrs struct {
	ctx     *context.Context
	session **auth.Session
}

// AuthServiceMockResolveResults contains results of the AuthService.Resolve
type AuthServiceMockResolveResults struct {
	sp1 *auth.Session
	t1  auth.Transition
}

// AuthServiceMockResolveOrigins contains origins of expectations of the AuthService.Resolve
type AuthServiceMockResolveExpectationOrigins struct {
	origin        string
	originCtx     string
	originSession string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmResolve *mAuthServiceMockResolve) Optional() *mAuthServiceMockResolve {
	mmResolve.optional = true
	return mmResolve
}

// Expect sets up expected params for AuthService.Resolve
func (mmResolve *mAuthServiceMockResolve) Expect(ctx context.Context, session *auth.Session) *mAuthServiceMockResolve {
	if mmResolve.mock.funcResolve != nil {
		mmResolve.mock.t.Fatalf("AuthServiceMock.Resolve mock is already set by Set")
	}

	if mmResolve.defaultExpectation == nil {
		mmResolve.defaultExpectation = &AuthServiceMockResolveExpectation{}
	}

	if mmResolve.defaultExpectation.paramPtrs != nil {
		mmResolve.mock.t.Fatalf("AuthServiceMock.Resolve mock is already set by ExpectParams functions")
	}

	mmResolve.defaultExpectation.params = &AuthServiceMockResolveParams{ctx, session}
	mmResolve.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmResolve.expectations {
		if minimock.Equal(e.params, mmResolve.defaultExpectation.params) {
			mmResolve.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmResolve.defaultExpectation.params)
		}
	}

	return mmResolve
}

// ExpectCtxParam1 sets up expected param ctx for AuthService.Resolve
func (mmResolve *mAuthServiceMockResolve) ExpectCtxParam1(ctx context.Context) *mAuthServiceMockResolve {
	if mmResolve.mock.funcResolve != nil {
		mmResolve.mock.t.Fatalf("AuthServiceMock.Resolve mock is already set by Set")
	}

	if mmResolve.defaultExpectation == nil {
		mmResolve.defaultExpectation = &AuthServiceMockResolveExpectation{}
	}

	if mmResolve.defaultExpectation.params != nil {
		mmResolve.mock.t.Fatalf("AuthServiceMock.Resolve mock is already set by Expect")
	}

	if mmResolve.defaultExpectation.paramPtrs == nil {
		mmResolve.defaultExpectation.paramPtrs = &AuthServiceMockResolveParamPtrs{}
	}
	mmResolve.defaultExpectation.paramPtrs.ctx = &ctx
	mmResolve.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmResolve
}

// ExpectSessionParam2 sets up expected param session for AuthService.Resolve
func (mmResolve *mAuthServiceMockResolve) ExpectSessionParam2(session *auth.Session) *mAuthServiceMockResolve {
	if mmResolve.mock.funcResolve != nil {
		mmResolve.mock.t.Fatalf("AuthServiceMock.Resolve mock is already set by Set")
	}

	if mmResolve.defaultExpectation == nil {
		mmResolve.defaultExpectation = &AuthServiceMockResolveExpectation{}
	}

	if mmResolve.defaultExpectation.params != nil {
		mmResolve.mock.t.Fatalf("AuthServiceMock.Resolve mock is already set by Expect")
	}

	if mmResolve.defaultExpectation.paramPtrs == nil {
		mmResolve.defaultExpectation.paramPtrs = &AuthServiceMockResolveParamPtrs{}
	}
	mmResolve.defaultExpectation.paramPtrs.session = &session
	mmResolve.defaultExpectation.expectationOrigins.originSession = minimock.CallerInfo(1)

	return mmResolve
}

// Inspect accepts an inspector function that has same arguments as the AuthService.Resolve
func (mmResolve *mAuthServiceMockResolve) Inspect(f func(ctx context.Context, session *auth.Session)) *mAuthServiceMockResolve {
	if mmResolve.mock.inspectFuncResolve != nil {
		mmResolve.mock.t.Fatalf("Inspect function is already set for AuthServiceMock.Resolve")
	}

	mmResolve.mock.inspectFuncResolve = f

	return mmResolve
}

// Return sets up results that will be returned by AuthService.Resolve
func (mmResolve *mAuthServiceMockResolve) Return(sp1 *auth.Session, t1 auth.Transition) *AuthServiceMock {
	if mmResolve.mock.funcResolve != nil {
		mmResolve.mock.t.Fatalf("AuthServiceMock.Resolve mock is already set by Set")
	}

	if mmResolve.defaultExpectation == nil {
		mmResolve.defaultExpectation = &AuthServiceMockResolveExpectation{mock: mmResolve.mock}
	}
	mmResolve.defaultExpectation.results = &AuthServiceMockResolveResults{sp1, t1}
	mmResolve.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmResolve.mock
}

// Set uses given function f to mock the AuthService.Resolve method
func (mmResolve *mAuthServiceMockResolve) Set(f func(ctx context.Context, session *auth.Session) (sp1 *auth.Session, t1 auth.Transition)) *AuthServiceMock {
	if mmResolve.defaultExpectation != nil {
		mmResolve.mock.t.Fatalf("Default expectation is already set for the AuthService.Resolve method")
	}

	if len(mmResolve.expectations) > 0 {
		mmResolve.mock.t.Fatalf("Some expectations are already set for the AuthService.Resolve method")
	}

	mmResolve.mock.funcResolve = f
	mmResolve.mock.funcResolveOrigin = minimock.CallerInfo(1)
	return mmResolve.mock
}

// When sets expectation for the AuthService.Resolve which will trigger the result defined by the following
// Then helper
func (mmResolve *mAuthServiceMockResolve) When(ctx context.Context, session *auth.Session) *AuthServiceMockResolveExpectation {
	if mmResolve.mock.funcResolve != nil {
		mmResolve.mock.t.Fatalf("AuthServiceMock.Resolve mock is already set by Set")
	}

	expectation := &AuthServiceMockResolveExpectation{
		mock:               mmResolve.mock,
		params:             &AuthServiceMockResolveParams{ctx, session},
		expectationOrigins: AuthServiceMockResolveExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmResolve.expectations = append(mmResolve.expectations, expectation)
	return expectation
}

// Then sets up AuthService.Resolve return parameters for the expectation previously defined by the When method
func (e *AuthServiceMockResolveExpectation) Then(sp1 *auth.Session, t1 auth.Transition) *AuthServiceMock {
	e.results = &AuthServiceMockResolveResults{sp1, t1}
	return e.mock
}

// Times sets number of times AuthService.Resolve should be invoked
func (mmResolve *mAuthServiceMockResolve) Times(n uint64) *mAuthServiceMockResolve {
	if n == 0 {
		mmResolve.mock.t.Fatalf("Times of AuthServiceMock.Resolve mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmResolve.expectedInvocations, n)
	mmResolve.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmResolve
}

func (mmResolve *mAuthServiceMockResolve) invocationsDone() bool {
	if len(mmResolve.expectations) == 0 && mmResolve.defaultExpectation == nil && mmResolve.mock.funcResolve == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmResolve.mock.afterResolveCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmResolve.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Resolve implements mm_http.AuthService
func (mmResolve *AuthServiceMock) Resolve(ctx context.Context, session *auth.Session) (sp1 *auth.Session, t1 auth.Transition) {
	mm_atomic.AddUint64(&mmResolve.beforeResolveCounter, 1)
	defer mm_atomic.AddUint64(&mmResolve.afterResolveCounter, 1)

	mmResolve.t.Helper()

	if mmResolve.inspectFuncResolve != nil {
		mmResolve.inspectFuncResolve(ctx, session)
	}

	mm_params := AuthServiceMockResolveParams{ctx, session}

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

		mm_got := AuthServiceMockResolveParams{ctx, session}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmResolve.t.Errorf("AuthServiceMock.Resolve got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmResolve.ResolveMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.session != nil && !minimock.Equal(*mm_want_ptrs.session, mm_got.session) {
				mmResolve.t.Errorf("AuthServiceMock.Resolve got unexpected parameter session, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmResolve.ResolveMock.defaultExpectation.expectationOrigins.originSession, *mm_want_ptrs.session, mm_got.session, minimock.Diff(*mm_want_ptrs.session, mm_got.session))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmResolve.t.Errorf("AuthServiceMock.Resolve got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmResolve.ResolveMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmResolve.ResolveMock.defaultExpectation.results
		if mm_results == nil {
			mmResolve.t.Fatal("No results are set for the AuthServiceMock.Resolve")
		}
		return (*mm_results).sp1, (*mm_results).t1
	}
	if mmResolve.funcResolve != nil {
		return mmResolve.funcResolve(ctx, session)
	}
	mmResolve.t.Fatalf("Unexpected call to AuthServiceMock.Resolve. %v %v", ctx, session)
	return
}

// ResolveAfterCounter returns a count of finished AuthServiceMock.Resolve invocations
func (mmResolve *AuthServiceMock) ResolveAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmResolve.afterResolveCounter)
}

// ResolveBeforeCounter returns a count of AuthServiceMock.Resolve invocations
func (mmResolve *AuthServiceMock) ResolveBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmResolve.beforeResolveCounter)
}

// Calls returns a list of arguments used in each call to AuthServiceMock.Resolve.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmResolve *mAuthServiceMockResolve) Calls() []*AuthServiceMockResolveParams {
	mmResolve.mutex.RLock()

	argCopy := make([]*AuthServiceMockResolveParams, len(mmResolve.callArgs))
	copy(argCopy, mmResolve.callArgs)

	mmResolve.mutex.RUnlock()

	return argCopy
}

// MinimockResolveDone returns true if the count of the Resolve invocations corresponds
// the number of defined expectations
func (m *AuthServiceMock) MinimockResolveDone() bool {
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
func (m *AuthServiceMock) MinimockResolveInspect() {
	for _, e := range m.ResolveMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to AuthServiceMock.Resolve at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterResolveCounter := mm_atomic.LoadUint64(&m.afterResolveCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ResolveMock.defaultExpectation != nil && afterResolveCounter < 1 {
		if m.ResolveMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to AuthServiceMock.Resolve at\n%s", m.ResolveMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to AuthServiceMock.Resolve at\n%s with params: %#v", m.ResolveMock.defaultExpectation.expectationOrigins.origin, *m.ResolveMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcResolve != nil && afterResolveCounter < 1 {
		m.t.Errorf("Expected call to AuthServiceMock.Resolve at\n%s", m.funcResolveOrigin)
	}

	if !m.ResolveMock.invocationsDone() && afterResolveCounter > 0 {
		m.t.Errorf("Expected %d calls to AuthServiceMock.Resolve at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ResolveMock.expectedInvocations), m.ResolveMock.expectedInvocationsOrigin, afterResolveCounter)
	}
}

type mAuthServiceMockUpdateSession struct {
	optional           bool
	mock               *AuthServiceMock
	defaultExpectation *AuthServiceMockUpdateSessionExpectation
	expectations       []*AuthServiceMockUpdateSessionExpectation

	callArgs []*AuthServiceMockUpdateSessionParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// AuthServiceMockUpdateSessionExpectation specifies expectation struct of the AuthService.UpdateSession
type AuthServiceMockUpdateSessionExpectation struct {
	mock               *AuthServiceMock
	params             *AuthServiceMockUpdateSessionParams
	paramPtrs          *AuthServiceMockUpdateSessionParamPtrs
	expectationOrigins AuthServiceMockUpdateSessionExpectationOrigins
	results            *AuthServiceMockUpdateSessionResults
	returnOrigin       string
	Counter            uint64
}

// AuthServiceMockUpdateSessionParams contains parameters of the AuthService.UpdateSession
type AuthServiceMockUpdateSessionParams struct {
	ctx     context.Context
	session *auth.Session
	update  auth.Update
}

// AuthServiceMockUpdateSessionParamPtrs contains pointers to parameters of the AuthService.UpdateSession
type AuthServiceMockUpdateSessionParamPtrs struct {
	ctx     *context.Context
	session **auth.Session
	update  *auth.Update
}

// AuthServiceMockUpdateSessionResults contains results of the AuthService.UpdateSession
type AuthServiceMockUpdateSessionResults struct {
	sp1 *auth.Session
	t1  auth.Transition
	err error
}

// AuthServiceMockUpdateSessionOrigins contains origins of expectations of the AuthService.UpdateSession
type AuthServiceMockUpdateSessionExpectationOrigins struct {
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
func (mmUpdateSession *mAuthServiceMockUpdateSession) Optional() *mAuthServiceMockUpdateSession {
	mmUpdateSession.optional = true
	return mmUpdateSession
}

// Expect sets up expected params for AuthService.UpdateSession
func (mmUpdateSession *mAuthServiceMockUpdateSession) Expect(ctx context.Context, session *auth.Session, update auth.Update) *mAuthServiceMockUpdateSession {
	if mmUpdateSession.mock.funcUpdateSession != nil {
		mmUpdateSession.mock.t.Fatalf("AuthServiceMock.UpdateSession mock is already set by Set")
	}

	if mmUpdateSession.defaultExpectation == nil {
		mmUpdateSession.defaultExpectation = &AuthServiceMockUpdateSessionExpectation{}
	}

	if mmUpdateSession.defaultExpectation.paramPtrs != nil {
		mmUpdateSession.mock.t.Fatalf("AuthServiceMock.UpdateSession mock is already set by ExpectParams functions")
	}

	mmUpdateSession.defaultExpectation.params = &AuthServiceMockUpdateSessionParams{ctx, session, update}
	mmUpdateSession.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmUpdateSession.expectations {
		if minimock.Equal(e.params, mmUpdateSession.defaultExpectation.params) {
			mmUpdateSession.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmUpdateSession.defaultExpectation.params)
		}
	}

	return mmUpdateSession
}

// ExpectCtxParam1 sets up expected param ctx for AuthService.UpdateSession
func (mmUpdateSession *mAuthServiceMockUpdateSession) ExpectCtxParam1(ctx context.Context) *mAuthServiceMockUpdateSession {
	if mmUpdateSession.mock.funcUpdateSession != nil {
		mmUpdateSession.mock.t.Fatalf("AuthServiceMock.UpdateSession mock is already set by Set")
	}

	if mmUpdateSession.defaultExpectation == nil {
		mmUpdateSession.defaultExpectation = &AuthServiceMockUpdateSessionExpectation{}
	}

	if mmUpdateSession.defaultExpectation.params != nil {
		mmUpdateSession.mock.t.Fatalf("AuthServiceMock.UpdateSession mock is already set by Expect")
	}

	if mmUpdateSession.defaultExpectation.paramPtrs == nil {
		mmUpdateSession.defaultExpectation.paramPtrs = &AuthServiceMockUpdateSessionParamPtrs{}
	}
	mmUpdateSession.defaultExpectation.paramPtrs.ctx = &ctx
	mmUpdateSession.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmUpdateSession
}

// ExpectSessionParam2 sets up expected param session for AuthService.UpdateSession
func (mmUpdateSession *mAuthServiceMockUpdateSession) ExpectSessionParam2(session *auth.Session) *mAuthServiceMockUpdateSession {
	if mmUpdateSession.mock.funcUpdateSession != nil {
		mmUpdateSession.mock.t.Fatalf("AuthServiceMock.UpdateSession mock is already set by Set")
	}

	if mmUpdateSession.defaultExpectation == nil {
		mmUpdateSession.defaultExpectation = &AuthServiceMockUpdateSessionExpectation{}
	}

	if mmUpdateSession.defaultExpectation.params != nil {
		mmUpdateSession.mock.t.Fatalf("AuthServiceMock.UpdateSession mock is already set by Expect")
	}

	if mmUpdateSession.defaultExpectation.paramPtrs == nil {
		mmUpdateSession.defaultExpectation.paramPtrs = &AuthServiceMockUpdateSessionParamPtrs{}
	}
	mmUpdateSession.defaultExpectation.paramPtrs.session = &session
	mmUpdateSession.defaultExpectation.expectationOrigins.originSession = minimock.CallerInfo(1)

	return mmUpdateSession
}

// ExpectUpdateParam3 sets up expected param update for AuthService.UpdateSession
func (mmUpdateSession *mAuthServiceMockUpdateSession) ExpectUpdateParam3(update auth.Update) *mAuthServiceMockUpdateSession {
	if mmUpdateSession.mock.funcUpdateSession != nil {
		mmUpdateSession.mock.t.Fatalf("AuthServiceMock.UpdateSession mock is already set by Set")
	}

	if mmUpdateSession.defaultExpectation == nil {
		mmUpdateSession.defaultExpectation = &AuthServiceMockUpdateSessionExpectation{}
	}

	if mmUpdateSession.defaultExpectation.params != nil {
		mmUpdateSession.mock.t.Fatalf("AuthServiceMock.UpdateSession mock is already set by Expect")
	}

	if mmUpdateSession.defaultExpectation.paramPtrs == nil {
		mmUpdateSession.defaultExpectation.paramPtrs = &AuthServiceMockUpdateSessionParamPtrs{}
	}
	mmUpdateSession.defaultExpectation.paramPtrs.update = &update
	mmUpdateSession.defaultExpectation.expectationOrigins.originUpdate = minimock.CallerInfo(1)

	return mmUpdateSession
}

// Inspect accepts an inspector function that has same arguments as the AuthService.UpdateSession
func (mmUpdateSession *mAuthServiceMockUpdateSession) Inspect(f func(ctx context.Context, session *auth.Session, update auth.Update)) *mAuthServiceMockUpdateSession {
	if mmUpdateSession.mock.inspectFuncUpdateSession != nil {
		mmUpdateSession.mock.t.Fatalf("Inspect function is already set for AuthServiceMock.UpdateSession")
	}

	mmUpdateSession.mock.inspectFuncUpdateSession = f

	return mmUpdateSession
}

// Return sets up results that will be returned by AuthService.UpdateSession
func (mmUpdateSession *mAuthServiceMockUpdateSession) Return(sp1 *auth.Session, t1 auth.Transition, err error) *AuthServiceMock {
	if mmUpdateSession.mock.funcUpdateSession != nil {
		mmUpdateSession.mock.t.Fatalf("AuthServiceMock.UpdateSession mock is already set by Set")
	}

	if mmUpdateSession.defaultExpectation == nil {
		mmUpdateSession.defaultExpectation = &AuthServiceMockUpdateSessionExpectation{mock: mmUpdateSession.mock}
	}
	mmUpdateSession.defaultExpectation.results = &AuthServiceMockUpdateSessionResults{sp1, t1, err}
	mmUpdateSession.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmUpdateSession.mock
}

// Set uses given function f to mock the AuthService.UpdateSession method
func (mmUpdateSession *mAuthServiceMockUpdateSession) Set(f func(ctx context.Context, session *auth.Session, update auth.Update) (sp1 *auth.Session, t1 auth.Transition, err error)) *AuthServiceMock {
	if mmUpdateSession.defaultExpectation != nil {
		mmUpdateSession.mock.t.Fatalf("Default expectation is already set for the AuthService.UpdateSession method")
	}

	if len(mmUpdateSession.expectations) > 0 {
		mmUpdateSession.mock.t.Fatalf("Some expectations are already set for the AuthService.UpdateSession method")
	}

	mmUpdateSession.mock.funcUpdateSession = f
	mmUpdateSession.mock.funcUpdateSessionOrigin = minimock.CallerInfo(1)
	return mmUpdateSession.mock
}

// When sets expectation for the AuthService.UpdateSession which will trigger the result defined by the following
// Then helper
func (mmUpdateSession *mAuthServiceMockUpdateSession) When(ctx context.Context, session *auth.Session, update auth.Update) *AuthServiceMockUpdateSessionExpectation {
	if mmUpdateSession.mock.funcUpdateSession != nil {
		mmUpdateSession.mock.t.Fatalf("AuthServiceMock.UpdateSession mock is already set by Set")
	}

	expectation := &AuthServiceMockUpdateSessionExpectation{
		mock:               mmUpdateSession.mock,
		params:             &AuthServiceMockUpdateSessionParams{ctx, session, update},
		expectationOrigins: AuthServiceMockUpdateSessionExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmUpdateSession.expectations = append(mmUpdateSession.expectations, expectation)
	return expectation
}

// Then sets up AuthService.UpdateSession return parameters for the expectation previously defined by the When method
func (e *AuthServiceMockUpdateSessionExpectation) Then(sp1 *auth.Session, t1 auth.Transition, err error) *AuthServiceMock {
	e.results = &AuthServiceMockUpdateSessionResults{sp1, t1, err}
	return e.mock
}

// Times sets number of times AuthService.UpdateSession should be invoked
func (mmUpdateSession *mAuthServiceMockUpdateSession) Times(n uint64) *mAuthServiceMockUpdateSession {
	if n == 0 {
		mmUpdateSession.mock.t.Fatalf("Times of AuthServiceMock.UpdateSession mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmUpdateSession.expectedInvocations, n)
	mmUpdateSession.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmUpdateSession
}

func (mmUpdateSession *mAuthServiceMockUpdateSession) invocationsDone() bool {
	if len(mmUpdateSession.expectations) == 0 && mmUpdateSession.defaultExpectation == nil && mmUpdateSession.mock.funcUpdateSession == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmUpdateSession.mock.afterUpdateSessionCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmUpdateSession.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// UpdateSession implements mm_http.AuthService
func (mmUpdateSession *AuthServiceMock) UpdateSession(ctx context.Context, session *auth.Session, update auth.Update) (sp1 *auth.Session, t1 auth.Transition, err error) {
	mm_atomic.AddUint64(&mmUpdateSession.beforeUpdateSessionCounter, 1)
	defer mm_atomic.AddUint64(&mmUpdateSession.afterUpdateSessionCounter, 1)

	mmUpdateSession.t.Helper()

	if mmUpdateSession.inspectFuncUpdateSession != nil {
		mmUpdateSession.inspectFuncUpdateSession(ctx, session, update)
	}

	mm_params := AuthServiceMockUpdateSessionParams{ctx, session, update}

	// Record call args
	mmUpdateSession.UpdateSessionMock.mutex.Lock()
	mmUpdateSession.UpdateSessionMock.callArgs = append(mmUpdateSession.UpdateSessionMock.callArgs, &mm_params)
	mmUpdateSession.UpdateSessionMock.mutex.Unlock()

	for _, e := range mmUpdateSession.UpdateSessionMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.sp1, e.results.t1, e.results.err
		}
	}

	if mmUpdateSession.UpdateSessionMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmUpdateSession.UpdateSessionMock.defaultExpectation.Counter, 1)
		mm_want := mmUpdateSession.UpdateSessionMock.defaultExpectation.params
		mm_want_ptrs := mmUpdateSession.UpdateSessionMock.defaultExpectation.paramPtrs

		mm_got := AuthServiceMockUpdateSessionParams{ctx, session, update}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmUpdateSession.t.Errorf("AuthServiceMock.UpdateSession got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUpdateSession.UpdateSessionMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.session != nil && !minimock.Equal(*mm_want_ptrs.session, mm_got.session) {
				mmUpdateSession.t.Errorf("AuthServiceMock.UpdateSession got unexpected parameter session, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUpdateSession.UpdateSessionMock.defaultExpectation.expectationOrigins.originSession, *mm_want_ptrs.session, mm_got.session, minimock.Diff(*mm_want_ptrs.session, mm_got.session))
			}

			if mm_want_ptrs.update != nil && !minimock.Equal(*mm_want_ptrs.update, mm_got.update) {
				mmUpdateSession.t.Errorf("AuthServiceMock.UpdateSession got unexpected parameter update, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmUpdateSession.UpdateSessionMock.defaultExpectation.expectationOrigins.originUpdate, *mm_want_ptrs.update, mm_got.update, minimock.Diff(*mm_want_ptrs.update, mm_got.update))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmUpdateSession.t.Errorf("AuthServiceMock.UpdateSession got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmUpdateSession.UpdateSessionMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmUpdateSession.UpdateSessionMock.defaultExpectation.results
		if mm_results == nil {
			mmUpdateSession.t.Fatal("No results are set for the AuthServiceMock.UpdateSession")
		}
		return (*mm_results).sp1, (*mm_results).t1, (*mm_results).err
	}
	if mmUpdateSession.funcUpdateSession != nil {
		return mmUpdateSession.funcUpdateSession(ctx, session, update)
	}
	mmUpdateSession.t.Fatalf("Unexpected call to AuthServiceMock.UpdateSession. %v %v %v", ctx, session, update)
	return
}

// UpdateSessionAfterCounter returns a count of finished AuthServiceMock.UpdateSession invocations
func (mmUpdateSession *AuthServiceMock) UpdateSessionAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmUpdateSession.afterUpdateSessionCounter)
}

// UpdateSessionBeforeCounter returns a count of AuthServiceMock.UpdateSession invocations
func (mmUpdateSession *AuthServiceMock) UpdateSessionBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmUpdateSession.beforeUpdateSessionCounter)
}

// Calls returns a list of arguments used in each call to AuthServiceMock.UpdateSession.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmUpdateSession *mAuthServiceMockUpdateSession) Calls() []*AuthServiceMockUpdateSessionParams {
	mmUpdateSession.mutex.RLock()

	argCopy := make([]*AuthServiceMockUpdateSessionParams, len(mmUpdateSession.callArgs))
	copy(argCopy, mmUpdateSession.callArgs)

	mmUpdateSession.mutex.RUnlock()

	return argCopy
}

// MinimockUpdateSessionDone returns true if the count of the UpdateSession invocations corresponds
// the number of defined expectations
func (m *AuthServiceMock) MinimockUpdateSessionDone() bool {
	if m.UpdateSessionMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.UpdateSessionMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.UpdateSessionMock.invocationsDone()
}

// MinimockUpdateSessionInspect logs each unmet expectation
func (m *AuthServiceMock) MinimockUpdateSessionInspect() {
	for _, e := range m.UpdateSessionMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to AuthServiceMock.UpdateSession at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterUpdateSessionCounter := mm_atomic.LoadUint64(&m.afterUpdateSessionCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.UpdateSessionMock.defaultExpectation != nil && afterUpdateSessionCounter < 1 {
		if m.UpdateSessionMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to AuthServiceMock.UpdateSession at\n%s", m.UpdateSessionMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to AuthServiceMock.UpdateSession at\n%s with params: %#v", m.UpdateSessionMock.defaultExpectation.expectationOrigins.origin, *m.UpdateSessionMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcUpdateSession != nil && afterUpdateSessionCounter < 1 {
		m.t.Errorf("Expected call to AuthServiceMock.UpdateSession at\n%s", m.funcUpdateSessionOrigin)
	}

	if !m.UpdateSessionMock.invocationsDone() && afterUpdateSessionCounter > 0 {
		m.t.Errorf("Expected %d calls to AuthServiceMock.UpdateSession at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.UpdateSessionMock.expectedInvocations), m.UpdateSessionMock.expectedInvocationsOrigin, afterUpdateSessionCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *AuthServiceMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockLoginInspect()

			m.MinimockResolveInspect()

			m.MinimockUpdateSessionInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *AuthServiceMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *AuthServiceMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockLoginDone() &&
		m.MinimockResolveDone() &&
		m.MinimockUpdateSessionDone()
}
