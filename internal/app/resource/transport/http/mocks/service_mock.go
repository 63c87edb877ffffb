// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/66gu1/filmoradmin/internal/app/resource/transport/http.Service -o service_mock.go -n ServiceMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/66gu1/filmoradmin/internal/app/auth"
	"github.com/66gu1/filmoradmin/internal/app/backend"
	"github.com/66gu1/filmoradmin/internal/app/resource"
	"github.com/gojuno/minimock/v3"
)

// ServiceMock implements mm_http.Service
type ServiceMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcForward          func(ctx context.Context, sess *auth.Session, call resource.Call) (r1 backend.Response, err error)
	funcForwardOrigin    string
	inspectFuncForward   func(ctx context.Context, sess *auth.Session, call resource.Call)
	afterForwardCounter  uint64
	beforeForwardCounter uint64
	ForwardMock          mServiceMockForward

	funcVisible          func(sess *auth.Session) (ra1 []resource.Resource)
	funcVisibleOrigin    string
	inspectFuncVisible   func(sess *auth.Session)
	afterVisibleCounter  uint64
	beforeVisibleCounter uint64
	VisibleMock          mServiceMockVisible
}

// NewServiceMock returns a mock for mm_http.Service
func NewServiceMock(t minimock.Tester) *ServiceMock {
	m := &ServiceMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.ForwardMock = mServiceMockForward{mock: m}
	m.ForwardMock.callArgs = []*ServiceMockForwardParams{}

	m.VisibleMock = mServiceMockVisible{mock: m}
	m.VisibleMock.callArgs = []*ServiceMockVisibleParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mServiceMockForward struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockForwardExpectation
	expectations       []*ServiceMockForwardExpectation

	callArgs []*ServiceMockForwardParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockForwardExpectation specifies expectation struct of the Service.Forward
type ServiceMockForwardExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockForwardParams
	paramPtrs          *ServiceMockForwardParamPtrs
	expectationOrigins ServiceMockForwardExpectationOrigins
	results            *ServiceMockForwardResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockForwardParams contains parameters of the Service.Forward
type ServiceMockForwardParams struct {
	ctx  context.Context
	sess *auth.Session
	call resource.Call
}

// ServiceMockForwardParamPtrs contains pointers to parameters of the Service.Forward
type ServiceMockForwardParamPtrs struct {
	ctx  *context.Context
	sess **auth.Session
	call *resource.Call
}

// ServiceMockForwardResults contains results of the Service.Forward
type ServiceMockForwardResults struct {
	r1  backend.Response
	err error
}

// ServiceMockForwardOrigins contains origins of expectations of the Service.Forward
type ServiceMockForwardExpectationOrigins struct {
	origin     string
	originCtx  string
	originSess string
	originCall string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmForward *mServiceMockForward) Optional() *mServiceMockForward {
	mmForward.optional = true
	return mmForward
}

// Expect sets up expected params for Service.Forward
func (mmForward *mServiceMockForward) Expect(ctx context.Context, sess *auth.Session, call resource.Call) *mServiceMockForward {
	if mmForward.mock.funcForward != nil {
		mmForward.mock.t.Fatalf("ServiceMock.Forward mock is already set by Set")
	}

	if mmForward.defaultExpectation == nil {
		mmForward.defaultExpectation = &ServiceMockForwardExpectation{}
	}

	if mmForward.defaultExpectation.paramPtrs != nil {
		mmForward.mock.t.Fatalf("ServiceMock.Forward mock is already set by ExpectParams functions")
	}

	mmForward.defaultExpectation.params = &ServiceMockForwardParams{ctx, sess, call}
	mmForward.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmForward.expectations {
		if minimock.Equal(e.params, mmForward.defaultExpectation.params) {
			mmForward.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmForward.defaultExpectation.params)
		}
	}

	return mmForward
}

// ExpectCtxParam1 sets up expected param ctx for Service.Forward
func (mmForward *mServiceMockForward) ExpectCtxParam1(ctx context.Context) *mServiceMockForward {
	if mmForward.mock.funcForward != nil {
		mmForward.mock.t.Fatalf("ServiceMock.Forward mock is already set by Set")
	}

	if mmForward.defaultExpectation == nil {
		mmForward.defaultExpectation = &ServiceMockForwardExpectation{}
	}

	if mmForward.defaultExpectation.params != nil {
		mmForward.mock.t.Fatalf("ServiceMock.Forward mock is already set by Expect")
	}

	if mmForward.defaultExpectation.paramPtrs == nil {
		mmForward.defaultExpectation.paramPtrs = &ServiceMockForwardParamPtrs{}
	}
	mmForward.defaultExpectation.paramPtrs.ctx = &ctx
	mmForward.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmForward
}

// ExpectSessParam2 sets up expected param sess for Service.Forward
func (mmForward *mServiceMockForward) ExpectSessParam2(sess *auth.Session) *mServiceMockForward {
	if mmForward.mock.funcForward != nil {
		mmForward.mock.t.Fatalf("ServiceMock.Forward mock is already set by Set")
	}

	if mmForward.defaultExpectation == nil {
		mmForward.defaultExpectation = &ServiceMockForwardExpectation{}
	}

	if mmForward.defaultExpectation.params != nil {
		mmForward.mock.t.Fatalf("ServiceMock.Forward mock is already set by Expect")
	}

	if mmForward.defaultExpectation.paramPtrs == nil {
		mmForward.defaultExpectation.paramPtrs = &ServiceMockForwardParamPtrs{}
	}
	mmForward.defaultExpectation.paramPtrs.sess = &sess
	mmForward.defaultExpectation.expectationOrigins.originSess = minimock.CallerInfo(1)

	return mmForward
}

// ExpectCallParam3 sets up expected param call for Service.Forward
func (mmForward *mServiceMockForward) ExpectCallParam3(call resource.Call) *mServiceMockForward {
	if mmForward.mock.funcForward != nil {
		mmForward.mock.t.Fatalf("ServiceMock.Forward mock is already set by Set")
	}

	if mmForward.defaultExpectation == nil {
		mmForward.defaultExpectation = &ServiceMockForwardExpectation{}
	}

	if mmForward.defaultExpectation.params != nil {
		mmForward.mock.t.Fatalf("ServiceMock.Forward mock is already set by Expect")
	}

	if mmForward.defaultExpectation.paramPtrs == nil {
		mmForward.defaultExpectation.paramPtrs = &ServiceMockForwardParamPtrs{}
	}
	mmForward.defaultExpectation.paramPtrs.call = &call
	mmForward.defaultExpectation.expectationOrigins.originCall = minimock.CallerInfo(1)

	return mmForward
}

// Inspect accepts an inspector function that has same arguments as the Service.Forward
func (mmForward *mServiceMockForward) Inspect(f func(ctx context.Context, sess *auth.Session, call resource.Call)) *mServiceMockForward {
	if mmForward.mock.inspectFuncForward != nil {
		mmForward.mock.t.Fatalf("Inspect function is already set for ServiceMock.Forward")
	}

	mmForward.mock.inspectFuncForward = f

	return mmForward
}

// Return sets up results that will be returned by Service.Forward
func (mmForward *mServiceMockForward) Return(r1 backend.Response, err error) *ServiceMock {
	if mmForward.mock.funcForward != nil {
		mmForward.mock.t.Fatalf("ServiceMock.Forward mock is already set by Set")
	}

	if mmForward.defaultExpectation == nil {
		mmForward.defaultExpectation = &ServiceMockForwardExpectation{mock: mmForward.mock}
	}
	mmForward.defaultExpectation.results = &ServiceMockForwardResults{r1, err}
	mmForward.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmForward.mock
}

// Set uses given function f to mock the Service.Forward method
func (mmForward *mServiceMockForward) Set(f func(ctx context.Context, sess *auth.Session, call resource.Call) (r1 backend.Response, err error)) *ServiceMock {
	if mmForward.defaultExpectation != nil {
		mmForward.mock.t.Fatalf("Default expectation is already set for the Service.Forward method")
	}

	if len(mmForward.expectations) > 0 {
		mmForward.mock.t.Fatalf("Some expectations are already set for the Service.Forward method")
	}

	mmForward.mock.funcForward = f
	mmForward.mock.funcForwardOrigin = minimock.CallerInfo(1)
	return mmForward.mock
}

// When sets expectation for the Service.Forward which will trigger the result defined by the following
// Then helper
func (mmForward *mServiceMockForward) When(ctx context.Context, sess *auth.Session, call resource.Call) *ServiceMockForwardExpectation {
	if mmForward.mock.funcForward != nil {
		mmForward.mock.t.Fatalf("ServiceMock.Forward mock is already set by Set")
	}

	expectation := &ServiceMockForwardExpectation{
		mock:               mmForward.mock,
		params:             &ServiceMockForwardParams{ctx, sess, call},
		expectationOrigins: ServiceMockForwardExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmForward.expectations = append(mmForward.expectations, expectation)
	return expectation
}

// Then sets up Service.Forward return parameters for the expectation previously defined by the When method
func (e *ServiceMockForwardExpectation) Then(r1 backend.Response, err error) *ServiceMock {
	e.results = &ServiceMockForwardResults{r1, err}
	return e.mock
}

// Times sets number of times Service.Forward should be invoked
func (mmForward *mServiceMockForward) Times(n uint64) *mServiceMockForward {
	if n == 0 {
		mmForward.mock.t.Fatalf("Times of ServiceMock.Forward mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmForward.expectedInvocations, n)
	mmForward.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmForward
}

func (mmForward *mServiceMockForward) invocationsDone() bool {
	if len(mmForward.expectations) == 0 && mmForward.defaultExpectation == nil && mmForward.mock.funcForward == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmForward.mock.afterForwardCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmForward.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Forward implements mm_http.Service
func (mmForward *ServiceMock) Forward(ctx context.Context, sess *auth.Session, call resource.Call) (r1 backend.Response, err error) {
	mm_atomic.AddUint64(&mmForward.beforeForwardCounter, 1)
	defer mm_atomic.AddUint64(&mmForward.afterForwardCounter, 1)

	mmForward.t.Helper()

	if mmForward.inspectFuncForward != nil {
		mmForward.inspectFuncForward(ctx, sess, call)
	}

	mm_params := ServiceMockForwardParams{ctx, sess, call}

	// Record call args
	mmForward.ForwardMock.mutex.Lock()
	mmForward.ForwardMock.callArgs = append(mmForward.ForwardMock.callArgs, &mm_params)
	mmForward.ForwardMock.mutex.Unlock()

	for _, e := range mmForward.ForwardMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.r1, e.results.err
		}
	}

	if mmForward.ForwardMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmForward.ForwardMock.defaultExpectation.Counter, 1)
		mm_want := mmForward.ForwardMock.defaultExpectation.params
		mm_want_ptrs := mmForward.ForwardMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockForwardParams{ctx, sess, call}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmForward.t.Errorf("ServiceMock.Forward got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmForward.ForwardMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.sess != nil && !minimock.Equal(*mm_want_ptrs.sess, mm_got.sess) {
				mmForward.t.Errorf("ServiceMock.Forward got unexpected parameter sess, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmForward.ForwardMock.defaultExpectation.expectationOrigins.originSess, *mm_want_ptrs.sess, mm_got.sess, minimock.Diff(*mm_want_ptrs.sess, mm_got.sess))
			}

			if mm_want_ptrs.call != nil && !minimock.Equal(*mm_want_ptrs.call, mm_got.call) {
				mmForward.t.Errorf("ServiceMock.Forward got unexpected parameter call, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmForward.ForwardMock.defaultExpectation.expectationOrigins.originCall, *mm_want_ptrs.call, mm_got.call, minimock.Diff(*mm_want_ptrs.call, mm_got.call))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmForward.t.Errorf("ServiceMock.Forward got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmForward.ForwardMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmForward.ForwardMock.defaultExpectation.results
		if mm_results == nil {
			mmForward.t.Fatal("No results are set for the ServiceMock.Forward")
		}
		return (*mm_results).r1, (*mm_results).err
	}
	if mmForward.funcForward != nil {
		return mmForward.funcForward(ctx, sess, call)
	}
	mmForward.t.Fatalf("Unexpected call to ServiceMock.Forward. %v %v %v", ctx, sess, call)
	return
}

// ForwardAfterCounter returns a count of finished ServiceMock.Forward invocations
func (mmForward *ServiceMock) ForwardAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmForward.afterForwardCounter)
}

// ForwardBeforeCounter returns a count of ServiceMock.Forward invocations
func (mmForward *ServiceMock) ForwardBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmForward.beforeForwardCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.Forward.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmForward *mServiceMockForward) Calls() []*ServiceMockForwardParams {
	mmForward.mutex.RLock()

	argCopy := make([]*ServiceMockForwardParams, len(mmForward.callArgs))
	copy(argCopy, mmForward.callArgs)

	mmForward.mutex.RUnlock()

	return argCopy
}

// MinimockForwardDone returns true if the count of the Forward invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockForwardDone() bool {
	if m.ForwardMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.ForwardMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ForwardMock.invocationsDone()
}

// MinimockForwardInspect logs each unmet expectation
func (m *ServiceMock) MinimockForwardInspect() {
	for _, e := range m.ForwardMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.Forward at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterForwardCounter := mm_atomic.LoadUint64(&m.afterForwardCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ForwardMock.defaultExpectation != nil && afterForwardCounter < 1 {
		if m.ForwardMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.Forward at\n%s", m.ForwardMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.Forward at\n%s with params: %#v", m.ForwardMock.defaultExpectation.expectationOrigins.origin, *m.ForwardMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcForward != nil && afterForwardCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.Forward at\n%s", m.funcForwardOrigin)
	}

	if !m.ForwardMock.invocationsDone() && afterForwardCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.Forward at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.ForwardMock.expectedInvocations), m.ForwardMock.expectedInvocationsOrigin, afterForwardCounter)
	}
}

type mServiceMockVisible struct {
	optional           bool
	mock               *ServiceMock
	defaultExpectation *ServiceMockVisibleExpectation
	expectations       []*ServiceMockVisibleExpectation

	callArgs []*ServiceMockVisibleParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ServiceMockVisibleExpectation specifies expectation struct of the Service.Visible
type ServiceMockVisibleExpectation struct {
	mock               *ServiceMock
	params             *ServiceMockVisibleParams
	paramPtrs          *ServiceMockVisibleParamPtrs
	expectationOrigins ServiceMockVisibleExpectationOrigins
	results            *ServiceMockVisibleResults
	returnOrigin       string
	Counter            uint64
}

// ServiceMockVisibleParams contains parameters of the Service.Visible
type ServiceMockVisibleParams struct {
	sess *auth.Session
}

// ServiceMockVisibleParamPtrs contains pointers to parameters of the Service.Visible
type ServiceMockVisibleParamPtrs struct {
	sess **auth.Session
}

// ServiceMockVisibleResults contains results of the Service.Visible
type ServiceMockVisibleResults struct {
	ra1 []resource.Resource
}

// ServiceMockVisibleOrigins contains origins of expectations of the Service.Visible
type ServiceMockVisibleExpectationOrigins struct {
	origin     string
	originSess string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmVisible *mServiceMockVisible) Optional() *mServiceMockVisible {
	mmVisible.optional = true
	return mmVisible
}

// Expect sets up expected params for Service.Visible
func (mmVisible *mServiceMockVisible) Expect(sess *auth.Session) *mServiceMockVisible {
	if mmVisible.mock.funcVisible != nil {
		mmVisible.mock.t.Fatalf("ServiceMock.Visible mock is already set by Set")
	}

	if mmVisible.defaultExpectation == nil {
		mmVisible.defaultExpectation = &ServiceMockVisibleExpectation{}
	}

	if mmVisible.defaultExpectation.paramPtrs != nil {
		mmVisible.mock.t.Fatalf("ServiceMock.Visible mock is already set by ExpectParams functions")
	}

	mmVisible.defaultExpectation.params = &ServiceMockVisibleParams{sess}
	mmVisible.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmVisible.expectations {
		if minimock.Equal(e.params, mmVisible.defaultExpectation.params) {
			mmVisible.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmVisible.defaultExpectation.params)
		}
	}

	return mmVisible
}

// ExpectSessParam1 sets up expected param sess for Service.Visible
func (mmVisible *mServiceMockVisible) ExpectSessParam1(sess *auth.Session) *mServiceMockVisible {
	if mmVisible.mock.funcVisible != nil {
		mmVisible.mock.t.Fatalf("ServiceMock.Visible mock is already set by Set")
	}

	if mmVisible.defaultExpectation == nil {
		mmVisible.defaultExpectation = &ServiceMockVisibleExpectation{}
	}

	if mmVisible.defaultExpectation.params != nil {
		mmVisible.mock.t.Fatalf("ServiceMock.Visible mock is already set by Expect")
	}

	if mmVisible.defaultExpectation.paramPtrs == nil {
		mmVisible.defaultExpectation.paramPtrs = &ServiceMockVisibleParamPtrs{}
	}
	mmVisible.defaultExpectation.paramPtrs.sess = &sess
	mmVisible.defaultExpectation.expectationOrigins.originSess = minimock.CallerInfo(1)

	return mmVisible
}

// Inspect accepts an inspector function that has same arguments as the Service.Visible
func (mmVisible *mServiceMockVisible) Inspect(f func(sess *auth.Session)) *mServiceMockVisible {
	if mmVisible.mock.inspectFuncVisible != nil {
		mmVisible.mock.t.Fatalf("Inspect function is already set for ServiceMock.Visible")
	}

	mmVisible.mock.inspectFuncVisible = f

	return mmVisible
}

// Return sets up results that will be returned by Service.Visible
func (mmVisible *mServiceMockVisible) Return(ra1 []resource.Resource) *ServiceMock {
	if mmVisible.mock.funcVisible != nil {
		mmVisible.mock.t.Fatalf("ServiceMock.Visible mock is already set by Set")
	}

	if mmVisible.defaultExpectation == nil {
		mmVisible.defaultExpectation = &ServiceMockVisibleExpectation{mock: mmVisible.mock}
	}
	mmVisible.defaultExpectation.results = &ServiceMockVisibleResults{ra1}
	mmVisible.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmVisible.mock
}

// Set uses given function f to mock the Service.Visible method
func (mmVisible *mServiceMockVisible) Set(f func(sess *auth.Session) (ra1 []resource.Resource)) *ServiceMock {
	if mmVisible.defaultExpectation != nil {
		mmVisible.mock.t.Fatalf("Default expectation is already set for the Service.Visible method")
	}

	if len(mmVisible.expectations) > 0 {
		mmVisible.mock.t.Fatalf("Some expectations are already set for the Service.Visible method")
	}

	mmVisible.mock.funcVisible = f
	mmVisible.mock.funcVisibleOrigin = minimock.CallerInfo(1)
	return mmVisible.mock
}

// When sets expectation for the Service.Visible which will trigger the result defined by the following
// Then helper
func (mmVisible *mServiceMockVisible) When(sess *auth.Session) *ServiceMockVisibleExpectation {
	if mmVisible.mock.funcVisible != nil {
		mmVisible.mock.t.Fatalf("ServiceMock.Visible mock is already set by Set")
	}

	expectation := &ServiceMockVisibleExpectation{
		mock:               mmVisible.mock,
		params:             &ServiceMockVisibleParams{sess},
		expectationOrigins: ServiceMockVisibleExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmVisible.expectations = append(mmVisible.expectations, expectation)
	return expectation
}

// Then sets up Service.Visible return parameters for the expectation previously defined by the When method
func (e *ServiceMockVisibleExpectation) Then(ra1 []resource.Resource) *ServiceMock {
	e.results = &ServiceMockVisibleResults{ra1}
	return e.mock
}

// Times sets number of times Service.Visible should be invoked
func (mmVisible *mServiceMockVisible) Times(n uint64) *mServiceMockVisible {
	if n == 0 {
		mmVisible.mock.t.Fatalf("Times of ServiceMock.Visible mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmVisible.expectedInvocations, n)
	mmVisible.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmVisible
}

func (mmVisible *mServiceMockVisible) invocationsDone() bool {
	if len(mmVisible.expectations) == 0 && mmVisible.defaultExpectation == nil && mmVisible.mock.funcVisible == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmVisible.mock.afterVisibleCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmVisible.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Visible implements mm_http.Service
func (mmVisible *ServiceMock) Visible(sess *auth.Session) (ra1 []resource.Resource) {
	mm_atomic.AddUint64(&mmVisible.beforeVisibleCounter, 1)
	defer mm_atomic.AddUint64(&mmVisible.afterVisibleCounter, 1)

	mmVisible.t.Helper()

	if mmVisible.inspectFuncVisible != nil {
		mmVisible.inspectFuncVisible(sess)
	}

	mm_params := ServiceMockVisibleParams{sess}

	// Record call args
	mmVisible.VisibleMock.mutex.Lock()
	mmVisible.VisibleMock.callArgs = append(mmVisible.VisibleMock.callArgs, &mm_params)
	mmVisible.VisibleMock.mutex.Unlock()

	for _, e := range mmVisible.VisibleMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.ra1
		}
	}

	if mmVisible.VisibleMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmVisible.VisibleMock.defaultExpectation.Counter, 1)
		mm_want := mmVisible.VisibleMock.defaultExpectation.params
		mm_want_ptrs := mmVisible.VisibleMock.defaultExpectation.paramPtrs

		mm_got := ServiceMockVisibleParams{sess}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.sess != nil && !minimock.Equal(*mm_want_ptrs.sess, mm_got.sess) {
				mmVisible.t.Errorf("ServiceMock.Visible got unexpected parameter sess, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmVisible.VisibleMock.defaultExpectation.expectationOrigins.originSess, *mm_want_ptrs.sess, mm_got.sess, minimock.Diff(*mm_want_ptrs.sess, mm_got.sess))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmVisible.t.Errorf("ServiceMock.Visible got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmVisible.VisibleMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmVisible.VisibleMock.defaultExpectation.results
		if mm_results == nil {
			mmVisible.t.Fatal("No results are set for the ServiceMock.Visible")
		}
		return (*mm_results).ra1
	}
	if mmVisible.funcVisible != nil {
		return mmVisible.funcVisible(sess)
	}
	mmVisible.t.Fatalf("Unexpected call to ServiceMock.Visible. %v", sess)
	return
}

// VisibleAfterCounter returns a count of finished ServiceMock.Visible invocations
func (mmVisible *ServiceMock) VisibleAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmVisible.afterVisibleCounter)
}

// VisibleBeforeCounter returns a count of ServiceMock.Visible invocations
func (mmVisible *ServiceMock) VisibleBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmVisible.beforeVisibleCounter)
}

// Calls returns a list of arguments used in each call to ServiceMock.Visible.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmVisible *mServiceMockVisible) Calls() []*ServiceMockVisibleParams {
	mmVisible.mutex.RLock()

	argCopy := make([]*ServiceMockVisibleParams, len(mmVisible.callArgs))
	copy(argCopy, mmVisible.callArgs)

	mmVisible.mutex.RUnlock()

	return argCopy
}

// MinimockVisibleDone returns true if the count of the Visible invocations corresponds
// the number of defined expectations
func (m *ServiceMock) MinimockVisibleDone() bool {
	if m.VisibleMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.VisibleMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.VisibleMock.invocationsDone()
}

// MinimockVisibleInspect logs each unmet expectation
func (m *ServiceMock) MinimockVisibleInspect() {
	for _, e := range m.VisibleMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ServiceMock.Visible at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterVisibleCounter := mm_atomic.LoadUint64(&m.afterVisibleCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.VisibleMock.defaultExpectation != nil && afterVisibleCounter < 1 {
		if m.VisibleMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ServiceMock.Visible at\n%s", m.VisibleMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ServiceMock.Visible at\n%s with params: %#v", m.VisibleMock.defaultExpectation.expectationOrigins.origin, *m.VisibleMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcVisible != nil && afterVisibleCounter < 1 {
		m.t.Errorf("Expected call to ServiceMock.Visible at\n%s", m.funcVisibleOrigin)
	}

	if !m.VisibleMock.invocationsDone() && afterVisibleCounter > 0 {
		m.t.Errorf("Expected %d calls to ServiceMock.Visible at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.VisibleMock.expectedInvocations), m.VisibleMock.expectedInvocationsOrigin, afterVisibleCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ServiceMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockForwardInspect()

			m.MinimockVisibleInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ServiceMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *ServiceMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockForwardDone() &&
		m.MinimockVisibleDone()
}
