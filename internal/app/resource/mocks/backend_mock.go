// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/66gu1/filmoradmin/internal/app/resource.Backend -o backend_mock.go -n BackendMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/66gu1/filmoradmin/internal/app/backend"
	"github.com/gojuno/minimock/v3"
)

// BackendMock implements mm_resource.Backend
type BackendMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcDo          func(ctx context.Context, token string, req backend.Request) (r1 backend.Response, err error)
	funcDoOrigin    string
	inspectFuncDo   func(ctx context.Context, token string, req backend.Request)
	afterDoCounter  uint64
	beforeDoCounter uint64
	DoMock          mBackendMockDo
}

// NewBackendMock returns a mock for mm_resource.Backend
func NewBackendMock(t minimock.Tester) *BackendMock {
	m := &BackendMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.DoMock = mBackendMockDo{mock: m}
	m.DoMock.callArgs = []*BackendMockDoParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mBackendMockDo struct {
	optional           bool
	mock               *BackendMock
	defaultExpectation *BackendMockDoExpectation
	expectations       []*BackendMockDoExpectation

	callArgs []*BackendMockDoParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// BackendMockDoExpectation specifies expectation struct of the Backend.Do
type BackendMockDoExpectation struct {
	mock               *BackendMock
	params             *BackendMockDoParams
	paramPtrs          *BackendMockDoParamPtrs
	expectationOrigins BackendMockDoExpectationOrigins
	results            *BackendMockDoResults
	returnOrigin       string
	Counter            uint64
}

// BackendMockDoParams contains parameters of the Backend.Do
type BackendMockDoParams struct {
	ctx   context.Context
	token string
	req   backend.Request
}

// BackendMockDoParamPtrs contains pointers to parameters of the Backend.Do
type BackendMockDoParamPtrs struct {
	ctx   *context.Context
	token *string
	req   *backend.Request
}

// BackendMockDoResults contains results of the Backend.Do
type BackendMockDoResults struct {
	r1  backend.Response
	err error
}

// BackendMockDoOrigins contains origins of expectations of the Backend.Do
type BackendMockDoExpectationOrigins struct {
	origin      string
	originCtx   string
	originToken string
	originReq   string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmDo *mBackendMockDo) Optional() *mBackendMockDo {
	mmDo.optional = true
	return mmDo
}

// Expect sets up expected params for Backend.Do
func (mmDo *mBackendMockDo) Expect(ctx context.Context, token string, req backend.Request) *mBackendMockDo {
	if mmDo.mock.funcDo != nil {
		mmDo.mock.t.Fatalf("BackendMock.Do mock is already set by Set")
	}

	if mmDo.defaultExpectation == nil {
		mmDo.defaultExpectation = &BackendMockDoExpectation{}
	}

	if mmDo.defaultExpectation.paramPtrs != nil {
		mmDo.mock.t.Fatalf("BackendMock.Do mock is already set by ExpectParams functions")
	}

	mmDo.defaultExpectation.params = &BackendMockDoParams{ctx, token, req}
	mmDo.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmDo.expectations {
		if minimock.Equal(e.params, mmDo.defaultExpectation.params) {
			mmDo.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmDo.defaultExpectation.params)
		}
	}

	return mmDo
}

// ExpectCtxParam1 sets up expected param ctx for Backend.Do
func (mmDo *mBackendMockDo) ExpectCtxParam1(ctx context.Context) *mBackendMockDo {
	if mmDo.mock.funcDo != nil {
		mmDo.mock.t.Fatalf("BackendMock.Do mock is already set by Set")
	}

	if mmDo.defaultExpectation == nil {
		mmDo.defaultExpectation = &BackendMockDoExpectation{}
	}

	if mmDo.defaultExpectation.params != nil {
		mmDo.mock.t.Fatalf("BackendMock.Do mock is already set by Expect")
	}

	if mmDo.defaultExpectation.paramPtrs == nil {
		mmDo.defaultExpectation.paramPtrs = &BackendMockDoParamPtrs{}
	}
	mmDo.defaultExpectation.paramPtrs.ctx = &ctx
	mmDo.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmDo
}

// ExpectTokenParam2 sets up expected param token for Backend.Do
func (mmDo *mBackendMockDo) ExpectTokenParam2(token string) *mBackendMockDo {
	if mmDo.mock.funcDo != nil {
		mmDo.mock.t.Fatalf("BackendMock.Do mock is already set by Set")
	}

	if mmDo.defaultExpectation == nil {
		mmDo.defaultExpectation = &BackendMockDoExpectation{}
	}

	if mmDo.defaultExpectation.params != nil {
		mmDo.mock.t.Fatalf("BackendMock.Do mock is already set by Expect")
	}

	if mmDo.defaultExpectation.paramPtrs == nil {
		mmDo.defaultExpectation.paramPtrs = &BackendMockDoParamPtrs{}
	}
	mmDo.defaultExpectation.paramPtrs.token = &token
	mmDo.defaultExpectation.expectationOrigins.originToken = minimock.CallerInfo(1)

	return mmDo
}

// ExpectReqParam3 sets up expected param req for Backend.Do
func (mmDo *mBackendMockDo) ExpectReqParam3(req backend.Request) *mBackendMockDo {
	if mmDo.mock.funcDo != nil {
		mmDo.mock.t.Fatalf("BackendMock.Do mock is already set by Set")
	}

	if mmDo.defaultExpectation == nil {
		mmDo.defaultExpectation = &BackendMockDoExpectation{}
	}

	if mmDo.defaultExpectation.params != nil {
		mmDo.mock.t.Fatalf("BackendMock.Do mock is already set by Expect")
	}

	if mmDo.defaultExpectation.paramPtrs == nil {
		mmDo.defaultExpectation.paramPtrs = &BackendMockDoParamPtrs{}
	}
	mmDo.defaultExpectation.paramPtrs.req = &req
	mmDo.defaultExpectation.expectationOrigins.originReq = minimock.CallerInfo(1)

	return mmDo
}

// Inspect accepts an inspector function that has same arguments as the Backend.Do
func (mmDo *mBackendMockDo) Inspect(f func(ctx context.Context, token string, req backend.Request)) *mBackendMockDo {
	if mmDo.mock.inspectFuncDo != nil {
		mmDo.mock.t.Fatalf("Inspect function is already set for BackendMock.Do")
	}

	mmDo.mock.inspectFuncDo = f

	return mmDo
}

// Return sets up results that will be returned by Backend.Do
func (mmDo *mBackendMockDo) Return(r1 backend.Response, err error) *BackendMock {
	if mmDo.mock.funcDo != nil {
		mmDo.mock.t.Fatalf("BackendMock.Do mock is already set by Set")
	}

	if mmDo.defaultExpectation == nil {
		mmDo.defaultExpectation = &BackendMockDoExpectation{mock: mmDo.mock}
	}
	mmDo.defaultExpectation.results = &BackendMockDoResults{r1, err}
	mmDo.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmDo.mock
}

// Set uses given function f to mock the Backend.Do method
func (mmDo *mBackendMockDo) Set(f func(ctx context.Context, token string, req backend.Request) (r1 backend.Response, err error)) *BackendMock {
	if mmDo.defaultExpectation != nil {
		mmDo.mock.t.Fatalf("Default expectation is already set for the Backend.Do method")
	}

	if len(mmDo.expectations) > 0 {
		mmDo.mock.t.Fatalf("Some expectations are already set for the Backend.Do method")
	}

	mmDo.mock.funcDo = f
	mmDo.mock.funcDoOrigin = minimock.CallerInfo(1)
	return mmDo.mock
}

// When sets expectation for the Backend.Do which will trigger the result defined by the following
// Then helper
func (mmDo *mBackendMockDo) When(ctx context.Context, token string, req backend.Request) *BackendMockDoExpectation {
	if mmDo.mock.funcDo != nil {
		mmDo.mock.t.Fatalf("BackendMock.Do mock is already set by Set")
	}

	expectation := &BackendMockDoExpectation{
		mock:               mmDo.mock,
		params:             &BackendMockDoParams{ctx, token, req},
		expectationOrigins: BackendMockDoExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmDo.expectations = append(mmDo.expectations, expectation)
	return expectation
}

// Then sets up Backend.Do return parameters for the expectation previously defined by the When method
func (e *BackendMockDoExpectation) Then(r1 backend.Response, err error) *BackendMock {
	e.results = &BackendMockDoResults{r1, err}
	return e.mock
}

// Times sets number of times Backend.Do should be invoked
func (mmDo *mBackendMockDo) Times(n uint64) *mBackendMockDo {
	if n == 0 {
		mmDo.mock.t.Fatalf("Times of BackendMock.Do mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmDo.expectedInvocations, n)
	mmDo.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmDo
}

func (mmDo *mBackendMockDo) invocationsDone() bool {
	if len(mmDo.expectations) == 0 && mmDo.defaultExpectation == nil && mmDo.mock.funcDo == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmDo.mock.afterDoCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmDo.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Do implements mm_resource.Backend
func (mmDo *BackendMock) Do(ctx context.Context, token string, req backend.Request) (r1 backend.Response, err error) {
	mm_atomic.AddUint64(&mmDo.beforeDoCounter, 1)
	defer mm_atomic.AddUint64(&mmDo.afterDoCounter, 1)

	mmDo.t.Helper()

	if mmDo.inspectFuncDo != nil {
		mmDo.inspectFuncDo(ctx, token, req)
	}

	mm_params := BackendMockDoParams{ctx, token, req}

	// Record call args
	mmDo.DoMock.mutex.Lock()
	mmDo.DoMock.callArgs = append(mmDo.DoMock.callArgs, &mm_params)
	mmDo.DoMock.mutex.Unlock()

	for _, e := range mmDo.DoMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.r1, e.results.err
		}
	}

	if mmDo.DoMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmDo.DoMock.defaultExpectation.Counter, 1)
		mm_want := mmDo.DoMock.defaultExpectation.params
		mm_want_ptrs := mmDo.DoMock.defaultExpectation.paramPtrs

		mm_got := BackendMockDoParams{ctx, token, req}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmDo.t.Errorf("BackendMock.Do got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDo.DoMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.token != nil && !minimock.Equal(*mm_want_ptrs.token, mm_got.token) {
				mmDo.t.Errorf("BackendMock.Do got unexpected parameter token, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDo.DoMock.defaultExpectation.expectationOrigins.originToken, *mm_want_ptrs.token, mm_got.token, minimock.Diff(*mm_want_ptrs.token, mm_got.token))
			}

			if mm_want_ptrs.req != nil && !minimock.Equal(*mm_want_ptrs.req, mm_got.req) {
				mmDo.t.Errorf("BackendMock.Do got unexpected parameter req, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDo.DoMock.defaultExpectation.expectationOrigins.originReq, *mm_want_ptrs.req, mm_got.req, minimock.Diff(*mm_want_ptrs.req, mm_got.req))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmDo.t.Errorf("BackendMock.Do got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmDo.DoMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmDo.DoMock.defaultExpectation.results
		if mm_results == nil {
			mmDo.t.Fatal("No results are set for the BackendMock.Do")
		}
		return (*mm_results).r1, (*mm_results).err
	}
	if mmDo.funcDo != nil {
		return mmDo.funcDo(ctx, token, req)
	}
	mmDo.t.Fatalf("Unexpected call to BackendMock.Do. %v %v %v", ctx, token, req)
	return
}

// DoAfterCounter returns a count of finished BackendMock.Do invocations
func (mmDo *BackendMock) DoAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDo.afterDoCounter)
}

// DoBeforeCounter returns a count of BackendMock.Do invocations
func (mmDo *BackendMock) DoBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDo.beforeDoCounter)
}

// Calls returns a list of arguments used in each call to BackendMock.Do.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmDo *mBackendMockDo) Calls() []*BackendMockDoParams {
	mmDo.mutex.RLock()

	argCopy := make([]*BackendMockDoParams, len(mmDo.callArgs))
	copy(argCopy, mmDo.callArgs)

	mmDo.mutex.RUnlock()

	return argCopy
}

// MinimockDoDone returns true if the count of the Do invocations corresponds
// the number of defined expectations
func (m *BackendMock) MinimockDoDone() bool {
	if m.DoMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.DoMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.DoMock.invocationsDone()
}

// MinimockDoInspect logs each unmet expectation
func (m *BackendMock) MinimockDoInspect() {
	for _, e := range m.DoMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to BackendMock.Do at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterDoCounter := mm_atomic.LoadUint64(&m.afterDoCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.DoMock.defaultExpectation != nil && afterDoCounter < 1 {
		if m.DoMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to BackendMock.Do at\n%s", m.DoMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to BackendMock.Do at\n%s with params: %#v", m.DoMock.defaultExpectation.expectationOrigins.origin, *m.DoMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcDo != nil && afterDoCounter < 1 {
		m.t.Errorf("Expected call to BackendMock.Do at\n%s", m.funcDoOrigin)
	}

	if !m.DoMock.invocationsDone() && afterDoCounter > 0 {
		m.t.Errorf("Expected %d calls to BackendMock.Do at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.DoMock.expectedInvocations), m.DoMock.expectedInvocationsOrigin, afterDoCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *BackendMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockDoInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *BackendMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *BackendMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockDoDone()
}
