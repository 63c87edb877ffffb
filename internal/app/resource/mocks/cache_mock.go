// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/66gu1/filmoradmin/internal/app/resource.Cache -o cache_mock.go -n CacheMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// CacheMock implements mm_resource.Cache
type CacheMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcGet          func(ctx context.Context, tag string, key string) (ba1 []byte, b1 bool, err error)
	funcGetOrigin    string
	inspectFuncGet   func(ctx context.Context, tag string, key string)
	afterGetCounter  uint64
	beforeGetCounter uint64
	GetMock          mCacheMockGet

	funcInvalidate          func(ctx context.Context, tag string) (err error)
	funcInvalidateOrigin    string
	inspectFuncInvalidate   func(ctx context.Context, tag string)
	afterInvalidateCounter  uint64
	beforeInvalidateCounter uint64
	InvalidateMock          mCacheMockInvalidate

	funcSet          func(ctx context.Context, tag string, key string, body []byte) (err error)
	funcSetOrigin    string
	inspectFuncSet   func(ctx context.Context, tag string, key string, body []byte)
	afterSetCounter  uint64
	beforeSetCounter uint64
	SetMock          mCacheMockSet
}

// NewCacheMock returns a mock for mm_resource.Cache
func NewCacheMock(t minimock.Tester) *CacheMock {
	m := &CacheMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.GetMock = mCacheMockGet{mock: m}
	m.GetMock.callArgs = []*CacheMockGetParams{}

	m.InvalidateMock = mCacheMockInvalidate{mock: m}
	m.InvalidateMock.callArgs = []*CacheMockInvalidateParams{}

	m.SetMock = mCacheMockSet{mock: m}
	m.SetMock.callArgs = []*CacheMockSetParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mCacheMockGet struct {
	optional           bool
	mock               *CacheMock
	defaultExpectation *CacheMockGetExpectation
	expectations       []*CacheMockGetExpectation

	callArgs []*CacheMockGetParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CacheMockGetExpectation specifies expectation struct of the Cache.Get
type CacheMockGetExpectation struct {
	mock               *CacheMock
	params             *CacheMockGetParams
	paramPtrs          *CacheMockGetParamPtrs
	expectationOrigins CacheMockGetExpectationOrigins
	results            *CacheMockGetResults
	returnOrigin       string
	Counter            uint64
}

// CacheMockGetParams contains parameters of the Cache.Get
type CacheMockGetParams struct {
	ctx context.Context
	tag string
	key string
}

// CacheMockGetParamPtrs contains pointers to parameters of the Cache.Get
type CacheMockGetParamPtrs struct {
	ctx *context.Context
	tag *string
	key *string
}

// CacheMockGetResults contains results of the Cache.Get
type CacheMockGetResults struct {
	ba1 []byte
	b1  bool
	err error
}

// CacheMockGetOrigins contains origins of expectations of the Cache.Get
type CacheMockGetExpectationOrigins struct {
	origin    string
	originCtx string
	originTag string
	originKey string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmGet *mCacheMockGet) Optional() *mCacheMockGet {
	mmGet.optional = true
	return mmGet
}

// Expect sets up expected params for Cache.Get
func (mmGet *mCacheMockGet) Expect(ctx context.Context, tag string, key string) *mCacheMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("CacheMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &CacheMockGetExpectation{}
	}

	if mmGet.defaultExpectation.paramPtrs != nil {
		mmGet.mock.t.Fatalf("CacheMock.Get mock is already set by ExpectParams functions")
	}

	mmGet.defaultExpectation.params = &CacheMockGetParams{ctx, tag, key}
	mmGet.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmGet.expectations {
		if minimock.Equal(e.params, mmGet.defaultExpectation.params) {
			mmGet.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGet.defaultExpectation.params)
		}
	}

	return mmGet
}

// ExpectCtxParam1 sets up expected param ctx for Cache.Get
func (mmGet *mCacheMockGet) ExpectCtxParam1(ctx context.Context) *mCacheMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("CacheMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &CacheMockGetExpectation{}
	}

	if mmGet.defaultExpectation.params != nil {
		mmGet.mock.t.Fatalf("CacheMock.Get mock is already set by Expect")
	}

	if mmGet.defaultExpectation.paramPtrs == nil {
		mmGet.defaultExpectation.paramPtrs = &CacheMockGetParamPtrs{}
	}
	mmGet.defaultExpectation.paramPtrs.ctx = &ctx
	mmGet.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmGet
}

// ExpectTagParam2 sets up expected param tag for Cache.Get
func (mmGet *mCacheMockGet) ExpectTagParam2(tag string) *mCacheMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("CacheMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &CacheMockGetExpectation{}
	}

	if mmGet.defaultExpectation.params != nil {
		mmGet.mock.t.Fatalf("CacheMock.Get mock is already set by Expect")
	}

	if mmGet.defaultExpectation.paramPtrs == nil {
		mmGet.defaultExpectation.paramPtrs = &CacheMockGetParamPtrs{}
	}
	mmGet.defaultExpectation.paramPtrs.tag = &tag
	mmGet.defaultExpectation.expectationOrigins.originTag = minimock.CallerInfo(1)

	return mmGet
}

// ExpectKeyParam3 sets up expected param key for Cache.Get
func (mmGet *mCacheMockGet) ExpectKeyParam3(key string) *mCacheMockGet {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("CacheMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &CacheMockGetExpectation{}
	}

	if mmGet.defaultExpectation.params != nil {
		mmGet.mock.t.Fatalf("CacheMock.Get mock is already set by Expect")
	}

	if mmGet.defaultExpectation.paramPtrs == nil {
		mmGet.defaultExpectation.paramPtrs = &CacheMockGetParamPtrs{}
	}
	mmGet.defaultExpectation.paramPtrs.key = &key
	mmGet.defaultExpectation.expectationOrigins.originKey = minimock.CallerInfo(1)

	return mmGet
}

// Inspect accepts an inspector function that has same arguments as the Cache.Get
func (mmGet *mCacheMockGet) Inspect(f func(ctx context.Context, tag string, key string)) *mCacheMockGet {
	if mmGet.mock.inspectFuncGet != nil {
		mmGet.mock.t.Fatalf("Inspect function is already set for CacheMock.Get")
	}

	mmGet.mock.inspectFuncGet = f

	return mmGet
}

// Return sets up results that will be returned by Cache.Get
func (mmGet *mCacheMockGet) Return(ba1 []byte, b1 bool, err error) *CacheMock {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("CacheMock.Get mock is already set by Set")
	}

	if mmGet.defaultExpectation == nil {
		mmGet.defaultExpectation = &CacheMockGetExpectation{mock: mmGet.mock}
	}
	mmGet.defaultExpectation.results = &CacheMockGetResults{ba1, b1, err}
	mmGet.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmGet.mock
}

// Set uses given function f to mock the Cache.Get method
func (mmGet *mCacheMockGet) Set(f func(ctx context.Context, tag string, key string) (ba1 []byte, b1 bool, err error)) *CacheMock {
	if mmGet.defaultExpectation != nil {
		mmGet.mock.t.Fatalf("Default expectation is already set for the Cache.Get method")
	}

	if len(mmGet.expectations) > 0 {
		mmGet.mock.t.Fatalf("Some expectations are already set for the Cache.Get method")
	}

	mmGet.mock.funcGet = f
	mmGet.mock.funcGetOrigin = minimock.CallerInfo(1)
	return mmGet.mock
}

// When sets expectation for the Cache.Get which will trigger the result defined by the following
// Then helper
func (mmGet *mCacheMockGet) When(ctx context.Context, tag string, key string) *CacheMockGetExpectation {
	if mmGet.mock.funcGet != nil {
		mmGet.mock.t.Fatalf("CacheMock.Get mock is already set by Set")
	}

	expectation := &CacheMockGetExpectation{
		mock:               mmGet.mock,
		params:             &CacheMockGetParams{ctx, tag, key},
		expectationOrigins: CacheMockGetExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmGet.expectations = append(mmGet.expectations, expectation)
	return expectation
}

// Then sets up Cache.Get return parameters for the expectation previously defined by the When method
func (e *CacheMockGetExpectation) Then(ba1 []byte, b1 bool, err error) *CacheMock {
	e.results = &CacheMockGetResults{ba1, b1, err}
	return e.mock
}

// Times sets number of times Cache.Get should be invoked
func (mmGet *mCacheMockGet) Times(n uint64) *mCacheMockGet {
	if n == 0 {
		mmGet.mock.t.Fatalf("Times of CacheMock.Get mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmGet.expectedInvocations, n)
	mmGet.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmGet
}

func (mmGet *mCacheMockGet) invocationsDone() bool {
	if len(mmGet.expectations) == 0 && mmGet.defaultExpectation == nil && mmGet.mock.funcGet == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmGet.mock.afterGetCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmGet.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Get implements mm_resource.Cache
func (mmGet *CacheMock) Get(ctx context.Context, tag string, key string) (ba1 []byte, b1 bool, err error) {
	mm_atomic.AddUint64(&mmGet.beforeGetCounter, 1)
	defer mm_atomic.AddUint64(&mmGet.afterGetCounter, 1)

	mmGet.t.Helper()

	if mmGet.inspectFuncGet != nil {
		mmGet.inspectFuncGet(ctx, tag, key)
	}

	mm_params := CacheMockGetParams{ctx, tag, key}

	// Record call args
	mmGet.GetMock.mutex.Lock()
	mmGet.GetMock.callArgs = append(mmGet.GetMock.callArgs, &mm_params)
	mmGet.GetMock.mutex.Unlock()

	for _, e := range mmGet.GetMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.ba1, e.results.b1, e.results.err
		}
	}

	if mmGet.GetMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmGet.GetMock.defaultExpectation.Counter, 1)
		mm_want := mmGet.GetMock.defaultExpectation.params
		mm_want_ptrs := mmGet.GetMock.defaultExpectation.paramPtrs

		mm_got := CacheMockGetParams{ctx, tag, key}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmGet.t.Errorf("CacheMock.Get got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGet.GetMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.tag != nil && !minimock.Equal(*mm_want_ptrs.tag, mm_got.tag) {
				mmGet.t.Errorf("CacheMock.Get got unexpected parameter tag, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGet.GetMock.defaultExpectation.expectationOrigins.originTag, *mm_want_ptrs.tag, mm_got.tag, minimock.Diff(*mm_want_ptrs.tag, mm_got.tag))
			}

			if mm_want_ptrs.key != nil && !minimock.Equal(*mm_want_ptrs.key, mm_got.key) {
				mmGet.t.Errorf("CacheMock.Get got unexpected parameter key, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmGet.GetMock.defaultExpectation.expectationOrigins.originKey, *mm_want_ptrs.key, mm_got.key, minimock.Diff(*mm_want_ptrs.key, mm_got.key))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmGet.t.Errorf("CacheMock.Get got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmGet.GetMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmGet.GetMock.defaultExpectation.results
		if mm_results == nil {
			mmGet.t.Fatal("No results are set for the CacheMock.Get")
		}
		return (*mm_results).ba1, (*mm_results).b1, (*mm_results).err
	}
	if mmGet.funcGet != nil {
		return mmGet.funcGet(ctx, tag, key)
	}
	mmGet.t.Fatalf("Unexpected call to CacheMock.Get. %v %v %v", ctx, tag, key)
	return
}

// GetAfterCounter returns a count of finished CacheMock.Get invocations
func (mmGet *CacheMock) GetAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGet.afterGetCounter)
}

// GetBeforeCounter returns a count of CacheMock.Get invocations
func (mmGet *CacheMock) GetBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGet.beforeGetCounter)
}

// Calls returns a list of arguments used in each call to CacheMock.Get.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGet *mCacheMockGet) Calls() []*CacheMockGetParams {
	mmGet.mutex.RLock()

	argCopy := make([]*CacheMockGetParams, len(mmGet.callArgs))
	copy(argCopy, mmGet.callArgs)

	mmGet.mutex.RUnlock()

	return argCopy
}

// MinimockGetDone returns true if the count of the Get invocations corresponds
// the number of defined expectations
func (m *CacheMock) MinimockGetDone() bool {
	if m.GetMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.GetMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.GetMock.invocationsDone()
}

// MinimockGetInspect logs each unmet expectation
func (m *CacheMock) MinimockGetInspect() {
	for _, e := range m.GetMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CacheMock.Get at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterGetCounter := mm_atomic.LoadUint64(&m.afterGetCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.GetMock.defaultExpectation != nil && afterGetCounter < 1 {
		if m.GetMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CacheMock.Get at\n%s", m.GetMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CacheMock.Get at\n%s with params: %#v", m.GetMock.defaultExpectation.expectationOrigins.origin, *m.GetMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGet != nil && afterGetCounter < 1 {
		m.t.Errorf("Expected call to CacheMock.Get at\n%s", m.funcGetOrigin)
	}

	if !m.GetMock.invocationsDone() && afterGetCounter > 0 {
		m.t.Errorf("Expected %d calls to CacheMock.Get at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.GetMock.expectedInvocations), m.GetMock.expectedInvocationsOrigin, afterGetCounter)
	}
}

type mCacheMockInvalidate struct {
	optional           bool
	mock               *CacheMock
	defaultExpectation *CacheMockInvalidateExpectation
	expectations       []*CacheMockInvalidateExpectation

	callArgs []*CacheMockInvalidateParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CacheMockInvalidateExpectation specifies expectation struct of the Cache.Invalidate
type CacheMockInvalidateExpectation struct {
	mock               *CacheMock
	params             *CacheMockInvalidateParams
	paramPtrs          *CacheMockInvalidateParamPtrs
	expectationOrigins CacheMockInvalidateExpectationOrigins
	results            *CacheMockInvalidateResults
	returnOrigin       string
	Counter            uint64
}

// CacheMockInvalidateParams contains parameters of the Cache.Invalidate
type CacheMockInvalidateParams struct {
	ctx context.Context
	tag string
}

// CacheMockInvalidateParamPtrs contains pointers to parameters of the Cache.Invalidate
type CacheMockInvalidateParamPtrs struct {
	ctx *context.Context
	tag *string
}

// CacheMockInvalidateResults contains results of the Cache.Invalidate
type CacheMockInvalidateResults struct {
	err error
}

// CacheMockInvalidateOrigins contains origins of expectations of the Cache.Invalidate
type CacheMockInvalidateExpectationOrigins struct {
	origin    string
	originCtx string
	originTag string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmInvalidate *mCacheMockInvalidate) Optional() *mCacheMockInvalidate {
	mmInvalidate.optional = true
	return mmInvalidate
}

// Expect sets up expected params for Cache.Invalidate
func (mmInvalidate *mCacheMockInvalidate) Expect(ctx context.Context, tag string) *mCacheMockInvalidate {
	if mmInvalidate.mock.funcInvalidate != nil {
		mmInvalidate.mock.t.Fatalf("CacheMock.Invalidate mock is already set by Set")
	}

	if mmInvalidate.defaultExpectation == nil {
		mmInvalidate.defaultExpectation = &CacheMockInvalidateExpectation{}
	}

	if mmInvalidate.defaultExpectation.paramPtrs != nil {
		mmInvalidate.mock.t.Fatalf("CacheMock.Invalidate mock is already set by ExpectParams functions")
	}

	mmInvalidate.defaultExpectation.params = &CacheMockInvalidateParams{ctx, tag}
	mmInvalidate.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmInvalidate.expectations {
		if minimock.Equal(e.params, mmInvalidate.defaultExpectation.params) {
			mmInvalidate.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmInvalidate.defaultExpectation.params)
		}
	}

	return mmInvalidate
}

// ExpectCtxParam1 sets up expected param ctx for Cache.Invalidate
func (mmInvalidate *mCacheMockInvalidate) ExpectCtxParam1(ctx context.Context) *mCacheMockInvalidate {
	if mmInvalidate.mock.funcInvalidate != nil {
		mmInvalidate.mock.t.Fatalf("CacheMock.Invalidate mock is already set by Set")
	}

	if mmInvalidate.defaultExpectation == nil {
		mmInvalidate.defaultExpectation = &CacheMockInvalidateExpectation{}
	}

	if mmInvalidate.defaultExpectation.params != nil {
		mmInvalidate.mock.t.Fatalf("CacheMock.Invalidate mock is already set by Expect")
	}

	if mmInvalidate.defaultExpectation.paramPtrs == nil {
		mmInvalidate.defaultExpectation.paramPtrs = &CacheMockInvalidateParamPtrs{}
	}
	mmInvalidate.defaultExpectation.paramPtrs.ctx = &ctx
	mmInvalidate.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmInvalidate
}

// ExpectTagParam2 sets up expected param tag for Cache.Invalidate
func (mmInvalidate *mCacheMockInvalidate) ExpectTagParam2(tag string) *mCacheMockInvalidate {
	if mmInvalidate.mock.funcInvalidate != nil {
		mmInvalidate.mock.t.Fatalf("CacheMock.Invalidate mock is already set by Set")
	}

	if mmInvalidate.defaultExpectation == nil {
		mmInvalidate.defaultExpectation = &CacheMockInvalidateExpectation{}
	}

	if mmInvalidate.defaultExpectation.params != nil {
		mmInvalidate.mock.t.Fatalf("CacheMock.Invalidate mock is already set by Expect")
	}

	if mmInvalidate.defaultExpectation.paramPtrs == nil {
		mmInvalidate.defaultExpectation.paramPtrs = &CacheMockInvalidateParamPtrs{}
	}
	mmInvalidate.defaultExpectation.paramPtrs.tag = &tag
	mmInvalidate.defaultExpectation.expectationOrigins.originTag = minimock.CallerInfo(1)

	return mmInvalidate
}

// Inspect accepts an inspector function that has same arguments as the Cache.Invalidate
func (mmInvalidate *mCacheMockInvalidate) Inspect(f func(ctx context.Context, tag string)) *mCacheMockInvalidate {
	if mmInvalidate.mock.inspectFuncInvalidate != nil {
		mmInvalidate.mock.t.Fatalf("Inspect function is already set for CacheMock.Invalidate")
	}

	mmInvalidate.mock.inspectFuncInvalidate = f

	return mmInvalidate
}

// Return sets up results that will be returned by Cache.Invalidate
func (mmInvalidate *mCacheMockInvalidate) Return(err error) *CacheMock {
	if mmInvalidate.mock.funcInvalidate != nil {
		mmInvalidate.mock.t.Fatalf("CacheMock.Invalidate mock is already set by Set")
	}

	if mmInvalidate.defaultExpectation == nil {
		mmInvalidate.defaultExpectation = &CacheMockInvalidateExpectation{mock: mmInvalidate.mock}
	}
	mmInvalidate.defaultExpectation.results = &CacheMockInvalidateResults{err}
	mmInvalidate.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmInvalidate.mock
}

// Set uses given function f to mock the Cache.Invalidate method
func (mmInvalidate *mCacheMockInvalidate) Set(f func(ctx context.Context, tag string) (err error)) *CacheMock {
	if mmInvalidate.defaultExpectation != nil {
		mmInvalidate.mock.t.Fatalf("Default expectation is already set for the Cache.Invalidate method")
	}

	if len(mmInvalidate.expectations) > 0 {
		mmInvalidate.mock.t.Fatalf("Some expectations are already set for the Cache.Invalidate method")
	}

	mmInvalidate.mock.funcInvalidate = f
	mmInvalidate.mock.funcInvalidateOrigin = minimock.CallerInfo(1)
	return mmInvalidate.mock
}

// When sets expectation for the Cache.Invalidate which will trigger the result defined by the following
// Then helper
func (mmInvalidate *mCacheMockInvalidate) When(ctx context.Context, tag string) *CacheMockInvalidateExpectation {
	if mmInvalidate.mock.funcInvalidate != nil {
		mmInvalidate.mock.t.Fatalf("CacheMock.Invalidate mock is already set by Set")
	}

	expectation := &CacheMockInvalidateExpectation{
		mock:               mmInvalidate.mock,
		params:             &CacheMockInvalidateParams{ctx, tag},
		expectationOrigins: CacheMockInvalidateExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmInvalidate.expectations = append(mmInvalidate.expectations, expectation)
	return expectation
}

// Then sets up Cache.Invalidate return parameters for the expectation previously defined by the When method
func (e *CacheMockInvalidateExpectation) Then(err error) *CacheMock {
	e.results = &CacheMockInvalidateResults{err}
	return e.mock
}

// Times sets number of times Cache.Invalidate should be invoked
func (mmInvalidate *mCacheMockInvalidate) Times(n uint64) *mCacheMockInvalidate {
	if n == 0 {
		mmInvalidate.mock.t.Fatalf("Times of CacheMock.Invalidate mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmInvalidate.expectedInvocations, n)
	mmInvalidate.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmInvalidate
}

func (mmInvalidate *mCacheMockInvalidate) invocationsDone() bool {
	if len(mmInvalidate.expectations) == 0 && mmInvalidate.defaultExpectation == nil && mmInvalidate.mock.funcInvalidate == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmInvalidate.mock.afterInvalidateCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmInvalidate.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Invalidate implements mm_resource.Cache
func (mmInvalidate *CacheMock) Invalidate(ctx context.Context, tag string) (err error) {
	mm_atomic.AddUint64(&mmInvalidate.beforeInvalidateCounter, 1)
	defer mm_atomic.AddUint64(&mmInvalidate.afterInvalidateCounter, 1)

	mmInvalidate.t.Helper()

	if mmInvalidate.inspectFuncInvalidate != nil {
		mmInvalidate.inspectFuncInvalidate(ctx, tag)
	}

	mm_params := CacheMockInvalidateParams{ctx, tag}

	// Record call args
	mmInvalidate.InvalidateMock.mutex.Lock()
	mmInvalidate.InvalidateMock.callArgs = append(mmInvalidate.InvalidateMock.callArgs, &mm_params)
	mmInvalidate.InvalidateMock.mutex.Unlock()

	for _, e := range mmInvalidate.InvalidateMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmInvalidate.InvalidateMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmInvalidate.InvalidateMock.defaultExpectation.Counter, 1)
		mm_want := mmInvalidate.InvalidateMock.defaultExpectation.params
		mm_want_ptrs := mmInvalidate.InvalidateMock.defaultExpectation.paramPtrs

		mm_got := CacheMockInvalidateParams{ctx, tag}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmInvalidate.t.Errorf("CacheMock.Invalidate got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmInvalidate.InvalidateMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.tag != nil && !minimock.Equal(*mm_want_ptrs.tag, mm_got.tag) {
				mmInvalidate.t.Errorf("CacheMock.Invalidate got unexpected parameter tag, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmInvalidate.InvalidateMock.defaultExpectation.expectationOrigins.originTag, *mm_want_ptrs.tag, mm_got.tag, minimock.Diff(*mm_want_ptrs.tag, mm_got.tag))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmInvalidate.t.Errorf("CacheMock.Invalidate got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmInvalidate.InvalidateMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmInvalidate.InvalidateMock.defaultExpectation.results
		if mm_results == nil {
			mmInvalidate.t.Fatal("No results are set for the CacheMock.Invalidate")
		}
		return (*mm_results).err
	}
	if mmInvalidate.funcInvalidate != nil {
		return mmInvalidate.funcInvalidate(ctx, tag)
	}
	mmInvalidate.t.Fatalf("Unexpected call to CacheMock.Invalidate. %v %v", ctx, tag)
	return
}

// InvalidateAfterCounter returns a count of finished CacheMock.Invalidate invocations
func (mmInvalidate *CacheMock) InvalidateAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmInvalidate.afterInvalidateCounter)
}

// InvalidateBeforeCounter returns a count of CacheMock.Invalidate invocations
func (mmInvalidate *CacheMock) InvalidateBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmInvalidate.beforeInvalidateCounter)
}

// Calls returns a list of arguments used in each call to CacheMock.Invalidate.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmInvalidate *mCacheMockInvalidate) Calls() []*CacheMockInvalidateParams {
	mmInvalidate.mutex.RLock()

	argCopy := make([]*CacheMockInvalidateParams, len(mmInvalidate.callArgs))
	copy(argCopy, mmInvalidate.callArgs)

	mmInvalidate.mutex.RUnlock()

	return argCopy
}

// MinimockInvalidateDone returns true if the count of the Invalidate invocations corresponds
// the number of defined expectations
func (m *CacheMock) MinimockInvalidateDone() bool {
	if m.InvalidateMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.InvalidateMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.InvalidateMock.invocationsDone()
}

// MinimockInvalidateInspect logs each unmet expectation
func (m *CacheMock) MinimockInvalidateInspect() {
	for _, e := range m.InvalidateMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CacheMock.Invalidate at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterInvalidateCounter := mm_atomic.LoadUint64(&m.afterInvalidateCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.InvalidateMock.defaultExpectation != nil && afterInvalidateCounter < 1 {
		if m.InvalidateMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CacheMock.Invalidate at\n%s", m.InvalidateMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CacheMock.Invalidate at\n%s with params: %#v", m.InvalidateMock.defaultExpectation.expectationOrigins.origin, *m.InvalidateMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcInvalidate != nil && afterInvalidateCounter < 1 {
		m.t.Errorf("Expected call to CacheMock.Invalidate at\n%s", m.funcInvalidateOrigin)
	}

	if !m.InvalidateMock.invocationsDone() && afterInvalidateCounter > 0 {
		m.t.Errorf("Expected %d calls to CacheMock.Invalidate at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.InvalidateMock.expectedInvocations), m.InvalidateMock.expectedInvocationsOrigin, afterInvalidateCounter)
	}
}

type mCacheMockSet struct {
	optional           bool
	mock               *CacheMock
	defaultExpectation *CacheMockSetExpectation
	expectations       []*CacheMockSetExpectation

	callArgs []*CacheMockSetParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// CacheMockSetExpectation specifies expectation struct of the Cache.Set
type CacheMockSetExpectation struct {
	mock               *CacheMock
	params             *CacheMockSetParams
	paramPtrs          *CacheMockSetParamPtrs
	expectationOrigins CacheMockSetExpectationOrigins
	results            *CacheMockSetResults
	returnOrigin       string
	Counter            uint64
}

// CacheMockSetParams contains parameters of the Cache.Set
type CacheMockSetParams struct {
	ctx  context.Context
	tag  string
	key  string
	body []byte
}

// CacheMockSetParamPtrs contains pointers to parameters of the Cache.Set
type CacheMockSetParamPtrs struct {
	ctx  *context.Context
	tag  *string
	key  *string
	body *[]byte
}

// CacheMockSetResults contains results of the Cache.Set
type CacheMockSetResults struct {
	err error
}

// CacheMockSetOrigins contains origins of expectations of the Cache.Set
type CacheMockSetExpectationOrigins struct {
	origin     string
	originCtx  string
	originTag  string
	originKey  string
	originBody string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmSet *mCacheMockSet) Optional() *mCacheMockSet {
	mmSet.optional = true
	return mmSet
}

// Expect sets up expected params for Cache.Set
func (mmSet *mCacheMockSet) Expect(ctx context.Context, tag string, key string, body []byte) *mCacheMockSet {
	if mmSet.mock.funcSet != nil {
		mmSet.mock.t.Fatalf("CacheMock.Set mock is already set by Set")
	}

	if mmSet.defaultExpectation == nil {
		mmSet.defaultExpectation = &CacheMockSetExpectation{}
	}

	if mmSet.defaultExpectation.paramPtrs != nil {
		mmSet.mock.t.Fatalf("CacheMock.Set mock is already set by ExpectParams functions")
	}

	mmSet.defaultExpectation.params = &CacheMockSetParams{ctx, tag, key, body}
	mmSet.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmSet.expectations {
		if minimock.Equal(e.params, mmSet.defaultExpectation.params) {
			mmSet.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmSet.defaultExpectation.params)
		}
	}

	return mmSet
}

// ExpectCtxParam1 sets up expected param ctx for Cache.Set
func (mmSet *mCacheMockSet) ExpectCtxParam1(ctx context.Context) *mCacheMockSet {
	if mmSet.mock.funcSet != nil {
		mmSet.mock.t.Fatalf("CacheMock.Set mock is already set by Set")
	}

	if mmSet.defaultExpectation == nil {
		mmSet.defaultExpectation = &CacheMockSetExpectation{}
	}

	if mmSet.defaultExpectation.params != nil {
		mmSet.mock.t.Fatalf("CacheMock.Set mock is already set by Expect")
	}

	if mmSet.defaultExpectation.paramPtrs == nil {
		mmSet.defaultExpectation.paramPtrs = &CacheMockSetParamPtrs{}
	}
	mmSet.defaultExpectation.paramPtrs.ctx = &ctx
	mmSet.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmSet
}

// ExpectTagParam2 sets up expected param tag for Cache.Set
func (mmSet *mCacheMockSet) ExpectTagParam2(tag string) *mCacheMockSet {
	if mmSet.mock.funcSet != nil {
		mmSet.mock.t.Fatalf("CacheMock.Set mock is already set by Set")
	}

	if mmSet.defaultExpectation == nil {
		mmSet.defaultExpectation = &CacheMockSetExpectation{}
	}

	if mmSet.defaultExpectation.params != nil {
		mmSet.mock.t.Fatalf("CacheMock.Set mock is already set by Expect")
	}

	if mmSet.defaultExpectation.paramPtrs == nil {
		mmSet.defaultExpectation.paramPtrs = &CacheMockSetParamPtrs{}
	}
	mmSet.defaultExpectation.paramPtrs.tag = &tag
	mmSet.defaultExpectation.expectationOrigins.originTag = minimock.CallerInfo(1)

	return mmSet
}

// ExpectKeyParam3 sets up expected param key for Cache.Set
func (mmSet *mCacheMockSet) ExpectKeyParam3(key string) *mCacheMockSet {
	if mmSet.mock.funcSet != nil {
		mmSet.mock.t.Fatalf("CacheMock.Set mock is already set by Set")
	}

	if mmSet.defaultExpectation == nil {
		mmSet.defaultExpectation = &CacheMockSetExpectation{}
	}

	if mmSet.defaultExpectation.params != nil {
		mmSet.mock.t.Fatalf("CacheMock.Set mock is already set by Expect")
	}

	if mmSet.defaultExpectation.paramPtrs == nil {
		mmSet.defaultExpectation.paramPtrs = &CacheMockSetParamPtrs{}
	}
	mmSet.defaultExpectation.paramPtrs.key = &key
	mmSet.defaultExpectation.expectationOrigins.originKey = minimock.CallerInfo(1)

	return mmSet
}

// ExpectBodyParam4 sets up expected param body for Cache.Set
func (mmSet *mCacheMockSet) ExpectBodyParam4(body []byte) *mCacheMockSet {
	if mmSet.mock.funcSet != nil {
		mmSet.mock.t.Fatalf("CacheMock.Set mock is already set by Set")
	}

	if mmSet.defaultExpectation == nil {
		mmSet.defaultExpectation = &CacheMockSetExpectation{}
	}

	if mmSet.defaultExpectation.params != nil {
		mmSet.mock.t.Fatalf("CacheMock.Set mock is already set by Expect")
	}

	if mmSet.defaultExpectation.paramPtrs == nil {
		mmSet.defaultExpectation.paramPtrs = &CacheMockSetParamPtrs{}
	}
	mmSet.defaultExpectation.paramPtrs.body = &body
	mmSet.defaultExpectation.expectationOrigins.originBody = minimock.CallerInfo(1)

	return mmSet
}

// Inspect accepts an inspector function that has same arguments as the Cache.Set
func (mmSet *mCacheMockSet) Inspect(f func(ctx context.Context, tag string, key string, body []byte)) *mCacheMockSet {
	if mmSet.mock.inspectFuncSet != nil {
		mmSet.mock.t.Fatalf("Inspect function is already set for CacheMock.Set")
	}

	mmSet.mock.inspectFuncSet = f

	return mmSet
}

// Return sets up results that will be returned by Cache.Set
func (mmSet *mCacheMockSet) Return(err error) *CacheMock {
	if mmSet.mock.funcSet != nil {
		mmSet.mock.t.Fatalf("CacheMock.Set mock is already set by Set")
	}

	if mmSet.defaultExpectation == nil {
		mmSet.defaultExpectation = &CacheMockSetExpectation{mock: mmSet.mock}
	}
	mmSet.defaultExpectation.results = &CacheMockSetResults{err}
	mmSet.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmSet.mock
}

// Set uses given function f to mock the Cache.Set method
func (mmSet *mCacheMockSet) Set(f func(ctx context.Context, tag string, key string, body []byte) (err error)) *CacheMock {
	if mmSet.defaultExpectation != nil {
		mmSet.mock.t.Fatalf("Default expectation is already set for the Cache.Set method")
	}

	if len(mmSet.expectations) > 0 {
		mmSet.mock.t.Fatalf("Some expectations are already set for the Cache.Set method")
	}

	mmSet.mock.funcSet = f
	mmSet.mock.funcSetOrigin = minimock.CallerInfo(1)
	return mmSet.mock
}

// When sets expectation for the Cache.Set which will trigger the result defined by the following
// Then helper
func (mmSet *mCacheMockSet) When(ctx context.Context, tag string, key string, body []byte) *CacheMockSetExpectation {
	if mmSet.mock.funcSet != nil {
		mmSet.mock.t.Fatalf("CacheMock.Set mock is already set by Set")
	}

	expectation := &CacheMockSetExpectation{
		mock:               mmSet.mock,
		params:             &CacheMockSetParams{ctx, tag, key, body},
		expectationOrigins: CacheMockSetExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmSet.expectations = append(mmSet.expectations, expectation)
	return expectation
}

// Then sets up Cache.Set return parameters for the expectation previously defined by the When method
func (e *CacheMockSetExpectation) Then(err error) *CacheMock {
	e.results = &CacheMockSetResults{err}
	return e.mock
}

// Times sets number of times Cache.Set should be invoked
func (mmSet *mCacheMockSet) Times(n uint64) *mCacheMockSet {
	if n == 0 {
		mmSet.mock.t.Fatalf("Times of CacheMock.Set mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmSet.expectedInvocations, n)
	mmSet.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmSet
}

func (mmSet *mCacheMockSet) invocationsDone() bool {
	if len(mmSet.expectations) == 0 && mmSet.defaultExpectation == nil && mmSet.mock.funcSet == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmSet.mock.afterSetCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmSet.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Set implements mm_resource.Cache
func (mmSet *CacheMock) Set(ctx context.Context, tag string, key string, body []byte) (err error) {
	mm_atomic.AddUint64(&mmSet.beforeSetCounter, 1)
	defer mm_atomic.AddUint64(&mmSet.afterSetCounter, 1)

	mmSet.t.Helper()

	if mmSet.inspectFuncSet != nil {
		mmSet.inspectFuncSet(ctx, tag, key, body)
	}

	mm_params := CacheMockSetParams{ctx, tag, key, body}

	// Record call args
	mmSet.SetMock.mutex.Lock()
	mmSet.SetMock.callArgs = append(mmSet.SetMock.callArgs, &mm_params)
	mmSet.SetMock.mutex.Unlock()

	for _, e := range mmSet.SetMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmSet.SetMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmSet.SetMock.defaultExpectation.Counter, 1)
		mm_want := mmSet.SetMock.defaultExpectation.params
		mm_want_ptrs := mmSet.SetMock.defaultExpectation.paramPtrs

		mm_got := CacheMockSetParams{ctx, tag, key, body}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmSet.t.Errorf("CacheMock.Set got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSet.SetMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.tag != nil && !minimock.Equal(*mm_want_ptrs.tag, mm_got.tag) {
				mmSet.t.Errorf("CacheMock.Set got unexpected parameter tag, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSet.SetMock.defaultExpectation.expectationOrigins.originTag, *mm_want_ptrs.tag, mm_got.tag, minimock.Diff(*mm_want_ptrs.tag, mm_got.tag))
			}

			if mm_want_ptrs.key != nil && !minimock.Equal(*mm_want_ptrs.key, mm_got.key) {
				mmSet.t.Errorf("CacheMock.Set got unexpected parameter key, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSet.SetMock.defaultExpectation.expectationOrigins.originKey, *mm_want_ptrs.key, mm_got.key, minimock.Diff(*mm_want_ptrs.key, mm_got.key))
			}

			if mm_want_ptrs.body != nil && !minimock.Equal(*mm_want_ptrs.body, mm_got.body) {
				mmSet.t.Errorf("CacheMock.Set got unexpected parameter body, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSet.SetMock.defaultExpectation.expectationOrigins.originBody, *mm_want_ptrs.body, mm_got.body, minimock.Diff(*mm_want_ptrs.body, mm_got.body))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmSet.t.Errorf("CacheMock.Set got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmSet.SetMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmSet.SetMock.defaultExpectation.results
		if mm_results == nil {
			mmSet.t.Fatal("No results are set for the CacheMock.Set")
		}
		return (*mm_results).err
	}
	if mmSet.funcSet != nil {
		return mmSet.funcSet(ctx, tag, key, body)
	}
	mmSet.t.Fatalf("Unexpected call to CacheMock.Set. %v %v %v %v", ctx, tag, key, body)
	return
}

// SetAfterCounter returns a count of finished CacheMock.Set invocations
func (mmSet *CacheMock) SetAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSet.afterSetCounter)
}

// SetBeforeCounter returns a count of CacheMock.Set invocations
func (mmSet *CacheMock) SetBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSet.beforeSetCounter)
}

// Calls returns a list of arguments used in each call to CacheMock.Set.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmSet *mCacheMockSet) Calls() []*CacheMockSetParams {
	mmSet.mutex.RLock()

	argCopy := make([]*CacheMockSetParams, len(mmSet.callArgs))
	copy(argCopy, mmSet.callArgs)

	mmSet.mutex.RUnlock()

	return argCopy
}

// MinimockSetDone returns true if the count of the Set invocations corresponds
// the number of defined expectations
func (m *CacheMock) MinimockSetDone() bool {
	if m.SetMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.SetMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.SetMock.invocationsDone()
}

// MinimockSetInspect logs each unmet expectation
func (m *CacheMock) MinimockSetInspect() {
	for _, e := range m.SetMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to CacheMock.Set at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterSetCounter := mm_atomic.LoadUint64(&m.afterSetCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.SetMock.defaultExpectation != nil && afterSetCounter < 1 {
		if m.SetMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to CacheMock.Set at\n%s", m.SetMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to CacheMock.Set at\n%s with params: %#v", m.SetMock.defaultExpectation.expectationOrigins.origin, *m.SetMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcSet != nil && afterSetCounter < 1 {
		m.t.Errorf("Expected call to CacheMock.Set at\n%s", m.funcSetOrigin)
	}

	if !m.SetMock.invocationsDone() && afterSetCounter > 0 {
		m.t.Errorf("Expected %d calls to CacheMock.Set at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.SetMock.expectedInvocations), m.SetMock.expectedInvocationsOrigin, afterSetCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *CacheMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockGetInspect()

			m.MinimockInvalidateInspect()

			m.MinimockSetInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *CacheMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *CacheMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockGetDone() &&
		m.MinimockInvalidateDone() &&
		m.MinimockSetDone()
}
