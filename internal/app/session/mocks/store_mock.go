// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/66gu1/filmoradmin/internal/app/session.Store -o store_mock.go -n StoreMock -p mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	mm_session "github.com/66gu1/filmoradmin/internal/app/session"
	"github.com/gojuno/minimock/v3"
)

// StoreMock implements mm_session.Store
type StoreMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcDelete          func(ctx context.Context, id string) (err error)
	funcDeleteOrigin    string
	inspectFuncDelete   func(ctx context.Context, id string)
	afterDeleteCounter  uint64
	beforeDeleteCounter uint64
	DeleteMock          mStoreMockDelete

	funcLoad          func(ctx context.Context, id string) (r1 mm_session.Record, err error)
	funcLoadOrigin    string
	inspectFuncLoad   func(ctx context.Context, id string)
	afterLoadCounter  uint64
	beforeLoadCounter uint64
	LoadMock          mStoreMockLoad

	funcSave          func(ctx context.Context, rec mm_session.Record) (err error)
	funcSaveOrigin    string
	inspectFuncSave   func(ctx context.Context, rec mm_session.Record)
	afterSaveCounter  uint64
	beforeSaveCounter uint64
	SaveMock          mStoreMockSave
}

// NewStoreMock returns a mock for mm_session.Store
func NewStoreMock(t minimock.Tester) *StoreMock {
	m := &StoreMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.DeleteMock = mStoreMockDelete{mock: m}
	m.DeleteMock.callArgs = []*StoreMockDeleteParams{}

	m.LoadMock = mStoreMockLoad{mock: m}
	m.LoadMock.callArgs = []*StoreMockLoadParams{}

	m.SaveMock = mStoreMockSave{mock: m}
	m.SaveMock.callArgs = []*StoreMockSaveParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mStoreMockDelete struct {
	optional           bool
	mock               *StoreMock
	defaultExpectation *StoreMockDeleteExpectation
	expectations       []*StoreMockDeleteExpectation

	callArgs []*StoreMockDeleteParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// StoreMockDeleteExpectation specifies expectation struct of the Store.Delete
type StoreMockDeleteExpectation struct {
	mock               *StoreMock
	params             *StoreMockDeleteParams
	paramPtrs          *StoreMockDeleteParamPtrs
	expectationOrigins StoreMockDeleteExpectationOrigins
	results            *StoreMockDeleteResults
	returnOrigin       string
	Counter            uint64
}

// StoreMockDeleteParams contains parameters of the Store.Delete
type StoreMockDeleteParams struct {
	ctx context.Context
	id  string
}

// StoreMockDeleteParamPtrs contains pointers to parameters of the Store.Delete
type StoreMockDeleteParamPtrs struct {
	ctx *context.Context
	id  *string
}

// StoreMockDeleteResults contains results of the Store.Delete
type StoreMockDeleteResults struct {
	err error
}

// StoreMockDeleteOrigins contains origins of expectations of the Store.Delete
type StoreMockDeleteExpectationOrigins struct {
	origin    string
	originCtx string
	originId  string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmDelete *mStoreMockDelete) Optional() *mStoreMockDelete {
	mmDelete.optional = true
	return mmDelete
}

// Expect sets up expected params for Store.Delete
func (mmDelete *mStoreMockDelete) Expect(ctx context.Context, id string) *mStoreMockDelete {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("StoreMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &StoreMockDeleteExpectation{}
	}

	if mmDelete.defaultExpectation.paramPtrs != nil {
		mmDelete.mock.t.Fatalf("StoreMock.Delete mock is already set by ExpectParams functions")
	}

	mmDelete.defaultExpectation.params = &StoreMockDeleteParams{ctx, id}
	mmDelete.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmDelete.expectations {
		if minimock.Equal(e.params, mmDelete.defaultExpectation.params) {
			mmDelete.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmDelete.defaultExpectation.params)
		}
	}

	return mmDelete
}

// ExpectCtxParam1 sets up expected param ctx for Store.Delete
func (mmDelete *mStoreMockDelete) ExpectCtxParam1(ctx context.Context) *mStoreMockDelete {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("StoreMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &StoreMockDeleteExpectation{}
	}

	if mmDelete.defaultExpectation.params != nil {
		mmDelete.mock.t.Fatalf("StoreMock.Delete mock is already set by Expect")
	}

	if mmDelete.defaultExpectation.paramPtrs == nil {
		mmDelete.defaultExpectation.paramPtrs = &StoreMockDeleteParamPtrs{}
	}
	mmDelete.defaultExpectation.paramPtrs.ctx = &ctx
	mmDelete.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmDelete
}

// ExpectIdParam2 sets up expected param id for Store.Delete
func (mmDelete *mStoreMockDelete) ExpectIdParam2(id string) *mStoreMockDelete {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("StoreMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &StoreMockDeleteExpectation{}
	}

	if mmDelete.defaultExpectation.params != nil {
		mmDelete.mock.t.Fatalf("StoreMock.Delete mock is already set by Expect")
	}

	if mmDelete.defaultExpectation.paramPtrs == nil {
		mmDelete.defaultExpectation.paramPtrs = &StoreMockDeleteParamPtrs{}
	}
	mmDelete.defaultExpectation.paramPtrs.id = &id
	mmDelete.defaultExpectation.expectationOrigins.originId = minimock.CallerInfo(1)

	return mmDelete
}

// Inspect accepts an inspector function that has same arguments as the Store.Delete
func (mmDelete *mStoreMockDelete) Inspect(f func(ctx context.Context, id string)) *mStoreMockDelete {
	if mmDelete.mock.inspectFuncDelete != nil {
		mmDelete.mock.t.Fatalf("Inspect function is already set for StoreMock.Delete")
	}

	mmDelete.mock.inspectFuncDelete = f

	return mmDelete
}

// Return sets up results that will be returned by Store.Delete
func (mmDelete *mStoreMockDelete) Return(err error) *StoreMock {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("StoreMock.Delete mock is already set by Set")
	}

	if mmDelete.defaultExpectation == nil {
		mmDelete.defaultExpectation = &StoreMockDeleteExpectation{mock: mmDelete.mock}
	}
	mmDelete.defaultExpectation.results = &StoreMockDeleteResults{err}
	mmDelete.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmDelete.mock
}

// Set uses given function f to mock the Store.Delete method
func (mmDelete *mStoreMockDelete) Set(f func(ctx context.Context, id string) (err error)) *StoreMock {
	if mmDelete.defaultExpectation != nil {
		mmDelete.mock.t.Fatalf("Default expectation is already set for the Store.Delete method")
	}

	if len(mmDelete.expectations) > 0 {
		mmDelete.mock.t.Fatalf("Some expectations are already set for the Store.Delete method")
	}

	mmDelete.mock.funcDelete = f
	mmDelete.mock.funcDeleteOrigin = minimock.CallerInfo(1)
	return mmDelete.mock
}

// When sets expectation for the Store.Delete which will trigger the result defined by the following
// Then helper
func (mmDelete *mStoreMockDelete) When(ctx context.Context, id string) *StoreMockDeleteExpectation {
	if mmDelete.mock.funcDelete != nil {
		mmDelete.mock.t.Fatalf("StoreMock.Delete mock is already set by Set")
	}

	expectation := &StoreMockDeleteExpectation{
		mock:               mmDelete.mock,
		params:             &StoreMockDeleteParams{ctx, id},
		expectationOrigins: StoreMockDeleteExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmDelete.expectations = append(mmDelete.expectations, expectation)
	return expectation
}

// Then sets up Store.Delete return parameters for the expectation previously defined by the When method
func (e *StoreMockDeleteExpectation) Then(err error) *StoreMock {
	e.results = &StoreMockDeleteResults{err}
	return e.mock
}

// Times sets number of times Store.Delete should be invoked
func (mmDelete *mStoreMockDelete) Times(n uint64) *mStoreMockDelete {
	if n == 0 {
		mmDelete.mock.t.Fatalf("Times of StoreMock.Delete mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmDelete.expectedInvocations, n)
	mmDelete.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmDelete
}

func (mmDelete *mStoreMockDelete) invocationsDone() bool {
	if len(mmDelete.expectations) == 0 && mmDelete.defaultExpectation == nil && mmDelete.mock.funcDelete == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmDelete.mock.afterDeleteCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmDelete.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Delete implements mm_session.Store
func (mmDelete *StoreMock) Delete(ctx context.Context, id string) (err error) {
	mm_atomic.AddUint64(&mmDelete.beforeDeleteCounter, 1)
	defer mm_atomic.AddUint64(&mmDelete.afterDeleteCounter, 1)

	mmDelete.t.Helper()

	if mmDelete.inspectFuncDelete != nil {
		mmDelete.inspectFuncDelete(ctx, id)
	}

	mm_params := StoreMockDeleteParams{ctx, id}

	// Record call args
	mmDelete.DeleteMock.mutex.Lock()
	mmDelete.DeleteMock.callArgs = append(mmDelete.DeleteMock.callArgs, &mm_params)
	mmDelete.DeleteMock.mutex.Unlock()

	for _, e := range mmDelete.DeleteMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmDelete.DeleteMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmDelete.DeleteMock.defaultExpectation.Counter, 1)
		mm_want := mmDelete.DeleteMock.defaultExpectation.params
		mm_want_ptrs := mmDelete.DeleteMock.defaultExpectation.paramPtrs

		mm_got := StoreMockDeleteParams{ctx, id}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmDelete.t.Errorf("StoreMock.Delete got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDelete.DeleteMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.id != nil && !minimock.Equal(*mm_want_ptrs.id, mm_got.id) {
				mmDelete.t.Errorf("StoreMock.Delete got unexpected parameter id, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmDelete.DeleteMock.defaultExpectation.expectationOrigins.originId, *mm_want_ptrs.id, mm_got.id, minimock.Diff(*mm_want_ptrs.id, mm_got.id))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmDelete.t.Errorf("StoreMock.Delete got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmDelete.DeleteMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmDelete.DeleteMock.defaultExpectation.results
		if mm_results == nil {
			mmDelete.t.Fatal("No results are set for the StoreMock.Delete")
		}
		return (*mm_results).err
	}
	if mmDelete.funcDelete != nil {
		return mmDelete.funcDelete(ctx, id)
	}
	mmDelete.t.Fatalf("Unexpected call to StoreMock.Delete. %v %v", ctx, id)
	return
}

// DeleteAfterCounter returns a count of finished StoreMock.Delete invocations
func (mmDelete *StoreMock) DeleteAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDelete.afterDeleteCounter)
}

// DeleteBeforeCounter returns a count of StoreMock.Delete invocations
func (mmDelete *StoreMock) DeleteBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDelete.beforeDeleteCounter)
}

// Calls returns a list of arguments used in each call to StoreMock.Delete.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmDelete *mStoreMockDelete) Calls() []*StoreMockDeleteParams {
	mmDelete.mutex.RLock()

	argCopy := make([]*StoreMockDeleteParams, len(mmDelete.callArgs))
	copy(argCopy, mmDelete.callArgs)

	mmDelete.mutex.RUnlock()

	return argCopy
}

// MinimockDeleteDone returns true if the count of the Delete invocations corresponds
// the number of defined expectations
func (m *StoreMock) MinimockDeleteDone() bool {
	if m.DeleteMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.DeleteMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.DeleteMock.invocationsDone()
}

// MinimockDeleteInspect logs each unmet expectation
func (m *StoreMock) MinimockDeleteInspect() {
	for _, e := range m.DeleteMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to StoreMock.Delete at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterDeleteCounter := mm_atomic.LoadUint64(&m.afterDeleteCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.DeleteMock.defaultExpectation != nil && afterDeleteCounter < 1 {
		if m.DeleteMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to StoreMock.Delete at\n%s", m.DeleteMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to StoreMock.Delete at\n%s with params: %#v", m.DeleteMock.defaultExpectation.expectationOrigins.origin, *m.DeleteMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcDelete != nil && afterDeleteCounter < 1 {
		m.t.Errorf("Expected call to StoreMock.Delete at\n%s", m.funcDeleteOrigin)
	}

	if !m.DeleteMock.invocationsDone() && afterDeleteCounter > 0 {
		m.t.Errorf("Expected %d calls to StoreMock.Delete at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.DeleteMock.expectedInvocations), m.DeleteMock.expectedInvocationsOrigin, afterDeleteCounter)
	}
}

type mStoreMockLoad struct {
	optional           bool
	mock               *StoreMock
	defaultExpectation *StoreMockLoadExpectation
	expectations       []*StoreMockLoadExpectation

	callArgs []*StoreMockLoadParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// StoreMockLoadExpectation specifies expectation struct of the Store.Load
type StoreMockLoadExpectation struct {
	mock               *StoreMock
	params             *StoreMockLoadParams
	paramPtrs          *StoreMockLoadParamPtrs
	expectationOrigins StoreMockLoadExpectationOrigins
	results            *StoreMockLoadResults
	returnOrigin       string
	Counter            uint64
}

// StoreMockLoadParams contains parameters of the Store.Load
type StoreMockLoadParams struct {
	ctx context.Context
	id  string
}

// StoreMockLoadParamPtrs contains pointers to parameters of the Store.Load
type StoreMockLoadParamPtrs struct {
	ctx *context.Context
	id  *string
}

// StoreMockLoadResults contains results of the Store.Load
type StoreMockLoadResults struct {
	r1  mm_session.Record
	err error
}

// StoreMockLoadOrigins contains origins of expectations of the Store.Load
type StoreMockLoadExpectationOrigins struct {
	origin    string
	originCtx string
	originId  string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmLoad *mStoreMockLoad) Optional() *mStoreMockLoad {
	mmLoad.optional = true
	return mmLoad
}

// Expect sets up expected params for Store.Load
func (mmLoad *mStoreMockLoad) Expect(ctx context.Context, id string) *mStoreMockLoad {
	if mmLoad.mock.funcLoad != nil {
		mmLoad.mock.t.Fatalf("StoreMock.Load mock is already set by Set")
	}

	if mmLoad.defaultExpectation == nil {
		mmLoad.defaultExpectation = &StoreMockLoadExpectation{}
	}

	if mmLoad.defaultExpectation.paramPtrs != nil {
		mmLoad.mock.t.Fatalf("StoreMock.Load mock is already set by ExpectParams functions")
	}

	mmLoad.defaultExpectation.params = &StoreMockLoadParams{ctx, id}
	mmLoad.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmLoad.expectations {
		if minimock.Equal(e.params, mmLoad.defaultExpectation.params) {
			mmLoad.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmLoad.defaultExpectation.params)
		}
	}

	return mmLoad
}

// ExpectCtxParam1 sets up expected param ctx for Store.Load
func (mmLoad *mStoreMockLoad) ExpectCtxParam1(ctx context.Context) *mStoreMockLoad {
	if mmLoad.mock.funcLoad != nil {
		mmLoad.mock.t.Fatalf("StoreMock.Load mock is already set by Set")
	}

	if mmLoad.defaultExpectation == nil {
		mmLoad.defaultExpectation = &StoreMockLoadExpectation{}
	}

	if mmLoad.defaultExpectation.params != nil {
		mmLoad.mock.t.Fatalf("StoreMock.Load mock is already set by Expect")
	}

	if mmLoad.defaultExpectation.paramPtrs == nil {
		mmLoad.defaultExpectation.paramPtrs = &StoreMockLoadParamPtrs{}
	}
	mmLoad.defaultExpectation.paramPtrs.ctx = &ctx
	mmLoad.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmLoad
}

// ExpectIdParam2 sets up expected param id for Store.Load
func (mmLoad *mStoreMockLoad) ExpectIdParam2(id string) *mStoreMockLoad {
	if mmLoad.mock.funcLoad != nil {
		mmLoad.mock.t.Fatalf("StoreMock.Load mock is already set by Set")
	}

	if mmLoad.defaultExpectation == nil {
		mmLoad.defaultExpectation = &StoreMockLoadExpectation{}
	}

	if mmLoad.defaultExpectation.params != nil {
		mmLoad.mock.t.Fatalf("StoreMock.Load mock is already set by Expect")
	}

	if mmLoad.defaultExpectation.paramPtrs == nil {
		mmLoad.defaultExpectation.paramPtrs = &StoreMockLoadParamPtrs{}
	}
	mmLoad.defaultExpectation.paramPtrs.id = &id
	mmLoad.defaultExpectation.expectationOrigins.originId = minimock.CallerInfo(1)

	return mmLoad
}

// Inspect accepts an inspector function that has same arguments as the Store.Load
func (mmLoad *mStoreMockLoad) Inspect(f func(ctx context.Context, id string)) *mStoreMockLoad {
	if mmLoad.mock.inspectFuncLoad != nil {
		mmLoad.mock.t.Fatalf("Inspect function is already set for StoreMock.Load")
	}

	mmLoad.mock.inspectFuncLoad = f

	return mmLoad
}

// Return sets up results that will be returned by Store.Load
func (mmLoad *mStoreMockLoad) Return(r1 mm_session.Record, err error) *StoreMock {
	if mmLoad.mock.funcLoad != nil {
		mmLoad.mock.t.Fatalf("StoreMock.Load mock is already set by Set")
	}

	if mmLoad.defaultExpectation == nil {
		mmLoad.defaultExpectation = &StoreMockLoadExpectation{mock: mmLoad.mock}
	}
	mmLoad.defaultExpectation.results = &StoreMockLoadResults{r1, err}
	mmLoad.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmLoad.mock
}

// Set uses given function f to mock the Store.Load method
func (mmLoad *mStoreMockLoad) Set(f func(ctx context.Context, id string) (r1 mm_session.Record, err error)) *StoreMock {
	if mmLoad.defaultExpectation != nil {
		mmLoad.mock.t.Fatalf("Default expectation is already set for the Store.Load method")
	}

	if len(mmLoad.expectations) > 0 {
		mmLoad.mock.t.Fatalf("Some expectations are already set for the Store.Load method")
	}

	mmLoad.mock.funcLoad = f
	mmLoad.mock.funcLoadOrigin = minimock.CallerInfo(1)
	return mmLoad.mock
}

// When sets expectation for the Store.Load which will trigger the result defined by the following
// Then helper
func (mmLoad *mStoreMockLoad) When(ctx context.Context, id string) *StoreMockLoadExpectation {
	if mmLoad.mock.funcLoad != nil {
		mmLoad.mock.t.Fatalf("StoreMock.Load mock is already set by Set")
	}

	expectation := &StoreMockLoadExpectation{
		mock:               mmLoad.mock,
		params:             &StoreMockLoadParams{ctx, id},
		expectationOrigins: StoreMockLoadExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmLoad.expectations = append(mmLoad.expectations, expectation)
	return expectation
}

// Then sets up Store.Load return parameters for the expectation previously defined by the When method
func (e *StoreMockLoadExpectation) Then(r1 mm_session.Record, err error) *StoreMock {
	e.results = &StoreMockLoadResults{r1, err}
	return e.mock
}

// Times sets number of times Store.Load should be invoked
func (mmLoad *mStoreMockLoad) Times(n uint64) *mStoreMockLoad {
	if n == 0 {
		mmLoad.mock.t.Fatalf("Times of StoreMock.Load mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmLoad.expectedInvocations, n)
	mmLoad.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmLoad
}

func (mmLoad *mStoreMockLoad) invocationsDone() bool {
	if len(mmLoad.expectations) == 0 && mmLoad.defaultExpectation == nil && mmLoad.mock.funcLoad == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmLoad.mock.afterLoadCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmLoad.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Load implements mm_session.Store
func (mmLoad *StoreMock) Load(ctx context.Context, id string) (r1 mm_session.Record, err error) {
	mm_atomic.AddUint64(&mmLoad.beforeLoadCounter, 1)
	defer mm_atomic.AddUint64(&mmLoad.afterLoadCounter, 1)

	mmLoad.t.Helper()

	if mmLoad.inspectFuncLoad != nil {
		mmLoad.inspectFuncLoad(ctx, id)
	}

	mm_params := StoreMockLoadParams{ctx, id}

	// Record call args
	mmLoad.LoadMock.mutex.Lock()
	mmLoad.LoadMock.callArgs = append(mmLoad.LoadMock.callArgs, &mm_params)
	mmLoad.LoadMock.mutex.Unlock()

	for _, e := range mmLoad.LoadMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.r1, e.results.err
		}
	}

	if mmLoad.LoadMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmLoad.LoadMock.defaultExpectation.Counter, 1)
		mm_want := mmLoad.LoadMock.defaultExpectation.params
		mm_want_ptrs := mmLoad.LoadMock.defaultExpectation.paramPtrs

		mm_got := StoreMockLoadParams{ctx, id}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmLoad.t.Errorf("StoreMock.Load got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmLoad.LoadMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.id != nil && !minimock.Equal(*mm_want_ptrs.id, mm_got.id) {
				mmLoad.t.Errorf("StoreMock.Load got unexpected parameter id, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmLoad.LoadMock.defaultExpectation.expectationOrigins.originId, *mm_want_ptrs.id, mm_got.id, minimock.Diff(*mm_want_ptrs.id, mm_got.id))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmLoad.t.Errorf("StoreMock.Load got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmLoad.LoadMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmLoad.LoadMock.defaultExpectation.results
		if mm_results == nil {
			mmLoad.t.Fatal("No results are set for the StoreMock.Load")
		}
		return (*mm_results).r1, (*mm_results).err
	}
	if mmLoad.funcLoad != nil {
		return mmLoad.funcLoad(ctx, id)
	}
	mmLoad.t.Fatalf("Unexpected call to StoreMock.Load. %v %v", ctx, id)
	return
}

// LoadAfterCounter returns a count of finished StoreMock.Load invocations
func (mmLoad *StoreMock) LoadAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLoad.afterLoadCounter)
}

// LoadBeforeCounter returns a count of StoreMock.Load invocations
func (mmLoad *StoreMock) LoadBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLoad.beforeLoadCounter)
}

// Calls returns a list of arguments used in each call to StoreMock.Load.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmLoad *mStoreMockLoad) Calls() []*StoreMockLoadParams {
	mmLoad.mutex.RLock()

	argCopy := make([]*StoreMockLoadParams, len(mmLoad.callArgs))
	copy(argCopy, mmLoad.callArgs)

	mmLoad.mutex.RUnlock()

	return argCopy
}

// MinimockLoadDone returns true if the count of the Load invocations corresponds
// the number of defined expectations
func (m *StoreMock) MinimockLoadDone() bool {
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
func (m *StoreMock) MinimockLoadInspect() {
	for _, e := range m.LoadMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to StoreMock.Load at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterLoadCounter := mm_atomic.LoadUint64(&m.afterLoadCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.LoadMock.defaultExpectation != nil && afterLoadCounter < 1 {
		if m.LoadMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to StoreMock.Load at\n%s", m.LoadMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to StoreMock.Load at\n%s with params: %#v", m.LoadMock.defaultExpectation.expectationOrigins.origin, *m.LoadMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcLoad != nil && afterLoadCounter < 1 {
		m.t.Errorf("Expected call to StoreMock.Load at\n%s", m.funcLoadOrigin)
	}

	if !m.LoadMock.invocationsDone() && afterLoadCounter > 0 {
		m.t.Errorf("Expected %d calls to StoreMock.Load at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.LoadMock.expectedInvocations), m.LoadMock.expectedInvocationsOrigin, afterLoadCounter)
	}
}

type mStoreMockSave struct {
	optional           bool
	mock               *StoreMock
	defaultExpectation *StoreMockSaveExpectation
	expectations       []*StoreMockSaveExpectation

	callArgs []*StoreMockSaveParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// StoreMockSaveExpectation specifies expectation struct of the Store.Save
type StoreMockSaveExpectation struct {
	mock               *StoreMock
	params             *StoreMockSaveParams
	paramPtrs          *StoreMockSaveParamPtrs
	expectationOrigins StoreMockSaveExpectationOrigins
	results            *StoreMockSaveResults
	returnOrigin       string
	Counter            uint64
}

// StoreMockSaveParams contains parameters of the Store.Save
type StoreMockSaveParams struct {
	ctx context.Context
	rec mm_session.Record
}

// StoreMockSaveParamPtrs contains pointers to parameters of the Store.Save
type StoreMockSaveParamPtrs struct {
	ctx *context.Context
	rec *mm_session.Record
}

// StoreMockSaveResults contains results of the Store.Save
type StoreMockSaveResults struct {
	err error
}

// StoreMockSaveOrigins contains origins of expectations of the Store.Save
type StoreMockSaveExpectationOrigins struct {
	origin    string
	originCtx string
	originRec string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmSave *mStoreMockSave) Optional() *mStoreMockSave {
	mmSave.optional = true
	return mmSave
}

// Expect sets up expected params for Store.Save
func (mmSave *mStoreMockSave) Expect(ctx context.Context, rec mm_session.Record) *mStoreMockSave {
	if mmSave.mock.funcSave != nil {
		mmSave.mock.t.Fatalf("StoreMock.Save mock is already set by Set")
	}

	if mmSave.defaultExpectation == nil {
		mmSave.defaultExpectation = &StoreMockSaveExpectation{}
	}

	if mmSave.defaultExpectation.paramPtrs != nil {
		mmSave.mock.t.Fatalf("StoreMock.Save mock is already set by ExpectParams functions")
	}

	mmSave.defaultExpectation.params = &StoreMockSaveParams{ctx, rec}
	mmSave.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmSave.expectations {
		if minimock.Equal(e.params, mmSave.defaultExpectation.params) {
			mmSave.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmSave.defaultExpectation.params)
		}
	}

	return mmSave
}

// ExpectCtxParam1 sets up expected param ctx for Store.Save
func (mmSave *mStoreMockSave) ExpectCtxParam1(ctx context.Context) *mStoreMockSave {
	if mmSave.mock.funcSave != nil {
		mmSave.mock.t.Fatalf("StoreMock.Save mock is already set by Set")
	}

	if mmSave.defaultExpectation == nil {
		mmSave.defaultExpectation = &StoreMockSaveExpectation{}
	}

	if mmSave.defaultExpectation.params != nil {
		mmSave.mock.t.Fatalf("StoreMock.Save mock is already set by Expect")
	}

	if mmSave.defaultExpectation.paramPtrs == nil {
		mmSave.defaultExpectation.paramPtrs = &StoreMockSaveParamPtrs{}
	}
	mmSave.defaultExpectation.paramPtrs.ctx = &ctx
	mmSave.defaultExpectation.expectationOrigins.originCtx = minimock.CallerInfo(1)

	return mmSave
}

// ExpectRecParam2 sets up expected param rec for Store.Save
func (mmSave *mStoreMockSave) ExpectRecParam2(rec mm_session.Record) *mStoreMockSave {
	if mmSave.mock.funcSave != nil {
		mmSave.mock.t.Fatalf("StoreMock.Save mock is already set by Set")
	}

	if mmSave.defaultExpectation == nil {
		mmSave.defaultExpectation = &StoreMockSaveExpectation{}
	}

	if mmSave.defaultExpectation.params != nil {
		mmSave.mock.t.Fatalf("StoreMock.Save mock is already set by Expect")
	}

	if mmSave.defaultExpectation.paramPtrs == nil {
		mmSave.defaultExpectation.paramPtrs = &StoreMockSaveParamPtrs{}
	}
	mmSave.defaultExpectation.paramPtrs.rec = &rec
	mmSave.defaultExpectation.expectationOrigins.originRec = minimock.CallerInfo(1)

	return mmSave
}

// Inspect accepts an inspector function that has same arguments as the Store.Save
func (mmSave *mStoreMockSave) Inspect(f func(ctx context.Context, rec mm_session.Record)) *mStoreMockSave {
	if mmSave.mock.inspectFuncSave != nil {
		mmSave.mock.t.Fatalf("Inspect function is already set for StoreMock.Save")
	}

	mmSave.mock.inspectFuncSave = f

	return mmSave
}

// Return sets up results that will be returned by Store.Save
func (mmSave *mStoreMockSave) Return(err error) *StoreMock {
	if mmSave.mock.funcSave != nil {
		mmSave.mock.t.Fatalf("StoreMock.Save mock is already set by Set")
	}

	if mmSave.defaultExpectation == nil {
		mmSave.defaultExpectation = &StoreMockSaveExpectation{mock: mmSave.mock}
	}
	mmSave.defaultExpectation.results = &StoreMockSaveResults{err}
	mmSave.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmSave.mock
}

// Set uses given function f to mock the Store.Save method
func (mmSave *mStoreMockSave) Set(f func(ctx context.Context, rec mm_session.Record) (err error)) *StoreMock {
	if mmSave.defaultExpectation != nil {
		mmSave.mock.t.Fatalf("Default expectation is already set for the Store.Save method")
	}

	if len(mmSave.expectations) > 0 {
		mmSave.mock.t.Fatalf("Some expectations are already set for the Store.Save method")
	}

	mmSave.mock.funcSave = f
	mmSave.mock.funcSaveOrigin = minimock.CallerInfo(1)
	return mmSave.mock
}

// When sets expectation for the Store.Save which will trigger the result defined by the following
// Then helper
func (mmSave *mStoreMockSave) When(ctx context.Context, rec mm_session.Record) *StoreMockSaveExpectation {
	if mmSave.mock.funcSave != nil {
		mmSave.mock.t.Fatalf("StoreMock.Save mock is already set by Set")
	}

	expectation := &StoreMockSaveExpectation{
		mock:               mmSave.mock,
		params:             &StoreMockSaveParams{ctx, rec},
		expectationOrigins: StoreMockSaveExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmSave.expectations = append(mmSave.expectations, expectation)
	return expectation
}

// Then sets up Store.Save return parameters for the expectation previously defined by the When method
func (e *StoreMockSaveExpectation) Then(err error) *StoreMock {
	e.results = &StoreMockSaveResults{err}
	return e.mock
}

// Times sets number of times Store.Save should be invoked
func (mmSave *mStoreMockSave) Times(n uint64) *mStoreMockSave {
	if n == 0 {
		mmSave.mock.t.Fatalf("Times of StoreMock.Save mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmSave.expectedInvocations, n)
	mmSave.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmSave
}

func (mmSave *mStoreMockSave) invocationsDone() bool {
	if len(mmSave.expectations) == 0 && mmSave.defaultExpectation == nil && mmSave.mock.funcSave == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmSave.mock.afterSaveCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmSave.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Save implements mm_session.Store
func (mmSave *StoreMock) Save(ctx context.Context, rec mm_session.Record) (err error) {
	mm_atomic.AddUint64(&mmSave.beforeSaveCounter, 1)
	defer mm_atomic.AddUint64(&mmSave.afterSaveCounter, 1)

	mmSave.t.Helper()

	if mmSave.inspectFuncSave != nil {
		mmSave.inspectFuncSave(ctx, rec)
	}

	mm_params := StoreMockSaveParams{ctx, rec}

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

		mm_got := StoreMockSaveParams{ctx, rec}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.ctx != nil && !minimock.Equal(*mm_want_ptrs.ctx, mm_got.ctx) {
				mmSave.t.Errorf("StoreMock.Save got unexpected parameter ctx, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSave.SaveMock.defaultExpectation.expectationOrigins.originCtx, *mm_want_ptrs.ctx, mm_got.ctx, minimock.Diff(*mm_want_ptrs.ctx, mm_got.ctx))
			}

			if mm_want_ptrs.rec != nil && !minimock.Equal(*mm_want_ptrs.rec, mm_got.rec) {
				mmSave.t.Errorf("StoreMock.Save got unexpected parameter rec, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSave.SaveMock.defaultExpectation.expectationOrigins.originRec, *mm_want_ptrs.rec, mm_got.rec, minimock.Diff(*mm_want_ptrs.rec, mm_got.rec))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmSave.t.Errorf("StoreMock.Save got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmSave.SaveMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmSave.SaveMock.defaultExpectation.results
		if mm_results == nil {
			mmSave.t.Fatal("No results are set for the StoreMock.Save")
		}
		return (*mm_results).err
	}
	if mmSave.funcSave != nil {
		return mmSave.funcSave(ctx, rec)
	}
	mmSave.t.Fatalf("Unexpected call to StoreMock.Save. %v %v", ctx, rec)
	return
}

// SaveAfterCounter returns a count of finished StoreMock.Save invocations
func (mmSave *StoreMock) SaveAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSave.afterSaveCounter)
}

// SaveBeforeCounter returns a count of StoreMock.Save invocations
func (mmSave *StoreMock) SaveBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSave.beforeSaveCounter)
}

// Calls returns a list of arguments used in each call to StoreMock.Save.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmSave *mStoreMockSave) Calls() []*StoreMockSaveParams {
	mmSave.mutex.RLock()

	argCopy := make([]*StoreMockSaveParams, len(mmSave.callArgs))
	copy(argCopy, mmSave.callArgs)

	mmSave.mutex.RUnlock()

	return argCopy
}

// MinimockSaveDone returns true if the count of the Save invocations corresponds
// the number of defined expectations
func (m *StoreMock) MinimockSaveDone() bool {
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
func (m *StoreMock) MinimockSaveInspect() {
	for _, e := range m.SaveMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to StoreMock.Save at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterSaveCounter := mm_atomic.LoadUint64(&m.afterSaveCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.SaveMock.defaultExpectation != nil && afterSaveCounter < 1 {
		if m.SaveMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to StoreMock.Save at\n%s", m.SaveMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to StoreMock.Save at\n%s with params: %#v", m.SaveMock.defaultExpectation.expectationOrigins.origin, *m.SaveMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcSave != nil && afterSaveCounter < 1 {
		m.t.Errorf("Expected call to StoreMock.Save at\n%s", m.funcSaveOrigin)
	}

	if !m.SaveMock.invocationsDone() && afterSaveCounter > 0 {
		m.t.Errorf("Expected %d calls to StoreMock.Save at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.SaveMock.expectedInvocations), m.SaveMock.expectedInvocationsOrigin, afterSaveCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *StoreMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockDeleteInspect()

			m.MinimockLoadInspect()

			m.MinimockSaveInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *StoreMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *StoreMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockDeleteDone() &&
		m.MinimockLoadDone() &&
		m.MinimockSaveDone()
}
