// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/66gu1/filmoradmin/internal/app/auth/usecase.Observer -o observer_mock.go -n ObserverMock -p mocks

import (
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// ObserverMock implements mm_usecase.Observer
type ObserverMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcLogin          func(result string)
	funcLoginOrigin    string
	inspectFuncLogin   func(result string)
	afterLoginCounter  uint64
	beforeLoginCounter uint64
	LoginMock          mObserverMockLogin

	funcRefresh          func(result string)
	funcRefreshOrigin    string
	inspectFuncRefresh   func(result string)
	afterRefreshCounter  uint64
	beforeRefreshCounter uint64
	RefreshMock          mObserverMockRefresh
}

// NewObserverMock returns a mock for mm_usecase.Observer
func NewObserverMock(t minimock.Tester) *ObserverMock {
	m := &ObserverMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.LoginMock = mObserverMockLogin{mock: m}
	m.LoginMock.callArgs = []*ObserverMockLoginParams{}

	m.RefreshMock = mObserverMockRefresh{mock: m}
	m.RefreshMock.callArgs = []*ObserverMockRefreshParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mObserverMockLogin struct {
	optional           bool
	mock               *ObserverMock
	defaultExpectation *ObserverMockLoginExpectation
	expectations       []*ObserverMockLoginExpectation

	callArgs []*ObserverMockLoginParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ObserverMockLoginExpectation specifies expectation struct of the Observer.Login
type ObserverMockLoginExpectation struct {
	mock               *ObserverMock
	params             *ObserverMockLoginParams
	paramPtrs          *ObserverMockLoginParamPtrs
	expectationOrigins ObserverMockLoginExpectationOrigins

	returnOrigin string
	Counter      uint64
}

// ObserverMockLoginParams contains parameters of the Observer.Login
type ObserverMockLoginParams struct {
	result string
}

// ObserverMockLoginParamPtrs contains pointers to parameters of the Observer.Login
type ObserverMockLoginParamPtrs struct {
	result *string
}

// ObserverMockLoginOrigins contains origins of expectations of the Observer.Login
type ObserverMockLoginExpectationOrigins struct {
	origin       string
	originResult string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmLogin *mObserverMockLogin) Optional() *mObserverMockLogin {
	mmLogin.optional = true
	return mmLogin
}

// Expect sets up expected params for Observer.Login
func (mmLogin *mObserverMockLogin) Expect(result string) *mObserverMockLogin {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("ObserverMock.Login mock is already set by Set")
	}

	if mmLogin.defaultExpectation == nil {
		mmLogin.defaultExpectation = &ObserverMockLoginExpectation{}
	}

	if mmLogin.defaultExpectation.paramPtrs != nil {
		mmLogin.mock.t.Fatalf("ObserverMock.Login mock is already set by ExpectParams functions")
	}

	mmLogin.defaultExpectation.params = &ObserverMockLoginParams{result}
	mmLogin.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmLogin.expectations {
		if minimock.Equal(e.params, mmLogin.defaultExpectation.params) {
			mmLogin.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmLogin.defaultExpectation.params)
		}
	}

	return mmLogin
}

// ExpectResultParam1 sets up expected param result for Observer.Login
func (mmLogin *mObserverMockLogin) ExpectResultParam1(result string) *mObserverMockLogin {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("ObserverMock.Login mock is already set by Set")
	}

	if mmLogin.defaultExpectation == nil {
		mmLogin.defaultExpectation = &ObserverMockLoginExpectation{}
	}

	if mmLogin.defaultExpectation.params != nil {
		mmLogin.mock.t.Fatalf("ObserverMock.Login mock is already set by Expect")
	}

	if mmLogin.defaultExpectation.paramPtrs == nil {
		mmLogin.defaultExpectation.paramPtrs = &ObserverMockLoginParamPtrs{}
	}
	mmLogin.defaultExpectation.paramPtrs.result = &result
	mmLogin.defaultExpectation.expectationOrigins.originResult = minimock.CallerInfo(1)

	return mmLogin
}

// Inspect accepts an inspector function that has same arguments as the Observer.Login
func (mmLogin *mObserverMockLogin) Inspect(f func(result string)) *mObserverMockLogin {
	if mmLogin.mock.inspectFuncLogin != nil {
		mmLogin.mock.t.Fatalf("Inspect function is already set for ObserverMock.Login")
	}

	mmLogin.mock.inspectFuncLogin = f

	return mmLogin
}

// Return sets up results that will be returned by Observer.Login
func (mmLogin *mObserverMockLogin) Return() *ObserverMock {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("ObserverMock.Login mock is already set by Set")
	}

	if mmLogin.defaultExpectation == nil {
		mmLogin.defaultExpectation = &ObserverMockLoginExpectation{mock: mmLogin.mock}
	}

	mmLogin.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmLogin.mock
}

// Set uses given function f to mock the Observer.Login method
func (mmLogin *mObserverMockLogin) Set(f func(result string)) *ObserverMock {
	if mmLogin.defaultExpectation != nil {
		mmLogin.mock.t.Fatalf("Default expectation is already set for the Observer.Login method")
	}

	if len(mmLogin.expectations) > 0 {
		mmLogin.mock.t.Fatalf("Some expectations are already set for the Observer.Login method")
	}

	mmLogin.mock.funcLogin = f
	mmLogin.mock.funcLoginOrigin = minimock.CallerInfo(1)
	return mmLogin.mock
}

// When sets expectation for the Observer.Login which will trigger the result defined by the following
// Then helper
func (mmLogin *mObserverMockLogin) When(result string) *ObserverMockLoginExpectation {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("ObserverMock.Login mock is already set by Set")
	}

	expectation := &ObserverMockLoginExpectation{
		mock:               mmLogin.mock,
		params:             &ObserverMockLoginParams{result},
		expectationOrigins: ObserverMockLoginExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmLogin.expectations = append(mmLogin.expectations, expectation)
	return expectation
}

// Then sets up Observer.Login return parameters for the expectation previously defined by the When method

func (e *ObserverMockLoginExpectation) Then() *ObserverMock {
	return e.mock
}

// Times sets number of times Observer.Login should be invoked
func (mmLogin *mObserverMockLogin) Times(n uint64) *mObserverMockLogin {
	if n == 0 {
		mmLogin.mock.t.Fatalf("Times of ObserverMock.Login mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmLogin.expectedInvocations, n)
	mmLogin.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmLogin
}

func (mmLogin *mObserverMockLogin) invocationsDone() bool {
	if len(mmLogin.expectations) == 0 && mmLogin.defaultExpectation == nil && mmLogin.mock.funcLogin == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmLogin.mock.afterLoginCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmLogin.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Login implements mm_usecase.Observer
func (mmLogin *ObserverMock) Login(result string) {
	mm_atomic.AddUint64(&mmLogin.beforeLoginCounter, 1)
	defer mm_atomic.AddUint64(&mmLogin.afterLoginCounter, 1)

	mmLogin.t.Helper()

	if mmLogin.inspectFuncLogin != nil {
		mmLogin.inspectFuncLogin(result)
	}

	mm_params := ObserverMockLoginParams{result}

	// Record call args
	mmLogin.LoginMock.mutex.Lock()
	mmLogin.LoginMock.callArgs = append(mmLogin.LoginMock.callArgs, &mm_params)
	mmLogin.LoginMock.mutex.Unlock()

	for _, e := range mmLogin.LoginMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return
		}
	}

	if mmLogin.LoginMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmLogin.LoginMock.defaultExpectation.Counter, 1)
		mm_want := mmLogin.LoginMock.defaultExpectation.params
		mm_want_ptrs := mmLogin.LoginMock.defaultExpectation.paramPtrs

		mm_got := ObserverMockLoginParams{result}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.result != nil && !minimock.Equal(*mm_want_ptrs.result, mm_got.result) {
				mmLogin.t.Errorf("ObserverMock.Login got unexpected parameter result, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmLogin.LoginMock.defaultExpectation.expectationOrigins.originResult, *mm_want_ptrs.result, mm_got.result, minimock.Diff(*mm_want_ptrs.result, mm_got.result))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmLogin.t.Errorf("ObserverMock.Login got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmLogin.LoginMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		return

	}
	if mmLogin.funcLogin != nil {
		mmLogin.funcLogin(result)
		return
	}
	mmLogin.t.Fatalf("Unexpected call to ObserverMock.Login. %v", result)

}

// LoginAfterCounter returns a count of finished ObserverMock.Login invocations
func (mmLogin *ObserverMock) LoginAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLogin.afterLoginCounter)
}

// LoginBeforeCounter returns a count of ObserverMock.Login invocations
func (mmLogin *ObserverMock) LoginBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLogin.beforeLoginCounter)
}

// Calls returns a list of arguments used in each call to ObserverMock.Login.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmLogin *mObserverMockLogin) Calls() []*ObserverMockLoginParams {
	mmLogin.mutex.RLock()

	argCopy := make([]*ObserverMockLoginParams, len(mmLogin.callArgs))
	copy(argCopy, mmLogin.callArgs)

	mmLogin.mutex.RUnlock()

	return argCopy
}

// MinimockLoginDone returns true if the count of the Login invocations corresponds
// the number of defined expectations
func (m *ObserverMock) MinimockLoginDone() bool {
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
func (m *ObserverMock) MinimockLoginInspect() {
	for _, e := range m.LoginMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ObserverMock.Login at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterLoginCounter := mm_atomic.LoadUint64(&m.afterLoginCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.LoginMock.defaultExpectation != nil && afterLoginCounter < 1 {
		if m.LoginMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ObserverMock.Login at\n%s", m.LoginMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ObserverMock.Login at\n%s with params: %#v", m.LoginMock.defaultExpectation.expectationOrigins.origin, *m.LoginMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcLogin != nil && afterLoginCounter < 1 {
		m.t.Errorf("Expected call to ObserverMock.Login at\n%s", m.funcLoginOrigin)
	}

	if !m.LoginMock.invocationsDone() && afterLoginCounter > 0 {
		m.t.Errorf("Expected %d calls to ObserverMock.Login at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.LoginMock.expectedInvocations), m.LoginMock.expectedInvocationsOrigin, afterLoginCounter)
	}
}

type mObserverMockRefresh struct {
	optional           bool
	mock               *ObserverMock
	defaultExpectation *ObserverMockRefreshExpectation
	expectations       []*ObserverMockRefreshExpectation

	callArgs []*ObserverMockRefreshParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// ObserverMockRefreshExpectation specifies expectation struct of the Observer.Refresh
type ObserverMockRefreshExpectation struct {
	mock               *ObserverMock
	params             *ObserverMockRefreshParams
	paramPtrs          *ObserverMockRefreshParamPtrs
	expectationOrigins ObserverMockRefreshExpectationOrigins

	returnOrigin string
	Counter      uint64
}

// ObserverMockRefreshParams contains parameters of the Observer.Refresh
type ObserverMockRefreshParams struct {
	result string
}

// ObserverMockRefreshParamPtrs contains pointers to parameters of the Observer.Refresh
type ObserverMockRefreshParamPtrs struct {
	result *string
}

// ObserverMockRefreshOrigins contains origins of expectations of the Observer.Refresh
type ObserverMockRefreshExpectationOrigins struct {
	origin       string
	originResult string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmRefresh *mObserverMockRefresh) Optional() *mObserverMockRefresh {
	mmRefresh.optional = true
	return mmRefresh
}

// Expect sets up expected params for Observer.Refresh
func (mmRefresh *mObserverMockRefresh) Expect(result string) *mObserverMockRefresh {
	if mmRefresh.mock.funcRefresh != nil {
		mmRefresh.mock.t.Fatalf("ObserverMock.Refresh mock is already set by Set")
	}

	if mmRefresh.defaultExpectation == nil {
		mmRefresh.defaultExpectation = &ObserverMockRefreshExpectation{}
	}

	if mmRefresh.defaultExpectation.paramPtrs != nil {
		mmRefresh.mock.t.Fatalf("ObserverMock.Refresh mock is already set by ExpectParams functions")
	}

	mmRefresh.defaultExpectation.params = &ObserverMockRefreshParams{result}
	mmRefresh.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmRefresh.expectations {
		if minimock.Equal(e.params, mmRefresh.defaultExpectation.params) {
			mmRefresh.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmRefresh.defaultExpectation.params)
		}
	}

	return mmRefresh
}

// ExpectResultParam1 sets up expected param result for Observer.Refresh
func (mmRefresh *mObserverMockRefresh) ExpectResultParam1(result string) *mObserverMockRefresh {
	if mmRefresh.mock.funcRefresh != nil {
		mmRefresh.mock.t.Fatalf("ObserverMock.Refresh mock is already set by Set")
	}

	if mmRefresh.defaultExpectation == nil {
		mmRefresh.defaultExpectation = &ObserverMockRefreshExpectation{}
	}

	if mmRefresh.defaultExpectation.params != nil {
		mmRefresh.mock.t.Fatalf("ObserverMock.Refresh mock is already set by Expect")
	}

	if mmRefresh.defaultExpectation.paramPtrs == nil {
		mmRefresh.defaultExpectation.paramPtrs = &ObserverMockRefreshParamPtrs{}
	}
	mmRefresh.defaultExpectation.paramPtrs.result = &result
	mmRefresh.defaultExpectation.expectationOrigins.originResult = minimock.CallerInfo(1)

	return mmRefresh
}

// Inspect accepts an inspector function that has same arguments as the Observer.Refresh
func (mmRefresh *mObserverMockRefresh) Inspect(f func(result string)) *mObserverMockRefresh {
	if mmRefresh.mock.inspectFuncRefresh != nil {
		mmRefresh.mock.t.Fatalf("Inspect function is already set for ObserverMock.Refresh")
	}

	mmRefresh.mock.inspectFuncRefresh = f

	return mmRefresh
}

// Return sets up results that will be returned by Observer.Refresh
func (mmRefresh *mObserverMockRefresh) Return() *ObserverMock {
	if mmRefresh.mock.funcRefresh != nil {
		mmRefresh.mock.t.Fatalf("ObserverMock.Refresh mock is already set by Set")
	}

	if mmRefresh.defaultExpectation == nil {
		mmRefresh.defaultExpectation = &ObserverMockRefreshExpectation{mock: mmRefresh.mock}
	}

	mmRefresh.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmRefresh.mock
}

// Set uses given function f to mock the Observer.Refresh method
func (mmRefresh *mObserverMockRefresh) Set(f func(result string)) *ObserverMock {
	if mmRefresh.defaultExpectation != nil {
		mmRefresh.mock.t.Fatalf("Default expectation is already set for the Observer.Refresh method")
	}

	if len(mmRefresh.expectations) > 0 {
		mmRefresh.mock.t.Fatalf("Some expectations are already set for the Observer.Refresh method")
	}

	mmRefresh.mock.funcRefresh = f
	mmRefresh.mock.funcRefreshOrigin = minimock.CallerInfo(1)
	return mmRefresh.mock
}

// When sets expectation for the Observer.Refresh which will trigger the result defined by the following
// Then helper
func (mmRefresh *mObserverMockRefresh) When(result string) *ObserverMockRefreshExpectation {
	if mmRefresh.mock.funcRefresh != nil {
		mmRefresh.mock.t.Fatalf("ObserverMock.Refresh mock is already set by Set")
	}

	expectation := &ObserverMockRefreshExpectation{
		mock:               mmRefresh.mock,
		params:             &ObserverMockRefreshParams{result},
		expectationOrigins: ObserverMockRefreshExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmRefresh.expectations = append(mmRefresh.expectations, expectation)
	return expectation
}

// Then sets up Observer.Refresh return parameters for the expectation previously defined by the When method

func (e *ObserverMockRefreshExpectation) Then() *ObserverMock {
	return e.mock
}

// Times sets number of times Observer.Refresh should be invoked
func (mmRefresh *mObserverMockRefresh) Times(n uint64) *mObserverMockRefresh {
	if n == 0 {
		mmRefresh.mock.t.Fatalf("Times of ObserverMock.Refresh mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmRefresh.expectedInvocations, n)
	mmRefresh.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmRefresh
}

func (mmRefresh *mObserverMockRefresh) invocationsDone() bool {
	if len(mmRefresh.expectations) == 0 && mmRefresh.defaultExpectation == nil && mmRefresh.mock.funcRefresh == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmRefresh.mock.afterRefreshCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmRefresh.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Refresh implements mm_usecase.Observer
func (mmRefresh *ObserverMock) Refresh(result string) {
	mm_atomic.AddUint64(&mmRefresh.beforeRefreshCounter, 1)
	defer mm_atomic.AddUint64(&mmRefresh.afterRefreshCounter, 1)

	mmRefresh.t.Helper()

	if mmRefresh.inspectFuncRefresh != nil {
		mmRefresh.inspectFuncRefresh(result)
	}

	mm_params := ObserverMockRefreshParams{result}

	// Record call args
	mmRefresh.RefreshMock.mutex.Lock()
	mmRefresh.RefreshMock.callArgs = append(mmRefresh.RefreshMock.callArgs, &mm_params)
	mmRefresh.RefreshMock.mutex.Unlock()

	for _, e := range mmRefresh.RefreshMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return
		}
	}

	if mmRefresh.RefreshMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmRefresh.RefreshMock.defaultExpectation.Counter, 1)
		mm_want := mmRefresh.RefreshMock.defaultExpectation.params
		mm_want_ptrs := mmRefresh.RefreshMock.defaultExpectation.paramPtrs

		mm_got := ObserverMockRefreshParams{result}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.result != nil && !minimock.Equal(*mm_want_ptrs.result, mm_got.result) {
				mmRefresh.t.Errorf("ObserverMock.Refresh got unexpected parameter result, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmRefresh.RefreshMock.defaultExpectation.expectationOrigins.originResult, *mm_want_ptrs.result, mm_got.result, minimock.Diff(*mm_want_ptrs.result, mm_got.result))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmRefresh.t.Errorf("ObserverMock.Refresh got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmRefresh.RefreshMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		return

	}
	if mmRefresh.funcRefresh != nil {
		mmRefresh.funcRefresh(result)
		return
	}
	mmRefresh.t.Fatalf("Unexpected call to ObserverMock.Refresh. %v", result)

}

// RefreshAfterCounter returns a count of finished ObserverMock.Refresh invocations
func (mmRefresh *ObserverMock) RefreshAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRefresh.afterRefreshCounter)
}

// RefreshBeforeCounter returns a count of ObserverMock.Refresh invocations
func (mmRefresh *ObserverMock) RefreshBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRefresh.beforeRefreshCounter)
}

// Calls returns a list of arguments used in each call to ObserverMock.Refresh.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmRefresh *mObserverMockRefresh) Calls() []*ObserverMockRefreshParams {
	mmRefresh.mutex.RLock()

	argCopy := make([]*ObserverMockRefreshParams, len(mmRefresh.callArgs))
	copy(argCopy, mmRefresh.callArgs)

	mmRefresh.mutex.RUnlock()

	return argCopy
}

// MinimockRefreshDone returns true if the count of the Refresh invocations corresponds
// the number of defined expectations
func (m *ObserverMock) MinimockRefreshDone() bool {
	if m.RefreshMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.RefreshMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.RefreshMock.invocationsDone()
}

// MinimockRefreshInspect logs each unmet expectation
func (m *ObserverMock) MinimockRefreshInspect() {
	for _, e := range m.RefreshMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ObserverMock.Refresh at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterRefreshCounter := mm_atomic.LoadUint64(&m.afterRefreshCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.RefreshMock.defaultExpectation != nil && afterRefreshCounter < 1 {
		if m.RefreshMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to ObserverMock.Refresh at\n%s", m.RefreshMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to ObserverMock.Refresh at\n%s with params: %#v", m.RefreshMock.defaultExpectation.expectationOrigins.origin, *m.RefreshMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcRefresh != nil && afterRefreshCounter < 1 {
		m.t.Errorf("Expected call to ObserverMock.Refresh at\n%s", m.funcRefreshOrigin)
	}

	if !m.RefreshMock.invocationsDone() && afterRefreshCounter > 0 {
		m.t.Errorf("Expected %d calls to ObserverMock.Refresh at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.RefreshMock.expectedInvocations), m.RefreshMock.expectedInvocationsOrigin, afterRefreshCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ObserverMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockLoginInspect()

			m.MinimockRefreshInspect()
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
		m.MinimockLoginDone() &&
		m.MinimockRefreshDone()
}
