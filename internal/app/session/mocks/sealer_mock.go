// Code generated by http://github.com/gojuno/minimock (v3.4.7). DO NOT EDIT.

package mocks

//go:generate minimock -i github.com/66gu1/filmoradmin/internal/app/session.Sealer -o sealer_mock.go -n SealerMock -p mocks

import (
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"
)

// SealerMock implements mm_session.Sealer
type SealerMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcOpen          func(sealed []byte) (ba1 []byte, err error)
	funcOpenOrigin    string
	inspectFuncOpen   func(sealed []byte)
	afterOpenCounter  uint64
	beforeOpenCounter uint64
	OpenMock          mSealerMockOpen

	funcSeal          func(plaintext []byte) (ba1 []byte, err error)
	funcSealOrigin    string
	inspectFuncSeal   func(plaintext []byte)
	afterSealCounter  uint64
	beforeSealCounter uint64
	SealMock          mSealerMockSeal
}

// NewSealerMock returns a mock for mm_session.Sealer
func NewSealerMock(t minimock.Tester) *SealerMock {
	m := &SealerMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.OpenMock = mSealerMockOpen{mock: m}
	m.OpenMock.callArgs = []*SealerMockOpenParams{}

	m.SealMock = mSealerMockSeal{mock: m}
	m.SealMock.callArgs = []*SealerMockSealParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mSealerMockOpen struct {
	optional           bool
	mock               *SealerMock
	defaultExpectation *SealerMockOpenExpectation
	expectations       []*SealerMockOpenExpectation

	callArgs []*SealerMockOpenParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// SealerMockOpenExpectation specifies expectation struct of the Sealer.Open
type SealerMockOpenExpectation struct {
	mock               *SealerMock
	params             *SealerMockOpenParams
	paramPtrs          *SealerMockOpenParamPtrs
	expectationOrigins SealerMockOpenExpectationOrigins
	results            *SealerMockOpenResults
	returnOrigin       string
	Counter            uint64
}

// SealerMockOpenParams contains parameters of the Sealer.Open
type SealerMockOpenParams struct {
	sealed []byte
}

// SealerMockOpenParamPtrs contains pointers to parameters of the Sealer.Open
type SealerMockOpenParamPtrs struct {
	sealed *[]byte
}

// SealerMockOpenResults contains results of the Sealer.Open
type SealerMockOpenResults struct {
	ba1 []byte
	err error
}

// SealerMockOpenOrigins contains origins of expectations of the Sealer.Open
type SealerMockOpenExpectationOrigins struct {
	origin       string
	originSealed string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmOpen *mSealerMockOpen) Optional() *mSealerMockOpen {
	mmOpen.optional = true
	return mmOpen
}

// Expect sets up expected params for Sealer.Open
func (mmOpen *mSealerMockOpen) Expect(sealed []byte) *mSealerMockOpen {
	if mmOpen.mock.funcOpen != nil {
		mmOpen.mock.t.Fatalf("SealerMock.Open mock is already set by Set")
	}

	if mmOpen.defaultExpectation == nil {
		mmOpen.defaultExpectation = &SealerMockOpenExpectation{}
	}

	if mmOpen.defaultExpectation.paramPtrs != nil {
		mmOpen.mock.t.Fatalf("SealerMock.Open mock is already set by ExpectParams functions")
	}

	mmOpen.defaultExpectation.params = &SealerMockOpenParams{sealed}
	mmOpen.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmOpen.expectations {
		if minimock.Equal(e.params, mmOpen.defaultExpectation.params) {
			mmOpen.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmOpen.defaultExpectation.params)
		}
	}

	return mmOpen
}

// ExpectSealedParam1 sets up expected param sealed for Sealer.Open
func (mmOpen *mSealerMockOpen) ExpectSealedParam1(sealed []byte) *mSealerMockOpen {
	if mmOpen.mock.funcOpen != nil {
		mmOpen.mock.t.Fatalf("SealerMock.Open mock is already set by Set")
	}

	if mmOpen.defaultExpectation == nil {
		mmOpen.defaultExpectation = &SealerMockOpenExpectation{}
	}

	if mmOpen.defaultExpectation.params != nil {
		mmOpen.mock.t.Fatalf("SealerMock.Open mock is already set by Expect")
	}

	if mmOpen.defaultExpectation.paramPtrs == nil {
		mmOpen.defaultExpectation.paramPtrs = &SealerMockOpenParamPtrs{}
	}
	mmOpen.defaultExpectation.paramPtrs.sealed = &sealed
	mmOpen.defaultExpectation.expectationOrigins.originSealed = minimock.CallerInfo(1)

	return mmOpen
}

// Inspect accepts an inspector function that has same arguments as the Sealer.Open
func (mmOpen *mSealerMockOpen) Inspect(f func(sealed []byte)) *mSealerMockOpen {
	if mmOpen.mock.inspectFuncOpen != nil {
		mmOpen.mock.t.Fatalf("Inspect function is already set for SealerMock.Open")
	}

	mmOpen.mock.inspectFuncOpen = f

	return mmOpen
}

// Return sets up results that will be returned by Sealer.Open
func (mmOpen *mSealerMockOpen) Return(ba1 []byte, err error) *SealerMock {
	if mmOpen.mock.funcOpen != nil {
		mmOpen.mock.t.Fatalf("SealerMock.Open mock is already set by Set")
	}

	if mmOpen.defaultExpectation == nil {
		mmOpen.defaultExpectation = &SealerMockOpenExpectation{mock: mmOpen.mock}
	}
	mmOpen.defaultExpectation.results = &SealerMockOpenResults{ba1, err}
	mmOpen.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmOpen.mock
}

// Set uses given function f to mock the Sealer.Open method
func (mmOpen *mSealerMockOpen) Set(f func(sealed []byte) (ba1 []byte, err error)) *SealerMock {
	if mmOpen.defaultExpectation != nil {
		mmOpen.mock.t.Fatalf("Default expectation is already set for the Sealer.Open method")
	}

	if len(mmOpen.expectations) > 0 {
		mmOpen.mock.t.Fatalf("Some expectations are already set for the Sealer.Open method")
	}

	mmOpen.mock.funcOpen = f
	mmOpen.mock.funcOpenOrigin = minimock.CallerInfo(1)
	return mmOpen.mock
}

// When sets expectation for the Sealer.Open which will trigger the result defined by the following
// Then helper
func (mmOpen *mSealerMockOpen) When(sealed []byte) *SealerMockOpenExpectation {
	if mmOpen.mock.funcOpen != nil {
		mmOpen.mock.t.Fatalf("SealerMock.Open mock is already set by Set")
	}

	expectation := &SealerMockOpenExpectation{
		mock:               mmOpen.mock,
		params:             &SealerMockOpenParams{sealed},
		expectationOrigins: SealerMockOpenExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmOpen.expectations = append(mmOpen.expectations, expectation)
	return expectation
}

// Then sets up Sealer.Open return parameters for the expectation previously defined by the When method
func (e *SealerMockOpenExpectation) Then(ba1 []byte, err error) *SealerMock {
	e.results = &SealerMockOpenResults{ba1, err}
	return e.mock
}

// Times sets number of times Sealer.Open should be invoked
func (mmOpen *mSealerMockOpen) Times(n uint64) *mSealerMockOpen {
	if n == 0 {
		mmOpen.mock.t.Fatalf("Times of SealerMock.Open mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmOpen.expectedInvocations, n)
	mmOpen.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmOpen
}

func (mmOpen *mSealerMockOpen) invocationsDone() bool {
	if len(mmOpen.expectations) == 0 && mmOpen.defaultExpectation == nil && mmOpen.mock.funcOpen == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmOpen.mock.afterOpenCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmOpen.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Open implements mm_session.Sealer
func (mmOpen *SealerMock) Open(sealed []byte) (ba1 []byte, err error) {
	mm_atomic.AddUint64(&mmOpen.beforeOpenCounter, 1)
	defer mm_atomic.AddUint64(&mmOpen.afterOpenCounter, 1)

	mmOpen.t.Helper()

	if mmOpen.inspectFuncOpen != nil {
		mmOpen.inspectFuncOpen(sealed)
	}

	mm_params := SealerMockOpenParams{sealed}

	// Record call args
	mmOpen.OpenMock.mutex.Lock()
	mmOpen.OpenMock.callArgs = append(mmOpen.OpenMock.callArgs, &mm_params)
	mmOpen.OpenMock.mutex.Unlock()

	for _, e := range mmOpen.OpenMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.ba1, e.results.err
		}
	}

	if mmOpen.OpenMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmOpen.OpenMock.defaultExpectation.Counter, 1)
		mm_want := mmOpen.OpenMock.defaultExpectation.params
		mm_want_ptrs := mmOpen.OpenMock.defaultExpectation.paramPtrs

		mm_got := SealerMockOpenParams{sealed}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.sealed != nil && !minimock.Equal(*mm_want_ptrs.sealed, mm_got.sealed) {
				mmOpen.t.Errorf("SealerMock.Open got unexpected parameter sealed, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmOpen.OpenMock.defaultExpectation.expectationOrigins.originSealed, *mm_want_ptrs.sealed, mm_got.sealed, minimock.Diff(*mm_want_ptrs.sealed, mm_got.sealed))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmOpen.t.Errorf("SealerMock.Open got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmOpen.OpenMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmOpen.OpenMock.defaultExpectation.results
		if mm_results == nil {
			mmOpen.t.Fatal("No results are set for the SealerMock.Open")
		}
		return (*mm_results).ba1, (*mm_results).err
	}
	if mmOpen.funcOpen != nil {
		return mmOpen.funcOpen(sealed)
	}
	mmOpen.t.Fatalf("Unexpected call to SealerMock.Open. %v", sealed)
	return
}

// OpenAfterCounter returns a count of finished SealerMock.Open invocations
func (mmOpen *SealerMock) OpenAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmOpen.afterOpenCounter)
}

// OpenBeforeCounter returns a count of SealerMock.Open invocations
func (mmOpen *SealerMock) OpenBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmOpen.beforeOpenCounter)
}

// Calls returns a list of arguments used in each call to SealerMock.Open.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmOpen *mSealerMockOpen) Calls() []*SealerMockOpenParams {
	mmOpen.mutex.RLock()

	argCopy := make([]*SealerMockOpenParams, len(mmOpen.callArgs))
	copy(argCopy, mmOpen.callArgs)

	mmOpen.mutex.RUnlock()

	return argCopy
}

// MinimockOpenDone returns true if the count of the Open invocations corresponds
// the number of defined expectations
func (m *SealerMock) MinimockOpenDone() bool {
	if m.OpenMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.OpenMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.OpenMock.invocationsDone()
}

// MinimockOpenInspect logs each unmet expectation
func (m *SealerMock) MinimockOpenInspect() {
	for _, e := range m.OpenMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to SealerMock.Open at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterOpenCounter := mm_atomic.LoadUint64(&m.afterOpenCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.OpenMock.defaultExpectation != nil && afterOpenCounter < 1 {
		if m.OpenMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to SealerMock.Open at\n%s", m.OpenMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to SealerMock.Open at\n%s with params: %#v", m.OpenMock.defaultExpectation.expectationOrigins.origin, *m.OpenMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcOpen != nil && afterOpenCounter < 1 {
		m.t.Errorf("Expected call to SealerMock.Open at\n%s", m.funcOpenOrigin)
	}

	if !m.OpenMock.invocationsDone() && afterOpenCounter > 0 {
		m.t.Errorf("Expected %d calls to SealerMock.Open at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.OpenMock.expectedInvocations), m.OpenMock.expectedInvocationsOrigin, afterOpenCounter)
	}
}

type mSealerMockSeal struct {
	optional           bool
	mock               *SealerMock
	defaultExpectation *SealerMockSealExpectation
	expectations       []*SealerMockSealExpectation

	callArgs []*SealerMockSealParams
	mutex    sync.RWMutex

	expectedInvocations       uint64
	expectedInvocationsOrigin string
}

// SealerMockSealExpectation specifies expectation struct of the Sealer.Seal
type SealerMockSealExpectation struct {
	mock               *SealerMock
	params             *SealerMockSealParams
	paramPtrs          *SealerMockSealParamPtrs
	expectationOrigins SealerMockSealExpectationOrigins
	results            *SealerMockSealResults
	returnOrigin       string
	Counter            uint64
}

// SealerMockSealParams contains parameters of the Sealer.Seal
type SealerMockSealParams struct {
	plaintext []byte
}

// SealerMockSealParamPtrs contains pointers to parameters of the Sealer.Seal
type SealerMockSealParamPtrs struct {
	plaintext *[]byte
}

// SealerMockSealResults contains results of the Sealer.Seal
type SealerMockSealResults struct {
	ba1 []byte
	err error
}

// SealerMockSealOrigins contains origins of expectations of the Sealer.Seal
type SealerMockSealExpectationOrigins struct {
	origin          string
	originPlaintext string
}

// Marks this method to be optional. The default behavior of any method with Return() is '1 or more', meaning
// the test will fail minimock's automatic final call check if the mocked method was not called at least once.
// Optional() makes method check to work in '0 or more' mode.
// It is NOT RECOMMENDED to use this option unless you really need it, as default behaviour helps to
// catch the problems when the expected method call is totally skipped during test run.
func (mmSeal *mSealerMockSeal) Optional() *mSealerMockSeal {
	mmSeal.optional = true
	return mmSeal
}

// Expect sets up expected params for Sealer.Seal
func (mmSeal *mSealerMockSeal) Expect(plaintext []byte) *mSealerMockSeal {
	if mmSeal.mock.funcSeal != nil {
		mmSeal.mock.t.Fatalf("SealerMock.Seal mock is already set by Set")
	}

	if mmSeal.defaultExpectation == nil {
		mmSeal.defaultExpectation = &SealerMockSealExpectation{}
	}

	if mmSeal.defaultExpectation.paramPtrs != nil {
		mmSeal.mock.t.Fatalf("SealerMock.Seal mock is already set by ExpectParams functions")
	}

	mmSeal.defaultExpectation.params = &SealerMockSealParams{plaintext}
	mmSeal.defaultExpectation.expectationOrigins.origin = minimock.CallerInfo(1)
	for _, e := range mmSeal.expectations {
		if minimock.Equal(e.params, mmSeal.defaultExpectation.params) {
			mmSeal.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmSeal.defaultExpectation.params)
		}
	}

	return mmSeal
}

// ExpectPlaintextParam1 sets up expected param plaintext for Sealer.Seal
func (mmSeal *mSealerMockSeal) ExpectPlaintextParam1(plaintext []byte) *mSealerMockSeal {
	if mmSeal.mock.funcSeal != nil {
		mmSeal.mock.t.Fatalf("SealerMock.Seal mock is already set by Set")
	}

	if mmSeal.defaultExpectation == nil {
		mmSeal.defaultExpectation = &SealerMockSealExpectation{}
	}

	if mmSeal.defaultExpectation.params != nil {
		mmSeal.mock.t.Fatalf("SealerMock.Seal mock is already set by Expect")
	}

	if mmSeal.defaultExpectation.paramPtrs == nil {
		mmSeal.defaultExpectation.paramPtrs = &SealerMockSealParamPtrs{}
	}
	mmSeal.defaultExpectation.paramPtrs.plaintext = &plaintext
	mmSeal.defaultExpectation.expectationOrigins.originPlaintext = minimock.CallerInfo(1)

	return mmSeal
}

// Inspect accepts an inspector function that has same arguments as the Sealer.Seal
func (mmSeal *mSealerMockSeal) Inspect(f func(plaintext []byte)) *mSealerMockSeal {
	if mmSeal.mock.inspectFuncSeal != nil {
		mmSeal.mock.t.Fatalf("Inspect function is already set for SealerMock.Seal")
	}

	mmSeal.mock.inspectFuncSeal = f

	return mmSeal
}

// Return sets up results that will be returned by Sealer.Seal
func (mmSeal *mSealerMockSeal) Return(ba1 []byte, err error) *SealerMock {
	if mmSeal.mock.funcSeal != nil {
		mmSeal.mock.t.Fatalf("SealerMock.Seal mock is already set by Set")
	}

	if mmSeal.defaultExpectation == nil {
		mmSeal.defaultExpectation = &SealerMockSealExpectation{mock: mmSeal.mock}
	}
	mmSeal.defaultExpectation.results = &SealerMockSealResults{ba1, err}
	mmSeal.defaultExpectation.returnOrigin = minimock.CallerInfo(1)
	return mmSeal.mock
}

// Set uses given function f to mock the Sealer.Seal method
func (mmSeal *mSealerMockSeal) Set(f func(plaintext []byte) (ba1 []byte, err error)) *SealerMock {
	if mmSeal.defaultExpectation != nil {
		mmSeal.mock.t.Fatalf("Default expectation is already set for the Sealer.Seal method")
	}

	if len(mmSeal.expectations) > 0 {
		mmSeal.mock.t.Fatalf("Some expectations are already set for the Sealer.Seal method")
	}

	mmSeal.mock.funcSeal = f
	mmSeal.mock.funcSealOrigin = minimock.CallerInfo(1)
	return mmSeal.mock
}

// When sets expectation for the Sealer.Seal which will trigger the result defined by the following
// Then helper
func (mmSeal *mSealerMockSeal) When(plaintext []byte) *SealerMockSealExpectation {
	if mmSeal.mock.funcSeal != nil {
		mmSeal.mock.t.Fatalf("SealerMock.Seal mock is already set by Set")
	}

	expectation := &SealerMockSealExpectation{
		mock:               mmSeal.mock,
		params:             &SealerMockSealParams{plaintext},
		expectationOrigins: SealerMockSealExpectationOrigins{origin: minimock.CallerInfo(1)},
	}
	mmSeal.expectations = append(mmSeal.expectations, expectation)
	return expectation
}

// Then sets up Sealer.Seal return parameters for the expectation previously defined by the When method
func (e *SealerMockSealExpectation) Then(ba1 []byte, err error) *SealerMock {
	e.results = &SealerMockSealResults{ba1, err}
	return e.mock
}

// Times sets number of times Sealer.Seal should be invoked
func (mmSeal *mSealerMockSeal) Times(n uint64) *mSealerMockSeal {
	if n == 0 {
		mmSeal.mock.t.Fatalf("Times of SealerMock.Seal mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmSeal.expectedInvocations, n)
	mmSeal.expectedInvocationsOrigin = minimock.CallerInfo(1)
	return mmSeal
}

func (mmSeal *mSealerMockSeal) invocationsDone() bool {
	if len(mmSeal.expectations) == 0 && mmSeal.defaultExpectation == nil && mmSeal.mock.funcSeal == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmSeal.mock.afterSealCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmSeal.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Seal implements mm_session.Sealer
func (mmSeal *SealerMock) Seal(plaintext []byte) (ba1 []byte, err error) {
	mm_atomic.AddUint64(&mmSeal.beforeSealCounter, 1)
	defer mm_atomic.AddUint64(&mmSeal.afterSealCounter, 1)

	mmSeal.t.Helper()

	if mmSeal.inspectFuncSeal != nil {
		mmSeal.inspectFuncSeal(plaintext)
	}

	mm_params := SealerMockSealParams{plaintext}

	// Record call args
	mmSeal.SealMock.mutex.Lock()
	mmSeal.SealMock.callArgs = append(mmSeal.SealMock.callArgs, &mm_params)
	mmSeal.SealMock.mutex.Unlock()

	for _, e := range mmSeal.SealMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.ba1, e.results.err
		}
	}

	if mmSeal.SealMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmSeal.SealMock.defaultExpectation.Counter, 1)
		mm_want := mmSeal.SealMock.defaultExpectation.params
		mm_want_ptrs := mmSeal.SealMock.defaultExpectation.paramPtrs

		mm_got := SealerMockSealParams{plaintext}

		if mm_want_ptrs != nil {

			if mm_want_ptrs.plaintext != nil && !minimock.Equal(*mm_want_ptrs.plaintext, mm_got.plaintext) {
				mmSeal.t.Errorf("SealerMock.Seal got unexpected parameter plaintext, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
					mmSeal.SealMock.defaultExpectation.expectationOrigins.originPlaintext, *mm_want_ptrs.plaintext, mm_got.plaintext, minimock.Diff(*mm_want_ptrs.plaintext, mm_got.plaintext))
			}

		} else if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmSeal.t.Errorf("SealerMock.Seal got unexpected parameters, expected at\n%s:\nwant: %#v\n got: %#v%s\n",
				mmSeal.SealMock.defaultExpectation.expectationOrigins.origin, *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mmSeal.SealMock.defaultExpectation.results
		if mm_results == nil {
			mmSeal.t.Fatal("No results are set for the SealerMock.Seal")
		}
		return (*mm_results).ba1, (*mm_results).err
	}
	if mmSeal.funcSeal != nil {
		return mmSeal.funcSeal(plaintext)
	}
	mmSeal.t.Fatalf("Unexpected call to SealerMock.Seal. %v", plaintext)
	return
}

// SealAfterCounter returns a count of finished SealerMock.Seal invocations
func (mmSeal *SealerMock) SealAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSeal.afterSealCounter)
}

// SealBeforeCounter returns a count of SealerMock.Seal invocations
func (mmSeal *SealerMock) SealBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSeal.beforeSealCounter)
}

// Calls returns a list of arguments used in each call to SealerMock.Seal.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmSeal *mSealerMockSeal) Calls() []*SealerMockSealParams {
	mmSeal.mutex.RLock()

	argCopy := make([]*SealerMockSealParams, len(mmSeal.callArgs))
	copy(argCopy, mmSeal.callArgs)

	mmSeal.mutex.RUnlock()

	return argCopy
}

// MinimockSealDone returns true if the count of the Seal invocations corresponds
// the number of defined expectations
func (m *SealerMock) MinimockSealDone() bool {
	if m.SealMock.optional {
		// Optional methods provide '0 or more' call count restriction.
		return true
	}

	for _, e := range m.SealMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.SealMock.invocationsDone()
}

// MinimockSealInspect logs each unmet expectation
func (m *SealerMock) MinimockSealInspect() {
	for _, e := range m.SealMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to SealerMock.Seal at\n%s with params: %#v", e.expectationOrigins.origin, *e.params)
		}
	}

	afterSealCounter := mm_atomic.LoadUint64(&m.afterSealCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.SealMock.defaultExpectation != nil && afterSealCounter < 1 {
		if m.SealMock.defaultExpectation.params == nil {
			m.t.Errorf("Expected call to SealerMock.Seal at\n%s", m.SealMock.defaultExpectation.returnOrigin)
		} else {
			m.t.Errorf("Expected call to SealerMock.Seal at\n%s with params: %#v", m.SealMock.defaultExpectation.expectationOrigins.origin, *m.SealMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcSeal != nil && afterSealCounter < 1 {
		m.t.Errorf("Expected call to SealerMock.Seal at\n%s", m.funcSealOrigin)
	}

	if !m.SealMock.invocationsDone() && afterSealCounter > 0 {
		m.t.Errorf("Expected %d calls to SealerMock.Seal at\n%s but found %d calls",
			mm_atomic.LoadUint64(&m.SealMock.expectedInvocations), m.SealMock.expectedInvocationsOrigin, afterSealCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *SealerMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockOpenInspect()

			m.MinimockSealInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *SealerMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *SealerMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockOpenDone() &&
		m.MinimockSealDone()
}
